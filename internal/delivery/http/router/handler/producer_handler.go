package handler

import (
	"log/slog"
	"net/http"
	"time"

	"organico/internal/delivery/http/middleware"
	"organico/internal/delivery/http/response"
	"organico/internal/domain/entity"
	domainerrors "organico/internal/domain/errors"
	"organico/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProducerHandler holds dependencies for producer profile handlers.
type ProducerHandler struct {
	uc     usecase.ProducerUsecase
	logger *slog.Logger
}

// NewProducerHandler is the constructor for ProducerHandler, injected by Fx.
func NewProducerHandler(uc usecase.ProducerUsecase, logger *slog.Logger) *ProducerHandler {
	return &ProducerHandler{
		uc:     uc,
		logger: logger,
	}
}

type producerProfileResponse struct {
	UserID                  string    `json:"user_id"`
	BusinessName            string    `json:"business_name"`
	Description             string    `json:"description,omitempty"`
	CoverImage              string    `json:"cover_image,omitempty"`
	HasOrganicCertification bool      `json:"has_organic_certification"`
	CertificationDetails    string    `json:"certification_details,omitempty"`
	Website                 string    `json:"website,omitempty"`
	Instagram               string    `json:"instagram,omitempty"`
	Whatsapp                string    `json:"whatsapp,omitempty"`
	IsVerified              bool      `json:"is_verified"`
	IsActive                bool      `json:"is_active"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func toProducerProfileResponse(profile *entity.ProducerProfile) *producerProfileResponse {
	return &producerProfileResponse{
		UserID:                  profile.UserID.String(),
		BusinessName:            profile.BusinessName,
		Description:             profile.Description,
		CoverImage:              profile.CoverImage,
		HasOrganicCertification: profile.HasOrganicCertification,
		CertificationDetails:    profile.CertificationDetails,
		Website:                 profile.Website,
		Instagram:               profile.Instagram,
		Whatsapp:                profile.Whatsapp,
		IsVerified:              profile.IsVerified,
		IsActive:                profile.IsActive,
		CreatedAt:               profile.CreatedAt,
		UpdatedAt:               profile.UpdatedAt,
	}
}

// GetMyProfile handles GET /producers/my_profile.
func (h *ProducerHandler) GetMyProfile(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	profile, err := h.uc.GetMyProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProducerProfileResponse(profile), "")
}

type updateProducerProfileRequest struct {
	BusinessName            *string `json:"business_name"`
	Description             *string `json:"description"`
	CoverImage              *string `json:"cover_image"`
	HasOrganicCertification *bool   `json:"has_organic_certification"`
	CertificationDetails    *string `json:"certification_details"`
	Website                 *string `json:"website"`
	Instagram               *string `json:"instagram"`
	Whatsapp                *string `json:"whatsapp"`
}

// UpdateMyProfile handles PUT /producers/my_profile.
func (h *ProducerHandler) UpdateMyProfile(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var req updateProducerProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	profile, err := h.uc.UpdateMyProfile(c.Request().Context(), userID, &usecase.UpdateProducerProfileInput{
		BusinessName:            req.BusinessName,
		Description:             req.Description,
		CoverImage:              req.CoverImage,
		HasOrganicCertification: req.HasOrganicCertification,
		CertificationDetails:    req.CertificationDetails,
		Website:                 req.Website,
		Instagram:               req.Instagram,
		Whatsapp:                req.Whatsapp,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProducerProfileResponse(profile), "Profile updated successfully")
}
