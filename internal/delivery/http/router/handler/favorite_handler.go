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

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for favorite-related handlers.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

type toggleFavoriteRequest struct {
	LocationID uuid.UUID `json:"location_id"`
	Note       string    `json:"note"`
}

type favoriteResponse struct {
	ID        string                 `json:"id"`
	Location  *entity.LocationMarker `json:"location"`
	Note      string                 `json:"note,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// Toggle handles POST /favorites/toggle.
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var req toggleFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}
	if req.LocationID == uuid.Nil {
		return response.BadRequest(c, "INVALID_INPUT", "location_id is required")
	}

	output, err := h.uc.Toggle(c.Request().Context(), userID, req.LocationID, req.Note)
	if err != nil {
		return errors.WithStack(err)
	}

	body := map[string]any{"favorited": output.Favorited}
	message := "Favorite removed"
	if output.Favorited {
		message = "Favorite added"
		body["favorite"] = map[string]any{
			"id":         output.Favorite.ID.String(),
			"note":       output.Favorite.Note,
			"created_at": output.Favorite.CreatedAt,
		}
	}

	return response.Success(c, http.StatusOK, body, message)
}

// Check handles GET /favorites/check?location_id=.
func (h *FavoriteHandler) Check(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	locationID, err := uuid.Parse(c.QueryParam("location_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "location_id is required")
	}

	favorited, err := h.uc.Check(c.Request().Context(), userID, locationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"favorited": favorited}, "")
}

// List handles GET /favorites.
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	favorites, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	body := make([]*favoriteResponse, 0, len(favorites))
	for _, favorite := range favorites {
		body = append(body, &favoriteResponse{
			ID:        favorite.ID.String(),
			Location:  favorite.Location,
			Note:      favorite.Note,
			CreatedAt: favorite.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, body, "")
}
