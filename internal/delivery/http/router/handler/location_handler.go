package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
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

// LocationHandler holds dependencies for selling-point handlers.
type LocationHandler struct {
	uc     usecase.LocationUsecase
	logger *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.LocationUsecase, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- Request payloads ---

type createLocationRequest struct {
	Name           string          `json:"name" validate:"required"`
	LocationType   string          `json:"location_type" validate:"required"`
	Description    string          `json:"description"`
	Address        json.RawMessage `json:"address" validate:"required"`
	ProductIDs     []uuid.UUID     `json:"product_ids"`
	MainImage      string          `json:"main_image"`
	OperationDays  string          `json:"operation_days"`
	OperationHours string          `json:"operation_hours"`
	Phone          string          `json:"phone"`
	Whatsapp       string          `json:"whatsapp"`
}

type updateLocationRequest struct {
	Name           *string         `json:"name"`
	LocationType   *string         `json:"location_type"`
	Description    *string         `json:"description"`
	Address        json.RawMessage `json:"address"`
	ProductIDs     []uuid.UUID     `json:"product_ids"`
	MainImage      *string         `json:"main_image"`
	OperationDays  *string         `json:"operation_days"`
	OperationHours *string         `json:"operation_hours"`
	Phone          *string         `json:"phone"`
	Whatsapp       *string         `json:"whatsapp"`
	IsActive       *bool           `json:"is_active"`
}

// normalizeAddressRaw unwraps an address payload. The multipart form path
// (and some clients on the JSON path) send the address as a JSON-encoded
// string rather than a nested object.
func normalizeAddressRaw(raw []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("empty address payload")
	}

	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return nil, errors.Wrap(err, "failed to unquote address payload")
		}

		return []byte(inner), nil
	}

	return trimmed, nil
}

// decodeAddress parses an address payload into the given target struct.
// Failures are reported as a field-scoped address error, not a generic
// binding error.
func decodeAddress(raw json.RawMessage, target any) error {
	normalized, err := normalizeAddressRaw(raw)
	if err != nil {
		return domainerrors.ErrInvalidAddressPayload.WithDetails("address")
	}

	if err := json.Unmarshal(normalized, target); err != nil {
		return domainerrors.ErrInvalidAddressPayload.WithDetails("address")
	}

	return nil
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// bindCreateRequest accepts either a JSON body or multipart form fields.
func bindCreateRequest(c echo.Context) (*createLocationRequest, error) {
	if !isMultipart(c) {
		var req createLocationRequest
		if err := c.Bind(&req); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("invalid location payload")
		}

		return &req, nil
	}

	req := &createLocationRequest{
		Name:           c.FormValue("name"),
		LocationType:   c.FormValue("location_type"),
		Description:    c.FormValue("description"),
		Address:        json.RawMessage(c.FormValue("address")),
		MainImage:      c.FormValue("main_image"),
		OperationDays:  c.FormValue("operation_days"),
		OperationHours: c.FormValue("operation_hours"),
		Phone:          c.FormValue("phone"),
		Whatsapp:       c.FormValue("whatsapp"),
	}
	if raw := c.FormValue("product_ids"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.ProductIDs); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("product_ids must be a JSON array of UUIDs")
		}
	}

	return req, nil
}

// bindUpdateRequest accepts either a JSON body or multipart form fields.
// On the form path a field is only applied when it was actually sent.
func bindUpdateRequest(c echo.Context) (*updateLocationRequest, error) {
	if !isMultipart(c) {
		var req updateLocationRequest
		if err := c.Bind(&req); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("invalid location payload")
		}

		return &req, nil
	}

	form, err := c.FormParams()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid multipart form")
	}

	req := &updateLocationRequest{}
	formString := func(field string) *string {
		if vals, ok := form[field]; ok && len(vals) > 0 {
			return &vals[0]
		}

		return nil
	}

	req.Name = formString("name")
	req.LocationType = formString("location_type")
	req.Description = formString("description")
	req.MainImage = formString("main_image")
	req.OperationDays = formString("operation_days")
	req.OperationHours = formString("operation_hours")
	req.Phone = formString("phone")
	req.Whatsapp = formString("whatsapp")

	if raw := formString("address"); raw != nil {
		req.Address = json.RawMessage(*raw)
	}
	if raw := formString("product_ids"); raw != nil {
		req.ProductIDs = []uuid.UUID{}
		if err := json.Unmarshal([]byte(*raw), &req.ProductIDs); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("product_ids must be a JSON array of UUIDs")
		}
	}
	if raw := formString("is_active"); raw != nil {
		active, err := strconv.ParseBool(*raw)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("is_active must be a boolean")
		}
		req.IsActive = &active
	}

	return req, nil
}

// --- Response payloads ---

type addressResponse struct {
	Street       string   `json:"street"`
	Number       string   `json:"number,omitempty"`
	Complement   string   `json:"complement,omitempty"`
	Neighborhood string   `json:"neighborhood"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	ZipCode      string   `json:"zip_code"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

type locationImageResponse struct {
	ID           string `json:"id"`
	Image        string `json:"image"`
	Caption      string `json:"caption,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

type locationProductResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CategoryName string `json:"category_name,omitempty"`
	Image        string `json:"image,omitempty"`
}

type locationResponse struct {
	ID             string                     `json:"id"`
	Name           string                     `json:"name"`
	LocationType   string                     `json:"location_type"`
	Description    string                     `json:"description,omitempty"`
	ProducerName   string                     `json:"producer_name"`
	Address        *addressResponse           `json:"address"`
	Products       []*locationProductResponse `json:"products"`
	Images         []*locationImageResponse   `json:"images"`
	MainImage      string                     `json:"main_image,omitempty"`
	OperationDays  string                     `json:"operation_days,omitempty"`
	OperationHours string                     `json:"operation_hours,omitempty"`
	Phone          string                     `json:"phone,omitempty"`
	Whatsapp       string                     `json:"whatsapp,omitempty"`
	IsActive       bool                       `json:"is_active"`
	IsVerified     bool                       `json:"is_verified"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

func toLocationResponse(location *entity.Location) *locationResponse {
	resp := &locationResponse{
		ID:             location.ID.String(),
		Name:           location.Name,
		LocationType:   location.LocationType,
		Description:    location.Description,
		ProducerName:   location.ProducerName,
		MainImage:      location.MainImage,
		OperationDays:  location.OperationDays,
		OperationHours: location.OperationHours,
		Phone:          location.Phone,
		Whatsapp:       location.Whatsapp,
		IsActive:       location.IsActive,
		IsVerified:     location.IsVerified,
		CreatedAt:      location.CreatedAt,
		UpdatedAt:      location.UpdatedAt,
	}

	if location.Address != nil {
		resp.Address = &addressResponse{
			Street:       location.Address.Street,
			Number:       location.Address.Number,
			Complement:   location.Address.Complement,
			Neighborhood: location.Address.Neighborhood,
			City:         location.Address.City,
			State:        location.Address.State,
			ZipCode:      location.Address.ZipCode,
			Latitude:     location.Address.Latitude,
			Longitude:    location.Address.Longitude,
		}
	}

	resp.Products = make([]*locationProductResponse, 0, len(location.Products))
	for _, product := range location.Products {
		resp.Products = append(resp.Products, &locationProductResponse{
			ID:           product.ID.String(),
			Name:         product.Name,
			CategoryName: product.CategoryName,
			Image:        product.Image,
		})
	}

	resp.Images = make([]*locationImageResponse, 0, len(location.Images))
	for _, image := range location.Images {
		resp.Images = append(resp.Images, &locationImageResponse{
			ID:           image.ID.String(),
			Image:        image.Image,
			Caption:      image.Caption,
			DisplayOrder: image.DisplayOrder,
		})
	}

	return resp
}

// --- Handlers ---

// Create handles POST /locations.
func (h *LocationHandler) Create(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	req, err := bindCreateRequest(c)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	var address usecase.AddressInput
	if err := decodeAddress(req.Address, &address); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&address); err != nil {
		return errors.WithStack(err)
	}

	location, err := h.uc.Create(c.Request().Context(), userID, &usecase.CreateLocationInput{
		Name:           req.Name,
		LocationType:   req.LocationType,
		Description:    req.Description,
		Address:        &address,
		ProductIDs:     req.ProductIDs,
		MainImage:      req.MainImage,
		OperationDays:  req.OperationDays,
		OperationHours: req.OperationHours,
		Phone:          req.Phone,
		Whatsapp:       req.Whatsapp,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toLocationResponse(location), "Location created successfully")
}

// Update handles PUT/PATCH /locations/:id.
func (h *LocationHandler) Update(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location id")
	}

	req, err := bindUpdateRequest(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateLocationInput{
		Name:           req.Name,
		LocationType:   req.LocationType,
		Description:    req.Description,
		ProductIDs:     req.ProductIDs,
		MainImage:      req.MainImage,
		OperationDays:  req.OperationDays,
		OperationHours: req.OperationHours,
		Phone:          req.Phone,
		Whatsapp:       req.Whatsapp,
		IsActive:       req.IsActive,
	}
	if len(req.Address) > 0 {
		var address usecase.AddressUpdateInput
		if err := decodeAddress(req.Address, &address); err != nil {
			return errors.WithStack(err)
		}
		input.Address = &address
	}

	location, err := h.uc.Update(c.Request().Context(), userID, locationID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLocationResponse(location), "Location updated successfully")
}

// Delete handles DELETE /locations/:id.
func (h *LocationHandler) Delete(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location id")
	}

	if err := h.uc.Delete(c.Request().Context(), userID, locationID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Get handles GET /locations/:id.
func (h *LocationHandler) Get(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location id")
	}

	location, err := h.uc.Get(c.Request().Context(), locationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLocationResponse(location), "")
}

// List handles GET /locations.
func (h *LocationHandler) List(c echo.Context) error {
	input := &usecase.ListLocationsInput{
		LocationType: c.QueryParam("location_type"),
		City:         c.QueryParam("city"),
		State:        c.QueryParam("state"),
		Search:       c.QueryParam("search"),
	}

	if raw := c.QueryParam("is_verified"); raw != "" {
		verified, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "is_verified must be a boolean")
		}
		input.IsVerified = &verified
	}

	input.OrderBy, input.Descending = parseOrdering(c.QueryParam("ordering"))
	input.Limit = queryInt(c, "limit")
	input.Offset = queryInt(c, "offset")

	markers, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, markers, "")
}

// MyLocations handles GET /locations/my_locations.
func (h *LocationHandler) MyLocations(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	markers, err := h.uc.MyLocations(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, markers, "")
}

// MapData handles GET /locations/map_data.
func (h *LocationHandler) MapData(c echo.Context) error {
	input := &usecase.MapDataInput{
		LocationType: c.QueryParam("location_type"),
		City:         c.QueryParam("city"),
		State:        c.QueryParam("state"),
	}

	var parseErr error
	input.Latitude = queryFloat(c, "lat", &parseErr)
	input.Longitude = queryFloat(c, "lng", &parseErr)
	input.RadiusKm = queryFloat(c, "radius_km", &parseErr)
	if parseErr != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lat, lng and radius_km must be numbers")
	}

	markers, err := h.uc.MapData(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, markers, "")
}

// AddImage handles POST /locations/:id/add_image, multipart or JSON.
func (h *LocationHandler) AddImage(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location id")
	}

	input := &usecase.AddImageInput{}

	if isMultipart(c) {
		input.Caption = c.FormValue("caption")
		if raw := c.FormValue("display_order"); raw != "" {
			order, err := strconv.Atoi(raw)
			if err != nil {
				return response.BadRequest(c, "INVALID_INPUT", "display_order must be an integer")
			}
			input.DisplayOrder = order
		}

		file, err := c.FormFile("image")
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "image file is required")
		}
		src, err := file.Open()
		if err != nil {
			return errors.Wrap(err, "failed to open uploaded image")
		}
		defer src.Close()

		input.Body = src
		input.Filename = file.Filename
		input.ContentType = file.Header.Get(echo.HeaderContentType)
	} else {
		var req struct {
			ImageURL     string `json:"image_url" validate:"required"`
			Caption      string `json:"caption"`
			DisplayOrder int    `json:"display_order"`
		}
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid image input")
		}
		if err := c.Validate(&req); err != nil {
			return errors.WithStack(err)
		}

		input.ImageURL = req.ImageURL
		input.Caption = req.Caption
		input.DisplayOrder = req.DisplayOrder
	}

	image, err := h.uc.AddImage(c.Request().Context(), userID, locationID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &locationImageResponse{
		ID:           image.ID.String(),
		Image:        image.Image,
		Caption:      image.Caption,
		DisplayOrder: image.DisplayOrder,
	}, "Image added successfully")
}

// ShareQR handles GET /locations/:id/qr.
func (h *LocationHandler) ShareQR(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location id")
	}

	png, err := h.uc.ShareQR(c.Request().Context(), locationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// --- Query helpers ---

// parseOrdering understands "name", "-name", "created_at", "-created_at".
func parseOrdering(raw string) (orderBy string, descending bool) {
	if raw == "" {
		return "", false
	}

	if strings.HasPrefix(raw, "-") {
		return strings.TrimPrefix(raw, "-"), true
	}

	return raw, false
}

func queryInt(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return value
}

func queryFloat(c echo.Context, name string, parseErr *error) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*parseErr = err

		return nil
	}

	return &value
}
