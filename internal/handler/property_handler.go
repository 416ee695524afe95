package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"rental/internal/model"
	"rental/internal/service"
)

// PropertyHandler handles property endpoints.
type PropertyHandler struct {
	svc service.PropertyService
}

// NewPropertyHandler creates a new property handler.
func NewPropertyHandler(svc service.PropertyService) *PropertyHandler {
	return &PropertyHandler{svc: svc}
}

// PropertyRequest represents the writable fields of a property.
type PropertyRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	Type        string           `json:"type"`
	Size        string           `json:"size"`
	Location    string           `json:"location"`
	Price       *decimal.Decimal `json:"price" validate:"required" swaggertype:"string" example:"120.00"`
}

func (r PropertyRequest) fields() model.PropertyFields {
	return model.PropertyFields{
		Name:        r.Name,
		Description: r.Description,
		Type:        r.Type,
		Size:        r.Size,
		Location:    r.Location,
		Price:       *r.Price,
	}
}

// CreateProperty godoc
// @Summary Create property
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PropertyRequest true "Property"
// @Success 201 {object} model.Property
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	var req PropertyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	property, err := h.svc.CreateProperty(c.Request().Context(), req.fields())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, property)
}

// ListProperties godoc
// @Summary List properties
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Property
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c echo.Context) error {
	properties, err := h.svc.ListProperties(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, properties)
}

// GetProperty godoc
// @Summary Get property by id
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} model.Property
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	property, err := h.svc.GetProperty(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, property)
}

// UpdateProperty godoc
// @Summary Update property
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param request body PropertyRequest true "Property"
// @Success 200 {object} model.Property
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req PropertyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	property, err := h.svc.UpdateProperty(c.Request().Context(), id, req.fields())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, property)
}

// DeleteProperty godoc
// @Summary Delete property
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteProperty(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "property deleted successfully"})
}
