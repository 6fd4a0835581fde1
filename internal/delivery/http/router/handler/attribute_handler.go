package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AttributeHandlerParams holds dependencies for AttributeHandler, injected by Fx.
type AttributeHandlerParams struct {
	fx.In

	AttributeUC usecase.AttributeUsecase
	Logger      *slog.Logger
}

// AttributeHandler holds dependencies for attribute catalog administration.
type AttributeHandler struct {
	attributeUC usecase.AttributeUsecase
	logger      *slog.Logger
}

// NewAttributeHandler is the constructor for AttributeHandler
func NewAttributeHandler(params AttributeHandlerParams) *AttributeHandler {
	return &AttributeHandler{
		attributeUC: params.AttributeUC,
		logger:      params.Logger,
	}
}

// CreateAttributeRequest represents the request body for creating an attribute
type CreateAttributeRequest struct {
	Key    string                        `json:"key" validate:"required"`
	Values []usecase.AttributeValueInput `json:"values" validate:"required,min=1,dive"`
}

// UpdateAttributeRequest represents the request body for replacing an
// attribute's value set
type UpdateAttributeRequest struct {
	Values []usecase.AttributeValueInput `json:"values" validate:"required,min=1,dive"`
}

// CreateAttribute handles registering a new product dimension
func (h *AttributeHandler) CreateAttribute(c echo.Context) error {
	var req CreateAttributeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid attribute input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	attribute, err := h.attributeUC.CreateAttribute(c.Request().Context(), req.Key, req.Values)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, attribute, "Attribute created successfully")
}

// GetAttribute handles retrieving an attribute by key
func (h *AttributeHandler) GetAttribute(c echo.Context) error {
	attribute, err := h.attributeUC.GetAttribute(c.Request().Context(), c.Param("key"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, attribute, "Attribute retrieved successfully")
}

// ListAttributes handles retrieving all attributes
func (h *AttributeHandler) ListAttributes(c echo.Context) error {
	attributes, err := h.attributeUC.ListAttributes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, attributes, "Attributes retrieved successfully")
}

// UpdateAttribute handles replacing an attribute's value set
func (h *AttributeHandler) UpdateAttribute(c echo.Context) error {
	var req UpdateAttributeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid attribute input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	attribute, err := h.attributeUC.UpdateAttribute(c.Request().Context(), c.Param("key"), req.Values)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, attribute, "Attribute updated successfully")
}
