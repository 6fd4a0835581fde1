package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for the admin product surface.
type ProductHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// SetDiscountRequest represents the request body for discount updates
type SetDiscountRequest struct {
	Percent int64 `json:"percent" validate:"gte=0,lte=100"`
}

// UpsertProduct handles creating or replacing a product with its expanded
// variant set
func (h *ProductHandler) UpsertProduct(c echo.Context) error {
	var req usecase.UpsertProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.UpsertProduct(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	statusCode := http.StatusCreated
	if req.ID != nil {
		statusCode = http.StatusOK
	}

	return response.Success(c, statusCode, product, "Product saved successfully")
}

// SetProductDiscount handles updating a product-level discount
func (h *ProductHandler) SetProductDiscount(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req SetDiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.catalogUC.SetProductDiscount(c.Request().Context(), productID, req.Percent); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"percent": req.Percent}, "Product discount updated successfully")
}

// SetGlobalDiscount handles updating the store-wide discount
func (h *ProductHandler) SetGlobalDiscount(c echo.Context) error {
	var req SetDiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.catalogUC.SetGlobalDiscount(c.Request().Context(), req.Percent); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"percent": req.Percent}, "Global discount updated successfully")
}
