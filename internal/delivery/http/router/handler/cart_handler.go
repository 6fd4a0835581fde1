package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/constants"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderCartID carries the guest cart ID handed to the client when the cart
// was lazily created. Authenticated shoppers are scoped by token instead.
const HeaderCartID = "X-Cart-Id"

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// GetCart handles retrieving (and lazily creating) the shopper's cart
func (h *CartHandler) GetCart(c echo.Context) error {
	cart, err := h.cartUC.GetOrCreateCart(c.Request().Context(), cartRef(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart retrieved successfully")
}

// AddItem handles adding a line to the cart
func (h *CartHandler) AddItem(c echo.Context) error {
	var req usecase.AddCartItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), cartRef(c), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added successfully")
}

// UpdateItemRequest represents the request body for changing a line's quantity
type UpdateItemRequest struct {
	Quantity int64 `json:"quantity" validate:"required,gte=1"`
}

// UpdateItem handles changing a line's quantity
func (h *CartHandler) UpdateItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("itemID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item ID")
	}

	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cart, err := h.cartUC.UpdateItem(c.Request().Context(), cartRef(c), itemID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Item updated successfully")
}

// RemoveItem handles removing a line from the cart
func (h *CartHandler) RemoveItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("itemID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item ID")
	}

	if err := h.cartUC.RemoveItem(c.Request().Context(), cartRef(c), itemID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Item removed successfully"}, "Item removed successfully")
}

// cartRef resolves whose cart the request targets: the authenticated shopper
// when a token was presented, otherwise the guest cart named by X-Cart-Id.
func cartRef(c echo.Context) usecase.CartRef {
	ref := usecase.CartRef{OwnerID: currentUserID(c)}
	if ref.OwnerID != nil {
		return ref
	}

	if cartID, err := uuid.Parse(c.Request().Header.Get(HeaderCartID)); err == nil {
		ref.CartID = &cartID
	}

	return ref
}

// currentUserID extracts the authenticated user from the context, if any.
func currentUserID(c echo.Context) *uuid.UUID {
	if userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID); ok {
		return &userID
	}

	return nil
}
