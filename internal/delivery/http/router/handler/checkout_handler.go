package handler

import (
	"log/slog"
	"net/http"
	"slices"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/constants"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler holds dependencies for checkout and order lifecycle handlers
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// Checkout handles converting a cart (or inline guest lines) into an order
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var req usecase.CreateOrderInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	req.UserID = currentUserID(c)
	req.RequestID = deliverycontext.GetRequestID(c)
	if req.CartID == nil && req.UserID == nil {
		if cartID, err := uuid.Parse(c.Request().Header.Get(HeaderCartID)); err == nil {
			req.CartID = &cartID
		}
	}

	result, err := h.checkoutUC.CreateOrder(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "Order created successfully")
}

// GetOrder handles retrieving an order by number, scoped to its owner
func (h *CheckoutHandler) GetOrder(c echo.Context) error {
	order, err := h.checkoutUC.GetOrder(c.Request().Context(), c.Param("number"), currentUserID(c), isAdmin(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListOrders handles retrieving the authenticated shopper's order history
func (h *CheckoutHandler) ListOrders(c echo.Context) error {
	userID := currentUserID(c)
	if userID == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.checkoutUC.ListOrders(c.Request().Context(), *userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// CancelOrder handles cancelling an order and releasing its reservations
func (h *CheckoutHandler) CancelOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.checkoutUC.CancelOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order cancelled successfully")
}

// MarkOrderPaid handles recording payment confirmation
func (h *CheckoutHandler) MarkOrderPaid(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.checkoutUC.MarkOrderPaid(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order marked paid successfully")
}

// FulfillOrder handles flipping the fulfillment axis
func (h *CheckoutHandler) FulfillOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.checkoutUC.FulfillOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order fulfilled successfully")
}

// isAdmin reports whether the authenticated user carries the admin role.
func isAdmin(c echo.Context) bool {
	roles, ok := c.Get(constants.ContextKeyRoles).([]string)

	return ok && slices.Contains(roles, constants.RoleAdmin)
}
