package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// GuestLineItem is one inline checkout line supplied directly with the
// request. Guest checkout bypasses the persisted cart entirely.
type GuestLineItem struct {
	VariantID uuid.UUID `json:"variant_id" validate:"required"`
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int64     `json:"quantity" validate:"required,gte=1"`
}

// CreateOrderInput is the checkout payload. Exactly one line source is used:
// the shopper's persisted cart (CartID, scoped to UserID when present) or the
// inline guest item list.
type CreateOrderInput struct {
	UserID          *uuid.UUID
	CartID          *uuid.UUID             `json:"cart_id,omitempty"`
	GuestItems      []GuestLineItem        `json:"items,omitempty" validate:"omitempty,dive"`
	ShippingAddress entity.ShippingAddress `json:"shipping_address" validate:"required"`
	PaymentMethod   string                 `json:"payment_method" validate:"required"`
	RequestID       string                 `json:"-"`
}

// CheckoutResult bundles the settled order with the payment intent the
// shopper is redirected to.
type CheckoutResult struct {
	Order         *entity.Order          `json:"order"`
	PaymentIntent *service.PaymentIntent `json:"payment_intent"`
}

// CheckoutUsecase defines the interface for cart-to-order checkout and the
// order lifecycle operations that follow.
type CheckoutUsecase interface {
	// CreateOrder validates every line against the live catalog (fail-fast,
	// nothing persisted on any miss), creates the immutable order and
	// reserves inventory per line.
	CreateOrder(ctx context.Context, input CreateOrderInput) (*CheckoutResult, error)

	// GetOrder retrieves an order by number, scoped to its owner unless the
	// requester is an admin.
	GetOrder(ctx context.Context, number string, requester *uuid.UUID, isAdmin bool) (*entity.Order, error)

	// ListOrders retrieves the requesting shopper's orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// CancelOrder cancels a pending or processing order and releases its
	// inventory reservations.
	CancelOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// MarkOrderPaid records payment confirmation and converts the order's
	// reservations into hard stock deductions.
	MarkOrderPaid(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// FulfillOrder flips the fulfillment axis to fulfilled.
	FulfillOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)
}
