package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrderNumber is returned when the generated order number
	// collides with an existing one. Callers retry with a fresh number.
	ErrDuplicateOrderNumber = errors.New("order number already exists")
)

// OrderRepository defines the interface for order-related database operations.
// Orders are append-only: they are created exactly once at checkout and only
// ever gain status transitions, events and payment updates afterwards.
type OrderRepository interface {
	// CreateOrder persists a new order with its denormalized items, initial
	// payment record and initial audit event in one write.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with items, payments and events.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByNumber retrieves an order by its human-readable number.
	FindOrderByNumber(ctx context.Context, number string) (*entity.Order, error)

	// ListOrdersByUser retrieves a shopper's orders, newest first.
	ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// UpdateOrderStatus sets the overall order status.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// UpdatePaymentStatus sets the order's payment axis and the matching
	// payment sub-record.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error

	// UpdateFulfillmentStatus sets the order's fulfillment axis.
	UpdateFulfillmentStatus(ctx context.Context, id uuid.UUID, status entity.FulfillmentStatus) error

	// AppendOrderEvent appends one entry to the order's audit timeline.
	AppendOrderEvent(ctx context.Context, orderID uuid.UUID, event *entity.OrderEvent) error
}
