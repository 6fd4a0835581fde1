package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the overall order state machine:
// pending -> {processing -> completed} | cancelled.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// CanTransitionTo reports whether the order status may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusProcessing || next == OrderStatusCancelled
	case OrderStatusProcessing:
		return next == OrderStatusCompleted || next == OrderStatusCancelled
	default:
		return false
	}
}

// PaymentStatus tracks payment independently of the order status.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// FulfillmentStatus tracks physical fulfillment independently of the other axes.
type FulfillmentStatus string

const (
	FulfillmentStatusUnfulfilled FulfillmentStatus = "unfulfilled"
	FulfillmentStatusFulfilled   FulfillmentStatus = "fulfilled"
)

// Order event kinds recorded on the append-only audit timeline.
const (
	OrderEventCreated           = "order.created"
	OrderEventCancelled         = "order.cancelled"
	OrderEventPaid              = "order.paid"
	OrderEventFulfilled         = "order.fulfilled"
	OrderEventReservationFailed = "order.reservation_failed"
)

// Order is the settled record produced exactly once at checkout. It is only
// ever appended to afterwards (status transitions, events, payment updates)
// and never deleted. Item rows are denormalized snapshots, immune to later
// catalog edits.
type Order struct {
	ID                uuid.UUID
	Number            string     // Unique human-readable number, YYMMDD-NNNNN.
	UserID            *uuid.UUID // Nil for guest checkouts.
	Items             []OrderItem
	Subtotal          int64
	ShippingTotal     int64 // Fixed extension point, currently zero.
	TaxTotal          int64 // Fixed extension point, currently zero.
	DiscountTotal     int64
	Total             int64
	Status            OrderStatus
	PaymentStatus     PaymentStatus
	FulfillmentStatus FulfillmentStatus
	ShippingAddress   ShippingAddress
	Payments          []OrderPayment
	Events            []OrderEvent // Append-only audit timeline.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderItem is a denormalized line snapshot copied from the live catalog at
// checkout time.
type OrderItem struct {
	ID           uuid.UUID
	ProductID    uuid.UUID
	VariantID    uuid.UUID
	ProductTitle string
	VariantTitle string
	SKU          string
	Quantity     int64
	UnitPrice    int64
	TotalPrice   int64
}

// OrderPayment is one payment attempt recorded against the order.
type OrderPayment struct {
	ID        uuid.UUID
	Provider  string // e.g. "placeholder".
	Method    string // Payment method requested at checkout.
	Amount    int64
	Status    PaymentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderEvent is one entry of the order's append-only event log.
type OrderEvent struct {
	ID        uuid.UUID
	Kind      string
	Message   string
	CreatedAt time.Time
}

// ShippingAddress is the delivery address snapshot taken at checkout.
type ShippingAddress struct {
	FullName   string `json:"full_name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// AppendEvent records a new entry on the audit timeline.
func (o *Order) AppendEvent(kind, message string) *OrderEvent {
	event := OrderEvent{
		ID:        uuid.New(),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
	}
	o.Events = append(o.Events, event)

	return &o.Events[len(o.Events)-1]
}
