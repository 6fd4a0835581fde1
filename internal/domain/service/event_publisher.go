package service

import (
	"context"
)

// OrderEvent represents an order state change published for async consumers
// (fulfillment, notification, analytics).
type OrderEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	Kind        string `json:"kind"`                 // e.g. "order.created"
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	UserID      string `json:"user_id,omitempty"` // Empty for guest checkouts
	Total       int64  `json:"total"`
	ItemCount   int    `json:"item_count"`
}

// OrderEventPublisher defines the interface for publishing order events to a
// message queue. Publishing is best-effort on the checkout path: a failed
// publish is logged, never surfaced to the shopper.
type OrderEventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
