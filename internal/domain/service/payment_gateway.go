package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// PaymentIntent is the placeholder handed back to the storefront after
// checkout. Real payment-provider URL generation is an external collaborator.
type PaymentIntent struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
	Amount      int64  `json:"amount"`
	RedirectURL string `json:"redirect_url"`
}

// PaymentGateway defines the interface for the payment provider collaborator.
type PaymentGateway interface {
	// CreateIntent registers a pending payment for the order and returns the
	// intent the shopper is redirected to.
	CreateIntent(ctx context.Context, order *entity.Order, method string) (*PaymentIntent, error)
}
