package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRef identifies whose cart an operation targets: a registered shopper's
// cart (by owner) or a guest cart (by cart ID handed to the client when the
// cart was lazily created). When both are nil a new guest cart is created.
type CartRef struct {
	OwnerID *uuid.UUID
	CartID  *uuid.UUID
}

// AddCartItemInput is the payload for adding a line to a cart.
type AddCartItemInput struct {
	VariantID uuid.UUID `json:"variant_id" validate:"required"`
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int64     `json:"quantity" validate:"required,gte=1"`
}

// CartUsecase defines the interface for cart operations.
type CartUsecase interface {
	// GetOrCreateCart returns the referenced cart, lazily creating an empty
	// one with the configured TTL when none exists.
	GetOrCreateCart(ctx context.Context, ref CartRef) (*entity.Cart, error)

	// AddItem re-validates the variant (published, enough stock) and merges
	// the quantity into an existing line for the same variant, or appends a
	// new line with the price snapshot captured now.
	AddItem(ctx context.Context, ref CartRef, input AddCartItemInput) (*entity.Cart, error)

	// UpdateItem changes a line's quantity after re-checking live stock.
	// The price snapshot is never refreshed.
	UpdateItem(ctx context.Context, ref CartRef, itemID uuid.UUID, quantity int64) (*entity.Cart, error)

	// RemoveItem removes a line. No stock side effect: nothing is reserved at
	// cart stage.
	RemoveItem(ctx context.Context, ref CartRef, itemID uuid.UUID) error
}
