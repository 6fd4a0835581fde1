package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when a cart is not found.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when a cart line is not found.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the interface for cart-related database operations.
type CartRepository interface {
	// CreateCart persists a new, empty cart.
	CreateCart(ctx context.Context, cart *entity.Cart) error

	// FindCartByID retrieves a cart with its items by ID.
	FindCartByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error)

	// FindCartByOwner retrieves the cart belonging to a registered shopper.
	FindCartByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error)

	// AddItem appends a new line to the cart.
	AddItem(ctx context.Context, cartID uuid.UUID, item *entity.CartItem) error

	// UpdateItemQuantity changes the quantity of an existing line.
	// The line's price snapshot is never touched.
	UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int64) error

	// RemoveItem deletes a line from the cart.
	RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error

	// DeleteCart removes a cart and its items (after checkout or expiry).
	DeleteCart(ctx context.Context, id uuid.UUID) error

	// DeleteExpiredCarts removes carts past their TTL and returns how many were removed.
	DeleteExpiredCarts(ctx context.Context) (int64, error)
}
