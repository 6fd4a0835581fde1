package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is the per-shopper mutable collection of line items. It is created
// lazily on first interaction and expires by TTL. The cart is the unit of
// consistency for its items: lines are added and removed through the
// aggregate, never mutated as a raw nested array.
type Cart struct {
	ID        uuid.UUID  // The Global Unique Identifier (GUID) for the cart.
	OwnerID   *uuid.UUID // Registered owner; nil for a guest cart.
	Items     []CartItem
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem is one line of a cart. PriceSnapshot is captured when the line is
// first added and is write-once; only Quantity is mutable afterwards.
type CartItem struct {
	ID            uuid.UUID
	VariantID     uuid.UUID
	ProductID     uuid.UUID
	Quantity      int64 // Always >= 1.
	PriceSnapshot int64 // Unit price at add-time. Never refreshed; checkout re-derives authoritative pricing.
	CreatedAt     time.Time
}

// IsExpired reports whether the cart has passed its TTL.
func (c *Cart) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// ItemByID returns the line with the given ID, if present.
func (c *Cart) ItemByID(id uuid.UUID) (*CartItem, bool) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i], true
		}
	}

	return nil, false
}

// ItemByVariant returns the line holding the given variant, if present.
// Adding the same variant twice accumulates quantity on this line.
func (c *Cart) ItemByVariant(variantID uuid.UUID) (*CartItem, bool) {
	for i := range c.Items {
		if c.Items[i].VariantID == variantID {
			return &c.Items[i], true
		}
	}

	return nil, false
}

// RemoveItem removes the line with the given ID from the aggregate.
// It reports whether a line was removed.
func (c *Cart) RemoveItem(id uuid.UUID) bool {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)

			return true
		}
	}

	return false
}
