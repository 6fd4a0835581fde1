package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel mirrors the 'carts' table. A registered shopper has at most one
// cart; guest carts carry a null owner and are addressed by ID.
type CartModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID   *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_carts_owner"`
	ExpiresAt time.Time  `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table. One line per variant per
// cart; re-adding the same variant accumulates quantity on the existing line.
type CartItemModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CartID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_variant,priority:1"`
	VariantID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_variant,priority:2"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null"`
	Quantity      int64     `gorm:"not null"`
	PriceSnapshot int64     `gorm:"not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
