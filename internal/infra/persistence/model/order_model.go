package model

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Orders are created exactly once at
// checkout and only gain status transitions, payments and events afterwards.
type OrderModel struct {
	ID                uuid.UUID              `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Number            string                 `gorm:"type:varchar(16);not null;uniqueIndex:idx_orders_number"`
	UserID            *uuid.UUID             `gorm:"type:uuid;index"`
	Subtotal          int64                  `gorm:"not null"`
	ShippingTotal     int64                  `gorm:"not null;default:0"`
	TaxTotal          int64                  `gorm:"not null;default:0"`
	DiscountTotal     int64                  `gorm:"not null;default:0"`
	Total             int64                  `gorm:"not null"`
	Status            string                 `gorm:"type:varchar(16);not null;index"`
	PaymentStatus     string                 `gorm:"type:varchar(16);not null"`
	FulfillmentStatus string                 `gorm:"type:varchar(16);not null"`
	ShippingAddress   entity.ShippingAddress `gorm:"type:jsonb;serializer:json"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Items    []OrderItemModel    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payments []OrderPaymentModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Events   []OrderEventModel   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table: denormalized line snapshots
// immune to later catalog edits.
type OrderItemModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null"`
	VariantID    uuid.UUID `gorm:"type:uuid;not null"`
	ProductTitle string    `gorm:"type:varchar(255);not null"`
	VariantTitle string    `gorm:"type:varchar(255)"`
	SKU          string    `gorm:"type:varchar(128);not null"`
	Quantity     int64     `gorm:"not null"`
	UnitPrice    int64     `gorm:"not null"`
	TotalPrice   int64     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderPaymentModel mirrors the 'order_payments' table.
type OrderPaymentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider  string    `gorm:"type:varchar(64);not null"`
	Method    string    `gorm:"type:varchar(64);not null"`
	Amount    int64     `gorm:"not null"`
	Status    string    `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderPaymentModel) TableName() string {
	return "order_payments"
}

// OrderEventModel mirrors the 'order_events' table: the append-only audit
// timeline. Rows are never updated or deleted.
type OrderEventModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind      string    `gorm:"type:varchar(64);not null"`
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderEventModel) TableName() string {
	return "order_events"
}
