package model

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. The product owns its variants;
// they are replaced wholesale on update, never patched row by row.
type ProductModel struct {
	ID              uuid.UUID             `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Slug            string                `gorm:"type:varchar(128);not null;uniqueIndex:idx_products_slug"`
	Title           string                `gorm:"type:varchar(255);not null"`
	Description     string                `gorm:"type:text"`
	CategoryID      *uuid.UUID            `gorm:"type:uuid;index"`
	RequiresSizing  bool                  `gorm:"not null;default:false"`
	DiscountPercent int64                 `gorm:"not null;default:0"`
	Labels          []entity.ProductLabel `gorm:"type:jsonb;serializer:json"`
	Status          string                `gorm:"type:varchar(16);not null;default:'active';index"`
	Published       bool                  `gorm:"not null;default:false;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Variants []VariantModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// VariantModel mirrors the 'variants' table. The SKU is unique catalog-wide,
// not per product; the unique index is the backstop behind the admin-side
// check-then-act SKU validation.
type VariantModel struct {
	ID             uuid.UUID              `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID      uuid.UUID              `gorm:"type:uuid;not null;index"`
	SKU            string                 `gorm:"type:varchar(128);not null;uniqueIndex:idx_variants_sku"`
	Title          string                 `gorm:"type:varchar(255)"`
	Price          int64                  `gorm:"not null"`
	CompareAtPrice *int64                 ``
	Stock          int64                  `gorm:"not null;default:0"`
	StockReserved  int64                  `gorm:"not null;default:0"`
	Options        []entity.VariantOption `gorm:"type:jsonb;serializer:json"`
	Published      bool                   `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (VariantModel) TableName() string {
	return "variants"
}
