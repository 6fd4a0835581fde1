package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/pricing"

	"github.com/google/uuid"
)

// OptionSelection is one selected attribute value in a variant template,
// optionally carrying a value-specific stock override.
type OptionSelection struct {
	ValueID string `json:"value_id" validate:"required"`
	Stock   *int64 `json:"stock,omitempty"`
}

// VariantTemplate describes one base price/SKU/stock plus the selected colors
// and sizes to expand into concrete variants.
type VariantTemplate struct {
	SKU            string            `json:"sku"`
	Price          int64             `json:"price" validate:"required,gt=0"`
	CompareAtPrice *int64            `json:"compare_at_price,omitempty"`
	Stock          int64             `json:"stock"`
	Colors         []OptionSelection `json:"colors,omitempty"`
	Sizes          []OptionSelection `json:"sizes,omitempty"`
	Published      bool              `json:"published"`
}

// UpsertProductInput is the admin payload for creating or updating a product.
// The variant templates are expanded into the product's concrete variant set;
// any previous variants are replaced wholesale.
type UpsertProductInput struct {
	ID              *uuid.UUID             `json:"id,omitempty"`
	Slug            string                 `json:"slug" validate:"required"`
	Title           string                 `json:"title" validate:"required"`
	Description     string                 `json:"description"`
	CategoryID      *uuid.UUID             `json:"category_id,omitempty"`
	RequiresSizing  bool                   `json:"requires_sizing"`
	DiscountPercent int64                  `json:"discount_percent" validate:"gte=0,lte=100"`
	Labels          []entity.ProductLabel  `json:"labels,omitempty"`
	Published       bool                   `json:"published"`
	Templates       []VariantTemplate      `json:"templates" validate:"required,min=1,dive"`
}

// ProductView is the storefront read model: the product with its display
// labels synchronized to the active discount and per-variant price resolution.
type ProductView struct {
	Product *entity.Product               `json:"product"`
	Labels  []entity.ProductLabel         `json:"labels"`
	Pricing map[string]pricing.Resolution `json:"pricing"` // keyed by variant ID
}

// CatalogUsecase defines the interface for product catalog operations, both
// the admin write path and the storefront read path.
type CatalogUsecase interface {
	// UpsertProduct expands the variant templates and creates or replaces the
	// product. All validation failures are fatal to the whole call; no partial
	// variant set is ever persisted.
	UpsertProduct(ctx context.Context, input UpsertProductInput) (*entity.Product, error)

	// SetProductDiscount updates the product-level discount percent.
	SetProductDiscount(ctx context.Context, productID uuid.UUID, percent int64) error

	// SetGlobalDiscount updates the store-wide discount percent.
	SetGlobalDiscount(ctx context.Context, percent int64) error

	// GetProduct returns the storefront view of a published product.
	GetProduct(ctx context.Context, slug string) (*ProductView, error)

	// ListProducts returns storefront views of published products.
	ListProducts(ctx context.Context, limit, offset int) ([]*ProductView, error)
}
