package entity

import (
	"time"

	"github.com/google/uuid"
)

// LifecycleStatus is the explicit lifecycle of catalog records.
// An explicit enum avoids scattering deleted-at null checks through queries.
type LifecycleStatus string

const (
	LifecycleActive  LifecycleStatus = "active"
	LifecycleDeleted LifecycleStatus = "deleted"
)

// Label kinds understood by the storefront.
const (
	LabelKindPercentage = "percentage"
	LabelKindText       = "text"
)

// Product is the aggregate root of the catalog. It owns its variant list;
// variants are created and replaced wholesale on product create/update.
type Product struct {
	ID              uuid.UUID       // The Global Unique Identifier (GUID) for the product.
	Slug            string          // Unique URL-safe identifier.
	Title           string          // Display title.
	Description     string          // Long-form description.
	CategoryID      *uuid.UUID      // Owning category reference, if any.
	RequiresSizing  bool            // True for categories (clothing/footwear) where every template must carry sizes.
	DiscountPercent int64           // Product-level discount 0-100; wins over the store-wide discount when > 0.
	Labels          []ProductLabel  // Display labels; percentage-kind labels are kept in sync with the active discount.
	Variants        []Variant       // Concrete purchasable variants.
	Status          LifecycleStatus // active or deleted.
	Published       bool            // Visibility on the storefront.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProductLabel is a display badge shown on the storefront.
type ProductLabel struct {
	Kind  string // "percentage" or "text".
	Value string // Shown value; for percentage labels this is the discount number.
}

// Variant is a concrete purchasable SKU of a product, identified by a unique
// stock-keeping code and a specific combination of attribute values.
type Variant struct {
	ID             uuid.UUID       // The Global Unique Identifier (GUID) for the variant.
	SKU            string          // Globally unique stock-keeping code (catalog-wide, not per-product).
	Title          string          // Display title, usually derived from its option values.
	Price          int64           // Unit price in whole currency units; always > 0.
	CompareAtPrice *int64          // Optional pre-discount "was" price.
	Stock          int64           // On-hand quantity; never negative.
	StockReserved  int64           // Soft-held quantity awaiting payment; never negative.
	Options        []VariantOption // Attribute-value pairs uniquely identifying this combination within its product.
	Published      bool
}

// VariantOption is one attributeKey -> value pair of a variant.
type VariantOption struct {
	AttributeKey string // e.g. "color".
	ValueID      string // e.g. "black".
}

// VariantByID returns the variant with the given ID, if present.
func (p *Product) VariantByID(id uuid.UUID) (*Variant, bool) {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i], true
		}
	}

	return nil, false
}

// VariantBySKU returns the variant with the given SKU, if present.
func (p *Product) VariantBySKU(sku string) (*Variant, bool) {
	for i := range p.Variants {
		if p.Variants[i].SKU == sku {
			return &p.Variants[i], true
		}
	}

	return nil, false
}

// IsSellable reports whether the product may appear on the storefront.
func (p *Product) IsSellable() bool {
	return p.Status == LifecycleActive && p.Published
}

// OptionValue returns the value ID for the given attribute key, if the
// variant carries that option.
func (v *Variant) OptionValue(attributeKey string) (string, bool) {
	for _, opt := range v.Options {
		if opt.AttributeKey == attributeKey {
			return opt.ValueID, true
		}
	}

	return "", false
}

// Available is the quantity still free to promise: stock minus soft holds.
func (v *Variant) Available() int64 {
	available := v.Stock - v.StockReserved
	if available < 0 {
		return 0
	}

	return available
}
