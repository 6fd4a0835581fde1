// Package pricing resolves a variant's effective price from product-level and
// store-wide discount configuration. Everything here is deterministic and
// side-effect-free: identical inputs always produce identical results, so
// callers are free to memoize by (variantID, productDiscount, globalDiscount).
package pricing

import (
	"strconv"

	"storefront/internal/domain/entity"
)

// Resolution is the outcome of resolving a variant's price.
type Resolution struct {
	FinalPrice      int64 // Effective unit price after the active discount.
	OriginalPrice   int64 // The "was" price to surface; 0 when none should be shown.
	DiscountPercent int64 // The active discount percent; 0 when no discount applies.
}

// ActiveDiscount returns the discount percent in effect for a product.
// A product-level discount wins outright over the store-wide discount;
// the store-wide discount applies only when the product has none.
func ActiveDiscount(product *entity.Product, settings *entity.StoreSettings) int64 {
	if product != nil && product.DiscountPercent > 0 {
		return clampPercent(product.DiscountPercent)
	}

	return settings.GlobalDiscountPercent()
}

// Resolve computes the effective price of a variant. Prices carry no
// fractional minor units in this domain, so the discounted price is rounded
// to the nearest whole unit (half up).
func Resolve(variant *entity.Variant, product *entity.Product, settings *entity.StoreSettings) Resolution {
	discount := ActiveDiscount(product, settings)

	resolution := Resolution{
		FinalPrice:      applyDiscount(variant.Price, discount),
		DiscountPercent: discount,
	}

	switch {
	case variant.CompareAtPrice != nil:
		resolution.OriginalPrice = *variant.CompareAtPrice
	case discount > 0:
		// No explicit compare-at price: surface the pre-discount price.
		resolution.OriginalPrice = variant.Price
	}

	return resolution
}

// SyncLabels returns the product's display labels with every percentage-kind
// label overwritten to the active discount. When a discount is active and the
// product carries no percentage label, a transient one is synthesized so the
// storefront always reflects the true current discount. The returned slice is
// a copy; nothing is persisted.
func SyncLabels(product *entity.Product, settings *entity.StoreSettings) []entity.ProductLabel {
	discount := ActiveDiscount(product, settings)
	shown := strconv.FormatInt(discount, 10)

	labels := make([]entity.ProductLabel, 0, len(product.Labels)+1)
	hasPercentage := false
	for _, label := range product.Labels {
		if label.Kind == entity.LabelKindPercentage {
			label.Value = shown
			hasPercentage = true
		}
		labels = append(labels, label)
	}

	if discount > 0 && !hasPercentage {
		labels = append(labels, entity.ProductLabel{
			Kind:  entity.LabelKindPercentage,
			Value: shown,
		})
	}

	return labels
}

// applyDiscount rounds half up to whole currency units.
func applyDiscount(price, percent int64) int64 {
	if percent <= 0 {
		return price
	}

	return (price*(100-percent) + 50) / 100
}

func clampPercent(percent int64) int64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}

	return percent
}
