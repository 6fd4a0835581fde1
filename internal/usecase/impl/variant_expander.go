package impl

import (
	"fmt"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

// Attribute keys produced by template expansion.
const (
	attributeColor = "color"
	attributeSize  = "size"
)

// expandVariantTemplates turns an admin's variant templates into the concrete
// variant list stored on the product: the cartesian product of each
// template's selected colors and sizes, with per-value stock overrides and
// SKU assignment. All validation failures are fatal to the whole call; no
// partial variant set is ever produced.
func expandVariantTemplates(input usecase.UpsertProductInput, now time.Time) ([]entity.Variant, error) {
	variants := make([]entity.Variant, 0, len(input.Templates))
	combinations := make(map[string]struct{})

	for templateIdx, template := range input.Templates {
		if template.Price <= 0 {
			return nil, domainerrors.ErrInvalidPrice.WithDetails(
				fmt.Sprintf("template %d has price %d", templateIdx, template.Price))
		}
		if input.RequiresSizing && len(template.Sizes) == 0 {
			return nil, domainerrors.ErrSizeRequired.WithDetails(
				fmt.Sprintf("template %d has no sizes", templateIdx))
		}

		emitted := expandTemplate(input, template, now)

		for _, variant := range emitted {
			key := combinationKey(variant.Options)
			if _, exists := combinations[key]; exists {
				return nil, domainerrors.ErrValidationFailed.WithDetails(
					"duplicate variant combination: " + key)
			}
			combinations[key] = struct{}{}
		}

		variants = append(variants, emitted...)
	}

	dedupeSKUs(variants)

	return variants, nil
}

// expandTemplate emits the concrete variants of a single template:
// one per (color, size) pair when both dimensions are selected, one per value
// when only one dimension is selected, and a single variant when neither is.
func expandTemplate(input usecase.UpsertProductInput, template usecase.VariantTemplate, now time.Time) []entity.Variant {
	colors := template.Colors
	sizes := template.Sizes

	// Degenerate dimensions still produce one slot so the cross product
	// yields max(C,1) x max(S,1) variants.
	colorSlots := len(colors)
	if colorSlots == 0 {
		colorSlots = 1
	}
	sizeSlots := len(sizes)
	if sizeSlots == 0 {
		sizeSlots = 1
	}

	multi := colorSlots*sizeSlots > 1
	variants := make([]entity.Variant, 0, colorSlots*sizeSlots)

	for colorIdx := 0; colorIdx < colorSlots; colorIdx++ {
		var color *usecase.OptionSelection
		if colorIdx < len(colors) {
			color = &colors[colorIdx]
		}

		for sizeIdx := 0; sizeIdx < sizeSlots; sizeIdx++ {
			var size *usecase.OptionSelection
			if sizeIdx < len(sizes) {
				size = &sizes[sizeIdx]
			}

			variant := entity.Variant{
				ID:             uuid.New(),
				SKU:            assignSKU(input.Slug, template.SKU, multi, colorIdx, sizeIdx, now),
				Price:          template.Price,
				CompareAtPrice: template.CompareAtPrice,
				Stock:          resolveStock(input.RequiresSizing, template.Stock, color, size),
				Options:        buildOptions(color, size),
				Published:      template.Published,
			}
			variant.Title = variantTitle(variant.Options)
			variants = append(variants, variant)
		}
	}

	return variants
}

// resolveStock picks the stock for one emitted variant, in priority order:
// the size-specific value when the category requires sizing, then the
// color-specific value, then the template's base stock, then zero.
func resolveStock(requiresSizing bool, baseStock int64, color, size *usecase.OptionSelection) int64 {
	if requiresSizing && size != nil && size.Stock != nil {
		return max(*size.Stock, 0)
	}
	if color != nil && color.Stock != nil {
		return max(*color.Stock, 0)
	}

	return max(baseStock, 0)
}

// assignSKU derives the emitted variant's SKU. A supplied base SKU gains a
// positional suffix only when the template produces more than one variant;
// without a base, one is synthesized from the product slug and timestamp.
func assignSKU(slug, baseSKU string, multi bool, colorIdx, sizeIdx int, now time.Time) string {
	if baseSKU != "" {
		if multi {
			return fmt.Sprintf("%s-%d-%d", baseSKU, colorIdx, sizeIdx)
		}

		return baseSKU
	}

	return fmt.Sprintf("%s-%d-%d-%d", slug, now.Unix(), colorIdx, sizeIdx)
}

// dedupeSKUs is the final pass over the entire emitted set. Any residual
// collision (including across templates) gains a random disambiguating
// suffix. Mutates the slice in place.
func dedupeSKUs(variants []entity.Variant) {
	seen := make(map[string]struct{}, len(variants))
	for i := range variants {
		sku := variants[i].SKU
		for {
			if _, taken := seen[sku]; !taken {
				break
			}
			sku = variants[i].SKU + "-" + randomSuffix()
		}
		variants[i].SKU = sku
		seen[sku] = struct{}{}
	}
}

func buildOptions(color, size *usecase.OptionSelection) []entity.VariantOption {
	options := make([]entity.VariantOption, 0, 2)
	if color != nil {
		options = append(options, entity.VariantOption{AttributeKey: attributeColor, ValueID: color.ValueID})
	}
	if size != nil {
		options = append(options, entity.VariantOption{AttributeKey: attributeSize, ValueID: size.ValueID})
	}

	return options
}

func variantTitle(options []entity.VariantOption) string {
	if len(options) == 0 {
		return "Default"
	}

	parts := make([]string, 0, len(options))
	for _, opt := range options {
		parts = append(parts, opt.ValueID)
	}

	return strings.Join(parts, " / ")
}

// combinationKey canonicalizes an options set for uniqueness checks within a
// product.
func combinationKey(options []entity.VariantOption) string {
	if len(options) == 0 {
		return "default"
	}

	parts := make([]string, 0, len(options))
	for _, opt := range options {
		parts = append(parts, opt.AttributeKey+"="+opt.ValueID)
	}

	return strings.Join(parts, ",")
}

func randomSuffix() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}
