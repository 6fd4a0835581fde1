package pricing

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func settingsWithGlobalDiscount(percent string) *entity.StoreSettings {
	return &entity.StoreSettings{
		Values: map[string]string{entity.SettingGlobalDiscount: percent},
	}
}

func TestResolve_ProductDiscountWinsOverGlobal(t *testing.T) {
	product := &entity.Product{DiscountPercent: 15}
	variant := &entity.Variant{Price: 1000}
	settings := settingsWithGlobalDiscount("30")

	resolution := Resolve(variant, product, settings)

	assert.Equal(t, int64(15), resolution.DiscountPercent)
	assert.Equal(t, int64(850), resolution.FinalPrice)
}

func TestResolve_GlobalDiscountAppliesWhenProductHasNone(t *testing.T) {
	product := &entity.Product{}
	variant := &entity.Variant{Price: 200}
	settings := settingsWithGlobalDiscount("30")

	resolution := Resolve(variant, product, settings)

	assert.Equal(t, int64(30), resolution.DiscountPercent)
	assert.Equal(t, int64(140), resolution.FinalPrice)
}

func TestResolve_NoDiscount(t *testing.T) {
	product := &entity.Product{}
	variant := &entity.Variant{Price: 999}

	resolution := Resolve(variant, product, &entity.StoreSettings{})

	assert.Equal(t, int64(0), resolution.DiscountPercent)
	assert.Equal(t, int64(999), resolution.FinalPrice)
	assert.Equal(t, int64(0), resolution.OriginalPrice)
}

func TestResolve_RoundsHalfUp(t *testing.T) {
	product := &entity.Product{DiscountPercent: 33}
	variant := &entity.Variant{Price: 101}

	resolution := Resolve(variant, product, &entity.StoreSettings{})

	// 101 * 0.67 = 67.67 -> 68
	assert.Equal(t, int64(68), resolution.FinalPrice)
}

func TestResolve_SurfacesWasPriceWithoutCompareAt(t *testing.T) {
	product := &entity.Product{DiscountPercent: 20}
	variant := &entity.Variant{Price: 500}

	resolution := Resolve(variant, product, &entity.StoreSettings{})

	assert.Equal(t, int64(500), resolution.OriginalPrice)
	assert.Equal(t, int64(400), resolution.FinalPrice)
}

func TestResolve_ExplicitCompareAtPriceWins(t *testing.T) {
	compareAt := int64(800)
	product := &entity.Product{DiscountPercent: 20}
	variant := &entity.Variant{Price: 500, CompareAtPrice: &compareAt}

	resolution := Resolve(variant, product, &entity.StoreSettings{})

	assert.Equal(t, int64(800), resolution.OriginalPrice)
}

func TestResolve_Idempotent(t *testing.T) {
	product := &entity.Product{DiscountPercent: 15}
	variant := &entity.Variant{Price: 1234}
	settings := settingsWithGlobalDiscount("30")

	first := Resolve(variant, product, settings)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Resolve(variant, product, settings))
	}
}

func TestResolve_MalformedGlobalDiscountIgnored(t *testing.T) {
	product := &entity.Product{}
	variant := &entity.Variant{Price: 100}

	resolution := Resolve(variant, product, settingsWithGlobalDiscount("not-a-number"))

	assert.Equal(t, int64(0), resolution.DiscountPercent)
	assert.Equal(t, int64(100), resolution.FinalPrice)
}

func TestSyncLabels_OverwritesPercentageLabels(t *testing.T) {
	product := &entity.Product{
		DiscountPercent: 25,
		Labels: []entity.ProductLabel{
			{Kind: entity.LabelKindText, Value: "New"},
			{Kind: entity.LabelKindPercentage, Value: "99"},
		},
	}

	labels := SyncLabels(product, &entity.StoreSettings{})

	assert.Equal(t, "New", labels[0].Value)
	assert.Equal(t, "25", labels[1].Value)
	// Original product labels untouched.
	assert.Equal(t, "99", product.Labels[1].Value)
}

func TestSyncLabels_SynthesizesTransientLabel(t *testing.T) {
	product := &entity.Product{
		Labels: []entity.ProductLabel{{Kind: entity.LabelKindText, Value: "Sale"}},
	}

	labels := SyncLabels(product, settingsWithGlobalDiscount("10"))

	assert.Len(t, labels, 2)
	assert.Equal(t, entity.LabelKindPercentage, labels[1].Kind)
	assert.Equal(t, "10", labels[1].Value)
	assert.Len(t, product.Labels, 1)
}

func TestSyncLabels_NoDiscountNoSynthesis(t *testing.T) {
	product := &entity.Product{
		Labels: []entity.ProductLabel{{Kind: entity.LabelKindPercentage, Value: "50"}},
	}

	labels := SyncLabels(product, &entity.StoreSettings{})

	assert.Len(t, labels, 1)
	assert.Equal(t, "0", labels[0].Value)
}
