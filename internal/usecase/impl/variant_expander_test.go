package impl

import (
	"fmt"
	"testing"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func selections(valueIDs ...string) []usecase.OptionSelection {
	out := make([]usecase.OptionSelection, 0, len(valueIDs))
	for _, id := range valueIDs {
		out = append(out, usecase.OptionSelection{ValueID: id})
	}

	return out
}

func TestExpandVariantTemplates_CartesianProduct(t *testing.T) {
	input := usecase.UpsertProductInput{
		Slug: "summer-tee",
		Templates: []usecase.VariantTemplate{{
			SKU:    "TEE",
			Price:  500,
			Stock:  10,
			Colors: selections("red", "blue"),
			Sizes:  selections("s", "m", "l"),
		}},
	}

	variants, err := expandVariantTemplates(input, time.Now())
	require.NoError(t, err)
	require.Len(t, variants, 6)

	seen := make(map[string]bool)
	for _, v := range variants {
		color, ok := v.OptionValue("color")
		require.True(t, ok)
		size, ok := v.OptionValue("size")
		require.True(t, ok)
		seen[color+"/"+size] = true

		assert.Equal(t, int64(500), v.Price)
		assert.Equal(t, int64(10), v.Stock)
	}
	assert.Len(t, seen, 6)
}

func TestExpandVariantTemplates_PositionalSKUSuffix(t *testing.T) {
	input := usecase.UpsertProductInput{
		Slug: "summer-tee",
		Templates: []usecase.VariantTemplate{{
			SKU:    "TEE",
			Price:  500,
			Colors: selections("red", "blue"),
			Sizes:  selections("s", "m"),
		}},
	}

	variants, err := expandVariantTemplates(input, time.Now())
	require.NoError(t, err)
	require.Len(t, variants, 4)

	skus := make([]string, 0, len(variants))
	for _, v := range variants {
		skus = append(skus, v.SKU)
	}
	assert.ElementsMatch(t, []string{"TEE-0-0", "TEE-0-1", "TEE-1-0", "TEE-1-1"}, skus)
}

func TestExpandVariantTemplates_SingleVariantKeepsBaseSKU(t *testing.T) {
	input := usecase.UpsertProductInput{
		Slug: "mug",
		Templates: []usecase.VariantTemplate{{
			SKU:   "MUG-01",
			Price: 150,
			Stock: 3,
		}},
	}

	variants, err := expandVariantTemplates(input, time.Now())
	require.NoError(t, err)
	require.Len(t, variants, 1)

	assert.Equal(t, "MUG-01", variants[0].SKU)
	assert.Equal(t, "Default", variants[0].Title)
	assert.Empty(t, variants[0].Options)
}

func TestExpandVariantTemplates_SynthesizesSKUFromSlug(t *testing.T) {
	now := time.Now()
	input := usecase.UpsertProductInput{
		Slug: "mug",
		Templates: []usecase.VariantTemplate{{
			Price:  150,
			Colors: selections("white"),
		}},
	}

	variants, err := expandVariantTemplates(input, now)
	require.NoError(t, err)
	require.Len(t, variants, 1)

	assert.Equal(t, fmt.Sprintf("mug-%d-0-0", now.Unix()), variants[0].SKU)
}

func TestExpandVariantTemplates_SizeStockWinsWhenSizingRequired(t *testing.T) {
	input := usecase.UpsertProductInput{
		Slug:           "runner",
		RequiresSizing: true,
		Templates: []usecase.VariantTemplate{{
			SKU:   "RUN",
			Price: 900,
			Stock: 50,
			Colors: []usecase.OptionSelection{
				{ValueID: "black", Stock: int64Ptr(20)},
			},
			Sizes: []usecase.OptionSelection{
				{ValueID: "42", Stock: int64Ptr(7)},
				{ValueID: "43"},
			},
		}},
	}

	variants, err := expandVariantTemplates(input, time.Now())
	require.NoError(t, err)
	require.Len(t, variants, 2)

	byTitle := make(map[string]int64, 2)
	for _, v := range variants {
		byTitle[v.Title] = v.Stock
	}
	// Size-level stock wins; without it the color-level stock applies.
	assert.Equal(t, int64(7), byTitle["black / 42"])
	assert.Equal(t, int64(20), byTitle["black / 43"])
}

func TestExpandVariantTemplates_ColorStockWinsWithoutSizing(t *testing.T) {
	input := usecase.UpsertProductInput{
		Slug: "tote",
		Templates: []usecase.VariantTemplate{{
			SKU:   "TOTE",
			Price: 300,
			Stock: 12,
			Colors: []usecase.OptionSelection{
				{ValueID: "green", Stock: int64Ptr(4)},
				{ValueID: "navy"},
			},
		}},
	}

	variants, err := expandVariantTemplates(input, time.Now())
	require.NoError(t, err)
	require.Len(t, variants, 2)

	byTitle := make(map[string]int64, 2)
	for _, v := range variants {
		byTitle[v.Title] = v.Stock
	}
	assert.Equal(t, int64(4), byTitle["green"])
	assert.Equal(t, int64(12), byTitle["navy"])
}

func TestExpandVariantTemplates_RequiresSizingWithoutSizes(t *testing.T) {
	input := usecase.UpsertProductInput{
		Slug:           "runner",
		RequiresSizing: true,
		Templates: []usecase.VariantTemplate{{
			SKU:    "RUN",
			Price:  900,
			Colors: selections("black"),
		}},
	}

	_, err := expandVariantTemplates(input, time.Now())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrSizeRequired.ErrorCode(), appErr.ErrorCode())
}

func TestExpandVariantTemplates_RejectsNonPositivePrice(t *testing.T) {
	input := usecase.UpsertProductInput{
		Slug: "mug",
		Templates: []usecase.VariantTemplate{{
			SKU:   "MUG",
			Price: 0,
		}},
	}

	_, err := expandVariantTemplates(input, time.Now())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidPrice.ErrorCode(), appErr.ErrorCode())
}

func TestExpandVariantTemplates_RejectsDuplicateCombination(t *testing.T) {
	input := usecase.UpsertProductInput{
		Slug: "tote",
		Templates: []usecase.VariantTemplate{
			{SKU: "TOTE-A", Price: 300, Colors: selections("green")},
			{SKU: "TOTE-B", Price: 350, Colors: selections("green")},
		},
	}

	_, err := expandVariantTemplates(input, time.Now())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestExpandVariantTemplates_LargeGridHasUniqueSKUs(t *testing.T) {
	colors := make([]usecase.OptionSelection, 5)
	sizes := make([]usecase.OptionSelection, 5)
	for i := 0; i < 5; i++ {
		colors[i] = usecase.OptionSelection{ValueID: fmt.Sprintf("c%d", i)}
		sizes[i] = usecase.OptionSelection{ValueID: fmt.Sprintf("s%d", i)}
	}

	input := usecase.UpsertProductInput{
		Slug: "grid",
		Templates: []usecase.VariantTemplate{{
			SKU:    "GRID",
			Price:  100,
			Colors: colors,
			Sizes:  sizes,
		}},
	}

	variants, err := expandVariantTemplates(input, time.Now())
	require.NoError(t, err)
	require.Len(t, variants, 25)

	seen := make(map[string]bool, 25)
	for _, v := range variants {
		assert.False(t, seen[v.SKU], "duplicate SKU %s", v.SKU)
		seen[v.SKU] = true
	}
}

func TestDedupeSKUs_AppendsRandomSuffixOnCollision(t *testing.T) {
	now := time.Now()
	input := usecase.UpsertProductInput{
		Slug: "mug",
		Templates: []usecase.VariantTemplate{
			{SKU: "MUG", Price: 100, Colors: selections("white")},
			{SKU: "MUG", Price: 100, Colors: selections("black")},
		},
	}

	variants, err := expandVariantTemplates(input, now)
	require.NoError(t, err)
	require.Len(t, variants, 2)

	assert.Equal(t, "MUG", variants[0].SKU)
	assert.NotEqual(t, variants[0].SKU, variants[1].SKU)
	assert.Contains(t, variants[1].SKU, "MUG-")
}
