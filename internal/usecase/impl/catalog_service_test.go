package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	t            *testing.T
	service      usecase.CatalogUsecase
	txManager    *mockRepo.MockTransactionManager
	productRepo  *mockRepo.MockProductRepository
	settingsRepo *mockRepo.MockSettingsRepository
	cache        *mockService.MockCache
}

func createTestCatalogService(t *testing.T) *catalogServiceFixtures {
	fx := &catalogServiceFixtures{
		t:            t,
		txManager:    mockRepo.NewMockTransactionManager(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		settingsRepo: mockRepo.NewMockSettingsRepository(t),
		cache:        mockService.NewMockCache(t),
	}

	fx.service = NewCatalogService(CatalogServiceParams{
		TxManager:    fx.txManager,
		ProductRepo:  fx.productRepo,
		SettingsRepo: fx.settingsRepo,
		Cache:        fx.cache,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config:       &config.Config{},
	})

	return fx
}

// onExecute routes the transactional block through a factory handing out the
// returned product repository mock.
func (f *catalogServiceFixtures) onExecute(ctx context.Context) *mockRepo.MockProductRepository {
	txProducts := mockRepo.NewMockProductRepository(f.t)
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			factory.EXPECT().NewProductRepository().Return(txProducts)

			return fn(factory)
		})

	return txProducts
}

func TestCatalogService_UpsertProduct_CreatesProduct(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindExistingSKUs(ctx, []string{"TEE-0-0", "TEE-0-1"}, uuid.Nil).
		Return(nil, nil)

	txProducts := fx.onExecute(ctx)
	var created *entity.Product
	txProducts.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			created = product
		}).
		Return(nil)

	fx.cache.EXPECT().DeleteByPrefix(ctx, "catalog:").Return(nil)

	product, err := fx.service.UpsertProduct(ctx, usecase.UpsertProductInput{
		Slug:      "summer-tee",
		Title:     "Summer Tee",
		Published: true,
		Templates: []usecase.VariantTemplate{{
			SKU:       "TEE",
			Price:     500,
			Stock:     10,
			Sizes:     selections("s", "m"),
			Published: true,
		}},
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, created.ID, product.ID)
	assert.Equal(t, entity.LifecycleActive, product.Status)
	require.Len(t, product.Variants, 2)
	assert.Equal(t, "TEE-0-0", product.Variants[0].SKU)
	assert.Equal(t, "TEE-0-1", product.Variants[1].SKU)
}

func TestCatalogService_UpsertProduct_RejectsTakenSKUs(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindExistingSKUs(ctx, []string{"MUG-01"}, uuid.Nil).
		Return([]string{"MUG-01"}, nil)

	_, err := fx.service.UpsertProduct(ctx, usecase.UpsertProductInput{
		Slug:  "mug",
		Title: "Mug",
		Templates: []usecase.VariantTemplate{{
			SKU:   "MUG-01",
			Price: 150,
		}},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrDuplicateSKU.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "MUG-01")
}

func TestCatalogService_UpsertProduct_UpdateReplacesVariants(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindExistingSKUs(ctx, []string{"MUG-02"}, productID).
		Return(nil, nil)

	txProducts := fx.onExecute(ctx)
	existing := &entity.Product{ID: productID, Slug: "mug", CreatedAt: time.Now().Add(-time.Hour)}
	txProducts.EXPECT().FindProductByID(ctx, productID).Return(existing, nil)
	txProducts.EXPECT().
		UpdateProduct(ctx, mock.MatchedBy(func(product *entity.Product) bool {
			return product.ID == productID && len(product.Variants) == 1
		})).
		Return(nil)

	fx.cache.EXPECT().DeleteByPrefix(ctx, "catalog:").Return(nil)

	product, err := fx.service.UpsertProduct(ctx, usecase.UpsertProductInput{
		ID:    &productID,
		Slug:  "mug",
		Title: "Mug",
		Templates: []usecase.VariantTemplate{{
			SKU:   "MUG-02",
			Price: 200,
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, productID, product.ID)
	assert.Equal(t, existing.CreatedAt, product.CreatedAt)
}

func TestCatalogService_UpsertProduct_RejectsInvalidDiscount(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.UpsertProduct(context.Background(), usecase.UpsertProductInput{
		Slug:            "mug",
		Title:           "Mug",
		DiscountPercent: 101,
		Templates:       []usecase.VariantTemplate{{SKU: "MUG", Price: 100}},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidDiscount.ErrorCode(), appErr.ErrorCode())
}

func TestCatalogService_SetGlobalDiscount_PersistsSetting(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.settingsRepo.EXPECT().
		SetSetting(ctx, entity.SettingGlobalDiscount, "25").
		Return(nil)
	fx.cache.EXPECT().DeleteByPrefix(ctx, "catalog:").Return(nil)

	require.NoError(t, fx.service.SetGlobalDiscount(ctx, 25))
}

func TestCatalogService_SetProductDiscount_UnknownProduct(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		SetProductDiscount(ctx, productID, int64(10)).
		Return(repository.ErrProductNotFound)

	err := fx.service.SetProductDiscount(ctx, productID, 10)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProductNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestCatalogService_GetProduct_CacheMissReadsThrough(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	product := sellableProduct(10)
	product.DiscountPercent = 20

	fx.cache.EXPECT().
		Get(ctx, "catalog:product:summer-tee").
		Return(nil, service.ErrCacheMiss)
	fx.productRepo.EXPECT().
		FindProductBySlug(ctx, "summer-tee").
		Return(product, nil)
	fx.settingsRepo.EXPECT().GetSettings(ctx).Return(&entity.StoreSettings{}, nil)
	fx.cache.EXPECT().
		SetWithTTL(ctx, "catalog:product:summer-tee", mock.AnythingOfType("[]uint8"), 5*time.Minute).
		Return(nil)

	view, err := fx.service.GetProduct(ctx, "summer-tee")
	require.NoError(t, err)

	resolution, ok := view.Pricing[product.Variants[0].ID.String()]
	require.True(t, ok)
	assert.Equal(t, int64(400), resolution.FinalPrice)
	assert.Equal(t, int64(500), resolution.OriginalPrice)

	// The active discount is surfaced as a synthesized percentage label.
	require.Len(t, view.Labels, 1)
	assert.Equal(t, entity.LabelKindPercentage, view.Labels[0].Kind)
	assert.Equal(t, "20", view.Labels[0].Value)
}

func TestCatalogService_GetProduct_CacheHitSkipsRepositories(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	cached := &usecase.ProductView{
		Product: &entity.Product{Slug: "summer-tee", Title: "Summer Tee"},
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	fx.cache.EXPECT().
		Get(ctx, "catalog:product:summer-tee").
		Return(payload, nil)

	view, err := fx.service.GetProduct(ctx, "summer-tee")
	require.NoError(t, err)
	assert.Equal(t, "Summer Tee", view.Product.Title)
}

func TestCatalogService_GetProduct_CacheFailureFallsThrough(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	product := sellableProduct(10)

	fx.cache.EXPECT().
		Get(ctx, "catalog:product:summer-tee").
		Return(nil, assert.AnError)
	fx.productRepo.EXPECT().
		FindProductBySlug(ctx, "summer-tee").
		Return(product, nil)
	fx.settingsRepo.EXPECT().GetSettings(ctx).Return(&entity.StoreSettings{}, nil)
	fx.cache.EXPECT().
		SetWithTTL(ctx, "catalog:product:summer-tee", mock.AnythingOfType("[]uint8"), 5*time.Minute).
		Return(assert.AnError)

	// Both the read and write failures are swallowed.
	view, err := fx.service.GetProduct(ctx, "summer-tee")
	require.NoError(t, err)
	assert.Equal(t, product.ID, view.Product.ID)
}

func TestCatalogService_GetProduct_HiddenProduct(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	hidden := sellableProduct(10)
	hidden.Published = false

	fx.cache.EXPECT().
		Get(ctx, "catalog:product:summer-tee").
		Return(nil, service.ErrCacheMiss)
	fx.productRepo.EXPECT().
		FindProductBySlug(ctx, "summer-tee").
		Return(hidden, nil)

	_, err := fx.service.GetProduct(ctx, "summer-tee")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProductNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestCatalogService_ListProducts_GlobalDiscountApplied(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	product := sellableProduct(10)

	fx.cache.EXPECT().
		Get(ctx, "catalog:products:20:0").
		Return(nil, service.ErrCacheMiss)
	fx.productRepo.EXPECT().
		ListPublishedProducts(ctx, 20, 0).
		Return([]*entity.Product{product}, nil)
	fx.settingsRepo.EXPECT().GetSettings(ctx).Return(&entity.StoreSettings{
		Values: map[string]string{entity.SettingGlobalDiscount: "10"},
	}, nil)
	fx.cache.EXPECT().
		SetWithTTL(ctx, "catalog:products:20:0", mock.AnythingOfType("[]uint8"), 5*time.Minute).
		Return(nil)

	views, err := fx.service.ListProducts(ctx, 0, -1)
	require.NoError(t, err)
	require.Len(t, views, 1)

	resolution := views[0].Pricing[product.Variants[0].ID.String()]
	assert.Equal(t, int64(450), resolution.FinalPrice)
	assert.Equal(t, int64(10), resolution.DiscountPercent)
}
