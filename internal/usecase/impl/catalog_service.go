// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	cachePrefixCatalog = "catalog:"
	defaultCatalogTTL  = 5 * time.Minute
)

type catalogService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
	cache        service.Cache
	logger       *slog.Logger
	cfg          *config.Config
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	SettingsRepo repository.SettingsRepository
	Cache        service.Cache
	Logger       *slog.Logger
	Config       *config.Config
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		settingsRepo: params.SettingsRepo,
		cache:        params.Cache,
		logger:       params.Logger,
		cfg:          params.Config,
	}
}

// UpsertProduct expands the variant templates and creates or replaces the
// product inside a single transaction. The admin-side catalog-wide SKU check
// runs before the write; it is check-then-act, which is acceptable on this
// low-frequency operator-driven path because the unique index is the backstop.
func (s *catalogService) UpsertProduct(ctx context.Context, input usecase.UpsertProductInput) (*entity.Product, error) {
	if input.DiscountPercent < 0 || input.DiscountPercent > 100 {
		return nil, domainerrors.ErrInvalidDiscount
	}

	variants, err := expandVariantTemplates(input, time.Now())
	if err != nil {
		return nil, err
	}

	excludeID := uuid.Nil
	if input.ID != nil {
		excludeID = *input.ID
	}
	skus := make([]string, 0, len(variants))
	for i := range variants {
		skus = append(skus, variants[i].SKU)
	}
	taken, err := s.productRepo.FindExistingSKUs(ctx, skus, excludeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing SKUs")
	}
	if len(taken) > 0 {
		return nil, domainerrors.ErrDuplicateSKU.WithDetails(strings.Join(taken, ", "))
	}

	product := &entity.Product{
		Slug:            input.Slug,
		Title:           input.Title,
		Description:     input.Description,
		CategoryID:      input.CategoryID,
		RequiresSizing:  input.RequiresSizing,
		DiscountPercent: input.DiscountPercent,
		Labels:          input.Labels,
		Variants:        variants,
		Status:          entity.LifecycleActive,
		Published:       input.Published,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txProducts := factory.NewProductRepository()

		if input.ID == nil {
			product.ID = uuid.New()

			return txProducts.CreateProduct(ctx, product)
		}

		existing, findErr := txProducts.FindProductByID(ctx, *input.ID)
		if findErr != nil {
			return findErr
		}
		product.ID = existing.ID
		product.CreatedAt = existing.CreatedAt

		return txProducts.UpdateProduct(ctx, product)
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return nil, domainerrors.ErrProductNotFound
		case errors.Is(err, repository.ErrDuplicateSlug):
			return nil, domainerrors.ErrDuplicateSlug
		case errors.Is(err, repository.ErrDuplicateSKU):
			return nil, domainerrors.ErrDuplicateSKU
		default:
			return nil, errors.Wrap(err, "failed to upsert product")
		}
	}

	s.invalidateCatalogCache(ctx)

	return product, nil
}

// SetProductDiscount updates the product-level discount percent.
func (s *catalogService) SetProductDiscount(ctx context.Context, productID uuid.UUID, percent int64) error {
	if percent < 0 || percent > 100 {
		return domainerrors.ErrInvalidDiscount
	}

	if err := s.productRepo.SetProductDiscount(ctx, productID, percent); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to set product discount")
	}

	s.invalidateCatalogCache(ctx)

	return nil
}

// SetGlobalDiscount updates the store-wide discount percent.
func (s *catalogService) SetGlobalDiscount(ctx context.Context, percent int64) error {
	if percent < 0 || percent > 100 {
		return domainerrors.ErrInvalidDiscount
	}

	if err := s.settingsRepo.SetSetting(ctx, entity.SettingGlobalDiscount, strconv.FormatInt(percent, 10)); err != nil {
		return errors.Wrap(err, "failed to set global discount")
	}

	s.invalidateCatalogCache(ctx)

	return nil
}

// GetProduct returns the storefront view of a published product, read through
// the best-effort cache.
func (s *catalogService) GetProduct(ctx context.Context, slug string) (*usecase.ProductView, error) {
	cacheKey := cachePrefixCatalog + "product:" + slug
	if view, ok := s.cachedView(ctx, cacheKey); ok {
		return view, nil
	}

	product, err := s.productRepo.FindProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}
	if !product.IsSellable() {
		return nil, domainerrors.ErrProductNotFound
	}

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load store settings")
	}

	view := buildProductView(product, settings)
	s.cacheView(ctx, cacheKey, view)

	return view, nil
}

// ListProducts returns storefront views of published products.
func (s *catalogService) ListProducts(ctx context.Context, limit, offset int) ([]*usecase.ProductView, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	cacheKey := fmt.Sprintf("%sproducts:%d:%d", cachePrefixCatalog, limit, offset)
	if views, ok := s.cachedViews(ctx, cacheKey); ok {
		return views, nil
	}

	products, err := s.productRepo.ListPublishedProducts(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published products")
	}

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load store settings")
	}

	views := make([]*usecase.ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, buildProductView(product, settings))
	}

	s.cacheViewList(ctx, cacheKey, views)

	return views, nil
}

// buildProductView resolves per-variant pricing and synchronizes display
// labels with the active discount.
func buildProductView(product *entity.Product, settings *entity.StoreSettings) *usecase.ProductView {
	view := &usecase.ProductView{
		Product: product,
		Labels:  pricing.SyncLabels(product, settings),
		Pricing: make(map[string]pricing.Resolution, len(product.Variants)),
	}

	for i := range product.Variants {
		variant := &product.Variants[i]
		if !variant.Published {
			continue
		}
		view.Pricing[variant.ID.String()] = pricing.Resolve(variant, product, settings)
	}

	return view
}

// Cache helpers. Every failure is advisory: logged and swallowed, never
// surfaced to the caller.

func (s *catalogService) cachedView(ctx context.Context, key string) (*usecase.ProductView, bool) {
	payload, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, service.ErrCacheMiss) {
			s.logger.Warn("catalog cache read failed", slog.String("key", key), slog.Any("error", err))
		}

		return nil, false
	}

	var view usecase.ProductView
	if err := json.Unmarshal(payload, &view); err != nil {
		s.logger.Warn("catalog cache payload corrupt", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}

	return &view, true
}

func (s *catalogService) cachedViews(ctx context.Context, key string) ([]*usecase.ProductView, bool) {
	payload, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, service.ErrCacheMiss) {
			s.logger.Warn("catalog cache read failed", slog.String("key", key), slog.Any("error", err))
		}

		return nil, false
	}

	var views []*usecase.ProductView
	if err := json.Unmarshal(payload, &views); err != nil {
		s.logger.Warn("catalog cache payload corrupt", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}

	return views, true
}

func (s *catalogService) cacheView(ctx context.Context, key string, view *usecase.ProductView) {
	payload, err := json.Marshal(view)
	if err != nil {
		return
	}
	if err := s.cache.SetWithTTL(ctx, key, payload, s.catalogTTL()); err != nil {
		s.logger.Warn("catalog cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (s *catalogService) cacheViewList(ctx context.Context, key string, views []*usecase.ProductView) {
	payload, err := json.Marshal(views)
	if err != nil {
		return
	}
	if err := s.cache.SetWithTTL(ctx, key, payload, s.catalogTTL()); err != nil {
		s.logger.Warn("catalog cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (s *catalogService) invalidateCatalogCache(ctx context.Context) {
	if err := s.cache.DeleteByPrefix(ctx, cachePrefixCatalog); err != nil {
		s.logger.Warn("catalog cache invalidation failed", slog.Any("error", err))
	}
}

func (s *catalogService) catalogTTL() time.Duration {
	if s.cfg != nil && s.cfg.Redis != nil && s.cfg.Redis.CatalogTTL > 0 {
		return s.cfg.Redis.CatalogTTL
	}

	return defaultCatalogTTL
}
