package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// CreateProduct persists a new product with its full variant set.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatesConstraint(err, "idx_products_slug") {
				return repository.ErrDuplicateSlug
			}

			return repository.ErrDuplicateSKU
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// UpdateProduct replaces a product and its variant set wholesale: the old
// variant rows are deleted and the expanded set inserted fresh.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	tx := repo.db.WithContext(ctx)
	if err := tx.Where("product_id = ?", product.ID).Delete(&model.VariantModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace variants")
	}

	if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatesConstraint(err, "idx_products_slug") {
				return repository.ErrDuplicateSlug
			}

			return repository.ErrDuplicateSKU
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindProductByID retrieves a product with its variants by ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Variants").
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindProductBySlug retrieves a product with its variants by slug.
func (repo *productRepository) FindProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Variants").
		Where("slug = ?", slug).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return toProductDomain(&productM), nil
}

// ListPublishedProducts retrieves active, published products ordered by creation time.
func (repo *productRepository) ListPublishedProducts(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Variants").
		Where("status = ? AND published = ?", string(entity.LifecycleActive), true).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, nil
}

// FindExistingSKUs returns which of the given SKUs are already taken by
// variants of other products.
func (repo *productRepository) FindExistingSKUs(ctx context.Context, skus []string, excludeProductID uuid.UUID) ([]string, error) {
	if len(skus) == 0 {
		return nil, nil
	}

	var taken []string
	err := repo.db.WithContext(ctx).
		Model(&model.VariantModel{}).
		Where("sku IN ? AND product_id <> ?", skus, excludeProductID).
		Pluck("sku", &taken).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find existing SKUs")
	}

	return taken, nil
}

// SetProductDiscount updates the product-level discount percent.
func (repo *productRepository) SetProductDiscount(ctx context.Context, id uuid.UUID, percent int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("discount_percent", percent)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set product discount")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// ReserveStock increments a variant's reserved counter as a single atomic
// update, guarded so the reservation never exceeds available stock.
func (repo *productRepository) ReserveStock(ctx context.Context, variantID uuid.UUID, qty int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VariantModel{}).
		Where("id = ? AND stock - stock_reserved >= ?", variantID, qty).
		Update("stock_reserved", gorm.Expr("stock_reserved + ?", qty))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to reserve stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStockConflict
	}

	return nil
}

// ReleaseStock decrements a variant's reserved counter, flooring at zero.
func (repo *productRepository) ReleaseStock(ctx context.Context, variantID uuid.UUID, qty int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VariantModel{}).
		Where("id = ?", variantID).
		Update("stock_reserved", gorm.Expr("GREATEST(stock_reserved - ?, 0)", qty))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to release stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVariantNotFound
	}

	return nil
}

// CommitStock converts a reservation into a hard deduction.
func (repo *productRepository) CommitStock(ctx context.Context, variantID uuid.UUID, qty int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VariantModel{}).
		Where("id = ?", variantID).
		Updates(map[string]any{
			"stock":          gorm.Expr("GREATEST(stock - ?, 0)", qty),
			"stock_reserved": gorm.Expr("GREATEST(stock_reserved - ?, 0)", qty),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to commit stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVariantNotFound
	}

	return nil
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	product := &entity.Product{
		ID:              data.ID,
		Slug:            data.Slug,
		Title:           data.Title,
		Description:     data.Description,
		CategoryID:      data.CategoryID,
		RequiresSizing:  data.RequiresSizing,
		DiscountPercent: data.DiscountPercent,
		Labels:          data.Labels,
		Status:          entity.LifecycleStatus(data.Status),
		Published:       data.Published,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	product.Variants = make([]entity.Variant, 0, len(data.Variants))
	for i := range data.Variants {
		variantM := &data.Variants[i]
		product.Variants = append(product.Variants, entity.Variant{
			ID:             variantM.ID,
			SKU:            variantM.SKU,
			Title:          variantM.Title,
			Price:          variantM.Price,
			CompareAtPrice: variantM.CompareAtPrice,
			Stock:          variantM.Stock,
			StockReserved:  variantM.StockReserved,
			Options:        variantM.Options,
			Published:      variantM.Published,
		})
	}

	return product
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	productM := &model.ProductModel{
		ID:              data.ID,
		Slug:            data.Slug,
		Title:           data.Title,
		Description:     data.Description,
		CategoryID:      data.CategoryID,
		RequiresSizing:  data.RequiresSizing,
		DiscountPercent: data.DiscountPercent,
		Labels:          data.Labels,
		Status:          string(data.Status),
		Published:       data.Published,
		CreatedAt:       data.CreatedAt,
	}

	productM.Variants = make([]model.VariantModel, 0, len(data.Variants))
	for i := range data.Variants {
		variant := &data.Variants[i]
		productM.Variants = append(productM.Variants, model.VariantModel{
			ID:             variant.ID,
			ProductID:      data.ID,
			SKU:            variant.SKU,
			Title:          variant.Title,
			Price:          variant.Price,
			CompareAtPrice: variant.CompareAtPrice,
			Stock:          variant.Stock,
			StockReserved:  variant.StockReserved,
			Options:        variant.Options,
			Published:      variant.Published,
		})
	}

	return productM
}
