package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrVariantNotFound is returned when a variant is not found.
	ErrVariantNotFound = errors.New("variant not found")
	// ErrDuplicateSlug is returned when a product slug already exists.
	ErrDuplicateSlug = errors.New("product slug already exists")
	// ErrDuplicateSKU is returned when a variant SKU already exists catalog-wide.
	ErrDuplicateSKU = errors.New("variant SKU already exists")
	// ErrStockConflict is returned when a reservation would exceed available stock.
	ErrStockConflict = errors.New("insufficient stock for reservation")
)

// ProductRepository defines the interface for product-related database operations.
// The product is the aggregate root: its variant list is created and replaced
// wholesale, never patched row by row.
type ProductRepository interface {
	// CreateProduct persists a new product with its full variant set.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// UpdateProduct replaces a product and its variant set wholesale.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product with its variants by ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductBySlug retrieves a product with its variants by slug.
	FindProductBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// ListPublishedProducts retrieves active, published products ordered by creation time.
	ListPublishedProducts(ctx context.Context, limit, offset int) ([]*entity.Product, error)

	// FindExistingSKUs returns which of the given SKUs are already taken by
	// variants of other products. Used for the catalog-wide uniqueness check
	// on the admin edit path (check-then-act; the unique index is the backstop).
	FindExistingSKUs(ctx context.Context, skus []string, excludeProductID uuid.UUID) ([]string, error)

	// SetProductDiscount updates the product-level discount percent.
	SetProductDiscount(ctx context.Context, id uuid.UUID, percent int64) error

	// ReserveStock increments a variant's reserved counter by qty as a single
	// atomic per-record update. It does not decrement stock itself.
	ReserveStock(ctx context.Context, variantID uuid.UUID, qty int64) error

	// ReleaseStock decrements a variant's reserved counter by qty, flooring at zero.
	ReleaseStock(ctx context.Context, variantID uuid.UUID, qty int64) error

	// CommitStock converts a reservation into a hard deduction: stock and the
	// reserved counter both decrease by qty.
	CommitStock(ctx context.Context, variantID uuid.UUID, qty int64) error
}
