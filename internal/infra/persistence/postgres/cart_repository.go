package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartRepository implements the domain.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// CreateCart persists a new, empty cart.
func (repo *cartRepository) CreateCart(ctx context.Context, cart *entity.Cart) error {
	cartM := fromCartDomain(cart)

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// FindCartByID retrieves a cart with its items by ID.
func (repo *cartRepository) FindCartByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by id")
	}

	return toCartDomain(&cartM), nil
}

// FindCartByOwner retrieves the cart belonging to a registered shopper.
func (repo *cartRepository) FindCartByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("owner_id = ?", ownerID).
		First(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by owner")
	}

	return toCartDomain(&cartM), nil
}

// AddItem appends a new line to the cart.
func (repo *cartRepository) AddItem(ctx context.Context, cartID uuid.UUID, item *entity.CartItem) error {
	itemM := &model.CartItemModel{
		ID:            item.ID,
		CartID:        cartID,
		VariantID:     item.VariantID,
		ProductID:     item.ProductID,
		Quantity:      item.Quantity,
		PriceSnapshot: item.PriceSnapshot,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	item.CreatedAt = itemM.CreatedAt

	return repo.touchCart(ctx, cartID)
}

// UpdateItemQuantity changes the quantity of an existing line. The line's
// price snapshot is never touched.
func (repo *cartRepository) UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Update("quantity", quantity)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return repo.touchCart(ctx, cartID)
}

// RemoveItem deletes a line from the cart.
func (repo *cartRepository) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return repo.touchCart(ctx, cartID)
}

// DeleteCart removes a cart; its items follow via the cascade constraint.
func (repo *cartRepository) DeleteCart(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CartModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart")
	}

	return nil
}

// DeleteExpiredCarts removes carts past their TTL and returns how many were removed.
func (repo *cartRepository) DeleteExpiredCarts(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.CartModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired carts")
	}

	return result.RowsAffected, nil
}

func (repo *cartRepository) touchCart(ctx context.Context, cartID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ?", cartID).
		Update("updated_at", time.Now()).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to touch cart")
	}

	return nil
}

func toCartDomain(data *model.CartModel) *entity.Cart {
	cart := &entity.Cart{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	cart.Items = make([]entity.CartItem, 0, len(data.Items))
	for i := range data.Items {
		itemM := &data.Items[i]
		cart.Items = append(cart.Items, entity.CartItem{
			ID:            itemM.ID,
			VariantID:     itemM.VariantID,
			ProductID:     itemM.ProductID,
			Quantity:      itemM.Quantity,
			PriceSnapshot: itemM.PriceSnapshot,
			CreatedAt:     itemM.CreatedAt,
		})
	}

	return cart
}

func fromCartDomain(data *entity.Cart) *model.CartModel {
	cartM := &model.CartModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		ExpiresAt: data.ExpiresAt,
	}

	cartM.Items = make([]model.CartItemModel, 0, len(data.Items))
	for i := range data.Items {
		item := &data.Items[i]
		cartM.Items = append(cartM.Items, model.CartItemModel{
			ID:            item.ID,
			CartID:        data.ID,
			VariantID:     item.VariantID,
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			PriceSnapshot: item.PriceSnapshot,
		})
	}

	return cartM
}
