package impl

import (
	"context"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Config: &config.Config{
			Cart: config.CartConfig{TTL: 72 * time.Hour},
		},
	})

	return cartServiceFixtures{
		service:     service,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func sellableProduct(stock int64) *entity.Product {
	return &entity.Product{
		ID:     uuid.New(),
		Slug:   "summer-tee",
		Title:  "Summer Tee",
		Status: entity.LifecycleActive,
		Variants: []entity.Variant{{
			ID:        uuid.New(),
			SKU:       "TEE-0-0",
			Title:     "red / s",
			Price:     500,
			Stock:     stock,
			Published: true,
		}},
		Published: true,
	}
}

func TestCartService_GetOrCreateCart_CreatesGuestCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().
		CreateCart(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	cart, err := fx.service.GetOrCreateCart(ctx, usecase.CartRef{})
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Nil(t, cart.OwnerID)
	assert.Empty(t, cart.Items)
	assert.WithinDuration(t, time.Now().Add(72*time.Hour), cart.ExpiresAt, time.Minute)
}

func TestCartService_GetOrCreateCart_ReturnsExistingOwnedCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	existing := &entity.Cart{
		ID:        uuid.New(),
		OwnerID:   &ownerID,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.cartRepo.EXPECT().
		FindCartByOwner(ctx, ownerID).
		Return(existing, nil)

	cart, err := fx.service.GetOrCreateCart(ctx, usecase.CartRef{OwnerID: &ownerID})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, cart.ID)
}

func TestCartService_GetOrCreateCart_ReplacesExpiredCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	expired := &entity.Cart{
		ID:        uuid.New(),
		OwnerID:   &ownerID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	fx.cartRepo.EXPECT().
		FindCartByOwner(ctx, ownerID).
		Return(expired, nil)
	fx.cartRepo.EXPECT().
		DeleteCart(ctx, expired.ID).
		Return(nil)
	fx.cartRepo.EXPECT().
		CreateCart(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	cart, err := fx.service.GetOrCreateCart(ctx, usecase.CartRef{OwnerID: &ownerID})
	require.NoError(t, err)
	assert.NotEqual(t, expired.ID, cart.ID)
}

func TestCartService_AddItem_AppendsNewLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	cartID := uuid.New()
	product := sellableProduct(10)
	variant := product.Variants[0]

	fx.cartRepo.EXPECT().
		FindCartByID(ctx, cartID).
		Return(&entity.Cart{ID: cartID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)
	fx.cartRepo.EXPECT().
		AddItem(ctx, cartID, mock.AnythingOfType("*entity.CartItem")).
		Return(nil)

	cart, err := fx.service.AddItem(ctx, usecase.CartRef{CartID: &cartID}, usecase.AddCartItemInput{
		ProductID: product.ID,
		VariantID: variant.ID,
		Quantity:  2,
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].Quantity)
	assert.Equal(t, int64(500), cart.Items[0].PriceSnapshot)
}

func TestCartService_AddItem_MergesIntoExistingLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	cartID := uuid.New()
	itemID := uuid.New()
	product := sellableProduct(10)
	variant := product.Variants[0]

	existing := &entity.Cart{
		ID:        cartID,
		ExpiresAt: time.Now().Add(time.Hour),
		Items: []entity.CartItem{{
			ID:            itemID,
			VariantID:     variant.ID,
			ProductID:     product.ID,
			Quantity:      2,
			PriceSnapshot: 400, // Captured before a price change; must not be refreshed.
		}},
	}

	fx.cartRepo.EXPECT().
		FindCartByID(ctx, cartID).
		Return(existing, nil)
	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)
	fx.cartRepo.EXPECT().
		UpdateItemQuantity(ctx, cartID, itemID, int64(5)).
		Return(nil)

	cart, err := fx.service.AddItem(ctx, usecase.CartRef{CartID: &cartID}, usecase.AddCartItemInput{
		ProductID: product.ID,
		VariantID: variant.ID,
		Quantity:  3,
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(5), cart.Items[0].Quantity)
	assert.Equal(t, int64(400), cart.Items[0].PriceSnapshot)
}

func TestCartService_AddItem_MergedQuantityExceedsStock(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	cartID := uuid.New()
	product := sellableProduct(4)
	variant := product.Variants[0]

	existing := &entity.Cart{
		ID:        cartID,
		ExpiresAt: time.Now().Add(time.Hour),
		Items: []entity.CartItem{{
			ID:        uuid.New(),
			VariantID: variant.ID,
			ProductID: product.ID,
			Quantity:  3,
		}},
	}

	fx.cartRepo.EXPECT().
		FindCartByID(ctx, cartID).
		Return(existing, nil)
	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)

	_, err := fx.service.AddItem(ctx, usecase.CartRef{CartID: &cartID}, usecase.AddCartItemInput{
		ProductID: product.ID,
		VariantID: variant.ID,
		Quantity:  2,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInsufficientStock.ErrorCode(), appErr.ErrorCode())
}

func TestCartService_AddItem_RejectsUnpublishedVariant(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	cartID := uuid.New()
	product := sellableProduct(10)
	product.Variants[0].Published = false

	fx.cartRepo.EXPECT().
		FindCartByID(ctx, cartID).
		Return(&entity.Cart{ID: cartID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)

	_, err := fx.service.AddItem(ctx, usecase.CartRef{CartID: &cartID}, usecase.AddCartItemInput{
		ProductID: product.ID,
		VariantID: product.Variants[0].ID,
		Quantity:  1,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrVariantNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestCartService_AddItem_RejectsZeroQuantity(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	cartID := uuid.New()

	_, err := fx.service.AddItem(ctx, usecase.CartRef{CartID: &cartID}, usecase.AddCartItemInput{
		ProductID: uuid.New(),
		VariantID: uuid.New(),
		Quantity:  0,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidQuantity.ErrorCode(), appErr.ErrorCode())
}

func TestCartService_AddItem_GuestCannotUseOwnedCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	cartID := uuid.New()
	ownerID := uuid.New()

	fx.cartRepo.EXPECT().
		FindCartByID(ctx, cartID).
		Return(&entity.Cart{ID: cartID, OwnerID: &ownerID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	// The owned cart is invisible to the guest; a fresh guest cart is created.
	fx.cartRepo.EXPECT().
		CreateCart(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)
	fx.productRepo.EXPECT().
		FindProductByID(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.AddItem(ctx, usecase.CartRef{CartID: &cartID}, usecase.AddCartItemInput{
		ProductID: uuid.New(),
		VariantID: uuid.New(),
		Quantity:  1,
	})
	require.Error(t, err)
}

func TestCartService_UpdateItem_ReChecksLiveStock(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	cartID := uuid.New()
	itemID := uuid.New()
	product := sellableProduct(3)
	variant := product.Variants[0]

	existing := &entity.Cart{
		ID:        cartID,
		ExpiresAt: time.Now().Add(time.Hour),
		Items: []entity.CartItem{{
			ID:        itemID,
			VariantID: variant.ID,
			ProductID: product.ID,
			Quantity:  1,
		}},
	}

	fx.cartRepo.EXPECT().
		FindCartByID(ctx, cartID).
		Return(existing, nil)
	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)

	_, err := fx.service.UpdateItem(ctx, usecase.CartRef{CartID: &cartID}, itemID, 5)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInsufficientStock.ErrorCode(), appErr.ErrorCode())
}

func TestCartService_UpdateItem_Success(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	cartID := uuid.New()
	itemID := uuid.New()
	product := sellableProduct(10)
	variant := product.Variants[0]

	existing := &entity.Cart{
		ID:        cartID,
		ExpiresAt: time.Now().Add(time.Hour),
		Items: []entity.CartItem{{
			ID:        itemID,
			VariantID: variant.ID,
			ProductID: product.ID,
			Quantity:  1,
		}},
	}

	fx.cartRepo.EXPECT().
		FindCartByID(ctx, cartID).
		Return(existing, nil)
	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)
	fx.cartRepo.EXPECT().
		UpdateItemQuantity(ctx, cartID, itemID, int64(4)).
		Return(nil)

	cart, err := fx.service.UpdateItem(ctx, usecase.CartRef{CartID: &cartID}, itemID, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), cart.Items[0].Quantity)
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	cartID := uuid.New()
	itemID := uuid.New()

	existing := &entity.Cart{
		ID:        cartID,
		ExpiresAt: time.Now().Add(time.Hour),
		Items: []entity.CartItem{{
			ID:        itemID,
			VariantID: uuid.New(),
			ProductID: uuid.New(),
			Quantity:  1,
		}},
	}

	fx.cartRepo.EXPECT().
		FindCartByID(ctx, cartID).
		Return(existing, nil)
	fx.cartRepo.EXPECT().
		RemoveItem(ctx, cartID, itemID).
		Return(nil)

	err := fx.service.RemoveItem(ctx, usecase.CartRef{CartID: &cartID}, itemID)
	require.NoError(t, err)
}

func TestCartService_RemoveItem_UnknownLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	cartID := uuid.New()

	fx.cartRepo.EXPECT().
		FindCartByID(ctx, cartID).
		Return(&entity.Cart{ID: cartID, ExpiresAt: time.Now().Add(time.Hour)}, nil)

	err := fx.service.RemoveItem(ctx, usecase.CartRef{CartID: &cartID}, uuid.New())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrCartItemNotFound.ErrorCode(), appErr.ErrorCode())
}
