package impl

import (
	"context"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	cfg         *config.Config
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Config      *config.Config
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		cfg:         params.Config,
	}
}

// GetOrCreateCart returns the referenced cart, lazily creating an empty one
// with the configured TTL when none exists or the existing one has expired.
func (s *cartService) GetOrCreateCart(ctx context.Context, ref usecase.CartRef) (*entity.Cart, error) {
	cart, err := s.findCart(ctx, ref)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, err
	}

	return s.createCart(ctx, ref.OwnerID)
}

// AddItem re-validates the variant against the live catalog and merges the
// quantity into an existing line for the same variant, or appends a new line
// with the price snapshot captured now.
func (s *cartService) AddItem(ctx context.Context, ref usecase.CartRef, input usecase.AddCartItemInput) (*entity.Cart, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	cart, err := s.GetOrCreateCart(ctx, ref)
	if err != nil {
		return nil, err
	}

	_, variant, err := s.fetchSellableVariant(ctx, input.ProductID, input.VariantID)
	if err != nil {
		return nil, err
	}

	if line, ok := cart.ItemByVariant(input.VariantID); ok {
		// Same variant: quantity accumulates on the existing line. The price
		// snapshot stays as captured at first add.
		newQuantity := line.Quantity + input.Quantity
		if variant.Stock < newQuantity {
			return nil, domainerrors.ErrInsufficientStock
		}
		if err := s.cartRepo.UpdateItemQuantity(ctx, cart.ID, line.ID, newQuantity); err != nil {
			return nil, errors.Wrap(err, "failed to update cart item quantity")
		}
		line.Quantity = newQuantity

		return cart, nil
	}

	if variant.Stock < input.Quantity {
		return nil, domainerrors.ErrInsufficientStock
	}

	line := &entity.CartItem{
		ID:            uuid.New(),
		VariantID:     input.VariantID,
		ProductID:     input.ProductID,
		Quantity:      input.Quantity,
		PriceSnapshot: variant.Price,
		CreatedAt:     time.Now(),
	}
	if err := s.cartRepo.AddItem(ctx, cart.ID, line); err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}
	cart.Items = append(cart.Items, *line)

	return cart, nil
}

// UpdateItem changes a line's quantity after re-checking live stock. The
// price snapshot is never refreshed.
func (s *cartService) UpdateItem(ctx context.Context, ref usecase.CartRef, itemID uuid.UUID, quantity int64) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	cart, err := s.findCart(ctx, ref)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartNotFound
		}

		return nil, err
	}

	line, ok := cart.ItemByID(itemID)
	if !ok {
		return nil, domainerrors.ErrCartItemNotFound
	}

	_, variant, err := s.fetchSellableVariant(ctx, line.ProductID, line.VariantID)
	if err != nil {
		return nil, err
	}
	if variant.Stock < quantity {
		return nil, domainerrors.ErrInsufficientStock
	}

	if err := s.cartRepo.UpdateItemQuantity(ctx, cart.ID, itemID, quantity); err != nil {
		return nil, errors.Wrap(err, "failed to update cart item quantity")
	}
	line.Quantity = quantity

	return cart, nil
}

// RemoveItem removes a line from the cart. No stock side effect: nothing is
// reserved at cart stage.
func (s *cartService) RemoveItem(ctx context.Context, ref usecase.CartRef, itemID uuid.UUID) error {
	cart, err := s.findCart(ctx, ref)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return domainerrors.ErrCartNotFound
		}

		return err
	}

	if _, ok := cart.ItemByID(itemID); !ok {
		return domainerrors.ErrCartItemNotFound
	}

	if err := s.cartRepo.RemoveItem(ctx, cart.ID, itemID); err != nil {
		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

// findCart resolves a cart reference: by owner for registered shoppers, by
// cart ID for guests. Expired carts are treated as absent.
func (s *cartService) findCart(ctx context.Context, ref usecase.CartRef) (*entity.Cart, error) {
	var cart *entity.Cart
	var err error

	switch {
	case ref.OwnerID != nil:
		cart, err = s.cartRepo.FindCartByOwner(ctx, *ref.OwnerID)
	case ref.CartID != nil:
		cart, err = s.cartRepo.FindCartByID(ctx, *ref.CartID)
	default:
		return nil, repository.ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}

	// A guest must not resolve someone else's owned cart by ID.
	if ref.OwnerID == nil && cart.OwnerID != nil {
		return nil, repository.ErrCartNotFound
	}

	if cart.IsExpired(time.Now()) {
		if delErr := s.cartRepo.DeleteCart(ctx, cart.ID); delErr != nil {
			return nil, errors.Wrap(delErr, "failed to delete expired cart")
		}

		return nil, repository.ErrCartNotFound
	}

	return cart, nil
}

func (s *cartService) createCart(ctx context.Context, ownerID *uuid.UUID) (*entity.Cart, error) {
	now := time.Now()
	cart := &entity.Cart{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Items:     []entity.CartItem{},
		ExpiresAt: now.Add(s.cfg.Cart.TTL),
		CreatedAt: now,
	}

	if err := s.cartRepo.CreateCart(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	return cart, nil
}

// fetchSellableVariant loads the owning product and the specific variant from
// the live catalog, rejecting anything deleted or unpublished.
func (s *cartService) fetchSellableVariant(ctx context.Context, productID, variantID uuid.UUID) (*entity.Product, *entity.Variant, error) {
	return fetchSellableVariant(ctx, s.productRepo, productID, variantID)
}

func fetchSellableVariant(ctx context.Context, products repository.ProductRepository, productID, variantID uuid.UUID) (*entity.Product, *entity.Variant, error) {
	product, err := products.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, nil, domainerrors.ErrProductNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find product")
	}
	if !product.IsSellable() {
		return nil, nil, domainerrors.ErrProductNotFound
	}

	variant, ok := product.VariantByID(variantID)
	if !ok || !variant.Published {
		return nil, nil, domainerrors.ErrVariantNotFound
	}

	return product, variant, nil
}
