package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
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

const defaultOrderNumberRetries = 5

type checkoutService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	settings    repository.SettingsRepository
	cache       service.Cache
	publisher   service.OrderEventPublisher
	gateway     service.PaymentGateway
	logger      *slog.Logger
	cfg         *config.Config
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	ProductRepo  repository.ProductRepository
	CartRepo     repository.CartRepository
	SettingsRepo repository.SettingsRepository
	Cache        service.Cache
	Publisher    service.OrderEventPublisher
	Gateway      service.PaymentGateway
	Logger       *slog.Logger
	Config       *config.Config
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		cartRepo:    params.CartRepo,
		settings:    params.SettingsRepo,
		cache:       params.Cache,
		publisher:   params.Publisher,
		gateway:     params.Gateway,
		logger:      params.Logger,
		cfg:         params.Config,
	}
}

// checkoutLine is one resolved, validated, priced line ready to be settled
// into an order item.
type checkoutLine struct {
	product  *entity.Product
	variant  *entity.Variant
	quantity int64
	price    pricing.Resolution
}

// CreateOrder turns the referenced cart (or the inline guest item list) into
// a settled order. Every line is re-validated against the live catalog before
// anything is written: the first miss aborts the whole checkout with nothing
// persisted. After the order row is committed, inventory is reserved per line
// as independent updates; a reservation failure releases what was already
// taken and cancels the order.
func (s *checkoutService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*usecase.CheckoutResult, error) {
	sources, cartID, err := s.resolveLineSources(ctx, input)
	if err != nil {
		return nil, err
	}

	lines, err := s.validateAndPrice(ctx, sources)
	if err != nil {
		return nil, err
	}

	order := s.buildOrder(lines, input)

	if err := s.persistOrder(ctx, order); err != nil {
		return nil, err
	}

	if err := s.reserveInventory(ctx, order); err != nil {
		return nil, err
	}

	// Everything below is best-effort: the order exists and its stock is
	// reserved, so nothing here may fail the checkout.
	if cartID != nil {
		if err := s.cartRepo.DeleteCart(ctx, *cartID); err != nil {
			s.logger.Warn("failed to delete cart after checkout",
				slog.String("cart_id", cartID.String()), slog.Any("error", err))
		}
	}
	s.invalidateCatalog(ctx)
	s.publishEvent(ctx, entity.OrderEventCreated, order, input.RequestID)

	intent, err := s.gateway.CreateIntent(ctx, order, input.PaymentMethod)
	if err != nil {
		s.logger.Error("failed to create payment intent",
			slog.String("order_number", order.Number), slog.Any("error", err))
		intent = nil
	}

	return &usecase.CheckoutResult{Order: order, PaymentIntent: intent}, nil
}

// GetOrder retrieves an order by its number. Owned orders are visible to
// their owner and to admins; guest orders are claimable by number alone.
func (s *checkoutService) GetOrder(ctx context.Context, number string, requester *uuid.UUID, isAdmin bool) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if isAdmin || order.UserID == nil {
		return order, nil
	}
	// Not-found rather than forbidden: order numbers of other shoppers must
	// not be probeable.
	if requester == nil || *requester != *order.UserID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// ListOrders retrieves the requesting shopper's orders, newest first.
func (s *checkoutService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// CancelOrder cancels a pending or processing order. Reservations still held
// (payment not yet confirmed) are released back to the catalog.
func (s *checkoutService) CancelOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(entity.OrderStatusCancelled) {
		return nil, domainerrors.ErrInvalidOrderTransition
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txOrders := factory.NewOrderRepository()
		if err := txOrders.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusCancelled); err != nil {
			return err
		}

		return txOrders.AppendOrderEvent(ctx, order.ID, order.AppendEvent(entity.OrderEventCancelled, "order cancelled"))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to cancel order")
	}
	order.Status = entity.OrderStatusCancelled

	// Payment confirmation already converted the reservation into a hard
	// deduction; only unpaid orders still hold one.
	if order.PaymentStatus != entity.PaymentStatusPaid {
		for _, item := range order.Items {
			if err := s.productRepo.ReleaseStock(ctx, item.VariantID, item.Quantity); err != nil {
				s.logger.Error("failed to release reservation on cancel",
					slog.String("order_number", order.Number),
					slog.String("variant_id", item.VariantID.String()),
					slog.Any("error", err))
			}
		}
		s.invalidateCatalog(ctx)
	}

	s.publishEvent(ctx, entity.OrderEventCancelled, order, "")

	return order, nil
}

// MarkOrderPaid records payment confirmation, moves the order to processing
// and converts each line's reservation into a hard stock deduction.
func (s *checkoutService) MarkOrderPaid(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus != entity.PaymentStatusPending ||
		!order.Status.CanTransitionTo(entity.OrderStatusProcessing) {
		return nil, domainerrors.ErrInvalidOrderTransition
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txOrders := factory.NewOrderRepository()
		if err := txOrders.UpdatePaymentStatus(ctx, order.ID, entity.PaymentStatusPaid); err != nil {
			return err
		}
		if err := txOrders.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusProcessing); err != nil {
			return err
		}

		return txOrders.AppendOrderEvent(ctx, order.ID, order.AppendEvent(entity.OrderEventPaid, "payment confirmed"))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark order paid")
	}
	order.PaymentStatus = entity.PaymentStatusPaid
	order.Status = entity.OrderStatusProcessing

	for _, item := range order.Items {
		if err := s.productRepo.CommitStock(ctx, item.VariantID, item.Quantity); err != nil {
			s.logger.Error("failed to commit stock on payment",
				slog.String("order_number", order.Number),
				slog.String("variant_id", item.VariantID.String()),
				slog.Any("error", err))
		}
	}
	s.invalidateCatalog(ctx)
	s.publishEvent(ctx, entity.OrderEventPaid, order, "")

	return order, nil
}

// FulfillOrder flips the fulfillment axis. A paid, processing order completes.
func (s *checkoutService) FulfillOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.FulfillmentStatus != entity.FulfillmentStatusUnfulfilled ||
		order.PaymentStatus != entity.PaymentStatusPaid ||
		!order.Status.CanTransitionTo(entity.OrderStatusCompleted) {
		return nil, domainerrors.ErrInvalidOrderTransition
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txOrders := factory.NewOrderRepository()
		if err := txOrders.UpdateFulfillmentStatus(ctx, order.ID, entity.FulfillmentStatusFulfilled); err != nil {
			return err
		}
		if err := txOrders.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusCompleted); err != nil {
			return err
		}

		return txOrders.AppendOrderEvent(ctx, order.ID, order.AppendEvent(entity.OrderEventFulfilled, "order fulfilled"))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fulfill order")
	}
	order.FulfillmentStatus = entity.FulfillmentStatusFulfilled
	order.Status = entity.OrderStatusCompleted

	s.publishEvent(ctx, entity.OrderEventFulfilled, order, "")

	return order, nil
}

// lineSource is a raw (variant, product, quantity) reference before catalog
// validation.
type lineSource struct {
	productID uuid.UUID
	variantID uuid.UUID
	quantity  int64
}

// resolveLineSources picks exactly one line source: the persisted cart when a
// cart ID is given, the inline guest list otherwise. Returns the cart ID so a
// successful checkout can clear it.
func (s *checkoutService) resolveLineSources(ctx context.Context, input usecase.CreateOrderInput) ([]lineSource, *uuid.UUID, error) {
	if input.CartID != nil {
		cart, err := s.cartRepo.FindCartByID(ctx, *input.CartID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return nil, nil, domainerrors.ErrCartNotFound
			}

			return nil, nil, errors.Wrap(err, "failed to find cart")
		}
		if cart.OwnerID != nil && (input.UserID == nil || *input.UserID != *cart.OwnerID) {
			return nil, nil, domainerrors.ErrCartNotFound
		}
		if cart.IsExpired(time.Now()) || len(cart.Items) == 0 {
			return nil, nil, domainerrors.ErrEmptyCheckout
		}

		sources := make([]lineSource, 0, len(cart.Items))
		for _, item := range cart.Items {
			sources = append(sources, lineSource{
				productID: item.ProductID,
				variantID: item.VariantID,
				quantity:  item.Quantity,
			})
		}

		return sources, &cart.ID, nil
	}

	if len(input.GuestItems) == 0 {
		return nil, nil, domainerrors.ErrEmptyCheckout
	}
	sources := make([]lineSource, 0, len(input.GuestItems))
	for _, item := range input.GuestItems {
		if item.Quantity < 1 {
			return nil, nil, domainerrors.ErrInvalidQuantity
		}
		sources = append(sources, lineSource{
			productID: item.ProductID,
			variantID: item.VariantID,
			quantity:  item.Quantity,
		})
	}

	return sources, nil, nil
}

// validateAndPrice re-checks every line against the live catalog and resolves
// its effective price. Fail-fast: the first invalid line aborts the checkout.
func (s *checkoutService) validateAndPrice(ctx context.Context, sources []lineSource) ([]checkoutLine, error) {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load store settings")
	}

	lines := make([]checkoutLine, 0, len(sources))
	for _, src := range sources {
		product, variant, err := fetchSellableVariant(ctx, s.productRepo, src.productID, src.variantID)
		if err != nil {
			return nil, err
		}
		if variant.Available() < src.quantity {
			return nil, domainerrors.ErrInsufficientStock.WithDetails(variant.SKU)
		}

		lines = append(lines, checkoutLine{
			product:  product,
			variant:  variant,
			quantity: src.quantity,
			price:    pricing.Resolve(variant, product, settings),
		})
	}

	return lines, nil
}

// buildOrder settles validated lines into an immutable order: denormalized
// item snapshots, totals, the initial pending payment and the creation event.
func (s *checkoutService) buildOrder(lines []checkoutLine, input usecase.CreateOrderInput) *entity.Order {
	now := time.Now()
	order := &entity.Order{
		ID:                uuid.New(),
		UserID:            input.UserID,
		Items:             make([]entity.OrderItem, 0, len(lines)),
		Status:            entity.OrderStatusPending,
		PaymentStatus:     entity.PaymentStatusPending,
		FulfillmentStatus: entity.FulfillmentStatusUnfulfilled,
		ShippingAddress:   input.ShippingAddress,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	for _, line := range lines {
		lineTotal := line.price.FinalPrice * line.quantity
		order.Items = append(order.Items, entity.OrderItem{
			ID:           uuid.New(),
			ProductID:    line.product.ID,
			VariantID:    line.variant.ID,
			ProductTitle: line.product.Title,
			VariantTitle: line.variant.Title,
			SKU:          line.variant.SKU,
			Quantity:     line.quantity,
			UnitPrice:    line.price.FinalPrice,
			TotalPrice:   lineTotal,
		})
		order.Subtotal += lineTotal
		order.DiscountTotal += (line.variant.Price - line.price.FinalPrice) * line.quantity
	}
	order.Total = order.Subtotal + order.ShippingTotal + order.TaxTotal

	provider := "placeholder"
	if s.cfg.Payment != nil && s.cfg.Payment.Provider != "" {
		provider = s.cfg.Payment.Provider
	}
	order.Payments = []entity.OrderPayment{{
		ID:        uuid.New(),
		Provider:  provider,
		Method:    input.PaymentMethod,
		Amount:    order.Total,
		Status:    entity.PaymentStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}}
	order.AppendEvent(entity.OrderEventCreated, "order created")

	return order
}

// persistOrder writes the order in one transaction, regenerating the order
// number on a uniqueness collision up to the configured retry budget.
func (s *checkoutService) persistOrder(ctx context.Context, order *entity.Order) error {
	retries := s.cfg.Checkout.OrderNumberRetries
	if retries <= 0 {
		retries = defaultOrderNumberRetries
	}

	for attempt := 0; attempt < retries; attempt++ {
		order.Number = generateOrderNumber(order.CreatedAt)

		err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			return factory.NewOrderRepository().CreateOrder(ctx, order)
		})
		if err == nil {
			return nil
		}
		if errors.Is(err, repository.ErrDuplicateOrderNumber) {
			continue
		}

		return errors.Wrap(err, "failed to create order")
	}

	return domainerrors.ErrOrderNumberExhausted
}

// reserveInventory reserves stock per line as independent updates. This is
// deliberately not transactional across variants; on a mid-loop failure the
// already-taken reservations are released and the order is cancelled.
func (s *checkoutService) reserveInventory(ctx context.Context, order *entity.Order) error {
	for i, item := range order.Items {
		err := s.productRepo.ReserveStock(ctx, item.VariantID, item.Quantity)
		if err == nil {
			continue
		}

		s.logger.Error("stock reservation failed",
			slog.String("order_number", order.Number),
			slog.String("variant_id", item.VariantID.String()),
			slog.Any("error", err))

		for _, taken := range order.Items[:i] {
			if relErr := s.productRepo.ReleaseStock(ctx, taken.VariantID, taken.Quantity); relErr != nil {
				s.logger.Error("failed to release reservation during compensation",
					slog.String("order_number", order.Number),
					slog.String("variant_id", taken.VariantID.String()),
					slog.Any("error", relErr))
			}
		}

		cancelErr := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			txOrders := factory.NewOrderRepository()
			if err := txOrders.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusCancelled); err != nil {
				return err
			}

			return txOrders.AppendOrderEvent(ctx, order.ID,
				order.AppendEvent(entity.OrderEventReservationFailed, "stock reservation failed"))
		})
		if cancelErr != nil {
			s.logger.Error("failed to cancel order after reservation failure",
				slog.String("order_number", order.Number), slog.Any("error", cancelErr))
		}
		order.Status = entity.OrderStatusCancelled
		s.publishEvent(ctx, entity.OrderEventReservationFailed, order, "")

		return domainerrors.ErrReservationFailed
	}

	return nil
}

func (s *checkoutService) loadOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// invalidateCatalog drops cached catalog views after a stock movement.
// Best-effort: failures are logged, never surfaced.
func (s *checkoutService) invalidateCatalog(ctx context.Context) {
	if err := s.cache.DeleteByPrefix(ctx, cachePrefixCatalog); err != nil {
		s.logger.Warn("failed to invalidate catalog cache", slog.Any("error", err))
	}
}

// publishEvent emits an order event for async consumers. Best-effort.
func (s *checkoutService) publishEvent(ctx context.Context, kind string, order *entity.Order, requestID string) {
	event := &service.OrderEvent{
		RequestID:   requestID,
		Kind:        kind,
		OrderID:     order.ID.String(),
		OrderNumber: order.Number,
		Total:       order.Total,
		ItemCount:   len(order.Items),
	}
	if order.UserID != nil {
		event.UserID = order.UserID.String()
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish order event",
			slog.String("kind", kind),
			slog.String("order_number", order.Number),
			slog.Any("error", err))
	}
}

// generateOrderNumber builds a YYMMDD-NNNNN human-readable order number with
// a random daily sequence. Collisions are handled by the caller's retry loop
// against the unique index.
func generateOrderNumber(at time.Time) string {
	return fmt.Sprintf("%s-%05d", at.Format("060102"), rand.IntN(100000))
}
