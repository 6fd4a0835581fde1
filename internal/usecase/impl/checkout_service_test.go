package impl

import (
	"context"
	"io"
	"log/slog"
	"regexp"
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

var orderNumberPattern = regexp.MustCompile(`^\d{6}-\d{5}$`)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	t           *testing.T
	service     usecase.CheckoutUsecase
	txManager   *mockRepo.MockTransactionManager
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	cartRepo    *mockRepo.MockCartRepository
	settings    *mockRepo.MockSettingsRepository
	cache       *mockService.MockCache
	publisher   *mockService.MockOrderEventPublisher
	gateway     *mockService.MockPaymentGateway
}

func createTestCheckoutService(t *testing.T) *checkoutServiceFixtures {
	fx := &checkoutServiceFixtures{
		t:           t,
		txManager:   mockRepo.NewMockTransactionManager(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		cartRepo:    mockRepo.NewMockCartRepository(t),
		settings:    mockRepo.NewMockSettingsRepository(t),
		cache:       mockService.NewMockCache(t),
		publisher:   mockService.NewMockOrderEventPublisher(t),
		gateway:     mockService.NewMockPaymentGateway(t),
	}

	fx.service = NewCheckoutService(CheckoutServiceParams{
		TxManager:    fx.txManager,
		OrderRepo:    fx.orderRepo,
		ProductRepo:  fx.productRepo,
		CartRepo:     fx.cartRepo,
		SettingsRepo: fx.settings,
		Cache:        fx.cache,
		Publisher:    fx.publisher,
		Gateway:      fx.gateway,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: &config.Config{
			Checkout: config.CheckoutConfig{OrderNumberRetries: 5},
			Payment:  &config.PaymentConfig{Provider: "placeholder"},
		},
	})

	return fx
}

// onExecute routes every transactional block through a factory handing out
// the returned order repository mock.
func (f *checkoutServiceFixtures) onExecute(ctx context.Context) *mockRepo.MockOrderRepository {
	txOrders := mockRepo.NewMockOrderRepository(f.t)
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			factory.EXPECT().NewOrderRepository().Return(txOrders)

			return fn(factory)
		})

	return txOrders
}

func (f *checkoutServiceFixtures) expectEvent(ctx context.Context, kind string) {
	f.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.Kind == kind
		})).
		Return(nil)
}

func (f *checkoutServiceFixtures) expectCacheInvalidation(ctx context.Context) {
	f.cache.EXPECT().
		DeleteByPrefix(ctx, "catalog:").
		Return(nil)
}

func checkoutProduct(title string, price, stock int64) *entity.Product {
	return &entity.Product{
		ID:     uuid.New(),
		Slug:   title,
		Title:  title,
		Status: entity.LifecycleActive,
		Variants: []entity.Variant{{
			ID:        uuid.New(),
			SKU:       title + "-sku",
			Title:     "Default",
			Price:     price,
			Stock:     stock,
			Published: true,
		}},
		Published: true,
	}
}

func testAddress() entity.ShippingAddress {
	return entity.ShippingAddress{
		FullName:   "Alex Doe",
		Line1:      "1 Main St",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "US",
	}
}

func TestCheckoutService_CreateOrder_CartPath(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	tee := checkoutProduct("tee", 500, 10)
	mug := checkoutProduct("mug", 150, 10)
	cartID := uuid.New()
	cart := &entity.Cart{
		ID:        cartID,
		ExpiresAt: time.Now().Add(time.Hour),
		Items: []entity.CartItem{
			{ID: uuid.New(), ProductID: tee.ID, VariantID: tee.Variants[0].ID, Quantity: 2, PriceSnapshot: 450},
			{ID: uuid.New(), ProductID: mug.ID, VariantID: mug.Variants[0].ID, Quantity: 1, PriceSnapshot: 150},
		},
	}

	fx.cartRepo.EXPECT().FindCartByID(ctx, cartID).Return(cart, nil)
	fx.settings.EXPECT().GetSettings(ctx).Return(&entity.StoreSettings{}, nil)
	fx.productRepo.EXPECT().FindProductByID(ctx, tee.ID).Return(tee, nil)
	fx.productRepo.EXPECT().FindProductByID(ctx, mug.ID).Return(mug, nil)

	txOrders := fx.onExecute(ctx)
	txOrders.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.productRepo.EXPECT().ReserveStock(ctx, tee.Variants[0].ID, int64(2)).Return(nil)
	fx.productRepo.EXPECT().ReserveStock(ctx, mug.Variants[0].ID, int64(1)).Return(nil)

	fx.cartRepo.EXPECT().DeleteCart(ctx, cartID).Return(nil)
	fx.expectCacheInvalidation(ctx)
	fx.expectEvent(ctx, entity.OrderEventCreated)
	fx.gateway.EXPECT().
		CreateIntent(ctx, mock.AnythingOfType("*entity.Order"), "card").
		Return(&service.PaymentIntent{ID: "intent-1", RedirectURL: "https://pay.example/intent-1"}, nil)

	result, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
		CartID:          &cartID,
		ShippingAddress: testAddress(),
		PaymentMethod:   "card",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Order)

	order := result.Order
	assert.Regexp(t, orderNumberPattern, order.Number)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, entity.FulfillmentStatusUnfulfilled, order.FulfillmentStatus)

	// Live catalog prices, not the cart snapshots: 2*500 + 1*150.
	assert.Equal(t, int64(1150), order.Subtotal)
	assert.Equal(t, int64(1150), order.Total)
	assert.Equal(t, int64(0), order.DiscountTotal)

	require.Len(t, order.Payments, 1)
	assert.Equal(t, order.Total, order.Payments[0].Amount)
	assert.Equal(t, entity.PaymentStatusPending, order.Payments[0].Status)

	require.Len(t, order.Events, 1)
	assert.Equal(t, entity.OrderEventCreated, order.Events[0].Kind)

	require.NotNil(t, result.PaymentIntent)
	assert.Equal(t, "intent-1", result.PaymentIntent.ID)
}

func TestCheckoutService_CreateOrder_AppliesDiscounts(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	tee := checkoutProduct("tee", 1000, 10)
	tee.DiscountPercent = 15

	fx.settings.EXPECT().GetSettings(ctx).Return(&entity.StoreSettings{
		Values: map[string]string{entity.SettingGlobalDiscount: "30"},
	}, nil)
	fx.productRepo.EXPECT().FindProductByID(ctx, tee.ID).Return(tee, nil)

	txOrders := fx.onExecute(ctx)
	txOrders.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	fx.productRepo.EXPECT().ReserveStock(ctx, tee.Variants[0].ID, int64(1)).Return(nil)
	fx.expectCacheInvalidation(ctx)
	fx.expectEvent(ctx, entity.OrderEventCreated)
	fx.gateway.EXPECT().
		CreateIntent(ctx, mock.AnythingOfType("*entity.Order"), "card").
		Return(&service.PaymentIntent{}, nil)

	result, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
		GuestItems: []usecase.GuestLineItem{
			{ProductID: tee.ID, VariantID: tee.Variants[0].ID, Quantity: 1},
		},
		ShippingAddress: testAddress(),
		PaymentMethod:   "card",
	})
	require.NoError(t, err)

	// Product discount wins over the store-wide one: 1000 at 15% off.
	order := result.Order
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(850), order.Items[0].UnitPrice)
	assert.Equal(t, int64(850), order.Subtotal)
	assert.Equal(t, int64(150), order.DiscountTotal)
}

func TestCheckoutService_CreateOrder_FailFastOnStock(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	tee := checkoutProduct("tee", 500, 10)
	mug := checkoutProduct("mug", 150, 10)
	mug.Variants[0].StockReserved = 10 // Nothing left to promise.

	fx.settings.EXPECT().GetSettings(ctx).Return(&entity.StoreSettings{}, nil)
	fx.productRepo.EXPECT().FindProductByID(ctx, tee.ID).Return(tee, nil)
	fx.productRepo.EXPECT().FindProductByID(ctx, mug.ID).Return(mug, nil)

	// No transaction, no reservation, no event: nothing is persisted.
	_, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
		GuestItems: []usecase.GuestLineItem{
			{ProductID: tee.ID, VariantID: tee.Variants[0].ID, Quantity: 1},
			{ProductID: mug.ID, VariantID: mug.Variants[0].ID, Quantity: 1},
		},
		ShippingAddress: testAddress(),
		PaymentMethod:   "card",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInsufficientStock.ErrorCode(), appErr.ErrorCode())
}

func TestCheckoutService_CreateOrder_FailFastOnUnpublishedVariant(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	tee := checkoutProduct("tee", 500, 10)
	mug := checkoutProduct("mug", 150, 10)
	mug.Variants[0].Published = false // Pulled from sale since the cart was built.

	fx.settings.EXPECT().GetSettings(ctx).Return(&entity.StoreSettings{}, nil)
	fx.productRepo.EXPECT().FindProductByID(ctx, tee.ID).Return(tee, nil)
	fx.productRepo.EXPECT().FindProductByID(ctx, mug.ID).Return(mug, nil)

	// No transaction, no reservation, no event: nothing is persisted.
	_, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
		GuestItems: []usecase.GuestLineItem{
			{ProductID: tee.ID, VariantID: tee.Variants[0].ID, Quantity: 1},
			{ProductID: mug.ID, VariantID: mug.Variants[0].ID, Quantity: 1},
		},
		ShippingAddress: testAddress(),
		PaymentMethod:   "card",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrVariantNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestCheckoutService_CreateOrder_ReservationFailureCompensates(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	tee := checkoutProduct("tee", 500, 10)
	mug := checkoutProduct("mug", 150, 10)

	fx.settings.EXPECT().GetSettings(ctx).Return(&entity.StoreSettings{}, nil)
	fx.productRepo.EXPECT().FindProductByID(ctx, tee.ID).Return(tee, nil)
	fx.productRepo.EXPECT().FindProductByID(ctx, mug.ID).Return(mug, nil)

	txOrders := fx.onExecute(ctx)
	txOrders.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	// First reservation lands, the second hits a concurrent depletion.
	fx.productRepo.EXPECT().ReserveStock(ctx, tee.Variants[0].ID, int64(2)).Return(nil)
	fx.productRepo.EXPECT().
		ReserveStock(ctx, mug.Variants[0].ID, int64(1)).
		Return(repository.ErrVariantNotFound)

	// The already-taken reservation is handed back.
	fx.productRepo.EXPECT().ReleaseStock(ctx, tee.Variants[0].ID, int64(2)).Return(nil)

	// The order flips to cancelled with a reservation-failure audit event.
	txOrders.EXPECT().UpdateOrderStatus(ctx, mock.AnythingOfType("uuid.UUID"), entity.OrderStatusCancelled).Return(nil)
	txOrders.EXPECT().AppendOrderEvent(ctx, mock.AnythingOfType("uuid.UUID"), mock.MatchedBy(func(event *entity.OrderEvent) bool {
		return event.Kind == entity.OrderEventReservationFailed
	})).Return(nil)
	fx.expectEvent(ctx, entity.OrderEventReservationFailed)

	_, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
		GuestItems: []usecase.GuestLineItem{
			{ProductID: tee.ID, VariantID: tee.Variants[0].ID, Quantity: 2},
			{ProductID: mug.ID, VariantID: mug.Variants[0].ID, Quantity: 1},
		},
		ShippingAddress: testAddress(),
		PaymentMethod:   "card",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrReservationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestCheckoutService_CreateOrder_RetriesOrderNumberCollision(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	tee := checkoutProduct("tee", 500, 10)

	fx.settings.EXPECT().GetSettings(ctx).Return(&entity.StoreSettings{}, nil)
	fx.productRepo.EXPECT().FindProductByID(ctx, tee.ID).Return(tee, nil)

	txOrders := fx.onExecute(ctx)
	var numbers []string
	txOrders.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			numbers = append(numbers, order.Number)
		}).
		Return(repository.ErrDuplicateOrderNumber).
		Once()
	txOrders.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			numbers = append(numbers, order.Number)
		}).
		Return(nil).
		Once()

	fx.productRepo.EXPECT().ReserveStock(ctx, tee.Variants[0].ID, int64(1)).Return(nil)
	fx.expectCacheInvalidation(ctx)
	fx.expectEvent(ctx, entity.OrderEventCreated)
	fx.gateway.EXPECT().
		CreateIntent(ctx, mock.AnythingOfType("*entity.Order"), "card").
		Return(&service.PaymentIntent{}, nil)

	result, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
		GuestItems: []usecase.GuestLineItem{
			{ProductID: tee.ID, VariantID: tee.Variants[0].ID, Quantity: 1},
		},
		ShippingAddress: testAddress(),
		PaymentMethod:   "card",
	})
	require.NoError(t, err)
	require.Len(t, numbers, 2)
	assert.Regexp(t, orderNumberPattern, result.Order.Number)
	assert.Equal(t, numbers[1], result.Order.Number)
}

func TestCheckoutService_CreateOrder_OrderNumberExhausted(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	tee := checkoutProduct("tee", 500, 10)

	fx.settings.EXPECT().GetSettings(ctx).Return(&entity.StoreSettings{}, nil)
	fx.productRepo.EXPECT().FindProductByID(ctx, tee.ID).Return(tee, nil)

	txOrders := fx.onExecute(ctx)
	txOrders.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(repository.ErrDuplicateOrderNumber).
		Times(5)

	_, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
		GuestItems: []usecase.GuestLineItem{
			{ProductID: tee.ID, VariantID: tee.Variants[0].ID, Quantity: 1},
		},
		ShippingAddress: testAddress(),
		PaymentMethod:   "card",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrOrderNumberExhausted.ErrorCode(), appErr.ErrorCode())
}

func TestCheckoutService_CreateOrder_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	cartID := uuid.New()

	fx.cartRepo.EXPECT().
		FindCartByID(ctx, cartID).
		Return(&entity.Cart{ID: cartID, ExpiresAt: time.Now().Add(time.Hour)}, nil)

	_, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
		CartID:          &cartID,
		ShippingAddress: testAddress(),
		PaymentMethod:   "card",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrEmptyCheckout.ErrorCode(), appErr.ErrorCode())
}

func TestCheckoutService_GetOrder_ScopedToOwner(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	strangerID := uuid.New()
	order := &entity.Order{ID: uuid.New(), Number: "260901-00042", UserID: &ownerID}

	fx.orderRepo.EXPECT().FindOrderByNumber(ctx, order.Number).Return(order, nil).Times(3)

	got, err := fx.service.GetOrder(ctx, order.Number, &ownerID, false)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = fx.service.GetOrder(ctx, order.Number, &strangerID, false)
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrOrderNotFound.ErrorCode(), appErr.ErrorCode())

	got, err = fx.service.GetOrder(ctx, order.Number, nil, true)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestCheckoutService_GetOrder_GuestClaimsByNumber(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Number: "260901-00007"}

	fx.orderRepo.EXPECT().FindOrderByNumber(ctx, order.Number).Return(order, nil)

	got, err := fx.service.GetOrder(ctx, order.Number, nil, false)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestCheckoutService_ListOrders_ReturnsHistory(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	userID := uuid.New()
	history := []*entity.Order{
		{ID: uuid.New(), Number: "260901-00002", UserID: &userID},
		{ID: uuid.New(), Number: "260831-00001", UserID: &userID},
	}

	fx.orderRepo.EXPECT().ListOrdersByUser(ctx, userID).Return(history, nil)

	orders, err := fx.service.ListOrders(ctx, userID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "260901-00002", orders[0].Number)
}

func TestCheckoutService_CancelOrder_ReleasesReservations(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	variantID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		Number:        "260901-00001",
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
		Items: []entity.OrderItem{
			{ID: uuid.New(), VariantID: variantID, Quantity: 3},
		},
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	txOrders := fx.onExecute(ctx)
	txOrders.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusCancelled).Return(nil)
	txOrders.EXPECT().AppendOrderEvent(ctx, order.ID, mock.MatchedBy(func(event *entity.OrderEvent) bool {
		return event.Kind == entity.OrderEventCancelled
	})).Return(nil)

	fx.productRepo.EXPECT().ReleaseStock(ctx, variantID, int64(3)).Return(nil)
	fx.expectCacheInvalidation(ctx)
	fx.expectEvent(ctx, entity.OrderEventCancelled)

	got, err := fx.service.CancelOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, got.Status)
}

func TestCheckoutService_CancelOrder_PaidOrderKeepsDeduction(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	order := &entity.Order{
		ID:            uuid.New(),
		Number:        "260901-00002",
		Status:        entity.OrderStatusProcessing,
		PaymentStatus: entity.PaymentStatusPaid,
		Items: []entity.OrderItem{
			{ID: uuid.New(), VariantID: uuid.New(), Quantity: 1},
		},
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	txOrders := fx.onExecute(ctx)
	txOrders.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusCancelled).Return(nil)
	txOrders.EXPECT().AppendOrderEvent(ctx, order.ID, mock.AnythingOfType("*entity.OrderEvent")).Return(nil)

	// No ReleaseStock: payment already converted the hold into a deduction.
	fx.expectEvent(ctx, entity.OrderEventCancelled)

	_, err := fx.service.CancelOrder(ctx, order.ID)
	require.NoError(t, err)
}

func TestCheckoutService_CancelOrder_InvalidTransition(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	order := &entity.Order{
		ID:     uuid.New(),
		Status: entity.OrderStatusCompleted,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.CancelOrder(ctx, order.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidOrderTransition.ErrorCode(), appErr.ErrorCode())
}

func TestCheckoutService_MarkOrderPaid_CommitsStock(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	variantID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		Number:        "260901-00003",
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
		Items: []entity.OrderItem{
			{ID: uuid.New(), VariantID: variantID, Quantity: 2},
		},
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	txOrders := fx.onExecute(ctx)
	txOrders.EXPECT().UpdatePaymentStatus(ctx, order.ID, entity.PaymentStatusPaid).Return(nil)
	txOrders.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusProcessing).Return(nil)
	txOrders.EXPECT().AppendOrderEvent(ctx, order.ID, mock.MatchedBy(func(event *entity.OrderEvent) bool {
		return event.Kind == entity.OrderEventPaid
	})).Return(nil)

	fx.productRepo.EXPECT().CommitStock(ctx, variantID, int64(2)).Return(nil)
	fx.expectCacheInvalidation(ctx)
	fx.expectEvent(ctx, entity.OrderEventPaid)

	got, err := fx.service.MarkOrderPaid(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, got.Status)
	assert.Equal(t, entity.PaymentStatusPaid, got.PaymentStatus)
}

func TestCheckoutService_MarkOrderPaid_AlreadyPaid(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	order := &entity.Order{
		ID:            uuid.New(),
		Status:        entity.OrderStatusProcessing,
		PaymentStatus: entity.PaymentStatusPaid,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.MarkOrderPaid(ctx, order.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidOrderTransition.ErrorCode(), appErr.ErrorCode())
}

func TestCheckoutService_FulfillOrder_CompletesOrder(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	order := &entity.Order{
		ID:                uuid.New(),
		Number:            "260901-00004",
		Status:            entity.OrderStatusProcessing,
		PaymentStatus:     entity.PaymentStatusPaid,
		FulfillmentStatus: entity.FulfillmentStatusUnfulfilled,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	txOrders := fx.onExecute(ctx)
	txOrders.EXPECT().UpdateFulfillmentStatus(ctx, order.ID, entity.FulfillmentStatusFulfilled).Return(nil)
	txOrders.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusCompleted).Return(nil)
	txOrders.EXPECT().AppendOrderEvent(ctx, order.ID, mock.MatchedBy(func(event *entity.OrderEvent) bool {
		return event.Kind == entity.OrderEventFulfilled
	})).Return(nil)

	fx.expectEvent(ctx, entity.OrderEventFulfilled)

	got, err := fx.service.FulfillOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, got.Status)
	assert.Equal(t, entity.FulfillmentStatusFulfilled, got.FulfillmentStatus)
}

func TestCheckoutService_FulfillOrder_RequiresPayment(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	order := &entity.Order{
		ID:                uuid.New(),
		Status:            entity.OrderStatusPending,
		PaymentStatus:     entity.PaymentStatusPending,
		FulfillmentStatus: entity.FulfillmentStatusUnfulfilled,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.FulfillOrder(ctx, order.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidOrderTransition.ErrorCode(), appErr.ErrorCode())
}
