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

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists a new order with its denormalized items, initial
// payment record and initial audit event in one write.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderNumber
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves an order with items, payments and events.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrderByNumber retrieves an order by its human-readable number.
func (repo *orderRepository) FindOrderByNumber(ctx context.Context, number string) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("number = ?", number).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by number")
	}

	return toOrderDomain(&orderM), nil
}

// ListOrdersByUser retrieves a shopper's orders, newest first.
func (repo *orderRepository) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders, nil
}

// UpdateOrderStatus sets the overall order status.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UpdatePaymentStatus sets the order's payment axis and the matching payment
// sub-record in one pass.
func (repo *orderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("payment_status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	err := repo.db.WithContext(ctx).
		Model(&model.OrderPaymentModel{}).
		Where("order_id = ?", id).
		Update("status", string(status)).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update payment record")
	}

	return nil
}

// UpdateFulfillmentStatus sets the order's fulfillment axis.
func (repo *orderRepository) UpdateFulfillmentStatus(ctx context.Context, id uuid.UUID, status entity.FulfillmentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("fulfillment_status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update fulfillment status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// AppendOrderEvent appends one entry to the order's audit timeline.
func (repo *orderRepository) AppendOrderEvent(ctx context.Context, orderID uuid.UUID, event *entity.OrderEvent) error {
	eventM := &model.OrderEventModel{
		ID:      event.ID,
		OrderID: orderID,
		Kind:    event.Kind,
		Message: event.Message,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append order event")
	}

	event.CreatedAt = eventM.CreatedAt

	return nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:                data.ID,
		Number:            data.Number,
		UserID:            data.UserID,
		Subtotal:          data.Subtotal,
		ShippingTotal:     data.ShippingTotal,
		TaxTotal:          data.TaxTotal,
		DiscountTotal:     data.DiscountTotal,
		Total:             data.Total,
		Status:            entity.OrderStatus(data.Status),
		PaymentStatus:     entity.PaymentStatus(data.PaymentStatus),
		FulfillmentStatus: entity.FulfillmentStatus(data.FulfillmentStatus),
		ShippingAddress:   data.ShippingAddress,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}

	order.Items = make([]entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		itemM := &data.Items[i]
		order.Items = append(order.Items, entity.OrderItem{
			ID:           itemM.ID,
			ProductID:    itemM.ProductID,
			VariantID:    itemM.VariantID,
			ProductTitle: itemM.ProductTitle,
			VariantTitle: itemM.VariantTitle,
			SKU:          itemM.SKU,
			Quantity:     itemM.Quantity,
			UnitPrice:    itemM.UnitPrice,
			TotalPrice:   itemM.TotalPrice,
		})
	}

	order.Payments = make([]entity.OrderPayment, 0, len(data.Payments))
	for i := range data.Payments {
		paymentM := &data.Payments[i]
		order.Payments = append(order.Payments, entity.OrderPayment{
			ID:        paymentM.ID,
			Provider:  paymentM.Provider,
			Method:    paymentM.Method,
			Amount:    paymentM.Amount,
			Status:    entity.PaymentStatus(paymentM.Status),
			CreatedAt: paymentM.CreatedAt,
			UpdatedAt: paymentM.UpdatedAt,
		})
	}

	order.Events = make([]entity.OrderEvent, 0, len(data.Events))
	for i := range data.Events {
		eventM := &data.Events[i]
		order.Events = append(order.Events, entity.OrderEvent{
			ID:        eventM.ID,
			Kind:      eventM.Kind,
			Message:   eventM.Message,
			CreatedAt: eventM.CreatedAt,
		})
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	orderM := &model.OrderModel{
		ID:                data.ID,
		Number:            data.Number,
		UserID:            data.UserID,
		Subtotal:          data.Subtotal,
		ShippingTotal:     data.ShippingTotal,
		TaxTotal:          data.TaxTotal,
		DiscountTotal:     data.DiscountTotal,
		Total:             data.Total,
		Status:            string(data.Status),
		PaymentStatus:     string(data.PaymentStatus),
		FulfillmentStatus: string(data.FulfillmentStatus),
		ShippingAddress:   data.ShippingAddress,
	}

	orderM.Items = make([]model.OrderItemModel, 0, len(data.Items))
	for i := range data.Items {
		item := &data.Items[i]
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ID:           item.ID,
			OrderID:      data.ID,
			ProductID:    item.ProductID,
			VariantID:    item.VariantID,
			ProductTitle: item.ProductTitle,
			VariantTitle: item.VariantTitle,
			SKU:          item.SKU,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			TotalPrice:   item.TotalPrice,
		})
	}

	orderM.Payments = make([]model.OrderPaymentModel, 0, len(data.Payments))
	for i := range data.Payments {
		payment := &data.Payments[i]
		orderM.Payments = append(orderM.Payments, model.OrderPaymentModel{
			ID:       payment.ID,
			OrderID:  data.ID,
			Provider: payment.Provider,
			Method:   payment.Method,
			Amount:   payment.Amount,
			Status:   string(payment.Status),
		})
	}

	orderM.Events = make([]model.OrderEventModel, 0, len(data.Events))
	for i := range data.Events {
		event := &data.Events[i]
		orderM.Events = append(orderM.Events, model.OrderEventModel{
			ID:      event.ID,
			OrderID: data.ID,
			Kind:    event.Kind,
			Message: event.Message,
		})
	}

	return orderM
}
