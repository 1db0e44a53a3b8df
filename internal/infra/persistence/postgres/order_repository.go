package postgres

import (
	"context"
	"time"

	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists a new order.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("Items").Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("invalid customer or address reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves an order by its ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// ListOrders returns orders newest first, optionally restricted to some statuses.
func (repo *orderRepository) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, status.String())
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateOrderStatus writes status, the timestamps owned by the state machine
// and status_updated_by. The write only applies while the row is still in from.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, order *entity.Order, from entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", order.ID, from.String()).
		Updates(map[string]any{
			"status":                  order.Status.String(),
			"status_updated_by":       order.StatusUpdatedBy,
			"updated_at":              order.UpdatedAt,
			"confirmed_at":            order.ConfirmedAt,
			"delivered_at":            order.DeliveredAt,
			"cancelled_at":            order.CancelledAt,
			"estimated_delivery_time": order.EstimatedDeliveryTime,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repo.missedStatusWrite(ctx, order.ID)
	}

	return nil
}

// missedStatusWrite tells a vanished order from one whose status moved on.
func (repo *orderRepository) missedStatusWrite(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check order after status update")
	}

	if count == 0 {
		return repository.ErrOrderNotFound
	}

	return repository.ErrOrderStatusChanged
}

// UpdatePaymentStatus writes payment_status and updated_at.
func (repo *orderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, updatedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_status": string(status),
			"updated_at":     updatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update payment status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// orderItemRepository implements the repository.OrderItemRepository interface.
type orderItemRepository struct {
	db *gorm.DB
}

// NewOrderItemRepository is the constructor for orderItemRepository.
func NewOrderItemRepository(db *gorm.DB) repository.OrderItemRepository {
	return &orderItemRepository{db: db}
}

// CreateOrderItems inserts all lines of an order in one statement.
func (repo *orderItemRepository) CreateOrderItems(ctx context.Context, items []*entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*model.OrderItemModel, 0, len(items))
	for _, item := range items {
		itemModels = append(itemModels, fromOrderItemDomain(item))
	}

	if err := repo.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("invalid order reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
	}

	for i, itemM := range itemModels {
		items[i].ID = itemM.ID
	}

	return nil
}

// FindItemsByOrderID returns the lines of an order.
func (repo *orderItemRepository) FindItemsByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	var itemModels []*model.OrderItemModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("name ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find order items")
	}

	items := make([]*entity.OrderItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toOrderItemDomain(itemM))
	}

	return items, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:                    data.ID,
		Status:                entity.OrderStatus(data.Status),
		PaymentMethod:         entity.PaymentMethod(data.PaymentMethod),
		PaymentStatus:         entity.PaymentStatus(data.PaymentStatus),
		Total:                 data.Total,
		CustomerID:            data.CustomerID,
		DeliveryAddressID:     data.DeliveryAddressID,
		Notes:                 data.Notes,
		StatusUpdatedBy:       data.StatusUpdatedBy,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
		ConfirmedAt:           data.ConfirmedAt,
		DeliveredAt:           data.DeliveredAt,
		CancelledAt:           data.CancelledAt,
		EstimatedDeliveryTime: data.EstimatedDeliveryTime,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:                    data.ID,
		Status:                data.Status.String(),
		PaymentMethod:         string(data.PaymentMethod),
		PaymentStatus:         string(data.PaymentStatus),
		Total:                 data.Total,
		CustomerID:            data.CustomerID,
		DeliveryAddressID:     data.DeliveryAddressID,
		Notes:                 data.Notes,
		StatusUpdatedBy:       data.StatusUpdatedBy,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
		ConfirmedAt:           data.ConfirmedAt,
		DeliveredAt:           data.DeliveredAt,
		CancelledAt:           data.CancelledAt,
		EstimatedDeliveryTime: data.EstimatedDeliveryTime,
	}
}

func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:         data.ID,
		OrderID:    data.OrderID,
		MenuItemID: data.MenuItemID,
		Name:       data.Name,
		UnitPrice:  data.UnitPrice,
		Quantity:   data.Quantity,
		Notes:      data.Notes,
	}
}

func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		ID:         data.ID,
		OrderID:    data.OrderID,
		MenuItemID: data.MenuItemID,
		Name:       data.Name,
		UnitPrice:  data.UnitPrice,
		Quantity:   data.Quantity,
		Notes:      data.Notes,
	}
}
