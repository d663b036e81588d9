package postgres

import (
	"context"

	"parfum/internal/domain/entity"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/domain/repository"
	"parfum/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order row.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPerfumeNotFound.WrapMessage("order references a missing row")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order violates a data constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindByID retrieves a single order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Perfume").
		Preload("User").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListAll returns every order, newest first, with the perfume and user attached.
func (repo *orderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	var orderMs []model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Perfume").
		Preload("User").
		Order("created_at DESC").
		Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomainList(orderMs), nil
}

// ListByUser returns one user's orders, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Perfume").
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return toOrderDomainList(orderMs), nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:            data.ID,
		PerfumeID:     data.PerfumeID,
		Quantity:      data.Quantity,
		Message:       data.Message,
		Address:       data.Address,
		CustomerName:  data.CustomerName,
		CustomerPhone: data.CustomerPhone,
		CreatedAt:     data.CreatedAt,
		Perfume:       toPerfumeDomain(data.Perfume),
	}

	if data.UserID != nil {
		order.UserID = *data.UserID
	}

	if data.User != nil {
		order.User = &entity.UserSnapshot{
			ID:    data.User.ID,
			Name:  data.User.Name,
			Email: data.User.Email,
		}
	}

	return order
}

// toOrderDomainList converts a slice of models to domain entities.
func toOrderDomainList(data []model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(data))
	for i := range data {
		orders = append(orders, toOrderDomain(&data[i]))
	}

	return orders
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:            data.ID,
		PerfumeID:     data.PerfumeID,
		Quantity:      data.Quantity,
		Message:       data.Message,
		Address:       data.Address,
		CustomerName:  data.CustomerName,
		CustomerPhone: data.CustomerPhone,
	}

	if data.UserID != uuid.Nil {
		userID := data.UserID
		orderM.UserID = &userID
	}

	return orderM
}
