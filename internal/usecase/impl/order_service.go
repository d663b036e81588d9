package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "parfum/internal/delivery/context"
	"parfum/internal/domain/entity"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/domain/repository"
	"parfum/internal/domain/service"
	"parfum/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager     repository.TransactionManager
	orderRepo     repository.OrderRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	OrderRepo     repository.OrderRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:     params.TxManager,
		orderRepo:     params.OrderRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder runs the stock check, the decrement, and the order insert in one
// transaction. Either all three happen or none do.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be a positive integer")
	}

	var placed *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		perfumeRepo := repoFactory.NewPerfumeRepository()
		userRepo := repoFactory.NewUserRepository()
		orderRepo := repoFactory.NewOrderRepository()

		perfume, err := perfumeRepo.FindByID(ctx, input.PerfumeID)
		if err != nil {
			if errors.Is(err, repository.ErrPerfumeNotFound) {
				return domainerrors.ErrPerfumeNotFound
			}

			return errors.Wrap(err, "failed to load perfume")
		}

		if perfume.Stock < input.Quantity {
			return domainerrors.ErrInsufficientStock.WithDetails(
				fmt.Sprintf("requested %d, available %d", input.Quantity, perfume.Stock))
		}

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load user")
		}

		if err := perfumeRepo.DecrementStock(ctx, input.PerfumeID, input.Quantity); err != nil {
			return err
		}

		order := &entity.Order{
			UserID:    userID,
			PerfumeID: input.PerfumeID,
			Quantity:  input.Quantity,
			Message:   strings.TrimSpace(input.Message),
			Address:   strings.TrimSpace(input.Address),
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}

		placed = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_id", placed.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("quantity", placed.Quantity))

	return placed, nil
}

// CreateGuestOrder is the deprecated legacy mode: unauthenticated, one unit,
// the customer's name and phone recorded inline.
func (srv *orderService) CreateGuestOrder(ctx context.Context, input *usecase.GuestOrderInput) (*entity.Order, error) {
	customerName := strings.TrimSpace(input.CustomerName)
	customerPhone := strings.TrimSpace(input.CustomerPhone)
	if customerName == "" || customerPhone == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("customer name and phone are required")
	}

	var placed *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		perfumeRepo := repoFactory.NewPerfumeRepository()
		orderRepo := repoFactory.NewOrderRepository()

		perfume, err := perfumeRepo.FindByID(ctx, input.PerfumeID)
		if err != nil {
			if errors.Is(err, repository.ErrPerfumeNotFound) {
				return domainerrors.ErrPerfumeNotFound
			}

			return errors.Wrap(err, "failed to load perfume")
		}

		if !perfume.InStock() {
			return domainerrors.ErrOutOfStock
		}

		if err := perfumeRepo.DecrementStock(ctx, input.PerfumeID, 1); err != nil {
			return err
		}

		order := &entity.Order{
			PerfumeID:     input.PerfumeID,
			Quantity:      1,
			CustomerName:  customerName,
			CustomerPhone: customerPhone,
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}

		placed = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Guest order placed", slog.String("order_id", placed.ID.String()))

	return placed, nil
}

// ListOrders returns every order, newest first.
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListUserOrders returns the authenticated user's orders, newest first.
func (srv *orderService) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// OrderPickupQR renders a PNG QR code identifying the order for pickup.
func (srv *orderService) OrderPickupQR(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	png, err := srv.qrcodeService.GenerateOrderPickupQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR code")
	}

	return png, nil
}
