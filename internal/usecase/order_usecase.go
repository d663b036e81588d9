package usecase

import (
	"context"

	"parfum/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PlaceOrderInput defines the data for an authenticated order.
type PlaceOrderInput struct {
	PerfumeID uuid.UUID
	Quantity  int
	Message   string
	Address   string
}

// GuestOrderInput defines the data for the deprecated guest order mode. Guest
// orders are always for a single unit.
type GuestOrderInput struct {
	CustomerName  string
	CustomerPhone string
	PerfumeID     uuid.UUID
}

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	// PlaceOrder atomically checks stock, decrements it, and records the order
	// for the authenticated user.
	PlaceOrder(ctx context.Context, userID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)

	// CreateGuestOrder is the deprecated unauthenticated single-unit order mode.
	CreateGuestOrder(ctx context.Context, input *GuestOrderInput) (*entity.Order, error)

	// ListOrders returns every order, newest first. Admin only.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// ListUserOrders returns the authenticated user's orders, newest first.
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// OrderPickupQR renders a PNG QR code identifying the order for pickup. Admin only.
	OrderPickupQR(ctx context.Context, orderID uuid.UUID) ([]byte, error)
}
