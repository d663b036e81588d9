package repository

import (
	"context"
	"errors"

	"parfum/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// Orders are insert-only; there are no update or delete operations.
type OrderRepository interface {
	// Create persists a new order row.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListAll returns every order, newest first, with the perfume and a minimal
	// user projection attached.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// ListByUser returns one user's orders in the same shape as ListAll.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
