package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order records a purchase of a perfume. Orders are created atomically with the
// stock decrement and are never updated or deleted afterwards.
//
// Two creation modes exist: the canonical authenticated mode carries a UserID,
// the deprecated guest mode carries CustomerName/CustomerPhone instead and
// always orders a single unit.
type Order struct {
	ID            uuid.UUID
	UserID        uuid.UUID // uuid.Nil for guest orders.
	PerfumeID     uuid.UUID
	Quantity      int
	Message       string
	Address       string
	CustomerName  string // Guest mode only.
	CustomerPhone string // Guest mode only.
	CreatedAt     time.Time

	Perfume *Perfume      // Populated by list queries.
	User    *UserSnapshot // Minimal projection, populated by list queries.
}

// UserSnapshot is the minimal user projection attached to order listings.
type UserSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}
