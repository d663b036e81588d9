package repository

import (
	"context"
	"errors"

	"parfum/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is a domain-specific error returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewListOptions controls sorting and pagination of a perfume's review listing.
// SortBy must already be validated against the allowed sort fields.
type ReviewListOptions struct {
	Page     int
	Limit    int
	SortBy   string // "created_at" or "rating".
	SortDesc bool
}

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// Upsert inserts the review or, when a row for the same (user, perfume) pair
	// exists, replaces its rating and comment. The entity is updated in place
	// with the stored row's ID and timestamps.
	Upsert(ctx context.Context, review *entity.Review) error

	// DeleteByUserAndPerfume removes the review for the (user, perfume) pair.
	// Returns ErrReviewNotFound when no such review exists.
	DeleteByUserAndPerfume(ctx context.Context, userID, perfumeID uuid.UUID) error

	// ListByPerfume returns one page of a perfume's reviews plus the total count.
	ListByPerfume(ctx context.Context, perfumeID uuid.UUID, opts ReviewListOptions) ([]*entity.Review, int64, error)

	// Stats aggregates the perfume's current review set into the derived rating
	// statistics. The average is rounded to one decimal, 0 with no reviews.
	Stats(ctx context.Context, perfumeID uuid.UUID) (entity.RatingStats, error)
}
