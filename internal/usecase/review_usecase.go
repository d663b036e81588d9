package usecase

import (
	"context"

	"parfum/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SubmitReviewInput defines the data of a review submission. A second
// submission by the same user for the same perfume replaces the first.
type SubmitReviewInput struct {
	Rating  int
	Comment string
}

// ListReviewsInput carries the raw review listing parameters. Empty strings
// mean "use the default".
type ListReviewsInput struct {
	Page      string
	Limit     string
	SortBy    string
	SortOrder string
}

// --- Output DTOs ---

// ReviewPage is one page of a perfume's reviews plus pagination metadata.
type ReviewPage struct {
	Reviews    []*entity.Review
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ReviewUsecase defines the interface for review-related business operations.
type ReviewUsecase interface {
	// SubmitReview upserts the user's review of a perfume and recomputes the
	// perfume's rating aggregate in the same transaction.
	SubmitReview(ctx context.Context, userID, perfumeID uuid.UUID, input *SubmitReviewInput) (*entity.Review, error)

	// DeleteReview removes the user's review of a perfume and recomputes the
	// rating aggregate in the same transaction.
	DeleteReview(ctx context.Context, userID, perfumeID uuid.UUID) error

	// ListReviews returns one page of a perfume's reviews.
	ListReviews(ctx context.Context, perfumeID uuid.UUID, input *ListReviewsInput) (*ReviewPage, error)
}
