package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's rating of a perfume. At most one review exists per
// (user, perfume) pair; a second submission replaces the first.
type Review struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PerfumeID uuid.UUID
	Rating    int    // Integer in [0,5].
	Comment   string // Trimmed, at most 1000 characters; may be empty.
	CreatedAt time.Time
	UpdatedAt time.Time

	User *UserSnapshot // Populated by list queries.
}

// RatingStats is the aggregate recomputed from a perfume's review set.
type RatingStats struct {
	TotalReviews  int
	AverageRating float64 // Mean rating rounded to one decimal; 0 when TotalReviews is 0.
}
