package usecase

import (
	"context"

	"parfum/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RecommendationsInput controls how many perfumes the engine selects and which
// page of the result the caller wants. Zero values fall back to the defaults.
type RecommendationsInput struct {
	Limit    int
	Page     int
	PageSize int
}

// --- Output DTOs ---

// RecommendationsOutput is the recommendation result. When the user has not
// completed the quiz, HasCompletedQuiz is false, the list is empty, and QuizURL
// points the client at the quiz. That state is not an error.
type RecommendationsOutput struct {
	HasCompletedQuiz bool
	Recommendations  []*entity.Perfume
	TotalCount       int
	Page             int
	PageSize         int
	QuizURL          string
}

// RecommendationUsecase defines the interface for the preference-driven
// recommendation engine.
type RecommendationUsecase interface {
	// Recommendations selects perfumes matching the user's quiz answers,
	// relaxes the filter when the strict pass falls short, and re-ranks by the
	// user's order history.
	Recommendations(ctx context.Context, userID uuid.UUID, input *RecommendationsInput) (*RecommendationsOutput, error)
}
