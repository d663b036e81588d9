package usecase

import (
	"context"

	"parfum/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// QuizAnswersInput defines a full quiz submission. Every answer is required.
type QuizAnswersInput struct {
	PreferredGender     string
	FavoriteSeasons     []string
	PreferredOccasions  []string
	FragranceFamilies   []string
	IntensityPreference string
}

// UpdatePreferencesInput defines a partial preferences update. Nil fields are
// left unchanged.
type UpdatePreferencesInput struct {
	PreferredGender     *string
	FavoriteSeasons     []string
	PreferredOccasions  []string
	FragranceFamilies   []string
	IntensityPreference *string
}

// --- Output DTOs ---

// QuizOption is one selectable answer of a quiz question.
type QuizOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// QuizQuestion is one question of the static preference quiz.
type QuizQuestion struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Type     string       `json:"type"` // "single" or "multiple".
	Options  []QuizOption `json:"options"`
}

// PreferencesUsecase defines the interface for quiz and preference operations.
type PreferencesUsecase interface {
	// QuizQuestions returns the static quiz payload.
	QuizQuestions() []QuizQuestion

	// SubmitQuiz validates a full quiz submission and stores the answers,
	// replacing any previous ones.
	SubmitQuiz(ctx context.Context, userID uuid.UUID, input *QuizAnswersInput) (*entity.UserPreferences, error)

	// GetPreferences returns the user's stored answers.
	GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error)

	// UpdatePreferences applies a partial update to stored answers.
	UpdatePreferences(ctx context.Context, userID uuid.UUID, input *UpdatePreferencesInput) (*entity.UserPreferences, error)
}
