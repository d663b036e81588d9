package repository

import (
	"context"
	"errors"

	"parfum/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPreferencesNotFound is a domain-specific error returned when a user has no stored preferences.
var ErrPreferencesNotFound = errors.New("user preferences not found")

// PreferencesRepository defines the standard operations for quiz preference persistence.
type PreferencesRepository interface {
	// FindByUser retrieves the preferences row for a user.
	// Returns ErrPreferencesNotFound when the user has not completed the quiz.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error)

	// Upsert inserts the preferences row or replaces an existing one for the same user.
	Upsert(ctx context.Context, prefs *entity.UserPreferences) error

	// Exists reports whether a preferences row exists for the user, i.e. whether
	// the user has completed the quiz.
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
}
