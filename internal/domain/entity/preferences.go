package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserPreferences holds a user's quiz answers, one row per user. The presence of
// this record is the signal that the user has completed the preference quiz.
type UserPreferences struct {
	UserID              uuid.UUID
	PreferredGender     Gender
	FavoriteSeasons     []Season
	PreferredOccasions  []Occasion
	FragranceFamilies   []FragranceFamily
	IntensityPreference Intensity
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// SeasonStrings returns the favorite seasons as plain strings.
func (p *UserPreferences) SeasonStrings() []string {
	out := make([]string, len(p.FavoriteSeasons))
	for i, s := range p.FavoriteSeasons {
		out[i] = s.String()
	}

	return out
}

// OccasionStrings returns the preferred occasions as plain strings.
func (p *UserPreferences) OccasionStrings() []string {
	out := make([]string, len(p.PreferredOccasions))
	for i, o := range p.PreferredOccasions {
		out[i] = o.String()
	}

	return out
}

// FamilyStrings returns the fragrance families as plain strings.
func (p *UserPreferences) FamilyStrings() []string {
	out := make([]string, len(p.FragranceFamilies))
	for i, f := range p.FragranceFamilies {
		out[i] = f.String()
	}

	return out
}
