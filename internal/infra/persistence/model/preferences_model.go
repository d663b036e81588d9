package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserPreferencesModel mirrors the 'user_preferences' table, one row per user.
// The row's existence is the "quiz completed" signal.
type UserPreferencesModel struct {
	UserID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	PreferredGender     string    `gorm:"type:varchar(10);not null"`
	FavoriteSeasons     pq.StringArray `gorm:"type:text[]"`
	PreferredOccasions  pq.StringArray `gorm:"type:text[]"`
	FragranceFamilies   pq.StringArray `gorm:"type:text[]"`
	IntensityPreference string `gorm:"type:varchar(15);not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserPreferencesModel) TableName() string {
	return "user_preferences"
}
