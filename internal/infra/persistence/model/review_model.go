package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. The composite unique index on
// (user_id, perfume_id) is what guarantees at most one review per pair even
// under concurrent submissions.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_perfume"`
	PerfumeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_perfume;index"`
	Rating    int       `gorm:"not null;check:rating BETWEEN 0 AND 5"`
	Comment   *string   `gorm:"type:varchar(1000)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
