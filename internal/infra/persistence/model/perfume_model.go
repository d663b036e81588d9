package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PerfumeModel mirrors the 'perfumes' table. average_rating and total_reviews
// are derived columns; only the review stats recompute writes them.
type PerfumeModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Brand           string    `gorm:"type:varchar(255);not null;index"`
	Description     string    `gorm:"type:text"`
	Price           float64   `gorm:"type:numeric(10,2);not null;check:price >= 0"`
	Stock           int       `gorm:"not null;default:0;check:stock >= 0"`
	Size            float64   `gorm:"type:numeric(6,1);not null;check:size > 0"`
	Image           string    `gorm:"type:text"`
	Gender          string    `gorm:"type:varchar(10);not null;index"`
	Season          string    `gorm:"type:varchar(15);not null"`
	Occasion        string    `gorm:"type:varchar(10);not null"`
	Intensity       string    `gorm:"type:varchar(15);not null"`
	FragranceFamily string    `gorm:"type:varchar(10);not null;index"`
	TopNotes        pq.StringArray `gorm:"type:text[]"`
	MiddleNotes     pq.StringArray `gorm:"type:text[]"`
	BaseNotes       pq.StringArray `gorm:"type:text[]"`
	Longevity       int     `gorm:"not null;check:longevity BETWEEN 1 AND 12"`
	Sillage         int     `gorm:"not null;check:sillage BETWEEN 1 AND 5"`
	AverageRating   float64 `gorm:"type:numeric(2,1);not null;default:0"`
	TotalReviews    int     `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Orders  []OrderModel  `gorm:"foreignKey:PerfumeID"`
	Reviews []ReviewModel `gorm:"foreignKey:PerfumeID"`
}

// TableName explicitly sets the table name for GORM.
func (PerfumeModel) TableName() string {
	return "perfumes"
}
