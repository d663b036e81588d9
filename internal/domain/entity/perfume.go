package entity

import (
	"time"

	"github.com/google/uuid"
)

// Perfume is a catalog item. AverageRating and TotalReviews are derived from the
// perfume's review set and are recomputed by the review workflow; no other code
// path may write them.
type Perfume struct {
	ID              uuid.UUID
	Name            string
	Brand           string
	Description     string
	Price           float64 // Unit price, never negative.
	Stock           int     // Sellable units, never negative.
	Size            float64 // Bottle size in ml, always positive.
	Image           string
	Gender          Gender
	Season          Season
	Occasion        Occasion
	Intensity       Intensity
	FragranceFamily FragranceFamily
	TopNotes        []string // Ordered, most volatile first.
	MiddleNotes     []string
	BaseNotes       []string
	Longevity       int     // Duration category, 1..12.
	Sillage         int     // Projection strength, 1..5.
	AverageRating   float64 // Mean review rating rounded to one decimal; 0 with no reviews.
	TotalReviews    int     // Count of reviews for this perfume.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// InStock reports whether at least one unit is sellable.
func (p *Perfume) InStock() bool {
	return p.Stock > 0
}
