package repository

import (
	"context"
	"errors"

	"parfum/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPerfumeNotFound is a domain-specific error returned when a perfume is not found.
var ErrPerfumeNotFound = errors.New("perfume not found")

// CatalogFilter describes the independently optional predicates of a catalog
// query. Nil pointer fields mean "no constraint". SortColumn must already be a
// resolved, whitelisted column name; validation happens in the usecase layer.
type CatalogFilter struct {
	Gender          *entity.Gender
	Search          string // Case-insensitive match over name/brand/description and the notes lists.
	MinPrice        *float64
	MaxPrice        *float64
	MinRating       *float64
	Season          *entity.Season // Matches the season itself or ALL_SEASONS.
	Occasion        *entity.Occasion
	Intensity       *entity.Intensity
	FragranceFamily *entity.FragranceFamily
	SortColumn      string
	SortDesc        bool
	Page            int
	PageSize        int
}

// RecommendationFilter selects in-stock perfumes for the recommendation engine.
// Empty slice fields mean "no constraint", which is how the relaxed pass drops
// the season/occasion/intensity predicates. Results are ordered newest first,
// then price ascending.
type RecommendationFilter struct {
	Gender     entity.Gender // Matched as gender = Gender OR gender = UNISEX.
	Seasons    []entity.Season
	Occasions  []entity.Occasion
	Intensity  entity.Intensity // Empty string means no constraint.
	Families   []entity.FragranceFamily
	ExcludeIDs []uuid.UUID
	Limit      int
}

// PerfumeRepository defines the standard operations for perfume persistence.
type PerfumeRepository interface {
	// FindByID retrieves a single perfume by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Perfume, error)

	// Create persists a new perfume to the storage.
	Create(ctx context.Context, perfume *entity.Perfume) error

	// Update modifies an existing perfume. Returns ErrPerfumeNotFound when the id is unknown.
	Update(ctx context.Context, perfume *entity.Perfume) error

	// Delete removes a perfume. Returns ErrPerfumeNotFound when the id is unknown.
	Delete(ctx context.Context, id uuid.UUID) error

	// List runs a filtered, sorted, paginated catalog query and returns the
	// current page plus the total count of matching rows.
	List(ctx context.Context, filter CatalogFilter) ([]*entity.Perfume, int64, error)

	// FindByPreferences selects in-stock perfumes matching a recommendation filter.
	FindByPreferences(ctx context.Context, filter RecommendationFilter) ([]*entity.Perfume, error)

	// FindSimilar returns in-stock perfumes sharing the brand or fragrance family
	// of the given perfume, newest first, excluding the perfume itself.
	FindSimilar(ctx context.Context, perfume *entity.Perfume, limit int) ([]*entity.Perfume, error)

	// DecrementStock reduces a perfume's stock by quantity. Callers are expected
	// to have verified availability inside the same transaction.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// UpdateRatingStats persists the derived rating aggregate for a perfume.
	// Only the review workflow may call this.
	UpdateRatingStats(ctx context.Context, id uuid.UUID, stats entity.RatingStats) error
}
