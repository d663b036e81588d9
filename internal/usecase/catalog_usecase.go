package usecase

import (
	"context"

	"parfum/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CatalogQuery carries the raw catalog browse parameters as the client sent
// them. Empty strings mean "not provided"; parsing and validation happen in the
// service so a bad value can be reported as a validation error rather than
// silently ignored.
type CatalogQuery struct {
	Gender          string
	Search          string
	MinPrice        string
	MaxPrice        string
	MinRating       string
	Season          string
	Occasion        string
	Intensity       string
	FragranceFamily string
	SortBy          string
	SortOrder       string
	Page            string
	PageSize        string
}

// PerfumeInput defines the fields of a perfume create or full update.
type PerfumeInput struct {
	Name            string
	Brand           string
	Description     string
	Price           float64
	Stock           int
	Size            float64
	Image           string
	Gender          string
	Season          string
	Occasion        string
	Intensity       string
	FragranceFamily string
	TopNotes        []string
	MiddleNotes     []string
	BaseNotes       []string
	Longevity       int
	Sillage         int
}

// --- Output DTOs ---

// CatalogPage is one page of catalog results plus the pre-pagination total.
type CatalogPage struct {
	Perfumes   []*entity.Perfume
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// CatalogUsecase defines the interface for catalog browse and admin mutation
// operations.
type CatalogUsecase interface {
	// ListPerfumes runs a filtered, sorted, paginated catalog query.
	ListPerfumes(ctx context.Context, query *CatalogQuery) (*CatalogPage, error)

	// GetPerfume returns a single perfume by id.
	GetPerfume(ctx context.Context, id uuid.UUID) (*entity.Perfume, error)

	// SimilarPerfumes returns in-stock perfumes sharing the brand or fragrance
	// family of the given perfume.
	SimilarPerfumes(ctx context.Context, id uuid.UUID, limit int) ([]*entity.Perfume, error)

	// CreatePerfume adds a perfume to the catalog. Admin only.
	CreatePerfume(ctx context.Context, input *PerfumeInput) (*entity.Perfume, error)

	// UpdatePerfume replaces a perfume's catalog fields. Admin only.
	UpdatePerfume(ctx context.Context, id uuid.UUID, input *PerfumeInput) (*entity.Perfume, error)

	// DeletePerfume removes a perfume. Admin only.
	DeletePerfume(ctx context.Context, id uuid.UUID) error

	// CheckStock reports whether the perfume has at least quantity units. Admin only.
	CheckStock(ctx context.Context, id uuid.UUID, quantity int) (bool, error)
}
