package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "parfum/internal/delivery/context"
	"parfum/internal/domain/entity"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/domain/repository"
	"parfum/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultCatalogPage     = 1
	defaultCatalogPageSize = 12
	defaultSimilarLimit    = 6
)

// catalogSortColumns whitelists the sortable catalog columns. The client-facing
// aliases "rating" and "popularity" map onto the derived columns.
var catalogSortColumns = map[string]string{
	"name":       "name",
	"brand":      "brand",
	"price":      "price",
	"createdAt":  "created_at",
	"created_at": "created_at",
	"rating":     "average_rating",
	"popularity": "total_reviews",
}

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	perfumeRepo repository.PerfumeRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	PerfumeRepo repository.PerfumeRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		perfumeRepo: params.PerfumeRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPerfumes validates the raw query, translates it into repository
// predicates, and returns one catalog page.
func (srv *catalogService) ListPerfumes(ctx context.Context, query *usecase.CatalogQuery) (*usecase.CatalogPage, error) {
	filter, err := buildCatalogFilter(query)
	if err != nil {
		return nil, err
	}

	perfumes, total, err := srv.perfumeRepo.List(ctx, *filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list perfumes")
	}

	return &usecase.CatalogPage{
		Perfumes:   perfumes,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages(total, filter.PageSize),
	}, nil
}

// buildCatalogFilter parses and validates every optional catalog predicate.
// Each invalid value is reported individually so the client can fix its query.
func buildCatalogFilter(query *usecase.CatalogQuery) (*repository.CatalogFilter, error) {
	filter := &repository.CatalogFilter{
		Search:   strings.TrimSpace(query.Search),
		Page:     defaultCatalogPage,
		PageSize: defaultCatalogPageSize,
	}

	if query.Gender != "" {
		gender := entity.Gender(query.Gender)
		if !gender.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid gender %q", query.Gender))
		}
		filter.Gender = &gender
	}

	if query.Season != "" {
		season := entity.Season(query.Season)
		if !season.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid season %q", query.Season))
		}
		filter.Season = &season
	}

	if query.Occasion != "" {
		occasion := entity.Occasion(query.Occasion)
		if !occasion.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid occasion %q", query.Occasion))
		}
		filter.Occasion = &occasion
	}

	if query.Intensity != "" {
		intensity := entity.Intensity(query.Intensity)
		if !intensity.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid intensity %q", query.Intensity))
		}
		filter.Intensity = &intensity
	}

	if query.FragranceFamily != "" {
		family := entity.FragranceFamily(query.FragranceFamily)
		if !family.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid fragrance family %q", query.FragranceFamily))
		}
		filter.FragranceFamily = &family
	}

	var err error
	if filter.MinPrice, err = parseOptionalFloat(query.MinPrice, "minPrice"); err != nil {
		return nil, err
	}
	if filter.MaxPrice, err = parseOptionalFloat(query.MaxPrice, "maxPrice"); err != nil {
		return nil, err
	}
	if filter.MinRating, err = parseOptionalFloat(query.MinRating, "minRating"); err != nil {
		return nil, err
	}

	if query.SortBy != "" {
		column, ok := catalogSortColumns[query.SortBy]
		if !ok {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid sortBy %q", query.SortBy))
		}
		filter.SortColumn = column
	} else {
		filter.SortColumn = "created_at"
		filter.SortDesc = true
	}

	switch query.SortOrder {
	case "":
		// Keep the default direction.
	case "asc":
		filter.SortDesc = false
	case "desc":
		filter.SortDesc = true
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid sortOrder %q", query.SortOrder))
	}

	if query.Page != "" {
		page, err := strconv.Atoi(query.Page)
		if err != nil || page < 1 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("page must be a positive integer")
		}
		filter.Page = page
	}

	if query.PageSize != "" {
		pageSize, err := strconv.Atoi(query.PageSize)
		if err != nil || pageSize < 1 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("pageSize must be a positive integer")
		}
		filter.PageSize = pageSize
	}

	return filter, nil
}

func parseOptionalFloat(raw, field string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("%s must be a number", field))
	}

	return &value, nil
}

func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}

	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// GetPerfume returns a single perfume by id.
func (srv *catalogService) GetPerfume(ctx context.Context, id uuid.UUID) (*entity.Perfume, error) {
	perfume, err := srv.perfumeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPerfumeNotFound) {
			return nil, domainerrors.ErrPerfumeNotFound
		}

		return nil, errors.Wrap(err, "failed to load perfume")
	}

	return perfume, nil
}

// SimilarPerfumes returns in-stock perfumes sharing the brand or fragrance
// family of the given perfume.
func (srv *catalogService) SimilarPerfumes(ctx context.Context, id uuid.UUID, limit int) ([]*entity.Perfume, error) {
	if limit <= 0 {
		limit = defaultSimilarLimit
	}

	perfume, err := srv.GetPerfume(ctx, id)
	if err != nil {
		return nil, err
	}

	similar, err := srv.perfumeRepo.FindSimilar(ctx, perfume, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find similar perfumes")
	}

	return similar, nil
}

// CreatePerfume validates the input and adds the perfume to the catalog.
func (srv *catalogService) CreatePerfume(ctx context.Context, input *usecase.PerfumeInput) (*entity.Perfume, error) {
	perfume, err := perfumeFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := srv.perfumeRepo.Create(ctx, perfume); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Perfume created",
		slog.String("perfume_id", perfume.ID.String()),
		slog.String("name", perfume.Name))

	return perfume, nil
}

// UpdatePerfume validates the input and replaces the perfume's catalog fields.
func (srv *catalogService) UpdatePerfume(ctx context.Context, id uuid.UUID, input *usecase.PerfumeInput) (*entity.Perfume, error) {
	perfume, err := perfumeFromInput(input)
	if err != nil {
		return nil, err
	}
	perfume.ID = id

	if err := srv.perfumeRepo.Update(ctx, perfume); err != nil {
		if errors.Is(err, repository.ErrPerfumeNotFound) {
			return nil, domainerrors.ErrPerfumeNotFound
		}

		return nil, err
	}

	updated, err := srv.perfumeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload updated perfume")
	}

	srv.log(ctx).Info("Perfume updated", slog.String("perfume_id", id.String()))

	return updated, nil
}

// DeletePerfume removes a perfume from the catalog.
func (srv *catalogService) DeletePerfume(ctx context.Context, id uuid.UUID) error {
	if err := srv.perfumeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPerfumeNotFound) {
			return domainerrors.ErrPerfumeNotFound
		}

		return err
	}

	srv.log(ctx).Info("Perfume deleted", slog.String("perfume_id", id.String()))

	return nil
}

// CheckStock reports availability without mutating anything.
func (srv *catalogService) CheckStock(ctx context.Context, id uuid.UUID, quantity int) (bool, error) {
	if quantity < 1 {
		return false, domainerrors.ErrValidationFailed.WithDetails("quantity must be a positive integer")
	}

	perfume, err := srv.GetPerfume(ctx, id)
	if err != nil {
		return false, err
	}

	return perfume.Stock >= quantity, nil
}

// perfumeFromInput validates every catalog field and builds the entity.
func perfumeFromInput(input *usecase.PerfumeInput) (*entity.Perfume, error) {
	name := strings.TrimSpace(input.Name)
	brand := strings.TrimSpace(input.Brand)
	if name == "" || brand == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and brand are required")
	}

	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if input.Stock < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock must not be negative")
	}
	if input.Size <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("size must be positive")
	}
	if input.Longevity < 1 || input.Longevity > 12 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("longevity must be between 1 and 12")
	}
	if input.Sillage < 1 || input.Sillage > 5 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("sillage must be between 1 and 5")
	}

	gender := entity.Gender(input.Gender)
	if !gender.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid gender %q", input.Gender))
	}
	season := entity.Season(input.Season)
	if !season.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid season %q", input.Season))
	}
	occasion := entity.Occasion(input.Occasion)
	if !occasion.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid occasion %q", input.Occasion))
	}
	intensity := entity.Intensity(input.Intensity)
	if !intensity.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid intensity %q", input.Intensity))
	}
	family := entity.FragranceFamily(input.FragranceFamily)
	if !family.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid fragrance family %q", input.FragranceFamily))
	}

	return &entity.Perfume{
		Name:            name,
		Brand:           brand,
		Description:     input.Description,
		Price:           input.Price,
		Stock:           input.Stock,
		Size:            input.Size,
		Image:           input.Image,
		Gender:          gender,
		Season:          season,
		Occasion:        occasion,
		Intensity:       intensity,
		FragranceFamily: family,
		TopNotes:        input.TopNotes,
		MiddleNotes:     input.MiddleNotes,
		BaseNotes:       input.BaseNotes,
		Longevity:       input.Longevity,
		Sillage:         input.Sillage,
	}, nil
}
