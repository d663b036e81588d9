package postgres

import (
	"context"

	"parfum/internal/domain/entity"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/domain/repository"
	"parfum/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// perfumeRepository implements the repository.PerfumeRepository interface using GORM.
type perfumeRepository struct {
	db *gorm.DB
}

// NewPerfumeRepository is the constructor for perfumeRepository.
func NewPerfumeRepository(db *gorm.DB) repository.PerfumeRepository {
	return &perfumeRepository{db: db}
}

// FindByID retrieves a single perfume by its unique ID.
func (repo *perfumeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Perfume, error) {
	var perfumeM model.PerfumeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&perfumeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPerfumeNotFound
		}

		return nil, errors.Wrap(err, "failed to find perfume by id")
	}

	return toPerfumeDomain(&perfumeM), nil
}

// Create persists a new perfume to the database.
func (repo *perfumeRepository) Create(ctx context.Context, perfume *entity.Perfume) error {
	perfumeM := fromPerfumeDomain(perfume)

	if err := repo.db.WithContext(ctx).Create(perfumeM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("perfume violates a data constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create perfume")
	}

	perfume.ID = perfumeM.ID
	perfume.CreatedAt = perfumeM.CreatedAt
	perfume.UpdatedAt = perfumeM.UpdatedAt

	return nil
}

// Update modifies an existing perfume. All catalog columns are written; the
// derived rating columns are deliberately excluded.
func (repo *perfumeRepository) Update(ctx context.Context, perfume *entity.Perfume) error {
	perfumeM := fromPerfumeDomain(perfume)

	result := repo.db.WithContext(ctx).
		Model(&model.PerfumeModel{}).
		Where("id = ?", perfume.ID).
		Select(
			"name", "brand", "description", "price", "stock", "size", "image",
			"gender", "season", "occasion", "intensity", "fragrance_family",
			"top_notes", "middle_notes", "base_notes", "longevity", "sillage",
		).
		Updates(perfumeM)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("perfume violates a data constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update perfume")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPerfumeNotFound
	}

	return nil
}

// Delete removes a perfume and its dependent rows.
func (repo *perfumeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PerfumeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete perfume")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPerfumeNotFound
	}

	return nil
}

// List runs a filtered, sorted, paginated catalog query. The total count is
// taken before pagination so clients can render page controls.
func (repo *perfumeRepository) List(ctx context.Context, filter repository.CatalogFilter) ([]*entity.Perfume, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.PerfumeModel{})

	query = applyCatalogFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count perfumes")
	}

	var perfumeMs []model.PerfumeModel
	if err := query.
		Order(orderClause(filter.SortColumn, filter.SortDesc)).
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&perfumeMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list perfumes")
	}

	return toPerfumeDomainList(perfumeMs), total, nil
}

// applyCatalogFilter translates the optional catalog predicates into WHERE
// clauses. Every predicate is independent; nil means no constraint.
func applyCatalogFilter(query *gorm.DB, filter repository.CatalogFilter) *gorm.DB {
	if filter.Gender != nil {
		query = query.Where("gender = ?", filter.Gender.String())
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			`name ILIKE ? OR brand ILIKE ? OR description ILIKE ?
			OR EXISTS (SELECT 1 FROM unnest(top_notes) AS n WHERE n ILIKE ?)
			OR EXISTS (SELECT 1 FROM unnest(middle_notes) AS n WHERE n ILIKE ?)
			OR EXISTS (SELECT 1 FROM unnest(base_notes) AS n WHERE n ILIKE ?)`,
			pattern, pattern, pattern, pattern, pattern, pattern,
		)
	}

	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}

	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	if filter.MinRating != nil {
		query = query.Where("average_rating >= ?", *filter.MinRating)
	}

	if filter.Season != nil {
		query = query.Where("season IN ?", []string{filter.Season.String(), entity.SeasonAllSeasons.String()})
	}

	if filter.Occasion != nil {
		query = query.Where("occasion = ?", filter.Occasion.String())
	}

	if filter.Intensity != nil {
		query = query.Where("intensity = ?", filter.Intensity.String())
	}

	if filter.FragranceFamily != nil {
		query = query.Where("fragrance_family = ?", filter.FragranceFamily.String())
	}

	return query
}

// orderClause builds the ORDER BY fragment. SortColumn is whitelisted by the
// caller; ID is appended as a tiebreaker so pages are stable.
func orderClause(column string, desc bool) string {
	direction := "ASC"
	if desc {
		direction = "DESC"
	}

	return column + " " + direction + ", id ASC"
}

// FindByPreferences selects in-stock perfumes matching a recommendation
// filter, newest first then cheapest first.
func (repo *perfumeRepository) FindByPreferences(ctx context.Context, filter repository.RecommendationFilter) ([]*entity.Perfume, error) {
	query := applyRecommendationFilter(repo.db.WithContext(ctx).Model(&model.PerfumeModel{}), filter)

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var perfumeMs []model.PerfumeModel
	if err := query.
		Order("created_at DESC, price ASC").
		Find(&perfumeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find perfumes by preferences")
	}

	return toPerfumeDomainList(perfumeMs), nil
}

// applyRecommendationFilter translates a recommendation filter into WHERE
// clauses. Gender matches the preference or UNISEX; every list predicate
// matches the chosen values exactly. The season-or-ALL_SEASONS widening is a
// catalog-browse rule and deliberately does not apply here.
func applyRecommendationFilter(query *gorm.DB, filter repository.RecommendationFilter) *gorm.DB {
	query = query.Where("stock > 0")

	if filter.Gender != "" {
		query = query.Where("gender IN ?", []string{filter.Gender.String(), entity.GenderUnisex.String()})
	}

	if len(filter.Seasons) > 0 {
		seasons := make([]string, 0, len(filter.Seasons))
		for _, season := range filter.Seasons {
			seasons = append(seasons, season.String())
		}
		query = query.Where("season IN ?", seasons)
	}

	if len(filter.Occasions) > 0 {
		occasions := make([]string, 0, len(filter.Occasions))
		for _, occasion := range filter.Occasions {
			occasions = append(occasions, occasion.String())
		}
		query = query.Where("occasion IN ?", occasions)
	}

	if filter.Intensity != "" {
		query = query.Where("intensity = ?", filter.Intensity.String())
	}

	if len(filter.Families) > 0 {
		families := make([]string, 0, len(filter.Families))
		for _, family := range filter.Families {
			families = append(families, family.String())
		}
		query = query.Where("fragrance_family IN ?", families)
	}

	if len(filter.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", filter.ExcludeIDs)
	}

	return query
}

// FindSimilar returns in-stock perfumes sharing the brand or fragrance family
// of the given perfume, newest first, excluding the perfume itself.
func (repo *perfumeRepository) FindSimilar(ctx context.Context, perfume *entity.Perfume, limit int) ([]*entity.Perfume, error) {
	var perfumeMs []model.PerfumeModel

	if err := repo.db.WithContext(ctx).
		Model(&model.PerfumeModel{}).
		Where("id <> ?", perfume.ID).
		Where("stock > 0").
		Where("brand = ? OR fragrance_family = ?", perfume.Brand, perfume.FragranceFamily.String()).
		Order("created_at DESC").
		Limit(limit).
		Find(&perfumeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find similar perfumes")
	}

	return toPerfumeDomainList(perfumeMs), nil
}

// DecrementStock reduces a perfume's stock by quantity. The stock >= quantity
// guard makes the decrement safe under concurrent orders; zero rows affected
// means the stock changed since the caller's availability check.
func (repo *perfumeRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PerfumeModel{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInsufficientStock
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrInsufficientStock
	}

	return nil
}

// UpdateRatingStats persists the derived rating aggregate for a perfume.
func (repo *perfumeRepository) UpdateRatingStats(ctx context.Context, id uuid.UUID, stats entity.RatingStats) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PerfumeModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"average_rating": stats.AverageRating,
			"total_reviews":  stats.TotalReviews,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rating stats")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPerfumeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPerfumeDomain converts a GORM PerfumeModel to a domain Perfume entity.
func toPerfumeDomain(data *model.PerfumeModel) *entity.Perfume {
	if data == nil {
		return nil
	}

	return &entity.Perfume{
		ID:              data.ID,
		Name:            data.Name,
		Brand:           data.Brand,
		Description:     data.Description,
		Price:           data.Price,
		Stock:           data.Stock,
		Size:            data.Size,
		Image:           data.Image,
		Gender:          entity.Gender(data.Gender),
		Season:          entity.Season(data.Season),
		Occasion:        entity.Occasion(data.Occasion),
		Intensity:       entity.Intensity(data.Intensity),
		FragranceFamily: entity.FragranceFamily(data.FragranceFamily),
		TopNotes:        data.TopNotes,
		MiddleNotes:     data.MiddleNotes,
		BaseNotes:       data.BaseNotes,
		Longevity:       data.Longevity,
		Sillage:         data.Sillage,
		AverageRating:   data.AverageRating,
		TotalReviews:    data.TotalReviews,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toPerfumeDomainList converts a slice of models to domain entities.
func toPerfumeDomainList(data []model.PerfumeModel) []*entity.Perfume {
	perfumes := make([]*entity.Perfume, 0, len(data))
	for i := range data {
		perfumes = append(perfumes, toPerfumeDomain(&data[i]))
	}

	return perfumes
}

// fromPerfumeDomain converts a domain Perfume entity to a GORM PerfumeModel.
func fromPerfumeDomain(data *entity.Perfume) *model.PerfumeModel {
	if data == nil {
		return nil
	}

	return &model.PerfumeModel{
		ID:              data.ID,
		Name:            data.Name,
		Brand:           data.Brand,
		Description:     data.Description,
		Price:           data.Price,
		Stock:           data.Stock,
		Size:            data.Size,
		Image:           data.Image,
		Gender:          data.Gender.String(),
		Season:          data.Season.String(),
		Occasion:        data.Occasion.String(),
		Intensity:       data.Intensity.String(),
		FragranceFamily: data.FragranceFamily.String(),
		TopNotes:        pq.StringArray(data.TopNotes),
		MiddleNotes:     pq.StringArray(data.MiddleNotes),
		BaseNotes:       pq.StringArray(data.BaseNotes),
		Longevity:       data.Longevity,
		Sillage:         data.Sillage,
	}
}
