package postgres

import (
	"context"
	"math"

	"parfum/internal/domain/entity"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/domain/repository"
	"parfum/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reviewRepository implements the repository.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Upsert inserts the review or replaces the rating and comment of an existing
// row for the same (user, perfume) pair. The ON CONFLICT clause rides on the
// composite unique index, so concurrent submissions cannot create duplicates.
func (repo *reviewRepository) Upsert(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "perfume_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
		}).
		Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPerfumeNotFound.WrapMessage("review references a missing row")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("review violates a data constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert review")
	}

	// On the update path the returning ID is the generated one, not the stored
	// row's, so read the row back to give the caller the real identity.
	var stored model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND perfume_id = ?", review.UserID, review.PerfumeID).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to read back upserted review")
	}

	review.ID = stored.ID
	review.CreatedAt = stored.CreatedAt
	review.UpdatedAt = stored.UpdatedAt

	return nil
}

// DeleteByUserAndPerfume removes the review for the (user, perfume) pair.
func (repo *reviewRepository) DeleteByUserAndPerfume(ctx context.Context, userID, perfumeID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND perfume_id = ?", userID, perfumeID).
		Delete(&model.ReviewModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// ListByPerfume returns one page of a perfume's reviews plus the total count.
func (repo *reviewRepository) ListByPerfume(ctx context.Context, perfumeID uuid.UUID, opts repository.ReviewListOptions) ([]*entity.Review, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("perfume_id = ?", perfumeID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count reviews")
	}

	var reviewMs []model.ReviewModel
	if err := query.
		Preload("User").
		Order(orderClause(opts.SortBy, opts.SortDesc)).
		Offset((opts.Page - 1) * opts.Limit).
		Limit(opts.Limit).
		Find(&reviewMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reviews")
	}

	return toReviewDomainList(reviewMs), total, nil
}

// Stats aggregates the perfume's current review set. The average is rounded to
// one decimal and reported as 0 when the perfume has no reviews.
func (repo *reviewRepository) Stats(ctx context.Context, perfumeID uuid.UUID) (entity.RatingStats, error) {
	var row struct {
		Total int64
		Avg   *float64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COUNT(*) AS total, AVG(rating) AS avg").
		Where("perfume_id = ?", perfumeID).
		Scan(&row).Error; err != nil {
		return entity.RatingStats{}, errors.Wrap(err, "failed to aggregate review stats")
	}

	stats := entity.RatingStats{TotalReviews: int(row.Total)}
	if row.Avg != nil {
		stats.AverageRating = math.Round(*row.Avg*10) / 10
	}

	return stats, nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	review := &entity.Review{
		ID:        data.ID,
		UserID:    data.UserID,
		PerfumeID: data.PerfumeID,
		Rating:    data.Rating,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if data.Comment != nil {
		review.Comment = *data.Comment
	}

	if data.User != nil {
		review.User = &entity.UserSnapshot{
			ID:    data.User.ID,
			Name:  data.User.Name,
			Email: data.User.Email,
		}
	}

	return review
}

// toReviewDomainList converts a slice of models to domain entities.
func toReviewDomainList(data []model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(data))
	for i := range data {
		reviews = append(reviews, toReviewDomain(&data[i]))
	}

	return reviews
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	reviewM := &model.ReviewModel{
		ID:        data.ID,
		UserID:    data.UserID,
		PerfumeID: data.PerfumeID,
		Rating:    data.Rating,
	}

	if data.Comment != "" {
		comment := data.Comment
		reviewM.Comment = &comment
	}

	return reviewM
}
