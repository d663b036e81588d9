package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

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
	maxCommentLength   = 1000
	defaultReviewLimit = 10
	maxReviewLimit     = 50
)

// reviewSortColumns whitelists the review sort fields.
var reviewSortColumns = map[string]string{
	"createdAt": "created_at",
	"rating":    "rating",
}

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager   repository.TransactionManager
	perfumeRepo repository.PerfumeRepository
	reviewRepo  repository.ReviewRepository
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PerfumeRepo repository.PerfumeRepository
	ReviewRepo  repository.ReviewRepository
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:   params.TxManager,
		perfumeRepo: params.PerfumeRepo,
		reviewRepo:  params.ReviewRepo,
		logger:      params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitReview upserts the user's review and recomputes the perfume's rating
// aggregate in the same transaction, so the derived columns can never drift
// from the review set.
func (srv *reviewService) SubmitReview(ctx context.Context, userID, perfumeID uuid.UUID, input *usecase.SubmitReviewInput) (*entity.Review, error) {
	if input.Rating < 0 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rating must be an integer between 0 and 5")
	}

	comment := strings.TrimSpace(input.Comment)
	if utf8.RuneCountInString(comment) > maxCommentLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("comment must be at most 1000 characters")
	}

	var submitted *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		perfumeRepo := repoFactory.NewPerfumeRepository()
		reviewRepo := repoFactory.NewReviewRepository()

		if _, err := perfumeRepo.FindByID(ctx, perfumeID); err != nil {
			if errors.Is(err, repository.ErrPerfumeNotFound) {
				return domainerrors.ErrPerfumeNotFound
			}

			return errors.Wrap(err, "failed to load perfume")
		}

		review := &entity.Review{
			UserID:    userID,
			PerfumeID: perfumeID,
			Rating:    input.Rating,
			Comment:   comment,
		}
		if err := reviewRepo.Upsert(ctx, review); err != nil {
			return err
		}

		if err := recomputeRatingStats(ctx, reviewRepo, perfumeRepo, perfumeID); err != nil {
			return err
		}

		submitted = review

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Review submitted",
		slog.String("perfume_id", perfumeID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("rating", submitted.Rating))

	return submitted, nil
}

// DeleteReview removes the user's review and recomputes the rating aggregate
// in the same transaction.
func (srv *reviewService) DeleteReview(ctx context.Context, userID, perfumeID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		perfumeRepo := repoFactory.NewPerfumeRepository()
		reviewRepo := repoFactory.NewReviewRepository()

		if err := reviewRepo.DeleteByUserAndPerfume(ctx, userID, perfumeID); err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrReviewNotFound
			}

			return err
		}

		return recomputeRatingStats(ctx, reviewRepo, perfumeRepo, perfumeID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Review deleted",
		slog.String("perfume_id", perfumeID.String()),
		slog.String("user_id", userID.String()))

	return nil
}

// recomputeRatingStats reads the current aggregate and writes it onto the
// perfume row. Must run inside the same transaction as the review mutation.
func recomputeRatingStats(ctx context.Context, reviewRepo repository.ReviewRepository, perfumeRepo repository.PerfumeRepository, perfumeID uuid.UUID) error {
	stats, err := reviewRepo.Stats(ctx, perfumeID)
	if err != nil {
		return err
	}

	if err := perfumeRepo.UpdateRatingStats(ctx, perfumeID, stats); err != nil {
		return errors.Wrap(err, "failed to persist rating stats")
	}

	return nil
}

// ListReviews validates the listing parameters and returns one page of a
// perfume's reviews.
func (srv *reviewService) ListReviews(ctx context.Context, perfumeID uuid.UUID, input *usecase.ListReviewsInput) (*usecase.ReviewPage, error) {
	opts, err := buildReviewListOptions(input)
	if err != nil {
		return nil, err
	}

	if _, err := srv.perfumeRepo.FindByID(ctx, perfumeID); err != nil {
		if errors.Is(err, repository.ErrPerfumeNotFound) {
			return nil, domainerrors.ErrPerfumeNotFound
		}

		return nil, errors.Wrap(err, "failed to load perfume")
	}

	reviews, total, err := srv.reviewRepo.ListByPerfume(ctx, perfumeID, *opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return &usecase.ReviewPage{
		Reviews:    reviews,
		Total:      total,
		Page:       opts.Page,
		Limit:      opts.Limit,
		TotalPages: totalPages(total, opts.Limit),
	}, nil
}

func buildReviewListOptions(input *usecase.ListReviewsInput) (*repository.ReviewListOptions, error) {
	opts := &repository.ReviewListOptions{
		Page:     1,
		Limit:    defaultReviewLimit,
		SortBy:   "created_at",
		SortDesc: true,
	}

	if input.Page != "" {
		page, err := strconv.Atoi(input.Page)
		if err != nil || page < 1 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("page must be a positive integer")
		}
		opts.Page = page
	}

	if input.Limit != "" {
		limit, err := strconv.Atoi(input.Limit)
		if err != nil || limit < 1 || limit > maxReviewLimit {
			return nil, domainerrors.ErrValidationFailed.WithDetails("limit must be an integer between 1 and 50")
		}
		opts.Limit = limit
	}

	if input.SortBy != "" {
		column, ok := reviewSortColumns[input.SortBy]
		if !ok {
			return nil, domainerrors.ErrValidationFailed.WithDetails("sortBy must be createdAt or rating")
		}
		opts.SortBy = column
	}

	switch input.SortOrder {
	case "":
		// Keep the default direction.
	case "asc":
		opts.SortDesc = false
	case "desc":
		opts.SortDesc = true
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("sortOrder must be asc or desc")
	}

	return opts, nil
}
