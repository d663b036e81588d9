package impl

import (
	"context"
	"log/slog"
	"math"
	"sort"

	deliverycontext "parfum/internal/delivery/context"
	"parfum/internal/domain/entity"
	"parfum/internal/domain/repository"
	"parfum/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultRecommendationLimit = 10
	defaultRecommendationPage  = 1
	defaultRecommendationSize  = 10

	quizURL = "/preferences/quiz"

	// History re-rank weights.
	scoreSameBrand   = 10
	scoreSameFamily  = 5
	scoreNearPrice   = 3
	priceBandPercent = 0.3
)

// recommendationService implements the RecommendationUsecase interface.
type recommendationService struct {
	prefsRepo   repository.PreferencesRepository
	perfumeRepo repository.PerfumeRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// RecommendationServiceParams holds dependencies for recommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	PrefsRepo   repository.PreferencesRepository
	PerfumeRepo repository.PerfumeRepository
	OrderRepo   repository.OrderRepository
	Logger      *slog.Logger
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	return &recommendationService{
		prefsRepo:   params.PrefsRepo,
		perfumeRepo: params.PerfumeRepo,
		orderRepo:   params.OrderRepo,
		logger:      params.Logger,
	}
}

func (srv *recommendationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Recommendations runs the strict pass, fills the shortfall with the relaxed
// pass, re-ranks by order history, and paginates in memory.
func (srv *recommendationService) Recommendations(ctx context.Context, userID uuid.UUID, input *usecase.RecommendationsInput) (*usecase.RecommendationsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}
	page := input.Page
	if page <= 0 {
		page = defaultRecommendationPage
	}
	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = defaultRecommendationSize
	}

	prefs, err := srv.prefsRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			// Not having taken the quiz is an expected state, not an error.
			return &usecase.RecommendationsOutput{
				HasCompletedQuiz: false,
				Recommendations:  []*entity.Perfume{},
				Page:             page,
				PageSize:         pageSize,
				QuizURL:          quizURL,
			}, nil
		}

		return nil, errors.Wrap(err, "failed to load preferences")
	}

	picked, err := srv.selectCandidates(ctx, prefs, limit)
	if err != nil {
		return nil, err
	}

	if err := srv.rerankByHistory(ctx, userID, picked); err != nil {
		return nil, err
	}

	total := len(picked)
	pageItems := paginatePerfumes(picked, page, pageSize)

	srv.log(ctx).Debug("Recommendations computed",
		slog.String("user_id", userID.String()),
		slog.Int("total", total))

	return &usecase.RecommendationsOutput{
		HasCompletedQuiz: true,
		Recommendations:  pageItems,
		TotalCount:       total,
		Page:             page,
		PageSize:         pageSize,
	}, nil
}

// selectCandidates runs the strict preference filter, then fills any shortfall
// with the relaxed filter. A result shorter than limit is acceptable.
func (srv *recommendationService) selectCandidates(ctx context.Context, prefs *entity.UserPreferences, limit int) ([]*entity.Perfume, error) {
	strict, err := srv.perfumeRepo.FindByPreferences(ctx, repository.RecommendationFilter{
		Gender:    prefs.PreferredGender,
		Seasons:   prefs.FavoriteSeasons,
		Occasions: prefs.PreferredOccasions,
		Intensity: prefs.IntensityPreference,
		Families:  prefs.FragranceFamilies,
		Limit:     limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "strict recommendation query failed")
	}

	if len(strict) >= limit {
		return strict, nil
	}

	exclude := make([]uuid.UUID, len(strict))
	for i, p := range strict {
		exclude[i] = p.ID
	}

	relaxed, err := srv.perfumeRepo.FindByPreferences(ctx, repository.RecommendationFilter{
		Gender:     prefs.PreferredGender,
		Families:   prefs.FragranceFamilies,
		ExcludeIDs: exclude,
		Limit:      limit - len(strict),
	})
	if err != nil {
		return nil, errors.Wrap(err, "relaxed recommendation query failed")
	}

	return append(strict, relaxed...), nil
}

// rerankByHistory boosts candidates resembling the user's past purchases. A
// user with no orders keeps the query order untouched.
func (srv *recommendationService) rerankByHistory(ctx context.Context, userID uuid.UUID, candidates []*entity.Perfume) error {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load order history")
	}
	if len(orders) == 0 {
		return nil
	}

	brands := make(map[string]struct{})
	families := make(map[entity.FragranceFamily]struct{})
	var priceSum float64
	var priced int
	for _, order := range orders {
		if order.Perfume == nil {
			continue
		}
		brands[order.Perfume.Brand] = struct{}{}
		families[order.Perfume.FragranceFamily] = struct{}{}
		priceSum += order.Perfume.Price
		priced++
	}
	if priced == 0 {
		return nil
	}
	meanPaid := priceSum / float64(priced)

	scores := make(map[uuid.UUID]int, len(candidates))
	for _, candidate := range candidates {
		score := 0
		if _, ok := brands[candidate.Brand]; ok {
			score += scoreSameBrand
		}
		if _, ok := families[candidate.FragranceFamily]; ok {
			score += scoreSameFamily
		}
		if math.Abs(candidate.Price-meanPaid) <= priceBandPercent*meanPaid {
			score += scoreNearPrice
		}
		scores[candidate.ID] = score
	}

	// Stable sort keeps the query order among equally scored candidates.
	sort.SliceStable(candidates, func(i, j int) bool {
		return scores[candidates[i].ID] > scores[candidates[j].ID]
	})

	return nil
}

// paginatePerfumes returns one page of an in-memory result set.
func paginatePerfumes(perfumes []*entity.Perfume, page, pageSize int) []*entity.Perfume {
	start := (page - 1) * pageSize
	if start >= len(perfumes) {
		return []*entity.Perfume{}
	}

	end := start + pageSize
	if end > len(perfumes) {
		end = len(perfumes)
	}

	return perfumes[start:end]
}
