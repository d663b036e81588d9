package impl

import (
	"context"
	"testing"

	"parfum/internal/domain/entity"
	"parfum/internal/domain/repository"
	mockRepo "parfum/internal/mocks/repository"
	"parfum/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRecommendationService(t *testing.T) (
	usecase.RecommendationUsecase,
	*mockRepo.MockPreferencesRepository,
	*mockRepo.MockPerfumeRepository,
	*mockRepo.MockOrderRepository,
) {
	prefsRepo := mockRepo.NewMockPreferencesRepository(t)
	perfumeRepo := mockRepo.NewMockPerfumeRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewRecommendationService(RecommendationServiceParams{
		PrefsRepo:   prefsRepo,
		PerfumeRepo: perfumeRepo,
		OrderRepo:   orderRepo,
		Logger:      discardLogger(),
	})

	return service, prefsRepo, perfumeRepo, orderRepo
}

func testPreferences(userID uuid.UUID) *entity.UserPreferences {
	return &entity.UserPreferences{
		UserID:              userID,
		PreferredGender:     entity.GenderFemale,
		FavoriteSeasons:     []entity.Season{entity.SeasonSpring},
		PreferredOccasions:  []entity.Occasion{entity.OccasionDaily},
		FragranceFamilies:   []entity.FragranceFamily{entity.FamilyFloral},
		IntensityPreference: entity.IntensityLight,
	}
}

func namedPerfume(name, brand string, family entity.FragranceFamily, price float64) *entity.Perfume {
	return &entity.Perfume{
		ID:              uuid.New(),
		Name:            name,
		Brand:           brand,
		FragranceFamily: family,
		Price:           price,
		Stock:           3,
	}
}

func TestRecommendationService_QuizNotCompleted(t *testing.T) {
	service, prefsRepo, _, _ := createTestRecommendationService(t)

	ctx := context.Background()
	userID := uuid.New()

	prefsRepo.On("FindByUser", ctx, userID).
		Return(nil, repository.ErrPreferencesNotFound)

	output, err := service.Recommendations(ctx, userID, &usecase.RecommendationsInput{})

	require.NoError(t, err, "missing quiz answers are a state, not an error")
	assert.False(t, output.HasCompletedQuiz)
	assert.Empty(t, output.Recommendations)
	assert.Zero(t, output.TotalCount)
	assert.Equal(t, "/preferences/quiz", output.QuizURL)
}

func TestRecommendationService_RelaxationFillsShortfall(t *testing.T) {
	service, prefsRepo, perfumeRepo, orderRepo := createTestRecommendationService(t)

	ctx := context.Background()
	userID := uuid.New()

	prefsRepo.On("FindByUser", ctx, userID).Return(testPreferences(userID), nil)

	strict := []*entity.Perfume{
		namedPerfume("A", "Dior", entity.FamilyFloral, 100),
		namedPerfume("B", "Chanel", entity.FamilyFloral, 120),
	}
	relaxed := []*entity.Perfume{
		namedPerfume("C", "YSL", entity.FamilyFloral, 90),
		namedPerfume("D", "Gucci", entity.FamilyFloral, 95),
		namedPerfume("E", "Armani", entity.FamilyFloral, 80),
		namedPerfume("F", "Hermès", entity.FamilyFloral, 150),
		namedPerfume("G", "Prada", entity.FamilyFloral, 110),
	}

	// The strict pass keeps all preference predicates and asks for the full limit.
	perfumeRepo.On("FindByPreferences", ctx, mock.MatchedBy(func(f repository.RecommendationFilter) bool {
		return len(f.Seasons) == 1 && len(f.Occasions) == 1 && f.Intensity != "" && f.Limit == 10
	})).Return(strict, nil).Once()

	// The relaxed pass drops season/occasion/intensity and excludes the picked ids.
	perfumeRepo.On("FindByPreferences", ctx, mock.MatchedBy(func(f repository.RecommendationFilter) bool {
		return len(f.Seasons) == 0 && len(f.Occasions) == 0 && f.Intensity == "" &&
			len(f.ExcludeIDs) == 2 && f.Limit == 8
	})).Return(relaxed, nil).Once()

	orderRepo.On("ListByUser", ctx, userID).Return(nil, nil)

	output, err := service.Recommendations(ctx, userID, &usecase.RecommendationsInput{Limit: 10})

	require.NoError(t, err)
	assert.True(t, output.HasCompletedQuiz)
	assert.Equal(t, 7, output.TotalCount, "2 strict + 5 relaxed with limit 10 yields 7")
	assert.Len(t, output.Recommendations, 7)
	assert.Equal(t, "A", output.Recommendations[0].Name, "query order preserved without history")
}

func TestRecommendationService_StrictPassAloneFillsLimit(t *testing.T) {
	service, prefsRepo, perfumeRepo, orderRepo := createTestRecommendationService(t)

	ctx := context.Background()
	userID := uuid.New()

	prefsRepo.On("FindByUser", ctx, userID).Return(testPreferences(userID), nil)

	strict := make([]*entity.Perfume, 0, 10)
	for range 10 {
		strict = append(strict, namedPerfume("X", "Dior", entity.FamilyFloral, 100))
	}
	perfumeRepo.On("FindByPreferences", ctx, mock.Anything).Return(strict, nil).Once()
	orderRepo.On("ListByUser", ctx, userID).Return(nil, nil)

	output, err := service.Recommendations(ctx, userID, &usecase.RecommendationsInput{Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 10, output.TotalCount)
	perfumeRepo.AssertNumberOfCalls(t, "FindByPreferences", 1)
}

func TestRecommendationService_HistoryRerank(t *testing.T) {
	service, prefsRepo, perfumeRepo, orderRepo := createTestRecommendationService(t)

	ctx := context.Background()
	userID := uuid.New()

	prefsRepo.On("FindByUser", ctx, userID).Return(testPreferences(userID), nil)

	// A matches nothing, B shares the purchased brand and family and sits inside
	// the price band (10 + 5 + 3 = 18), C shares only the family (5).
	candidateA := namedPerfume("A", "Armani", entity.FamilyFresh, 500)
	candidateB := namedPerfume("B", "Dior", entity.FamilyWoody, 105)
	candidateC := namedPerfume("C", "Chanel", entity.FamilyWoody, 400)

	perfumeRepo.On("FindByPreferences", ctx, mock.MatchedBy(func(f repository.RecommendationFilter) bool {
		return len(f.ExcludeIDs) == 0
	})).Return([]*entity.Perfume{candidateA, candidateB, candidateC}, nil).Once()
	perfumeRepo.On("FindByPreferences", ctx, mock.MatchedBy(func(f repository.RecommendationFilter) bool {
		return len(f.ExcludeIDs) == 3
	})).Return(nil, nil).Once()

	orderRepo.On("ListByUser", ctx, userID).Return([]*entity.Order{
		{Perfume: &entity.Perfume{Brand: "Dior", FragranceFamily: entity.FamilyWoody, Price: 100}},
	}, nil)

	output, err := service.Recommendations(ctx, userID, &usecase.RecommendationsInput{Limit: 10})

	require.NoError(t, err)
	require.Len(t, output.Recommendations, 3)
	assert.Equal(t, "B", output.Recommendations[0].Name)
	assert.Equal(t, "C", output.Recommendations[1].Name)
	assert.Equal(t, "A", output.Recommendations[2].Name)
}

func TestRecommendationService_RerankIsStable(t *testing.T) {
	service, prefsRepo, perfumeRepo, orderRepo := createTestRecommendationService(t)

	ctx := context.Background()
	userID := uuid.New()

	prefsRepo.On("FindByUser", ctx, userID).Return(testPreferences(userID), nil)

	// All three candidates score identically, so the query order must survive.
	first := namedPerfume("first", "Dior", entity.FamilyWoody, 100)
	second := namedPerfume("second", "Dior", entity.FamilyWoody, 100)
	third := namedPerfume("third", "Dior", entity.FamilyWoody, 100)

	perfumeRepo.On("FindByPreferences", ctx, mock.MatchedBy(func(f repository.RecommendationFilter) bool {
		return len(f.ExcludeIDs) == 0
	})).Return([]*entity.Perfume{first, second, third}, nil).Once()
	perfumeRepo.On("FindByPreferences", ctx, mock.MatchedBy(func(f repository.RecommendationFilter) bool {
		return len(f.ExcludeIDs) == 3
	})).Return(nil, nil).Once()

	orderRepo.On("ListByUser", ctx, userID).Return([]*entity.Order{
		{Perfume: &entity.Perfume{Brand: "Dior", FragranceFamily: entity.FamilyWoody, Price: 100}},
	}, nil)

	output, err := service.Recommendations(ctx, userID, &usecase.RecommendationsInput{Limit: 10})

	require.NoError(t, err)
	require.Len(t, output.Recommendations, 3)
	assert.Equal(t, "first", output.Recommendations[0].Name)
	assert.Equal(t, "second", output.Recommendations[1].Name)
	assert.Equal(t, "third", output.Recommendations[2].Name)
}

func TestRecommendationService_Pagination(t *testing.T) {
	service, prefsRepo, perfumeRepo, orderRepo := createTestRecommendationService(t)

	ctx := context.Background()
	userID := uuid.New()

	prefsRepo.On("FindByUser", ctx, userID).Return(testPreferences(userID), nil)

	candidates := make([]*entity.Perfume, 0, 5)
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		candidates = append(candidates, namedPerfume(name, "Dior", entity.FamilyFloral, 100))
	}
	perfumeRepo.On("FindByPreferences", ctx, mock.MatchedBy(func(f repository.RecommendationFilter) bool {
		return len(f.ExcludeIDs) == 0
	})).Return(candidates, nil).Once()
	perfumeRepo.On("FindByPreferences", ctx, mock.MatchedBy(func(f repository.RecommendationFilter) bool {
		return len(f.ExcludeIDs) == 5
	})).Return(nil, nil).Once()
	orderRepo.On("ListByUser", ctx, userID).Return(nil, nil)

	output, err := service.Recommendations(ctx, userID, &usecase.RecommendationsInput{
		Limit:    10,
		Page:     2,
		PageSize: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, 5, output.TotalCount, "total reflects the pre-pagination count")
	require.Len(t, output.Recommendations, 2)
	assert.Equal(t, "C", output.Recommendations[0].Name)
	assert.Equal(t, "D", output.Recommendations[1].Name)
}

func TestRecommendationService_PageBeyondEnd(t *testing.T) {
	service, prefsRepo, perfumeRepo, orderRepo := createTestRecommendationService(t)

	ctx := context.Background()
	userID := uuid.New()

	prefsRepo.On("FindByUser", ctx, userID).Return(testPreferences(userID), nil)
	perfumeRepo.On("FindByPreferences", ctx, mock.Anything).Return(nil, nil)
	orderRepo.On("ListByUser", ctx, userID).Return(nil, nil)

	output, err := service.Recommendations(ctx, userID, &usecase.RecommendationsInput{
		Page:     7,
		PageSize: 10,
	})

	require.NoError(t, err)
	assert.Empty(t, output.Recommendations)
}
