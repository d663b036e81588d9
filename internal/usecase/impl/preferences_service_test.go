package impl

import (
	"context"
	"testing"

	"parfum/internal/domain/entity"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/domain/repository"
	mockRepo "parfum/internal/mocks/repository"
	"parfum/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPreferencesService(t *testing.T) (usecase.PreferencesUsecase, *mockRepo.MockPreferencesRepository) {
	prefsRepo := mockRepo.NewMockPreferencesRepository(t)

	service := NewPreferencesService(PreferencesServiceParams{
		PrefsRepo: prefsRepo,
		Logger:    discardLogger(),
	})

	return service, prefsRepo
}

func validQuizAnswers() *usecase.QuizAnswersInput {
	return &usecase.QuizAnswersInput{
		PreferredGender:     "FEMALE",
		FavoriteSeasons:     []string{"SPRING", "SUMMER"},
		PreferredOccasions:  []string{"DAILY"},
		FragranceFamilies:   []string{"FLORAL", "FRESH"},
		IntensityPreference: "LIGHT",
	}
}

func TestPreferencesService_QuizQuestions(t *testing.T) {
	service, _ := createTestPreferencesService(t)

	questions := service.QuizQuestions()

	require.Len(t, questions, 5)
	assert.Equal(t, "preferredGender", questions[0].ID)
	assert.Equal(t, "single", questions[0].Type)
	assert.Equal(t, "favoriteSeasons", questions[1].ID)
	assert.Equal(t, "multiple", questions[1].Type)
}

func TestPreferencesService_SubmitQuiz_Success(t *testing.T) {
	service, prefsRepo := createTestPreferencesService(t)
	ctx := context.Background()
	userID := uuid.New()

	prefsRepo.On("Upsert", ctx, mock.MatchedBy(func(p *entity.UserPreferences) bool {
		return p.UserID == userID &&
			p.PreferredGender == entity.GenderFemale &&
			len(p.FavoriteSeasons) == 2 &&
			p.IntensityPreference == entity.IntensityLight
	})).Return(nil)

	prefs, err := service.SubmitQuiz(ctx, userID, validQuizAnswers())

	require.NoError(t, err)
	assert.Equal(t, []string{"FLORAL", "FRESH"}, prefs.FamilyStrings())
}

func TestPreferencesService_SubmitQuiz_Validation(t *testing.T) {
	service, _ := createTestPreferencesService(t)
	ctx := context.Background()

	mutate := []struct {
		name string
		fn   func(*usecase.QuizAnswersInput)
	}{
		{"bad gender", func(in *usecase.QuizAnswersInput) { in.PreferredGender = "OTHER" }},
		{"bad intensity", func(in *usecase.QuizAnswersInput) { in.IntensityPreference = "OVERWHELMING" }},
		{"empty seasons", func(in *usecase.QuizAnswersInput) { in.FavoriteSeasons = nil }},
		{"bad season value", func(in *usecase.QuizAnswersInput) { in.FavoriteSeasons = []string{"DROUGHT"} }},
		{"empty occasions", func(in *usecase.QuizAnswersInput) { in.PreferredOccasions = nil }},
		{"empty families", func(in *usecase.QuizAnswersInput) { in.FragranceFamilies = []string{} }},
		{"bad family value", func(in *usecase.QuizAnswersInput) { in.FragranceFamilies = []string{"PLASTIC"} }},
	}

	for _, tc := range mutate {
		t.Run(tc.name, func(t *testing.T) {
			input := validQuizAnswers()
			tc.fn(input)

			_, err := service.SubmitQuiz(ctx, uuid.New(), input)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestPreferencesService_GetPreferences_NotFound(t *testing.T) {
	service, prefsRepo := createTestPreferencesService(t)
	ctx := context.Background()
	userID := uuid.New()

	prefsRepo.On("FindByUser", ctx, userID).Return(nil, repository.ErrPreferencesNotFound)

	_, err := service.GetPreferences(ctx, userID)

	require.ErrorIs(t, err, domainerrors.ErrPreferencesNotFound)
}

func TestPreferencesService_UpdatePreferences_Partial(t *testing.T) {
	service, prefsRepo := createTestPreferencesService(t)
	ctx := context.Background()
	userID := uuid.New()

	stored := &entity.UserPreferences{
		UserID:              userID,
		PreferredGender:     entity.GenderFemale,
		FavoriteSeasons:     []entity.Season{entity.SeasonSpring},
		PreferredOccasions:  []entity.Occasion{entity.OccasionDaily},
		FragranceFamilies:   []entity.FragranceFamily{entity.FamilyFloral},
		IntensityPreference: entity.IntensityLight,
	}
	prefsRepo.On("FindByUser", ctx, userID).Return(stored, nil)

	newIntensity := "STRONG"
	prefsRepo.On("Upsert", ctx, mock.MatchedBy(func(p *entity.UserPreferences) bool {
		// Only intensity changes; everything else keeps its stored value.
		return p.IntensityPreference == entity.IntensityStrong &&
			p.PreferredGender == entity.GenderFemale &&
			len(p.FavoriteSeasons) == 1
	})).Return(nil)

	prefs, err := service.UpdatePreferences(ctx, userID, &usecase.UpdatePreferencesInput{
		IntensityPreference: &newIntensity,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.IntensityStrong, prefs.IntensityPreference)
	assert.Equal(t, entity.GenderFemale, prefs.PreferredGender)
}

func TestPreferencesService_UpdatePreferences_QuizNotCompleted(t *testing.T) {
	service, prefsRepo := createTestPreferencesService(t)
	ctx := context.Background()
	userID := uuid.New()

	prefsRepo.On("FindByUser", ctx, userID).Return(nil, repository.ErrPreferencesNotFound)

	gender := "MALE"
	_, err := service.UpdatePreferences(ctx, userID, &usecase.UpdatePreferencesInput{
		PreferredGender: &gender,
	})

	require.ErrorIs(t, err, domainerrors.ErrPreferencesNotFound)
}
