package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "parfum/internal/delivery/context"
	"parfum/internal/domain/entity"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/domain/repository"
	"parfum/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// quizQuestions is the static five-question quiz payload served to clients.
var quizQuestions = []usecase.QuizQuestion{
	{
		ID:       "preferredGender",
		Question: "Which fragrances do you usually reach for?",
		Type:     "single",
		Options: []usecase.QuizOption{
			{Value: "MALE", Label: "Masculine"},
			{Value: "FEMALE", Label: "Feminine"},
			{Value: "UNISEX", Label: "Unisex"},
		},
	},
	{
		ID:       "favoriteSeasons",
		Question: "In which seasons do you wear perfume most?",
		Type:     "multiple",
		Options: []usecase.QuizOption{
			{Value: "SPRING", Label: "Spring"},
			{Value: "SUMMER", Label: "Summer"},
			{Value: "AUTUMN", Label: "Autumn"},
			{Value: "WINTER", Label: "Winter"},
			{Value: "ALL_SEASONS", Label: "All year round"},
		},
	},
	{
		ID:       "preferredOccasions",
		Question: "For which occasions are you choosing a perfume?",
		Type:     "multiple",
		Options: []usecase.QuizOption{
			{Value: "DAILY", Label: "Every day"},
			{Value: "EVENING", Label: "Evenings out"},
			{Value: "SPECIAL", Label: "Special events"},
			{Value: "WORK", Label: "At work"},
			{Value: "CASUAL", Label: "Casual"},
		},
	},
	{
		ID:       "fragranceFamilies",
		Question: "Which scent families appeal to you?",
		Type:     "multiple",
		Options: []usecase.QuizOption{
			{Value: "FLORAL", Label: "Floral"},
			{Value: "ORIENTAL", Label: "Oriental"},
			{Value: "WOODY", Label: "Woody"},
			{Value: "FRESH", Label: "Fresh"},
			{Value: "CHYPRE", Label: "Chypre"},
			{Value: "FOUGERE", Label: "Fougère"},
			{Value: "GOURMAND", Label: "Gourmand"},
		},
	},
	{
		ID:       "intensityPreference",
		Question: "How strong should your perfume be?",
		Type:     "single",
		Options: []usecase.QuizOption{
			{Value: "LIGHT", Label: "Light and subtle"},
			{Value: "MODERATE", Label: "Moderate"},
			{Value: "STRONG", Label: "Strong"},
			{Value: "VERY_STRONG", Label: "Very strong"},
		},
	},
}

// preferencesService implements the PreferencesUsecase interface.
type preferencesService struct {
	prefsRepo repository.PreferencesRepository
	logger    *slog.Logger
}

// PreferencesServiceParams holds dependencies for preferencesService, injected by Fx.
type PreferencesServiceParams struct {
	fx.In

	PrefsRepo repository.PreferencesRepository
	Logger    *slog.Logger
}

// NewPreferencesService is the constructor for preferencesService.
func NewPreferencesService(params PreferencesServiceParams) usecase.PreferencesUsecase {
	return &preferencesService{
		prefsRepo: params.PrefsRepo,
		logger:    params.Logger,
	}
}

func (srv *preferencesService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// QuizQuestions returns the static quiz payload.
func (srv *preferencesService) QuizQuestions() []usecase.QuizQuestion {
	return quizQuestions
}

// SubmitQuiz validates a full submission and stores the answers, replacing any
// previous ones. Retaking the quiz is always allowed.
func (srv *preferencesService) SubmitQuiz(ctx context.Context, userID uuid.UUID, input *usecase.QuizAnswersInput) (*entity.UserPreferences, error) {
	gender := entity.Gender(input.PreferredGender)
	if !gender.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid preferredGender %q", input.PreferredGender))
	}

	intensity := entity.Intensity(input.IntensityPreference)
	if !intensity.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid intensityPreference %q", input.IntensityPreference))
	}

	seasons, err := parseSeasons(input.FavoriteSeasons)
	if err != nil {
		return nil, err
	}
	occasions, err := parseOccasions(input.PreferredOccasions)
	if err != nil {
		return nil, err
	}
	families, err := parseFamilies(input.FragranceFamilies)
	if err != nil {
		return nil, err
	}

	prefs := &entity.UserPreferences{
		UserID:              userID,
		PreferredGender:     gender,
		FavoriteSeasons:     seasons,
		PreferredOccasions:  occasions,
		FragranceFamilies:   families,
		IntensityPreference: intensity,
	}

	if err := srv.prefsRepo.Upsert(ctx, prefs); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Quiz submitted", slog.String("user_id", userID.String()))

	return prefs, nil
}

// GetPreferences returns the user's stored answers.
func (srv *preferencesService) GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error) {
	prefs, err := srv.prefsRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			return nil, domainerrors.ErrPreferencesNotFound
		}

		return nil, errors.Wrap(err, "failed to load preferences")
	}

	return prefs, nil
}

// UpdatePreferences applies a partial update. Only provided fields are
// validated and replaced; the rest keep their stored values.
func (srv *preferencesService) UpdatePreferences(ctx context.Context, userID uuid.UUID, input *usecase.UpdatePreferencesInput) (*entity.UserPreferences, error) {
	prefs, err := srv.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.PreferredGender != nil {
		gender := entity.Gender(*input.PreferredGender)
		if !gender.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid preferredGender %q", *input.PreferredGender))
		}
		prefs.PreferredGender = gender
	}

	if input.IntensityPreference != nil {
		intensity := entity.Intensity(*input.IntensityPreference)
		if !intensity.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid intensityPreference %q", *input.IntensityPreference))
		}
		prefs.IntensityPreference = intensity
	}

	if input.FavoriteSeasons != nil {
		seasons, err := parseSeasons(input.FavoriteSeasons)
		if err != nil {
			return nil, err
		}
		prefs.FavoriteSeasons = seasons
	}

	if input.PreferredOccasions != nil {
		occasions, err := parseOccasions(input.PreferredOccasions)
		if err != nil {
			return nil, err
		}
		prefs.PreferredOccasions = occasions
	}

	if input.FragranceFamilies != nil {
		families, err := parseFamilies(input.FragranceFamilies)
		if err != nil {
			return nil, err
		}
		prefs.FragranceFamilies = families
	}

	if err := srv.prefsRepo.Upsert(ctx, prefs); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Preferences updated", slog.String("user_id", userID.String()))

	return prefs, nil
}

// --- Validation helpers ---

func parseSeasons(raw []string) ([]entity.Season, error) {
	if len(raw) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("favoriteSeasons must not be empty")
	}

	seasons := make([]entity.Season, len(raw))
	for i, s := range raw {
		season := entity.Season(s)
		if !season.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid season %q", s))
		}
		seasons[i] = season
	}

	return seasons, nil
}

func parseOccasions(raw []string) ([]entity.Occasion, error) {
	if len(raw) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("preferredOccasions must not be empty")
	}

	occasions := make([]entity.Occasion, len(raw))
	for i, o := range raw {
		occasion := entity.Occasion(o)
		if !occasion.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid occasion %q", o))
		}
		occasions[i] = occasion
	}

	return occasions, nil
}

func parseFamilies(raw []string) ([]entity.FragranceFamily, error) {
	if len(raw) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fragranceFamilies must not be empty")
	}

	families := make([]entity.FragranceFamily, len(raw))
	for i, f := range raw {
		family := entity.FragranceFamily(f)
		if !family.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid fragrance family %q", f))
		}
		families[i] = family
	}

	return families, nil
}
