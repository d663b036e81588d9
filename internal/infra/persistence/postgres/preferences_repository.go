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
	"gorm.io/gorm/clause"
)

// preferencesRepository implements the repository.PreferencesRepository interface using GORM.
type preferencesRepository struct {
	db *gorm.DB
}

// NewPreferencesRepository is the constructor for preferencesRepository.
func NewPreferencesRepository(db *gorm.DB) repository.PreferencesRepository {
	return &preferencesRepository{db: db}
}

// FindByUser retrieves the preferences row for a user.
func (repo *preferencesRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error) {
	var prefsM model.UserPreferencesModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferencesNotFound
		}

		return nil, errors.Wrap(err, "failed to find preferences by user")
	}

	return toPreferencesDomain(&prefsM), nil
}

// Upsert inserts the preferences row or replaces an existing one for the same
// user. Retaking the quiz overwrites all answers at once.
func (repo *preferencesRepository) Upsert(ctx context.Context, prefs *entity.UserPreferences) error {
	prefsM := fromPreferencesDomain(prefs)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"preferred_gender", "favorite_seasons", "preferred_occasions",
				"fragrance_families", "intensity_preference", "updated_at",
			}),
		}).
		Create(prefsM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("preferences reference a missing user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert preferences")
	}

	prefs.CreatedAt = prefsM.CreatedAt
	prefs.UpdatedAt = prefsM.UpdatedAt

	return nil
}

// Exists reports whether the user has completed the quiz.
func (repo *preferencesRepository) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserPreferencesModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check preferences existence")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// toPreferencesDomain converts a GORM UserPreferencesModel to a domain entity.
func toPreferencesDomain(data *model.UserPreferencesModel) *entity.UserPreferences {
	if data == nil {
		return nil
	}

	prefs := &entity.UserPreferences{
		UserID:              data.UserID,
		PreferredGender:     entity.Gender(data.PreferredGender),
		IntensityPreference: entity.Intensity(data.IntensityPreference),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}

	prefs.FavoriteSeasons = make([]entity.Season, len(data.FavoriteSeasons))
	for i, s := range data.FavoriteSeasons {
		prefs.FavoriteSeasons[i] = entity.Season(s)
	}

	prefs.PreferredOccasions = make([]entity.Occasion, len(data.PreferredOccasions))
	for i, o := range data.PreferredOccasions {
		prefs.PreferredOccasions[i] = entity.Occasion(o)
	}

	prefs.FragranceFamilies = make([]entity.FragranceFamily, len(data.FragranceFamilies))
	for i, f := range data.FragranceFamilies {
		prefs.FragranceFamilies[i] = entity.FragranceFamily(f)
	}

	return prefs
}

// fromPreferencesDomain converts a domain entity to a GORM UserPreferencesModel.
func fromPreferencesDomain(data *entity.UserPreferences) *model.UserPreferencesModel {
	if data == nil {
		return nil
	}

	return &model.UserPreferencesModel{
		UserID:              data.UserID,
		PreferredGender:     data.PreferredGender.String(),
		FavoriteSeasons:     pq.StringArray(data.SeasonStrings()),
		PreferredOccasions:  pq.StringArray(data.OccasionStrings()),
		FragranceFamilies:   pq.StringArray(data.FamilyStrings()),
		IntensityPreference: data.IntensityPreference.String(),
	}
}
