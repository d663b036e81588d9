package postgres

import (
	"testing"

	"parfum/internal/domain/entity"
	"parfum/internal/domain/repository"
	"parfum/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newDryRunDB opens a GORM handle that builds SQL without touching a server,
// so the filter translation can be asserted on the generated statement.
func newDryRunDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(postgres.Open("host=localhost user=parfum dbname=parfum"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	return db
}

func TestApplyRecommendationFilter_SeasonsMatchExactly(t *testing.T) {
	db := newDryRunDB(t)

	filter := repository.RecommendationFilter{
		Gender:  entity.GenderFemale,
		Seasons: []entity.Season{entity.SeasonWinter},
	}

	tx := applyRecommendationFilter(db.Model(&model.PerfumeModel{}), filter).
		Find(&[]model.PerfumeModel{})
	require.NoError(t, tx.Error)

	vars := tx.Statement.Vars
	assert.Contains(t, vars, "WINTER")
	assert.NotContains(t, vars, "ALL_SEASONS", "season list must stay exactly the chosen seasons")
	assert.Contains(t, vars, "UNISEX", "gender widens to unisex")
	assert.Contains(t, tx.Statement.SQL.String(), "stock > 0")
}

func TestApplyRecommendationFilter_AllPredicates(t *testing.T) {
	db := newDryRunDB(t)

	excluded := uuid.New()
	filter := repository.RecommendationFilter{
		Gender:     entity.GenderMale,
		Seasons:    []entity.Season{entity.SeasonSummer, entity.SeasonSpring},
		Occasions:  []entity.Occasion{entity.OccasionWork},
		Intensity:  entity.IntensityLight,
		Families:   []entity.FragranceFamily{entity.FamilyFresh},
		ExcludeIDs: []uuid.UUID{excluded},
	}

	tx := applyRecommendationFilter(db.Model(&model.PerfumeModel{}), filter).
		Find(&[]model.PerfumeModel{})
	require.NoError(t, tx.Error)

	vars := tx.Statement.Vars
	assert.Contains(t, vars, "SUMMER")
	assert.Contains(t, vars, "SPRING")
	assert.Contains(t, vars, "WORK")
	assert.Contains(t, vars, "LIGHT")
	assert.Contains(t, vars, "FRESH")
	assert.Contains(t, vars, excluded)
	assert.NotContains(t, vars, "ALL_SEASONS")
}

func TestApplyCatalogFilter_SeasonIncludesAllSeasons(t *testing.T) {
	db := newDryRunDB(t)

	season := entity.SeasonWinter
	filter := repository.CatalogFilter{Season: &season}

	tx := applyCatalogFilter(db.Model(&model.PerfumeModel{}), filter).
		Find(&[]model.PerfumeModel{})
	require.NoError(t, tx.Error)

	vars := tx.Statement.Vars
	assert.Contains(t, vars, "WINTER")
	assert.Contains(t, vars, "ALL_SEASONS", "catalog browse treats ALL_SEASONS as matching every season")
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "price ASC, id ASC", orderClause("price", false))
	assert.Equal(t, "created_at DESC, id ASC", orderClause("created_at", true))
}
