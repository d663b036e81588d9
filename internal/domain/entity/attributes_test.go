package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGender_IsValid(t *testing.T) {
	for _, g := range []Gender{GenderMale, GenderFemale, GenderUnisex} {
		assert.True(t, g.IsValid(), g.String())
	}

	assert.False(t, Gender("").IsValid())
	assert.False(t, Gender("male").IsValid(), "values are case sensitive")
	assert.False(t, Gender("OTHER").IsValid())
}

func TestSeason_IsValid(t *testing.T) {
	for _, s := range []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter, SeasonAllSeasons} {
		assert.True(t, s.IsValid(), s.String())
	}

	assert.False(t, Season("").IsValid())
	assert.False(t, Season("FALL").IsValid())
}

func TestOccasion_IsValid(t *testing.T) {
	for _, o := range []Occasion{OccasionDaily, OccasionEvening, OccasionSpecial, OccasionWork, OccasionCasual} {
		assert.True(t, o.IsValid(), o.String())
	}

	assert.False(t, Occasion("").IsValid())
	assert.False(t, Occasion("SPORT").IsValid())
}

func TestIntensity_IsValid(t *testing.T) {
	for _, i := range []Intensity{IntensityLight, IntensityModerate, IntensityStrong, IntensityVeryStrong} {
		assert.True(t, i.IsValid(), i.String())
	}

	assert.False(t, Intensity("").IsValid())
	assert.False(t, Intensity("MEDIUM").IsValid())
}

func TestFragranceFamily_IsValid(t *testing.T) {
	families := []FragranceFamily{
		FamilyFloral, FamilyOriental, FamilyWoody, FamilyFresh,
		FamilyChypre, FamilyFougere, FamilyGourmand,
	}
	for _, f := range families {
		assert.True(t, f.IsValid(), f.String())
	}

	assert.False(t, FragranceFamily("").IsValid())
	assert.False(t, FragranceFamily("CITRUS").IsValid())
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleUser.IsValid())
	assert.False(t, Role("SUPERUSER").IsValid())
}

func TestPerfume_InStock(t *testing.T) {
	assert.True(t, (&Perfume{Stock: 1}).InStock())
	assert.False(t, (&Perfume{Stock: 0}).InStock())
}
