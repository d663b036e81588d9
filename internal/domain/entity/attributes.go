package entity

// Gender classifies a perfume's target audience and doubles as a preference dimension.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderUnisex Gender = "UNISEX"
)

// String returns the string representation of the Gender.
func (g Gender) String() string {
	return string(g)
}

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnisex:
		return true
	default:
		return false
	}
}

// Season classifies when a perfume is intended to be worn.
type Season string

const (
	SeasonSpring     Season = "SPRING"
	SeasonSummer     Season = "SUMMER"
	SeasonAutumn     Season = "AUTUMN"
	SeasonWinter     Season = "WINTER"
	SeasonAllSeasons Season = "ALL_SEASONS"
)

// String returns the string representation of the Season.
func (s Season) String() string {
	return string(s)
}

// IsValid checks if the Season is a valid value.
func (s Season) IsValid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter, SeasonAllSeasons:
		return true
	default:
		return false
	}
}

// Occasion classifies the setting a perfume suits.
type Occasion string

const (
	OccasionDaily   Occasion = "DAILY"
	OccasionEvening Occasion = "EVENING"
	OccasionSpecial Occasion = "SPECIAL"
	OccasionWork    Occasion = "WORK"
	OccasionCasual  Occasion = "CASUAL"
)

// String returns the string representation of the Occasion.
func (o Occasion) String() string {
	return string(o)
}

// IsValid checks if the Occasion is a valid value.
func (o Occasion) IsValid() bool {
	switch o {
	case OccasionDaily, OccasionEvening, OccasionSpecial, OccasionWork, OccasionCasual:
		return true
	default:
		return false
	}
}

// Intensity describes how strongly a perfume projects.
type Intensity string

const (
	IntensityLight      Intensity = "LIGHT"
	IntensityModerate   Intensity = "MODERATE"
	IntensityStrong     Intensity = "STRONG"
	IntensityVeryStrong Intensity = "VERY_STRONG"
)

// String returns the string representation of the Intensity.
func (i Intensity) String() string {
	return string(i)
}

// IsValid checks if the Intensity is a valid value.
func (i Intensity) IsValid() bool {
	switch i {
	case IntensityLight, IntensityModerate, IntensityStrong, IntensityVeryStrong:
		return true
	default:
		return false
	}
}

// FragranceFamily is the scent category a perfume belongs to. It is used both as
// a catalog attribute and as a preference dimension in the quiz.
type FragranceFamily string

const (
	FamilyFloral   FragranceFamily = "FLORAL"
	FamilyOriental FragranceFamily = "ORIENTAL"
	FamilyWoody    FragranceFamily = "WOODY"
	FamilyFresh    FragranceFamily = "FRESH"
	FamilyChypre   FragranceFamily = "CHYPRE"
	FamilyFougere  FragranceFamily = "FOUGERE"
	FamilyGourmand FragranceFamily = "GOURMAND"
)

// String returns the string representation of the FragranceFamily.
func (f FragranceFamily) String() string {
	return string(f)
}

// IsValid checks if the FragranceFamily is a valid value.
func (f FragranceFamily) IsValid() bool {
	switch f {
	case FamilyFloral, FamilyOriental, FamilyWoody, FamilyFresh, FamilyChypre, FamilyFougere, FamilyGourmand:
		return true
	default:
		return false
	}
}
