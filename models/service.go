package models

// Service is one entry of a salon's menu. Duration and price depend on the
// gender of the person being served.
type Service struct {
	ID             string  `bson:"id" json:"id"`
	Name           string  `bson:"name" json:"name"`
	Description    string  `bson:"description,omitempty" json:"description,omitempty"`
	Type           string  `bson:"type" json:"type"`                      // e.g., "hair", "nail"
	DurationMale   int     `bson:"durationMale" json:"duration_male"`     // minutes
	DurationFemale int     `bson:"durationFemale" json:"duration_female"` // minutes
	PriceMale      float64 `bson:"priceMale" json:"price_male"`
	PriceFemale    float64 `bson:"priceFemale" json:"price_female"`
}

// DurationFor falls back to the male duration when gender is unknown.
func (s Service) DurationFor(g Gender) int {
	if g == GenderFemale {
		return s.DurationFemale
	}
	return s.DurationMale
}

// PriceFor falls back to the male price when gender is unknown.
func (s Service) PriceFor(g Gender) float64 {
	if g == GenderFemale {
		return s.PriceFemale
	}
	return s.PriceMale
}
