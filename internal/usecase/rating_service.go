package usecase

import (
	"math"
	"strings"

	"github.com/foodlens/backend/internal/domain"
)

// Sub-score ranges
const (
	nutritionMax       = 2.0
	ingredientsMax     = 1.5
	ingredientsNoText  = 0.75
	processingMax      = 1.0
	processingUnknown  = 0.5
	additivePenaltyMax = 0.5
	ratingMax          = 5.0
)

// Nutrition deductions and rewards
const (
	sugarHighPenalty     = 0.5
	sugarModeratePenalty = 0.25
	saltHighPenalty      = 0.4
	saltModeratePenalty  = 0.2
	fatHighPenalty       = 0.3
	satFatHighPenalty    = 0.3
	proteinHighReward    = 0.3  // > 10g
	proteinModReward     = 0.15 // > 5g
	fiberHighReward      = 0.2  // > 5g
	fiberModReward       = 0.1  // > 3g
)

const (
	refinedMarkerPenalty = 0.3
	wholeMarkerReward    = 0.15
	harmfulAdditiveCost  = 0.1
)

// refinedMarkers lower the ingredient score once per marker found
var refinedMarkers = []string{
	"refined", "white flour", "maida", "refined sugar", "white sugar",
	"palm oil", "hydrogenated", "corn syrup", "high fructose",
}

// wholeMarkers raise the ingredient score once per marker found
var wholeMarkers = []string{
	"whole grain", "whole wheat", "oats", "brown rice", "quinoa",
	"vegetables", "fruits", "nuts", "seeds", "legumes",
}

// harmfulAdditives is matched against both the ingredients text and the additive tags
var harmfulAdditives = []string{
	// artificial sweeteners
	"aspartame", "sucralose", "acesulfame", "saccharin", "e951", "e950", "e954", "e955",
	// artificial colors
	"e102", "e110", "e122", "e124", "e129",
	// emulsifiers
	"e433", "e434", "e435", "e436",
	// trans fats
	"partially hydrogenated", "trans fat", "hydrogenated oil",
	// flavor enhancers
	"msg", "monosodium glutamate", "e621",
	// preservatives
	"tbhq", "bha", "bht", "e320", "e321",
}

// novaScores maps NOVA processing groups to the processing sub-score
var novaScores = map[int]float64{
	1: 1.0,
	2: 0.66,
	3: 0.33,
	4: 0.0,
}

// ratingVerdicts are checked in order; the first threshold the score reaches wins
var ratingVerdicts = []struct {
	min     float64
	verdict domain.RatingVerdict
}{
	{4.5, domain.RatingVerdict{Text: "Excellent", Color: "#1b8a3a", Grade: "A+"}},
	{4.0, domain.RatingVerdict{Text: "Very Good", Color: "#3fa34d", Grade: "A"}},
	{3.5, domain.RatingVerdict{Text: "Good", Color: "#85bb2f", Grade: "B+"}},
	{3.0, domain.RatingVerdict{Text: "Average", Color: "#fecb02", Grade: "B"}},
	{2.5, domain.RatingVerdict{Text: "Below Average", Color: "#ee8100", Grade: "C"}},
	{2.0, domain.RatingVerdict{Text: "Poor", Color: "#e63e11", Grade: "D"}},
}

var veryPoorVerdict = domain.RatingVerdict{Text: "Very Poor", Color: "#b71c1c", Grade: "E"}

// RateProduct computes the general 0-5 healthiness rating of a product.
// It never fails: missing data degrades to neutral sub-scores.
func RateProduct(product *domain.Product) domain.RatingResult {
	nutrition := nutritionScore(product)
	ingredients := ingredientScore(product)
	processing := processingScore(product)
	additives := additivePenalty(product)

	// Rounded to cents first so float noise cannot push a score across a verdict threshold.
	total := round2(clamp(nutrition+ingredients+processing+additives, 0, ratingMax))

	return domain.RatingResult{
		Score:        total,
		DisplayScore: round1(total),
		Breakdown: domain.RatingBreakdown{
			Nutrition:   domain.SubScore{Score: round2(nutrition), Max: nutritionMax},
			Ingredients: domain.SubScore{Score: round2(ingredients), Max: ingredientsMax},
			Processing:  domain.SubScore{Score: round2(processing), Max: processingMax},
			Additives:   domain.AdditivePenalty{Penalty: round2(-additives), Max: additivePenaltyMax},
		},
		Verdict: RatingVerdictFor(total),
	}
}

// RatingVerdictFor maps a 0-5 score to its display verdict.
func RatingVerdictFor(score float64) domain.RatingVerdict {
	for _, v := range ratingVerdicts {
		if score >= v.min {
			return v.verdict
		}
	}
	return veryPoorVerdict
}

// NutrientLevels returns the fat, saturated-fat, sugars and salt bands,
// taking the source's bands when present and deriving the rest from per-100g values.
func NutrientLevels(product *domain.Product) map[string]string {
	levels := map[string]string{
		domain.LevelKeyFat:          product.NutrientLevel(domain.LevelKeyFat),
		domain.LevelKeySaturatedFat: product.NutrientLevel(domain.LevelKeySaturatedFat),
		domain.LevelKeySugars:       product.NutrientLevel(domain.LevelKeySugars),
		domain.LevelKeySalt:         product.NutrientLevel(domain.LevelKeySalt),
	}
	if levels[domain.LevelKeyFat] == "" {
		levels[domain.LevelKeyFat] = band(product.Nutrient(domain.NutrientFat), 17.5, 3)
	}
	if levels[domain.LevelKeySaturatedFat] == "" {
		levels[domain.LevelKeySaturatedFat] = band(product.Nutrient(domain.NutrientSaturatedFat), 5, 1.5)
	}
	if levels[domain.LevelKeySugars] == "" {
		levels[domain.LevelKeySugars] = band(product.Nutrient(domain.NutrientSugars), 22.5, 5)
	}
	if levels[domain.LevelKeySalt] == "" {
		levels[domain.LevelKeySalt] = band(product.Nutrient(domain.NutrientSalt), 1.5, 0.3)
	}
	return levels
}

func band(value, high, moderate float64) string {
	switch {
	case value > high:
		return domain.LevelHigh
	case value > moderate:
		return domain.LevelModerate
	default:
		return domain.LevelLow
	}
}

func nutritionScore(product *domain.Product) float64 {
	score := nutritionMax
	levels := NutrientLevels(product)

	switch levels[domain.LevelKeySugars] {
	case domain.LevelHigh:
		score -= sugarHighPenalty
	case domain.LevelModerate:
		score -= sugarModeratePenalty
	}
	switch levels[domain.LevelKeySalt] {
	case domain.LevelHigh:
		score -= saltHighPenalty
	case domain.LevelModerate:
		score -= saltModeratePenalty
	}
	if levels[domain.LevelKeyFat] == domain.LevelHigh {
		score -= fatHighPenalty
	}
	if levels[domain.LevelKeySaturatedFat] == domain.LevelHigh {
		score -= satFatHighPenalty
	}

	protein := product.Nutrient(domain.NutrientProteins)
	if protein > 10 {
		score += proteinHighReward
	} else if protein > 5 {
		score += proteinModReward
	}

	fiber := product.Nutrient(domain.NutrientFiber)
	if fiber > 5 {
		score += fiberHighReward
	} else if fiber > 3 {
		score += fiberModReward
	}

	return clamp(score, 0, nutritionMax)
}

// ingredientScore is neutral only when the text is absent. Whitespace-only
// text is scored like any other text with no markers.
func ingredientScore(product *domain.Product) float64 {
	text := product.Ingredients()
	if text == "" {
		return ingredientsNoText
	}

	score := ingredientsMax
	for _, marker := range refinedMarkers {
		if strings.Contains(text, marker) {
			score -= refinedMarkerPenalty
		}
	}
	for _, marker := range wholeMarkers {
		if strings.Contains(text, marker) {
			score += wholeMarkerReward
		}
	}
	return clamp(score, 0, ingredientsMax)
}

func processingScore(product *domain.Product) float64 {
	if !product.HasNovaGroup() {
		return processingUnknown
	}
	return novaScores[product.NovaGroup]
}

// additivePenalty returns a value in [-0.5, 0]. Text and tag matches are
// counted independently, so an additive named in both costs twice.
func additivePenalty(product *domain.Product) float64 {
	text := product.Ingredients()
	var tags []string
	if product != nil {
		tags = product.AdditiveTags
	}

	matches := 0
	for _, additive := range harmfulAdditives {
		if text != "" && strings.Contains(text, additive) {
			matches++
		}
		for _, tag := range tags {
			if strings.Contains(strings.ToLower(tag), additive) {
				matches++
				break
			}
		}
	}

	return math.Max(-float64(matches)*harmfulAdditiveCost, -additivePenaltyMax)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
