package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// NutrientKey identifies a per-100g value in a product's nutriments map.
// Keys follow the remote product database naming.
type NutrientKey string

const (
	NutrientEnergyKcal   NutrientKey = "energy-kcal_100g"
	NutrientFat          NutrientKey = "fat_100g"
	NutrientSaturatedFat NutrientKey = "saturated-fat_100g"
	NutrientTransFat     NutrientKey = "trans-fat_100g"
	NutrientSugars       NutrientKey = "sugars_100g"
	NutrientSodium       NutrientKey = "sodium_100g"
	NutrientSalt         NutrientKey = "salt_100g"
	NutrientProteins     NutrientKey = "proteins_100g"
	NutrientFiber        NutrientKey = "fiber_100g"
	NutrientCarbs        NutrientKey = "carbohydrates_100g"
	NutrientCholesterol  NutrientKey = "cholesterol_100g"
	NutrientPotassium    NutrientKey = "potassium_100g"
	NutrientCalcium      NutrientKey = "calcium_100g"
	NutrientIron         NutrientKey = "iron_100g"
	NutrientVitaminC     NutrientKey = "vitamin-c_100g"
	NutrientCaffeine     NutrientKey = "caffeine_100g"
)

// Nutrient level bands as reported by the product database.
const (
	LevelLow      = "low"
	LevelModerate = "moderate"
	LevelHigh     = "high"
)

// Nutrient level keys.
const (
	LevelKeyFat          = "fat"
	LevelKeySaturatedFat = "saturated-fat"
	LevelKeySugars       = "sugars"
	LevelKeySalt         = "salt"
)

// Product is a packaged food record as returned by the product database.
// Every field is optional; readers must go through the accessors.
type Product struct {
	Code            string            `json:"code"`
	Name            string            `json:"productName,omitempty"`
	Brand           string            `json:"brand,omitempty"`
	Nutriments      map[string]any    `json:"nutriments,omitempty"`
	NutrientLevels  map[string]string `json:"nutrientLevels,omitempty"`
	NovaGroup       int               `json:"novaGroup,omitempty"` // 1-4, 0 = unknown
	IngredientsText string            `json:"ingredientsText,omitempty"`
	AdditiveTags    []string          `json:"additiveTags,omitempty"`
	CategoryTags    []string          `json:"categoryTags,omitempty"`
	NutritionGrade  string            `json:"nutritionGrade,omitempty"`
}

// Nutrient returns the per-100g value for key, or 0 when it is missing,
// non-numeric, NaN or infinite.
func (p *Product) Nutrient(key NutrientKey) float64 {
	v, _ := p.LookupNutrient(key)
	return v
}

// LookupNutrient is Nutrient with an explicit presence flag.
func (p *Product) LookupNutrient(key NutrientKey) (float64, bool) {
	if p == nil || p.Nutriments == nil {
		return 0, false
	}
	raw, ok := p.Nutriments[string(key)]
	if !ok {
		return 0, false
	}
	return coerceFloat(raw)
}

// NutrientLevel returns the reported band for a level key, lowercased,
// or "" when the source did not supply it.
func (p *Product) NutrientLevel(key string) string {
	if p == nil || p.NutrientLevels == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(p.NutrientLevels[key]))
}

// Ingredients returns the lowercased ingredients text.
func (p *Product) Ingredients() string {
	if p == nil {
		return ""
	}
	return strings.ToLower(p.IngredientsText)
}

// HasNovaGroup reports whether the processing classification is known.
func (p *Product) HasNovaGroup() bool {
	return p != nil && p.NovaGroup >= 1 && p.NovaGroup <= 4
}

// coerceFloat accepts the loose numeric encodings seen in product feeds.
func coerceFloat(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
