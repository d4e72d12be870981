package openfoodfacts

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/foodlens/backend/internal/domain"
)

// offProduct is the subset of an Open Food Facts product record we read.
type offProduct struct {
	Code              string            `json:"code"`
	ProductName       string            `json:"product_name"`
	ProductNameEn     string            `json:"product_name_en"`
	GenericName       string            `json:"generic_name"`
	Brands            string            `json:"brands"`
	Nutriments        map[string]any    `json:"nutriments"`
	NutrientLevels    map[string]string `json:"nutrient_levels"`
	NovaGroup         json.RawMessage   `json:"nova_group"`
	IngredientsText   string            `json:"ingredients_text"`
	IngredientsTextEn string            `json:"ingredients_text_en"`
	AdditivesTags     []string          `json:"additives_tags"`
	CategoriesTags    []string          `json:"categories_tags"`
	NutritionGrades   string            `json:"nutrition_grades"`
}

// The database reports every per-100g value in grams. These keys are kept
// in milligrams in the domain model.
var milligramKeys = []domain.NutrientKey{
	domain.NutrientCholesterol,
	domain.NutrientPotassium,
	domain.NutrientCalcium,
	domain.NutrientIron,
	domain.NutrientVitaminC,
	domain.NutrientCaffeine,
}

// mapProduct converts an Open Food Facts record into a domain product.
func mapProduct(p *offProduct) *domain.Product {
	return &domain.Product{
		Code:            p.Code,
		Name:            productName(p),
		Brand:           firstBrand(p.Brands),
		Nutriments:      normalizeNutriments(p.Nutriments),
		NutrientLevels:  lowerValues(p.NutrientLevels),
		NovaGroup:       novaGroup(p.NovaGroup),
		IngredientsText: ingredientsText(p),
		AdditiveTags:    lowerAll(p.AdditivesTags),
		CategoryTags:    lowerAll(p.CategoriesTags),
		NutritionGrade:  strings.ToLower(strings.TrimSpace(p.NutritionGrades)),
	}
}

func productName(p *offProduct) string {
	for _, name := range []string{p.ProductName, p.ProductNameEn, p.GenericName} {
		if name = strings.TrimSpace(name); name != "" {
			return name
		}
	}
	return ""
}

func firstBrand(brands string) string {
	first, _, _ := strings.Cut(brands, ",")
	return strings.TrimSpace(first)
}

func ingredientsText(p *offProduct) string {
	if text := strings.TrimSpace(p.IngredientsTextEn); text != "" {
		return text
	}
	return strings.TrimSpace(p.IngredientsText)
}

// novaGroup accepts both numeric and quoted values; anything outside 1-4 is unknown.
func novaGroup(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	s := strings.Trim(string(raw), `"`)
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 4 {
		return 0
	}
	return n
}

func normalizeNutriments(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}

	probe := &domain.Product{Nutriments: in}
	for _, key := range milligramKeys {
		if grams, ok := probe.LookupNutrient(key); ok {
			out[string(key)] = grams * 1000
		}
	}
	return out
}

func lowerValues(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[strings.ToLower(k)] = strings.ToLower(strings.TrimSpace(v))
	}
	return out
}

func lowerAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
