package domain

// NutrientRule compares one per-100g nutrient against a threshold.
type NutrientRule struct {
	Nutrient  NutrientKey `json:"nutrient"`
	Threshold float64     `json:"threshold"`
	Label     string      `json:"label"`
	Unit      string      `json:"unit"`
	Reason    string      `json:"reason"`
}

// ConditionRule is the rule set for one chronic condition, temporary issue or goal.
//
// Limit rules produce a concern when value > threshold, Encourage rules a benefit
// when value >= threshold, and AvoidIngredients a concern when the ingredients
// text contains the substring. Goals carry no Severity and no AvoidIngredients;
// only temporary issues carry a Note.
type ConditionRule struct {
	Name             string         `json:"name"`
	Icon             string         `json:"icon"`
	Severity         Severity       `json:"severity,omitempty"`
	Limit            []NutrientRule `json:"limit,omitempty"`
	Encourage        []NutrientRule `json:"encourage,omitempty"`
	AvoidIngredients []string       `json:"avoidIngredients,omitempty"`
	Note             string         `json:"note,omitempty"`
}

// VocabularyEntry describes one selectable condition, issue or goal.
type VocabularyEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Vocabulary lists every id the rule tables understand, in display order.
type Vocabulary struct {
	ChronicConditions []VocabularyEntry `json:"chronicConditions"`
	TemporaryIssues   []VocabularyEntry `json:"temporaryIssues"`
	HealthGoals       []VocabularyEntry `json:"healthGoals"`
}
