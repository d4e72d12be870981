package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodlens/backend/internal/domain"
)

func findFinding(findings []domain.Finding, label, source string) *domain.Finding {
	for i := range findings {
		if findings[i].Label == label && findings[i].Source == source {
			return &findings[i]
		}
	}
	return nil
}

func TestAnalyzeProduct_NilProfile(t *testing.T) {
	assert.Nil(t, AnalyzeProduct(&domain.Product{}, nil))
}

func TestAnalyzeProduct_DiabeticHighSugar(t *testing.T) {
	product := &domain.Product{
		Nutriments: map[string]any{
			"sugars_100g":   15.0,
			"fiber_100g":    0.0,
			"proteins_100g": 0.0,
		},
	}
	profile := &domain.HealthProfile{ChronicDiseases: []domain.ChronicCondition{domain.ConditionDiabetes}}

	result := AnalyzeProduct(product, profile)
	require.NotNil(t, result)

	sugar := findFinding(result.Concerns, "Sugar", "diabetes")
	require.NotNil(t, sugar)
	assert.Equal(t, domain.SeverityHigh, sugar.Severity)
	assert.Equal(t, domain.FindingChronic, sugar.Type)
	require.NotNil(t, sugar.Value)
	require.NotNil(t, sugar.Threshold)
	assert.Equal(t, 15.0, *sugar.Value)
	assert.Equal(t, 5.0, *sugar.Threshold)
	assert.Equal(t, "g", sugar.Unit)

	for _, b := range result.Benefits {
		assert.NotEqual(t, "diabetes", b.Source)
	}
	assert.Len(t, result.Concerns, 1)
	assert.Equal(t, domain.VerdictCaution, result.VerdictLevel)
}

func TestAnalyzeProduct_HypertensiveLowSodium(t *testing.T) {
	product := &domain.Product{
		Nutriments: map[string]any{
			"sodium_100g":    0.1,
			"potassium_100g": 250.0,
		},
	}
	profile := &domain.HealthProfile{ChronicDiseases: []domain.ChronicCondition{domain.ConditionHypertension}}

	result := AnalyzeProduct(product, profile)
	require.NotNil(t, result)

	assert.Nil(t, findFinding(result.Concerns, "Sodium", "hypertension"))
	require.Len(t, result.Benefits, 1)
	assert.Equal(t, "Potassium", result.Benefits[0].Label)
	assert.Empty(t, result.Benefits[0].Severity)
	assert.Equal(t, domain.VerdictGood, result.VerdictLevel)
	assert.Equal(t, "Good Choice For You", result.Verdict.Label)
}

func TestAnalyzeProduct_DuplicateIDsAreIdempotent(t *testing.T) {
	product := &domain.Product{
		Nutriments:      map[string]any{"sugars_100g": 12.0, "carbohydrates_100g": 45.0, "fiber_100g": 4.0},
		IngredientsText: "Wheat flour, glucose syrup",
	}
	single := AnalyzeProduct(product, &domain.HealthProfile{
		ChronicDiseases: []domain.ChronicCondition{domain.ConditionDiabetes},
		TemporaryIssues: []domain.TemporaryIssue{domain.IssueColdFlu},
	})
	doubled := AnalyzeProduct(product, &domain.HealthProfile{
		ChronicDiseases: []domain.ChronicCondition{domain.ConditionDiabetes, domain.ConditionDiabetes},
		TemporaryIssues: []domain.TemporaryIssue{domain.IssueColdFlu, domain.IssueColdFlu},
	})

	assert.Equal(t, single.Concerns, doubled.Concerns)
	assert.Equal(t, single.Benefits, doubled.Benefits)
	assert.Equal(t, single.Notes, doubled.Notes)
	assert.Equal(t, single.VerdictLevel, doubled.VerdictLevel)
	assert.Len(t, doubled.Notes, 1)
}

func TestAnalyzeProduct_TemporaryIssuesAreMedium(t *testing.T) {
	product := &domain.Product{
		Nutriments:      map[string]any{"fat_100g": 12.0},
		IngredientsText: "Milk chocolate (sugar, lactose)",
	}
	profile := &domain.HealthProfile{TemporaryIssues: []domain.TemporaryIssue{domain.IssueDiarrhea}}

	result := AnalyzeProduct(product, profile)
	require.NotNil(t, result)

	fat := findFinding(result.Concerns, "Fat", "diarrhea")
	require.NotNil(t, fat)
	assert.Equal(t, domain.SeverityMedium, fat.Severity)
	assert.Equal(t, domain.FindingTemporary, fat.Type)

	lactose := findFinding(result.Concerns, `Contains "lactose"`, "diarrhea")
	require.NotNil(t, lactose)
	assert.Equal(t, domain.SeverityMedium, lactose.Severity)
	assert.Equal(t, domain.FindingIngredient, lactose.Type)

	require.Len(t, result.Notes, 1)
	assert.Equal(t, "diarrhea", result.Notes[0].Source)
	assert.NotEmpty(t, result.Notes[0].Text)
}

func TestAnalyzeProduct_GoalConcernsAreLow(t *testing.T) {
	product := &domain.Product{
		Nutriments:      map[string]any{"energy-kcal_100g": 300.0, "proteins_100g": 12.0},
		IngredientsText: "Maida, sugar",
	}
	profile := &domain.HealthProfile{Goal: domain.GoalWeightLoss}

	result := AnalyzeProduct(product, profile)
	require.NotNil(t, result)

	require.Len(t, result.Concerns, 1)
	calories := result.Concerns[0]
	assert.Equal(t, "Calories", calories.Label)
	assert.Equal(t, domain.SeverityLow, calories.Severity)
	assert.Equal(t, domain.FindingGoal, calories.Type)
	assert.Equal(t, "kcal", calories.Unit)

	require.Len(t, result.Benefits, 1)
	assert.Equal(t, "Protein", result.Benefits[0].Label)
	assert.Equal(t, domain.VerdictModerate, result.VerdictLevel)
	assert.Empty(t, result.Notes)
}

func TestAnalyzeProduct_AvoidIngredients(t *testing.T) {
	product := &domain.Product{IngredientsText: "Wheat Flour, Malt Extract, Salt"}
	profile := &domain.HealthProfile{ChronicDiseases: []domain.ChronicCondition{domain.ConditionCeliacDisease}}

	result := AnalyzeProduct(product, profile)
	require.NotNil(t, result)

	require.Len(t, result.Concerns, 2)
	assert.Equal(t, `Contains "wheat"`, result.Concerns[0].Label)
	assert.Equal(t, `Contains "malt"`, result.Concerns[1].Label)
	for _, c := range result.Concerns {
		assert.Equal(t, domain.SeverityHigh, c.Severity)
		assert.Equal(t, domain.FindingIngredient, c.Type)
		assert.Equal(t, "celiac-disease", c.Source)
		assert.Nil(t, c.Value)
	}
	assert.Equal(t, domain.VerdictAvoid, result.VerdictLevel)
}

func TestAnalyzeProduct_SeverityOrdering(t *testing.T) {
	product := &domain.Product{
		Nutriments:      map[string]any{"sugars_100g": 12.0},
		IngredientsText: "Apple juice, preservative (sulphite)",
	}
	profile := &domain.HealthProfile{
		ChronicDiseases: []domain.ChronicCondition{domain.ConditionAsthma, domain.ConditionDiabetes},
		TemporaryIssues: []domain.TemporaryIssue{domain.IssueColdFlu},
	}

	result := AnalyzeProduct(product, profile)
	require.NotNil(t, result)
	require.Len(t, result.Concerns, 3)

	assert.Equal(t, domain.SeverityHigh, result.Concerns[0].Severity)
	assert.Equal(t, "diabetes", result.Concerns[0].Source)
	assert.Equal(t, domain.SeverityMedium, result.Concerns[1].Severity)
	assert.Equal(t, "cold-flu", result.Concerns[1].Source)
	assert.Equal(t, domain.SeverityLow, result.Concerns[2].Severity)
	assert.Equal(t, "asthma", result.Concerns[2].Source)

	assert.Equal(t, domain.VerdictAvoid, result.VerdictLevel)
}

func TestAnalyzeProduct_MissingNutrientsSkipRules(t *testing.T) {
	profile := &domain.HealthProfile{
		ChronicDiseases: []domain.ChronicCondition{domain.ConditionHeartDisease, domain.ConditionHypertension},
		Goal:            domain.GoalMaintainHealth,
	}

	result := AnalyzeProduct(&domain.Product{}, profile)
	require.NotNil(t, result)

	assert.Empty(t, result.Concerns)
	assert.Empty(t, result.Benefits)
	assert.NotNil(t, result.Concerns)
	assert.NotNil(t, result.Notes)
	assert.Equal(t, domain.VerdictNeutral, result.VerdictLevel)
	assert.Equal(t, "No Specific Concerns", result.Verdict.Label)
}

func TestAnalyzeProduct_UnknownIDsIgnored(t *testing.T) {
	product := &domain.Product{Nutriments: map[string]any{"sugars_100g": 40.0}}
	profile := &domain.HealthProfile{
		ChronicDiseases: []domain.ChronicCondition{"scurvy"},
		TemporaryIssues: []domain.TemporaryIssue{"hiccups"},
		Goal:            "fly",
	}

	result := AnalyzeProduct(product, profile)
	require.NotNil(t, result)

	assert.Empty(t, result.Concerns)
	assert.Empty(t, result.Benefits)
	assert.Empty(t, result.Notes)
	assert.Equal(t, domain.VerdictNeutral, result.VerdictLevel)
}

func TestAnalyzeProduct_BMI(t *testing.T) {
	tests := []struct {
		name        string
		weight      float64
		height      float64
		nutriments  map[string]any
		wantBMI     *domain.BMIInfo
		wantConcern bool
		wantBenefit bool
	}{
		{
			name:        "obese with calorie dense product",
			weight:      100,
			height:      170,
			nutriments:  map[string]any{"energy-kcal_100g": 250.0},
			wantBMI:     &domain.BMIInfo{Value: 34.6, Category: "Obese"},
			wantConcern: true,
		},
		{
			name:       "obese with light product",
			weight:     100,
			height:     170,
			nutriments: map[string]any{"energy-kcal_100g": 200.0},
			wantBMI:    &domain.BMIInfo{Value: 34.6, Category: "Obese"},
		},
		{
			name:        "underweight with energy and protein",
			weight:      45,
			height:      170,
			nutriments:  map[string]any{"energy-kcal_100g": 400.0, "proteins_100g": 10.0},
			wantBMI:     &domain.BMIInfo{Value: 15.6, Category: "Underweight"},
			wantBenefit: true,
		},
		{
			name:       "underweight without protein",
			weight:     45,
			height:     170,
			nutriments: map[string]any{"energy-kcal_100g": 400.0, "proteins_100g": 3.0},
			wantBMI:    &domain.BMIInfo{Value: 15.6, Category: "Underweight"},
		},
		{
			name:       "normal range",
			weight:     65,
			height:     170,
			nutriments: map[string]any{"energy-kcal_100g": 500.0, "proteins_100g": 20.0},
			wantBMI:    &domain.BMIInfo{Value: 22.5, Category: "Normal"},
		},
		{
			name:       "overweight",
			weight:     80,
			height:     170,
			nutriments: map[string]any{"energy-kcal_100g": 500.0},
			wantBMI:    &domain.BMIInfo{Value: 27.7, Category: "Overweight"},
		},
		{
			name:       "missing height",
			weight:     80,
			nutriments: map[string]any{"energy-kcal_100g": 500.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := &domain.Product{Nutriments: tt.nutriments}
			profile := &domain.HealthProfile{WeightKg: tt.weight, HeightCm: tt.height}

			result := AnalyzeProduct(product, profile)
			require.NotNil(t, result)

			if tt.wantBMI == nil {
				assert.Nil(t, result.BMI)
			} else {
				require.NotNil(t, result.BMI)
				assert.Equal(t, tt.wantBMI.Value, result.BMI.Value)
				assert.Equal(t, tt.wantBMI.Category, result.BMI.Category)
				assert.NotEmpty(t, result.BMI.Advice)
			}

			concern := findFinding(result.Concerns, "High Calories", "bmi")
			assert.Equal(t, tt.wantConcern, concern != nil)
			if concern != nil {
				assert.Equal(t, domain.SeverityMedium, concern.Severity)
				assert.Equal(t, domain.FindingBMI, concern.Type)
				assert.Equal(t, 200.0, *concern.Threshold)
			}

			benefit := findFinding(result.Benefits, "Good for Weight Gain", "bmi")
			assert.Equal(t, tt.wantBenefit, benefit != nil)
		})
	}
}

func TestAnalyzeProduct_Age(t *testing.T) {
	t.Run("senior with salty product", func(t *testing.T) {
		product := &domain.Product{Nutriments: map[string]any{"sodium_100g": 0.8}}
		result := AnalyzeProduct(product, &domain.HealthProfile{Age: 65})

		concern := findFinding(result.Concerns, "High Sodium for Seniors", "age")
		require.NotNil(t, concern)
		assert.Equal(t, domain.SeverityMedium, concern.Severity)
		assert.Equal(t, "mg", concern.Unit)
		assert.Equal(t, 800.0, *concern.Value)
		assert.Equal(t, 500.0, *concern.Threshold)
	})

	t.Run("senior at the sodium threshold", func(t *testing.T) {
		product := &domain.Product{Nutriments: map[string]any{"sodium_100g": 0.5}}
		result := AnalyzeProduct(product, &domain.HealthProfile{Age: 70})

		assert.Empty(t, result.Concerns)
	})

	t.Run("child with caffeinated product", func(t *testing.T) {
		product := &domain.Product{IngredientsText: "Water, sugar, Green Tea Extract"}
		result := AnalyzeProduct(product, &domain.HealthProfile{Age: 8})

		concern := findFinding(result.Concerns, "Contains Caffeine", "age")
		require.NotNil(t, concern)
		assert.Equal(t, domain.SeverityHigh, concern.Severity)
		assert.Nil(t, concern.Value)
		assert.Nil(t, concern.Threshold)
	})

	t.Run("age not provided", func(t *testing.T) {
		product := &domain.Product{
			Nutriments:      map[string]any{"sodium_100g": 2.0},
			IngredientsText: "coffee",
		}
		result := AnalyzeProduct(product, &domain.HealthProfile{Goal: domain.GoalBetterSkin})

		assert.Nil(t, findFinding(result.Concerns, "Contains Caffeine", "age"))
		assert.Nil(t, findFinding(result.Concerns, "High Sodium for Seniors", "age"))
	})
}

func TestAnalyzeProduct_ProfileSummary(t *testing.T) {
	profile := &domain.HealthProfile{
		ChronicDiseases:    []domain.ChronicCondition{domain.ConditionDiabetes, domain.ConditionGout},
		TemporaryIssues:    []domain.TemporaryIssue{domain.IssueFatigue},
		CustomHealthIssues: []string{"eczema"},
		Goal:               domain.GoalMuscleBuilding,
		CustomGoals:        []string{"run a 10k", "sleep better"},
	}

	result := AnalyzeProduct(&domain.Product{}, profile)
	require.NotNil(t, result)

	assert.Equal(t, domain.ProfileSummary{
		HasChronicDiseases: true,
		HasTemporaryIssues: true,
		HasGoal:            true,
		TotalFactors:       7,
	}, result.ProfileSummary)
}

func TestDedupeFindings(t *testing.T) {
	findings := []domain.Finding{
		{Label: "Sugar", Source: "diabetes", Severity: domain.SeverityHigh, Type: domain.FindingChronic},
		{Label: "Sugar", Source: "cold-flu", Severity: domain.SeverityMedium},
		{Label: "Sugar", Source: "diabetes", Severity: domain.SeverityMedium, Type: domain.FindingTemporary},
	}

	got := dedupeFindings(findings)

	require.Len(t, got, 2)
	assert.Equal(t, domain.SeverityHigh, got[0].Severity)
	assert.Equal(t, domain.FindingChronic, got[0].Type)
	assert.Equal(t, "cold-flu", got[1].Source)
}

func TestVerdictLevel(t *testing.T) {
	high := domain.Finding{Severity: domain.SeverityHigh}
	medium := domain.Finding{Severity: domain.SeverityMedium}
	low := domain.Finding{Severity: domain.SeverityLow}
	benefit := domain.Finding{}

	tests := []struct {
		name     string
		concerns []domain.Finding
		benefits []domain.Finding
		expected domain.VerdictLevel
	}{
		{name: "nothing found", expected: domain.VerdictNeutral},
		{name: "two high", concerns: []domain.Finding{high, high}, benefits: []domain.Finding{benefit, benefit, benefit}, expected: domain.VerdictAvoid},
		{name: "one high among three", concerns: []domain.Finding{high, low, low}, expected: domain.VerdictAvoid},
		{name: "three medium", concerns: []domain.Finding{medium, medium, medium}, benefits: []domain.Finding{benefit, benefit, benefit, benefit}, expected: domain.VerdictCaution},
		{name: "more concerns than benefits", concerns: []domain.Finding{medium, low}, benefits: []domain.Finding{benefit}, expected: domain.VerdictCaution},
		{name: "single high alone", concerns: []domain.Finding{high}, expected: domain.VerdictCaution},
		{name: "single high outweighed", concerns: []domain.Finding{high}, benefits: []domain.Finding{benefit, benefit}, expected: domain.VerdictGood},
		{name: "benefits only", benefits: []domain.Finding{benefit}, expected: domain.VerdictGood},
		{name: "balanced", concerns: []domain.Finding{medium}, benefits: []domain.Finding{benefit}, expected: domain.VerdictModerate},
		{name: "two concerns three benefits", concerns: []domain.Finding{low, low}, benefits: []domain.Finding{benefit, benefit, benefit}, expected: domain.VerdictModerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, verdictLevel(tt.concerns, tt.benefits))
		})
	}
}

func TestVerdictDisplayFor(t *testing.T) {
	levels := []domain.VerdictLevel{
		domain.VerdictAvoid, domain.VerdictCaution, domain.VerdictModerate,
		domain.VerdictGood, domain.VerdictNeutral,
	}
	seen := map[string]bool{}
	for _, level := range levels {
		d := VerdictDisplayFor(level)
		assert.NotEmpty(t, d.Label, level)
		assert.NotEmpty(t, d.Color, level)
		assert.NotEmpty(t, d.Emoji, level)
		assert.False(t, seen[d.Label], "duplicate label %q", d.Label)
		seen[d.Label] = true
	}
}
