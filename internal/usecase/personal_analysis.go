package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/foodlens/backend/internal/domain"
)

// BMI and age thresholds
const (
	bmiUnderweight = 18.5
	bmiNormal      = 25.0
	bmiOverweight  = 30.0

	bmiHighCalorieKcal  = 200.0
	bmiGainCalorieKcal  = 150.0
	bmiGainProteinGrams = 5.0

	seniorAge         = 60
	seniorSodiumGrams = 0.5
	childAge          = 12
)

const (
	sourceBMI = "bmi"
	sourceAge = "age"
)

var caffeineMarkers = []string{"caffeine", "coffee", "tea extract"}

var verdictDisplays = map[domain.VerdictLevel]domain.VerdictDisplay{
	domain.VerdictAvoid:    {Label: "Not Recommended For You", Color: "#e53935", Emoji: "🚫"},
	domain.VerdictCaution:  {Label: "Consume With Caution", Color: "#fb8c00", Emoji: "⚠️"},
	domain.VerdictModerate: {Label: "Okay In Moderation", Color: "#fdd835", Emoji: "🟡"},
	domain.VerdictGood:     {Label: "Good Choice For You", Color: "#43a047", Emoji: "✅"},
	domain.VerdictNeutral:  {Label: "No Specific Concerns", Color: "#9e9e9e", Emoji: "ℹ️"},
}

// VerdictDisplayFor returns the display tuple of a verdict level.
func VerdictDisplayFor(level domain.VerdictLevel) domain.VerdictDisplay {
	return verdictDisplays[level]
}

// AnalyzeProduct evaluates a product against a user's health profile.
// It returns nil when profile is nil; callers decide beforehand whether a
// profile carries enough data to be worth analyzing.
func AnalyzeProduct(product *domain.Product, profile *domain.HealthProfile) *domain.AnalysisResult {
	if profile == nil {
		return nil
	}

	c := &findingCollector{
		product:     product,
		ingredients: product.Ingredients(),
		notes:       []domain.Note{},
	}

	for _, id := range profile.ChronicDiseases {
		rule, ok := chronicRules[id]
		if !ok {
			continue
		}
		c.applyRule(rule, string(id), domain.FindingChronic, rule.Severity, true)
	}

	for _, id := range profile.TemporaryIssues {
		rule, ok := temporaryRules[id]
		if !ok {
			continue
		}
		c.applyRule(rule, string(id), domain.FindingTemporary, domain.SeverityMedium, true)
		if rule.Note != "" {
			c.addNote(string(id), rule.Note)
		}
	}

	if profile.Goal != "" {
		if rule, ok := goalRules[profile.Goal]; ok {
			c.applyRule(rule, string(profile.Goal), domain.FindingGoal, domain.SeverityLow, false)
		}
	}

	bmi := c.applyBMI(profile)
	c.applyAge(profile)

	concerns := dedupeFindings(c.concerns)
	benefits := dedupeFindings(c.benefits)
	sort.SliceStable(concerns, func(i, j int) bool {
		return concerns[i].Severity.Rank() < concerns[j].Severity.Rank()
	})

	level := verdictLevel(concerns, benefits)

	return &domain.AnalysisResult{
		VerdictLevel:   level,
		Verdict:        verdictDisplays[level],
		Concerns:       concerns,
		Benefits:       benefits,
		Notes:          c.notes,
		BMI:            bmi,
		ProfileSummary: summarizeProfile(profile),
	}
}

// findingCollector accumulates raw findings for one analysis run.
type findingCollector struct {
	product     *domain.Product
	ingredients string
	concerns    []domain.Finding
	benefits    []domain.Finding
	notes       []domain.Note
}

// applyRule evaluates one rule set. severity is applied to every concern the
// rule produces, which lets callers override the table severity.
func (c *findingCollector) applyRule(
	rule domain.ConditionRule,
	source string,
	findingType domain.FindingType,
	severity domain.Severity,
	checkIngredients bool,
) {
	for _, limit := range rule.Limit {
		value, ok := c.product.LookupNutrient(limit.Nutrient)
		if !ok || value <= limit.Threshold {
			continue
		}
		c.concerns = append(c.concerns, nutrientFinding(limit, value, source, findingType, severity, rule.Icon))
	}

	for _, encourage := range rule.Encourage {
		value, ok := c.product.LookupNutrient(encourage.Nutrient)
		if !ok || value < encourage.Threshold {
			continue
		}
		c.benefits = append(c.benefits, nutrientFinding(encourage, value, source, findingType, "", rule.Icon))
	}

	if !checkIngredients || c.ingredients == "" {
		return
	}
	for _, ingredient := range rule.AvoidIngredients {
		if !strings.Contains(c.ingredients, strings.ToLower(ingredient)) {
			continue
		}
		c.concerns = append(c.concerns, domain.Finding{
			Type:     domain.FindingIngredient,
			Source:   source,
			Severity: severity,
			Label:    fmt.Sprintf("Contains %q", ingredient),
			Reason:   fmt.Sprintf("%s should be avoided with %s", ingredient, rule.Name),
			Icon:     rule.Icon,
		})
	}
}

func (c *findingCollector) addNote(source, text string) {
	for _, n := range c.notes {
		if n.Source == source {
			return
		}
	}
	c.notes = append(c.notes, domain.Note{Source: source, Text: text})
}

func (c *findingCollector) applyBMI(profile *domain.HealthProfile) *domain.BMIInfo {
	bmi, ok := profile.BMI()
	if !ok {
		return nil
	}
	category, advice := bmiCategory(bmi)
	kcal, hasKcal := c.product.LookupNutrient(domain.NutrientEnergyKcal)

	switch {
	case bmi >= bmiOverweight && hasKcal && kcal > bmiHighCalorieKcal:
		c.concerns = append(c.concerns, domain.Finding{
			Type:      domain.FindingBMI,
			Source:    sourceBMI,
			Severity:  domain.SeverityMedium,
			Label:     "High Calories",
			Value:     floatPtr(round2(kcal)),
			Unit:      unitKcal,
			Threshold: floatPtr(bmiHighCalorieKcal),
			Reason:    fmt.Sprintf("Calorie-dense food with a BMI of %.1f (%s)", bmi, category),
			Icon:      "⚖️",
		})
	case bmi < bmiUnderweight && hasKcal && kcal >= bmiGainCalorieKcal:
		protein, hasProtein := c.product.LookupNutrient(domain.NutrientProteins)
		if !hasProtein || protein < bmiGainProteinGrams {
			break
		}
		c.benefits = append(c.benefits, domain.Finding{
			Type:      domain.FindingBMI,
			Source:    sourceBMI,
			Label:     "Good for Weight Gain",
			Value:     floatPtr(round2(kcal)),
			Unit:      unitKcal,
			Threshold: floatPtr(bmiGainCalorieKcal),
			Reason:    fmt.Sprintf("Energy and protein help with a BMI of %.1f (%s)", bmi, category),
			Icon:      "⚖️",
		})
	}

	return &domain.BMIInfo{Value: bmi, Category: category, Advice: advice}
}

func (c *findingCollector) applyAge(profile *domain.HealthProfile) {
	if profile.Age <= 0 {
		return
	}

	if profile.Age >= seniorAge {
		sodium, ok := c.product.LookupNutrient(domain.NutrientSodium)
		if ok && sodium > seniorSodiumGrams {
			c.concerns = append(c.concerns, domain.Finding{
				Type:      domain.FindingAge,
				Source:    sourceAge,
				Severity:  domain.SeverityMedium,
				Label:     "High Sodium for Seniors",
				Value:     floatPtr(round2(sodium * 1000)),
				Unit:      unitMg,
				Threshold: floatPtr(seniorSodiumGrams * 1000),
				Reason:    "Sodium sensitivity increases with age",
				Icon:      "👴",
			})
		}
	}

	if profile.Age < childAge && containsAny(c.ingredients, caffeineMarkers) {
		c.concerns = append(c.concerns, domain.Finding{
			Type:     domain.FindingAge,
			Source:   sourceAge,
			Severity: domain.SeverityHigh,
			Label:    "Contains Caffeine",
			Reason:   "Caffeine is not recommended for children",
			Icon:     "🧒",
		})
	}
}

func nutrientFinding(
	rule domain.NutrientRule,
	value float64,
	source string,
	findingType domain.FindingType,
	severity domain.Severity,
	icon string,
) domain.Finding {
	return domain.Finding{
		Type:      findingType,
		Source:    source,
		Severity:  severity,
		Label:     rule.Label,
		Value:     floatPtr(round2(value)),
		Unit:      rule.Unit,
		Threshold: floatPtr(rule.Threshold),
		Reason:    rule.Reason,
		Icon:      icon,
	}
}

func bmiCategory(bmi float64) (category, advice string) {
	switch {
	case bmi < bmiUnderweight:
		return "Underweight", "Choose nutrient-dense foods with enough calories and protein."
	case bmi < bmiNormal:
		return "Normal", "Your weight is in the healthy range. Keep a balanced diet."
	case bmi < bmiOverweight:
		return "Overweight", "Prefer lower-calorie, high-fiber foods and watch portions."
	default:
		return "Obese", "Watch calorie density and portion sizes closely."
	}
}

// dedupeFindings keeps the first finding for each (label, source) pair.
func dedupeFindings(findings []domain.Finding) []domain.Finding {
	type key struct{ label, source string }
	seen := make(map[key]bool, len(findings))
	out := make([]domain.Finding, 0, len(findings))
	for _, f := range findings {
		k := key{f.Label, f.Source}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, f)
	}
	return out
}

// verdictLevel is a fixed decision tree; the branch order matters.
func verdictLevel(concerns, benefits []domain.Finding) domain.VerdictLevel {
	highCount := 0
	for _, c := range concerns {
		if c.Severity == domain.SeverityHigh {
			highCount++
		}
	}
	totalConcerns := len(concerns)
	totalBenefits := len(benefits)

	switch {
	case totalConcerns == 0 && totalBenefits == 0:
		return domain.VerdictNeutral
	case highCount >= 2:
		return domain.VerdictAvoid
	case highCount == 1 && totalConcerns >= 3:
		return domain.VerdictAvoid
	case totalConcerns >= 3:
		return domain.VerdictCaution
	case totalConcerns > totalBenefits:
		return domain.VerdictCaution
	case totalBenefits > totalConcerns && totalConcerns <= 1:
		return domain.VerdictGood
	default:
		return domain.VerdictModerate
	}
}

func summarizeProfile(profile *domain.HealthProfile) domain.ProfileSummary {
	total := len(profile.ChronicDiseases) + len(profile.TemporaryIssues) +
		len(profile.CustomHealthIssues) + len(profile.CustomGoals)
	if profile.Goal != "" {
		total++
	}
	return domain.ProfileSummary{
		HasChronicDiseases: len(profile.ChronicDiseases) > 0,
		HasTemporaryIssues: len(profile.TemporaryIssues) > 0,
		HasGoal:            profile.Goal != "",
		TotalFactors:       total,
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func floatPtr(v float64) *float64 {
	return &v
}
