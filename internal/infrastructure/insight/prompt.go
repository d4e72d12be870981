package insight

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/foodlens/backend/internal/domain"
)

const systemPrompt = `You are a nutrition assistant. You judge how a packaged food product relates to a user's own health issues and goals.

Return ONLY valid JSON with this shape:
{
  "concerns": [{"label": "short title", "severity": "high/medium/low", "reason": "one sentence", "source": "the issue or goal this relates to"}],
  "benefits": [{"label": "short title", "reason": "one sentence", "source": "the issue or goal this relates to"}],
  "summary": "one or two sentences"
}

Rules:
- Only mention findings supported by the product data given
- Use empty arrays when there is nothing relevant
- Do not give medical diagnoses`

// buildUserPrompt lists the product facts and the user's free-text entries.
func buildUserPrompt(product *domain.Product, customIssues, customGoals []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Product: %s", orUnknown(product.Name))
	if product.Brand != "" {
		fmt.Fprintf(&b, " (%s)", product.Brand)
	}
	b.WriteString("\n")
	if product.HasNovaGroup() {
		fmt.Fprintf(&b, "NOVA group: %d\n", product.NovaGroup)
	}
	if product.NutritionGrade != "" {
		fmt.Fprintf(&b, "Nutri-Score: %s\n", product.NutritionGrade)
	}

	b.WriteString("Nutrients per 100g:\n")
	keys := make([]string, 0, len(product.Nutriments))
	for k := range product.Nutriments {
		if strings.HasSuffix(k, "_100g") {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v, ok := product.LookupNutrient(domain.NutrientKey(k)); ok {
			fmt.Fprintf(&b, "- %s: %g\n", strings.TrimSuffix(k, "_100g"), v)
		}
	}

	fmt.Fprintf(&b, "Ingredients: %s\n", orUnknown(product.IngredientsText))
	if len(product.AdditiveTags) > 0 {
		fmt.Fprintf(&b, "Additives: %s\n", strings.Join(product.AdditiveTags, ", "))
	}

	if len(customIssues) > 0 {
		fmt.Fprintf(&b, "\nUser health issues: %s\n", strings.Join(customIssues, "; "))
	}
	if len(customGoals) > 0 {
		fmt.Fprintf(&b, "User goals: %s\n", strings.Join(customGoals, "; "))
	}
	return b.String()
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}

type rawFinding struct {
	Label    string `json:"label"`
	Severity string `json:"severity"`
	Reason   string `json:"reason"`
	Source   string `json:"source"`
}

type rawInsights struct {
	Concerns []rawFinding `json:"concerns"`
	Benefits []rawFinding `json:"benefits"`
	Summary  string       `json:"summary"`
}

// parseInsights decodes a model reply, tolerating markdown code fences.
func parseInsights(response string) (*domain.CustomInsights, error) {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	response = strings.TrimSpace(response)

	var raw rawInsights
	if err := json.Unmarshal([]byte(response), &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	insights := &domain.CustomInsights{
		Concerns: make([]domain.Finding, 0, len(raw.Concerns)),
		Benefits: make([]domain.Finding, 0, len(raw.Benefits)),
		Summary:  strings.TrimSpace(raw.Summary),
	}
	for _, f := range raw.Concerns {
		if finding, ok := toFinding(f); ok {
			finding.Severity = normalizeSeverity(f.Severity)
			insights.Concerns = append(insights.Concerns, finding)
		}
	}
	for _, f := range raw.Benefits {
		if finding, ok := toFinding(f); ok {
			insights.Benefits = append(insights.Benefits, finding)
		}
	}
	return insights, nil
}

func toFinding(f rawFinding) (domain.Finding, bool) {
	label := strings.TrimSpace(f.Label)
	if label == "" {
		return domain.Finding{}, false
	}
	source := strings.TrimSpace(f.Source)
	if source == "" {
		source = string(domain.FindingCustom)
	}
	return domain.Finding{
		Type:   domain.FindingCustom,
		Source: source,
		Label:  label,
		Reason: strings.TrimSpace(f.Reason),
		Icon:   "🤖",
	}, true
}

// normalizeSeverity maps anything unrecognized to medium.
func normalizeSeverity(s string) domain.Severity {
	switch sev := domain.Severity(strings.ToLower(strings.TrimSpace(s))); sev {
	case domain.SeverityHigh, domain.SeverityMedium, domain.SeverityLow:
		return sev
	default:
		return domain.SeverityMedium
	}
}
