package usecase

import "github.com/foodlens/backend/internal/domain"

// Severity weights of the final verdict score.
const (
	benefitWeight       = 1
	highConcernWeight   = 3
	mediumConcernWeight = 2
	lowConcernWeight    = 1
)

type finalBand struct {
	title  string
	emoji  string
	color  string
	advice string
}

const (
	adviceAvoid = "This product conflicts with several aspects of your health profile. " +
		"Look for an alternative that is lower in the nutrients flagged above, " +
		"or talk to your doctor or dietitian before making it part of your diet."
	adviceCaution = "Some ingredients or nutrients here are a concern for you. " +
		"Keep portions small, don't make it a daily habit, " +
		"and balance it with foods that support your health goals."
	adviceModerate = "This product has a mix of pros and cons for your profile. " +
		"It can fit into a balanced diet when eaten occasionally and in sensible amounts."
	adviceGood = "This product fits your health profile well. " +
		"Enjoy it as part of a varied diet and keep an eye on portion sizes."
	adviceGreat = "This product offers several benefits for your health profile " +
		"with few or no concerns. It is a great option to include regularly."
)

var finalBands = map[domain.FinalVerdictLevel]finalBand{
	domain.FinalAvoid:    {title: "Best Avoided", emoji: "🚫", color: "#e53935", advice: adviceAvoid},
	domain.FinalCaution:  {title: "Eat With Caution", emoji: "⚠️", color: "#fb8c00", advice: adviceCaution},
	domain.FinalModerate: {title: "Okay In Moderation", emoji: "🟡", color: "#fdd835", advice: adviceModerate},
	domain.FinalGood:     {title: "Good Choice", emoji: "✅", color: "#43a047", advice: adviceGood},
	domain.FinalGreat:    {title: "Great Choice", emoji: "🌟", color: "#2e7d32", advice: adviceGreat},
}

// ComputeFinalVerdict weighs concerns by severity against benefits. Concerns
// and benefits may mix rule-based and AI findings; both count the same.
// Concerns with an unknown severity are not weighted.
func ComputeFinalVerdict(concerns, benefits []domain.Finding) domain.FinalVerdict {
	var high, medium, low int
	for _, c := range concerns {
		switch c.Severity {
		case domain.SeverityHigh:
			high++
		case domain.SeverityMedium:
			medium++
		case domain.SeverityLow:
			low++
		}
	}
	totalBenefits := len(benefits)

	score := totalBenefits*benefitWeight -
		high*highConcernWeight -
		medium*mediumConcernWeight -
		low*lowConcernWeight

	var level domain.FinalVerdictLevel
	switch {
	case high >= 3 || score <= -6:
		level = domain.FinalAvoid
	case high >= 1 || score <= -3:
		level = domain.FinalCaution
	case score <= 0:
		level = domain.FinalModerate
	case score <= 3:
		level = domain.FinalGood
	default:
		level = domain.FinalGreat
	}

	b := finalBands[level]
	return domain.FinalVerdict{
		Level:          level,
		Title:          b.title,
		Emoji:          b.emoji,
		Color:          b.color,
		Advice:         b.advice,
		Score:          score,
		HighConcerns:   high,
		MediumConcerns: medium,
		LowConcerns:    low,
		TotalBenefits:  totalBenefits,
	}
}
