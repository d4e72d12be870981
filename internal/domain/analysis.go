package domain

// Severity ranks how serious a concern is.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank orders severities high < medium < low for sorting.
// Unknown severities sort last.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	default:
		return 3
	}
}

// FindingType names the profile dimension a finding came from.
type FindingType string

const (
	FindingChronic    FindingType = "chronic"
	FindingTemporary  FindingType = "temporary"
	FindingGoal       FindingType = "goal"
	FindingBMI        FindingType = "bmi"
	FindingAge        FindingType = "age"
	FindingIngredient FindingType = "ingredient"
	FindingCustom     FindingType = "custom"
)

// Finding is a concern or a benefit. Benefits leave Severity empty.
type Finding struct {
	Type      FindingType `json:"type"`
	Source    string      `json:"source"`
	Severity  Severity    `json:"severity,omitempty"`
	Label     string      `json:"label"`
	Value     *float64    `json:"value,omitempty"`
	Unit      string      `json:"unit,omitempty"`
	Threshold *float64    `json:"threshold,omitempty"`
	Reason    string      `json:"reason"`
	Icon      string      `json:"icon,omitempty"`
}

// Note is a free-text advisory attached to an active temporary issue.
type Note struct {
	Source string `json:"source"`
	Text   string `json:"text"`
}

// BMIInfo is the computed body mass index and its category.
type BMIInfo struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
	Advice   string  `json:"advice"`
}

// ProfileSummary describes which profile dimensions were present.
type ProfileSummary struct {
	HasChronicDiseases bool `json:"hasChronicDiseases"`
	HasTemporaryIssues bool `json:"hasTemporaryIssues"`
	HasGoal            bool `json:"hasGoal"`
	TotalFactors       int  `json:"totalFactors"`
}

// VerdictLevel is the personalized verdict of an analysis.
type VerdictLevel string

const (
	VerdictAvoid    VerdictLevel = "avoid"
	VerdictCaution  VerdictLevel = "caution"
	VerdictModerate VerdictLevel = "moderate"
	VerdictGood     VerdictLevel = "good"
	VerdictNeutral  VerdictLevel = "neutral"
)

// VerdictDisplay is the label/color/emoji tuple shown for a verdict.
type VerdictDisplay struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Emoji string `json:"emoji"`
}

// AnalysisResult is the outcome of analyzing one product for one profile.
type AnalysisResult struct {
	VerdictLevel   VerdictLevel   `json:"verdictLevel"`
	Verdict        VerdictDisplay `json:"verdict"`
	Concerns       []Finding      `json:"concerns"`
	Benefits       []Finding      `json:"benefits"`
	Notes          []Note         `json:"notes"`
	BMI            *BMIInfo       `json:"bmi"`
	ProfileSummary ProfileSummary `json:"profileSummary"`
}

// FinalVerdictLevel is the coarse verdict combining rule-based and AI findings.
type FinalVerdictLevel string

const (
	FinalAvoid    FinalVerdictLevel = "avoid"
	FinalCaution  FinalVerdictLevel = "caution"
	FinalModerate FinalVerdictLevel = "moderate"
	FinalGood     FinalVerdictLevel = "good"
	FinalGreat    FinalVerdictLevel = "great"
)

// FinalVerdict is the weighted-severity verdict shown at the top of a report.
type FinalVerdict struct {
	Level          FinalVerdictLevel `json:"level"`
	Title          string            `json:"title"`
	Emoji          string            `json:"emoji"`
	Color          string            `json:"color"`
	Advice         string            `json:"advice"`
	Score          int               `json:"score"`
	HighConcerns   int               `json:"highConcerns"`
	MediumConcerns int               `json:"mediumConcerns"`
	LowConcerns    int               `json:"lowConcerns"`
	TotalBenefits  int               `json:"totalBenefits"`
}

// CustomInsights are AI-derived findings for free-text profile entries.
type CustomInsights struct {
	Concerns []Finding `json:"concerns"`
	Benefits []Finding `json:"benefits"`
	Summary  string    `json:"summary,omitempty"`
}

// ProductReport bundles everything shown for one scanned product.
type ProductReport struct {
	Product      ProductSummary  `json:"product"`
	Rating       RatingResult    `json:"rating"`
	Analysis     *AnalysisResult `json:"analysis"`
	Insights     *CustomInsights `json:"aiInsights,omitempty"`
	FinalVerdict *FinalVerdict   `json:"finalVerdict"`
	Source       string          `json:"source"`
}

// ProductSummary is the identifying subset of a product shown in a report.
type ProductSummary struct {
	Code           string `json:"code"`
	Name           string `json:"productName,omitempty"`
	Brand          string `json:"brand,omitempty"`
	NovaGroup      int    `json:"novaGroup,omitempty"`
	NutritionGrade string `json:"nutritionGrade,omitempty"`
}
