package domain

import "math"

// ChronicCondition is a permanent health condition from the fixed vocabulary.
type ChronicCondition string

const (
	ConditionDiabetes           ChronicCondition = "diabetes"
	ConditionHypertension       ChronicCondition = "hypertension"
	ConditionHeartDisease       ChronicCondition = "heart-disease"
	ConditionHighCholesterol    ChronicCondition = "high-cholesterol"
	ConditionKidneyDisease      ChronicCondition = "kidney-disease"
	ConditionLiverDisease       ChronicCondition = "liver-disease"
	ConditionObesity            ChronicCondition = "obesity"
	ConditionThyroid            ChronicCondition = "thyroid"
	ConditionCeliacDisease      ChronicCondition = "celiac-disease"
	ConditionLactoseIntolerance ChronicCondition = "lactose-intolerance"
	ConditionGout               ChronicCondition = "gout"
	ConditionIBS                ChronicCondition = "ibs"
	ConditionPCOD               ChronicCondition = "pcod-pcos"
	ConditionAsthma             ChronicCondition = "asthma"
)

// ChronicConditions lists the vocabulary in display order.
var ChronicConditions = []ChronicCondition{
	ConditionDiabetes, ConditionHypertension, ConditionHeartDisease, ConditionHighCholesterol,
	ConditionKidneyDisease, ConditionLiverDisease, ConditionObesity, ConditionThyroid,
	ConditionCeliacDisease, ConditionLactoseIntolerance, ConditionGout, ConditionIBS,
	ConditionPCOD, ConditionAsthma,
}

// Valid reports whether c belongs to the vocabulary.
func (c ChronicCondition) Valid() bool {
	for _, known := range ChronicConditions {
		if c == known {
			return true
		}
	}
	return false
}

// TemporaryIssue is a short-lived health issue from the fixed vocabulary.
type TemporaryIssue string

const (
	IssueColdFlu          TemporaryIssue = "cold-flu"
	IssueAcidity          TemporaryIssue = "acidity-gerd"
	IssueConstipation     TemporaryIssue = "constipation"
	IssueDiarrhea         TemporaryIssue = "diarrhea"
	IssueHeadache         TemporaryIssue = "headache-migraine"
	IssueBloating         TemporaryIssue = "bloating"
	IssueSkin             TemporaryIssue = "skin-issues"
	IssueFatigue          TemporaryIssue = "fatigue"
	IssueJointPain        TemporaryIssue = "joint-pain"
	IssueRecentWeightGain TemporaryIssue = "weight-gain-recent"
	IssueAllergySeason    TemporaryIssue = "allergy-season"
	IssuePregnancy        TemporaryIssue = "pregnancy"
)

// TemporaryIssues lists the vocabulary in display order.
var TemporaryIssues = []TemporaryIssue{
	IssueColdFlu, IssueAcidity, IssueConstipation, IssueDiarrhea, IssueHeadache, IssueBloating,
	IssueSkin, IssueFatigue, IssueJointPain, IssueRecentWeightGain, IssueAllergySeason, IssuePregnancy,
}

// Valid reports whether i belongs to the vocabulary.
func (i TemporaryIssue) Valid() bool {
	for _, known := range TemporaryIssues {
		if i == known {
			return true
		}
	}
	return false
}

// HealthGoal is a dietary goal from the fixed vocabulary.
type HealthGoal string

const (
	GoalWeightLoss       HealthGoal = "weight-loss"
	GoalWeightGain       HealthGoal = "weight-gain"
	GoalMuscleBuilding   HealthGoal = "muscle-building"
	GoalMaintainHealth   HealthGoal = "maintain-health"
	GoalImproveDigestion HealthGoal = "improve-digestion"
	GoalBoostImmunity    HealthGoal = "boost-immunity"
	GoalBetterSkin       HealthGoal = "better-skin"
	GoalManageDiabetes   HealthGoal = "manage-diabetes"
)

// HealthGoals lists the vocabulary in display order.
var HealthGoals = []HealthGoal{
	GoalWeightLoss, GoalWeightGain, GoalMuscleBuilding, GoalMaintainHealth,
	GoalImproveDigestion, GoalBoostImmunity, GoalBetterSkin, GoalManageDiabetes,
}

// Valid reports whether g belongs to the vocabulary.
func (g HealthGoal) Valid() bool {
	for _, known := range HealthGoals {
		if g == known {
			return true
		}
	}
	return false
}

// HealthProfile is a user's health context. Zero numeric fields mean "not provided".
type HealthProfile struct {
	ChronicDiseases    []ChronicCondition `json:"chronicDiseases,omitempty"`
	TemporaryIssues    []TemporaryIssue   `json:"temporaryIssues,omitempty"`
	CustomHealthIssues []string           `json:"customHealthIssues,omitempty"`
	Goal               HealthGoal         `json:"goal,omitempty"`
	CustomGoals        []string           `json:"customGoals,omitempty"`
	Age                int                `json:"age,omitempty"`
	WeightKg           float64            `json:"weight,omitempty"`
	HeightCm           float64            `json:"height,omitempty"`
	Gender             string             `json:"gender,omitempty"`
}

// HasHealthData reports whether the profile carries anything worth analyzing.
func (p *HealthProfile) HasHealthData() bool {
	if p == nil {
		return false
	}
	return len(p.ChronicDiseases) > 0 ||
		len(p.TemporaryIssues) > 0 ||
		len(p.CustomHealthIssues) > 0 ||
		p.Goal != "" ||
		len(p.CustomGoals) > 0 ||
		p.Age > 0 ||
		(p.WeightKg > 0 && p.HeightCm > 0)
}

// HasCustomEntries reports whether free-text entries need the AI analyzer.
func (p *HealthProfile) HasCustomEntries() bool {
	return p != nil && (len(p.CustomHealthIssues) > 0 || len(p.CustomGoals) > 0)
}

// BMI returns weight/height² rounded to one decimal. ok is false unless
// both weight and height are positive.
func (p *HealthProfile) BMI() (bmi float64, ok bool) {
	if p == nil || p.WeightKg <= 0 || p.HeightCm <= 0 {
		return 0, false
	}
	h := p.HeightCm / 100.0
	return math.Round(p.WeightKg/(h*h)*10) / 10, true
}

// DropUnknown removes ids outside the fixed vocabularies and returns them.
func (p *HealthProfile) DropUnknown() []string {
	if p == nil {
		return nil
	}
	var dropped []string

	conditions := p.ChronicDiseases[:0]
	for _, c := range p.ChronicDiseases {
		if c.Valid() {
			conditions = append(conditions, c)
		} else {
			dropped = append(dropped, string(c))
		}
	}
	p.ChronicDiseases = conditions

	issues := p.TemporaryIssues[:0]
	for _, i := range p.TemporaryIssues {
		if i.Valid() {
			issues = append(issues, i)
		} else {
			dropped = append(dropped, string(i))
		}
	}
	p.TemporaryIssues = issues

	if p.Goal != "" && !p.Goal.Valid() {
		dropped = append(dropped, string(p.Goal))
		p.Goal = ""
	}
	return dropped
}
