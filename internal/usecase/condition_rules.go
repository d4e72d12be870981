package usecase

import "github.com/foodlens/backend/internal/domain"

// Rule tables are read-only after package initialization.

func nutrientRule(key domain.NutrientKey, threshold float64, label, unit, reason string) domain.NutrientRule {
	return domain.NutrientRule{Nutrient: key, Threshold: threshold, Label: label, Unit: unit, Reason: reason}
}

// Per-100g units. Minerals, vitamins, cholesterol and caffeine are in mg.
const (
	unitGrams = "g"
	unitMg    = "mg"
	unitKcal  = "kcal"
)

var chronicRules = map[domain.ChronicCondition]domain.ConditionRule{
	domain.ConditionDiabetes: {
		Name:     "Diabetes",
		Icon:     "🩸",
		Severity: domain.SeverityHigh,
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientSugars, 5, "Sugar", unitGrams, "High sugar can spike blood glucose levels"),
			nutrientRule(domain.NutrientCarbs, 30, "Carbohydrates", unitGrams, "High carbohydrate load raises blood sugar"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientFiber, 3, "Fiber", unitGrams, "Fiber slows sugar absorption"),
			nutrientRule(domain.NutrientProteins, 10, "Protein", unitGrams, "Protein helps keep blood sugar stable"),
		},
		AvoidIngredients: []string{
			"glucose syrup", "corn syrup", "dextrose", "maltodextrin",
		},
	},
	domain.ConditionHypertension: {
		Name:     "Hypertension",
		Icon:     "💓",
		Severity: domain.SeverityHigh,
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientSodium, 0.4, "Sodium", unitGrams, "Sodium raises blood pressure"),
			nutrientRule(domain.NutrientSaturatedFat, 5, "Saturated Fat", unitGrams, "Saturated fat strains the cardiovascular system"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientPotassium, 200, "Potassium", unitMg, "Potassium helps counter the effect of sodium"),
		},
		AvoidIngredients: []string{
			"monosodium glutamate", "sodium benzoate", "baking soda",
		},
	},
	domain.ConditionHeartDisease: {
		Name:     "Heart Disease",
		Icon:     "❤️",
		Severity: domain.SeverityHigh,
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientSaturatedFat, 3, "Saturated Fat", unitGrams, "Saturated fat raises LDL cholesterol"),
			nutrientRule(domain.NutrientTransFat, 0, "Trans Fat", unitGrams, "Any trans fat increases heart disease risk"),
			nutrientRule(domain.NutrientSodium, 0.5, "Sodium", unitGrams, "Sodium increases cardiac load"),
			nutrientRule(domain.NutrientCholesterol, 60, "Cholesterol", unitMg, "Dietary cholesterol adds to arterial plaque"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientFiber, 3, "Fiber", unitGrams, "Fiber helps lower cholesterol"),
		},
		AvoidIngredients: []string{
			"hydrogenated", "palm oil", "lard",
		},
	},
	domain.ConditionHighCholesterol: {
		Name:     "High Cholesterol",
		Icon:     "🫀",
		Severity: domain.SeverityHigh,
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientSaturatedFat, 3, "Saturated Fat", unitGrams, "Saturated fat raises LDL cholesterol"),
			nutrientRule(domain.NutrientTransFat, 0, "Trans Fat", unitGrams, "Trans fat raises LDL and lowers HDL"),
			nutrientRule(domain.NutrientCholesterol, 50, "Cholesterol", unitMg, "Dietary cholesterol adds to blood cholesterol"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientFiber, 3, "Fiber", unitGrams, "Soluble fiber binds cholesterol"),
		},
		AvoidIngredients: []string{
			"hydrogenated", "lard", "butter oil",
		},
	},
	domain.ConditionKidneyDisease: {
		Name:     "Kidney Disease",
		Icon:     "🫘",
		Severity: domain.SeverityHigh,
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientSodium, 0.3, "Sodium", unitGrams, "Damaged kidneys struggle to clear sodium"),
			nutrientRule(domain.NutrientProteins, 15, "Protein", unitGrams, "Excess protein adds kidney workload"),
			nutrientRule(domain.NutrientPotassium, 300, "Potassium", unitMg, "Potassium can build up with reduced kidney function"),
		},
		AvoidIngredients: []string{
			"phosphate", "phosphoric acid", "potassium chloride",
		},
	},
	domain.ConditionLiverDisease: {
		Name:     "Liver Disease",
		Icon:     "🧪",
		Severity: domain.SeverityHigh,
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientFat, 15, "Fat", unitGrams, "High fat intake promotes fatty liver"),
			nutrientRule(domain.NutrientSugars, 10, "Sugar", unitGrams, "Excess sugar is converted to liver fat"),
			nutrientRule(domain.NutrientSodium, 0.5, "Sodium", unitGrams, "Sodium worsens fluid retention"),
		},
		AvoidIngredients: []string{
			"alcohol", "high fructose corn syrup",
		},
	},
	domain.ConditionObesity: {
		Name:     "Obesity",
		Icon:     "⚖️",
		Severity: domain.SeverityMedium,
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientEnergyKcal, 250, "Calories", unitKcal, "Calorie-dense foods make weight control harder"),
			nutrientRule(domain.NutrientSugars, 10, "Sugar", unitGrams, "Added sugar adds empty calories"),
			nutrientRule(domain.NutrientFat, 15, "Fat", unitGrams, "High fat content is calorie dense"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientFiber, 5, "Fiber", unitGrams, "Fiber increases satiety"),
			nutrientRule(domain.NutrientProteins, 10, "Protein", unitGrams, "Protein keeps you full for longer"),
		},
	},
	domain.ConditionThyroid: {
		Name:     "Thyroid Disorder",
		Icon:     "🦋",
		Severity: domain.SeverityMedium,
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientSugars, 15, "Sugar", unitGrams, "Sugar swings worsen thyroid-related fatigue"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientIron, 2, "Iron", unitMg, "Iron supports thyroid hormone production"),
		},
		AvoidIngredients: []string{
			"soy", "soya",
		},
	},
	domain.ConditionCeliacDisease: {
		Name:     "Celiac Disease",
		Icon:     "🌾",
		Severity: domain.SeverityHigh,
		AvoidIngredients: []string{
			"wheat", "barley", "rye", "gluten", "malt", "semolina", "maida",
		},
	},
	domain.ConditionLactoseIntolerance: {
		Name:     "Lactose Intolerance",
		Icon:     "🥛",
		Severity: domain.SeverityMedium,
		AvoidIngredients: []string{
			"milk", "lactose", "whey", "cream", "cheese", "curd",
		},
	},
	domain.ConditionGout: {
		Name:     "Gout",
		Icon:     "🦶",
		Severity: domain.SeverityMedium,
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientProteins, 20, "Protein", unitGrams, "High-protein foods are often high in purines"),
			nutrientRule(domain.NutrientSugars, 10, "Sugar", unitGrams, "Fructose raises uric acid"),
		},
		AvoidIngredients: []string{
			"yeast extract", "anchovy", "sardine", "high fructose corn syrup",
		},
	},
	domain.ConditionIBS: {
		Name:     "IBS",
		Icon:     "🌀",
		Severity: domain.SeverityMedium,
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientFat, 17.5, "Fat", unitGrams, "Fatty foods can trigger IBS symptoms"),
		},
		AvoidIngredients: []string{
			"inulin", "sorbitol", "mannitol", "xylitol", "onion", "garlic", "chicory root",
		},
	},
	domain.ConditionPCOD: {
		Name:     "PCOD / PCOS",
		Icon:     "🌸",
		Severity: domain.SeverityMedium,
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientSugars, 5, "Sugar", unitGrams, "Sugar worsens insulin resistance"),
			nutrientRule(domain.NutrientCarbs, 40, "Carbohydrates", unitGrams, "Refined carbohydrates raise insulin levels"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientFiber, 5, "Fiber", unitGrams, "Fiber improves insulin sensitivity"),
			nutrientRule(domain.NutrientProteins, 10, "Protein", unitGrams, "Protein helps balance hormones and appetite"),
		},
		AvoidIngredients: []string{
			"maida", "white flour",
		},
	},
	domain.ConditionAsthma: {
		Name:     "Asthma",
		Icon:     "🌬️",
		Severity: domain.SeverityLow,
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientVitaminC, 10, "Vitamin C", unitMg, "Vitamin C supports airway health"),
		},
		AvoidIngredients: []string{
			"sulphite", "sulfite", "e220", "e223", "tartrazine", "sodium benzoate",
		},
	},
}

// Temporary issue severities are informational only; findings are always medium.
var temporaryRules = map[domain.TemporaryIssue]domain.ConditionRule{
	domain.IssueColdFlu: {
		Name:     "Cold / Flu",
		Icon:     "🤧",
		Severity: domain.SeverityMedium,
		Note:     "Stay hydrated and prefer warm, vitamin C rich foods while you recover.",
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientSugars, 10, "Sugar", unitGrams, "Sugar can weaken the immune response"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientVitaminC, 10, "Vitamin C", unitMg, "Vitamin C supports recovery"),
		},
		AvoidIngredients: []string{
			"ice cream",
		},
	},
	domain.IssueAcidity: {
		Name:     "Acidity / GERD",
		Icon:     "🔥",
		Severity: domain.SeverityMedium,
		Note:     "Eat smaller meals and avoid lying down right after eating.",
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientFat, 15, "Fat", unitGrams, "Fatty foods relax the esophageal sphincter"),
		},
		AvoidIngredients: []string{
			"chilli", "chili", "vinegar", "citric acid", "caffeine", "coffee", "mint",
		},
	},
	domain.IssueConstipation: {
		Name:     "Constipation",
		Icon:     "🚽",
		Severity: domain.SeverityLow,
		Note:     "Drink plenty of water and add fiber gradually.",
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientFat, 17.5, "Fat", unitGrams, "High fat slows digestion"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientFiber, 3, "Fiber", unitGrams, "Fiber eases bowel movements"),
		},
		AvoidIngredients: []string{
			"maida", "refined flour",
		},
	},
	domain.IssueDiarrhea: {
		Name:     "Diarrhea",
		Icon:     "💧",
		Severity: domain.SeverityHigh,
		Note:     "Replace lost fluids and electrolytes; bland foods are easiest to digest.",
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientFat, 10, "Fat", unitGrams, "Fat is hard to digest during diarrhea"),
			nutrientRule(domain.NutrientFiber, 5, "Fiber", unitGrams, "Insoluble fiber can speed up the gut"),
			nutrientRule(domain.NutrientSugars, 15, "Sugar", unitGrams, "Sugar draws water into the gut"),
		},
		AvoidIngredients: []string{
			"sorbitol", "lactose", "caffeine",
		},
	},
	domain.IssueHeadache: {
		Name:     "Headache / Migraine",
		Icon:     "🤕",
		Severity: domain.SeverityMedium,
		Note:     "Regular meals and hydration reduce headache frequency.",
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientSodium, 0.6, "Sodium", unitGrams, "Salty foods can trigger headaches"),
		},
		AvoidIngredients: []string{
			"monosodium glutamate", "aspartame", "nitrite", "caffeine",
		},
	},
	domain.IssueBloating: {
		Name:     "Bloating",
		Icon:     "🎈",
		Severity: domain.SeverityLow,
		Note:     "Eat slowly and avoid carbonated drinks.",
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientSodium, 0.5, "Sodium", unitGrams, "Sodium causes water retention"),
		},
		AvoidIngredients: []string{
			"carbonated", "inulin", "sorbitol",
		},
	},
	domain.IssueSkin: {
		Name:     "Skin Issues",
		Icon:     "✨",
		Severity: domain.SeverityLow,
		Note:     "Limit sugary and greasy foods while your skin heals.",
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientSugars, 10, "Sugar", unitGrams, "Sugar spikes are linked to breakouts"),
			nutrientRule(domain.NutrientFat, 17.5, "Fat", unitGrams, "Greasy foods can aggravate skin"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientVitaminC, 10, "Vitamin C", unitMg, "Vitamin C supports collagen production"),
		},
		AvoidIngredients: []string{
			"whey",
		},
	},
	domain.IssueFatigue: {
		Name:     "Fatigue",
		Icon:     "😴",
		Severity: domain.SeverityLow,
		Note:     "Steady energy comes from protein, fiber and iron rather than sugar.",
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientSugars, 15, "Sugar", unitGrams, "Sugar highs are followed by energy crashes"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientProteins, 8, "Protein", unitGrams, "Protein provides sustained energy"),
			nutrientRule(domain.NutrientIron, 2, "Iron", unitMg, "Iron carries oxygen to your muscles"),
			nutrientRule(domain.NutrientFiber, 3, "Fiber", unitGrams, "Fiber smooths energy release"),
		},
	},
	domain.IssueJointPain: {
		Name:     "Joint Pain",
		Icon:     "🦴",
		Severity: domain.SeverityMedium,
		Note:     "Anti-inflammatory foods and staying active help joint pain.",
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientSugars, 10, "Sugar", unitGrams, "Sugar promotes inflammation"),
			nutrientRule(domain.NutrientSaturatedFat, 5, "Saturated Fat", unitGrams, "Saturated fat promotes inflammation"),
			nutrientRule(domain.NutrientSodium, 0.5, "Sodium", unitGrams, "Sodium increases swelling"),
		},
		AvoidIngredients: []string{
			"hydrogenated",
		},
	},
	domain.IssueRecentWeightGain: {
		Name:     "Recent Weight Gain",
		Icon:     "📈",
		Severity: domain.SeverityLow,
		Note:     "Small, consistent changes work better than strict diets.",
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientEnergyKcal, 250, "Calories", unitKcal, "Calorie-dense foods add up quickly"),
			nutrientRule(domain.NutrientSugars, 10, "Sugar", unitGrams, "Sugar adds empty calories"),
			nutrientRule(domain.NutrientFat, 15, "Fat", unitGrams, "Fat is the most calorie-dense nutrient"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientFiber, 5, "Fiber", unitGrams, "Fiber keeps you full"),
			nutrientRule(domain.NutrientProteins, 10, "Protein", unitGrams, "Protein curbs appetite"),
		},
	},
	domain.IssueAllergySeason: {
		Name:     "Allergy Season",
		Icon:     "🌼",
		Severity: domain.SeverityLow,
		Note:     "Check labels carefully for your known allergens.",
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientVitaminC, 10, "Vitamin C", unitMg, "Vitamin C acts as a natural antihistamine"),
		},
		AvoidIngredients: []string{
			"sulphite", "sulfite", "tartrazine",
		},
	},
	domain.IssuePregnancy: {
		Name:     "Pregnancy",
		Icon:     "🤰",
		Severity: domain.SeverityHigh,
		Note:     "Consult your doctor about dietary needs during pregnancy.",
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientCaffeine, 20, "Caffeine", unitMg, "Caffeine intake should be limited during pregnancy"),
			nutrientRule(domain.NutrientSodium, 0.6, "Sodium", unitGrams, "Sodium worsens swelling"),
			nutrientRule(domain.NutrientSugars, 15, "Sugar", unitGrams, "Sugar raises gestational diabetes risk"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientIron, 2, "Iron", unitMg, "Iron needs rise during pregnancy"),
			nutrientRule(domain.NutrientCalcium, 120, "Calcium", unitMg, "Calcium supports the baby's bones"),
			nutrientRule(domain.NutrientProteins, 8, "Protein", unitGrams, "Protein supports fetal growth"),
		},
		AvoidIngredients: []string{
			"alcohol", "raw egg", "unpasteurized",
		},
	},
}

// Goal concerns are always low severity.
var goalRules = map[domain.HealthGoal]domain.ConditionRule{
	domain.GoalWeightLoss: {
		Name: "Weight Loss",
		Icon: "🏃",
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientEnergyKcal, 250, "Calories", unitKcal, "High calories work against a calorie deficit"),
			nutrientRule(domain.NutrientSugars, 10, "Sugar", unitGrams, "Sugar adds empty calories"),
			nutrientRule(domain.NutrientFat, 15, "Fat", unitGrams, "Fat is calorie dense"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientFiber, 5, "Fiber", unitGrams, "Fiber keeps you full on fewer calories"),
			nutrientRule(domain.NutrientProteins, 10, "Protein", unitGrams, "Protein preserves muscle while losing weight"),
		},
	},
	domain.GoalWeightGain: {
		Name: "Weight Gain",
		Icon: "🍽️",
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientSugars, 25, "Sugar", unitGrams, "Gain weight from nutrients, not sugar"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientEnergyKcal, 350, "Calories", unitKcal, "Energy-dense foods help reach a calorie surplus"),
			nutrientRule(domain.NutrientProteins, 10, "Protein", unitGrams, "Protein builds lean mass"),
		},
	},
	domain.GoalMuscleBuilding: {
		Name: "Muscle Building",
		Icon: "💪",
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientSugars, 15, "Sugar", unitGrams, "Excess sugar adds fat rather than muscle"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientProteins, 15, "Protein", unitGrams, "Protein is essential for muscle repair"),
		},
	},
	domain.GoalMaintainHealth: {
		Name: "Maintain Health",
		Icon: "🌿",
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientSugars, 15, "Sugar", unitGrams, "Keep sugar intake moderate"),
			nutrientRule(domain.NutrientSodium, 0.6, "Sodium", unitGrams, "Keep sodium intake moderate"),
			nutrientRule(domain.NutrientSaturatedFat, 5, "Saturated Fat", unitGrams, "Keep saturated fat intake moderate"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientFiber, 3, "Fiber", unitGrams, "Fiber supports overall health"),
		},
	},
	domain.GoalImproveDigestion: {
		Name: "Improve Digestion",
		Icon: "🌱",
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientFat, 17.5, "Fat", unitGrams, "High fat slows digestion"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientFiber, 5, "Fiber", unitGrams, "Fiber feeds healthy gut bacteria"),
		},
	},
	domain.GoalBoostImmunity: {
		Name: "Boost Immunity",
		Icon: "🛡️",
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientSugars, 15, "Sugar", unitGrams, "Sugar can dampen immune function"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientVitaminC, 10, "Vitamin C", unitMg, "Vitamin C supports immune cells"),
			nutrientRule(domain.NutrientProteins, 8, "Protein", unitGrams, "Antibodies are built from protein"),
		},
	},
	domain.GoalBetterSkin: {
		Name: "Better Skin",
		Icon: "✨",
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientSugars, 10, "Sugar", unitGrams, "Sugar accelerates skin aging"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientVitaminC, 10, "Vitamin C", unitMg, "Vitamin C supports collagen"),
		},
	},
	domain.GoalManageDiabetes: {
		Name: "Manage Diabetes",
		Icon: "🩺",
		Limit: []domain.NutrientRule{
			nutrientRule(domain.NutrientSugars, 5, "Sugar", unitGrams, "Keep sugar low to control blood glucose"),
			nutrientRule(domain.NutrientCarbs, 30, "Carbohydrates", unitGrams, "Carbohydrates raise blood glucose"),
		},
		Encourage: []domain.NutrientRule{
			nutrientRule(domain.NutrientFiber, 5, "Fiber", unitGrams, "Fiber slows glucose absorption"),
		},
	},
}

// ChronicConditionRule returns the rule set for a chronic condition.
func ChronicConditionRule(id domain.ChronicCondition) (domain.ConditionRule, bool) {
	rule, ok := chronicRules[id]
	return rule, ok
}

// TemporaryIssueRule returns the rule set for a temporary issue.
func TemporaryIssueRule(id domain.TemporaryIssue) (domain.ConditionRule, bool) {
	rule, ok := temporaryRules[id]
	return rule, ok
}

// GoalRule returns the rule set for a goal.
func GoalRule(id domain.HealthGoal) (domain.ConditionRule, bool) {
	rule, ok := goalRules[id]
	return rule, ok
}
