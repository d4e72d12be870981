package domain

// RatingResult is the general healthiness score of a product on a 0-5 scale.
// Verdict is derived from Score, not DisplayScore, so a 2.96 shows as 3.0
// with the "Below Average" verdict.
type RatingResult struct {
	Score        float64         `json:"score"`
	DisplayScore float64         `json:"displayScore"` // one decimal, display only
	Breakdown    RatingBreakdown `json:"breakdown"`
	Verdict      RatingVerdict   `json:"verdict"`
}

// RatingBreakdown holds the four sub-scores that make up a rating.
type RatingBreakdown struct {
	Nutrition   SubScore        `json:"nutrition"`
	Ingredients SubScore        `json:"ingredients"`
	Processing  SubScore        `json:"processing"`
	Additives   AdditivePenalty `json:"additives"`
}

// SubScore is a bounded component score.
type SubScore struct {
	Score float64 `json:"score"`
	Max   float64 `json:"max"`
}

// AdditivePenalty is the magnitude subtracted for harmful additives.
type AdditivePenalty struct {
	Penalty float64 `json:"penalty"`
	Max     float64 `json:"max"`
}

// RatingVerdict is the display tuple for a rating score.
type RatingVerdict struct {
	Text  string `json:"text"`
	Color string `json:"color"`
	Grade string `json:"grade"`
}
