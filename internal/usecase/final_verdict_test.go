package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodlens/backend/internal/domain"
)

func makeConcerns(high, medium, low int) []domain.Finding {
	var out []domain.Finding
	for i := 0; i < high; i++ {
		out = append(out, domain.Finding{Label: "high", Severity: domain.SeverityHigh})
	}
	for i := 0; i < medium; i++ {
		out = append(out, domain.Finding{Label: "medium", Severity: domain.SeverityMedium})
	}
	for i := 0; i < low; i++ {
		out = append(out, domain.Finding{Label: "low", Severity: domain.SeverityLow})
	}
	return out
}

func makeBenefits(n int) []domain.Finding {
	out := make([]domain.Finding, n)
	for i := range out {
		out[i] = domain.Finding{Label: "benefit"}
	}
	return out
}

func TestComputeFinalVerdict(t *testing.T) {
	tests := []struct {
		name      string
		concerns  []domain.Finding
		benefits  []domain.Finding
		wantLevel domain.FinalVerdictLevel
		wantScore int
	}{
		{name: "score reaches avoid floor", concerns: makeConcerns(1, 2, 0), benefits: makeBenefits(1), wantLevel: domain.FinalAvoid, wantScore: -6},
		{name: "three high despite benefits", concerns: makeConcerns(3, 0, 0), benefits: makeBenefits(10), wantLevel: domain.FinalAvoid, wantScore: 1},
		{name: "one high despite benefits", concerns: makeConcerns(1, 0, 0), benefits: makeBenefits(5), wantLevel: domain.FinalCaution, wantScore: 2},
		{name: "three low", concerns: makeConcerns(0, 0, 3), wantLevel: domain.FinalCaution, wantScore: -3},
		{name: "five medium", concerns: makeConcerns(0, 5, 0), benefits: makeBenefits(4), wantLevel: domain.FinalAvoid, wantScore: -6},
		{name: "nothing found", wantLevel: domain.FinalModerate, wantScore: 0},
		{name: "slightly negative", concerns: makeConcerns(0, 1, 1), benefits: makeBenefits(1), wantLevel: domain.FinalModerate, wantScore: -2},
		{name: "slightly positive", concerns: makeConcerns(0, 0, 2), benefits: makeBenefits(3), wantLevel: domain.FinalGood, wantScore: 1},
		{name: "good ceiling", benefits: makeBenefits(3), wantLevel: domain.FinalGood, wantScore: 3},
		{name: "great", benefits: makeBenefits(4), wantLevel: domain.FinalGreat, wantScore: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ComputeFinalVerdict(tt.concerns, tt.benefits)

			assert.Equal(t, tt.wantLevel, v.Level)
			assert.Equal(t, tt.wantScore, v.Score)
			assert.Equal(t, len(tt.benefits), v.TotalBenefits)
			assert.NotEmpty(t, v.Title)
			assert.NotEmpty(t, v.Emoji)
			assert.NotEmpty(t, v.Color)
			assert.NotEmpty(t, v.Advice)
		})
	}
}

func TestComputeFinalVerdict_Counts(t *testing.T) {
	v := ComputeFinalVerdict(makeConcerns(1, 2, 3), makeBenefits(2))

	assert.Equal(t, 1, v.HighConcerns)
	assert.Equal(t, 2, v.MediumConcerns)
	assert.Equal(t, 3, v.LowConcerns)
	assert.Equal(t, 2, v.TotalBenefits)
	assert.Equal(t, 2-3-4-3, v.Score)
}

func TestComputeFinalVerdict_UnknownSeverityNotWeighted(t *testing.T) {
	v := ComputeFinalVerdict([]domain.Finding{{Label: "odd", Severity: "critical"}}, nil)

	assert.Equal(t, 0, v.Score)
	assert.Equal(t, domain.FinalModerate, v.Level)
}

func TestComputeFinalVerdict_BandsAreDistinct(t *testing.T) {
	titles := map[string]domain.FinalVerdictLevel{}
	for _, in := range []struct{ c, b []domain.Finding }{
		{makeConcerns(3, 0, 0), nil},
		{makeConcerns(1, 0, 0), nil},
		{nil, nil},
		{nil, makeBenefits(1)},
		{nil, makeBenefits(5)},
	} {
		v := ComputeFinalVerdict(in.c, in.b)
		_, dup := titles[v.Title]
		assert.False(t, dup, "title %q reused", v.Title)
		titles[v.Title] = v.Level
	}
	assert.Len(t, titles, 5)
}
