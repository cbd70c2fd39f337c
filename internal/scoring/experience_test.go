package scoring_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fairyhunter13/resume-analyzer/internal/scoring"
)

func TestExtractExperience_Years(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		text      string
		wantYears int
	}{
		{"none", "software engineer", 0},
		{"simple", "8 years experience", 8},
		{"plus form normalized", scoring.Normalize("10+ years in backend"), 10},
		{"yr abbreviation", "3 yrs of go, 1 yr of rust", 3},
		{"max wins", "2 years at acme, 12 years overall", 12},
		{"no space", "5years of java", 5},
		{"two digits cap", "25 years", 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sig := scoring.ExtractExperience(tt.text)
			assert.Equal(t, tt.wantYears, sig.Years)
		})
	}
}

// Score is a monotonic non-decreasing step function of years.
func TestExtractExperience_ScoreBrackets(t *testing.T) {
	t.Parallel()
	brackets := map[int]int{
		0: 30, 1: 50, 2: 50, 3: 70, 4: 70, 5: 85, 9: 85, 10: 100, 15: 100,
	}
	prevYears, prevScore := -1, 0
	for years := 0; years <= 15; years++ {
		text := fmt.Sprintf("%d years experience", years)
		if years == 0 {
			text = "no tenure mentioned"
		}
		sig := scoring.ExtractExperience(text)
		if want, ok := brackets[years]; ok {
			assert.Equal(t, want, sig.Score, "years=%d", years)
		}
		if prevYears >= 0 {
			assert.GreaterOrEqual(t, sig.Score, prevScore, "score decreased at years=%d", years)
		}
		prevYears, prevScore = years, sig.Score
	}
}

func TestExtractExperience_Keywords(t *testing.T) {
	t.Parallel()
	sig := scoring.ExtractExperience("developed and managed services for 6 years")
	assert.Equal(t, []string{"years", "developed", "managed"}, sig.Keywords)
}

func TestExtractExperience_SeniorResume(t *testing.T) {
	t.Parallel()
	sig := scoring.ExtractExperience(scoring.Normalize(seniorResume))
	assert.Equal(t, 8, sig.Years)
	assert.Equal(t, 85, sig.Score)
}
