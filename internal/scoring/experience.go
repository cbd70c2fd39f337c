package scoring

import (
	"regexp"
	"strconv"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

// yearsPattern matches "8 years", "10+ yrs", "3yr" and similar. The input is
// already lowercased by normalization; the optional '+' survives only in
// un-normalized callers but is kept for robustness.
var yearsPattern = regexp.MustCompile(`(\d{1,2})\s*\+?\s*(?:years?|yrs?)`)

var experienceKeywords = []string{
	"years", "experience", "worked", "developed", "managed", "led", "created",
}

// ExtractExperience scans normalized text for tenure statements and scores
// the maximum number of years found against a fixed bracket table.
func ExtractExperience(normalized string) domain.ExperienceSignal {
	years := 0
	for _, m := range yearsPattern.FindAllStringSubmatch(normalized, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > years {
			years = n
		}
	}
	return domain.ExperienceSignal{
		Years:    years,
		Score:    experienceScore(years),
		Keywords: matchPhrases(experienceKeywords, normalized),
	}
}

// experienceScore is a monotonic step function of years.
func experienceScore(years int) int {
	switch {
	case years >= 10:
		return 100
	case years >= 5:
		return 85
	case years >= 3:
		return 70
	case years >= 1:
		return 50
	default:
		return 30
	}
}
