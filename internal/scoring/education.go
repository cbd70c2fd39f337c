package scoring

import (
	"strings"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

// degreeTiers in strict precedence order; only the first matching tier is
// recorded even when several tiers' keywords appear in the text.
var degreeTiers = []struct {
	triggers []string
	label    string
	score    int
}{
	{[]string{"phd", "doctorate"}, "PhD/Doctorate", 100},
	{[]string{"master", "mba"}, "Master's Degree", 90},
	{[]string{"bachelor", "degree"}, "Bachelor's Degree", 80},
}

var educationKeywords = []string{
	"degree", "bachelor", "master", "phd", "university", "college", "graduate",
}

// ExtractEducation detects the highest-precedence degree mentioned in
// normalized text. The base score without any degree keyword is 50.
func ExtractEducation(normalized string) domain.EducationSignal {
	sig := domain.EducationSignal{
		Degrees:  []string{},
		Score:    50,
		Keywords: matchPhrases(educationKeywords, normalized),
	}
	for _, tier := range degreeTiers {
		for _, t := range tier.triggers {
			if strings.Contains(normalized, t) {
				sig.Degrees = []string{tier.label}
				sig.Score = tier.score
				return sig
			}
		}
	}
	return sig
}
