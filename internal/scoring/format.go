package scoring

import (
	"strings"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

// canonicalSections defines the seven resume sections the format heuristic
// looks for, each with its trigger keywords. Order is the reporting order.
var canonicalSections = []struct {
	name     string
	triggers []string
}{
	{"contact", []string{"email", "phone", "linkedin"}},
	{"summary", []string{"summary", "objective", "profile"}},
	{"experience", []string{"experience", "work", "employment"}},
	{"education", []string{"education", "academic", "degree"}},
	{"skills", []string{"skills", "technologies", "competencies"}},
	{"projects", []string{"project", "portfolio"}},
	{"certifications", []string{"certification", "certified", "license"}},
}

const (
	wordCountMin   = 300
	wordCountMax   = 1000
	wordCountBonus = 10
	sectionBonus   = 5
	formatBase     = 50
)

// ExtractFormat evaluates structural quality of the RAW resume text: +5 per
// detected canonical section on a base of 50, +10 when the word count falls
// in [300,1000], capped at 100. Section triggers match case-insensitively;
// the word count uses whitespace-delimited tokens of the raw text.
func ExtractFormat(raw string) domain.FormatSignal {
	lower := strings.ToLower(raw)
	score := formatBase
	sections := make([]string, 0, len(canonicalSections))
	for _, s := range canonicalSections {
		for _, t := range s.triggers {
			if strings.Contains(lower, t) {
				sections = append(sections, s.name)
				score += sectionBonus
				break
			}
		}
	}
	words := len(strings.Fields(raw))
	if words >= wordCountMin && words <= wordCountMax {
		score += wordCountBonus
	}
	if score > 100 {
		score = 100
	}
	return domain.FormatSignal{Score: score, Sections: sections, WordCount: words}
}
