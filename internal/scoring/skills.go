package scoring

import (
	"strings"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

// ExtractSkills matches dictionary phrases against normalized resume text.
// Matching is literal substring containment without word boundaries; a short
// phrase can match inside a longer word. That imprecision is intentional and
// covered by tests, so do not tighten it here without changing them.
func ExtractSkills(d *Dictionary, normalized string) domain.SkillsFound {
	return domain.SkillsFound{
		Technical:      matchPhrases(d.Technical, normalized),
		Soft:           matchPhrases(d.Soft, normalized),
		Certifications: matchPhrases(d.Certifications, normalized),
	}
}

// matchPhrases returns the subsequence of phrases contained in text,
// preserving dictionary order. Each phrase is visited once, so the result is
// duplicate-free.
func matchPhrases(phrases []string, text string) []string {
	found := make([]string, 0, 4)
	for _, p := range phrases {
		if strings.Contains(text, p) {
			found = append(found, p)
		}
	}
	return found
}
