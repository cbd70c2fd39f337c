package scoring

import (
	"math"
	"strings"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

// AggregateScores combines the four signals into category sub-scores and an
// overall score. The skills sub-score starts at a base of 30 and earns capped
// bonuses per matched skill class; when a normalized job description is
// supplied, technical skills that also appear in it earn an extra capped
// bonus. The other sub-scores pass through from their signals. Overall is the
// half-up rounded mean of the four.
func AggregateScores(skills domain.SkillsFound, exp domain.ExperienceSignal, edu domain.EducationSignal, format domain.FormatSignal, normalizedJob string) domain.ScoreSet {
	s := 30
	s += capped(len(skills.Technical)*8, 40)
	s += capped(len(skills.Soft)*5, 20)
	s += capped(len(skills.Certifications)*10, 30)
	if normalizedJob != "" {
		matching := 0
		for _, t := range skills.Technical {
			if strings.Contains(normalizedJob, t) {
				matching++
			}
		}
		s += capped(matching*5, 20)
	}
	set := domain.ScoreSet{
		Skills:     clamp(s),
		Experience: clamp(exp.Score),
		Education:  clamp(edu.Score),
		Format:     clamp(format.Score),
	}
	sum := set.Skills + set.Experience + set.Education + set.Format
	set.Overall = int(math.Round(float64(sum) / 4.0))
	return set
}

func capped(v, max int) int {
	if v > max {
		return max
	}
	return v
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
