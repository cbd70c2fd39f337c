package scoring

import (
	"fmt"
	"strings"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

// BuildInsights renders the deterministic strengths, improvements,
// recommendations and keyword report from the extracted signals. All text
// comes from fixed templates; free-form narrative is the AI enrichment's job.
func BuildInsights(d *Dictionary, raw, normalizedJob string, skills domain.SkillsFound, exp domain.ExperienceSignal, edu domain.EducationSignal) domain.Insights {
	ins := domain.Insights{
		Strengths:       []domain.Insight{},
		Improvements:    []domain.Insight{},
		Recommendations: []domain.Insight{},
	}

	if n := len(skills.Technical); n > 5 {
		ins.Strengths = append(ins.Strengths, domain.Insight{
			Title:       "Strong Technical Skills",
			Description: fmt.Sprintf("Found %d technical skills including %s.", n, strings.Join(skills.Technical[:3], ", ")),
		})
	}
	if exp.Years > 3 {
		ins.Strengths = append(ins.Strengths, domain.Insight{
			Title:       "Relevant Experience",
			Description: fmt.Sprintf("%d years of professional experience detected.", exp.Years),
		})
	}
	if len(edu.Degrees) > 0 {
		ins.Strengths = append(ins.Strengths, domain.Insight{
			Title:       "Strong Educational Background",
			Description: fmt.Sprintf("%s listed on the resume.", edu.Degrees[0]),
		})
	}

	if len(skills.Technical) < 3 {
		ins.Improvements = append(ins.Improvements, domain.Insight{
			Title:       "Limited Technical Skills",
			Description: "Fewer than three technical skills were detected. List the specific technologies you have worked with.",
		})
	}
	lowerRaw := strings.ToLower(raw)
	if !strings.Contains(lowerRaw, "achieved") && !strings.Contains(lowerRaw, "increased") {
		ins.Improvements = append(ins.Improvements, domain.Insight{
			Title:       "Missing Quantifiable Achievements",
			Description: "Add measurable outcomes to your bullet points, for example \"increased deployment frequency by 40%\".",
		})
	}

	ins.Recommendations = append(ins.Recommendations, domain.Insight{
		Title:       "Add a Professional Summary",
		Description: "Open the resume with two or three sentences highlighting your strongest qualifications.",
	})
	if gaps := jobSkillGaps(d, normalizedJob, skills.Technical); len(gaps) > 0 {
		ins.Recommendations = append(ins.Recommendations, domain.Insight{
			Title:       "Include Job-Specific Skills",
			Description: fmt.Sprintf("The job description mentions %s; add them if you have that experience.", strings.Join(gaps, ", ")),
		})
	}

	ins.Keywords = domain.KeywordReport{
		Found:   append(append([]string{}, skills.Technical...), skills.Soft...),
		Missing: missingKeywords(d, normalizedJob, skills),
	}
	return ins
}

// jobSkillGaps returns up to three dictionary technical skills that appear in
// the job text but not in the resume, in dictionary order.
func jobSkillGaps(d *Dictionary, normalizedJob string, foundTechnical []string) []string {
	if normalizedJob == "" {
		return nil
	}
	found := make(map[string]struct{}, len(foundTechnical))
	for _, t := range foundTechnical {
		found[t] = struct{}{}
	}
	gaps := make([]string, 0, 3)
	for _, t := range d.Technical {
		if _, ok := found[t]; ok {
			continue
		}
		if strings.Contains(normalizedJob, t) {
			gaps = append(gaps, t)
			if len(gaps) == 3 {
				break
			}
		}
	}
	return gaps
}

// missingKeywords derives keyword-gap candidates from the job text: tokens
// longer than three runes, not stop words, present in the technical or soft
// dictionaries, and not a substring of any keyword already found. Duplicates
// are dropped, relative order preserved.
func missingKeywords(d *Dictionary, normalizedJob string, skills domain.SkillsFound) []string {
	missing := []string{}
	if normalizedJob == "" {
		return missing
	}
	foundAll := append(append([]string{}, skills.Technical...), skills.Soft...)
	seen := map[string]struct{}{}
	for _, tok := range strings.Fields(normalizedJob) {
		if len(tok) <= 3 || IsStopWord(tok) || !d.IsKeyword(tok) {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		covered := false
		for _, f := range foundAll {
			if strings.Contains(f, tok) {
				covered = true
				break
			}
		}
		if covered {
			continue
		}
		seen[tok] = struct{}{}
		missing = append(missing, tok)
	}
	return missing
}
