// Package usecase contains application business logic services.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fairyhunter13/resume-analyzer/internal/config"
	"github.com/fairyhunter13/resume-analyzer/internal/domain"
	"github.com/fairyhunter13/resume-analyzer/internal/scoring"
)

// AnalyzeService orchestrates the analysis pipeline: normalization, signal
// extraction, score aggregation, insight generation and optional AI
// enrichment. It is stateless; the dictionary and AI client are injected.
type AnalyzeService struct {
	Dict *scoring.Dictionary
	AI   domain.AIClient
	Cfg  config.Config
}

// NewAnalyzeService constructs an AnalyzeService with its dependencies.
func NewAnalyzeService(dict *scoring.Dictionary, ai domain.AIClient, cfg config.Config) AnalyzeService {
	return AnalyzeService{Dict: dict, AI: ai, Cfg: cfg}
}

// Analyze turns extracted resume text plus an optional job description into
// a complete AnalysisResult. It fails only on insufficient input text; AI
// enrichment failures degrade to a nil AIInsights and never abort the
// analysis.
func (s AnalyzeService) Analyze(ctx context.Context, resumeText, jobDescription string) (domain.AnalysisResult, error) {
	trimmed := strings.TrimSpace(resumeText)
	if len(trimmed) < s.Cfg.MinResumeChars {
		return domain.AnalysisResult{}, fmt.Errorf("%w: extracted text too short (%d chars, need %d)",
			domain.ErrExtraction, len(trimmed), s.Cfg.MinResumeChars)
	}

	normalized := scoring.Normalize(resumeText)
	normalizedJob := scoring.Normalize(jobDescription)

	// The four extractors are pure functions with no data dependency on each
	// other, so they run concurrently.
	var (
		skills domain.SkillsFound
		exp    domain.ExperienceSignal
		edu    domain.EducationSignal
		format domain.FormatSignal
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { skills = scoring.ExtractSkills(s.Dict, normalized); return nil })
	g.Go(func() error { exp = scoring.ExtractExperience(normalized); return nil })
	g.Go(func() error { edu = scoring.ExtractEducation(normalized); return nil })
	g.Go(func() error { format = scoring.ExtractFormat(resumeText); return nil })
	if err := g.Wait(); err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	scores := scoring.AggregateScores(skills, exp, edu, format, normalizedJob)
	insights := scoring.BuildInsights(s.Dict, resumeText, normalizedJob, skills, exp, edu)

	return domain.AnalysisResult{
		ID:              uuid.NewString(),
		OverallScore:    scores.Overall,
		Metrics:         scores,
		Strengths:       insights.Strengths,
		Improvements:    insights.Improvements,
		Keywords:        insights.Keywords,
		Recommendations: insights.Recommendations,
		AIInsights:      s.enrich(ctx, resumeText, jobDescription),
		ExtractedData: domain.ExtractedData{
			Skills:     skills,
			Experience: exp,
			Education:  edu,
		},
		CreatedAt: time.Now().UTC(),
	}, nil
}

// enrich calls the optional AI collaborator with bounded prefixes of the raw
// texts. Any failure, timeout included, degrades to nil.
func (s AnalyzeService) enrich(ctx context.Context, resumeText, jobDescription string) *domain.AIInsights {
	if s.AI == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.Cfg.AITimeout)
	defer cancel()
	ins, err := s.AI.GenerateInsights(ctx, prefix(resumeText, s.Cfg.AIResumePrefix), prefix(jobDescription, s.Cfg.AIJobPrefix))
	if err != nil {
		slog.WarnContext(ctx, "ai enrichment skipped", slog.Any("error", err))
		return nil
	}
	return ins
}

func prefix(s string, n int) string {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}
