// Package domain holds the core entities, ports and error taxonomy of the
// resume analyzer. It stays free of transport and framework concerns.
package domain

import (
	"context"
	"errors"
	"time"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrExtraction        = errors.New("text extraction failed")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrEnrichment        = errors.New("ai enrichment failed")
	ErrInternal          = errors.New("internal error")
)

// SkillsFound lists dictionary phrases matched in the normalized resume text.
// Each slice is a subsequence of the corresponding dictionary list, in
// dictionary order, and every phrase is a literal substring of the text.
type SkillsFound struct {
	Technical      []string `json:"technical"`
	Soft           []string `json:"soft"`
	Certifications []string `json:"certifications"`
}

// ExperienceSignal summarizes tenure evidence found in the resume.
// Years is the maximum value matched by the "N years" pattern scan, 0 if none.
type ExperienceSignal struct {
	Years    int      `json:"years"`
	Score    int      `json:"score"`
	Keywords []string `json:"keywords"`
}

// EducationSignal carries the single highest-precedence degree label, if any.
// Degrees never holds more than one entry.
type EducationSignal struct {
	Degrees  []string `json:"degrees"`
	Score    int      `json:"score"`
	Keywords []string `json:"keywords"`
}

// FormatSignal reports detected resume sections and the raw-text word count.
type FormatSignal struct {
	Score     int      `json:"score"`
	Sections  []string `json:"sections"`
	WordCount int      `json:"wordCount"`
}

// ScoreSet holds the four category sub-scores plus their rounded mean.
// All values are integers clamped to [0,100].
type ScoreSet struct {
	Skills     int `json:"skillsMatch"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
	Format     int `json:"format"`
	Overall    int `json:"overall"`
}

// Insight is one narrative finding rendered from a fixed template.
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// KeywordReport pairs keywords found in the resume with job-description
// keywords the resume is missing.
type KeywordReport struct {
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
}

// Insights aggregates the deterministic narrative output of an analysis.
type Insights struct {
	Strengths       []Insight     `json:"strengths"`
	Improvements    []Insight     `json:"improvements"`
	Recommendations []Insight     `json:"recommendations"`
	Keywords        KeywordReport `json:"keywords"`
}

// AIInsights is the optional enrichment returned by the external AI
// collaborator. A nil *AIInsights means enrichment was absent or failed.
type AIInsights struct {
	Analysis  string    `json:"analysis"`
	Timestamp time.Time `json:"timestamp"`
}

// ExtractedData bundles the raw signals for the caller-facing result.
type ExtractedData struct {
	Skills     SkillsFound      `json:"skills"`
	Experience ExperienceSignal `json:"experience"`
	Education  EducationSignal  `json:"education"`
}

// AnalysisResult is the terminal aggregate returned for one analysis request.
// It is assembled once, never persisted by the core, and either complete or
// not returned at all.
type AnalysisResult struct {
	ID              string        `json:"id"`
	OverallScore    int           `json:"overallScore"`
	Metrics         ScoreSet      `json:"metrics"`
	Strengths       []Insight     `json:"strengths"`
	Improvements    []Insight     `json:"improvements"`
	Keywords        KeywordReport `json:"keywords"`
	Recommendations []Insight     `json:"recommendations"`
	AIInsights      *AIInsights   `json:"aiInsights"`
	ExtractedData   ExtractedData `json:"extractedData"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// TextExtractor (port)
// ExtractPath extracts plain text from the file at path; fileName carries the
// original upload name used for format dispatch. Implementations may call
// external services (e.g. Tika) or use local libraries.
type TextExtractor interface {
	ExtractPath(ctx context.Context, fileName, path string) (string, error)
}

// AIClient (port)
// GenerateInsights returns narrative enrichment for bounded prefixes of the
// raw resume and job texts. Implementations must honor ctx cancellation; a
// nil result with nil error means enrichment is disabled.
type AIClient interface {
	GenerateInsights(ctx context.Context, resumePrefix, jobPrefix string) (*AIInsights, error)
}
