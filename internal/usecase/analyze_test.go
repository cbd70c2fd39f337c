package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/resume-analyzer/internal/config"
	"github.com/fairyhunter13/resume-analyzer/internal/domain"
	"github.com/fairyhunter13/resume-analyzer/internal/scoring"
	"github.com/fairyhunter13/resume-analyzer/internal/usecase"
)

const seniorResume = "Senior engineer with 8 years experience in javascript, python, react. " +
	"AWS Certified. Bachelor degree in Computer Science. Email: x@y.com, " +
	"Skills: javascript python react."

type fakeAI struct {
	insights *domain.AIInsights
	err      error
	delay    time.Duration

	gotResume string
	gotJob    string
}

func (f *fakeAI) GenerateInsights(ctx context.Context, resumePrefix, jobPrefix string) (*domain.AIInsights, error) {
	f.gotResume, f.gotJob = resumePrefix, jobPrefix
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.insights, f.err
}

func testConfig() config.Config {
	return config.Config{
		MinResumeChars: 50,
		AITimeout:      200 * time.Millisecond,
		AIResumePrefix: 4000,
		AIJobPrefix:    1000,
	}
}

func TestAnalyze_SeniorResume(t *testing.T) {
	t.Parallel()
	svc := usecase.NewAnalyzeService(scoring.DefaultDictionary(), nil, testConfig())

	res, err := svc.Analyze(context.Background(), seniorResume, "")
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.False(t, res.CreatedAt.IsZero())
	assert.Equal(t, res.Metrics.Overall, res.OverallScore)
	assert.Equal(t, 85, res.Metrics.Experience)
	assert.Equal(t, 8, res.ExtractedData.Experience.Years)
	assert.Equal(t, []string{"Bachelor's Degree"}, res.ExtractedData.Education.Degrees)
	assert.Equal(t, 80, res.Metrics.Education)
	assert.Subset(t, res.ExtractedData.Skills.Technical, []string{"javascript", "python", "react"})
	assert.Nil(t, res.AIInsights)
	require.NotEmpty(t, res.Recommendations)
}

func TestAnalyze_ShortTextRejected(t *testing.T) {
	t.Parallel()
	svc := usecase.NewAnalyzeService(scoring.DefaultDictionary(), nil, testConfig())
	_, err := svc.Analyze(context.Background(), "too short", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtraction)
}

func TestAnalyze_JobGapRecommendation(t *testing.T) {
	t.Parallel()
	svc := usecase.NewAnalyzeService(scoring.DefaultDictionary(), nil, testConfig())

	res, err := svc.Analyze(context.Background(), seniorResume, "Looking for Docker and Kubernetes experience")
	require.NoError(t, err)

	var rec *domain.Insight
	for i := range res.Recommendations {
		if res.Recommendations[i].Title == "Include Job-Specific Skills" {
			rec = &res.Recommendations[i]
		}
	}
	require.NotNil(t, rec)
	assert.Contains(t, rec.Description, "docker")
	assert.Contains(t, rec.Description, "kubernetes")
}

func TestAnalyze_AIFailureDegradesToNil(t *testing.T) {
	t.Parallel()
	ai := &fakeAI{err: errors.New("upstream 500")}
	svc := usecase.NewAnalyzeService(scoring.DefaultDictionary(), ai, testConfig())

	res, err := svc.Analyze(context.Background(), seniorResume, "")
	require.NoError(t, err)
	assert.Nil(t, res.AIInsights)
	assert.NotZero(t, res.OverallScore)
	assert.NotEmpty(t, res.Recommendations)
}

func TestAnalyze_AITimeoutDegradesToNil(t *testing.T) {
	t.Parallel()
	ai := &fakeAI{
		insights: &domain.AIInsights{Analysis: "late"},
		delay:    2 * time.Second,
	}
	svc := usecase.NewAnalyzeService(scoring.DefaultDictionary(), ai, testConfig())

	start := time.Now()
	res, err := svc.Analyze(context.Background(), seniorResume, "")
	require.NoError(t, err)
	assert.Nil(t, res.AIInsights)
	assert.Less(t, time.Since(start), time.Second)
}

func TestAnalyze_AISuccessAttached(t *testing.T) {
	t.Parallel()
	want := &domain.AIInsights{Analysis: "solid resume", Timestamp: time.Now().UTC()}
	ai := &fakeAI{insights: want}
	svc := usecase.NewAnalyzeService(scoring.DefaultDictionary(), ai, testConfig())

	res, err := svc.Analyze(context.Background(), seniorResume, "job text")
	require.NoError(t, err)
	require.NotNil(t, res.AIInsights)
	assert.Equal(t, "solid resume", res.AIInsights.Analysis)
}

func TestAnalyze_AIPrefixesBounded(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.AIResumePrefix = 60
	cfg.AIJobPrefix = 10
	ai := &fakeAI{}
	svc := usecase.NewAnalyzeService(scoring.DefaultDictionary(), ai, cfg)

	longJob := strings.Repeat("k8s ", 100)
	_, err := svc.Analyze(context.Background(), seniorResume, longJob)
	require.NoError(t, err)
	assert.Len(t, ai.gotResume, 60)
	assert.Len(t, ai.gotJob, 10)
}

func TestAnalyze_EmptyJobDescription(t *testing.T) {
	t.Parallel()
	svc := usecase.NewAnalyzeService(scoring.DefaultDictionary(), nil, testConfig())
	res, err := svc.Analyze(context.Background(), seniorResume, "")
	require.NoError(t, err)
	assert.Empty(t, res.Keywords.Missing)
}
