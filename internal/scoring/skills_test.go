package scoring_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/resume-analyzer/internal/scoring"
)

const seniorResume = "Senior engineer with 8 years experience in javascript, python, react. " +
	"AWS Certified. Bachelor degree in Computer Science. Email: x@y.com, " +
	"Skills: javascript python react."

func TestExtractSkills_SeniorResume(t *testing.T) {
	t.Parallel()
	dict := scoring.DefaultDictionary()
	found := scoring.ExtractSkills(dict, scoring.Normalize(seniorResume))

	assert.Subset(t, found.Technical, []string{"javascript", "python", "react"})
	assert.Contains(t, found.Certifications, "aws certified")
}

func TestExtractSkills_Empty(t *testing.T) {
	t.Parallel()
	dict := scoring.DefaultDictionary()
	found := scoring.ExtractSkills(dict, "")
	assert.Empty(t, found.Technical)
	assert.Empty(t, found.Soft)
	assert.Empty(t, found.Certifications)
}

// Matches are ordered subsequences of the dictionary lists and literal
// substrings of the input.
func TestExtractSkills_SubsequenceProperty(t *testing.T) {
	t.Parallel()
	dict := scoring.DefaultDictionary()
	text := scoring.Normalize("Kubernetes and Docker on AWS, plus React, leadership and communication.")
	found := scoring.ExtractSkills(dict, text)

	assertSubsequence(t, dict.Technical, found.Technical)
	assertSubsequence(t, dict.Soft, found.Soft)
	for _, lists := range [][]string{found.Technical, found.Soft, found.Certifications} {
		for _, p := range lists {
			assert.True(t, strings.Contains(text, p), "phrase %q not substring", p)
		}
	}
}

// Substring containment has no word-boundary check: "java" matches inside
// "javascript". Preserved behavior, not a bug.
func TestExtractSkills_NoWordBoundaries(t *testing.T) {
	t.Parallel()
	dict := scoring.DefaultDictionary()
	found := scoring.ExtractSkills(dict, scoring.Normalize("JavaScript developer"))
	assert.Contains(t, found.Technical, "java")
	assert.Contains(t, found.Technical, "javascript")
}

func assertSubsequence(t *testing.T, full, sub []string) {
	t.Helper()
	i := 0
	for _, p := range full {
		if i < len(sub) && sub[i] == p {
			i++
		}
	}
	require.Equal(t, len(sub), i, "%v is not a subsequence of the dictionary", sub)
}
