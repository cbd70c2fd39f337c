package httpserver

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

// validateJobDescription bounds the optional free-text field so oversized
// job postings cannot inflate request processing.
func validateJobDescription(jobDesc string, maxChars int) error {
	if maxChars <= 0 {
		return nil
	}
	if err := getValidator().Var(jobDesc, fmt.Sprintf("omitempty,max=%d", maxChars)); err != nil {
		return fmt.Errorf("%w: job_description exceeds %d characters", domain.ErrInvalidArgument, maxChars)
	}
	return nil
}
