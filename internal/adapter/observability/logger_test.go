package observability_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/resume-analyzer/internal/adapter/observability"
	"github.com/fairyhunter13/resume-analyzer/internal/config"
)

func TestSetupLogger(t *testing.T) {
	t.Parallel()
	lg := observability.SetupLogger(config.Config{AppEnv: "dev", OTELServiceName: "resume-analyzer"})
	require.NotNil(t, lg)
	lg.Debug("debug enabled in dev")
}
