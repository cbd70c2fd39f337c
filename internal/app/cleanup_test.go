package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepTmp_RemovesOnlyStaleSpoolFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	stale := filepath.Join(dir, "resume-stale.pdf")
	fresh := filepath.Join(dir, "resume-fresh.pdf")
	other := filepath.Join(dir, "unrelated.txt")
	for _, p := range []string{stale, fresh, other} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))
	}
	old := time.Now().Add(-3 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))
	require.NoError(t, os.Chtimes(other, old, old))

	removed, err := sweepTmp(dir, 2*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(fresh)
	assert.NoError(t, err)
	_, err = os.Stat(other)
	assert.NoError(t, err)
}

func TestSweepTmp_MissingDir(t *testing.T) {
	t.Parallel()
	_, err := sweepTmp(filepath.Join(t.TempDir(), "gone"), time.Hour)
	assert.Error(t, err)
}
