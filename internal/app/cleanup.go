package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fairyhunter13/resume-analyzer/internal/adapter/httpserver"
	"github.com/fairyhunter13/resume-analyzer/internal/config"
)

// StartTmpCleanup runs a background janitor that removes stale upload spool
// files. Handlers delete their own spool files on the happy path; the janitor
// only catches files orphaned by crashes or kills. It stops when ctx is done.
func StartTmpCleanup(ctx context.Context, cfg config.Config) {
	interval := cfg.CleanupInterval
	if interval <= 0 {
		interval = time.Hour
	}
	maxAge := cfg.TmpMaxAge
	if maxAge <= 0 {
		maxAge = 2 * time.Hour
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := sweepTmp(os.TempDir(), maxAge)
				if err != nil {
					slog.Warn("tmp cleanup sweep failed", slog.Any("error", err))
					continue
				}
				if removed > 0 {
					slog.Info("tmp cleanup removed stale spool files", slog.Int("count", removed))
				}
			}
		}
	}()
}

func sweepTmp(dir string, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), httpserver.TmpFilePrefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err == nil {
			removed++
		}
	}
	return removed, nil
}
