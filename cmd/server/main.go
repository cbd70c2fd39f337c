// Command server starts the resume analyzer HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fairyhunter13/resume-analyzer/internal/adapter/ai/noop"
	"github.com/fairyhunter13/resume-analyzer/internal/adapter/ai/openrouter"
	"github.com/fairyhunter13/resume-analyzer/internal/adapter/httpserver"
	"github.com/fairyhunter13/resume-analyzer/internal/adapter/observability"
	localext "github.com/fairyhunter13/resume-analyzer/internal/adapter/textextractor/local"
	tikaext "github.com/fairyhunter13/resume-analyzer/internal/adapter/textextractor/tika"
	"github.com/fairyhunter13/resume-analyzer/internal/app"
	"github.com/fairyhunter13/resume-analyzer/internal/config"
	"github.com/fairyhunter13/resume-analyzer/internal/domain"
	"github.com/fairyhunter13/resume-analyzer/internal/scoring"
	"github.com/fairyhunter13/resume-analyzer/internal/usecase"
)

func main() {
	// Local development convenience; the file is absent in containers.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	observability.InitMetrics()

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	// Text extractor: Apache Tika when configured, local parsers otherwise.
	var ext domain.TextExtractor
	if cfg.TikaURL != "" {
		ext = tikaext.New(cfg.TikaURL)
		slog.Info("text extractor: tika", slog.String("url", cfg.TikaURL))
	} else {
		ext = localext.New()
		slog.Info("text extractor: local")
	}

	// AI enrichment: disabled entirely without an API key.
	var aicl domain.AIClient
	if cfg.AIEnabled() {
		aicl = openrouter.New(cfg)
		slog.Info("ai enrichment enabled", slog.String("model", cfg.OpenRouterModel))
	} else {
		aicl = noop.New()
		slog.Info("ai enrichment disabled")
	}

	analyzer := usecase.NewAnalyzeService(scoring.DefaultDictionary(), aicl, cfg)
	srv := httpserver.NewServer(cfg, analyzer, ext)
	handler := app.BuildRouter(cfg, srv)

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	app.StartTmpCleanup(janitorCtx, cfg)

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.Int("port", cfg.Port))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
}
