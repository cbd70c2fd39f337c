package httpserver

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/fairyhunter13/resume-analyzer/internal/adapter/observability"
	"github.com/fairyhunter13/resume-analyzer/internal/config"
	"github.com/fairyhunter13/resume-analyzer/internal/domain"
	"github.com/fairyhunter13/resume-analyzer/internal/usecase"
)

// TmpFilePrefix names upload spool files so the cleanup janitor can find
// stragglers left behind by crashed requests.
const TmpFilePrefix = "resume-"

// Server aggregates handler dependencies.
type Server struct {
	Cfg       config.Config
	Analyzer  usecase.AnalyzeService
	Extractor domain.TextExtractor
}

// NewServer constructs an HTTP server with all handlers wired.
func NewServer(cfg config.Config, analyzer usecase.AnalyzeService, extractor domain.TextExtractor) *Server {
	return &Server{Cfg: cfg, Analyzer: analyzer, Extractor: extractor}
}

// allowedExt enforces an allowlist for uploads: .txt, .pdf, .doc, .docx
func allowedExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".pdf", ".doc", ".docx":
		return true
	}
	return false
}

func allowedMIME(m, filename string) bool {
	m = strings.ToLower(m)
	// Some detectors misclassify rich .txt content; accept any text/* for it.
	if strings.HasSuffix(strings.ToLower(filename), ".txt") && strings.HasPrefix(m, "text/") {
		return true
	}
	if strings.HasPrefix(m, "text/plain") { // allow parameters such as charset
		return true
	}
	return m == "application/pdf" ||
		m == "application/msword" ||
		m == "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

// extractUploadedText spools the upload to a temp file and runs the
// extractor on it; the spool file is always removed before returning.
func (s *Server) extractUploadedText(r *http.Request, h *multipart.FileHeader, data []byte) (string, error) {
	tmp, err := os.CreateTemp("", TmpFilePrefix+"*"+strings.ToLower(filepath.Ext(h.Filename)))
	if err != nil {
		return "", fmt.Errorf("%w: spool upload: %v", domain.ErrInternal, err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()
	if _, err := tmp.Write(data); err != nil {
		return "", fmt.Errorf("%w: spool upload: %v", domain.ErrInternal, err)
	}
	return s.Extractor.ExtractPath(r.Context(), h.Filename, tmp.Name())
}

// AnalyzeHandler accepts a multipart resume upload plus an optional
// job_description field and returns the full analysis result.
func (s *Server) AnalyzeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if a := r.Header.Get("Accept"); a != "" && a != "*/*" && !strings.Contains(a, "application/json") {
			writeJSON(w, http.StatusNotAcceptable, errorEnvelope{Error: apiError{
				Code: "INVALID_ARGUMENT", Message: "not acceptable", Details: map[string]any{"accept": a},
			}})
			return
		}
		if !strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
			writeError(w, r, fmt.Errorf("%w: content-type must be multipart/form-data", domain.ErrInvalidArgument), nil)
			return
		}
		maxBytes := s.Cfg.MaxUploadMB * 1024 * 1024
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "too large") {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorEnvelope{Error: apiError{
					Code: "INVALID_ARGUMENT", Message: "payload too large", Details: map[string]any{"max_mb": s.Cfg.MaxUploadMB},
				}})
				return
			}
			writeError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err), nil)
			return
		}

		file, header, err := r.FormFile("resume")
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: resume file required", domain.ErrInvalidArgument), map[string]string{"field": "resume"})
			return
		}
		defer func() { _ = file.Close() }()

		jobDesc := r.FormValue("job_description")
		if err := validateJobDescription(jobDesc, s.Cfg.MaxJobDescChars); err != nil {
			writeError(w, r, err, map[string]string{"field": "job_description"})
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: read upload: %v", domain.ErrInvalidArgument, err), nil)
			return
		}
		if !allowedExt(header.Filename) {
			writeError(w, r, fmt.Errorf("%w: extension of %q", domain.ErrUnsupportedFormat, header.Filename),
				map[string]any{"filename": header.Filename})
			return
		}
		if mt := mimetype.Detect(data); !allowedMIME(mt.String(), header.Filename) {
			writeError(w, r, fmt.Errorf("%w: detected %s", domain.ErrUnsupportedFormat, mt.String()),
				map[string]any{"mime": mt.String(), "filename": header.Filename})
			return
		}

		text, err := s.extractUploadedText(r, header, data)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}

		start := time.Now()
		result, err := s.Analyzer.Analyze(r.Context(), text, jobDesc)
		if err != nil {
			observability.ObserveAnalysis("error", 0, time.Since(start))
			writeError(w, r, err, nil)
			return
		}
		observability.ObserveAnalysis("ok", result.OverallScore, time.Since(start))
		writeJSON(w, http.StatusOK, result)
	}
}

// ReadyzHandler reports readiness of the analyzer's collaborators.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	type check struct {
		Name    string `json:"name"`
		OK      bool   `json:"ok"`
		Details string `json:"details,omitempty"`
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		extractor := "local"
		if s.Cfg.TikaURL != "" {
			extractor = "tika"
		}
		ai := "disabled"
		if s.Cfg.AIEnabled() {
			ai = "openrouter"
		}
		writeJSON(w, http.StatusOK, map[string]any{"checks": []check{
			{Name: "extractor", OK: s.Extractor != nil, Details: extractor},
			{Name: "ai", OK: true, Details: ai},
		}})
	}
}
