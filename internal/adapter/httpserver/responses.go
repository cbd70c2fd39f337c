package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

type errorEnvelope struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain sentinels to HTTP status codes. Internal causes are
// logged but never exposed verbatim to callers.
func writeError(w http.ResponseWriter, r *http.Request, err error, details interface{}) {
	code := http.StatusInternalServerError
	codeStr := "INTERNAL"
	msg := "internal error"
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		code = http.StatusBadRequest
		codeStr = "INVALID_ARGUMENT"
		msg = err.Error()
	case errors.Is(err, domain.ErrExtraction):
		code = http.StatusBadRequest
		codeStr = "EXTRACTION_FAILED"
		msg = err.Error()
	case errors.Is(err, domain.ErrUnsupportedFormat):
		code = http.StatusUnsupportedMediaType
		codeStr = "UNSUPPORTED_FORMAT"
		msg = err.Error()
	default:
		LoggerFrom(r).Error("request failed", slog.Any("error", err))
	}
	writeJSON(w, code, errorEnvelope{Error: apiError{Code: codeStr, Message: msg, Details: details}})
}
