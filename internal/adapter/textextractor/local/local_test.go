package local_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/resume-analyzer/internal/adapter/textextractor/local"
	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestExtractPath_PlainText(t *testing.T) {
	t.Parallel()
	ext := local.New()
	path := writeTemp(t, "resume.txt", []byte("Senior engineer\n\nwith   go experience\x00"))
	text, err := ext.ExtractPath(context.Background(), "resume.txt", path)
	require.NoError(t, err)
	assert.Equal(t, "Senior engineer with go experience", text)
}

func TestExtractPath_UnsupportedExtension(t *testing.T) {
	t.Parallel()
	ext := local.New()
	path := writeTemp(t, "resume.png", []byte{0x89, 0x50})
	_, err := ext.ExtractPath(context.Background(), "resume.png", path)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestExtractPath_LegacyDocUnsupported(t *testing.T) {
	t.Parallel()
	ext := local.New()
	path := writeTemp(t, "resume.doc", []byte("old binary format"))
	_, err := ext.ExtractPath(context.Background(), "resume.doc", path)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestExtractPath_CorruptPDF(t *testing.T) {
	t.Parallel()
	ext := local.New()
	path := writeTemp(t, "resume.pdf", []byte("not a pdf at all"))
	_, err := ext.ExtractPath(context.Background(), "resume.pdf", path)
	assert.ErrorIs(t, err, domain.ErrExtraction)
}

func TestExtractPath_CorruptDOCX(t *testing.T) {
	t.Parallel()
	ext := local.New()
	path := writeTemp(t, "resume.docx", []byte("not a zip archive"))
	_, err := ext.ExtractPath(context.Background(), "resume.docx", path)
	assert.ErrorIs(t, err, domain.ErrExtraction)
}

func TestExtractPath_MissingFile(t *testing.T) {
	t.Parallel()
	ext := local.New()
	_, err := ext.ExtractPath(context.Background(), "resume.txt", filepath.Join(t.TempDir(), "gone.txt"))
	assert.ErrorIs(t, err, domain.ErrExtraction)
}

func TestExtractPath_CanceledContext(t *testing.T) {
	t.Parallel()
	ext := local.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := writeTemp(t, "resume.txt", []byte("text"))
	_, err := ext.ExtractPath(ctx, "resume.txt", path)
	assert.ErrorIs(t, err, context.Canceled)
}
