package upload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	files := req.MultipartForm.File[field]
	require.Len(t, files, 1)
	return files[0]
}

// %PDF magic so content sniffing resolves to application/pdf
var pdfBytes = []byte("%PDF-1.4\n%test document body")

func TestStagingReceiveAndCleanup(t *testing.T) {
	root := filepath.Join(t.TempDir(), "staging")
	s := NewStaging(root, 1<<20)

	// lazily created: nothing on disk before the first part
	assert.False(t, s.HasFiles())
	_, err := os.Stat(root)
	assert.True(t, os.IsNotExist(err))

	fh := multipartFileHeader(t, "attachment", "itinerary.pdf", pdfBytes)
	staged, err := s.Receive("attachment", fh)
	require.NoError(t, err)

	assert.True(t, s.HasFiles())
	assert.Equal(t, "itinerary.pdf", staged.OriginalName)
	assert.Equal(t, "application/pdf", staged.ContentType)
	assert.Equal(t, int64(len(pdfBytes)), staged.Size)
	assert.Equal(t, staged, s.First("attachment"))
	assert.Nil(t, s.First("logo"))

	got, err := os.ReadFile(staged.Path)
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, got)

	require.NoError(t, s.Cleanup())
	_, err = os.Stat(staged.Path)
	assert.True(t, os.IsNotExist(err))
	assert.False(t, s.HasFiles())

	// cleanup is idempotent
	require.NoError(t, s.Cleanup())
}

func TestStagingRejectsOversizedFile(t *testing.T) {
	s := NewStaging(filepath.Join(t.TempDir(), "staging"), 4)

	fh := multipartFileHeader(t, "logo", "big.png", []byte("more than four bytes"))
	_, err := s.Receive("logo", fh)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum size")
	// nothing staged, so nothing to clean
	assert.False(t, s.HasFiles())
}

func TestStagedFileCheckType(t *testing.T) {
	s := NewStaging(filepath.Join(t.TempDir(), "staging"), 1<<20)
	t.Cleanup(func() { _ = s.Cleanup() })

	fh := multipartFileHeader(t, "scan", "passport.pdf", pdfBytes)
	staged, err := s.Receive("scan", fh)
	require.NoError(t, err)

	assert.NoError(t, staged.CheckType("application/pdf", "image/png"))
	assert.Error(t, staged.CheckType("image/png", "image/jpeg"))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "logo.png", SanitizeFilename("logo.png"))
	assert.Equal(t, "logo.png", SanitizeFilename("../../etc/logo.png"))
	assert.Equal(t, "logo.png", SanitizeFilename("C:\\Users\\x\\logo.png"))
	assert.Equal(t, "file", SanitizeFilename(""))
}
