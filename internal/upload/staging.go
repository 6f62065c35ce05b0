package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// StagedFile describes one uploaded file held in a request's staging area
type StagedFile struct {
	FieldName    string
	Path         string
	OriginalName string
	ContentType  string
	Size         int64
}

// Staging is the per-request staging area for inbound file parts. The
// directory is created lazily on the first received file and must be removed
// with Cleanup on every outcome: on success the received files have been
// copied into permanent storage, on failure they are simply discarded.
type Staging struct {
	ID      string
	root    string
	maxSize int64
	dir     string
	files   map[string][]*StagedFile
}

// NewStaging creates a staging area rooted at stagingRoot. No directory is
// created until the first file part arrives.
func NewStaging(stagingRoot string, maxSize int64) *Staging {
	return &Staging{
		ID:      uuid.New().String(),
		root:    stagingRoot,
		maxSize: maxSize,
		files:   make(map[string][]*StagedFile),
	}
}

// Receive writes one multipart file part into the staging area
func (s *Staging) Receive(field string, fh *multipart.FileHeader) (*StagedFile, error) {
	if s.maxSize > 0 && fh.Size > s.maxSize {
		return nil, fmt.Errorf("file %q exceeds maximum size of %d bytes", fh.Filename, s.maxSize)
	}

	if s.dir == "" {
		dir := filepath.Join(s.root, s.ID)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create staging directory: %w", err)
		}
		s.dir = dir
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%s-%d%s", field, len(s.files[field]), filepath.Ext(fh.Filename))
	dstPath := filepath.Join(s.dir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create staged file: %w", err)
	}
	written, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to write staged file: %w", err)
	}

	mt, err := mimetype.DetectFile(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to detect file type: %w", err)
	}

	staged := &StagedFile{
		FieldName:    field,
		Path:         dstPath,
		OriginalName: SanitizeFilename(fh.Filename),
		ContentType:  mt.String(),
		Size:         written,
	}
	s.files[field] = append(s.files[field], staged)
	return staged, nil
}

// First returns the first staged file for a field, or nil
func (s *Staging) First(field string) *StagedFile {
	if list := s.files[field]; len(list) > 0 {
		return list[0]
	}
	return nil
}

// HasFiles reports whether any file part was received
func (s *Staging) HasFiles() bool {
	return s.dir != ""
}

// Cleanup removes every staged file and the staging directory itself. It is
// safe to call more than once and when no file was ever received.
func (s *Staging) Cleanup() error {
	if s.dir == "" {
		return nil
	}
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("failed to remove staging directory: %w", err)
	}
	s.dir = ""
	s.files = make(map[string][]*StagedFile)
	return nil
}

// CheckType verifies the staged file's sniffed content type against an
// allow-list of MIME types
func (f *StagedFile) CheckType(allowed ...string) error {
	for _, a := range allowed {
		if f.ContentType == a {
			return nil
		}
	}
	return fmt.Errorf("file %q has unsupported type %s (allowed: %s)",
		f.OriginalName, f.ContentType, strings.Join(allowed, ", "))
}

// SanitizeFilename strips any path components from a client-supplied name
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "file"
	}
	return name
}
