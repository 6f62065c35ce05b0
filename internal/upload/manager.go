package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/config"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/logger"
)

// Manager owns the attachment storage tree. Permanent files live at
// {permanentRoot}/{module}/{field}/{storageID}/{filename}; staging areas
// live under the staging root and never outlive their request.
type Manager struct {
	permanentRoot  string
	stagingRoot    string
	publicBasePath string
	maxSize        int64
	log            *logger.Logger
	newStorageID   func() string
}

// NewManager creates a Manager from the upload configuration
func NewManager(cfg *config.UploadConfig, log *logger.Logger) *Manager {
	return &Manager{
		permanentRoot:  cfg.PermanentRoot,
		stagingRoot:    cfg.StagingRoot,
		publicBasePath: cfg.PublicBasePath,
		maxSize:        cfg.MaxSizeBytes,
		log:            log,
		newStorageID:   func() string { return uuid.New().String() },
	}
}

// NewStaging creates a staging area for one request
func (m *Manager) NewStaging() *Staging {
	return NewStaging(m.stagingRoot, m.maxSize)
}

// PublicURL returns the public URL for a stored attachment, nil when the
// entity holds no file for the field
func (m *Manager) PublicURL(module, field string, storageID, filename *string) *string {
	return PublicURL(m.publicBasePath, module, field, storageID, filename)
}

// Apply executes a reconciliation plan's filesystem actions. It must run
// only after the database write committed. Copies run before deletes so an
// interruption never leaves a reference to a file that does not exist yet.
// Failures do not abort the request; they are returned as warnings, and a
// delete whose target is already gone counts as success.
func (m *Manager) Apply(plan *Plan) []string {
	var warnings []string

	for _, op := range plan.Copies {
		if err := copyFile(op.Src, op.Dst); err != nil {
			m.log.WithError(err).WithFields(map[string]interface{}{
				"src": op.Src,
				"dst": op.Dst,
			}).Error("Attachment copy failed")
			warnings = append(warnings, fmt.Sprintf("failed to place file %s: %v", filepath.Base(op.Dst), err))
		}
	}

	for _, op := range plan.Deletes {
		if err := os.Remove(op.Path); err != nil && !os.IsNotExist(err) {
			m.log.WithError(err).WithField("path", op.Path).Error("Attachment delete failed")
			warnings = append(warnings, fmt.Sprintf("failed to delete old file %s: %v", filepath.Base(op.Path), err))
		}
	}

	return warnings
}

// RemoveEntityFiles removes every field directory under an entity's storage
// id, best-effort, after the entity row has been deleted
func (m *Manager) RemoveEntityFiles(module string, storageID *string, fields ...string) []string {
	if storageID == nil || *storageID == "" {
		return nil
	}
	var warnings []string
	for _, field := range fields {
		dir := FieldDir(m.permanentRoot, module, field, *storageID)
		if err := os.RemoveAll(dir); err != nil {
			m.log.WithError(err).WithField("dir", dir).Error("Attachment directory removal failed")
			warnings = append(warnings, fmt.Sprintf("failed to remove %s files: %v", field, err))
		}
	}
	return warnings
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}
