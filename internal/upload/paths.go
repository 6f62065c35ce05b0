package upload

import (
	"path"
	"path/filepath"
)

// PermanentPath builds the on-disk path of a permanent attachment:
// {root}/{module}/{field}/{storageID}/{filename}
func PermanentPath(root, module, field, storageID, filename string) string {
	return filepath.Join(root, module, field, storageID, filename)
}

// FieldDir builds the on-disk directory holding one field's file:
// {root}/{module}/{field}/{storageID}
func FieldDir(root, module, field, storageID string) string {
	return filepath.Join(root, module, field, storageID)
}

// PublicURL builds the public URL of a permanent attachment, or nil when any
// component is missing.
func PublicURL(basePath, module, field string, storageID, filename *string) *string {
	if basePath == "" || module == "" || field == "" || storageID == nil || *storageID == "" || filename == nil || *filename == "" {
		return nil
	}
	url := path.Join(basePath, module, field, *storageID, *filename)
	return &url
}
