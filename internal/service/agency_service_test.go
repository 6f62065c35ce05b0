package service

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/config"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/repository"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/upload"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/logger"
)

func newServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Agency{}))
	return db
}

func newTestAgencyService(t *testing.T) (AgencyService, *gorm.DB, string) {
	t.Helper()
	root := t.TempDir()
	uploads := upload.NewManager(&config.UploadConfig{
		StagingRoot:    filepath.Join(root, "staging"),
		PermanentRoot:  filepath.Join(root, "uploads"),
		PublicBasePath: "/uploads",
		MaxSizeBytes:   1 << 20,
	}, logger.NewLogger("error", "text"))
	db := newServiceTestDB(t)
	repo := repository.NewAgencyRepository(db)
	return NewAgencyService(repo, uploads, db), db, filepath.Join(root, "uploads")
}

func stageTestFile(t *testing.T, dir, field, name, content string) *upload.StagedFile {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, field+"-0")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return &upload.StagedFile{
		FieldName:    field,
		Path:         path,
		OriginalName: name,
		Size:         int64(len(content)),
	}
}

func agencyInput(name, email string) *AgencyInput {
	return &AgencyInput{BusinessName: &name, ContactPersonEmail: &email}
}

func TestCreateAgencyWithLogoPlacesFile(t *testing.T) {
	svc, db, uploadsRoot := newTestAgencyService(t)
	staged := stageTestFile(t, t.TempDir(), "logo", "logo.png", "png-bytes")

	created, warnings, err := svc.CreateAgency(agencyInput("Wanderlust Travels", "ops@wanderlust.example"), map[string]upload.FieldChange{
		"logo": {State: upload.FieldReplaced, NewFile: staged},
	})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.NotNil(t, created.LogoURL)
	assert.Nil(t, created.LetterheadURL)

	var row models.Agency
	require.NoError(t, db.First(&row, created.ID).Error)
	require.NotNil(t, row.StorageID)
	require.NotNil(t, row.LogoFilename)
	assert.Equal(t, "logo.png", *row.LogoFilename)

	stored := upload.PermanentPath(uploadsRoot, "agencies", "logo", *row.StorageID, "logo.png")
	content, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
}

func TestCreateAgencyDuplicateEmailConflicts(t *testing.T) {
	svc, _, _ := newTestAgencyService(t)

	_, _, err := svc.CreateAgency(agencyInput("First Agency", "shared@example.com"), nil)
	require.NoError(t, err)

	_, _, err = svc.CreateAgency(agencyInput("Second Agency", "shared@example.com"), nil)
	ce, ok := AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, "contact_person_email", ce.Field)
}

func TestUpdateAgencyReplaceRotatesStorageAndCarriesSibling(t *testing.T) {
	svc, db, uploadsRoot := newTestAgencyService(t)
	stagingDir := t.TempDir()

	created, _, err := svc.CreateAgency(agencyInput("Horizon Tours", "horizon@example.com"), map[string]upload.FieldChange{
		"logo":       {State: upload.FieldReplaced, NewFile: stageTestFile(t, filepath.Join(stagingDir, "a"), "logo", "logo-v1.png", "logo-v1")},
		"letterhead": {State: upload.FieldReplaced, NewFile: stageTestFile(t, filepath.Join(stagingDir, "b"), "letterhead", "head.png", "head-v1")},
	})
	require.NoError(t, err)

	var before models.Agency
	require.NoError(t, db.First(&before, created.ID).Error)
	oldStorageID := *before.StorageID

	// replacing only the logo must move the untouched letterhead into the
	// new storage generation as well
	updated, warnings, err := svc.UpdateAgency(created.ID, &AgencyInput{}, map[string]upload.FieldChange{
		"logo": {State: upload.FieldReplaced, NewFile: stageTestFile(t, filepath.Join(stagingDir, "c"), "logo", "logo-v2.png", "logo-v2")},
	})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.NotNil(t, updated.LogoURL)
	require.NotNil(t, updated.LetterheadURL)

	var after models.Agency
	require.NoError(t, db.First(&after, created.ID).Error)
	require.NotNil(t, after.StorageID)
	assert.NotEqual(t, oldStorageID, *after.StorageID)
	require.NotNil(t, after.LogoFilename)
	assert.Equal(t, "logo-v2.png", *after.LogoFilename)
	require.NotNil(t, after.LetterheadFilename)
	assert.Equal(t, "head.png", *after.LetterheadFilename)

	newLogo := upload.PermanentPath(uploadsRoot, "agencies", "logo", *after.StorageID, "logo-v2.png")
	carried := upload.PermanentPath(uploadsRoot, "agencies", "letterhead", *after.StorageID, "head.png")
	assert.FileExists(t, newLogo)
	assert.FileExists(t, carried)

	oldLogo := upload.PermanentPath(uploadsRoot, "agencies", "logo", oldStorageID, "logo-v1.png")
	assert.NoFileExists(t, oldLogo)
}

func TestUpdateAgencyRemovingLastFileNullsStorageID(t *testing.T) {
	svc, db, uploadsRoot := newTestAgencyService(t)

	created, _, err := svc.CreateAgency(agencyInput("Lone Logo Travels", "lone@example.com"), map[string]upload.FieldChange{
		"logo": {State: upload.FieldReplaced, NewFile: stageTestFile(t, t.TempDir(), "logo", "only.png", "only")},
	})
	require.NoError(t, err)

	var before models.Agency
	require.NoError(t, db.First(&before, created.ID).Error)
	oldStorageID := *before.StorageID

	updated, _, err := svc.UpdateAgency(created.ID, &AgencyInput{}, map[string]upload.FieldChange{
		"logo": {State: upload.FieldRemoved},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.LogoURL)

	var after models.Agency
	require.NoError(t, db.First(&after, created.ID).Error)
	assert.Nil(t, after.StorageID)
	assert.Nil(t, after.LogoFilename)

	removed := upload.PermanentPath(uploadsRoot, "agencies", "logo", oldStorageID, "only.png")
	assert.NoFileExists(t, removed)
}

func TestUpdateAgencyScalarOnlyKeepsAttachments(t *testing.T) {
	svc, db, uploadsRoot := newTestAgencyService(t)

	created, _, err := svc.CreateAgency(agencyInput("Steady Agency", "steady@example.com"), map[string]upload.FieldChange{
		"logo": {State: upload.FieldReplaced, NewFile: stageTestFile(t, t.TempDir(), "logo", "logo.png", "logo")},
	})
	require.NoError(t, err)

	var before models.Agency
	require.NoError(t, db.First(&before, created.ID).Error)

	newName := "Steady Agency Renamed"
	updated, warnings, err := svc.UpdateAgency(created.ID, &AgencyInput{BusinessName: &newName}, nil)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, newName, updated.BusinessName)

	var after models.Agency
	require.NoError(t, db.First(&after, created.ID).Error)
	require.NotNil(t, after.StorageID)
	assert.Equal(t, *before.StorageID, *after.StorageID)

	kept := upload.PermanentPath(uploadsRoot, "agencies", "logo", *after.StorageID, "logo.png")
	assert.FileExists(t, kept)
}

func TestDeleteAgencyRemovesRowAndFiles(t *testing.T) {
	svc, db, uploadsRoot := newTestAgencyService(t)

	created, _, err := svc.CreateAgency(agencyInput("Ephemeral Travels", "gone@example.com"), map[string]upload.FieldChange{
		"logo": {State: upload.FieldReplaced, NewFile: stageTestFile(t, t.TempDir(), "logo", "logo.png", "logo")},
	})
	require.NoError(t, err)

	var row models.Agency
	require.NoError(t, db.First(&row, created.ID).Error)
	storageID := *row.StorageID

	warnings, err := svc.DeleteAgency(created.ID)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	err = db.First(&models.Agency{}, created.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	fieldDir := upload.FieldDir(uploadsRoot, "agencies", "logo", storageID)
	_, statErr := os.Stat(fieldDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGetAgencyNotFound(t *testing.T) {
	svc, _, _ := newTestAgencyService(t)
	_, err := svc.GetAgency(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
