package upload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/config"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/logger"
)

func newTestManager(t *testing.T, nextID string) *Manager {
	t.Helper()
	root := t.TempDir()
	m := NewManager(&config.UploadConfig{
		StagingRoot:    filepath.Join(root, "staging"),
		PermanentRoot:  filepath.Join(root, "uploads"),
		PublicBasePath: "/uploads",
		MaxSizeBytes:   1 << 20,
	}, logger.NewLogger("error", "text"))
	m.newStorageID = func() string { return nextID }
	return m
}

func strptr(s string) *string { return &s }

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestReconcileReplaceSingleField(t *testing.T) {
	m := newTestManager(t, "s2")

	staged := &StagedFile{FieldName: "logo", Path: "/staging/x/logo-0.png", OriginalName: "new-logo.png"}
	plan := m.Reconcile("agencies",
		AttachmentSet{
			StorageID: strptr("s1"),
			Files:     map[string]*string{"logo": strptr("old-logo.png"), "letterhead": nil},
		},
		map[string]FieldChange{
			"logo": {State: FieldReplaced, NewFile: staged},
		},
	)

	require.NotNil(t, plan.StorageID)
	assert.Equal(t, "s2", *plan.StorageID)
	require.NotNil(t, plan.Filenames["logo"])
	assert.Equal(t, "new-logo.png", *plan.Filenames["logo"])
	assert.Nil(t, plan.Filenames["letterhead"])
	assert.True(t, plan.HasFileChanges())

	require.Len(t, plan.Copies, 1)
	assert.Equal(t, staged.Path, plan.Copies[0].Src)
	assert.Equal(t, PermanentPath(m.permanentRoot, "agencies", "logo", "s2", "new-logo.png"), plan.Copies[0].Dst)

	require.Len(t, plan.Deletes, 1)
	assert.Equal(t, PermanentPath(m.permanentRoot, "agencies", "logo", "s1", "old-logo.png"), plan.Deletes[0].Path)
}

func TestReconcileCopyForwardOfUntouchedSibling(t *testing.T) {
	m := newTestManager(t, "s2")

	staged := &StagedFile{FieldName: "logo", Path: "/staging/x/logo-0.png", OriginalName: "new-logo.png"}
	plan := m.Reconcile("agencies",
		AttachmentSet{
			StorageID: strptr("s1"),
			Files:     map[string]*string{"logo": strptr("old-logo.png"), "letterhead": strptr("head.pdf")},
		},
		map[string]FieldChange{
			"logo": {State: FieldReplaced, NewFile: staged},
		},
	)

	require.NotNil(t, plan.StorageID)
	assert.Equal(t, "s2", *plan.StorageID)
	require.NotNil(t, plan.Filenames["letterhead"])
	assert.Equal(t, "head.pdf", *plan.Filenames["letterhead"])

	// untouched letterhead is carried into the new storage directory
	require.Len(t, plan.Copies, 2)
	copyForward := plan.Copies[0]
	if copyForward.Src == staged.Path {
		copyForward = plan.Copies[1]
	}
	assert.Equal(t, PermanentPath(m.permanentRoot, "agencies", "letterhead", "s1", "head.pdf"), copyForward.Src)
	assert.Equal(t, PermanentPath(m.permanentRoot, "agencies", "letterhead", "s2", "head.pdf"), copyForward.Dst)

	// only the replaced logo is deleted; the old letterhead stays in s1
	require.Len(t, plan.Deletes, 1)
	assert.Equal(t, PermanentPath(m.permanentRoot, "agencies", "logo", "s1", "old-logo.png"), plan.Deletes[0].Path)
}

func TestReconcileExplicitRemovalKeepsStorageIDForSibling(t *testing.T) {
	m := newTestManager(t, "unused")

	plan := m.Reconcile("agencies",
		AttachmentSet{
			StorageID: strptr("s1"),
			Files:     map[string]*string{"logo": strptr("logo.png"), "letterhead": strptr("head.pdf")},
		},
		map[string]FieldChange{
			"logo": {State: FieldRemoved},
		},
	)

	// no upload, so the storage id is retained for the surviving letterhead
	require.NotNil(t, plan.StorageID)
	assert.Equal(t, "s1", *plan.StorageID)
	assert.Nil(t, plan.Filenames["logo"])
	assert.True(t, plan.HasFileChanges())
	assert.Empty(t, plan.Copies)
	require.Len(t, plan.Deletes, 1)
	assert.Equal(t, PermanentPath(m.permanentRoot, "agencies", "logo", "s1", "logo.png"), plan.Deletes[0].Path)
}

func TestReconcileRemovalOfLastFileNullsStorageID(t *testing.T) {
	m := newTestManager(t, "unused")

	plan := m.Reconcile("agencies",
		AttachmentSet{
			StorageID: strptr("s1"),
			Files:     map[string]*string{"logo": strptr("logo.png"), "letterhead": nil},
		},
		map[string]FieldChange{
			"logo": {State: FieldRemoved},
		},
	)

	assert.Nil(t, plan.StorageID)
	assert.Nil(t, plan.Filenames["logo"])
	assert.Nil(t, plan.Filenames["letterhead"])
}

func TestReconcileNoChangesProducesNoOps(t *testing.T) {
	m := newTestManager(t, "unused")

	plan := m.Reconcile("agencies",
		AttachmentSet{
			StorageID: strptr("s1"),
			Files:     map[string]*string{"logo": strptr("logo.png")},
		},
		map[string]FieldChange{},
	)

	assert.False(t, plan.HasFileChanges())
	assert.Empty(t, plan.Copies)
	assert.Empty(t, plan.Deletes)
	require.NotNil(t, plan.StorageID)
	assert.Equal(t, "s1", *plan.StorageID)
}

func TestReconcileFirstUploadAllocatesStorageID(t *testing.T) {
	m := newTestManager(t, "fresh")

	staged := &StagedFile{FieldName: "attachment", Path: "/staging/x/attachment-0.pdf", OriginalName: "itinerary.pdf"}
	plan := m.Reconcile("tours",
		AttachmentSet{Files: map[string]*string{"attachment": nil}},
		map[string]FieldChange{
			"attachment": {State: FieldReplaced, NewFile: staged},
		},
	)

	require.NotNil(t, plan.StorageID)
	assert.Equal(t, "fresh", *plan.StorageID)
	require.Len(t, plan.Copies, 1)
	assert.Empty(t, plan.Deletes)
}

func TestApplyCopiesThenDeletes(t *testing.T) {
	m := newTestManager(t, "s2")

	srcStaged := filepath.Join(t.TempDir(), "logo-0.png")
	writeFile(t, srcStaged, "new logo bytes")
	oldPath := PermanentPath(m.permanentRoot, "agencies", "logo", "s1", "old.png")
	writeFile(t, oldPath, "old logo bytes")
	headPath := PermanentPath(m.permanentRoot, "agencies", "letterhead", "s1", "head.pdf")
	writeFile(t, headPath, "letterhead bytes")

	plan := &Plan{
		Copies: []CopyOp{
			{Src: srcStaged, Dst: PermanentPath(m.permanentRoot, "agencies", "logo", "s2", "new.png")},
			{Src: headPath, Dst: PermanentPath(m.permanentRoot, "agencies", "letterhead", "s2", "head.pdf")},
		},
		Deletes: []DeleteOp{{Path: oldPath}},
	}

	warnings := m.Apply(plan)
	assert.Empty(t, warnings)

	got, err := os.ReadFile(PermanentPath(m.permanentRoot, "agencies", "logo", "s2", "new.png"))
	require.NoError(t, err)
	assert.Equal(t, "new logo bytes", string(got))

	got, err = os.ReadFile(PermanentPath(m.permanentRoot, "agencies", "letterhead", "s2", "head.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "letterhead bytes", string(got))

	_, err = os.Stat(oldPath)
	assert.True(t, os.IsNotExist(err))
	// copy-forward source is untouched
	_, err = os.Stat(headPath)
	assert.NoError(t, err)
}

func TestApplyMissingDeleteTargetIsNotAWarning(t *testing.T) {
	m := newTestManager(t, "s2")

	plan := &Plan{
		Deletes: []DeleteOp{{Path: PermanentPath(m.permanentRoot, "agencies", "logo", "s1", "gone.png")}},
	}
	warnings := m.Apply(plan)
	assert.Empty(t, warnings)
}

func TestApplyFailedCopyBecomesWarning(t *testing.T) {
	m := newTestManager(t, "s2")

	plan := &Plan{
		Copies: []CopyOp{{
			Src: filepath.Join(m.permanentRoot, "does", "not", "exist.png"),
			Dst: PermanentPath(m.permanentRoot, "agencies", "logo", "s2", "new.png"),
		}},
	}
	warnings := m.Apply(plan)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "new.png")
}

func TestRemoveEntityFiles(t *testing.T) {
	m := newTestManager(t, "unused")

	writeFile(t, PermanentPath(m.permanentRoot, "agencies", "logo", "s1", "logo.png"), "x")
	writeFile(t, PermanentPath(m.permanentRoot, "agencies", "letterhead", "s1", "head.pdf"), "y")

	warnings := m.RemoveEntityFiles("agencies", strptr("s1"), "logo", "letterhead")
	assert.Empty(t, warnings)

	_, err := os.Stat(FieldDir(m.permanentRoot, "agencies", "logo", "s1"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(FieldDir(m.permanentRoot, "agencies", "letterhead", "s1"))
	assert.True(t, os.IsNotExist(err))

	// entity without files is a no-op
	assert.Empty(t, m.RemoveEntityFiles("agencies", nil, "logo"))
}

func TestPublicURL(t *testing.T) {
	m := newTestManager(t, "unused")

	url := m.PublicURL("agencies", "logo", strptr("s1"), strptr("logo.png"))
	require.NotNil(t, url)
	assert.Equal(t, "/uploads/agencies/logo/s1/logo.png", *url)

	assert.Nil(t, m.PublicURL("agencies", "logo", nil, strptr("logo.png")))
	assert.Nil(t, m.PublicURL("agencies", "logo", strptr("s1"), nil))
}
