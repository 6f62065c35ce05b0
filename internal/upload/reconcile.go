package upload

// FieldState describes what an update request did to one attachment field
type FieldState int

const (
	// FieldNoChange leaves the field's existing file alone
	FieldNoChange FieldState = iota
	// FieldReplaced supplies a new file for the field
	FieldReplaced
	// FieldRemoved clears the field without supplying a new file
	FieldRemoved
)

// FieldChange is the per-field input to Reconcile. NewFile is set only for
// FieldReplaced.
type FieldChange struct {
	State   FieldState
	NewFile *StagedFile
}

// AttachmentSet is an entity's persisted attachment references: one storage
// id shared by all fields, and a filename (possibly nil) per field.
type AttachmentSet struct {
	StorageID *string
	Files     map[string]*string
}

// CopyOp copies a file into permanent storage; Dst's directory may not exist
// yet
type CopyOp struct {
	Src string
	Dst string
}

// DeleteOp removes a file from permanent storage; a missing source is not an
// error
type DeleteOp struct {
	Path string
}

// Plan is the outcome of reconciling one update request. The database write
// persists StorageID and Filenames first; Copies and Deletes run only after
// it commits, copies before deletes.
type Plan struct {
	StorageID *string
	Filenames map[string]*string
	Copies    []CopyOp
	Deletes   []DeleteOp

	fileChanges bool
}

// HasFileChanges reports whether any field was replaced or removed. A plan
// without file changes must not be persisted as an attachment update.
func (p *Plan) HasFileChanges() bool {
	return p.fileChanges
}

// Reconcile computes the storage mutation for one update request against an
// entity's current attachments.
//
// A new storage id is allocated only when at least one field received a new
// upload; in that case files of untouched fields are copied forward into the
// new storage directory so every field keeps pointing at the entity's single
// storage id. When every resulting filename is nil the storage id is nil as
// well. Old files of replaced or removed fields are scheduled for deletion.
func (m *Manager) Reconcile(module string, existing AttachmentSet, changes map[string]FieldChange) Plan {
	anyReplaced := false
	for _, ch := range changes {
		if ch.State == FieldReplaced {
			anyReplaced = true
			break
		}
	}

	oldID := ""
	if existing.StorageID != nil {
		oldID = *existing.StorageID
	}
	targetID := oldID
	if anyReplaced {
		targetID = m.newStorageID()
	}

	// union of persisted and requested fields
	fields := make(map[string]struct{})
	for f := range existing.Files {
		fields[f] = struct{}{}
	}
	for f := range changes {
		fields[f] = struct{}{}
	}

	plan := Plan{Filenames: make(map[string]*string, len(fields))}

	for field := range fields {
		oldName := existing.Files[field]
		ch := changes[field]

		switch ch.State {
		case FieldReplaced:
			name := ch.NewFile.OriginalName
			plan.Filenames[field] = &name
			plan.Copies = append(plan.Copies, CopyOp{
				Src: ch.NewFile.Path,
				Dst: PermanentPath(m.permanentRoot, module, field, targetID, name),
			})
			if oldName != nil && oldID != "" {
				plan.Deletes = append(plan.Deletes, DeleteOp{
					Path: PermanentPath(m.permanentRoot, module, field, oldID, *oldName),
				})
			}
			plan.fileChanges = true

		case FieldRemoved:
			plan.Filenames[field] = nil
			if oldName != nil && oldID != "" {
				plan.Deletes = append(plan.Deletes, DeleteOp{
					Path: PermanentPath(m.permanentRoot, module, field, oldID, *oldName),
				})
			}
			plan.fileChanges = true

		default: // FieldNoChange
			plan.Filenames[field] = oldName
			if anyReplaced && oldName != nil && oldID != "" {
				// sibling upload rotated the storage id; carry the
				// untouched file into the new directory
				plan.Copies = append(plan.Copies, CopyOp{
					Src: PermanentPath(m.permanentRoot, module, field, oldID, *oldName),
					Dst: PermanentPath(m.permanentRoot, module, field, targetID, *oldName),
				})
			}
		}
	}

	allNil := true
	for _, name := range plan.Filenames {
		if name != nil {
			allNil = false
			break
		}
	}
	switch {
	case allNil:
		plan.StorageID = nil
	case targetID != "":
		plan.StorageID = &targetID
	}

	return plan
}
