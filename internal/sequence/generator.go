package sequence

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
)

// Generator issues gapless per-agency document numbers. Issuance must run
// inside the same transaction as the insert of the document being numbered,
// so a rollback of the document also rolls the counter back.
//
// Concurrency: the counter is advanced with a single in-place UPDATE, so two
// concurrent issuers for the same (agency, kind, fiscal year) serialize on
// the counter row lock. First issuance creates the row; losing the creation
// race falls back to the increment path.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a generator using the wall clock
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock creates a generator with an injected clock
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Next issues the next document number for the agency and kind, formatted as
// "{fiscalYearLabel}/{sequence}" with a three-digit padded sequence.
func (g *Generator) Next(tx *gorm.DB, agencyID uint, kind Kind) (string, error) {
	if agencyID == 0 {
		return "", fmt.Errorf("invalid agency ID")
	}
	label := FiscalYearLabel(g.now())

	for attempt := 0; attempt < 3; attempt++ {
		res := tx.Model(&models.DocumentSequence{}).
			Where("agency_id = ? AND document_kind = ? AND fiscal_year = ?", agencyID, string(kind), label).
			UpdateColumn("last_sequence", gorm.Expr("last_sequence + 1"))
		if res.Error != nil {
			return "", fmt.Errorf("failed to advance document sequence: %w", res.Error)
		}

		if res.RowsAffected == 0 {
			// First issuance for this scope; the unique index on
			// (agency, kind, fiscal year) resolves creation races.
			seq := models.DocumentSequence{
				AgencyID:     agencyID,
				DocumentKind: string(kind),
				FiscalYear:   label,
				LastSequence: 1,
			}
			err := tx.Create(&seq).Error
			if err == nil {
				return FormatNumber(label, 1), nil
			}
			if isDuplicateKey(err) {
				continue
			}
			return "", fmt.Errorf("failed to create document sequence: %w", err)
		}

		var seq models.DocumentSequence
		err := tx.
			Where("agency_id = ? AND document_kind = ? AND fiscal_year = ?", agencyID, string(kind), label).
			First(&seq).Error
		if err != nil {
			return "", fmt.Errorf("failed to read document sequence: %w", err)
		}
		return FormatNumber(label, seq.LastSequence), nil
	}

	return "", fmt.Errorf("failed to issue document number for agency %d kind %s", agencyID, kind)
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
