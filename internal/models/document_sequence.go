package models

import (
	"time"
)

// DocumentSequence represents the document_sequences table: one counter row
// per agency, document kind and fiscal year. LastSequence only ever grows
// and is advanced with an in-place atomic increment.
type DocumentSequence struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	AgencyID     uint      `json:"agency_id" gorm:"column:agency_id;uniqueIndex:idx_document_sequences_scope"`
	DocumentKind string    `json:"document_kind" gorm:"column:document_kind;uniqueIndex:idx_document_sequences_scope"`
	FiscalYear   string    `json:"fiscal_year" gorm:"column:fiscal_year;uniqueIndex:idx_document_sequences_scope"`
	LastSequence int       `json:"last_sequence" gorm:"column:last_sequence"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName sets the insert table name for DocumentSequence
func (DocumentSequence) TableName() string {
	return "document_sequences"
}
