package models

import (
	"time"
)

// TravelDocument represents the travel_documents table (passport/visa scans
// attached to a client)
type TravelDocument struct {
	ID             uint       `json:"id" gorm:"primarykey"`
	ClientID       uint       `json:"client_id" gorm:"column:client_id;index"`
	DocumentType   string     `json:"document_type" gorm:"column:document_type"`
	DocumentNumber *string    `json:"document_number" gorm:"column:document_number"`
	IssueDate      *time.Time `json:"issue_date" gorm:"column:issue_date"`
	ExpiryDate     *time.Time `json:"expiry_date" gorm:"column:expiry_date"`
	StorageID      *string    `json:"storage_id" gorm:"column:storage_id"`
	ScanFilename   *string    `json:"scan_filename" gorm:"column:scan_filename"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName sets the insert table name for TravelDocument
func (TravelDocument) TableName() string {
	return "travel_documents"
}
