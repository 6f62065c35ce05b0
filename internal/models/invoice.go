package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents the invoices table. An invoice is raised against either
// an individual booking or a group booking.
type Invoice struct {
	ID             uint            `json:"id" gorm:"primarykey"`
	AgencyID       uint            `json:"agency_id" gorm:"column:agency_id;uniqueIndex:idx_invoices_agency_number"`
	BookingID      *uint           `json:"booking_id" gorm:"column:booking_id;index"`
	GroupBookingID *uint           `json:"group_booking_id" gorm:"column:group_booking_id;index"`
	InvoiceNumber  string          `json:"invoice_number" gorm:"column:invoice_number;uniqueIndex:idx_invoices_agency_number"`
	InvoiceDate    time.Time       `json:"invoice_date" gorm:"column:invoice_date"`
	Amount         decimal.Decimal `json:"amount" gorm:"column:amount;type:numeric(12,2)"`
	TaxAmount      decimal.Decimal `json:"tax_amount" gorm:"column:tax_amount;type:numeric(12,2)"`
	TotalAmount    decimal.Decimal `json:"total_amount" gorm:"column:total_amount;type:numeric(12,2)"`
	Description    *string         `json:"description" gorm:"column:description"`
	CreatedByID    *uint           `json:"created_by_id" gorm:"column:created_by_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TableName sets the insert table name for Invoice
func (Invoice) TableName() string {
	return "invoices"
}
