package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingReceipt represents the booking_receipts table
type BookingReceipt struct {
	ID            uint            `json:"id" gorm:"primarykey"`
	AgencyID      uint            `json:"agency_id" gorm:"column:agency_id;uniqueIndex:idx_booking_receipts_agency_number"`
	BookingID     uint            `json:"booking_id" gorm:"column:booking_id;index"`
	ReceiptNumber string          `json:"receipt_number" gorm:"column:receipt_number;uniqueIndex:idx_booking_receipts_agency_number"`
	ReceiptDate   time.Time       `json:"receipt_date" gorm:"column:receipt_date"`
	PaymentMode   string          `json:"payment_mode" gorm:"column:payment_mode"`
	Amount        decimal.Decimal `json:"amount" gorm:"column:amount;type:numeric(12,2)"`
	BankID        *uint           `json:"bank_id" gorm:"column:bank_id"`
	ChequeNumber  *string         `json:"cheque_number" gorm:"column:cheque_number"`
	ChequeDate    *time.Time      `json:"cheque_date" gorm:"column:cheque_date"`
	UTRNumber     *string         `json:"utr_number" gorm:"column:utr_number"`
	Description   *string         `json:"description" gorm:"column:description"`
	CreatedByID   *uint           `json:"created_by_id" gorm:"column:created_by_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName sets the insert table name for BookingReceipt
func (BookingReceipt) TableName() string {
	return "booking_receipts"
}
