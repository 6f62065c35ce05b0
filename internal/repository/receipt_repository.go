package repository

import (
	"gorm.io/gorm"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
)

// ReceiptRepository defines the interface for booking receipt data
// operations
type ReceiptRepository interface {
	Create(tx *gorm.DB, receipt *models.BookingReceipt) error
	GetByID(agencyID, id uint) (*models.BookingReceipt, error)
	ListByBooking(agencyID, bookingID uint) ([]*models.BookingReceipt, error)
	Delete(agencyID, id uint) error
}

// receiptRepository implements ReceiptRepository
type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new instance of ReceiptRepository
func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

// Create inserts a new receipt inside the caller's transaction
func (r *receiptRepository) Create(tx *gorm.DB, receipt *models.BookingReceipt) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(receipt).Error
}

// GetByID retrieves a receipt scoped to an agency
func (r *receiptRepository) GetByID(agencyID, id uint) (*models.BookingReceipt, error) {
	var receipt models.BookingReceipt
	if err := r.db.Where("id = ? AND agency_id = ?", id, agencyID).First(&receipt).Error; err != nil {
		return nil, err
	}
	return &receipt, nil
}

// ListByBooking retrieves all receipts for a booking
func (r *receiptRepository) ListByBooking(agencyID, bookingID uint) ([]*models.BookingReceipt, error) {
	var receipts []*models.BookingReceipt
	err := r.db.Where("agency_id = ? AND booking_id = ?", agencyID, bookingID).
		Order("receipt_date DESC, id DESC").
		Find(&receipts).Error
	if err != nil {
		return nil, err
	}
	return receipts, nil
}

// Delete removes a receipt scoped to an agency
func (r *receiptRepository) Delete(agencyID, id uint) error {
	return r.db.Where("agency_id = ?", agencyID).Delete(&models.BookingReceipt{}, id).Error
}
