package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	Create(tx *gorm.DB, invoice *models.Invoice) error
	GetByID(agencyID, id uint) (*models.Invoice, error)
	List(agencyID uint, search string, page, limit int) ([]*models.Invoice, int64, error)
	ListByBooking(agencyID, bookingID uint) ([]*models.Invoice, error)
	Delete(agencyID, id uint) error
}

// invoiceRepository implements InvoiceRepository
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new instance of InvoiceRepository
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create inserts a new invoice inside the caller's transaction
func (r *invoiceRepository) Create(tx *gorm.DB, invoice *models.Invoice) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(invoice).Error
}

// GetByID retrieves an invoice scoped to an agency
func (r *invoiceRepository) GetByID(agencyID, id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.db.Where("id = ? AND agency_id = ?", id, agencyID).First(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// List retrieves invoices with pagination and search on invoice number
func (r *invoiceRepository) List(agencyID uint, search string, page, limit int) ([]*models.Invoice, int64, error) {
	var invoices []*models.Invoice
	var total int64

	query := r.db.Model(&models.Invoice{}).Where("agency_id = ?", agencyID)
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(invoice_number) LIKE ?", like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("invoice_date DESC, id DESC").Offset(offset).Limit(limit).Find(&invoices).Error
	if err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

// ListByBooking retrieves all invoices raised against a booking
func (r *invoiceRepository) ListByBooking(agencyID, bookingID uint) ([]*models.Invoice, error) {
	var invoices []*models.Invoice
	err := r.db.Where("agency_id = ? AND booking_id = ?", agencyID, bookingID).
		Order("invoice_date DESC, id DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

// Delete removes an invoice scoped to an agency
func (r *invoiceRepository) Delete(agencyID, id uint) error {
	return r.db.Where("agency_id = ?", agencyID).Delete(&models.Invoice{}, id).Error
}
