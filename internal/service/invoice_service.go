package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/repository"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/sequence"
)

// InvoiceInput carries invoice scalar fields. Exactly one of BookingID and
// GroupBookingID must be set.
type InvoiceInput struct {
	BookingID      *uint
	GroupBookingID *uint
	InvoiceDate    *time.Time
	Amount         decimal.Decimal
	TaxAmount      decimal.Decimal
	Description    *string
}

// InvoiceService defines the interface for invoice business operations
type InvoiceService interface {
	CreateInvoice(agencyID, userID uint, input *InvoiceInput) (*models.Invoice, error)
	GetInvoice(agencyID, id uint) (*models.Invoice, error)
	ListInvoices(agencyID uint, search string, page, limit int) ([]*models.Invoice, int64, error)
	ListInvoicesByBooking(agencyID, bookingID uint) ([]*models.Invoice, error)
	DeleteInvoice(agencyID, id uint) error
}

// invoiceService implements InvoiceService
type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	bookingRepo repository.BookingRepository
	groupRepo   repository.GroupBookingRepository
	sequences   *sequence.Generator
	db          *gorm.DB
}

// NewInvoiceService creates a new instance of InvoiceService
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	bookingRepo repository.BookingRepository,
	groupRepo repository.GroupBookingRepository,
	sequences *sequence.Generator,
	db *gorm.DB,
) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		bookingRepo: bookingRepo,
		groupRepo:   groupRepo,
		sequences:   sequences,
		db:          db,
	}
}

// CreateInvoice issues the next invoice number and inserts the invoice in
// one transaction
func (s *invoiceService) CreateInvoice(agencyID, userID uint, input *InvoiceInput) (*models.Invoice, error) {
	if (input.BookingID == nil) == (input.GroupBookingID == nil) {
		return nil, fmt.Errorf("exactly one of booking_id and group_booking_id is required")
	}
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("amount must be positive")
	}

	if input.BookingID != nil {
		if _, err := s.bookingRepo.GetByID(agencyID, *input.BookingID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to get booking: %w", err)
		}
	} else {
		if _, err := s.groupRepo.GetByID(agencyID, *input.GroupBookingID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to get group booking: %w", err)
		}
	}

	invoice := &models.Invoice{
		AgencyID:       agencyID,
		BookingID:      input.BookingID,
		GroupBookingID: input.GroupBookingID,
		InvoiceDate:    time.Now(),
		Amount:         input.Amount,
		TaxAmount:      input.TaxAmount,
		TotalAmount:    input.Amount.Add(input.TaxAmount),
		Description:    input.Description,
		CreatedByID:    &userID,
	}
	if input.InvoiceDate != nil {
		invoice.InvoiceDate = *input.InvoiceDate
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		number, err := s.sequences.Next(tx, agencyID, sequence.KindInvoice)
		if err != nil {
			return err
		}
		invoice.InvoiceNumber = number
		return s.invoiceRepo.Create(tx, invoice)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return invoice, nil
}

// GetInvoice retrieves one invoice
func (s *invoiceService) GetInvoice(agencyID, id uint) (*models.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(agencyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return invoice, nil
}

// ListInvoices retrieves invoices with pagination and search
func (s *invoiceService) ListInvoices(agencyID uint, search string, page, limit int) ([]*models.Invoice, int64, error) {
	invoices, total, err := s.invoiceRepo.List(agencyID, search, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, total, nil
}

// ListInvoicesByBooking retrieves invoices raised against a booking
func (s *invoiceService) ListInvoicesByBooking(agencyID, bookingID uint) ([]*models.Invoice, error) {
	if _, err := s.bookingRepo.GetByID(agencyID, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	invoices, err := s.invoiceRepo.ListByBooking(agencyID, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

// DeleteInvoice removes an invoice
func (s *invoiceService) DeleteInvoice(agencyID, id uint) error {
	if _, err := s.invoiceRepo.GetByID(agencyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get invoice: %w", err)
	}
	if err := s.invoiceRepo.Delete(agencyID, id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}
