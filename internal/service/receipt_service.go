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

// ReceiptInput carries booking receipt scalar fields
type ReceiptInput struct {
	ReceiptDate  *time.Time
	PaymentMode  string
	Amount       decimal.Decimal
	BankID       *uint
	ChequeNumber *string
	ChequeDate   *time.Time
	UTRNumber    *string
	Description  *string
}

// ReceiptService defines the interface for booking receipt business
// operations
type ReceiptService interface {
	CreateReceipt(agencyID, userID, bookingID uint, input *ReceiptInput) (*models.BookingReceipt, error)
	GetReceipt(agencyID, id uint) (*models.BookingReceipt, error)
	ListReceiptsByBooking(agencyID, bookingID uint) ([]*models.BookingReceipt, error)
	DeleteReceipt(agencyID, id uint) error
}

// receiptService implements ReceiptService
type receiptService struct {
	receiptRepo repository.ReceiptRepository
	bookingRepo repository.BookingRepository
	sequences   *sequence.Generator
	db          *gorm.DB
}

// NewReceiptService creates a new instance of ReceiptService
func NewReceiptService(receiptRepo repository.ReceiptRepository, bookingRepo repository.BookingRepository, sequences *sequence.Generator, db *gorm.DB) ReceiptService {
	return &receiptService{
		receiptRepo: receiptRepo,
		bookingRepo: bookingRepo,
		sequences:   sequences,
		db:          db,
	}
}

// CreateReceipt issues the next receipt number and inserts the receipt in
// one transaction
func (s *receiptService) CreateReceipt(agencyID, userID, bookingID uint, input *ReceiptInput) (*models.BookingReceipt, error) {
	if _, err := s.bookingRepo.GetByID(agencyID, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if input.PaymentMode == "" {
		return nil, fmt.Errorf("payment mode is required")
	}
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("amount must be positive")
	}
	if input.PaymentMode == "cheque" && (input.ChequeNumber == nil || *input.ChequeNumber == "") {
		return nil, fmt.Errorf("cheque number is required for cheque payments")
	}

	receipt := &models.BookingReceipt{
		AgencyID:     agencyID,
		BookingID:    bookingID,
		ReceiptDate:  time.Now(),
		PaymentMode:  input.PaymentMode,
		Amount:       input.Amount,
		BankID:       input.BankID,
		ChequeNumber: input.ChequeNumber,
		ChequeDate:   input.ChequeDate,
		UTRNumber:    input.UTRNumber,
		Description:  input.Description,
		CreatedByID:  &userID,
	}
	if input.ReceiptDate != nil {
		receipt.ReceiptDate = *input.ReceiptDate
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		number, err := s.sequences.Next(tx, agencyID, sequence.KindBookingReceipt)
		if err != nil {
			return err
		}
		receipt.ReceiptNumber = number
		return s.receiptRepo.Create(tx, receipt)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create receipt: %w", err)
	}
	return receipt, nil
}

// GetReceipt retrieves one receipt
func (s *receiptService) GetReceipt(agencyID, id uint) (*models.BookingReceipt, error) {
	receipt, err := s.receiptRepo.GetByID(agencyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}
	return receipt, nil
}

// ListReceiptsByBooking retrieves all receipts against a booking
func (s *receiptService) ListReceiptsByBooking(agencyID, bookingID uint) ([]*models.BookingReceipt, error) {
	if _, err := s.bookingRepo.GetByID(agencyID, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	receipts, err := s.receiptRepo.ListByBooking(agencyID, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	return receipts, nil
}

// DeleteReceipt removes a receipt
func (s *receiptService) DeleteReceipt(agencyID, id uint) error {
	if _, err := s.receiptRepo.GetByID(agencyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get receipt: %w", err)
	}
	if err := s.receiptRepo.Delete(agencyID, id); err != nil {
		return fmt.Errorf("failed to delete receipt: %w", err)
	}
	return nil
}
