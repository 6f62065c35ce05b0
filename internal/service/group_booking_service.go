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

// GroupBookingInput carries group booking scalar fields
type GroupBookingInput struct {
	BranchID               *uint
	GroupName              *string
	BookingDate            *time.Time
	TourID                 *uint
	NumberOfAdults         *int
	NumberOfChildren5To11  *int
	NumberOfChildrenBelow5 *int
	TotalCost              *decimal.Decimal
	Status                 *string
	Remarks                *string
}

// GroupBookingService defines the interface for group booking business
// operations
type GroupBookingService interface {
	CreateGroupBooking(agencyID, userID uint, input *GroupBookingInput) (*models.GroupBooking, error)
	GetGroupBooking(agencyID, id uint) (*models.GroupBooking, error)
	ListGroupBookings(agencyID uint, search, status string, page, limit int) ([]*models.GroupBooking, int64, error)
	UpdateGroupBooking(agencyID, id uint, input *GroupBookingInput) (*models.GroupBooking, error)
	DeleteGroupBooking(agencyID, id uint) error
}

// groupBookingService implements GroupBookingService
type groupBookingService struct {
	groupRepo repository.GroupBookingRepository
	sequences *sequence.Generator
	db        *gorm.DB
}

// NewGroupBookingService creates a new instance of GroupBookingService
func NewGroupBookingService(groupRepo repository.GroupBookingRepository, sequences *sequence.Generator, db *gorm.DB) GroupBookingService {
	return &groupBookingService{groupRepo: groupRepo, sequences: sequences, db: db}
}

// CreateGroupBooking issues the next group booking number and inserts the
// row in one transaction
func (s *groupBookingService) CreateGroupBooking(agencyID, userID uint, input *GroupBookingInput) (*models.GroupBooking, error) {
	if input.GroupName == nil || *input.GroupName == "" {
		return nil, fmt.Errorf("group name is required")
	}

	gb := &models.GroupBooking{
		AgencyID:               agencyID,
		BranchID:               input.BranchID,
		GroupName:              *input.GroupName,
		BookingDate:            time.Now(),
		TourID:                 input.TourID,
		NumberOfAdults:         input.NumberOfAdults,
		NumberOfChildren5To11:  input.NumberOfChildren5To11,
		NumberOfChildrenBelow5: input.NumberOfChildrenBelow5,
		Remarks:                input.Remarks,
		CreatedByID:            &userID,
	}
	if input.BookingDate != nil {
		gb.BookingDate = *input.BookingDate
	}
	if input.TotalCost != nil {
		gb.TotalCost = *input.TotalCost
	}
	if input.Status != nil {
		gb.Status = *input.Status
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		number, err := s.sequences.Next(tx, agencyID, sequence.KindGroupBooking)
		if err != nil {
			return err
		}
		gb.GroupBookingNumber = number
		return s.groupRepo.Create(tx, gb)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create group booking: %w", err)
	}
	return gb, nil
}

// GetGroupBooking retrieves one group booking
func (s *groupBookingService) GetGroupBooking(agencyID, id uint) (*models.GroupBooking, error) {
	gb, err := s.groupRepo.GetByID(agencyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get group booking: %w", err)
	}
	return gb, nil
}

// ListGroupBookings retrieves group bookings with pagination and filters
func (s *groupBookingService) ListGroupBookings(agencyID uint, search, status string, page, limit int) ([]*models.GroupBooking, int64, error) {
	gbs, total, err := s.groupRepo.List(agencyID, search, status, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list group bookings: %w", err)
	}
	return gbs, total, nil
}

// UpdateGroupBooking applies scalar changes; the number never changes
func (s *groupBookingService) UpdateGroupBooking(agencyID, id uint, input *GroupBookingInput) (*models.GroupBooking, error) {
	gb, err := s.groupRepo.GetByID(agencyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get group booking: %w", err)
	}

	if input.BranchID != nil {
		gb.BranchID = input.BranchID
	}
	if input.GroupName != nil {
		gb.GroupName = *input.GroupName
	}
	if input.BookingDate != nil {
		gb.BookingDate = *input.BookingDate
	}
	if input.TourID != nil {
		gb.TourID = input.TourID
	}
	if input.NumberOfAdults != nil {
		gb.NumberOfAdults = input.NumberOfAdults
	}
	if input.NumberOfChildren5To11 != nil {
		gb.NumberOfChildren5To11 = input.NumberOfChildren5To11
	}
	if input.NumberOfChildrenBelow5 != nil {
		gb.NumberOfChildrenBelow5 = input.NumberOfChildrenBelow5
	}
	if input.TotalCost != nil {
		gb.TotalCost = *input.TotalCost
	}
	if input.Status != nil {
		gb.Status = *input.Status
	}
	if input.Remarks != nil {
		gb.Remarks = input.Remarks
	}

	if err := s.groupRepo.Update(gb); err != nil {
		return nil, fmt.Errorf("failed to update group booking: %w", err)
	}
	return gb, nil
}

// DeleteGroupBooking removes a group booking
func (s *groupBookingService) DeleteGroupBooking(agencyID, id uint) error {
	if _, err := s.groupRepo.GetByID(agencyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get group booking: %w", err)
	}
	if err := s.groupRepo.Delete(agencyID, id); err != nil {
		return fmt.Errorf("failed to delete group booking: %w", err)
	}
	return nil
}
