package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models/response"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/repository"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/sequence"
)

// BookingInput carries booking scalar fields
type BookingInput struct {
	BranchID               *uint
	BookingDate            *time.Time
	DepartureDate          *time.Time
	ClientID               uint
	TourID                 *uint
	NumberOfAdults         *int
	NumberOfChildren5To11  *int
	NumberOfChildrenBelow5 *int
	TotalCost              *decimal.Decimal
	Status                 *string
	Remarks                *string
}

// VehicleBookingInput carries vehicle sub-booking scalar fields
type VehicleBookingInput struct {
	VehicleType      *string
	VendorName       *string
	PickupDate       *time.Time
	ReturnDate       *time.Time
	NumberOfVehicles *int
	Cost             *decimal.Decimal
	Status           *string
}

// HotelBookingInput carries hotel sub-booking scalar fields
type HotelBookingInput struct {
	HotelName     string
	CityID        *uint
	CheckInDate   *time.Time
	CheckOutDate  *time.Time
	NumberOfRooms *int
	Plan          *string
	Cost          *decimal.Decimal
	Status        *string
}

// BookingService defines the interface for booking business operations
type BookingService interface {
	CreateBooking(agencyID, userID uint, input *BookingInput) (*models.Booking, error)
	GetBooking(agencyID, id uint) (*models.Booking, error)
	ListBookings(agencyID uint, filters repository.BookingFilters, page, limit int) ([]*models.Booking, int64, error)
	UpdateBooking(agencyID, id uint, input *BookingInput) (*models.Booking, error)
	DeleteBooking(agencyID, id uint) error
	GetStatistics(agencyID uint) (*response.BookingStatisticsResponse, error)

	CreateVehicleBooking(agencyID, bookingID uint, input *VehicleBookingInput) (*models.VehicleBooking, error)
	ListVehicleBookings(agencyID, bookingID uint) ([]*models.VehicleBooking, error)
	UpdateVehicleBooking(agencyID, bookingID, id uint, input *VehicleBookingInput) (*models.VehicleBooking, error)
	DeleteVehicleBooking(agencyID, bookingID, id uint) error

	CreateHotelBooking(agencyID, bookingID uint, input *HotelBookingInput) (*models.HotelBooking, error)
	ListHotelBookings(agencyID, bookingID uint) ([]*models.HotelBooking, error)
	UpdateHotelBooking(agencyID, bookingID, id uint, input *HotelBookingInput) (*models.HotelBooking, error)
	DeleteHotelBooking(agencyID, bookingID, id uint) error
}

// bookingService implements BookingService
type bookingService struct {
	bookingRepo repository.BookingRepository
	sequences   *sequence.Generator
	db          *gorm.DB
}

// NewBookingService creates a new instance of BookingService
func NewBookingService(bookingRepo repository.BookingRepository, sequences *sequence.Generator, db *gorm.DB) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		sequences:   sequences,
		db:          db,
	}
}

// CreateBooking issues the next booking number and inserts the booking in
// one transaction, so an aborted insert returns the number to the series
func (s *bookingService) CreateBooking(agencyID, userID uint, input *BookingInput) (*models.Booking, error) {
	if input.ClientID == 0 {
		return nil, fmt.Errorf("client is required")
	}

	booking := &models.Booking{
		AgencyID:               agencyID,
		BranchID:               input.BranchID,
		BookingDate:            time.Now(),
		DepartureDate:          input.DepartureDate,
		ClientID:               input.ClientID,
		TourID:                 input.TourID,
		NumberOfAdults:         input.NumberOfAdults,
		NumberOfChildren5To11:  input.NumberOfChildren5To11,
		NumberOfChildrenBelow5: input.NumberOfChildrenBelow5,
		Remarks:                input.Remarks,
		CreatedByID:            &userID,
	}
	if input.BookingDate != nil {
		booking.BookingDate = *input.BookingDate
	}
	if input.TotalCost != nil {
		booking.TotalCost = *input.TotalCost
	}
	if input.Status != nil {
		booking.Status = *input.Status
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		number, err := s.sequences.Next(tx, agencyID, sequence.KindBooking)
		if err != nil {
			return err
		}
		booking.BookingNumber = number
		return s.bookingRepo.Create(tx, booking)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}

// GetBooking retrieves one booking with sub-bookings
func (s *bookingService) GetBooking(agencyID, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(agencyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

// ListBookings retrieves bookings with pagination and filters
func (s *bookingService) ListBookings(agencyID uint, filters repository.BookingFilters, page, limit int) ([]*models.Booking, int64, error) {
	bookings, total, err := s.bookingRepo.List(agencyID, filters, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, total, nil
}

// UpdateBooking applies scalar changes; the booking number never changes
func (s *bookingService) UpdateBooking(agencyID, id uint, input *BookingInput) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(agencyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if input.BranchID != nil {
		booking.BranchID = input.BranchID
	}
	if input.BookingDate != nil {
		booking.BookingDate = *input.BookingDate
	}
	if input.DepartureDate != nil {
		booking.DepartureDate = input.DepartureDate
	}
	if input.ClientID != 0 {
		booking.ClientID = input.ClientID
	}
	if input.TourID != nil {
		booking.TourID = input.TourID
	}
	if input.NumberOfAdults != nil {
		booking.NumberOfAdults = input.NumberOfAdults
	}
	if input.NumberOfChildren5To11 != nil {
		booking.NumberOfChildren5To11 = input.NumberOfChildren5To11
	}
	if input.NumberOfChildrenBelow5 != nil {
		booking.NumberOfChildrenBelow5 = input.NumberOfChildrenBelow5
	}
	if input.TotalCost != nil {
		booking.TotalCost = *input.TotalCost
	}
	if input.Status != nil {
		booking.Status = *input.Status
	}
	if input.Remarks != nil {
		booking.Remarks = input.Remarks
	}

	if err := s.bookingRepo.Update(booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return booking, nil
}

// DeleteBooking removes a booking
func (s *bookingService) DeleteBooking(agencyID, id uint) error {
	if _, err := s.bookingRepo.GetByID(agencyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get booking: %w", err)
	}
	if err := s.bookingRepo.Delete(agencyID, id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

// GetStatistics aggregates booking counts and amounts by status
func (s *bookingService) GetStatistics(agencyID uint) (*response.BookingStatisticsResponse, error) {
	stats, err := s.bookingRepo.Statistics(agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking statistics: %w", err)
	}
	return stats, nil
}

// CreateVehicleBooking issues a hire voucher number and inserts the vehicle
// sub-booking in one transaction
func (s *bookingService) CreateVehicleBooking(agencyID, bookingID uint, input *VehicleBookingInput) (*models.VehicleBooking, error) {
	if _, err := s.bookingRepo.GetByID(agencyID, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	vb := &models.VehicleBooking{
		AgencyID:         agencyID,
		BookingID:        bookingID,
		VehicleType:      input.VehicleType,
		VendorName:       input.VendorName,
		PickupDate:       input.PickupDate,
		ReturnDate:       input.ReturnDate,
		NumberOfVehicles: input.NumberOfVehicles,
	}
	if input.Cost != nil {
		vb.Cost = *input.Cost
	}
	if input.Status != nil {
		vb.Status = *input.Status
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		number, err := s.sequences.Next(tx, agencyID, sequence.KindVehicleVoucher)
		if err != nil {
			return err
		}
		vb.HireVoucherNumber = number
		return s.bookingRepo.CreateVehicleBooking(tx, vb)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create vehicle booking: %w", err)
	}
	return vb, nil
}

// ListVehicleBookings retrieves a booking's vehicle sub-bookings
func (s *bookingService) ListVehicleBookings(agencyID, bookingID uint) ([]*models.VehicleBooking, error) {
	if _, err := s.bookingRepo.GetByID(agencyID, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	vbs, err := s.bookingRepo.ListVehicleBookings(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle bookings: %w", err)
	}
	return vbs, nil
}

// UpdateVehicleBooking applies scalar changes; the voucher number never
// changes
func (s *bookingService) UpdateVehicleBooking(agencyID, bookingID, id uint, input *VehicleBookingInput) (*models.VehicleBooking, error) {
	if _, err := s.bookingRepo.GetByID(agencyID, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	vb, err := s.bookingRepo.GetVehicleBooking(bookingID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle booking: %w", err)
	}

	if input.VehicleType != nil {
		vb.VehicleType = input.VehicleType
	}
	if input.VendorName != nil {
		vb.VendorName = input.VendorName
	}
	if input.PickupDate != nil {
		vb.PickupDate = input.PickupDate
	}
	if input.ReturnDate != nil {
		vb.ReturnDate = input.ReturnDate
	}
	if input.NumberOfVehicles != nil {
		vb.NumberOfVehicles = input.NumberOfVehicles
	}
	if input.Cost != nil {
		vb.Cost = *input.Cost
	}
	if input.Status != nil {
		vb.Status = *input.Status
	}

	if err := s.bookingRepo.UpdateVehicleBooking(vb); err != nil {
		return nil, fmt.Errorf("failed to update vehicle booking: %w", err)
	}
	return vb, nil
}

// DeleteVehicleBooking removes a vehicle sub-booking
func (s *bookingService) DeleteVehicleBooking(agencyID, bookingID, id uint) error {
	if _, err := s.bookingRepo.GetByID(agencyID, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get booking: %w", err)
	}
	if _, err := s.bookingRepo.GetVehicleBooking(bookingID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get vehicle booking: %w", err)
	}
	if err := s.bookingRepo.DeleteVehicleBooking(bookingID, id); err != nil {
		return fmt.Errorf("failed to delete vehicle booking: %w", err)
	}
	return nil
}

// CreateHotelBooking inserts a hotel sub-booking
func (s *bookingService) CreateHotelBooking(agencyID, bookingID uint, input *HotelBookingInput) (*models.HotelBooking, error) {
	if _, err := s.bookingRepo.GetByID(agencyID, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if input.HotelName == "" {
		return nil, fmt.Errorf("hotel name is required")
	}

	hb := &models.HotelBooking{
		BookingID:     bookingID,
		HotelName:     input.HotelName,
		CityID:        input.CityID,
		CheckInDate:   input.CheckInDate,
		CheckOutDate:  input.CheckOutDate,
		NumberOfRooms: input.NumberOfRooms,
		Plan:          input.Plan,
	}
	if input.Cost != nil {
		hb.Cost = *input.Cost
	}
	if input.Status != nil {
		hb.Status = *input.Status
	}

	if err := s.bookingRepo.CreateHotelBooking(hb); err != nil {
		return nil, fmt.Errorf("failed to create hotel booking: %w", err)
	}
	return hb, nil
}

// ListHotelBookings retrieves a booking's hotel sub-bookings
func (s *bookingService) ListHotelBookings(agencyID, bookingID uint) ([]*models.HotelBooking, error) {
	if _, err := s.bookingRepo.GetByID(agencyID, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	hbs, err := s.bookingRepo.ListHotelBookings(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotel bookings: %w", err)
	}
	return hbs, nil
}

// UpdateHotelBooking applies scalar changes to a hotel sub-booking
func (s *bookingService) UpdateHotelBooking(agencyID, bookingID, id uint, input *HotelBookingInput) (*models.HotelBooking, error) {
	if _, err := s.bookingRepo.GetByID(agencyID, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	hb, err := s.bookingRepo.GetHotelBooking(bookingID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get hotel booking: %w", err)
	}

	if input.HotelName != "" {
		hb.HotelName = input.HotelName
	}
	if input.CityID != nil {
		hb.CityID = input.CityID
	}
	if input.CheckInDate != nil {
		hb.CheckInDate = input.CheckInDate
	}
	if input.CheckOutDate != nil {
		hb.CheckOutDate = input.CheckOutDate
	}
	if input.NumberOfRooms != nil {
		hb.NumberOfRooms = input.NumberOfRooms
	}
	if input.Plan != nil {
		hb.Plan = input.Plan
	}
	if input.Cost != nil {
		hb.Cost = *input.Cost
	}
	if input.Status != nil {
		hb.Status = *input.Status
	}

	if err := s.bookingRepo.UpdateHotelBooking(hb); err != nil {
		return nil, fmt.Errorf("failed to update hotel booking: %w", err)
	}
	return hb, nil
}

// DeleteHotelBooking removes a hotel sub-booking
func (s *bookingService) DeleteHotelBooking(agencyID, bookingID, id uint) error {
	if _, err := s.bookingRepo.GetByID(agencyID, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get booking: %w", err)
	}
	if _, err := s.bookingRepo.GetHotelBooking(bookingID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get hotel booking: %w", err)
	}
	if err := s.bookingRepo.DeleteHotelBooking(bookingID, id); err != nil {
		return fmt.Errorf("failed to delete hotel booking: %w", err)
	}
	return nil
}
