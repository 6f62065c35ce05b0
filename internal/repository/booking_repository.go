package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models/response"
)

// BookingFilters narrows booking list queries
type BookingFilters struct {
	Search   string
	Status   string
	TourID   *uint
	ClientID *uint
	FromDate *time.Time
	ToDate   *time.Time
}

// BookingRepository defines the interface for booking data operations,
// including vehicle and hotel sub-bookings
type BookingRepository interface {
	Create(tx *gorm.DB, booking *models.Booking) error
	GetByID(agencyID, id uint) (*models.Booking, error)
	List(agencyID uint, filters BookingFilters, page, limit int) ([]*models.Booking, int64, error)
	Update(booking *models.Booking) error
	Delete(agencyID, id uint) error
	Statistics(agencyID uint) (*response.BookingStatisticsResponse, error)
	ListForExport(agencyID uint, filters BookingFilters) ([]*response.BookingExportRow, error)

	CreateVehicleBooking(tx *gorm.DB, vb *models.VehicleBooking) error
	GetVehicleBooking(bookingID, id uint) (*models.VehicleBooking, error)
	ListVehicleBookings(bookingID uint) ([]*models.VehicleBooking, error)
	UpdateVehicleBooking(vb *models.VehicleBooking) error
	DeleteVehicleBooking(bookingID, id uint) error

	CreateHotelBooking(hb *models.HotelBooking) error
	GetHotelBooking(bookingID, id uint) (*models.HotelBooking, error)
	ListHotelBookings(bookingID uint) ([]*models.HotelBooking, error)
	UpdateHotelBooking(hb *models.HotelBooking) error
	DeleteHotelBooking(bookingID, id uint) error
}

// bookingRepository implements BookingRepository
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new instance of BookingRepository
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create inserts a new booking inside the caller's transaction
func (r *bookingRepository) Create(tx *gorm.DB, booking *models.Booking) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(booking).Error
}

// GetByID retrieves a booking scoped to an agency, with its sub-bookings
func (r *bookingRepository) GetByID(agencyID, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.Preload("VehicleBookings").Preload("HotelBookings").
		Where("id = ? AND agency_id = ?", id, agencyID).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// List retrieves bookings with pagination and multi-field filtering
func (r *bookingRepository) List(agencyID uint, filters BookingFilters, page, limit int) ([]*models.Booking, int64, error) {
	var bookings []*models.Booking
	var total int64

	query := r.db.Model(&models.Booking{}).Where("agency_id = ?", agencyID)
	if filters.Search != "" {
		like := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where("LOWER(booking_number) LIKE ?", like)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.TourID != nil {
		query = query.Where("tour_id = ?", *filters.TourID)
	}
	if filters.ClientID != nil {
		query = query.Where("client_id = ?", *filters.ClientID)
	}
	if filters.FromDate != nil {
		query = query.Where("booking_date >= ?", *filters.FromDate)
	}
	if filters.ToDate != nil {
		query = query.Where("booking_date <= ?", *filters.ToDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("booking_date DESC, id DESC").Offset(offset).Limit(limit).Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// Update saves booking changes
func (r *bookingRepository) Update(booking *models.Booking) error {
	return r.db.Save(booking).Error
}

// Delete removes a booking scoped to an agency
func (r *bookingRepository) Delete(agencyID, id uint) error {
	return r.db.Where("agency_id = ?", agencyID).Delete(&models.Booking{}, id).Error
}

// Statistics aggregates booking counts and amounts by status for an agency
func (r *bookingRepository) Statistics(agencyID uint) (*response.BookingStatisticsResponse, error) {
	var rows []response.BookingStatusCount
	err := r.db.Model(&models.Booking{}).
		Select("status, COUNT(*) as count, COALESCE(SUM(total_cost), 0) as amount").
		Where("agency_id = ?", agencyID).
		Group("status").
		Order("status ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &response.BookingStatisticsResponse{ByStatus: rows}
	for _, row := range rows {
		stats.TotalBookings += row.Count
		stats.TotalAmount = stats.TotalAmount.Add(row.Amount)
	}
	return stats, nil
}

// ListForExport retrieves flattened booking rows joined with client and
// tour names
func (r *bookingRepository) ListForExport(agencyID uint, filters BookingFilters) ([]*response.BookingExportRow, error) {
	var rows []*response.BookingExportRow

	query := r.db.Model(&models.Booking{}).
		Select(`bookings.booking_number, bookings.booking_date, clients.name AS client_name,
			tours.tour_title AS tour_name, bookings.number_of_adults AS adults,
			bookings.number_of_children_5_to_11 AS children, bookings.total_cost, bookings.status`).
		Joins("JOIN clients ON clients.id = bookings.client_id").
		Joins("LEFT JOIN tours ON tours.id = bookings.tour_id").
		Where("bookings.agency_id = ?", agencyID)

	if filters.Status != "" {
		query = query.Where("bookings.status = ?", filters.Status)
	}
	if filters.TourID != nil {
		query = query.Where("bookings.tour_id = ?", *filters.TourID)
	}
	if filters.ClientID != nil {
		query = query.Where("bookings.client_id = ?", *filters.ClientID)
	}
	if filters.FromDate != nil {
		query = query.Where("bookings.booking_date >= ?", *filters.FromDate)
	}
	if filters.ToDate != nil {
		query = query.Where("bookings.booking_date <= ?", *filters.ToDate)
	}

	err := query.Order("bookings.booking_date ASC, bookings.id ASC").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateVehicleBooking inserts a vehicle sub-booking inside the caller's
// transaction
func (r *bookingRepository) CreateVehicleBooking(tx *gorm.DB, vb *models.VehicleBooking) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(vb).Error
}

// GetVehicleBooking retrieves a vehicle sub-booking scoped to its booking
func (r *bookingRepository) GetVehicleBooking(bookingID, id uint) (*models.VehicleBooking, error) {
	var vb models.VehicleBooking
	if err := r.db.Where("id = ? AND booking_id = ?", id, bookingID).First(&vb).Error; err != nil {
		return nil, err
	}
	return &vb, nil
}

// ListVehicleBookings retrieves all vehicle sub-bookings for a booking
func (r *bookingRepository) ListVehicleBookings(bookingID uint) ([]*models.VehicleBooking, error) {
	var vbs []*models.VehicleBooking
	if err := r.db.Where("booking_id = ?", bookingID).Order("id ASC").Find(&vbs).Error; err != nil {
		return nil, err
	}
	return vbs, nil
}

// UpdateVehicleBooking saves vehicle sub-booking changes
func (r *bookingRepository) UpdateVehicleBooking(vb *models.VehicleBooking) error {
	return r.db.Save(vb).Error
}

// DeleteVehicleBooking removes a vehicle sub-booking scoped to its booking
func (r *bookingRepository) DeleteVehicleBooking(bookingID, id uint) error {
	return r.db.Where("booking_id = ?", bookingID).Delete(&models.VehicleBooking{}, id).Error
}

// CreateHotelBooking inserts a hotel sub-booking
func (r *bookingRepository) CreateHotelBooking(hb *models.HotelBooking) error {
	return r.db.Create(hb).Error
}

// GetHotelBooking retrieves a hotel sub-booking scoped to its booking
func (r *bookingRepository) GetHotelBooking(bookingID, id uint) (*models.HotelBooking, error) {
	var hb models.HotelBooking
	if err := r.db.Where("id = ? AND booking_id = ?", id, bookingID).First(&hb).Error; err != nil {
		return nil, err
	}
	return &hb, nil
}

// ListHotelBookings retrieves all hotel sub-bookings for a booking
func (r *bookingRepository) ListHotelBookings(bookingID uint) ([]*models.HotelBooking, error) {
	var hbs []*models.HotelBooking
	if err := r.db.Where("booking_id = ?", bookingID).Order("id ASC").Find(&hbs).Error; err != nil {
		return nil, err
	}
	return hbs, nil
}

// UpdateHotelBooking saves hotel sub-booking changes
func (r *bookingRepository) UpdateHotelBooking(hb *models.HotelBooking) error {
	return r.db.Save(hb).Error
}

// DeleteHotelBooking removes a hotel sub-booking scoped to its booking
func (r *bookingRepository) DeleteHotelBooking(bookingID, id uint) error {
	return r.db.Where("booking_id = ?", bookingID).Delete(&models.HotelBooking{}, id).Error
}
