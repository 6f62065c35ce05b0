package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
)

// GroupBookingRepository defines the interface for group booking data
// operations
type GroupBookingRepository interface {
	Create(tx *gorm.DB, gb *models.GroupBooking) error
	GetByID(agencyID, id uint) (*models.GroupBooking, error)
	List(agencyID uint, search, status string, page, limit int) ([]*models.GroupBooking, int64, error)
	Update(gb *models.GroupBooking) error
	Delete(agencyID, id uint) error
}

// groupBookingRepository implements GroupBookingRepository
type groupBookingRepository struct {
	db *gorm.DB
}

// NewGroupBookingRepository creates a new instance of GroupBookingRepository
func NewGroupBookingRepository(db *gorm.DB) GroupBookingRepository {
	return &groupBookingRepository{db: db}
}

// Create inserts a new group booking inside the caller's transaction
func (r *groupBookingRepository) Create(tx *gorm.DB, gb *models.GroupBooking) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(gb).Error
}

// GetByID retrieves a group booking scoped to an agency
func (r *groupBookingRepository) GetByID(agencyID, id uint) (*models.GroupBooking, error) {
	var gb models.GroupBooking
	if err := r.db.Where("id = ? AND agency_id = ?", id, agencyID).First(&gb).Error; err != nil {
		return nil, err
	}
	return &gb, nil
}

// List retrieves group bookings with pagination, search on group name or
// number, and an optional status filter
func (r *groupBookingRepository) List(agencyID uint, search, status string, page, limit int) ([]*models.GroupBooking, int64, error) {
	var gbs []*models.GroupBooking
	var total int64

	query := r.db.Model(&models.GroupBooking{}).Where("agency_id = ?", agencyID)
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(group_name) LIKE ? OR LOWER(group_booking_number) LIKE ?", like, like)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("booking_date DESC, id DESC").Offset(offset).Limit(limit).Find(&gbs).Error
	if err != nil {
		return nil, 0, err
	}
	return gbs, total, nil
}

// Update saves group booking changes
func (r *groupBookingRepository) Update(gb *models.GroupBooking) error {
	return r.db.Save(gb).Error
}

// Delete removes a group booking scoped to an agency
func (r *groupBookingRepository) Delete(agencyID, id uint) error {
	return r.db.Where("agency_id = ?", agencyID).Delete(&models.GroupBooking{}, id).Error
}
