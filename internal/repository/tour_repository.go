package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
)

// TourRepository defines the interface for tour data operations
type TourRepository interface {
	Create(tour *models.Tour) error
	GetByID(agencyID, id uint) (*models.Tour, error)
	List(agencyID uint, search, status string, page, limit int) ([]*models.Tour, int64, error)
	Update(tx *gorm.DB, id uint, attrs map[string]interface{}) error
	Delete(tx *gorm.DB, agencyID, id uint) error
}

// tourRepository implements TourRepository
type tourRepository struct {
	db *gorm.DB
}

// NewTourRepository creates a new instance of TourRepository
func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepository{db: db}
}

// Create inserts a new tour
func (r *tourRepository) Create(tour *models.Tour) error {
	return r.db.Create(tour).Error
}

// GetByID retrieves a tour scoped to an agency
func (r *tourRepository) GetByID(agencyID, id uint) (*models.Tour, error) {
	var tour models.Tour
	if err := r.db.Where("id = ? AND agency_id = ?", id, agencyID).First(&tour).Error; err != nil {
		return nil, err
	}
	return &tour, nil
}

// List retrieves an agency's tours with pagination, substring search on
// title or destination, and an optional status filter
func (r *tourRepository) List(agencyID uint, search, status string, page, limit int) ([]*models.Tour, int64, error) {
	var tours []*models.Tour
	var total int64

	query := r.db.Model(&models.Tour{}).Where("agency_id = ?", agencyID)
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(tour_title) LIKE ? OR LOWER(destination) LIKE ?", like, like)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("tour_title ASC").Offset(offset).Limit(limit).Find(&tours).Error; err != nil {
		return nil, 0, err
	}
	return tours, total, nil
}

// Update applies the given attributes to a tour
func (r *tourRepository) Update(tx *gorm.DB, id uint, attrs map[string]interface{}) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Model(&models.Tour{}).Where("id = ?", id).Updates(attrs).Error
}

// Delete removes a tour scoped to an agency
func (r *tourRepository) Delete(tx *gorm.DB, agencyID, id uint) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Where("agency_id = ?", agencyID).Delete(&models.Tour{}, id).Error
}
