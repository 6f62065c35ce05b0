package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
)

// AgencyRepository defines the interface for agency data operations
type AgencyRepository interface {
	Create(agency *models.Agency) error
	GetByID(id uint) (*models.Agency, error)
	GetByContactEmail(email string) (*models.Agency, error)
	List(search string, page, limit int) ([]*models.Agency, int64, error)
	Update(tx *gorm.DB, id uint, attrs map[string]interface{}) error
	Delete(tx *gorm.DB, id uint) error
}

// agencyRepository implements AgencyRepository
type agencyRepository struct {
	db *gorm.DB
}

// NewAgencyRepository creates a new instance of AgencyRepository
func NewAgencyRepository(db *gorm.DB) AgencyRepository {
	return &agencyRepository{db: db}
}

// Create inserts a new agency
func (r *agencyRepository) Create(agency *models.Agency) error {
	return r.db.Create(agency).Error
}

// GetByID retrieves an agency by ID
func (r *agencyRepository) GetByID(id uint) (*models.Agency, error) {
	var agency models.Agency
	if err := r.db.Where("id = ?", id).First(&agency).Error; err != nil {
		return nil, err
	}
	return &agency, nil
}

// GetByContactEmail retrieves an agency by its contact email
func (r *agencyRepository) GetByContactEmail(email string) (*models.Agency, error) {
	var agency models.Agency
	if err := r.db.Where("LOWER(contact_person_email) = ?", strings.ToLower(email)).First(&agency).Error; err != nil {
		return nil, err
	}
	return &agency, nil
}

// List retrieves agencies with pagination and optional substring search on
// business name or contact person
func (r *agencyRepository) List(search string, page, limit int) ([]*models.Agency, int64, error) {
	var agencies []*models.Agency
	var total int64

	query := r.db.Model(&models.Agency{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(business_name) LIKE ? OR LOWER(contact_person_name) LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("business_name ASC").Offset(offset).Limit(limit).Find(&agencies).Error; err != nil {
		return nil, 0, err
	}
	return agencies, total, nil
}

// Update applies the given attributes to an agency
func (r *agencyRepository) Update(tx *gorm.DB, id uint, attrs map[string]interface{}) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Model(&models.Agency{}).Where("id = ?", id).Updates(attrs).Error
}

// Delete removes an agency row
func (r *agencyRepository) Delete(tx *gorm.DB, id uint) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Delete(&models.Agency{}, id).Error
}
