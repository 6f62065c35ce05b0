package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
)

// BranchRepository defines the interface for branch data operations
type BranchRepository interface {
	Create(branch *models.Branch) error
	GetByID(agencyID, id uint) (*models.Branch, error)
	List(agencyID uint, search string, page, limit int) ([]*models.Branch, int64, error)
	Update(branch *models.Branch) error
	Delete(agencyID, id uint) error
}

// branchRepository implements BranchRepository
type branchRepository struct {
	db *gorm.DB
}

// NewBranchRepository creates a new instance of BranchRepository
func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &branchRepository{db: db}
}

// Create inserts a new branch
func (r *branchRepository) Create(branch *models.Branch) error {
	return r.db.Create(branch).Error
}

// GetByID retrieves a branch scoped to an agency
func (r *branchRepository) GetByID(agencyID, id uint) (*models.Branch, error) {
	var branch models.Branch
	if err := r.db.Where("id = ? AND agency_id = ?", id, agencyID).First(&branch).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

// List retrieves an agency's branches with pagination and optional search
func (r *branchRepository) List(agencyID uint, search string, page, limit int) ([]*models.Branch, int64, error) {
	var branches []*models.Branch
	var total int64

	query := r.db.Model(&models.Branch{}).Where("agency_id = ?", agencyID)
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(branch_name) LIKE ?", like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("branch_name ASC").Offset(offset).Limit(limit).Find(&branches).Error; err != nil {
		return nil, 0, err
	}
	return branches, total, nil
}

// Update saves branch changes
func (r *branchRepository) Update(branch *models.Branch) error {
	return r.db.Save(branch).Error
}

// Delete removes a branch scoped to an agency
func (r *branchRepository) Delete(agencyID, id uint) error {
	return r.db.Where("agency_id = ?", agencyID).Delete(&models.Branch{}, id).Error
}
