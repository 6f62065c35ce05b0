package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/repository"
)

// BranchInput carries branch fields; nil pointers are left unchanged on
// update
type BranchInput struct {
	BranchName    *string
	Address       *string
	StateID       *uint
	CityID        *uint
	Pincode       *string
	ContactName   *string
	ContactEmail  *string
	ContactMobile *string
}

// BranchService defines the interface for branch business operations
type BranchService interface {
	CreateBranch(agencyID uint, input *BranchInput) (*models.Branch, error)
	GetBranch(agencyID, id uint) (*models.Branch, error)
	ListBranches(agencyID uint, search string, page, limit int) ([]*models.Branch, int64, error)
	UpdateBranch(agencyID, id uint, input *BranchInput) (*models.Branch, error)
	DeleteBranch(agencyID, id uint) error
}

// branchService implements BranchService
type branchService struct {
	branchRepo repository.BranchRepository
}

// NewBranchService creates a new instance of BranchService
func NewBranchService(branchRepo repository.BranchRepository) BranchService {
	return &branchService{branchRepo: branchRepo}
}

// CreateBranch creates a branch under an agency
func (s *branchService) CreateBranch(agencyID uint, input *BranchInput) (*models.Branch, error) {
	if input.BranchName == nil || *input.BranchName == "" {
		return nil, fmt.Errorf("branch name is required")
	}

	branch := &models.Branch{
		AgencyID:      agencyID,
		BranchName:    *input.BranchName,
		Address:       input.Address,
		StateID:       input.StateID,
		CityID:        input.CityID,
		Pincode:       input.Pincode,
		ContactName:   input.ContactName,
		ContactEmail:  input.ContactEmail,
		ContactMobile: input.ContactMobile,
	}
	if err := s.branchRepo.Create(branch); err != nil {
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}
	return branch, nil
}

// GetBranch retrieves one branch
func (s *branchService) GetBranch(agencyID, id uint) (*models.Branch, error) {
	branch, err := s.branchRepo.GetByID(agencyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}
	return branch, nil
}

// ListBranches retrieves branches with pagination and search
func (s *branchService) ListBranches(agencyID uint, search string, page, limit int) ([]*models.Branch, int64, error) {
	branches, total, err := s.branchRepo.List(agencyID, search, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list branches: %w", err)
	}
	return branches, total, nil
}

// UpdateBranch applies changes to a branch
func (s *branchService) UpdateBranch(agencyID, id uint, input *BranchInput) (*models.Branch, error) {
	branch, err := s.branchRepo.GetByID(agencyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}

	if input.BranchName != nil {
		branch.BranchName = *input.BranchName
	}
	if input.Address != nil {
		branch.Address = input.Address
	}
	if input.StateID != nil {
		branch.StateID = input.StateID
	}
	if input.CityID != nil {
		branch.CityID = input.CityID
	}
	if input.Pincode != nil {
		branch.Pincode = input.Pincode
	}
	if input.ContactName != nil {
		branch.ContactName = input.ContactName
	}
	if input.ContactEmail != nil {
		branch.ContactEmail = input.ContactEmail
	}
	if input.ContactMobile != nil {
		branch.ContactMobile = input.ContactMobile
	}

	if err := s.branchRepo.Update(branch); err != nil {
		return nil, fmt.Errorf("failed to update branch: %w", err)
	}
	return branch, nil
}

// DeleteBranch removes a branch
func (s *branchService) DeleteBranch(agencyID, id uint) error {
	if _, err := s.branchRepo.GetByID(agencyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get branch: %w", err)
	}
	if err := s.branchRepo.Delete(agencyID, id); err != nil {
		return fmt.Errorf("failed to delete branch: %w", err)
	}
	return nil
}
