package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/repository"
)

// Roles recognized by the authorization middleware
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleBranchUser = "branch_user"
)

// UserInput carries staff user fields; nil pointers are left unchanged on
// update
type UserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
	BranchID *uint
	Active   *bool
}

// UserService defines the interface for staff user business operations
type UserService interface {
	CreateUser(agencyID *uint, input *UserInput) (*models.User, error)
	GetUser(agencyID uint, id uint) (*models.User, error)
	ListUsers(agencyID uint, search string, page, limit int) ([]*models.User, int64, error)
	UpdateUser(agencyID uint, id uint, input *UserInput) (*models.User, error)
	DeleteUser(agencyID uint, id uint) error
}

// userService implements UserService
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func validRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleAdmin, RoleBranchUser:
		return true
	}
	return false
}

// CreateUser creates a staff user with a bcrypt password hash
func (s *userService) CreateUser(agencyID *uint, input *UserInput) (*models.User, error) {
	if input.Name == nil || *input.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if input.Email == nil || *input.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if input.Password == nil || len(*input.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}
	role := RoleBranchUser
	if input.Role != nil {
		role = *input.Role
	}
	if !validRole(role) {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	if existing, err := s.userRepo.GetByEmail(*input.Email); err == nil && existing != nil {
		return nil, &ConflictError{Field: "email", Message: "a user with this email already exists"}
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check user email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		AgencyID:     agencyID,
		BranchID:     input.BranchID,
		Name:         *input.Name,
		Email:        *input.Email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       input.Active,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Field: "email", Message: "a user with this email already exists"}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUser retrieves one staff user scoped to an agency
func (s *userService) GetUser(agencyID uint, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.AgencyID == nil || *user.AgencyID != agencyID {
		return nil, ErrNotFound
	}
	return user, nil
}

// ListUsers retrieves staff users with pagination and search
func (s *userService) ListUsers(agencyID uint, search string, page, limit int) ([]*models.User, int64, error) {
	users, total, err := s.userRepo.List(agencyID, search, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// UpdateUser applies changes to a staff user; a non-nil Password is
// re-hashed
func (s *userService) UpdateUser(agencyID uint, id uint, input *UserInput) (*models.User, error) {
	user, err := s.GetUser(agencyID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil && *input.Email != user.Email {
		if existing, err := s.userRepo.GetByEmail(*input.Email); err == nil && existing != nil {
			return nil, &ConflictError{Field: "email", Message: "a user with this email already exists"}
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check user email: %w", err)
		}
		user.Email = *input.Email
	}
	if input.Password != nil {
		if len(*input.Password) < 6 {
			return nil, fmt.Errorf("password must be at least 6 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if input.Role != nil {
		if !validRole(*input.Role) {
			return nil, fmt.Errorf("invalid role: %s", *input.Role)
		}
		user.Role = *input.Role
	}
	if input.BranchID != nil {
		user.BranchID = input.BranchID
	}
	if input.Active != nil {
		user.Active = input.Active
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Field: "email", Message: "a user with this email already exists"}
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes a staff user
func (s *userService) DeleteUser(agencyID uint, id uint) error {
	if _, err := s.GetUser(agencyID, id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(agencyID, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
