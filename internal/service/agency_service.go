package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models/response"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/repository"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/upload"
)

const agencyModule = "agencies"

// AgencyUploadFields are the agency's attachment field names
var AgencyUploadFields = []string{"logo", "letterhead"}

// AgencyInput carries agency scalar fields; nil pointers are left unchanged
// on update
type AgencyInput struct {
	BusinessName       *string
	AddressLine1       *string
	AddressLine2       *string
	StateID            *uint
	CityID             *uint
	Pincode            *string
	ContactPersonName  *string
	ContactPersonEmail *string
	ContactPersonPhone *string
	GSTIN              *string
}

// AgencyService defines the interface for agency business operations
type AgencyService interface {
	CreateAgency(input *AgencyInput, changes map[string]upload.FieldChange) (*response.AgencyResponse, []string, error)
	GetAgency(id uint) (*response.AgencyResponse, error)
	ListAgencies(search string, page, limit int) ([]*response.AgencyResponse, int64, error)
	UpdateAgency(id uint, input *AgencyInput, changes map[string]upload.FieldChange) (*response.AgencyResponse, []string, error)
	DeleteAgency(id uint) ([]string, error)
}

// agencyService implements AgencyService
type agencyService struct {
	agencyRepo repository.AgencyRepository
	uploads    *upload.Manager
	db         *gorm.DB
}

// NewAgencyService creates a new instance of AgencyService
func NewAgencyService(agencyRepo repository.AgencyRepository, uploads *upload.Manager, db *gorm.DB) AgencyService {
	return &agencyService{
		agencyRepo: agencyRepo,
		uploads:    uploads,
		db:         db,
	}
}

// CreateAgency creates an agency and places any uploaded logo/letterhead
// into permanent storage after the row is committed
func (s *agencyService) CreateAgency(input *AgencyInput, changes map[string]upload.FieldChange) (*response.AgencyResponse, []string, error) {
	if input.BusinessName == nil || *input.BusinessName == "" {
		return nil, nil, fmt.Errorf("business name is required")
	}
	if input.ContactPersonEmail == nil || *input.ContactPersonEmail == "" {
		return nil, nil, fmt.Errorf("contact person email is required")
	}

	if _, err := s.agencyRepo.GetByContactEmail(*input.ContactPersonEmail); err == nil {
		return nil, nil, &ConflictError{Field: "contact_person_email", Message: "an agency with this contact email already exists"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, fmt.Errorf("failed to check contact email: %w", err)
	}

	plan := s.uploads.Reconcile(agencyModule, upload.AttachmentSet{
		Files: map[string]*string{"logo": nil, "letterhead": nil},
	}, changes)

	agency := &models.Agency{
		BusinessName:       *input.BusinessName,
		AddressLine1:       input.AddressLine1,
		AddressLine2:       input.AddressLine2,
		StateID:            input.StateID,
		CityID:             input.CityID,
		Pincode:            input.Pincode,
		ContactPersonEmail: *input.ContactPersonEmail,
		ContactPersonPhone: input.ContactPersonPhone,
		GSTIN:              input.GSTIN,
		StorageID:          plan.StorageID,
		LogoFilename:       plan.Filenames["logo"],
		LetterheadFilename: plan.Filenames["letterhead"],
	}
	if input.ContactPersonName != nil {
		agency.ContactPersonName = *input.ContactPersonName
	}

	if err := s.agencyRepo.Create(agency); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, &ConflictError{Field: "contact_person_email", Message: "an agency with this contact email already exists"}
		}
		return nil, nil, fmt.Errorf("failed to create agency: %w", err)
	}

	// filesystem placement runs only after the row committed
	var warnings []string
	if plan.HasFileChanges() {
		warnings = s.uploads.Apply(&plan)
	}
	return s.toResponse(agency), warnings, nil
}

// GetAgency retrieves one agency
func (s *agencyService) GetAgency(id uint) (*response.AgencyResponse, error) {
	agency, err := s.agencyRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agency: %w", err)
	}
	return s.toResponse(agency), nil
}

// ListAgencies retrieves agencies with pagination and search
func (s *agencyService) ListAgencies(search string, page, limit int) ([]*response.AgencyResponse, int64, error) {
	agencies, total, err := s.agencyRepo.List(search, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list agencies: %w", err)
	}
	out := make([]*response.AgencyResponse, 0, len(agencies))
	for _, a := range agencies {
		out = append(out, s.toResponse(a))
	}
	return out, total, nil
}

// UpdateAgency applies scalar changes and reconciles attachment storage.
// File operations run only after the database update commits; their
// failures are reported as warnings, not errors.
func (s *agencyService) UpdateAgency(id uint, input *AgencyInput, changes map[string]upload.FieldChange) (*response.AgencyResponse, []string, error) {
	agency, err := s.agencyRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get agency: %w", err)
	}

	if input.ContactPersonEmail != nil && *input.ContactPersonEmail != agency.ContactPersonEmail {
		other, err := s.agencyRepo.GetByContactEmail(*input.ContactPersonEmail)
		if err == nil && other.ID != id {
			return nil, nil, &ConflictError{Field: "contact_person_email", Message: "an agency with this contact email already exists"}
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("failed to check contact email: %w", err)
		}
	}

	plan := s.uploads.Reconcile(agencyModule, upload.AttachmentSet{
		StorageID: agency.StorageID,
		Files: map[string]*string{
			"logo":       agency.LogoFilename,
			"letterhead": agency.LetterheadFilename,
		},
	}, changes)

	attrs := scalarAttrs(input)
	if plan.HasFileChanges() {
		attrs["storage_id"] = plan.StorageID
		attrs["logo_filename"] = plan.Filenames["logo"]
		attrs["letterhead_filename"] = plan.Filenames["letterhead"]
	}

	if len(attrs) > 0 {
		err = s.db.Transaction(func(tx *gorm.DB) error {
			return s.agencyRepo.Update(tx, id, attrs)
		})
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, nil, &ConflictError{Field: "contact_person_email", Message: "an agency with this contact email already exists"}
			}
			return nil, nil, fmt.Errorf("failed to update agency: %w", err)
		}
	}

	var warnings []string
	if plan.HasFileChanges() {
		warnings = s.uploads.Apply(&plan)
	}

	fresh, err := s.agencyRepo.GetByID(id)
	if err != nil {
		return nil, warnings, fmt.Errorf("failed to reload agency: %w", err)
	}
	return s.toResponse(fresh), warnings, nil
}

// DeleteAgency removes the agency row and then, best-effort, its attachment
// directories
func (s *agencyService) DeleteAgency(id uint) ([]string, error) {
	agency, err := s.agencyRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agency: %w", err)
	}

	if err := s.agencyRepo.Delete(nil, id); err != nil {
		return nil, fmt.Errorf("failed to delete agency: %w", err)
	}

	warnings := s.uploads.RemoveEntityFiles(agencyModule, agency.StorageID, AgencyUploadFields...)
	return warnings, nil
}

func scalarAttrs(input *AgencyInput) map[string]interface{} {
	attrs := map[string]interface{}{}
	if input.BusinessName != nil {
		attrs["business_name"] = *input.BusinessName
	}
	if input.AddressLine1 != nil {
		attrs["address_line_1"] = *input.AddressLine1
	}
	if input.AddressLine2 != nil {
		attrs["address_line_2"] = *input.AddressLine2
	}
	if input.StateID != nil {
		attrs["state_id"] = *input.StateID
	}
	if input.CityID != nil {
		attrs["city_id"] = *input.CityID
	}
	if input.Pincode != nil {
		attrs["pincode"] = *input.Pincode
	}
	if input.ContactPersonName != nil {
		attrs["contact_person_name"] = *input.ContactPersonName
	}
	if input.ContactPersonEmail != nil {
		attrs["contact_person_email"] = *input.ContactPersonEmail
	}
	if input.ContactPersonPhone != nil {
		attrs["contact_person_phone"] = *input.ContactPersonPhone
	}
	if input.GSTIN != nil {
		attrs["gstin"] = *input.GSTIN
	}
	return attrs
}

func (s *agencyService) toResponse(a *models.Agency) *response.AgencyResponse {
	return &response.AgencyResponse{
		ID:                 a.ID,
		BusinessName:       a.BusinessName,
		AddressLine1:       a.AddressLine1,
		AddressLine2:       a.AddressLine2,
		StateID:            a.StateID,
		CityID:             a.CityID,
		Pincode:            a.Pincode,
		ContactPersonName:  a.ContactPersonName,
		ContactPersonEmail: a.ContactPersonEmail,
		ContactPersonPhone: a.ContactPersonPhone,
		GSTIN:              a.GSTIN,
		LogoURL:            s.uploads.PublicURL(agencyModule, "logo", a.StorageID, a.LogoFilename),
		LetterheadURL:      s.uploads.PublicURL(agencyModule, "letterhead", a.StorageID, a.LetterheadFilename),
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}
