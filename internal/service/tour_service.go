package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models/response"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/repository"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/upload"
)

const tourModule = "tours"

// TourUploadFields are the tour's attachment field names
var TourUploadFields = []string{"attachment"}

// TourInput carries tour scalar fields; nil pointers are left unchanged on
// update
type TourInput struct {
	TourTitle         *string
	Destination       *string
	NumberOfDays      *int
	NumberOfTravelers *int
	PricePerPerson    *decimal.Decimal
	Status            *string
	Notes             *string
}

// TourService defines the interface for tour business operations
type TourService interface {
	CreateTour(agencyID uint, input *TourInput, changes map[string]upload.FieldChange) (*response.TourResponse, []string, error)
	GetTour(agencyID, id uint) (*response.TourResponse, error)
	ListTours(agencyID uint, search, status string, page, limit int) ([]*response.TourResponse, int64, error)
	UpdateTour(agencyID, id uint, input *TourInput, changes map[string]upload.FieldChange) (*response.TourResponse, []string, error)
	DeleteTour(agencyID, id uint) ([]string, error)
}

// tourService implements TourService
type tourService struct {
	tourRepo repository.TourRepository
	uploads  *upload.Manager
	db       *gorm.DB
}

// NewTourService creates a new instance of TourService
func NewTourService(tourRepo repository.TourRepository, uploads *upload.Manager, db *gorm.DB) TourService {
	return &tourService{tourRepo: tourRepo, uploads: uploads, db: db}
}

// CreateTour creates a tour with an optional itinerary attachment
func (s *tourService) CreateTour(agencyID uint, input *TourInput, changes map[string]upload.FieldChange) (*response.TourResponse, []string, error) {
	if input.TourTitle == nil || *input.TourTitle == "" {
		return nil, nil, fmt.Errorf("tour title is required")
	}

	plan := s.uploads.Reconcile(tourModule, upload.AttachmentSet{
		Files: map[string]*string{"attachment": nil},
	}, changes)

	tour := &models.Tour{
		AgencyID:           agencyID,
		TourTitle:          *input.TourTitle,
		Destination:        input.Destination,
		NumberOfDays:       input.NumberOfDays,
		NumberOfTravelers:  input.NumberOfTravelers,
		Notes:              input.Notes,
		StorageID:          plan.StorageID,
		AttachmentFilename: plan.Filenames["attachment"],
	}
	if input.PricePerPerson != nil {
		tour.PricePerPerson = *input.PricePerPerson
	}
	if input.Status != nil {
		tour.Status = *input.Status
	}

	if err := s.tourRepo.Create(tour); err != nil {
		return nil, nil, fmt.Errorf("failed to create tour: %w", err)
	}

	var warnings []string
	if plan.HasFileChanges() {
		warnings = s.uploads.Apply(&plan)
	}
	return s.toResponse(tour), warnings, nil
}

// GetTour retrieves one tour
func (s *tourService) GetTour(agencyID, id uint) (*response.TourResponse, error) {
	tour, err := s.tourRepo.GetByID(agencyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tour: %w", err)
	}
	return s.toResponse(tour), nil
}

// ListTours retrieves tours with pagination, search and status filter
func (s *tourService) ListTours(agencyID uint, search, status string, page, limit int) ([]*response.TourResponse, int64, error) {
	tours, total, err := s.tourRepo.List(agencyID, search, status, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tours: %w", err)
	}
	out := make([]*response.TourResponse, 0, len(tours))
	for _, tr := range tours {
		out = append(out, s.toResponse(tr))
	}
	return out, total, nil
}

// UpdateTour applies scalar changes and reconciles the attachment
func (s *tourService) UpdateTour(agencyID, id uint, input *TourInput, changes map[string]upload.FieldChange) (*response.TourResponse, []string, error) {
	tour, err := s.tourRepo.GetByID(agencyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get tour: %w", err)
	}

	plan := s.uploads.Reconcile(tourModule, upload.AttachmentSet{
		StorageID: tour.StorageID,
		Files:     map[string]*string{"attachment": tour.AttachmentFilename},
	}, changes)

	attrs := map[string]interface{}{}
	if input.TourTitle != nil {
		attrs["tour_title"] = *input.TourTitle
	}
	if input.Destination != nil {
		attrs["destination"] = *input.Destination
	}
	if input.NumberOfDays != nil {
		attrs["number_of_days"] = *input.NumberOfDays
	}
	if input.NumberOfTravelers != nil {
		attrs["number_of_travelers"] = *input.NumberOfTravelers
	}
	if input.PricePerPerson != nil {
		attrs["price_per_person"] = *input.PricePerPerson
	}
	if input.Status != nil {
		attrs["status"] = *input.Status
	}
	if input.Notes != nil {
		attrs["notes"] = *input.Notes
	}
	if plan.HasFileChanges() {
		attrs["storage_id"] = plan.StorageID
		attrs["attachment_filename"] = plan.Filenames["attachment"]
	}

	if len(attrs) > 0 {
		err = s.db.Transaction(func(tx *gorm.DB) error {
			return s.tourRepo.Update(tx, id, attrs)
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to update tour: %w", err)
		}
	}

	var warnings []string
	if plan.HasFileChanges() {
		warnings = s.uploads.Apply(&plan)
	}

	fresh, err := s.tourRepo.GetByID(agencyID, id)
	if err != nil {
		return nil, warnings, fmt.Errorf("failed to reload tour: %w", err)
	}
	return s.toResponse(fresh), warnings, nil
}

// DeleteTour removes the tour row and then its attachment directory
func (s *tourService) DeleteTour(agencyID, id uint) ([]string, error) {
	tour, err := s.tourRepo.GetByID(agencyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tour: %w", err)
	}

	if err := s.tourRepo.Delete(nil, agencyID, id); err != nil {
		return nil, fmt.Errorf("failed to delete tour: %w", err)
	}

	warnings := s.uploads.RemoveEntityFiles(tourModule, tour.StorageID, TourUploadFields...)
	return warnings, nil
}

func (s *tourService) toResponse(t *models.Tour) *response.TourResponse {
	return &response.TourResponse{
		ID:                t.ID,
		TourTitle:         t.TourTitle,
		Destination:       t.Destination,
		NumberOfDays:      t.NumberOfDays,
		NumberOfTravelers: t.NumberOfTravelers,
		PricePerPerson:    t.PricePerPerson,
		Status:            t.Status,
		Notes:             t.Notes,
		AttachmentURL:     s.uploads.PublicURL(tourModule, "attachment", t.StorageID, t.AttachmentFilename),
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}
