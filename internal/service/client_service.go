package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/repository"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/upload"
)

const travelDocumentModule = "travel-documents"

// TravelDocumentUploadFields are the travel document's attachment field
// names
var TravelDocumentUploadFields = []string{"scan"}

// ClientInput carries client scalar fields; nil pointers are left unchanged
// on update
type ClientInput struct {
	Name           *string
	Gender         *string
	Email          *string
	Mobile         *string
	DateOfBirth    *time.Time
	MaritalStatus  *string
	AddressLine1   *string
	StateID        *uint
	CityID         *uint
	Pincode        *string
	PassportNumber *string
	PanNumber      *string
}

// TravelDocumentInput carries travel document scalar fields
type TravelDocumentInput struct {
	DocumentType   *string
	DocumentNumber *string
	IssueDate      *time.Time
	ExpiryDate     *time.Time
}

// ClientService defines the interface for client business operations,
// including travel documents and their scans
type ClientService interface {
	CreateClient(agencyID uint, input *ClientInput) (*models.Client, error)
	GetClient(agencyID, id uint) (*models.Client, error)
	ListClients(agencyID uint, search string, page, limit int) ([]*models.Client, int64, error)
	UpdateClient(agencyID, id uint, input *ClientInput) (*models.Client, error)
	DeleteClient(agencyID, id uint) ([]string, error)

	CreateTravelDocument(agencyID, clientID uint, input *TravelDocumentInput, changes map[string]upload.FieldChange) (*models.TravelDocument, []string, error)
	UpdateTravelDocument(agencyID, clientID, id uint, input *TravelDocumentInput, changes map[string]upload.FieldChange) (*models.TravelDocument, []string, error)
	DeleteTravelDocument(agencyID, clientID, id uint) ([]string, error)
	ScanURL(doc *models.TravelDocument) *string
}

// clientService implements ClientService
type clientService struct {
	clientRepo repository.ClientRepository
	uploads    *upload.Manager
	db         *gorm.DB
}

// NewClientService creates a new instance of ClientService
func NewClientService(clientRepo repository.ClientRepository, uploads *upload.Manager, db *gorm.DB) ClientService {
	return &clientService{clientRepo: clientRepo, uploads: uploads, db: db}
}

// CreateClient creates a client
func (s *clientService) CreateClient(agencyID uint, input *ClientInput) (*models.Client, error) {
	if input.Name == nil || *input.Name == "" {
		return nil, fmt.Errorf("client name is required")
	}

	client := &models.Client{
		AgencyID:       agencyID,
		Name:           *input.Name,
		Gender:         input.Gender,
		Email:          input.Email,
		Mobile:         input.Mobile,
		DateOfBirth:    input.DateOfBirth,
		MaritalStatus:  input.MaritalStatus,
		AddressLine1:   input.AddressLine1,
		StateID:        input.StateID,
		CityID:         input.CityID,
		Pincode:        input.Pincode,
		PassportNumber: input.PassportNumber,
		PanNumber:      input.PanNumber,
	}
	if err := s.clientRepo.Create(client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

// GetClient retrieves one client with travel documents
func (s *clientService) GetClient(agencyID, id uint) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(agencyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

// ListClients retrieves clients with pagination and search
func (s *clientService) ListClients(agencyID uint, search string, page, limit int) ([]*models.Client, int64, error) {
	clients, total, err := s.clientRepo.List(agencyID, search, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, total, nil
}

// UpdateClient applies scalar changes to a client
func (s *clientService) UpdateClient(agencyID, id uint, input *ClientInput) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(agencyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Gender != nil {
		client.Gender = input.Gender
	}
	if input.Email != nil {
		client.Email = input.Email
	}
	if input.Mobile != nil {
		client.Mobile = input.Mobile
	}
	if input.DateOfBirth != nil {
		client.DateOfBirth = input.DateOfBirth
	}
	if input.MaritalStatus != nil {
		client.MaritalStatus = input.MaritalStatus
	}
	if input.AddressLine1 != nil {
		client.AddressLine1 = input.AddressLine1
	}
	if input.StateID != nil {
		client.StateID = input.StateID
	}
	if input.CityID != nil {
		client.CityID = input.CityID
	}
	if input.Pincode != nil {
		client.Pincode = input.Pincode
	}
	if input.PassportNumber != nil {
		client.PassportNumber = input.PassportNumber
	}
	if input.PanNumber != nil {
		client.PanNumber = input.PanNumber
	}

	if err := s.clientRepo.Update(client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

// DeleteClient removes a client and all of its travel document scans
func (s *clientService) DeleteClient(agencyID, id uint) ([]string, error) {
	client, err := s.clientRepo.GetByID(agencyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	if err := s.clientRepo.Delete(agencyID, id); err != nil {
		return nil, fmt.Errorf("failed to delete client: %w", err)
	}

	var warnings []string
	for i := range client.TravelDocuments {
		doc := &client.TravelDocuments[i]
		warnings = append(warnings, s.uploads.RemoveEntityFiles(travelDocumentModule, doc.StorageID, TravelDocumentUploadFields...)...)
	}
	return warnings, nil
}

// CreateTravelDocument creates a travel document with an optional scan
func (s *clientService) CreateTravelDocument(agencyID, clientID uint, input *TravelDocumentInput, changes map[string]upload.FieldChange) (*models.TravelDocument, []string, error) {
	if _, err := s.clientRepo.GetByID(agencyID, clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get client: %w", err)
	}
	if input.DocumentType == nil || *input.DocumentType == "" {
		return nil, nil, fmt.Errorf("document type is required")
	}

	plan := s.uploads.Reconcile(travelDocumentModule, upload.AttachmentSet{
		Files: map[string]*string{"scan": nil},
	}, changes)

	doc := &models.TravelDocument{
		ClientID:       clientID,
		DocumentType:   *input.DocumentType,
		DocumentNumber: input.DocumentNumber,
		IssueDate:      input.IssueDate,
		ExpiryDate:     input.ExpiryDate,
		StorageID:      plan.StorageID,
		ScanFilename:   plan.Filenames["scan"],
	}
	if err := s.clientRepo.CreateTravelDocument(doc); err != nil {
		return nil, nil, fmt.Errorf("failed to create travel document: %w", err)
	}

	var warnings []string
	if plan.HasFileChanges() {
		warnings = s.uploads.Apply(&plan)
	}
	return doc, warnings, nil
}

// UpdateTravelDocument applies scalar changes and reconciles the scan
func (s *clientService) UpdateTravelDocument(agencyID, clientID, id uint, input *TravelDocumentInput, changes map[string]upload.FieldChange) (*models.TravelDocument, []string, error) {
	if _, err := s.clientRepo.GetByID(agencyID, clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get client: %w", err)
	}
	doc, err := s.clientRepo.GetTravelDocument(clientID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get travel document: %w", err)
	}

	plan := s.uploads.Reconcile(travelDocumentModule, upload.AttachmentSet{
		StorageID: doc.StorageID,
		Files:     map[string]*string{"scan": doc.ScanFilename},
	}, changes)

	attrs := map[string]interface{}{}
	if input.DocumentType != nil {
		attrs["document_type"] = *input.DocumentType
	}
	if input.DocumentNumber != nil {
		attrs["document_number"] = *input.DocumentNumber
	}
	if input.IssueDate != nil {
		attrs["issue_date"] = *input.IssueDate
	}
	if input.ExpiryDate != nil {
		attrs["expiry_date"] = *input.ExpiryDate
	}
	if plan.HasFileChanges() {
		attrs["storage_id"] = plan.StorageID
		attrs["scan_filename"] = plan.Filenames["scan"]
	}

	if len(attrs) > 0 {
		err = s.db.Transaction(func(tx *gorm.DB) error {
			return s.clientRepo.UpdateTravelDocument(tx, id, attrs)
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to update travel document: %w", err)
		}
	}

	var warnings []string
	if plan.HasFileChanges() {
		warnings = s.uploads.Apply(&plan)
	}

	fresh, err := s.clientRepo.GetTravelDocument(clientID, id)
	if err != nil {
		return nil, warnings, fmt.Errorf("failed to reload travel document: %w", err)
	}
	return fresh, warnings, nil
}

// DeleteTravelDocument removes a travel document and its scan directory
func (s *clientService) DeleteTravelDocument(agencyID, clientID, id uint) ([]string, error) {
	if _, err := s.clientRepo.GetByID(agencyID, clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	doc, err := s.clientRepo.GetTravelDocument(clientID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get travel document: %w", err)
	}

	if err := s.clientRepo.DeleteTravelDocument(nil, clientID, id); err != nil {
		return nil, fmt.Errorf("failed to delete travel document: %w", err)
	}

	warnings := s.uploads.RemoveEntityFiles(travelDocumentModule, doc.StorageID, TravelDocumentUploadFields...)
	return warnings, nil
}

// ScanURL returns the public URL of a travel document's scan
func (s *clientService) ScanURL(doc *models.TravelDocument) *string {
	return s.uploads.PublicURL(travelDocumentModule, "scan", doc.StorageID, doc.ScanFilename)
}
