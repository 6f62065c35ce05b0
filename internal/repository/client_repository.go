package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
)

// ClientRepository defines the interface for client and travel document data
// operations
type ClientRepository interface {
	Create(client *models.Client) error
	GetByID(agencyID, id uint) (*models.Client, error)
	List(agencyID uint, search string, page, limit int) ([]*models.Client, int64, error)
	Update(client *models.Client) error
	Delete(agencyID, id uint) error

	CreateTravelDocument(doc *models.TravelDocument) error
	GetTravelDocument(clientID, id uint) (*models.TravelDocument, error)
	ListTravelDocuments(clientID uint) ([]*models.TravelDocument, error)
	UpdateTravelDocument(tx *gorm.DB, id uint, attrs map[string]interface{}) error
	DeleteTravelDocument(tx *gorm.DB, clientID, id uint) error
}

// clientRepository implements ClientRepository
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new instance of ClientRepository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

// Create inserts a new client
func (r *clientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

// GetByID retrieves a client scoped to an agency, with travel documents
func (r *clientRepository) GetByID(agencyID, id uint) (*models.Client, error) {
	var client models.Client
	err := r.db.Preload("TravelDocuments").
		Where("id = ? AND agency_id = ?", id, agencyID).
		First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// List retrieves an agency's clients with pagination and optional search on
// name, email, mobile or passport number
func (r *clientRepository) List(agencyID uint, search string, page, limit int) ([]*models.Client, int64, error) {
	var clients []*models.Client
	var total int64

	query := r.db.Model(&models.Client{}).Where("agency_id = ?", agencyID)
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR mobile LIKE ? OR LOWER(passport_number) LIKE ?",
			like, like, like, like,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&clients).Error; err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

// Update saves client changes
func (r *clientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

// Delete removes a client scoped to an agency
func (r *clientRepository) Delete(agencyID, id uint) error {
	return r.db.Where("agency_id = ?", agencyID).Delete(&models.Client{}, id).Error
}

// CreateTravelDocument inserts a new travel document
func (r *clientRepository) CreateTravelDocument(doc *models.TravelDocument) error {
	return r.db.Create(doc).Error
}

// GetTravelDocument retrieves a travel document scoped to a client
func (r *clientRepository) GetTravelDocument(clientID, id uint) (*models.TravelDocument, error) {
	var doc models.TravelDocument
	if err := r.db.Where("id = ? AND client_id = ?", id, clientID).First(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListTravelDocuments retrieves all travel documents for a client
func (r *clientRepository) ListTravelDocuments(clientID uint) ([]*models.TravelDocument, error) {
	var docs []*models.TravelDocument
	if err := r.db.Where("client_id = ?", clientID).Order("id ASC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// UpdateTravelDocument applies the given attributes to a travel document
func (r *clientRepository) UpdateTravelDocument(tx *gorm.DB, id uint, attrs map[string]interface{}) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Model(&models.TravelDocument{}).Where("id = ?", id).Updates(attrs).Error
}

// DeleteTravelDocument removes a travel document scoped to a client
func (r *clientRepository) DeleteTravelDocument(tx *gorm.DB, clientID, id uint) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Where("client_id = ?", clientID).Delete(&models.TravelDocument{}, id).Error
}
