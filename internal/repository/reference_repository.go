package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
)

// ReferenceRepository defines the interface for reference data (countries,
// states, cities, banks, airlines)
type ReferenceRepository interface {
	CreateCountry(c *models.Country) error
	ListCountries(search string, page, limit int) ([]*models.Country, int64, error)
	UpdateCountry(c *models.Country) error
	DeleteCountry(id uint) error
	GetCountry(id uint) (*models.Country, error)

	CreateState(s *models.State) error
	ListStates(countryID *uint, search string, page, limit int) ([]*models.State, int64, error)
	UpdateState(s *models.State) error
	DeleteState(id uint) error
	GetState(id uint) (*models.State, error)

	CreateCity(c *models.City) error
	ListCities(stateID *uint, search string, page, limit int) ([]*models.City, int64, error)
	UpdateCity(c *models.City) error
	DeleteCity(id uint) error
	GetCity(id uint) (*models.City, error)

	CreateBank(b *models.Bank) error
	ListBanks(search string, page, limit int) ([]*models.Bank, int64, error)
	UpdateBank(b *models.Bank) error
	DeleteBank(id uint) error
	GetBank(id uint) (*models.Bank, error)

	CreateAirline(a *models.Airline) error
	ListAirlines(search string, page, limit int) ([]*models.Airline, int64, error)
	UpdateAirline(a *models.Airline) error
	DeleteAirline(id uint) error
	GetAirline(id uint) (*models.Airline, error)
}

// referenceRepository implements ReferenceRepository
type referenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository creates a new instance of ReferenceRepository
func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

func searchByName(query *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return query
	}
	return query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
}

// CreateCountry inserts a new country
func (r *referenceRepository) CreateCountry(c *models.Country) error {
	return r.db.Create(c).Error
}

// ListCountries retrieves countries with pagination and search
func (r *referenceRepository) ListCountries(search string, page, limit int) ([]*models.Country, int64, error) {
	var items []*models.Country
	var total int64
	query := searchByName(r.db.Model(&models.Country{}), search)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("name ASC").Offset((page - 1) * limit).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// UpdateCountry saves country changes
func (r *referenceRepository) UpdateCountry(c *models.Country) error {
	return r.db.Save(c).Error
}

// DeleteCountry removes a country
func (r *referenceRepository) DeleteCountry(id uint) error {
	return r.db.Delete(&models.Country{}, id).Error
}

// GetCountry retrieves a country by ID
func (r *referenceRepository) GetCountry(id uint) (*models.Country, error) {
	var c models.Country
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateState inserts a new state
func (r *referenceRepository) CreateState(s *models.State) error {
	return r.db.Create(s).Error
}

// ListStates retrieves states with pagination, search and country filter
func (r *referenceRepository) ListStates(countryID *uint, search string, page, limit int) ([]*models.State, int64, error) {
	var items []*models.State
	var total int64
	query := searchByName(r.db.Model(&models.State{}), search)
	if countryID != nil {
		query = query.Where("country_id = ?", *countryID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("name ASC").Offset((page - 1) * limit).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// UpdateState saves state changes
func (r *referenceRepository) UpdateState(s *models.State) error {
	return r.db.Save(s).Error
}

// DeleteState removes a state
func (r *referenceRepository) DeleteState(id uint) error {
	return r.db.Delete(&models.State{}, id).Error
}

// GetState retrieves a state by ID
func (r *referenceRepository) GetState(id uint) (*models.State, error) {
	var s models.State
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateCity inserts a new city
func (r *referenceRepository) CreateCity(c *models.City) error {
	return r.db.Create(c).Error
}

// ListCities retrieves cities with pagination, search and state filter
func (r *referenceRepository) ListCities(stateID *uint, search string, page, limit int) ([]*models.City, int64, error) {
	var items []*models.City
	var total int64
	query := searchByName(r.db.Model(&models.City{}), search)
	if stateID != nil {
		query = query.Where("state_id = ?", *stateID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("name ASC").Offset((page - 1) * limit).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// UpdateCity saves city changes
func (r *referenceRepository) UpdateCity(c *models.City) error {
	return r.db.Save(c).Error
}

// DeleteCity removes a city
func (r *referenceRepository) DeleteCity(id uint) error {
	return r.db.Delete(&models.City{}, id).Error
}

// GetCity retrieves a city by ID
func (r *referenceRepository) GetCity(id uint) (*models.City, error) {
	var c models.City
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateBank inserts a new bank
func (r *referenceRepository) CreateBank(b *models.Bank) error {
	return r.db.Create(b).Error
}

// ListBanks retrieves banks with pagination and search
func (r *referenceRepository) ListBanks(search string, page, limit int) ([]*models.Bank, int64, error) {
	var items []*models.Bank
	var total int64
	query := searchByName(r.db.Model(&models.Bank{}), search)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("name ASC").Offset((page - 1) * limit).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// UpdateBank saves bank changes
func (r *referenceRepository) UpdateBank(b *models.Bank) error {
	return r.db.Save(b).Error
}

// DeleteBank removes a bank
func (r *referenceRepository) DeleteBank(id uint) error {
	return r.db.Delete(&models.Bank{}, id).Error
}

// GetBank retrieves a bank by ID
func (r *referenceRepository) GetBank(id uint) (*models.Bank, error) {
	var b models.Bank
	if err := r.db.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateAirline inserts a new airline
func (r *referenceRepository) CreateAirline(a *models.Airline) error {
	return r.db.Create(a).Error
}

// ListAirlines retrieves airlines with pagination and search
func (r *referenceRepository) ListAirlines(search string, page, limit int) ([]*models.Airline, int64, error) {
	var items []*models.Airline
	var total int64
	query := searchByName(r.db.Model(&models.Airline{}), search)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("name ASC").Offset((page - 1) * limit).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// UpdateAirline saves airline changes
func (r *referenceRepository) UpdateAirline(a *models.Airline) error {
	return r.db.Save(a).Error
}

// DeleteAirline removes an airline
func (r *referenceRepository) DeleteAirline(id uint) error {
	return r.db.Delete(&models.Airline{}, id).Error
}

// GetAirline retrieves an airline by ID
func (r *referenceRepository) GetAirline(id uint) (*models.Airline, error) {
	var a models.Airline
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
