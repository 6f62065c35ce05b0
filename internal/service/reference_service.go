package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/repository"
)

// ReferenceService defines the interface for shared lookup data
// (countries, states, cities, banks, airlines)
type ReferenceService interface {
	CreateCountry(name string) (*models.Country, error)
	ListCountries(search string, page, limit int) ([]*models.Country, int64, error)
	UpdateCountry(id uint, name string) (*models.Country, error)
	DeleteCountry(id uint) error

	CreateState(countryID uint, name string) (*models.State, error)
	ListStates(countryID *uint, search string, page, limit int) ([]*models.State, int64, error)
	UpdateState(id uint, name string) (*models.State, error)
	DeleteState(id uint) error

	CreateCity(stateID uint, name string) (*models.City, error)
	ListCities(stateID *uint, search string, page, limit int) ([]*models.City, int64, error)
	UpdateCity(id uint, name string) (*models.City, error)
	DeleteCity(id uint) error

	CreateBank(name string) (*models.Bank, error)
	ListBanks(search string, page, limit int) ([]*models.Bank, int64, error)
	UpdateBank(id uint, name string) (*models.Bank, error)
	DeleteBank(id uint) error

	CreateAirline(name string, code *string) (*models.Airline, error)
	ListAirlines(search string, page, limit int) ([]*models.Airline, int64, error)
	UpdateAirline(id uint, name string, code *string) (*models.Airline, error)
	DeleteAirline(id uint) error
}

// referenceService implements ReferenceService
type referenceService struct {
	refRepo repository.ReferenceRepository
}

// NewReferenceService creates a new instance of ReferenceService
func NewReferenceService(refRepo repository.ReferenceRepository) ReferenceService {
	return &referenceService{refRepo: refRepo}
}

func mapRefError(entity string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ConflictError{Field: "name", Message: fmt.Sprintf("a %s with this name already exists", entity)}
	}
	return err
}

func (s *referenceService) CreateCountry(name string) (*models.Country, error) {
	if name == "" {
		return nil, fmt.Errorf("country name is required")
	}
	c := &models.Country{Name: name}
	if err := s.refRepo.CreateCountry(c); err != nil {
		return nil, mapRefError("country", err)
	}
	return c, nil
}

func (s *referenceService) ListCountries(search string, page, limit int) ([]*models.Country, int64, error) {
	return s.refRepo.ListCountries(search, page, limit)
}

func (s *referenceService) UpdateCountry(id uint, name string) (*models.Country, error) {
	c, err := s.refRepo.GetCountry(id)
	if err != nil {
		return nil, mapRefError("country", err)
	}
	c.Name = name
	if err := s.refRepo.UpdateCountry(c); err != nil {
		return nil, mapRefError("country", err)
	}
	return c, nil
}

func (s *referenceService) DeleteCountry(id uint) error {
	if _, err := s.refRepo.GetCountry(id); err != nil {
		return mapRefError("country", err)
	}
	return s.refRepo.DeleteCountry(id)
}

func (s *referenceService) CreateState(countryID uint, name string) (*models.State, error) {
	if name == "" {
		return nil, fmt.Errorf("state name is required")
	}
	if _, err := s.refRepo.GetCountry(countryID); err != nil {
		return nil, mapRefError("country", err)
	}
	st := &models.State{CountryID: countryID, Name: name}
	if err := s.refRepo.CreateState(st); err != nil {
		return nil, mapRefError("state", err)
	}
	return st, nil
}

func (s *referenceService) ListStates(countryID *uint, search string, page, limit int) ([]*models.State, int64, error) {
	return s.refRepo.ListStates(countryID, search, page, limit)
}

func (s *referenceService) UpdateState(id uint, name string) (*models.State, error) {
	st, err := s.refRepo.GetState(id)
	if err != nil {
		return nil, mapRefError("state", err)
	}
	st.Name = name
	if err := s.refRepo.UpdateState(st); err != nil {
		return nil, mapRefError("state", err)
	}
	return st, nil
}

func (s *referenceService) DeleteState(id uint) error {
	if _, err := s.refRepo.GetState(id); err != nil {
		return mapRefError("state", err)
	}
	return s.refRepo.DeleteState(id)
}

func (s *referenceService) CreateCity(stateID uint, name string) (*models.City, error) {
	if name == "" {
		return nil, fmt.Errorf("city name is required")
	}
	if _, err := s.refRepo.GetState(stateID); err != nil {
		return nil, mapRefError("state", err)
	}
	c := &models.City{StateID: stateID, Name: name}
	if err := s.refRepo.CreateCity(c); err != nil {
		return nil, mapRefError("city", err)
	}
	return c, nil
}

func (s *referenceService) ListCities(stateID *uint, search string, page, limit int) ([]*models.City, int64, error) {
	return s.refRepo.ListCities(stateID, search, page, limit)
}

func (s *referenceService) UpdateCity(id uint, name string) (*models.City, error) {
	c, err := s.refRepo.GetCity(id)
	if err != nil {
		return nil, mapRefError("city", err)
	}
	c.Name = name
	if err := s.refRepo.UpdateCity(c); err != nil {
		return nil, mapRefError("city", err)
	}
	return c, nil
}

func (s *referenceService) DeleteCity(id uint) error {
	if _, err := s.refRepo.GetCity(id); err != nil {
		return mapRefError("city", err)
	}
	return s.refRepo.DeleteCity(id)
}

func (s *referenceService) CreateBank(name string) (*models.Bank, error) {
	if name == "" {
		return nil, fmt.Errorf("bank name is required")
	}
	b := &models.Bank{Name: name}
	if err := s.refRepo.CreateBank(b); err != nil {
		return nil, mapRefError("bank", err)
	}
	return b, nil
}

func (s *referenceService) ListBanks(search string, page, limit int) ([]*models.Bank, int64, error) {
	return s.refRepo.ListBanks(search, page, limit)
}

func (s *referenceService) UpdateBank(id uint, name string) (*models.Bank, error) {
	b, err := s.refRepo.GetBank(id)
	if err != nil {
		return nil, mapRefError("bank", err)
	}
	b.Name = name
	if err := s.refRepo.UpdateBank(b); err != nil {
		return nil, mapRefError("bank", err)
	}
	return b, nil
}

func (s *referenceService) DeleteBank(id uint) error {
	if _, err := s.refRepo.GetBank(id); err != nil {
		return mapRefError("bank", err)
	}
	return s.refRepo.DeleteBank(id)
}

func (s *referenceService) CreateAirline(name string, code *string) (*models.Airline, error) {
	if name == "" {
		return nil, fmt.Errorf("airline name is required")
	}
	a := &models.Airline{Name: name, Code: code}
	if err := s.refRepo.CreateAirline(a); err != nil {
		return nil, mapRefError("airline", err)
	}
	return a, nil
}

func (s *referenceService) ListAirlines(search string, page, limit int) ([]*models.Airline, int64, error) {
	return s.refRepo.ListAirlines(search, page, limit)
}

func (s *referenceService) UpdateAirline(id uint, name string, code *string) (*models.Airline, error) {
	a, err := s.refRepo.GetAirline(id)
	if err != nil {
		return nil, mapRefError("airline", err)
	}
	a.Name = name
	if code != nil {
		a.Code = code
	}
	if err := s.refRepo.UpdateAirline(a); err != nil {
		return nil, mapRefError("airline", err)
	}
	return a, nil
}

func (s *referenceService) DeleteAirline(id uint) error {
	if _, err := s.refRepo.GetAirline(id); err != nil {
		return mapRefError("airline", err)
	}
	return s.refRepo.DeleteAirline(id)
}
