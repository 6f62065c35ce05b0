package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/config"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
)

// Database wraps the gorm connection
type Database struct {
	DB *gorm.DB
}

// NewDatabase connects to PostgreSQL using the given configuration
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Database{DB: db}, nil
}

// AutoMigrate runs schema migration for all models
func (d *Database) AutoMigrate() error {
	return d.DB.AutoMigrate(
		&models.Agency{},
		&models.Branch{},
		&models.User{},
		&models.Country{},
		&models.State{},
		&models.City{},
		&models.Bank{},
		&models.Airline{},
		&models.Client{},
		&models.TravelDocument{},
		&models.Tour{},
		&models.Booking{},
		&models.VehicleBooking{},
		&models.HotelBooking{},
		&models.GroupBooking{},
		&models.BookingReceipt{},
		&models.Invoice{},
		&models.DocumentSequence{},
	)
}

// Close closes the underlying sql connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
