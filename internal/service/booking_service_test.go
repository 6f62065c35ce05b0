package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/repository"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/sequence"
)

func newTestBookingService(t *testing.T) (BookingService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Booking{},
		&models.VehicleBooking{},
		&models.HotelBooking{},
		&models.DocumentSequence{},
	))

	// fixed clock inside fiscal year 2025-26
	clock := func() time.Time { return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC) }
	svc := NewBookingService(repository.NewBookingRepository(db), sequence.NewGeneratorWithClock(clock), db)
	return svc, db
}

func TestCreateBookingAssignsSequentialNumbers(t *testing.T) {
	svc, _ := newTestBookingService(t)

	first, err := svc.CreateBooking(1, 10, &BookingInput{ClientID: 5})
	require.NoError(t, err)
	assert.Equal(t, "2025-26/001", first.BookingNumber)

	second, err := svc.CreateBooking(1, 10, &BookingInput{ClientID: 5})
	require.NoError(t, err)
	assert.Equal(t, "2025-26/002", second.BookingNumber)

	// each agency counts independently
	other, err := svc.CreateBooking(2, 10, &BookingInput{ClientID: 5})
	require.NoError(t, err)
	assert.Equal(t, "2025-26/001", other.BookingNumber)
}

func TestCreateBookingRequiresClient(t *testing.T) {
	svc, _ := newTestBookingService(t)

	_, err := svc.CreateBooking(1, 10, &BookingInput{})
	assert.Error(t, err)
}

func TestGetBookingScopedToAgency(t *testing.T) {
	svc, _ := newTestBookingService(t)

	created, err := svc.CreateBooking(1, 10, &BookingInput{ClientID: 5})
	require.NoError(t, err)

	got, err := svc.GetBooking(1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.BookingNumber, got.BookingNumber)

	_, err = svc.GetBooking(2, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateBookingKeepsNumber(t *testing.T) {
	svc, _ := newTestBookingService(t)

	created, err := svc.CreateBooking(1, 10, &BookingInput{ClientID: 5})
	require.NoError(t, err)

	cost := decimal.NewFromInt(45000)
	status := "confirmed"
	updated, err := svc.UpdateBooking(1, created.ID, &BookingInput{TotalCost: &cost, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, created.BookingNumber, updated.BookingNumber)
	assert.True(t, cost.Equal(updated.TotalCost))
	assert.Equal(t, "confirmed", updated.Status)
}

func TestVehicleBookingGetsVoucherNumber(t *testing.T) {
	svc, _ := newTestBookingService(t)

	booking, err := svc.CreateBooking(1, 10, &BookingInput{ClientID: 5})
	require.NoError(t, err)

	vehicleType := "tempo traveller"
	vb, err := svc.CreateVehicleBooking(1, booking.ID, &VehicleBookingInput{VehicleType: &vehicleType})
	require.NoError(t, err)
	assert.Equal(t, "2025-26/001", vb.HireVoucherNumber)

	vb2, err := svc.CreateVehicleBooking(1, booking.ID, &VehicleBookingInput{VehicleType: &vehicleType})
	require.NoError(t, err)
	assert.Equal(t, "2025-26/002", vb2.HireVoucherNumber)

	// voucher series is separate from the booking series
	next, err := svc.CreateBooking(1, 10, &BookingInput{ClientID: 5})
	require.NoError(t, err)
	assert.Equal(t, "2025-26/002", next.BookingNumber)
}

func TestVehicleBookingUnderForeignAgencyBooking(t *testing.T) {
	svc, _ := newTestBookingService(t)

	booking, err := svc.CreateBooking(1, 10, &BookingInput{ClientID: 5})
	require.NoError(t, err)

	_, err = svc.CreateVehicleBooking(2, booking.ID, &VehicleBookingInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHotelBookingLifecycle(t *testing.T) {
	svc, _ := newTestBookingService(t)

	booking, err := svc.CreateBooking(1, 10, &BookingInput{ClientID: 5})
	require.NoError(t, err)

	rooms := 3
	hb, err := svc.CreateHotelBooking(1, booking.ID, &HotelBookingInput{HotelName: "Hotel Sagar", NumberOfRooms: &rooms})
	require.NoError(t, err)
	assert.Equal(t, "Hotel Sagar", hb.HotelName)

	_, err = svc.CreateHotelBooking(1, booking.ID, &HotelBookingInput{})
	assert.Error(t, err)

	plan := "MAP"
	updated, err := svc.UpdateHotelBooking(1, booking.ID, hb.ID, &HotelBookingInput{Plan: &plan})
	require.NoError(t, err)
	require.NotNil(t, updated.Plan)
	assert.Equal(t, "MAP", *updated.Plan)

	require.NoError(t, svc.DeleteHotelBooking(1, booking.ID, hb.ID))
	err = svc.DeleteHotelBooking(1, booking.ID, hb.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteBookingScopedToAgency(t *testing.T) {
	svc, db := newTestBookingService(t)

	created, err := svc.CreateBooking(1, 10, &BookingInput{ClientID: 5})
	require.NoError(t, err)

	err = svc.DeleteBooking(2, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.DeleteBooking(1, created.ID))
	err = db.First(&models.Booking{}, created.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
