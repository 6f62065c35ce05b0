package sequence

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.DocumentSequence{}))
	return db
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}

func TestFiscalYearLabel(t *testing.T) {
	tests := []struct {
		date  time.Time
		label string
	}{
		{time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), "2024-25"},
		{time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC), "2024-25"},
		{time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), "2025-26"},
		{time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), "2025-26"},
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "2023-24"},
		{time.Date(1999, 6, 1, 0, 0, 0, 0, time.UTC), "1999-00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.label, FiscalYearLabel(tt.date), "label for %s", tt.date)
	}
}

func TestFormatNumberPadding(t *testing.T) {
	assert.Equal(t, "2025-26/001", FormatNumber("2025-26", 1))
	assert.Equal(t, "2025-26/042", FormatNumber("2025-26", 42))
	assert.Equal(t, "2025-26/999", FormatNumber("2025-26", 999))
	// no upper bound: the suffix simply widens
	assert.Equal(t, "2025-26/1000", FormatNumber("2025-26", 1000))
}

func TestNextIsGaplessAndMonotonic(t *testing.T) {
	db := newTestDB(t)
	gen := NewGeneratorWithClock(fixedClock(2025, time.June, 10))

	for i := 1; i <= 25; i++ {
		var number string
		err := db.Transaction(func(tx *gorm.DB) error {
			var txErr error
			number, txErr = gen.Next(tx, 1, KindBooking)
			return txErr
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("2025-26/%03d", i), number)
	}
}

func TestNextIsolatesAgencies(t *testing.T) {
	db := newTestDB(t)
	gen := NewGeneratorWithClock(fixedClock(2025, time.June, 10))

	a1, err := gen.Next(db, 1, KindBooking)
	require.NoError(t, err)
	a2, err := gen.Next(db, 1, KindBooking)
	require.NoError(t, err)
	b1, err := gen.Next(db, 2, KindBooking)
	require.NoError(t, err)

	assert.Equal(t, "2025-26/001", a1)
	assert.Equal(t, "2025-26/002", a2)
	assert.Equal(t, "2025-26/001", b1)
}

func TestNextIsolatesKinds(t *testing.T) {
	db := newTestDB(t)
	gen := NewGeneratorWithClock(fixedClock(2025, time.June, 10))

	b, err := gen.Next(db, 1, KindBooking)
	require.NoError(t, err)
	r, err := gen.Next(db, 1, KindBookingReceipt)
	require.NoError(t, err)
	i, err := gen.Next(db, 1, KindInvoice)
	require.NoError(t, err)

	assert.Equal(t, "2025-26/001", b)
	assert.Equal(t, "2025-26/001", r)
	assert.Equal(t, "2025-26/001", i)
}

func TestNextRestartsEachFiscalYear(t *testing.T) {
	db := newTestDB(t)

	gen := NewGeneratorWithClock(fixedClock(2025, time.March, 20))
	n1, err := gen.Next(db, 1, KindInvoice)
	require.NoError(t, err)
	assert.Equal(t, "2024-25/001", n1)

	// April rolls the fiscal year and restarts the series
	gen = NewGeneratorWithClock(fixedClock(2025, time.April, 2))
	n2, err := gen.Next(db, 1, KindInvoice)
	require.NoError(t, err)
	assert.Equal(t, "2025-26/001", n2)
}

func TestNextRolledBackNumberIsReissued(t *testing.T) {
	db := newTestDB(t)
	gen := NewGeneratorWithClock(fixedClock(2025, time.June, 10))

	err := db.Transaction(func(tx *gorm.DB) error {
		number, txErr := gen.Next(tx, 1, KindBooking)
		require.NoError(t, txErr)
		assert.Equal(t, "2025-26/001", number)
		return fmt.Errorf("force rollback")
	})
	require.Error(t, err)

	// the aborted transaction returned its number to the series
	number, err := gen.Next(db, 1, KindBooking)
	require.NoError(t, err)
	assert.Equal(t, "2025-26/001", number)
}

func TestNextRejectsZeroAgency(t *testing.T) {
	db := newTestDB(t)
	gen := NewGenerator()

	_, err := gen.Next(db, 0, KindBooking)
	assert.Error(t, err)
}
