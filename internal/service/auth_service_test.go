package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/config"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/repository"
)

func newTestAuthService(t *testing.T) (AuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	cfg := &config.JWTConfig{Secret: "test-secret", ExpiryHours: 24}
	return NewAuthService(repository.NewUserRepository(db), cfg), db
}

func seedUser(t *testing.T, db *gorm.DB, email, password string, active bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	agencyID := uint(7)
	user := &models.User{
		AgencyID:     &agencyID,
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         RoleAdmin,
		Active:       &active,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, db := newTestAuthService(t)
	user := seedUser(t, db, "admin@example.com", "secret123", true)

	result, err := svc.Login("admin@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, user.ID, result.User.ID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), result.ExpiresAt, time.Minute)

	claims, err := svc.ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	require.NotNil(t, claims.AgencyID)
	assert.Equal(t, uint(7), *claims.AgencyID)
	assert.Equal(t, RoleAdmin, claims.Role)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.NotNil(t, reloaded.LastLoginAt)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, db := newTestAuthService(t)
	seedUser(t, db, "admin@example.com", "secret123", true)

	_, err := svc.Login("admin@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	svc, db := newTestAuthService(t)
	seedUser(t, db, "parked@example.com", "secret123", false)

	_, err := svc.Login("parked@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	svc, db := newTestAuthService(t)
	seedUser(t, db, "admin@example.com", "secret123", true)

	result, err := svc.Login("admin@example.com", "secret123")
	require.NoError(t, err)

	other := NewAuthService(nil, &config.JWTConfig{Secret: "different-secret", ExpiryHours: 24})
	_, err = other.ParseToken(result.Token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc, _ := newTestAuthService(t)
	_, err := svc.ParseToken("not.a.token")
	assert.Error(t, err)
}
