package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/config"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/repository"
)

// ErrInvalidCredentials is returned when the email or password does not
// match an active user
var ErrInvalidCredentials = errors.New("invalid email or password")

// Claims is the JWT payload issued on login
type Claims struct {
	UserID   uint   `json:"user_id"`
	AgencyID *uint  `json:"agency_id,omitempty"`
	BranchID *uint  `json:"branch_id,omitempty"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// LoginResult bundles the issued token with the authenticated user
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(email, password string) (*LoginResult, error)
	ParseToken(tokenString string) (*Claims, error)
}

// authService implements AuthService
type authService struct {
	userRepo repository.UserRepository
	cfg      *config.JWTConfig
	now      func() time.Time
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(userRepo repository.UserRepository, cfg *config.JWTConfig) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg, now: time.Now}
}

// Login verifies credentials and issues a signed JWT
func (s *authService) Login(email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.Active != nil && !*user.Active {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(time.Duration(s.cfg.ExpiryHours) * time.Hour)
	claims := &Claims{
		UserID:   user.ID,
		AgencyID: user.AgencyID,
		BranchID: user.BranchID,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(user.ID, issuedAt); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// ParseToken validates a JWT and returns its claims
func (s *authService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
