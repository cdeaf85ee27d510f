package auth

import (
	"errors"
	"fmt"
	"time"

	"podcastflow-backend/internal/config"
	"podcastflow-backend/internal/database/models"
	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims is the JWT payload carried by every authenticated request
type Claims struct {
	UserID         uuid.UUID `json:"uid"`
	OrganizationID uuid.UUID `json:"org"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and verifies access tokens
type Service struct {
	users  repository.UserRepositoryInterface
	secret []byte
	ttl    time.Duration
}

// NewService creates a new auth service
func NewService(users repository.UserRepositoryInterface, cfg *config.Config) *Service {
	return &Service{
		users:  users,
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.JWTTTL(),
	}
}

// Login verifies credentials and issues a signed token
func (s *Service) Login(email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsActive {
		return "", nil, apperrors.ErrUserInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.issue(user)
	if err != nil {
		return "", nil, err
	}

	if err := s.users.RecordLogin(user.ID, time.Now()); err != nil {
		return "", nil, fmt.Errorf("failed to record login: %w", err)
	}
	return token, user, nil
}

// Verify parses and validates a token, returning its claims
func (s *Service) Verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

func (s *Service) issue(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:         user.ID,
		OrganizationID: user.OrganizationID,
		Email:          user.Email,
		Role:           string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
