package service

import (
	"errors"
	"fmt"
	"time"

	"podcastflow-backend/internal/database/models"
	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/logger"
	"podcastflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles business logic for platform users
type UserService struct {
	repo       repository.UserRepositoryInterface
	orgRepo    repository.OrganizationRepositoryInterface
	dispatcher NotificationDispatcherInterface
	validator  *validator.Validate
	log        *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, dispatcher NotificationDispatcherInterface, validator *validator.Validate, log *logger.Logger) *UserService {
	return &UserService{
		repo:       repo,
		orgRepo:    orgRepo,
		dispatcher: dispatcher,
		validator:  validator,
		log:        log.WithField("component", "UserService"),
	}
}

// InviteUserRequest represents the request to invite a user into an organization
type InviteUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=200"`
	FullName string `json:"full_name" validate:"required,max=200"`
	Role     string `json:"role" validate:"required,oneof=master admin sales producer talent client"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UpdateUserRequest represents the request to update a user
type UpdateUserRequest struct {
	FullName string `json:"full_name" validate:"required,max=200"`
	Role     string `json:"role" validate:"required,oneof=master admin sales producer talent client"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"is_active"`
	LastLoginAt    string    `json:"last_login_at,omitempty"`
	CreatedAt      string    `json:"created_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Invite creates a user in an organization and dispatches the invitation email
func (s *UserService) Invite(orgID uuid.UUID, req *InviteUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.orgRepo.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		OrganizationID: orgID,
		Email:          req.Email,
		FullName:       req.FullName,
		PasswordHash:   string(hash),
		Role:           models.UserRole(req.Role),
		IsActive:       true,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Invitation delivery is best effort; the account exists either way.
	if err := s.dispatcher.Dispatch(orgID, models.EventUserInvited, map[string]any{
		"recipient":         req.Email,
		"full_name":         req.FullName,
		"organization_name": org.Name,
		"role":              req.Role,
	}); err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).Warn("failed to dispatch invitation email")
	}

	return s.toResponse(user), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return s.toResponse(user), nil
}

// GetByOrganization retrieves an organization's users with pagination
func (s *UserService) GetByOrganization(orgID uuid.UUID, page, pageSize int) (*UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, total, err := s.repo.GetByOrganizationID(orgID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = *s.toResponse(&u)
	}
	return &UserListResponse{Users: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates a user's profile fields
func (s *UserService) Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.FullName = req.FullName
	user.Role = models.UserRole(req.Role)
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.toResponse(user), nil
}

// Delete deletes a user
func (s *UserService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *UserService) toResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:             user.ID,
		OrganizationID: user.OrganizationID,
		Email:          user.Email,
		FullName:       user.FullName,
		Role:           string(user.Role),
		IsActive:       user.IsActive,
		CreatedAt:      user.CreatedAt.Format(time.RFC3339),
	}
	if user.LastLoginAt != nil {
		resp.LastLoginAt = user.LastLoginAt.Format(time.RFC3339)
	}
	return resp
}
