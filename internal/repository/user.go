package repository

import (
	"time"

	"podcastflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByOrganizationID retrieves users for an organization with pagination
func (r *UserRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := r.db.Model(&models.User{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).Order("full_name").Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// GetActiveByRoles retrieves active users in an organization holding any of the roles
func (r *UserRepository) GetActiveByRoles(orgID uuid.UUID, roles []models.UserRole) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("organization_id = ? AND role IN ? AND is_active = ?", orgID, roles, true).
		Order("email").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// RecordLogin stamps the user's last login time
func (r *UserRepository) RecordLogin(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("last_login_at", at).Error
}

// Delete deletes a user
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}
