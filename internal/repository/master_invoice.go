package repository

import (
	"fmt"
	"time"

	"podcastflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MasterInvoiceRepository handles database operations for platform billing invoices
type MasterInvoiceRepository struct {
	db *gorm.DB
}

// NewMasterInvoiceRepository creates a new master invoice repository
func NewMasterInvoiceRepository(db *gorm.DB) *MasterInvoiceRepository {
	return &MasterInvoiceRepository{db: db}
}

// Create creates a new master invoice
func (r *MasterInvoiceRepository) Create(inv *models.MasterInvoice) error {
	return r.db.Create(inv).Error
}

// GetByID retrieves a master invoice by ID
func (r *MasterInvoiceRepository) GetByID(id uuid.UUID) (*models.MasterInvoice, error) {
	var inv models.MasterInvoice
	err := r.db.First(&inv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetByOrganizationID retrieves master invoices for an organization with pagination
func (r *MasterInvoiceRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.MasterInvoice, int64, error) {
	var invs []models.MasterInvoice
	var total int64

	if err := r.db.Model(&models.MasterInvoice{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).Order("period_start DESC").Find(&invs).Error
	if err != nil {
		return nil, 0, err
	}
	return invs, total, nil
}

// ExistsForPeriod reports whether an organization already has an invoice covering the period start
func (r *MasterInvoiceRepository) ExistsForPeriod(orgID uuid.UUID, periodStart time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.MasterInvoice{}).
		Where("organization_id = ? AND period_start = ?", orgID, periodStart).
		Count(&count).Error
	return count > 0, err
}

// NextNumber allocates the next platform invoice number for a year
func (r *MasterInvoiceRepository) NextNumber(year int) (string, error) {
	var count int64
	prefix := fmt.Sprintf("PF-%d-", year)
	err := r.db.Model(&models.MasterInvoice{}).
		Where("number LIKE ?", prefix+"%").
		Count(&count).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%05d", prefix, count+1), nil
}

// Update updates a master invoice
func (r *MasterInvoiceRepository) Update(inv *models.MasterInvoice) error {
	return r.db.Save(inv).Error
}
