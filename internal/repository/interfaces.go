package repository

import (
	"context"
	"time"

	"podcastflow-backend/internal/database/models"
	"podcastflow-backend/internal/tenant"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetBySlug(slug string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	GetActive() ([]models.Organization, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
	GetWithUsers(id uuid.UUID) (*models.Organization, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	GetActiveByRoles(orgID uuid.UUID, roles []models.UserRole) ([]models.User, error)
	Update(user *models.User) error
	RecordLogin(id uuid.UUID, at time.Time) error
	Delete(id uuid.UUID) error
}

// EmailQueueRepositoryInterface defines the interface for email queue operations
type EmailQueueRepositoryInterface interface {
	Enqueue(messages ...*models.EmailQueue) error
	GetByID(id uuid.UUID) (*models.EmailQueue, error)
	ClaimDue(limit int) ([]models.EmailQueue, error)
	MarkSent(id uuid.UUID, providerMessageID string) error
	MarkFailed(id uuid.UUID, errMsg string, retryAt time.Time) (bool, error)
	CountByStatus(status models.EmailStatus) (int64, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.EmailQueue, int64, error)
}

// EmailTemplateRepositoryInterface defines the interface for email template operations
type EmailTemplateRepositoryInterface interface {
	Create(tpl *models.EmailTemplate) error
	GetByID(id uuid.UUID) (*models.EmailTemplate, error)
	Lookup(orgID uuid.UUID, key string) (*models.EmailTemplate, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.EmailTemplate, error)
	Update(tpl *models.EmailTemplate) error
	Delete(id uuid.UUID) error
}

// NotificationRepositoryInterface defines the interface for notification delivery records
type NotificationRepositoryInterface interface {
	Create(delivery *models.NotificationDelivery) error
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.NotificationDelivery, int64, error)
}

// MasterInvoiceRepositoryInterface defines the interface for platform billing operations
type MasterInvoiceRepositoryInterface interface {
	Create(inv *models.MasterInvoice) error
	GetByID(id uuid.UUID) (*models.MasterInvoice, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.MasterInvoice, int64, error)
	ExistsForPeriod(orgID uuid.UUID, periodStart time.Time) (bool, error)
	NextNumber(year int) (string, error)
	Update(inv *models.MasterInvoice) error
}

// SyncJobRepositoryInterface defines the interface for sync job operations
type SyncJobRepositoryInterface interface {
	Create(job *models.SyncJob) error
	GetByID(id uuid.UUID) (*models.SyncJob, error)
	GetRunning(orgID uuid.UUID, kind string) (*models.SyncJob, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.SyncJob, int64, error)
	MarkRunning(id uuid.UUID) error
	MarkCompleted(id uuid.UUID, processed, failed int, lastError string) error
}

// AgencyRepositoryInterface defines the interface for tenant agency operations
type AgencyRepositoryInterface interface {
	Create(ctx context.Context, schema string, a *tenant.Agency) (*tenant.Agency, error)
	GetByID(ctx context.Context, schema string, id uuid.UUID) (*tenant.Agency, error)
	GetByName(ctx context.Context, schema, name string) (*tenant.Agency, error)
	Search(ctx context.Context, schema, search string, limit, offset int) ([]tenant.Agency, int64, error)
	CountAdvertisers(ctx context.Context, schema string, agencyID uuid.UUID) (int64, error)
	Update(ctx context.Context, schema string, a *tenant.Agency) (*tenant.Agency, error)
	Delete(ctx context.Context, schema string, id uuid.UUID) error
}

// AdvertiserRepositoryInterface defines the interface for tenant advertiser operations
type AdvertiserRepositoryInterface interface {
	Create(ctx context.Context, schema string, a *tenant.Advertiser) (*tenant.Advertiser, error)
	GetByID(ctx context.Context, schema string, id uuid.UUID) (*tenant.Advertiser, error)
	GetByName(ctx context.Context, schema, name string) (*tenant.Advertiser, error)
	Search(ctx context.Context, schema, search string, limit, offset int) ([]tenant.Advertiser, int64, error)
	GetByAgencyID(ctx context.Context, schema string, agencyID uuid.UUID) ([]tenant.Advertiser, error)
	Update(ctx context.Context, schema string, a *tenant.Advertiser) (*tenant.Advertiser, error)
	Delete(ctx context.Context, schema string, id uuid.UUID) error
}

// ShowRepositoryInterface defines the interface for tenant show operations
type ShowRepositoryInterface interface {
	Create(ctx context.Context, schema string, s *tenant.Show) (*tenant.Show, error)
	GetByID(ctx context.Context, schema string, id uuid.UUID) (*tenant.Show, error)
	GetByName(ctx context.Context, schema, name string) (*tenant.Show, error)
	GetAll(ctx context.Context, schema string, limit, offset int) ([]tenant.Show, int64, error)
	CountOrders(ctx context.Context, schema string, showID uuid.UUID) (int64, error)
	Update(ctx context.Context, schema string, s *tenant.Show) (*tenant.Show, error)
	Delete(ctx context.Context, schema string, id uuid.UUID) error
}

// EpisodeRepositoryInterface defines the interface for tenant episode operations
type EpisodeRepositoryInterface interface {
	Create(ctx context.Context, schema string, e *tenant.Episode) (*tenant.Episode, error)
	GetByID(ctx context.Context, schema string, id uuid.UUID) (*tenant.Episode, error)
	GetByShowID(ctx context.Context, schema string, showID uuid.UUID, limit, offset int) ([]tenant.Episode, int64, error)
	GetByShowAndNumber(ctx context.Context, schema string, showID uuid.UUID, number int) (*tenant.Episode, error)
	GetInDateRange(ctx context.Context, schema string, showID uuid.UUID, from, to time.Time) ([]tenant.Episode, error)
	GetWithVideoIDs(ctx context.Context, schema string) ([]tenant.Episode, error)
	Update(ctx context.Context, schema string, e *tenant.Episode) (*tenant.Episode, error)
	UpdateYouTubeStats(ctx context.Context, schema string, id uuid.UUID, views, likes, comments int64) error
	Delete(ctx context.Context, schema string, id uuid.UUID) error
}

// RateCardRepositoryInterface defines the interface for tenant rate card operations
type RateCardRepositoryInterface interface {
	Create(ctx context.Context, schema string, rc *tenant.RateCard) (*tenant.RateCard, error)
	GetByID(ctx context.Context, schema string, id uuid.UUID) (*tenant.RateCard, error)
	GetByShowID(ctx context.Context, schema string, showID uuid.UUID) ([]tenant.RateCard, error)
	CountOverlapping(ctx context.Context, schema string, showID uuid.UUID, placement string, from, to time.Time, excludeID uuid.UUID) (int64, error)
	EffectiveRate(ctx context.Context, schema string, showID uuid.UUID, placement string, on time.Time) (*tenant.RateCard, error)
	Update(ctx context.Context, schema string, rc *tenant.RateCard) (*tenant.RateCard, error)
	Delete(ctx context.Context, schema string, id uuid.UUID) error
}

// CampaignRepositoryInterface defines the interface for tenant campaign operations
type CampaignRepositoryInterface interface {
	Create(ctx context.Context, schema string, c *tenant.Campaign) (*tenant.Campaign, error)
	GetByID(ctx context.Context, schema string, id uuid.UUID) (*tenant.Campaign, error)
	GetByAdvertiserAndName(ctx context.Context, schema string, advertiserID uuid.UUID, name string) (*tenant.Campaign, error)
	GetAll(ctx context.Context, schema, status string, limit, offset int) ([]tenant.Campaign, int64, error)
	GetByAdvertiserID(ctx context.Context, schema string, advertiserID uuid.UUID) ([]tenant.Campaign, error)
	Update(ctx context.Context, schema string, c *tenant.Campaign) (*tenant.Campaign, error)
	Delete(ctx context.Context, schema string, id uuid.UUID) error
}

// OrderRepositoryInterface defines the interface for tenant order operations
type OrderRepositoryInterface interface {
	Create(ctx context.Context, schema string, o *tenant.Order, items []tenant.OrderItem) (*tenant.Order, error)
	GetByID(ctx context.Context, schema string, id uuid.UUID) (*tenant.Order, error)
	GetItems(ctx context.Context, schema string, orderID uuid.UUID) ([]tenant.OrderItem, error)
	GetByCampaignID(ctx context.Context, schema string, campaignID uuid.UUID) ([]tenant.Order, error)
	GetAll(ctx context.Context, schema, status string, limit, offset int) ([]tenant.Order, int64, error)
	Update(ctx context.Context, schema string, o *tenant.Order) (*tenant.Order, error)
	AddItem(ctx context.Context, schema string, item *tenant.OrderItem) (*tenant.OrderItem, error)
	RemoveItem(ctx context.Context, schema string, orderID, itemID uuid.UUID) error
	ItemTotal(ctx context.Context, schema string, orderID uuid.UUID) (int64, error)
	CountBookedSlots(ctx context.Context, schema string, episodeID uuid.UUID, placement string) (int, error)
	BookedTotalForCampaign(ctx context.Context, schema string, campaignID uuid.UUID) (int64, error)
	Delete(ctx context.Context, schema string, id uuid.UUID) error
}

// InvoiceRepositoryInterface defines the interface for tenant invoice operations
type InvoiceRepositoryInterface interface {
	Create(ctx context.Context, schema string, inv *tenant.Invoice) (*tenant.Invoice, error)
	GetByID(ctx context.Context, schema string, id uuid.UUID) (*tenant.Invoice, error)
	GetByNumber(ctx context.Context, schema, number string) (*tenant.Invoice, error)
	GetByCampaignID(ctx context.Context, schema string, campaignID uuid.UUID) ([]tenant.Invoice, error)
	GetAll(ctx context.Context, schema, status string, limit, offset int) ([]tenant.Invoice, int64, error)
	UpdateStatus(ctx context.Context, schema string, id uuid.UUID, status string) (*tenant.Invoice, error)
}

// RevenueSharingRepositoryInterface defines the interface for revenue sharing operations
type RevenueSharingRepositoryInterface interface {
	Create(ctx context.Context, schema string, a *tenant.RevenueSharingAgreement) (*tenant.RevenueSharingAgreement, error)
	GetByID(ctx context.Context, schema string, id uuid.UUID) (*tenant.RevenueSharingAgreement, error)
	GetByShowID(ctx context.Context, schema string, showID uuid.UUID) ([]tenant.RevenueSharingAgreement, error)
	CountOverlapping(ctx context.Context, schema string, showID uuid.UUID, partnerName string, from, to time.Time, excludeID uuid.UUID) (int64, error)
	Update(ctx context.Context, schema string, a *tenant.RevenueSharingAgreement) (*tenant.RevenueSharingAgreement, error)
	Delete(ctx context.Context, schema string, id uuid.UUID) error
}

// AnalyticsRepositoryInterface defines the interface for tenant analytics aggregation
type AnalyticsRepositoryInterface interface {
	RevenueByMonth(ctx context.Context, schema string, from, to time.Time) ([]MonthlyRevenue, error)
	Pipeline(ctx context.Context, schema string) ([]PipelineSlice, error)
	TopAdvertisers(ctx context.Context, schema string, limit int) ([]AdvertiserRevenue, error)
	CampaignStatusCounts(ctx context.Context, schema string) ([]StatusCount, error)
	UpsertDailyMetric(ctx context.Context, schema string, m *tenant.CampaignDailyMetric) (*tenant.CampaignDailyMetric, error)
	DailyMetrics(ctx context.Context, schema string, campaignID uuid.UUID, from, to time.Time) ([]tenant.CampaignDailyMetric, error)
}
