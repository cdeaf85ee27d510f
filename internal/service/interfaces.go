package service

import (
	"context"
	"io"
	"time"

	"podcastflow-backend/internal/database/models"
	"podcastflow-backend/internal/tenant"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// NotificationDispatcherInterface is implemented by NotificationService and
// consumed by the services that emit domain events
type NotificationDispatcherInterface interface {
	Dispatch(orgID uuid.UUID, event models.NotificationEvent, data map[string]any) error
}

// YouTubeStatsFetcherInterface is implemented by YouTubeService and consumed
// by the sync service
type YouTubeStatsFetcherInterface interface {
	GetVideoStats(ctx context.Context, videoIDs []string) (map[string]VideoStats, error)
}

// OrganizationServiceInterface defines the interface for organization operations
type OrganizationServiceInterface interface {
	Create(ctx context.Context, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*OrganizationResponse, error)
	GetBySlug(ctx context.Context, slug string) (*OrganizationResponse, error)
	GetAll(ctx context.Context, page, pageSize int) (*OrganizationListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(ctx context.Context, id uuid.UUID, dropSchema bool) error
}

// UserServiceInterface defines the interface for user operations
type UserServiceInterface interface {
	Invite(orgID uuid.UUID, req *InviteUserRequest) (*UserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	GetByOrganization(orgID uuid.UUID, page, pageSize int) (*UserListResponse, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(id uuid.UUID) error
}

// AgencyServiceInterface defines the interface for agency operations
type AgencyServiceInterface interface {
	Create(ctx context.Context, tn tenant.Tenant, req *CreateAgencyRequest) (*tenant.Agency, error)
	GetByID(ctx context.Context, tn tenant.Tenant, id uuid.UUID) (*tenant.Agency, error)
	Search(ctx context.Context, tn tenant.Tenant, query string, page, pageSize int) (*AgencyListResponse, error)
	Update(ctx context.Context, tn tenant.Tenant, id uuid.UUID, req *UpdateAgencyRequest) (*tenant.Agency, error)
	Delete(ctx context.Context, tn tenant.Tenant, id uuid.UUID) error
}

// AdvertiserServiceInterface defines the interface for advertiser operations
type AdvertiserServiceInterface interface {
	Create(ctx context.Context, tn tenant.Tenant, req *CreateAdvertiserRequest) (*tenant.Advertiser, error)
	GetByID(ctx context.Context, tn tenant.Tenant, id uuid.UUID) (*tenant.Advertiser, error)
	Search(ctx context.Context, tn tenant.Tenant, query string, page, pageSize int) (*AdvertiserListResponse, error)
	GetByAgency(ctx context.Context, tn tenant.Tenant, agencyID uuid.UUID) ([]tenant.Advertiser, error)
	Update(ctx context.Context, tn tenant.Tenant, id uuid.UUID, req *UpdateAdvertiserRequest) (*tenant.Advertiser, error)
	Delete(ctx context.Context, tn tenant.Tenant, id uuid.UUID) error
}

// ShowServiceInterface defines the interface for show operations
type ShowServiceInterface interface {
	Create(ctx context.Context, tn tenant.Tenant, req *CreateShowRequest) (*tenant.Show, error)
	GetByID(ctx context.Context, tn tenant.Tenant, id uuid.UUID) (*tenant.Show, error)
	GetAll(ctx context.Context, tn tenant.Tenant, page, pageSize int) (*ShowListResponse, error)
	Update(ctx context.Context, tn tenant.Tenant, id uuid.UUID, req *UpdateShowRequest) (*tenant.Show, error)
	Delete(ctx context.Context, tn tenant.Tenant, id uuid.UUID) error
}

// EpisodeServiceInterface defines the interface for episode operations
type EpisodeServiceInterface interface {
	Create(ctx context.Context, tn tenant.Tenant, showID uuid.UUID, req *CreateEpisodeRequest) (*tenant.Episode, error)
	GetByID(ctx context.Context, tn tenant.Tenant, id uuid.UUID) (*tenant.Episode, error)
	GetByShow(ctx context.Context, tn tenant.Tenant, showID uuid.UUID, page, pageSize int) (*EpisodeListResponse, error)
	Update(ctx context.Context, tn tenant.Tenant, id uuid.UUID, req *UpdateEpisodeRequest) (*tenant.Episode, error)
	Delete(ctx context.Context, tn tenant.Tenant, id uuid.UUID) error
}

// RateCardServiceInterface defines the interface for rate card operations
type RateCardServiceInterface interface {
	Create(ctx context.Context, tn tenant.Tenant, showID uuid.UUID, req *CreateRateCardRequest) (*tenant.RateCard, error)
	GetByID(ctx context.Context, tn tenant.Tenant, id uuid.UUID) (*tenant.RateCard, error)
	GetByShow(ctx context.Context, tn tenant.Tenant, showID uuid.UUID) ([]tenant.RateCard, error)
	EffectiveRate(ctx context.Context, tn tenant.Tenant, showID uuid.UUID, placement string, on time.Time) (*tenant.RateCard, error)
	Update(ctx context.Context, tn tenant.Tenant, id uuid.UUID, req *UpdateRateCardRequest) (*tenant.RateCard, error)
	Delete(ctx context.Context, tn tenant.Tenant, id uuid.UUID) error
}

// InventoryServiceInterface defines the interface for availability queries
type InventoryServiceInterface interface {
	Availability(ctx context.Context, tn tenant.Tenant, showID uuid.UUID, placement string, from, to time.Time) ([]EpisodeAvailability, error)
	CheckAvailable(ctx context.Context, tn tenant.Tenant, episodeID uuid.UUID, placement string, quantity int) error
}

// CampaignServiceInterface defines the interface for campaign operations
type CampaignServiceInterface interface {
	Create(ctx context.Context, tn tenant.Tenant, req *CreateCampaignRequest) (*tenant.Campaign, error)
	GetByID(ctx context.Context, tn tenant.Tenant, id uuid.UUID) (*tenant.Campaign, error)
	GetAll(ctx context.Context, tn tenant.Tenant, status string, page, pageSize int) (*CampaignListResponse, error)
	GetByAdvertiser(ctx context.Context, tn tenant.Tenant, advertiserID uuid.UUID) ([]tenant.Campaign, error)
	Update(ctx context.Context, tn tenant.Tenant, id uuid.UUID, req *UpdateCampaignRequest) (*tenant.Campaign, error)
	UpdateStatus(ctx context.Context, tn tenant.Tenant, id uuid.UUID, status string) (*tenant.Campaign, error)
	Delete(ctx context.Context, tn tenant.Tenant, id uuid.UUID) error
}

// OrderServiceInterface defines the interface for order operations
type OrderServiceInterface interface {
	Create(ctx context.Context, tn tenant.Tenant, req *CreateOrderRequest) (*OrderResponse, error)
	GetByID(ctx context.Context, tn tenant.Tenant, id uuid.UUID) (*OrderResponse, error)
	GetAll(ctx context.Context, tn tenant.Tenant, status string, page, pageSize int) (*OrderListResponse, error)
	GetByCampaign(ctx context.Context, tn tenant.Tenant, campaignID uuid.UUID) ([]tenant.Order, error)
	AddItem(ctx context.Context, tn tenant.Tenant, orderID uuid.UUID, req *OrderItemRequest) (*OrderResponse, error)
	RemoveItem(ctx context.Context, tn tenant.Tenant, orderID, itemID uuid.UUID) (*OrderResponse, error)
	UpdateStatus(ctx context.Context, tn tenant.Tenant, id uuid.UUID, status string) (*OrderResponse, error)
	Delete(ctx context.Context, tn tenant.Tenant, id uuid.UUID) error
}

// InvoiceServiceInterface defines the interface for tenant invoice operations
type InvoiceServiceInterface interface {
	Generate(ctx context.Context, tn tenant.Tenant, req *GenerateInvoiceRequest) (*tenant.Invoice, error)
	GetByID(ctx context.Context, tn tenant.Tenant, id uuid.UUID) (*tenant.Invoice, error)
	GetAll(ctx context.Context, tn tenant.Tenant, status string, page, pageSize int) (*InvoiceListResponse, error)
	GetByCampaign(ctx context.Context, tn tenant.Tenant, campaignID uuid.UUID) ([]tenant.Invoice, error)
	UpdateStatus(ctx context.Context, tn tenant.Tenant, id uuid.UUID, status string) (*tenant.Invoice, error)
}

// MasterInvoiceServiceInterface defines the interface for platform billing
type MasterInvoiceServiceInterface interface {
	Generate(req *GenerateMasterInvoiceRequest) (*models.MasterInvoice, error)
	GetByID(id uuid.UUID) (*models.MasterInvoice, error)
	GetByOrganization(orgID uuid.UUID, page, pageSize int) (*MasterInvoiceListResponse, error)
	UpdateStatus(id uuid.UUID, status models.MasterInvoiceStatus) (*models.MasterInvoice, error)
}

// RevenueSharingServiceInterface defines the interface for agreement operations
type RevenueSharingServiceInterface interface {
	Create(ctx context.Context, tn tenant.Tenant, showID uuid.UUID, req *CreateAgreementRequest) (*tenant.RevenueSharingAgreement, error)
	GetByID(ctx context.Context, tn tenant.Tenant, id uuid.UUID) (*tenant.RevenueSharingAgreement, error)
	GetByShow(ctx context.Context, tn tenant.Tenant, showID uuid.UUID) ([]tenant.RevenueSharingAgreement, error)
	Update(ctx context.Context, tn tenant.Tenant, id uuid.UUID, req *UpdateAgreementRequest) (*tenant.RevenueSharingAgreement, error)
	Delete(ctx context.Context, tn tenant.Tenant, id uuid.UUID) error
}

// AnalyticsServiceInterface defines the interface for analytics operations
type AnalyticsServiceInterface interface {
	Dashboard(ctx context.Context, tn tenant.Tenant, from, to time.Time) (*DashboardResponse, error)
	RecordMetric(ctx context.Context, tn tenant.Tenant, campaignID uuid.UUID, req *RecordMetricRequest) (*tenant.CampaignDailyMetric, error)
	CampaignPerformance(ctx context.Context, tn tenant.Tenant, campaignID uuid.UUID, from, to time.Time) ([]tenant.CampaignDailyMetric, error)
	ExportCampaignPerformanceCSV(ctx context.Context, tn tenant.Tenant, campaignID uuid.UUID, from, to time.Time, w io.Writer) error
}

// TemplateServiceInterface defines the interface for email template operations
type TemplateServiceInterface interface {
	SeedDefaults() error
	CreateOverride(orgID uuid.UUID, req *CreateTemplateRequest) (*models.EmailTemplate, error)
	GetByOrganization(orgID uuid.UUID) ([]models.EmailTemplate, error)
	Resolve(orgID uuid.UUID, key string) (*models.EmailTemplate, error)
	Update(id uuid.UUID, req *UpdateTemplateRequest) (*models.EmailTemplate, error)
	Delete(id uuid.UUID) error
}

// NotificationServiceInterface defines the interface for notification queries
type NotificationServiceInterface interface {
	NotificationDispatcherInterface
	GetDeliveries(orgID uuid.UUID, page, pageSize int) ([]models.NotificationDelivery, int64, error)
}

// YouTubeSyncServiceInterface defines the interface for sync job operations
type YouTubeSyncServiceInterface interface {
	Start(ctx context.Context, tn tenant.Tenant) (*models.SyncJob, error)
	Run(ctx context.Context, tn tenant.Tenant, jobID uuid.UUID) error
	GetJob(id uuid.UUID) (*models.SyncJob, error)
	GetJobs(orgID uuid.UUID, page, pageSize int) ([]models.SyncJob, int64, error)
}
