package testutils

import (
	"time"

	"podcastflow-backend/internal/database/models"
	"podcastflow-backend/internal/tenant"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	// Slug must stay unique across tests sharing the database
	slug := "acme" + id.String()[:6]

	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Acme Podcasts " + id.String()[:6],
		Slug:         slug,
		BillingEmail: "billing@acme.test",
		Plan:         "standard",
		Status:       models.OrganizationStatusActive,
	}
}

// WithSlug sets a custom slug for the organization
func (f *OrganizationFactory) WithSlug(slug string) *models.Organization {
	org := f.Create()
	org.Slug = slug
	org.Name = slug + " podcasts"
	return org
}

// WithStatus sets a custom status for the organization
func (f *OrganizationFactory) WithStatus(status models.OrganizationStatus) *models.Organization {
	org := f.Create()
	org.Status = status
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Email:          "user-" + id.String()[:8] + "@acme.test",
		FullName:       "Jordan Reyes",
		PasswordHash:   "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:           models.UserRoleSales,
		IsActive:       true,
	}
}

// WithOrganization sets the organization ID for the user
func (f *UserFactory) WithOrganization(orgID uuid.UUID) *models.User {
	user := f.Create()
	user.OrganizationID = orgID
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// ShowFactory provides methods to create test Show data
type ShowFactory struct{}

// NewShowFactory creates a new ShowFactory
func NewShowFactory() *ShowFactory {
	return &ShowFactory{}
}

// Create creates a test Show with default values
func (f *ShowFactory) Create() *tenant.Show {
	return &tenant.Show{
		ID:             uuid.New(),
		Name:           "The Test Hour",
		Description:    "A weekly show used in tests",
		ReleaseCadence: "weekly",
		PrerollSlots:   1,
		MidrollSlots:   2,
		PostrollSlots:  1,
		IsActive:       true,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

// WithName sets a custom name for the show
func (f *ShowFactory) WithName(name string) *tenant.Show {
	show := f.Create()
	show.Name = name
	return show
}

// WithSlots sets the per-episode slot counts for the show
func (f *ShowFactory) WithSlots(preroll, midroll, postroll int) *tenant.Show {
	show := f.Create()
	show.PrerollSlots = preroll
	show.MidrollSlots = midroll
	show.PostrollSlots = postroll
	return show
}

// EpisodeFactory provides methods to create test Episode data
type EpisodeFactory struct{}

// NewEpisodeFactory creates a new EpisodeFactory
func NewEpisodeFactory() *EpisodeFactory {
	return &EpisodeFactory{}
}

// Create creates a test Episode with default values
func (f *EpisodeFactory) Create() *tenant.Episode {
	air := time.Now().AddDate(0, 0, 7)
	return &tenant.Episode{
		ID:        uuid.New(),
		ShowID:    uuid.New(),
		Number:    1,
		Title:     "Pilot",
		AirDate:   &air,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// WithShow sets the show ID for the episode
func (f *EpisodeFactory) WithShow(showID uuid.UUID) *tenant.Episode {
	ep := f.Create()
	ep.ShowID = showID
	return ep
}

// WithNumber sets the episode number
func (f *EpisodeFactory) WithNumber(n int) *tenant.Episode {
	ep := f.Create()
	ep.Number = n
	return ep
}

// WithVideoID sets the YouTube video ID for the episode
func (f *EpisodeFactory) WithVideoID(videoID string) *tenant.Episode {
	ep := f.Create()
	ep.YouTubeVideoID = videoID
	return ep
}

// AgencyFactory provides methods to create test Agency data
type AgencyFactory struct{}

// NewAgencyFactory creates a new AgencyFactory
func NewAgencyFactory() *AgencyFactory {
	return &AgencyFactory{}
}

// Create creates a test Agency with default values
func (f *AgencyFactory) Create() *tenant.Agency {
	return &tenant.Agency{
		ID:           uuid.New(),
		Name:         "Test Media Group",
		ContactName:  "Sam Okafor",
		ContactEmail: "sam@testmedia.test",
		Phone:        "+1-555-0100",
		Website:      "https://testmedia.test",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

// WithName sets a custom name for the agency
func (f *AgencyFactory) WithName(name string) *tenant.Agency {
	a := f.Create()
	a.Name = name
	return a
}

// AdvertiserFactory provides methods to create test Advertiser data
type AdvertiserFactory struct{}

// NewAdvertiserFactory creates a new AdvertiserFactory
func NewAdvertiserFactory() *AdvertiserFactory {
	return &AdvertiserFactory{}
}

// Create creates a test Advertiser with default values
func (f *AdvertiserFactory) Create() *tenant.Advertiser {
	return &tenant.Advertiser{
		ID:           uuid.New(),
		Name:         "Brightline Coffee",
		ContactName:  "Ana Silva",
		ContactEmail: "ana@brightline.test",
		Industry:     "consumer goods",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

// WithAgency sets the agency ID for the advertiser
func (f *AdvertiserFactory) WithAgency(agencyID uuid.UUID) *tenant.Advertiser {
	adv := f.Create()
	adv.AgencyID = &agencyID
	return adv
}

// WithName sets a custom name for the advertiser
func (f *AdvertiserFactory) WithName(name string) *tenant.Advertiser {
	adv := f.Create()
	adv.Name = name
	return adv
}

// RateCardFactory provides methods to create test RateCard data
type RateCardFactory struct{}

// NewRateCardFactory creates a new RateCardFactory
func NewRateCardFactory() *RateCardFactory {
	return &RateCardFactory{}
}

// Create creates a test RateCard with default values
func (f *RateCardFactory) Create() *tenant.RateCard {
	now := time.Now()
	return &tenant.RateCard{
		ID:            uuid.New(),
		ShowID:        uuid.New(),
		Placement:     tenant.PlacementMidroll,
		RateCents:     50000,
		EffectiveFrom: now.AddDate(0, -1, 0),
		EffectiveTo:   now.AddDate(0, 11, 0),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// WithShow sets the show ID for the rate card
func (f *RateCardFactory) WithShow(showID uuid.UUID) *tenant.RateCard {
	rc := f.Create()
	rc.ShowID = showID
	return rc
}

// WithPlacement sets the placement for the rate card
func (f *RateCardFactory) WithPlacement(placement string) *tenant.RateCard {
	rc := f.Create()
	rc.Placement = placement
	return rc
}

// WithPeriod sets the effective period for the rate card
func (f *RateCardFactory) WithPeriod(from, to time.Time) *tenant.RateCard {
	rc := f.Create()
	rc.EffectiveFrom = from
	rc.EffectiveTo = to
	return rc
}

// CampaignFactory provides methods to create test Campaign data
type CampaignFactory struct{}

// NewCampaignFactory creates a new CampaignFactory
func NewCampaignFactory() *CampaignFactory {
	return &CampaignFactory{}
}

// Create creates a test Campaign with default values
func (f *CampaignFactory) Create() *tenant.Campaign {
	now := time.Now()
	return &tenant.Campaign{
		ID:           uuid.New(),
		AdvertiserID: uuid.New(),
		Name:         "Q4 Launch",
		Status:       tenant.CampaignStatusDraft,
		BudgetCents:  1000000,
		Probability:  35,
		StartDate:    now.AddDate(0, 0, 14),
		EndDate:      now.AddDate(0, 3, 0),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// WithAdvertiser sets the advertiser ID for the campaign
func (f *CampaignFactory) WithAdvertiser(advertiserID uuid.UUID) *tenant.Campaign {
	c := f.Create()
	c.AdvertiserID = advertiserID
	return c
}

// WithStatus sets a custom status for the campaign
func (f *CampaignFactory) WithStatus(status string) *tenant.Campaign {
	c := f.Create()
	c.Status = status
	return c
}

// OrderFactory provides methods to create test Order data
type OrderFactory struct{}

// NewOrderFactory creates a new OrderFactory
func NewOrderFactory() *OrderFactory {
	return &OrderFactory{}
}

// Create creates a test Order with default values
func (f *OrderFactory) Create() *tenant.Order {
	return &tenant.Order{
		ID:         uuid.New(),
		CampaignID: uuid.New(),
		Status:     tenant.OrderStatusDraft,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

// WithCampaign sets the campaign ID for the order
func (f *OrderFactory) WithCampaign(campaignID uuid.UUID) *tenant.Order {
	o := f.Create()
	o.CampaignID = campaignID
	return o
}

// WithStatus sets a custom status for the order
func (f *OrderFactory) WithStatus(status string) *tenant.Order {
	o := f.Create()
	o.Status = status
	return o
}

// Item creates an order item attached to the given order and episode
func (f *OrderFactory) Item(orderID, episodeID uuid.UUID) *tenant.OrderItem {
	return &tenant.OrderItem{
		ID:        uuid.New(),
		OrderID:   orderID,
		EpisodeID: episodeID,
		Placement: tenant.PlacementMidroll,
		Quantity:  1,
		RateCents: 50000,
		CreatedAt: time.Now(),
	}
}

// EmailTemplateFactory provides methods to create test EmailTemplate data
type EmailTemplateFactory struct{}

// NewEmailTemplateFactory creates a new EmailTemplateFactory
func NewEmailTemplateFactory() *EmailTemplateFactory {
	return &EmailTemplateFactory{}
}

// Create creates a system default template (no organization)
func (f *EmailTemplateFactory) Create() *models.EmailTemplate {
	return &models.EmailTemplate{
		Key:      "invoice_generated",
		Subject:  "Invoice {{.invoice_number}} issued",
		HTMLBody: "<p>Invoice {{.invoice_number}} is ready.</p>",
		TextBody: "Invoice {{.invoice_number}} is ready.",
		IsActive: true,
	}
}

// WithKey sets a custom template key
func (f *EmailTemplateFactory) WithKey(key string) *models.EmailTemplate {
	tpl := f.Create()
	tpl.Key = key
	return tpl
}

// WithOrganization turns the template into an organization-scoped override
func (f *EmailTemplateFactory) WithOrganization(orgID uuid.UUID) *models.EmailTemplate {
	tpl := f.Create()
	tpl.OrganizationID = &orgID
	return tpl
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization  *OrganizationFactory
	User          *UserFactory
	Agency        *AgencyFactory
	Advertiser    *AdvertiserFactory
	Show          *ShowFactory
	Episode       *EpisodeFactory
	RateCard      *RateCardFactory
	Campaign      *CampaignFactory
	Order         *OrderFactory
	EmailTemplate *EmailTemplateFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:  NewOrganizationFactory(),
		User:          NewUserFactory(),
		Agency:        NewAgencyFactory(),
		Advertiser:    NewAdvertiserFactory(),
		Show:          NewShowFactory(),
		Episode:       NewEpisodeFactory(),
		RateCard:      NewRateCardFactory(),
		Campaign:      NewCampaignFactory(),
		Order:         NewOrderFactory(),
		EmailTemplate: NewEmailTemplateFactory(),
	}
}
