package tenant

import (
	"time"

	"github.com/google/uuid"
)

// Row types for the tables living inside each org_<slug> schema. These are
// scanned positionally from gateway queries, not managed by GORM.

// Agency is an advertising agency in the tenant CRM
type Agency struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	Phone        string    `json:"phone"`
	Website      string    `json:"website"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Advertiser is a brand buying podcast ad inventory
type Advertiser struct {
	ID           uuid.UUID  `json:"id"`
	AgencyID     *uuid.UUID `json:"agency_id,omitempty"`
	Name         string     `json:"name"`
	ContactName  string     `json:"contact_name"`
	ContactEmail string     `json:"contact_email"`
	Phone        string     `json:"phone"`
	Industry     string     `json:"industry"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Show is a podcast with configured ad slots per episode
type Show struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	ReleaseCadence string    `json:"release_cadence"`
	PrerollSlots   int       `json:"preroll_slots"`
	MidrollSlots   int       `json:"midroll_slots"`
	PostrollSlots  int       `json:"postroll_slots"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SlotsFor returns the configured slot count for a placement type
func (s *Show) SlotsFor(placement string) int {
	switch placement {
	case PlacementPreroll:
		return s.PrerollSlots
	case PlacementMidroll:
		return s.MidrollSlots
	case PlacementPostroll:
		return s.PostrollSlots
	}
	return 0
}

// Episode is one installment of a show
type Episode struct {
	ID              uuid.UUID  `json:"id"`
	ShowID          uuid.UUID  `json:"show_id"`
	Number          int        `json:"number"`
	Title           string     `json:"title"`
	AirDate         *time.Time `json:"air_date,omitempty"`
	YouTubeVideoID  string     `json:"youtube_video_id"`
	YouTubeViews    int64      `json:"youtube_views"`
	YouTubeLikes    int64      `json:"youtube_likes"`
	YouTubeComments int64      `json:"youtube_comments"`
	YouTubeSyncedAt *time.Time `json:"youtube_synced_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Placement types for ad slots
const (
	PlacementPreroll  = "preroll"
	PlacementMidroll  = "midroll"
	PlacementPostroll = "postroll"
)

// ValidPlacement reports whether p is a known placement type
func ValidPlacement(p string) bool {
	return p == PlacementPreroll || p == PlacementMidroll || p == PlacementPostroll
}

// RateCard prices a placement on a show over a date range
type RateCard struct {
	ID            uuid.UUID `json:"id"`
	ShowID        uuid.UUID `json:"show_id"`
	Placement     string    `json:"placement"`
	RateCents     int64     `json:"rate_cents"`
	EffectiveFrom time.Time `json:"effective_from"`
	EffectiveTo   time.Time `json:"effective_to"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Campaign statuses
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

// Campaign is an advertiser's flight with budget and pipeline probability
type Campaign struct {
	ID           uuid.UUID `json:"id"`
	AdvertiserID uuid.UUID `json:"advertiser_id"`
	Name         string    `json:"name"`
	Status       string    `json:"status"`
	BudgetCents  int64     `json:"budget_cents"`
	Probability  int       `json:"probability"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Order statuses
const (
	OrderStatusDraft     = "draft"
	OrderStatusApproved  = "approved"
	OrderStatusBooked    = "booked"
	OrderStatusCancelled = "cancelled"
)

// Order reserves inventory for a campaign
type Order struct {
	ID         uuid.UUID `json:"id"`
	CampaignID uuid.UUID `json:"campaign_id"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OrderItem reserves placements on one episode at a rate-card price
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	EpisodeID uuid.UUID `json:"episode_id"`
	Placement string    `json:"placement"`
	Quantity  int       `json:"quantity"`
	RateCents int64     `json:"rate_cents"`
	CreatedAt time.Time `json:"created_at"`
}

// Invoice statuses
const (
	InvoiceStatusDraft = "draft"
	InvoiceStatusSent  = "sent"
	InvoiceStatusPaid  = "paid"
	InvoiceStatusVoid  = "void"
)

// Invoice bills an advertiser for a campaign's booked order items
type Invoice struct {
	ID          uuid.UUID  `json:"id"`
	CampaignID  uuid.UUID  `json:"campaign_id"`
	Number      string     `json:"number"`
	Status      string     `json:"status"`
	AmountCents int64      `json:"amount_cents"`
	Currency    string     `json:"currency"`
	IssuedAt    *time.Time `json:"issued_at,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// RevenueSharingAgreement splits show revenue with a partner over a period
type RevenueSharingAgreement struct {
	ID            uuid.UUID `json:"id"`
	ShowID        uuid.UUID `json:"show_id"`
	PartnerName   string    `json:"partner_name"`
	Percentage    float64   `json:"percentage"`
	EffectiveFrom time.Time `json:"effective_from"`
	EffectiveTo   time.Time `json:"effective_to"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CampaignDailyMetric is one day of delivery performance for a campaign
type CampaignDailyMetric struct {
	ID          uuid.UUID `json:"id"`
	CampaignID  uuid.UUID `json:"campaign_id"`
	MetricDate  time.Time `json:"metric_date"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	SpendCents  int64     `json:"spend_cents"`
	CreatedAt   time.Time `json:"created_at"`
}
