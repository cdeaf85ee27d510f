package models

// UserRole defines the platform roles
type UserRole string

const (
	UserRoleMaster   UserRole = "master"
	UserRoleAdmin    UserRole = "admin"
	UserRoleSales    UserRole = "sales"
	UserRoleProducer UserRole = "producer"
	UserRoleTalent   UserRole = "talent"
	UserRoleClient   UserRole = "client"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleMaster, UserRoleAdmin, UserRoleSales, UserRoleProducer, UserRoleTalent, UserRoleClient:
		return true
	}
	return false
}

// OrganizationStatus defines the lifecycle states of an organization
type OrganizationStatus string

const (
	OrganizationStatusActive    OrganizationStatus = "active"
	OrganizationStatusSuspended OrganizationStatus = "suspended"
)

// IsValid checks if the OrganizationStatus is valid
func (s OrganizationStatus) IsValid() bool {
	switch s {
	case OrganizationStatusActive, OrganizationStatusSuspended:
		return true
	}
	return false
}

// EmailStatus defines the delivery states of a queued email
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// IsValid checks if the EmailStatus is valid
func (s EmailStatus) IsValid() bool {
	switch s {
	case EmailStatusPending, EmailStatusProcessing, EmailStatusSent, EmailStatusFailed:
		return true
	}
	return false
}

// NotificationEvent identifies a dispatchable platform event
type NotificationEvent string

const (
	EventCampaignStatusChanged NotificationEvent = "campaign_status_changed"
	EventOrderApproved         NotificationEvent = "order_approved"
	EventInvoiceGenerated      NotificationEvent = "invoice_generated"
	EventUserInvited           NotificationEvent = "user_invited"
	EventYouTubeSyncCompleted  NotificationEvent = "youtube_sync_completed"
)

// IsValid checks if the NotificationEvent is valid
func (e NotificationEvent) IsValid() bool {
	switch e {
	case EventCampaignStatusChanged, EventOrderApproved, EventInvoiceGenerated, EventUserInvited, EventYouTubeSyncCompleted:
		return true
	}
	return false
}

// SyncJobStatus defines the states of a background sync job
type SyncJobStatus string

const (
	SyncJobStatusPending   SyncJobStatus = "pending"
	SyncJobStatusRunning   SyncJobStatus = "running"
	SyncJobStatusCompleted SyncJobStatus = "completed"
	SyncJobStatusFailed    SyncJobStatus = "failed"
)

// IsValid checks if the SyncJobStatus is valid
func (s SyncJobStatus) IsValid() bool {
	switch s {
	case SyncJobStatusPending, SyncJobStatusRunning, SyncJobStatusCompleted, SyncJobStatusFailed:
		return true
	}
	return false
}

// MasterInvoiceStatus defines the states of a platform billing invoice
type MasterInvoiceStatus string

const (
	MasterInvoiceStatusDraft MasterInvoiceStatus = "draft"
	MasterInvoiceStatusSent  MasterInvoiceStatus = "sent"
	MasterInvoiceStatusPaid  MasterInvoiceStatus = "paid"
	MasterInvoiceStatusVoid  MasterInvoiceStatus = "void"
)

// IsValid checks if the MasterInvoiceStatus is valid
func (s MasterInvoiceStatus) IsValid() bool {
	switch s {
	case MasterInvoiceStatusDraft, MasterInvoiceStatusSent, MasterInvoiceStatusPaid, MasterInvoiceStatusVoid:
		return true
	}
	return false
}
