package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound     = &NotFoundError{Entity: "organization"}
	ErrUserNotFound             = &NotFoundError{Entity: "user"}
	ErrAdvertiserNotFound       = &NotFoundError{Entity: "advertiser"}
	ErrAgencyNotFound           = &NotFoundError{Entity: "agency"}
	ErrShowNotFound             = &NotFoundError{Entity: "show"}
	ErrEpisodeNotFound          = &NotFoundError{Entity: "episode"}
	ErrCampaignNotFound         = &NotFoundError{Entity: "campaign"}
	ErrOrderNotFound            = &NotFoundError{Entity: "order"}
	ErrRateCardNotFound         = &NotFoundError{Entity: "rate card"}
	ErrInvoiceNotFound          = &NotFoundError{Entity: "invoice"}
	ErrMasterInvoiceNotFound    = &NotFoundError{Entity: "master invoice"}
	ErrEmailTemplateNotFound    = &NotFoundError{Entity: "email template"}
	ErrRevenueSharingNotFound   = &NotFoundError{Entity: "revenue sharing agreement"}
	ErrSyncJobNotFound          = &NotFoundError{Entity: "sync job"}
	ErrQueuedEmailNotFound      = &NotFoundError{Entity: "queued email"}
	ErrTenantSchemaNotFound     = &NotFoundError{Entity: "tenant schema"}
)

// Already Exists Errors
var (
	ErrOrganizationExists  = &AlreadyExistsError{Entity: "organization", Context: "with this name or slug"}
	ErrUserExists          = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrAdvertiserExists    = &AlreadyExistsError{Entity: "advertiser", Context: "with this name"}
	ErrAgencyExists        = &AlreadyExistsError{Entity: "agency", Context: "with this name"}
	ErrShowExists          = &AlreadyExistsError{Entity: "show", Context: "with this name"}
	ErrEpisodeExists       = &AlreadyExistsError{Entity: "episode", Context: "with this number in the show"}
	ErrCampaignExists      = &AlreadyExistsError{Entity: "campaign", Context: "with this name for the advertiser"}
	ErrInvoiceNumberExists = &AlreadyExistsError{Entity: "invoice", Context: "with this number"}
	ErrMasterInvoiceExists = &AlreadyExistsError{Entity: "master invoice", Context: "for this organization and period"}
	ErrEmailTemplateExists = &AlreadyExistsError{Entity: "email template", Context: "with this key for the organization"}
)

// Business Logic Errors
var (
	ErrShowHasOrders            = errors.New("show has existing orders")
	ErrAgencyHasAdvertisers     = errors.New("agency has advertisers assigned")
	ErrRatePeriodOverlap        = errors.New("rate periods must not overlap")
	ErrRevenueSharePeriodOverlap = errors.New("revenue sharing periods must not overlap")
	ErrInvalidStatus            = errors.New("invalid status")
	ErrInvalidStatusTransition  = errors.New("invalid status transition")
	ErrInvalidFlightDates       = errors.New("campaign start date must be before end date")
	ErrInvalidTimeRange         = errors.New("invalid time range")
	ErrInvalidProbability       = errors.New("probability must be one of 10, 35, 65, 90, 100")
	ErrOrderNotEditable         = errors.New("order can no longer be modified")
	ErrNoBookedItems            = errors.New("campaign has no booked order items to invoice")
	ErrInsufficientInventory    = errors.New("insufficient inventory for the requested placement")
	ErrInvalidSlug              = errors.New("invalid organization slug")
	ErrInvalidPaginationParams  = errors.New("invalid pagination parameters")
	ErrSyncAlreadyRunning       = errors.New("a sync job is already running for this organization")
	ErrYouTubeQuotaExceeded     = errors.New("YouTube API quota exceeded")
	ErrYouTubeNotConfigured     = errors.New("YouTube API key is not configured")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrUserInactive       = &AuthenticationError{Message: "user account is inactive"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}

	ErrRoleNotAllowed = &AuthorizationError{Message: "role is not allowed to perform this operation"}
	ErrTenantMismatch = &AuthorizationError{Message: "resource belongs to a different organization"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
