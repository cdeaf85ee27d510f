package service_test

import (
	"testing"

	"podcastflow-backend/internal/database/models"
	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/logger"
	"podcastflow-backend/internal/mocks"
	"podcastflow-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// NotificationServiceTestSuite defines the test suite for NotificationService
type NotificationServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockUserRepo        *mocks.MockUserRepositoryInterface
	mockTemplateRepo    *mocks.MockEmailTemplateRepositoryInterface
	mockQueueRepo       *mocks.MockEmailQueueRepositoryInterface
	mockDeliveryRepo    *mocks.MockNotificationRepositoryInterface
	notificationService *service.NotificationService
	orgID               uuid.UUID
}

// SetupTest sets up the test suite
func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockTemplateRepo = mocks.NewMockEmailTemplateRepositoryInterface(suite.ctrl)
	suite.mockQueueRepo = mocks.NewMockEmailQueueRepositoryInterface(suite.ctrl)
	suite.mockDeliveryRepo = mocks.NewMockNotificationRepositoryInterface(suite.ctrl)
	suite.orgID = uuid.New()

	suite.notificationService = service.NewNotificationService(
		suite.mockUserRepo,
		suite.mockTemplateRepo,
		suite.mockQueueRepo,
		suite.mockDeliveryRepo,
		logger.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *NotificationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func campaignStatusTemplate() *models.EmailTemplate {
	return &models.EmailTemplate{
		Key:      string(models.EventCampaignStatusChanged),
		Subject:  "Campaign {{.campaign_name}} is now {{.new_status}}",
		HTMLBody: "<p>{{.campaign_name}} moved from {{.previous_status}} to {{.new_status}}.</p>",
		TextBody: "{{.campaign_name}} moved from {{.previous_status}} to {{.new_status}}.",
		IsActive: true,
	}
}

// TestDispatchToRoleRecipients tests rendering and enqueueing for role groups
func (suite *NotificationServiceTestSuite) TestDispatchToRoleRecipients() {
	recipients := []models.User{
		{Email: "admin@acme.test", Role: models.UserRoleAdmin},
		{Email: "sales@acme.test", Role: models.UserRoleSales},
	}

	suite.mockUserRepo.EXPECT().
		GetActiveByRoles(suite.orgID, []models.UserRole{models.UserRoleAdmin, models.UserRoleSales}).
		Return(recipients, nil).
		Times(1)

	suite.mockTemplateRepo.EXPECT().
		Lookup(suite.orgID, string(models.EventCampaignStatusChanged)).
		Return(campaignStatusTemplate(), nil).
		Times(1)

	suite.mockQueueRepo.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(messages ...*models.EmailQueue) error {
			assert.Len(suite.T(), messages, 2)
			assert.Equal(suite.T(), "admin@acme.test", messages[0].Recipient)
			assert.Equal(suite.T(), "Campaign Q4 Launch is now active", messages[0].Subject)
			assert.Contains(suite.T(), messages[0].HTMLBody, "moved from draft to active")
			assert.Equal(suite.T(), models.EmailStatusPending, messages[0].Status)
			return nil
		}).
		Times(1)

	suite.mockDeliveryRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(d *models.NotificationDelivery) error {
			assert.Equal(suite.T(), suite.orgID, d.OrganizationID)
			assert.Equal(suite.T(), models.EventCampaignStatusChanged, d.Event)
			return nil
		}).
		Times(1)

	err := suite.notificationService.Dispatch(suite.orgID, models.EventCampaignStatusChanged, map[string]any{
		"campaign_name":   "Q4 Launch",
		"previous_status": "draft",
		"new_status":      "active",
	})

	assert.NoError(suite.T(), err)
}

// TestDispatchInvoiceGeneratedGoesToAdminsOnly tests that invoice events are
// resolved against the admin role alone
func (suite *NotificationServiceTestSuite) TestDispatchInvoiceGeneratedGoesToAdminsOnly() {
	suite.mockUserRepo.EXPECT().
		GetActiveByRoles(suite.orgID, []models.UserRole{models.UserRoleAdmin}).
		Return([]models.User{{Email: "admin@acme.test", Role: models.UserRoleAdmin}}, nil).
		Times(1)

	suite.mockTemplateRepo.EXPECT().
		Lookup(suite.orgID, string(models.EventInvoiceGenerated)).
		Return(&models.EmailTemplate{
			Key:      string(models.EventInvoiceGenerated),
			Subject:  "Invoice {{.invoice_number}} issued",
			HTMLBody: "<p>Invoice {{.invoice_number}} for {{.campaign_name}}.</p>",
			IsActive: true,
		}, nil).
		Times(1)

	suite.mockQueueRepo.EXPECT().
		Enqueue(gomock.Any()).
		DoAndReturn(func(messages ...*models.EmailQueue) error {
			assert.Len(suite.T(), messages, 1)
			assert.Equal(suite.T(), "admin@acme.test", messages[0].Recipient)
			assert.Equal(suite.T(), "Invoice INV-2026-00001 issued", messages[0].Subject)
			return nil
		}).
		Times(1)

	suite.mockDeliveryRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	err := suite.notificationService.Dispatch(suite.orgID, models.EventInvoiceGenerated, map[string]any{
		"invoice_number": "INV-2026-00001",
		"campaign_name":  "Q4 Launch",
	})

	assert.NoError(suite.T(), err)
}

// TestDispatchEscapesHTML tests that event data cannot inject markup
func (suite *NotificationServiceTestSuite) TestDispatchEscapesHTML() {
	suite.mockUserRepo.EXPECT().
		GetActiveByRoles(suite.orgID, gomock.Any()).
		Return([]models.User{{Email: "admin@acme.test", Role: models.UserRoleAdmin}}, nil).
		Times(1)

	suite.mockTemplateRepo.EXPECT().
		Lookup(suite.orgID, gomock.Any()).
		Return(campaignStatusTemplate(), nil).
		Times(1)

	suite.mockQueueRepo.EXPECT().
		Enqueue(gomock.Any()).
		DoAndReturn(func(messages ...*models.EmailQueue) error {
			assert.NotContains(suite.T(), messages[0].HTMLBody, "<script>")
			assert.Contains(suite.T(), messages[0].HTMLBody, "&lt;script&gt;")
			return nil
		}).
		Times(1)

	suite.mockDeliveryRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	err := suite.notificationService.Dispatch(suite.orgID, models.EventCampaignStatusChanged, map[string]any{
		"campaign_name":   "<script>alert(1)</script>",
		"previous_status": "draft",
		"new_status":      "active",
	})

	assert.NoError(suite.T(), err)
}

// TestDispatchUserInvited tests the direct-recipient special case
func (suite *NotificationServiceTestSuite) TestDispatchUserInvited() {
	suite.mockTemplateRepo.EXPECT().
		Lookup(suite.orgID, string(models.EventUserInvited)).
		Return(&models.EmailTemplate{
			Key:      string(models.EventUserInvited),
			Subject:  "You have been invited",
			HTMLBody: "<p>Welcome, {{.full_name}}.</p>",
		}, nil).
		Times(1)

	suite.mockQueueRepo.EXPECT().
		Enqueue(gomock.Any()).
		DoAndReturn(func(messages ...*models.EmailQueue) error {
			assert.Len(suite.T(), messages, 1)
			assert.Equal(suite.T(), "newhire@acme.test", messages[0].Recipient)
			return nil
		}).
		Times(1)

	suite.mockDeliveryRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	err := suite.notificationService.Dispatch(suite.orgID, models.EventUserInvited, map[string]any{
		"recipient": "newhire@acme.test",
		"full_name": "Jordan Reyes",
	})

	assert.NoError(suite.T(), err)
}

// TestDispatchUserInvitedWithoutRecipient tests the missing address case
func (suite *NotificationServiceTestSuite) TestDispatchUserInvitedWithoutRecipient() {
	err := suite.notificationService.Dispatch(suite.orgID, models.EventUserInvited, map[string]any{
		"full_name": "Jordan Reyes",
	})

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestDispatchNoRecipients tests that an empty role group is not an error
func (suite *NotificationServiceTestSuite) TestDispatchNoRecipients() {
	suite.mockUserRepo.EXPECT().
		GetActiveByRoles(suite.orgID, gomock.Any()).
		Return([]models.User{}, nil).
		Times(1)

	err := suite.notificationService.Dispatch(suite.orgID, models.EventCampaignStatusChanged, map[string]any{
		"campaign_name": "Q4 Launch",
	})

	assert.NoError(suite.T(), err)
}

// TestDispatchUnknownEvent tests event validation
func (suite *NotificationServiceTestSuite) TestDispatchUnknownEvent() {
	err := suite.notificationService.Dispatch(suite.orgID, models.NotificationEvent("campaign_archived"), nil)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestNotificationServiceTestSuite runs the test suite
func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
