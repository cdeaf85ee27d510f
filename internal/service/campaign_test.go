package service_test

import (
	"context"
	"testing"
	"time"

	"podcastflow-backend/internal/database/models"
	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/logger"
	"podcastflow-backend/internal/mocks"
	"podcastflow-backend/internal/service"
	"podcastflow-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CampaignServiceTestSuite defines the test suite for CampaignService
type CampaignServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockCampaignRepo   *mocks.MockCampaignRepositoryInterface
	mockAdvertiserRepo *mocks.MockAdvertiserRepositoryInterface
	mockDispatcher     *mocks.MockNotificationDispatcherInterface
	campaignService    *service.CampaignService
	validator          *validator.Validate
	tenant             tenant.Tenant
	ctx                context.Context
}

// SetupTest sets up the test suite
func (suite *CampaignServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCampaignRepo = mocks.NewMockCampaignRepositoryInterface(suite.ctrl)
	suite.mockAdvertiserRepo = mocks.NewMockAdvertiserRepositoryInterface(suite.ctrl)
	suite.mockDispatcher = mocks.NewMockNotificationDispatcherInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.ctx = context.Background()
	suite.tenant = tenant.Tenant{
		OrganizationID: uuid.New(),
		Slug:           "acme",
		Schema:         "org_acme",
	}

	suite.campaignService = service.NewCampaignService(
		suite.mockCampaignRepo,
		suite.mockAdvertiserRepo,
		suite.mockDispatcher,
		suite.validator,
		logger.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *CampaignServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CampaignServiceTestSuite) validCreateRequest() *service.CreateCampaignRequest {
	return &service.CreateCampaignRequest{
		AdvertiserID: uuid.New(),
		Name:         "Q4 Launch",
		BudgetCents:  1000000,
		Probability:  65,
		StartDate:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

// TestCreateCampaign tests creating a campaign
func (suite *CampaignServiceTestSuite) TestCreateCampaign() {
	req := suite.validCreateRequest()

	suite.mockAdvertiserRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", req.AdvertiserID).
		Return(&tenant.Advertiser{ID: req.AdvertiserID, Name: "Brightline Coffee"}, nil).
		Times(1)

	// No existing campaign with the same name for this advertiser
	suite.mockCampaignRepo.EXPECT().
		GetByAdvertiserAndName(gomock.Any(), "org_acme", req.AdvertiserID, req.Name).
		Return(nil, pgx.ErrNoRows).
		Times(1)

	suite.mockCampaignRepo.EXPECT().
		Create(gomock.Any(), "org_acme", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, c *tenant.Campaign) (*tenant.Campaign, error) {
			created := *c
			created.ID = uuid.New()
			return &created, nil
		}).
		Times(1)

	campaign, err := suite.campaignService.Create(suite.ctx, suite.tenant, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), campaign)
	assert.Equal(suite.T(), tenant.CampaignStatusDraft, campaign.Status)
	assert.Equal(suite.T(), req.Name, campaign.Name)
	assert.Equal(suite.T(), req.BudgetCents, campaign.BudgetCents)
}

// TestCreateCampaignValidationError tests creating with a missing name
func (suite *CampaignServiceTestSuite) TestCreateCampaignValidationError() {
	req := suite.validCreateRequest()
	req.Name = ""

	campaign, err := suite.campaignService.Create(suite.ctx, suite.tenant, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), campaign)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreateCampaignInvalidFlightDates tests an end date before the start date
func (suite *CampaignServiceTestSuite) TestCreateCampaignInvalidFlightDates() {
	req := suite.validCreateRequest()
	req.StartDate, req.EndDate = req.EndDate, req.StartDate

	campaign, err := suite.campaignService.Create(suite.ctx, suite.tenant, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidFlightDates)
	assert.Nil(suite.T(), campaign)
}

// TestCreateCampaignInvalidProbability tests a probability off the allowed steps
func (suite *CampaignServiceTestSuite) TestCreateCampaignInvalidProbability() {
	req := suite.validCreateRequest()
	req.Probability = 50

	campaign, err := suite.campaignService.Create(suite.ctx, suite.tenant, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidProbability)
	assert.Nil(suite.T(), campaign)
}

// TestCreateCampaignAdvertiserNotFound tests creating for a missing advertiser
func (suite *CampaignServiceTestSuite) TestCreateCampaignAdvertiserNotFound() {
	req := suite.validCreateRequest()

	suite.mockAdvertiserRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", req.AdvertiserID).
		Return(nil, pgx.ErrNoRows).
		Times(1)

	campaign, err := suite.campaignService.Create(suite.ctx, suite.tenant, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAdvertiserNotFound)
	assert.Nil(suite.T(), campaign)
}

// TestCreateCampaignDuplicateName tests the per-advertiser name uniqueness rule
func (suite *CampaignServiceTestSuite) TestCreateCampaignDuplicateName() {
	req := suite.validCreateRequest()

	suite.mockAdvertiserRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", req.AdvertiserID).
		Return(&tenant.Advertiser{ID: req.AdvertiserID}, nil).
		Times(1)

	suite.mockCampaignRepo.EXPECT().
		GetByAdvertiserAndName(gomock.Any(), "org_acme", req.AdvertiserID, req.Name).
		Return(&tenant.Campaign{ID: uuid.New(), Name: req.Name}, nil).
		Times(1)

	campaign, err := suite.campaignService.Create(suite.ctx, suite.tenant, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCampaignExists)
	assert.Nil(suite.T(), campaign)
}

// TestGetCampaignByID tests fetching a campaign
func (suite *CampaignServiceTestSuite) TestGetCampaignByID() {
	campaignID := uuid.New()
	expected := &tenant.Campaign{ID: campaignID, Name: "Q4 Launch"}

	suite.mockCampaignRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", campaignID).
		Return(expected, nil).
		Times(1)

	campaign, err := suite.campaignService.GetByID(suite.ctx, suite.tenant, campaignID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), expected, campaign)
}

// TestGetCampaignByIDNotFound tests fetching a missing campaign
func (suite *CampaignServiceTestSuite) TestGetCampaignByIDNotFound() {
	campaignID := uuid.New()

	suite.mockCampaignRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", campaignID).
		Return(nil, pgx.ErrNoRows).
		Times(1)

	campaign, err := suite.campaignService.GetByID(suite.ctx, suite.tenant, campaignID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCampaignNotFound)
	assert.Nil(suite.T(), campaign)
}

// TestGetAllCampaignsUnknownStatus tests the status filter validation
func (suite *CampaignServiceTestSuite) TestGetAllCampaignsUnknownStatus() {
	resp, err := suite.campaignService.GetAll(suite.ctx, suite.tenant, "archived", 1, 20)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestGetAllCampaignsPaginationDefaults tests page and size clamping
func (suite *CampaignServiceTestSuite) TestGetAllCampaignsPaginationDefaults() {
	suite.mockCampaignRepo.EXPECT().
		GetAll(gomock.Any(), "org_acme", "", 20, 0).
		Return([]tenant.Campaign{}, int64(0), nil).
		Times(1)

	resp, err := suite.campaignService.GetAll(suite.ctx, suite.tenant, "", 0, 500)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 20, resp.PageSize)
}

// TestUpdateCampaignStatusActivates tests draft to active with a notification
func (suite *CampaignServiceTestSuite) TestUpdateCampaignStatusActivates() {
	campaignID := uuid.New()
	existing := &tenant.Campaign{
		ID:     campaignID,
		Name:   "Q4 Launch",
		Status: tenant.CampaignStatusDraft,
	}

	suite.mockCampaignRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", campaignID).
		Return(existing, nil).
		Times(1)

	suite.mockCampaignRepo.EXPECT().
		Update(gomock.Any(), "org_acme", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, c *tenant.Campaign) (*tenant.Campaign, error) {
			return c, nil
		}).
		Times(1)

	suite.mockDispatcher.EXPECT().
		Dispatch(suite.tenant.OrganizationID, models.EventCampaignStatusChanged, gomock.Any()).
		Return(nil).
		Times(1)

	campaign, err := suite.campaignService.UpdateStatus(suite.ctx, suite.tenant, campaignID, tenant.CampaignStatusActive)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), tenant.CampaignStatusActive, campaign.Status)
}

// TestUpdateCampaignStatusIllegalTransition tests draft straight to completed
func (suite *CampaignServiceTestSuite) TestUpdateCampaignStatusIllegalTransition() {
	campaignID := uuid.New()

	suite.mockCampaignRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", campaignID).
		Return(&tenant.Campaign{ID: campaignID, Status: tenant.CampaignStatusDraft}, nil).
		Times(1)

	campaign, err := suite.campaignService.UpdateStatus(suite.ctx, suite.tenant, campaignID, tenant.CampaignStatusCompleted)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatusTransition)
	assert.Nil(suite.T(), campaign)
}

// TestUpdateCampaignStatusCompletedIsTerminal tests moving out of completed
func (suite *CampaignServiceTestSuite) TestUpdateCampaignStatusCompletedIsTerminal() {
	campaignID := uuid.New()

	suite.mockCampaignRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", campaignID).
		Return(&tenant.Campaign{ID: campaignID, Status: tenant.CampaignStatusCompleted}, nil).
		Times(1)

	campaign, err := suite.campaignService.UpdateStatus(suite.ctx, suite.tenant, campaignID, tenant.CampaignStatusActive)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatusTransition)
	assert.Nil(suite.T(), campaign)
}

// TestUpdateCampaignStatusDispatchFailureIsNonFatal tests that a notification
// failure does not fail the transition
func (suite *CampaignServiceTestSuite) TestUpdateCampaignStatusDispatchFailureIsNonFatal() {
	campaignID := uuid.New()

	suite.mockCampaignRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", campaignID).
		Return(&tenant.Campaign{ID: campaignID, Name: "Q4 Launch", Status: tenant.CampaignStatusActive}, nil).
		Times(1)

	suite.mockCampaignRepo.EXPECT().
		Update(gomock.Any(), "org_acme", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, c *tenant.Campaign) (*tenant.Campaign, error) {
			return c, nil
		}).
		Times(1)

	suite.mockDispatcher.EXPECT().
		Dispatch(suite.tenant.OrganizationID, models.EventCampaignStatusChanged, gomock.Any()).
		Return(assert.AnError).
		Times(1)

	campaign, err := suite.campaignService.UpdateStatus(suite.ctx, suite.tenant, campaignID, tenant.CampaignStatusPaused)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), tenant.CampaignStatusPaused, campaign.Status)
}

// TestDeleteCampaign tests deleting a draft campaign
func (suite *CampaignServiceTestSuite) TestDeleteCampaign() {
	campaignID := uuid.New()

	suite.mockCampaignRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", campaignID).
		Return(&tenant.Campaign{ID: campaignID, Status: tenant.CampaignStatusDraft}, nil).
		Times(1)

	suite.mockCampaignRepo.EXPECT().
		Delete(gomock.Any(), "org_acme", campaignID).
		Return(nil).
		Times(1)

	err := suite.campaignService.Delete(suite.ctx, suite.tenant, campaignID)

	assert.NoError(suite.T(), err)
}

// TestDeleteCampaignNotDraft tests deleting an active campaign
func (suite *CampaignServiceTestSuite) TestDeleteCampaignNotDraft() {
	campaignID := uuid.New()

	suite.mockCampaignRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", campaignID).
		Return(&tenant.Campaign{ID: campaignID, Status: tenant.CampaignStatusActive}, nil).
		Times(1)

	err := suite.campaignService.Delete(suite.ctx, suite.tenant, campaignID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

// TestCampaignServiceTestSuite runs the test suite
func TestCampaignServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CampaignServiceTestSuite))
}
