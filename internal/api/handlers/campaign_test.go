package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"podcastflow-backend/internal/auth"
	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/mocks"
	"podcastflow-backend/internal/service"
	"podcastflow-backend/internal/tenant"
	"podcastflow-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CampaignHandlerTestSuite defines the test suite for CampaignHandler
type CampaignHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockCampaignService *mocks.MockCampaignServiceInterface
	handler             *CampaignHandler
	httpSuite           *testutils.HTTPTestSuite
	tenant              tenant.Tenant
}

// SetupTest sets up the test suite
func (suite *CampaignHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCampaignService = mocks.NewMockCampaignServiceInterface(suite.ctrl)

	suite.handler = NewCampaignHandler(suite.mockCampaignService)

	suite.httpSuite = testutils.SetupHTTPTest()

	orgID := uuid.New()
	suite.tenant = tenant.Tenant{
		OrganizationID: orgID,
		Slug:           "acme",
		Schema:         "org_acme",
	}

	// Stand-in for RequireAuth so handlers see an authenticated caller
	v1 := suite.httpSuite.Router.Group("/api/v1", func(c *gin.Context) {
		c.Set(auth.ContextKeyClaims, &auth.Claims{
			UserID:         uuid.New(),
			OrganizationID: orgID,
			Email:          "sales@acme.test",
			Role:           "sales",
		})
		c.Set(auth.ContextKeyTenant, suite.tenant)
		c.Next()
	})

	campaigns := v1.Group("/campaigns")
	{
		campaigns.POST("", suite.handler.CreateCampaign)
		campaigns.GET("", suite.handler.ListCampaigns)
		campaigns.GET("/:id", suite.handler.GetCampaign)
		campaigns.PUT("/:id", suite.handler.UpdateCampaign)
		campaigns.PATCH("/:id/status", suite.handler.UpdateCampaignStatus)
		campaigns.DELETE("/:id", suite.handler.DeleteCampaign)
	}
	v1.GET("/advertisers/:id/campaigns", suite.handler.ListAdvertiserCampaigns)
}

// TearDownTest cleans up after each test
func (suite *CampaignHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateCampaign tests creating a campaign
func (suite *CampaignHandlerTestSuite) TestCreateCampaign() {
	advertiserID := uuid.New()
	campaignID := uuid.New()
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	requestBody := map[string]interface{}{
		"advertiser_id": advertiserID,
		"name":          "Q4 Launch",
		"budget_cents":  1000000,
		"probability":   50,
		"start_date":    start,
		"end_date":      end,
	}

	expectedCampaign := &tenant.Campaign{
		ID:           campaignID,
		AdvertiserID: advertiserID,
		Name:         "Q4 Launch",
		Status:       tenant.CampaignStatusDraft,
		BudgetCents:  1000000,
		Probability:  50,
		StartDate:    start,
		EndDate:      end,
	}

	suite.mockCampaignService.EXPECT().
		Create(gomock.Any(), suite.tenant, gomock.Any()).
		Return(expectedCampaign, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/campaigns", requestBody)

	var response tenant.Campaign
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), campaignID, response.ID)
	assert.Equal(suite.T(), tenant.CampaignStatusDraft, response.Status)
}

// TestCreateCampaignInvalidFlightDates tests the flight date business rule
func (suite *CampaignHandlerTestSuite) TestCreateCampaignInvalidFlightDates() {
	requestBody := map[string]interface{}{
		"advertiser_id": uuid.New(),
		"name":          "Backwards Flight",
		"budget_cents":  1000000,
		"probability":   50,
		"start_date":    time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		"end_date":      time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockCampaignService.EXPECT().
		Create(gomock.Any(), suite.tenant, gomock.Any()).
		Return(nil, apperrors.ErrInvalidFlightDates).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/campaigns", requestBody)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, recorder.Code)
}

// TestCreateCampaignUnauthenticated tests the route without tenant context
func (suite *CampaignHandlerTestSuite) TestCreateCampaignUnauthenticated() {
	bare := testutils.SetupHTTPTest()
	bare.Router.POST("/api/v1/campaigns", suite.handler.CreateCampaign)

	recorder := bare.MakeRequest("POST", "/api/v1/campaigns", map[string]interface{}{})

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestGetCampaign tests getting a campaign by ID
func (suite *CampaignHandlerTestSuite) TestGetCampaign() {
	campaignID := uuid.New()
	expectedCampaign := &tenant.Campaign{
		ID:     campaignID,
		Name:   "Q4 Launch",
		Status: tenant.CampaignStatusActive,
	}

	suite.mockCampaignService.EXPECT().
		GetByID(gomock.Any(), suite.tenant, campaignID).
		Return(expectedCampaign, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/campaigns/%s", campaignID), nil)

	var response tenant.Campaign
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), campaignID, response.ID)
}

// TestGetCampaignNotFound tests getting a missing campaign
func (suite *CampaignHandlerTestSuite) TestGetCampaignNotFound() {
	campaignID := uuid.New()

	suite.mockCampaignService.EXPECT().
		GetByID(gomock.Any(), suite.tenant, campaignID).
		Return(nil, apperrors.NewNotFoundError("campaign")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/campaigns/%s", campaignID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestListCampaigns tests the paginated list
func (suite *CampaignHandlerTestSuite) TestListCampaigns() {
	expectedResponse := &service.CampaignListResponse{
		Campaigns: []tenant.Campaign{
			{ID: uuid.New(), Name: "Q4 Launch", Status: tenant.CampaignStatusDraft},
			{ID: uuid.New(), Name: "Spring Refresh", Status: tenant.CampaignStatusActive},
		},
		Total:    2,
		Page:     1,
		PageSize: 20,
	}

	suite.mockCampaignService.EXPECT().
		GetAll(gomock.Any(), suite.tenant, "", 1, 20).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/campaigns", nil)

	var response service.CampaignListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Campaigns, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
}

// TestListCampaignsStatusFilter tests that the status filter reaches the service
func (suite *CampaignHandlerTestSuite) TestListCampaignsStatusFilter() {
	expectedResponse := &service.CampaignListResponse{
		Campaigns: []tenant.Campaign{
			{ID: uuid.New(), Name: "Q4 Launch", Status: tenant.CampaignStatusActive},
		},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}

	suite.mockCampaignService.EXPECT().
		GetAll(gomock.Any(), suite.tenant, "active", 1, 20).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/campaigns?status=active", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestListAdvertiserCampaigns tests listing campaigns for an advertiser
func (suite *CampaignHandlerTestSuite) TestListAdvertiserCampaigns() {
	advertiserID := uuid.New()
	campaigns := []tenant.Campaign{
		{ID: uuid.New(), AdvertiserID: advertiserID, Name: "Q4 Launch"},
	}

	suite.mockCampaignService.EXPECT().
		GetByAdvertiser(gomock.Any(), suite.tenant, advertiserID).
		Return(campaigns, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/advertisers/%s/campaigns", advertiserID), nil)

	var response map[string][]tenant.Campaign
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response["campaigns"], 1)
}

// TestUpdateCampaign tests updating a campaign's terms
func (suite *CampaignHandlerTestSuite) TestUpdateCampaign() {
	campaignID := uuid.New()
	requestBody := map[string]interface{}{
		"name":         "Q4 Launch v2",
		"budget_cents": 1500000,
		"probability":  75,
		"start_date":   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		"end_date":     time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	expectedCampaign := &tenant.Campaign{
		ID:          campaignID,
		Name:        "Q4 Launch v2",
		BudgetCents: 1500000,
		Probability: 75,
	}

	suite.mockCampaignService.EXPECT().
		Update(gomock.Any(), suite.tenant, campaignID, gomock.Any()).
		Return(expectedCampaign, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/campaigns/%s", campaignID), requestBody)

	var response tenant.Campaign
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "Q4 Launch v2", response.Name)
	assert.Equal(suite.T(), int64(1500000), response.BudgetCents)
}

// TestUpdateCampaignStatus tests a valid status transition
func (suite *CampaignHandlerTestSuite) TestUpdateCampaignStatus() {
	campaignID := uuid.New()
	requestBody := map[string]interface{}{"status": "active"}

	expectedCampaign := &tenant.Campaign{
		ID:     campaignID,
		Name:   "Q4 Launch",
		Status: tenant.CampaignStatusActive,
	}

	suite.mockCampaignService.EXPECT().
		UpdateStatus(gomock.Any(), suite.tenant, campaignID, "active").
		Return(expectedCampaign, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", fmt.Sprintf("/api/v1/campaigns/%s/status", campaignID), requestBody)

	var response tenant.Campaign
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), tenant.CampaignStatusActive, response.Status)
}

// TestUpdateCampaignStatusInvalidTransition tests an illegal transition
func (suite *CampaignHandlerTestSuite) TestUpdateCampaignStatusInvalidTransition() {
	campaignID := uuid.New()
	requestBody := map[string]interface{}{"status": "draft"}

	suite.mockCampaignService.EXPECT().
		UpdateStatus(gomock.Any(), suite.tenant, campaignID, "draft").
		Return(nil, fmt.Errorf("campaign status completed: %w", apperrors.ErrInvalidStatusTransition)).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", fmt.Sprintf("/api/v1/campaigns/%s/status", campaignID), requestBody)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, recorder.Code)
}

// TestUpdateCampaignStatusMissingStatus tests the binding validation
func (suite *CampaignHandlerTestSuite) TestUpdateCampaignStatusMissingStatus() {
	campaignID := uuid.New()

	recorder := suite.httpSuite.MakeRequest("PATCH", fmt.Sprintf("/api/v1/campaigns/%s/status", campaignID), map[string]interface{}{})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestDeleteCampaign tests deleting a draft campaign
func (suite *CampaignHandlerTestSuite) TestDeleteCampaign() {
	campaignID := uuid.New()

	suite.mockCampaignService.EXPECT().
		Delete(gomock.Any(), suite.tenant, campaignID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/campaigns/%s", campaignID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestDeleteCampaignNotDraft tests deleting a campaign past draft
func (suite *CampaignHandlerTestSuite) TestDeleteCampaignNotDraft() {
	campaignID := uuid.New()

	suite.mockCampaignService.EXPECT().
		Delete(gomock.Any(), suite.tenant, campaignID).
		Return(fmt.Errorf("campaign is active: %w", apperrors.ErrInvalidStatus)).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/campaigns/%s", campaignID), nil)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, recorder.Code)
}

// TestCampaignHandlerTestSuite runs the test suite
func TestCampaignHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CampaignHandlerTestSuite))
}
