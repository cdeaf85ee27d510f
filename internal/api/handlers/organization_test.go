package handlers

import (
	"fmt"
	"net/http"
	"testing"

	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/mocks"
	"podcastflow-backend/internal/service"
	"podcastflow-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl                    *gomock.Controller
	mockOrganizationService *mocks.MockOrganizationServiceInterface
	handler                 *OrganizationHandler
	httpSuite               *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrganizationService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)

	suite.handler = NewOrganizationHandler(suite.mockOrganizationService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	orgs := v1.Group("/organizations")
	{
		orgs.POST("", suite.handler.CreateOrganization)
		orgs.GET("", suite.handler.ListOrganizations)
		orgs.GET("/:id", suite.handler.GetOrganization)
		orgs.GET("/by-slug/:slug", suite.handler.GetOrganizationBySlug)
		orgs.PUT("/:id", suite.handler.UpdateOrganization)
		orgs.DELETE("/:id", suite.handler.DeleteOrganization)
	}
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOrganization tests creating an organization
func (suite *OrganizationHandlerTestSuite) TestCreateOrganization() {
	orgID := uuid.New()
	requestBody := map[string]interface{}{
		"name":          "Acme Podcasts",
		"slug":          "acme",
		"billing_email": "billing@acme.test",
		"plan":          "standard",
	}

	expectedResponse := &service.OrganizationResponse{
		ID:           orgID,
		Name:         "Acme Podcasts",
		Slug:         "acme",
		BillingEmail: "billing@acme.test",
		Plan:         "standard",
		Status:       "active",
		SchemaName:   "org_acme",
		CreatedAt:    "2026-01-01T00:00:00Z",
		UpdatedAt:    "2026-01-01T00:00:00Z",
	}

	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	var response service.OrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), orgID, response.ID)
	assert.Equal(suite.T(), "acme", response.Slug)
	assert.Equal(suite.T(), "org_acme", response.SchemaName)
}

// TestCreateOrganizationDuplicateSlug tests the conflict path
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationDuplicateSlug() {
	requestBody := map[string]interface{}{
		"name":          "Acme Podcasts",
		"slug":          "acme",
		"billing_email": "billing@acme.test",
	}

	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewAlreadyExistsError("organization", "slug acme")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestCreateOrganizationInvalidBody tests malformed JSON handling
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationInvalidBody() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", "not-json")

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestGetOrganization tests getting an organization by ID
func (suite *OrganizationHandlerTestSuite) TestGetOrganization() {
	orgID := uuid.New()
	expectedResponse := &service.OrganizationResponse{
		ID:     orgID,
		Name:   "Acme Podcasts",
		Slug:   "acme",
		Status: "active",
	}

	suite.mockOrganizationService.EXPECT().
		GetByID(gomock.Any(), orgID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/organizations/%s", orgID), nil)

	var response service.OrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), orgID, response.ID)
}

// TestGetOrganizationNotFound tests getting a missing organization
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationNotFound() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		GetByID(gomock.Any(), orgID).
		Return(nil, apperrors.NewNotFoundError("organization")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/organizations/%s", orgID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestGetOrganizationInvalidID tests UUID validation on the path parameter
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestGetOrganizationBySlug tests the slug lookup route
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationBySlug() {
	expectedResponse := &service.OrganizationResponse{
		ID:   uuid.New(),
		Name: "Acme Podcasts",
		Slug: "acme",
	}

	suite.mockOrganizationService.EXPECT().
		GetBySlug(gomock.Any(), "acme").
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/by-slug/acme", nil)

	var response service.OrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "acme", response.Slug)
}

// TestListOrganizations tests the paginated list
func (suite *OrganizationHandlerTestSuite) TestListOrganizations() {
	expectedResponse := &service.OrganizationListResponse{
		Organizations: []service.OrganizationResponse{
			{ID: uuid.New(), Name: "Acme Podcasts", Slug: "acme"},
			{ID: uuid.New(), Name: "Beacon Audio", Slug: "beacon"},
		},
		Total:    2,
		Page:     1,
		PageSize: 20,
	}

	suite.mockOrganizationService.EXPECT().
		GetAll(gomock.Any(), 1, 20).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations", nil)

	var response service.OrganizationListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Organizations, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
}

// TestListOrganizationsPagination tests that query parameters reach the service
func (suite *OrganizationHandlerTestSuite) TestListOrganizationsPagination() {
	expectedResponse := &service.OrganizationListResponse{
		Organizations: []service.OrganizationResponse{},
		Total:         0,
		Page:          3,
		PageSize:      5,
	}

	suite.mockOrganizationService.EXPECT().
		GetAll(gomock.Any(), 3, 5).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations?page=3&page_size=5", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestUpdateOrganization tests updating an organization
func (suite *OrganizationHandlerTestSuite) TestUpdateOrganization() {
	orgID := uuid.New()
	requestBody := map[string]interface{}{
		"name":          "Acme Audio",
		"billing_email": "ap@acme.test",
		"plan":          "professional",
	}

	expectedResponse := &service.OrganizationResponse{
		ID:           orgID,
		Name:         "Acme Audio",
		BillingEmail: "ap@acme.test",
		Plan:         "professional",
	}

	suite.mockOrganizationService.EXPECT().
		Update(gomock.Any(), orgID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/organizations/%s", orgID), requestBody)

	var response service.OrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "Acme Audio", response.Name)
	assert.Equal(suite.T(), "professional", response.Plan)
}

// TestDeleteOrganization tests deleting an organization
func (suite *OrganizationHandlerTestSuite) TestDeleteOrganization() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		Delete(gomock.Any(), orgID, false).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/organizations/%s", orgID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestDeleteOrganizationDropSchema tests that drop_schema reaches the service
func (suite *OrganizationHandlerTestSuite) TestDeleteOrganizationDropSchema() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		Delete(gomock.Any(), orgID, true).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/organizations/%s?drop_schema=true", orgID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestOrganizationHandlerTestSuite runs the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
