package service_test

import (
	"context"
	"testing"
	"time"

	"podcastflow-backend/internal/database/models"
	apperrors "podcastflow-backend/internal/errors"
	"podcastflow-backend/internal/mocks"
	"podcastflow-backend/internal/service"
	"podcastflow-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// OrganizationServiceTestSuite defines the test suite for OrganizationService.
// Schema provisioning itself needs a live database and is covered by the
// integration tests; these tests exercise the validation and lookup logic
// around it.
type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockOrgRepo         *mocks.MockOrganizationRepositoryInterface
	organizationService *service.OrganizationService
	ctx                 context.Context
}

// SetupTest sets up the test suite
func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.ctx = context.Background()

	suite.organizationService = service.NewOrganizationService(
		suite.mockOrgRepo,
		tenant.NewManager(nil, ""),
		tenant.NewResolver(nil),
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func testOrganization(id uuid.UUID) *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		Name:         "Acme Podcasts",
		Slug:         "acme",
		BillingEmail: "billing@acme.test",
		Plan:         "standard",
		Status:       models.OrganizationStatusActive,
	}
}

// TestCreateOrganizationValidationError tests creating with a missing slug
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationValidationError() {
	req := &service.CreateOrganizationRequest{
		Name:         "Acme Podcasts",
		Slug:         "",
		BillingEmail: "billing@acme.test",
	}

	response, err := suite.organizationService.Create(suite.ctx, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreateOrganizationInvalidSlug tests a slug that cannot name a schema
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationInvalidSlug() {
	req := &service.CreateOrganizationRequest{
		Name:         "Acme Podcasts",
		Slug:         "Acme Podcasts!",
		BillingEmail: "billing@acme.test",
	}

	response, err := suite.organizationService.Create(suite.ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSlug)
	assert.Nil(suite.T(), response)
}

// TestCreateOrganizationDuplicateName tests name uniqueness
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationDuplicateName() {
	req := &service.CreateOrganizationRequest{
		Name:         "Acme Podcasts",
		Slug:         "acme",
		BillingEmail: "billing@acme.test",
	}

	suite.mockOrgRepo.EXPECT().
		GetByName(req.Name).
		Return(testOrganization(uuid.New()), nil).
		Times(1)

	response, err := suite.organizationService.Create(suite.ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationExists)
	assert.Nil(suite.T(), response)
}

// TestCreateOrganizationDuplicateSlug tests slug uniqueness
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationDuplicateSlug() {
	req := &service.CreateOrganizationRequest{
		Name:         "Acme Podcasts",
		Slug:         "acme",
		BillingEmail: "billing@acme.test",
	}

	suite.mockOrgRepo.EXPECT().
		GetByName(req.Name).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockOrgRepo.EXPECT().
		GetBySlug(req.Slug).
		Return(testOrganization(uuid.New()), nil).
		Times(1)

	response, err := suite.organizationService.Create(suite.ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationExists)
	assert.Nil(suite.T(), response)
}

// TestGetOrganizationByID tests fetching an organization
func (suite *OrganizationServiceTestSuite) TestGetOrganizationByID() {
	orgID := uuid.New()

	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(testOrganization(orgID), nil).
		Times(1)

	response, err := suite.organizationService.GetByID(suite.ctx, orgID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), orgID, response.ID)
	assert.Equal(suite.T(), "org_acme", response.SchemaName)
	assert.Equal(suite.T(), "active", response.Status)
}

// TestGetOrganizationByIDNotFound tests fetching a missing organization
func (suite *OrganizationServiceTestSuite) TestGetOrganizationByIDNotFound() {
	orgID := uuid.New()

	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.organizationService.GetByID(suite.ctx, orgID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
	assert.Nil(suite.T(), response)
}

// TestGetOrganizationBySlugNotFound tests fetching by a missing slug
func (suite *OrganizationServiceTestSuite) TestGetOrganizationBySlugNotFound() {
	suite.mockOrgRepo.EXPECT().
		GetBySlug("ghost").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.organizationService.GetBySlug(suite.ctx, "ghost")

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
	assert.Nil(suite.T(), response)
}

// TestGetAllOrganizations tests pagination clamping and response mapping
func (suite *OrganizationServiceTestSuite) TestGetAllOrganizations() {
	orgs := []models.Organization{*testOrganization(uuid.New()), *testOrganization(uuid.New())}

	suite.mockOrgRepo.EXPECT().
		GetAll(20, 0).
		Return(orgs, int64(2), nil).
		Times(1)

	response, err := suite.organizationService.GetAll(suite.ctx, 0, 1000)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Organizations, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
	assert.Equal(suite.T(), 1, response.Page)
	assert.Equal(suite.T(), 20, response.PageSize)
}

// TestUpdateOrganization tests updating mutable fields
func (suite *OrganizationServiceTestSuite) TestUpdateOrganization() {
	orgID := uuid.New()
	req := &service.UpdateOrganizationRequest{
		Name:         "Acme Audio",
		BillingEmail: "ap@acme.test",
		Plan:         "professional",
		Status:       "suspended",
	}

	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(testOrganization(orgID), nil).
		Times(1)

	suite.mockOrgRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.organizationService.Update(suite.ctx, orgID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme Audio", response.Name)
	assert.Equal(suite.T(), "professional", response.Plan)
	assert.Equal(suite.T(), "suspended", response.Status)
	// Slug, and with it the schema, never changes
	assert.Equal(suite.T(), "acme", response.Slug)
	assert.Equal(suite.T(), "org_acme", response.SchemaName)
}

// TestUpdateOrganizationInvalidStatus tests the status whitelist
func (suite *OrganizationServiceTestSuite) TestUpdateOrganizationInvalidStatus() {
	req := &service.UpdateOrganizationRequest{
		Name:         "Acme Audio",
		BillingEmail: "ap@acme.test",
		Status:       "archived",
	}

	response, err := suite.organizationService.Update(suite.ctx, uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestDeleteOrganization tests deleting without dropping the schema
func (suite *OrganizationServiceTestSuite) TestDeleteOrganization() {
	orgID := uuid.New()

	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(testOrganization(orgID), nil).
		Times(1)

	suite.mockOrgRepo.EXPECT().
		Delete(orgID).
		Return(nil).
		Times(1)

	err := suite.organizationService.Delete(suite.ctx, orgID, false)

	assert.NoError(suite.T(), err)
}

// TestDeleteOrganizationNotFound tests deleting a missing organization
func (suite *OrganizationServiceTestSuite) TestDeleteOrganizationNotFound() {
	orgID := uuid.New()

	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.organizationService.Delete(suite.ctx, orgID, false)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

// TestOrganizationServiceTestSuite runs the test suite
func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
