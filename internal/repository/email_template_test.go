package repository

import (
	"testing"

	"podcastflow-backend/internal/database/models"
	"podcastflow-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// EmailTemplateRepositoryTestSuite tests the EmailTemplateRepository
type EmailTemplateRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *EmailTemplateRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *EmailTemplateRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewEmailTemplateRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *EmailTemplateRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *EmailTemplateRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *EmailTemplateRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *EmailTemplateRepositoryTestSuite) createOrganization() *models.Organization {
	org := suite.factories.Organization.Create()
	err := suite.orgRepo.Create(org)
	suite.NoError(err)
	return org
}

// TestLookupPrefersOrganizationOverride tests that an org-scoped template
// wins over the system default for the same key
func (suite *EmailTemplateRepositoryTestSuite) TestLookupPrefersOrganizationOverride() {
	org := suite.createOrganization()

	systemDefault := suite.factories.EmailTemplate.Create()
	err := suite.repo.Create(systemDefault)
	suite.NoError(err)

	override := suite.factories.EmailTemplate.WithOrganization(org.ID)
	override.Subject = "Your Acme invoice {{.invoice_number}}"
	err = suite.repo.Create(override)
	suite.NoError(err)

	tpl, err := suite.repo.Lookup(org.ID, "invoice_generated")

	suite.NoError(err)
	suite.NotNil(tpl)
	suite.Equal(override.ID, tpl.ID)
	suite.Equal("Your Acme invoice {{.invoice_number}}", tpl.Subject)
}

// TestLookupFallsBackToSystemDefault tests that orgs without an override get
// the system template
func (suite *EmailTemplateRepositoryTestSuite) TestLookupFallsBackToSystemDefault() {
	org := suite.createOrganization()

	systemDefault := suite.factories.EmailTemplate.Create()
	err := suite.repo.Create(systemDefault)
	suite.NoError(err)

	tpl, err := suite.repo.Lookup(org.ID, "invoice_generated")

	suite.NoError(err)
	suite.NotNil(tpl)
	suite.Equal(systemDefault.ID, tpl.ID)
	suite.Nil(tpl.OrganizationID)
}

// TestLookupIgnoresInactiveOverride tests that a deactivated override falls
// through to the system default
func (suite *EmailTemplateRepositoryTestSuite) TestLookupIgnoresInactiveOverride() {
	org := suite.createOrganization()

	systemDefault := suite.factories.EmailTemplate.Create()
	err := suite.repo.Create(systemDefault)
	suite.NoError(err)

	override := suite.factories.EmailTemplate.WithOrganization(org.ID)
	err = suite.repo.Create(override)
	suite.NoError(err)

	override.IsActive = false
	err = suite.repo.Update(override)
	suite.NoError(err)

	tpl, err := suite.repo.Lookup(org.ID, "invoice_generated")

	suite.NoError(err)
	suite.Equal(systemDefault.ID, tpl.ID)
}

// TestLookupNotFound tests a key with no template anywhere
func (suite *EmailTemplateRepositoryTestSuite) TestLookupNotFound() {
	org := suite.createOrganization()

	tpl, err := suite.repo.Lookup(org.ID, "campaign_archived")

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(tpl)
}

// TestLookupScopedToOrganization tests that another org's override is never
// returned
func (suite *EmailTemplateRepositoryTestSuite) TestLookupScopedToOrganization() {
	org := suite.createOrganization()
	otherOrg := suite.createOrganization()

	systemDefault := suite.factories.EmailTemplate.Create()
	err := suite.repo.Create(systemDefault)
	suite.NoError(err)

	otherOverride := suite.factories.EmailTemplate.WithOrganization(otherOrg.ID)
	otherOverride.Subject = "Other org subject"
	err = suite.repo.Create(otherOverride)
	suite.NoError(err)

	tpl, err := suite.repo.Lookup(org.ID, "invoice_generated")

	suite.NoError(err)
	suite.Equal(systemDefault.ID, tpl.ID)
}

// TestGetByOrganizationID tests template visibility listing
func (suite *EmailTemplateRepositoryTestSuite) TestGetByOrganizationID() {
	org := suite.createOrganization()
	otherOrg := suite.createOrganization()

	err := suite.repo.Create(suite.factories.EmailTemplate.Create())
	suite.NoError(err)
	err = suite.repo.Create(suite.factories.EmailTemplate.WithOrganization(org.ID))
	suite.NoError(err)
	err = suite.repo.Create(suite.factories.EmailTemplate.WithOrganization(otherOrg.ID))
	suite.NoError(err)

	tpls, err := suite.repo.GetByOrganizationID(org.ID)

	suite.NoError(err)
	suite.Len(tpls, 2)
	for _, tpl := range tpls {
		if tpl.OrganizationID != nil {
			suite.Equal(org.ID, *tpl.OrganizationID)
		}
	}
}

// TestGetByOrganizationIDSystemOnly tests that a fresh organization still
// sees the system defaults
func (suite *EmailTemplateRepositoryTestSuite) TestGetByOrganizationIDSystemOnly() {
	org := suite.createOrganization()

	err := suite.repo.Create(suite.factories.EmailTemplate.Create())
	suite.NoError(err)
	err = suite.repo.Create(suite.factories.EmailTemplate.WithKey("order_approved"))
	suite.NoError(err)

	tpls, err := suite.repo.GetByOrganizationID(org.ID)

	suite.NoError(err)
	suite.Len(tpls, 2)
}

// Run the test suite
func TestEmailTemplateRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EmailTemplateRepositoryTestSuite))
}
