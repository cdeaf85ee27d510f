package repository

import (
	"context"
	"testing"
	"time"

	"podcastflow-backend/internal/tenant"
	"podcastflow-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

// invoiceTestSlug is the tenant provisioned fresh for every test; the base
// suite drops all org_* schemas between tests
const invoiceTestSlug = "billing_acme"

// InvoiceRepositoryTestSuite tests the InvoiceRepository against a real
// tenant schema with the embedded migrations applied
type InvoiceRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite  *testutils.BaseTestSuite
	pool           *pgxpool.Pool
	manager        *tenant.Manager
	repo           *InvoiceRepository
	advertiserRepo *AdvertiserRepository
	campaignRepo   *CampaignRepository
	factories      *testutils.FactorySet
	schema         string
	campaign       *tenant.Campaign
}

// SetupSuite runs before all tests in the suite
func (suite *InvoiceRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	pool, err := pgxpool.New(context.Background(), suite.baseTestSuite.Config.DatabaseURL)
	suite.Require().NoError(err)
	suite.pool = pool

	gw := tenant.NewGateway(pool)
	suite.manager = tenant.NewManager(pool, suite.baseTestSuite.Config.DatabaseURL)
	suite.repo = NewInvoiceRepository(gw)
	suite.advertiserRepo = NewAdvertiserRepository(gw)
	suite.campaignRepo = NewCampaignRepository(gw)
	suite.factories = testutils.NewFactorySet()

	schema, err := tenant.SchemaFor(invoiceTestSlug)
	suite.Require().NoError(err)
	suite.schema = schema
}

// TearDownSuite runs after all tests in the suite
func (suite *InvoiceRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
	if suite.pool != nil {
		suite.pool.Close()
	}
}

// SetupTest provisions the tenant schema and seeds a campaign to invoice
func (suite *InvoiceRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	ctx := context.Background()
	err := suite.manager.CreateSchema(ctx, invoiceTestSlug)
	suite.Require().NoError(err)

	advertiser, err := suite.advertiserRepo.Create(ctx, suite.schema, suite.factories.Advertiser.Create())
	suite.Require().NoError(err)

	campaign, err := suite.campaignRepo.Create(ctx, suite.schema, suite.factories.Campaign.WithAdvertiser(advertiser.ID))
	suite.Require().NoError(err)
	suite.campaign = campaign
}

// TearDownTest runs after each test
func (suite *InvoiceRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *InvoiceRepositoryTestSuite) draftInvoice() *tenant.Invoice {
	now := time.Now()
	due := now.AddDate(0, 0, 30)
	return &tenant.Invoice{
		CampaignID:  suite.campaign.ID,
		Status:      tenant.InvoiceStatusDraft,
		AmountCents: 250000,
		Currency:    "USD",
		IssuedAt:    &now,
		DueDate:     &due,
	}
}

// TestCreateAllocatesSequentialNumbers tests that numbers come off the tenant
// sequence and never collide
func (suite *InvoiceRepositoryTestSuite) TestCreateAllocatesSequentialNumbers() {
	ctx := context.Background()

	first, err := suite.repo.Create(ctx, suite.schema, suite.draftInvoice())
	suite.NoError(err)
	suite.NotNil(first)
	suite.Regexp(`^INV-\d{4}-00001$`, first.Number)

	second, err := suite.repo.Create(ctx, suite.schema, suite.draftInvoice())
	suite.NoError(err)
	suite.Regexp(`^INV-\d{4}-00002$`, second.Number)
	suite.NotEqual(first.Number, second.Number)
}

// TestCreatePersistsInvoice tests the inserted row roundtrips
func (suite *InvoiceRepositoryTestSuite) TestCreatePersistsInvoice() {
	ctx := context.Background()

	created, err := suite.repo.Create(ctx, suite.schema, suite.draftInvoice())
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, created.ID)

	retrieved, err := suite.repo.GetByID(ctx, suite.schema, created.ID)
	suite.NoError(err)
	suite.Equal(created.Number, retrieved.Number)
	suite.Equal(suite.campaign.ID, retrieved.CampaignID)
	suite.Equal(tenant.InvoiceStatusDraft, retrieved.Status)
	suite.Equal(int64(250000), retrieved.AmountCents)
	suite.Equal("USD", retrieved.Currency)
}

// TestGetByNumber tests lookup by the allocated number
func (suite *InvoiceRepositoryTestSuite) TestGetByNumber() {
	ctx := context.Background()

	created, err := suite.repo.Create(ctx, suite.schema, suite.draftInvoice())
	suite.NoError(err)

	retrieved, err := suite.repo.GetByNumber(ctx, suite.schema, created.Number)
	suite.NoError(err)
	suite.Equal(created.ID, retrieved.ID)
}

// TestGetByIDNotFound tests retrieving a non-existent invoice
func (suite *InvoiceRepositoryTestSuite) TestGetByIDNotFound() {
	invoice, err := suite.repo.GetByID(context.Background(), suite.schema, uuid.New())

	suite.Error(err)
	suite.ErrorIs(err, pgx.ErrNoRows)
	suite.Nil(invoice)
}

// TestUpdateStatusStampsPaidAt tests that paying an invoice records the time
func (suite *InvoiceRepositoryTestSuite) TestUpdateStatusStampsPaidAt() {
	ctx := context.Background()

	created, err := suite.repo.Create(ctx, suite.schema, suite.draftInvoice())
	suite.NoError(err)
	suite.Nil(created.PaidAt)

	sent, err := suite.repo.UpdateStatus(ctx, suite.schema, created.ID, tenant.InvoiceStatusSent)
	suite.NoError(err)
	suite.Equal(tenant.InvoiceStatusSent, sent.Status)
	suite.Nil(sent.PaidAt)

	paid, err := suite.repo.UpdateStatus(ctx, suite.schema, created.ID, tenant.InvoiceStatusPaid)
	suite.NoError(err)
	suite.Equal(tenant.InvoiceStatusPaid, paid.Status)
	suite.NotNil(paid.PaidAt)
}

// TestGetByCampaignID tests listing a campaign's invoices
func (suite *InvoiceRepositoryTestSuite) TestGetByCampaignID() {
	ctx := context.Background()

	_, err := suite.repo.Create(ctx, suite.schema, suite.draftInvoice())
	suite.NoError(err)
	_, err = suite.repo.Create(ctx, suite.schema, suite.draftInvoice())
	suite.NoError(err)

	invoices, err := suite.repo.GetByCampaignID(ctx, suite.schema, suite.campaign.ID)
	suite.NoError(err)
	suite.Len(invoices, 2)
}

// TestGetAllFiltersByStatus tests the status filter and total count
func (suite *InvoiceRepositoryTestSuite) TestGetAllFiltersByStatus() {
	ctx := context.Background()

	first, err := suite.repo.Create(ctx, suite.schema, suite.draftInvoice())
	suite.NoError(err)
	_, err = suite.repo.Create(ctx, suite.schema, suite.draftInvoice())
	suite.NoError(err)

	_, err = suite.repo.UpdateStatus(ctx, suite.schema, first.ID, tenant.InvoiceStatusSent)
	suite.NoError(err)

	sent, total, err := suite.repo.GetAll(ctx, suite.schema, tenant.InvoiceStatusSent, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(sent, 1)
	suite.Equal(first.ID, sent[0].ID)

	all, total, err := suite.repo.GetAll(ctx, suite.schema, "", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(all, 2)
}

// Run the test suite
func TestInvoiceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceRepositoryTestSuite))
}
