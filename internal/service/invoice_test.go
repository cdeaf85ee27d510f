package service_test

import (
	"context"
	"testing"

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

// InvoiceServiceTestSuite defines the test suite for InvoiceService
type InvoiceServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockInvoiceRepo  *mocks.MockInvoiceRepositoryInterface
	mockCampaignRepo *mocks.MockCampaignRepositoryInterface
	mockOrderRepo    *mocks.MockOrderRepositoryInterface
	mockDispatcher   *mocks.MockNotificationDispatcherInterface
	invoiceService   *service.InvoiceService
	tenant           tenant.Tenant
	ctx              context.Context
}

// SetupTest sets up the test suite
func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockInvoiceRepo = mocks.NewMockInvoiceRepositoryInterface(suite.ctrl)
	suite.mockCampaignRepo = mocks.NewMockCampaignRepositoryInterface(suite.ctrl)
	suite.mockOrderRepo = mocks.NewMockOrderRepositoryInterface(suite.ctrl)
	suite.mockDispatcher = mocks.NewMockNotificationDispatcherInterface(suite.ctrl)
	suite.ctx = context.Background()
	suite.tenant = tenant.Tenant{
		OrganizationID: uuid.New(),
		Slug:           "acme",
		Schema:         "org_acme",
	}

	suite.invoiceService = service.NewInvoiceService(
		suite.mockInvoiceRepo,
		suite.mockCampaignRepo,
		suite.mockOrderRepo,
		suite.mockDispatcher,
		validator.New(),
		logger.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *InvoiceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGenerateInvoice tests invoicing a campaign's booked items
func (suite *InvoiceServiceTestSuite) TestGenerateInvoice() {
	campaignID := uuid.New()
	invoiceID := uuid.New()
	req := &service.GenerateInvoiceRequest{CampaignID: campaignID}

	suite.mockCampaignRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", campaignID).
		Return(&tenant.Campaign{ID: campaignID, Name: "Q4 Launch", Status: tenant.CampaignStatusActive}, nil).
		Times(1)

	suite.mockOrderRepo.EXPECT().
		BookedTotalForCampaign(gomock.Any(), "org_acme", campaignID).
		Return(int64(250000), nil).
		Times(1)

	suite.mockInvoiceRepo.EXPECT().
		Create(gomock.Any(), "org_acme", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, inv *tenant.Invoice) (*tenant.Invoice, error) {
			created := *inv
			created.ID = invoiceID
			created.Number = "INV-2026-0001"
			return &created, nil
		}).
		Times(1)

	suite.mockDispatcher.EXPECT().
		Dispatch(suite.tenant.OrganizationID, models.EventInvoiceGenerated, gomock.Any()).
		Return(nil).
		Times(1)

	invoice, err := suite.invoiceService.Generate(suite.ctx, suite.tenant, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), invoiceID, invoice.ID)
	assert.Equal(suite.T(), tenant.InvoiceStatusDraft, invoice.Status)
	assert.Equal(suite.T(), int64(250000), invoice.AmountCents)
	assert.Equal(suite.T(), "USD", invoice.Currency)
	assert.NotNil(suite.T(), invoice.DueDate)
}

// TestGenerateInvoiceNoBookedItems tests invoicing with nothing booked
func (suite *InvoiceServiceTestSuite) TestGenerateInvoiceNoBookedItems() {
	campaignID := uuid.New()
	req := &service.GenerateInvoiceRequest{CampaignID: campaignID}

	suite.mockCampaignRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", campaignID).
		Return(&tenant.Campaign{ID: campaignID, Status: tenant.CampaignStatusActive}, nil).
		Times(1)

	suite.mockOrderRepo.EXPECT().
		BookedTotalForCampaign(gomock.Any(), "org_acme", campaignID).
		Return(int64(0), nil).
		Times(1)

	invoice, err := suite.invoiceService.Generate(suite.ctx, suite.tenant, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNoBookedItems)
	assert.Nil(suite.T(), invoice)
}

// TestGenerateInvoiceCampaignNotFound tests invoicing a missing campaign
func (suite *InvoiceServiceTestSuite) TestGenerateInvoiceCampaignNotFound() {
	campaignID := uuid.New()
	req := &service.GenerateInvoiceRequest{CampaignID: campaignID}

	suite.mockCampaignRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", campaignID).
		Return(nil, pgx.ErrNoRows).
		Times(1)

	invoice, err := suite.invoiceService.Generate(suite.ctx, suite.tenant, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCampaignNotFound)
	assert.Nil(suite.T(), invoice)
}

// TestGenerateInvoiceCustomTerms tests a non-default currency and due window
func (suite *InvoiceServiceTestSuite) TestGenerateInvoiceCustomTerms() {
	campaignID := uuid.New()
	req := &service.GenerateInvoiceRequest{CampaignID: campaignID, Currency: "EUR", DueInDays: 14}

	suite.mockCampaignRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", campaignID).
		Return(&tenant.Campaign{ID: campaignID, Name: "Q4 Launch"}, nil).
		Times(1)

	suite.mockOrderRepo.EXPECT().
		BookedTotalForCampaign(gomock.Any(), "org_acme", campaignID).
		Return(int64(90000), nil).
		Times(1)

	suite.mockInvoiceRepo.EXPECT().
		Create(gomock.Any(), "org_acme", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, inv *tenant.Invoice) (*tenant.Invoice, error) {
			return inv, nil
		}).
		Times(1)

	suite.mockDispatcher.EXPECT().
		Dispatch(suite.tenant.OrganizationID, models.EventInvoiceGenerated, gomock.Any()).
		Return(nil).
		Times(1)

	invoice, err := suite.invoiceService.Generate(suite.ctx, suite.tenant, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "EUR", invoice.Currency)
	assert.Equal(suite.T(), invoice.IssuedAt.AddDate(0, 0, 14).Day(), invoice.DueDate.Day())
}

// TestUpdateInvoiceStatusSend tests draft to sent
func (suite *InvoiceServiceTestSuite) TestUpdateInvoiceStatusSend() {
	invoiceID := uuid.New()

	suite.mockInvoiceRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", invoiceID).
		Return(&tenant.Invoice{ID: invoiceID, Status: tenant.InvoiceStatusDraft}, nil).
		Times(1)

	suite.mockInvoiceRepo.EXPECT().
		UpdateStatus(gomock.Any(), "org_acme", invoiceID, tenant.InvoiceStatusSent).
		Return(&tenant.Invoice{ID: invoiceID, Status: tenant.InvoiceStatusSent}, nil).
		Times(1)

	invoice, err := suite.invoiceService.UpdateStatus(suite.ctx, suite.tenant, invoiceID, tenant.InvoiceStatusSent)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), tenant.InvoiceStatusSent, invoice.Status)
}

// TestUpdateInvoiceStatusDraftToPaid tests skipping the sent step
func (suite *InvoiceServiceTestSuite) TestUpdateInvoiceStatusDraftToPaid() {
	invoiceID := uuid.New()

	suite.mockInvoiceRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", invoiceID).
		Return(&tenant.Invoice{ID: invoiceID, Status: tenant.InvoiceStatusDraft}, nil).
		Times(1)

	invoice, err := suite.invoiceService.UpdateStatus(suite.ctx, suite.tenant, invoiceID, tenant.InvoiceStatusPaid)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatusTransition)
	assert.Nil(suite.T(), invoice)
}

// TestUpdateInvoiceStatusPaidIsTerminal tests moving out of paid
func (suite *InvoiceServiceTestSuite) TestUpdateInvoiceStatusPaidIsTerminal() {
	invoiceID := uuid.New()

	suite.mockInvoiceRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", invoiceID).
		Return(&tenant.Invoice{ID: invoiceID, Status: tenant.InvoiceStatusPaid}, nil).
		Times(1)

	invoice, err := suite.invoiceService.UpdateStatus(suite.ctx, suite.tenant, invoiceID, tenant.InvoiceStatusVoid)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatusTransition)
	assert.Nil(suite.T(), invoice)
}

// TestGetInvoiceByIDNotFound tests fetching a missing invoice
func (suite *InvoiceServiceTestSuite) TestGetInvoiceByIDNotFound() {
	invoiceID := uuid.New()

	suite.mockInvoiceRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", invoiceID).
		Return(nil, pgx.ErrNoRows).
		Times(1)

	invoice, err := suite.invoiceService.GetByID(suite.ctx, suite.tenant, invoiceID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvoiceNotFound)
	assert.Nil(suite.T(), invoice)
}

// TestInvoiceServiceTestSuite runs the test suite
func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
