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

// OrderServiceTestSuite defines the test suite for OrderService
type OrderServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockOrderRepo    *mocks.MockOrderRepositoryInterface
	mockCampaignRepo *mocks.MockCampaignRepositoryInterface
	mockRateCardRepo *mocks.MockRateCardRepositoryInterface
	mockEpisodeRepo  *mocks.MockEpisodeRepositoryInterface
	mockShowRepo     *mocks.MockShowRepositoryInterface
	mockDispatcher   *mocks.MockNotificationDispatcherInterface
	orderService     *service.OrderService
	tenant           tenant.Tenant
	ctx              context.Context
}

// SetupTest sets up the test suite
func (suite *OrderServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrderRepo = mocks.NewMockOrderRepositoryInterface(suite.ctrl)
	suite.mockCampaignRepo = mocks.NewMockCampaignRepositoryInterface(suite.ctrl)
	suite.mockRateCardRepo = mocks.NewMockRateCardRepositoryInterface(suite.ctrl)
	suite.mockEpisodeRepo = mocks.NewMockEpisodeRepositoryInterface(suite.ctrl)
	suite.mockShowRepo = mocks.NewMockShowRepositoryInterface(suite.ctrl)
	suite.mockDispatcher = mocks.NewMockNotificationDispatcherInterface(suite.ctrl)
	suite.ctx = context.Background()
	suite.tenant = tenant.Tenant{
		OrganizationID: uuid.New(),
		Slug:           "acme",
		Schema:         "org_acme",
	}

	inventory := service.NewInventoryService(suite.mockShowRepo, suite.mockEpisodeRepo, suite.mockOrderRepo)

	suite.orderService = service.NewOrderService(
		suite.mockOrderRepo,
		suite.mockCampaignRepo,
		suite.mockRateCardRepo,
		suite.mockEpisodeRepo,
		inventory,
		suite.mockDispatcher,
		validator.New(),
		logger.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *OrderServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOrder tests creating an order with one priced item
func (suite *OrderServiceTestSuite) TestCreateOrder() {
	campaignID := uuid.New()
	showID := uuid.New()
	episodeID := uuid.New()
	orderID := uuid.New()
	airDate := time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC)

	req := &service.CreateOrderRequest{
		CampaignID: campaignID,
		Notes:      "Holiday push",
		Items: []service.OrderItemRequest{
			{EpisodeID: episodeID, Placement: tenant.PlacementMidroll, Quantity: 2},
		},
	}

	suite.mockCampaignRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", campaignID).
		Return(&tenant.Campaign{ID: campaignID, Status: tenant.CampaignStatusActive}, nil).
		Times(1)

	// Fetched once for pricing and once inside the availability check
	suite.mockEpisodeRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", episodeID).
		Return(&tenant.Episode{ID: episodeID, ShowID: showID, Number: 12, AirDate: &airDate}, nil).
		Times(2)

	suite.mockShowRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", showID).
		Return(&tenant.Show{ID: showID, MidrollSlots: 3}, nil).
		Times(1)

	suite.mockOrderRepo.EXPECT().
		CountBookedSlots(gomock.Any(), "org_acme", episodeID, tenant.PlacementMidroll).
		Return(1, nil).
		Times(1)

	suite.mockRateCardRepo.EXPECT().
		EffectiveRate(gomock.Any(), "org_acme", showID, tenant.PlacementMidroll, airDate).
		Return(&tenant.RateCard{ID: uuid.New(), ShowID: showID, Placement: tenant.PlacementMidroll, RateCents: 50000}, nil).
		Times(1)

	suite.mockOrderRepo.EXPECT().
		Create(gomock.Any(), "org_acme", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, o *tenant.Order, _ []tenant.OrderItem) (*tenant.Order, error) {
			created := *o
			created.ID = orderID
			return &created, nil
		}).
		Times(1)

	suite.mockOrderRepo.EXPECT().
		GetItems(gomock.Any(), "org_acme", orderID).
		Return([]tenant.OrderItem{
			{ID: uuid.New(), OrderID: orderID, EpisodeID: episodeID, Placement: tenant.PlacementMidroll, Quantity: 2, RateCents: 50000},
		}, nil).
		Times(1)

	resp, err := suite.orderService.Create(suite.ctx, suite.tenant, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), orderID, resp.Order.ID)
	assert.Equal(suite.T(), tenant.OrderStatusDraft, resp.Order.Status)
	assert.Equal(suite.T(), int64(100000), resp.TotalCents)
}

// TestCreateOrderCampaignCompleted tests ordering against a completed campaign
func (suite *OrderServiceTestSuite) TestCreateOrderCampaignCompleted() {
	campaignID := uuid.New()
	req := &service.CreateOrderRequest{
		CampaignID: campaignID,
		Items: []service.OrderItemRequest{
			{EpisodeID: uuid.New(), Placement: tenant.PlacementMidroll, Quantity: 1},
		},
	}

	suite.mockCampaignRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", campaignID).
		Return(&tenant.Campaign{ID: campaignID, Status: tenant.CampaignStatusCompleted}, nil).
		Times(1)

	resp, err := suite.orderService.Create(suite.ctx, suite.tenant, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
	assert.Nil(suite.T(), resp)
}

// TestCreateOrderInsufficientInventory tests holding more slots than the show has
func (suite *OrderServiceTestSuite) TestCreateOrderInsufficientInventory() {
	campaignID := uuid.New()
	showID := uuid.New()
	episodeID := uuid.New()

	req := &service.CreateOrderRequest{
		CampaignID: campaignID,
		Items: []service.OrderItemRequest{
			{EpisodeID: episodeID, Placement: tenant.PlacementMidroll, Quantity: 3},
		},
	}

	suite.mockCampaignRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", campaignID).
		Return(&tenant.Campaign{ID: campaignID, Status: tenant.CampaignStatusActive}, nil).
		Times(1)

	suite.mockEpisodeRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", episodeID).
		Return(&tenant.Episode{ID: episodeID, ShowID: showID}, nil).
		Times(2)

	suite.mockShowRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", showID).
		Return(&tenant.Show{ID: showID, MidrollSlots: 3}, nil).
		Times(1)

	// Two of three slots already held, three more requested
	suite.mockOrderRepo.EXPECT().
		CountBookedSlots(gomock.Any(), "org_acme", episodeID, tenant.PlacementMidroll).
		Return(2, nil).
		Times(1)

	resp, err := suite.orderService.Create(suite.ctx, suite.tenant, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientInventory)
	assert.Nil(suite.T(), resp)
}

// TestCreateOrderValidationError tests an order with no items
func (suite *OrderServiceTestSuite) TestCreateOrderValidationError() {
	req := &service.CreateOrderRequest{CampaignID: uuid.New(), Items: []service.OrderItemRequest{}}

	resp, err := suite.orderService.Create(suite.ctx, suite.tenant, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestAddItemOrderNotEditable tests adding an item to an approved order
func (suite *OrderServiceTestSuite) TestAddItemOrderNotEditable() {
	orderID := uuid.New()
	req := &service.OrderItemRequest{EpisodeID: uuid.New(), Placement: tenant.PlacementPreroll, Quantity: 1}

	suite.mockOrderRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", orderID).
		Return(&tenant.Order{ID: orderID, Status: tenant.OrderStatusApproved}, nil).
		Times(1)

	resp, err := suite.orderService.AddItem(suite.ctx, suite.tenant, orderID, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrderNotEditable)
	assert.Nil(suite.T(), resp)
}

// TestRemoveItem tests removing an item from a draft order
func (suite *OrderServiceTestSuite) TestRemoveItem() {
	orderID := uuid.New()
	itemID := uuid.New()

	suite.mockOrderRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", orderID).
		Return(&tenant.Order{ID: orderID, Status: tenant.OrderStatusDraft}, nil).
		Times(1)

	suite.mockOrderRepo.EXPECT().
		RemoveItem(gomock.Any(), "org_acme", orderID, itemID).
		Return(nil).
		Times(1)

	suite.mockOrderRepo.EXPECT().
		GetItems(gomock.Any(), "org_acme", orderID).
		Return([]tenant.OrderItem{}, nil).
		Times(1)

	resp, err := suite.orderService.RemoveItem(suite.ctx, suite.tenant, orderID, itemID)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), resp.Items)
	assert.Zero(suite.T(), resp.TotalCents)
}

// TestApproveOrder tests draft to approved with inventory revalidation and
// an approval notification
func (suite *OrderServiceTestSuite) TestApproveOrder() {
	orderID := uuid.New()
	showID := uuid.New()
	episodeID := uuid.New()

	items := []tenant.OrderItem{
		{ID: uuid.New(), OrderID: orderID, EpisodeID: episodeID, Placement: tenant.PlacementMidroll, Quantity: 1, RateCents: 50000},
	}

	suite.mockOrderRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", orderID).
		Return(&tenant.Order{ID: orderID, Status: tenant.OrderStatusDraft}, nil).
		Times(1)

	// Once for revalidation, once when building the response
	suite.mockOrderRepo.EXPECT().
		GetItems(gomock.Any(), "org_acme", orderID).
		Return(items, nil).
		Times(2)

	suite.mockEpisodeRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", episodeID).
		Return(&tenant.Episode{ID: episodeID, ShowID: showID}, nil).
		Times(1)

	suite.mockShowRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", showID).
		Return(&tenant.Show{ID: showID, MidrollSlots: 2}, nil).
		Times(1)

	suite.mockOrderRepo.EXPECT().
		CountBookedSlots(gomock.Any(), "org_acme", episodeID, tenant.PlacementMidroll).
		Return(0, nil).
		Times(1)

	suite.mockOrderRepo.EXPECT().
		Update(gomock.Any(), "org_acme", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, o *tenant.Order) (*tenant.Order, error) {
			return o, nil
		}).
		Times(1)

	suite.mockOrderRepo.EXPECT().
		ItemTotal(gomock.Any(), "org_acme", orderID).
		Return(int64(50000), nil).
		Times(1)

	suite.mockDispatcher.EXPECT().
		Dispatch(suite.tenant.OrganizationID, models.EventOrderApproved, gomock.Any()).
		Return(nil).
		Times(1)

	resp, err := suite.orderService.UpdateStatus(suite.ctx, suite.tenant, orderID, tenant.OrderStatusApproved)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), tenant.OrderStatusApproved, resp.Order.Status)
	assert.Equal(suite.T(), int64(50000), resp.TotalCents)
}

// TestApproveOrderWithoutItems tests approving an empty order
func (suite *OrderServiceTestSuite) TestApproveOrderWithoutItems() {
	orderID := uuid.New()

	suite.mockOrderRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", orderID).
		Return(&tenant.Order{ID: orderID, Status: tenant.OrderStatusDraft}, nil).
		Times(1)

	suite.mockOrderRepo.EXPECT().
		GetItems(gomock.Any(), "org_acme", orderID).
		Return([]tenant.OrderItem{}, nil).
		Times(1)

	resp, err := suite.orderService.UpdateStatus(suite.ctx, suite.tenant, orderID, tenant.OrderStatusApproved)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestBookOrderSkippingApproval tests draft straight to booked
func (suite *OrderServiceTestSuite) TestBookOrderSkippingApproval() {
	orderID := uuid.New()

	suite.mockOrderRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", orderID).
		Return(&tenant.Order{ID: orderID, Status: tenant.OrderStatusDraft}, nil).
		Times(1)

	resp, err := suite.orderService.UpdateStatus(suite.ctx, suite.tenant, orderID, tenant.OrderStatusBooked)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatusTransition)
	assert.Nil(suite.T(), resp)
}

// TestBookedOrderIsTerminal tests moving out of booked
func (suite *OrderServiceTestSuite) TestBookedOrderIsTerminal() {
	orderID := uuid.New()

	suite.mockOrderRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", orderID).
		Return(&tenant.Order{ID: orderID, Status: tenant.OrderStatusBooked}, nil).
		Times(1)

	resp, err := suite.orderService.UpdateStatus(suite.ctx, suite.tenant, orderID, tenant.OrderStatusCancelled)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatusTransition)
	assert.Nil(suite.T(), resp)
}

// TestDeleteOrder tests deleting a draft order
func (suite *OrderServiceTestSuite) TestDeleteOrder() {
	orderID := uuid.New()

	suite.mockOrderRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", orderID).
		Return(&tenant.Order{ID: orderID, Status: tenant.OrderStatusDraft}, nil).
		Times(1)

	suite.mockOrderRepo.EXPECT().
		Delete(gomock.Any(), "org_acme", orderID).
		Return(nil).
		Times(1)

	err := suite.orderService.Delete(suite.ctx, suite.tenant, orderID)

	assert.NoError(suite.T(), err)
}

// TestDeleteOrderNotDraft tests deleting an approved order
func (suite *OrderServiceTestSuite) TestDeleteOrderNotDraft() {
	orderID := uuid.New()

	suite.mockOrderRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", orderID).
		Return(&tenant.Order{ID: orderID, Status: tenant.OrderStatusApproved}, nil).
		Times(1)

	err := suite.orderService.Delete(suite.ctx, suite.tenant, orderID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrderNotEditable)
}

// TestGetOrderNotFound tests fetching a missing order
func (suite *OrderServiceTestSuite) TestGetOrderNotFound() {
	orderID := uuid.New()

	suite.mockOrderRepo.EXPECT().
		GetByID(gomock.Any(), "org_acme", orderID).
		Return(nil, pgx.ErrNoRows).
		Times(1)

	resp, err := suite.orderService.GetByID(suite.ctx, suite.tenant, orderID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrderNotFound)
	assert.Nil(suite.T(), resp)
}

// TestOrderServiceTestSuite runs the test suite
func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
