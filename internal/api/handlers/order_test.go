package handlers

import (
	"fmt"
	"net/http"
	"testing"

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

// OrderHandlerTestSuite defines the test suite for OrderHandler
type OrderHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockOrderService *mocks.MockOrderServiceInterface
	handler          *OrderHandler
	httpSuite        *testutils.HTTPTestSuite
	tenant           tenant.Tenant
}

// SetupTest sets up the test suite
func (suite *OrderHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrderService = mocks.NewMockOrderServiceInterface(suite.ctrl)

	suite.handler = NewOrderHandler(suite.mockOrderService)

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

	orders := v1.Group("/orders")
	{
		orders.POST("", suite.handler.CreateOrder)
		orders.GET("", suite.handler.ListOrders)
		orders.GET("/:id", suite.handler.GetOrder)
		orders.POST("/:id/items", suite.handler.AddOrderItem)
		orders.DELETE("/:id/items/:itemId", suite.handler.RemoveOrderItem)
		orders.PATCH("/:id/status", suite.handler.UpdateOrderStatus)
		orders.DELETE("/:id", suite.handler.DeleteOrder)
	}
	v1.GET("/campaigns/:id/orders", suite.handler.ListCampaignOrders)
}

// TearDownTest cleans up after each test
func (suite *OrderHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOrder tests creating an order with items
func (suite *OrderHandlerTestSuite) TestCreateOrder() {
	campaignID := uuid.New()
	orderID := uuid.New()
	episodeID := uuid.New()

	requestBody := map[string]interface{}{
		"campaign_id": campaignID,
		"notes":       "Holiday push",
		"items": []map[string]interface{}{
			{"episode_id": episodeID, "placement": "midroll", "quantity": 2},
		},
	}

	expectedResponse := &service.OrderResponse{
		Order: tenant.Order{
			ID:         orderID,
			CampaignID: campaignID,
			Status:     tenant.OrderStatusDraft,
			Notes:      "Holiday push",
		},
		Items: []tenant.OrderItem{
			{ID: uuid.New(), OrderID: orderID, EpisodeID: episodeID, Placement: tenant.PlacementMidroll, Quantity: 2, RateCents: 50000},
		},
		TotalCents: 100000,
	}

	suite.mockOrderService.EXPECT().
		Create(gomock.Any(), suite.tenant, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/orders", requestBody)

	var response service.OrderResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), orderID, response.Order.ID)
	assert.Equal(suite.T(), int64(100000), response.TotalCents)
	assert.Len(suite.T(), response.Items, 1)
}

// TestCreateOrderInsufficientInventory tests the overbooking path
func (suite *OrderHandlerTestSuite) TestCreateOrderInsufficientInventory() {
	requestBody := map[string]interface{}{
		"campaign_id": uuid.New(),
		"items": []map[string]interface{}{
			{"episode_id": uuid.New(), "placement": "midroll", "quantity": 5},
		},
	}

	suite.mockOrderService.EXPECT().
		Create(gomock.Any(), suite.tenant, gomock.Any()).
		Return(nil, fmt.Errorf("midroll on episode: %w", apperrors.ErrInsufficientInventory)).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/orders", requestBody)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, recorder.Code)
}

// TestCreateOrderInvalidBody tests malformed JSON handling
func (suite *OrderHandlerTestSuite) TestCreateOrderInvalidBody() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/orders", "not-json")

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestGetOrder tests getting an order by ID
func (suite *OrderHandlerTestSuite) TestGetOrder() {
	orderID := uuid.New()
	expectedResponse := &service.OrderResponse{
		Order:      tenant.Order{ID: orderID, Status: tenant.OrderStatusDraft},
		Items:      []tenant.OrderItem{},
		TotalCents: 0,
	}

	suite.mockOrderService.EXPECT().
		GetByID(gomock.Any(), suite.tenant, orderID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/orders/%s", orderID), nil)

	var response service.OrderResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), orderID, response.Order.ID)
}

// TestGetOrderNotFound tests getting a missing order
func (suite *OrderHandlerTestSuite) TestGetOrderNotFound() {
	orderID := uuid.New()

	suite.mockOrderService.EXPECT().
		GetByID(gomock.Any(), suite.tenant, orderID).
		Return(nil, apperrors.NewNotFoundError("order")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/orders/%s", orderID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestListOrders tests the paginated list with a status filter
func (suite *OrderHandlerTestSuite) TestListOrders() {
	expectedResponse := &service.OrderListResponse{
		Orders: []tenant.Order{
			{ID: uuid.New(), Status: tenant.OrderStatusBooked},
		},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}

	suite.mockOrderService.EXPECT().
		GetAll(gomock.Any(), suite.tenant, "booked", 1, 20).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/orders?status=booked", nil)

	var response service.OrderListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Orders, 1)
}

// TestListCampaignOrders tests listing a campaign's orders
func (suite *OrderHandlerTestSuite) TestListCampaignOrders() {
	campaignID := uuid.New()
	expectedOrders := []tenant.Order{
		{ID: uuid.New(), CampaignID: campaignID, Status: tenant.OrderStatusApproved},
	}

	suite.mockOrderService.EXPECT().
		GetByCampaign(gomock.Any(), suite.tenant, campaignID).
		Return(expectedOrders, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/campaigns/%s/orders", campaignID), nil)

	var response map[string][]tenant.Order
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response["orders"], 1)
}

// TestAddOrderItem tests adding an item to a draft order
func (suite *OrderHandlerTestSuite) TestAddOrderItem() {
	orderID := uuid.New()
	episodeID := uuid.New()

	requestBody := map[string]interface{}{
		"episode_id": episodeID,
		"placement":  "preroll",
		"quantity":   1,
	}

	expectedResponse := &service.OrderResponse{
		Order: tenant.Order{ID: orderID, Status: tenant.OrderStatusDraft},
		Items: []tenant.OrderItem{
			{ID: uuid.New(), OrderID: orderID, EpisodeID: episodeID, Placement: tenant.PlacementPreroll, Quantity: 1, RateCents: 30000},
		},
		TotalCents: 30000,
	}

	suite.mockOrderService.EXPECT().
		AddItem(gomock.Any(), suite.tenant, orderID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/orders/%s/items", orderID), requestBody)

	var response service.OrderResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Items, 1)
	assert.Equal(suite.T(), int64(30000), response.TotalCents)
}

// TestAddOrderItemNotEditable tests adding an item to a booked order
func (suite *OrderHandlerTestSuite) TestAddOrderItemNotEditable() {
	orderID := uuid.New()

	requestBody := map[string]interface{}{
		"episode_id": uuid.New(),
		"placement":  "midroll",
		"quantity":   1,
	}

	suite.mockOrderService.EXPECT().
		AddItem(gomock.Any(), suite.tenant, orderID, gomock.Any()).
		Return(nil, fmt.Errorf("order status booked: %w", apperrors.ErrOrderNotEditable)).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/orders/%s/items", orderID), requestBody)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, recorder.Code)
}

// TestRemoveOrderItem tests removing an item from a draft order
func (suite *OrderHandlerTestSuite) TestRemoveOrderItem() {
	orderID := uuid.New()
	itemID := uuid.New()

	expectedResponse := &service.OrderResponse{
		Order:      tenant.Order{ID: orderID, Status: tenant.OrderStatusDraft},
		Items:      []tenant.OrderItem{},
		TotalCents: 0,
	}

	suite.mockOrderService.EXPECT().
		RemoveItem(gomock.Any(), suite.tenant, orderID, itemID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/orders/%s/items/%s", orderID, itemID), nil)

	var response service.OrderResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Empty(suite.T(), response.Items)
}

// TestUpdateOrderStatus tests approving a draft order
func (suite *OrderHandlerTestSuite) TestUpdateOrderStatus() {
	orderID := uuid.New()
	requestBody := map[string]interface{}{"status": "approved"}

	expectedResponse := &service.OrderResponse{
		Order: tenant.Order{ID: orderID, Status: tenant.OrderStatusApproved},
	}

	suite.mockOrderService.EXPECT().
		UpdateStatus(gomock.Any(), suite.tenant, orderID, "approved").
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", fmt.Sprintf("/api/v1/orders/%s/status", orderID), requestBody)

	var response service.OrderResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), tenant.OrderStatusApproved, response.Order.Status)
}

// TestUpdateOrderStatusInvalidTransition tests skipping the approval step
func (suite *OrderHandlerTestSuite) TestUpdateOrderStatusInvalidTransition() {
	orderID := uuid.New()
	requestBody := map[string]interface{}{"status": "booked"}

	suite.mockOrderService.EXPECT().
		UpdateStatus(gomock.Any(), suite.tenant, orderID, "booked").
		Return(nil, fmt.Errorf("order status draft: %w", apperrors.ErrInvalidStatusTransition)).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", fmt.Sprintf("/api/v1/orders/%s/status", orderID), requestBody)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, recorder.Code)
}

// TestDeleteOrder tests deleting a draft order
func (suite *OrderHandlerTestSuite) TestDeleteOrder() {
	orderID := uuid.New()

	suite.mockOrderService.EXPECT().
		Delete(gomock.Any(), suite.tenant, orderID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/orders/%s", orderID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestOrderHandlerTestSuite runs the test suite
func TestOrderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}
