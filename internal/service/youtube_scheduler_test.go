package service_test

import (
	"context"
	"testing"

	"podcastflow-backend/internal/config"
	"podcastflow-backend/internal/database/models"
	"podcastflow-backend/internal/logger"
	"podcastflow-backend/internal/mocks"
	"podcastflow-backend/internal/service"
	"podcastflow-backend/internal/tenant"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// YouTubeSchedulerTestSuite defines the test suite for YouTubeScheduler
type YouTubeSchedulerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockOrgRepo *mocks.MockOrganizationRepositoryInterface
	mockSync    *mocks.MockYouTubeSyncServiceInterface
}

// SetupTest sets up the test suite
func (suite *YouTubeSchedulerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockSync = mocks.NewMockYouTubeSyncServiceInterface(suite.ctrl)
}

// TearDownTest cleans up after each test
func (suite *YouTubeSchedulerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *YouTubeSchedulerTestSuite) newScheduler(apiKey string) *service.YouTubeScheduler {
	return service.NewYouTubeScheduler(
		suite.mockOrgRepo,
		tenant.NewResolver(nil),
		suite.mockSync,
		&config.Config{YouTubeAPIKey: apiKey, YouTubeSyncIntervalMins: 60},
		logger.New(),
	)
}

// TestSweepSkippedWithoutAPIKey tests that an unconfigured deployment never
// lists organizations or starts sync jobs
func (suite *YouTubeSchedulerTestSuite) TestSweepSkippedWithoutAPIKey() {
	scheduler := suite.newScheduler("")

	// No expectations registered: listing or starting anything fails the test
	scheduler.Sweep(context.Background())
}

// TestSweepSkipsSuspendedOrganizations tests that only active organizations
// are synced
func (suite *YouTubeSchedulerTestSuite) TestSweepSkipsSuspendedOrganizations() {
	scheduler := suite.newScheduler("test-api-key")

	suite.mockOrgRepo.EXPECT().
		GetAll(100, 0).
		Return([]models.Organization{
			{Name: "Dormant Media", Slug: "dormant", Status: models.OrganizationStatusSuspended},
		}, int64(1), nil).
		Times(1)

	scheduler.Sweep(context.Background())
}

// TestSweepPagesThroughOrganizations tests that a full page triggers another
// fetch at the next offset
func (suite *YouTubeSchedulerTestSuite) TestSweepPagesThroughOrganizations() {
	scheduler := suite.newScheduler("test-api-key")

	fullPage := make([]models.Organization, 100)
	for i := range fullPage {
		fullPage[i] = models.Organization{Status: models.OrganizationStatusSuspended}
	}

	suite.mockOrgRepo.EXPECT().
		GetAll(100, 0).
		Return(fullPage, int64(100), nil).
		Times(1)

	suite.mockOrgRepo.EXPECT().
		GetAll(100, 100).
		Return([]models.Organization{}, int64(100), nil).
		Times(1)

	scheduler.Sweep(context.Background())
}

// TestYouTubeSchedulerTestSuite runs the test suite
func TestYouTubeSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(YouTubeSchedulerTestSuite))
}
