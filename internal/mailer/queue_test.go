package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"podcastflow-backend/internal/config"
	"podcastflow-backend/internal/database/models"
	"podcastflow-backend/internal/logger"
	"podcastflow-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// stubTransport records sends and returns a canned result
type stubTransport struct {
	sent []Message
	id   string
	err  error
}

func (t *stubTransport) Send(_ context.Context, msg Message) (string, error) {
	t.sent = append(t.sent, msg)
	return t.id, t.err
}

// QueueWorkerTestSuite defines the test suite for the queue Worker
type QueueWorkerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockQueue *mocks.MockEmailQueueRepositoryInterface
	transport *stubTransport
	worker    *Worker
}

// SetupTest sets up the test suite
func (suite *QueueWorkerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockQueue = mocks.NewMockEmailQueueRepositoryInterface(suite.ctrl)
	suite.transport = &stubTransport{id: "provider-msg-1"}

	suite.worker = NewWorker(suite.mockQueue, suite.transport, &config.Config{
		EmailFrom:         "noreply@podcastflow.test",
		EmailPollInterval: 5,
		EmailBatchSize:    10,
	}, logger.New())
}

// TearDownTest cleans up after each test
func (suite *QueueWorkerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func queuedEmail(attempts int) models.EmailQueue {
	return models.EmailQueue{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Recipient:   "sales@acme.test",
		Subject:     "Campaign Q4 Launch is now active",
		HTMLBody:    "<p>now active</p>",
		TemplateKey: "campaign_status_changed",
		Status:      models.EmailStatusProcessing,
		Attempts:    attempts,
		MaxAttempts: 3,
	}
}

// TestProcessBatchSendsClaimedEmails tests the happy path
func (suite *QueueWorkerTestSuite) TestProcessBatchSendsClaimedEmails() {
	msg := queuedEmail(0)

	suite.mockQueue.EXPECT().
		ClaimDue(10).
		Return([]models.EmailQueue{msg}, nil).
		Times(1)

	suite.mockQueue.EXPECT().
		MarkSent(msg.ID, "provider-msg-1").
		Return(nil).
		Times(1)

	suite.mockQueue.EXPECT().
		CountByStatus(models.EmailStatusPending).
		Return(int64(0), nil).
		Times(1)

	suite.worker.ProcessBatch(context.Background())

	assert.Len(suite.T(), suite.transport.sent, 1)
	assert.Equal(suite.T(), "sales@acme.test", suite.transport.sent[0].To)
	assert.Equal(suite.T(), "noreply@podcastflow.test", suite.transport.sent[0].From)
}

// TestProcessBatchReschedulesOnFailure tests the retry path
func (suite *QueueWorkerTestSuite) TestProcessBatchReschedulesOnFailure() {
	suite.transport.err = errors.New("connection refused")
	msg := queuedEmail(0)

	suite.mockQueue.EXPECT().
		ClaimDue(10).
		Return([]models.EmailQueue{msg}, nil).
		Times(1)

	suite.mockQueue.EXPECT().
		MarkFailed(msg.ID, "connection refused", gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, _ string, retryAt time.Time) (bool, error) {
			// First retry lands about one minute out
			assert.WithinDuration(suite.T(), time.Now().Add(time.Minute), retryAt, 5*time.Second)
			return false, nil
		}).
		Times(1)

	suite.mockQueue.EXPECT().
		CountByStatus(models.EmailStatusPending).
		Return(int64(1), nil).
		Times(1)

	suite.worker.ProcessBatch(context.Background())
}

// TestProcessBatchTerminalFailure tests exhausting the attempt budget
func (suite *QueueWorkerTestSuite) TestProcessBatchTerminalFailure() {
	suite.transport.err = errors.New("550 rejected")
	msg := queuedEmail(2)

	suite.mockQueue.EXPECT().
		ClaimDue(10).
		Return([]models.EmailQueue{msg}, nil).
		Times(1)

	suite.mockQueue.EXPECT().
		MarkFailed(msg.ID, "550 rejected", gomock.Any()).
		Return(true, nil).
		Times(1)

	suite.mockQueue.EXPECT().
		CountByStatus(models.EmailStatusPending).
		Return(int64(0), nil).
		Times(1)

	suite.worker.ProcessBatch(context.Background())
}

// TestQueueWorkerTestSuite runs the test suite
func TestQueueWorkerTestSuite(t *testing.T) {
	suite.Run(t, new(QueueWorkerTestSuite))
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, time.Minute, retryDelay(0))
	assert.Equal(t, 2*time.Minute, retryDelay(1))
	assert.Equal(t, 4*time.Minute, retryDelay(2))
}
