package mailer

import (
	"context"
	"math"
	"time"

	"podcastflow-backend/internal/config"
	"podcastflow-backend/internal/database/models"
	"podcastflow-backend/internal/logger"
	"podcastflow-backend/internal/metrics"
	"podcastflow-backend/internal/repository"
)

// baseRetryDelay is the delay before the first retry; each further attempt
// doubles it.
const baseRetryDelay = time.Minute

// Worker polls the email queue, claims due rows and pushes them through the
// configured transport. Multiple workers can run against the same table.
type Worker struct {
	queue     repository.EmailQueueRepositoryInterface
	transport Transport
	from      string
	interval  time.Duration
	batchSize int
	log       *logger.Logger
}

// NewWorker creates a queue worker from configuration
func NewWorker(queue repository.EmailQueueRepositoryInterface, transport Transport, cfg *config.Config, log *logger.Logger) *Worker {
	return &Worker{
		queue:     queue,
		transport: transport,
		from:      cfg.EmailFrom,
		interval:  cfg.EmailPollDuration(),
		batchSize: cfg.EmailBatchSize,
		log:       log.WithField("component", "mailer.Worker"),
	}
}

// Run polls until ctx is cancelled. It blocks and is meant to be launched in
// its own goroutine.
func (w *Worker) Run(ctx context.Context) {
	w.log.WithField("interval", w.interval.String()).Info("email queue worker started")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("email queue worker stopping")
			return
		case <-ticker.C:
			w.ProcessBatch(ctx)
		}
	}
}

// ProcessBatch claims one batch of due emails and sends them. Exposed for
// tests and for manual draining.
func (w *Worker) ProcessBatch(ctx context.Context) {
	claimed, err := w.queue.ClaimDue(w.batchSize)
	if err != nil {
		w.log.WithError(err).Error("failed to claim due emails")
		return
	}

	for i := range claimed {
		w.deliver(ctx, &claimed[i])
	}

	if pending, err := w.queue.CountByStatus(models.EmailStatusPending); err == nil {
		metrics.EmailQueuePending.Set(float64(pending))
	}
}

func (w *Worker) deliver(ctx context.Context, msg *models.EmailQueue) {
	log := w.log.WithFields(map[string]interface{}{
		"queue_id":  msg.ID,
		"recipient": msg.Recipient,
		"template":  msg.TemplateKey,
	})

	providerID, err := w.transport.Send(ctx, Message{
		To:       msg.Recipient,
		From:     w.from,
		Subject:  msg.Subject,
		HTMLBody: msg.HTMLBody,
		TextBody: msg.TextBody,
	})
	if err == nil {
		if err := w.queue.MarkSent(msg.ID, providerID); err != nil {
			log.WithError(err).Error("failed to mark email sent")
			return
		}
		metrics.EmailsSent.WithLabelValues(msg.TemplateKey).Inc()
		log.Info("email sent")
		return
	}

	retryAt := time.Now().Add(retryDelay(msg.Attempts))
	terminal, markErr := w.queue.MarkFailed(msg.ID, err.Error(), retryAt)
	if markErr != nil {
		log.WithError(markErr).Error("failed to mark email failed")
		return
	}
	if terminal {
		metrics.EmailsFailed.WithLabelValues(msg.TemplateKey).Inc()
		log.WithError(err).Error("email failed permanently")
	} else {
		metrics.EmailsRetried.Inc()
		log.WithError(err).WithField("retry_at", retryAt).Warn("email send failed, rescheduled")
	}
}

// retryDelay backs off exponentially on the attempt count already recorded
func retryDelay(attempts int) time.Duration {
	return baseRetryDelay * time.Duration(math.Pow(2, float64(attempts)))
}

// NewTransport selects the transport named by configuration
func NewTransport(ctx context.Context, cfg *config.Config) (Transport, error) {
	switch cfg.EmailProvider {
	case "ses":
		return NewSESTransport(ctx, cfg)
	default:
		return NewSMTPTransport(cfg), nil
	}
}
