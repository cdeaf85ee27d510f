package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Email delivery counters, labeled by template key where it helps operators
// spot a single broken template.
var (
	EmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "podcastflow_emails_sent_total",
		Help: "Number of emails delivered successfully",
	}, []string{"template"})

	EmailsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "podcastflow_emails_failed_total",
		Help: "Number of emails that exhausted their attempts",
	}, []string{"template"})

	EmailsRetried = promauto.NewCounter(prometheus.CounterOpts{
		Name: "podcastflow_emails_retried_total",
		Help: "Number of email sends that failed and were rescheduled",
	})

	EmailQueuePending = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "podcastflow_email_queue_pending",
		Help: "Number of emails currently pending in the queue",
	})

	YouTubeSyncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "podcastflow_youtube_sync_runs_total",
		Help: "Number of YouTube sync runs by outcome",
	}, []string{"outcome"})
)
