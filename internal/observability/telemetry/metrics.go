package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Ingest metrics
	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_uploads_total",
		Help: "Upload requests by platform and outcome",
	}, []string{"platform", "status"})

	RowsParsedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_rows_parsed_total",
		Help: "Export rows by parse outcome (ingested, skipped, undated)",
	}, []string{"platform", "outcome"})

	UploadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pos_upload_duration_seconds",
		Help:    "End-to-end upload processing time",
		Buckets: prometheus.DefBuckets,
	})

	// Analytics metrics
	RecomputesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_recomputes_total",
		Help: "Analytics recomputes by outcome",
	}, []string{"status"})

	RecomputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pos_recompute_duration_seconds",
		Help:    "Full summary recompute time",
		Buckets: prometheus.DefBuckets,
	})

	TransactionsStored = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pos_transactions_stored",
		Help: "Transactions counted during the last recompute",
	})
)
