package metrics

import (
	"database/sql"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	metricPrefix = "storepulse_"

	resultSuccess = "success"
	resultError   = "error"
)

// Exported result labels for callers.
const (
	ResultSuccess = resultSuccess
	ResultError   = resultError
)

var (
	registerOnce sync.Once

	reportRunsTotal  *prometheus.CounterVec
	reportRunLatency *prometheus.HistogramVec
	reportStores     prometheus.Gauge

	ingestRowsTotal    *prometheus.CounterVec
	ingestRequests     *prometheus.CounterVec
	ingestLatency      *prometheus.HistogramVec
	reportPollRequests *prometheus.CounterVec
)

// Init registers collectors with the default registry. db may be nil
// (memory backend); when set, pool stats and a running-runs gauge are added.
func Init(db *sql.DB) {
	registerOnce.Do(func() {
		reportRunsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_runs_total",
				Help: "Total report runs by result",
			},
			[]string{"result"},
		)
		reportRunLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "report_run_latency_seconds",
				Help:    "Report generation latency in seconds",
				Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300, 600},
			},
			[]string{"result"},
		)
		reportStores = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "report_last_store_count",
				Help: "Stores in the most recently completed report",
			},
		)

		ingestRowsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "ingest_rows_total",
				Help: "Rows loaded by table",
			},
			[]string{"table"},
		)
		ingestRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "ingest_requests_total",
				Help: "Table loads by table and result",
			},
			[]string{"table", "result"},
		)
		ingestLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "ingest_latency_seconds",
				Help:    "Table load latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"table", "result"},
		)
		reportPollRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_poll_requests_total",
				Help: "Report poll requests by returned state",
			},
			[]string{"state"},
		)

		prometheus.MustRegister(
			reportRunsTotal,
			reportRunLatency,
			reportStores,
			ingestRowsTotal,
			ingestRequests,
			ingestLatency,
			reportPollRequests,
		)

		if db != nil {
			registerDBMetrics(db)
		}
	})
}

// ObserveReportRun records a finished report run.
func ObserveReportRun(result string, duration time.Duration, stores int) {
	if result == "" {
		result = resultSuccess
	}
	if reportRunsTotal != nil {
		reportRunsTotal.WithLabelValues(result).Inc()
	}
	if reportRunLatency != nil {
		reportRunLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
	if result == resultSuccess && reportStores != nil {
		reportStores.Set(float64(stores))
	}
}

// ObserveIngest records a table load and its row count.
func ObserveIngest(table, result string, rows int, duration time.Duration) {
	if table == "" {
		table = "unknown"
	}
	if result == "" {
		result = resultSuccess
	}
	if ingestRequests != nil {
		ingestRequests.WithLabelValues(table, result).Inc()
	}
	if ingestLatency != nil {
		ingestLatency.WithLabelValues(table, result).Observe(duration.Seconds())
	}
	if result == resultSuccess && rows > 0 && ingestRowsTotal != nil {
		ingestRowsTotal.WithLabelValues(table).Add(float64(rows))
	}
}

// IncReportPoll counts a report poll by the state it returned.
func IncReportPoll(state string) {
	if state == "" {
		state = "unknown"
	}
	if reportPollRequests != nil {
		reportPollRequests.WithLabelValues(state).Inc()
	}
}

func registerDBMetrics(db *sql.DB) {
	prometheus.MustRegister(collectors.NewDBStatsCollector(db, "storepulse"))

	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: metricPrefix + "report_runs_running",
			Help: "Report runs currently in the running state",
		},
		func() float64 {
			return queryCount(db, "SELECT COUNT(*) FROM report_runs WHERE status = 'running'")
		},
	))
}

func queryCount(db *sql.DB, query string) float64 {
	var count int64
	if err := db.QueryRow(query).Scan(&count); err != nil {
		slog.Warn("[Metrics] Gauge query failed", "error", err)
		return 0
	}
	if count < 0 {
		return 0
	}
	return float64(count)
}
