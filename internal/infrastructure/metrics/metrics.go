package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"

	"github.com/iho/treasury/internal/domain"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Accrual metrics
	AccrualRuns        *prometheus.CounterVec
	AccrualEntries     *prometheus.CounterVec
	AccrualInterest    *prometheus.CounterVec
	AccrualGaps        *prometheus.CounterVec
	AccrualRunDuration *prometheus.HistogramVec

	// Report metrics
	ReportRequests *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Accrual metrics
		AccrualRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_accrual_runs_total",
				Help: "Total number of accrual runs",
			},
			[]string{"kind"},
		),
		AccrualEntries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_accrual_entries_total",
				Help: "Total number of interest entries booked",
			},
			[]string{"kind"},
		),
		AccrualInterest: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_accrual_interest_total",
				Help: "Total interest amount booked",
			},
			[]string{"kind"},
		),
		AccrualGaps: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_accrual_gaps_total",
				Help: "Total number of accrual gaps detected",
			},
			[]string{"kind"},
		),
		AccrualRunDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "treasury_accrual_run_duration_seconds",
				Help:    "Duration of accrual runs",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),

		// Report metrics
		ReportRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_report_requests_total",
				Help: "Total report requests by type",
			},
			[]string{"report"},
		),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "treasury_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "treasury_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),
	}
}

// RunCompleted implements usecase.AccrualObserver.
func (m *Metrics) RunCompleted(kind domain.InstrumentKind, processed int, total decimal.Decimal) {
	m.AccrualRuns.WithLabelValues(string(kind)).Inc()
	m.AccrualEntries.WithLabelValues(string(kind)).Add(float64(processed))

	amount, _ := total.Float64()
	m.AccrualInterest.WithLabelValues(string(kind)).Add(amount)
}

// GapDetected implements usecase.AccrualObserver.
func (m *Metrics) GapDetected(kind domain.InstrumentKind) {
	m.AccrualGaps.WithLabelValues(string(kind)).Inc()
}
