package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
// Every method is safe on a nil receiver so tests can pass nil.
type Metrics struct {
	HTTPDuration       *prometheus.HistogramVec
	CacheResults       *prometheus.CounterVec
	SearchFallbacks    *prometheus.CounterVec
	JobsEnqueued       *prometheus.CounterVec
	JobsProcessed      *prometheus.CounterVec
	RequestsCreated    *prometheus.CounterVec
	StageTransitions   *prometheus.CounterVec
	AccountsRegistered *prometheus.CounterVec
	LoginLockouts      *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers on reg. Tests use a fresh registry to avoid duplicate registration.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "charity_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern and status",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route", "status"}),
		CacheResults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "charity_cache_results_total",
			Help: "Cache-aside lookups by outcome (hit, miss, error)",
		}, []string{"outcome"}),
		SearchFallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "charity_search_fallbacks_total",
			Help: "Search queries that fell back to the unfiltered listing",
		}, []string{"index"}),
		JobsEnqueued: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "charity_announcement_jobs_enqueued_total",
			Help: "Announcement jobs handed to the queue",
		}, []string{"kind"}),
		JobsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "charity_announcement_jobs_processed_total",
			Help: "Announcement jobs processed by outcome",
		}, []string{"kind", "outcome"}),
		RequestsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "charity_requests_created_total",
			Help: "Beneficiary requests created, by creator",
		}, []string{"created_by"}),
		StageTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "charity_request_stage_transitions_total",
			Help: "Processing stage changes by target stage",
		}, []string{"stage"}),
		AccountsRegistered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "charity_accounts_registered_total",
			Help: "Accounts registered by role",
		}, []string{"role"}),
		LoginLockouts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "charity_login_lockouts_total",
			Help: "Accounts locked after repeated failed logins, by role",
		}, []string{"role"}),
	}
}

func (m *Metrics) ObserveHTTP(method, route, status string, start time.Time) {
	if m == nil {
		return
	}
	m.HTTPDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())
}

func (m *Metrics) CacheHit() {
	if m != nil {
		m.CacheResults.WithLabelValues("hit").Inc()
	}
}

func (m *Metrics) CacheMiss() {
	if m != nil {
		m.CacheResults.WithLabelValues("miss").Inc()
	}
}

func (m *Metrics) CacheError() {
	if m != nil {
		m.CacheResults.WithLabelValues("error").Inc()
	}
}

func (m *Metrics) SearchFallback(index string) {
	if m != nil {
		m.SearchFallbacks.WithLabelValues(index).Inc()
	}
}

func (m *Metrics) JobEnqueued(kind string) {
	if m != nil {
		m.JobsEnqueued.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) JobProcessed(kind string, ok bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "failed"
	}
	m.JobsProcessed.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) RequestCreated(byCharity bool) {
	if m == nil {
		return
	}
	by := "beneficiary"
	if byCharity {
		by = "charity"
	}
	m.RequestsCreated.WithLabelValues(by).Inc()
}

func (m *Metrics) StageChanged(stage string) {
	if m != nil {
		m.StageTransitions.WithLabelValues(stage).Inc()
	}
}

func (m *Metrics) AccountRegistered(role string) {
	if m != nil {
		m.AccountsRegistered.WithLabelValues(role).Inc()
	}
}

func (m *Metrics) LoginLocked(role string) {
	if m != nil {
		m.LoginLockouts.WithLabelValues(role).Inc()
	}
}
