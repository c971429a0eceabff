package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry())

	m.CacheHit()
	m.CacheHit()
	m.CacheMiss()
	m.SearchFallback("requests")
	m.JobProcessed("request_created", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheResults.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheResults.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchFallbacks.WithLabelValues("requests")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.JobsProcessed.WithLabelValues("request_created", "failed")))
}

func TestNilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.CacheHit()
		m.SearchFallback("beneficiaries")
		m.JobEnqueued("x")
		m.RequestCreated(true)
	})
}
