package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"ecoroute/internal/types"
)

func TestObserveUpstream_CountsByOutcome(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveUpstream("gemini", "generate", 10*time.Millisecond, nil)
	m.ObserveUpstream("gemini", "generate", 10*time.Millisecond, errors.New("boom"))
	m.ObserveUpstream("gemini", "generate", 10*time.Millisecond, &types.UpstreamTimeoutError{Op: "gemini.generate"})
	m.ObserveUpstream("gemini", "generate", 10*time.Millisecond, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("gemini", "generate", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("gemini", "generate", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("gemini", "generate", "timeout")))
}

func TestObserveHTTP_UnmatchedRoute(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveHTTP("GET", "", 404, time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/health", 200, time.Millisecond)
		m.ObserveUpstream("places", "find_place", time.Millisecond, nil)
	})
}
