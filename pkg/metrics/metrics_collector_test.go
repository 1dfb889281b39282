package metrics

import (
	"errors"
	"testing"
	"time"

	"social_backend/internal/pkg/bizerr"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordEngagement(t *testing.T) {
	m := NewMetricsCollector(prometheus.NewRegistry())

	m.RecordEngagement("follow", "ok")
	m.RecordEngagement("follow", "ok")
	m.RecordEngagement("follow", "already_exists")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.engagementTotal.WithLabelValues("follow", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.engagementTotal.WithLabelValues("follow", "already_exists")))
}

func TestRecordHTTPRequest(t *testing.T) {
	m := NewMetricsCollector(prometheus.NewRegistry())

	m.RecordHTTPRequest("GET", "/api/posts/feed", "200", 30*time.Millisecond, 512)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/posts/feed", "200")))
}

func TestNilCollectorIsSafe(t *testing.T) {
	var m *MetricsCollector
	assert.NotPanics(t, func() {
		m.RecordEngagement("like", "ok")
		m.ObservePageSize("feed", 10)
		m.RecordRateLimited("ip")
		m.RecordHTTPRequest("GET", "/", "200", time.Millisecond, 0)
	})
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", Outcome(nil))
	assert.Equal(t, "already_exists", Outcome(bizerr.AlreadyExists("dup")))
	assert.Equal(t, "internal", Outcome(errors.New("boom")))
}
