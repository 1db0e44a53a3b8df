package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counters(t *testing.T) {
	r := NewRecorder(prometheus.NewRegistry())

	r.StoreToggled(true)
	r.StoreToggled(true)
	r.StoreToggled(false)
	r.GateDenied()
	r.OrderTransitioned("pending", "confirmed")
	r.RealtimeEventPublished("orders")
	r.RealtimeEventDropped()
	r.RealtimeSubscribersChanged(3)
	r.RealtimeSubscribersChanged(-1)

	assert.InDelta(t, 2, testutil.ToFloat64(r.storeToggles.WithLabelValues("true")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.storeToggles.WithLabelValues("false")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.gateDenials), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.orderTransitions.WithLabelValues("pending", "confirmed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.realtimePublished.WithLabelValues("orders")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.realtimeDropped), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(r.realtimeSubscribers), 0)
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder(NewRegistry())
	r.GateDenied()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "pizzeria_gate_denials_total 1"))
	assert.True(t, strings.Contains(string(body), "go_goroutines"))
}
