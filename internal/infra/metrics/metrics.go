// Package metrics exposes the business counters through a Prometheus registry.
package metrics

import (
	"net/http"
	"strconv"

	"pizzeria/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pizzeria"

// Recorder implements service.MetricsRecorder on Prometheus collectors.
type Recorder struct {
	registry *prometheus.Registry

	storeToggles        *prometheus.CounterVec
	gateDenials         prometheus.Counter
	orderTransitions    *prometheus.CounterVec
	realtimePublished   *prometheus.CounterVec
	realtimeDropped     prometheus.Counter
	realtimeSubscribers prometheus.Gauge
}

// NewRegistry builds the process registry with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// NewRecorder registers the business collectors on registry.
func NewRecorder(registry *prometheus.Registry) *Recorder {
	r := &Recorder{
		registry: registry,
		storeToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_toggles_total",
			Help:      "Store open/closed toggles, labelled by the resulting state.",
		}, []string{"state"}),
		gateDenials: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gate_denials_total",
			Help:      "Purchase-path actions denied because the store was closed.",
		}),
		orderTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Committed order status transitions.",
		}, []string{"from", "to"}),
		realtimePublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "realtime_events_published_total",
			Help:      "Change events published on the realtime feed.",
		}, []string{"collection"}),
		realtimeDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "realtime_events_dropped_total",
			Help:      "Change events dropped because a subscriber buffer was full.",
		}),
		realtimeSubscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "realtime_subscribers",
			Help:      "Open realtime subscriptions.",
		}),
	}

	registry.MustRegister(
		r.storeToggles,
		r.gateDenials,
		r.orderTransitions,
		r.realtimePublished,
		r.realtimeDropped,
		r.realtimeSubscribers,
	)

	return r
}

// NewMetricsRecorder exposes the Recorder as the domain interface for fx.
func NewMetricsRecorder(r *Recorder) service.MetricsRecorder {
	return r
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *Recorder) StoreToggled(isOpen bool) {
	r.storeToggles.WithLabelValues(strconv.FormatBool(isOpen)).Inc()
}

func (r *Recorder) GateDenied() {
	r.gateDenials.Inc()
}

func (r *Recorder) OrderTransitioned(from, to string) {
	r.orderTransitions.WithLabelValues(from, to).Inc()
}

func (r *Recorder) RealtimeEventPublished(collection string) {
	r.realtimePublished.WithLabelValues(collection).Inc()
}

func (r *Recorder) RealtimeEventDropped() {
	r.realtimeDropped.Inc()
}

func (r *Recorder) RealtimeSubscribersChanged(delta int) {
	r.realtimeSubscribers.Add(float64(delta))
}
