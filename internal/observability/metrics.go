// Package observability wires the data store's Prometheus metrics and the
// OpenTelemetry tracing bootstrap used by the replay binary.
package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/signalsfoundry/simstore/store"
)

// StoreCollector bundles Prometheus metrics for one scenario data store. It
// satisfies store.StoreMetricsRecorder so the store drives the gauges
// directly from its mutators.
type StoreCollector struct {
	gatherer prometheus.Gatherer

	Entities        *prometheus.GaugeVec
	AdvanceDuration prometheus.Histogram
	FlushesTotal    prometheus.Counter
}

// NewStoreCollector registers the store metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
// Re-registering against the same registry hands back the existing
// collectors.
func NewStoreCollector(reg prometheus.Registerer) (*StoreCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	entities := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "scenario_entities",
		Help: "Current number of entities in the scenario, labeled by kind.",
	}, []string{"kind"})
	entities, err := registerGaugeVec(reg, entities, "scenario_entities")
	if err != nil {
		return nil, err
	}

	advance := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "scenario_advance_duration_seconds",
		Help:    "Duration of time-cursor advances across the entity population.",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	})
	advance, err = registerHistogram(reg, advance, "scenario_advance_duration_seconds")
	if err != nil {
		return nil, err
	}

	flushes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scenario_flushes_total",
		Help: "Cumulative number of flush operations applied to the store.",
	})
	flushes, err = registerCounter(reg, flushes, "scenario_flushes_total")
	if err != nil {
		return nil, err
	}

	return &StoreCollector{
		gatherer:        gatherer,
		Entities:        entities,
		AdvanceDuration: advance,
		FlushesTotal:    flushes,
	}, nil
}

// Handler exposes a ready-to-use /metrics handler.
func (c *StoreCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *StoreCollector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// SetEntityCounts satisfies store.StoreMetricsRecorder.
func (c *StoreCollector) SetEntityCounts(counts store.EntityCounts) {
	if c == nil || c.Entities == nil {
		return
	}
	c.Entities.WithLabelValues("platform").Set(float64(counts.Platforms))
	c.Entities.WithLabelValues("beam").Set(float64(counts.Beams))
	c.Entities.WithLabelValues("gate").Set(float64(counts.Gates))
	c.Entities.WithLabelValues("laser").Set(float64(counts.Lasers))
	c.Entities.WithLabelValues("projector").Set(float64(counts.Projectors))
	c.Entities.WithLabelValues("lobgroup").Set(float64(counts.LobGroups))
	c.Entities.WithLabelValues("customrendering").Set(float64(counts.CustomRenderings))
}

// ObserveAdvance satisfies store.StoreMetricsRecorder.
func (c *StoreCollector) ObserveAdvance(seconds float64) {
	if c == nil || c.AdvanceDuration == nil {
		return
	}
	c.AdvanceDuration.Observe(seconds)
}

// IncFlushes satisfies store.StoreMetricsRecorder.
func (c *StoreCollector) IncFlushes() {
	if c == nil || c.FlushesTotal == nil {
		return
	}
	c.FlushesTotal.Inc()
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}
