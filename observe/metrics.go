// File: metrics.go
// Role: Prometheus observer.

package observe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/shortpath/astar"
)

const namespace = "shortpath"

// Metrics records search counters and histograms.
//
// Metrics exposed (all namespaced with "shortpath_"):
//   - searches_total{state}: finished searches by terminal state.
//   - expansions_total: nodes closed across all searches.
//   - relaxations_total: strict g improvements across all searches.
//   - search_duration_seconds: wall time from start to terminal state.
//   - path_cost: cost of every successful search.
type Metrics struct {
	searches    *prometheus.CounterVec
	expansions  prometheus.Counter
	relaxations prometheus.Counter
	duration    prometheus.Histogram
	pathCost    prometheus.Histogram
}

// NewMetrics creates and registers the collectors with reg.
// A nil reg uses prometheus.DefaultRegisterer. Registering twice on the same
// registry panics, as with any promauto collector.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Finished searches by terminal state",
		}, []string{"state"}),
		expansions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expansions_total",
			Help:      "Nodes closed by the search loop",
		}),
		relaxations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relaxations_total",
			Help:      "Neighbor cost improvements found by the search loop",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time from the first step to the terminal state",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8), // 1µs to 10s
		}),
		pathCost: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_cost",
			Help:      "Total weight of paths returned by successful searches",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}),
	}
}

// Observe implements astar.Observer.
func (m *Metrics) Observe(ev astar.Event) {
	switch ev.Kind {
	case astar.EventExpand:
		m.expansions.Inc()
	case astar.EventRelax:
		m.relaxations.Inc()
	case astar.EventFinish:
		m.searches.WithLabelValues(ev.State.String()).Inc()
		m.duration.Observe(ev.Elapsed.Seconds())
		if ev.State == astar.Succeeded {
			m.pathCost.Observe(ev.Cost)
		}
	}
}
