package metrics

import "github.com/prometheus/client_golang/prometheus"

// SearchMetrics records debounce and dispatch behavior of the search engine.
type SearchMetrics struct {
	dispatched *prometheus.CounterVec
	cancelled  prometheus.Counter
	staleDrops prometheus.Counter
}

// NewSearchMetrics registers the search metrics on the provided registerer.
func NewSearchMetrics(reg prometheus.Registerer) *SearchMetrics {
	if reg == nil {
		return &SearchMetrics{}
	}
	dispatched := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "search_dispatched_total",
		Help: "Search requests dispatched after the debounce window, by scope.",
	}, []string{"scope"})
	cancelled := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "search_debounce_cancelled_total",
		Help: "Pending searches cancelled by a newer keystroke.",
	})
	staleDrops := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "search_stale_responses_dropped_total",
		Help: "Responses discarded because a newer query was dispatched.",
	})
	reg.MustRegister(dispatched, cancelled, staleDrops)
	return &SearchMetrics{dispatched: dispatched, cancelled: cancelled, staleDrops: staleDrops}
}

// IncDispatched counts a dispatched search for the given scope.
func (s *SearchMetrics) IncDispatched(scope string) {
	if s == nil || s.dispatched == nil {
		return
	}
	if scope == "" {
		scope = "all"
	}
	s.dispatched.WithLabelValues(scope).Inc()
}

// IncCancelled counts a debounce cancellation.
func (s *SearchMetrics) IncCancelled() {
	if s == nil || s.cancelled == nil {
		return
	}
	s.cancelled.Inc()
}

// IncStaleDropped counts a discarded superseded response.
func (s *SearchMetrics) IncStaleDropped() {
	if s == nil || s.staleDrops == nil {
		return
	}
	s.staleDrops.Inc()
}
