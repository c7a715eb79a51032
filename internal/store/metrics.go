package store

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	statements prometheus.Counter
	closed     prometheus.Counter
	dropped    prometheus.Counter
}

// newMetrics creates the store counters and registers them with reg when
// reg is not nil.
func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		statements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pns",
			Name:      "statements_total",
			Help:      "Statements stored.",
		}),
		closed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pns",
			Name:      "index_entries_closed_total",
			Help:      "Index entries closed by the horizon.",
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pns",
			Name:      "articulations_dropped_total",
			Help:      "Articulation requests dropped for an unsupported language.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.statements, m.closed, m.dropped)
	}
	return m
}
