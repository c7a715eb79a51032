package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// gatherCounters returns the value of every counter registered with g,
// keyed by metric name. Counters with labels are summed.
func gatherCounters(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	counters := make(map[string]float64, len(families))
	for _, mf := range families {
		if mf.GetType() != dto.MetricType_COUNTER {
			continue
		}
		var total float64
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		counters[mf.GetName()] = total
	}
	return counters, nil
}
