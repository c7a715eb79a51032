package cli

import (
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatherCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	plain := prometheus.NewCounter(prometheus.CounterOpts{Name: "plain_total", Help: "h"})
	labelled := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "labelled_total", Help: "h"}, []string{"lang"})
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "ignored", Help: "h"})
	reg.MustRegister(plain, labelled, gauge)

	plain.Add(3)
	labelled.WithLabelValues("EN").Inc()
	labelled.WithLabelValues("SAT").Add(2)
	gauge.Set(9)

	counters, err := gatherCounters(reg)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"plain_total": 3, "labelled_total": 3}, counters)
}

func TestIndexReportsClosedEntries(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.txt": "x a",
		"b.txt": "x b",
		"c.txt": "x c",
	})

	out, _, err := execute(t, "--languages", toyLanguages(t), "--format", "json", "--horizon", "2",
		"index", "--lang", "TOY", "--context", "doc", filepath.Join(dir, "*.txt"))
	require.NoError(t, err)
	assert.Contains(t, out, `"pns_statements_total":3`)
	assert.Contains(t, out, `"pns_index_entries_closed_total":1`)
}
