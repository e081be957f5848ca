package production

import (
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/comalice/skuselect/internal/core"
)

// Metrics records graph builds and interpreter sends as Prometheus collectors.
// It implements core.Recorder.
type Metrics struct {
	buildsTotal   *prometheus.CounterVec
	buildDuration *prometheus.HistogramVec
	graphStates   *prometheus.GaugeVec
	graphEdges    *prometheus.GaugeVec
	sendsTotal    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		buildsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skuselect_graph_builds_total",
				Help: "Number of selection graphs built.",
			},
			[]string{"graph"},
		),
		buildDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skuselect_graph_build_duration_seconds",
				Help:    "Time taken to enumerate states and resolve transitions.",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"graph"},
		),
		graphStates: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "skuselect_graph_states",
				Help: "Number of states in the last graph built.",
			},
			[]string{"graph"},
		),
		graphEdges: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "skuselect_graph_edges",
				Help: "Number of edges in the last graph built.",
			},
			[]string{"graph"},
		),
		sendsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skuselect_interpreter_sends_total",
				Help: "Number of actions sent to interpreters, by outcome.",
			},
			[]string{"graph", "outcome"},
		),
	}

	for _, c := range []prometheus.Collector{m.buildsTotal, m.buildDuration, m.graphStates, m.graphEdges, m.sendsTotal} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "register metrics")
		}
	}
	return m, nil
}

func (m *Metrics) ObserveBuild(stats core.BuildStats) {
	m.buildsTotal.WithLabelValues(stats.GraphID).Inc()
	m.buildDuration.WithLabelValues(stats.GraphID).Observe(stats.Duration.Seconds())
	m.graphStates.WithLabelValues(stats.GraphID).Set(float64(stats.States))
	m.graphEdges.WithLabelValues(stats.GraphID).Set(float64(stats.Edges))
}

func (m *Metrics) ObserveSend(graphID string, applied bool) {
	outcome := "ignored"
	if applied {
		outcome = "applied"
	}
	m.sendsTotal.WithLabelValues(graphID, outcome).Inc()
}
