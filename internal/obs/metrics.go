package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the Prometheus collectors a Network updates as it runs.
// Registered against a caller-supplied registerer so multiple Networks (or
// tests) don't collide on the default global registry.
type Metrics struct {
	LabelFlips        prometheus.Counter
	PropagatorFirings *prometheus.CounterVec
	OpLatency         *prometheus.HistogramVec
	LiveNodes         prometheus.Gauge
	Contradictions    prometheus.Counter
}

// NewMetrics registers a fresh Metrics set against reg. Pass
// prometheus.NewRegistry() in tests to avoid the global default registry;
// pass nil to use prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		LabelFlips: factory.NewCounter(prometheus.CounterOpts{
			Name: "dntcnstrntm_jtms_label_flips_total",
			Help: "Number of JTMS node label flips (in<->out) observed.",
		}),
		PropagatorFirings: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dntcnstrntm_propagator_firings_total",
			Help: "Number of times a propagator's function was invoked, by informant.",
		}, []string{"informant"}),
		OpLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dntcnstrntm_network_op_duration_seconds",
			Help:    "Latency of add_content/retract_content calls to quiescence.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		LiveNodes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "dntcnstrntm_jtms_live_nodes",
			Help: "Number of JTMS nodes currently tracked by the network.",
		}),
		Contradictions: factory.NewCounter(prometheus.CounterOpts{
			Name: "dntcnstrntm_contradictions_observed_total",
			Help: "Number of times a cell's active value surfaced as contradiction.",
		}),
	}
}
