package dialog

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the process-wide counters §5 calls out as the one piece
// of shared state outside the per-Call serialized context: the
// dialog counter is a monotone integer incremented on create and
// decremented on stop, safe under concurrent Calls because
// prometheus.Gauge is itself concurrency-safe.
var (
	dialogsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "sip",
		Subsystem: "dialog",
		Name:      "active",
		Help:      "Number of SIP dialogs currently tracked (created but not yet {stop,_}).",
	})

	retransmissionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sip",
		Subsystem: "dialog",
		Name:      "retransmissions_total",
		Help:      "Count of response retransmission timer firings, by outcome.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(dialogsActive, retransmissionsTotal)
}

// MetricsCollectors returns the collectors this package registers, so
// a host application can register them on a non-default registry
// instead of relying on the global one.
func MetricsCollectors() []prometheus.Collector {
	return []prometheus.Collector{dialogsActive, retransmissionsTotal}
}
