package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the raffle-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	salesRegistered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "raffle",
			Subsystem: "sales",
			Name:      "registered_total",
			Help:      "Total number of sales appended to the ledger.",
		},
		[]string{"path"},
	)

	registrationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "raffle",
			Subsystem: "sales",
			Name:      "registration_failures_total",
			Help:      "Total number of rejected or failed sale registrations.",
		},
		[]string{"reason"},
	)

	draws = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "raffle",
			Subsystem: "draw",
			Name:      "draws_total",
			Help:      "Total number of draw attempts by outcome.",
		},
		[]string{"outcome"},
	)

	snapshotReads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "raffle",
			Subsystem: "ledger",
			Name:      "snapshot_reads_total",
			Help:      "Total number of ledger snapshots served, by source.",
		},
		[]string{"source"},
	)

	ledgerAnomalies = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "raffle",
			Subsystem: "ledger",
			Name:      "anomalies",
			Help:      "Number of unparseable cells found in the last ledger snapshot.",
		},
	)
)

func init() {
	Registry.MustRegister(
		salesRegistered,
		registrationFailures,
		draws,
		snapshotReads,
		ledgerAnomalies,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func ObserveSale(path string) {
	salesRegistered.WithLabelValues(path).Inc()
}

func ObserveRegistrationFailure(reason string) {
	registrationFailures.WithLabelValues(reason).Inc()
}

func ObserveDraw(outcome string) {
	draws.WithLabelValues(outcome).Inc()
}

func ObserveSnapshotRead(source string) {
	snapshotReads.WithLabelValues(source).Inc()
}

func SetLedgerAnomalies(n int) {
	ledgerAnomalies.Set(float64(n))
}
