package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/domain"
)

// Metrics holds all Prometheus metrics for the detector
type Metrics struct {
	ChecksTotal     *prometheus.CounterVec
	ReportsTotal    prometheus.Counter
	PromotionsTotal prometheus.Counter
	BlockOpsTotal   *prometheus.CounterVec
	RegistrySize    prometheus.Gauge
}

// NewMetrics creates the metrics and registers them on reg.
// Tests pass a fresh prometheus.NewRegistry() to avoid duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		ChecksTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spamdetector",
			Name:      "checks_total",
			Help:      "Total number of checks by verdict",
		}, []string{"verdict"}),
		ReportsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: "spamdetector",
			Name:      "reports_total",
			Help:      "Total number of scam reports received",
		}),
		PromotionsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: "spamdetector",
			Name:      "promotions_total",
			Help:      "Total number of numbers promoted into the spam registry",
		}),
		BlockOpsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spamdetector",
			Name:      "blocks_total",
			Help:      "Total number of block list mutations by operation",
		}, []string{"op"}),
		RegistrySize: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "spamdetector",
			Name:      "registry_size",
			Help:      "Number of entries in the spam registry",
		}),
	}
}

// ObserveCheck counts a check by its verdict.
func (m *Metrics) ObserveCheck(v domain.Verdict) {
	m.ChecksTotal.WithLabelValues(string(v)).Inc()
}

// ObserveBlockOp counts a block list mutation; op is "block" or "unblock".
func (m *Metrics) ObserveBlockOp(op string) {
	m.BlockOpsTotal.WithLabelValues(op).Inc()
}
