package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/javdevA/SmartDormCapstonePro/types"
)

// DefaultNamespace is used when NewPrometheus is given an empty namespace.
const DefaultNamespace = "dormalloc"

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing
// one that is never exercised leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	// Allocation metrics
	allocations      *prometheus.CounterVec
	assigned         *prometheus.GaugeVec
	unassigned       *prometheus.GaugeVec
	allocDuration    *prometheus.HistogramVec
	invalidIDs       prometheus.Counter
	top1Rate         *prometheus.GaugeVec
	top3Rate         *prometheus.GaugeVec
	envyPairs        *prometheus.GaugeVec
	simulations      prometheus.Counter
	simulationTrials prometheus.Counter
	simDuration      prometheus.Histogram
	reallocPlaced    prometheus.Counter
	reallocRemaining prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "dormalloc" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.allocations = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "runs_total",
			Help:      "Total allocation runs by strategy.",
		}, []string{"strategy"})

		p.assigned = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "assigned_students",
			Help:      "Students placed in a dorm by the latest run of each strategy.",
		}, []string{"strategy"})

		p.unassigned = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "unassigned_students",
			Help:      "Students left without a dorm by the latest run of each strategy.",
		}, []string{"strategy"})

		p.allocDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "duration_seconds",
			Help:      "Duration of allocation runs in seconds by strategy.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), // 100µs .. ~1.6s
		}, []string{"strategy"})

		p.invalidIDs = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "invalid_ids_total",
			Help:      "Total student identifiers skipped for failing checksum validation.",
		})

		p.top1Rate = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "fairness",
			Name:      "top1_rate",
			Help:      "Fraction of students placed in their first preference (latest run).",
		}, []string{"strategy"})

		p.top3Rate = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "fairness",
			Name:      "top3_rate",
			Help:      "Fraction of students placed within their first three preferences (latest run).",
		}, []string{"strategy"})

		p.envyPairs = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "fairness",
			Name:      "envy_pairs",
			Help:      "Directed envy pairs in the latest run.",
		}, []string{"strategy"})

		p.simulations = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "simulation",
			Name:      "runs_total",
			Help:      "Total completed simulations.",
		})

		p.simulationTrials = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "simulation",
			Name:      "trials_total",
			Help:      "Total simulation trials executed.",
		})

		p.simDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "simulation",
			Name:      "duration_seconds",
			Help:      "Wall time of completed simulations in seconds.",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		})

		p.reallocPlaced = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "waitlist",
			Name:      "placed_total",
			Help:      "Total waitlisted students placed by reallocation.",
		})

		p.reallocRemaining = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "waitlist",
			Name:      "remaining_students",
			Help:      "Waitlisted students still without a dorm after the latest reallocation.",
		})

		p.reg.MustRegister(p.allocations)
		p.reg.MustRegister(p.assigned)
		p.reg.MustRegister(p.unassigned)
		p.reg.MustRegister(p.allocDuration)
		p.reg.MustRegister(p.invalidIDs)
		p.reg.MustRegister(p.top1Rate)
		p.reg.MustRegister(p.top3Rate)
		p.reg.MustRegister(p.envyPairs)
		p.reg.MustRegister(p.simulations)
		p.reg.MustRegister(p.simulationTrials)
		p.reg.MustRegister(p.simDuration)
		p.reg.MustRegister(p.reallocPlaced)
		p.reg.MustRegister(p.reallocRemaining)
	})
}

// AllocationMetrics implementation

// RecordAllocation counts the run and sets the per-strategy placement gauges.
func (p *PrometheusCollector) RecordAllocation(kind types.StrategyKind, assigned, unassigned int, duration float64) {
	p.ensureRegistered()
	label := kind.String()
	p.allocations.WithLabelValues(label).Inc()
	p.assigned.WithLabelValues(label).Set(float64(assigned))
	p.unassigned.WithLabelValues(label).Set(float64(unassigned))
	p.allocDuration.WithLabelValues(label).Observe(duration)
}

// RecordInvalidIDs adds skipped identifiers to the running total.
func (p *PrometheusCollector) RecordInvalidIDs(count int) {
	if count <= 0 {
		return
	}
	p.ensureRegistered()
	p.invalidIDs.Add(float64(count))
}

// RecordFairness sets the fairness gauges for a strategy.
func (p *PrometheusCollector) RecordFairness(kind types.StrategyKind, m types.Metrics) {
	p.ensureRegistered()
	label := kind.String()
	p.top1Rate.WithLabelValues(label).Set(m.Top1Rate)
	p.top3Rate.WithLabelValues(label).Set(m.Top3Rate)
	p.envyPairs.WithLabelValues(label).Set(float64(m.EnvyPairs))
}

// SimulationMetrics implementation

// RecordSimulation counts a completed simulation and its trials.
func (p *PrometheusCollector) RecordSimulation(trials int, duration float64) {
	p.ensureRegistered()
	p.simulations.Inc()
	if trials > 0 {
		p.simulationTrials.Add(float64(trials))
	}
	p.simDuration.Observe(duration)
}

// WaitlistMetrics implementation

// RecordReallocation counts newly placed students and sets the remaining gauge.
func (p *PrometheusCollector) RecordReallocation(placed, remaining int) {
	p.ensureRegistered()
	if placed > 0 {
		p.reallocPlaced.Add(float64(placed))
	}
	p.reallocRemaining.Set(float64(remaining))
}
