package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "repocheck"

// Recorder tracks per-run lint metrics on its own registry. A nil *Recorder
// is valid and records nothing.
//
// Metrics:
//   - repocheck_rules_total: rule outcomes by status and level
//   - repocheck_rule_duration_seconds: rule (and fix) execution time by rule type
//   - repocheck_axioms_total: axiom resolutions by axiom name and outcome
//   - repocheck_runs_total: runs by outcome (passed, failed, errored)
type Recorder struct {
	registry *prometheus.Registry

	rulesTotal   *prometheus.CounterVec
	ruleDuration *prometheus.HistogramVec
	axiomsTotal  *prometheus.CounterVec
	runsTotal    *prometheus.CounterVec
}

// New creates a Recorder and registers its metrics. If registry is nil a
// fresh one is created.
func New(registry *prometheus.Registry) *Recorder {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	r := &Recorder{
		registry: registry,
		rulesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rules_total",
				Help:      "Total number of rule outcomes",
			},
			[]string{"status", "level"},
		),
		ruleDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rule_duration_seconds",
				Help:      "Duration of rule execution in seconds, fix included",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs to ~26s
			},
			[]string{"rule_type"},
		),
		axiomsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "axioms_total",
				Help:      "Total number of axiom resolutions",
			},
			[]string{"axiom", "passed"},
		),
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of lint runs by outcome",
			},
			[]string{"outcome"},
		),
	}

	registry.MustRegister(r.rulesTotal, r.ruleDuration, r.axiomsTotal, r.runsTotal)
	return r
}

func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

func (r *Recorder) ObserveRule(ruleType, status, level string, d time.Duration) {
	if r == nil {
		return
	}
	r.rulesTotal.WithLabelValues(status, level).Inc()
	if ruleType != "" {
		r.ruleDuration.WithLabelValues(ruleType).Observe(d.Seconds())
	}
}

func (r *Recorder) ObserveAxiom(name string, passed bool) {
	if r == nil {
		return
	}
	r.axiomsTotal.WithLabelValues(name, strconv.FormatBool(passed)).Inc()
}

// Run outcomes.
const (
	OutcomePassed  = "passed"
	OutcomeFailed  = "failed"
	OutcomeErrored = "errored"
)

func (r *Recorder) ObserveRun(outcome string) {
	if r == nil {
		return
	}
	r.runsTotal.WithLabelValues(outcome).Inc()
}

// WriteTextfile writes all metrics in the Prometheus text format, suitable
// for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
