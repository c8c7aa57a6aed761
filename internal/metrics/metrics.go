// Package metrics defines the Prometheus collectors exported by the service.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"beacon/internal/priority"
)

const namespace = "beacon"

// Metrics groups the service collectors. A nil *Metrics is valid and
// records nothing, which keeps tests and the CLI free of registration.
type Metrics struct {
	assessments    *prometheus.CounterVec
	fallbacks      prometheus.Counter
	escalations    *prometheus.CounterVec
	sweepCases     prometheus.Counter
	sweepDuration  prometheus.Histogram
	profileReloads *prometheus.CounterVec
	legacyHoursKey prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_total",
			Help:      "Priority assessments by jurisdiction and resulting level.",
		}, []string{"jurisdiction", "level"}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jurisdiction_fallbacks_total",
			Help:      "Assessments whose requested jurisdiction was unknown and fell back to the generic profile.",
		}),
		escalations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "escalations_total",
			Help:      "Automatic escalations applied, by source and destination level.",
		}, []string{"from", "to"}),
		sweepCases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_cases_total",
			Help:      "Cases examined by the escalation sweep.",
		}),
		sweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sweep_case_duration_seconds",
			Help:      "Time spent processing one case in the escalation sweep.",
			Buckets:   prometheus.DefBuckets,
		}),
		profileReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_reloads_total",
			Help:      "Jurisdiction profile reloads by result.",
		}, []string{"result"}),
		legacyHoursKey: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "legacy_hours_key_total",
			Help:      "Assessment requests that sent only the misspelled hourssMissing factor.",
		}),
	}
	reg.MustRegister(m.assessments, m.fallbacks, m.escalations, m.sweepCases, m.sweepDuration, m.profileReloads, m.legacyHoursKey)
	return m
}

func (m *Metrics) ObserveAssessment(a priority.Assessment) {
	if m == nil {
		return
	}
	m.assessments.WithLabelValues(a.Jurisdiction, a.Level.Code()).Inc()
	if a.JurisdictionFallback {
		m.fallbacks.Inc()
	}
}

func (m *Metrics) ObserveEscalation(from, to priority.Level) {
	if m == nil {
		return
	}
	m.escalations.WithLabelValues(strconv.Itoa(int(from)), strconv.Itoa(int(to))).Inc()
}

func (m *Metrics) ObserveSweepCase(seconds float64) {
	if m == nil {
		return
	}
	m.sweepCases.Inc()
	m.sweepDuration.Observe(seconds)
}

func (m *Metrics) ObserveProfileReload(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "rejected"
	}
	m.profileReloads.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveLegacyHoursKey() {
	if m == nil {
		return
	}
	m.legacyHoursKey.Inc()
}
