package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"beacon/internal/priority"
)

func TestMetrics_ObserveAssessment(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveAssessment(priority.Assessment{Jurisdiction: "ontario", Level: priority.High})
	m.ObserveAssessment(priority.Assessment{Jurisdiction: "generic", Level: priority.Minimal, JurisdictionFallback: true})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.assessments.WithLabelValues("ontario", "P1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fallbacks))
	assert.Equal(t, 2, testutil.CollectAndCount(m.assessments))
}

func TestMetrics_Escalations(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveEscalation(priority.Minimal, priority.Low)
	m.ObserveEscalation(priority.Minimal, priority.Low)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.escalations.WithLabelValues("4", "3")))
}

func TestMetrics_ProfileReloads(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveProfileReload(nil)
	m.ObserveProfileReload(errors.New("bad profile"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.profileReloads.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.profileReloads.WithLabelValues("rejected")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveAssessment(priority.Assessment{})
		m.ObserveEscalation(priority.High, priority.Critical)
		m.ObserveSweepCase(0.1)
		m.ObserveProfileReload(nil)
		m.ObserveLegacyHoursKey()
	})
}

func TestMetrics_LegacyHoursKey(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveLegacyHoursKey()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.legacyHoursKey))
}
