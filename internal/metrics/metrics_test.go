package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"

	"github.com/sbwtw/way-cooler/internal/metrics"
)

func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	m := &dto.Metric{}
	_ = gauge.(prometheus.Metric).Write(m)
	return m.GetGauge().GetValue()
}

func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	_ = counter.(prometheus.Metric).Write(m)
	return m.GetCounter().GetValue()
}

func TestContainersByKindGauge(t *testing.T) {
	g := metrics.ContainersByKind.WithLabelValues("view")
	before := getGaugeValue(t, g)
	g.Inc()
	after := getGaugeValue(t, g)
	assert.Equal(t, float64(1), after-before)
}

func TestValidationsTotalCounter(t *testing.T) {
	c := metrics.ValidationsTotal.WithLabelValues("ok")
	before := getCounterValue(t, c)
	c.Inc()
	after := getCounterValue(t, c)
	assert.Equal(t, float64(1), after-before)
}

func TestFocusBlockedByFullscreenTotal(t *testing.T) {
	before := getCounterValue(t, metrics.FocusBlockedByFullscreenTotal)
	metrics.FocusBlockedByFullscreenTotal.Inc()
	after := getCounterValue(t, metrics.FocusBlockedByFullscreenTotal)
	assert.Equal(t, float64(1), after-before)
}

func TestMutationDurationHistogramRecordsObservation(t *testing.T) {
	h := metrics.MutationDuration.WithLabelValues("add_view")
	h.Observe(0.01)
	// promauto-registered histograms are collectible via the default
	// registerer; observing should not panic and the vector should
	// still resolve the same child for the same label set.
	h2 := metrics.MutationDuration.WithLabelValues("add_view")
	assert.Equal(t, h, h2)
}
