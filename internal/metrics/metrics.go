// Package metrics provides Prometheus instrumentation for the layout tree.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Tree shape metrics.
var (
	ContainersByKind = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "waycooler_layout_containers",
		Help: "Number of live containers in the layout tree, by kind.",
	}, []string{"kind"})

	ValidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "waycooler_layout_validations_total",
		Help: "Total number of validator invocations, by outcome.",
	}, []string{"outcome"})

	MutationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "waycooler_layout_mutation_duration_seconds",
		Help:    "Duration of layout tree mutation operations.",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
)

// Focus metrics.
var (
	FocusBlockedByFullscreenTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "waycooler_layout_focus_blocked_by_fullscreen_total",
		Help: "Total number of focus changes rejected because a fullscreen view held the workspace.",
	})
)
