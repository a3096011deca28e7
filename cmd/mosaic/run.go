package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/sbwtw/way-cooler/internal/layout"
	"github.com/sbwtw/way-cooler/internal/metrics"
	"github.com/sbwtw/way-cooler/internal/scenario"
)

func runScenario(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	path := fs.String("scenario", "", "path to a scenario YAML file")
	withMetrics := fs.Bool("metrics", false, "wire the Prometheus metrics collaborator")
	_ = fs.Parse(args)

	if *path == "" {
		return fmt.Errorf("run: -scenario is required")
	}

	s, err := scenario.Load(*path)
	if err != nil {
		return err
	}

	collaborators := layout.Collaborators{}
	if *withMetrics {
		collaborators.Metrics = prometheusMetrics{}
	}

	lt, err := scenario.Build(s, collaborators)
	if err != nil {
		return err
	}

	printTree(lt)
	return nil
}

// prometheusMetrics adapts internal/metrics's package-level collectors to
// the layout.Metrics collaborator interface.
type prometheusMetrics struct{}

func (prometheusMetrics) ObserveMutation(op string, seconds float64) {
	metrics.MutationDuration.WithLabelValues(op).Observe(seconds)
}

func (prometheusMetrics) SetContainerCount(kind layout.Kind, n int) {
	metrics.ContainersByKind.WithLabelValues(strings.ToLower(kind.String())).Set(float64(n))
}

func (prometheusMetrics) IncValidations(outcome string) {
	metrics.ValidationsTotal.WithLabelValues(outcome).Inc()
}

func (prometheusMetrics) IncFocusBlockedByFullscreen() {
	metrics.FocusBlockedByFullscreenTotal.Inc()
}
