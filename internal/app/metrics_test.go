package app

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

// prometheusSwapRegistry isolates the default registry for one test.
func prometheusSwapRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()

	oldReg := prometheus.DefaultRegisterer
	oldGath := prometheus.DefaultGatherer
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = oldReg
		prometheus.DefaultGatherer = oldGath
	})
	return reg
}
