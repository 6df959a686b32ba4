package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"unitconv/internal/units"
)

// metrics holds the API's Prometheus collectors on a private registry
type metrics struct {
	registry           *prometheus.Registry
	conversionsCounter *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		conversionsCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "unitconv_conversions_total",
			Help: "Total number of conversion requests by type and outcome",
		}, []string{"type", "outcome"}),
	}
	m.registry.MustRegister(m.conversionsCounter)
	return m
}

// observe records one conversion. Unknown types share a single label value.
func (m *metrics) observe(conversionType string, err error) {
	typeLabel := "unknown"
	if units.ConversionType(conversionType).Valid() {
		typeLabel = conversionType
	}

	outcome := "success"
	if err != nil {
		outcome = "error"
	}

	m.conversionsCounter.WithLabelValues(typeLabel, outcome).Inc()
}
