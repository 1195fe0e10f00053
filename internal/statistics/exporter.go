package statistics

import (
	"github.com/board2go/board2go/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "board2go"
)

func Register(collector prometheus.Collector) {
	prometheus.MustRegister(collector)
}

// RegisterAll registers every board2go collector backed by the given registry.
func RegisterAll(registerer prometheus.Registerer, registry *telemetry.Registry) {
	registerer.MustRegister(
		NewSensorCollector(registry),
		NewFanCollector(registry),
		NewLedCollector(registry),
		NewSystemCollector(registry),
	)
}

// sendReading emits the reading with the given id, if there is one.
func sendReading(ch chan<- prometheus.Metric, registry *telemetry.Registry, desc *prometheus.Desc, valueType prometheus.ValueType, id string, labels ...string) {
	reading, ok := registry.Get(id)
	if !ok {
		return
	}
	ch <- prometheus.MustNewConstMetric(desc, valueType, reading.Value, labels...)
}
