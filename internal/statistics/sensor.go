package statistics

import (
	"github.com/board2go/board2go/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemSensor = "sensor"

type SensorCollector struct {
	registry    *telemetry.Registry
	temperature *prometheus.Desc
}

func NewSensorCollector(registry *telemetry.Registry) *SensorCollector {
	return &SensorCollector{
		registry: registry,
		temperature: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "temperature"),
			"Last known CPU temperature in degrees celsius",
			nil, nil,
		),
	}
}

func (collector *SensorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.temperature
}

func (collector *SensorCollector) Collect(ch chan<- prometheus.Metric) {
	sendReading(ch, collector.registry, collector.temperature, prometheus.GaugeValue, telemetry.CpuTemperature)
}
