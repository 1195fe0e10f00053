package statistics

import (
	"github.com/board2go/board2go/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

const fanSubsystem = "fan"

type FanCollector struct {
	registry *telemetry.Registry
	pwm      *prometheus.Desc
	percent  *prometheus.Desc
	writes   *prometheus.Desc
	failures *prometheus.Desc
}

func NewFanCollector(registry *telemetry.Registry) *FanCollector {
	return &FanCollector{
		registry: registry,
		pwm: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "pwm"),
			"PWM duty last written to both fan channels",
			nil, nil,
		),
		percent: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "percent"),
			"Fan duty in percent",
			nil, nil,
		),
		writes: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "writes_total"),
			"Number of fan duty writes issued to the board",
			nil, nil,
		),
		failures: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "failures_total"),
			"Number of failed fan duty writes",
			nil, nil,
		),
	}
}

func (collector *FanCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.pwm
	ch <- collector.percent
	ch <- collector.writes
	ch <- collector.failures
}

// Collect implements required collect function for all prometheus collectors
func (collector *FanCollector) Collect(ch chan<- prometheus.Metric) {
	sendReading(ch, collector.registry, collector.pwm, prometheus.GaugeValue, telemetry.FanPwm)
	sendReading(ch, collector.registry, collector.percent, prometheus.GaugeValue, telemetry.FanPercent)
	sendReading(ch, collector.registry, collector.writes, prometheus.CounterValue, telemetry.FanWrites)
	sendReading(ch, collector.registry, collector.failures, prometheus.CounterValue, telemetry.FanFailures)
}
