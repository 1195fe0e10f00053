package statistics

import (
	"github.com/board2go/board2go/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

const ledSubsystem = "led"

type LedCollector struct {
	registry   *telemetry.Registry
	color      *prometheus.Desc
	writes     *prometheus.Desc
	suppressed *prometheus.Desc
	failures   *prometheus.Desc
}

func NewLedCollector(registry *telemetry.Registry) *LedCollector {
	return &LedCollector{
		registry: registry,
		color: prometheus.NewDesc(prometheus.BuildFQName(namespace, ledSubsystem, "color"),
			"Current LED color channel value",
			[]string{"channel"}, nil,
		),
		writes: prometheus.NewDesc(prometheus.BuildFQName(namespace, ledSubsystem, "writes_total"),
			"Number of LED mode and color writes issued to the board",
			nil, nil,
		),
		suppressed: prometheus.NewDesc(prometheus.BuildFQName(namespace, ledSubsystem, "suppressed_total"),
			"Number of LED updates that needed no hardware write",
			nil, nil,
		),
		failures: prometheus.NewDesc(prometheus.BuildFQName(namespace, ledSubsystem, "failures_total"),
			"Number of failed LED writes",
			nil, nil,
		),
	}
}

func (collector *LedCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.color
	ch <- collector.writes
	ch <- collector.suppressed
	ch <- collector.failures
}

func (collector *LedCollector) Collect(ch chan<- prometheus.Metric) {
	sendReading(ch, collector.registry, collector.color, prometheus.GaugeValue, telemetry.LedRed, "r")
	sendReading(ch, collector.registry, collector.color, prometheus.GaugeValue, telemetry.LedGreen, "g")
	sendReading(ch, collector.registry, collector.color, prometheus.GaugeValue, telemetry.LedBlue, "b")
	sendReading(ch, collector.registry, collector.writes, prometheus.CounterValue, telemetry.LedWrites)
	sendReading(ch, collector.registry, collector.suppressed, prometheus.CounterValue, telemetry.LedSuppressed)
	sendReading(ch, collector.registry, collector.failures, prometheus.CounterValue, telemetry.LedFailures)
}
