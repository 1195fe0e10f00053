package statistics

import (
	"github.com/board2go/board2go/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

const systemSubsystem = "system"

type SystemCollector struct {
	registry   *telemetry.Registry
	usage      *prometheus.Desc
	throughput *prometheus.Desc
	scale      *prometheus.Desc
}

func NewSystemCollector(registry *telemetry.Registry) *SystemCollector {
	return &SystemCollector{
		registry: registry,
		usage: prometheus.NewDesc(prometheus.BuildFQName(namespace, systemSubsystem, "usage_percent"),
			"Host resource usage in percent",
			[]string{"resource"}, nil,
		),
		throughput: prometheus.NewDesc(prometheus.BuildFQName(namespace, systemSubsystem, "throughput_mbps"),
			"Network and disk throughput in MB/s",
			[]string{"device", "direction"}, nil,
		),
		scale: prometheus.NewDesc(prometheus.BuildFQName(namespace, systemSubsystem, "scale_max"),
			"Current adaptive chart ceiling in MB/s",
			[]string{"device"}, nil,
		),
	}
}

func (collector *SystemCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.usage
	ch <- collector.throughput
	ch <- collector.scale
}

func (collector *SystemCollector) Collect(ch chan<- prometheus.Metric) {
	r := collector.registry
	sendReading(ch, r, collector.usage, prometheus.GaugeValue, telemetry.CpuPercent, "cpu")
	sendReading(ch, r, collector.usage, prometheus.GaugeValue, telemetry.RamPercent, "ram")
	sendReading(ch, r, collector.usage, prometheus.GaugeValue, telemetry.DiskPercent, "disk")

	sendReading(ch, r, collector.throughput, prometheus.GaugeValue, telemetry.NetUpload, "network", "up")
	sendReading(ch, r, collector.throughput, prometheus.GaugeValue, telemetry.NetDownload, "network", "down")
	sendReading(ch, r, collector.throughput, prometheus.GaugeValue, telemetry.DiskRead, "disk", "read")
	sendReading(ch, r, collector.throughput, prometheus.GaugeValue, telemetry.DiskWrite, "disk", "write")

	sendReading(ch, r, collector.scale, prometheus.GaugeValue, telemetry.NetScale, "network")
	sendReading(ch, r, collector.scale, prometheus.GaugeValue, telemetry.DiskScale, "disk")
}
