package system

import (
	"math"
	"time"

	"github.com/board2go/board2go/internal/configuration"
	"github.com/board2go/board2go/internal/scale"
	"github.com/board2go/board2go/internal/ui"
)

const (
	loopbackInterface = "lo"
	NoInterface       = "N/A"

	bytesPerMegabyte = 1024 * 1024
	minDeltaSeconds  = 0.0001
)

// Sample holds one round of host metrics. Throughput values are MB/s.
type Sample struct {
	CpuPercent  float64 `json:"cpuPercent"`
	RamPercent  float64 `json:"ramPercent"`
	DiskPercent float64 `json:"diskPercent"`

	Interface string  `json:"interface"`
	Upload    float64 `json:"upload"`
	Download  float64 `json:"download"`
	DiskRead  float64 `json:"diskRead"`
	DiskWrite float64 `json:"diskWrite"`

	NetScale  float64 `json:"netScale"`
	DiskScale float64 `json:"diskScale"`
}

// Sampler turns cumulative counters into throughput and keeps an adaptive
// chart scale for network and disk traffic.
type Sampler struct {
	source   Source
	iface    string
	previous *Counters
	Network  *scale.Series
	Disk     *scale.Series
}

func NewSampler(source Source, config configuration.MetricsConfig) *Sampler {
	return &Sampler{
		source:  source,
		iface:   config.Interface,
		Network: scale.NewSeries("network", config.Network, config.WindowSize),
		Disk:    scale.NewSeries("disk", config.Disk, config.WindowSize),
	}
}

// Sample reads the host metrics. Individual read errors are logged and leave
// the affected value at zero.
func (s *Sampler) Sample(now time.Time) Sample {
	var sample Sample
	var err error

	if sample.CpuPercent, err = s.source.CpuPercent(); err != nil {
		ui.Warning("Error reading cpu usage: %v", err)
	}
	if sample.RamPercent, err = s.source.RamPercent(); err != nil {
		ui.Warning("Error reading memory usage: %v", err)
	}
	if sample.DiskPercent, err = s.source.DiskPercent(); err != nil {
		ui.Warning("Error reading disk usage: %v", err)
	}

	current, err := s.source.Counters(now)
	if err != nil {
		ui.Warning("Error reading io counters: %v", err)
	}

	sample.Interface = SelectInterface(current.Net, s.iface)
	if s.previous != nil {
		seconds := math.Max(current.Time.Sub(s.previous.Time).Seconds(), minDeltaSeconds)
		if sample.Interface != NoInterface {
			prev, ok := s.previous.Net[sample.Interface]
			if ok {
				curr := current.Net[sample.Interface]
				sample.Upload = Throughput(prev.BytesSent, curr.BytesSent, seconds)
				sample.Download = Throughput(prev.BytesRecv, curr.BytesRecv, seconds)
			}
		}
		sample.DiskRead = Throughput(s.previous.DiskRead, current.DiskRead, seconds)
		sample.DiskWrite = Throughput(s.previous.DiskWrite, current.DiskWrite, seconds)
	}
	s.previous = &current

	sample.NetScale = s.Network.Append(math.Max(sample.Upload, sample.Download)).CurrentMax
	sample.DiskScale = s.Disk.Append(math.Max(sample.DiskRead, sample.DiskWrite)).CurrentMax
	return sample
}

// SelectInterface returns override if it is known, otherwise the interface
// with the most traffic, ignoring loopback.
func SelectInterface(counters map[string]NetCounter, override string) string {
	if _, ok := counters[override]; override != "" && ok {
		return override
	}

	selected := NoInterface
	var maxBytes uint64
	for name, counter := range counters {
		if name == loopbackInterface {
			continue
		}
		total := counter.BytesSent + counter.BytesRecv
		if selected == NoInterface || total > maxBytes || (total == maxBytes && name < selected) {
			maxBytes = total
			selected = name
		}
	}
	return selected
}

// Throughput converts the difference of two cumulative byte counters to MB/s.
// Counter resets yield 0.
func Throughput(previous uint64, current uint64, seconds float64) float64 {
	if current <= previous || seconds <= 0 {
		return 0
	}
	return float64(current-previous) / bytesPerMegabyte / seconds
}
