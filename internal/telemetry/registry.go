package telemetry

import (
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"golang.org/x/exp/slices"
)

// well known reading ids
const (
	CpuTemperature = "cpu_temperature"
	FanPwm         = "fan_pwm"
	FanPercent     = "fan_percent"
	FanWrites      = "fan_writes"
	FanFailures    = "fan_failures"
	LedRed         = "led_r"
	LedGreen       = "led_g"
	LedBlue        = "led_b"
	LedWrites      = "led_writes"
	LedSuppressed  = "led_suppressed"
	LedFailures    = "led_failures"
	PrimaryIp      = "primary_ip"
	TunnelIp       = "tunnel_ip"
	CpuPercent     = "cpu_percent"
	RamPercent     = "ram_percent"
	DiskPercent    = "disk_percent"
	NetInterface   = "net_interface"
	NetUpload      = "net_upload"
	NetDownload    = "net_download"
	NetScale       = "net_scale"
	DiskRead       = "disk_read"
	DiskWrite      = "disk_write"
	DiskScale      = "disk_scale"
)

// Reading is the latest value of a single metric. Text readings leave
// Value at zero.
type Reading struct {
	Id    string    `json:"id"`
	Value float64   `json:"value"`
	Text  string    `json:"text,omitempty"`
	Unit  string    `json:"unit,omitempty"`
	Time  time.Time `json:"time"`
}

// Registry holds the latest readings. It is written by the control loop and
// read by the API and the statistics collectors.
type Registry struct {
	readings cmap.ConcurrentMap[string, Reading]
}

func NewRegistry() *Registry {
	return &Registry{
		readings: cmap.New[Reading](),
	}
}

func (r *Registry) Set(id string, value float64, unit string, now time.Time) {
	r.readings.Set(id, Reading{Id: id, Value: value, Unit: unit, Time: now})
}

func (r *Registry) SetText(id string, text string, now time.Time) {
	r.readings.Set(id, Reading{Id: id, Text: text, Time: now})
}

func (r *Registry) Get(id string) (Reading, bool) {
	return r.readings.Get(id)
}

// Value returns the numeric value of id, or fallback if there is none.
func (r *Registry) Value(id string, fallback float64) float64 {
	reading, ok := r.readings.Get(id)
	if !ok {
		return fallback
	}
	return reading.Value
}

func (r *Registry) Items() map[string]Reading {
	return r.readings.Items()
}

// Ids returns all known reading ids in sorted order.
func (r *Registry) Ids() []string {
	ids := r.readings.Keys()
	slices.Sort(ids)
	return ids
}

func (r *Registry) Count() int {
	return r.readings.Count()
}
