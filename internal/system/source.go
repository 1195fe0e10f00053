package system

import (
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
)

const rootMountPoint = "/"

type NetCounter struct {
	BytesSent uint64
	BytesRecv uint64
}

// Counters is a snapshot of the cumulative IO counters of the host.
type Counters struct {
	Net       map[string]NetCounter
	DiskRead  uint64
	DiskWrite uint64
	Time      time.Time
}

// Source provides raw host metrics.
type Source interface {
	CpuPercent() (float64, error)
	RamPercent() (float64, error)
	DiskPercent() (float64, error)
	Counters(now time.Time) (Counters, error)
}

// HostSource reads metrics of the local host through gopsutil.
type HostSource struct{}

func (s HostSource) CpuPercent() (float64, error) {
	// non blocking, compares against the previous call
	values, err := cpu.Percent(0, false)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, nil
	}
	return values[0], nil
}

func (s HostSource) RamPercent() (float64, error) {
	stat, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return stat.UsedPercent, nil
}

func (s HostSource) DiskPercent() (float64, error) {
	stat, err := disk.Usage(rootMountPoint)
	if err != nil {
		return 0, err
	}
	return stat.UsedPercent, nil
}

func (s HostSource) Counters(now time.Time) (Counters, error) {
	result := Counters{
		Net:  map[string]NetCounter{},
		Time: now,
	}

	netStats, err := net.IOCounters(true)
	if err != nil {
		return result, err
	}
	for _, stat := range netStats {
		result.Net[stat.Name] = NetCounter{BytesSent: stat.BytesSent, BytesRecv: stat.BytesRecv}
	}

	diskStats, err := disk.IOCounters()
	if err != nil {
		return result, err
	}
	for _, stat := range diskStats {
		result.DiskRead += stat.ReadBytes
		result.DiskWrite += stat.WriteBytes
	}
	return result, nil
}
