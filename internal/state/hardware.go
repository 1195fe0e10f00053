package state

import (
	"math"
	"time"
)

// HardwareStatus is published by the daemon for the UI.
type HardwareStatus struct {
	ChassisTemp float64 `json:"chassis_temp"`
	Fan0Pct     int     `json:"fan0_pct"`
	Fan1Pct     int     `json:"fan1_pct"`
	// Ts is the unix time of the sample in seconds
	Ts float64 `json:"ts"`
}

func NewHardwareStatus(chassisTemp float64, fan0Pct int, fan1Pct int, now time.Time) HardwareStatus {
	return HardwareStatus{
		ChassisTemp: chassisTemp,
		Fan0Pct:     fan0Pct,
		Fan1Pct:     fan1Pct,
		Ts:          float64(now.Unix()) + float64(now.Nanosecond())/float64(time.Second),
	}
}

func (s HardwareStatus) Timestamp() time.Time {
	sec, frac := math.Modf(s.Ts)
	return time.Unix(int64(sec), int64(frac*float64(time.Second)))
}

// IsStale reports whether the sample is older than maxAge
func (s HardwareStatus) IsStale(now time.Time, maxAge time.Duration) bool {
	return now.Sub(s.Timestamp()) > maxAge
}

// ReadHardwareStatus returns nil when no usable document exists at path.
func ReadHardwareStatus(path string) *HardwareStatus {
	doc, ok := Read(path)
	if !ok {
		return nil
	}
	result := &HardwareStatus{}
	result.ChassisTemp, _ = CoerceFloat(doc["chassis_temp"])
	result.Fan0Pct, _ = CoerceInt(doc["fan0_pct"])
	result.Fan1Pct, _ = CoerceInt(doc["fan1_pct"])
	result.Ts, _ = CoerceFloat(doc["ts"])
	return result
}
