package sensors

import (
	"fmt"

	"github.com/board2go/board2go/internal/configuration"
)

// Sensor is a source of the CPU temperature in °C.
type Sensor interface {
	GetId() string

	// GetValue returns the current value of this sensor
	GetValue() (float64, error)
}

func NewSensor(config configuration.SensorConfig) (Sensor, error) {
	if config.Cmd != nil {
		return &CmdSensor{
			Config: *config.Cmd,
		}, nil
	}

	if config.File != nil {
		return &FileSensor{
			Config: *config.File,
		}, nil
	}

	if config.HwMon != nil {
		return &HwmonSensor{
			Config: *config.HwMon,
		}, nil
	}

	return nil, fmt.Errorf("no matching sensor type for sensor configuration")
}
