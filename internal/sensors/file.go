package sensors

import (
	"github.com/board2go/board2go/internal/configuration"
	"github.com/board2go/board2go/internal/util"
)

// values above this are in m°C, as in /sys/class/thermal
const milliDegreeThreshold = 1000

type FileSensor struct {
	Config configuration.FileSensorConfig `json:"configuration"`
}

func (sensor FileSensor) GetId() string {
	return sensor.Config.Path
}

func (sensor FileSensor) GetValue() (float64, error) {
	filePath, err := util.ExpandHome(sensor.Config.Path)
	if err != nil {
		return 0, err
	}

	value, err := util.ReadFloatFromFile(filePath)
	if err != nil {
		return 0, err
	}
	if value > milliDegreeThreshold || value < -milliDegreeThreshold {
		value = value / 1000
	}
	return value, nil
}
