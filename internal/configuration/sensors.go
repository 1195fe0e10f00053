package configuration

import "time"

const (
	DefaultTempCommand = "/usr/bin/vcgencmd"
	DefaultCmdTimeout  = 2 * time.Second
)

type SensorConfig struct {
	Cmd   *CmdSensorConfig   `json:"cmd,omitempty"`
	File  *FileSensorConfig  `json:"file,omitempty"`
	HwMon *HwMonSensorConfig `json:"hwmon,omitempty"`
}

type CmdSensorConfig struct {
	Exec    string        `json:"exec"`
	Args    []string      `json:"args"`
	Timeout time.Duration `json:"timeout"`
}

type FileSensorConfig struct {
	// Path of a file containing a temperature in °C or m°C
	Path string `json:"path"`
}

type HwMonSensorConfig struct {
	// Chip is a regex matched against the lm-sensors chip prefix
	Chip string `json:"chip"`
	// Index of the temperature input on the chip, starting at 1
	Index int `json:"index"`
}
