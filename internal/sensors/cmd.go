package sensors

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/board2go/board2go/internal/configuration"
	"github.com/board2go/board2go/internal/util"
)

var temperaturePattern = regexp.MustCompile(`-?\d+(\.\d+)?`)

// CmdSensor runs a command printing the temperature, e.g. "vcgencmd measure_temp".
type CmdSensor struct {
	Config configuration.CmdSensorConfig `json:"configuration"`
}

func (sensor CmdSensor) GetId() string {
	return strings.Join(append([]string{sensor.Config.Exec}, sensor.Config.Args...), " ")
}

func (sensor CmdSensor) GetValue() (float64, error) {
	timeout := sensor.Config.Timeout
	if timeout <= 0 {
		timeout = configuration.DefaultCmdTimeout
	}
	result, err := util.SafeCmdExecution(sensor.Config.Exec, sensor.Config.Args, timeout)
	if err != nil {
		return 0, fmt.Errorf("sensor %s: %w", sensor.GetId(), err)
	}
	return ParseTemperature(result)
}

// ParseTemperature extracts the first number of a command output
// like "temp=48.3'C" or "48.3".
func ParseTemperature(output string) (float64, error) {
	match := temperaturePattern.FindString(output)
	if len(match) <= 0 {
		return 0, fmt.Errorf("no temperature in output: '%s'", output)
	}
	return strconv.ParseFloat(match, 64)
}
