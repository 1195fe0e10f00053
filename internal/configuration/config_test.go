package configuration

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func loadYaml(t *testing.T, content string) {
	viper.Reset()
	setDefaultValues()
	viper.SetConfigType("yaml")
	err := viper.ReadConfig(bytes.NewBufferString(content))
	assert.NoError(t, err)
	LoadConfig()
}

func TestLoadConfig_Defaults(t *testing.T) {
	// WHEN
	loadYaml(t, "")

	// THEN
	config := CurrentConfig
	assert.Equal(t, "/var/lib/board2go/fan_state.json", config.FanStatePath())
	assert.Equal(t, "/var/lib/board2go/led_state.json", config.LedStatePath())
	assert.Equal(t, "/var/lib/board2go/fan_curve.json", config.FanCurvePath())
	assert.Equal(t, "/var/lib/board2go/hardware_state.json", config.HardwareStatusPath())
	assert.Equal(t, 500*time.Millisecond, config.TickRate)
	assert.Equal(t, 20*time.Second, config.NetworkPollingRate)
	assert.Equal(t, 10, config.Led.SmoothingStep)
	assert.Equal(t, 8, config.Led.DeadBand)
	assert.Equal(t, DefaultI2cAddress, config.Board.Expansion.Address)
	assert.Nil(t, config.Board.File)
	assert.Equal(t, DefaultTempCommand, config.Sensor.Cmd.Exec)
	assert.Equal(t, []string{"measure_temp"}, config.Sensor.Cmd.Args)
	assert.Equal(t, 0.95, config.Metrics.Network.DecayFactor)
	assert.NoError(t, validateConfig(&config, ""))
}

func TestLoadConfig_Overrides(t *testing.T) {
	// WHEN
	loadYaml(t, `
stateDir: /tmp/board2go
files:
  fanCurve: /etc/board2go/curve.json
tickRate: 250ms
board:
  expansion:
    bus: "0"
    address: "0x22"
sensor:
  file:
    path: /sys/class/thermal/thermal_zone0/temp
fan:
  presets:
    silent: 90
metrics:
  disk:
    minScale: 1
`)

	// THEN
	config := CurrentConfig
	assert.Equal(t, "/tmp/board2go/fan_state.json", config.FanStatePath())
	assert.Equal(t, "/etc/board2go/curve.json", config.FanCurvePath())
	assert.Equal(t, 250*time.Millisecond, config.TickRate)
	assert.Equal(t, "0", config.Board.Expansion.Bus)
	assert.Equal(t, I2cAddress(0x22), config.Board.Expansion.Address)
	assert.Nil(t, config.Sensor.Cmd)
	assert.Equal(t, "/sys/class/thermal/thermal_zone0/temp", config.Sensor.File.Path)
	assert.Equal(t, map[string]int{"silent": 90}, config.Fan.Presets)
	assert.Equal(t, 1.0, config.Metrics.Disk.MinScale)
	assert.Equal(t, 10000.0, config.Metrics.Disk.MaxScale)
}

func TestLoadConfig_FileBoard(t *testing.T) {
	// WHEN
	loadYaml(t, `
board:
  file:
    path: /tmp/board
`)

	// THEN
	assert.Nil(t, CurrentConfig.Board.Expansion)
	assert.Equal(t, "/tmp/board", CurrentConfig.Board.File.Path)
}

func TestParseI2cAddress(t *testing.T) {
	inputs := map[string]I2cAddress{
		"0x21":   0x21,
		"33":     0x21,
		" 0x7f ": 0x7F,
	}
	for input, expected := range inputs {
		result, err := ParseI2cAddress(input)
		assert.NoError(t, err)
		assert.Equal(t, expected, result)
	}

	_, err := ParseI2cAddress("bus")
	assert.Error(t, err)
}

func TestI2cAddress_String(t *testing.T) {
	assert.Equal(t, "0x21", I2cAddress(0x21).String())
}
