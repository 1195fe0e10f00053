package configuration

import (
	"testing"
	"time"

	"github.com/board2go/board2go/internal/scale"
	"github.com/stretchr/testify/assert"
)

func createValidConfig() Configuration {
	return Configuration{
		StateDir: "/var/lib/board2go",
		Files: FilesConfig{
			FanState:       "fan_state.json",
			LedState:       "led_state.json",
			FanCurve:       "fan_curve.json",
			HardwareStatus: "hardware_state.json",
		},
		TickRate:             500 * time.Millisecond,
		TempPollingRate:      time.Second,
		StatePollingRate:     time.Second,
		NetworkPollingRate:   20 * time.Second,
		HardwareStatusRate:   5 * time.Second,
		HardwareStatusMaxAge: 15 * time.Second,
		Board: BoardConfig{
			Expansion: &ExpansionBoardConfig{
				Bus:     DefaultI2cBus,
				Address: DefaultI2cAddress,
			},
		},
		Sensor: SensorConfig{
			File: &FileSensorConfig{
				Path: "/sys/class/thermal/thermal_zone0/temp",
			},
		},
		Led: LedConfig{
			SmoothingStep: 10,
			DeadBand:      8,
			ColorLowTemp:  40,
			ColorHighTemp: 75,
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			PollingRate: 2 * time.Second,
			WindowSize:  5,
			Network:     scale.DefaultConfig(),
			Disk:        scale.DefaultConfig(),
		},
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	// GIVEN
	config := createValidConfig()

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.NoError(t, err)
}

func TestValidateConfig_EmptyFileName(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Files.LedState = " "

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "files.ledState must not be empty")
}

func TestValidateConfig_DuplicateFile(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Files.LedState = "/var/lib/board2go/fan_state.json"

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "files.fanState and files.ledState point to the same file: /var/lib/board2go/fan_state.json")
}

func TestValidateConfig_InvalidRate(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.TickRate = 0

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "tickRate must be greater than 0, was: 0s")
}

func TestValidateConfig_BoardSubConfigMissing(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Board.Expansion = nil

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "board: sub-configuration for board is missing, use one of: expansion | file")
}

func TestValidateConfig_MultipleBoards(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Board.File = &FileBoardConfig{Path: "/tmp/board"}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "board: only one board type can be used")
}

func TestValidateConfig_InvalidAddress(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Board.Expansion.Address = 0x80

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "board: invalid i2c address 0x80, must be in [0x01, 0x7f]")
}

func TestValidateConfig_MultipleSensors(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Sensor.HwMon = &HwMonSensorConfig{Chip: "cpu_thermal", Index: 1}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "sensor: only one sensor type can be used")
}

func TestValidateConfig_HwMonIndex(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Sensor.File = nil
	config.Sensor.HwMon = &HwMonSensorConfig{Chip: "cpu_thermal", Index: 0}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "sensor: invalid hwmon index, must be >= 1")
}

func TestValidateConfig_UnknownPresetMode(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Fan.Presets = map[string]int{"turbo": 255}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "fan: preset for unknown mode 'turbo'")
}

func TestValidateConfig_PresetOutOfRange(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Fan.Presets = map[string]int{"silent": 300}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "fan: preset 300 for mode 'silent' is out of range [0, 255]")
}

func TestValidateConfig_LedThresholds(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Led.ColorLowTemp = 80

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "led: colorLowTemp (80) must be lower than colorHighTemp (75)")
}

func TestValidateConfig_LedStep(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Led.SmoothingStep = 0

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "led: smoothingStep must be greater than 0, was: 0")
}

func TestValidateConfig_ScaleDecay(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Metrics.Disk.DecayFactor = 1.5

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "metrics.disk: decayFactor must be in (0, 1], was: 1.5")
}

func TestValidateConfig_MetricsDisabledSkipsScale(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Metrics.Enabled = false
	config.Metrics.Disk.DecayFactor = 1.5

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.NoError(t, err)
}

func TestValidateConfig_PortClash(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Statistics = StatisticsConfig{Enabled: true, Port: 9000}
	config.Api = ApiConfig{Enabled: true, Host: "localhost", Port: 9000}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "api: port 9000 is already used by statistics")
}
