package configuration

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/board2go/board2go/internal/scale"
	"github.com/board2go/board2go/internal/state"
	"github.com/board2go/board2go/internal/util"
	"golang.org/x/exp/slices"
)

func Validate(configPath string) error {
	return validateConfig(&CurrentConfig, configPath)
}

func validateConfig(config *Configuration, path string) error {
	validators := []func(config *Configuration) error{
		validateFiles,
		validateRates,
		validateBoard,
		validateSensor,
		validateFan,
		validateLed,
		validateMetrics,
		validateServers,
	}
	for _, validator := range validators {
		if err := validator(config); err != nil {
			return err
		}
	}

	if config.Sensor.Cmd != nil && len(path) > 0 {
		if _, err := util.CheckFilePermissionsForExecution(path); err != nil {
			return fmt.Errorf("config file '%s' has invalid permissions: %s", path, err)
		}
	}

	return nil
}

func validateFiles(config *Configuration) error {
	if len(strings.TrimSpace(config.StateDir)) <= 0 {
		return errors.New("stateDir must not be empty")
	}
	files := map[string]string{
		"fanState":       config.Files.FanState,
		"ledState":       config.Files.LedState,
		"fanCurve":       config.Files.FanCurve,
		"hardwareStatus": config.Files.HardwareStatus,
	}
	seen := map[string]string{}
	for _, key := range util.SortedKeys(files) {
		name := files[key]
		if len(strings.TrimSpace(name)) <= 0 {
			return fmt.Errorf("files.%s must not be empty", key)
		}
		resolved := config.StatePath(name)
		if other, exists := seen[resolved]; exists {
			return fmt.Errorf("files.%s and files.%s point to the same file: %s", other, key, resolved)
		}
		seen[resolved] = key
	}
	return nil
}

func validateRates(config *Configuration) error {
	rates := map[string]time.Duration{
		"tickRate":             config.TickRate,
		"tempPollingRate":      config.TempPollingRate,
		"statePollingRate":     config.StatePollingRate,
		"networkPollingRate":   config.NetworkPollingRate,
		"hardwareStatusRate":   config.HardwareStatusRate,
		"hardwareStatusMaxAge": config.HardwareStatusMaxAge,
	}
	for _, key := range util.SortedKeys(rates) {
		if rates[key] <= 0 {
			return fmt.Errorf("%s must be greater than 0, was: %s", key, rates[key])
		}
	}
	return nil
}

func validateBoard(config *Configuration) error {
	subConfigs := 0
	if config.Board.Expansion != nil {
		subConfigs++
		if len(config.Board.Expansion.Bus) <= 0 {
			return errors.New("board: i2c bus must not be empty")
		}
		if config.Board.Expansion.Address <= 0 || config.Board.Expansion.Address > 0x7F {
			return fmt.Errorf("board: invalid i2c address %s, must be in [0x01, 0x7f]", config.Board.Expansion.Address)
		}
	}
	if config.Board.File != nil {
		subConfigs++
		if len(config.Board.File.Path) <= 0 {
			return errors.New("board: file path must not be empty")
		}
	}
	if subConfigs > 1 {
		return errors.New("board: only one board type can be used")
	}
	if subConfigs <= 0 {
		return errors.New("board: sub-configuration for board is missing, use one of: expansion | file")
	}
	return nil
}

func validateSensor(config *Configuration) error {
	subConfigs := 0
	if config.Sensor.Cmd != nil {
		subConfigs++
		if len(config.Sensor.Cmd.Exec) <= 0 {
			return errors.New("sensor: cmd executable must not be empty")
		}
	}
	if config.Sensor.File != nil {
		subConfigs++
		if len(config.Sensor.File.Path) <= 0 {
			return errors.New("sensor: file path must not be empty")
		}
	}
	if config.Sensor.HwMon != nil {
		subConfigs++
		if config.Sensor.HwMon.Index <= 0 {
			return errors.New("sensor: invalid hwmon index, must be >= 1")
		}
	}
	if subConfigs > 1 {
		return errors.New("sensor: only one sensor type can be used")
	}
	if subConfigs <= 0 {
		return errors.New("sensor: sub-configuration for sensor is missing, use one of: cmd | file | hwmon")
	}
	return nil
}

func validateFan(config *Configuration) error {
	for _, mode := range util.SortedKeys(config.Fan.Presets) {
		if !slices.Contains(state.FanModes, state.FanMode(mode)) {
			return fmt.Errorf("fan: preset for unknown mode '%s'", mode)
		}
		pwm := config.Fan.Presets[mode]
		if pwm < 0 || pwm > 255 {
			return fmt.Errorf("fan: preset %d for mode '%s' is out of range [0, 255]", pwm, mode)
		}
	}
	return nil
}

func validateLed(config *Configuration) error {
	led := config.Led
	if led.SmoothingStep <= 0 {
		return fmt.Errorf("led: smoothingStep must be greater than 0, was: %d", led.SmoothingStep)
	}
	if led.DeadBand < 0 {
		return fmt.Errorf("led: deadBand must not be negative, was: %d", led.DeadBand)
	}
	if led.ColorLowTemp >= led.ColorHighTemp {
		return fmt.Errorf("led: colorLowTemp (%v) must be lower than colorHighTemp (%v)", led.ColorLowTemp, led.ColorHighTemp)
	}
	return nil
}

func validateMetrics(config *Configuration) error {
	metrics := config.Metrics
	if !metrics.Enabled {
		return nil
	}
	if metrics.PollingRate <= 0 {
		return fmt.Errorf("metrics: pollingRate must be greater than 0, was: %s", metrics.PollingRate)
	}
	if metrics.WindowSize <= 0 {
		return fmt.Errorf("metrics: windowSize must be greater than 0, was: %d", metrics.WindowSize)
	}
	if err := validateScale("metrics.network", metrics.Network); err != nil {
		return err
	}
	return validateScale("metrics.disk", metrics.Disk)
}

func validateScale(key string, cfg scale.Config) error {
	if cfg.MinScale <= 0 {
		return fmt.Errorf("%s: minScale must be greater than 0", key)
	}
	if cfg.MaxScale <= cfg.MinScale {
		return fmt.Errorf("%s: maxScale must be greater than minScale", key)
	}
	if cfg.DecayFactor <= 0 || cfg.DecayFactor > 1 {
		return fmt.Errorf("%s: decayFactor must be in (0, 1], was: %v", key, cfg.DecayFactor)
	}
	if cfg.Headroom < 1 {
		return fmt.Errorf("%s: headroom must be >= 1, was: %v", key, cfg.Headroom)
	}
	if cfg.IdleResetTicks < 0 {
		return fmt.Errorf("%s: idleResetTicks must not be negative", key)
	}
	return nil
}

func validateServers(config *Configuration) error {
	ports := map[int]string{}
	if config.Statistics.Enabled {
		ports[config.Statistics.Port] = "statistics"
	}
	if config.Api.Enabled {
		if other, exists := ports[config.Api.Port]; exists {
			return fmt.Errorf("api: port %d is already used by %s", config.Api.Port, other)
		}
		ports[config.Api.Port] = "api"
	}
	if config.Profiling.Enabled {
		if other, exists := ports[config.Profiling.Port]; exists {
			return fmt.Errorf("profiling: port %d is already used by %s", config.Profiling.Port, other)
		}
		ports[config.Profiling.Port] = "profiling"
	}
	for _, port := range util.SortedKeys(ports) {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("%s: invalid port %d", ports[port], port)
		}
	}
	return nil
}
