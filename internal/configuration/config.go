package configuration

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/board2go/board2go/internal/scale"
	"github.com/board2go/board2go/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Configuration struct {
	DbPath string `json:"dbPath"`

	// StateDir holds the JSON documents shared with the UI
	StateDir      string      `json:"stateDir"`
	Files         FilesConfig `json:"files"`
	WatchStateDir bool        `json:"watchStateDir"`

	TickRate             time.Duration `json:"tickRate"`
	TempPollingRate      time.Duration `json:"tempPollingRate"`
	StatePollingRate     time.Duration `json:"statePollingRate"`
	NetworkPollingRate   time.Duration `json:"networkPollingRate"`
	HardwareStatusRate   time.Duration `json:"hardwareStatusRate"`
	HardwareStatusMaxAge time.Duration `json:"hardwareStatusMaxAge"`

	// FallbackTemperature is used when no temperature was ever read
	FallbackTemperature float64 `json:"fallbackTemperature"`

	Board   BoardConfig   `json:"board"`
	Sensor  SensorConfig  `json:"sensor"`
	Network NetworkConfig `json:"network"`
	Fan     FanConfig     `json:"fan"`
	Led     LedConfig     `json:"led"`
	Metrics MetricsConfig `json:"metrics"`

	Statistics StatisticsConfig `json:"statistics"`
	Api        ApiConfig        `json:"api"`
	Profiling  ProfilingConfig  `json:"profiling"`
}

type FilesConfig struct {
	FanState       string `json:"fanState"`
	LedState       string `json:"ledState"`
	FanCurve       string `json:"fanCurve"`
	HardwareStatus string `json:"hardwareStatus"`
}

type NetworkConfig struct {
	// TunnelInterface is reported next to the primary address, e.g. a VPN link
	TunnelInterface string `json:"tunnelInterface"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("board2go")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/board2go/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("dbPath", "/etc/board2go/board2go.db")

	viper.SetDefault("stateDir", "/var/lib/board2go")
	viper.SetDefault("files.fanState", "fan_state.json")
	viper.SetDefault("files.ledState", "led_state.json")
	viper.SetDefault("files.fanCurve", "fan_curve.json")
	viper.SetDefault("files.hardwareStatus", "hardware_state.json")
	viper.SetDefault("watchStateDir", true)

	viper.SetDefault("tickRate", 500*time.Millisecond)
	viper.SetDefault("tempPollingRate", 1*time.Second)
	viper.SetDefault("statePollingRate", 1*time.Second)
	viper.SetDefault("networkPollingRate", 20*time.Second)
	viper.SetDefault("hardwareStatusRate", 5*time.Second)
	viper.SetDefault("hardwareStatusMaxAge", 15*time.Second)
	viper.SetDefault("fallbackTemperature", 0.0)

	viper.SetDefault("network.tunnelInterface", "tun0")

	viper.SetDefault("fan.presets", map[string]int{})

	viper.SetDefault("led.smoothingStep", 10)
	viper.SetDefault("led.deadBand", 8)
	viper.SetDefault("led.colorLowTemp", 40.0)
	viper.SetDefault("led.colorHighTemp", 75.0)

	scaleDefaults := scale.DefaultConfig()
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.pollingRate", 2*time.Second)
	viper.SetDefault("metrics.windowSize", 5)
	viper.SetDefault("metrics.interface", "")
	setScaleDefaults("metrics.network", scaleDefaults)
	setScaleDefaults("metrics.disk", scaleDefaults)

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9000)

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 9001)

	viper.SetDefault("profiling.enabled", false)
	viper.SetDefault("profiling.host", "localhost")
	viper.SetDefault("profiling.port", 6060)
}

func setScaleDefaults(prefix string, defaults scale.Config) {
	viper.SetDefault(prefix+".minScale", defaults.MinScale)
	viper.SetDefault(prefix+".maxScale", defaults.MaxScale)
	viper.SetDefault(prefix+".idleThreshold", defaults.IdleThreshold)
	viper.SetDefault(prefix+".idleResetTicks", defaults.IdleResetTicks)
	viper.SetDefault(prefix+".decayFactor", defaults.DecayFactor)
	viper.SetDefault(prefix+".headroom", defaults.Headroom)
}

// DetectAndReadConfigFile reads the config file, if one exists, and returns its path.
// Without a config file the defaults are used.
func DetectAndReadConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			ui.Warning("No configuration file found, using defaults")
			return ""
		}
		ui.Fatal("Error reading config file, %s", err)
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

func LoadConfig() {
	CurrentConfig = Configuration{}
	err := viper.Unmarshal(&CurrentConfig, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			i2cAddressHookFunc(),
		),
	))
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
	applyDeviceDefaults(&CurrentConfig)
}

// applyDeviceDefaults selects the expansion board and the firmware
// temperature command if nothing else was configured.
func applyDeviceDefaults(config *Configuration) {
	if config.Board.Expansion == nil && config.Board.File == nil {
		config.Board.Expansion = &ExpansionBoardConfig{
			Bus:     DefaultI2cBus,
			Address: DefaultI2cAddress,
		}
	}
	if config.Sensor.Cmd == nil && config.Sensor.File == nil && config.Sensor.HwMon == nil {
		config.Sensor.Cmd = &CmdSensorConfig{
			Exec:    DefaultTempCommand,
			Args:    []string{"measure_temp"},
			Timeout: DefaultCmdTimeout,
		}
	}
	if config.Sensor.Cmd != nil && config.Sensor.Cmd.Timeout <= 0 {
		config.Sensor.Cmd.Timeout = DefaultCmdTimeout
	}
}

// StatePath resolves a state file name relative to StateDir.
func (c *Configuration) StatePath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.StateDir, name)
}

func (c *Configuration) FanStatePath() string {
	return c.StatePath(c.Files.FanState)
}

func (c *Configuration) LedStatePath() string {
	return c.StatePath(c.Files.LedState)
}

func (c *Configuration) FanCurvePath() string {
	return c.StatePath(c.Files.FanCurve)
}

func (c *Configuration) HardwareStatusPath() string {
	return c.StatePath(c.Files.HardwareStatus)
}
