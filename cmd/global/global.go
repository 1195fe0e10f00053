package global

import (
	"github.com/board2go/board2go/internal/configuration"
	"github.com/board2go/board2go/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/tomlazar/table"
)

var (
	CfgFile string
	NoColor bool
	NoStyle bool
	Verbose bool
)

// LoadAndValidateConfig reads and validates the configuration, exiting on validation errors.
func LoadAndValidateConfig() string {
	configPath := configuration.DetectAndReadConfigFile()
	ui.Debug("Using configuration file at: %s", configPath)
	configuration.LoadConfig()
	if err := configuration.Validate(configPath); err != nil {
		ui.FatalWithoutStacktrace("Config validation failed: %v", err)
	}
	return configPath
}

func TableConfig() *table.Config {
	return &table.Config{
		ShowIndex:       false,
		Color:           !NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	}
}
