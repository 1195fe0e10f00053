package board

import (
	"fmt"

	"github.com/board2go/board2go/internal/configuration"
)

const (
	MinDutyValue = 0
	MaxDutyValue = 255

	FanChannelCount = 2
)

// FanMode selects who drives the fans, the host or the board firmware
type FanMode int

const (
	FanModeFirmware FanMode = 0
	FanModeManual   FanMode = 1
)

// LedMode is the effect id understood by the board firmware
type LedMode int

const (
	LedModeOff       LedMode = 0
	LedModeRgb       LedMode = 1
	LedModeFollow    LedMode = 2
	LedModeBreathing LedMode = 3
	LedModeRainbow   LedMode = 4
)

// Board is the hardware capability of the fan/LED expansion board.
type Board interface {
	GetId() string

	SetFanMode(mode FanMode) error
	// SetFanDuty applies a duty in [0, 255] to both fan channels
	SetFanDuty(duty0 int, duty1 int) error
	// GetFanDuty returns the duty currently applied to the given channel
	GetFanDuty(channel int) (int, error)

	SetLedMode(mode LedMode) error
	SetAllLedColor(r int, g int, b int) error

	// GetTemp returns the board (chassis) temperature in °C
	GetTemp() (float64, error)

	Close() error
}

func NewBoard(config configuration.BoardConfig) (Board, error) {
	if config.Expansion != nil {
		return NewExpansionBoard(*config.Expansion)
	}

	if config.File != nil {
		return NewFileBoard(*config.File)
	}

	return nil, fmt.Errorf("no matching board type for configuration")
}

func checkChannel(channel int) error {
	if channel < 0 || channel >= FanChannelCount {
		return fmt.Errorf("invalid fan channel %d", channel)
	}
	return nil
}
