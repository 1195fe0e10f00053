package controller

import (
	"fmt"

	"github.com/board2go/board2go/internal/board"
	"github.com/board2go/board2go/internal/colors"
	"github.com/board2go/board2go/internal/configuration"
	"github.com/board2go/board2go/internal/state"
	"github.com/board2go/board2go/internal/ui"
)

var boardLedModes = map[state.LedMode]board.LedMode{
	state.LedModeAuto:      board.LedModeRgb,
	state.LedModeOff:       board.LedModeOff,
	state.LedModeStatic:    board.LedModeRgb,
	state.LedModeFollow:    board.LedModeFollow,
	state.LedModeBreathing: board.LedModeBreathing,
	state.LedModeRainbow:   board.LedModeRainbow,
}

type LedControllerStats struct {
	Writes     int `json:"writes"`
	Suppressed int `json:"suppressed"`
	Failures   int `json:"failures"`
}

type appliedLedState struct {
	mode  *state.LedMode
	color *colors.Color
}

// LedController drives the LED strip from the requested LED state and the
// current temperature, suppressing writes that would not change anything.
type LedController struct {
	board  board.Board
	config configuration.LedConfig

	// current is the smoothing baseline of the auto mode
	current colors.Color
	applied appliedLedState
	stats   LedControllerStats
}

func NewLedController(b board.Board, config configuration.LedConfig, initial colors.Color) *LedController {
	return &LedController{
		board:   b,
		config:  config,
		current: initial,
	}
}

// Update applies the LED state for this tick and returns the new smoothing baseline.
func (c *LedController) Update(ledState *state.LedState, temp float64) (colors.Color, error) {
	mode := state.LedModeAuto
	if ledState != nil {
		mode = ledState.Mode
	}
	entering := c.applied.mode == nil || *c.applied.mode != mode

	var err error
	switch mode {
	case state.LedModeOff:
		c.current = colors.Black
		err = c.apply(mode, true, &colors.Black)

	case state.LedModeRainbow:
		err = c.apply(mode, entering, nil)

	case state.LedModeStatic:
		color := ledState.Color()
		c.current = color
		err = c.apply(mode, entering, &color)

	case state.LedModeFollow, state.LedModeBreathing:
		color := ledState.Color()
		c.current = color
		if c.applied.color != nil && *c.applied.color == color {
			err = c.apply(mode, entering, nil)
		} else {
			err = c.apply(mode, entering, &color)
		}

	default:
		target := colors.MapColor(temp, c.config.ColorLowTemp, c.config.ColorHighTemp)
		next := colors.Smooth(c.current, target, c.config.SmoothingStep)
		c.current = next
		if entering || c.applied.color == nil || colors.Delta(next, *c.applied.color) > c.config.DeadBand {
			err = c.apply(mode, entering, &next)
		} else {
			c.stats.Suppressed++
		}
	}

	return c.current, err
}

// apply writes the board mode if writeMode is set, then the color if given.
// Applied state is tracked per successful write.
func (c *LedController) apply(mode state.LedMode, writeMode bool, color *colors.Color) error {
	if !writeMode && color == nil {
		c.stats.Suppressed++
		return nil
	}

	if writeMode {
		if err := c.board.SetLedMode(boardLedModes[mode]); err != nil {
			c.stats.Failures++
			return fmt.Errorf("setting led mode %s: %w", mode, err)
		}
		c.applied.mode = &mode
		c.stats.Writes++
	}

	if color != nil {
		if err := c.board.SetAllLedColor(color.R, color.G, color.B); err != nil {
			c.stats.Failures++
			return fmt.Errorf("setting led color %s: %w", color, err)
		}
		applied := *color
		c.applied.color = &applied
		c.stats.Writes++
	}

	ui.Debug("LED state applied: mode=%s color=%v", mode, color)
	return nil
}

// Current returns the smoothing baseline.
func (c *LedController) Current() colors.Color {
	return c.current
}

// AppliedMode returns the mode that was last written successfully.
func (c *LedController) AppliedMode() (state.LedMode, bool) {
	if c.applied.mode == nil {
		return "", false
	}
	return *c.applied.mode, true
}

// AppliedColor returns the color that was last written successfully.
func (c *LedController) AppliedColor() (colors.Color, bool) {
	if c.applied.color == nil {
		return colors.Color{}, false
	}
	return *c.applied.color, true
}

func (c *LedController) Stats() LedControllerStats {
	return c.stats
}
