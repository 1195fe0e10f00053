package controller

import (
	"fmt"

	"github.com/board2go/board2go/internal/board"
	"github.com/board2go/board2go/internal/curves"
	"github.com/board2go/board2go/internal/state"
	"github.com/board2go/board2go/internal/ui"
	"github.com/board2go/board2go/internal/util"
)

type FanControllerStats struct {
	Writes   int `json:"writes"`
	Failures int `json:"failures"`
}

// FanController decides the duty of both fan channels and writes it to the
// board only when it changed.
type FanController struct {
	board   board.Board
	presets map[state.FanMode]int

	lastSetPwm *int
	stats      FanControllerStats
}

func NewFanController(b board.Board, presets map[string]int) *FanController {
	modePresets := map[state.FanMode]int{}
	for name, pwm := range presets {
		if mode, ok := state.ParseFanMode(name); ok {
			modePresets[mode] = pwm
		}
	}
	return &FanController{
		board:   b,
		presets: modePresets,
	}
}

// TargetPwm returns the duty requested for the current tick, in [0, 255].
func (c *FanController) TargetPwm(fanState *state.FanState, temp float64, curve curves.Curve) int {
	target := c.requestedPwm(fanState, temp, curve)
	if target > curves.MaxPwmValue || target < curves.MinPwmValue {
		ui.Warning("Tried to set out-of-bounds PWM value %d on board %s", target, c.board.GetId())
	}
	return util.Coerce(target, curves.MinPwmValue, curves.MaxPwmValue)
}

func (c *FanController) requestedPwm(fanState *state.FanState, temp float64, curve curves.Curve) int {
	if fanState != nil {
		if fanState.TargetPwm != nil {
			return *fanState.TargetPwm
		}
		if preset, ok := c.presets[fanState.Mode]; ok {
			return preset
		}
	}
	return curves.Compute(curve, temp)
}

// Update applies the target duty for this tick. The last set value only
// advances on a successful write, so a failed write is retried next tick.
func (c *FanController) Update(fanState *state.FanState, temp float64, curve curves.Curve) error {
	target := c.TargetPwm(fanState, temp, curve)
	if c.lastSetPwm != nil && *c.lastSetPwm == target {
		return nil
	}

	if err := c.board.SetFanDuty(target, target); err != nil {
		c.stats.Failures++
		return fmt.Errorf("setting fan duty %d: %w", target, err)
	}
	ui.Debug("Fan duty set to %d (%d%%)", target, toPercent(target))
	c.lastSetPwm = &target
	c.stats.Writes++
	return nil
}

// LastSetPwm returns the last duty successfully written to the board.
func (c *FanController) LastSetPwm() (int, bool) {
	if c.lastSetPwm == nil {
		return 0, false
	}
	return *c.lastSetPwm, true
}

// Percent returns the last set duty as percentage, 0 if nothing was set yet.
func (c *FanController) Percent() int {
	pwm, _ := c.LastSetPwm()
	return toPercent(pwm)
}

func (c *FanController) Stats() FanControllerStats {
	return c.stats
}

// Reset forgets the last written duty, forcing a write on the next update.
func (c *FanController) Reset() {
	c.lastSetPwm = nil
}

func toPercent(pwm int) int {
	return pwm * 100 / curves.MaxPwmValue
}

// DutyToPercent converts a raw fan duty to a percentage.
func DutyToPercent(duty int) int {
	return toPercent(duty)
}
