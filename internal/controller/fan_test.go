package controller

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/board2go/board2go/internal/curves"
	"github.com/board2go/board2go/internal/state"
	"github.com/board2go/board2go/internal/testingutils"
	"github.com/stretchr/testify/assert"
)

func intPtr(value int) *int {
	return &value
}

func TestFanController_UsesCurveWithoutState(t *testing.T) {
	// GIVEN
	b := &testingutils.MockBoard{}
	c := NewFanController(b, nil)

	// WHEN
	err := c.Update(nil, 55, curves.DefaultCurve())

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, [2]int{145, 145}, b.FanDuty)
	pwm, ok := c.LastSetPwm()
	assert.True(t, ok)
	assert.Equal(t, 145, pwm)
	assert.Equal(t, 56, c.Percent())
}

func TestFanController_TargetOverridesCurve(t *testing.T) {
	// GIVEN
	b := &testingutils.MockBoard{}
	c := NewFanController(b, nil)
	fanState := &state.FanState{Mode: state.FanModeManual, TargetPwm: intPtr(220)}

	// WHEN
	err := c.Update(fanState, 20, curves.DefaultCurve())

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, [2]int{220, 220}, b.FanDuty)
}

func TestFanController_TargetInAnyRecognizedMode(t *testing.T) {
	for _, mode := range state.FanModes {
		// GIVEN
		b := &testingutils.MockBoard{}
		c := NewFanController(b, nil)
		fanState := &state.FanState{Mode: mode, TargetPwm: intPtr(42)}

		// WHEN
		err := c.Update(fanState, 70, curves.DefaultCurve())

		// THEN
		assert.NoError(t, err)
		assert.Equal(t, [2]int{42, 42}, b.FanDuty, mode)
	}
}

func TestFanController_ModeWithoutTargetFallsBackToCurve(t *testing.T) {
	// GIVEN
	b := &testingutils.MockBoard{}
	c := NewFanController(b, nil)
	fanState := &state.FanState{Mode: state.FanModeSilent}

	// WHEN
	err := c.Update(fanState, 70, curves.DefaultCurve())

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, [2]int{180, 180}, b.FanDuty)
}

func TestFanController_Presets(t *testing.T) {
	// GIVEN
	b := &testingutils.MockBoard{}
	c := NewFanController(b, map[string]int{"silent": 90, "bogus": 1})

	// WHEN
	silent := c.TargetPwm(&state.FanState{Mode: state.FanModeSilent}, 70, curves.DefaultCurve())
	normal := c.TargetPwm(&state.FanState{Mode: state.FanModeNormal}, 70, curves.DefaultCurve())
	override := c.TargetPwm(&state.FanState{Mode: state.FanModeSilent, TargetPwm: intPtr(10)}, 70, curves.DefaultCurve())

	// THEN
	assert.Equal(t, 90, silent)
	assert.Equal(t, 180, normal)
	assert.Equal(t, 10, override)
}

func TestFanController_Clamps(t *testing.T) {
	// GIVEN
	b := &testingutils.MockBoard{}
	c := NewFanController(b, nil)

	// WHEN
	high := c.TargetPwm(&state.FanState{Mode: state.FanModeManual, TargetPwm: intPtr(400)}, 0, curves.DefaultCurve())
	low := c.TargetPwm(&state.FanState{Mode: state.FanModeManual, TargetPwm: intPtr(-20)}, 0, curves.DefaultCurve())

	// THEN
	assert.Equal(t, 255, high)
	assert.Equal(t, 0, low)
}

func TestFanController_HugeTargetFromStateFileClamps(t *testing.T) {
	// GIVEN
	b := &testingutils.MockBoard{}
	c := NewFanController(b, nil)
	path := filepath.Join(t.TempDir(), "fan_state.json")
	assert.NoError(t, os.WriteFile(path, []byte(`{"mode": "manual", "target_pwm": 1e10}`), 0644))

	// WHEN
	err := c.Update(state.ReadFanState(path), 40, curves.DefaultCurve())

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, [2]int{255, 255}, b.FanDuty)
}

func TestFanController_NoDuplicateWrites(t *testing.T) {
	// GIVEN
	b := &testingutils.MockBoard{}
	c := NewFanController(b, nil)
	curve := curves.DefaultCurve()

	// WHEN
	for i := 0; i < 10; i++ {
		assert.NoError(t, c.Update(nil, 60, curve))
	}

	// THEN
	assert.Equal(t, 1, b.FanDutyWrites)

	// WHEN
	assert.NoError(t, c.Update(nil, 70, curve))
	assert.NoError(t, c.Update(nil, 70, curve))

	// THEN
	assert.Equal(t, 2, b.FanDutyWrites)
	assert.Equal(t, FanControllerStats{Writes: 2}, c.Stats())
}

func TestFanController_RetriesAfterFailure(t *testing.T) {
	// GIVEN
	b := &testingutils.MockBoard{}
	c := NewFanController(b, nil)
	curve := curves.DefaultCurve()
	assert.NoError(t, c.Update(nil, 40, curve))

	// WHEN
	b.Fail = true
	err := c.Update(nil, 80, curve)

	// THEN
	assert.ErrorIs(t, err, testingutils.ErrBoardOffline)
	pwm, _ := c.LastSetPwm()
	assert.Equal(t, 100, pwm)

	// WHEN
	b.Fail = false
	err = c.Update(nil, 80, curve)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, [2]int{200, 200}, b.FanDuty)
	assert.Equal(t, FanControllerStats{Writes: 2, Failures: 1}, c.Stats())
}

func TestFanController_Reset(t *testing.T) {
	// GIVEN
	b := &testingutils.MockBoard{}
	c := NewFanController(b, nil)
	assert.NoError(t, c.Update(nil, 40, curves.DefaultCurve()))

	// WHEN
	c.Reset()
	assert.NoError(t, c.Update(nil, 40, curves.DefaultCurve()))

	// THEN
	assert.Equal(t, 2, b.FanDutyWrites)
}

func TestDutyToPercent(t *testing.T) {
	assert.Equal(t, 0, DutyToPercent(0))
	assert.Equal(t, 50, DutyToPercent(128))
	assert.Equal(t, 100, DutyToPercent(255))
}
