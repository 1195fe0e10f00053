package testingutils

import (
	"errors"
	"fmt"

	"github.com/board2go/board2go/internal/board"
)

var ErrBoardOffline = errors.New("board offline")

// MockBoard records every call made to it. Setting Fail makes all
// writes fail without changing the recorded state.
type MockBoard struct {
	Fail bool

	FanMode   *board.FanMode
	FanDuty   [board.FanChannelCount]int
	LedMode   *board.LedMode
	LedColor  [3]int
	Temp      float64
	TempError error

	// Calls lists all successful write calls in order
	Calls []string

	FanDutyWrites  int
	LedModeWrites  int
	LedColorWrites int
}

func (b *MockBoard) GetId() string {
	return "mock"
}

func (b *MockBoard) record(format string, a ...interface{}) error {
	if b.Fail {
		return ErrBoardOffline
	}
	b.Calls = append(b.Calls, fmt.Sprintf(format, a...))
	return nil
}

func (b *MockBoard) SetFanMode(mode board.FanMode) error {
	if err := b.record("fan_mode %d", mode); err != nil {
		return err
	}
	b.FanMode = &mode
	return nil
}

func (b *MockBoard) SetFanDuty(duty0 int, duty1 int) error {
	if err := b.record("fan_duty %d %d", duty0, duty1); err != nil {
		return err
	}
	b.FanDuty = [board.FanChannelCount]int{duty0, duty1}
	b.FanDutyWrites++
	return nil
}

func (b *MockBoard) GetFanDuty(channel int) (int, error) {
	if b.Fail {
		return 0, ErrBoardOffline
	}
	return b.FanDuty[channel], nil
}

func (b *MockBoard) SetLedMode(mode board.LedMode) error {
	if err := b.record("led_mode %d", mode); err != nil {
		return err
	}
	b.LedMode = &mode
	b.LedModeWrites++
	return nil
}

func (b *MockBoard) SetAllLedColor(r int, g int, bl int) error {
	if err := b.record("led_color %d %d %d", r, g, bl); err != nil {
		return err
	}
	b.LedColor = [3]int{r, g, bl}
	b.LedColorWrites++
	return nil
}

func (b *MockBoard) GetTemp() (float64, error) {
	if b.Fail {
		return 0, ErrBoardOffline
	}
	return b.Temp, b.TempError
}

func (b *MockBoard) Close() error {
	return nil
}

// MockSensor returns Value, or Err if set.
type MockSensor struct {
	Value float64
	Err   error
	Reads int
}

func (s *MockSensor) GetId() string {
	return "mock"
}

func (s *MockSensor) GetValue() (float64, error) {
	s.Reads++
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Value, nil
}
