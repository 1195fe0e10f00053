package colors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/board2go/board2go/internal/control_loop"
	"github.com/board2go/board2go/internal/util"
)

const (
	ChannelMin = 0
	ChannelMax = 255
)

type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

var (
	Black = Color{R: 0, G: 0, B: 0}
	Green = Color{R: 0, G: 255, B: 0}
	Red   = Color{R: 255, G: 0, B: 0}
)

func (c Color) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// MapColor maps a temperature onto a green to red ramp between low and high.
func MapColor(temp float64, low float64, high float64) Color {
	if temp < low {
		return Green
	}
	if temp > high {
		return Red
	}
	ratio := util.Ratio(temp, low, high)
	return Color{
		R: int(ChannelMax * ratio),
		G: int(ChannelMax * (1 - ratio)),
		B: 0,
	}
}

// Smooth moves every channel of prev toward target by at most step.
func Smooth(prev Color, target Color, step int) Color {
	loop := control_loop.NewStepControlLoop(float64(step))
	next := func(target, measured int) int {
		return int(loop.Loop(float64(target), float64(measured)))
	}
	return Color{
		R: next(target.R, prev.R),
		G: next(target.G, prev.G),
		B: next(target.B, prev.B),
	}
}

// Delta is the sum of the absolute per channel differences.
func Delta(a Color, b Color) int {
	return util.Abs(a.R-b.R) + util.Abs(a.G-b.G) + util.Abs(a.B-b.B)
}

// ParseColor parses "r,g,b" into a Color.
func ParseColor(text string) (Color, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("invalid color '%s', expected r,g,b", text)
	}
	var channels [3]int
	for i, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Color{}, fmt.Errorf("invalid color channel '%s': %w", part, err)
		}
		if value < ChannelMin || value > ChannelMax {
			return Color{}, fmt.Errorf("color channel %d out of range [%d, %d]", value, ChannelMin, ChannelMax)
		}
		channels[i] = value
	}
	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}
