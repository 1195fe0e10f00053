package state

import (
	"github.com/board2go/board2go/internal/colors"
	"github.com/board2go/board2go/internal/util"
)

type LedMode string

const (
	LedModeAuto      LedMode = "auto"
	LedModeOff       LedMode = "off"
	LedModeStatic    LedMode = "static"
	LedModeFollow    LedMode = "follow"
	LedModeBreathing LedMode = "breathing"
	LedModeRainbow   LedMode = "rainbow"
)

var LedModes = []LedMode{
	LedModeAuto,
	LedModeOff,
	LedModeStatic,
	LedModeFollow,
	LedModeBreathing,
	LedModeRainbow,
}

func ParseLedMode(value string) (LedMode, bool) {
	for _, mode := range LedModes {
		if string(mode) == value {
			return mode, true
		}
	}
	return LedModeAuto, false
}

// LedState is the LED request written by the UI.
type LedState struct {
	Mode LedMode `json:"mode"`
	R    int     `json:"r"`
	G    int     `json:"g"`
	B    int     `json:"b"`
}

func (s LedState) Color() colors.Color {
	return colors.Color{R: s.R, G: s.G, B: s.B}
}

// ReadLedState reads the LED request at path, or returns nil if there is no
// usable document. Unknown modes read as LedModeAuto, missing channels default
// to green and all channels are clamped to [0, 255].
func ReadLedState(path string) *LedState {
	doc, ok := Read(path)
	if !ok {
		return nil
	}
	mode, _ := ParseLedMode(coerceString(doc["mode"]))
	return &LedState{
		Mode: mode,
		R:    channel(doc, "r", 0),
		G:    channel(doc, "g", 255),
		B:    channel(doc, "b", 0),
	}
}

func channel(doc map[string]any, key string, fallback int) int {
	value, ok := CoerceInt(doc[key])
	if !ok {
		value = fallback
	}
	return util.Coerce(value, colors.ChannelMin, colors.ChannelMax)
}
