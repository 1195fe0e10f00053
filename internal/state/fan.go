package state

type FanMode string

const (
	FanModeAuto        FanMode = "auto"
	FanModeSilent      FanMode = "silent"
	FanModeNormal      FanMode = "normal"
	FanModePerformance FanMode = "performance"
	FanModeManual      FanMode = "manual"
)

var FanModes = []FanMode{
	FanModeAuto,
	FanModeSilent,
	FanModeNormal,
	FanModePerformance,
	FanModeManual,
}

func ParseFanMode(value string) (FanMode, bool) {
	for _, mode := range FanModes {
		if string(mode) == value {
			return mode, true
		}
	}
	return FanModeAuto, false
}

// FanState is the fan request written by the UI.
type FanState struct {
	Mode FanMode `json:"mode"`
	// TargetPwm overrides the curve when set
	TargetPwm *int `json:"target_pwm"`
}

// ReadFanState reads the fan request at path. It returns nil if there is no
// usable document. An unrecognized mode is read as FanModeAuto without a target.
func ReadFanState(path string) *FanState {
	doc, ok := Read(path)
	if !ok {
		return nil
	}
	result := &FanState{Mode: FanModeAuto}
	mode, known := ParseFanMode(coerceString(doc["mode"]))
	if !known {
		return result
	}
	result.Mode = mode
	if pwm, ok := CoerceInt(doc["target_pwm"]); ok {
		result.TargetPwm = &pwm
	}
	return result
}
