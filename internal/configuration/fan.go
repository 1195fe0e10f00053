package configuration

type FanConfig struct {
	// Presets assigns a fixed PWM to a fan mode when the UI sends no target
	Presets map[string]int `json:"presets"`
}
