package configuration

type LedConfig struct {
	SmoothingStep int     `json:"smoothingStep"`
	DeadBand      int     `json:"deadBand"`
	ColorLowTemp  float64 `json:"colorLowTemp"`
	ColorHighTemp float64 `json:"colorHighTemp"`
}
