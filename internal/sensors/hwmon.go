package sensors

import (
	"fmt"
	"regexp"

	"github.com/board2go/board2go/internal/configuration"
	"github.com/md14454/gosensors"
)

// HwmonSensor reads a temperature input of an lm-sensors chip.
type HwmonSensor struct {
	Config configuration.HwMonSensorConfig `json:"configuration"`
}

// ChipTemperatures lists the temperature inputs of one detected chip.
type ChipTemperatures struct {
	Chip   string
	Path   string
	Labels []string
	Values []float64
}

func (sensor HwmonSensor) GetId() string {
	return fmt.Sprintf("%s/temp%d", sensor.Config.Chip, sensor.Config.Index)
}

func (sensor HwmonSensor) GetValue() (float64, error) {
	pattern, err := regexp.Compile("(?i)" + sensor.Config.Chip)
	if err != nil {
		return 0, fmt.Errorf("invalid chip pattern %s: %w", sensor.Config.Chip, err)
	}

	for _, chip := range DetectTemperatures() {
		if !pattern.MatchString(chip.Chip) {
			continue
		}
		index := sensor.Config.Index - 1
		if index < 0 || index >= len(chip.Values) {
			return 0, fmt.Errorf("chip %s has no temperature input %d", chip.Chip, sensor.Config.Index)
		}
		return chip.Values[index], nil
	}
	return 0, fmt.Errorf("no lm-sensors chip matching '%s'", sensor.Config.Chip)
}

// DetectTemperatures returns all chips exposing at least one temperature input.
func DetectTemperatures() []ChipTemperatures {
	gosensors.Init()
	defer gosensors.Cleanup()

	var result []ChipTemperatures
	for _, chip := range gosensors.GetDetectedChips() {
		entry := ChipTemperatures{
			Chip: chip.Prefix,
			Path: chip.Path,
		}
		for _, feature := range chip.GetFeatures() {
			if feature.Type != gosensors.FeatureTypeTemp {
				continue
			}
			for _, subFeature := range feature.GetSubFeatures() {
				if subFeature.Type != gosensors.SubFeatureTypeTempInput {
					continue
				}
				entry.Labels = append(entry.Labels, feature.Name)
				entry.Values = append(entry.Values, subFeature.GetValue())
			}
		}
		if len(entry.Values) > 0 {
			result = append(result, entry)
		}
	}
	return result
}
