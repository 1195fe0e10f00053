package curve

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/board2go/board2go/cmd/global"
	"github.com/board2go/board2go/internal/configuration"
	"github.com/board2go/board2go/internal/curves"
	"github.com/board2go/board2go/internal/ui"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:     "set <temp:pwm>...",
	Short:   "Replace the fan curve",
	Example: "board2go curve set 40:100 50:130 60:160 70:180 80:200",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		curve, err := ParsePoints(args)
		if err != nil {
			return err
		}

		global.LoadAndValidateConfig()
		path := configuration.CurrentConfig.FanCurvePath()
		if err := curves.Save(path, curve); err != nil {
			return err
		}
		ui.Success("Fan curve with %d points written to %s", len(curve), path)
		return nil
	},
}

// ParsePoints parses "temp:pwm" pairs into a curve sorted by temperature.
func ParsePoints(args []string) (curves.Curve, error) {
	var result curves.Curve
	for _, arg := range args {
		parts := strings.Split(arg, ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid point '%s', expected temp:pwm", arg)
		}
		temp, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid temperature in '%s': %w", arg, err)
		}
		pwm, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid pwm in '%s': %w", arg, err)
		}
		if pwm < curves.MinPwmValue || pwm > curves.MaxPwmValue {
			return nil, fmt.Errorf("pwm of '%s' must be in [%d, %d]", arg, curves.MinPwmValue, curves.MaxPwmValue)
		}
		result = append(result, curves.Point{Temp: temp, Pwm: pwm})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Temp < result[j].Temp
	})
	return result, nil
}

func init() {
	Command.AddCommand(setCmd)
}
