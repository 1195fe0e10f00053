package fan

import (
	"fmt"
	"strings"

	"github.com/board2go/board2go/cmd/global"
	"github.com/board2go/board2go/internal/configuration"
	"github.com/board2go/board2go/internal/curves"
	"github.com/board2go/board2go/internal/state"
	"github.com/board2go/board2go/internal/ui"
	"github.com/spf13/cobra"
)

var targetPwm int

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Get/Set the requested fan mode",
	Long: `Without arguments the current fan state is printed.
With a mode argument the fan state document is replaced.`,
	Args:      cobra.RangeArgs(0, 1),
	ValidArgs: fanModeNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		global.LoadAndValidateConfig()
		path := configuration.CurrentConfig.FanStatePath()

		if len(args) > 0 {
			mode, ok := state.ParseFanMode(args[0])
			if !ok {
				return fmt.Errorf("unknown mode: %s, must be one of: %s", args[0], strings.Join(fanModeNames(), ", "))
			}

			fanState := state.FanState{Mode: mode}
			if cmd.Flags().Changed("pwm") {
				if targetPwm < curves.MinPwmValue || targetPwm > curves.MaxPwmValue {
					return fmt.Errorf("pwm must be in [%d, %d], was: %d", curves.MinPwmValue, curves.MaxPwmValue, targetPwm)
				}
				fanState.TargetPwm = &targetPwm
			} else if mode == state.FanModeManual {
				return fmt.Errorf("mode manual requires --pwm")
			}

			if err := state.Write(path, fanState); err != nil {
				return err
			}
			ui.Success("Fan state written to %s", path)
		}

		fanState := state.ReadFanState(path)
		if fanState == nil {
			ui.Printfln("No fan state set, the daemon follows the fan curve")
			return nil
		}
		if fanState.TargetPwm != nil {
			ui.Printfln("Mode: %s, target PWM: %d", fanState.Mode, *fanState.TargetPwm)
		} else {
			ui.Printfln("Mode: %s, PWM from fan curve", fanState.Mode)
		}
		return nil
	},
}

func fanModeNames() []string {
	var result []string
	for _, mode := range state.FanModes {
		result = append(result, string(mode))
	}
	return result
}

func init() {
	modeCmd.Flags().IntVarP(&targetPwm, "pwm", "p", 0, "Target PWM value in [0, 255]")
	Command.AddCommand(modeCmd)
}
