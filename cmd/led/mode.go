package led

import (
	"fmt"
	"strings"

	"github.com/board2go/board2go/cmd/global"
	"github.com/board2go/board2go/internal/colors"
	"github.com/board2go/board2go/internal/configuration"
	"github.com/board2go/board2go/internal/state"
	"github.com/board2go/board2go/internal/ui"
	"github.com/spf13/cobra"
)

var colorArg string

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Get/Set the requested LED mode",
	Long: `Without arguments the current LED state is printed.
With a mode argument the LED state document is replaced.
The color is used by the static, follow and breathing modes.`,
	Args:      cobra.RangeArgs(0, 1),
	ValidArgs: ledModeNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		global.LoadAndValidateConfig()
		path := configuration.CurrentConfig.LedStatePath()

		if len(args) > 0 {
			mode, ok := state.ParseLedMode(args[0])
			if !ok {
				return fmt.Errorf("unknown mode: %s, must be one of: %s", args[0], strings.Join(ledModeNames(), ", "))
			}

			color, err := colors.ParseColor(colorArg)
			if err != nil {
				return err
			}

			ledState := state.LedState{Mode: mode, R: color.R, G: color.G, B: color.B}
			if err := state.Write(path, ledState); err != nil {
				return err
			}
			ui.Success("LED state written to %s", path)
		}

		ledState := state.ReadLedState(path)
		if ledState == nil {
			ui.Printfln("No LED state set, the daemon maps the temperature to a color")
			return nil
		}
		ui.Printfln("Mode: %s, color: %s", ledState.Mode, ledState.Color())
		return nil
	},
}

func ledModeNames() []string {
	var result []string
	for _, mode := range state.LedModes {
		result = append(result, string(mode))
	}
	return result
}

func init() {
	modeCmd.Flags().StringVarP(&colorArg, "color", "", "0,255,0", "LED color as r,g,b")
	Command.AddCommand(modeCmd)
}
