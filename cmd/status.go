package cmd

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/board2go/board2go/cmd/global"
	"github.com/board2go/board2go/internal/configuration"
	"github.com/board2go/board2go/internal/state"
	"github.com/board2go/board2go/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the hardware status published by the daemon",
	Long: `Reads the hardware status document written by the daemon.
Exits with status 1 if there is none or it is stale.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		global.LoadAndValidateConfig()
		config := configuration.CurrentConfig

		status := state.ReadHardwareStatus(config.HardwareStatusPath())
		if status == nil {
			ui.Error("No hardware status found at %s, is the daemon running?", config.HardwareStatusPath())
			os.Exit(1)
		}

		now := time.Now()
		stale := status.IsStale(now, config.HardwareStatusMaxAge)
		freshness, color := "fresh", "green"
		if stale {
			freshness, color = "stale", "red"
		}
		if !global.NoColor {
			freshness = ansi.Color(freshness, color)
		}

		tab := table.Table{
			Headers: []string{"", ""},
			Rows: [][]string{
				{"Chassis temp", fmt.Sprintf("%.1f °C", status.ChassisTemp)},
				{"Fan 0", fmt.Sprintf("%d %%", status.Fan0Pct)},
				{"Fan 1", fmt.Sprintf("%d %%", status.Fan1Pct)},
				{"Updated", fmt.Sprintf("%s ago (%s)", now.Sub(status.Timestamp()).Truncate(time.Second), freshness)},
			},
		}
		var buf bytes.Buffer
		if err := tab.WriteTable(&buf, global.TableConfig()); err != nil {
			ui.Fatal("Error printing table: %v", err)
		}
		ui.Printfln("%s", buf.String())

		if stale {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
