package cmd

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/board2go/board2go/cmd/global"
	"github.com/board2go/board2go/internal/sensors"
	"github.com/board2go/board2go/internal/ui"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect temperature sensors",
	Long:  `Detects all lm-sensors chips with temperature inputs and prints them as a list`,
	Run: func(cmd *cobra.Command, args []string) {
		chips := sensors.DetectTemperatures()
		if len(chips) <= 0 {
			ui.Warning("No lm-sensors chips with temperature inputs found")
			return
		}

		for _, chip := range chips {
			ui.Printfln("> %s (%s)", chip.Chip, chip.Path)

			var rows [][]string
			for idx, label := range chip.Labels {
				rows = append(rows, []string{
					"", strconv.Itoa(idx + 1), label, fmt.Sprintf("%.1f", chip.Values[idx]),
				})
			}

			sensorTable := table.Table{
				Headers: []string{"Sensors", "Index", "Label", "Value"},
				Rows:    rows,
			}

			var buf bytes.Buffer
			if err := sensorTable.WriteTable(&buf, global.TableConfig()); err != nil {
				ui.Fatal("Error printing table: %v", err)
			}
			ui.Printfln("%s", buf.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
