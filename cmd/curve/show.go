package curve

import (
	"bytes"
	"strconv"

	"github.com/board2go/board2go/cmd/global"
	"github.com/board2go/board2go/internal/configuration"
	"github.com/board2go/board2go/internal/curves"
	"github.com/board2go/board2go/internal/ui"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

const (
	plotTempMin = 20
	plotTempMax = 100
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the fan curve used by the daemon",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		global.LoadAndValidateConfig()
		path := configuration.CurrentConfig.FanCurvePath()
		curve := curves.Load(path)

		ui.Printfln("%s", path)

		var rows [][]string
		for _, point := range curve {
			rows = append(rows, []string{strconv.Itoa(point.Temp), strconv.Itoa(point.Pwm)})
		}
		tab := table.Table{
			Headers: []string{"Temp °C", "PWM"},
			Rows:    rows,
		}
		var buf bytes.Buffer
		if err := tab.WriteTable(&buf, global.TableConfig()); err != nil {
			ui.Fatal("Error printing table: %v", err)
		}
		ui.Printfln("%s", buf.String())

		graph := asciigraph.Plot(plotValues(curve),
			asciigraph.Height(15),
			asciigraph.Width(plotTempMax-plotTempMin+1),
			asciigraph.LowerBound(curves.MinPwmValue),
			asciigraph.UpperBound(curves.MaxPwmValue),
			asciigraph.Caption("PWM / Temp 20..100 °C"),
		)
		ui.Printfln("%s", graph)
	},
}

// plotValues samples the curve once per degree
func plotValues(curve curves.Curve) []float64 {
	values := make([]float64, 0, plotTempMax-plotTempMin+1)
	for temp := plotTempMin; temp <= plotTempMax; temp++ {
		values = append(values, float64(curves.Compute(curve, float64(temp))))
	}
	return values
}

func init() {
	Command.AddCommand(showCmd)
}
