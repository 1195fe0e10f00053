package sensor

import (
	"fmt"

	"github.com/board2go/board2go/cmd/global"
	"github.com/board2go/board2go/internal/configuration"
	"github.com/board2go/board2go/internal/sensors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "sensor",
	Short: "Print the current CPU temperature",
	Long:  `Reads the configured temperature sensor once and prints the value in °C`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()
		global.LoadAndValidateConfig()

		sensor, err := sensors.NewSensor(configuration.CurrentConfig.Sensor)
		if err != nil {
			return err
		}

		value, err := sensor.GetValue()
		if err != nil {
			return fmt.Errorf("reading sensor %s: %w", sensor.GetId(), err)
		}
		fmt.Printf("%.1f\n", value)
		return nil
	},
}
