package sensor

import (
	"github.com/board2go/board2go/cmd/global"
	"github.com/board2go/board2go/internal/configuration"
	"github.com/board2go/board2go/internal/persistence"
	"github.com/board2go/board2go/internal/ui"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the persisted last known temperature",
	Long:  `The daemon uses the persisted temperature until the sensor responds after a restart`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		global.LoadAndValidateConfig()

		dbPath := configuration.CurrentConfig.DbPath
		ui.Info("Using persistence at: %s", dbPath)

		err := resetTemperature(persistence.NewPersistence(dbPath))
		if err == nil {
			ui.Success("Done!")
		}
		return err
	},
}

func resetTemperature(p persistence.Persistence) error {
	return p.Delete(persistence.KeyLastTemperature)
}

func init() {
	Command.AddCommand(resetCmd)
}
