package fan

import (
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "fan",
	Short:            "Fan related commands",
	Long:             `Reads and writes the fan state document consumed by the daemon`,
	TraverseChildren: true,
}
