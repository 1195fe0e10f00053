package led

import (
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "led",
	Short:            "LED related commands",
	Long:             `Reads and writes the LED state document consumed by the daemon`,
	TraverseChildren: true,
}
