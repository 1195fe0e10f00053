package cmd

import (
	"github.com/board2go/board2go/internal/ui"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of board2go",
	Long:  `All software has versions. This is board2go's`,
	Run: func(cmd *cobra.Command, args []string) {
		ui.Printfln("%s", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
