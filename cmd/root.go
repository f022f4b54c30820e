package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "craftline",
	Short: "craftline resolves version manifests into game launch command lines",
	Long: `craftline turns a game-version manifest (any of the six historical
schema generations) into a fully resolved command line, and can launch
the game process with it.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug output")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}
