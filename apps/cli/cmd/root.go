package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tarpgo",
	Short: "Code coverage runs for cargo projects",
	Long: `tarpgo collects test coverage for cargo projects. Run settings come
from the command line, from named profiles in a tarpaulin.toml file,
or both: when a config file is found, command-line values overlay
every profile it declares.`,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
