package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/tarpgo/packages/core/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the fully-resolved run profiles",
	Long: `Show the run profiles a tarpgo invocation would use, after config
file discovery and command-line overlay, without running anything.

Examples:
  tarpgo config
  tarpgo config --config ci/tarpaulin.toml
  tarpgo config --branch --exclude-files "target/*"`,
	RunE: configCommand,
}

func init() {
	registerProfileFlags(configCmd)
}

func configCommand(cmd *cobra.Command, args []string) error {
	configureLogging()

	set, err := config.Resolve(afero.NewOsFs(), buildArgs())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i, profile := range set {
		if i > 0 {
			fmt.Fprintln(w)
		}
		name := profile.Name
		if name == "" {
			name = "default"
		}
		fmt.Fprintf(w, "[%s]\n", name)
		if err := toml.NewEncoder(w).Encode(profile); err != nil {
			return fmt.Errorf("encode profile %q: %w", name, err)
		}
	}
	return nil
}
