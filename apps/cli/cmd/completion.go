package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for tarpgo.

To load completions:

Bash:
  $ source <(tarpgo completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ tarpgo completion bash > /etc/bash_completion.d/tarpgo
  # macOS:
  $ tarpgo completion bash > $(brew --prefix)/etc/bash_completion.d/tarpgo

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ tarpgo completion zsh > "${fpath[1]}/_tarpgo"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ tarpgo completion fish | source

  # To load completions for each session, execute once:
  $ tarpgo completion fish > ~/.config/fish/completions/tarpgo.fish

PowerShell:
  PS> tarpgo completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> tarpgo completion powershell > tarpgo.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
