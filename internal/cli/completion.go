package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for tableau.

To load completions:

Bash:
  $ source <(tableau completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ tableau completion bash > /etc/bash_completion.d/tableau
  # macOS:
  $ tableau completion bash > $(brew --prefix)/etc/bash_completion.d/tableau

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ tableau completion zsh > "${fpath[1]}/_tableau"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ tableau completion fish | source

  # To load completions for each session, execute once:
  $ tableau completion fish > ~/.config/fish/completions/tableau.fish

PowerShell:
  PS> tableau completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> tableau completion powershell > tableau.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}
