package cmd

import "github.com/spf13/cobra"

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for webshell.

To load completions:

Bash:
  $ source <(webshell completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ webshell completion bash > /etc/bash_completion.d/webshell
  # macOS:
  $ webshell completion bash > $(brew --prefix)/etc/bash_completion.d/webshell

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ webshell completion zsh > "${fpath[1]}/_webshell"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ webshell completion fish | source

  # To load completions for each session, execute once:
  $ webshell completion fish > ~/.config/fish/completions/webshell.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletionV2(out, true)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
