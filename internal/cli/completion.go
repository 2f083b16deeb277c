package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/suffixlens/pkg/pipeline"
	"github.com/matzehuels/suffixlens/pkg/store"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for suffixlens. Besides commands and flags,
the scripts complete artifact kinds and formats for "render" and stored
analysis ids for "history show" and "history delete".

  $ source <(suffixlens completion bash)
  $ suffixlens completion zsh > "${fpath[1]}/_suffixlens"
  $ suffixlens completion fish > ~/.config/fish/completions/suffixlens.fish
  PS> suffixlens completion powershell | Out-String | Invoke-Expression`,
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
}

// completeKinds completes the --kind flag of render.
func completeKinds(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{
		pipeline.KindGraph + "\tthe laid-out suffix trie",
		pipeline.KindStats + "\tthe distinct-substring series",
	}, cobra.ShellCompDirectiveNoFileComp
}

// completeFormats completes the --format flag with the formats of the kind
// already given on the command line.
func completeFormats(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	kind, _ := cmd.Flags().GetString("kind")
	formats, ok := pipeline.ValidFormats[kind]
	if !ok {
		formats = pipeline.ValidFormats[pipeline.KindGraph]
	}
	return slices.Clone(formats), cobra.ShellCompDirectiveNoFileComp
}

// completeHistoryIDs completes stored analysis ids, newest first. Errors
// opening the store produce no suggestions.
func (c *CLI) completeHistoryIDs(cmd *cobra.Command, args []string, prefix string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var ids []string
	_ = c.withStore(cmd.Context(), func(st store.Store) error {
		items, err := st.List(cmd.Context(), store.DefaultListLimit)
		if err != nil {
			return err
		}
		for _, a := range items {
			if strings.HasPrefix(a.ID, prefix) {
				ids = append(ids, a.ID+"\t"+a.CreatedAt.Local().Format("2006-01-02 15:04"))
			}
		}
		return nil
	})
	return ids, cobra.ShellCompDirectiveNoFileComp
}
