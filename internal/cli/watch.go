package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/suffixlens/pkg/cache"
	"github.com/matzehuels/suffixlens/pkg/pipeline"
)

// watchCommand creates the interactive watch command.
func (c *CLI) watchCommand() *cobra.Command {
	var flags analysisFlags

	cmd := &cobra.Command{
		Use:   "watch [text]",
		Short: "Edit text and watch its suffix trie statistics update live",
		Long: `Watch opens a terminal UI. Every keystroke re-analyzes the text; an
analysis still running for older text is canceled, so the screen always
shows the newest text. A second field counts occurrences of a substring.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := ""
			if len(args) > 0 {
				initial = args[0]
			}
			return c.runWatch(cmd.Context(), initial, flags)
		},
	}
	flags.register(cmd)

	return cmd
}

func (c *CLI) runWatch(ctx context.Context, initial string, flags analysisFlags) error {
	opts, err := c.pipelineOptions(flags)
	if err != nil {
		return err
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	// Logging (including --verbose hooks) would draw over the alternate
	// screen, and per-keystroke results are not worth caching.
	defer c.mute()()
	opts.Logger = c.Logger
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, c.Logger)
	defer runner.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	latest := pipeline.NewLatest(runner, opts)
	defer latest.Close()

	p := tea.NewProgram(newWatchModel(ctx, latest, initial), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
