package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/suffixlens/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	analysis analysisFlags
	input    inputFlags
	kind     string // artifact kind: "graph" or "stats"
	format   string // output format: "json", "dot" or "svg"
	output   string // output file, stdout when empty
}

// renderCommand creates the render command for writing artifacts.
//
// Default settings:
//   - kind: graph (the laid-out suffix trie)
//   - format: svg (drawn by Graphviz from fixed node positions)
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		kind:   pipeline.KindGraph,
		format: pipeline.FormatSVG,
	}

	cmd := &cobra.Command{
		Use:   "render [text]",
		Short: "Render the suffix trie or the complexity chart",
		Example: `  suffixlens render banana -o banana.svg
  suffixlens render banana -f dot | dot -Kneato -n -Tpng > banana.png
  suffixlens render --kind stats --format svg --file text.txt -o chart.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateArtifact(opts.kind, opts.format); err != nil {
				return err
			}
			text, err := readText(args, opts.input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), text, opts, cmd.OutOrStdout())
		},
	}

	opts.analysis.register(cmd)
	opts.input.register(cmd)
	cmd.Flags().StringVarP(&opts.kind, "kind", "k", opts.kind, "artifact: graph (default), stats")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "format: svg (default), dot, json (dot is graph only)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	_ = cmd.RegisterFlagCompletionFunc("kind", completeKinds)
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, text string, opts renderOpts, w io.Writer) error {
	popts, err := c.pipelineOptions(opts.analysis)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, opts.analysis.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	res, err := runner.Execute(ctx, text, popts)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, os.Stderr, fmt.Sprintf("Rendering %s %s...", opts.kind, opts.format))
	spinner.Start()

	data, cacheHit, err := runner.Render(ctx, res, opts.kind, opts.format)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()

	c.Logger.Debug("rendered", "kind", opts.kind, "format", opts.format, "bytes", len(data), "cached", cacheHit)
	return writeOutput(opts.output, data, w)
}
