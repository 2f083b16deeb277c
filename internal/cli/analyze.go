package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/suffixlens/pkg/pipeline"
	"github.com/matzehuels/suffixlens/pkg/store"
	"github.com/matzehuels/suffixlens/pkg/substats"
)

// analyzeOpts holds the flags for the analyze command.
type analyzeOpts struct {
	analysis analysisFlags
	input    inputFlags
	json     bool   // print the full result as JSON
	output   string // JSON output file
	save     bool   // store the result in the history
}

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Analyze text and summarize its suffix trie",
		Long: `Analyze builds the compressed suffix trie of the text, lays it out and
computes the distinct-substring series. By default a short summary is
printed; --json prints the full result including node positions.`,
		Example: `  suffixlens analyze banana
  echo -n mississippi | suffixlens analyze --json
  suffixlens analyze --file notes.txt --save`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args, opts.input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return c.runAnalyze(cmd.Context(), text, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	opts.analysis.register(cmd)
	opts.input.register(cmd)
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the full result as JSON")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write JSON to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.save, "save", false, "store the analysis in the history")

	return cmd
}

// runAnalyze writes the result to w. Status lines go to w as well, except
// in JSON mode where they go to errW so stdout stays parseable.
func (c *CLI) runAnalyze(ctx context.Context, text string, opts analyzeOpts, w, errW io.Writer) error {
	logger := loggerFromContext(ctx)

	popts, err := c.pipelineOptions(opts.analysis)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, opts.analysis.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, err := runner.Execute(ctx, text, popts)
	if err != nil {
		return err
	}
	prog.done("analyzed", "bytes", len(text), "cached", res.CacheHit)

	status := newPrinter(w)
	if opts.json {
		status = newPrinter(errW)
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		if err := writeOutput(opts.output, append(data, '\n'), w); err != nil {
			return err
		}
	} else {
		printSummary(status, res)
	}

	if opts.save {
		return c.saveAnalysis(ctx, res, status)
	}
	return nil
}

// printSummary prints the status line and the headline numbers.
func printSummary(p printer, res *pipeline.Result) {
	if res.IsEmpty() {
		p.info("%s", res.StatusLine())
		return
	}
	p.success("%s", res.StatusLine())
	p.keyValue("Complexity", StyleNumber.Render(res.Complexity()))
	p.keyValue("Best k", formatBestKs(res.Stats.Summary))
	p.keyValue("Max depth", strconv.Itoa(res.Graph.MaxDepth))
	p.keyValue("Leaves", strconv.Itoa(len(res.Graph.Leaves())))
	p.trieSize(res.Graph.NodeCount, res.Graph.EdgeCount, res.CacheHit)
	if !res.ASCII {
		p.warning("text contains multi-byte characters; edge labels may split them")
	}
}

// formatBestKs lists the lengths that reach the peak ratio.
func formatBestKs(s substats.Summary) string {
	if len(s.BestPoints) == 0 {
		return "-"
	}
	ks := make([]string, len(s.BestPoints))
	for i, p := range s.BestPoints {
		ks[i] = strconv.Itoa(p.K)
	}
	return strings.Join(ks, ", ")
}

func (c *CLI) saveAnalysis(ctx context.Context, res *pipeline.Result, p printer) error {
	st, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	if st == nil {
		p.warning("history is disabled in the config; not saved")
		return nil
	}
	defer st.Close(ctx)

	rec := store.New(res)
	if err := st.Save(ctx, rec); err != nil {
		return err
	}
	p.detail("Saved as %s", rec.ID)
	p.nextStep("Show it again", appName+" history show "+rec.ID)
	return nil
}
