package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/suffixlens/pkg/substats"
)

// statsOpts holds the flags for the stats command.
type statsOpts struct {
	analysis analysisFlags
	input    inputFlags
	maxRows  int // 0 shows every k
}

// statsCommand creates the stats command.
func (c *CLI) statsCommand() *cobra.Command {
	var opts statsOpts

	cmd := &cobra.Command{
		Use:   "stats [text]",
		Short: "Print distinct-substring counts for every length",
		Long: `Stats prints, for every substring length k, how many distinct substrings
of that length the text contains and the ratio count/k. Rows reaching the
peak ratio are marked as best.`,
		Example: `  suffixlens stats abracadabra
  suffixlens stats --rows 10 --file book.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args, opts.input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return c.runStats(cmd.Context(), text, opts, cmd.OutOrStdout())
		},
	}

	opts.analysis.register(cmd)
	opts.input.register(cmd)
	cmd.Flags().IntVar(&opts.maxRows, "rows", 0, "show only the first n lengths (0 for all)")

	return cmd
}

func (c *CLI) runStats(ctx context.Context, text string, opts statsOpts, w io.Writer) error {
	popts, err := c.pipelineOptions(opts.analysis)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, opts.analysis.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, err := runner.Execute(ctx, text, popts)
	if err != nil {
		return err
	}
	if len(res.Stats.Series) == 0 {
		newPrinter(w).info("%s", res.StatusLine())
		return nil
	}

	fmt.Fprintln(w, statsTable(res.Stats, opts.maxRows))
	fmt.Fprintf(w, "%s %s at k = %s\n",
		StyleDim.Render("Complexity"),
		StyleNumber.Render(res.Complexity()),
		formatBestKs(res.Stats.Summary))
	return nil
}

// statsTable renders the series as a table, best rows highlighted.
func statsTable(res substats.Result, maxRows int) string {
	series := res.Series
	if maxRows > 0 && maxRows < len(series) {
		series = series[:maxRows]
	}

	rows := make([][]string, len(series))
	for i, s := range series {
		mark := ""
		if res.Summary.IsBest(s.K) {
			mark = "best"
		}
		rows[i] = []string{strconv.Itoa(s.K), strconv.Itoa(s.Count), substats.FormatRatio(s.Ratio), mark}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("k", "Distinct", "Ratio", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			style := cellStyle
			if col < 3 {
				style = style.Align(lipgloss.Right)
			}
			if row >= 0 && row < len(series) && res.Summary.IsBest(series[row].K) {
				return style.Foreground(colorGreen).Bold(true)
			}
			return style.Foreground(colorWhite)
		})

	return t.Render()
}
