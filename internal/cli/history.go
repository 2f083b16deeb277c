package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/suffixlens/pkg/errors"
	"github.com/matzehuels/suffixlens/pkg/store"
	"github.com/matzehuels/suffixlens/pkg/substats"
)

// historyCommand creates the history command and its subcommands.
func (c *CLI) historyCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored analyses",
		Long:  `History lists analyses saved with "analyze --save" or through the HTTP API, newest first.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), func(st store.Store) error {
				items, err := st.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					newPrinter(cmd.OutOrStdout()).info("No stored analyses")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), historyTable(items))
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", store.DefaultListLimit, "maximum number of entries")

	cmd.AddCommand(c.historyShowCommand())
	cmd.AddCommand(c.historyDeleteCommand())
	return cmd
}

// historyShowCommand creates the "history show" subcommand.
func (c *CLI) historyShowCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:               "show <id>",
		Short:             "Show a stored analysis",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeHistoryIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), func(st store.Store) error {
				a, err := st.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return showAnalysis(a, asJSON, cmd.OutOrStdout())
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the stored record as JSON")
	return cmd
}

// historyDeleteCommand creates the "history delete" subcommand.
func (c *CLI) historyDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "delete <id>",
		Short:             "Delete a stored analysis",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeHistoryIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), func(st store.Store) error {
				if err := st.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				newPrinter(cmd.OutOrStdout()).success("Deleted %s", args[0])
				return nil
			})
		},
	}
}

// withStore opens the history store for the duration of fn.
func (c *CLI) withStore(ctx context.Context, fn func(store.Store) error) error {
	st, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	if st == nil {
		return errors.New(errors.ErrCodeInvalidOptions, "history is disabled: set a [store] backend in the config")
	}
	defer st.Close(ctx)
	return fn(st)
}

func showAnalysis(a *store.Analysis, asJSON bool, w io.Writer) error {
	if asJSON {
		data, err := json.MarshalIndent(a, "", "  ")
		if err != nil {
			return fmt.Errorf("encode analysis: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	p := newPrinter(w)
	p.keyValue("ID", a.ID)
	p.keyValue("Created", a.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	if a.Result == nil {
		return nil
	}
	p.keyValue("Text", StyleHighlight.Render(strconv.Quote(a.Result.Text)))
	printSummary(p, a.Result)
	return nil
}

// historyTable renders stored analyses one per row.
func historyTable(items []*store.Analysis) string {
	rows := make([][]string, len(items))
	for i, a := range items {
		complexity := "-"
		if a.Length > 0 {
			complexity = substats.FormatRatio(a.MaxRatio)
		}
		rows[i] = []string{
			a.ID,
			a.CreatedAt.Local().Format("2006-01-02 15:04"),
			strconv.Itoa(a.Length),
			strconv.Itoa(a.NodeCount),
			complexity,
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Created", "Length", "Nodes", "Complexity").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return cellStyle.Foreground(colorDim)
			}
			return cellStyle.Foreground(colorWhite)
		}).
		Render()
}
