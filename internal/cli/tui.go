package cli

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/suffixlens/pkg/errors"
	"github.com/matzehuels/suffixlens/pkg/pipeline"
)

// Watch styles
var (
	fieldLabelStyle  = lipgloss.NewStyle().Foreground(colorGray).Width(6)
	fieldFocusStyle  = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	fieldBlurStyle   = lipgloss.NewStyle().Foreground(colorGray)
	watchErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
	watchBranchStyle = lipgloss.NewStyle().Foreground(colorCyan)
	watchHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	watchCursor       = "▌"
	watchTableRows    = 12 // stats rows shown below the status line
	watchBranchesShow = 8  // root branches listed before "+n"
)

const (
	focusText = iota
	focusQuery
)

// =============================================================================
// WatchModel - Live re-analysis while typing
// =============================================================================

// updateMsg carries a delivered analysis into the model.
type updateMsg pipeline.Update

// closedMsg reports that the update stream has ended.
type closedMsg struct{}

// watchModel is the bubbletea model for the watch command. Every edit of
// the text submits it to a [pipeline.Latest], so only the newest text's
// analysis is ever displayed.
type watchModel struct {
	ctx    context.Context
	latest *pipeline.Latest

	text  string
	query string
	focus int

	submitted uint64 // sequence of the newest submission
	shown     uint64 // sequence of the displayed result
	result    *pipeline.Result
	err       error
}

// newWatchModel creates the model and submits the initial text.
func newWatchModel(ctx context.Context, latest *pipeline.Latest, initial string) watchModel {
	m := watchModel{ctx: ctx, latest: latest, text: initial}
	m.submitted = latest.Submit(ctx, initial)
	return m
}

func waitForUpdate(ch <-chan pipeline.Update) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return closedMsg{}
		}
		return updateMsg(u)
	}
}

func (m watchModel) Init() tea.Cmd {
	return waitForUpdate(m.latest.Updates())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case updateMsg:
		if msg.Seq >= m.shown {
			m.shown = msg.Seq
			m.err = msg.Err
			if msg.Err == nil {
				m.result = msg.Result
			}
		}
		return m, waitForUpdate(m.latest.Updates())
	case closedMsg:
		return m, nil
	}
	return m, nil
}

func (m watchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	field := &m.text
	if m.focus == focusQuery {
		field = &m.query
	}
	before := *field

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyShiftTab:
		m.focus = 1 - m.focus
		return m, nil
	case tea.KeyCtrlU:
		*field = ""
	case tea.KeyBackspace:
		if _, size := utf8.DecodeLastRuneInString(*field); size > 0 {
			*field = (*field)[:len(*field)-size]
		}
	case tea.KeySpace:
		*field += " "
	case tea.KeyRunes:
		*field += string(msg.Runes)
	default:
		return m, nil
	}

	if m.focus == focusText && m.text != before {
		m.submitted = m.latest.Submit(m.ctx, m.text)
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("suffixlens watch"))
	b.WriteString("\n")
	b.WriteString(watchHelpStyle.Render("type to edit · tab switch field · ctrl+u clear · esc quit"))
	b.WriteString("\n\n")

	b.WriteString(m.field("Text", m.text, m.focus == focusText))
	b.WriteString("\n")
	b.WriteString(m.field("Find", m.query, m.focus == focusQuery))
	if m.result != nil && m.query != "" {
		n := m.result.Graph.Occurrences(m.query)
		b.WriteString("  " + StyleDim.Render(iconArrow+" ") + StyleNumber.Render(fmt.Sprintf("%d", n)) + StyleDim.Render(" occurrences"))
	}
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(watchErrorStyle.Render(iconError + " " + errors.UserMessage(m.err)))
	case m.result == nil:
		b.WriteString(StyleDim.Render("Analyzing..."))
	default:
		b.WriteString(m.result.StatusLine())
	}
	if m.submitted != m.shown {
		b.WriteString(StyleDim.Render("  (updating)"))
	}
	b.WriteString("\n")

	if m.result == nil || m.err != nil || m.result.IsEmpty() {
		return b.String()
	}

	res := m.result
	b.WriteString(StyleDim.Render("Complexity ") + StyleNumber.Render(res.Complexity()) +
		StyleDim.Render(" at k = "+formatBestKs(res.Stats.Summary)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("Branches   ") + rootBranches(res))
	b.WriteString("\n")
	if !res.ASCII {
		b.WriteString(StyleWarning.Render(iconWarning + " multi-byte characters may be split across edges"))
		b.WriteString("\n")
	}
	b.WriteString(statsTable(res.Stats, watchTableRows))
	if n := len(res.Stats.Series); n > watchTableRows {
		b.WriteString("\n" + StyleDim.Render(fmt.Sprintf("  %d more lengths", n-watchTableRows)))
	}
	b.WriteString("\n")
	return b.String()
}

func (m watchModel) field(label, value string, focused bool) string {
	style := fieldBlurStyle
	cursor := ""
	if focused {
		style = fieldFocusStyle
		cursor = watchCursor
	}
	return fieldLabelStyle.Render(label) + style.Render(value) + cursor
}

// rootBranches lists the root's edge labels with the number of suffixes
// below each one.
func rootBranches(res *pipeline.Result) string {
	g := &res.Graph
	root, ok := g.Root()
	if !ok {
		return "-"
	}
	edges := g.Children(root.ID)
	parts := make([]string, 0, min(len(edges), watchBranchesShow)+1)
	for i, e := range edges {
		if i == watchBranchesShow {
			parts = append(parts, StyleDim.Render(fmt.Sprintf("+%d", len(edges)-i)))
			break
		}
		label := e.Label
		if len(label) > 12 {
			label = label[:12] + "…"
		}
		count := 0
		if n, ok := g.Node(e.Target); ok {
			count = n.LeafCount
		}
		parts = append(parts, watchBranchStyle.Render(label)+StyleDim.Render(fmt.Sprintf(" (%d)", count)))
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}
