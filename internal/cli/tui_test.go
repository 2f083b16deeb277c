package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/suffixlens/pkg/cache"
	"github.com/matzehuels/suffixlens/pkg/pipeline"
)

func newTestWatch(t *testing.T, opts pipeline.Options, initial string) (watchModel, *pipeline.Latest) {
	t.Helper()
	quiet := newLogger(io.Discard, LogInfo)
	opts.Logger = quiet
	latest := pipeline.NewLatest(pipeline.NewRunner(cache.NewNullCache(), nil, quiet), opts)
	t.Cleanup(latest.Close)
	return newWatchModel(context.Background(), latest, initial), latest
}

// awaitSeq reads updates until the one for seq arrives.
func awaitSeq(t *testing.T, latest *pipeline.Latest, seq uint64) pipeline.Update {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case u := <-latest.Updates():
			if u.Seq == seq {
				return u
			}
		case <-timeout:
			t.Fatalf("no update for seq %d", seq)
		}
	}
}

func press(m watchModel, msg tea.KeyMsg) watchModel {
	next, _ := m.Update(msg)
	return next.(watchModel)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWatchTypingSubmits(t *testing.T) {
	m, latest := newTestWatch(t, pipeline.Options{}, "")
	first := m.submitted

	m = press(m, runes("ab"))
	if m.text != "ab" {
		t.Fatalf("text = %q, want ab", m.text)
	}
	if m.submitted <= first {
		t.Fatalf("typing should submit a new analysis (seq %d -> %d)", first, m.submitted)
	}

	u := awaitSeq(t, latest, m.submitted)
	next, cmd := m.Update(updateMsg(u))
	m = next.(watchModel)
	if cmd == nil {
		t.Error("an update should re-arm the update listener")
	}

	view := m.View()
	if !strings.Contains(view, "Length: 2 / Nodes: 3 / Edges: 2") {
		t.Errorf("view should show the status line:\n%s", view)
	}
	if strings.Contains(view, "(updating)") {
		t.Errorf("view should not be updating once the newest result arrived:\n%s", view)
	}
}

func TestWatchEditing(t *testing.T) {
	m, _ := newTestWatch(t, pipeline.Options{}, "naïve")

	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.text != "naïv" {
		t.Errorf("after backspace text = %q", m.text)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	if m.text != "naïv " {
		t.Errorf("after space text = %q", m.text)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	if m.text != "" {
		t.Errorf("after ctrl+u text = %q", m.text)
	}

	before := m.submitted
	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.submitted != before {
		t.Error("a no-op edit should not resubmit")
	}
}

func TestWatchQueryField(t *testing.T) {
	m, latest := newTestWatch(t, pipeline.Options{}, "banana")
	u := awaitSeq(t, latest, m.submitted)
	next, _ := m.Update(updateMsg(u))
	m = next.(watchModel)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	before := m.submitted
	m = press(m, runes("ana"))
	if m.query != "ana" || m.text != "banana" {
		t.Fatalf("text/query = %q/%q", m.text, m.query)
	}
	if m.submitted != before {
		t.Error("editing the query should not resubmit the text")
	}
	if n := m.result.Graph.Occurrences(m.query); n != 2 {
		t.Errorf("Occurrences(ana) = %d, want 2", n)
	}
	if view := m.View(); !strings.Contains(view, "occurrences") {
		t.Errorf("view should count occurrences of the query:\n%s", view)
	}
}

func TestWatchIgnoresStaleUpdates(t *testing.T) {
	m, _ := newTestWatch(t, pipeline.Options{}, "")
	fresh, err := pipeline.Analyze("abc", pipeline.Options{})
	if err != nil {
		t.Fatal(err)
	}
	stale, err := pipeline.Analyze("ab", pipeline.Options{})
	if err != nil {
		t.Fatal(err)
	}

	next, _ := m.Update(updateMsg{Seq: 5, Text: "abc", Result: fresh})
	m = next.(watchModel)
	next, _ = m.Update(updateMsg{Seq: 4, Text: "ab", Result: stale})
	m = next.(watchModel)

	if m.result.Text != "abc" {
		t.Errorf("displayed text = %q, want abc", m.result.Text)
	}
}

func TestWatchShowsErrors(t *testing.T) {
	m, latest := newTestWatch(t, pipeline.Options{MaxLength: 3}, "")
	m = press(m, runes("abcd"))
	u := awaitSeq(t, latest, m.submitted)
	if u.Err == nil {
		t.Fatal("expected an input guard error")
	}
	next, _ := m.Update(updateMsg(u))
	m = next.(watchModel)
	if view := m.View(); !strings.Contains(view, "max 3") {
		t.Errorf("view should show the guard error:\n%s", view)
	}
}

func TestWatchQuit(t *testing.T) {
	m, _ := newTestWatch(t, pipeline.Options{}, "")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should quit")
	}
}
