package pipeline

import (
	"context"
	"sync"

	"github.com/matzehuels/suffixlens/pkg/observability"
)

// Update is the outcome of one submission to [Latest].
type Update struct {
	Seq    uint64
	Text   string
	Result *Result
	Err    error
}

// Latest runs analyses for a stream of texts where only the newest text
// matters, such as an editor re-analyzing on every keystroke.
//
// Each Submit cancels the computation it supersedes. A finished computation
// is delivered only if no newer text was submitted in the meantime, so the
// Updates channel never goes backwards, whatever order the goroutines
// finish in. The channel holds at most one pending update; an unread
// update is replaced by a newer one.
type Latest struct {
	runner *Runner
	opts   Options

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	closed bool
	out    chan Update
}

// NewLatest creates a coordinator that analyzes with runner and opts.
func NewLatest(runner *Runner, opts Options) *Latest {
	return &Latest{
		runner: runner,
		opts:   opts,
		out:    make(chan Update, 1),
	}
}

// Submit starts analyzing text and returns its sequence number. Any
// computation still running for an earlier submission is canceled.
func (l *Latest) Submit(ctx context.Context, text string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return l.seq
	}

	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	seq := l.seq
	runCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel

	go func() {
		defer cancel()
		res, err := l.runner.Execute(runCtx, text, l.opts)
		l.deliver(runCtx, Update{Seq: seq, Text: text, Result: res, Err: err})
	}()
	return seq
}

func (l *Latest) deliver(ctx context.Context, u Update) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || u.Seq != l.seq {
		observability.Pipeline().OnAnalyzeSuperseded(ctx, len(u.Text))
		return
	}

	select {
	case <-l.out:
	default:
	}
	l.out <- u
}

// Updates returns the channel results are delivered on. It is closed by
// [Latest.Close].
func (l *Latest) Updates() <-chan Update {
	return l.out
}

// Close cancels any running computation and closes the Updates channel.
func (l *Latest) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	if l.cancel != nil {
		l.cancel()
	}
	close(l.out)
}
