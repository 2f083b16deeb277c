// Package cli implements the suffixlens command-line interface.
//
// The commands wrap the analysis pipeline: analyze text, print its substring
// statistics, render the trie or the complexity chart, edit text live in a
// terminal UI, serve the HTTP API, and manage the local cache and history.
// The CLI is built using cobra and logs with charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - analyze: Analyze text and print a summary or the full result as JSON
//   - stats: Print the distinct-substring table for every length
//   - render: Write the trie (json, dot, svg) or the stats chart (json, svg)
//   - watch: Edit text interactively and see the trie statistics update
//   - serve: Run the HTTP API
//   - history: List, show and delete stored analyses
//   - cache: Manage the result cache
//
// # Input
//
// Text comes from the first argument, --file, or standard input, in that
// order. Input is taken byte for byte; a single trailing newline from a
// file or pipe is dropped unless --keep-newline is set.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger. Timestamps use "15:04:05.00" so
// consecutive pipeline stages stay distinguishable in verbose output.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command step. Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with keyvals and the elapsed time, rounded
// to the millisecond:
//
//	14:32:01.45 INFO analyzed bytes=6 cached=false elapsed=2ms
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx. The root command does this before any
// subcommand runs.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when commands are run without the root command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
