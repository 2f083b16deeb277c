package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"InfoAtInfo", LogInfo, func(l *log.Logger) { l.Info("cache hit") }, true},
		{"DebugAtInfo", LogInfo, func(l *log.Logger) { l.Debug("cache hit") }, false},
		{"DebugAtDebug", LogDebug, func(l *log.Logger) { l.Debug("cache hit") }, true},
		{"WarnAtInfo", LogInfo, func(l *log.Logger) { l.Warn("cache read failed") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, LogInfo).Info("ready")

	stamp := regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `)
	if !stamp.MatchString(buf.String()) {
		t.Errorf("line should start with a HH:MM:SS.cc timestamp: %q", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, LogInfo)).done("analyzed", "bytes", 6)

	out := buf.String()
	for _, want := range []string{"analyzed", "bytes=6", "elapsed="} {
		if !strings.Contains(out, want) {
			t.Errorf("progress output missing %q: %q", want, out)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("a bare context should fall back to log.Default()")
	}

	l := newLogger(&bytes.Buffer{}, LogInfo)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestRootCommandAttachesLogger(t *testing.T) {
	sandbox(t)

	var logs bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"analyze", "--no-cache", "--json", "banana"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if !strings.Contains(logs.String(), "bytes=6") {
		t.Errorf("analyze should log through the CLI logger, got %q", logs.String())
	}
}
