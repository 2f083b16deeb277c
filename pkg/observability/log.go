package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports every event as a debug line on Logger. It implements
// all three hook interfaces; the CLI registers it under --verbose.
type LogHooks struct {
	Logger *log.Logger
}

// RegisterLogHooks installs LogHooks for pipeline, cache and HTTP events.
func RegisterLogHooks(l *log.Logger) {
	h := LogHooks{Logger: l}
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
}

func (h LogHooks) OnAnalyzeStart(_ context.Context, textLen int) {
	h.Logger.Debug("analysis started", "bytes", textLen)
}

func (h LogHooks) OnAnalyzeComplete(_ context.Context, textLen, nodeCount int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("analysis failed", "bytes", textLen, "duration", d, "error", err)
		return
	}
	h.Logger.Debug("analysis finished", "bytes", textLen, "nodes", nodeCount, "duration", d)
}

func (h LogHooks) OnAnalyzeSuperseded(_ context.Context, textLen int) {
	h.Logger.Debug("analysis superseded", "bytes", textLen)
}

func (h LogHooks) OnRenderStart(_ context.Context, kind, format string) {
	h.Logger.Debug("render started", "artifact", kind, "format", format)
}

func (h LogHooks) OnRenderComplete(_ context.Context, kind, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("render failed", "artifact", kind, "format", format, "duration", d, "error", err)
		return
	}
	h.Logger.Debug("render finished", "artifact", kind, "format", format, "bytes", size, "duration", d)
}

func (h LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "kind", keyType)
}

func (h LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "kind", keyType)
}

func (h LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "kind", keyType, "bytes", size)
}

func (h LogHooks) OnRequest(_ context.Context, method, route string) {
	h.Logger.Debug("request", "method", method, "path", route)
}

func (h LogHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.Logger.Debug("response", "method", method, "route", route, "status", status, "duration", d)
}

var (
	_ PipelineHooks = LogHooks{}
	_ CacheHooks    = LogHooks{}
	_ HTTPHooks     = LogHooks{}
)
