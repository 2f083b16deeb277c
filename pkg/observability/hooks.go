// Package observability lets main attach instrumentation to the analysis
// pipeline, the caches and the HTTP server without those packages importing
// a metrics or tracing framework.
//
// Three hook interfaces cover the event sources. Each starts out as a no-op;
// main swaps in real implementations once at startup:
//
//	observability.SetPipelineHooks(myHooks)
//	observability.SetCacheHooks(myHooks)
//
// Instrumented code fetches the current hooks at the call site:
//
//	observability.Pipeline().OnAnalyzeStart(ctx, len(text))
//	res, err := analyze(text)
//	observability.Pipeline().OnAnalyzeComplete(ctx, len(text), nodes, time.Since(start), err)
//
// [LogHooks] is the built-in implementation. It turns every event into a
// debug log line.
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// PipelineHooks receives analysis and render events. textLen is in bytes.
type PipelineHooks interface {
	OnAnalyzeStart(ctx context.Context, textLen int)
	OnAnalyzeComplete(ctx context.Context, textLen, nodeCount int, duration time.Duration, err error)

	// OnAnalyzeSuperseded fires when newer text arrives before a
	// computation finishes and its result is thrown away.
	OnAnalyzeSuperseded(ctx context.Context, textLen int)

	// kind is "graph" or "stats".
	OnRenderStart(ctx context.Context, kind, format string)
	OnRenderComplete(ctx context.Context, kind, format string, size int, duration time.Duration, err error)
}

// CacheHooks receives cache lookups and writes. keyType is "analysis" or
// "artifact".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives API requests. OnRequest gets the raw path, OnResponse
// the matched chi route pattern.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, route string)
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// NoopPipelineHooks ignores every event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnAnalyzeStart(context.Context, int)                                         {}
func (NoopPipelineHooks) OnAnalyzeComplete(context.Context, int, int, time.Duration, error)           {}
func (NoopPipelineHooks) OnAnalyzeSuperseded(context.Context, int)                                    {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, string)                               {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks ignores every event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// registry is immutable once published. Set calls swap in a modified copy.
type registry struct {
	pipeline PipelineHooks
	cache    CacheHooks
	http     HTTPHooks
}

func defaults() *registry {
	return &registry{pipeline: NoopPipelineHooks{}, cache: NoopCacheHooks{}, http: NoopHTTPHooks{}}
}

var current atomic.Pointer[registry]

func init() { current.Store(defaults()) }

// update applies fn to a copy of the current registry and publishes it.
func update(fn func(r *registry)) {
	for {
		old := current.Load()
		next := *old
		fn(&next)
		if current.CompareAndSwap(old, &next) {
			return
		}
	}
}

// SetPipelineHooks installs h. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		update(func(r *registry) { r.pipeline = h })
	}
}

// SetCacheHooks installs h. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		update(func(r *registry) { r.cache = h })
	}
}

// SetHTTPHooks installs h. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		update(func(r *registry) { r.http = h })
	}
}

// Pipeline returns the installed pipeline hooks.
func Pipeline() PipelineHooks { return current.Load().pipeline }

// Cache returns the installed cache hooks.
func Cache() CacheHooks { return current.Load().cache }

// HTTP returns the installed HTTP hooks.
func HTTP() HTTPHooks { return current.Load().http }

// Reset puts the no-op hooks back. Tests use it to undo Set calls.
func Reset() { current.Store(defaults()) }
