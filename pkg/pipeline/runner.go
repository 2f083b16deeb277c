package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/suffixlens/pkg/cache"
	"github.com/matzehuels/suffixlens/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// The CLI, the TUI and the API server all use it so caching behaves the
// same everywhere.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute analyzes text, serving the result from the cache when possible.
// Cache failures are logged and otherwise ignored.
func (r *Runner) Execute(ctx context.Context, text string, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := opts.ValidateText(text); err != nil {
		return nil, err
	}

	key := r.Keyer.AnalysisKey(cache.Hash([]byte(text)), opts.AnalysisKeyOpts())

	if !opts.Refresh {
		if res, ok := r.cachedResult(ctx, key); ok {
			r.Logger.Debug("analysis cache hit", "bytes", len(text))
			return res, nil
		}
	}

	observability.Pipeline().OnAnalyzeStart(ctx, len(text))
	start := time.Now()
	res, err := AnalyzeContext(ctx, text, opts)
	observability.Pipeline().OnAnalyzeComplete(ctx, len(text), nodeCount(res), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("analyzed text",
		"bytes", len(text),
		"nodes", res.Graph.NodeCount,
		"edges", res.Graph.EdgeCount,
		"complexity", res.Complexity(),
		"duration", res.Timing.Total())

	if data, err := EncodeResult(res); err == nil {
		r.store(ctx, "analysis", key, data, cache.TTLAnalysis)
	} else {
		r.Logger.Warn("cache encode failed", "kind", "analysis", "error", err)
	}
	return res, nil
}

// Render produces one artifact for res, caching it under the hash of the
// result. The second return value reports a cache hit.
func (r *Runner) Render(ctx context.Context, res *Result, kind, format string) ([]byte, bool, error) {
	if err := ValidateArtifact(kind, format); err != nil {
		return nil, false, err
	}

	resultData, err := EncodeResult(res)
	if err != nil {
		return nil, false, err
	}
	key := r.Keyer.ArtifactKey(cache.Hash(resultData), cache.ArtifactKeyOpts{Format: format, Kind: kind})

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return data, true, nil
	} else if err != nil {
		r.Logger.Warn("cache read failed", "kind", "artifact", "error", err)
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	observability.Pipeline().OnRenderStart(ctx, kind, format)
	start := time.Now()
	data, err := RenderArtifact(ctx, res, kind, format)
	observability.Pipeline().OnRenderComplete(ctx, kind, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, false, fmt.Errorf("render %s %s: %w", kind, format, err)
	}

	r.Logger.Debug("rendered artifact", "kind", kind, "format", format, "bytes", len(data))
	r.store(ctx, "artifact", key, data, cache.TTLArtifact)
	return data, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// cachedResult loads and decodes a cached analysis. Undecodable entries are
// treated as misses.
func (r *Runner) cachedResult(ctx context.Context, key string) (*Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "kind", "analysis", "error", err)
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, "analysis")
		return nil, false
	}

	res, err := DecodeResult(data)
	if err != nil {
		r.Logger.Debug("discarding undecodable cache entry", "error", err)
		observability.Cache().OnCacheMiss(ctx, "analysis")
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, "analysis")
	res.CacheHit = true
	return res, true
}

func (r *Runner) store(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "kind", keyType, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func nodeCount(res *Result) int {
	if res == nil {
		return 0
	}
	return res.Graph.NodeCount
}
