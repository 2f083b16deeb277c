package cache

// ScopedKeyer wraps a Keyer with a prefix, giving each deployment or
// environment that shares a Redis instance its own key namespace.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "prod:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// AnalysisKey generates a prefixed key for analysis caching.
func (k *ScopedKeyer) AnalysisKey(textHash string, opts AnalysisKeyOpts) string {
	return k.prefix + k.inner.AnalysisKey(textHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(analysisHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(analysisHash, opts)
}
