package cache

// Keyer builds cache keys for each kind of cached value.
type Keyer interface {
	// AnalysisKey returns the key for an analysis result of the text with
	// the given content hash.
	AnalysisKey(textHash string, opts AnalysisKeyOpts) string

	// ArtifactKey returns the key for a rendered artifact of the analysis
	// with the given content hash.
	ArtifactKey(analysisHash string, opts ArtifactKeyOpts) string
}

// AnalysisKeyOpts are the options that change an analysis result.
type AnalysisKeyOpts struct {
	HorizontalGap float64 `json:"horizontal_gap"`
	DepthScale    float64 `json:"depth_scale"`
	GuideStep     int     `json:"guide_step"`
}

// ArtifactKeyOpts are the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Kind   string `json:"kind"` // "graph" or "stats"
}

// DefaultKeyer is the unscoped [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer returns a keyer without a namespace prefix.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// AnalysisKey implements [Keyer].
func (DefaultKeyer) AnalysisKey(textHash string, opts AnalysisKeyOpts) string {
	return deriveKey("analysis", textHash, opts)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(analysisHash string, opts ArtifactKeyOpts) string {
	return deriveKey("artifact", analysisHash, opts)
}
