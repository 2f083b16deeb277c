package layout

// Default spacing, in renderer units.
const (
	DefaultHorizontalGap = 140.0
	DefaultDepthScale    = 40.0
	DefaultGuideStep     = 5

	// guideMargin is how far guides extend past the outermost nodes, as a
	// fraction of the horizontal gap.
	guideMargin = 0.6
)

type config struct {
	gap       float64
	depth     float64
	guideStep int
}

func defaultConfig() config {
	return config{
		gap:       DefaultHorizontalGap,
		depth:     DefaultDepthScale,
		guideStep: DefaultGuideStep,
	}
}

// Option configures [Build].
type Option func(*config)

// WithHorizontalGap sets the distance between neighbouring leaves.
// Non-positive values are ignored.
func WithHorizontalGap(gap float64) Option {
	return func(c *config) {
		if gap > 0 {
			c.gap = gap
		}
	}
}

// WithDepthScale sets the vertical distance per unit of depth.
// Non-positive values are ignored.
func WithDepthScale(scale float64) Option {
	return func(c *config) {
		if scale > 0 {
			c.depth = scale
		}
	}
}

// WithGuideStep sets the depth interval between guides.
// Non-positive values are ignored.
func WithGuideStep(step int) Option {
	return func(c *config) {
		if step > 0 {
			c.guideStep = step
		}
	}
}
