package shapedraw

// Default tolerances used when no option overrides them.
const (
	DefaultVertexCatchTolerance = 30.0
	DefaultSlopTolerance        = 20.0
)

// Option configures a Predictor during creation.
//
// Example:
//
//	p, err := shapedraw.NewPredictor(shapedraw.DefaultShapes(),
//	    shapedraw.WithVertexCatchTolerance(24),
//	    shapedraw.WithDelegate(host))
type Option func(*predictorOptions)

// predictorOptions holds optional configuration for Predictor creation.
type predictorOptions struct {
	vertexCatch float64
	slop        float64
	granularity int
	delegate    Delegate
}

// defaultOptions returns the default predictor options.
func defaultOptions() predictorOptions {
	return predictorOptions{
		vertexCatch: DefaultVertexCatchTolerance,
		slop:        DefaultSlopTolerance,
	}
}

// WithVertexCatchTolerance sets the maximum distance, in view units, between
// an expected and an observed vertex. Negative values are treated as 0.
func WithVertexCatchTolerance(px float64) Option {
	return func(o *predictorOptions) {
		o.vertexCatch = max(0, px)
	}
}

// WithSlopTolerance sets the maximum deviation, in degrees, between an
// expected and an observed turn. Negative values are treated as 0.
func WithSlopTolerance(deg float64) Option {
	return func(o *predictorOptions) {
		o.slop = max(0, deg)
	}
}

// WithSmoothingGranularity sets the granularity handed to Smooth when
// preview outlines are built. 0 keeps exact cubic spans.
func WithSmoothingGranularity(n int) Option {
	return func(o *predictorOptions) {
		o.granularity = max(0, n)
	}
}

// WithDelegate sets the delegate notified of matches, failures and stroke
// ends.
func WithDelegate(d Delegate) Option {
	return func(o *predictorOptions) {
		o.delegate = d
	}
}
