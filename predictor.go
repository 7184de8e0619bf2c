package shapedraw

import (
	"fmt"
	"log/slog"
	"math"
)

// State is the lifecycle state of a Predictor.
type State int

const (
	// StateNew is the state before Start and after Reset.
	StateNew State = iota

	// StateRunning accepts staged and committed points.
	StateRunning

	// StateEnded is terminal until Reset.
	StateEnded
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Predictor incrementally matches committed vertices against a catalog of
// shapes. It is driven by a single goroutine: Start, then any number of
// Stage and Commit calls, then End.
//
// Predictor is not safe for concurrent use.
type Predictor struct {
	shapes      []*Shape
	vertexCatch float64
	slop        float64
	granularity int
	delegate    Delegate

	state     State
	points    []Point
	staged    Point
	hasStaged bool

	winding       Winding
	initialLength float64
	initialAngle  float64
	hasAnchors    bool

	potential []*Shape
	closing   []candidate // shapes that closed at the last evaluation
	settled   bool        // matched or failed; further commits are ignored
	matched   *Shape
	accuracy  float64

	inCallback bool
}

type candidate struct {
	shape    *Shape
	accuracy float64
}

// NewPredictor creates a predictor over shapes. The slice is copied; the
// shapes themselves are shared and never modified.
func NewPredictor(shapes []*Shape, opts ...Option) (*Predictor, error) {
	if len(shapes) == 0 {
		return nil, ErrNoShapes
	}
	for i, s := range shapes {
		if s == nil || s.Len() == 0 {
			return nil, fmt.Errorf("%w: empty shape at index %d", ErrInvalidShape, i)
		}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Predictor{
		shapes:      append([]*Shape(nil), shapes...),
		vertexCatch: o.vertexCatch,
		slop:        o.slop,
		granularity: o.granularity,
		delegate:    o.delegate,
	}, nil
}

// SetDelegate replaces the delegate. nil disables notifications.
func (p *Predictor) SetDelegate(d Delegate) {
	p.delegate = d
}

// SetVertexCatchTolerance changes the vertex tolerance used from the next
// commit on.
func (p *Predictor) SetVertexCatchTolerance(px float64) {
	p.vertexCatch = max(0, px)
}

// SetSlopTolerance changes the angular tolerance used from the next commit
// on.
func (p *Predictor) SetSlopTolerance(deg float64) {
	p.slop = max(0, deg)
}

// VertexCatchTolerance returns the vertex tolerance in view units.
func (p *Predictor) VertexCatchTolerance() float64 { return p.vertexCatch }

// SlopTolerance returns the angular tolerance in degrees.
func (p *Predictor) SlopTolerance() float64 { return p.slop }

// Start begins a stroke at pt. It requires StateNew.
func (p *Predictor) Start(pt Point) error {
	if err := p.check(StateNew, "Start"); err != nil {
		return err
	}

	p.clearStroke()
	p.state = StateRunning
	p.points = append(p.points, pt)
	p.potential = append(p.potential, p.shapes...)

	Logger().Debug("shapedraw: stroke started",
		slog.Float64("x", pt.X), slog.Float64("y", pt.Y),
		slog.Int("shapes", len(p.shapes)))
	return nil
}

// Stage records pt as the tentative next vertex, replacing any earlier
// staged point. It requires StateRunning and never changes the match state.
func (p *Predictor) Stage(pt Point) error {
	if err := p.check(StateRunning, "Stage"); err != nil {
		return err
	}
	p.staged = pt
	p.hasStaged = true
	return nil
}

// Commit promotes the staged point to a committed vertex and re-evaluates
// the potential shapes, notifying the delegate before it returns.
//
// Commit without a staged point is a no-op, as is any commit after the
// stroke has matched or failed.
func (p *Predictor) Commit() error {
	if err := p.check(StateRunning, "Commit"); err != nil {
		return err
	}
	if !p.hasStaged {
		return nil
	}

	pt := p.staged
	p.staged = Point{}
	p.hasStaged = false
	if p.settled {
		return nil
	}

	p.points = append(p.points, pt)
	p.evaluate()
	return nil
}

// End finishes the stroke. If no match has been reported and exactly one
// shape closed at the last commit, that shape is reported first. WillEnd is
// then sent and the predictor enters StateEnded. End on an ended predictor
// does nothing.
func (p *Predictor) End() {
	if p.inCallback || p.state == StateEnded {
		return
	}

	if p.state == StateRunning && !p.settled && len(p.closing) == 1 {
		p.match(p.closing[0])
	}

	p.notify(func(d Delegate) { d.WillEnd(p) })
	p.state = StateEnded

	Logger().Debug("shapedraw: stroke ended", slog.Int("points", len(p.points)))
}

// Reset discards the current stroke and returns to StateNew.
func (p *Predictor) Reset() error {
	if p.inCallback {
		return fmt.Errorf("%w: Reset", ErrReentrant)
	}
	p.clearStroke()
	p.state = StateNew
	return nil
}

func (p *Predictor) check(want State, op string) error {
	if p.inCallback {
		return fmt.Errorf("%w: %s", ErrReentrant, op)
	}
	if p.state != want {
		return fmt.Errorf("%w: %s requires %s, predictor is %s", ErrInvalidState, op, want, p.state)
	}
	return nil
}

func (p *Predictor) clearStroke() {
	p.points = p.points[:0]
	p.staged = Point{}
	p.hasStaged = false
	p.winding = Ambiguous
	p.initialLength = 0
	p.initialAngle = 0
	p.hasAnchors = false
	p.potential = p.potential[:0]
	p.closing = nil
	p.settled = false
	p.matched = nil
	p.accuracy = 0
}

// evaluate filters the potential shapes against the committed points.
func (p *Predictor) evaluate() {
	k := len(p.points)

	if k >= 2 && !p.hasAnchors {
		p.initialLength = Distance(p.points[0], p.points[1])
		p.initialAngle = Angle(p.points[0], p.points[1])
		p.hasAnchors = true
	}

	if k >= 3 && p.winding == Ambiguous {
		p.winding = WindingOf(p.points[k-3], p.points[k-2], p.points[k-1])
		if p.winding != Ambiguous {
			Logger().Debug("shapedraw: winding fixed",
				slog.String("winding", p.winding.String()), slog.Int("k", k))
		}
	}

	kept := make([]*Shape, 0, len(p.potential))
	p.closing = p.closing[:0]
	for _, s := range p.potential {
		dev, reason := p.deviation(s)
		if reason != "" {
			Logger().Debug("shapedraw: shape eliminated",
				slog.String("shape", s.Name()), slog.Int("k", k), slog.String("reason", reason))
			continue
		}
		kept = append(kept, s)
		if k >= 3 && s.Len() == k {
			p.closing = append(p.closing, candidate{shape: s, accuracy: 1 - dev})
		}
	}
	p.potential = kept

	Logger().Debug("shapedraw: commit evaluated",
		slog.Int("k", k), slog.Int("potential", len(kept)), slog.Int("closing", len(p.closing)))

	switch {
	case len(kept) == 0:
		p.settled = true
		p.closing = nil
		Logger().Info("shapedraw: no shape matches", slog.Int("points", k))
		p.notify(func(d Delegate) { d.DidFail(p) })
	case len(kept) == 1 && len(p.closing) == 1:
		p.match(p.closing[0])
	}
}

// deviation compares s with the committed points. It returns the worst
// normalized deviation in [0, 1], or a non-empty reason when s is no longer
// possible.
//
// While every committed turn is straight the winding is unknown, so s is
// kept if it fits either winding.
func (p *Predictor) deviation(s *Shape) (float64, string) {
	if p.winding != Ambiguous || len(p.points) < 3 {
		return p.deviationFor(s, p.winding)
	}
	cw, cwReason := p.deviationFor(s, Clockwise)
	ccw, ccwReason := p.deviationFor(s, Counterclockwise)
	switch {
	case cwReason == "" && ccwReason == "":
		return math.Min(cw, ccw), ""
	case cwReason == "":
		return cw, ""
	case ccwReason == "":
		return ccw, ""
	}
	return 0, cwReason
}

func (p *Predictor) deviationFor(s *Shape, w Winding) (float64, string) {
	k := len(p.points)
	if s.Len() < k {
		return 0, "too few segments"
	}
	if k < 3 {
		return 0, ""
	}

	res := s.ResolveN(p.points[0], p.initialLength, p.initialAngle, w, k)
	sign := w.turnSign()
	worst := 0.0

	for i := 2; i < k; i++ {
		d := Distance(res.Points[i], p.points[i])
		if d > p.vertexCatch {
			return 0, fmt.Sprintf("vertex %d off by %.1f", i, d)
		}
		worst = math.Max(worst, normalized(d, p.vertexCatch))
	}

	for i := 1; i <= k-2; i++ {
		d := turnDeviation(p.points[i-1], p.points[i], p.points[i+1], sign*s.segments[i].Angle)
		if d > p.slop {
			return 0, fmt.Sprintf("turn %d off by %.1f degrees", i, d)
		}
		worst = math.Max(worst, normalized(d, p.slop))
	}

	if s.Len() == k {
		d := Distance(res.Points[k], p.points[0])
		if d > p.vertexCatch {
			return 0, fmt.Sprintf("closes %.1f from start", d)
		}
		worst = math.Max(worst, normalized(d, p.vertexCatch))

		t := turnDeviation(p.points[k-2], p.points[k-1], p.points[0], sign*s.segments[k-1].Angle)
		if t > p.slop {
			return 0, fmt.Sprintf("closing turn off by %.1f degrees", t)
		}
		worst = math.Max(worst, normalized(t, p.slop))
	}

	return math.Min(worst, 1), ""
}

func (p *Predictor) match(c candidate) {
	p.settled = true
	p.matched = c.shape
	p.accuracy = math.Max(0, math.Min(1, c.accuracy))
	p.closing = nil

	Logger().Info("shapedraw: shape matched",
		slog.String("shape", c.shape.Name()), slog.Float64("accuracy", p.accuracy))
	p.notify(func(d Delegate) { d.DidMatch(p, c.shape, p.accuracy) })
}

func (p *Predictor) notify(fn func(Delegate)) {
	if p.delegate == nil {
		return
	}
	p.inCallback = true
	defer func() { p.inCallback = false }()
	fn(p.delegate)
}

// turnDeviation returns the absolute difference in degrees between the
// observed turn a -> b -> c and expected.
func turnDeviation(a, b, c Point, expected float64) float64 {
	observed := NormalizeDegrees(Angle(b, c) - Angle(a, b))
	return math.Abs(NormalizeDegrees(observed - expected))
}

func normalized(d, tolerance float64) float64 {
	if tolerance == 0 {
		if d == 0 {
			return 0
		}
		return 1
	}
	return d / tolerance
}

// State returns the lifecycle state. A stroke that has matched or failed
// reports StateRunning until End; see Matched and Failed.
func (p *Predictor) State() State { return p.state }

// Shapes returns the catalog the predictor was created with.
func (p *Predictor) Shapes() []*Shape {
	return append([]*Shape(nil), p.shapes...)
}

// Points returns a copy of the committed points.
func (p *Predictor) Points() []Point {
	return append([]Point(nil), p.points...)
}

// StagedPoint returns the staged point, if any.
func (p *Predictor) StagedPoint() (Point, bool) {
	return p.staged, p.hasStaged
}

// Winding returns the winding fixed by the committed points so far.
func (p *Predictor) Winding() Winding { return p.winding }

// InitialSegmentLength returns the distance between the first two committed
// points. ok is false until two points are committed.
func (p *Predictor) InitialSegmentLength() (length float64, ok bool) {
	return p.initialLength, p.hasAnchors
}

// InitialSegmentAngle returns the bearing in degrees from the first to the
// second committed point. ok is false until two points are committed.
func (p *Predictor) InitialSegmentAngle() (angle float64, ok bool) {
	return p.initialAngle, p.hasAnchors
}

// PotentialShapes returns the shapes still consistent with every committed
// point, in catalog order.
func (p *Predictor) PotentialShapes() []*Shape {
	return append([]*Shape(nil), p.potential...)
}

// Matched returns the matched shape and its accuracy.
func (p *Predictor) Matched() (*Shape, float64, bool) {
	return p.matched, p.accuracy, p.matched != nil
}

// Failed reports whether the stroke ran out of potential shapes.
func (p *Predictor) Failed() bool {
	return p.settled && p.matched == nil
}
