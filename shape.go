package shapedraw

import (
	"fmt"
	"math"
)

// ShapeSegment is one edge of an abstract polygon.
//
// Length is relative: only its ratio to the first segment of the shape
// matters. Angle is the turn in degrees applied to the running heading
// before the edge is traversed; for the first segment it is measured from
// the initial heading and is normally 0.
type ShapeSegment struct {
	Length float64 `json:"length"`
	Angle  float64 `json:"angle"`
}

// NewSegment creates a segment, rejecting non-positive or non-finite
// lengths and non-finite angles.
func NewSegment(length, angle float64) (ShapeSegment, error) {
	s := ShapeSegment{Length: length, Angle: angle}
	if err := s.validate(); err != nil {
		return ShapeSegment{}, err
	}
	return s, nil
}

// Seg creates a segment for catalogs written in code.
// It panics on an invalid length.
func Seg(length, angle float64) ShapeSegment {
	s, err := NewSegment(length, angle)
	if err != nil {
		panic(err)
	}
	return s
}

func (s ShapeSegment) validate() error {
	if !(s.Length > 0) || math.IsInf(s.Length, 0) {
		return fmt.Errorf("%w: length %v", ErrInvalidSegment, s.Length)
	}
	if math.IsNaN(s.Angle) || math.IsInf(s.Angle, 0) {
		return fmt.Errorf("%w: angle %v", ErrInvalidSegment, s.Angle)
	}
	return nil
}

// Shape is a named closed convex polygon described up to rotation,
// uniform scale, translation and mirroring.
type Shape struct {
	name     string
	segments []ShapeSegment
}

// NewShape creates a shape from an ordered list of segments.
// The segments are copied.
func NewShape(name string, segments ...ShapeSegment) (*Shape, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: %q has no segments", ErrInvalidShape, name)
	}
	for i, s := range segments {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("%w: %q segment %d: %w", ErrInvalidShape, name, i, err)
		}
	}
	return &Shape{name: name, segments: append([]ShapeSegment(nil), segments...)}, nil
}

// MustShape is like NewShape but panics on error.
func MustShape(name string, segments ...ShapeSegment) *Shape {
	s, err := NewShape(name, segments...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the shape name.
func (s *Shape) Name() string {
	return s.name
}

// Segments returns a copy of the shape's segments.
func (s *Shape) Segments() []ShapeSegment {
	return append([]ShapeSegment(nil), s.segments...)
}

// Len returns the number of segments, which is also the number of
// vertices of the polygon.
func (s *Shape) Len() int {
	return len(s.segments)
}

func (s *Shape) String() string {
	return s.name
}

// Resolution is a shape resolved into absolute view coordinates.
type Resolution struct {
	// Points starts with the start point and holds one point per resolved
	// segment. For a fully resolved shape the last point is the closing
	// point, approximately equal to the start.
	Points []Point

	// Farthest is the resolved point farthest from the start.
	Farthest Point
}

// Resolve walks every segment from start. The first segment is scaled to
// initialLength and heads along initialAngle (degrees); later segments keep
// their length ratio to the first and turn according to winding.
func (s *Shape) Resolve(start Point, initialLength, initialAngle float64, w Winding) Resolution {
	return s.ResolveN(start, initialLength, initialAngle, w, len(s.segments))
}

// ResolveN is like Resolve but stops after n segments. n is clamped to
// [0, Len()].
func (s *Shape) ResolveN(start Point, initialLength, initialAngle float64, w Winding, n int) Resolution {
	n = max(0, min(n, len(s.segments)))
	if n == 0 {
		return Resolution{Points: []Point{start}, Farthest: start}
	}

	scale := initialLength / s.segments[0].Length
	sign := w.turnSign()

	res := Resolution{
		Points:   make([]Point, 0, n+1),
		Farthest: start,
	}
	res.Points = append(res.Points, start)

	heading := initialAngle
	pos := start
	far := 0.0
	for _, seg := range s.segments[:n] {
		heading += sign * seg.Angle
		pos = PointByLookingFrom(pos, degToRad(heading), seg.Length*scale)
		res.Points = append(res.Points, pos)
		if d := Distance(start, pos); d > far {
			far = d
			res.Farthest = pos
		}
	}
	return res
}

// ResolvePath resolves the shape and smooths the vertices into a closed
// outline. It also returns the farthest point, as Resolve does.
func (s *Shape) ResolvePath(start Point, initialLength, initialAngle float64, w Winding, granularity int) (*Path, Point) {
	res := s.Resolve(start, initialLength, initialAngle, w)
	// The closing point duplicates the start.
	pts := res.Points[:len(res.Points)-1]
	return Smooth(pts, granularity, true), res.Farthest
}

// closeTolerance is the unit-scale distance within which a resolved shape
// must return to its start to be considered closed.
const closeTolerance = 1e-6

// Validate reports ErrInvalidShape for a shape without segments and
// ErrOpenShape if resolving the shape at unit scale does not return to the
// start point.
func (s *Shape) Validate() error {
	if len(s.segments) == 0 {
		return fmt.Errorf("%w: %q has no segments", ErrInvalidShape, s.name)
	}
	res := s.Resolve(Point{}, 1, 0, Counterclockwise)
	end := res.Points[len(res.Points)-1]
	if d := Distance(Point{}, end); d > closeTolerance {
		return fmt.Errorf("%w: %q ends %.3g from its start", ErrOpenShape, s.name, d)
	}
	return nil
}
