package shapedraw

import "math"

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// RectXYWH creates a rectangle from its origin and size.
func RectXYWH(x, y, w, h float64) Rect {
	return NewRect(Pt(x, y), Pt(x+w, y+h))
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Expand returns the smallest rectangle containing r and p.
func (r Rect) Expand(p Point) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, p.X), Y: math.Min(r.Min.Y, p.Y)},
		Max: Point{X: math.Max(r.Max.X, p.X), Y: math.Max(r.Max.Y, p.Y)},
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// EdgeDistance returns the distance from p to the nearest edge of r, or 0
// when p lies outside r.
func (r Rect) EdgeDistance(p Point) float64 {
	if !r.Contains(p) {
		return 0
	}
	return math.Min(
		math.Min(p.X-r.Min.X, r.Max.X-p.X),
		math.Min(p.Y-r.Min.Y, r.Max.Y-p.Y),
	)
}

// ClipLine clips the segment a-b to r using Liang-Barsky.
// ok is false when no part of the segment lies inside r.
func (r Rect) ClipLine(a, b Point) (Point, Point, bool) {
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return false
			}
			t1 = math.Min(t1, t)
		}
		return true
	}

	if !clip(-d.X, a.X-r.Min.X) || !clip(d.X, r.Max.X-a.X) ||
		!clip(-d.Y, a.Y-r.Min.Y) || !clip(d.Y, r.Max.Y-a.Y) {
		return Point{}, Point{}, false
	}
	return a.Lerp(b, t0), a.Lerp(b, t1), true
}

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// flatness returns the squared maximum distance metric from the control
// points to the chord.
func (c CubicBez) flatness() float64 {
	ux := 3.0*c.P1.X - 2.0*c.P0.X - c.P3.X
	uy := 3.0*c.P1.Y - 2.0*c.P0.Y - c.P3.Y
	vx := 3.0*c.P2.X - c.P0.X - 2.0*c.P3.X
	vy := 3.0*c.P2.Y - c.P0.Y - 2.0*c.P3.Y

	return math.Max(ux*ux+uy*uy, vx*vx+vy*vy)
}
