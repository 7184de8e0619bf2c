package shapedraw

// PathBuilder provides a fluent interface for path construction.
// All methods return the builder for chaining.
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo moves to a new position.
func (b *PathBuilder) MoveTo(pt Point) *PathBuilder {
	b.path.MoveTo(pt)
	return b
}

// LineTo draws a line to a position.
func (b *PathBuilder) LineTo(pt Point) *PathBuilder {
	b.path.LineTo(pt)
	return b
}

// CubicTo draws a cubic Bezier curve.
func (b *PathBuilder) CubicTo(c1, c2, pt Point) *PathBuilder {
	b.path.CubicTo(c1, c2, pt)
	return b
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

// Polyline adds a new subpath through pts. An empty slice adds nothing.
func (b *PathBuilder) Polyline(pts ...Point) *PathBuilder {
	for i, pt := range pts {
		if i == 0 {
			b.path.MoveTo(pt)
		} else {
			b.path.LineTo(pt)
		}
	}
	return b
}

// Build returns the constructed path.
func (b *PathBuilder) Build() *Path {
	return b.path
}

// Smooth returns a Catmull-Rom curve through pts.
//
// With granularity > 0 every span between two points is sampled into that
// many line segments; with granularity 0 each span becomes one exact cubic
// Bezier. Closed curves wrap around and end with Close. Fewer than three
// points yield a plain polyline.
func Smooth(pts []Point, granularity int, closed bool) *Path {
	b := BuildPath()
	n := len(pts)
	if n == 0 {
		return b.Build()
	}
	if n < 3 {
		b.Polyline(pts...)
		if closed && n > 1 {
			b.Close()
		}
		return b.Build()
	}

	at := func(i int) Point {
		if closed {
			return pts[((i%n)+n)%n]
		}
		return pts[max(0, min(i, n-1))]
	}

	spans := n - 1
	if closed {
		spans = n
	}

	b.MoveTo(pts[0])
	for i := 0; i < spans; i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		c := NewCubicBez(
			p1,
			p1.Add(p2.Sub(p0).Mul(1.0/6)),
			p2.Sub(p3.Sub(p1).Mul(1.0/6)),
			p2,
		)
		if granularity <= 0 {
			b.CubicTo(c.P1, c.P2, c.P3)
			continue
		}
		for s := 1; s <= granularity; s++ {
			b.LineTo(c.Eval(float64(s) / float64(granularity)))
		}
	}
	if closed {
		b.Close()
	}
	return b.Build()
}
