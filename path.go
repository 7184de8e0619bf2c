package shapedraw

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is an opaque drawable outline produced for previews.
type Path struct {
	elements []PathElement
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
}

// LineTo draws a line to a point.
func (p *Path) LineTo(pt Point) {
	p.elements = append(p.elements, LineTo{Point: pt})
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1, c2, pt Point) {
	p.elements = append(p.elements, CubicTo{
		Control1: c1,
		Control2: c2,
		Point:    pt,
	})
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Empty reports whether the path has no elements.
func (p *Path) Empty() bool {
	return len(p.elements) == 0
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.MoveTo(m.TransformPoint(e.Point))
		case LineTo:
			result.LineTo(m.TransformPoint(e.Point))
		case CubicTo:
			result.CubicTo(
				m.TransformPoint(e.Control1),
				m.TransformPoint(e.Control2),
				m.TransformPoint(e.Point),
			)
		case Close:
			result.Close()
		}
	}
	return result
}
