package shapedraw

// Winding is the rotational direction of a polygon's vertex order as seen
// on screen.
type Winding int

const (
	// Clockwise polygons turn by positive bearing changes at each vertex.
	Clockwise Winding = -1

	// Ambiguous means no turn has been observed yet.
	Ambiguous Winding = 0

	// Counterclockwise polygons turn by negative bearing changes at each
	// vertex, so shape angles are applied with their sign flipped.
	Counterclockwise Winding = 1
)

// String returns the winding name.
func (w Winding) String() string {
	switch w {
	case Clockwise:
		return "clockwise"
	case Counterclockwise:
		return "counterclockwise"
	default:
		return "ambiguous"
	}
}

// turnSign is the factor a shape segment angle is multiplied by to get the
// bearing change for this winding.
func (w Winding) turnSign() float64 {
	switch w {
	case Clockwise:
		return 1
	case Counterclockwise:
		return -1
	default:
		return 0
	}
}

// WindingOf returns the winding of the turn p0 -> p1 -> p2.
//
// The discriminant is Cross(swap(p1-p0), p2-p1), which equals
// d1.Y*d2.X - d1.X*d2.Y. It is positive for a counterclockwise turn on
// screen, negative for a clockwise one and zero for collinear points.
func WindingOf(p0, p1, p2 Point) Winding {
	d := Cross(p1.Sub(p0).Swap(), p2.Sub(p1))
	switch {
	case d > 0:
		return Counterclockwise
	case d < 0:
		return Clockwise
	default:
		return Ambiguous
	}
}
