package shapedraw

// Matrix is a 2D affine transformation in row-major order:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// ScaleAbout returns a uniform scale by s that leaves center in place.
func ScaleAbout(center Point, s float64) Matrix {
	return Matrix{
		A: s, C: center.X * (1 - s),
		E: s, F: center.Y * (1 - s),
	}
}

// TransformPoint applies m to p.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}
