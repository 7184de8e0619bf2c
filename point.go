package shapedraw

import "math"

// Point represents a 2D point or vector in view coordinates.
// X grows to the right and Y grows downward, as on a touch screen.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Swap returns the point with X and Y exchanged.
func (p Point) Swap() Point {
	return Point{X: p.Y, Y: p.X}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Angle returns the bearing from a to b in degrees, in the range (-180, 180].
//
// East is 0. Because Y grows downward, positive bearings point below the
// X axis, so a positive change of bearing is a clockwise turn on screen.
// Every angle in this package uses this convention.
func Angle(a, b Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X) * (180 / math.Pi)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Mid returns the midpoint of a and b.
func Mid(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// PointByLookingFrom returns the point reached by travelling magnitude
// units from start along angle (radians).
func PointByLookingFrom(start Point, angle, magnitude float64) Point {
	return Point{
		X: start.X + math.Cos(angle)*magnitude,
		Y: start.Y + math.Sin(angle)*magnitude,
	}
}

// Cross returns a.X*b.X - a.Y*b.Y.
//
// This is not the vector cross product. It is the scalar the winding
// discriminant is built from; see [WindingOf].
func Cross(a, b Point) float64 {
	return a.X*b.X - a.Y*b.Y
}

// NormalizeDegrees wraps an angle in degrees into (-180, 180].
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return a
}

func degToRad(d float64) float64 {
	return d * (math.Pi / 180)
}
