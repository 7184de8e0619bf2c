package shapedraw

import "math"

// Built-in shapes. Each is a closed convex polygon whose first segment
// follows the initial heading.
var (
	Triangle = MustShape("triangle",
		Seg(1, 0), Seg(1, 120), Seg(1, 120))

	RightTriangle = MustShape("right triangle",
		Seg(1, 0), Seg(1, 90), Seg(math.Sqrt2, 135))

	Square = MustShape("square",
		Seg(1, 0), Seg(1, 90), Seg(1, 90), Seg(1, 90))

	// Rectangle is drawn long side first, with a 2:1 aspect ratio.
	Rectangle = MustShape("rectangle",
		Seg(2, 0), Seg(1, 90), Seg(2, 90), Seg(1, 90))

	// Diamond is a rhombus with 120 degree interior angles at its second
	// and fourth vertices.
	Diamond = MustShape("diamond",
		Seg(1, 0), Seg(1, 60), Seg(1, 120), Seg(1, 60))

	Pentagon = regularPolygon("pentagon", 5)

	Hexagon = regularPolygon("hexagon", 6)
)

// DefaultShapes returns the built-in catalog in a stable order.
func DefaultShapes() []*Shape {
	return []*Shape{Triangle, RightTriangle, Square, Rectangle, Diamond, Pentagon, Hexagon}
}

func regularPolygon(name string, sides int) *Shape {
	turn := 360.0 / float64(sides)
	segs := make([]ShapeSegment, sides)
	segs[0] = Seg(1, 0)
	for i := 1; i < sides; i++ {
		segs[i] = Seg(1, turn)
	}
	return MustShape(name, segs...)
}
