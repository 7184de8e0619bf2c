package preview

import (
	"math"

	"github.com/gogpu/shapedraw"
	"golang.org/x/image/vector"
)

// joinSides is the number of sides of the polygon approximating a round
// join.
const joinSides = 12

// strokePolyline converts a flattened polyline into filled geometry: one
// quad per segment offset by half the stroke width on each side, and a
// round join at every vertex.
//
// Every polygon is emitted with the same orientation so overlapping pieces
// accumulate instead of cancelling.
func strokePolyline(z *vector.Rasterizer, pts []shapedraw.Point, hw float64) {
	if len(pts) == 0 || hw <= 0 {
		return
	}
	for i := 1; i < len(pts); i++ {
		strokeSegment(z, pts[i-1], pts[i], hw)
	}
	for _, p := range pts {
		roundJoin(z, p, hw)
	}
}

func strokeSegment(z *vector.Rasterizer, a, b shapedraw.Point, hw float64) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return
	}
	n := shapedraw.Pt(-d.Y, d.X).Mul(hw / l)

	z.MoveTo(f32(a.Add(n)))
	z.LineTo(f32(b.Add(n)))
	z.LineTo(f32(b.Sub(n)))
	z.LineTo(f32(a.Sub(n)))
	z.ClosePath()
}

func roundJoin(z *vector.Rasterizer, c shapedraw.Point, r float64) {
	for i := range joinSides {
		// Decreasing angle matches the orientation of strokeSegment quads.
		theta := -2 * math.Pi * float64(i) / joinSides
		p := shapedraw.PointByLookingFrom(c, theta, r)
		if i == 0 {
			z.MoveTo(f32(p))
		} else {
			z.LineTo(f32(p))
		}
	}
	z.ClosePath()
}

func f32(p shapedraw.Point) (float32, float32) {
	return float32(p.X), float32(p.Y)
}
