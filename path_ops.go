package shapedraw

import "math"

// BoundingBox returns the axis-aligned bounding box of the path.
// Cubic segments contribute their control points, so the box may be
// slightly larger than the curve itself.
func (p *Path) BoundingBox() Rect {
	if len(p.elements) == 0 {
		return Rect{}
	}

	bbox := Rect{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			bbox = bbox.Expand(e.Point)
		case LineTo:
			bbox = bbox.Expand(e.Point)
		case CubicTo:
			bbox = bbox.Expand(e.Control1).Expand(e.Control2).Expand(e.Point)
		}
	}

	if bbox.Min.X == math.MaxFloat64 {
		return Rect{}
	}
	return bbox
}

// Flatten converts all curves to line segments with given tolerance.
// tolerance is the maximum distance from the curve.
func (p *Path) Flatten(tolerance float64) [][]Point {
	var (
		polys [][]Point
		cur   []Point
	)
	p.FlattenCallback(tolerance, func(pt Point, newSubpath bool) {
		if newSubpath && len(cur) > 0 {
			polys = append(polys, cur)
			cur = nil
		}
		cur = append(cur, pt)
	})
	if len(cur) > 0 {
		polys = append(polys, cur)
	}
	return polys
}

// FlattenCallback calls fn for each point of the flattened path.
// newSubpath is true for the first point of every subpath.
func (p *Path) FlattenCallback(tolerance float64, fn func(pt Point, newSubpath bool)) {
	if tolerance <= 0 {
		tolerance = 0.1 // Default tolerance
	}

	var current, start Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			fn(e.Point, true)
			start = e.Point
			current = e.Point
		case LineTo:
			fn(e.Point, false)
			current = e.Point
		case CubicTo:
			c := NewCubicBez(current, e.Control1, e.Control2, e.Point)
			flattenCubicRecursive(c, tolerance*tolerance, fn)
			current = e.Point
		case Close:
			if current != start {
				fn(start, false)
			}
			current = start
		}
	}
}

// flattenCubicRecursive recursively subdivides the cubic.
func flattenCubicRecursive(c CubicBez, toleranceSq float64, fn func(pt Point, newSubpath bool)) {
	if c.flatness() <= toleranceSq*16 { // Adjust for the metric scale
		fn(c.P3, false)
		return
	}

	c1, c2 := c.Subdivide()
	flattenCubicRecursive(c1, toleranceSq, fn)
	flattenCubicRecursive(c2, toleranceSq, fn)
}
