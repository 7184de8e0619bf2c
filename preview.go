package shapedraw

// Outline is a preview path for one potential shape.
type Outline struct {
	Shape *Shape
	Path  *Path
}

// PotentialPoints returns the next expected vertex of every potential shape
// that still needs more vertices, in catalog order. It is empty until two
// points are committed.
//
// While the winding is still ambiguous the staged point, when it forms a
// turn, decides which way the previews bend; otherwise they bend
// counterclockwise.
func (p *Predictor) PotentialPoints() []Point {
	if p.state != StateRunning || !p.hasAnchors {
		return nil
	}
	k := len(p.points)
	w := p.previewWinding()

	var pts []Point
	for _, s := range p.potential {
		if s.Len() <= k {
			continue
		}
		res := s.ResolveN(p.points[0], p.initialLength, p.initialAngle, w, k)
		pts = append(pts, res.Points[k])
	}
	return pts
}

// PotentialOutlines returns the smoothed outline of every potential shape.
//
// With a single committed point the staged point stands in for the second
// vertex so a candidate outline can follow the finger. An outline whose
// bounding circle around the start point does not fit inside frame is
// scaled down about the start point. An empty frame disables fitting.
func (p *Predictor) PotentialOutlines(frame Rect) []Outline {
	start, length, angle, ok := p.previewAnchors()
	if !ok {
		return nil
	}
	w := p.previewWinding()
	edge := frame.EdgeDistance(start)

	var out []Outline
	for _, s := range p.potential {
		path, far := s.ResolvePath(start, length, angle, w, p.granularity)
		if !frame.Empty() {
			r := Distance(start, far)
			if r > edge {
				if edge <= 0 {
					continue
				}
				path = path.Transform(ScaleAbout(start, edge/r))
			}
		}
		out = append(out, Outline{Shape: s, Path: path})
	}
	return out
}

// PotentialPaths returns the paths of PotentialOutlines.
func (p *Predictor) PotentialPaths(frame Rect) []*Path {
	return outlinePaths(p.PotentialOutlines(frame))
}

// NextSegmentOutlines returns, for every potential point, a line from the
// last committed point to it, clipped to frame. Lines entirely outside
// frame are dropped; an empty frame disables clipping.
func (p *Predictor) NextSegmentOutlines(frame Rect) []Outline {
	if p.state != StateRunning || !p.hasAnchors {
		return nil
	}
	k := len(p.points)
	last := p.points[k-1]
	w := p.previewWinding()

	var out []Outline
	for _, s := range p.potential {
		if s.Len() <= k {
			continue
		}
		next := s.ResolveN(p.points[0], p.initialLength, p.initialAngle, w, k).Points[k]
		a, b := last, next
		if !frame.Empty() {
			var ok bool
			if a, b, ok = frame.ClipLine(last, next); !ok {
				continue
			}
		}
		out = append(out, Outline{Shape: s, Path: BuildPath().Polyline(a, b).Build()})
	}
	return out
}

// NextSegmentPaths returns the paths of NextSegmentOutlines.
func (p *Predictor) NextSegmentPaths(frame Rect) []*Path {
	return outlinePaths(p.NextSegmentOutlines(frame))
}

// previewAnchors returns the start point and first segment used to draw
// outlines.
func (p *Predictor) previewAnchors() (start Point, length, angle float64, ok bool) {
	if p.state != StateRunning || len(p.points) == 0 {
		return Point{}, 0, 0, false
	}
	start = p.points[0]
	if p.hasAnchors {
		return start, p.initialLength, p.initialAngle, true
	}
	if !p.hasStaged || p.staged == start {
		return Point{}, 0, 0, false
	}
	return start, Distance(start, p.staged), Angle(start, p.staged), true
}

func (p *Predictor) previewWinding() Winding {
	if p.winding != Ambiguous {
		return p.winding
	}
	if k := len(p.points); k >= 2 && p.hasStaged {
		if w := WindingOf(p.points[k-2], p.points[k-1], p.staged); w != Ambiguous {
			return w
		}
	}
	return Counterclockwise
}

func outlinePaths(outlines []Outline) []*Path {
	paths := make([]*Path, len(outlines))
	for i, o := range outlines {
		paths[i] = o.Path
	}
	return paths
}
