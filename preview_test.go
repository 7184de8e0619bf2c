package shapedraw

import (
	"math"
	"testing"
)

func pointNear(a, b Point) bool {
	return Distance(a, b) < 1e-9
}

func TestPotentialPointsNeedAnchors(t *testing.T) {
	p, _ := newTestPredictor(t, DefaultShapes())
	if pts := p.PotentialPoints(); pts != nil {
		t.Errorf("PotentialPoints() before Start = %v, want nil", pts)
	}
	_ = p.Start(Pt(0, 0))
	_ = p.Stage(Pt(0, 100))
	if pts := p.PotentialPoints(); pts != nil {
		t.Errorf("PotentialPoints() with one committed point = %v, want nil", pts)
	}
}

func TestPotentialPoints(t *testing.T) {
	p, _ := newTestPredictor(t, DefaultShapes())
	draw(t, p, Pt(0, 0), Pt(0, 100))

	pts := p.PotentialPoints()
	if len(pts) != len(DefaultShapes()) {
		t.Fatalf("len(PotentialPoints()) = %d, want %d", len(pts), len(DefaultShapes()))
	}
	// Triangle, right triangle, square ... in catalog order. Without a
	// staged point previews bend counterclockwise.
	if !pointNear(pts[2], Pt(100, 100)) {
		t.Errorf("square next point = %v, want (100,100)", pts[2])
	}
	if want := Pt(50*math.Sqrt(3), 50); !pointNear(pts[0], want) {
		t.Errorf("triangle next point = %v, want %v", pts[0], want)
	}

	// A staged point on the other side flips the preview.
	_ = p.Stage(Pt(-50, 100))
	pts = p.PotentialPoints()
	if !pointNear(pts[2], Pt(-100, 100)) {
		t.Errorf("square next point with clockwise stage = %v, want (-100,100)", pts[2])
	}
}

func TestPotentialPointsSkipClosingShapes(t *testing.T) {
	p, _ := newTestPredictor(t, DefaultShapes())
	draw(t, p, Pt(0, 0), Pt(100, 0), Pt(100, 100))

	// Right triangle has no vertex left; only the square contributes.
	pts := p.PotentialPoints()
	if len(pts) != 1 || !pointNear(pts[0], Pt(0, 100)) {
		t.Errorf("PotentialPoints() = %v, want [(0,100)]", pts)
	}
}

func TestPotentialOutlinesFollowStagedPoint(t *testing.T) {
	p, _ := newTestPredictor(t, DefaultShapes())
	_ = p.Start(Pt(0, 0))
	if got := p.PotentialOutlines(Rect{}); got != nil {
		t.Fatalf("outlines without a second point = %v, want nil", got)
	}

	_ = p.Stage(Pt(0, 100))
	got := p.PotentialOutlines(Rect{})
	if len(got) != len(DefaultShapes()) {
		t.Fatalf("len(PotentialOutlines()) = %d, want %d", len(got), len(DefaultShapes()))
	}
	for _, o := range got {
		if o.Path.Empty() {
			t.Errorf("%s outline is empty", o.Shape)
		}
	}
}

func TestPotentialOutlinesFitFrame(t *testing.T) {
	p, err := NewPredictor(DefaultShapes(), WithSmoothingGranularity(1))
	if err != nil {
		t.Fatal(err)
	}
	draw(t, p, Pt(0, 0), Pt(0, 100))

	frame := RectXYWH(-50, -50, 100, 250)
	outlines := p.PotentialOutlines(frame)
	if len(outlines) != len(DefaultShapes()) {
		t.Fatalf("len(PotentialOutlines()) = %d, want %d", len(outlines), len(DefaultShapes()))
	}

	slack := Rect{Min: frame.Min.Sub(Pt(1e-9, 1e-9)), Max: frame.Max.Add(Pt(1e-9, 1e-9))}
	for _, o := range outlines {
		for _, poly := range o.Path.Flatten(0.1) {
			for _, pt := range poly {
				if !slack.Contains(pt) {
					t.Errorf("%s outline point %v outside frame %v", o.Shape, pt, frame)
				}
			}
		}
	}

	if n := len(p.PotentialPaths(frame)); n != len(outlines) {
		t.Errorf("len(PotentialPaths()) = %d, want %d", n, len(outlines))
	}
}

func TestPotentialOutlinesStartOutsideFrame(t *testing.T) {
	p, _ := newTestPredictor(t, DefaultShapes())
	draw(t, p, Pt(0, 0), Pt(0, 100))
	if got := p.PotentialOutlines(RectXYWH(500, 500, 10, 10)); len(got) != 0 {
		t.Errorf("outlines for a frame not containing the start = %d, want 0", len(got))
	}
}

func TestNextSegmentOutlinesClip(t *testing.T) {
	p, _ := newTestPredictor(t, DefaultShapes())
	draw(t, p, Pt(0, 0), Pt(0, 100))

	if n := len(p.NextSegmentOutlines(Rect{})); n != len(DefaultShapes()) {
		t.Fatalf("unclipped next segments = %d, want %d", n, len(DefaultShapes()))
	}

	frame := RectXYWH(-10, -10, 60, 200)
	var square *Outline
	outlines := p.NextSegmentOutlines(frame)
	for i := range outlines {
		if outlines[i].Shape == Square {
			square = &outlines[i]
		}
	}
	if square == nil {
		t.Fatal("no next segment for square")
	}

	elems := square.Path.Elements()
	if len(elems) != 2 {
		t.Fatalf("square next segment has %d elements, want 2", len(elems))
	}
	if m, ok := elems[0].(MoveTo); !ok || !pointNear(m.Point, Pt(0, 100)) {
		t.Errorf("segment starts at %v, want MoveTo (0,100)", elems[0])
	}
	if l, ok := elems[1].(LineTo); !ok || !pointNear(l.Point, Pt(50, 100)) {
		t.Errorf("segment ends at %v, want LineTo (50,100)", elems[1])
	}

	if n := len(p.NextSegmentPaths(frame)); n != len(outlines) {
		t.Errorf("len(NextSegmentPaths()) = %d, want %d", n, len(outlines))
	}
}

func TestPreviewsEmptyAfterEnd(t *testing.T) {
	p, _ := newTestPredictor(t, DefaultShapes())
	draw(t, p, Pt(0, 0), Pt(0, 100))
	p.End()

	if p.PotentialPoints() != nil || p.PotentialOutlines(Rect{}) != nil || p.NextSegmentOutlines(Rect{}) != nil {
		t.Error("previews should be empty once the stroke ended")
	}
}
