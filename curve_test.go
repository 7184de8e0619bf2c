package shapedraw

import "testing"

func TestRect(t *testing.T) {
	r := NewRect(Pt(10, 50), Pt(-10, 0))
	if r.Min != Pt(-10, 0) || r.Max != Pt(10, 50) {
		t.Fatalf("NewRect normalized to %v", r)
	}
	if r.Width() != 20 || r.Height() != 50 {
		t.Errorf("size = %vx%v, want 20x50", r.Width(), r.Height())
	}
	if !r.Contains(Pt(10, 50)) || r.Contains(Pt(11, 0)) {
		t.Error("Contains is wrong on the boundary")
	}
	if (Rect{}).Empty() != true || r.Empty() {
		t.Error("Empty() is wrong")
	}
	if got := r.Expand(Pt(30, -5)); got.Min != Pt(-10, -5) || got.Max != Pt(30, 50) {
		t.Errorf("Expand() = %v", got)
	}
}

func TestRectEdgeDistance(t *testing.T) {
	r := RectXYWH(0, 0, 100, 50)
	tests := []struct {
		p    Point
		want float64
	}{
		{Pt(50, 25), 25},
		{Pt(10, 25), 10},
		{Pt(0, 0), 0},
		{Pt(-5, 10), 0},
	}
	for _, tt := range tests {
		if got := r.EdgeDistance(tt.p); got != tt.want {
			t.Errorf("EdgeDistance(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectClipLine(t *testing.T) {
	r := RectXYWH(0, 0, 100, 100)
	tests := []struct {
		name   string
		a, b   Point
		ok     bool
		wa, wb Point
	}{
		{"inside", Pt(10, 10), Pt(90, 90), true, Pt(10, 10), Pt(90, 90)},
		{"exits right", Pt(50, 50), Pt(150, 50), true, Pt(50, 50), Pt(100, 50)},
		{"crosses", Pt(-50, 50), Pt(150, 50), true, Pt(0, 50), Pt(100, 50)},
		{"outside", Pt(-50, -50), Pt(-10, 200), false, Point{}, Point{}},
		{"parallel outside", Pt(-10, 10), Pt(-10, 90), false, Point{}, Point{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, ok := r.ClipLine(tt.a, tt.b)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (!pointNear(a, tt.wa) || !pointNear(b, tt.wb)) {
				t.Errorf("ClipLine = %v-%v, want %v-%v", a, b, tt.wa, tt.wb)
			}
		})
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(0, 30), Pt(60, 30), Pt(60, 0))
	left, right := c.Subdivide()
	if !pointNear(left.P3, c.Eval(0.5)) || right.P0 != left.P3 {
		t.Errorf("halves meet at %v/%v, want %v", left.P3, right.P0, c.Eval(0.5))
	}
	if !pointNear(left.Eval(0.5), c.Eval(0.25)) {
		t.Errorf("left half midpoint %v, want %v", left.Eval(0.5), c.Eval(0.25))
	}
}
