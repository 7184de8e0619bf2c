package shapedraw

import (
	"testing"
)

// TestNewPredictorWithOptions tests that options override the defaults.
func TestNewPredictorWithOptions(t *testing.T) {
	rec := &recorder{}
	p, err := NewPredictor(DefaultShapes(),
		WithVertexCatchTolerance(12),
		WithSlopTolerance(8),
		WithSmoothingGranularity(6),
		WithDelegate(rec),
	)
	if err != nil {
		t.Fatalf("NewPredictor() error = %v", err)
	}

	if p.VertexCatchTolerance() != 12 {
		t.Errorf("VertexCatchTolerance() = %v, want 12", p.VertexCatchTolerance())
	}
	if p.SlopTolerance() != 8 {
		t.Errorf("SlopTolerance() = %v, want 8", p.SlopTolerance())
	}
	if p.granularity != 6 {
		t.Errorf("granularity = %d, want 6", p.granularity)
	}
	if p.delegate != rec {
		t.Error("delegate was not installed")
	}
}

// TestOptionsClampNegative tests that negative values are treated as 0.
func TestOptionsClampNegative(t *testing.T) {
	p, err := NewPredictor(DefaultShapes(),
		WithVertexCatchTolerance(-1),
		WithSlopTolerance(-5),
		WithSmoothingGranularity(-3),
	)
	if err != nil {
		t.Fatalf("NewPredictor() error = %v", err)
	}
	if p.VertexCatchTolerance() != 0 || p.SlopTolerance() != 0 || p.granularity != 0 {
		t.Errorf("tolerances = %v/%v/%d, want all 0",
			p.VertexCatchTolerance(), p.SlopTolerance(), p.granularity)
	}

	p.SetVertexCatchTolerance(-10)
	p.SetSlopTolerance(-10)
	if p.VertexCatchTolerance() != 0 || p.SlopTolerance() != 0 {
		t.Error("setters should clamp negative tolerances to 0")
	}
}

// TestTightTolerance tests that a tight predictor still matches exact input.
func TestTightTolerance(t *testing.T) {
	rec := &recorder{}
	p, err := NewPredictor([]*Shape{Square},
		WithVertexCatchTolerance(0.5),
		WithSlopTolerance(0.5),
		WithDelegate(rec),
	)
	if err != nil {
		t.Fatal(err)
	}
	draw(t, p, Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0))
	if s, acc, ok := p.Matched(); !ok || s != Square || acc < 0.99 {
		t.Errorf("exact square: Matched() = %v, %v, %v", s, acc, ok)
	}

	if err := p.Reset(); err != nil {
		t.Fatal(err)
	}
	draw(t, p, Pt(0, 0), Pt(0, 100), Pt(101, 100))
	if !p.Failed() {
		t.Error("a one pixel error should fail with half pixel tolerance")
	}
}
