package stroke

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/shapedraw"
)

// recorder logs calls as short strings.
type recorder struct {
	calls  []string
	staged shapedraw.Point
	commit []shapedraw.Point
}

func (r *recorder) Start(pt shapedraw.Point) error {
	r.calls = append(r.calls, "start")
	r.commit = append(r.commit, pt)
	return nil
}

func (r *recorder) Stage(pt shapedraw.Point) error {
	r.calls = append(r.calls, "stage")
	r.staged = pt
	return nil
}

func (r *recorder) Commit() error {
	r.calls = append(r.calls, "commit")
	r.commit = append(r.commit, r.staged)
	return nil
}

func (r *recorder) End() { r.calls = append(r.calls, "end") }

func (r *recorder) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestDetectorStagesMovement(t *testing.T) {
	r := &recorder{}
	d := NewDetector(r, DefaultConfig())

	if err := d.Down(shapedraw.Pt(0, 0), 0); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 10; i++ {
		if err := d.Move(shapedraw.Pt(float64(i*10), 0), ms(i*10)); err != nil {
			t.Fatal(err)
		}
	}
	if got := r.count("stage"); got != 10 {
		t.Errorf("staged %d samples, want 10", got)
	}
	if got := r.count("commit"); got != 0 {
		t.Errorf("moving pointer committed %d times", got)
	}
}

func TestDetectorMinDistance(t *testing.T) {
	r := &recorder{}
	d := NewDetector(r, DefaultConfig())
	_ = d.Down(shapedraw.Pt(0, 0), 0)
	_ = d.Move(shapedraw.Pt(1, 0), ms(5))
	_ = d.Move(shapedraw.Pt(1.5, 0.5), ms(10))
	if got := r.count("stage"); got != 0 {
		t.Errorf("staged %d jittery samples, want 0", got)
	}
	_ = d.Move(shapedraw.Pt(3, 0), ms(15))
	if got := r.count("stage"); got != 1 {
		t.Errorf("staged %d samples, want 1", got)
	}
}

func TestDetectorCommitsOnDwell(t *testing.T) {
	r := &recorder{}
	d := NewDetector(r, DefaultConfig())
	_ = d.Down(shapedraw.Pt(0, 0), 0)

	// Travel to (100, 0), then hold still.
	at := 0
	for x := 10; x <= 100; x += 10 {
		at += 10
		_ = d.Move(shapedraw.Pt(float64(x), 0), ms(at))
	}
	for range 10 {
		at += 20
		_ = d.Move(shapedraw.Pt(101, 1), ms(at))
	}

	if got := r.count("commit"); got != 1 {
		t.Fatalf("committed %d times, want 1", got)
	}
	if got := r.commit[1]; got != shapedraw.Pt(100, 0) {
		t.Errorf("committed %v, want (100,0)", got)
	}
	if d.Commits() != 2 {
		t.Errorf("Commits() = %d, want 2", d.Commits())
	}
}

func TestDetectorNoCommitAtStart(t *testing.T) {
	r := &recorder{}
	d := NewDetector(r, DefaultConfig())
	_ = d.Down(shapedraw.Pt(0, 0), 0)
	for i := 1; i <= 20; i++ {
		_ = d.Move(shapedraw.Pt(1, 1), ms(i*50))
	}
	if got := r.count("commit"); got != 0 {
		t.Errorf("dwelling on the start point committed %d times", got)
	}
}

func TestDetectorUp(t *testing.T) {
	tests := []struct {
		name    string
		lift    shapedraw.Point
		commits int
	}{
		{"far from last vertex", shapedraw.Pt(0, 100), 1},
		{"on last vertex", shapedraw.Pt(3, 3), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			d := NewDetector(r, DefaultConfig())
			_ = d.Down(shapedraw.Pt(0, 0), 0)
			if err := d.Up(tt.lift); err != nil {
				t.Fatal(err)
			}
			if got := r.count("commit"); got != tt.commits {
				t.Errorf("committed %d times, want %d", got, tt.commits)
			}
			if r.calls[len(r.calls)-1] != "end" {
				t.Errorf("last call = %s, want end", r.calls[len(r.calls)-1])
			}
		})
	}

	r := &recorder{}
	if err := NewDetector(r, DefaultConfig()).Up(shapedraw.Pt(1, 1)); err != nil || len(r.calls) != 0 {
		t.Errorf("Up without Down made calls %v, err %v", r.calls, err)
	}
}

type failingTarget struct{ recorder }

var errBoom = errors.New("boom")

func (f *failingTarget) Stage(shapedraw.Point) error { return errBoom }

func TestDetectorPropagatesErrors(t *testing.T) {
	d := NewDetector(&failingTarget{}, DefaultConfig())
	_ = d.Down(shapedraw.Pt(0, 0), 0)
	if err := d.Move(shapedraw.Pt(50, 0), ms(10)); !errors.Is(err, errBoom) {
		t.Errorf("Move() error = %v, want %v", err, errBoom)
	}
}

func TestReadRecording(t *testing.T) {
	rec, err := ReadRecording(strings.NewReader(`{"samples": [
		{"x": 1, "y": 2, "t_ms": 0},
		{"x": 3, "y": 4, "t_ms": 16.5},
		{"x": 5, "y": 6, "commit": true}
	]}`))
	if err != nil {
		t.Fatalf("ReadRecording() error = %v", err)
	}
	if len(rec.Samples) != 3 {
		t.Fatalf("len(Samples) = %d, want 3", len(rec.Samples))
	}
	if got := rec.Samples[1].At(); got != 16500*time.Microsecond {
		t.Errorf("At() = %v, want 16.5ms", got)
	}
	if !rec.Samples[2].Commit || rec.Samples[2].Point() != shapedraw.Pt(5, 6) {
		t.Errorf("explicit sample = %+v", rec.Samples[2])
	}

	if _, err := ReadRecording(strings.NewReader(`{"samples": []}`)); !errors.Is(err, ErrEmptyRecording) {
		t.Errorf("empty recording error = %v", err)
	}
	if _, err := ReadRecording(strings.NewReader(`[`)); err == nil {
		t.Error("ReadRecording accepted invalid JSON")
	}
}

func TestReplayExplicitSquare(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.json")
	doc := `{"samples": [
		{"x": 0, "y": 0},
		{"x": 0, "y": 100, "commit": true},
		{"x": 100, "y": 100, "commit": true},
		{"x": 100, "y": 0, "commit": true}
	]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	rec, err := LoadRecording(path)
	if err != nil {
		t.Fatal(err)
	}

	p, err := shapedraw.NewPredictor(shapedraw.DefaultShapes())
	if err != nil {
		t.Fatal(err)
	}
	if err := rec.Replay(p, DefaultConfig()); err != nil {
		t.Fatalf("Replay() error = %v", err)
	}
	if p.State() != shapedraw.StateEnded {
		t.Errorf("State() = %v, want ended", p.State())
	}
	s, _, ok := p.Matched()
	if !ok || s != shapedraw.Square {
		t.Errorf("Matched() = %v, %v; want square", s, ok)
	}
}

func TestReplayTimedTriangle(t *testing.T) {
	// Three corners of an equilateral triangle, 100 units a side, with a
	// dwell at each corner and a lift back at the start.
	corners := []shapedraw.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 50, Y: -86.6025}}
	var rec Recording
	at := 0.0
	add := func(p shapedraw.Point) {
		rec.Samples = append(rec.Samples, Sample{X: p.X, Y: p.Y, TimeMS: at})
		at += 10
	}
	add(corners[0])
	for i := range corners {
		from, to := corners[i], corners[(i+1)%len(corners)]
		for s := 1; s <= 10; s++ {
			add(from.Lerp(to, float64(s)/10))
		}
		if i < len(corners)-1 {
			for range 20 {
				add(to)
			}
		}
	}
	add(corners[0])

	p, err := shapedraw.NewPredictor(shapedraw.DefaultShapes())
	if err != nil {
		t.Fatal(err)
	}
	var ended bool
	p.SetDelegate(shapedraw.DelegateFuncs{OnWillEnd: func(*shapedraw.Predictor) { ended = true }})

	if err := rec.Replay(p, DefaultConfig()); err != nil {
		t.Fatalf("Replay() error = %v", err)
	}
	if !ended {
		t.Error("WillEnd not sent")
	}
	if got := len(p.Points()); got != 3 {
		t.Errorf("committed %d points, want 3", got)
	}
	if s, _, ok := p.Matched(); !ok || s != shapedraw.Triangle {
		t.Errorf("Matched() = %v, %v; want triangle", s, ok)
	}
}
