// Package stroke turns raw pointer samples into predictor calls.
//
// Every sample that moves far enough from the previous one is staged. A
// vertex is committed when the pointer dwells: it stays within DwellRadius
// of one spot for at least DwellTime. Lifting the pointer commits the final
// position unless it sits on the last committed vertex.
package stroke

import (
	"log/slog"
	"time"

	"github.com/gogpu/shapedraw"
)

// Target receives the detector's calls. *shapedraw.Predictor implements it.
type Target interface {
	Start(pt shapedraw.Point) error
	Stage(pt shapedraw.Point) error
	Commit() error
	End()
}

// Config tunes vertex detection.
type Config struct {
	// MinDistance is how far a sample must be from the last staged sample
	// to be staged.
	MinDistance float64

	// DwellRadius is the radius of the spot the pointer must stay in.
	DwellRadius float64

	// DwellTime is how long the pointer must stay in the spot.
	DwellTime time.Duration
}

// DefaultConfig returns settings suited to touch and mouse input in pixels.
func DefaultConfig() Config {
	return Config{
		MinDistance: 2,
		DwellRadius: 8,
		DwellTime:   150 * time.Millisecond,
	}
}

// Detector feeds a Target from a sample stream. It is not safe for
// concurrent use.
type Detector struct {
	cfg    Config
	target Target

	active     bool
	last       shapedraw.Point // last staged sample
	lastCommit shapedraw.Point
	anchor     shapedraw.Point // center of the current dwell spot
	anchorAt   time.Duration
	dwelled    bool // the current spot has been committed
	commits    int
}

// NewDetector creates a detector driving target.
func NewDetector(target Target, cfg Config) *Detector {
	return &Detector{cfg: cfg, target: target}
}

// Commits returns the number of vertices committed in the current stroke,
// counting the start point.
func (d *Detector) Commits() int {
	return d.commits
}

// Down starts a stroke at pt.
func (d *Detector) Down(pt shapedraw.Point, at time.Duration) error {
	if err := d.target.Start(pt); err != nil {
		return err
	}
	d.active = true
	d.last = pt
	d.lastCommit = pt
	d.anchor = pt
	d.anchorAt = at
	d.dwelled = true
	d.commits = 1
	return nil
}

// Move reports a sample at time at. Before Down it starts the stroke.
func (d *Detector) Move(pt shapedraw.Point, at time.Duration) error {
	if !d.active {
		return d.Down(pt, at)
	}

	if shapedraw.Distance(pt, d.last) >= d.cfg.MinDistance {
		if err := d.target.Stage(pt); err != nil {
			return err
		}
		d.last = pt
	}

	if shapedraw.Distance(pt, d.anchor) > d.cfg.DwellRadius {
		d.anchor = pt
		d.anchorAt = at
		d.dwelled = false
		return nil
	}
	if !d.dwelled && at-d.anchorAt >= d.cfg.DwellTime {
		d.dwelled = true
		return d.commit()
	}
	return nil
}

// Up ends the stroke at pt.
func (d *Detector) Up(pt shapedraw.Point) error {
	if !d.active {
		return nil
	}
	if shapedraw.Distance(pt, d.lastCommit) > d.cfg.DwellRadius {
		if pt != d.last {
			if err := d.target.Stage(pt); err != nil {
				return err
			}
			d.last = pt
		}
		if err := d.commit(); err != nil {
			return err
		}
	}
	d.active = false
	d.target.End()
	return nil
}

// Force stages pt and commits it immediately.
func (d *Detector) Force(pt shapedraw.Point) error {
	if !d.active {
		return d.Down(pt, d.anchorAt)
	}
	if pt != d.last {
		if err := d.target.Stage(pt); err != nil {
			return err
		}
		d.last = pt
	}
	d.anchor = pt
	d.dwelled = true
	return d.commit()
}

func (d *Detector) commit() error {
	if d.last == d.lastCommit {
		return nil
	}
	if err := d.target.Commit(); err != nil {
		return err
	}
	d.lastCommit = d.last
	d.commits++
	shapedraw.Logger().Debug("stroke: vertex committed",
		slog.Float64("x", d.last.X), slog.Float64("y", d.last.Y), slog.Int("n", d.commits))
	return nil
}
