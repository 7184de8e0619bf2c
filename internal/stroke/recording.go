package stroke

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gogpu/shapedraw"
)

// ErrEmptyRecording is returned for a recording without samples.
var ErrEmptyRecording = errors.New("stroke: recording has no samples")

// Sample is one recorded pointer position.
//
// Timed samples carry a timestamp in milliseconds and go through dwell
// detection. A sample with Commit set is committed directly, which is the
// form used for hand-written strokes.
type Sample struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	TimeMS float64 `json:"t_ms,omitempty"`
	Commit bool    `json:"commit,omitempty"`
}

// Point returns the sample position.
func (s Sample) Point() shapedraw.Point {
	return shapedraw.Pt(s.X, s.Y)
}

// At returns the sample timestamp.
func (s Sample) At() time.Duration {
	return time.Duration(s.TimeMS * float64(time.Millisecond))
}

// Recording is a single stroke.
type Recording struct {
	Samples []Sample `json:"samples"`
}

// ReadRecording decodes a recording.
func ReadRecording(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("stroke: decode recording: %w", err)
	}
	if len(rec.Samples) == 0 {
		return nil, ErrEmptyRecording
	}
	return &rec, nil
}

// LoadRecording reads a recording from the named file.
func LoadRecording(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRecording(f)
}

// Replay feeds the recording through a detector into target and ends the
// stroke. The first sample starts the stroke and the last one lifts it.
func (rec *Recording) Replay(target Target, cfg Config) error {
	if len(rec.Samples) == 0 {
		return ErrEmptyRecording
	}
	d := NewDetector(target, cfg)

	first := rec.Samples[0]
	if err := d.Down(first.Point(), first.At()); err != nil {
		return err
	}
	for _, s := range rec.Samples[1:] {
		if s.Commit {
			if err := d.Force(s.Point()); err != nil {
				return err
			}
			continue
		}
		if err := d.Move(s.Point(), s.At()); err != nil {
			return err
		}
	}

	last := rec.Samples[len(rec.Samples)-1]
	if last.Commit {
		// Already committed; lift on the same spot.
		return d.Up(d.lastCommit)
	}
	return d.Up(last.Point())
}
