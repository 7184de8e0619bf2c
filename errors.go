package shapedraw

import "errors"

var (
	// ErrInvalidState is returned when a predictor operation is called out
	// of sequence, such as Commit before Start.
	ErrInvalidState = errors.New("shapedraw: operation invalid in current state")

	// ErrInvalidShape is returned for a shape with no segments or a nil
	// shape in a catalog.
	ErrInvalidShape = errors.New("shapedraw: invalid shape")

	// ErrInvalidSegment is returned for a segment whose length is not a
	// positive finite number or whose angle is not finite.
	ErrInvalidSegment = errors.New("shapedraw: invalid segment")

	// ErrOpenShape is returned by Shape.Validate when the segments do not
	// return to the start point.
	ErrOpenShape = errors.New("shapedraw: shape does not close")

	// ErrNoShapes is returned when a predictor is created without shapes.
	ErrNoShapes = errors.New("shapedraw: empty shape catalog")

	// ErrReentrant is returned when a delegate callback calls back into the
	// predictor with a mutating operation.
	ErrReentrant = errors.New("shapedraw: re-entrant predictor call")
)
