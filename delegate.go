package shapedraw

// Delegate receives the outcome of a stroke. Callbacks run synchronously
// inside Commit and End, before those calls return.
//
// A delegate may read the predictor but must not call Start, Stage, Commit
// or Reset from a callback; those calls return ErrReentrant.
type Delegate interface {
	// DidMatch is called at most once per stroke, when exactly one shape
	// closes within tolerance. accuracy is in [0, 1], 1 being exact.
	DidMatch(p *Predictor, s *Shape, accuracy float64)

	// DidFail is called at most once per stroke, when no shape remains
	// possible.
	DidFail(p *Predictor)

	// WillEnd is called once per stroke from End, before the predictor
	// enters StateEnded.
	WillEnd(p *Predictor)
}

// DelegateFuncs adapts plain functions to Delegate. Nil fields are skipped.
type DelegateFuncs struct {
	OnMatch   func(p *Predictor, s *Shape, accuracy float64)
	OnFail    func(p *Predictor)
	OnWillEnd func(p *Predictor)
}

// DidMatch implements Delegate.
func (d DelegateFuncs) DidMatch(p *Predictor, s *Shape, accuracy float64) {
	if d.OnMatch != nil {
		d.OnMatch(p, s, accuracy)
	}
}

// DidFail implements Delegate.
func (d DelegateFuncs) DidFail(p *Predictor) {
	if d.OnFail != nil {
		d.OnFail(p)
	}
}

// WillEnd implements Delegate.
func (d DelegateFuncs) WillEnd(p *Predictor) {
	if d.OnWillEnd != nil {
		d.OnWillEnd(p)
	}
}
