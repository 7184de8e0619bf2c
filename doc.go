// Package shapedraw recognizes which polygon a user is drawing, one vertex
// at a time, from a live stream of touch points.
//
// # Overview
//
// A [Shape] is an ordered list of [ShapeSegment] values, each a relative
// length and a turn angle. Shapes carry no size, position or orientation;
// a [Predictor] anchors them to the first segment the user draws and keeps
// the set of shapes still consistent with every committed vertex.
//
// # Quick Start
//
//	p, _ := shapedraw.NewPredictor(shapedraw.DefaultShapes(),
//	    shapedraw.WithVertexCatchTolerance(10),
//	    shapedraw.WithSlopTolerance(10),
//	    shapedraw.WithDelegate(shapedraw.DelegateFuncs{
//	        OnMatch: func(_ *shapedraw.Predictor, s *shapedraw.Shape, acc float64) {
//	            fmt.Printf("%s (%.0f%%)\n", s.Name(), acc*100)
//	        },
//	    }))
//
//	_ = p.Start(shapedraw.Pt(0, 0))
//	for _, v := range []shapedraw.Point{{0, 100}, {100, 100}, {100, 0}} {
//	    _ = p.Stage(v)  // follow the finger
//	    _ = p.Commit()  // the finger paused: this is a vertex
//	}
//	p.End()
//
// # Coordinates
//
// Points are view coordinates with Y growing downward. [Angle] returns
// bearings in degrees in (-180, 180]; segment angles are degrees too. On
// screen a counterclockwise polygon turns by negative bearing changes, so
// the stored, positive segment angles are negated for [Counterclockwise]
// strokes and used as-is for [Clockwise] ones.
//
// # Lifecycle
//
// A predictor moves from [StateNew] to [StateRunning] on Start and to
// [StateEnded] on End. Reset returns it to [StateNew] for the next stroke.
// Delegate callbacks fire synchronously within Commit and End.
//
// # Previews
//
// PotentialPoints, PotentialOutlines and NextSegmentOutlines expose the
// geometry a host needs to show where the stroke may go next. Outlines are
// built with [Smooth]; the preview sub-package rasterizes them.
//
// # Logging
//
// shapedraw is silent by default. Call [SetLogger] to receive matcher
// diagnostics through log/slog.
package shapedraw
