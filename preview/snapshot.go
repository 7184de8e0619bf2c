package preview

import (
	"fmt"
	"image/color"

	"github.com/gogpu/shapedraw"
	"github.com/gogpu/shapedraw/catalog"
	"github.com/lucasb-eyer/go-colorful"
)

// Colors used by Snapshot for the drawn stroke.
var (
	StrokeColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	StagedColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}
)

// Palette returns n colors with evenly spaced hues.
func Palette(n int) []color.NRGBA {
	out := make([]color.NRGBA, max(0, n))
	for i := range out {
		h := 360 * float64(i) / float64(n)
		r, g, b := colorful.Hsv(h, 0.65, 0.95).Clamped().RGB255()
		out[i] = color.NRGBA{R: r, G: g, B: b, A: 0xff}
	}
	return out
}

// dim returns c with its alpha scaled by a.
func dim(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A) * a)
	return c
}

// Snapshot builds the layers for the predictor's current state: potential
// outlines and next-segment lines colored per shape, then the committed
// polyline with a faint line to the staged point on top.
//
// A shape keeps the same color across snapshots because colors are
// assigned by catalog position.
func Snapshot(p *shapedraw.Predictor, frame shapedraw.Rect) []Layer {
	shapes := p.Shapes()
	palette := Palette(len(shapes))
	colorOf := make(map[*shapedraw.Shape]color.NRGBA, len(shapes))
	for i, s := range shapes {
		colorOf[s] = palette[i]
	}

	var layers []Layer
	for _, o := range p.PotentialOutlines(frame) {
		layers = append(layers, Layer{
			Path:  o.Path,
			Color: dim(colorOf[o.Shape], 0.7),
			Width: 2,
			Label: catalog.DisplayName(o.Shape.Name()),
		})
	}
	for _, o := range p.NextSegmentOutlines(frame) {
		layers = append(layers, Layer{
			Path:  o.Path,
			Color: colorOf[o.Shape],
			Width: 1,
		})
	}

	pts := p.Points()
	if len(pts) > 0 {
		layers = append(layers, Layer{
			Path:  shapedraw.BuildPath().Polyline(pts...).Build(),
			Color: StrokeColor,
		})
		if staged, ok := p.StagedPoint(); ok {
			layers = append(layers, Layer{
				Path:  shapedraw.BuildPath().Polyline(pts[len(pts)-1], staged).Build(),
				Color: StagedColor,
			})
		}
	}
	if s, acc, ok := p.Matched(); ok && len(pts) > 0 {
		length, _ := p.InitialSegmentLength()
		angle, _ := p.InitialSegmentAngle()
		res := s.Resolve(pts[0], length, angle, p.Winding())
		layers = append(layers, Layer{
			Path:  shapedraw.BuildPath().Polyline(res.Points...).Build(),
			Color: colorOf[s],
			Label: fmt.Sprintf("%s %.0f%%", catalog.DisplayName(s.Name()), acc*100),
		})
	}
	return layers
}
