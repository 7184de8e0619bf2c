// Package preview renders predictor state to raster images.
//
// Outlines are flattened, stroked into filled polygons and rasterized with
// golang.org/x/image/vector. An optional gaussian glow is composited
// underneath the strokes, and layers can carry a text label.
//
//	r := preview.NewRenderer(640, 480, preview.WithGlow(4))
//	img := r.Render(preview.Snapshot(p, shapedraw.RectXYWH(0, 0, 640, 480)))
//	err := preview.Save("preview.png", img)
package preview

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	"github.com/gogpu/shapedraw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Default renderer settings.
const (
	DefaultStrokeWidth = 3.0
	DefaultTolerance   = 0.25
)

// Layer is one path drawn in a single color.
type Layer struct {
	Path  *shapedraw.Path
	Color color.Color

	// Width overrides the renderer stroke width when positive.
	Width float64

	// Label is drawn next to the path's bounding box when labels are
	// enabled.
	Label string
}

// Renderer draws layers onto a fixed-size canvas.
type Renderer struct {
	width, height int
	strokeWidth   float64
	tolerance     float64
	glow          float64
	background    color.Color
	labels        bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStrokeWidth sets the default stroke width in pixels.
func WithStrokeWidth(w float64) Option {
	return func(r *Renderer) {
		if w > 0 {
			r.strokeWidth = w
		}
	}
}

// WithTolerance sets the curve flattening tolerance in pixels.
func WithTolerance(tol float64) Option {
	return func(r *Renderer) {
		if tol > 0 {
			r.tolerance = tol
		}
	}
}

// WithGlow enables a gaussian glow of the given radius under the strokes.
// 0 disables it.
func WithGlow(radius float64) Option {
	return func(r *Renderer) {
		r.glow = max(0, radius)
	}
}

// WithBackground sets the canvas fill color.
func WithBackground(c color.Color) Option {
	return func(r *Renderer) {
		r.background = c
	}
}

// WithLabels toggles layer labels.
func WithLabels(on bool) Option {
	return func(r *Renderer) {
		r.labels = on
	}
}

// NewRenderer creates a renderer for a width by height canvas. Sizes below
// one pixel are raised to one.
func NewRenderer(width, height int, opts ...Option) *Renderer {
	r := &Renderer{
		width:       max(1, width),
		height:      max(1, height),
		strokeWidth: DefaultStrokeWidth,
		tolerance:   DefaultTolerance,
		background:  color.Black,
		labels:      true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Bounds returns the canvas rectangle.
func (r *Renderer) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// Frame returns the canvas as a shapedraw.Rect, suitable for fitting
// predictor previews.
func (r *Renderer) Frame() shapedraw.Rect {
	return shapedraw.RectXYWH(0, 0, float64(r.width), float64(r.height))
}

// Render draws layers in order, later layers on top.
func (r *Renderer) Render(layers []Layer) *image.NRGBA {
	bounds := r.Bounds()
	strokes := image.NewRGBA(bounds)

	z := vector.NewRasterizer(r.width, r.height)
	for _, l := range layers {
		if l.Path == nil || l.Path.Empty() || l.Color == nil {
			continue
		}
		w := r.strokeWidth
		if l.Width > 0 {
			w = l.Width
		}
		z.Reset(r.width, r.height)
		for _, poly := range l.Path.Flatten(r.tolerance) {
			strokePolyline(z, poly, w/2)
		}
		z.Draw(strokes, bounds, image.NewUniform(l.Color), image.Point{})
	}

	out := imaging.New(r.width, r.height, r.background)
	if r.glow > 0 {
		out = imaging.Overlay(out, blur.Gaussian(strokes, r.glow), image.Point{}, 1)
	}
	out = imaging.Overlay(out, strokes, image.Point{}, 1)

	if r.labels {
		for _, l := range layers {
			if l.Label != "" && l.Path != nil && !l.Path.Empty() && l.Color != nil {
				r.drawLabel(out, l)
			}
		}
	}
	return out
}

func (r *Renderer) drawLabel(dst *image.NRGBA, l Layer) {
	face := basicfont.Face7x13
	bbox := l.Path.BoundingBox()

	width := font.MeasureString(face, l.Label).Ceil()
	ascent := face.Metrics().Ascent.Ceil()

	x := int(bbox.Max.X) + 4
	y := int(bbox.Min.Y) + ascent
	x = min(max(0, x), r.width-width)
	y = min(max(ascent, y), r.height-1)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(l.Color),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(l.Label)
}

// Save writes img to path. The format follows the file extension.
func Save(path string, img image.Image) error {
	return imaging.Save(img, path)
}
