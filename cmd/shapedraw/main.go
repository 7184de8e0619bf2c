// Command shapedraw inspects shape catalogs, replays recorded strokes
// through the predictor and renders prediction previews.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/shapedraw"
	"github.com/gogpu/shapedraw/catalog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	catalogPath     string
	vertexTolerance float64
	slop            float64
	granularity     int
	verbose         bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "shapedraw",
		Short:        "Predict polygon shapes from drawn vertices",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.catalogPath, "catalog", "", "shape catalog JSON file (default: built-in shapes)")
	f.Float64Var(&opts.vertexTolerance, "vertex-tolerance", shapedraw.DefaultVertexCatchTolerance, "maximum vertex distance in pixels")
	f.Float64Var(&opts.slop, "slop", shapedraw.DefaultSlopTolerance, "maximum turn deviation in degrees")
	f.IntVar(&opts.granularity, "granularity", 0, "samples per outline span (0 keeps exact curves)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log predictor decisions")

	root.AddCommand(newShapesCmd(opts), newReplayCmd(opts), newPreviewCmd(opts))
	return root
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	shapedraw.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func (o *options) loadCatalog() (*catalog.Catalog, error) {
	if o.catalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(o.catalogPath)
}

func (o *options) newPredictor(d shapedraw.Delegate) (*shapedraw.Predictor, error) {
	c, err := o.loadCatalog()
	if err != nil {
		return nil, err
	}
	return shapedraw.NewPredictor(c.Shapes(),
		shapedraw.WithVertexCatchTolerance(o.vertexTolerance),
		shapedraw.WithSlopTolerance(o.slop),
		shapedraw.WithSmoothingGranularity(o.granularity),
		shapedraw.WithDelegate(d))
}

// reporter prints predictor outcomes.
type reporter struct {
	w io.Writer
}

var _ shapedraw.Delegate = reporter{}

func (r reporter) DidMatch(_ *shapedraw.Predictor, s *shapedraw.Shape, accuracy float64) {
	fmt.Fprintf(r.w, "matched %s (accuracy %.2f)\n", catalog.DisplayName(s.Name()), accuracy)
}

func (r reporter) DidFail(p *shapedraw.Predictor) {
	fmt.Fprintf(r.w, "no shape matches after %d points\n", len(p.Points()))
}

func (r reporter) WillEnd(p *shapedraw.Predictor) {
	if _, _, ok := p.Matched(); ok || p.Failed() {
		return
	}
	fmt.Fprintf(r.w, "stroke ended undecided; %d shapes still possible\n", len(p.PotentialShapes()))
}

// parsePoint parses "x,y".
func parsePoint(s string) (shapedraw.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return shapedraw.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return shapedraw.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return shapedraw.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return shapedraw.Pt(x, y), nil
}

// parsePoints parses a space separated list of "x,y" pairs.
func parsePoints(s string) ([]shapedraw.Point, error) {
	var pts []shapedraw.Point
	for _, field := range strings.Fields(s) {
		pt, err := parsePoint(field)
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}
	return pts, nil
}
