package main

import (
	"errors"
	"fmt"

	"github.com/gogpu/shapedraw/catalog"
	"github.com/gogpu/shapedraw/preview"
	"github.com/spf13/cobra"
)

// imageFlags holds the output canvas settings shared by commands that
// render.
type imageFlags struct {
	width, height int
	glow          float64
	labels        bool
}

func (f *imageFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", 640, "image width")
	cmd.Flags().IntVar(&f.height, "height", 480, "image height")
	cmd.Flags().Float64Var(&f.glow, "glow", 3, "glow radius in pixels (0 disables)")
	cmd.Flags().BoolVar(&f.labels, "labels", true, "label outlines with shape names")
}

func (f *imageFlags) renderer() *preview.Renderer {
	return preview.NewRenderer(f.width, f.height,
		preview.WithGlow(f.glow),
		preview.WithLabels(f.labels))
}

func newPreviewCmd(opts *options) *cobra.Command {
	var (
		img    imageFlags
		points string
		staged string
		output string
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the predictions for a partial stroke",
		Example: `  shapedraw preview --points "100,100 100,300" --stage "300,300"
  shapedraw preview --points "100,100 300,100 200,273" --output tri.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := parsePoints(points)
			if err != nil {
				return err
			}
			if len(pts) == 0 {
				return errors.New("--points needs at least one x,y pair")
			}

			out := cmd.OutOrStdout()
			p, err := opts.newPredictor(reporter{w: out})
			if err != nil {
				return err
			}
			if err := p.Start(pts[0]); err != nil {
				return err
			}
			for _, pt := range pts[1:] {
				if err := p.Stage(pt); err != nil {
					return err
				}
				if err := p.Commit(); err != nil {
					return err
				}
			}
			if staged != "" {
				pt, err := parsePoint(staged)
				if err != nil {
					return err
				}
				if err := p.Stage(pt); err != nil {
					return err
				}
			}

			for _, s := range p.PotentialShapes() {
				fmt.Fprintf(out, "possible: %s\n", catalog.DisplayName(s.Name()))
			}
			for _, pt := range p.PotentialPoints() {
				fmt.Fprintf(out, "next vertex: %.1f,%.1f\n", pt.X, pt.Y)
			}

			r := img.renderer()
			if err := preview.Save(output, r.Render(preview.Snapshot(p, r.Frame()))); err != nil {
				return err
			}
			fmt.Fprintf(out, "preview saved to %s (%dx%d)\n", output, img.width, img.height)
			return nil
		},
	}

	cmd.Flags().StringVar(&points, "points", "", `committed vertices, e.g. "10,10 10,90"`)
	cmd.Flags().StringVar(&staged, "stage", "", "staged point x,y")
	cmd.Flags().StringVarP(&output, "output", "o", "preview.png", "output file")
	img.register(cmd)
	_ = cmd.MarkFlagRequired("points")
	return cmd
}
