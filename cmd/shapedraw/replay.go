package main

import (
	"fmt"

	"github.com/gogpu/shapedraw/internal/stroke"
	"github.com/gogpu/shapedraw/preview"
	"github.com/spf13/cobra"
)

func newReplayCmd(opts *options) *cobra.Command {
	var (
		cfg  = stroke.DefaultConfig()
		img  imageFlags
		path string
	)
	cmd := &cobra.Command{
		Use:   "replay <recording.json>",
		Short: "Feed a recorded stroke through the predictor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := stroke.LoadRecording(args[0])
			if err != nil {
				return err
			}
			p, err := opts.newPredictor(reporter{w: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			if err := rec.Replay(p, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "committed %d points\n", len(p.Points()))

			if path == "" {
				return nil
			}
			r := img.renderer()
			return preview.Save(path, r.Render(preview.Snapshot(p, r.Frame())))
		},
	}

	f := cmd.Flags()
	f.Float64Var(&cfg.MinDistance, "min-distance", cfg.MinDistance, "minimum movement in pixels before a sample is staged")
	f.Float64Var(&cfg.DwellRadius, "dwell-radius", cfg.DwellRadius, "radius in pixels the pointer must stay within to commit")
	f.DurationVar(&cfg.DwellTime, "dwell-time", cfg.DwellTime, "how long the pointer must dwell to commit")
	f.StringVar(&path, "png", "", "write a preview of the final state to this file")
	img.register(cmd)
	return cmd
}
