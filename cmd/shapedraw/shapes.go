package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/gogpu/shapedraw/catalog"
	"github.com/spf13/cobra"
)

func newShapesCmd(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "List the shapes in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			if asJSON {
				return catalog.Save(cmd.OutOrStdout(), c)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSEGMENTS")
			for _, s := range c.Shapes() {
				fmt.Fprintf(tw, "%s\t%d\n", catalog.DisplayName(s.Name()), s.Len())
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the catalog as JSON")
	return cmd
}
