package options

import (
	"github.com/spf13/cobra"
)

// RenderOptions selects an alternative output encoding for view commands.
type RenderOptions struct {
	JSON bool
	HTML bool
}

func AddRenderArgs(cmd *cobra.Command, o *RenderOptions) {
	cmd.Flags().BoolVar(&o.JSON, "json", false,
		"Output the view as JSON.")
	cmd.Flags().BoolVar(&o.HTML, "html", false,
		"Output the view as escaped HTML cards.")
}
