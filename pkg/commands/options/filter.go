// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// FilterOptions captures the three filter dimensions for view commands.
type FilterOptions struct {
	Day   string
	Query string
	Tags  []string
}

// AddFilterArgs wires filter flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Day, "day", "d", "",
		"Restrict to a single day (YYYY-MM-DD, or 'today').")
	cmd.Flags().StringVarP(&o.Query, "query", "q", "",
		"Case-insensitive text search over day, time, title, note and tags.")
	cmd.Flags().StringArrayVarP(&o.Tags, "tag", "t", nil,
		"Require a tag; repeat to require several (all must match).")
}
