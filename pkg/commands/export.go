package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/itinerist/trip/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole itinerary as pretty JSON.",
		Example: `
trip export
trip export --output backup.json
trip export --output -
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := loadStore(context.Background())
			if err != nil {
				return err
			}
			r := export.Export{
				Output: out,
				Store:  s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "",
		"Output file; '-' for stdout. Defaults to itinerary.json.")

	topLevel.AddCommand(cmd)
}
