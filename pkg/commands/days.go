package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/itinerist/trip/pkg/runner/days"
)

func addDays(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "days",
		Short: "List the days of the trip with item counts.",
		Example: `
trip days
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := loadStore(context.Background())
			if err != nil {
				return err
			}
			r := days.Days{Store: s}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
