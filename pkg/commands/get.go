package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/itinerist/trip/pkg/commands/options"
	"github.com/itinerist/trip/pkg/runner/get"
	"github.com/itinerist/trip/pkg/view"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}
	ro := &options.RenderOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get the filtered itinerary view.",
		Example: `
trip get
trip get --day 2024-01-01
trip get --query temple --tag culture --tag walking
trip get --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := loadStore(context.Background())
			if err != nil {
				return err
			}
			r := get.Get{
				Filter: view.Filter{
					Day:   fo.Day,
					Query: fo.Query,
					Tags:  fo.Tags,
				},
				ShowID: io.ShowID,
				JSON:   ro.JSON,
				HTML:   ro.HTML,
				Store:  s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddRenderArgs(cmd, ro)

	flagName := "day"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return dayCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
