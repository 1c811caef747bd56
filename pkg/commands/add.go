package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/itinerist/trip/pkg/commands/options"
	"github.com/itinerist/trip/pkg/runner/upsert"
)

func addAdd(topLevel *cobra.Command) {
	io := &options.ItemOptions{}
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add an item to the itinerary.",
		Example: `
trip add "Grand Palace" --day 2024-01-01 --time 09:00 --tags culture,walking --cost 500
trip add "Beach day" --note "bring sunscreen"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 0 {
				io.Title = strings.Join(args, " ")
			}
			if io.Title == "" && !cmd.Flags().Changed("title") {
				return errors.New("requires a title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := loadStore(context.Background())
			if err != nil {
				return err
			}
			r := upsert.Upsert{
				Payload: io.Payload(""),
				ShowID:  ido.ShowID,
				Store:   s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddItemArgs(cmd, io)
	options.AddShowIDArgs(cmd, ido)

	flagName := "day"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return dayCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
