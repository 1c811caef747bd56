package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itinerist/trip/pkg/app"
	"github.com/itinerist/trip/pkg/commands/options"
	"github.com/itinerist/trip/pkg/runner/upsert"
	"github.com/itinerist/trip/pkg/textutil"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.ItemOptions{}
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an item; changing --day moves it to that day.",
		Example: `
trip edit it_a1f04c21 --time 10:30
trip edit it_a1f04c21 --day 2024-01-02
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := loadStore(context.Background())
			if err != nil {
				return err
			}
			id := args[0]
			item, day, ok := s.FindByID(id)
			if !ok {
				return fmt.Errorf("no item with id %s", id)
			}

			// The form is pre-filled with the current item; flags the
			// user set override it, then the whole tracked field set is
			// written verbatim.
			p := app.Payload{
				ID:     id,
				Day:    day.Date,
				Time:   item.Time,
				Title:  item.Title,
				Note:   item.Note,
				Cost:   item.Cost,
				Tags:   append([]string(nil), item.Tags...),
				Link:   item.Link,
				Map:    item.Map,
				Images: append([]string(nil), item.Images...),
			}
			flags := cmd.Flags()
			if flags.Changed("day") {
				p.Day = io.Day
			}
			if flags.Changed("time") {
				p.Time = io.Time
			}
			if flags.Changed("title") {
				p.Title = io.Title
			}
			if flags.Changed("note") {
				p.Note = io.Note
			}
			if flags.Changed("cost") {
				p.Cost = io.Cost
			}
			if flags.Changed("tags") {
				p.Tags = textutil.SplitList(io.Tags)
			}
			if flags.Changed("link") {
				p.Link = io.Link
			}
			if flags.Changed("map") {
				p.Map = io.Map
			}
			if flags.Changed("image") {
				p.Images = io.Images
			}
			if p.Title == "" {
				return errors.New("requires a title")
			}

			r := upsert.Upsert{
				Payload: p,
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
