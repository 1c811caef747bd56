package options

import (
	"github.com/spf13/cobra"

	"github.com/itinerist/trip/pkg/app"
	"github.com/itinerist/trip/pkg/textutil"
)

// ItemOptions captures the full set of tracked item fields for the
// add/edit form.
type ItemOptions struct {
	Day    string
	Time   string
	Title  string
	Note   string
	Cost   float64
	Tags   string
	Link   string
	Map    string
	Images []string
}

// AddItemArgs wires item form flags on the provided command.
func AddItemArgs(cmd *cobra.Command, o *ItemOptions) {
	cmd.Flags().StringVarP(&o.Day, "day", "d", "today",
		"Target day (YYYY-MM-DD).")
	cmd.Flags().StringVar(&o.Time, "time", "",
		"Time of day, HH:MM for sensible ordering.")
	cmd.Flags().StringVar(&o.Title, "title", "",
		"Item title.")
	cmd.Flags().StringVar(&o.Note, "note", "",
		"Free-form note.")
	cmd.Flags().Float64Var(&o.Cost, "cost", 0,
		"Cost of the item.")
	cmd.Flags().StringVar(&o.Tags, "tags", "",
		"Comma-separated tags.")
	cmd.Flags().StringVar(&o.Link, "link", "",
		"Related URL.")
	cmd.Flags().StringVar(&o.Map, "map", "",
		"Map URL.")
	cmd.Flags().StringArrayVar(&o.Images, "image", nil,
		"Image URL; repeatable.")
}

// Payload converts the flags into a store payload with the given id.
func (o *ItemOptions) Payload(id string) app.Payload {
	return app.Payload{
		ID:     id,
		Day:    o.Day,
		Time:   o.Time,
		Title:  o.Title,
		Note:   o.Note,
		Cost:   o.Cost,
		Tags:   textutil.SplitList(o.Tags),
		Link:   o.Link,
		Map:    o.Map,
		Images: o.Images,
	}
}
