package printers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/itinerist/trip/pkg/itinerary"
	"github.com/itinerist/trip/pkg/view"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Items renders the filtered view as a table, one row per item in view
// order.
func (pp *PrettyPrint) Items(items ...view.ItemView) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no items\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.Wrap = true
	if pp.ShowID {
		tbl.AddRow(bold("ID"), bold("Day"), bold("Time"), bold("Title"), bold("Cost"), bold("Tags"), bold("Note"))
	} else {
		tbl.AddRow(bold("Day"), bold("Time"), bold("Title"), bold("Cost"), bold("Tags"), bold("Note"))
	}
	for _, it := range items {
		tags := strings.Join(hashTags(it.Tags), " ")
		if pp.ShowID {
			tbl.AddRow(it.ID, it.Day, it.Time, it.Title, Cost(it.Cost), tags, it.Note)
		} else {
			tbl.AddRow(it.Day, it.Time, it.Title, Cost(it.Cost), tags, it.Note)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
}

// Summary prints the aggregate line for a view. An empty day means the
// view spans every day.
func (pp *PrettyPrint) Summary(v view.View, day string) {
	c := color.New(color.Faint)
	scope := "all days"
	if day != "" {
		scope = day
	}
	noun := "items"
	if v.Count == 1 {
		noun = "item"
	}
	_, _ = c.Printf("%s: %d %s · total cost %s\n", scope, v.Count, noun, Cost(v.TotalCost))
}

// Tags prints the tag chips, highlighting the active set.
func (pp *PrettyPrint) Tags(tags []string, active []string) {
	if len(tags) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no tags\n")
		return
	}
	on := make(map[string]bool, len(active))
	for _, t := range active {
		on[t] = true
	}
	hi := color.New(color.FgHiCyan, color.Bold)
	lo := color.New(color.FgCyan)
	for i, t := range tags {
		if i > 0 {
			_, _ = fmt.Fprint(color.Output, " ")
		}
		if on[t] {
			_, _ = hi.Print("#" + t)
		} else {
			_, _ = lo.Print("#" + t)
		}
	}
	_, _ = fmt.Fprintln(color.Output, "")
}

// Days renders the day list with per-day item counts.
func (pp *PrettyPrint) Days(doc itinerary.Document) {
	if len(doc.Days) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no days\n")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Day"), bold("Date"), bold("Items"))
	for i, day := range doc.Days {
		tbl.AddRow(fmt.Sprintf("Day %d", i+1), day.Date, len(day.Items))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Cost formats a cost with no trailing zeros.
func Cost(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func hashTags(tags []string) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + t
	}
	return out
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}
