// Package view computes read-only projections of an itinerary document.
// A View is derived from (document, filter) and never written back; the
// day annotation on each item exists only here, not in the stored shape.
package view

import (
	"sort"
	"strings"

	"github.com/itinerist/trip/pkg/itinerary"
)

// Filter selects items along three independent dimensions. The zero value
// matches everything.
type Filter struct {
	// Day restricts to a single day key when non-empty.
	Day string
	// Query is a case-insensitive substring match over day, time, title,
	// note and tags.
	Query string
	// Tags requires every listed tag to be present on the item.
	Tags []string
}

// ItemView is an item annotated with its originating day. The annotation
// is ephemeral; it is attached to the projection only.
type ItemView struct {
	itinerary.Item
	Day     string `json:"day"`
	BgColor string `json:"bgcolor,omitempty"`
}

// View is the filtered, sorted projection plus its derived aggregates.
// AllTags is always computed over the unfiltered document.
type View struct {
	Items     []ItemView `json:"items"`
	Count     int        `json:"count"`
	TotalCost float64    `json:"totalCost"`
	AllTags   []string   `json:"allTags"`
}

// Build flattens the document through the filter and sorts the result by
// (day, time), both lexical ascending, missing time first. Ties keep the
// relative order already present in the source, so output is deterministic
// for identical input.
func Build(doc itinerary.Document, f Filter) View {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	items := make([]ItemView, 0)
	total := 0.0
	for _, day := range doc.Days {
		if f.Day != "" && day.Date != f.Day {
			continue
		}
		for _, it := range day.Items {
			if it == nil {
				continue
			}
			if q != "" && !strings.Contains(searchText(day, it), q) {
				continue
			}
			if !hasAllTags(it.Tags, f.Tags) {
				continue
			}
			items = append(items, ItemView{Item: *it, Day: day.Date, BgColor: day.BgColor})
			total += it.Cost
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Day != items[j].Day {
			return items[i].Day < items[j].Day
		}
		return items[i].Time < items[j].Time
	})

	return View{
		Items:     items,
		Count:     len(items),
		TotalCost: total,
		AllTags:   AllTags(doc),
	}
}

func searchText(day *itinerary.Day, it *itinerary.Item) string {
	joined := strings.Join([]string{
		day.Date,
		it.Time,
		it.Title,
		it.Note,
		strings.Join(it.Tags, ","),
	}, " ")
	return strings.ToLower(joined)
}

func hasAllTags(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	set := make(map[string]bool, len(have))
	for _, t := range have {
		set[t] = true
	}
	for _, t := range want {
		if !set[t] {
			return false
		}
	}
	return true
}

// AllTags returns every tag appearing anywhere in the document,
// deduplicated and sorted ascending.
func AllTags(doc itinerary.Document) []string {
	seen := make(map[string]bool)
	tags := make([]string, 0)
	for _, day := range doc.Days {
		for _, it := range day.Items {
			if it == nil {
				continue
			}
			for _, t := range it.Tags {
				if !seen[t] {
					seen[t] = true
					tags = append(tags, t)
				}
			}
		}
	}
	sort.Strings(tags)
	return tags
}
