// Package itinerary defines the document model for a trip itinerary: an
// ordered list of days, each holding an ordered list of scheduled items.
package itinerary

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Document is the root aggregate. It owns every Day and is replaced
// wholesale on import.
type Document struct {
	Days []*Day `json:"days"`
}

// Day is one calendar date of the trip. Date is the unique key within the
// document. BgColor is display-only and opaque to filtering.
type Day struct {
	Date    string  `json:"date"`
	BgColor string  `json:"bgcolor,omitempty"`
	Items   []*Item `json:"items"`
}

// Item is a scheduled activity. ID is unique across the whole document.
// Time is free-form but callers should use a lexically sortable format
// like HH:MM for ordering to be meaningful.
type Item struct {
	ID     string   `json:"id"`
	Time   string   `json:"time,omitempty"`
	Title  string   `json:"title"`
	Images []string `json:"images,omitempty"`
	Link   string   `json:"link,omitempty"`
	Map    string   `json:"map,omitempty"`
	Note   string   `json:"note,omitempty"`
	Cost   float64  `json:"cost,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

// UnmarshalJSON accepts the legacy singular "image" field, folding it into
// Images when Images is absent. The legacy field is never re-emitted.
// Cost tolerates non-numeric values, coercing them to zero.
func (it *Item) UnmarshalJSON(data []byte) error {
	type alias Item
	aux := struct {
		*alias
		Image string          `json:"image,omitempty"`
		Cost  json.RawMessage `json:"cost,omitempty"`
	}{alias: (*alias)(it)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(it.Images) == 0 && aux.Image != "" {
		it.Images = []string{aux.Image}
	}
	it.Cost = coerceCost(aux.Cost)
	return nil
}

func coerceCost(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	}
	return 0
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := Document{Days: make([]*Day, 0, len(d.Days))}
	for _, day := range d.Days {
		if day == nil {
			continue
		}
		cp := &Day{Date: day.Date, BgColor: day.BgColor, Items: make([]*Item, 0, len(day.Items))}
		for _, it := range day.Items {
			if it == nil {
				continue
			}
			ic := *it
			ic.Images = append([]string(nil), it.Images...)
			ic.Tags = append([]string(nil), it.Tags...)
			cp.Items = append(cp.Items, &ic)
		}
		out.Days = append(out.Days, cp)
	}
	return out
}

// TotalItems counts items across every day.
func (d Document) TotalItems() int {
	n := 0
	for _, day := range d.Days {
		n += len(day.Items)
	}
	return n
}

// Normalize repairs the uniqueness invariants the document shape assumes
// but external input cannot be trusted to hold: days sharing a date are
// merged into the first occurrence (its bgcolor wins), and an item whose
// id was already seen is dropped, keeping the first. Scan order matches
// the order every other operation uses, so first-match-wins is consistent
// throughout.
func (d *Document) Normalize() {
	byDate := make(map[string]*Day, len(d.Days))
	days := make([]*Day, 0, len(d.Days))
	seen := make(map[string]bool)
	for _, day := range d.Days {
		if day == nil {
			continue
		}
		target, ok := byDate[day.Date]
		if !ok {
			target = &Day{Date: day.Date, BgColor: day.BgColor}
			byDate[day.Date] = target
			days = append(days, target)
		}
		for _, it := range day.Items {
			if it == nil {
				continue
			}
			if it.ID != "" {
				if seen[it.ID] {
					continue
				}
				seen[it.ID] = true
			}
			target.Items = append(target.Items, it)
		}
	}
	for _, day := range days {
		if day.Items == nil {
			day.Items = []*Item{}
		}
	}
	d.Days = days
}
