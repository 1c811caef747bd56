package view

import (
	"reflect"
	"testing"

	"github.com/itinerist/trip/pkg/itinerary"
)

func fixture() itinerary.Document {
	return itinerary.Document{Days: []*itinerary.Day{
		{Date: "2024-01-02", Items: []*itinerary.Item{
			{ID: "b", Time: "08:00", Title: "Beach", Cost: 0, Tags: []string{"relax"}},
			{ID: "c", Time: "12:00", Title: "Seafood lunch", Note: "book ahead", Cost: 40, Tags: []string{"food", "relax"}},
		}},
		{Date: "2024-01-01", BgColor: "#fff7e6", Items: []*itinerary.Item{
			{ID: "a", Time: "09:00", Title: "Temple", Cost: 100, Tags: []string{"culture"}},
			{ID: "d", Title: "Packing", Tags: []string{"prep"}},
		}},
	}}
}

func ids(items []ItemView) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestBuildNoFilter(t *testing.T) {
	v := Build(fixture(), Filter{})

	// Day ascending, then time ascending with missing time first.
	want := []string{"d", "a", "b", "c"}
	if got := ids(v.Items); !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	if v.Count != 4 {
		t.Fatalf("count = %d, want 4", v.Count)
	}
	if v.TotalCost != 140 {
		t.Fatalf("total cost = %v, want 140", v.TotalCost)
	}
	if want := []string{"culture", "food", "prep", "relax"}; !reflect.DeepEqual(v.AllTags, want) {
		t.Fatalf("all tags = %v, want %v", v.AllTags, want)
	}
}

func TestBuildDayFilter(t *testing.T) {
	v := Build(fixture(), Filter{Day: "2024-01-02"})
	if got, want := ids(v.Items), []string{"b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	if v.TotalCost != 40 {
		t.Fatalf("total cost = %v, want 40", v.TotalCost)
	}
	// AllTags ignores the filter; it is always document-wide.
	if want := []string{"culture", "food", "prep", "relax"}; !reflect.DeepEqual(v.AllTags, want) {
		t.Fatalf("all tags = %v, want %v", v.AllTags, want)
	}
}

func TestBuildQueryFilter(t *testing.T) {
	// Case-insensitive substring over day, time, title, note and tags.
	cases := []struct {
		query string
		want  []string
	}{
		{"TEMPLE", []string{"a"}},
		{"book ahead", []string{"c"}},
		{"2024-01-01", []string{"d", "a"}},
		{"relax", []string{"b", "c"}},
		{"  beach  ", []string{"b"}},
		{"nothing matches this", []string{}},
	}
	for _, tc := range cases {
		v := Build(fixture(), Filter{Query: tc.query})
		if got := ids(v.Items); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("query %q: order = %v, want %v", tc.query, got, tc.want)
		}
		if v.Count != len(tc.want) {
			t.Fatalf("query %q: count = %d, want %d", tc.query, v.Count, len(tc.want))
		}
	}
}

func TestBuildTagFilterRequiresAll(t *testing.T) {
	v := Build(fixture(), Filter{Tags: []string{"relax"}})
	if got, want := ids(v.Items), []string{"b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}

	// AND semantics: both tags must be present.
	v = Build(fixture(), Filter{Tags: []string{"relax", "food"}})
	if got, want := ids(v.Items), []string{"c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestBuildSortStability(t *testing.T) {
	doc := itinerary.Document{Days: []*itinerary.Day{
		{Date: "2024-01-01", Items: []*itinerary.Item{
			{ID: "x", Time: "09:00", Title: "First"},
			{ID: "y", Time: "09:00", Title: "Second"},
			{ID: "z", Time: "09:00", Title: "Third"},
		}},
	}}
	v := Build(doc, Filter{})
	if got, want := ids(v.Items), []string{"x", "y", "z"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ties must keep source order: got %v, want %v", got, want)
	}
}

func TestBuildAnnotationsAreEphemeral(t *testing.T) {
	doc := fixture()
	v := Build(doc, Filter{})

	for _, iv := range v.Items {
		if iv.ID == "a" {
			if iv.Day != "2024-01-01" || iv.BgColor != "#fff7e6" {
				t.Fatalf("annotation wrong: day=%q bgcolor=%q", iv.Day, iv.BgColor)
			}
		}
	}

	// Mutating the projection must not touch the stored document.
	v.Items[0].Title = "changed"
	for _, day := range doc.Days {
		for _, it := range day.Items {
			if it.Title == "changed" {
				t.Fatalf("projection leaked into the stored item")
			}
		}
	}
}

func TestBuildTwoDayDocument(t *testing.T) {
	doc := itinerary.Document{Days: []*itinerary.Day{
		{Date: "2024-01-01", Items: []*itinerary.Item{
			{ID: "a", Time: "09:00", Title: "Temple", Cost: 100, Tags: []string{"culture"}},
		}},
		{Date: "2024-01-02", Items: []*itinerary.Item{
			{ID: "b", Time: "08:00", Title: "Beach", Cost: 0, Tags: []string{"relax"}},
		}},
	}}
	v := Build(doc, Filter{})
	if got, want := ids(v.Items), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	if v.TotalCost != 100 {
		t.Fatalf("total cost = %v, want 100", v.TotalCost)
	}
	if want := []string{"culture", "relax"}; !reflect.DeepEqual(v.AllTags, want) {
		t.Fatalf("all tags = %v, want %v", v.AllTags, want)
	}
}
