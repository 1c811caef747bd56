package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/itinerist/trip/pkg/textutil"
	"github.com/itinerist/trip/pkg/view"
)

// HTML renders the view as markup cards. Every user-controlled field is
// escaped before it reaches the output.
func HTML(w io.Writer, v view.View) error {
	var b strings.Builder
	b.WriteString("<div class=\"items\">\n")
	for _, it := range v.Items {
		b.WriteString("  <div class=\"card\"")
		if it.BgColor != "" {
			fmt.Fprintf(&b, " style=\"background:%s\"", textutil.EscapeHTML(it.BgColor))
		}
		b.WriteString(">\n")
		fmt.Fprintf(&b, "    <div class=\"day\">%s</div>\n", textutil.EscapeHTML(it.Day))
		fmt.Fprintf(&b, "    <h3>%s</h3>\n", textutil.EscapeHTML(it.Title))
		if it.Time != "" {
			fmt.Fprintf(&b, "    <span class=\"time\">%s</span>\n", textutil.EscapeHTML(it.Time))
		}
		if it.Cost != 0 {
			fmt.Fprintf(&b, "    <span class=\"cost\">%s</span>\n", Cost(it.Cost))
		}
		if it.Note != "" {
			fmt.Fprintf(&b, "    <p>%s</p>\n", textutil.EscapeHTML(it.Note))
		}
		for _, t := range it.Tags {
			fmt.Fprintf(&b, "    <span class=\"tag\">#%s</span>\n", textutil.EscapeHTML(t))
		}
		if it.Link != "" {
			fmt.Fprintf(&b, "    <a href=\"%s\">link</a>\n", textutil.EscapeHTML(it.Link))
		}
		if it.Map != "" {
			fmt.Fprintf(&b, "    <a href=\"%s\">map</a>\n", textutil.EscapeHTML(it.Map))
		}
		for _, img := range it.Images {
			fmt.Fprintf(&b, "    <img src=\"%s\">\n", textutil.EscapeHTML(img))
		}
		b.WriteString("  </div>\n")
	}
	noun := "items"
	if v.Count == 1 {
		noun = "item"
	}
	fmt.Fprintf(&b, "  <div class=\"summary\">%d %s · total cost %s</div>\n", v.Count, noun, Cost(v.TotalCost))
	b.WriteString("</div>\n")
	_, err := io.WriteString(w, b.String())
	return err
}
