package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/itinerist/trip/pkg/app"
	"github.com/itinerist/trip/pkg/printers"
	"github.com/itinerist/trip/pkg/view"
)

// Get prints the filtered, sorted item view with its summary and tag
// chips.
type Get struct {
	Filter view.Filter
	ShowID bool
	JSON   bool
	HTML   bool

	Store *app.Store
}

const layoutISO = "2006-01-02"

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}
	if n.Filter.Day == "today" {
		n.Filter.Day = time.Now().Format(layoutISO)
	}

	v := view.Build(n.Store.Document(), n.Filter)

	if n.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	if n.HTML {
		return printers.HTML(os.Stdout, v)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	title := "Itinerary"
	if n.Filter.Day != "" {
		title = n.Filter.Day
	}
	pp.Title(title)
	pp.Items(v.Items...)
	pp.Tags(v.AllTags, n.Filter.Tags)
	pp.Summary(v, n.Filter.Day)

	return nil
}
