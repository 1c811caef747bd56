package upsert

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/itinerist/trip/pkg/app"
	"github.com/itinerist/trip/pkg/printers"
	"github.com/itinerist/trip/pkg/view"
)

// Upsert creates or replaces one item, moving it between days when the
// target day changed, then prints the target day's items.
type Upsert struct {
	Payload app.Payload
	ShowID  bool

	Store *app.Store
}

const layoutISO = "2006-01-02"

func (n *Upsert) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not upsert, no store")
	}
	if n.Payload.Day == "today" {
		n.Payload.Day = time.Now().Format(layoutISO)
	}

	item, err := n.Store.Upsert(n.Payload)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title(n.Payload.Day)

	v := view.Build(n.Store.Document(), view.Filter{Day: n.Payload.Day})
	pp.Items(v.Items...)
	pp.Summary(v, n.Payload.Day)

	f := color.New(color.Faint)
	_, _ = f.Printf("saved %s\n", item.ID)
	return nil
}
