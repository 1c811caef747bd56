package days

import (
	"context"
	"errors"
	"fmt"

	"github.com/itinerist/trip/pkg/app"
	"github.com/itinerist/trip/pkg/printers"
)

// Days lists every day in document order with its item count.
type Days struct {
	Store *app.Store
}

func (n *Days) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not list days, no store")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Days")
	pp.Days(n.Store.Document())
	return nil
}
