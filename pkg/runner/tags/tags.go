package tags

import (
	"context"
	"errors"
	"fmt"

	"github.com/itinerist/trip/pkg/app"
	"github.com/itinerist/trip/pkg/printers"
	"github.com/itinerist/trip/pkg/view"
)

// Tags lists every tag appearing anywhere in the document.
type Tags struct {
	Store *app.Store
}

func (n *Tags) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not list tags, no store")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Tags")
	pp.Tags(view.AllTags(n.Store.Document()), nil)
	return nil
}
