// Package importer replaces the document from an external JSON file.
package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/itinerist/trip/pkg/app"
	"github.com/itinerist/trip/pkg/printers"
	"github.com/itinerist/trip/pkg/transfer"
	"github.com/itinerist/trip/pkg/view"
)

// Importer parses File and swaps the current document for its contents.
// On a parse failure the current document is left untouched.
type Importer struct {
	File string

	Store *app.Store
}

func (n *Importer) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not import, no store")
	}
	if n.File == "" {
		return errors.New("an import file is required")
	}

	doc, err := transfer.ImportFile(n.File)
	if err != nil {
		return err
	}
	if err := n.Store.Replace(doc); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Imported itinerary")
	pp.Days(n.Store.Document())
	v := view.Build(n.Store.Document(), view.Filter{})
	pp.Summary(v, "")
	return nil
}
