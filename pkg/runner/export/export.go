package export

import (
	"context"
	"errors"
	"os"

	"github.com/fatih/color"

	"github.com/itinerist/trip/pkg/app"
	"github.com/itinerist/trip/pkg/transfer"
)

// Export writes the whole document as pretty JSON, to stdout when Output
// is "-", otherwise to a file (itinerary.json by default).
type Export struct {
	Output string

	Store *app.Store
}

func (n *Export) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not export, no store")
	}

	if n.Output == "-" {
		return transfer.Export(os.Stdout, n.Store.Document())
	}

	path, err := transfer.ExportFile(n.Output, n.Store.Document())
	if err != nil {
		return err
	}
	f := color.New(color.Faint)
	_, _ = f.Printf("exported to %s\n", path)
	return nil
}
