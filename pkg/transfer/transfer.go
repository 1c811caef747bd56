// Package transfer moves whole documents in and out of the system as
// JSON blobs.
package transfer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/itinerist/trip/pkg/itinerary"
)

// ErrMalformed marks an import payload that failed to parse. The current
// document is untouched when this is returned.
var ErrMalformed = errors.New("transfer: malformed document")

// DefaultExportName is the fixed filename exports land in when no path is
// given.
const DefaultExportName = "itinerary.json"

// Export writes the entire document pretty-printed. No filtering is ever
// applied; days and items outside any active filter are included.
func Export(w io.Writer, doc itinerary.Document) error {
	data, err := itinerary.MarshalIndent(doc)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// ExportFile writes the document to path, defaulting to
// DefaultExportName.
func ExportFile(path string, doc itinerary.Document) (string, error) {
	if path == "" {
		path = DefaultExportName
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := Export(f, doc); err != nil {
		_ = f.Close()
		return "", err
	}
	return path, f.Close()
}

// Import parses an externally supplied document. The result replaces the
// current document wholesale; nothing is merged. A parse failure wraps
// ErrMalformed so callers can report it distinctly and abort without side
// effects.
func Import(r io.Reader) (itinerary.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return itinerary.Document{}, err
	}
	doc, err := itinerary.Unmarshal(data)
	if err != nil {
		return itinerary.Document{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return doc, nil
}

// ImportFile reads and parses the file at path.
func ImportFile(path string) (itinerary.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return itinerary.Document{}, err
	}
	defer f.Close()
	return Import(f)
}
