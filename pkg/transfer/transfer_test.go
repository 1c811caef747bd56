package transfer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/itinerist/trip/pkg/itinerary"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	return func() { _ = os.Chdir(old) }
}

func fixture() itinerary.Document {
	return itinerary.Document{Days: []*itinerary.Day{
		{Date: "2024-01-01", BgColor: "#fff7e6", Items: []*itinerary.Item{
			{ID: "a", Time: "09:00", Title: "Temple", Cost: 100, Tags: []string{"culture"}},
		}},
		{Date: "2024-01-02", Items: []*itinerary.Item{
			{ID: "b", Time: "08:00", Title: "Beach", Tags: []string{"relax"}},
		}},
	}}
}

func TestExportImportRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, fixture()); err != nil {
		t.Fatalf("export: %v", err)
	}

	// Pretty-printed, not a single line.
	if !strings.Contains(buf.String(), "\n  ") {
		t.Fatalf("export should be indented:\n%s", buf.String())
	}

	got, err := Import(&buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !reflect.DeepEqual(got, fixture()) {
		t.Fatalf("round trip changed the document:\n%#v", got)
	}
}

func TestExportFileDefaultsName(t *testing.T) {
	dir := t.TempDir()
	cwd := chdir(t, dir)
	defer cwd()

	path, err := ExportFile("", fixture())
	if err != nil {
		t.Fatalf("export file: %v", err)
	}
	if path != DefaultExportName {
		t.Fatalf("default export name = %q, want %q", path, DefaultExportName)
	}

	got, err := ImportFile(filepath.Join(dir, DefaultExportName))
	if err != nil {
		t.Fatalf("import file: %v", err)
	}
	if got.TotalItems() != 2 {
		t.Fatalf("exported file holds %d items, want 2", got.TotalItems())
	}
}

func TestImportMalformed(t *testing.T) {
	_, err := Import(strings.NewReader("{not json"))
	if err == nil {
		t.Fatalf("expected parse failure")
	}
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("parse failure should wrap ErrMalformed, got %v", err)
	}
}

func TestImportNormalizes(t *testing.T) {
	raw := `{"days":[
		{"date":"2024-01-01","items":[{"id":"a","title":"A"}]},
		{"date":"2024-01-01","items":[{"id":"a","title":"dup"},{"id":"b","title":"B"}]}
	]}`
	got, err := Import(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(got.Days) != 1 {
		t.Fatalf("duplicate days should merge, got %d days", len(got.Days))
	}
	if got.TotalItems() != 2 {
		t.Fatalf("duplicate ids should drop, got %d items", got.TotalItems())
	}
}
