package store

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/peterbourgon/diskv/v3"

	"github.com/itinerist/trip/pkg/itinerary"
)

// storageKey is the fixed key the whole document lives under.
const storageKey = "itinerary-v1"

// defaultDocument is the bundled itinerary used on first run, before
// anything has been persisted.
//
//go:embed data/itinerary.json
var defaultDocument []byte

// Persistence is the gateway the rest of the system loads and saves the
// document through. Save is synchronous and its error is the caller's to
// observe.
type Persistence interface {
	Load(ctx context.Context) (itinerary.Document, bool, error)
	Save(doc itinerary.Document) error
	Path() string
}

// Load creates a Persistence backed by diskv using the provided config.
// A nil config falls back to LoadConfig.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Load returns the persisted document, or the bundled default on first
// run. The default is persisted immediately so later loads hit the store.
// The bool reports whether a persisted copy already existed. A bundled
// default that fails to decode is fatal to startup.
func (p *persistence) Load(_ context.Context) (itinerary.Document, bool, error) {
	if !p.d.Has(storageKey) {
		doc, err := itinerary.Unmarshal(defaultDocument)
		if err != nil {
			return itinerary.Document{}, false, fmt.Errorf("store: bundled default document: %w", err)
		}
		if err := p.Save(doc); err != nil {
			return itinerary.Document{}, false, err
		}
		return doc, false, nil
	}

	data, err := p.d.Read(storageKey)
	if err != nil {
		return itinerary.Document{}, false, fmt.Errorf("store: read %s: %w", storageKey, err)
	}
	doc, err := itinerary.Unmarshal(data)
	if err != nil {
		return itinerary.Document{}, false, fmt.Errorf("store: decode %s: %w", storageKey, err)
	}
	return doc, true, nil
}

func (p *persistence) Save(doc itinerary.Document) error {
	data, err := itinerary.Marshal(doc)
	if err != nil {
		return err
	}
	if err := p.d.Write(storageKey, data); err != nil {
		return fmt.Errorf("store: write %s: %w", storageKey, err)
	}
	return nil
}

func (p *persistence) Path() string {
	return p.basePath
}
