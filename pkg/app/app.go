// Package app owns the in-memory itinerary document and enforces its
// structural invariants. A Store is an explicit handle passed to every
// operation that needs the document; there is no package-level singleton.
package app

import (
	"context"
	"errors"

	"github.com/itinerist/trip/pkg/ident"
	"github.com/itinerist/trip/pkg/itinerary"
	"github.com/itinerist/trip/pkg/store"
)

// Store holds the document plus indexes over its uniqueness keys
// (date -> day, item id -> owning day), maintained alongside the ordered
// slices. Every mutation persists the whole document synchronously; a
// persist failure rolls the in-memory state back, so mutations are atomic
// from the caller's perspective.
type Store struct {
	doc         itinerary.Document
	persistence store.Persistence

	days  map[string]*itinerary.Day
	items map[string]*itinerary.Day
}

// New loads the document through the persistence gateway and wraps it in
// a Store. The initial load completes before any operation runs; a failed
// load is fatal to startup.
func New(ctx context.Context, p store.Persistence) (*Store, error) {
	if p == nil {
		return nil, errors.New("app: no persistence")
	}
	doc, _, err := p.Load(ctx)
	if err != nil {
		return nil, err
	}
	s := &Store{doc: doc, persistence: p}
	s.reindex()
	return s, nil
}

// NewFromDocument wraps an already-normalized document. Used by tests.
func NewFromDocument(doc itinerary.Document, p store.Persistence) *Store {
	doc.Normalize()
	s := &Store{doc: doc, persistence: p}
	s.reindex()
	return s
}

func (s *Store) reindex() {
	s.days = make(map[string]*itinerary.Day, len(s.doc.Days))
	s.items = make(map[string]*itinerary.Day)
	for _, day := range s.doc.Days {
		if _, ok := s.days[day.Date]; !ok {
			s.days[day.Date] = day
		}
		for _, it := range day.Items {
			if _, ok := s.items[it.ID]; !ok {
				s.items[it.ID] = day
			}
		}
	}
}

// Document returns the current document. Callers must treat it as
// read-only; mutations go through the Store.
func (s *Store) Document() itinerary.Document {
	return s.doc
}

// Days returns the day keys in document order.
func (s *Store) Days() []string {
	keys := make([]string, 0, len(s.doc.Days))
	for _, day := range s.doc.Days {
		keys = append(keys, day.Date)
	}
	return keys
}

// Payload carries the full set of tracked item fields for an upsert.
// Upsert writes exactly these fields verbatim; anything else an item once
// carried is dropped, a full overwrite rather than a merge.
type Payload struct {
	ID     string
	Day    string
	Time   string
	Title  string
	Note   string
	Cost   float64
	Tags   []string
	Link   string
	Map    string
	Images []string
}

// Upsert creates or replaces an item. An empty ID gets a generated one.
// The target day is created when absent; days are never auto-deleted. If
// the id already exists it is removed from its current day first, so a
// changed day relocates the item and an unchanged day re-appends it at
// the end of the list. The document is persisted before the mutation is
// considered applied.
func (s *Store) Upsert(p Payload) (*itinerary.Item, error) {
	if p.Day == "" {
		return nil, errors.New("app: target day required")
	}
	if p.Title == "" {
		return nil, errors.New("app: title required")
	}
	id := p.ID
	if id == "" {
		id = ident.New()
	}

	prev := s.doc.Clone()

	day, ok := s.days[p.Day]
	if !ok {
		day = &itinerary.Day{Date: p.Day, Items: []*itinerary.Item{}}
		s.doc.Days = append(s.doc.Days, day)
		s.days[p.Day] = day
	}

	if old, ok := s.items[id]; ok {
		old.Items = withoutItem(old.Items, id)
	}

	item := &itinerary.Item{
		ID:     id,
		Time:   p.Time,
		Title:  p.Title,
		Images: append([]string(nil), p.Images...),
		Link:   p.Link,
		Map:    p.Map,
		Note:   p.Note,
		Cost:   p.Cost,
		Tags:   append([]string(nil), p.Tags...),
	}
	day.Items = append(day.Items, item)
	s.items[id] = day

	if err := s.persistence.Save(s.doc); err != nil {
		s.doc = prev
		s.reindex()
		return nil, err
	}
	return item, nil
}

// Remove deletes the item with the given id from the first day that holds
// it, scanning days in document order. An unknown id is a benign no-op,
// reported as false, but the document is still persisted.
func (s *Store) Remove(id string) (bool, error) {
	prev := s.doc.Clone()

	removed := false
	for _, day := range s.doc.Days {
		before := len(day.Items)
		day.Items = withoutItem(day.Items, id)
		if len(day.Items) != before {
			removed = true
			break
		}
	}
	delete(s.items, id)

	if err := s.persistence.Save(s.doc); err != nil {
		s.doc = prev
		s.reindex()
		return false, err
	}
	return removed, nil
}

// FindByID returns the item and its owning day, scanning days then items
// in order. First match wins.
func (s *Store) FindByID(id string) (*itinerary.Item, *itinerary.Day, bool) {
	for _, day := range s.doc.Days {
		for _, it := range day.Items {
			if it.ID == id {
				return it, day, true
			}
		}
	}
	return nil, nil, false
}

// Replace swaps the whole document, normalizes it, and persists. Used by
// import. On a persist failure the previous document is restored
// untouched.
func (s *Store) Replace(doc itinerary.Document) error {
	prev := s.doc

	doc.Normalize()
	s.doc = doc
	s.reindex()

	if err := s.persistence.Save(s.doc); err != nil {
		s.doc = prev
		s.reindex()
		return err
	}
	return nil
}

func withoutItem(items []*itinerary.Item, id string) []*itinerary.Item {
	out := items[:0]
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}
