package remove

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"github.com/itinerist/trip/pkg/app"
)

// Remove deletes one item by id. An unknown id is not an error.
type Remove struct {
	ID string

	Store *app.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove, no store")
	}
	if n.ID == "" {
		return errors.New("an id is required")
	}

	removed, err := n.Store.Remove(n.ID)
	if err != nil {
		return err
	}

	f := color.New(color.Faint)
	if removed {
		_, _ = f.Printf("removed %s\n", n.ID)
	} else {
		_, _ = f.Printf("no item with id %s\n", n.ID)
	}
	return nil
}
