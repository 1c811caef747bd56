package info

import (
	"context"
	"fmt"
	"os"

	"github.com/itinerist/trip/pkg/app"
	"github.com/itinerist/trip/pkg/store"
	"github.com/itinerist/trip/pkg/view"
)

// Info reports where the itinerary is stored and what it holds.
type Info struct {
	Config      store.Config
	Persistence store.Persistence

	Store *app.Store
}

func (n *Info) Do(ctx context.Context) error {

	if override := os.Getenv("TRIP_CONFIG_PATH"); override != "" {
		fmt.Println("TRIP_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Println("TRIP_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Println("Config.path: ", n.Config.BasePath())

	if n.Store == nil {
		return fmt.Errorf("failed to create store")
	}

	doc := n.Store.Document()
	fmt.Printf("Days: %d\n", len(doc.Days))
	fmt.Printf("Items: %d\n", doc.TotalItems())
	fmt.Printf("Tags: %d\n", len(view.AllTags(doc)))

	return nil
}
