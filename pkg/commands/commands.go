package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/itinerist/trip/pkg/app"
	"github.com/itinerist/trip/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "trip",
		Short: base.Wrap80("Plan and browse a trip itinerary on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addGet(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addDays(topLevel)
	addTags(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addInfo(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

// loadStore opens the persistence gateway and loads the document into a
// store. The load completes before any command logic runs.
func loadStore(ctx context.Context) (*app.Store, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return app.New(ctx, p)
}

func dayCompletions(toComplete string) []string {
	s, err := loadStore(context.Background())
	if err != nil {
		return nil
	}
	days := make([]string, 0)
	for _, d := range s.Days() {
		if strings.HasPrefix(d, toComplete) {
			days = append(days, d)
		}
	}
	return days
}
