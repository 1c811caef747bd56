package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/itinerist/trip/pkg/runner/importer"
)

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the itinerary with one read from a JSON file.",
		Long: "Replace the itinerary with one read from a JSON file.\n\n" +
			"The file replaces the current document wholesale; nothing is " +
			"merged. A file that fails to parse leaves the current " +
			"itinerary untouched.",
		Example: `
trip import backup.json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := loadStore(context.Background())
			if err != nil {
				return err
			}
			r := importer.Importer{
				File:  args[0],
				Store: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
