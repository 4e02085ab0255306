package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/abhishek622/portfolioapp/feedback/pkg/client"
	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/spf13/cobra"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	File string
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <ratings|comments>",
		Short: "Import feedback saved in the old single-object browser layout",
		Long: `Import feedback saved in the old single-object browser layout into the
local store.

The layout maps "<itemType>_<itemId>" to a list of records. By default it is
read from the local store itself; use --file to read an exported copy.
Importing the same data twice changes nothing.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(model.KindRating), string(model.KindComment)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := model.Kind(args[0])
			if kind != model.KindRating && kind != model.KindComment {
				return fmt.Errorf("%w: unknown record kind %q", client.ErrInvalidInput, args[0])
			}
			var raw []byte
			if opts.File != "" {
				var err error
				if raw, err = os.ReadFile(opts.File); err != nil {
					return err
				}
			}
			e, err := opts.env(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			report, err := client.ImportLegacy(cmd.Context(), e.backend, kind, raw, e.logger)
			if err != nil {
				return err
			}
			return e.out.Print(report, func(w io.Writer) {
				printf(w, "Imported %d %s across %d items, skipped %d\n", report.Imported, kind, report.Items, report.Skipped)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "read the layout from this JSON file")

	return cmd
}
