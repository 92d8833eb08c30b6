package cmd

import (
	"github.com/spf13/cobra"

	"inspecto.dev/pkg/inspecto/internal/domain"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

const defaultDeckFile = "comparison.pdf"

var exportFileFlag string
var exportOpenFlag bool

const exportLongDescription = `Export a corpus as a slide deck with one slide per tag.

Requires an activated license. Press Ctrl-C to stop early; slides built
before the interrupt are still written but the deck is incomplete. Use
--open to show the finished deck in the system viewer.`

// exportCmd represents the export command.
var exportCmd *cobra.Command

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <root>",
		Short: "Export a corpus as a slide deck",
		Long:  exportLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Export(cmd.Context(), domain.ExportCorpusArgs{
				Root:   m.Path(args[0]),
				Layout: gridLayout(),
				Output: m.Path(exportFileFlag),
				Open:   exportOpenFlag,
			})
		},
	}

	cmd.Flags().StringVarP(&exportFileFlag, fileFlagName, "f", defaultDeckFile, "path of the PDF deck to write")
	cmd.Flags().BoolVar(&exportOpenFlag, openFlagName, false, "open the deck in the system viewer when done")

	return cmd
}

func init() {
	exportCmd = newExportCmd()
	rootCmd.AddCommand(exportCmd)
}
