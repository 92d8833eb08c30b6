package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"inspecto.dev/pkg/inspecto/internal/domain"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

var scanColumnsFlag int
var scanWidthFlag int
var scanSheetFlag string
var scanManifestFlag string

const scanLongDescription = `Scan a corpus root, decode every image and show one block per tag.

On a terminal the result opens in an interactive tag browser; otherwise a
summary table is printed. Use --sheet to also render a PNG contact sheet and
--manifest to write the corpus layout as YAML.`

// scanCmd represents the scan command.
var scanCmd *cobra.Command

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <root>",
		Short: "Scan a corpus and compare images by tag",
		Long:  scanLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Scan(cmd.Context(), domain.ScanArgs{
				Root:     m.Path(args[0]),
				Layout:   gridLayout(),
				Sheet:    m.Path(scanSheetFlag),
				Manifest: m.Path(scanManifestFlag),
			})
		},
	}

	configureScanFlags(cmd)

	return cmd
}

func init() {
	scanCmd = newScanCmd()
	rootCmd.AddCommand(scanCmd)
}

func configureScanFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&scanColumnsFlag, columnsFlagName, "c", viper.GetInt(maxColumnsKey), "maximum images per row (1-10)")
	bindFlagToConfig(cmd.Flags().Lookup(columnsFlagName), maxColumnsKey)

	cmd.Flags().IntVarP(&scanWidthFlag, widthFlagName, "w", viper.GetInt(imageWidthKey), "display width of each image in pixels (50-1000)")
	bindFlagToConfig(cmd.Flags().Lookup(widthFlagName), imageWidthKey)

	cmd.Flags().StringVar(&scanSheetFlag, sheetFlagName, "", "write a PNG contact sheet to this path")
	cmd.Flags().StringVar(&scanManifestFlag, manifestFlagName, "", "write a YAML manifest to this path")
}
