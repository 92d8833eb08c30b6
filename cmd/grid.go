package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"inspecto.dev/pkg/inspecto/internal/domain"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

var gridRowsFlag int
var gridColumnsFlag int
var gridCellSizeFlag int
var gridNoUpscaleFlag bool
var gridSheetFlag string

const gridLongDescription = `Arrange arbitrary images in a free-form grid, in the order given.

The grid grows extra rows when more images are given than rows x columns.
Unsupported files and duplicates are skipped.`

// gridCmd represents the grid command.
var gridCmd *cobra.Command

func newGridCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid [images...]",
		Short: "Arrange images in a free-form grid",
		Long:  gridLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Grid(cmd.Context(), domain.GridArgs{
				Images:     parsePaths(args),
				Rows:       viper.GetInt(freeFormRowsKey),
				Columns:    viper.GetInt(freeFormColumnsKey),
				CellSize:   viper.GetInt(freeFormCellSizeKey),
				NoUpscale:  viper.GetBool(freeFormNoUpscaleKey),
				Sheet:      m.Path(gridSheetFlag),
				Extensions: viper.GetStringSlice(freeFormExtensionsKey),
			})
		},
	}

	configureGridFlags(cmd)

	return cmd
}

func init() {
	gridCmd = newGridCmd()
	rootCmd.AddCommand(gridCmd)
}

func configureGridFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&gridRowsFlag, rowsFlagName, "r", viper.GetInt(freeFormRowsKey), "minimum number of rows")
	bindFlagToConfig(cmd.Flags().Lookup(rowsFlagName), freeFormRowsKey)

	cmd.Flags().IntVarP(&gridColumnsFlag, columnsFlagName, "c", viper.GetInt(freeFormColumnsKey), "number of columns")
	bindFlagToConfig(cmd.Flags().Lookup(columnsFlagName), freeFormColumnsKey)

	cmd.Flags().IntVar(&gridCellSizeFlag, cellSizeFlagName, viper.GetInt(freeFormCellSizeKey), "cell edge in pixels for the rendered sheet")
	bindFlagToConfig(cmd.Flags().Lookup(cellSizeFlagName), freeFormCellSizeKey)

	cmd.Flags().BoolVar(&gridNoUpscaleFlag, noUpscaleFlagName, viper.GetBool(freeFormNoUpscaleKey), "never enlarge images smaller than the cell")
	bindFlagToConfig(cmd.Flags().Lookup(noUpscaleFlagName), freeFormNoUpscaleKey)

	cmd.Flags().StringVar(&gridSheetFlag, sheetFlagName, "", "write the grid as a PNG to this path")
}
