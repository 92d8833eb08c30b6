// Package cmd provides the root command and CLI setup for inspecto.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"inspecto.dev/pkg/inspecto/internal/adapter"
	"inspecto.dev/pkg/inspecto/internal/controller"
	"inspecto.dev/pkg/inspecto/internal/domain"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

var fsAdapter adapter.ImageFSAdapter
var codecAdapter adapter.ImageCodecAdapter
var licenseStore adapter.LicenseStore
var entitlements domain.Entitlements
var loader domain.Loader
var workflow domain.Workflow
var ui controller.UI

// logFileFlag overrides log.filename for a single run.
var logFileFlag string

// verboseFlag switches logging to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalImageFSAdapter()
	codecAdapter = adapter.NewLocalImageCodecAdapter()
	licenseStore = adapter.NewFileLicenseStore(licensePath())
	entitlements = domain.NewEntitlements(licenseStore, newKeyVerifier())
	loader = domain.NewLoader(
		domain.NewScanner(
			fsAdapter,
			domain.WithSamplePrefix(viper.GetString(samplePrefixKey)),
			domain.WithExtensions(viper.GetStringSlice(scanExtensionsKey)...),
		),
		domain.NewMaterializer(codecAdapter),
	)
	workflow = domain.NewWorkflow(
		adapter.NewPNGSheetRenderer(codecAdapter),
		adapter.NewYAMLManifestStore(),
		adapter.NewSystemOpener(),
		ui,
		loader,
		domain.NewExporter(entitlements, adapter.NewPDFDeckWriter(codecAdapter)),
		entitlements,
	)
}

const rootLongDescription = `Inspecto compares images of the same subject across several samples.

A corpus root holds one directory per sample whose name starts with the
configured prefix (ED by default). Images with the same file name in
different samples share a tag; each tag is shown as one block with one cell
per sample, in sample order.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

// newRootCmd builds a root command with its persistent flags.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspecto",
		Short: "Visual comparison of image samples",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// An interrupt cancels the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// gridLayout reads the scan grid settings, clamped to the supported range.
func gridLayout() m.Layout {
	return m.Layout{
		MaxColumns: clamp(viper.GetInt(maxColumnsKey), minMaxColumns, maxMaxColumns),
		ImageWidth: clamp(viper.GetInt(imageWidthKey), minImageWidth, maxImageWidth),
	}
}

func licensePath() m.Path {
	if path := viper.GetString(licenseFileKey); path != "" {
		return m.Path(path)
	}

	return adapter.DefaultLicensePath()
}

func newKeyVerifier() domain.KeyVerifier {
	if viper.GetString(licenseSchemeKey) == licenseSchemeHMAC {
		return domain.NewHMACVerifier(viper.GetString(licenseSecretKey))
	}

	return domain.NewHashListVerifier(viper.GetStringSlice(licenseKeyHashesKey)...)
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
