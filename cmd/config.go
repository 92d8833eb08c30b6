package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "inspecto"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	columnsFlagName   = "columns"
	widthFlagName     = "width"
	sheetFlagName     = "sheet"
	manifestFlagName  = "manifest"
	fileFlagName      = "file"
	openFlagName      = "open"
	rowsFlagName      = "rows"
	cellSizeFlagName  = "cell-size"
	noUpscaleFlagName = "no-upscale"
	logFileFlagName   = "log-file"
	verboseFlagName   = "verbose"

	maxColumnsKey         = "grid.max_columns"
	imageWidthKey         = "grid.image_width"
	samplePrefixKey       = "scan.sample_prefix"
	scanExtensionsKey     = "scan.extensions"
	freeFormRowsKey       = "freeform.rows"
	freeFormColumnsKey    = "freeform.columns"
	freeFormCellSizeKey   = "freeform.cell_size"
	freeFormNoUpscaleKey  = "freeform.no_upscale"
	freeFormExtensionsKey = "freeform.extensions"
	licenseFileKey        = "license.file"
	licenseSchemeKey      = "license.scheme"
	licenseKeyHashesKey   = "license.key_hashes"
	licenseSecretKey      = "license.secret"

	defaultMaxColumns        = 4
	defaultImageWidth        = 350
	defaultSamplePrefix      = "ED"
	defaultFreeFormRows      = 3
	defaultFreeFormColumns   = 4
	defaultFreeFormCellSize  = 200
	defaultFreeFormNoUpscale = false
	defaultLicenseScheme     = licenseSchemeHash

	licenseSchemeHash = "hash"
	licenseSchemeHMAC = "hmac"

	// Bounds accepted for the scan grid.
	minMaxColumns = 1
	maxMaxColumns = 10
	minImageWidth = 50
	maxImageWidth = 1000

	envPrefix = "INSPECTO"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".inspecto.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var (
	defaultScanExtensions     = []string{".jpg", ".jpeg", ".png"}
	defaultFreeFormExtensions = []string{".jpg", ".jpeg", ".png", ".bmp"}
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(maxColumnsKey, defaultMaxColumns)
	viper.SetDefault(imageWidthKey, defaultImageWidth)
	viper.SetDefault(samplePrefixKey, defaultSamplePrefix)
	viper.SetDefault(scanExtensionsKey, defaultScanExtensions)
	viper.SetDefault(freeFormRowsKey, defaultFreeFormRows)
	viper.SetDefault(freeFormColumnsKey, defaultFreeFormColumns)
	viper.SetDefault(freeFormCellSizeKey, defaultFreeFormCellSize)
	viper.SetDefault(freeFormNoUpscaleKey, defaultFreeFormNoUpscale)
	viper.SetDefault(freeFormExtensionsKey, defaultFreeFormExtensions)
	viper.SetDefault(licenseFileKey, "")
	viper.SetDefault(licenseSchemeKey, defaultLicenseScheme)
	viper.SetDefault(licenseKeyHashesKey, []string{})
	viper.SetDefault(licenseSecretKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// clamp keeps a configured value inside [low, high].
func clamp(value, low, high int) int {
	return min(max(value, low), high)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
