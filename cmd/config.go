package cmd

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"cmerge.dev/pkg/cmerge/internal/adapter"
	"cmerge.dev/pkg/cmerge/internal/controller"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "cmerge"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outDirFlagName       = "out_dir"
	inDirFlagName        = "in_dir"
	autoFlagName         = "auto"
	sourceInlineFlagName = "source_inline"
	inlineOtherFlagName  = "inline_other"
	verbosityFlagName    = "verbosity"
	parallelFlagName     = "parallel"
	excludeFlagName      = "exclude"
	manifestFlagName     = "manifest"
	dryRunFlagName       = "dry_run"
	logFileFlagName      = "log_file"

	outDirConfigKey       = "paths.out_dir"
	inDirConfigKey        = "paths.in_dir"
	autoConfigKey         = "paths.auto"
	excludeConfigKey      = "paths.exclude"
	sourceInlineConfigKey = "merge.source_inline"
	inlineOtherConfigKey  = "merge.inline_other"
	parallelConfigKey     = "merge.parallel"
	manifestConfigKey     = "merge.manifest"

	defaultOutDir       = "merged/"
	defaultInDir        = "./"
	defaultAuto         = false
	defaultSourceInline = false
	defaultInlineOther  = false
	defaultParallel     = 1
	defaultManifest     = ""

	envPrefix = "CMERGE"

	logVerbosityKey  = "log.verbosity"
	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogVerbosity  = 0
	defaultLogFilename   = ""
	defaultLogLevel      = "info"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	initConfig()
}

// initConfig registers the config file location, environment binding and
// defaults on the global viper instance.
func initConfig() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outDirConfigKey, defaultOutDir)
	viper.SetDefault(inDirConfigKey, defaultInDir)
	viper.SetDefault(autoConfigKey, defaultAuto)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(sourceInlineConfigKey, defaultSourceInline)
	viper.SetDefault(inlineOtherConfigKey, defaultInlineOther)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(manifestConfigKey, defaultManifest)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logVerbosityKey, defaultLogVerbosity)
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	// A missing or unreadable config file leaves defaults, env and flags in charge.
	_ = viper.ReadInConfig()
}

// verbosityLevel maps the -v count onto the severity floor:
// 0 error, 1 warning, 2 info, 3 or more debug.
func verbosityLevel(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelError
	case verbosity == 1:
		return slog.LevelWarn
	case verbosity == 2:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
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

// configureLogger builds the diagnostics logger and installs it as the slog
// default. Diagnostics go to errOut filtered by verbosity; when logPath is
// set every record at log.level or above is also written to a rotating file.
func configureLogger(errOut io.Writer, verbosity int, logPath string) *slog.Logger {
	handlers := []slog.Handler{
		adapter.NewDiagHandler(errOut, verbosityLevel(verbosity), isTerminal(errOut)),
	}

	if strings.TrimSpace(logPath) != "" {
		logWriter := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		}

		handlers = append(handlers, slog.NewTextHandler(logWriter, &slog.HandlerOptions{
			AddSource: true,
			Level:     parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo),
		}))
	}

	globalLogger = slog.New(adapter.NewTeeHandler(handlers...))
	slog.SetDefault(globalLogger)

	return globalLogger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return controller.IsTTY(f)
}
