// Package cmd provides the root command and CLI setup for cmerge.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cmerge.dev/pkg/cmerge/internal/adapter"
	"cmerge.dev/pkg/cmerge/internal/controller"
	"cmerge.dev/pkg/cmerge/internal/domain"
	m "cmerge.dev/pkg/cmerge/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var manifestStore adapter.ManifestStore

// newWorkflow builds the workflow for one command invocation. Tests replace it.
var newWorkflow = func(cmd *cobra.Command, logger *slog.Logger) domain.Workflow {
	return domain.NewWorkflow(
		fsAdapter,
		manifestStore,
		controller.NewSimpleUI(cmd),
		domain.NewMerger(logger),
		logger,
	)
}

var (
	outDirFlag       string
	inDirFlag        string
	autoFlag         bool
	sourceInlineFlag bool
	inlineOtherFlag  bool
	verbosityFlag    int
	parallelFlag     int
	excludePatterns  []string
	manifestFlag     string
	dryRunFlag       bool
	logFileFlag      string
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	manifestStore = adapter.NewManifestStore()
}

const rootLongDescription = `cmerge flattens compilation units (.c, .cpp) into standalone files by
replacing each #include directive with the content of the matching header
(.h, .hpp), recursively. Every header is inlined at most once per output,
include cycles are cut, and includes that match no known file are kept as-is.

Files are given relative to the input directory, or discovered with --auto.
Each flattened unit is written to the output directory at the same relative path.`

const rootExample = `  cmerge -i src -o merged main.cpp util.h util.cpp
  cmerge --auto --in_dir src --out_dir dist -vv
  cmerge -a -s -i src --dry_run`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "cmerge [files...]",
		Short:        "Inline local headers into standalone translation units",
		Long:         rootLongDescription,
		Example:      rootExample,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(cmd.ErrOrStderr(), viper.GetInt(logVerbosityKey), viper.GetString(logFilenameKey))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			planArgs := planArgsFromConfig(args)
			if len(planArgs.Files) == 0 && !planArgs.Auto {
				return cmd.Help()
			}

			return newWorkflow(cmd, globalLogger).Merge(cmd.Context(), domain.MergeArgs{
				PlanArgs: planArgs,
				OutDir:   m.Path(viper.GetString(outDirConfigKey)),
				Parallel: viper.GetInt(parallelConfigKey),
				DryRun:   dryRunFlag,
				Manifest: m.Path(viper.GetString(manifestConfigKey)),
			})
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	persistent := cmd.PersistentFlags()

	persistent.StringVarP(&inDirFlag, inDirFlagName, "i", viper.GetString(inDirConfigKey), "input directory; relative paths are resolved against it")
	bindFlagToConfig(persistent.Lookup(inDirFlagName), inDirConfigKey)

	persistent.BoolVarP(&autoFlag, autoFlagName, "a", viper.GetBool(autoConfigKey), "automatically search for files in the input directory")
	bindFlagToConfig(persistent.Lookup(autoFlagName), autoConfigKey)

	persistent.BoolVarP(&sourceInlineFlag, sourceInlineFlagName, "s", viper.GetBool(sourceInlineConfigKey), "inline source files (.cpp, .c) as well as headers")
	bindFlagToConfig(persistent.Lookup(sourceInlineFlagName), sourceInlineConfigKey)

	persistent.BoolVar(&inlineOtherFlag, inlineOtherFlagName, viper.GetBool(inlineOtherConfigKey), "inline files that are neither sources nor headers")
	bindFlagToConfig(persistent.Lookup(inlineOtherFlagName), inlineOtherConfigKey)

	persistent.StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching a glob such as 'test/**' (can be repeated)")
	bindFlagToConfig(persistent.Lookup(excludeFlagName), excludeConfigKey)

	persistent.CountVarP(&verbosityFlag, verbosityFlagName, "v", "increase verbosity level (up to 3)")
	bindFlagToConfig(persistent.Lookup(verbosityFlagName), logVerbosityKey)

	persistent.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "also write diagnostics to a rotating log file")
	bindFlagToConfig(persistent.Lookup(logFileFlagName), logFilenameKey)

	cmd.Flags().StringVarP(&outDirFlag, outDirFlagName, "o", viper.GetString(outDirConfigKey), "output directory")
	bindFlagToConfig(cmd.Flags().Lookup(outDirFlagName), outDirConfigKey)

	cmd.Flags().IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of targets merged concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().StringVar(&manifestFlag, manifestFlagName, viper.GetString(manifestConfigKey), "write a YAML manifest of the run to this file")
	bindFlagToConfig(cmd.Flags().Lookup(manifestFlagName), manifestConfigKey)

	cmd.Flags().BoolVar(&dryRunFlag, dryRunFlagName, false, "print a unified diff per target instead of writing files")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func planArgsFromConfig(args []string) domain.PlanArgs {
	return domain.PlanArgs{
		Files:        parsePaths(args),
		InDir:        m.Path(viper.GetString(inDirConfigKey)),
		Auto:         viper.GetBool(autoConfigKey),
		Exclude:      viper.GetStringSlice(excludeConfigKey),
		SourceInline: viper.GetBool(sourceInlineConfigKey),
		InlineOther:  viper.GetBool(inlineOtherConfigKey),
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
