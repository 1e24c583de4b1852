package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const shortRevisionLen = 12

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the cmerge build version, source revision and the Go version used to build it.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("cmerge version\t", info.Main.Version)

			if revision := buildRevision(info); revision != "" {
				cmd.Println("revision\t", revision)
			}

			cmd.Println("go version\t", info.GoVersion)
		},
	}
}

func buildRevision(info *debug.BuildInfo) string {
	revision := ""
	modified := false

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if len(revision) > shortRevisionLen {
		revision = revision[:shortRevisionLen]
	}

	if revision != "" && modified {
		revision += "-dirty"
	}

	return revision
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
