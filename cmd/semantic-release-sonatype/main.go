package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MythicDrops/semantic-release-sonatype/internal/cli"
	"github.com/MythicDrops/semantic-release-sonatype/internal/ui"
	"github.com/MythicDrops/semantic-release-sonatype/pkg/version"
)

// Flags shared by every subcommand
var (
	opts           cli.Options
	noColor        bool
	requireWrapper bool
)

var rootCmd = &cobra.Command{
	Use:   "semantic-release-sonatype",
	Short: "Release Gradle projects to Sonatype",
	Long: `Release lifecycle hooks for Gradle projects published to Sonatype.

The hooks are meant to be called by a release pipeline in order:
  verify-conditions  Check that the project has the publish tasks
  prepare            Write the next version to gradle.properties
  publish            Publish artifacts and release the staging repository

The Gradle wrapper (gradlew) is used when present, otherwise gradle on PATH.
Options are read from .releaserc or package.json and can be overridden
with flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			ui.SetColor(false)
		}
		if cmd.Flags().Changed("require-wrapper") {
			opts.RequireWrapper = &requireWrapper
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.Cwd, "cwd", "", "Gradle project root (default: current directory)")
	flags.StringSliceVar(&opts.ExtraPublishTasks, "extra-publish-task", nil, "Additional task required and run on publish (repeatable)")
	flags.BoolVar(&requireWrapper, "require-wrapper", false, "Fail when the project has no Gradle wrapper")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
