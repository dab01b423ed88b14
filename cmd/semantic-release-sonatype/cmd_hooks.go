package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MythicDrops/semantic-release-sonatype/internal/cli"
)

var verifyCmd = &cobra.Command{
	Use:   "verify-conditions",
	Short: "Verify the project can be published",
	Long: `Run 'gradle tasks' and check that publishToSonatype,
closeAndReleaseRepository and any extra publish tasks exist.`,
	Args: cobra.NoArgs,
	RunE: hookRunner("verify-conditions"),
}

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Write the next version to gradle.properties",
	Long: `Set the version key of gradle.properties to --next-version, creating the
file if needed, and check that Gradle reports the new version.`,
	Args: cobra.NoArgs,
	RunE: hookRunner("prepare"),
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish artifacts to Sonatype",
	Long: `Run the extra publish tasks followed by publishToSonatype and
closeAndReleaseRepository. Asks for confirmation unless --yes is given,
CI is set or stdin is not a terminal.`,
	Args: cobra.NoArgs,
	RunE: hookRunner("publish"),
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run verify-conditions, prepare and publish",
	Args:  cobra.NoArgs,
	RunE:  hookRunner("all"),
}

func init() {
	for _, cmd := range []*cobra.Command{prepareCmd, runCmd} {
		cmd.Flags().StringVar(&opts.NextVersion, "next-version", "", "Version of the release being made")
		_ = cmd.MarkFlagRequired("next-version")
	}
	for _, cmd := range []*cobra.Command{publishCmd, runCmd} {
		cmd.Flags().BoolVarP(&opts.NonInteractive, "yes", "y", false, "Skip the confirmation prompt")
	}

	rootCmd.AddCommand(verifyCmd, prepareCmd, publishCmd, runCmd)
}

func hookRunner(hook string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewHookContext(opts)
		if err != nil {
			return fmt.Errorf("failed to initialize hook context: %w", err)
		}
		return cli.RunHook(ctx, hook)
	}
}
