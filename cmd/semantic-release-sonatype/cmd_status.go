package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MythicDrops/semantic-release-sonatype/internal/cli"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what the release hooks would find",
	Long:  `Display the Gradle command, the project version and which publish tasks exist.`,
	Args:  cobra.NoArgs,
	RunE:  showStatus,
}

var currentVersionCmd = &cobra.Command{
	Use:   "current-version",
	Short: "Print the version reported by Gradle",
	Args:  cobra.NoArgs,
	RunE:  showCurrentVersion,
}

func init() {
	rootCmd.AddCommand(statusCmd, currentVersionCmd)
}

func showStatus(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewHookContext(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize hook context: %w", err)
	}

	ctx.UI.Header("Release Status")
	ctx.UI.Infof("Project: %s", ctx.Release.Cwd)
	if ctx.ConfigSource != "" {
		ctx.UI.Infof("Options: %s", ctx.ConfigSource)
	}

	status, err := cli.CollectStatus(ctx)
	if err != nil {
		return err
	}

	ctx.UI.Check(status.UsesWrapper, "Gradle command: %s", status.Command)
	if status.Version == "" {
		ctx.UI.Check(false, "Version: (not reported)")
	} else {
		ctx.UI.Check(true, "Version: %s", status.Version)
	}

	ctx.UI.Separator()
	present := 0
	for _, task := range status.Tasks {
		ctx.UI.Check(task.Present, "Task %s", task.Name)
		if task.Present {
			present++
		}
	}
	ctx.UI.Separator()
	ctx.UI.Infof("Publish tasks: %d/%d present", present, len(status.Tasks))

	if !status.Ready() {
		ctx.UI.Warning("Apply the io.github.gradle-nexus.publish-plugin to add the missing tasks")
	} else {
		ctx.UI.Success("Ready to publish")
	}

	return nil
}

func showCurrentVersion(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewHookContext(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize hook context: %w", err)
	}

	v, err := cli.CurrentVersion(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}
