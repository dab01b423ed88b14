// Package cli wires the release hooks to the command line: it builds the
// hook context from flags and the project's release configuration and runs
// hooks by name.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MythicDrops/semantic-release-sonatype/internal/common"
	"github.com/MythicDrops/semantic-release-sonatype/internal/config"
	"github.com/MythicDrops/semantic-release-sonatype/internal/gradle"
	"github.com/MythicDrops/semantic-release-sonatype/internal/release"
	"github.com/MythicDrops/semantic-release-sonatype/internal/ui"
)

// ErrPublishCancelled is returned when the publish confirmation is declined.
var ErrPublishCancelled = errors.New("publish cancelled")

// Options are the command line settings shared by every hook.
type Options struct {
	Cwd               string
	ExtraPublishTasks []string
	RequireWrapper    *bool // nil unless the flag was given
	NextVersion       string
	NonInteractive    bool
}

// HookContext holds all dependencies needed to run a hook
type HookContext struct {
	Config  release.Config
	Release *release.Context
	UI      *ui.UI
	Plugin  *release.Plugin
	Runner  gradle.Runner

	// ConfigSource is the release configuration file that was read, if any.
	ConfigSource string
}

// NewHookContext creates a HookContext running Gradle as a subprocess.
func NewHookContext(opts Options) (*HookContext, error) {
	return NewHookContextWithRunner(opts, nil, ui.New())
}

// NewHookContextWithRunner creates a HookContext with a custom runner and UI.
func NewHookContextWithRunner(opts Options, runner gradle.Runner, uiInstance *ui.UI) (*HookContext, error) {
	cwd := opts.Cwd
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		cwd = wd
	}
	cwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	if err := common.ValidateDirectory(cwd); err != nil {
		return nil, err
	}

	pluginConfig, err := config.Load(cwd)
	if err != nil {
		return nil, fmt.Errorf("failed to load release configuration: %w", err)
	}

	// Flags override the release configuration
	cfg := release.ConfigFrom(pluginConfig)
	if len(opts.ExtraPublishTasks) > 0 {
		cfg.ExtraPublishTasks = opts.ExtraPublishTasks
	}
	if opts.RequireWrapper != nil {
		cfg.RequireWrapper = *opts.RequireWrapper
	}

	if runner == nil {
		runner = gradle.NewRunner()
	}

	env := gradle.ProcessEnv()
	uiInstance.SetNonInteractive(opts.NonInteractive || ui.DetectNonInteractive(env))

	ctx := &release.Context{
		Cwd:    cwd,
		Env:    env,
		Logger: uiInstance,
	}
	if opts.NextVersion != "" {
		ctx.NextRelease = &release.NextRelease{Version: opts.NextVersion}
	}

	return &HookContext{
		Config:       cfg,
		Release:      ctx,
		UI:           uiInstance,
		Plugin:       release.New(runner),
		Runner:       runner,
		ConfigSource: pluginConfig.Source,
	}, nil
}

// HookInfo contains metadata about a lifecycle hook
type HookInfo struct {
	Name        string
	ShortName   string
	Description string
}

// GetAllHooks returns the hooks in lifecycle order
func GetAllHooks() []HookInfo {
	return []HookInfo{
		{Name: "Verify Conditions", ShortName: "verify-conditions", Description: "Check that the Gradle project can publish to Sonatype"},
		{Name: "Prepare", ShortName: "prepare", Description: "Write the next version to gradle.properties"},
		{Name: "Publish", ShortName: "publish", Description: "Publish artifacts and release the staging repository"},
	}
}

// RunHook executes a hook by short name
func RunHook(ctx *HookContext, shortName string) error {
	ctx.UI.Header(fmt.Sprintf("Running: %s", shortName))
	if ctx.ConfigSource != "" {
		ctx.UI.Infof("Using options from %s", ctx.ConfigSource)
	}

	var err error

	switch shortName {
	case "verify-conditions":
		err = ctx.Plugin.VerifyConditions(ctx.Config, ctx.Release)
	case "prepare":
		err = ctx.Plugin.Prepare(ctx.Config, ctx.Release)
	case "publish":
		err = confirmed(ctx, func() error { return ctx.Plugin.Publish(ctx.Config, ctx.Release) })
	case "all":
		err = confirmed(ctx, func() error { return ctx.Plugin.Run(ctx.Config, ctx.Release) })
	default:
		return fmt.Errorf("unknown hook: %s", shortName)
	}

	return err
}

// confirmed asks before publishing when a human is at the terminal.
func confirmed(ctx *HookContext, publish func() error) error {
	if !ctx.UI.IsNonInteractive() {
		confirm, err := ctx.UI.PromptYesNo(fmt.Sprintf("Publish artifacts from %s to Sonatype?", ctx.Release.Cwd), false)
		if err != nil {
			return err
		}
		if !confirm {
			return ErrPublishCancelled
		}
	}
	return publish()
}
