// Package release implements the verifyConditions, prepare and publish hooks
// of the release lifecycle for Gradle projects published to Sonatype.
package release

import (
	"fmt"

	"github.com/MythicDrops/semantic-release-sonatype/internal/common"
	"github.com/MythicDrops/semantic-release-sonatype/internal/config"
	"github.com/MythicDrops/semantic-release-sonatype/internal/gradle"
	"github.com/MythicDrops/semantic-release-sonatype/internal/properties"
)

// Logger receives human-readable progress messages.
type Logger interface {
	Infof(format string, args ...interface{})
	Successf(format string, args ...interface{})
}

// NextRelease describes the release being made.
type NextRelease struct {
	Version string
}

// Context carries what the release framework hands to every hook.
type Context struct {
	Cwd         string
	Env         map[string]string
	Logger      Logger
	NextRelease *NextRelease
}

// Config holds the plugin options.
type Config struct {
	ExtraPublishTasks []string
	RequireWrapper    bool
}

// ConfigFrom converts options loaded from the release configuration.
func ConfigFrom(pc *config.PluginConfig) Config {
	if pc == nil {
		return Config{}
	}
	return Config{
		ExtraPublishTasks: pc.ExtraPublishTasks,
		RequireWrapper:    pc.RequireWrapper,
	}
}

// Plugin runs the lifecycle hooks through a Gradle runner.
type Plugin struct {
	runner gradle.Runner
}

// New creates a Plugin. A nil runner runs Gradle as a local subprocess.
func New(runner gradle.Runner) *Plugin {
	if runner == nil {
		runner = gradle.NewRunner()
	}
	return &Plugin{runner: runner}
}

func (p *Plugin) client(cfg Config, ctx *Context) *gradle.Client {
	client := gradle.NewClient(p.runner, gradle.Options{
		ExtraTasks: cfg.ExtraPublishTasks,
		Env:        ctx.Env,
	})
	if ctx.Logger != nil {
		client.SetLogger(ctx.Logger)
	}
	return client
}

func checkContext(ctx *Context) error {
	if ctx == nil || ctx.Cwd == "" {
		return ErrMissingWorkingDirectory
	}
	return nil
}

// VerifyConditions checks that the project can be published: the Gradle
// wrapper is present when required and every publish task exists.
func (p *Plugin) VerifyConditions(cfg Config, ctx *Context) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	if err := common.ValidateTaskNames(cfg.ExtraPublishTasks); err != nil {
		return fmt.Errorf("invalid extraPublishTasks: %w", err)
	}

	client := p.client(cfg, ctx)

	command, err := client.Command(ctx.Cwd)
	if err != nil {
		return err
	}
	if cfg.RequireWrapper && !gradle.UsesWrapper(command) {
		return fmt.Errorf("%w: %s", ErrWrapperRequired, ctx.Cwd)
	}

	if err := client.VerifyPublishTasks(ctx.Cwd); err != nil {
		return err
	}

	p.successf(ctx, "Verified conditions")
	return nil
}

// Prepare writes the next release version to gradle.properties and checks
// that Gradle picks it up.
func (p *Plugin) Prepare(cfg Config, ctx *Context) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	if ctx.NextRelease == nil {
		return ErrMissingNextRelease
	}

	version := ctx.NextRelease.Version
	if err := common.ValidateVersion(version); err != nil {
		return err
	}

	if err := properties.SetVersion(ctx.Cwd, version); err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}
	p.infof(ctx, "Wrote version %s to %s", version, properties.FileName)

	actual, err := p.client(cfg, ctx).Version(ctx.Cwd)
	if err != nil {
		return err
	}
	if actual != version {
		return &VersionMismatchError{Expected: version, Actual: actual}
	}

	p.successf(ctx, "Prepared version %s", version)
	return nil
}

// Publish runs the publish tasks.
func (p *Plugin) Publish(cfg Config, ctx *Context) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	if err := common.ValidateTaskNames(cfg.ExtraPublishTasks); err != nil {
		return fmt.Errorf("invalid extraPublishTasks: %w", err)
	}

	if err := p.client(cfg, ctx).Publish(ctx.Cwd); err != nil {
		return err
	}

	p.successf(ctx, "Published artifacts")
	return nil
}

// Run executes VerifyConditions, Prepare and Publish in order, stopping at
// the first failure.
func (p *Plugin) Run(cfg Config, ctx *Context) error {
	hooks := []struct {
		name string
		fn   func(Config, *Context) error
	}{
		{"verifyConditions", p.VerifyConditions},
		{"prepare", p.Prepare},
		{"publish", p.Publish},
	}

	for _, hook := range hooks {
		if err := hook.fn(cfg, ctx); err != nil {
			return fmt.Errorf("%s failed: %w", hook.name, err)
		}
	}
	return nil
}

func (p *Plugin) infof(ctx *Context, format string, args ...interface{}) {
	if ctx.Logger != nil {
		ctx.Logger.Infof(format, args...)
	}
}

func (p *Plugin) successf(ctx *Context, format string, args ...interface{}) {
	if ctx.Logger != nil {
		ctx.Logger.Successf(format, args...)
	}
}
