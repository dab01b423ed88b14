// Package config loads the plugin options from the release configuration of
// a project. The release framework accepts YAML or JSON in a .releaserc file
// or under the "release" key of package.json; both are read with a YAML
// decoder since JSON is valid YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PluginConfig holds the options understood by the plugin.
type PluginConfig struct {
	ExtraPublishTasks []string `yaml:"extraPublishTasks"`
	RequireWrapper    bool     `yaml:"requireWrapper"`

	// Source is the file the options were read from, empty if none.
	Source string `yaml:"-"`
}

// options mirrors PluginConfig with pointer fields so that a plugin entry
// only overrides the global options it sets.
type options struct {
	ExtraPublishTasks *[]string `yaml:"extraPublishTasks"`
	RequireWrapper    *bool     `yaml:"requireWrapper"`
}

func (o options) applyTo(cfg *PluginConfig) {
	if o.ExtraPublishTasks != nil {
		cfg.ExtraPublishTasks = *o.ExtraPublishTasks
	}
	if o.RequireWrapper != nil {
		cfg.RequireWrapper = *o.RequireWrapper
	}
}

// releaseConfig is the subset of the release configuration we read.
type releaseConfig struct {
	ExtraPublishTasks *[]string   `yaml:"extraPublishTasks"`
	RequireWrapper    *bool       `yaml:"requireWrapper"`
	Plugins           []yaml.Node `yaml:"plugins"`
}

type packageJSON struct {
	Release yaml.Node `yaml:"release"`
}

// Load searches dir for a release configuration and returns the plugin
// options. A project without configuration yields the zero PluginConfig.
func Load(dir string) (*PluginConfig, error) {
	for _, name := range SearchFiles {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		cfg, found, err := parse(name, data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if !found {
			continue
		}
		cfg.Source = path
		return cfg, nil
	}

	return &PluginConfig{}, nil
}

// parse decodes one configuration file. found is false for a package.json
// without a "release" key.
func parse(name string, data []byte) (*PluginConfig, bool, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, false, err
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind == 0 {
		return &PluginConfig{}, true, nil
	}

	if name == "package.json" {
		var pkg packageJSON
		if err := doc.Decode(&pkg); err != nil {
			return nil, false, err
		}
		if pkg.Release.Kind == 0 {
			return nil, false, nil
		}
		doc = &pkg.Release
	}

	var rc releaseConfig
	if err := doc.Decode(&rc); err != nil {
		return nil, false, err
	}

	cfg := &PluginConfig{}
	options{ExtraPublishTasks: rc.ExtraPublishTasks, RequireWrapper: rc.RequireWrapper}.applyTo(cfg)

	for i := range rc.Plugins {
		opts, ok, err := pluginOptions(&rc.Plugins[i])
		if err != nil {
			return nil, false, err
		}
		if ok {
			opts.applyTo(cfg)
		}
	}

	return cfg, true, nil
}

// pluginOptions extracts our options from a plugins entry, which is either
// a bare name or a [name, options] pair.
func pluginOptions(node *yaml.Node) (options, bool, error) {
	var opts options
	if node.Kind != yaml.SequenceNode || len(node.Content) == 0 {
		return opts, false, nil
	}

	nameNode := node.Content[0]
	if nameNode.Kind != yaml.ScalarNode || !isPlugin(nameNode.Value) {
		return opts, false, nil
	}
	if len(node.Content) < 2 {
		return opts, true, nil
	}

	if err := node.Content[1].Decode(&opts); err != nil {
		return opts, false, fmt.Errorf("invalid options for %s: %w", nameNode.Value, err)
	}
	return opts, true, nil
}
