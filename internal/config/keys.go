package config

import (
	"path"
	"strings"
)

// PluginName is the package name the plugin is registered under.
const PluginName = "@mythicdrops/semantic-release-sonatype"

// SearchFiles lists release configuration files in lookup order.
var SearchFiles = []string{
	"package.json",
	".releaserc",
	".releaserc.json",
	".releaserc.yaml",
	".releaserc.yml",
}

// isPlugin reports whether a plugins entry names this plugin, either by its
// full name, by its unscoped name or under another npm scope.
func isPlugin(name string) bool {
	short := path.Base(PluginName)
	return name == PluginName || name == short || strings.HasSuffix(name, "/"+short)
}
