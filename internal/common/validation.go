package common

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
)

// ValidateVersion validates a release version such as "1.2.3" or
// "2.0.0-rc.1+build.5". Shorthands like "1.2" and a leading "v" are rejected
// because the value is written verbatim into gradle.properties.
func ValidateVersion(version string) error {
	if version == "" {
		return fmt.Errorf("version cannot be empty")
	}
	if strings.HasPrefix(version, "v") {
		return fmt.Errorf("version must not start with 'v': %s", version)
	}

	v := "v" + version
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid semantic version: %s", version)
	}

	// Canonical drops build metadata and expands shorthands
	withoutBuild, _, _ := strings.Cut(v, "+")
	if semver.Canonical(v) != withoutBuild {
		return fmt.Errorf("version must have major, minor and patch numbers: %s", version)
	}

	return nil
}

// ValidateTaskName validates a Gradle task name or path (e.g. ":lib:publish")
func ValidateTaskName(name string) error {
	if name == "" {
		return fmt.Errorf("task name cannot be empty")
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("task name cannot start with '-': %s", name)
	}

	for _, c := range name {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-' || c == '.' || c == ':') {
			return fmt.Errorf("task name contains invalid character %q: %s", c, name)
		}
	}

	return nil
}

// ValidateTaskNames validates every name and reports the first invalid one
func ValidateTaskNames(names []string) error {
	for _, name := range names {
		if err := ValidateTaskName(name); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDirectory validates that path exists and is a directory
func ValidateDirectory(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("directory cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", path)
		}
		return fmt.Errorf("failed to check directory %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", path)
	}

	return nil
}
