// Package gradle runs Gradle for the release hooks. It resolves which command
// to invoke, runs it as a subprocess and interprets the line-oriented output
// of the `tasks` and `properties` reports.
package gradle

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
)

// GlobalCommand is used when the project has no Gradle wrapper.
const GlobalCommand = "gradle"

// WrapperName returns the wrapper script name for the current platform.
func WrapperName() string {
	if runtime.GOOS == "windows" {
		return "gradlew.bat"
	}
	return "gradlew"
}

// ResolveCommand returns the command used to invoke Gradle in dir. The
// project's wrapper is preferred; its absolute path is returned so that it
// can be executed regardless of the caller's working directory. A missing
// wrapper falls back to GlobalCommand, any other error is returned.
func ResolveCommand(dir string) (string, error) {
	wrapper, err := filepath.Abs(filepath.Join(dir, WrapperName()))
	if err != nil {
		return "", fmt.Errorf("failed to resolve wrapper path: %w", err)
	}

	if err := checkWrapper(wrapper); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return GlobalCommand, nil
		}
		return "", fmt.Errorf("failed to check gradle wrapper %s: %w", wrapper, err)
	}

	return wrapper, nil
}

// UsesWrapper reports whether a command returned by ResolveCommand refers to
// a project wrapper rather than the global installation.
func UsesWrapper(command string) bool {
	return command != GlobalCommand && filepath.Base(command) == WrapperName()
}
