package release

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingWorkingDirectory is returned when a hook runs without a cwd.
	ErrMissingWorkingDirectory = errors.New("cwd not provided")

	// ErrMissingNextRelease is returned by Prepare without a next release.
	ErrMissingNextRelease = errors.New("nextRelease not provided")

	// ErrWrapperRequired is returned when requireWrapper is set and the
	// project has no usable Gradle wrapper.
	ErrWrapperRequired = errors.New("gradle wrapper required but not found")
)

// VersionMismatchError is returned when Gradle reports a different version
// than the one Prepare wrote to gradle.properties.
type VersionMismatchError struct {
	Expected string
	Actual   string
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("failed to update version from %s to %s. "+
		"Make sure that you define version not in build.gradle but in gradle.properties.",
		e.Actual, e.Expected)
}
