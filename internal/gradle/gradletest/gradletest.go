// Package gradletest provides a stand-in Gradle wrapper for tests that need
// a real subprocess but no Gradle installation.
package gradletest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// TasksFile holds the text printed for `tasks`.
const TasksFile = "tasks.txt"

// PublishLog receives the arguments of any other invocation.
const PublishLog = "publish.log"

// FailFile makes every invocation exit with status 1 when present.
const FailFile = "fail"

// wrapperScript answers `tasks` from tasks.txt and `properties` with the
// version from build.gradle, falling back to gradle.properties and then to
// "unspecified", like Gradle does.
const wrapperScript = `#!/bin/sh
if [ -f fail ]; then
  echo "FAILURE: Build failed with an exception." >&2
  exit 1
fi
case "$1" in
tasks)
  if [ -f tasks.txt ]; then
    cat tasks.txt
  fi
  ;;
properties)
  v=unspecified
  if [ -f gradle.properties ]; then
    p=$(sed -n 's/^version[ ]*=[ ]*//p' gradle.properties | head -n 1)
    [ -n "$p" ] && v=$p
  fi
  if [ -f build.gradle ]; then
    b=$(sed -n "s/^version[ ]*=[ ]*['\"]\(.*\)['\"].*/\1/p" build.gradle | head -n 1)
    [ -n "$b" ] && v=$b
  fi
  echo "name: test-project"
  echo "version: $v"
  ;;
*)
  echo "$@" > publish.log
  ;;
esac
`

// PublishingTasks is a `gradle tasks -q` listing that contains the default
// publish tasks.
const PublishingTasks = `
Publishing tasks
----------------
closeAndReleaseRepository - Closes and releases the staging repository.
publish - Publishes all publications produced by this project.
publishToSonatype - Publishes all Maven publications produced by this project to Sonatype.
`

// BuildTasks is a task listing from a project without publishing plugins.
const BuildTasks = `
Build tasks
-----------
assemble - Assembles the outputs of this project.
build - Assembles and tests this project.
`

// NewProject creates a temporary project directory with an executable
// wrapper whose `tasks` output is tasks. It skips the test on Windows.
func NewProject(t *testing.T, tasks string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake gradle wrapper requires a POSIX shell")
	}

	dir := t.TempDir()
	WriteFile(t, dir, "gradlew", wrapperScript)
	if err := os.Chmod(filepath.Join(dir, "gradlew"), 0755); err != nil {
		t.Fatalf("Failed to make wrapper executable: %v", err)
	}
	if tasks != "" {
		WriteFile(t, dir, TasksFile, tasks)
	}
	return dir
}

// WriteFile writes content to dir/name, failing the test on error.
func WriteFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// ReadFile returns the content of dir/name, failing the test on error.
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("Failed to read %s: %v", name, err)
	}
	return string(data)
}
