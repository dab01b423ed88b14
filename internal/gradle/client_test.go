package gradle

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/MythicDrops/semantic-release-sonatype/internal/gradle/gradletest"
)

type recordingLogger struct {
	buf bytes.Buffer
}

func (l *recordingLogger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(&l.buf, format+"\n", args...)
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(nil, Options{})
	if client.runner == nil {
		t.Error("Client.runner is nil")
	}
	if diff := cmp.Diff(DefaultPublishTasks, client.options.RequiredTasks); diff != "" {
		t.Errorf("RequiredTasks mismatch (-want +got):\n%s", diff)
	}
}

func TestClientPublishTasks(t *testing.T) {
	client := NewClient(nil, Options{ExtraTasks: []string{"publishPlugins", "publishToSonatype"}})

	want := []string{"publishPlugins", "publishToSonatype", "closeAndReleaseRepository"}
	if diff := cmp.Diff(want, client.PublishTasks()); diff != "" {
		t.Errorf("PublishTasks() mismatch (-want +got):\n%s", diff)
	}
}

func TestClientVerifyPublishTasks(t *testing.T) {
	mock := NewMockRunner()
	mock.Respond("tasks", gradletest.PublishingTasks, 0)
	client := NewClient(mock, Options{Env: map[string]string{"CI": "true"}})

	if err := client.VerifyPublishTasks(t.TempDir()); err != nil {
		t.Fatalf("VerifyPublishTasks() error = %v, want nil", err)
	}

	inv, _ := mock.LastInvocation()
	if diff := cmp.Diff([]string{"tasks", "-q"}, inv.Args); diff != "" {
		t.Errorf("Args mismatch (-want +got):\n%s", diff)
	}
	if inv.Env["CI"] != "true" {
		t.Errorf("Env not passed through: %v", inv.Env)
	}
}

func TestClientVerifyPublishTasksMissing(t *testing.T) {
	mock := NewMockRunner()
	mock.Respond("tasks", gradletest.BuildTasks, 0)
	client := NewClient(mock, Options{ExtraTasks: []string{"publishPlugins"}})

	err := client.VerifyPublishTasks(t.TempDir())

	var missing *MissingTasksError
	if !errors.As(err, &missing) {
		t.Fatalf("VerifyPublishTasks() error = %v, want *MissingTasksError", err)
	}
	want := []string{"publishPlugins", "publishToSonatype", "closeAndReleaseRepository"}
	if diff := cmp.Diff(want, missing.Tasks); diff != "" {
		t.Errorf("missing tasks mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(err.Error(), "Could not find task in Gradle project: publishToSonatype") {
		t.Errorf("error message = %q", err.Error())
	}
}

func TestClientVerifyPublishTasksPropagatesFailure(t *testing.T) {
	mock := NewMockRunner()
	mock.Respond("tasks", gradletest.PublishingTasks, 1)
	client := NewClient(mock, Options{})

	err := client.VerifyPublishTasks(t.TempDir())

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("VerifyPublishTasks() error = %v, want *ExitError", err)
	}
	if exitErr.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", exitErr.ExitCode)
	}
	var missing *MissingTasksError
	if errors.As(err, &missing) {
		t.Error("failed task listing reported as missing tasks")
	}
}

func TestClientEmptyOutput(t *testing.T) {
	mock := NewMockRunner()
	client := NewClient(mock, Options{})

	err := client.VerifyPublishTasks(t.TempDir())
	if !errors.Is(err, ErrEmptyOutput) {
		t.Fatalf("VerifyPublishTasks() error = %v, want ErrEmptyOutput", err)
	}
	var empty *EmptyOutputError
	if errors.As(err, &empty) {
		if diff := cmp.Diff([]string{"tasks", "-q"}, empty.Args); diff != "" {
			t.Errorf("EmptyOutputError.Args mismatch (-want +got):\n%s", diff)
		}
	}

	if _, err := client.Version(t.TempDir()); !errors.Is(err, ErrEmptyOutput) {
		t.Errorf("Version() error = %v, want ErrEmptyOutput", err)
	}
}

func TestClientSpawnError(t *testing.T) {
	mock := NewMockRunner()
	mock.Err = &SpawnError{Command: GlobalCommand, Err: errors.New("executable file not found in $PATH")}
	client := NewClient(mock, Options{})

	var spawnErr *SpawnError
	if _, err := client.Version(t.TempDir()); !errors.As(err, &spawnErr) {
		t.Errorf("Version() error = %v, want *SpawnError", err)
	}
}

func TestClientVersion(t *testing.T) {
	mock := NewMockRunner()
	mock.Respond("properties", "name: demo\nversion: 0.0.0-SNAPSHOT\n", 0)
	client := NewClient(mock, Options{})

	version, err := client.Version(t.TempDir())
	if err != nil {
		t.Fatalf("Version() error = %v", err)
	}
	if version != "0.0.0-SNAPSHOT" {
		t.Errorf("Version() = %q, want %q", version, "0.0.0-SNAPSHOT")
	}

	inv, _ := mock.LastInvocation()
	if diff := cmp.Diff([]string{"properties", "-q"}, inv.Args); diff != "" {
		t.Errorf("Args mismatch (-want +got):\n%s", diff)
	}
}

func TestClientPublish(t *testing.T) {
	mock := NewMockRunner()
	client := NewClient(mock, Options{ExtraTasks: []string{"publishPlugins"}})
	logger := &recordingLogger{}
	client.SetLogger(logger)

	if err := client.Publish(t.TempDir()); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	inv, _ := mock.LastInvocation()
	want := []string{"publishPlugins", "publishToSonatype", "closeAndReleaseRepository", "-q"}
	if diff := cmp.Diff(want, inv.Args); diff != "" {
		t.Errorf("Args mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(logger.buf.String(), "Running gradle publishPlugins publishToSonatype") {
		t.Errorf("log = %q", logger.buf.String())
	}
}

func TestClientPublishFailure(t *testing.T) {
	mock := NewMockRunner()
	mock.Default = &Result{ExitCode: 2, Stderr: "401 Unauthorized"}
	client := NewClient(mock, Options{})

	err := client.Publish(t.TempDir())

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Publish() error = %v, want *ExitError", err)
	}
	if !strings.Contains(err.Error(), "status code 2") || !strings.Contains(err.Error(), "401 Unauthorized") {
		t.Errorf("error message = %q", err.Error())
	}
}

func TestClientAgainstWrapper(t *testing.T) {
	dir := gradletest.NewProject(t, gradletest.PublishingTasks)
	gradletest.WriteFile(t, dir, "gradle.properties", "group=com.example\nversion=0.0.0-SNAPSHOT\n")
	client := NewClient(NewRunner(), Options{})

	command, err := client.Command(dir)
	if err != nil {
		t.Fatalf("Command() error = %v", err)
	}
	if !UsesWrapper(command) {
		t.Errorf("Command() = %q, want the project wrapper", command)
	}

	if err := client.VerifyPublishTasks(dir); err != nil {
		t.Errorf("VerifyPublishTasks() error = %v", err)
	}

	version, err := client.Version(dir)
	if err != nil {
		t.Fatalf("Version() error = %v", err)
	}
	if version != "0.0.0-SNAPSHOT" {
		t.Errorf("Version() = %q, want %q", version, "0.0.0-SNAPSHOT")
	}

	if err := client.Publish(dir); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	got := strings.TrimSpace(gradletest.ReadFile(t, dir, gradletest.PublishLog))
	if got != "publishToSonatype closeAndReleaseRepository -q" {
		t.Errorf("publish args = %q", got)
	}
}

func TestClientAgainstWrapperWithoutPublishPlugins(t *testing.T) {
	dir := gradletest.NewProject(t, gradletest.BuildTasks)
	client := NewClient(NewRunner(), Options{})

	var missing *MissingTasksError
	if err := client.VerifyPublishTasks(dir); !errors.As(err, &missing) {
		t.Fatalf("VerifyPublishTasks() error = %v, want *MissingTasksError", err)
	}
	if diff := cmp.Diff(DefaultPublishTasks, missing.Tasks); diff != "" {
		t.Errorf("missing tasks mismatch (-want +got):\n%s", diff)
	}

	version, err := client.Version(dir)
	if err != nil {
		t.Fatalf("Version() error = %v", err)
	}
	if version != "unspecified" {
		t.Errorf("Version() = %q, want %q", version, "unspecified")
	}
}

func TestClientRunsResolvedCommand(t *testing.T) {
	dir := gradletest.NewProject(t, gradletest.PublishingTasks)
	mock := NewMockRunner()
	mock.Default = &Result{ExitCode: 3}
	client := NewClient(mock, Options{ExtraTasks: []string{"-q"}})
	logger := &recordingLogger{}
	client.SetLogger(logger)

	err := client.Publish(dir)

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Publish() error = %v, want *ExitError", err)
	}
	inv, _ := mock.LastInvocation()
	if !UsesWrapper(inv.Command) || exitErr.Command != inv.Command {
		t.Errorf("ExitError.Command = %q, invoked %q, want the project wrapper", exitErr.Command, inv.Command)
	}
	want := []string{"-q", "publishToSonatype", "closeAndReleaseRepository"}
	if diff := cmp.Diff(want, exitErr.Args); diff != "" {
		t.Errorf("ExitError.Args mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(logger.buf.String(), "Running "+inv.Command) {
		t.Errorf("log = %q", logger.buf.String())
	}
}
