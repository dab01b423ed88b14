package properties

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestLoadNonExistent(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("Load() on non-existent file error = %v, want nil", err)
	}
	if keys := f.Keys(); len(keys) != 0 {
		t.Errorf("Keys() = %v, want none", keys)
	}
}

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, `# Project settings
! legacy comment
group=com.example
version = 1.0.0
kotlin.code.style: official
org.gradle.jvmargs -Xmx2g
description=first \
    second
path\ with\ spaces=C\:\\tmp
unicode=caf\u00e9
empty=
`)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"group", "com.example"},
		{"version", "1.0.0"},
		{"kotlin.code.style", "official"},
		{"org.gradle.jvmargs", "-Xmx2g"},
		{"description", "first second"},
		{"path with spaces", `C:\tmp`},
		{"unicode", "café"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := f.Get(tt.key)
			if !ok {
				t.Fatalf("Get(%q) not found", tt.key)
			}
			if got != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}

	if _, ok := f.Get("missing"); ok {
		t.Error("Get(missing) found, want not found")
	}
}

func TestDuplicateKeysLastWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "version=1\nversion=2\n")

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, _ := f.Get("version"); got != "2" {
		t.Errorf("Get(version) = %q, want %q", got, "2")
	}

	f.Set("version", "3")
	if got := string(f.Bytes()); got != "version=1\nversion=3\n" {
		t.Errorf("Bytes() = %q", got)
	}
}

func TestSetPreservesOtherLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	original := "# keep me\ngroup = com.example\nversion=0.0.0-SNAPSHOT\n\norg.gradle.caching=true\n"
	writeFile(t, path, original)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	f.Set("version", "1.0.0")
	if err := f.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	want := "# keep me\ngroup = com.example\nversion=1.0.0\n\norg.gradle.caching=true\n"
	if got := readFile(t, path); got != want {
		t.Errorf("file mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}

	if diff := cmp.Diff([]string{"group", "version", "org.gradle.caching"}, f.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestSetVersionKeepsLineEndings(t *testing.T) {
	tests := []struct {
		name     string
		original string
		want     string
	}{
		{
			name:     "crlf",
			original: "# c\r\ngroup=x\r\nversion=0.1.0\r\n",
			want:     "# c\r\ngroup=x\r\nversion=1.0.0\r\n",
		},
		{
			name:     "crlf append",
			original: "# c\r\ngroup=x",
			want:     "# c\r\ngroup=x\r\nversion=1.0.0\r\n",
		},
		{
			name:     "crlf continuation",
			original: "description=a \\\r\n    b\r\nversion=0.1.0\r\n",
			want:     "description=a \\\r\n    b\r\nversion=1.0.0\r\n",
		},
		{
			name:     "mixed",
			original: "group=x\r\nversion=0.1.0\nname=y\r\n",
			want:     "group=x\r\nversion=1.0.0\nname=y\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, FileName)
			writeFile(t, path, tt.original)

			if err := SetVersion(dir, "1.0.0"); err != nil {
				t.Fatalf("SetVersion() error = %v", err)
			}
			if got := readFile(t, path); got != tt.want {
				t.Errorf("file = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadCRLFValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "group=com.example\r\ndescription=first \\\r\n    second\r\n")

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, _ := f.Get("group"); got != "com.example" {
		t.Errorf("Get(group) = %q, want %q", got, "com.example")
	}
	if got, _ := f.Get("description"); got != "first second" {
		t.Errorf("Get(description) = %q, want %q", got, "first second")
	}
}

func TestSetSameValueKeepsFormatting(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), FileName))
	if err := f.parse([]byte("version : 1.0.0")); err != nil {
		t.Fatalf("parse() error = %v", err)
	}

	f.Set("version", "1.0.0")
	if got := string(f.Bytes()); got != "version : 1.0.0" {
		t.Errorf("Bytes() = %q, want original line without trailing newline", got)
	}
}

func TestSetAppendsNewKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "group=com.example")

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	f.Set("version", "1.0.0")

	if got := string(f.Bytes()); got != "group=com.example\nversion=1.0.0\n" {
		t.Errorf("Bytes() = %q", got)
	}
}

func TestSetVersionCreatesFile(t *testing.T) {
	dir := t.TempDir()

	if err := SetVersion(dir, "1.0.0"); err != nil {
		t.Fatalf("SetVersion() error = %v", err)
	}

	path := filepath.Join(dir, FileName)
	if got := readFile(t, path); got != "version=1.0.0\n" {
		t.Errorf("file = %q, want %q", got, "version=1.0.0\n")
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat() error = %v", err)
		}
		if info.Mode().Perm() != 0644 {
			t.Errorf("mode = %v, want 0644", info.Mode().Perm())
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only %s", len(entries), FileName)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	f := New(path)
	f.Set("signing.keyId", "ABCDEF12")
	f.Set("greeting", " hello world")
	f.Set("key=with:separators", "value")
	f.Set("name", "Łukasz")
	if err := f.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	f2, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for _, key := range f.Keys() {
		want, _ := f.Get(key)
		got, ok := f2.Get(key)
		if !ok || got != want {
			t.Errorf("Get(%q) = %q, %v; want %q", key, got, ok, want)
		}
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		key  bool
		want string
	}{
		{"plain value", "1.0.0", false, "1.0.0"},
		{"leading space value", " x y", false, `\ x y`},
		{"separator in key", "a=b:c", true, `a\=b\:c`},
		{"space in key", "a b", true, `a\ b`},
		{"backslash", `C:\tmp`, false, `C:\\tmp`},
		{"non-ascii", "é", false, `\u00E9`},
		{"newline", "a\nb", false, `a\nb`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escape(tt.in, tt.key); got != tt.want {
				t.Errorf("escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if got := unescape(escape(tt.in, tt.key)); got != tt.in {
				t.Errorf("unescape(escape(%q)) = %q", tt.in, got)
			}
		})
	}
}
