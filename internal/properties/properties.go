// Package properties edits Java properties files such as gradle.properties.
// Lines that are not changed are written back exactly as they were read, so
// comments, ordering and unrelated keys survive a round trip.
package properties

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the Gradle properties file at a project root.
const FileName = "gradle.properties"

// entry is one logical line. A logical line spans several physical lines
// when they end with a continuation backslash; raw keeps their terminators
// and eol holds the terminator of the last one.
type entry struct {
	raw    string
	eol    string
	key    string
	value  string
	hasKey bool
}

// File is a properties document bound to a path.
type File struct {
	path    string
	entries []entry
	index   map[string]int
	mode    os.FileMode
	newline string
}

// New creates an empty document for path without touching the filesystem.
func New(path string) *File {
	return &File{
		path:    path,
		index:   make(map[string]int),
		mode:    0644,
		newline: "\n",
	}
}

// Load reads path. A missing file yields an empty document that Save will
// create.
func Load(path string) (*File, error) {
	f := New(path)

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat properties file: %w", err)
	}
	f.mode = info.Mode().Perm()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read properties file: %w", err)
	}
	if err := f.parse(data); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f, nil
}

func (f *File) parse(data []byte) error {
	reader := bufio.NewReader(bytes.NewReader(data))

	var raw, logical strings.Builder
	first := true
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if line == "" {
			break
		}

		content, eol := splitEOL(line)
		if first && eol != "" {
			f.newline = eol
			first = false
		}

		if raw.Len() == 0 {
			trimmed := strings.TrimLeft(content, " \t\f")
			if trimmed == "" || trimmed[0] == '#' || trimmed[0] == '!' {
				f.entries = append(f.entries, entry{raw: content, eol: eol})
				continue
			}
			logical.WriteString(trimmed)
		} else {
			logical.WriteString(strings.TrimLeft(content, " \t\f"))
		}
		raw.WriteString(content)

		if continues(content) && eol != "" {
			// Drop the continuation backslash and keep reading.
			s := logical.String()
			logical.Reset()
			logical.WriteString(s[:len(s)-1])
			raw.WriteString(eol)
			continue
		}

		f.add(raw.String(), eol, logical.String())
		raw.Reset()
		logical.Reset()
	}
	if raw.Len() > 0 {
		f.add(raw.String(), "", logical.String())
	}
	return nil
}

// splitEOL separates a line read with ReadString from its terminator.
func splitEOL(line string) (string, string) {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2], "\r\n"
	}
	if strings.HasSuffix(line, "\n") {
		return line[:len(line)-1], "\n"
	}
	return line, ""
}

func (f *File) add(raw, eol, logical string) {
	key, value := splitKeyValue(logical)
	f.entries = append(f.entries, entry{raw: raw, eol: eol, key: key, value: value, hasKey: true})
	f.index[key] = len(f.entries) - 1
}

// continues reports whether line ends with an odd number of backslashes.
func continues(line string) bool {
	n := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// splitKeyValue splits a logical line at the first unescaped '=', ':' or
// whitespace.
func splitKeyValue(line string) (string, string) {
	end := len(line)
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' {
			i++
			continue
		}
		if c == '=' || c == ':' || c == ' ' || c == '\t' || c == '\f' {
			end = i
			break
		}
	}

	key := line[:end]
	rest := strings.TrimLeft(line[end:], " \t\f")
	if rest != "" && (rest[0] == '=' || rest[0] == ':') {
		rest = strings.TrimLeft(rest[1:], " \t\f")
	}
	return unescape(key), unescape(rest)
}

// Get returns the value of key and whether it is set.
func (f *File) Get(key string) (string, bool) {
	i, ok := f.index[key]
	if !ok {
		return "", false
	}
	return f.entries[i].value, true
}

// Set assigns value to key. An existing entry is rewritten in place, a new
// key is appended at the end of the document.
func (f *File) Set(key, value string) {
	e := entry{
		raw:    escapeKey(key) + "=" + escapeValue(value),
		eol:    f.newline,
		key:    key,
		value:  value,
		hasKey: true,
	}
	if i, ok := f.index[key]; ok {
		if f.entries[i].value == value {
			return
		}
		e.eol = f.entries[i].eol
		f.entries[i] = e
		return
	}
	if n := len(f.entries); n > 0 && f.entries[n-1].eol == "" {
		f.entries[n-1].eol = f.newline
	}
	f.entries = append(f.entries, e)
	f.index[key] = len(f.entries) - 1
}

// Keys returns the keys in document order.
func (f *File) Keys() []string {
	var keys []string
	for i, e := range f.entries {
		if e.hasKey && f.index[e.key] == i {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// Bytes renders the document.
func (f *File) Bytes() []byte {
	var buf bytes.Buffer
	for _, e := range f.entries {
		buf.WriteString(e.raw)
		buf.WriteString(e.eol)
	}
	return buf.Bytes()
}

// Save writes the document using a temp file and an atomic rename.
func (f *File) Save() error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if err := tmpFile.Chmod(f.mode); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to set permissions on temp file: %w", err)
	}

	if _, err := tmpFile.Write(f.Bytes()); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", f.path, err)
	}

	return nil
}

// SetVersion writes version into dir/gradle.properties, creating the file if
// needed.
func SetVersion(dir, version string) error {
	f, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		return err
	}
	f.Set("version", version)
	return f.Save()
}
