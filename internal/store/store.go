// Package store persists timer and alarm records in a shared plain-text log
// file, one record per line. There is no lock: writers use atomic
// replace-on-write so readers never observe a torn file, entry creation is a
// pure append, and removal matches exact line text so concurrent mutations
// degrade to benign no-ops instead of touching unrelated records.
package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Store reads and writes one log file.
type Store struct {
	Path string
}

// DefaultPath resolves the log file location: $TOCK_FILE when set, otherwise
// tock/timers.log under the per-user cache directory.
func DefaultPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv("TOCK_FILE")); p != "" {
		return p, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tock", "timers.log"), nil
}

// Load reads all records in file order. A missing file is not an error; the
// parent directory is created so later appends succeed.
func (s Store) Load() ([]Entry, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
				return nil, err
			}
			return nil, nil
		}
		return nil, err
	}
	var out []Entry
	for _, line := range strings.Split(string(b), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, ParseLine(line))
	}
	return out, nil
}

// Append adds one record with a single O_APPEND write. Creation never reads
// prior state, which keeps concurrent schedule invocations from losing each
// other's entries.
func (s Store) Append(line string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Rewrite atomically replaces the file contents with the given lines.
func (s Store) Rewrite(lines []string) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return atomicWriteFile(dir, filepath.Base(s.Path)+".*.tmp", s.Path, []byte(b.String()), 0o644)
}

// Remove deletes the first line exactly equal to the given record text and
// rewrites the file. Exact comparison (never pattern matching) keeps messages
// containing separator characters from deleting unrelated records; a missing
// line is a no-op, which is how completion and cancellation tolerate racing
// each other.
func (s Store) Remove(line string) error {
	entries, err := s.Load()
	if err != nil {
		return err
	}
	out := make([]string, 0, len(entries))
	removed := false
	for _, e := range entries {
		if !removed && e.Raw == line {
			removed = true
			continue
		}
		out = append(out, e.Raw)
	}
	if !removed {
		return nil
	}
	return s.Rewrite(out)
}

// atomicWriteFile writes to a unique temp file in dir and renames it into
// place, so a concurrently reading process sees either the old or the new
// contents, never a partial write.
func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
