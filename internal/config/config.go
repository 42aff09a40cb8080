// Package config loads the per-user key=value configuration file.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds the recognized settings. Unknown keys in the file are ignored.
type Config struct {
	NotifyOnCreate bool
	NotifyOnExpire bool
	SoundOnExpire  bool
	SoundFile      string
	CleanupAge     time.Duration // retention window for completed entries
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		NotifyOnExpire: true,
		CleanupAge:     600 * time.Second,
	}
}

// Path resolves the config file location: $TOCK_CONFIG when set, otherwise
// tock/tock.conf under the per-user config directory.
func Path() (string, error) {
	if p := strings.TrimSpace(os.Getenv("TOCK_CONFIG")); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tock", "tock.conf"), nil
}

// Load reads the config from its resolved path. A missing file yields the
// defaults.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

// LoadFile reads key=value lines. Blank lines, comment lines and unknown keys
// are ignored; malformed values fall back to the default for that key.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		switch key {
		case "notify_on_create":
			cfg.NotifyOnCreate = val == "1"
		case "notify_on_expire":
			cfg.NotifyOnExpire = val == "1"
		case "sound_on_expire":
			cfg.SoundOnExpire = val == "1"
		case "sound_file":
			cfg.SoundFile = val
		case "cleanup_age":
			if n, err := strconv.ParseInt(val, 10, 64); err == nil && n >= 0 {
				cfg.CleanupAge = time.Duration(n) * time.Second
			}
		}
	}
	return cfg, nil
}

const fileTemplate = `# tock configuration
#
# notify_on_create=0   send a desktop notification when an entry is created
# notify_on_expire=1   send a desktop notification when an entry fires
# sound_on_expire=0    play sound_file when an entry fires
# sound_file=          path to a sound file
# cleanup_age=600      seconds a completed entry stays listed before pruning
`

// EnsureFile creates the config file with a commented template when it does
// not exist yet.
func EnsureFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(fileTemplate), 0o644)
}
