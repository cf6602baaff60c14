// Package config loads the optional .denvl.yml that tunes diagnostic
// rendering. Nothing in internal/parser or internal/lexer reads it: config
// is strictly an ambient concern of the CLI layer.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by Find when no config file exists between dir
// and the filesystem root.
var ErrNotFound = errors.New("config: no .denvl.yml found")

// Names are the filenames Find searches for, in order, at each directory.
var Names = []string{".denvl.yml", ".denvl.yaml"}

// Config controls how internal/format renders a diagnostic report.
type Config struct {
	// Color forces colorized output on or off. A nil value leaves the
	// terminal auto-detection in internal/format alone.
	Color *bool `yaml:"color,omitempty"`

	// ContextLines is how many source lines of context to print above the
	// caret line. 0 means just the offending line.
	ContextLines int `yaml:"context_lines,omitempty"`

	// TabWidth is the column width a literal tab occupies when internal/format
	// computes the caret's indentation.
	TabWidth int `yaml:"tab_width,omitempty"`
}

// Default returns the configuration used when no .denvl.yml is present.
func Default() Config {
	return Config{ContextLines: 0, TabWidth: 1}
}

// Find walks upward from dir looking for a file named in Names, the way
// rlch-scaf's FindConfig locates .scaf.yaml.
func Find(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for cur := absDir; ; {
		for _, name := range Names {
			path := filepath.Join(cur, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", ErrNotFound
		}
		cur = parent
	}
}

// Load reads and parses the config file at path.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromDir finds and loads the nearest config under dir, falling back to
// Default when none exists rather than treating that as an error.
func LoadFromDir(dir string) (Config, error) {
	path, err := Find(dir)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return Load(path)
}
