// Package config handles loading and saving the phrase list for parlor.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// PhrasesFile is the name of the phrase list inside the config directory.
const PhrasesFile = "phrases.yaml"

// ErrNoPhrases is returned when a phrase list has no usable entries.
var ErrNoPhrases = errors.New("no phrases configured")

//go:embed phrases.yaml
var defaultPhrases []byte

// Config holds the hangman phrase list.
type Config struct {
	Topic   string   `yaml:"topic"`   // Shown above the figure, e.g. "family movies"
	Phrases []string `yaml:"phrases"` // Candidate secret phrases
}

// Default returns the built-in phrase list.
func Default() *Config {
	cfg, err := Parse(defaultPhrases)
	if err != nil {
		panic(fmt.Sprintf("embedded phrase list: %v", err))
	}
	return cfg
}

// Parse decodes a phrase list. Entries are trimmed, and entries without
// an ASCII letter are dropped since there would be nothing to guess.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing phrases file: %w", err)
	}

	phrases := cfg.Phrases[:0]
	for _, p := range cfg.Phrases {
		if p = strings.TrimSpace(p); strings.ContainsFunc(p, isASCIILetter) {
			phrases = append(phrases, p)
		}
	}
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}
	cfg.Phrases = phrases
	cfg.Topic = strings.TrimSpace(cfg.Topic)

	return &cfg, nil
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// Load loads a phrase list from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading phrases file: %w", err)
	}
	return Parse(data)
}

// LoadDir loads phrases.yaml from a config directory.
func LoadDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, PhrasesFile))
}

// WriteTemplate writes the built-in phrases.yaml, comments included, to path.
func WriteTemplate(path string) error {
	if err := os.WriteFile(path, defaultPhrases, 0644); err != nil {
		return fmt.Errorf("writing phrases file: %w", err)
	}
	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "parlor"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
