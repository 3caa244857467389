// Package prefs holds user preferences persisted locally, outside the
// remote store.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Prefs holds local user preferences
type Prefs struct {
	Language string `yaml:"language" json:"language"` // UI language: EN or BN
	Currency string `yaml:"currency" json:"currency"` // Display currency code
}

// DefaultPrefs returns default settings
func DefaultPrefs() *Prefs {
	return &Prefs{
		Language: "BN",
		Currency: "BDT",
	}
}

// ToggleLanguage flips between the two supported languages.
func (p *Prefs) ToggleLanguage() {
	if p.Language == "EN" {
		p.Language = "BN"
	} else {
		p.Language = "EN"
	}
}

func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".lensfocus", "prefs.yaml"), nil
}

// Load loads preferences from ~/.lensfocus/prefs.yaml
func Load() (*Prefs, error) {
	path, err := defaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads preferences from the given path. A missing file yields
// the defaults.
func LoadFrom(path string) (*Prefs, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultPrefs(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prefs: %w", err)
	}

	p := DefaultPrefs()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse prefs: %w", err)
	}

	if p.Language != "EN" && p.Language != "BN" {
		p.Language = "BN"
	}
	return p, nil
}

// Save saves preferences to ~/.lensfocus/prefs.yaml
func (p *Prefs) Save() error {
	path, err := defaultPath()
	if err != nil {
		return err
	}
	return p.SaveTo(path)
}

// SaveTo saves preferences to the given path, creating the directory if
// needed.
func (p *Prefs) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create prefs directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal prefs: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write prefs: %w", err)
	}
	return nil
}
