// Package config reads the optional gnc2ledger.yaml settings file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file looked for next to the input document.
const FileName = "gnc2ledger.yaml"

// Config holds defaults for the convert flags. Flags given explicitly on
// the command line win over file values.
type Config struct {
	Cleared         bool   `yaml:"cleared"`
	UseSymbols      bool   `yaml:"use_symbols"`
	PayeeMetadata   bool   `yaml:"payee_metadata"`
	EmacsHeader     bool   `yaml:"emacs_header"`
	DateFormat      string `yaml:"date_format"`
	NoCommodityDefs bool   `yaml:"no_commodity_defs"`
	NoAccountDefs   bool   `yaml:"no_account_defs"`
	NoTransactions  bool   `yaml:"no_transactions"`
}

// Load reads a settings file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		DateFormat: "%Y-%m-%d",
	}
}
