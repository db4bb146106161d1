package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file at the root of a ledger directory.
const FileName = "clubledger.yaml"

// Config represents the top-level clubledger.yaml configuration.
type Config struct {
	Club           ClubConfig           `yaml:"club"`
	Reconciliation ReconciliationConfig `yaml:"reconciliation"`
	Git            GitConfig            `yaml:"git"`
}

// ClubConfig identifies the club.
type ClubConfig struct {
	Name        string `yaml:"name"`
	BankAccount string `yaml:"bank_account,omitempty"`
}

// ReconciliationConfig sets defaults applied when committing reconciliations.
type ReconciliationConfig struct {
	PaymentMethod     string `yaml:"payment_method"`
	DefaultCostCenter string `yaml:"default_cost_center"`
}

// GitConfig controls git integration for the ledger directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a clubledger.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
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

// Default returns a Config with sensible defaults for a new club ledger.
func Default(clubName string) *Config {
	return &Config{
		Club: ClubConfig{
			Name: clubName,
		},
		Reconciliation: ReconciliationConfig{
			PaymentMethod:     "transferencia",
			DefaultCostCenter: "administrativo",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Club Ledger",
			AuthorEmail: "ledger@clubledger.dev",
		},
	}
}
