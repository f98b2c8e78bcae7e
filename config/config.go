package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the planner defaults applied whenever a flag is not given
type Config struct {
	Account AccountConfig `json:"account" yaml:"account"`
	Plan    PlanConfig    `json:"plan" yaml:"plan"`
	Store   StoreConfig   `json:"store" yaml:"store"`
}

// AccountConfig contains the fallback account parameters
type AccountConfig struct {
	Size float64 `json:"size" yaml:"size"`
}

// PlanConfig contains the default plan geometry
type PlanConfig struct {
	RiskPercent   float64 `json:"risk_percent" yaml:"risk_percent"`
	StopMultiple  float64 `json:"stop_multiple" yaml:"stop_multiple"`
	TargetR       float64 `json:"target_r" yaml:"target_r"`
	TrailMultiple float64 `json:"trail_multiple" yaml:"trail_multiple"`
	EntryBuffer   float64 `json:"entry_buffer" yaml:"entry_buffer"`
}

// StoreConfig contains preference storage parameters
type StoreConfig struct {
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	// Determine format by extension
	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Size <= 0 {
		return fmt.Errorf("account.size must be positive")
	}
	if c.Plan.RiskPercent <= 0 || c.Plan.RiskPercent > 100 {
		return fmt.Errorf("plan.risk_percent must be between 0 and 100")
	}
	if c.Plan.StopMultiple < 0 {
		return fmt.Errorf("plan.stop_multiple cannot be negative")
	}
	if c.Plan.TargetR <= 0 {
		return fmt.Errorf("plan.target_r must be positive")
	}
	if c.Plan.TrailMultiple < 0 {
		return fmt.Errorf("plan.trail_multiple cannot be negative")
	}
	if c.Plan.EntryBuffer < 0 {
		return fmt.Errorf("plan.entry_buffer cannot be negative")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Size: 10000,
		},
		Plan: PlanConfig{
			RiskPercent:   1,
			StopMultiple:  2,
			TargetR:       2,
			TrailMultiple: 1,
			EntryBuffer:   0.05,
		},
		Store: StoreConfig{},
	}
}
