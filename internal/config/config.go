// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBState DBStateConfig `yaml:"dbstate"`
}

type DBStateConfig struct {
	Instances        []InstanceConfig `yaml:"instances"`
	Credential       CredentialConfig `yaml:"credential"`
	Filters          FilterConfig     `yaml:"filters"`
	ConnectTimeoutMs int              `yaml:"connect_timeout_ms"`
	Output           string           `yaml:"output"`
}

// ---- INSTANCE ----

type InstanceConfig struct {
	Host string `yaml:"host"`
}

// ---- CREDENTIAL ----

type CredentialConfig struct {
	User        string `yaml:"user"`
	PasswordEnv string `yaml:"password_env"`

	// Password is resolved by Normalize (from PasswordEnv) or set directly
	// by the caller. Never read from the file itself.
	Password string `yaml:"-"`
}

// ---- FILTERS ----

type FilterConfig struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// ---- DEFAULTS ----

const DefaultConnectTimeoutMs = 15000

const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return &cfg, nil
}
