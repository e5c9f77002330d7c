// internal/config/validate.go
package config

import (
	"fmt"
	"strings"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	// ------------------------------------------------------------
	// INSTANCE VALIDATION
	// ------------------------------------------------------------

	// key = lowercased host; SQL Server identities compare case-insensitively
	seen := make(map[string]int)

	for i, inst := range cfg.DBState.Instances {
		host := strings.TrimSpace(inst.Host)
		if host == "" {
			return fmt.Errorf("config: instance %d: host required", i)
		}

		key := strings.ToLower(host)
		if prev, exists := seen[key]; exists {
			return fmt.Errorf(
				"config: duplicate instance %q (entries %d and %d)",
				host, prev, i,
			)
		}
		seen[key] = i
	}

	// ------------------------------------------------------------
	// CREDENTIAL VALIDATION
	// ------------------------------------------------------------

	if cfg.DBState.Credential.PasswordEnv != "" && cfg.DBState.Credential.User == "" {
		return fmt.Errorf("config: credential password_env is set but user is empty")
	}

	// ------------------------------------------------------------
	// FILTER VALIDATION
	// ------------------------------------------------------------

	for i, name := range cfg.DBState.Filters.Include {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("config: filters.include entry %d is empty", i)
		}
	}
	for i, name := range cfg.DBState.Filters.Exclude {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("config: filters.exclude entry %d is empty", i)
		}
	}

	// ------------------------------------------------------------
	// OUTPUT / TIMEOUT VALIDATION
	// ------------------------------------------------------------

	if cfg.DBState.ConnectTimeoutMs < 0 {
		return fmt.Errorf(
			"config: connect_timeout_ms must be >= 0, got %d",
			cfg.DBState.ConnectTimeoutMs,
		)
	}

	switch cfg.DBState.Output {
	case "", OutputTable, OutputJSON:
	default:
		return fmt.Errorf(
			"config: output must be %q or %q, got %q",
			OutputTable, OutputJSON, cfg.DBState.Output,
		)
	}

	return nil
}
