// internal/config/normalize.go
package config

import (
	"os"
	"strings"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	d := &cfg.DBState

	// ------------------------------------------------------------
	// DEFAULTS
	// ------------------------------------------------------------

	if d.ConnectTimeoutMs == 0 {
		d.ConnectTimeoutMs = DefaultConnectTimeoutMs
	}
	if d.Output == "" {
		d.Output = OutputTable
	}

	// ------------------------------------------------------------
	// NAME TRIMMING
	// ------------------------------------------------------------

	for i := range d.Instances {
		d.Instances[i].Host = strings.TrimSpace(d.Instances[i].Host)
	}
	for i := range d.Filters.Include {
		d.Filters.Include[i] = strings.TrimSpace(d.Filters.Include[i])
	}
	for i := range d.Filters.Exclude {
		d.Filters.Exclude[i] = strings.TrimSpace(d.Filters.Exclude[i])
	}

	// ------------------------------------------------------------
	// CREDENTIAL RESOLUTION (OPT-IN)
	// ------------------------------------------------------------

	// An explicitly set password wins over the environment.
	if d.Credential.Password == "" && d.Credential.PasswordEnv != "" {
		d.Credential.Password = os.Getenv(d.Credential.PasswordEnv)
	}
}
