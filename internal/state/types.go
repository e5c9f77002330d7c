// internal/state/types.go
package state

// ServerInfo identifies the instance a record came from.
type ServerInfo struct {
	InstanceName string
	ServiceName  string
	HostName     string
}

// DatabaseInfo is one database's raw state as the engine reports it.
// Retrieved, never mutated.
type DatabaseInfo struct {
	Name     string
	ReadOnly bool

	// UserAccess uses the engine vocabulary: Single, Restricted, Multiple.
	UserAccess string

	// Status uses the engine vocabulary: Normal, Offline, EmergencyMode,
	// Restoring, Recovering, RecoveryPending, Suspect. Composite values
	// such as "Normal, AutoClosed" are possible.
	Status string
}

// Record is one translated row of output.
type Record struct {
	InstanceName string `json:"instance"`
	ServiceName  string `json:"service"`
	HostName     string `json:"host"`
	Database     string `json:"database"`
	ReadWrite    string `json:"read_write"`
	Status       string `json:"status"`
	Access       string `json:"access"`
}
