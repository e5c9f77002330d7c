// internal/state/labels.go
package state

import "strings"

// Normalized output labels.
// These values define the output contract and MUST NOT be configurable.

// ---- READ/WRITE ----

// LabelReadOnly means writes are rejected.
const LabelReadOnly = "READ_ONLY"

// LabelReadWrite means writes are permitted.
const LabelReadWrite = "READ_WRITE"

// ---- STATUS ----

// LabelOffline represents an offline database.
const LabelOffline = "OFFLINE"

// LabelOnline represents a normally operating database.
const LabelOnline = "ONLINE"

// LabelEmergency represents a database in emergency mode.
const LabelEmergency = "EMERGENCY"

// ---- ACCESS ----

// LabelSingleUser permits one user connection.
const LabelSingleUser = "SINGLE_USER"

// LabelRestrictedUser permits privileged connections only.
const LabelRestrictedUser = "RESTRICTED_USER"

// LabelMultiUser permits all user connections.
const LabelMultiUser = "MULTI_USER"

// accessLabels maps the engine's user-access vocabulary to output labels.
var accessLabels = map[string]string{
	"Single":     LabelSingleUser,
	"Restricted": LabelRestrictedUser,
	"Multiple":   LabelMultiUser,
}

// statusCandidates are tested in order; first substring match wins.
// Order is load-bearing: composite engine values like "Normal, AutoClosed"
// must resolve by their primary flag.
var statusCandidates = []struct {
	raw   string
	label string
}{
	{"Offline", LabelOffline},
	{"Normal", LabelOnline},
	{"EmergencyMode", LabelEmergency},
}

// AccessLabel translates the engine user-access value.
// Unknown input yields the empty string.
func AccessLabel(raw string) string {
	return accessLabels[raw]
}

// ReadWriteLabel translates the read-only flag. Exhaustive.
func ReadWriteLabel(readOnly bool) string {
	if readOnly {
		return LabelReadOnly
	}
	return LabelReadWrite
}

// StatusLabel translates the engine status value.
// Unknown input yields the empty string.
func StatusLabel(raw string) string {
	for _, c := range statusCandidates {
		if strings.Contains(raw, c.raw) {
			return c.label
		}
	}
	return ""
}

// Translate converts one raw database row into an output record.
// No IO. No side effects.
func Translate(srv ServerInfo, db DatabaseInfo) Record {
	return Record{
		InstanceName: srv.InstanceName,
		ServiceName:  srv.ServiceName,
		HostName:     srv.HostName,
		Database:     db.Name,
		ReadWrite:    ReadWriteLabel(db.ReadOnly),
		Status:       StatusLabel(db.Status),
		Access:       AccessLabel(db.UserAccess),
	}
}
