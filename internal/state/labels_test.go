// internal/state/labels_test.go
package state

import "testing"

// ---- tests ----

func TestStatusLabel_Vocabulary(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Normal", LabelOnline},
		{"Offline", LabelOffline},
		{"EmergencyMode", LabelEmergency},
		{"Restoring", ""},
		{"Recovering", ""},
		{"RecoveryPending", ""},
		{"Suspect", ""},
		{"", ""},
		{"garbage", ""},
	}

	for _, c := range cases {
		if got := StatusLabel(c.raw); got != c.want {
			t.Fatalf("StatusLabel(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestStatusLabel_CompositeResolvesByPrimaryFlag(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Normal, AutoClosed", LabelOnline},
		{"Normal, Shutdown", LabelOnline},
		{"Offline, AutoClosed", LabelOffline},
	}

	for _, c := range cases {
		if got := StatusLabel(c.raw); got != c.want {
			t.Fatalf("StatusLabel(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

// Offline must win over Normal when both appear.
func TestStatusLabel_Priority(t *testing.T) {
	if got := StatusLabel("Normal, Offline"); got != LabelOffline {
		t.Fatalf("StatusLabel priority: got %q, want %q", got, LabelOffline)
	}
}

func TestReadWriteLabel(t *testing.T) {
	if got := ReadWriteLabel(true); got != LabelReadOnly {
		t.Fatalf("ReadWriteLabel(true) = %q", got)
	}
	if got := ReadWriteLabel(false); got != LabelReadWrite {
		t.Fatalf("ReadWriteLabel(false) = %q", got)
	}
}

func TestAccessLabel(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Single", LabelSingleUser},
		{"Restricted", LabelRestrictedUser},
		{"Multiple", LabelMultiUser},
		{"", ""},
		{"single", ""}, // engine vocabulary is exact
		{"Shared", ""},
	}

	for _, c := range cases {
		if got := AccessLabel(c.raw); got != c.want {
			t.Fatalf("AccessLabel(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	srv := ServerInfo{
		InstanceName: "SQL01\\PROD",
		ServiceName:  "PROD",
		HostName:     "SQL01",
	}
	db := DatabaseInfo{
		Name:       "HR",
		ReadOnly:   true,
		UserAccess: "Restricted",
		Status:     "Normal, AutoClosed",
	}

	got := Translate(srv, db)

	want := Record{
		InstanceName: "SQL01\\PROD",
		ServiceName:  "PROD",
		HostName:     "SQL01",
		Database:     "HR",
		ReadWrite:    LabelReadOnly,
		Status:       LabelOnline,
		Access:       LabelRestrictedUser,
	}
	if got != want {
		t.Fatalf("Translate mismatch:\n got %+v\nwant %+v", got, want)
	}
}
