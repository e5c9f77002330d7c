// internal/reporter/types.go
package reporter

import (
	"time"

	"github.com/opsdrift/dbstate/internal/state"
)

// InstanceResult is everything one instance produced.
type InstanceResult struct {
	Instance string
	At       time.Time

	// Records is nil when Err is set: a failed instance contributes nothing.
	Records []state.Record

	Err error // non-nil means the instance was unreachable
}
