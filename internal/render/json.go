// internal/render/json.go
package render

import (
	"encoding/json"
	"io"

	"github.com/opsdrift/dbstate/internal/state"
)

// jsonRenderer writes one array of record objects, for piping into jq
// or other tooling.
type jsonRenderer struct {
	out io.Writer
}

func (r *jsonRenderer) Render(records []state.Record) error {
	// Empty results are an empty array, not null.
	if records == nil {
		records = []state.Record{}
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
