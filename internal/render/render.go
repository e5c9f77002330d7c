// internal/render/render.go
package render

import (
	"fmt"
	"io"

	"github.com/opsdrift/dbstate/internal/config"
	"github.com/opsdrift/dbstate/internal/state"
)

// Renderer writes translated records to the output stream.
type Renderer interface {
	Render(records []state.Record) error
}

// New selects the renderer for a format.
// Formats are validated upstream; unknown values still fail here so the
// package stands on its own.
func New(format string, out io.Writer) (Renderer, error) {
	switch format {
	case "", config.OutputTable:
		return &tableRenderer{out: out}, nil
	case config.OutputJSON:
		return &jsonRenderer{out: out}, nil
	default:
		return nil, fmt.Errorf("render: unsupported format %q", format)
	}
}
