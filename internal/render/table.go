// internal/render/table.go
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/opsdrift/dbstate/internal/state"
)

// tableRenderer writes aligned columns for terminal reading.
type tableRenderer struct {
	out io.Writer
}

func (r *tableRenderer) Render(records []state.Record) error {
	// Zero records, zero output. No header for empty results.
	if len(records) == 0 {
		return nil
	}

	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)

	if _, err := fmt.Fprintln(w, "INSTANCE\tSERVICE\tHOST\tDATABASE\tRW\tSTATUS\tACCESS"); err != nil {
		return err
	}

	for _, rec := range records {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.InstanceName,
			rec.ServiceName,
			rec.HostName,
			rec.Database,
			rec.ReadWrite,
			rec.Status,
			rec.Access,
		)
		if err != nil {
			return err
		}
	}

	return w.Flush()
}
