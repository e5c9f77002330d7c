// internal/reporter/runner.go
package reporter

import "context"

// Run reads every configured instance in input order and emits one
// InstanceResult per instance. Sequential, no overlap, no retries.
// A failed instance never blocks the ones after it.
func (r *Reporter) Run(ctx context.Context, out chan<- InstanceResult) {
	defer close(out)

	for _, inst := range r.cfg.Instances {
		select {
		case <-ctx.Done():
			return
		default:
		}

		out <- r.ReportOnce(ctx, inst)
	}
}
