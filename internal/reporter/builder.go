// internal/reporter/builder.go
package reporter

import (
	"context"
	"time"

	cfg "github.com/opsdrift/dbstate/internal/config"
	"github.com/opsdrift/dbstate/internal/mssql"
)

// Build constructs a Reporter wired to the SQL Server client factory.
// Client lifecycle is per instance: open, read, close.
// No retries, no pooling across instances.
func Build(c *cfg.Config) (*Reporter, error) {
	d := c.DBState

	// client factory: ONE attempt per call
	factory := func(ctx context.Context, instance string) (Client, error) {
		return mssql.New(ctx, mssql.Config{
			Host:     instance,
			User:     d.Credential.User,
			Password: d.Credential.Password,
			Timeout:  time.Duration(d.ConnectTimeoutMs) * time.Millisecond,
		})
	}

	instances := make([]string, 0, len(d.Instances))
	for _, inst := range d.Instances {
		instances = append(instances, inst.Host)
	}

	return New(
		Config{
			Instances: instances,
			Include:   d.Filters.Include,
			Exclude:   d.Filters.Exclude,
		},
		factory,
	)
}
