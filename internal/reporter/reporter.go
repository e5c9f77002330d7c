// internal/reporter/reporter.go
package reporter

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/opsdrift/dbstate/internal/state"
)

// Client abstracts the server handle the reporter reads from.
// The reporter depends on names and state flags only.
type Client interface {
	ServerInfo(ctx context.Context) (state.ServerInfo, error)
	Databases(ctx context.Context) ([]state.DatabaseInfo, error)
	Close() error
}

// Factory opens a client for one instance. ONE attempt per call.
type Factory func(ctx context.Context, instance string) (Client, error)

// Config is the minimal runtime config the reporter needs.
type Config struct {
	Instances []string
	Include   []string
	Exclude   []string
}

// Reporter is a dumb, sequential reader.
type Reporter struct {
	cfg     Config
	factory Factory
}

// systemDatabases are always excluded, before any user filter.
var systemDatabases = []string{"master", "model", "msdb", "tempdb", "distribution"}

// New creates a reporter with immutable config.
func New(cfg Config, factory Factory) (*Reporter, error) {
	if len(cfg.Instances) == 0 {
		return nil, errors.New("reporter: at least one instance required")
	}
	if factory == nil {
		return nil, errors.New("reporter: client factory required")
	}
	return &Reporter{cfg: cfg, factory: factory}, nil
}

// ReportOnce reads exactly one instance.
// All-or-nothing: any failure aborts the instance, no partial records.
func (r *Reporter) ReportOnce(ctx context.Context, instance string) InstanceResult {
	res := InstanceResult{
		Instance: instance,
		At:       time.Now(),
	}

	cli, err := r.factory(ctx, instance)
	if err != nil {
		res.Err = err
		return res
	}
	defer cli.Close()

	srv, err := cli.ServerInfo(ctx)
	if err != nil {
		res.Err = err
		return res
	}

	dbs, err := cli.Databases(ctx)
	if err != nil {
		res.Err = err
		return res
	}

	var records []state.Record

	for _, db := range dbs {
		if isSystemDatabase(db.Name) {
			continue
		}
		if len(r.cfg.Include) > 0 && !containsFold(r.cfg.Include, db.Name) {
			continue
		}
		if len(r.cfg.Exclude) > 0 && containsFold(r.cfg.Exclude, db.Name) {
			continue
		}

		records = append(records, state.Translate(srv, db))
	}

	// Commit only if the whole read succeeded
	res.Records = records
	return res
}

func isSystemDatabase(name string) bool {
	return containsFold(systemDatabases, name)
}

// containsFold matches names case-insensitively, as SQL Server
// catalog comparisons do under default collation.
func containsFold(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
