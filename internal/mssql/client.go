// internal/mssql/client.go
package mssql

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"strconv"
	"time"

	_ "github.com/microsoft/go-mssqldb"

	"github.com/opsdrift/dbstate/internal/state"
)

// Client reads server identity and database state from one instance.
// This adapter is catalog-only: it queries sys.databases and server
// properties and never mutates server state.
type Client struct {
	db *sql.DB
}

// Config is minimal connection config.
type Config struct {
	Host     string
	User     string
	Password string
	Timeout  time.Duration
}

// New opens and verifies a connection to one instance.
// ONE attempt: a dead instance fails here, not on first query.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, errors.New("mssql client: host required")
	}

	db, err := sql.Open("sqlserver", dsn(cfg))
	if err != nil {
		return nil, err
	}

	pingCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{db: db}, nil
}

// Close closes the underlying pool.
func (c *Client) Close() error {
	return c.db.Close()
}

// dsn builds a sqlserver:// URL. Driver default auth applies when no
// credential is configured.
func dsn(cfg Config) string {
	u := &url.URL{
		Scheme: "sqlserver",
		Host:   cfg.Host,
	}

	if cfg.User != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}

	if cfg.Timeout > 0 {
		q := url.Values{}
		secs := int(cfg.Timeout / time.Second)
		if secs < 1 {
			secs = 1
		}
		q.Set("dial timeout", strconv.Itoa(secs))
		u.RawQuery = q.Encode()
	}

	return u.String()
}

// serverInfoQuery resolves the three identity fields in one round trip.
// InstanceName is NULL for a default instance; the service is then the
// well-known MSSQLSERVER.
const serverInfoQuery = `SELECT
	@@SERVERNAME,
	ISNULL(CONVERT(sysname, SERVERPROPERTY('InstanceName')), 'MSSQLSERVER'),
	ISNULL(CONVERT(sysname, SERVERPROPERTY('MachineName')), '')`

// ServerInfo reads the instance identity.
func (c *Client) ServerInfo(ctx context.Context) (state.ServerInfo, error) {
	var info state.ServerInfo

	row := c.db.QueryRowContext(ctx, serverInfoQuery)
	if err := row.Scan(&info.InstanceName, &info.ServiceName, &info.HostName); err != nil {
		return state.ServerInfo{}, err
	}

	return info, nil
}

// databasesQuery returns every database in catalog order (database_id).
const databasesQuery = `SELECT name, is_read_only, user_access, [state]
FROM sys.databases
ORDER BY database_id`

// Databases reads the full database collection.
// Raw catalog numbers are mapped to the engine's enum vocabulary here;
// translation to output labels happens downstream.
func (c *Client) Databases(ctx context.Context) ([]state.DatabaseInfo, error) {
	rows, err := c.db.QueryContext(ctx, databasesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []state.DatabaseInfo

	for rows.Next() {
		var (
			name      string
			readOnly  bool
			access    int
			rawStatus int
		)
		if err := rows.Scan(&name, &readOnly, &access, &rawStatus); err != nil {
			return nil, err
		}

		out = append(out, state.DatabaseInfo{
			Name:       name,
			ReadOnly:   readOnly,
			UserAccess: userAccessName(access),
			Status:     statusName(rawStatus),
		})
	}

	return out, rows.Err()
}

// userAccessName maps sys.databases.user_access to the engine vocabulary.
// Unknown values degrade to "".
func userAccessName(v int) string {
	switch v {
	case 0:
		return "Multiple"
	case 1:
		return "Single"
	case 2:
		return "Restricted"
	default:
		return ""
	}
}

// statusName maps sys.databases.state to the engine vocabulary.
// Unknown values degrade to "".
func statusName(v int) string {
	switch v {
	case 0:
		return "Normal"
	case 1:
		return "Restoring"
	case 2:
		return "Recovering"
	case 3:
		return "RecoveryPending"
	case 4:
		return "Suspect"
	case 5:
		return "EmergencyMode"
	case 6:
		return "Offline"
	default:
		return ""
	}
}
