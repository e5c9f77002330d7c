// cmd/dbstate/main.go
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/opsdrift/dbstate/internal/config"
	"github.com/opsdrift/dbstate/internal/render"
	"github.com/opsdrift/dbstate/internal/reporter"
	"github.com/opsdrift/dbstate/internal/state"
)

var (
	// Flags
	cfgPath     string
	instances   []string
	user        string
	password    string
	includeDBs  []string
	excludeDBs  []string
	connTimeout time.Duration
	output      string
	verbose     bool

	// Logger
	logger *zap.Logger
)

// passwordEnvVar is consulted when --user is set but --password is not.
const passwordEnvVar = "DBSTATE_PASSWORD"

var rootCmd = &cobra.Command{
	Use:   "dbstate [flags] [instance ...]",
	Short: "Report per-database state flags for SQL Server instances",
	Long: `dbstate connects to one or more SQL Server instances and reports each
database's read-write mode, operational status, and user-access mode as
normalized labels.

Instances come from positional arguments, --instance flags, lines piped on
stdin, or a YAML config file, in that order of precedence. Unreachable
instances are reported as warnings and skipped; the remaining instances are
still processed.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		zcfg.OutputPaths = []string{"stderr"}
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		l, err := zcfg.Build()
		if err != nil {
			return fmt.Errorf("logger init failed: %w", err)
		}
		logger = l.With(zap.String("run_id", uuid.NewString()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "YAML config file")
	rootCmd.Flags().StringArrayVar(&instances, "instance", nil, "instance to query (repeatable)")
	rootCmd.Flags().StringVarP(&user, "user", "u", "", "SQL login name (default: driver auth)")
	rootCmd.Flags().StringVarP(&password, "password", "p", "", "SQL login password (default: $"+passwordEnvVar+")")
	rootCmd.Flags().StringArrayVar(&includeDBs, "database", nil, "database to include (repeatable; default: all)")
	rootCmd.Flags().StringArrayVar(&excludeDBs, "exclude-database", nil, "database to exclude (repeatable)")
	rootCmd.Flags().DurationVar(&connTimeout, "timeout", 0, "connect timeout (default 15s)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json (default table)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	// --------------------
	// Load config + merge flags
	// --------------------

	cfg := &config.Config{}
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if err := mergeFlags(cfg, args); err != nil {
		return err
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	config.Normalize(cfg)

	if len(cfg.DBState.Instances) == 0 {
		return errors.New("no instances given (args, --instance, stdin, or config)")
	}

	// --------------------
	// Build reporter + renderer
	// --------------------

	rep, err := reporter.Build(cfg)
	if err != nil {
		return err
	}

	r, err := render.New(cfg.DBState.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	// --------------------
	// Sequential report pass
	// --------------------

	out := make(chan reporter.InstanceResult)
	go rep.Run(context.Background(), out)

	var records []state.Record

	for res := range out {
		if res.Err != nil {
			logger.Warn("instance unreachable, skipping",
				zap.String("instance", res.Instance),
				zap.Error(res.Err),
			)
			continue
		}

		logger.Debug("instance reported",
			zap.String("instance", res.Instance),
			zap.Int("databases", len(res.Records)),
			zap.Duration("elapsed", time.Since(res.At)),
		)
		records = append(records, res.Records...)
	}

	return r.Render(records)
}

// mergeFlags overlays command-line input onto the (possibly empty) file
// config. Flag-provided instances replace configured ones entirely.
func mergeFlags(cfg *config.Config, args []string) error {
	d := &cfg.DBState

	hosts := append(append([]string{}, args...), instances...)
	if len(hosts) == 0 {
		piped, err := stdinInstances()
		if err != nil {
			return err
		}
		hosts = piped
	}

	if len(hosts) > 0 {
		d.Instances = d.Instances[:0]
		for _, h := range hosts {
			d.Instances = append(d.Instances, config.InstanceConfig{Host: h})
		}
	}

	if user != "" {
		d.Credential.User = user
		d.Credential.Password = password
		if password == "" && d.Credential.PasswordEnv == "" {
			d.Credential.PasswordEnv = passwordEnvVar
		}
	}

	if len(includeDBs) > 0 {
		d.Filters.Include = includeDBs
	}
	if len(excludeDBs) > 0 {
		d.Filters.Exclude = excludeDBs
	}

	if connTimeout > 0 {
		d.ConnectTimeoutMs = int(connTimeout / time.Millisecond)
	}
	if output != "" {
		d.Output = output
	}

	return nil
}

// stdinInstances reads piped instance names, one per line.
// Returns nil when stdin is a terminal.
func stdinInstances() ([]string, error) {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return nil, nil
	}
	if fi.Mode()&os.ModeCharDevice != 0 {
		return nil, nil
	}

	return scanInstances(bufio.NewScanner(os.Stdin))
}

func scanInstances(sc *bufio.Scanner) ([]string, error) {
	var hosts []string
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			hosts = append(hosts, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading instances from stdin: %w", err)
	}
	return hosts, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dbstate:", err)
		os.Exit(1)
	}
}
