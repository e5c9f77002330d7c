// cmd/dbstate/main_test.go
package main

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdrift/dbstate/internal/config"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		instances = nil
		user = ""
		password = ""
		includeDBs = nil
		excludeDBs = nil
		connTimeout = 0
		output = ""
	})
}

func TestScanInstances(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader("sql1\n\n  sql2:1433  \n"))

	hosts, err := scanInstances(sc)
	require.NoError(t, err)
	assert.Equal(t, []string{"sql1", "sql2:1433"}, hosts)
}

func TestMergeFlags_ArgsReplaceConfigInstances(t *testing.T) {
	resetFlags(t)

	cfg := &config.Config{}
	cfg.DBState.Instances = []config.InstanceConfig{{Host: "from-config"}}

	require.NoError(t, mergeFlags(cfg, []string{"sql1", "sql2"}))

	require.Len(t, cfg.DBState.Instances, 2)
	assert.Equal(t, "sql1", cfg.DBState.Instances[0].Host)
	assert.Equal(t, "sql2", cfg.DBState.Instances[1].Host)
}

func TestMergeFlags_InstanceFlagAppendsToArgs(t *testing.T) {
	resetFlags(t)
	instances = []string{"sql3"}

	cfg := &config.Config{}
	require.NoError(t, mergeFlags(cfg, []string{"sql1"}))

	require.Len(t, cfg.DBState.Instances, 2)
	assert.Equal(t, "sql3", cfg.DBState.Instances[1].Host)
}

func TestMergeFlags_CredentialFallsBackToEnvName(t *testing.T) {
	resetFlags(t)
	user = "scanner"

	cfg := &config.Config{}
	require.NoError(t, mergeFlags(cfg, []string{"sql1"}))

	assert.Equal(t, "scanner", cfg.DBState.Credential.User)
	assert.Equal(t, passwordEnvVar, cfg.DBState.Credential.PasswordEnv)
}

func TestMergeFlags_FiltersAndTimeoutAndOutput(t *testing.T) {
	resetFlags(t)
	includeDBs = []string{"HR"}
	excludeDBs = []string{"Scratch"}
	connTimeout = 5 * time.Second
	output = "json"

	cfg := &config.Config{}
	require.NoError(t, mergeFlags(cfg, []string{"sql1"}))

	assert.Equal(t, []string{"HR"}, cfg.DBState.Filters.Include)
	assert.Equal(t, []string{"Scratch"}, cfg.DBState.Filters.Exclude)
	assert.Equal(t, 5000, cfg.DBState.ConnectTimeoutMs)
	assert.Equal(t, "json", cfg.DBState.Output)
}
