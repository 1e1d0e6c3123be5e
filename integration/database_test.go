//go:build database

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestPassclockWithMySQL tests the passclock CLI with a MySQL pass log backend.
func TestPassclockWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "passclock",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/passclock?parseTime=true", host, port.Port())
	runLogLifecycle(t, "mysql", connStr)
}

// TestPassclockWithPostgres tests the passclock CLI with a PostgreSQL pass log backend.
func TestPassclockWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())
	runLogLifecycle(t, "postgresql", connStr)
}

// runLogLifecycle exercises the pass log subcommands against a live backend.
func runLogLifecycle(t *testing.T, backend, connStr string) {
	t.Helper()

	env := []string{
		"PASSCLOCK_LOG_BACKEND=" + backend,
		"PASSCLOCK_LOG_DB_CONNECT=" + connStr,
	}
	workDir := t.TempDir()

	// Migrate to the latest schema version
	_, err := runPassclockCommand(t, workDir, env, "log", "migrate")
	require.NoError(t, err)

	// Clear any prior events
	_, err = runPassclockCommand(t, workDir, env, "log", "clear")
	require.NoError(t, err)

	// Status should report a reachable backend with zero events
	out, err := runPassclockCommand(t, workDir, env, "log", "status")
	require.NoError(t, err)
	require.Contains(t, out, backend)

	// Listing an empty log should succeed
	_, err = runPassclockCommand(t, workDir, env, "log", "list")
	require.NoError(t, err)
}
