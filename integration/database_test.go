//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestBurnlensWithMySQL tests the burnlens CLI with a MySQL history backend.
func TestBurnlensWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "burnlens",
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

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/burnlens?parseTime=true", host, port.Port())

	runBurnlensHistoryFlow(t, "mysql", connStr)
}

// TestBurnlensWithPostgres tests the burnlens CLI with a PostgreSQL history backend.
func TestBurnlensWithPostgres(t *testing.T) {
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

	runBurnlensHistoryFlow(t, "postgresql", connStr)
}

// runBurnlensHistoryFlow exercises the history lifecycle against a live backend:
// migrate, record from reports, read back, export and clear.
func runBurnlensHistoryFlow(t *testing.T, backend, connStr string) {
	// Set environment variables
	_ = os.Setenv("BURNLENS_HISTORY_BACKEND", backend)
	_ = os.Setenv("BURNLENS_HISTORY_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("BURNLENS_HISTORY_BACKEND") }()
	defer func() { _ = os.Unsetenv("BURNLENS_HISTORY_DB_CONNECT") }()

	// Run burnlens history migrate
	_, err := runBurnlensCommand(t, "history", "migrate")
	require.NoError(t, err)

	// Run burnlens history clear
	_, err = runBurnlensCommand(t, "history", "clear")
	require.NoError(t, err)

	// Record a burndown summary snapshot
	_, err = runBurnlensCommand(t, "burndown", "integration/testdata/burndown.json", "--record")
	require.NoError(t, err)

	// Record velocity periods from a file
	_, err = runBurnlensCommand(t, "velocity", "integration/testdata/velocity.json", "--record")
	require.NoError(t, err)

	// Read the trend back from the history backend
	output, err := runBurnlensCommand(t, "velocity", "--team", "platform")
	require.NoError(t, err)
	assert.Contains(t, output, "improving")

	// Run burnlens history status
	output, err = runBurnlensCommand(t, "history", "status")
	require.NoError(t, err)
	assert.Contains(t, output, "burnlens_velocity")

	// Export the recorded velocity history to Parquet
	exportFile := filepath.Join(t.TempDir(), "velocity.parquet")
	_, err = runBurnlensCommand(t, "history", "export", "--team", "platform", "--output-file", exportFile)
	require.NoError(t, err)
	info, err := os.Stat(exportFile)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	// Run burnlens history clear again to leave a clean backend
	_, err = runBurnlensCommand(t, "history", "clear")
	require.NoError(t, err)
}
