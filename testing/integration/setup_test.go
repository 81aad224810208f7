// Package integration runs quill statements against real databases.
package integration

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mariadb"
	"github.com/testcontainers/testcontainers-go/modules/mssql"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/zoobzio/quill/db"
)

// container is a started database container and its connection string.
type container struct {
	terminate func(context.Context) error
	connStr   string
}

// Shared containers - lazily initialized
var (
	sharedPostgres *container
	sharedMariaDB  *container
	sharedMSSQL    *container

	pgOnce      sync.Once
	mariadbOnce sync.Once
	mssqlOnce   sync.Once
)

// TestMain terminates any containers started by the tests.
func TestMain(m *testing.M) {
	code := m.Run()

	ctx := context.Background()
	for _, c := range []*container{sharedPostgres, sharedMariaDB, sharedMSSQL} {
		if c != nil && c.terminate != nil {
			_ = c.terminate(ctx)
		}
	}

	os.Exit(code)
}

func skipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
}

// openExecutor opens driver on connStr, waiting up to attempts seconds for the
// server to accept connections.
func openExecutor(t *testing.T, driver, connStr string, attempts int) *db.Executor {
	t.Helper()

	ex, err := db.Open(driver, connStr)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", driver, err)
	}
	t.Cleanup(func() { _ = ex.Close() })

	for i := 0; i < attempts; i++ {
		if err = ex.DB().Ping(); err == nil {
			return ex
		}
		time.Sleep(time.Second)
	}
	t.Fatalf("Failed to connect to %s: %v", driver, err)
	return nil
}

// getPostgres returns the shared PostgreSQL container, starting it if needed.
func getPostgres(t *testing.T) *container {
	t.Helper()

	pgOnce.Do(func() {
		ctx := context.Background()

		c, err := postgres.Run(ctx,
			"docker.io/postgres:16-alpine",
			postgres.WithDatabase("quill_test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start postgres container: %v", err)
		}

		connStr, err := c.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		sharedPostgres = &container{
			terminate: func(ctx context.Context) error { return c.Terminate(ctx) },
			connStr:   connStr,
		}
	})

	return sharedPostgres
}

// getMariaDB returns the shared MariaDB container, starting it if needed.
func getMariaDB(t *testing.T) *container {
	t.Helper()

	mariadbOnce.Do(func() {
		ctx := context.Background()

		c, err := mariadb.Run(ctx,
			"docker.io/mariadb:11",
			mariadb.WithDatabase("quill_test"),
			mariadb.WithUsername("test"),
			mariadb.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("mariadbd: ready for connections").
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start mariadb container: %v", err)
		}

		connStr, err := c.ConnectionString(ctx)
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		sharedMariaDB = &container{
			terminate: func(ctx context.Context) error { return c.Terminate(ctx) },
			connStr:   connStr,
		}
	})

	return sharedMariaDB
}

// getMSSQL returns the shared SQL Server container, starting it if needed.
func getMSSQL(t *testing.T) *container {
	t.Helper()

	mssqlOnce.Do(func() {
		ctx := context.Background()

		c, err := mssql.Run(ctx,
			"mcr.microsoft.com/mssql/server:2022-latest",
			mssql.WithAcceptEULA(),
			mssql.WithPassword("Test@12345"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("SQL Server is now ready for client connections").
					WithStartupTimeout(120*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start mssql container: %v", err)
		}

		connStr, err := c.ConnectionString(ctx)
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		sharedMSSQL = &container{
			terminate: func(ctx context.Context) error { return c.Terminate(ctx) },
			connStr:   connStr,
		}
	})

	return sharedMSSQL
}
