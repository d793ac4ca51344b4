package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/restoops/staff-backend-go/internal/pkg/database"
)

// setupTestDB starts a PostgreSQL container, applies the embedded migrations
// and returns a pool connected to it.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("skipping integration test: TEST_INTEGRATION is not set")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"docker.io/postgres:17-alpine",
		postgres.WithDatabase("staff_test"),
		postgres.WithUsername("staff"),
		postgres.WithPassword("test-password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, database.Migrate(dsn))

	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolConfig{MaxConns: 4, MinConns: 1})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	return db
}

func mustExec(t *testing.T, db *database.DB, sql string, args ...any) {
	t.Helper()
	_, err := db.Exec(context.Background(), sql, args...)
	require.NoError(t, err, fmt.Sprintf("exec %q", sql))
}

// seed inserts one organization, two waiters with matching login accounts and
// one item. Ids are fixed so tests can refer to them directly.
func seed(t *testing.T, db *database.DB) {
	t.Helper()

	mustExec(t, db, `INSERT INTO organizations (id, iiko_id, name) VALUES (1, 'org-1', 'Main Hall')`)
	mustExec(t, db, `INSERT INTO roles (iiko_id, code, name) VALUES ('role-w', 'waiter', 'Waiter')`)
	mustExec(t, db, `
		INSERT INTO employees (id, iiko_id, name, first_name, last_name, main_role_code, preferred_organization_id)
		VALUES (10, 'iiko-10', 'Anna Petrova', 'Anna', 'Petrova', 'waiter', 1),
		       (11, 'iiko-11', 'Boris Ivanov', 'Boris', 'Ivanov', 'waiter', 1)`)
	mustExec(t, db, `
		INSERT INTO users (id, iiko_id, name, login, password, role_code)
		VALUES (20, 'iiko-10', 'Anna', 'anna', 'x', 'waiter'),
		       (21, 'iiko-11', 'Boris', 'boris', 'x', 'waiter')`)
	mustExec(t, db, `INSERT INTO items (id, iiko_id, name, price) VALUES (5, 'item-5', 'Cappuccino', 250)`)
}
