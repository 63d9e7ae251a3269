// Package dbtest gives integration tests a migrated Postgres schema of their own.
package dbtest

import (
	"context"
	"os"
	"strings"
	"testing"

	"masterneo/internal/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const dsnEnv = "TEST_DB_DSN"

// Open connects to TEST_DB_DSN inside a fresh schema with every migration
// applied. The schema is dropped when the test ends. Tests are skipped when
// the variable is unset.
func Open(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		t.Skipf("%s not set; skipping integration test", dsnEnv)
	}

	ctx := context.Background()

	admin, err := pgx.Connect(ctx, dsn)
	require.NoError(t, err)

	schema := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	_, err = admin.Exec(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)

	cfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	cfg.ConnConfig.RuntimeParams["search_path"] = schema

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
		_, _ = admin.Exec(ctx, "DROP SCHEMA "+schema+" CASCADE")
		_ = admin.Close(ctx)
	})

	require.NoError(t, db.NewMigrator(pool, zap.NewNop().Sugar(), db.Migrations).Up(ctx))
	return pool
}
