package testhelpers

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"assetmgmt/pkg/db"
)

var uniqueCounter int64

func nextSuffix() int64 {
	return atomic.AddInt64(&uniqueCounter, 1)
}

// SetupTestPool connects to DATABASE_URL_FOR_TEST and applies the schema, or skips the test
// when the variable is unset.
func SetupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL_FOR_TEST")
	if dsn == "" {
		t.Skip("DATABASE_URL_FOR_TEST not set; skipping database tests")
	}

	ctx := context.Background()
	cfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))
	require.NoError(t, db.ApplySchema(ctx, pool))

	t.Cleanup(pool.Close)
	return pool
}

// CleanAssets empties the assets table and resets its id sequence.
func CleanAssets(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), "TRUNCATE TABLE assets RESTART IDENTITY")
	require.NoError(t, err)
}

// CreateTestAsset inserts an asset with a unique name and returns its ID.
func CreateTestAsset(t *testing.T, pool *pgxpool.Pool, assetType string) int64 {
	t.Helper()

	name := fmt.Sprintf("test-asset-%d", nextSuffix())

	var id int64
	err := pool.QueryRow(context.Background(),
		"INSERT INTO assets (name, description, type) VALUES ($1, $2, $3) RETURNING id",
		name, "seeded for tests", assetType,
	).Scan(&id)
	require.NoError(t, err)
	return id
}
