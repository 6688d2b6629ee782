//go:build integration

package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcclickhouse "github.com/testcontainers/testcontainers-go/modules/clickhouse"
)

// TestFetchSnapshotIntegration runs the repository against a real
// ClickHouse server. Enable it with: go test -tags integration ./...
func TestFetchSnapshotIntegration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	container, err := tcclickhouse.Run(ctx, "clickhouse/clickhouse-server:24.3-alpine",
		tcclickhouse.WithUsername("default"),
		tcclickhouse.WithPassword("secret"),
		tcclickhouse.WithDatabase("default"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := clickhouse.ParseDSN(dsn)
	require.NoError(t, err)
	conn, err := clickhouse.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ddl := []string{
		"CREATE DATABASE flows",
		`CREATE TABLE flows.raw (
			ts DateTime,
			bytes UInt64 COMMENT 'payload size'
		) ENGINE = MergeTree ORDER BY ts`,
		`CREATE MATERIALIZED VIEW flows.raw_mv
			ENGINE = SummingMergeTree ORDER BY ts
			AS SELECT ts, sum(bytes) AS bytes FROM flows.raw GROUP BY ts`,
	}
	for _, stmt := range ddl {
		require.NoError(t, conn.Exec(ctx, stmt))
	}

	repo := NewCatalogRepository(conn)
	snap, err := repo.FetchSnapshot(ctx)
	require.NoError(t, err)

	require.True(t, snap.HasDatabase("flows"))
	assert.False(t, snap.HasDatabase("system"))

	raw, ok := snap.Table("flows", "raw")
	require.True(t, ok)
	assert.Equal(t, "MergeTree", raw.Engine)
	require.Len(t, raw.Columns, 2)
	assert.Equal(t, "ts", raw.Columns[0].Name)
	assert.Equal(t, "DateTime", raw.Columns[0].Type)
	assert.Equal(t, "payload size", raw.Columns[1].Comment)

	mv, ok := snap.Table("flows", "raw_mv")
	require.True(t, ok)
	assert.Equal(t, "MaterializedView", mv.Engine)
	assert.Contains(t, mv.EngineParams, "flows.raw")
}
