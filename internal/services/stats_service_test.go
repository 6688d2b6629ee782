package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemaflow/internal/models"
)

func TestDatabaseStats(t *testing.T) {
	svc := NewStatsService(&fakeProvider{snap: testSnapshot()})

	stats, err := svc.DatabaseStats(context.Background(), "metrics")
	require.NoError(t, err)

	assert.Equal(t, "metrics", stats.Database)
	assert.Equal(t, 5, stats.TotalTables)
	assert.Equal(t, uint64(1500), stats.TotalRows)
	assert.Equal(t, uint64(4096), stats.TotalBytes)

	assert.Equal(t, models.EngineStats{Count: 1, TotalRows: 1500, TotalBytes: 4096}, stats.EngineCounts["MergeTree"])
	assert.Equal(t, models.EngineStats{Count: 2}, stats.EngineCounts["Distributed"])

	// Per-engine figures add up to the totals.
	var tables, rows, bytes = 0, uint64(0), uint64(0)
	for _, es := range stats.EngineCounts {
		tables += es.Count
		rows += es.TotalRows
		bytes += es.TotalBytes
	}
	assert.Equal(t, stats.TotalTables, tables)
	assert.Equal(t, stats.TotalRows, rows)
	assert.Equal(t, stats.TotalBytes, bytes)
}

func TestDatabaseStatsUnknownDatabase(t *testing.T) {
	svc := NewStatsService(&fakeProvider{snap: testSnapshot()})

	stats, err := svc.DatabaseStats(context.Background(), "nope")
	require.NoError(t, err)

	assert.Equal(t, "nope", stats.Database)
	assert.Zero(t, stats.TotalTables)
	assert.Zero(t, stats.TotalRows)
	assert.Zero(t, stats.TotalBytes)
	assert.Empty(t, stats.EngineCounts)
	assert.NotNil(t, stats.EngineCounts)
}
