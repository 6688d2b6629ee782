package services

import (
	"context"
	"fmt"

	"schemaflow/internal/models"
)

// StatsService aggregates per-database table statistics.
type StatsService struct {
	provider SnapshotProvider
}

func NewStatsService(provider SnapshotProvider) *StatsService {
	return &StatsService{provider: provider}
}

// DatabaseStats sums table counters per engine and in total, treating
// absent counters as zero. A database with no tables yields all-zero
// totals and an empty engine mapping.
func (s *StatsService) DatabaseStats(ctx context.Context, database string) (*models.DatabaseStats, error) {
	snap, err := s.provider.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog snapshot: %w", err)
	}

	stats := &models.DatabaseStats{
		Database:     database,
		EngineCounts: make(map[string]models.EngineStats),
	}

	for _, t := range snap.TablesIn(database) {
		stats.TotalTables++
		if t.TotalRows != nil {
			stats.TotalRows += *t.TotalRows
		}
		if t.TotalBytes != nil {
			stats.TotalBytes += *t.TotalBytes
		}

		engineStats := stats.EngineCounts[t.Engine]
		engineStats.Count++
		if t.TotalRows != nil {
			engineStats.TotalRows += *t.TotalRows
		}
		if t.TotalBytes != nil {
			engineStats.TotalBytes += *t.TotalBytes
		}
		stats.EngineCounts[t.Engine] = engineStats
	}

	return stats, nil
}
