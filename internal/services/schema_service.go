package services

import (
	"context"
	"fmt"

	"schemaflow/internal/models"
)

// SnapshotProvider hands out the current catalog snapshot. Implemented
// by the repository-level snapshot cache.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*models.Snapshot, error)
}

// SchemaService answers the machine-readable schema queries: database
// listings, column layouts and table relationships.
type SchemaService struct {
	provider  SnapshotProvider
	resolvers map[string]TargetResolver
}

func NewSchemaService(provider SnapshotProvider) *SchemaService {
	return &SchemaService{
		provider:  provider,
		resolvers: DefaultResolvers(),
	}
}

// ListDatabases returns every database with its table summaries, tables
// sorted by name.
func (s *SchemaService) ListDatabases(ctx context.Context) (map[string][]models.TableSummary, error) {
	snap, err := s.provider.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog snapshot: %w", err)
	}

	out := make(map[string][]models.TableSummary, len(snap.Databases))
	for _, db := range snap.DatabaseNames() {
		tables := snap.TablesIn(db)
		summaries := make([]models.TableSummary, 0, len(tables))
		for _, t := range tables {
			summary := models.TableSummary{
				Name: t.Name,
				Type: t.Engine,
				Rows: t.TotalRows,
			}
			if t.TotalBytes != nil {
				summary.Size = formatBytes(t.TotalBytes)
			}
			summaries = append(summaries, summary)
		}
		out[db] = summaries
	}
	return out, nil
}

// TableColumns returns the column layout of one table. An unknown table
// yields nil, an empty result rather than an error.
func (s *SchemaService) TableColumns(ctx context.Context, database, table string) ([]models.Column, error) {
	snap, err := s.provider.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog snapshot: %w", err)
	}

	t, ok := snap.Table(database, table)
	if !ok {
		return nil, nil
	}
	return t.Columns, nil
}

// TableRelationships returns every relationship touching the table in
// stable order, empty when the table has none or does not exist.
func (s *SchemaService) TableRelationships(ctx context.Context, database, table string) ([]models.Relationship, error) {
	snap, err := s.provider.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog snapshot: %w", err)
	}

	graph := BuildGraph(Infer(snap, s.resolvers))
	return graph.RelationshipsOf(database, table), nil
}
