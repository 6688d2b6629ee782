package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemaflow/internal/models"
)

func rel(srcDB, src, dstDB, dst, relType string) models.Relationship {
	return models.Relationship{
		SourceDatabase:   srcDB,
		SourceTable:      src,
		TargetDatabase:   dstDB,
		TargetTable:      dst,
		RelationshipType: relType,
	}
}

func TestRelationshipsOfOrdering(t *testing.T) {
	graph := BuildGraph([]models.Relationship{
		rel("db", "b", "db", "c", models.RelationDependsOn),
		rel("db", "b", "db", "a", models.RelationDependsOn),
		rel("db", "d", "db", "b", models.RelationDependsOn),
	})

	got := graph.RelationshipsOf("db", "b")
	require.Len(t, got, 3)

	// depends_on entries first, each direction sorted by target.
	assert.Equal(t, rel("db", "b", "db", "a", models.RelationDependsOn), got[0])
	assert.Equal(t, rel("db", "b", "db", "c", models.RelationDependsOn), got[1])
	assert.Equal(t, rel("db", "b", "db", "d", models.RelationDependedOnBy), got[2])
}

func TestRelationshipsOfUnknownTable(t *testing.T) {
	graph := BuildGraph(nil)

	got := graph.RelationshipsOf("nope", "missing")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBuildGraphIgnoresMirroredEdges(t *testing.T) {
	graph := BuildGraph([]models.Relationship{
		rel("db", "a", "db", "b", models.RelationDependsOn),
		rel("db", "b", "db", "a", models.RelationDependedOnBy),
	})

	assert.Len(t, graph.RelationshipsOf("db", "a"), 1)
	assert.Len(t, graph.RelationshipsOf("db", "b"), 1)
}

func TestSubgraphKeepsCrossDatabaseEdges(t *testing.T) {
	graph := BuildGraph(Infer(testSnapshot(), nil))

	edges := graph.Subgraph("staging")
	assert.Contains(t, edges, rel("metrics", "events_dist", "staging", "raw_events", models.RelationDependsOn))
}

func TestSubgraphStableOrder(t *testing.T) {
	graph := BuildGraph(Infer(testSnapshot(), nil))

	assert.Equal(t, graph.Subgraph("metrics"), graph.Subgraph("metrics"))

	edges := graph.Subgraph("metrics")
	require.Len(t, edges, 3)
	assert.Equal(t, "events_dist", edges[0].SourceTable)
	assert.Equal(t, "sflows_dist", edges[1].SourceTable)
	assert.Equal(t, "sflows_mv", edges[2].SourceTable)
}
