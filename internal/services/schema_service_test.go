package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemaflow/internal/models"
)

func TestListDatabases(t *testing.T) {
	svc := NewSchemaService(&fakeProvider{snap: testSnapshot()})

	out, err := svc.ListDatabases(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	metrics := out["metrics"]
	require.Len(t, metrics, 5)
	// Sorted by table name.
	assert.Equal(t, "events_dist", metrics[0].Name)
	assert.Equal(t, "lonely", metrics[1].Name)

	var sflows models.TableSummary
	for _, s := range metrics {
		if s.Name == "sflows" {
			sflows = s
		}
	}
	assert.Equal(t, "MergeTree", sflows.Type)
	require.NotNil(t, sflows.Rows)
	assert.Equal(t, uint64(1500), *sflows.Rows)
	assert.Equal(t, "4.0 KB", sflows.Size)

	// Tables without counters carry no size string.
	assert.Equal(t, "", metrics[0].Size)
	assert.Nil(t, metrics[0].Rows)
}

func TestTableColumns(t *testing.T) {
	svc := NewSchemaService(&fakeProvider{snap: testSnapshot()})

	cols, err := svc.TableColumns(context.Background(), "metrics", "sflows")
	require.NoError(t, err)
	assert.Equal(t, []models.Column{
		{Name: "timestamp", Type: "DateTime"},
		{Name: "bytes", Type: "UInt64"},
	}, cols)
}

func TestTableColumnsUnknownTable(t *testing.T) {
	svc := NewSchemaService(&fakeProvider{snap: testSnapshot()})

	cols, err := svc.TableColumns(context.Background(), "metrics", "missing")
	require.NoError(t, err)
	assert.Nil(t, cols)
}

func TestTableRelationships(t *testing.T) {
	svc := NewSchemaService(&fakeProvider{snap: testSnapshot()})

	rels, err := svc.TableRelationships(context.Background(), "metrics", "sflows_dist")
	require.NoError(t, err)
	require.Len(t, rels, 1)
	assert.Equal(t, models.RelationDependsOn, rels[0].RelationshipType)
	assert.Equal(t, "sflows", rels[0].TargetTable)
}

func TestTableRelationshipsNone(t *testing.T) {
	svc := NewSchemaService(&fakeProvider{snap: testSnapshot()})

	rels, err := svc.TableRelationships(context.Background(), "metrics", "lonely")
	require.NoError(t, err)
	assert.NotNil(t, rels)
	assert.Empty(t, rels)
}

func TestSchemaServicePropagatesProviderError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewSchemaService(&fakeProvider{err: boom})

	_, err := svc.ListDatabases(context.Background())
	assert.ErrorIs(t, err, boom)
}
