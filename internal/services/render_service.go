package services

import (
	"context"
	"errors"
	"fmt"

	"schemaflow/internal/models"
	"schemaflow/internal/utils"
)

// ErrDatabaseNotFound reports a render request against a database the
// catalog does not know.
var ErrDatabaseNotFound = errors.New("database not found")

// RenderFilters controls database-level rendering. Engines is an
// allow-list of engine names (empty means all engines); Metadata
// toggles row/size annotations in node labels.
type RenderFilters struct {
	Engines  []string `json:"engines"`
	Metadata bool     `json:"metadata"`
}

// RenderService produces the diagram markup and sidebar labels.
type RenderService struct {
	provider  SnapshotProvider
	resolvers map[string]TargetResolver
}

func NewRenderService(provider SnapshotProvider) *RenderService {
	return &RenderService{
		provider:  provider,
		resolvers: DefaultResolvers(),
	}
}

// DatabaseList returns database -> table -> sidebar HTML label.
func (s *RenderService) DatabaseList(ctx context.Context) (map[string]map[string]string, error) {
	snap, err := s.provider.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog snapshot: %w", err)
	}

	out := make(map[string]map[string]string, len(snap.Databases))
	for _, db := range snap.DatabaseNames() {
		labels := make(map[string]string)
		for _, t := range snap.TablesIn(db) {
			labels[t.Name] = tableListLabel(engineIcon(t.Engine), t.Name, t.TotalRows, t.TotalBytes)
		}
		out[db] = labels
	}
	return out, nil
}

// TableDiagram renders the entity-relationship diagram of one table:
// the subject entity plus an entity per related table, one relation
// line per edge labeled with the relationship type. A table with no
// relationships yields a diagram holding only its own entity.
func (s *RenderService) TableDiagram(ctx context.Context, database, table string) (string, error) {
	snap, err := s.provider.Snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load catalog snapshot: %w", err)
	}

	graph := BuildGraph(Infer(snap, s.resolvers))
	subject := models.TableRef{Database: database, Name: table}

	d := NewErDiagram()
	d.AddEntity(subject, columnsOf(snap, subject))
	for _, rel := range graph.RelationshipsOf(database, table) {
		other := rel.Target()
		d.AddEntity(other, columnsOf(snap, other))
		d.AddRelation(subject, other, rel.RelationshipType)
	}

	return d.String(), nil
}

// DatabaseDiagram renders the dependency flowchart of one database:
// a node per table passing the engine filter, an edge per inferred
// relationship whose endpoints both pass. Cross-database endpoints get
// their own qualified node so the dependency direction stays visible.
func (s *RenderService) DatabaseDiagram(ctx context.Context, database string, filters RenderFilters) (string, error) {
	snap, err := s.provider.Snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load catalog snapshot: %w", err)
	}
	if !snap.HasDatabase(database) {
		return "", ErrDatabaseNotFound
	}

	graph := BuildGraph(Infer(snap, s.resolvers))

	f := NewFlowchart("LR")
	for _, t := range snap.TablesIn(database) {
		if !engineAllowed(filters.Engines, t.Engine) {
			continue
		}
		f.AddNode(t.Ref(), nodeLabel(t, false, filters.Metadata), engineStyle(t.Engine))
	}

	for _, rel := range graph.Subgraph(database) {
		src, dst := rel.Source(), rel.Target()
		if !endpointAllowed(snap, filters.Engines, src) || !endpointAllowed(snap, filters.Engines, dst) {
			continue
		}
		s.ensureEndpoint(f, snap, src, filters.Metadata)
		s.ensureEndpoint(f, snap, dst, filters.Metadata)
		f.AddEdge(src, dst, rel.RelationshipType)
	}

	return f.String(), nil
}

// ensureEndpoint adds a node for edge endpoints living outside the
// rendered database, or for unresolved references.
func (s *RenderService) ensureEndpoint(f *Flowchart, snap *models.Snapshot, ref models.TableRef, metadata bool) {
	if f.HasNode(ref) {
		return
	}
	if t, ok := snap.Table(ref.Database, ref.Name); ok {
		f.AddNode(ref, nodeLabel(t, true, metadata), engineStyle(t.Engine))
		return
	}
	f.AddNode(ref, ref.String(), "")
}

func nodeLabel(t *models.Table, qualified, metadata bool) string {
	name := t.Name
	if qualified {
		name = t.Database + "." + t.Name
	}
	label := fmt.Sprintf("%s (%s)", name, t.Engine)
	if metadata && t.TotalRows != nil {
		label += fmt.Sprintf("<br><small>Rows: <b>%s</b> Size: <b>%s</b></small>",
			formatRows(t.TotalRows), formatBytes(t.TotalBytes))
	}
	return label
}

func columnsOf(snap *models.Snapshot, ref models.TableRef) []models.Column {
	if t, ok := snap.Table(ref.Database, ref.Name); ok {
		return t.Columns
	}
	return nil
}

func engineAllowed(engines []string, engine string) bool {
	return len(engines) == 0 || utils.ContainsFold(engines, engine)
}

// endpointAllowed applies the engine filter to an edge endpoint. With a
// non-empty filter, unresolved references are excluded because their
// engine cannot pass the allow-list.
func endpointAllowed(snap *models.Snapshot, engines []string, ref models.TableRef) bool {
	if len(engines) == 0 {
		return true
	}
	t, ok := snap.Table(ref.Database, ref.Name)
	return ok && utils.ContainsFold(engines, t.Engine)
}
