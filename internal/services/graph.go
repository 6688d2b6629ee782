package services

import (
	"sort"

	"schemaflow/internal/models"
)

// SchemaGraph is the in-memory dependency graph of catalog tables,
// keyed by (database, table). It stores each depends_on fact once and
// answers queries from either endpoint.
type SchemaGraph struct {
	out map[models.TableRef][]models.TableRef // tables this table depends on
	in  map[models.TableRef][]models.TableRef // tables depending on this table
}

// BuildGraph indexes inferred depends_on edges into an adjacency model.
func BuildGraph(rels []models.Relationship) *SchemaGraph {
	g := &SchemaGraph{
		out: make(map[models.TableRef][]models.TableRef),
		in:  make(map[models.TableRef][]models.TableRef),
	}
	for _, rel := range rels {
		if rel.RelationshipType != models.RelationDependsOn {
			continue
		}
		src, dst := rel.Source(), rel.Target()
		g.out[src] = append(g.out[src], dst)
		g.in[dst] = append(g.in[dst], src)
	}
	for _, adj := range []map[models.TableRef][]models.TableRef{g.out, g.in} {
		for _, refs := range adj {
			sortRefs(refs)
		}
	}
	return g
}

// RelationshipsOf returns every edge touching the given table, both
// directions, in a stable order: depends_on entries first, then
// depended_on_by, each sorted by target database and table. A table
// with no edges (or absent from the graph) yields an empty slice.
func (g *SchemaGraph) RelationshipsOf(database, table string) []models.Relationship {
	ref := models.TableRef{Database: database, Name: table}
	rels := make([]models.Relationship, 0, len(g.out[ref])+len(g.in[ref]))
	for _, target := range g.out[ref] {
		rels = append(rels, edge(ref, target, models.RelationDependsOn))
	}
	for _, source := range g.in[ref] {
		rels = append(rels, edge(ref, source, models.RelationDependedOnBy))
	}
	return rels
}

// Subgraph returns the depends_on edges touching tables of the given
// database. Edges crossing into other databases are retained so the
// dependency direction is never dropped.
func (g *SchemaGraph) Subgraph(database string) []models.Relationship {
	var rels []models.Relationship
	for src, targets := range g.out {
		for _, dst := range targets {
			if src.Database == database || dst.Database == database {
				rels = append(rels, edge(src, dst, models.RelationDependsOn))
			}
		}
	}
	sort.Slice(rels, func(i, j int) bool {
		a, b := rels[i], rels[j]
		if a.Source() != b.Source() {
			return less(a.Source(), b.Source())
		}
		return less(a.Target(), b.Target())
	})
	return rels
}

func edge(from, to models.TableRef, relType string) models.Relationship {
	return models.Relationship{
		SourceDatabase:   from.Database,
		SourceTable:      from.Name,
		TargetDatabase:   to.Database,
		TargetTable:      to.Name,
		RelationshipType: relType,
	}
}

func less(a, b models.TableRef) bool {
	if a.Database != b.Database {
		return a.Database < b.Database
	}
	return a.Name < b.Name
}

func sortRefs(refs []models.TableRef) {
	sort.Slice(refs, func(i, j int) bool { return less(refs[i], refs[j]) })
}
