package services

import (
	"strings"

	"schemaflow/internal/models"
)

// TargetResolver extracts the dependency targets of one table from its
// normalized engine parameters. ownDB qualifies bare table references.
type TargetResolver func(ownDB string, params []string) []models.TableRef

// DefaultResolvers maps engine names to their dependency resolvers.
// Engines without an entry contribute no edges; registering a resolver
// is the extension point for new engine kinds.
func DefaultResolvers() map[string]TargetResolver {
	return map[string]TargetResolver{
		"Distributed":      resolveDistributed,
		"MaterializedView": resolveSourceTables,
		"Dictionary":       resolveSourceTables,
	}
}

// Distributed(cluster, database, table[, sharding_key]) proxies a single
// underlying table.
func resolveDistributed(ownDB string, params []string) []models.TableRef {
	switch {
	case len(params) >= 3:
		return []models.TableRef{{Database: params[1], Name: params[2]}}
	case len(params) == 2:
		return []models.TableRef{{Database: params[0], Name: params[1]}}
	default:
		return nil
	}
}

// View engines list their source tables as db.table or bare refs.
func resolveSourceTables(ownDB string, params []string) []models.TableRef {
	var refs []models.TableRef
	for _, p := range params {
		if p == "" {
			continue
		}
		refs = append(refs, parseTableRef(ownDB, p))
	}
	return refs
}

func parseTableRef(ownDB, s string) models.TableRef {
	s = strings.ReplaceAll(s, "`", "")
	if db, name, ok := strings.Cut(s, "."); ok && db != "" && name != "" {
		return models.TableRef{Database: db, Name: name}
	}
	return models.TableRef{Database: ownDB, Name: s}
}

// Infer derives the directed dependency edges of every table in the
// snapshot. The result holds only depends_on edges in a stable order;
// the graph exposes the mirrored depended_on_by view of each fact.
// Targets missing from the snapshot are kept as unresolved references.
func Infer(snap *models.Snapshot, resolvers map[string]TargetResolver) []models.Relationship {
	if resolvers == nil {
		resolvers = DefaultResolvers()
	}

	type edgeKey struct{ src, dst models.TableRef }
	seen := make(map[edgeKey]bool)
	var rels []models.Relationship
	for _, t := range snap.Tables() {
		resolve, ok := resolvers[t.Engine]
		if !ok {
			continue
		}
		for _, target := range resolve(t.Database, t.EngineParams) {
			if target.Name == "" || target == t.Ref() {
				continue
			}
			key := edgeKey{src: t.Ref(), dst: target}
			if seen[key] {
				continue
			}
			seen[key] = true
			rels = append(rels, models.Relationship{
				SourceDatabase:   t.Database,
				SourceTable:      t.Name,
				TargetDatabase:   target.Database,
				TargetTable:      target.Name,
				RelationshipType: models.RelationDependsOn,
			})
		}
	}
	return rels
}
