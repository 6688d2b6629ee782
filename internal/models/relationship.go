package models

const (
	RelationDependsOn    = "depends_on"
	RelationDependedOnBy = "depended_on_by"
)

// Relationship is a directed dependency between two tables, inferred
// from engine configuration. Every depends_on fact is also visible from
// the other endpoint as a depended_on_by entry.
type Relationship struct {
	SourceDatabase   string `json:"source_database"`
	SourceTable      string `json:"source_table"`
	TargetDatabase   string `json:"target_database"`
	TargetTable      string `json:"target_table"`
	RelationshipType string `json:"relationship_type"`
}

func (r Relationship) Source() TableRef {
	return TableRef{Database: r.SourceDatabase, Name: r.SourceTable}
}

func (r Relationship) Target() TableRef {
	return TableRef{Database: r.TargetDatabase, Name: r.TargetTable}
}
