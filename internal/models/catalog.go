package models

import "sort"

// Column is a single column of a catalog table. Optional attributes are
// empty when the catalog reports no value for them.
type Column struct {
	Name              string `json:"name"`
	Type              string `json:"type"`
	DefaultKind       string `json:"default_kind,omitempty"`
	DefaultExpression string `json:"default_expression,omitempty"`
	Comment           string `json:"comment,omitempty"`
	CodecExpression   string `json:"codec_expression,omitempty"`
	TTLExpression     string `json:"ttl_expression,omitempty"`
}

// TableRef identifies a table globally by its (database, name) pair.
type TableRef struct {
	Database string
	Name     string
}

func (r TableRef) String() string {
	return r.Database + "." + r.Name
}

// Table holds the catalog metadata of one table. EngineParams is the
// normalized, ordered parameter list of the engine declaration (target
// database/table for Distributed, source tables for view engines).
type Table struct {
	Database     string
	Name         string
	Engine       string
	EngineParams []string
	Columns      []Column
	TotalRows    *uint64
	TotalBytes   *uint64
}

func (t *Table) Ref() TableRef {
	return TableRef{Database: t.Database, Name: t.Name}
}

// TableSummary is the per-table entry of the databases listing.
type TableSummary struct {
	Name string  `json:"name"`
	Type string  `json:"type"`
	Rows *uint64 `json:"rows,omitempty"`
	Size string  `json:"size,omitempty"`
}

// Snapshot is a point-in-time copy of the catalog metadata, keyed by
// database then table name. Snapshots handed out by the cache are shared
// between requests and must be treated as immutable.
type Snapshot struct {
	Databases map[string]map[string]*Table
}

func NewSnapshot() *Snapshot {
	return &Snapshot{Databases: make(map[string]map[string]*Table)}
}

func (s *Snapshot) Add(t *Table) {
	tables, ok := s.Databases[t.Database]
	if !ok {
		tables = make(map[string]*Table)
		s.Databases[t.Database] = tables
	}
	tables[t.Name] = t
}

func (s *Snapshot) Table(database, name string) (*Table, bool) {
	t, ok := s.Databases[database][name]
	return t, ok
}

func (s *Snapshot) HasDatabase(database string) bool {
	_, ok := s.Databases[database]
	return ok
}

// DatabaseNames returns the database names in sorted order.
func (s *Snapshot) DatabaseNames() []string {
	names := make([]string, 0, len(s.Databases))
	for name := range s.Databases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TablesIn returns the tables of one database sorted by name.
func (s *Snapshot) TablesIn(database string) []*Table {
	byName := s.Databases[database]
	tables := make([]*Table, 0, len(byName))
	for _, t := range byName {
		tables = append(tables, t)
	}
	sort.Slice(tables, func(i, j int) bool { return tables[i].Name < tables[j].Name })
	return tables
}

// Tables returns every table in the snapshot sorted by database, then name.
func (s *Snapshot) Tables() []*Table {
	var tables []*Table
	for _, db := range s.DatabaseNames() {
		tables = append(tables, s.TablesIn(db)...)
	}
	return tables
}
