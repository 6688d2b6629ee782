package services

import (
	"fmt"
	"strings"

	"github.com/go-faster/city"

	"schemaflow/internal/models"
)

// The renderers below accumulate structured nodes and edges and turn
// them into Mermaid markup only at the end, so filter logic never has
// to inspect text.

// ErDiagram builds entity-relationship markup: one entity block per
// table with its column name/type rows, one relation line per edge.
type ErDiagram struct {
	order     []string
	entities  map[string][]models.Column
	relations []erRelation
	seen      map[string]bool
}

type erRelation struct {
	from, to, label string
}

func NewErDiagram() *ErDiagram {
	return &ErDiagram{
		entities: make(map[string][]models.Column),
		seen:     make(map[string]bool),
	}
}

// AddEntity registers a table entity. Unresolved references may carry a
// nil column list; they still render as an empty entity block.
func (d *ErDiagram) AddEntity(ref models.TableRef, columns []models.Column) {
	id := entityID(ref)
	if _, ok := d.entities[id]; ok {
		return
	}
	d.order = append(d.order, id)
	d.entities[id] = columns
}

func (d *ErDiagram) AddRelation(from, to models.TableRef, label string) {
	rel := erRelation{from: entityID(from), to: entityID(to), label: label}
	key := rel.from + "|" + rel.label + "|" + rel.to
	if d.seen[key] {
		return
	}
	d.seen[key] = true
	d.relations = append(d.relations, rel)
}

func (d *ErDiagram) String() string {
	var sb strings.Builder
	sb.WriteString("erDiagram\n")

	for _, rel := range d.relations {
		sb.WriteString(fmt.Sprintf("    %s ||--o{ %s : \"%s\"\n", rel.from, rel.to, rel.label))
	}
	if len(d.relations) > 0 {
		sb.WriteString("\n")
	}

	for _, id := range d.order {
		sb.WriteString(fmt.Sprintf("    %s {\n", id))
		for _, col := range d.entities[id] {
			sb.WriteString(fmt.Sprintf("        %s %s\n", attrType(col.Type), attrName(col.Name)))
		}
		sb.WriteString("    }\n")
	}

	return sb.String()
}

// entityID derives a collision-free Mermaid identifier: the sanitized
// qualified name plus a CityHash32 suffix, so tables whose names
// sanitize identically stay distinct.
func entityID(ref models.TableRef) string {
	return fmt.Sprintf("%s_%d", sanitizeIdent(ref.String()), city.Hash32(refKey(ref)))
}

// refKey encodes a table reference unambiguously for hashing. A plain
// db.table join would collide when the names themselves contain dots.
func refKey(ref models.TableRef) []byte {
	return []byte(ref.Database + "\x00" + ref.Name)
}

func sanitizeIdent(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// attrType keeps ClickHouse type strings legal as Mermaid attribute
// types: spaces and commas inside parameterized types are collapsed.
func attrType(t string) string {
	t = strings.ReplaceAll(t, ", ", ",")
	t = strings.ReplaceAll(t, ",", "_")
	t = strings.ReplaceAll(t, " ", "_")
	return t
}

func attrName(n string) string {
	return sanitizeIdent(n)
}

// Flowchart builds flowchart markup: numbered nodes with quoted labels,
// optional per-node styling, and labeled directed edges.
type Flowchart struct {
	direction string
	nodes     []flowNode
	nodeSeen  map[uint32]bool
	edges     []flowEdge
	edgeSeen  map[string]bool
}

type flowNode struct {
	id    uint32
	label string
	style string
}

type flowEdge struct {
	from, to uint32
	label    string
}

func NewFlowchart(direction string) *Flowchart {
	return &Flowchart{
		direction: direction,
		nodeSeen:  make(map[uint32]bool),
		edgeSeen:  make(map[string]bool),
	}
}

// NodeID derives the deterministic numeric identifier of a table node.
func NodeID(ref models.TableRef) uint32 {
	return city.Hash32(refKey(ref))
}

func (f *Flowchart) AddNode(ref models.TableRef, label, style string) {
	id := NodeID(ref)
	if f.nodeSeen[id] {
		return
	}
	f.nodeSeen[id] = true
	f.nodes = append(f.nodes, flowNode{id: id, label: label, style: style})
}

func (f *Flowchart) HasNode(ref models.TableRef) bool {
	return f.nodeSeen[NodeID(ref)]
}

func (f *Flowchart) AddEdge(from, to models.TableRef, label string) {
	e := flowEdge{from: NodeID(from), to: NodeID(to), label: label}
	key := fmt.Sprintf("%d-->%d", e.from, e.to)
	if f.edgeSeen[key] {
		return
	}
	f.edgeSeen[key] = true
	f.edges = append(f.edges, e)
}

func (f *Flowchart) String() string {
	var sb strings.Builder
	sb.WriteString("flowchart " + f.direction + "\n")

	for _, n := range f.nodes {
		sb.WriteString(fmt.Sprintf("    %d[\"%s\"]\n", n.id, escapeLabel(n.label)))
		if n.style != "" {
			sb.WriteString(fmt.Sprintf("    style %d %s\n", n.id, n.style))
		}
	}
	if len(f.nodes) > 0 && len(f.edges) > 0 {
		sb.WriteString("\n")
	}

	for _, e := range f.edges {
		sb.WriteString(fmt.Sprintf("    %d -->|%s| %d\n", e.from, e.label, e.to))
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}
