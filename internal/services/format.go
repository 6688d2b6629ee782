package services

import (
	"fmt"
	"strings"
)

func formatBytes(bytes *uint64) string {
	if bytes == nil {
		return "N/A"
	}
	const unit = 1024
	b := float64(*bytes)
	if b < unit {
		return fmt.Sprintf("%d B", *bytes)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", b/float64(div), "KMGTPE"[exp])
}

func formatRows(rows *uint64) string {
	if rows == nil {
		return "N/A"
	}
	switch {
	case *rows < 1_000:
		return fmt.Sprintf("%d", *rows)
	case *rows < 1_000_000:
		return fmt.Sprintf("%.1fK", float64(*rows)/1_000)
	case *rows < 1_000_000_000:
		return fmt.Sprintf("%.1fM", float64(*rows)/1_000_000)
	default:
		return fmt.Sprintf("%.1fB", float64(*rows)/1_000_000_000)
	}
}

// engineIcon picks the sidebar icon for a table engine.
func engineIcon(engine string) string {
	switch {
	case engine == "MergeTree":
		return `<i class="fa-solid fa-database"></i>`
	case strings.HasPrefix(engine, "Replicated"):
		return `<i class="fa-solid fa-circle-nodes"></i>`
	case strings.HasPrefix(engine, "Dictionary"):
		return `<i class="fa-solid fa-book"></i>`
	case engine == "Distributed":
		return `<i class="fa-solid fa-diagram-project"></i>`
	case engine == "MaterializedView":
		return `<i class="fa-solid fa-eye"></i>`
	default:
		return `<i class="fa-solid fa-table"></i>`
	}
}

// engineStyles colors flowchart nodes by engine family.
var engineStyles = map[string]string{
	"MergeTree":                    "#1f77b4",
	"ReplicatedMergeTree":          "#ff7f0e",
	"SummingMergeTree":             "#2ca02c",
	"ReplicatedSummingMergeTree":   "#2ca02c",
	"ReplacingMergeTree":           "#d62728",
	"ReplicatedReplacingMergeTree": "#d62728",
	"AggregatingMergeTree":         "#9467bd",
	"CollapsingMergeTree":          "#8c564b",
	"VersionedCollapsingMergeTree": "#e377c2",
	"GraphiteMergeTree":            "#7f7f7f",
	"MaterializedView":             "#bcbd22",
	"View":                         "#17becf",
	"Dictionary":                   "#ffbb78",
	"Distributed":                  "#ff9896",
	"Memory":                       "#c5b0d5",
	"Log":                          "#c7c7c7",
	"TinyLog":                      "#dbdb8d",
	"StripeLog":                    "#9edae5",
}

func engineStyle(engine string) string {
	color, ok := engineStyles[engine]
	if !ok {
		return ""
	}
	return fmt.Sprintf("fill:%s,stroke:#333,stroke-width:2px,color:#fff", color)
}

// tableListLabel renders the sidebar entry for a table: icon, name and,
// when known, human-formatted row and size counters.
func tableListLabel(icon, tableName string, totalRows, totalBytes *uint64) string {
	if totalRows == nil {
		return fmt.Sprintf(`%s %s`, icon, tableName)
	}
	return fmt.Sprintf(
		`%s %s<br><small style="color: #000; font-size: 0.8em;">Rows: <b>%s</b> | Size: <b>%s</b></small>`,
		icon, tableName, formatRows(totalRows), formatBytes(totalBytes),
	)
}
