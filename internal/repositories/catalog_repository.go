package repositories

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"schemaflow/internal/models"
)

const tablesQuery = `
	SELECT
		database,
		name,
		engine,
		engine_full,
		create_table_query,
		total_rows,
		total_bytes,
		loading_dependencies_database,
		loading_dependencies_table
	FROM system.tables
	WHERE database NOT IN ('system', 'information_schema', 'INFORMATION_SCHEMA', 'performance_schema', 'mysql')
	ORDER BY database, name
`

// CatalogRepository reads table and column metadata from the ClickHouse
// system tables and normalizes it into a typed snapshot. Raw rows never
// leave this package.
type CatalogRepository struct {
	conn driver.Conn
}

func NewCatalogRepository(conn driver.Conn) *CatalogRepository {
	return &CatalogRepository{conn: conn}
}

// FetchSnapshot builds a fresh snapshot of every user database.
func (r *CatalogRepository) FetchSnapshot(ctx context.Context) (*models.Snapshot, error) {
	rows, err := r.conn.Query(ctx, tablesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query system.tables: %w", err)
	}
	defer rows.Close()

	snap := models.NewSnapshot()
	for rows.Next() {
		var database, name, engine, engineFull, createQuery string
		var totalRows, totalBytes *uint64
		var depsDB, depsTable []string

		if err := rows.Scan(&database, &name, &engine, &engineFull, &createQuery,
			&totalRows, &totalBytes, &depsDB, &depsTable); err != nil {
			return nil, fmt.Errorf("failed to scan table metadata: %w", err)
		}

		if !allowedDatabase(database) {
			continue
		}

		snap.Add(&models.Table{
			Database:     database,
			Name:         name,
			Engine:       engine,
			EngineParams: engineParams(engine, engineFull, createQuery, depsDB, depsTable),
			TotalRows:    totalRows,
			TotalBytes:   totalBytes,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating table metadata: %w", err)
	}

	for _, t := range snap.Tables() {
		columns, err := r.describeTable(ctx, t.Database, t.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to describe %s.%s: %w", t.Database, t.Name, err)
		}
		t.Columns = columns
	}

	log.Printf("Catalog snapshot built: %d databases", len(snap.Databases))
	return snap, nil
}

// describeTable returns the ordered column layout of one table.
func (r *CatalogRepository) describeTable(ctx context.Context, database, table string) ([]models.Column, error) {
	query := fmt.Sprintf("DESCRIBE TABLE `%s`.`%s`", escapeIdent(database), escapeIdent(table))

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []models.Column
	for rows.Next() {
		var col models.Column
		if err := rows.Scan(&col.Name, &col.Type, &col.DefaultKind, &col.DefaultExpression,
			&col.Comment, &col.CodecExpression, &col.TTLExpression); err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return columns, nil
}

func escapeIdent(s string) string {
	return strings.ReplaceAll(s, "`", "\\`")
}

func allowedDatabase(database string) bool {
	switch {
	case database == "":
		return false
	case database == "system":
		return false
	case strings.ToLower(database) == "information_schema":
		return false
	case database == "performance_schema":
		return false
	case database == "mysql":
		return false
	default:
		return true
	}
}
