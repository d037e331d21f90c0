package nlquery

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// ColumnDescriptor is one column of an introspected table.
type ColumnDescriptor struct {
	Name string
	Type string
}

// TableDescriptor is one table with its columns in catalog order.
type TableDescriptor struct {
	Name    string
	Columns []ColumnDescriptor
}

// SchemaDescription is the full introspected catalog, tables in catalog
// order. It is built fresh per call and never mutated afterwards.
type SchemaDescription struct {
	Tables []TableDescriptor
}

// DescribeSchema enumerates every table in the store with its columns and
// declared types, preserving catalog order. Read-only and idempotent.
// Returns ErrSchemaUnavailable when the store cannot be reached or holds
// no tables.
func DescribeSchema(ctx context.Context, db *sql.DB) (*SchemaDescription, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaUnavailable, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSchemaUnavailable, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaUnavailable, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no tables found", ErrSchemaUnavailable)
	}

	desc := &SchemaDescription{}
	for _, name := range names {
		table, err := describeTable(ctx, db, name)
		if err != nil {
			return nil, err
		}
		desc.Tables = append(desc.Tables, table)
	}
	return desc, nil
}

func describeTable(ctx context.Context, db *sql.DB, name string) (TableDescriptor, error) {
	table := TableDescriptor{Name: name}

	// PRAGMA table_info returns columns in declaration order.
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", name))
	if err != nil {
		return table, fmt.Errorf("%w: %v", ErrSchemaUnavailable, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			colName   string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &colName, &colType, &notNull, &dfltValue, &pk); err != nil {
			return table, fmt.Errorf("%w: %v", ErrSchemaUnavailable, err)
		}
		table.Columns = append(table.Columns, ColumnDescriptor{Name: colName, Type: colType})
	}
	if err := rows.Err(); err != nil {
		return table, fmt.Errorf("%w: %v", ErrSchemaUnavailable, err)
	}
	return table, nil
}

// Render produces the fixed text block the prompt embeds: each table name
// followed by one "  - column (TYPE)" line per column.
func (s *SchemaDescription) Render() string {
	var sb strings.Builder
	sb.WriteString("Database Schema (EXACT STRUCTURE):\n")
	for _, table := range s.Tables {
		fmt.Fprintf(&sb, "%s:\n", table.Name)
		for _, col := range table.Columns {
			fmt.Fprintf(&sb, "  - %s (%s)\n", col.Name, col.Type)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
