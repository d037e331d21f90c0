package importer

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultBatchSize bounds how many rows go into one multi-row INSERT.
const DefaultBatchSize = 500

// ImportStats reports the outcome of one CSV load.
type ImportStats struct {
	Table    string
	Imported int
	Skipped  int
}

// LoadCSV bulk-loads a CSV file into an existing table. The header row
// names the destination columns and every name must exist on the table;
// rows with a mismatched field count are skipped and counted. The whole
// load runs in one transaction, so a failure leaves the table unchanged.
func LoadCSV(ctx context.Context, db *sql.DB, table, path string) (*ImportStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading header of %s: %w", path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if err := verifyColumns(ctx, db, table, header); err != nil {
		return nil, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting import transaction: %w", err)
	}
	defer tx.Rollback()

	stats := &ImportStats{Table: table}
	insert := buildInsert(table, header)
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return nil, fmt.Errorf("error preparing insert: %w", err)
	}
	defer stmt.Close()

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if _, ok := err.(*csv.ParseError); ok {
				stats.Skipped++
				continue
			}
			return nil, fmt.Errorf("error reading %s: %w", path, err)
		}
		if len(record) != len(header) {
			stats.Skipped++
			continue
		}

		args := make([]interface{}, len(record))
		for i, field := range record {
			args[i] = field
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return nil, fmt.Errorf("error inserting row %d: %w", stats.Imported+1, err)
		}
		stats.Imported++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing import: %w", err)
	}
	return stats, nil
}

// verifyColumns rejects header names that are not columns of the table,
// since they get interpolated into the INSERT statement.
func verifyColumns(ctx context.Context, db *sql.DB, table string, header []string) error {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return fmt.Errorf("error describing table %s: %w", table, err)
	}
	defer rows.Close()

	known := make(map[string]bool)
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return err
		}
		known[name] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(known) == 0 {
		return fmt.Errorf("table %s does not exist", table)
	}

	for _, col := range header {
		if !known[col] {
			return fmt.Errorf("column %s not found on table %s", col, table)
		}
	}
	return nil
}

func buildInsert(table string, columns []string) string {
	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = fmt.Sprintf("%q", col)
		placeholders[i] = "?"
	}
	return fmt.Sprintf("INSERT OR REPLACE INTO %q (%s) VALUES (%s)",
		table, strings.Join(quoted, ", "), strings.Join(placeholders, ", "))
}
