package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// sqliteSource reads every column of one table as a row.
type sqliteSource struct {
	path  string
	table string
}

func (s *sqliteSource) Location() string {
	return "sqlite:" + s.path + "#" + s.table
}

func (s *sqliteSource) Rows(ctx context.Context) ([]Row, error) {
	// sql.Open would silently create a missing file.
	if _, err := os.Stat(s.path); err != nil {
		return nil, &SourceError{Location: s.Location(), Err: err}
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, &SourceError{Location: s.Location(), Err: fmt.Errorf("open database: %w", err)}
	}
	defer db.Close()

	rows, err := readTable(ctx, db, s.table)
	if err != nil {
		return nil, &SourceError{Location: s.Location(), Err: err}
	}
	return rows, nil
}

func readTable(ctx context.Context, db *sql.DB, table string) ([]Row, error) {
	query := "SELECT * FROM " + quoteIdent(table)
	rs, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rs.Close()

	cols, err := rs.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	for i, c := range cols {
		cols[i] = NormalizeHeader(c)
	}

	var out []Row
	vals := make([]sql.NullString, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rs.Next() {
		if err := rs.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		row := make(Row, len(cols))
		for i, v := range vals {
			if !v.Valid || cols[i] == "" {
				continue
			}
			if _, dup := row[cols[i]]; dup {
				continue
			}
			row[cols[i]] = v.String
		}
		out = append(out, row)
	}
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
