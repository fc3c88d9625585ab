package catalog

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
)

// Source yields the raw rows of one tabular input.
type Source interface {
	// Location identifies the source in reports and errors.
	Location() string

	// Rows reads every data row. Header cells are normalized with
	// NormalizeHeader.
	Rows(ctx context.Context) ([]Row, error)
}

// DefaultTable is the table read from SQLite sources without an explicit
// "#table" suffix.
const DefaultTable = "colors"

// SourceOptions controls how locations are opened.
type SourceOptions struct {
	// Encoding applies to CSV files and URLs.
	Encoding Encoding

	// HTTPClient is used for http(s) locations. Nil means http.DefaultClient.
	HTTPClient *http.Client
}

// OpenSource picks a Source implementation for a location:
//
//	http://… or https://…          CSV fetched over HTTP
//	sqlite:<path>[#table]           SQLite table
//	*.db, *.sqlite, *.sqlite3       SQLite table (default "colors")
//	anything else                   CSV file
func OpenSource(location string, opts SourceOptions) (Source, error) {
	loc := strings.TrimSpace(location)
	if loc == "" {
		return nil, &SourceError{Location: location, Err: fmt.Errorf("empty location")}
	}
	if opts.Encoding == "" {
		opts.Encoding = EncodingAuto
	}

	lower := strings.ToLower(loc)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		client := opts.HTTPClient
		if client == nil {
			client = http.DefaultClient
		}
		return &httpSource{url: loc, client: client, encoding: opts.Encoding}, nil

	case strings.HasPrefix(lower, "sqlite:"):
		path, table := splitTable(loc[len("sqlite:"):])
		return &sqliteSource{path: path, table: table}, nil

	case isSQLiteExt(lower):
		path, table := splitTable(loc)
		return &sqliteSource{path: path, table: table}, nil
	}

	return &csvFileSource{path: loc, encoding: opts.Encoding}, nil
}

func isSQLiteExt(loc string) bool {
	path, _ := splitTable(loc)
	switch filepath.Ext(path) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

func splitTable(loc string) (path, table string) {
	path, table, _ = strings.Cut(loc, "#")
	if table == "" {
		table = DefaultTable
	}
	return path, table
}
