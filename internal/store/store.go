package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"

	srvErrors "github.com/Drishanv/ola-rides-insights/pkg/errors"
)

// NewDB opens the DuckDB store at path. An empty path (or ":memory:") opens an
// in-memory database, used by tests. A non-empty path must already exist: the
// dashboard never creates or writes a store.
func NewDB(path string) (*sql.DB, error) {
	dsn := path
	if path == ":memory:" {
		dsn = ""
	}
	if dsn != "" {
		if _, err := os.Stat(dsn); err != nil {
			return nil, srvErrors.NewStoreNotFoundError(path)
		}
	}

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	return db, nil
}

// Store is the facade over one store handle. It owns the *sql.DB and the
// read-only components built on it; Close releases the handle.
type Store struct {
	db   *sql.DB
	path string

	inspector *Inspector
	distinct  *DistinctCache
	executor  *Executor
	catalog   *Catalog
}

func NewStore(db *sql.DB, path string) *Store {
	inspector := NewInspector(db)
	return &Store{
		db:        db,
		path:      path,
		inspector: inspector,
		distinct:  NewDistinctCache(db, path),
		executor:  NewExecutor(db),
		catalog:   NewCatalog(inspector),
	}
}

func (s *Store) Path() string {
	return s.path
}

// DB exposes the raw handle. Used by tests to seed fixture data; the dashboard
// itself only reads through the components.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Inspector() *Inspector {
	return s.inspector
}

func (s *Store) Distinct() *DistinctCache {
	return s.distinct
}

func (s *Store) Executor() *Executor {
	return s.executor
}

func (s *Store) Catalog() *Catalog {
	return s.catalog
}

func (s *Store) Close() error {
	return s.db.Close()
}

// quoteIdent double-quotes an identifier, escaping embedded quotes. Only
// schema-derived identifiers are ever interpolated into statement text; user
// values always travel as bound parameters.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
