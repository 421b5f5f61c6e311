package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Drishanv/ola-rides-insights/internal/models"
)

const (
	queryListTables = `
		SELECT table_name FROM information_schema.tables
		WHERE table_type = 'BASE TABLE'
		ORDER BY table_name`

	queryListViews = `
		SELECT table_name FROM information_schema.tables
		WHERE table_type = 'VIEW'
		ORDER BY table_name`
)

// Inspector reads schema metadata from the store: table and view names, and a
// sampled column list per table.
type Inspector struct {
	db *sql.DB
}

func NewInspector(db *sql.DB) *Inspector {
	return &Inspector{db: db}
}

// ListTables returns base table names sorted ascending.
func (i *Inspector) ListTables(ctx context.Context) ([]string, error) {
	return i.listNames(ctx, queryListTables)
}

// ListViews returns view names sorted ascending.
func (i *Inspector) ListViews(ctx context.Context) ([]string, error) {
	return i.listNames(ctx, queryListViews)
}

func (i *Inspector) listNames(ctx context.Context, query string) ([]string, error) {
	rows, err := i.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list schema names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Describe samples the first n rows of a table and derives its descriptor.
// Only the column list matters; the sampled values are discarded.
func (i *Inspector) Describe(ctx context.Context, table string, n int) (models.TableDescriptor, error) {
	rows, err := i.db.QueryContext(ctx,
		fmt.Sprintf("SELECT * FROM %s LIMIT %d", quoteIdent(table), n))
	if err != nil {
		return models.TableDescriptor{}, fmt.Errorf("sample %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return models.TableDescriptor{}, fmt.Errorf("sample %s: %w", table, err)
	}
	return models.NewTableDescriptor(table, columns), nil
}
