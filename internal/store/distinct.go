package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	gocache "github.com/patrickmn/go-cache"
)

// DistinctCache serves the sorted distinct non-null values of a column, used
// to populate the filter dropdowns. Entries are keyed by (store path, table,
// column), not by the live handle: the handle is not a stable cache key.
//
// There is no invalidation. A changed file behind the same path keeps serving
// the cached values; re-pointing the session at a new path is the only way to
// observe changes. That staleness window is accepted.
type DistinctCache struct {
	db    *sql.DB
	path  string
	cache *gocache.Cache
}

func NewDistinctCache(db *sql.DB, path string) *DistinctCache {
	return &DistinctCache{
		db:    db,
		path:  path,
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Distinct returns the distinct non-null values of table.column, coerced to
// text, deduplicated and sorted ascending.
func (c *DistinctCache) Distinct(ctx context.Context, table, column string) ([]string, error) {
	key := c.path + "|" + table + "|" + column
	if cached, ok := c.cache.Get(key); ok {
		return cached.([]string), nil
	}

	query := fmt.Sprintf(
		"SELECT DISTINCT %s AS v FROM %s WHERE %s IS NOT NULL ORDER BY 1",
		quoteIdent(column), quoteIdent(table), quoteIdent(column))

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("distinct %s.%s: %w", table, column, err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v any
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		values = append(values, coerceText(v))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// The engine ordered typed values; after text coercion the lexical order
	// can differ, so sort again on the strings actually served.
	sort.Strings(values)

	c.cache.Set(key, values, gocache.NoExpiration)
	return values, nil
}

func coerceText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}
