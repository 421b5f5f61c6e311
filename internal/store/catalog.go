package store

import (
	"context"
	"fmt"
)

// CatalogEntry is one resolved predefined query: a human-readable label and
// the SQL that will run for it.
type CatalogEntry struct {
	Label    string `json:"label"`
	SQL      string `json:"sql"`
	FromView bool   `json:"fromView"`
}

// Catalog resolves the predefined report queries against the live view list.
// A view with the expected name shadows the inline fallback for its label.
type Catalog struct {
	inspector *Inspector
}

func NewCatalog(inspector *Inspector) *Catalog {
	return &Catalog{inspector: inspector}
}

// Resolve returns the ten catalog entries in their fixed order. Resolution
// happens against the view list as it is right now; callers re-resolve on
// every session state refresh rather than caching.
func (c *Catalog) Resolve(ctx context.Context) ([]CatalogEntry, error) {
	views, err := c.inspector.ListViews(ctx)
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(views))
	for _, v := range views {
		present[v] = true
	}

	entries := make([]CatalogEntry, 0, len(catalogDefs))
	for _, def := range catalogDefs {
		entry := CatalogEntry{Label: def.Label, SQL: def.Fallback}
		if present[def.ViewName] {
			entry.SQL = fmt.Sprintf("SELECT * FROM %s", def.ViewName)
			entry.FromView = true
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
