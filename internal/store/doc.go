// Package store implements the read-only data access layer for the rides
// dashboard, on top of a file-backed DuckDB database.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├───────────────┬───────────────┬───────────────┬─────────────────┤
//	│   Inspector   │ DistinctCache │   Executor    │     Catalog     │
//	│       ▼       │       ▼       │       ▼       │        ▼        │
//	│ table/view    │ filter option │ guarded       │ ten predefined  │
//	│ names, column │ values, keyed │ SELECT-only   │ queries, view   │
//	│ sampling      │ by store path │ execution     │ shadowing       │
//	└───────────────┴───────────────┴───────────────┴─────────────────┘
//
// # Expected Schema
//
// The store carries at least one base table (conventionally "bookings") with
// the booking columns named in internal/models, plus optionally the ten
// precomputed views the Catalog resolves against.
//
// # Query Construction
//
// The Explore tab's SELECT is assembled from ListOption values over a squirrel
// builder. Every predicate value is a bound parameter; only schema-derived
// identifiers ever appear in statement text. With no predicates the statement
// carries no WHERE clause.
//
// # Invariants
//
//   - The package never writes. There is no migration, no DDL, no DML.
//   - A rejected statement (non-SELECT) never reaches the engine.
//   - Distinct values are cached per (path, table, column) with no
//     invalidation; re-pointing the path is the only refresh.
package store
