// Package handlers implements the HTTP handlers of the dashboard API.
//
// # Endpoints
//
//	┌────────┬──────────────────────┬──────────────────────────────────────┐
//	│ Method │ Path                 │ Purpose                              │
//	├────────┼──────────────────────┼──────────────────────────────────────┤
//	│ POST   │ /store/connect       │ Re-point the session's store path    │
//	│ GET    │ /schema              │ Tables, views, active descriptor     │
//	│ GET    │ /explore/options     │ Filter dropdown values, date bounds  │
//	│ POST   │ /explore             │ Filtered listing + KPIs              │
//	│ POST   │ /explore/export      │ Listing as CSV/XLSX attachment       │
//	│ GET    │ /queries             │ Resolved predefined query catalog    │
//	│ POST   │ /sql                 │ Ad-hoc SELECT execution              │
//	│ POST   │ /sql/export          │ Ad-hoc result as CSV/XLSX            │
//	│ GET    │ /report              │ Renderer chain outcome               │
//	│ GET    │ /report/file         │ Raw report file (inline/attachment)  │
//	│ GET    │ /report/pages/:page  │ One page rasterized to PNG           │
//	└────────┴──────────────────────┴──────────────────────────────────────┘
//
// # Error Mapping
//
//	store-not-found, not-connected  → 503
//	statement-rejected              → 400
//	execution-error                 → 422 (engine message verbatim)
//	report-unavailable              → 404
//
// Errors never take the session down; the next request starts fresh.
package handlers
