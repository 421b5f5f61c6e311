// Package services holds the session-scoped application logic between the
// HTTP handlers and the store.
//
//	┌───────────────────────────────────────────────────────────┐
//	│                        Handlers                           │
//	├───────────────┬───────────────┬───────────────────────────┤
//	│   Explorer    │    Runner     │         Exporter          │
//	│ filter options│ catalog +     │ CSV / XLSX serialization  │
//	│ listing, KPIs │ ad-hoc SELECT │                           │
//	├───────────────┴───────────────┴───────────────────────────┤
//	│                         Session                           │
//	│   owns the current store handle; Connect swaps handles    │
//	│   when the user re-points the store path                  │
//	└───────────────────────────────────────────────────────────┘
//
// Every user interaction is one synchronous recomputation over the current
// handle. There is no background work and nothing is cached here beyond the
// store's own distinct-value cache.
package services
