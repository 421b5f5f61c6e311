// Package config defines the configuration structure for the rides dashboard.
//
// Configuration is organized into sections (Server, Store, Report) plus the
// top-level logging fields. Defaults come from struct tags applied by
// creasty/defaults; overrides come from an optional config file and from
// OLA_-prefixed environment variables, bound via viper.
//
// # Server Configuration
//
//	┌───────────────┬─────────┬────────────────────────────────────────┐
//	│ Field         │ Default │ Description                            │
//	├───────────────┼─────────┼────────────────────────────────────────┤
//	│ Mode          │ "dev"   │ Server mode: "prod" or "dev"           │
//	│ HTTPPort      │ 8000    │ HTTP server listen port                │
//	│ StaticsFolder │ "web"   │ Path to the static dashboard files     │
//	└───────────────┴─────────┴────────────────────────────────────────┘
//
// # Store Configuration
//
//	┌──────────────┬───────────────────┬──────────────────────────────────┐
//	│ Field        │ Default           │ Description                      │
//	├──────────────┼───────────────────┼──────────────────────────────────┤
//	│ Path         │ "ola_rides.duckdb"│ Store file; UI-editable later    │
//	│ SampleRows   │ 5                 │ Rows sampled for the descriptor  │
//	│ WaitForStore │ false             │ Poll for the file before start   │
//	└──────────────┴───────────────────┴──────────────────────────────────┘
//
// # Report Configuration
//
//	┌────────────┬─────────────────────────┬────────────────────────────┐
//	│ Field      │ Default                 │ Description                │
//	├────────────┼─────────────────────────┼────────────────────────────┤
//	│ Path       │ "ola_powerbi_report.pdf"│ Fixed-name report document │
//	│ Zoom       │ 1.5                     │ Rasterization zoom factor  │
//	│ PageTitles │ five fixed titles       │ Ordered page display names │
//	└────────────┴─────────────────────────┴────────────────────────────┘
//
// # Usage
//
//	cfg, err := config.Load("ola-insights.yaml")
//	if err != nil {
//	    ...
//	}
package config
