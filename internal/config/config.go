package config

import (
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/spf13/viper"
)

// Configuration is the full runtime configuration of the dashboard service.
type Configuration struct {
	Server    Server `mapstructure:"server"`
	Store     Store  `mapstructure:"store"`
	Report    Report `mapstructure:"report"`
	LogLevel  string `mapstructure:"logLevel" default:"info"`
	LogFormat string `mapstructure:"logFormat" default:"console"`
}

// Server configures the HTTP server.
type Server struct {
	// Mode is "dev" or "prod". Prod serves the static dashboard with SPA
	// fallback; dev exposes the API only.
	Mode          string `mapstructure:"mode" default:"dev"`
	HTTPPort      int    `mapstructure:"httpPort" default:"8000"`
	StaticsFolder string `mapstructure:"staticsFolder" default:"web"`
}

// Store configures the file-backed relational store. The path is only the
// starting point: the UI can re-point it at runtime.
type Store struct {
	Path       string `mapstructure:"path" default:"ola_rides.duckdb"`
	SampleRows int    `mapstructure:"sampleRows" default:"5"`
	// WaitForStore blocks startup until the store file appears instead of
	// starting unconnected.
	WaitForStore bool `mapstructure:"waitForStore" default:"false"`
}

// Report configures the bundled analysis document.
type Report struct {
	Path string  `mapstructure:"path" default:"ola_powerbi_report.pdf"`
	Zoom float64 `mapstructure:"zoom" default:"1.5"`
	// PageTitles maps page numbers (1-based, in order) to display titles.
	PageTitles []string `mapstructure:"pageTitles"`
}

// DefaultPageTitles matches the fixed page layout of the bundled report.
var DefaultPageTitles = []string{
	"Overall",
	"Vehicle Type",
	"Revenue",
	"Cancellation",
	"Ratings",
}

// Load builds the configuration from defaults, an optional config file and
// OLA_-prefixed environment variables, in that precedence order.
func Load(configFile string) (*Configuration, error) {
	cfg := &Configuration{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("OLA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if len(cfg.Report.PageTitles) == 0 {
		cfg.Report.PageTitles = DefaultPageTitles
	}
	return cfg, nil
}
