package extension

import "time"

// Config holds the stay extension configuration.
// Fields can be set programmatically via Option functions or loaded from
// YAML configuration files (under "extensions.stay" or "stay" keys).
type Config struct {
	// DisableRoutes prevents HTTP route registration.
	DisableRoutes bool `json:"disable_routes" mapstructure:"disable_routes" yaml:"disable_routes"`

	// DisableMigrate prevents auto-migration on start.
	DisableMigrate bool `json:"disable_migrate" mapstructure:"disable_migrate" yaml:"disable_migrate"`

	// BasePath is the URL prefix for stay routes (default: "/stay").
	BasePath string `json:"base_path" mapstructure:"base_path" yaml:"base_path"`

	// CalendarChunkDays is the number of days each concurrent calendar
	// worker resolves at a time (default: 62).
	CalendarChunkDays int `json:"calendar_chunk_days" mapstructure:"calendar_chunk_days" yaml:"calendar_chunk_days"`

	// SearchHorizonDays is the initial probe horizon for the
	// nearest-bookable-date search (default: 365).
	SearchHorizonDays int `json:"search_horizon_days" mapstructure:"search_horizon_days" yaml:"search_horizon_days"`

	// SearchWindowDays is the retry window size for the
	// nearest-bookable-date search (default: 180).
	SearchWindowDays int `json:"search_window_days" mapstructure:"search_window_days" yaml:"search_window_days"`

	// SearchCapDays is the hard cap on how far the nearest-bookable-date
	// search will look (default: 730).
	SearchCapDays int `json:"search_cap_days" mapstructure:"search_cap_days" yaml:"search_cap_days"`

	// HotelCacheTTL controls how long hotel records are cached before
	// re-reading from the store (default: 60s).
	HotelCacheTTL time.Duration `json:"hotel_cache_ttl" mapstructure:"hotel_cache_ttl" yaml:"hotel_cache_ttl"`

	// GroveDatabase is the name of a grove.DB registered in the DI container.
	// When set, the extension resolves this named database and auto-constructs
	// the appropriate store based on the driver type (pg/sqlite/mongo).
	// When empty and WithGroveDatabase was called, the default (unnamed) DB is used.
	GroveDatabase string `json:"grove_database" mapstructure:"grove_database" yaml:"grove_database"`

	// RequireConfig requires config to be present in YAML files.
	// If true and no config is found, Register returns an error.
	RequireConfig bool `json:"-" yaml:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		CalendarChunkDays: 62,
		SearchHorizonDays: 365,
		SearchWindowDays:  180,
		SearchCapDays:     730,
		HotelCacheTTL:     60 * time.Second,
	}
}
