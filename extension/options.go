package extension

import (
	"time"

	stay "github.com/xraph/stay"
	"github.com/xraph/stay/plugin"
	"github.com/xraph/stay/store"
)

// Option configures the stay Forge extension.
type Option func(*Extension)

// WithStore sets the store for the stay engine.
func WithStore(s store.Store) Option {
	return func(e *Extension) {
		e.store = s
	}
}

// WithStayOption passes a stay.Option through to the underlying engine.
func WithStayOption(opt stay.Option) Option {
	return func(e *Extension) {
		e.stayOpts = append(e.stayOpts, opt)
	}
}

// WithPlugin registers a stay plugin.
func WithPlugin(p plugin.Plugin) Option {
	return func(e *Extension) {
		e.stayOpts = append(e.stayOpts, stay.WithPlugin(p))
	}
}

// WithConfig sets the Forge extension configuration.
func WithConfig(cfg Config) Option {
	return func(e *Extension) { e.config = cfg }
}

// WithDisableRoutes prevents HTTP route registration.
func WithDisableRoutes() Option {
	return func(e *Extension) { e.config.DisableRoutes = true }
}

// WithDisableMigrate prevents auto-migration on start.
func WithDisableMigrate() Option {
	return func(e *Extension) { e.config.DisableMigrate = true }
}

// WithBasePath sets the URL prefix for stay routes.
func WithBasePath(path string) Option {
	return func(e *Extension) { e.config.BasePath = path }
}

// WithRequireConfig requires config to be present in YAML files.
// If true and no config is found, Register returns an error.
func WithRequireConfig(require bool) Option {
	return func(e *Extension) { e.config.RequireConfig = require }
}

// WithCalendarChunkDays sets the per-worker calendar chunk size.
func WithCalendarChunkDays(days int) Option {
	return func(e *Extension) { e.config.CalendarChunkDays = days }
}

// WithSearchHorizon sets the nearest-bookable-date search bounds.
func WithSearchHorizon(horizon, window, cap int) Option {
	return func(e *Extension) {
		e.config.SearchHorizonDays = horizon
		e.config.SearchWindowDays = window
		e.config.SearchCapDays = cap
	}
}

// WithHotelCacheTTL sets the hotel record cache duration.
func WithHotelCacheTTL(d time.Duration) Option {
	return func(e *Extension) { e.config.HotelCacheTTL = d }
}

// WithGroveDatabase sets the name of the grove.DB to resolve from the DI container.
// The extension will auto-construct the appropriate store backend (postgres/sqlite/mongo)
// based on the grove driver type. Pass an empty string to use the default (unnamed) grove.DB.
func WithGroveDatabase(name string) Option {
	return func(e *Extension) {
		e.config.GroveDatabase = name
		e.useGrove = true
	}
}
