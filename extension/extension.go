// Package extension provides the Forge extension adapter for the stay engine.
//
// It implements the forge.Extension interface to integrate the engine
// into a Forge application with automatic dependency discovery,
// DI registration, and lifecycle management.
//
// Configuration can be provided programmatically via Option functions
// or via YAML configuration files under "extensions.stay" or "stay" keys.
package extension

import (
	"context"
	"errors"

	"github.com/xraph/forge"
	"github.com/xraph/vessel"

	stay "github.com/xraph/stay"
	"github.com/xraph/stay/store"
	"github.com/xraph/stay/store/memory"
)

// ExtensionName is the name registered with Forge.
const ExtensionName = "stay"

// ExtensionDescription is the human-readable description.
const ExtensionDescription = "Hotel stay bookability and pricing engine"

// ExtensionVersion is the semantic version.
const ExtensionVersion = "0.1.0"

// Ensure Extension implements forge.Extension at compile time.
var _ forge.Extension = (*Extension)(nil)

// Extension adapts the stay engine as a Forge extension.
type Extension struct {
	*forge.BaseExtension

	config   Config
	engine   *stay.Engine
	store    store.Store
	stayOpts []stay.Option
	useGrove bool
}

// New creates a new stay Forge extension with the given options.
func New(opts ...Option) *Extension {
	e := &Extension{
		BaseExtension: forge.NewBaseExtension(ExtensionName, ExtensionVersion, ExtensionDescription),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Engine returns the underlying stay engine.
// This is nil until Register is called.
func (e *Extension) Engine() *stay.Engine { return e.engine }

// Register implements [forge.Extension]. It loads configuration,
// initializes the stay engine, and registers it in the DI container.
func (e *Extension) Register(fapp forge.App) error {
	if err := e.BaseExtension.Register(fapp); err != nil {
		return err
	}

	if err := e.loadConfiguration(); err != nil {
		return err
	}

	// Use memory store if no store was provided programmatically.
	// Grove-backed stores are constructed at app wiring from the DB
	// named by GroveDatabase.
	if e.store == nil {
		e.store = memory.New()
	}

	// Build engine options from resolved config.
	opts := e.buildStayOpts()

	eng := stay.New(e.store, opts...)
	e.engine = eng

	return vessel.Provide(fapp.Container(), func() (*stay.Engine, error) {
		return e.engine, nil
	})
}

// Start implements [forge.Extension].
func (e *Extension) Start(ctx context.Context) error {
	if e.engine == nil {
		return errors.New("stay: extension not initialized")
	}

	if !e.config.DisableMigrate {
		if err := e.engine.Start(ctx); err != nil {
			return err
		}
	}

	e.MarkStarted()
	return nil
}

// Stop implements [forge.Extension].
func (e *Extension) Stop(_ context.Context) error {
	if e.engine != nil {
		if err := e.engine.Stop(); err != nil {
			e.MarkStopped()
			return err
		}
	}
	e.MarkStopped()
	return nil
}

// Health implements [forge.Extension].
func (e *Extension) Health(ctx context.Context) error {
	if e.store == nil {
		return errors.New("stay: store not initialized")
	}
	return e.store.Ping(ctx)
}

// buildStayOpts constructs stay.Option values from the resolved config.
func (e *Extension) buildStayOpts() []stay.Option {
	opts := make([]stay.Option, 0, len(e.stayOpts)+3)

	if e.config.CalendarChunkDays > 0 {
		opts = append(opts, stay.WithChunkSize(e.config.CalendarChunkDays))
	}

	if e.config.SearchHorizonDays > 0 || e.config.SearchWindowDays > 0 || e.config.SearchCapDays > 0 {
		opts = append(opts, stay.WithSearchHorizon(
			e.config.SearchHorizonDays,
			e.config.SearchWindowDays,
			e.config.SearchCapDays,
		))
	}

	if e.config.HotelCacheTTL > 0 {
		opts = append(opts, stay.WithHotelCacheTTL(e.config.HotelCacheTTL))
	}

	// Append any pass-through engine options.
	opts = append(opts, e.stayOpts...)

	return opts
}

// --- Config Loading (mirrors grove/shield extension pattern) ---

// loadConfiguration loads config from YAML files or programmatic sources.
func (e *Extension) loadConfiguration() error {
	programmaticConfig := e.config

	// Try loading from config file.
	fileConfig, configLoaded := e.tryLoadFromConfigFile()

	if !configLoaded {
		if programmaticConfig.RequireConfig {
			return errors.New("stay: configuration is required but not found in config files; " +
				"ensure 'extensions.stay' or 'stay' key exists in your config")
		}

		// Use programmatic config merged with defaults.
		e.config = e.mergeWithDefaults(programmaticConfig)
	} else {
		// Config loaded from YAML -- merge with programmatic options.
		e.config = e.mergeConfigurations(fileConfig, programmaticConfig)
	}

	e.Logger().Debug("stay: configuration loaded",
		forge.F("disable_routes", e.config.DisableRoutes),
		forge.F("disable_migrate", e.config.DisableMigrate),
		forge.F("base_path", e.config.BasePath),
		forge.F("calendar_chunk_days", e.config.CalendarChunkDays),
		forge.F("search_horizon_days", e.config.SearchHorizonDays),
		forge.F("hotel_cache_ttl", e.config.HotelCacheTTL),
	)

	return nil
}

// tryLoadFromConfigFile attempts to load config from YAML files.
func (e *Extension) tryLoadFromConfigFile() (Config, bool) {
	cm := e.App().Config()
	var cfg Config

	// Try "extensions.stay" first (namespaced pattern).
	if cm.IsSet("extensions.stay") {
		if err := cm.Bind("extensions.stay", &cfg); err == nil {
			e.Logger().Debug("stay: loaded config from file",
				forge.F("key", "extensions.stay"),
			)
			return cfg, true
		}
		e.Logger().Warn("stay: failed to bind extensions.stay config",
			forge.F("error", "bind failed"),
		)
	}

	// Try legacy "stay" key.
	if cm.IsSet("stay") {
		if err := cm.Bind("stay", &cfg); err == nil {
			e.Logger().Debug("stay: loaded config from file",
				forge.F("key", "stay"),
			)
			return cfg, true
		}
		e.Logger().Warn("stay: failed to bind stay config",
			forge.F("error", "bind failed"),
		)
	}

	return Config{}, false
}

// mergeWithDefaults fills zero-valued fields with defaults.
func (e *Extension) mergeWithDefaults(cfg Config) Config {
	defaults := DefaultConfig()
	if cfg.CalendarChunkDays == 0 {
		cfg.CalendarChunkDays = defaults.CalendarChunkDays
	}
	if cfg.SearchHorizonDays == 0 {
		cfg.SearchHorizonDays = defaults.SearchHorizonDays
	}
	if cfg.SearchWindowDays == 0 {
		cfg.SearchWindowDays = defaults.SearchWindowDays
	}
	if cfg.SearchCapDays == 0 {
		cfg.SearchCapDays = defaults.SearchCapDays
	}
	if cfg.HotelCacheTTL == 0 {
		cfg.HotelCacheTTL = defaults.HotelCacheTTL
	}
	return cfg
}

// mergeConfigurations merges YAML config with programmatic options.
// YAML config takes precedence for most fields; programmatic bool flags fill gaps.
func (e *Extension) mergeConfigurations(yamlConfig, programmaticConfig Config) Config {
	// Programmatic bool flags override when true.
	if programmaticConfig.DisableRoutes {
		yamlConfig.DisableRoutes = true
	}
	if programmaticConfig.DisableMigrate {
		yamlConfig.DisableMigrate = true
	}

	// String fields: YAML takes precedence.
	if yamlConfig.BasePath == "" && programmaticConfig.BasePath != "" {
		yamlConfig.BasePath = programmaticConfig.BasePath
	}
	if yamlConfig.GroveDatabase == "" && programmaticConfig.GroveDatabase != "" {
		yamlConfig.GroveDatabase = programmaticConfig.GroveDatabase
	}

	// Duration/int fields: YAML takes precedence, programmatic fills gaps.
	if yamlConfig.CalendarChunkDays == 0 && programmaticConfig.CalendarChunkDays != 0 {
		yamlConfig.CalendarChunkDays = programmaticConfig.CalendarChunkDays
	}
	if yamlConfig.SearchHorizonDays == 0 && programmaticConfig.SearchHorizonDays != 0 {
		yamlConfig.SearchHorizonDays = programmaticConfig.SearchHorizonDays
	}
	if yamlConfig.SearchWindowDays == 0 && programmaticConfig.SearchWindowDays != 0 {
		yamlConfig.SearchWindowDays = programmaticConfig.SearchWindowDays
	}
	if yamlConfig.SearchCapDays == 0 && programmaticConfig.SearchCapDays != 0 {
		yamlConfig.SearchCapDays = programmaticConfig.SearchCapDays
	}
	if yamlConfig.HotelCacheTTL == 0 && programmaticConfig.HotelCacheTTL != 0 {
		yamlConfig.HotelCacheTTL = programmaticConfig.HotelCacheTTL
	}

	// Fill remaining zeros with defaults.
	return e.mergeWithDefaults(yamlConfig)
}
