package plugin

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"time"
)

// Registry manages all registered plugins and provides efficient dispatch.
// It uses type-cached discovery for O(1) dispatch performance.
type Registry struct {
	mu      sync.RWMutex
	plugins []Plugin
	logger  *slog.Logger

	// Type-cached plugin lists for efficient dispatch
	onInit              []OnInit
	onShutdown          []OnShutdown
	onStayChecked       []OnStayChecked
	onDateBlocked       []OnDateBlocked
	onQuoteComputed     []OnQuoteComputed
	onCalendarEncoded   []OnCalendarEncoded
	onNearestSearched   []OnNearestSearched
	recommenders        []Recommender
	taxCalculators      []TaxCalculator
	surchargeStrategies map[string]SurchargeStrategy
}

// NewRegistry creates a new plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		logger:              slog.Default(),
		surchargeStrategies: make(map[string]SurchargeStrategy),
	}
}

// WithLogger sets the logger for the registry.
func (r *Registry) WithLogger(logger *slog.Logger) *Registry {
	r.logger = logger
	return r
}

// Register adds a plugin to the registry and caches its interfaces.
func (r *Registry) Register(p Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Check for duplicate
	for _, existing := range r.plugins {
		if existing.Name() == p.Name() {
			return fmt.Errorf("plugin: duplicate registration: %s", p.Name())
		}
	}

	r.plugins = append(r.plugins, p)

	// Type-switch to cache interfaces
	if v, ok := p.(OnInit); ok {
		r.onInit = append(r.onInit, v)
	}
	if v, ok := p.(OnShutdown); ok {
		r.onShutdown = append(r.onShutdown, v)
	}
	if v, ok := p.(OnStayChecked); ok {
		r.onStayChecked = append(r.onStayChecked, v)
	}
	if v, ok := p.(OnDateBlocked); ok {
		r.onDateBlocked = append(r.onDateBlocked, v)
	}
	if v, ok := p.(OnQuoteComputed); ok {
		r.onQuoteComputed = append(r.onQuoteComputed, v)
	}
	if v, ok := p.(OnCalendarEncoded); ok {
		r.onCalendarEncoded = append(r.onCalendarEncoded, v)
	}
	if v, ok := p.(OnNearestSearched); ok {
		r.onNearestSearched = append(r.onNearestSearched, v)
	}
	if v, ok := p.(Recommender); ok {
		r.recommenders = append(r.recommenders, v)
	}
	if v, ok := p.(TaxCalculator); ok {
		r.taxCalculators = append(r.taxCalculators, v)
	}
	if v, ok := p.(SurchargeStrategy); ok {
		r.surchargeStrategies[v.StrategyName()] = v
	}

	r.logger.Info("plugin registered",
		"name", p.Name(),
		"interfaces", r.getImplementedInterfaces(p),
	)

	return nil
}

// getImplementedInterfaces returns a list of interfaces implemented by the plugin.
func (r *Registry) getImplementedInterfaces(p Plugin) []string {
	var interfaces []string
	v := reflect.TypeOf(p)

	checkInterface := func(iface reflect.Type, name string) {
		if v.Implements(iface) {
			interfaces = append(interfaces, name)
		}
	}

	checkInterface(reflect.TypeOf((*OnInit)(nil)).Elem(), "OnInit")
	checkInterface(reflect.TypeOf((*OnShutdown)(nil)).Elem(), "OnShutdown")
	checkInterface(reflect.TypeOf((*OnStayChecked)(nil)).Elem(), "OnStayChecked")
	checkInterface(reflect.TypeOf((*OnDateBlocked)(nil)).Elem(), "OnDateBlocked")
	checkInterface(reflect.TypeOf((*OnQuoteComputed)(nil)).Elem(), "OnQuoteComputed")
	checkInterface(reflect.TypeOf((*OnCalendarEncoded)(nil)).Elem(), "OnCalendarEncoded")
	checkInterface(reflect.TypeOf((*OnNearestSearched)(nil)).Elem(), "OnNearestSearched")
	checkInterface(reflect.TypeOf((*Recommender)(nil)).Elem(), "Recommender")
	checkInterface(reflect.TypeOf((*TaxCalculator)(nil)).Elem(), "TaxCalculator")
	checkInterface(reflect.TypeOf((*SurchargeStrategy)(nil)).Elem(), "SurchargeStrategy")

	return interfaces
}

// Get returns a plugin by name.
func (r *Registry) Get(name string) Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.plugins {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// List returns all registered plugins.
func (r *Registry) List() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Plugin, len(r.plugins))
	copy(result, r.plugins)
	return result
}

// Count returns the number of registered plugins.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plugins)
}

// ──────────────────────────────────────────────────
// Event emission methods
// ──────────────────────────────────────────────────

// EmitInit calls OnInit for all plugins that implement it.
func (r *Registry) EmitInit(ctx context.Context, engine interface{}) {
	r.mu.RLock()
	plugins := r.onInit
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnInit(ctx, engine)
		}); err != nil {
			r.logger.Warn("plugin OnInit failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitShutdown calls OnShutdown for all plugins that implement it.
func (r *Registry) EmitShutdown(ctx context.Context) {
	r.mu.RLock()
	plugins := r.onShutdown
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnShutdown(ctx)
		}); err != nil {
			r.logger.Warn("plugin OnShutdown failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitStayChecked emits a stay checked event.
func (r *Registry) EmitStayChecked(ctx context.Context, request, result interface{}) {
	r.mu.RLock()
	plugins := r.onStayChecked
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnStayChecked(ctx, request, result)
		}); err != nil {
			r.logger.Warn("plugin OnStayChecked failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitDateBlocked emits a date blocked event.
func (r *Registry) EmitDateBlocked(ctx context.Context, hotelID, date string, violations interface{}) {
	r.mu.RLock()
	plugins := r.onDateBlocked
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnDateBlocked(ctx, hotelID, date, violations)
		}); err != nil {
			r.logger.Warn("plugin OnDateBlocked failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitQuoteComputed emits a quote computed event.
func (r *Registry) EmitQuoteComputed(ctx context.Context, quote interface{}) {
	r.mu.RLock()
	plugins := r.onQuoteComputed
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnQuoteComputed(ctx, quote)
		}); err != nil {
			r.logger.Warn("plugin OnQuoteComputed failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitCalendarEncoded emits a calendar encoded event.
func (r *Registry) EmitCalendarEncoded(ctx context.Context, hotelID string, days, series int) {
	r.mu.RLock()
	plugins := r.onCalendarEncoded
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnCalendarEncoded(ctx, hotelID, days, series)
		}); err != nil {
			r.logger.Warn("plugin OnCalendarEncoded failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitNearestSearched emits a nearest-date search event.
func (r *Registry) EmitNearestSearched(ctx context.Context, hotelID string, probed int, found bool) {
	r.mu.RLock()
	plugins := r.onNearestSearched
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnNearestSearched(ctx, hotelID, probed, found)
		}); err != nil {
			r.logger.Warn("plugin OnNearestSearched failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// GetRecommenders returns all registered recommender plugins.
func (r *Registry) GetRecommenders() []Recommender {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Recommender, len(r.recommenders))
	copy(result, r.recommenders)
	return result
}

// GetTaxCalculators returns all registered tax calculators.
func (r *Registry) GetTaxCalculators() []TaxCalculator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]TaxCalculator, len(r.taxCalculators))
	copy(result, r.taxCalculators)
	return result
}

// GetSurchargeStrategy returns a surcharge strategy by name.
func (r *Registry) GetSurchargeStrategy(name string) SurchargeStrategy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.surchargeStrategies[name]
}

// callWithTimeout calls a plugin function with a timeout.
// Plugins should never block the evaluation pipeline.
func (r *Registry) callWithTimeout(ctx context.Context, pluginName string, fn func() error) error {
	done := make(chan error, 1)

	go func() {
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		return fmt.Errorf("plugin timeout: %s", pluginName)
	case <-ctx.Done():
		return ctx.Err()
	}
}
