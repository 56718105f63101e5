// Package plugin provides an extensible plugin system for the stay
// engine. Plugins can hook into evaluation events to extend
// functionality.
package plugin

import "context"

// Plugin is the base interface that all plugins must implement.
type Plugin interface {
	Name() string
}

// ──────────────────────────────────────────────────
// Lifecycle hooks
// ──────────────────────────────────────────────────

// OnInit is called when the plugin is initialized.
type OnInit interface {
	Plugin
	OnInit(ctx context.Context, engine interface{}) error
}

// OnShutdown is called when the plugin is shutting down.
type OnShutdown interface {
	Plugin
	OnShutdown(ctx context.Context) error
}

// ──────────────────────────────────────────────────
// Evaluation hooks
// ──────────────────────────────────────────────────

// OnStayChecked is called after a stay request has been evaluated.
type OnStayChecked interface {
	Plugin
	OnStayChecked(ctx context.Context, request, result interface{}) error
}

// OnDateBlocked is called when a date is rejected by restrictions,
// with the violations that contributed to the block for auditing.
type OnDateBlocked interface {
	Plugin
	OnDateBlocked(ctx context.Context, hotelID, date string, violations interface{}) error
}

// OnQuoteComputed is called after a stay price quote is assembled.
type OnQuoteComputed interface {
	Plugin
	OnQuoteComputed(ctx context.Context, quote interface{}) error
}

// OnCalendarEncoded is called after a sellability calendar is encoded.
type OnCalendarEncoded interface {
	Plugin
	OnCalendarEncoded(ctx context.Context, hotelID string, days, series int) error
}

// OnNearestSearched is called after a nearest-bookable-date search,
// whether or not it found a date.
type OnNearestSearched interface {
	Plugin
	OnNearestSearched(ctx context.Context, hotelID string, probed int, found bool) error
}

// ──────────────────────────────────────────────────
// Capability plugins
// ──────────────────────────────────────────────────

// Recommender ranks room suggestions from an availability snapshot.
// The default implementation calls an external recommendation service.
type Recommender interface {
	Plugin
	Recommend(ctx context.Context, snapshot interface{}) ([]string, error)
}

// TaxCalculator overrides the built-in city tax computation.
type TaxCalculator interface {
	Plugin
	CalculateTax(ctx context.Context, gross interface{}, hotelID string) (interface{}, error) // Returns Money
}

// SurchargeStrategy overrides the built-in occupancy surcharge.
type SurchargeStrategy interface {
	Plugin
	StrategyName() string
	Compute(ctx context.Context, guests, allotment interface{}) (interface{}, error) // Returns Money
}
