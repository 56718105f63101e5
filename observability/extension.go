// Package observability provides a metrics extension for the stay engine
// that records evaluation event counts via go-utils MetricFactory.
package observability

import (
	"context"

	"github.com/xraph/stay/plugin"
)

// Ensure MetricsExtension implements required interfaces.
var (
	_ plugin.Plugin            = (*MetricsExtension)(nil)
	_ plugin.OnInit            = (*MetricsExtension)(nil)
	_ plugin.OnStayChecked     = (*MetricsExtension)(nil)
	_ plugin.OnDateBlocked     = (*MetricsExtension)(nil)
	_ plugin.OnQuoteComputed   = (*MetricsExtension)(nil)
	_ plugin.OnCalendarEncoded = (*MetricsExtension)(nil)
	_ plugin.OnNearestSearched = (*MetricsExtension)(nil)
)

// Counter interface for metric counters.
type Counter interface {
	Inc()
	Add(float64)
}

// Histogram interface for metric histograms.
type Histogram interface {
	Observe(float64)
}

// MetricFactory creates metrics.
type MetricFactory interface {
	Counter(name string) Counter
	Histogram(name string) Histogram
}

// MetricsExtension records system-wide evaluation metrics.
// Register it as a stay plugin to automatically track bookability metrics.
type MetricsExtension struct {
	factory MetricFactory

	// Check metrics
	StayChecks   Counter
	DatesBlocked Counter

	// Quote metrics
	QuotesComputed Counter

	// Cache metrics
	HotelCacheHits   Counter
	HotelCacheMisses Counter

	// Calendar metrics
	CalendarsEncoded Counter
	CalendarDays     Histogram
	CalendarSeries   Histogram

	// Nearest-date metrics
	NearestSearches Counter
	NearestMisses   Counter
	NearestProbes   Histogram

	// Error metrics
	StoreErrors  Counter
	PluginErrors Counter
}

// NewMetricsExtension creates a MetricsExtension with the provided MetricFactory.
// Use app.Metrics() in forge extensions.
func NewMetricsExtension(factory MetricFactory) *MetricsExtension {
	return &MetricsExtension{
		factory: factory,

		// Check metrics
		StayChecks:   factory.Counter("stay.check.total"),
		DatesBlocked: factory.Counter("stay.check.dates_blocked"),

		// Quote metrics
		QuotesComputed: factory.Counter("stay.quote.computed"),

		// Cache metrics
		HotelCacheHits:   factory.Counter("stay.hotel.cache.hits"),
		HotelCacheMisses: factory.Counter("stay.hotel.cache.misses"),

		// Calendar metrics
		CalendarsEncoded: factory.Counter("stay.calendar.encoded"),
		CalendarDays:     factory.Histogram("stay.calendar.days"),
		CalendarSeries:   factory.Histogram("stay.calendar.series"),

		// Nearest-date metrics
		NearestSearches: factory.Counter("stay.nearest.searches"),
		NearestMisses:   factory.Counter("stay.nearest.misses"),
		NearestProbes:   factory.Histogram("stay.nearest.probes"),

		// Error metrics
		StoreErrors:  factory.Counter("stay.store.errors"),
		PluginErrors: factory.Counter("stay.plugin.errors"),
	}
}

// Name implements plugin.Plugin.
func (m *MetricsExtension) Name() string { return "observability-metrics" }

// OnInit implements plugin.OnInit.
func (m *MetricsExtension) OnInit(_ context.Context, _ interface{}) error {
	// No initialization needed
	return nil
}

// ──────────────────────────────────────────────────
// Evaluation hooks
// ──────────────────────────────────────────────────

// OnStayChecked implements plugin.OnStayChecked.
func (m *MetricsExtension) OnStayChecked(_ context.Context, _, _ interface{}) error {
	m.StayChecks.Inc()
	return nil
}

// OnDateBlocked implements plugin.OnDateBlocked.
func (m *MetricsExtension) OnDateBlocked(_ context.Context, _, _ string, _ interface{}) error {
	m.DatesBlocked.Inc()
	return nil
}

// OnQuoteComputed implements plugin.OnQuoteComputed.
func (m *MetricsExtension) OnQuoteComputed(_ context.Context, _ interface{}) error {
	m.QuotesComputed.Inc()
	return nil
}

// OnCalendarEncoded implements plugin.OnCalendarEncoded.
func (m *MetricsExtension) OnCalendarEncoded(_ context.Context, _ string, days, series int) error {
	m.CalendarsEncoded.Inc()
	m.CalendarDays.Observe(float64(days))
	m.CalendarSeries.Observe(float64(series))
	return nil
}

// OnNearestSearched implements plugin.OnNearestSearched.
func (m *MetricsExtension) OnNearestSearched(_ context.Context, _ string, probed int, found bool) error {
	m.NearestSearches.Inc()
	m.NearestProbes.Observe(float64(probed))
	if !found {
		m.NearestMisses.Inc()
	}
	return nil
}
