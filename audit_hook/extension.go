// Package audithook bridges stay evaluation events to an audit trail backend.
//
// It defines a local Recorder interface so the package does not import
// Chronicle directly. Callers inject a RecorderFunc adapter that bridges
// to Chronicle at wiring time.
package audithook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xraph/stay/plugin"
)

// Compile-time interface checks.
var (
	_ plugin.Plugin            = (*Extension)(nil)
	_ plugin.OnStayChecked     = (*Extension)(nil)
	_ plugin.OnDateBlocked     = (*Extension)(nil)
	_ plugin.OnQuoteComputed   = (*Extension)(nil)
	_ plugin.OnCalendarEncoded = (*Extension)(nil)
	_ plugin.OnNearestSearched = (*Extension)(nil)
)

// Recorder is the interface that audit backends must implement.
// This matches chronicle.Emitter but is defined locally so that the
// audit_hook package does not import Chronicle directly — callers inject
// the concrete *chronicle.Chronicle at wiring time.
type Recorder interface {
	Record(ctx context.Context, event *AuditEvent) error
}

// AuditEvent is a local representation of an audit event.
// It mirrors chronicle/audit.Event but avoids a module dependency.
type AuditEvent struct {
	Action     string         `json:"action"`
	Resource   string         `json:"resource"`
	Category   string         `json:"category"`
	ResourceID string         `json:"resource_id,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Outcome    string         `json:"outcome"`
	Severity   string         `json:"severity"`
	Reason     string         `json:"reason,omitempty"`
}

// RecorderFunc is an adapter to use a plain function as a Recorder.
type RecorderFunc func(ctx context.Context, event *AuditEvent) error

// Record implements Recorder.
func (f RecorderFunc) Record(ctx context.Context, event *AuditEvent) error {
	return f(ctx, event)
}

// Extension bridges stay evaluation events to an audit trail backend.
type Extension struct {
	recorder Recorder
	enabled  map[string]bool // nil = all enabled
	logger   *slog.Logger
}

// New creates an Extension that emits audit events through the provided Recorder.
func New(r Recorder, opts ...Option) *Extension {
	e := &Extension{
		recorder: r,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name implements plugin.Plugin.
func (e *Extension) Name() string { return "audit-hook" }

// ──────────────────────────────────────────────────
// Evaluation hooks
// ──────────────────────────────────────────────────

// OnStayChecked implements plugin.OnStayChecked.
func (e *Extension) OnStayChecked(ctx context.Context, _, _ interface{}) error {
	return e.record(ctx, ActionStayChecked, SeverityInfo, OutcomeSuccess,
		ResourceStay, "", CategoryBookability, nil,
		"event", "stay_checked",
	)
}

// OnDateBlocked implements plugin.OnDateBlocked.
func (e *Extension) OnDateBlocked(ctx context.Context, hotelID, date string, _ interface{}) error {
	return e.record(ctx, ActionDateBlocked, SeverityWarning, OutcomeFailure,
		ResourceDate, date, CategoryBookability, nil,
		"hotel_id", hotelID,
		"date", date,
	)
}

// OnQuoteComputed implements plugin.OnQuoteComputed.
func (e *Extension) OnQuoteComputed(ctx context.Context, _ interface{}) error {
	return e.record(ctx, ActionQuoteComputed, SeverityInfo, OutcomeSuccess,
		ResourceQuote, "", CategoryPricing, nil,
		"event", "quote_computed",
	)
}

// OnCalendarEncoded implements plugin.OnCalendarEncoded.
func (e *Extension) OnCalendarEncoded(ctx context.Context, hotelID string, days, series int) error {
	return e.record(ctx, ActionCalendarEncoded, SeverityInfo, OutcomeSuccess,
		ResourceCalendar, hotelID, CategoryCalendar, nil,
		"hotel_id", hotelID,
		"days", days,
		"series", series,
	)
}

// OnNearestSearched implements plugin.OnNearestSearched.
func (e *Extension) OnNearestSearched(ctx context.Context, hotelID string, probed int, found bool) error {
	outcome := OutcomeSuccess
	if !found {
		outcome = OutcomePartial
	}
	return e.record(ctx, ActionNearestSearched, SeverityInfo, outcome,
		ResourceStay, hotelID, CategoryBookability, nil,
		"hotel_id", hotelID,
		"probed", probed,
		"found", found,
	)
}

// ──────────────────────────────────────────────────
// Internal helpers
// ──────────────────────────────────────────────────

// record builds and sends an audit event if the action is enabled.
func (e *Extension) record(
	ctx context.Context,
	action, severity, outcome string,
	resource, resourceID, category string,
	err error,
	kvPairs ...any,
) error {
	if e.enabled != nil && !e.enabled[action] {
		return nil
	}

	meta := make(map[string]any, len(kvPairs)/2+1)
	for i := 0; i+1 < len(kvPairs); i += 2 {
		key, ok := kvPairs[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", kvPairs[i])
		}
		meta[key] = kvPairs[i+1]
	}

	var reason string
	if err != nil {
		reason = err.Error()
		meta["error"] = err.Error()
	}

	evt := &AuditEvent{
		Action:     action,
		Resource:   resource,
		Category:   category,
		ResourceID: resourceID,
		Metadata:   meta,
		Outcome:    outcome,
		Severity:   severity,
		Reason:     reason,
	}

	if recErr := e.recorder.Record(ctx, evt); recErr != nil {
		e.logger.Warn("audit_hook: failed to record audit event",
			"action", action,
			"resource_id", resourceID,
			"error", recErr,
		)
	}
	return nil
}
