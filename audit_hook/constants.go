package audithook

// Action constants for audit events.
const (
	// Evaluation actions
	ActionStayChecked     = "stay.checked"
	ActionStayRestricted  = "stay.restricted"
	ActionQuoteComputed   = "quote.computed"
	ActionDateBlocked     = "date.blocked"
	ActionCalendarEncoded = "calendar.encoded"
	ActionNearestSearched = "nearest.searched"
)

// Resource constants for audit events.
const (
	ResourceStay     = "stay"
	ResourceQuote    = "quote"
	ResourceCalendar = "calendar"
	ResourceDate     = "date"
)

// Category constants for audit events.
const (
	CategoryBookability = "bookability"
	CategoryPricing     = "pricing"
	CategoryCalendar    = "calendar"
)

// Severity levels for audit events.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityError    = "error"
	SeverityCritical = "critical"
)

// Outcome values for audit events.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomePartial = "partial"
)
