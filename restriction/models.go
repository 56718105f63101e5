// Package restriction implements booking restrictions: closures
// (closed-to-arrival / departure / stay), length-of-stay and
// advance-booking exception bounds, the date-keyed index built per
// request, and the resolver that checks and combines restrictions.
package restriction

import (
	"time"

	"github.com/xraph/stay/id"
	"github.com/xraph/stay/types"
)

// Type is the closure kind a restriction declares.
type Type string

const (
	ClosedToArrival   Type = "closed_to_arrival"
	ClosedToDeparture Type = "closed_to_departure"
	ClosedToStay      Type = "closed_to_stay"
)

// Level is where a restriction attaches. It is derived purely from
// which id sets are populated, never stored.
type Level string

const (
	LevelHouse       Level = "house"
	LevelRoomProduct Level = "room_product"
	LevelRatePlan    Level = "rate_plan"
)

// Code identifies why a restriction was violated, for explaining the
// decision to callers and operators.
type Code string

const (
	CodeClosedToArrival   Code = "CLOSED_TO_ARRIVAL"
	CodeClosedToDeparture Code = "CLOSED_TO_DEPARTURE"
	CodeClosedToStay      Code = "CLOSED_TO_STAY"
	CodeMinLength         Code = "MIN_LENGTH"
	CodeMaxLength         Code = "MAX_LENGTH"
	CodeMinAdvance        Code = "MIN_ADVANCE"
	CodeMaxAdvance        Code = "MAX_ADVANCE"
	CodeMinLOSThrough     Code = "MIN_LOS_THROUGH"
)

// Restriction is one configured booking restriction. A restriction
// carrying any non-nil numeric bound is an "exception": it constrains
// stays by length or advance-booking window and never behaves as a
// hard closure, even when Type indicates one.
type Restriction struct {
	types.Entity
	ID       id.RestrictionID `json:"id"`
	HotelID  id.HotelID       `json:"hotel_id"`
	Type     Type             `json:"type"`
	FromDate types.Date       `json:"from_date"`
	ToDate   types.Date       `json:"to_date"`

	// Weekdays filters the window to specific days; empty means every day.
	Weekdays []time.Weekday `json:"weekdays,omitempty"`

	// RoomProductIDs / RatePlanIDs determine the level: both nil is a
	// house restriction, only RoomProductIDs set is room-product level,
	// only RatePlanIDs set is rate-plan level.
	RoomProductIDs []id.RoomProductID `json:"room_product_ids,omitempty"`
	RatePlanIDs    []id.RatePlanID    `json:"rate_plan_ids,omitempty"`

	MinLength           *int `json:"min_length,omitempty"`
	MaxLength           *int `json:"max_length,omitempty"`
	MinAdvanceDays      *int `json:"min_advance_days,omitempty"`
	MaxAdvanceDays      *int `json:"max_advance_days,omitempty"`
	MinLOSThrough       *int `json:"min_los_through,omitempty"`
	MaxReservationCount *int `json:"max_reservation_count,omitempty"`
}

// Level derives the attachment level from id-set population.
func (r *Restriction) Level() Level {
	switch {
	case len(r.RoomProductIDs) > 0:
		return LevelRoomProduct
	case len(r.RatePlanIDs) > 0:
		return LevelRatePlan
	default:
		return LevelHouse
	}
}

// IsException reports whether the restriction carries numeric bounds.
// Exception restrictions constrain stays but never close a date.
func (r *Restriction) IsException() bool {
	return r.MinLength != nil || r.MaxLength != nil ||
		r.MinAdvanceDays != nil || r.MaxAdvanceDays != nil ||
		r.MinLOSThrough != nil || r.MaxReservationCount != nil
}

// AppliesOn reports whether the restriction covers the given date:
// the date falls in [FromDate, ToDate] and matches the weekday filter.
func (r *Restriction) AppliesOn(d types.Date) bool {
	if !d.Between(r.FromDate, r.ToDate) {
		return false
	}
	if len(r.Weekdays) == 0 {
		return true
	}
	wd := d.Weekday()
	for _, w := range r.Weekdays {
		if w == wd {
			return true
		}
	}
	return false
}

// overlapsStay reports whether the restriction window intersects the
// night range [checkIn, checkIn+stayNights-1].
func (r *Restriction) overlapsStay(checkIn types.Date, stayNights int) bool {
	if stayNights <= 0 {
		return false
	}
	lastNight := checkIn.AddDays(stayNights - 1)
	return !lastNight.Before(r.FromDate) && !checkIn.After(r.ToDate)
}

// Violation records one restriction that rejected a stay, annotated
// with the violated code and the offending bound value.
type Violation struct {
	RestrictionID id.RestrictionID `json:"restriction_id"`
	Code          Code             `json:"code"`
	Bound         int              `json:"bound,omitempty"`

	// Restriction is the full record for audit logging; omitted on the wire.
	Restriction *Restriction `json:"-"`
}
