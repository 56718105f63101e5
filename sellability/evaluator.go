// Package sellability decides, per date and per (room product, rate
// plan) pair, whether a stay can be sold: availability, rate-plan
// sellability with master redirection, pair sellability with daily
// adjustments, and restriction checks over every night of the stay.
package sellability

import (
	"github.com/xraph/stay/id"
	"github.com/xraph/stay/rateplan"
	"github.com/xraph/stay/restriction"
	"github.com/xraph/stay/roomproduct"
	"github.com/xraph/stay/types"
)

// Status is the bookability outcome for one pair, computed fresh per
// query and never persisted.
type Status string

const (
	StatusBookable        Status = "BOOKABLE"
	StatusSoldOut         Status = "SOLD_OUT"
	StatusNotSellable     Status = "NOT_SELLABLE"
	StatusMinLOSViolation Status = "MIN_LOS_VIOLATION"
	StatusRestricted      Status = "RESTRICTED"
)

// Snapshot is the per-request working set the evaluator reads. All
// maps are built once from fetched rows; evaluation never touches the
// store.
type Snapshot struct {
	Channel rateplan.Channel

	// Availability is unsold units per (date, room product). A missing
	// entry is sold out.
	Availability map[types.Date]map[id.RoomProductID]int

	// Plans is every rate plan with master references resolved.
	Plans map[id.RatePlanID]*rateplan.Effective

	// Pairs maps room product to the pairs sold for it.
	Pairs map[id.RoomProductID][]*roomproduct.Pair

	// Restrictions is the date index over every level.
	Restrictions *restriction.Index
}

// Evaluator answers sellability questions from a snapshot.
type Evaluator struct {
	snap *Snapshot
}

func NewEvaluator(snap *Snapshot) *Evaluator {
	return &Evaluator{snap: snap}
}

// AvailableRooms returns the unsold units for (date, room product),
// including any pair-level availability delta for that date.
func (e *Evaluator) AvailableRooms(date types.Date, roomProductID id.RoomProductID, ratePlanID id.RatePlanID) int {
	count := 0
	if byRoom, ok := e.snap.Availability[date]; ok {
		count = byRoom[roomProductID]
	}
	if pair := e.pair(roomProductID, ratePlanID); pair != nil {
		if adj, ok := pair.AdjustmentFor(date); ok {
			count += adj.AvailabilityDelta
		}
	}
	if count < 0 {
		return 0
	}
	return count
}

// SellableOn reports whether the (date, room product, rate plan)
// triple is sellable: availability above zero, the plan sellable on
// the channel (through its master when derived), and the pair
// sellable after daily adjustments.
func (e *Evaluator) SellableOn(date types.Date, roomProductID id.RoomProductID, ratePlanID id.RatePlanID) bool {
	if e.AvailableRooms(date, roomProductID, ratePlanID) <= 0 {
		return false
	}

	eff, ok := e.snap.Plans[ratePlanID]
	if !ok || !eff.SellableOn(date, e.snap.Channel) {
		return false
	}

	pair := e.pair(roomProductID, ratePlanID)
	if pair == nil || !pair.SellableOn(date) {
		return false
	}
	return true
}

func (e *Evaluator) pair(roomProductID id.RoomProductID, ratePlanID id.RatePlanID) *roomproduct.Pair {
	for _, p := range e.snap.Pairs[roomProductID] {
		if p.RatePlanID == ratePlanID {
			return p
		}
	}
	return nil
}

// StayResult is the outcome of evaluating one pair for a whole stay.
type StayResult struct {
	Status     Status
	Violations []restriction.Violation
}

// EvaluateStay decides whether the pair can host the full stay
// [checkIn, checkIn+stayNights). Every night must be sellable, and
// the restriction checks must pass for the arrival day (arrival and
// stay roles), each intermediate night (stay role), and the checkout
// day (departure role). A single failing date invalidates the stay.
func (e *Evaluator) EvaluateStay(checkIn types.Date, stayNights int, today types.Date, roomProductID id.RoomProductID, ratePlanID id.RatePlanID) StayResult {
	if stayNights <= 0 {
		return StayResult{Status: StatusNotSellable}
	}

	for n := 0; n < stayNights; n++ {
		date := checkIn.AddDays(n)
		if e.AvailableRooms(date, roomProductID, ratePlanID) <= 0 {
			return StayResult{Status: StatusSoldOut}
		}
		if !e.SellableOn(date, roomProductID, ratePlanID) {
			return StayResult{Status: StatusNotSellable}
		}
	}

	checkOut := checkIn.AddDays(stayNights)
	var violations []restriction.Violation

	check := func(date types.Date, kind restriction.Kind) {
		rs := e.restrictionsFor(date, roomProductID, ratePlanID)
		violations = append(violations, restriction.Check(date, kind, stayNights, checkIn, today, rs)...)
	}

	check(checkIn, restriction.KindArrival)
	for n := 0; n < stayNights; n++ {
		check(checkIn.AddDays(n), restriction.KindStay)
	}
	check(checkOut, restriction.KindDeparture)

	if len(violations) == 0 {
		return StayResult{Status: StatusBookable}
	}
	return StayResult{Status: statusFor(violations), Violations: violations}
}

func (e *Evaluator) restrictionsFor(date types.Date, roomProductID id.RoomProductID, ratePlanID id.RatePlanID) []*restriction.Restriction {
	if e.snap.Restrictions == nil {
		return nil
	}
	return e.snap.Restrictions.AllOn(date, roomProductID, ratePlanID)
}

// statusFor maps violations to the most specific status: a pure
// length-of-stay block reports MIN_LOS_VIOLATION, everything else
// reports RESTRICTED.
func statusFor(violations []restriction.Violation) Status {
	for _, v := range violations {
		switch v.Code {
		case restriction.CodeMinLength, restriction.CodeMinLOSThrough:
		default:
			return StatusRestricted
		}
	}
	return StatusMinLOSViolation
}
