package restriction

import (
	"github.com/xraph/stay/id"
	"github.com/xraph/stay/types"
)

// Kind is the role a date plays in the stay being checked.
type Kind string

const (
	KindArrival   Kind = "arrival"
	KindStay      Kind = "stay"
	KindDeparture Kind = "departure"
)

// NoLimit is the sentinel for an unbounded upper limit in a Combined
// restriction.
const NoLimit = int(^uint(0) >> 1)

// defaultLOSBound caps the candidate stay lengths the pair combiner
// searches over. Stays longer than this are not sold through the
// calendar surface.
const defaultLOSBound = 30

// Check evaluates every restriction applicable to date against a
// concrete stay and returns the violated ones, each annotated with a
// code and the offending bound. An empty result means not violated.
//
// A restriction without exception bounds is a hard closure and
// violates when its type matches kind. A restriction with exception
// bounds violates when the stay fails at least one bound. ClosedToStay
// is skipped on the final night of the stay (checkout-day exemption).
func Check(date types.Date, kind Kind, stayNights int, checkIn, today types.Date, restrictions []*Restriction) []Violation {
	var violations []Violation
	lastNight := checkIn.AddDays(stayNights - 1)

	for _, r := range restrictions {
		if !r.AppliesOn(date) {
			continue
		}

		if !r.IsException() {
			if v, ok := closureViolation(r, kind, date, lastNight); ok {
				violations = append(violations, v)
			}
			continue
		}

		if v, ok := exceptionViolation(r, stayNights, checkIn, today); ok {
			violations = append(violations, v)
		}
	}

	return violations
}

func closureViolation(r *Restriction, kind Kind, date, lastNight types.Date) (Violation, bool) {
	switch {
	case r.Type == ClosedToArrival && kind == KindArrival:
		return Violation{RestrictionID: r.ID, Code: CodeClosedToArrival, Restriction: r}, true
	case r.Type == ClosedToDeparture && kind == KindDeparture:
		return Violation{RestrictionID: r.ID, Code: CodeClosedToDeparture, Restriction: r}, true
	case r.Type == ClosedToStay && kind == KindStay:
		// Checkout-day exemption: CTS never blocks the last night.
		if date.Equal(lastNight) {
			return Violation{}, false
		}
		return Violation{RestrictionID: r.ID, Code: CodeClosedToStay, Restriction: r}, true
	}
	return Violation{}, false
}

func exceptionViolation(r *Restriction, stayNights int, checkIn, today types.Date) (Violation, bool) {
	advance := today.DaysUntil(checkIn)

	switch {
	case r.MinLength != nil && stayNights < *r.MinLength:
		return Violation{RestrictionID: r.ID, Code: CodeMinLength, Bound: *r.MinLength, Restriction: r}, true
	case r.MaxLength != nil && stayNights > *r.MaxLength:
		return Violation{RestrictionID: r.ID, Code: CodeMaxLength, Bound: *r.MaxLength, Restriction: r}, true
	case r.MinAdvanceDays != nil && advance < *r.MinAdvanceDays:
		return Violation{RestrictionID: r.ID, Code: CodeMinAdvance, Bound: *r.MinAdvanceDays, Restriction: r}, true
	case r.MaxAdvanceDays != nil && advance > *r.MaxAdvanceDays:
		return Violation{RestrictionID: r.ID, Code: CodeMaxAdvance, Bound: *r.MaxAdvanceDays, Restriction: r}, true
	case r.MinLOSThrough != nil && stayNights < *r.MinLOSThrough && r.overlapsStay(checkIn, stayNights):
		return Violation{RestrictionID: r.ID, Code: CodeMinLOSThrough, Bound: *r.MinLOSThrough, Restriction: r}, true
	}
	return Violation{}, false
}

// ──────────────────────────────────────────────────
// Group combination
// ──────────────────────────────────────────────────

// Combined is the single effective restriction for one calendar cell,
// reduced from every restriction at one level applying to one date.
type Combined struct {
	ClosedToArrival   bool
	ClosedToDeparture bool
	ClosedToStay      bool

	// Bounds fold to the most permissive member: a date is treated as
	// restricted only when every restriction in the group rejects it.
	// Zero means no lower bound; NoLimit means no upper bound.
	MinLength      int
	MaxLength      int
	MinAdvanceDays int
	MaxAdvanceDays int
	MinLOSThrough  int

	// Sources are the restrictions that contributed, for audit logging.
	Sources []*Restriction
}

// CombineGroup reduces all restrictions at one level applying to one
// date into a single effective restriction. Hard closures propagate
// from any non-exception member; exception members never contribute a
// closure. A lower bound disappears as soon as any member lacks one;
// an upper bound survives only until a member without one widens the
// group to NoLimit.
func CombineGroup(restrictions []*Restriction) Combined {
	c := Combined{MaxLength: NoLimit, MaxAdvanceDays: NoLimit}
	if len(restrictions) == 0 {
		return c
	}
	c.Sources = restrictions

	for _, r := range restrictions {
		if r.IsException() {
			continue
		}
		switch r.Type {
		case ClosedToArrival:
			c.ClosedToArrival = true
		case ClosedToDeparture:
			c.ClosedToDeparture = true
		case ClosedToStay:
			c.ClosedToStay = true
		}
	}

	// Lower bounds vanish as soon as any member lacks one; the fold
	// short-circuits. Upper bounds fold to the largest value and only
	// when every exception member carries one — a single absent
	// maximum widens the group to NoLimit. Closures contribute no
	// bounds and open both directions. The asymmetry between the two
	// folds is the contract, pinned by characterization tests.
	c.MinLength = foldMin(restrictions, func(r *Restriction) *int { return r.MinLength })
	c.MinAdvanceDays = foldMin(restrictions, func(r *Restriction) *int { return r.MinAdvanceDays })
	c.MinLOSThrough = foldMin(restrictions, func(r *Restriction) *int { return r.MinLOSThrough })
	c.MaxLength = foldMax(restrictions, func(r *Restriction) *int { return r.MaxLength })
	c.MaxAdvanceDays = foldMax(restrictions, func(r *Restriction) *int { return r.MaxAdvanceDays })

	return c
}

// foldMin combines lower bounds: 0 (none) as soon as any member has no
// bound, otherwise the smallest bound in the group.
func foldMin(restrictions []*Restriction, bound func(*Restriction) *int) int {
	combined := 0
	for _, r := range restrictions {
		b := bound(r)
		if !r.IsException() || b == nil {
			return 0
		}
		if combined == 0 || *b < combined {
			combined = *b
		}
	}
	return combined
}

// foldMax combines upper bounds: NoLimit when any member has no bound,
// otherwise the largest bound in the group.
func foldMax(restrictions []*Restriction, bound func(*Restriction) *int) int {
	combined := 0
	for _, r := range restrictions {
		b := bound(r)
		if !r.IsException() || b == nil {
			return NoLimit
		}
		if *b > combined {
			combined = *b
		}
	}
	if combined == 0 {
		return NoLimit
	}
	return combined
}

// AllowsLength reports whether a stay of the given length satisfies
// the combined LOS bounds. Closures are checked separately.
func (c Combined) AllowsLength(stayNights int) bool {
	if c.MinLength > 0 && stayNights < c.MinLength {
		return false
	}
	if c.MaxLength != NoLimit && stayNights > c.MaxLength {
		return false
	}
	if c.MinLOSThrough > 0 && stayNights < c.MinLOSThrough {
		return false
	}
	return true
}

// AllowsAdvance reports whether booking the given number of days ahead
// satisfies the combined advance bounds.
func (c Combined) AllowsAdvance(advanceDays int) bool {
	if c.MinAdvanceDays > 0 && advanceDays < c.MinAdvanceDays {
		return false
	}
	if c.MaxAdvanceDays != NoLimit && advanceDays > c.MaxAdvanceDays {
		return false
	}
	return true
}

// IsOpen reports whether the combined restriction neither closes the
// date nor constrains it numerically.
func (c Combined) IsOpen() bool {
	return !c.ClosedToArrival && !c.ClosedToDeparture && !c.ClosedToStay &&
		c.MinLength == 0 && c.MaxLength == NoLimit &&
		c.MinAdvanceDays == 0 && c.MaxAdvanceDays == NoLimit &&
		c.MinLOSThrough == 0
}

// ClosureViolations lists the hard closures carried by the group, one
// violation per closing source. Exception members never contribute.
func (c Combined) ClosureViolations() []Violation {
	var out []Violation
	for _, r := range c.Sources {
		if r.IsException() {
			continue
		}
		switch r.Type {
		case ClosedToArrival:
			out = append(out, Violation{RestrictionID: r.ID, Code: CodeClosedToArrival, Restriction: r})
		case ClosedToDeparture:
			out = append(out, Violation{RestrictionID: r.ID, Code: CodeClosedToDeparture, Restriction: r})
		case ClosedToStay:
			out = append(out, Violation{RestrictionID: r.ID, Code: CodeClosedToStay, Restriction: r})
		}
	}
	return out
}

// AdvanceViolations lists the advance-window bounds the given lead
// time fails, one violation per offending source.
func (c Combined) AdvanceViolations(advanceDays int) []Violation {
	var out []Violation
	for _, r := range c.Sources {
		if !r.IsException() {
			continue
		}
		switch {
		case r.MinAdvanceDays != nil && advanceDays < *r.MinAdvanceDays:
			out = append(out, Violation{RestrictionID: r.ID, Code: CodeMinAdvance, Bound: *r.MinAdvanceDays, Restriction: r})
		case r.MaxAdvanceDays != nil && advanceDays > *r.MaxAdvanceDays:
			out = append(out, Violation{RestrictionID: r.ID, Code: CodeMaxAdvance, Bound: *r.MaxAdvanceDays, Restriction: r})
		}
	}
	return out
}

// ──────────────────────────────────────────────────
// Room-product x rate-plan combination
// ──────────────────────────────────────────────────

// PairCombined is the result of combining a room-product-level group
// with the rate-plan-level groups of the plans sold for that room.
type PairCombined struct {
	// Feasible is false when no stay length up to the search bound
	// satisfies the room-product group and at least one rate-plan group.
	Feasible bool
	// MinLength / MaxLength are the smallest and largest feasible
	// lengths found by the bounded search.
	MinLength int
	MaxLength int
	// SellablePlans are the plan ids that survived advance-booking
	// filtering and admit at least one feasible length.
	SellablePlans []id.RatePlanID
}

// CombinePairGroup finds the most permissive (min, max) stay-length
// pair that simultaneously satisfies the room-product restriction and
// at least one rate-plan restriction, by bounded search over candidate
// lengths. Rate plans whose combined minimum advance would already
// fail for the queried check-in are removed from the sellable set
// before the search.
func CombinePairGroup(room Combined, plans map[id.RatePlanID]Combined, advanceDays int) PairCombined {
	out := PairCombined{MaxLength: NoLimit}

	if !room.AllowsAdvance(advanceDays) {
		return out
	}

	// Advance filtering happens per plan, before lengths are considered.
	kept := make(map[id.RatePlanID]Combined, len(plans))
	for planID, pc := range plans {
		if pc.AllowsAdvance(advanceDays) {
			kept[planID] = pc
			out.SellablePlans = append(out.SellablePlans, planID)
		}
	}
	if len(kept) == 0 {
		return PairCombined{MaxLength: NoLimit}
	}

	minFeasible, maxFeasible := 0, 0
	for n := 1; n <= defaultLOSBound; n++ {
		if !room.AllowsLength(n) {
			continue
		}
		ok := false
		for _, pc := range kept {
			if pc.AllowsLength(n) {
				ok = true
				break
			}
		}
		if !ok {
			continue
		}
		if minFeasible == 0 {
			minFeasible = n
		}
		maxFeasible = n
	}

	if minFeasible == 0 {
		return PairCombined{SellablePlans: out.SellablePlans, MaxLength: NoLimit}
	}

	out.Feasible = true
	out.MinLength = minFeasible
	if maxFeasible < defaultLOSBound {
		out.MaxLength = maxFeasible
	}
	return out
}
