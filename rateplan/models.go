// Package rateplan models rate plans: per-channel default sellability,
// date-scoped daily overrides, and derivation from a master plan whose
// sellability or amenity configuration a derived plan follows.
package rateplan

import (
	"github.com/xraph/stay/id"
	"github.com/xraph/stay/types"
)

// Channel is a distribution channel through which a rate plan is sold.
type Channel string

const (
	ChannelDirect  Channel = "direct"
	ChannelWebsite Channel = "website"
	ChannelOTA     Channel = "ota"
	ChannelWalkIn  Channel = "walk_in"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
	StatusDraft    Status = "draft"
)

// SellabilityDefault is the fallback sellability of a plan on one
// channel, used when no daily override covers the queried date.
type SellabilityDefault struct {
	Channel  Channel `json:"channel"`
	Sellable bool    `json:"sellable"`
}

// DailyOverride replaces the channel default for a single date.
type DailyOverride struct {
	Date     types.Date `json:"date"`
	Channel  Channel    `json:"channel"`
	Sellable bool       `json:"sellable"`
}

// Derivation references the master plan a derived plan follows. The
// flags pick which concerns redirect to the master: sellability
// records, amenity inclusion scope, or both.
type Derivation struct {
	MasterID               id.RatePlanID `json:"master_id"`
	FollowRoomAvailability bool          `json:"follow_room_availability"`
	FollowIncludedAmenity  bool          `json:"follow_included_amenity"`
}

type RatePlan struct {
	types.Entity
	ID          id.RatePlanID     `json:"id"`
	HotelID     id.HotelID        `json:"hotel_id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	Status      Status            `json:"status"`
	Currency    string            `json:"currency"`
	Metadata    map[string]string `json:"metadata,omitempty"`

	Defaults  []SellabilityDefault `json:"defaults,omitempty"`
	Overrides []DailyOverride      `json:"overrides,omitempty"`

	// DerivedFrom is nil for master plans.
	DerivedFrom *Derivation `json:"derived_from,omitempty"`
}

// IsDerived reports whether the plan follows a master plan.
func (p *RatePlan) IsDerived() bool {
	return p.DerivedFrom != nil && !p.DerivedFrom.MasterID.IsNil()
}

// DefaultFor returns the plan's fallback sellability on the channel.
// A channel with no configured default is not sellable.
func (p *RatePlan) DefaultFor(ch Channel) bool {
	for _, d := range p.Defaults {
		if d.Channel == ch {
			return d.Sellable
		}
	}
	return false
}

// OverrideFor returns the daily override covering (date, channel), or
// false when none is configured.
func (p *RatePlan) OverrideFor(date types.Date, ch Channel) (bool, bool) {
	for _, o := range p.Overrides {
		if o.Channel == ch && o.Date.Equal(date) {
			return o.Sellable, true
		}
	}
	return false, false
}

// SellableOn resolves the plan's own sellability for (date, channel):
// the daily override when present, else the channel default. Master
// redirection for derived plans happens in Effective, not here.
func (p *RatePlan) SellableOn(date types.Date, ch Channel) bool {
	if v, ok := p.OverrideFor(date, ch); ok {
		return v
	}
	return p.DefaultFor(ch)
}

// Effective is a rate plan with its master references resolved once,
// up front. Consumers read sellability and amenity scope through it
// without re-walking the derivation chain.
type Effective struct {
	Plan *RatePlan

	// SellabilityPlan is the plan whose defaults and overrides answer
	// sellability queries: the master when FollowRoomAvailability is
	// set, otherwise Plan itself.
	SellabilityPlan *RatePlan

	// AmenityPlanID is the plan whose amenity inclusions apply: the
	// master when FollowIncludedAmenity is set, otherwise Plan's own id.
	AmenityPlanID id.RatePlanID
}

// ResolveEffective computes the effective view of every plan in the
// set. A derived plan whose master is absent from the set, or whose
// master is itself derived, falls back to its own records; derivation
// chains do not recurse.
func ResolveEffective(plans []*RatePlan) map[id.RatePlanID]*Effective {
	byID := make(map[id.RatePlanID]*RatePlan, len(plans))
	for _, p := range plans {
		byID[p.ID] = p
	}

	out := make(map[id.RatePlanID]*Effective, len(plans))
	for _, p := range plans {
		eff := &Effective{Plan: p, SellabilityPlan: p, AmenityPlanID: p.ID}
		if p.IsDerived() {
			master, ok := byID[p.DerivedFrom.MasterID]
			if ok && !master.IsDerived() {
				if p.DerivedFrom.FollowRoomAvailability {
					eff.SellabilityPlan = master
				}
				if p.DerivedFrom.FollowIncludedAmenity {
					eff.AmenityPlanID = master.ID
				}
			}
		}
		out[p.ID] = eff
	}
	return out
}

// SellableOn answers sellability through the resolved plan.
func (e *Effective) SellableOn(date types.Date, ch Channel) bool {
	return e.SellabilityPlan.SellableOn(date, ch)
}
