package rateplan

import (
	"testing"

	"github.com/xraph/stay/id"
	"github.com/xraph/stay/types"
)

func dt(s string) types.Date { return types.MustParseDate(s) }

func TestSellableOnFallbackChain(t *testing.T) {
	p := &RatePlan{
		ID: id.NewRatePlanID(),
		Defaults: []SellabilityDefault{
			{Channel: ChannelWebsite, Sellable: true},
			{Channel: ChannelOTA, Sellable: false},
		},
		Overrides: []DailyOverride{
			{Date: dt("2024-09-02"), Channel: ChannelWebsite, Sellable: false},
			{Date: dt("2024-09-02"), Channel: ChannelOTA, Sellable: true},
		},
	}

	tests := []struct {
		name string
		date types.Date
		ch   Channel
		want bool
	}{
		{"default sellable", dt("2024-09-01"), ChannelWebsite, true},
		{"default blocked", dt("2024-09-01"), ChannelOTA, false},
		{"override closes", dt("2024-09-02"), ChannelWebsite, false},
		{"override opens", dt("2024-09-02"), ChannelOTA, true},
		{"unconfigured channel", dt("2024-09-01"), ChannelWalkIn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.SellableOn(tt.date, tt.ch); got != tt.want {
				t.Errorf("SellableOn(%s, %s) = %v, want %v", tt.date, tt.ch, got, tt.want)
			}
		})
	}
}

// A derived plan following its master's availability answers
// sellability from the master's records, not its own.
func TestResolveEffectiveFollowsMaster(t *testing.T) {
	master := &RatePlan{
		ID:       id.NewRatePlanID(),
		Defaults: []SellabilityDefault{{Channel: ChannelWebsite, Sellable: true}},
	}
	derived := &RatePlan{
		ID:       id.NewRatePlanID(),
		Defaults: []SellabilityDefault{{Channel: ChannelWebsite, Sellable: false}},
		DerivedFrom: &Derivation{
			MasterID:               master.ID,
			FollowRoomAvailability: true,
		},
	}

	eff := ResolveEffective([]*RatePlan{master, derived})

	if !eff[derived.ID].SellableOn(dt("2024-09-01"), ChannelWebsite) {
		t.Error("derived plan should inherit master sellability")
	}
	if eff[derived.ID].AmenityPlanID != derived.ID {
		t.Error("amenity scope should stay own without FollowIncludedAmenity")
	}
	if eff[master.ID].SellabilityPlan != master {
		t.Error("master must resolve to itself")
	}
}

func TestResolveEffectiveAmenityRedirect(t *testing.T) {
	master := &RatePlan{ID: id.NewRatePlanID()}
	derived := &RatePlan{
		ID: id.NewRatePlanID(),
		DerivedFrom: &Derivation{
			MasterID:              master.ID,
			FollowIncludedAmenity: true,
		},
	}

	eff := ResolveEffective([]*RatePlan{master, derived})
	if eff[derived.ID].AmenityPlanID != master.ID {
		t.Error("amenity scope should redirect to master")
	}
	if eff[derived.ID].SellabilityPlan != derived {
		t.Error("sellability should stay own without FollowRoomAvailability")
	}
}

// Derivation does not recurse: a derived plan pointing at another
// derived plan, or at a plan outside the set, keeps its own records.
func TestResolveEffectiveNoChains(t *testing.T) {
	master := &RatePlan{ID: id.NewRatePlanID()}
	mid := &RatePlan{
		ID:          id.NewRatePlanID(),
		DerivedFrom: &Derivation{MasterID: master.ID, FollowRoomAvailability: true},
	}
	leaf := &RatePlan{
		ID:          id.NewRatePlanID(),
		DerivedFrom: &Derivation{MasterID: mid.ID, FollowRoomAvailability: true},
	}
	orphan := &RatePlan{
		ID:          id.NewRatePlanID(),
		DerivedFrom: &Derivation{MasterID: id.NewRatePlanID(), FollowRoomAvailability: true},
	}

	eff := ResolveEffective([]*RatePlan{master, mid, leaf, orphan})

	if eff[mid.ID].SellabilityPlan != master {
		t.Error("mid should follow master")
	}
	if eff[leaf.ID].SellabilityPlan != leaf {
		t.Error("leaf must not chain through a derived master")
	}
	if eff[orphan.ID].SellabilityPlan != orphan {
		t.Error("orphan must fall back to its own records")
	}
}
