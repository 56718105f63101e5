package sellability

import (
	"testing"

	"github.com/xraph/stay/id"
	"github.com/xraph/stay/rateplan"
	"github.com/xraph/stay/restriction"
	"github.com/xraph/stay/roomproduct"
	"github.com/xraph/stay/types"
)

func dt(s string) types.Date { return types.MustParseDate(s) }

// fixture builds a snapshot with one room, one sellable master plan,
// and availability over the given dates.
type fixture struct {
	room id.RoomProductID
	plan id.RatePlanID
	snap *Snapshot
}

func newFixture(avail map[string]int) *fixture {
	room := id.NewRoomProductID()
	master := &rateplan.RatePlan{
		ID:       id.NewRatePlanID(),
		Defaults: []rateplan.SellabilityDefault{{Channel: rateplan.ChannelWebsite, Sellable: true}},
	}

	availability := make(map[types.Date]map[id.RoomProductID]int, len(avail))
	for s, n := range avail {
		availability[dt(s)] = map[id.RoomProductID]int{room: n}
	}

	return &fixture{
		room: room,
		plan: master.ID,
		snap: &Snapshot{
			Channel:      rateplan.ChannelWebsite,
			Availability: availability,
			Plans:        rateplan.ResolveEffective([]*rateplan.RatePlan{master}),
			Pairs: map[id.RoomProductID][]*roomproduct.Pair{
				room: {{RoomProductID: room, RatePlanID: master.ID, Sellable: true}},
			},
		},
	}
}

// Dates with availability at or below zero are never sellable,
// whatever the plan and pair say.
func TestAvailabilityFloor(t *testing.T) {
	f := newFixture(map[string]int{
		"2024-09-01": 2,
		"2024-09-02": 0,
	})
	ev := NewEvaluator(f.snap)

	if !ev.SellableOn(dt("2024-09-01"), f.room, f.plan) {
		t.Error("available date should be sellable")
	}
	if ev.SellableOn(dt("2024-09-02"), f.room, f.plan) {
		t.Error("zero availability must not be sellable")
	}
	// Missing row is equivalent to zero.
	if ev.SellableOn(dt("2024-09-03"), f.room, f.plan) {
		t.Error("missing availability row must not be sellable")
	}
}

// A derived plan following its master's availability inherits the
// master's sellability when it has no override of its own.
func TestDerivedSellability(t *testing.T) {
	f := newFixture(map[string]int{"2024-09-01": 1})
	master := f.snap.Plans[f.plan].Plan

	derived := &rateplan.RatePlan{
		ID: id.NewRatePlanID(),
		DerivedFrom: &rateplan.Derivation{
			MasterID:               master.ID,
			FollowRoomAvailability: true,
		},
	}
	f.snap.Plans = rateplan.ResolveEffective([]*rateplan.RatePlan{master, derived})
	f.snap.Pairs[f.room] = append(f.snap.Pairs[f.room],
		&roomproduct.Pair{RoomProductID: f.room, RatePlanID: derived.ID, Sellable: true})

	ev := NewEvaluator(f.snap)
	if !ev.SellableOn(dt("2024-09-01"), f.room, derived.ID) {
		t.Error("derived plan should be sellable through master records")
	}
}

func TestPairAdjustmentOverride(t *testing.T) {
	f := newFixture(map[string]int{"2024-09-01": 1, "2024-09-02": 1})
	f.snap.Pairs[f.room][0].Adjustments = []roomproduct.PairAdjustment{
		{Date: dt("2024-09-02"), Sellable: false},
	}

	ev := NewEvaluator(f.snap)
	if !ev.SellableOn(dt("2024-09-01"), f.room, f.plan) {
		t.Error("unadjusted date should follow static flag")
	}
	if ev.SellableOn(dt("2024-09-02"), f.room, f.plan) {
		t.Error("pair adjustment must close the date")
	}
}

func TestAvailabilityDelta(t *testing.T) {
	f := newFixture(map[string]int{"2024-09-01": 1})
	f.snap.Pairs[f.room][0].Adjustments = []roomproduct.PairAdjustment{
		{Date: dt("2024-09-01"), Sellable: true, AvailabilityDelta: -1},
	}

	ev := NewEvaluator(f.snap)
	if got := ev.AvailableRooms(dt("2024-09-01"), f.room, f.plan); got != 0 {
		t.Errorf("AvailableRooms = %d, want 0", got)
	}
	if ev.SellableOn(dt("2024-09-01"), f.room, f.plan) {
		t.Error("delta to zero must not be sellable")
	}
}

func TestEvaluateStay(t *testing.T) {
	f := newFixture(map[string]int{
		"2024-09-01": 1,
		"2024-09-02": 1,
		"2024-09-03": 0,
	})
	ev := NewEvaluator(f.snap)
	today := dt("2024-08-01")

	if got := ev.EvaluateStay(dt("2024-09-01"), 2, today, f.room, f.plan); got.Status != StatusBookable {
		t.Errorf("2-night stay: got %s, want %s", got.Status, StatusBookable)
	}
	// Third night is sold out; the whole stay fails.
	if got := ev.EvaluateStay(dt("2024-09-01"), 3, today, f.room, f.plan); got.Status != StatusSoldOut {
		t.Errorf("3-night stay: got %s, want %s", got.Status, StatusSoldOut)
	}
}

func TestEvaluateStayMinLOS(t *testing.T) {
	f := newFixture(map[string]int{
		"2024-09-01": 1,
		"2024-09-02": 1,
		"2024-09-03": 1,
	})
	minLOS := &restriction.Restriction{
		ID:        id.NewRestrictionID(),
		Type:      restriction.ClosedToStay,
		FromDate:  dt("2024-09-01"),
		ToDate:    dt("2024-09-30"),
		MinLength: func() *int { v := 3; return &v }(),
	}
	f.snap.Restrictions = restriction.BuildIndex([]*restriction.Restriction{minLOS}, dt("2024-09-01"), dt("2024-09-30"))

	ev := NewEvaluator(f.snap)
	today := dt("2024-08-01")

	got := ev.EvaluateStay(dt("2024-09-01"), 2, today, f.room, f.plan)
	if got.Status != StatusMinLOSViolation {
		t.Errorf("2-night stay: got %s, want %s", got.Status, StatusMinLOSViolation)
	}
	if len(got.Violations) == 0 || got.Violations[0].Code != restriction.CodeMinLength {
		t.Errorf("expected MIN_LENGTH violations, got %v", got.Violations)
	}

	if got := ev.EvaluateStay(dt("2024-09-01"), 3, today, f.room, f.plan); got.Status != StatusBookable {
		t.Errorf("3-night stay: got %s, want %s", got.Status, StatusBookable)
	}
}

// A hard house closure on an intermediate night blocks the stay, but
// the same closure covering only the checkout night does not.
func TestEvaluateStayClosures(t *testing.T) {
	f := newFixture(map[string]int{
		"2024-09-01": 1,
		"2024-09-02": 1,
		"2024-09-03": 1,
	})
	cts := &restriction.Restriction{
		ID:       id.NewRestrictionID(),
		Type:     restriction.ClosedToStay,
		FromDate: dt("2024-09-02"),
		ToDate:   dt("2024-09-02"),
	}
	f.snap.Restrictions = restriction.BuildIndex([]*restriction.Restriction{cts}, dt("2024-09-01"), dt("2024-09-30"))

	ev := NewEvaluator(f.snap)
	today := dt("2024-08-01")

	// 3-night stay: 09-02 is an intermediate night, blocked.
	if got := ev.EvaluateStay(dt("2024-09-01"), 3, today, f.room, f.plan); got.Status != StatusRestricted {
		t.Errorf("intermediate closure: got %s, want %s", got.Status, StatusRestricted)
	}
	// 2-night stay: 09-02 is the final night, exempt.
	if got := ev.EvaluateStay(dt("2024-09-01"), 2, today, f.room, f.plan); got.Status != StatusBookable {
		t.Errorf("final-night closure: got %s, want %s", got.Status, StatusBookable)
	}
}
