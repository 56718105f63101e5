package restriction

import (
	"testing"

	"github.com/xraph/stay/id"
	"github.com/xraph/stay/types"
)

func TestCheckHardClosures(t *testing.T) {
	today := dt("2024-06-01")
	cta := &Restriction{ID: id.NewRestrictionID(), Type: ClosedToArrival, FromDate: dt("2024-07-01"), ToDate: dt("2024-07-10")}
	ctd := &Restriction{ID: id.NewRestrictionID(), Type: ClosedToDeparture, FromDate: dt("2024-07-01"), ToDate: dt("2024-07-10")}
	cts := &Restriction{ID: id.NewRestrictionID(), Type: ClosedToStay, FromDate: dt("2024-07-01"), ToDate: dt("2024-07-10")}
	all := []*Restriction{cta, ctd, cts}

	tests := []struct {
		name      string
		date      types.Date
		kind      Kind
		wantCodes []Code
	}{
		{"arrival day", dt("2024-07-03"), KindArrival, []Code{CodeClosedToArrival}},
		{"intermediate night", dt("2024-07-04"), KindStay, []Code{CodeClosedToStay}},
		{"departure day", dt("2024-07-05"), KindDeparture, []Code{CodeClosedToDeparture}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(tt.date, tt.kind, 3, dt("2024-07-03"), today, all)
			if len(got) != len(tt.wantCodes) {
				t.Fatalf("got %d violations, want %d", len(got), len(tt.wantCodes))
			}
			for i, v := range got {
				if v.Code != tt.wantCodes[i] {
					t.Errorf("violation %d: got %s, want %s", i, v.Code, tt.wantCodes[i])
				}
			}
		})
	}
}

// A ClosedToStay restriction never blocks the last night of a stay.
func TestCheckCheckoutExemption(t *testing.T) {
	cts := &Restriction{ID: id.NewRestrictionID(), Type: ClosedToStay, FromDate: dt("2024-07-05"), ToDate: dt("2024-07-05")}

	// 2-night stay 07-04..07-06: last night is 07-05.
	got := Check(dt("2024-07-05"), KindStay, 2, dt("2024-07-04"), dt("2024-06-01"), []*Restriction{cts})
	if len(got) != 0 {
		t.Errorf("CTS blocked the final night: %v", got)
	}

	// Same date as a non-final night is blocked.
	got = Check(dt("2024-07-05"), KindStay, 3, dt("2024-07-04"), dt("2024-06-01"), []*Restriction{cts})
	if len(got) != 1 || got[0].Code != CodeClosedToStay {
		t.Errorf("CTS should block a non-final night, got %v", got)
	}
}

// A restriction with exception bounds never behaves as a hard closure.
func TestCheckExceptionNeverCloses(t *testing.T) {
	r := &Restriction{
		ID:        id.NewRestrictionID(),
		Type:      ClosedToStay,
		FromDate:  dt("2024-08-01"),
		ToDate:    dt("2024-08-31"),
		MinLength: intp(3),
	}

	// 3-night stay satisfies the bound; the CTS type must be ignored.
	got := Check(dt("2024-08-05"), KindStay, 3, dt("2024-08-05"), dt("2024-06-01"), []*Restriction{r})
	if len(got) != 0 {
		t.Errorf("exception restriction acted as closure: %v", got)
	}

	// 2-night stay fails the bound.
	got = Check(dt("2024-08-05"), KindStay, 2, dt("2024-08-05"), dt("2024-06-01"), []*Restriction{r})
	if len(got) != 1 || got[0].Code != CodeMinLength || got[0].Bound != 3 {
		t.Errorf("want MIN_LENGTH bound 3, got %v", got)
	}
}

func TestCheckAdvanceBounds(t *testing.T) {
	r := &Restriction{
		ID:             id.NewRestrictionID(),
		Type:           ClosedToArrival,
		FromDate:       dt("2024-08-01"),
		ToDate:         dt("2024-08-31"),
		MinAdvanceDays: intp(7),
		MaxAdvanceDays: intp(60),
	}

	tests := []struct {
		name  string
		today types.Date
		want  Code
	}{
		{"too late", dt("2024-08-03"), CodeMinAdvance},
		{"too early", dt("2024-05-01"), CodeMaxAdvance},
		{"in window", dt("2024-07-20"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(dt("2024-08-05"), KindArrival, 2, dt("2024-08-05"), tt.today, []*Restriction{r})
			if tt.want == "" {
				if len(got) != 0 {
					t.Errorf("expected no violation, got %v", got)
				}
				return
			}
			if len(got) != 1 || got[0].Code != tt.want {
				t.Errorf("want %s, got %v", tt.want, got)
			}
		})
	}
}

func TestCheckMinLOSThrough(t *testing.T) {
	r := &Restriction{
		ID:            id.NewRestrictionID(),
		Type:          ClosedToStay,
		FromDate:      dt("2024-08-10"),
		ToDate:        dt("2024-08-12"),
		MinLOSThrough: intp(4),
	}

	// 2-night stay overlapping the window violates.
	got := Check(dt("2024-08-10"), KindArrival, 2, dt("2024-08-10"), dt("2024-06-01"), []*Restriction{r})
	if len(got) != 1 || got[0].Code != CodeMinLOSThrough || got[0].Bound != 4 {
		t.Errorf("want MIN_LOS_THROUGH bound 4, got %v", got)
	}

	// 4-night overlapping stay passes.
	got = Check(dt("2024-08-10"), KindArrival, 4, dt("2024-08-10"), dt("2024-06-01"), []*Restriction{r})
	if len(got) != 0 {
		t.Errorf("expected pass, got %v", got)
	}
}

// For all restriction groups: a hard ClosedToStay with no exception
// bounds closes the combined result regardless of other members.
func TestCombineGroupClosurePropagation(t *testing.T) {
	hardCTS := &Restriction{ID: id.NewRestrictionID(), Type: ClosedToStay, FromDate: dt("2024-07-01"), ToDate: dt("2024-07-10")}
	exception := &Restriction{ID: id.NewRestrictionID(), Type: ClosedToStay, FromDate: dt("2024-07-01"), ToDate: dt("2024-07-10"), MinLength: intp(2)}
	open := &Restriction{ID: id.NewRestrictionID(), Type: ClosedToArrival, FromDate: dt("2024-07-01"), ToDate: dt("2024-07-10"), MaxLength: intp(14)}

	groups := [][]*Restriction{
		{hardCTS},
		{hardCTS, exception},
		{exception, hardCTS, open},
		{open, hardCTS},
	}
	for i, group := range groups {
		if c := CombineGroup(group); !c.ClosedToStay {
			t.Errorf("group %d: hard CTS did not propagate", i)
		}
	}

	// Exception restrictions alone never close.
	if c := CombineGroup([]*Restriction{exception, open}); c.ClosedToStay || c.ClosedToArrival {
		t.Error("exception restrictions contributed a closure")
	}
}

// Characterization: the lower-bound fold short-circuits on an absent
// minimum; the upper-bound fold widens to NoLimit on an absent maximum.
func TestCombineGroupBoundFolding(t *testing.T) {
	win := func(mod func(*Restriction)) *Restriction {
		r := &Restriction{ID: id.NewRestrictionID(), Type: ClosedToStay, FromDate: dt("2024-07-01"), ToDate: dt("2024-07-31")}
		mod(r)
		return r
	}

	tests := []struct {
		name    string
		group   []*Restriction
		wantMin int
		wantMax int
	}{
		{
			"both bounded",
			[]*Restriction{
				win(func(r *Restriction) { r.MinLength, r.MaxLength = intp(3), intp(7) }),
				win(func(r *Restriction) { r.MinLength, r.MaxLength = intp(2), intp(10) }),
			},
			2, 10,
		},
		{
			"absent min anywhere erases group min",
			[]*Restriction{
				win(func(r *Restriction) { r.MinLength, r.MaxLength = intp(3), intp(7) }),
				win(func(r *Restriction) { r.MaxLength = intp(5) }),
			},
			0, 7,
		},
		{
			"absent max anywhere lifts group max",
			[]*Restriction{
				win(func(r *Restriction) { r.MinLength, r.MaxLength = intp(3), intp(7) }),
				win(func(r *Restriction) { r.MinLength = intp(2) }),
			},
			2, NoLimit,
		},
		{
			"closure member opens both",
			[]*Restriction{
				win(func(r *Restriction) { r.MinLength, r.MaxLength = intp(3), intp(7) }),
				win(func(_ *Restriction) {}),
			},
			0, NoLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CombineGroup(tt.group)
			if c.MinLength != tt.wantMin {
				t.Errorf("MinLength = %d, want %d", c.MinLength, tt.wantMin)
			}
			if c.MaxLength != tt.wantMax {
				t.Errorf("MaxLength = %d, want %d", c.MaxLength, tt.wantMax)
			}
		})
	}
}

func TestCombineGroupEmpty(t *testing.T) {
	c := CombineGroup(nil)
	if !c.IsOpen() {
		t.Errorf("empty group should be open: %+v", c)
	}
	if !c.AllowsLength(1) || !c.AllowsLength(29) || !c.AllowsAdvance(400) {
		t.Error("open group rejected a stay")
	}
}

func TestCombinePairGroup(t *testing.T) {
	planA, planB := id.NewRatePlanID(), id.NewRatePlanID()

	room := Combined{MinLength: 2, MaxLength: 10, MaxAdvanceDays: NoLimit}
	plans := map[id.RatePlanID]Combined{
		// planA admits 3..5 nights.
		planA: {MinLength: 3, MaxLength: 5, MaxAdvanceDays: NoLimit},
		// planB admits 7+ nights.
		planB: {MinLength: 7, MaxLength: NoLimit, MaxAdvanceDays: NoLimit},
	}

	got := CombinePairGroup(room, plans, 30)
	if !got.Feasible {
		t.Fatal("expected feasible combination")
	}
	// Most permissive pair satisfying the room and at least one plan:
	// 3 (planA's floor within the room's 2..10) up to 10 (room cap via planB).
	if got.MinLength != 3 || got.MaxLength != 10 {
		t.Errorf("got (%d, %d), want (3, 10)", got.MinLength, got.MaxLength)
	}
	if len(got.SellablePlans) != 2 {
		t.Errorf("got %d sellable plans, want 2", len(got.SellablePlans))
	}
}

// Plans failing the advance-booking bound are filtered from the
// sellable set before lengths are searched.
func TestCombinePairGroupAdvanceFiltering(t *testing.T) {
	planA, planB := id.NewRatePlanID(), id.NewRatePlanID()

	room := Combined{MaxLength: NoLimit, MaxAdvanceDays: NoLimit}
	plans := map[id.RatePlanID]Combined{
		planA: {MinAdvanceDays: 14, MaxLength: NoLimit, MaxAdvanceDays: NoLimit},
		planB: {MinLength: 2, MaxLength: 4, MaxAdvanceDays: NoLimit},
	}

	got := CombinePairGroup(room, plans, 5) // booking 5 days out
	if !got.Feasible {
		t.Fatal("expected feasible combination via planB")
	}
	if len(got.SellablePlans) != 1 || got.SellablePlans[0] != planB {
		t.Errorf("advance filter kept wrong plans: %v", got.SellablePlans)
	}
	if got.MinLength != 2 || got.MaxLength != 4 {
		t.Errorf("got (%d, %d), want (2, 4)", got.MinLength, got.MaxLength)
	}

	// With every plan filtered out, nothing is feasible.
	got = CombinePairGroup(room, map[id.RatePlanID]Combined{planA: plans[planA]}, 5)
	if got.Feasible || len(got.SellablePlans) != 0 {
		t.Errorf("expected infeasible and empty plan set, got %+v", got)
	}
}

func TestCombinePairGroupDisjointBounds(t *testing.T) {
	planA := id.NewRatePlanID()

	// Room demands at least 10 nights, plan allows at most 5: no length fits.
	room := Combined{MinLength: 10, MaxLength: NoLimit, MaxAdvanceDays: NoLimit}
	plans := map[id.RatePlanID]Combined{
		planA: {MaxLength: 5, MaxAdvanceDays: NoLimit},
	}

	if got := CombinePairGroup(room, plans, 30); got.Feasible {
		t.Errorf("expected infeasible, got %+v", got)
	}
}

// Only hard-closure members surface as closure violations; exception
// members never do.
func TestCombinedClosureViolations(t *testing.T) {
	cta := &Restriction{ID: id.NewRestrictionID(), Type: ClosedToArrival, FromDate: dt("2024-07-01"), ToDate: dt("2024-07-10")}
	minLen := 3
	exc := &Restriction{ID: id.NewRestrictionID(), Type: ClosedToStay, FromDate: dt("2024-07-01"), ToDate: dt("2024-07-10"), MinLength: &minLen}

	got := CombineGroup([]*Restriction{cta, exc}).ClosureViolations()
	if len(got) != 1 {
		t.Fatalf("got %d violations, want 1: %+v", len(got), got)
	}
	if got[0].Code != CodeClosedToArrival || got[0].RestrictionID != cta.ID {
		t.Errorf("got %+v, want closed-to-arrival from the closure source", got[0])
	}
}

func TestCombinedAdvanceViolations(t *testing.T) {
	minAdv := 30
	rMin := &Restriction{ID: id.NewRestrictionID(), Type: ClosedToStay, FromDate: dt("2024-07-01"), ToDate: dt("2024-07-10"), MinAdvanceDays: &minAdv}
	c := CombineGroup([]*Restriction{rMin})

	got := c.AdvanceViolations(10)
	if len(got) != 1 || got[0].Code != CodeMinAdvance || got[0].Bound != 30 {
		t.Errorf("10 days out: got %+v, want one min-advance at 30", got)
	}
	if got := c.AdvanceViolations(45); len(got) != 0 {
		t.Errorf("45 days out should satisfy the window, got %+v", got)
	}

	maxAdv := 90
	rMax := &Restriction{ID: id.NewRestrictionID(), Type: ClosedToStay, FromDate: dt("2024-07-01"), ToDate: dt("2024-07-10"), MaxAdvanceDays: &maxAdv}
	if got := CombineGroup([]*Restriction{rMax}).AdvanceViolations(120); len(got) != 1 || got[0].Code != CodeMaxAdvance {
		t.Errorf("120 days out: got %+v, want one max-advance", got)
	}
}
