package restriction

import (
	"testing"
	"time"

	"github.com/xraph/stay/id"
	"github.com/xraph/stay/types"
)

func dt(s string) types.Date { return types.MustParseDate(s) }

func intp(v int) *int { return &v }

func TestBuildIndexHouseLevel(t *testing.T) {
	r := &Restriction{
		ID:       id.NewRestrictionID(),
		Type:     ClosedToStay,
		FromDate: dt("2024-07-01"),
		ToDate:   dt("2024-07-10"),
	}

	idx := BuildIndex([]*Restriction{r}, dt("2024-07-01"), dt("2024-07-31"))

	for d := dt("2024-07-01"); !d.After(dt("2024-07-10")); d = d.AddDays(1) {
		if got := idx.HouseOn(d); len(got) != 1 || got[0] != r {
			t.Errorf("HouseOn(%s): got %d restrictions", d, len(got))
		}
	}
	if got := idx.HouseOn(dt("2024-07-11")); len(got) != 0 {
		t.Errorf("restriction leaked past its window: %d entries on 07-11", len(got))
	}
}

func TestBuildIndexClipsToQueryWindow(t *testing.T) {
	r := &Restriction{
		ID:       id.NewRestrictionID(),
		Type:     ClosedToArrival,
		FromDate: dt("2024-06-01"),
		ToDate:   dt("2024-08-31"),
	}

	idx := BuildIndex([]*Restriction{r}, dt("2024-07-01"), dt("2024-07-03"))

	if len(idx.HouseOn(dt("2024-06-30"))) != 0 {
		t.Error("index contains dates before the query window")
	}
	if len(idx.HouseOn(dt("2024-07-04"))) != 0 {
		t.Error("index contains dates after the query window")
	}
	if len(idx.HouseOn(dt("2024-07-02"))) != 1 {
		t.Error("index missing date inside the query window")
	}
}

func TestBuildIndexWeekdayFilter(t *testing.T) {
	// 2024-07-01 is a Monday. Restrict Fridays and Saturdays only.
	r := &Restriction{
		ID:       id.NewRestrictionID(),
		Type:     ClosedToArrival,
		FromDate: dt("2024-07-01"),
		ToDate:   dt("2024-07-14"),
		Weekdays: []time.Weekday{time.Friday, time.Saturday},
	}

	idx := BuildIndex([]*Restriction{r}, dt("2024-07-01"), dt("2024-07-14"))

	want := map[string]bool{
		"2024-07-05": true, "2024-07-06": true,
		"2024-07-12": true, "2024-07-13": true,
	}
	for d := dt("2024-07-01"); !d.After(dt("2024-07-14")); d = d.AddDays(1) {
		got := len(idx.HouseOn(d)) == 1
		if got != want[d.String()] {
			t.Errorf("HouseOn(%s) = %v, want %v", d, got, want[d.String()])
		}
	}
}

func TestBuildIndexFansOutOverIDs(t *testing.T) {
	roomA, roomB := id.NewRoomProductID(), id.NewRoomProductID()
	planA := id.NewRatePlanID()

	roomRstr := &Restriction{
		ID:             id.NewRestrictionID(),
		Type:           ClosedToStay,
		FromDate:       dt("2024-07-01"),
		ToDate:         dt("2024-07-02"),
		RoomProductIDs: []id.RoomProductID{roomA, roomB},
	}
	planRstr := &Restriction{
		ID:          id.NewRestrictionID(),
		Type:        ClosedToArrival,
		FromDate:    dt("2024-07-01"),
		ToDate:      dt("2024-07-02"),
		RatePlanIDs: []id.RatePlanID{planA},
	}

	idx := BuildIndex([]*Restriction{roomRstr, planRstr}, dt("2024-07-01"), dt("2024-07-31"))

	d := dt("2024-07-01")
	if len(idx.ForRoomProduct(d, roomA)) != 1 || len(idx.ForRoomProduct(d, roomB)) != 1 {
		t.Error("room-product restriction not fanned out over both rooms")
	}
	if len(idx.ForRatePlan(d, planA)) != 1 {
		t.Error("rate-plan restriction missing")
	}
	if len(idx.HouseOn(d)) != 0 {
		t.Error("leveled restrictions must not appear at house level")
	}
	if got := idx.AllOn(d, roomA, planA); len(got) != 2 {
		t.Errorf("AllOn: got %d, want 2", len(got))
	}
}

func TestRestrictionLevel(t *testing.T) {
	tests := []struct {
		name string
		r    Restriction
		want Level
	}{
		{"both nil", Restriction{}, LevelHouse},
		{"rooms only", Restriction{RoomProductIDs: []id.RoomProductID{id.NewRoomProductID()}}, LevelRoomProduct},
		{"plans only", Restriction{RatePlanIDs: []id.RatePlanID{id.NewRatePlanID()}}, LevelRatePlan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Level(); got != tt.want {
				t.Errorf("Level() = %v, want %v", got, tt.want)
			}
		})
	}
}
