package calendar

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/xraph/stay/id"
	"github.com/xraph/stay/types"
)

func dt(s string) types.Date { return types.MustParseDate(s) }

func TestEncodeRuns(t *testing.T) {
	base := dt("2024-09-01")
	room := id.NewRoomProductID()
	plan := id.NewRatePlanID()

	flags := []bool{true, true, true, false, false, true}
	var cells []Cell
	for i, f := range flags {
		cells = append(cells, Cell{Date: base.AddDays(i), RoomProductID: room, RatePlanID: plan, Sellable: f})
	}

	z := Encode(base, cells)
	if len(z.Series) != 1 {
		t.Fatalf("got %d series, want 1", len(z.Series))
	}

	want := []Run{{0, 2, 1}, {3, 4, 0}, {5, 5, 1}}
	if !reflect.DeepEqual(z.Series[0].Timeline, want) {
		t.Errorf("timeline = %v, want %v", z.Series[0].Timeline, want)
	}
}

func TestEncodeDictFirstSeenOrder(t *testing.T) {
	base := dt("2024-09-01")
	roomA, roomB := id.NewRoomProductID(), id.NewRoomProductID()
	plan := id.NewRatePlanID()

	cells := []Cell{
		{Date: base, RoomProductID: roomB, RatePlanID: plan, Sellable: true},
		{Date: base, RoomProductID: roomA, RatePlanID: plan, Sellable: true},
		{Date: base.AddDays(1), RoomProductID: roomB, RatePlanID: plan, Sellable: true},
	}

	z := Encode(base, cells)
	if z.Dict.RoomProducts[0] != roomB || z.Dict.RoomProducts[1] != roomA {
		t.Errorf("dict order not first-seen: %v", z.Dict.RoomProducts)
	}
	if len(z.Series) != 2 {
		t.Fatalf("got %d series, want 2", len(z.Series))
	}
	// roomB's two contiguous days collapse into one run.
	if want := []Run{{0, 1, 1}}; !reflect.DeepEqual(z.Series[0].Timeline, want) {
		t.Errorf("roomB timeline = %v, want %v", z.Series[0].Timeline, want)
	}
}

func TestEncodeGapStartsNewRun(t *testing.T) {
	base := dt("2024-09-01")
	room := id.NewRoomProductID()
	plan := id.NewRatePlanID()

	cells := []Cell{
		{Date: base, RoomProductID: room, RatePlanID: plan, Sellable: true},
		// Day 1 missing: same value but not contiguous.
		{Date: base.AddDays(2), RoomProductID: room, RatePlanID: plan, Sellable: true},
	}

	z := Encode(base, cells)
	if want := []Run{{0, 0, 1}, {2, 2, 1}}; !reflect.DeepEqual(z.Series[0].Timeline, want) {
		t.Errorf("timeline = %v, want %v", z.Series[0].Timeline, want)
	}
}

func TestRoundTrip(t *testing.T) {
	base := dt("2024-09-01")
	rng := rand.New(rand.NewSource(42))

	rooms := []id.RoomProductID{id.NewRoomProductID(), id.NewRoomProductID()}
	plans := []id.RatePlanID{id.NewRatePlanID(), id.NewRatePlanID(), id.NewRatePlanID()}

	var cells []Cell
	for _, room := range rooms {
		for _, plan := range plans {
			for day := 0; day < 60; day++ {
				cells = append(cells, Cell{
					Date:          base.AddDays(day),
					RoomProductID: room,
					RatePlanID:    plan,
					Sellable:      rng.Intn(2) == 1,
				})
			}
		}
	}

	decoded, err := Encode(base, cells).Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, cells) {
		t.Fatalf("round trip mismatch: %d in, %d out", len(cells), len(decoded))
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	base := dt("2024-09-01")
	dict := Dict{
		RoomProducts: []id.RoomProductID{id.NewRoomProductID()},
		RatePlans:    []id.RatePlanID{id.NewRatePlanID()},
	}

	tests := []struct {
		name string
		zip  *Zip
	}{
		{
			"inverted run",
			&Zip{BaseDate: base, Dict: dict, Series: []Series{{Timeline: []Run{{3, 1, 1}}}}},
		},
		{
			"overlapping runs",
			&Zip{BaseDate: base, Dict: dict, Series: []Series{{Timeline: []Run{{0, 2, 1}, {2, 4, 0}}}}},
		},
		{
			"value out of range",
			&Zip{BaseDate: base, Dict: dict, Series: []Series{{Timeline: []Run{{0, 1, 2}}}}},
		},
		{
			"dangling dict index",
			&Zip{BaseDate: base, Dict: dict, Series: []Series{{RoomProduct: 5, Timeline: []Run{{0, 1, 1}}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.zip.Decode(); err == nil {
				t.Error("expected decode error")
			}
		})
	}
}
