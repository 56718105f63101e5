package roomproduct

import (
	"testing"

	"github.com/xraph/stay/types"
)

func TestAllocate(t *testing.T) {
	family := Capacity{
		MaxAdults:        2,
		MaxChildren:      2,
		MaxPets:          1,
		MaxOccupancy:     3,
		ExtraBedAdults:   1,
		ExtraBedChildren: 1,
	}

	tests := []struct {
		name   string
		cap    Capacity
		guests types.GuestMix
		want   Allocation
		ok     bool
	}{
		{
			"fits default",
			family,
			types.GuestMix{Adults: 2, Children: 1},
			Allocation{DefaultAdults: 2, DefaultChildren: 1},
			true,
		},
		{
			"overflow to extra beds",
			family,
			types.GuestMix{Adults: 2, Children: 2},
			Allocation{DefaultAdults: 2, DefaultChildren: 1, ExtraChildren: 1},
			true,
		},
		{
			"adults prioritized in default",
			Capacity{MaxAdults: 2, MaxChildren: 2, MaxOccupancy: 2, ExtraBedAdults: 1, ExtraBedChildren: 1},
			types.GuestMix{Adults: 2, Children: 1},
			Allocation{DefaultAdults: 2, ExtraChildren: 1},
			true,
		},
		{
			"pets default first then extra",
			Capacity{MaxAdults: 2, MaxOccupancy: 2, MaxPets: 1},
			types.GuestMix{Adults: 1, Pets: 2},
			Allocation{DefaultAdults: 1, DefaultPets: 1, ExtraPets: 1},
			true,
		},
		{
			"too many adults",
			Capacity{MaxAdults: 1, MaxOccupancy: 1, ExtraBedAdults: 1},
			types.GuestMix{Adults: 3},
			Allocation{},
			false,
		},
		{
			"occupancy cap binds before per-kind caps",
			Capacity{MaxAdults: 3, MaxChildren: 3, MaxOccupancy: 2},
			types.GuestMix{Adults: 2, Children: 1},
			Allocation{},
			false,
		},
		{
			"empty party",
			family,
			types.GuestMix{},
			Allocation{},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Allocate(tt.cap, tt.guests)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v (alloc %+v)", ok, tt.ok, got)
			}
			if ok && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Every accepted allocation places each requested guest exactly once
// and respects every capacity limit.
func TestAllocateSound(t *testing.T) {
	caps := []Capacity{
		{MaxAdults: 2, MaxChildren: 2, MaxPets: 1, MaxOccupancy: 3, ExtraBedAdults: 1, ExtraBedChildren: 1},
		{MaxAdults: 1, MaxOccupancy: 1},
		{MaxAdults: 4, MaxChildren: 4, MaxOccupancy: 4, ExtraBedAdults: 2},
	}

	for _, c := range caps {
		for adults := 0; adults <= 5; adults++ {
			for children := 0; children <= 5; children++ {
				g := types.GuestMix{Adults: adults, Children: children, Pets: 1}
				a, ok := Allocate(c, g)
				if !ok {
					continue
				}
				if a.DefaultAdults+a.ExtraAdults != adults {
					t.Fatalf("cap %+v guests %+v: adults not conserved: %+v", c, g, a)
				}
				if a.DefaultChildren+a.ExtraChildren != children {
					t.Fatalf("cap %+v guests %+v: children not conserved: %+v", c, g, a)
				}
				if a.DefaultAdults > c.MaxAdults || a.DefaultChildren > c.MaxChildren ||
					a.DefaultTotal() > c.MaxOccupancy ||
					a.ExtraAdults > c.ExtraBedAdults || a.ExtraChildren > c.ExtraBedChildren {
					t.Fatalf("cap %+v guests %+v: limits violated: %+v", c, g, a)
				}
			}
		}
	}
}

func TestPairSellableOn(t *testing.T) {
	p := &Pair{
		Sellable: true,
		Adjustments: []PairAdjustment{
			{Date: types.MustParseDate("2024-09-02"), Sellable: false},
		},
	}

	if !p.SellableOn(types.MustParseDate("2024-09-01")) {
		t.Error("static flag should apply without adjustment")
	}
	if p.SellableOn(types.MustParseDate("2024-09-02")) {
		t.Error("adjustment should override static flag")
	}
}
