package roomproduct

import "github.com/xraph/stay/types"

// Allocation is a feasible split of a guest party across a room's
// default capacity and extra beds.
type Allocation struct {
	DefaultAdults   int `json:"default_adults"`
	DefaultChildren int `json:"default_children"`
	ExtraAdults     int `json:"extra_adults"`
	ExtraChildren   int `json:"extra_children"`

	DefaultPets int `json:"default_pets"`
	ExtraPets   int `json:"extra_pets"`
}

// DefaultTotal is the number of adults and children in default capacity.
func (a Allocation) DefaultTotal() int {
	return a.DefaultAdults + a.DefaultChildren
}

// ExtraTotal is the number of adults and children on extra beds.
func (a Allocation) ExtraTotal() int {
	return a.ExtraAdults + a.ExtraChildren
}

// Allocate splits a requested guest mix across the room's default and
// extra capacity, preferring default capacity: it maximizes the total
// default occupants, then default adults, then default children, over
// an exhaustive search of the bounded split grid. Pets fill default
// pet capacity first with the remainder on extra capacity, outside the
// adult/child search. Returns ok=false when the party cannot fit.
func Allocate(c Capacity, guests types.GuestMix) (Allocation, bool) {
	if guests.Adults < 0 || guests.Children < 0 || guests.Pets < 0 {
		return Allocation{}, false
	}

	best := Allocation{}
	found := false

	for da := 0; da <= guests.Adults; da++ {
		for dc := 0; dc <= guests.Children; dc++ {
			ea := guests.Adults - da
			ec := guests.Children - dc
			if da > c.MaxAdults || dc > c.MaxChildren {
				continue
			}
			if da+dc > c.MaxOccupancy {
				continue
			}
			if ea > c.ExtraBedAdults || ec > c.ExtraBedChildren {
				continue
			}

			cand := Allocation{
				DefaultAdults:   da,
				DefaultChildren: dc,
				ExtraAdults:     ea,
				ExtraChildren:   ec,
			}
			if !found || betterAllocation(cand, best) {
				best = cand
				found = true
			}
		}
	}
	if !found {
		return Allocation{}, false
	}

	best.DefaultPets = guests.Pets
	if best.DefaultPets > c.MaxPets {
		best.DefaultPets = c.MaxPets
	}
	best.ExtraPets = guests.Pets - best.DefaultPets

	return best, true
}

// betterAllocation orders candidates lexicographically: default total,
// then default adults, then default children.
func betterAllocation(a, b Allocation) bool {
	if a.DefaultTotal() != b.DefaultTotal() {
		return a.DefaultTotal() > b.DefaultTotal()
	}
	if a.DefaultAdults != b.DefaultAdults {
		return a.DefaultAdults > b.DefaultAdults
	}
	return a.DefaultChildren > b.DefaultChildren
}
