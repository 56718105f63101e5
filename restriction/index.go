package restriction

import (
	"github.com/xraph/stay/id"
	"github.com/xraph/stay/types"
)

// Index holds restrictions expanded into date-keyed lookup maps so the
// date-by-date evaluation that follows is O(1) per lookup instead of
// rescanning the restriction list. Built once per request; pure.
type Index struct {
	house       map[types.Date][]*Restriction
	ratePlan    map[types.Date]map[id.RatePlanID][]*Restriction
	roomProduct map[types.Date]map[id.RoomProductID][]*Restriction
}

// BuildIndex expands each restriction's [FromDate, ToDate] window into
// its constituent calendar dates clipped to [from, to], honouring the
// weekday filter, and fans room-product / rate-plan restrictions out
// over every id they name.
func BuildIndex(restrictions []*Restriction, from, to types.Date) *Index {
	idx := &Index{
		house:       make(map[types.Date][]*Restriction),
		ratePlan:    make(map[types.Date]map[id.RatePlanID][]*Restriction),
		roomProduct: make(map[types.Date]map[id.RoomProductID][]*Restriction),
	}

	for _, r := range restrictions {
		start := r.FromDate
		if start.Before(from) {
			start = from
		}
		end := r.ToDate
		if end.After(to) {
			end = to
		}

		for d := start; !d.After(end); d = d.AddDays(1) {
			if !r.AppliesOn(d) {
				continue
			}
			switch r.Level() {
			case LevelHouse:
				idx.house[d] = append(idx.house[d], r)
			case LevelRoomProduct:
				byRoom := idx.roomProduct[d]
				if byRoom == nil {
					byRoom = make(map[id.RoomProductID][]*Restriction)
					idx.roomProduct[d] = byRoom
				}
				for _, roomID := range r.RoomProductIDs {
					byRoom[roomID] = append(byRoom[roomID], r)
				}
			case LevelRatePlan:
				byPlan := idx.ratePlan[d]
				if byPlan == nil {
					byPlan = make(map[id.RatePlanID][]*Restriction)
					idx.ratePlan[d] = byPlan
				}
				for _, planID := range r.RatePlanIDs {
					byPlan[planID] = append(byPlan[planID], r)
				}
			}
		}
	}

	return idx
}

// HouseOn returns the house-level restrictions applying on the date.
func (i *Index) HouseOn(d types.Date) []*Restriction {
	return i.house[d]
}

// ForRatePlan returns the rate-plan-level restrictions applying to the
// plan on the date.
func (i *Index) ForRatePlan(d types.Date, planID id.RatePlanID) []*Restriction {
	if byPlan := i.ratePlan[d]; byPlan != nil {
		return byPlan[planID]
	}
	return nil
}

// ForRoomProduct returns the room-product-level restrictions applying
// to the room on the date.
func (i *Index) ForRoomProduct(d types.Date, roomID id.RoomProductID) []*Restriction {
	if byRoom := i.roomProduct[d]; byRoom != nil {
		return byRoom[roomID]
	}
	return nil
}

// AllOn returns the house, room-product and rate-plan restrictions
// applying to a concrete (room, plan) cell on one date. Ordering is
// house first, then room product, then rate plan.
func (i *Index) AllOn(d types.Date, roomID id.RoomProductID, planID id.RatePlanID) []*Restriction {
	house := i.HouseOn(d)
	room := i.ForRoomProduct(d, roomID)
	plan := i.ForRatePlan(d, planID)
	if len(room) == 0 && len(plan) == 0 {
		return house
	}
	out := make([]*Restriction, 0, len(house)+len(room)+len(plan))
	out = append(out, house...)
	out = append(out, room...)
	out = append(out, plan...)
	return out
}

// RatePlansOn returns the plan ids with restrictions on the date.
func (i *Index) RatePlansOn(d types.Date) []id.RatePlanID {
	byPlan := i.ratePlan[d]
	if byPlan == nil {
		return nil
	}
	out := make([]id.RatePlanID, 0, len(byPlan))
	for planID := range byPlan {
		out = append(out, planID)
	}
	return out
}
