// Package roomproduct models sellable room inventory: room products
// with default and extra-bed capacity, rate-plan pairings with their
// date-scoped adjustments, and the guest allocator that splits a
// requested party across default and extra capacity.
package roomproduct

import (
	"github.com/xraph/stay/id"
	"github.com/xraph/stay/types"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// Capacity describes how many guests fit a room. Default capacity is
// the room's regular berths; extra beds extend it per guest kind.
type Capacity struct {
	MaxAdults    int `json:"max_adults"`
	MaxChildren  int `json:"max_children"`
	MaxPets      int `json:"max_pets"`
	MaxOccupancy int `json:"max_occupancy"`

	ExtraBedAdults   int `json:"extra_bed_adults"`
	ExtraBedChildren int `json:"extra_bed_children"`
}

type RoomProduct struct {
	types.Entity
	ID          id.RoomProductID  `json:"id"`
	HotelID     id.HotelID        `json:"hotel_id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	Status      Status            `json:"status"`
	Capacity    Capacity          `json:"capacity"`
	TotalRooms  int               `json:"total_rooms"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// PairAdjustment overrides a pair's sellability on a single date and
// optionally shifts its availability for that date.
type PairAdjustment struct {
	Date              types.Date `json:"date"`
	Sellable          bool       `json:"sellable"`
	AvailabilityDelta int        `json:"availability_delta,omitempty"`
}

// Pair links a room product to a rate plan it is sold under. The
// static Sellable flag is the fallback; Adjustments override per date.
type Pair struct {
	types.Entity
	ID            id.PairID        `json:"id"`
	HotelID       id.HotelID       `json:"hotel_id"`
	RoomProductID id.RoomProductID `json:"room_product_id"`
	RatePlanID    id.RatePlanID    `json:"rate_plan_id"`
	Sellable      bool             `json:"sellable"`
	Adjustments   []PairAdjustment `json:"adjustments,omitempty"`
}

// AdjustmentFor returns the adjustment covering date, if any.
func (p *Pair) AdjustmentFor(date types.Date) (*PairAdjustment, bool) {
	for i := range p.Adjustments {
		if p.Adjustments[i].Date.Equal(date) {
			return &p.Adjustments[i], true
		}
	}
	return nil, false
}

// SellableOn resolves the pair's sellability for date: the adjustment
// when present, else the static flag.
func (p *Pair) SellableOn(date types.Date) bool {
	if adj, ok := p.AdjustmentFor(date); ok {
		return adj.Sellable
	}
	return p.Sellable
}
