// Package availability holds the per-date inventory rows the engine
// reads: unsold unit counts per room product and daily selling prices
// per (room product, rate plan).
package availability

import (
	"github.com/xraph/stay/id"
	"github.com/xraph/stay/types"
)

// Availability is the count of unsold units of one room product on
// one date. A missing row is equivalent to zero: sold out.
type Availability struct {
	types.Entity
	HotelID       id.HotelID       `json:"hotel_id"`
	RoomProductID id.RoomProductID `json:"room_product_id"`
	Date          types.Date       `json:"date"`
	Count         int              `json:"count"`
}

// DailyPrice is the accommodation-only price of one (room product,
// rate plan) pair on one date, before extras and taxes.
type DailyPrice struct {
	types.Entity
	HotelID       id.HotelID       `json:"hotel_id"`
	RoomProductID id.RoomProductID `json:"room_product_id"`
	RatePlanID    id.RatePlanID    `json:"rate_plan_id"`
	Date          types.Date       `json:"date"`
	Net           types.Money      `json:"net"`
	Gross         types.Money      `json:"gross"`

	// Adjustments carries rate-plan pricing adjustments already baked
	// into Net/Gross, retained for audit display.
	Adjustments map[string]string `json:"adjustments,omitempty"`
}
