package pricing

import (
	"github.com/xraph/stay/id"
	"github.com/xraph/stay/types"
)

// DayRate is the cheapest sellable pair on one date.
type DayRate struct {
	Date          types.Date       `json:"date"`
	RoomProductID id.RoomProductID `json:"room_product_id"`
	RatePlanID    id.RatePlanID    `json:"rate_plan_id"`
	Net           types.Money      `json:"net"`
	Gross         types.Money      `json:"gross"`
}

// SellableFunc reports whether a pair is sellable on a date.
type SellableFunc func(date types.Date, roomProductID id.RoomProductID, ratePlanID id.RatePlanID) bool

// LowestPerDay computes, per date independently, the minimum-gross
// sellable pair among the supplied price rows. Dates with no sellable
// priced pair are absent from the result. Gross-price ties break on
// (room product, rate plan) id order so the winner is stable across
// runs regardless of map iteration order.
func (a *Aggregator) LowestPerDay(prices PriceMap, from, to types.Date, sellable SellableFunc) map[types.Date]DayRate {
	out := make(map[types.Date]DayRate)

	for key, row := range prices {
		if key.Date.Before(from) || key.Date.After(to) {
			continue
		}
		if sellable != nil && !sellable(key.Date, key.RoomProductID, key.RatePlanID) {
			continue
		}

		if best, ok := out[key.Date]; ok {
			if best.Gross.LessThan(row.Gross) {
				continue
			}
			if best.Gross.Equal(row.Gross) && !beforePair(key, best) {
				continue
			}
		}
		out[key.Date] = DayRate{
			Date:          key.Date,
			RoomProductID: key.RoomProductID,
			RatePlanID:    key.RatePlanID,
			Net:           row.Net,
			Gross:         row.Gross,
		}
	}
	return out
}

// beforePair reports whether the candidate pair sorts before the
// current best, by room product id then rate plan id.
func beforePair(key PriceKey, best DayRate) bool {
	if r, b := key.RoomProductID.String(), best.RoomProductID.String(); r != b {
		return r < b
	}
	return key.RatePlanID.String() < best.RatePlanID.String()
}
