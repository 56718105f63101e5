package availability

import (
	"context"

	"github.com/xraph/stay/id"
	"github.com/xraph/stay/types"
)

type Store interface {
	ListAvailability(ctx context.Context, hotelID id.HotelID, from, to types.Date) ([]*Availability, error)
	UpsertAvailability(ctx context.Context, rows []*Availability) error

	ListPrices(ctx context.Context, hotelID id.HotelID, from, to types.Date) ([]*DailyPrice, error)
	UpsertPrices(ctx context.Context, rows []*DailyPrice) error
}
