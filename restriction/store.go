package restriction

import (
	"context"

	"github.com/xraph/stay/id"
	"github.com/xraph/stay/types"
)

type Store interface {
	Create(ctx context.Context, r *Restriction) error
	Get(ctx context.Context, restrictionID id.RestrictionID) (*Restriction, error)
	// ListForHotel returns every restriction of the hotel whose window
	// intersects [from, to].
	ListForHotel(ctx context.Context, hotelID id.HotelID, from, to types.Date) ([]*Restriction, error)
	Update(ctx context.Context, r *Restriction) error
	Delete(ctx context.Context, restrictionID id.RestrictionID) error
}
