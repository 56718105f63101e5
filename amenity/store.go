package amenity

import (
	"context"

	"github.com/xraph/stay/id"
)

type Store interface {
	Create(ctx context.Context, a *Amenity) error
	Get(ctx context.Context, amenityID id.AmenityID) (*Amenity, error)
	ListForHotel(ctx context.Context, hotelID id.HotelID) ([]*Amenity, error)
	Update(ctx context.Context, a *Amenity) error
	Delete(ctx context.Context, amenityID id.AmenityID) error

	CreateInclusion(ctx context.Context, in *Inclusion) error
	ListInclusionsForHotel(ctx context.Context, hotelID id.HotelID) ([]*Inclusion, error)
	DeleteInclusion(ctx context.Context, amenityID id.AmenityID, ratePlanID id.RatePlanID, roomProductID id.RoomProductID) error
}
