package roomproduct

import (
	"context"

	"github.com/xraph/stay/id"
)

type Store interface {
	Create(ctx context.Context, rp *RoomProduct) error
	Get(ctx context.Context, roomProductID id.RoomProductID) (*RoomProduct, error)
	GetBySlug(ctx context.Context, hotelID id.HotelID, slug string) (*RoomProduct, error)
	ListForHotel(ctx context.Context, hotelID id.HotelID) ([]*RoomProduct, error)
	Update(ctx context.Context, rp *RoomProduct) error
	Delete(ctx context.Context, roomProductID id.RoomProductID) error

	CreatePair(ctx context.Context, p *Pair) error
	GetPair(ctx context.Context, pairID id.PairID) (*Pair, error)
	ListPairsForHotel(ctx context.Context, hotelID id.HotelID) ([]*Pair, error)
	UpdatePair(ctx context.Context, p *Pair) error
	DeletePair(ctx context.Context, pairID id.PairID) error
}
