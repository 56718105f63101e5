package hotel

import (
	"context"

	"github.com/xraph/stay/id"
)

type Store interface {
	Create(ctx context.Context, h *Hotel) error
	Get(ctx context.Context, hotelID id.HotelID) (*Hotel, error)
	GetBySlug(ctx context.Context, slug string) (*Hotel, error)
	Update(ctx context.Context, h *Hotel) error
	Delete(ctx context.Context, hotelID id.HotelID) error
}
