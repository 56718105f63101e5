package rateplan

import (
	"context"

	"github.com/xraph/stay/id"
)

type Store interface {
	Create(ctx context.Context, p *RatePlan) error
	Get(ctx context.Context, planID id.RatePlanID) (*RatePlan, error)
	GetBySlug(ctx context.Context, hotelID id.HotelID, slug string) (*RatePlan, error)
	ListForHotel(ctx context.Context, hotelID id.HotelID, opts ListOpts) ([]*RatePlan, error)
	Update(ctx context.Context, p *RatePlan) error
	Delete(ctx context.Context, planID id.RatePlanID) error
}

type ListOpts struct {
	Status Status
	Limit  int
	Offset int
}
