// Package store defines the unified storage interface the stay engine
// reads through, with in-memory, Postgres, SQLite and MongoDB
// implementations in subpackages.
package store

import (
	"context"
	"time"

	"github.com/xraph/stay/amenity"
	"github.com/xraph/stay/availability"
	"github.com/xraph/stay/hotel"
	"github.com/xraph/stay/id"
	"github.com/xraph/stay/rateplan"
	"github.com/xraph/stay/restriction"
	"github.com/xraph/stay/roomproduct"
	"github.com/xraph/stay/types"
)

// Store is the unified storage interface for all stay entities.
// Instead of embedding the sub-interfaces, we explicitly declare all
// methods to avoid naming conflicts.
type Store interface {
	// Hotel methods
	CreateHotel(ctx context.Context, h *hotel.Hotel) error
	GetHotel(ctx context.Context, hotelID id.HotelID) (*hotel.Hotel, error)
	GetHotelBySlug(ctx context.Context, slug string) (*hotel.Hotel, error)
	UpdateHotel(ctx context.Context, h *hotel.Hotel) error
	DeleteHotel(ctx context.Context, hotelID id.HotelID) error

	// Room product methods
	CreateRoomProduct(ctx context.Context, rp *roomproduct.RoomProduct) error
	GetRoomProduct(ctx context.Context, roomProductID id.RoomProductID) (*roomproduct.RoomProduct, error)
	GetRoomProductBySlug(ctx context.Context, hotelID id.HotelID, slug string) (*roomproduct.RoomProduct, error)
	ListRoomProducts(ctx context.Context, hotelID id.HotelID) ([]*roomproduct.RoomProduct, error)
	UpdateRoomProduct(ctx context.Context, rp *roomproduct.RoomProduct) error
	DeleteRoomProduct(ctx context.Context, roomProductID id.RoomProductID) error

	// Pair methods
	CreatePair(ctx context.Context, p *roomproduct.Pair) error
	GetPair(ctx context.Context, pairID id.PairID) (*roomproduct.Pair, error)
	ListPairs(ctx context.Context, hotelID id.HotelID) ([]*roomproduct.Pair, error)
	UpdatePair(ctx context.Context, p *roomproduct.Pair) error
	DeletePair(ctx context.Context, pairID id.PairID) error

	// Rate plan methods
	CreateRatePlan(ctx context.Context, p *rateplan.RatePlan) error
	GetRatePlan(ctx context.Context, ratePlanID id.RatePlanID) (*rateplan.RatePlan, error)
	GetRatePlanBySlug(ctx context.Context, hotelID id.HotelID, slug string) (*rateplan.RatePlan, error)
	ListRatePlans(ctx context.Context, hotelID id.HotelID, opts rateplan.ListOpts) ([]*rateplan.RatePlan, error)
	UpdateRatePlan(ctx context.Context, p *rateplan.RatePlan) error
	DeleteRatePlan(ctx context.Context, ratePlanID id.RatePlanID) error

	// Restriction methods
	CreateRestriction(ctx context.Context, r *restriction.Restriction) error
	GetRestriction(ctx context.Context, restrictionID id.RestrictionID) (*restriction.Restriction, error)
	ListRestrictions(ctx context.Context, hotelID id.HotelID, from, to types.Date) ([]*restriction.Restriction, error)
	UpdateRestriction(ctx context.Context, r *restriction.Restriction) error
	DeleteRestriction(ctx context.Context, restrictionID id.RestrictionID) error

	// Availability and pricing methods
	ListAvailability(ctx context.Context, hotelID id.HotelID, from, to types.Date) ([]*availability.Availability, error)
	UpsertAvailability(ctx context.Context, rows []*availability.Availability) error
	ListPrices(ctx context.Context, hotelID id.HotelID, from, to types.Date) ([]*availability.DailyPrice, error)
	UpsertPrices(ctx context.Context, rows []*availability.DailyPrice) error

	// Amenity methods
	CreateAmenity(ctx context.Context, a *amenity.Amenity) error
	GetAmenity(ctx context.Context, amenityID id.AmenityID) (*amenity.Amenity, error)
	ListAmenities(ctx context.Context, hotelID id.HotelID) ([]*amenity.Amenity, error)
	UpdateAmenity(ctx context.Context, a *amenity.Amenity) error
	DeleteAmenity(ctx context.Context, amenityID id.AmenityID) error
	CreateInclusion(ctx context.Context, in *amenity.Inclusion) error
	ListInclusions(ctx context.Context, hotelID id.HotelID) ([]*amenity.Inclusion, error)
	DeleteInclusion(ctx context.Context, amenityID id.AmenityID, ratePlanID id.RatePlanID, roomProductID id.RoomProductID) error

	// Hotel cache methods. The cache is a pure accelerator: a miss
	// falls through to GetHotel, never to an error seen by callers.
	GetCachedHotel(ctx context.Context, hotelID id.HotelID) (*hotel.Hotel, error)
	SetCachedHotel(ctx context.Context, h *hotel.Hotel, ttl time.Duration) error
	InvalidateHotel(ctx context.Context, hotelID id.HotelID) error

	// Core methods
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
