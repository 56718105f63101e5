// Package mongo implements the stay store on MongoDB via the Grove ORM.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/xraph/grove"
	"github.com/xraph/grove/drivers/mongodriver"

	stay "github.com/xraph/stay"
	"github.com/xraph/stay/amenity"
	"github.com/xraph/stay/availability"
	"github.com/xraph/stay/hotel"
	"github.com/xraph/stay/id"
	"github.com/xraph/stay/rateplan"
	"github.com/xraph/stay/restriction"
	"github.com/xraph/stay/roomproduct"
	staystore "github.com/xraph/stay/store"
	"github.com/xraph/stay/types"
)

// Collection name constants.
const (
	colHotels       = "stay_hotels"
	colRoomProducts = "stay_room_products"
	colRatePlans    = "stay_rate_plans"
	colPairs        = "stay_pairs"
	colRestrictions = "stay_restrictions"
	colAvailability = "stay_availability"
	colPrices       = "stay_prices"
	colAmenities    = "stay_amenities"
	colInclusions   = "stay_inclusions"
	colHotelCache   = "stay_hotel_cache"
)

// compile-time interface check
var _ staystore.Store = (*Store)(nil)

// Store implements store.Store using MongoDB via Grove ORM.
type Store struct {
	db  *grove.DB
	mdb *mongodriver.MongoDB
}

// New creates a new MongoDB store backed by Grove ORM.
func New(db *grove.DB) *Store {
	return &Store{
		db:  db,
		mdb: mongodriver.Unwrap(db),
	}
}

// DB returns the underlying grove database for direct access.
func (s *Store) DB() *grove.DB { return s.db }

// Migrate creates indexes for all stay collections.
func (s *Store) Migrate(ctx context.Context) error {
	indexes := migrationIndexes()

	for col, models := range indexes {
		if len(models) == 0 {
			continue
		}
		_, err := s.mdb.Collection(col).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("stay/mongo: migrate %s indexes: %w", col, err)
		}
	}
	return nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ==================== Hotel Store ====================

func (s *Store) CreateHotel(ctx context.Context, h *hotel.Hotel) error {
	m := toHotelModel(h)
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: create hotel: %w", err)
	}
	return nil
}

func (s *Store) GetHotel(ctx context.Context, hotelID id.HotelID) (*hotel.Hotel, error) {
	var m hotelModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": hotelID.String()}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, stay.ErrHotelNotFound
		}
		return nil, fmt.Errorf("stay/mongo: get hotel: %w", err)
	}
	return fromHotelModel(&m)
}

func (s *Store) GetHotelBySlug(ctx context.Context, slug string) (*hotel.Hotel, error) {
	var m hotelModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"slug": slug}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, stay.ErrHotelNotFound
		}
		return nil, fmt.Errorf("stay/mongo: get hotel by slug: %w", err)
	}
	return fromHotelModel(&m)
}

func (s *Store) UpdateHotel(ctx context.Context, h *hotel.Hotel) error {
	m := toHotelModel(h)
	m.UpdatedAt = now()

	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.ID}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: update hotel: %w", err)
	}
	if res.MatchedCount() == 0 {
		return stay.ErrHotelNotFound
	}
	return nil
}

func (s *Store) DeleteHotel(ctx context.Context, hotelID id.HotelID) error {
	res, err := s.mdb.NewDelete((*hotelModel)(nil)).
		Filter(bson.M{"_id": hotelID.String()}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: delete hotel: %w", err)
	}
	if res.DeletedCount() == 0 {
		return stay.ErrHotelNotFound
	}
	return nil
}

// ==================== Room Product Store ====================

func (s *Store) CreateRoomProduct(ctx context.Context, rp *roomproduct.RoomProduct) error {
	m := toRoomProductModel(rp)
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: create room product: %w", err)
	}
	return nil
}

func (s *Store) GetRoomProduct(ctx context.Context, roomProductID id.RoomProductID) (*roomproduct.RoomProduct, error) {
	var m roomProductModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": roomProductID.String()}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, stay.ErrRoomProductNotFound
		}
		return nil, fmt.Errorf("stay/mongo: get room product: %w", err)
	}
	return fromRoomProductModel(&m)
}

func (s *Store) GetRoomProductBySlug(ctx context.Context, hotelID id.HotelID, slug string) (*roomproduct.RoomProduct, error) {
	var m roomProductModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"hotel_id": hotelID.String(), "slug": slug}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, stay.ErrRoomProductNotFound
		}
		return nil, fmt.Errorf("stay/mongo: get room product by slug: %w", err)
	}
	return fromRoomProductModel(&m)
}

func (s *Store) ListRoomProducts(ctx context.Context, hotelID id.HotelID) ([]*roomproduct.RoomProduct, error) {
	var models []roomProductModel

	err := s.mdb.NewFind(&models).
		Filter(bson.M{"hotel_id": hotelID.String()}).
		Sort(bson.D{{Key: "created_at", Value: 1}}).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("stay/mongo: list room products: %w", err)
	}

	result := make([]*roomproduct.RoomProduct, len(models))
	for i := range models {
		rp, err := fromRoomProductModel(&models[i])
		if err != nil {
			return nil, err
		}
		result[i] = rp
	}
	return result, nil
}

func (s *Store) UpdateRoomProduct(ctx context.Context, rp *roomproduct.RoomProduct) error {
	m := toRoomProductModel(rp)
	m.UpdatedAt = now()

	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.ID}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: update room product: %w", err)
	}
	if res.MatchedCount() == 0 {
		return stay.ErrRoomProductNotFound
	}
	return nil
}

func (s *Store) DeleteRoomProduct(ctx context.Context, roomProductID id.RoomProductID) error {
	res, err := s.mdb.NewDelete((*roomProductModel)(nil)).
		Filter(bson.M{"_id": roomProductID.String()}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: delete room product: %w", err)
	}
	if res.DeletedCount() == 0 {
		return stay.ErrRoomProductNotFound
	}
	return nil
}

// ==================== Pair Store ====================

func (s *Store) CreatePair(ctx context.Context, p *roomproduct.Pair) error {
	m := toPairModel(p)
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: create pair: %w", err)
	}
	return nil
}

func (s *Store) GetPair(ctx context.Context, pairID id.PairID) (*roomproduct.Pair, error) {
	var m pairModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": pairID.String()}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, stay.ErrPairNotFound
		}
		return nil, fmt.Errorf("stay/mongo: get pair: %w", err)
	}
	return fromPairModel(&m)
}

func (s *Store) ListPairs(ctx context.Context, hotelID id.HotelID) ([]*roomproduct.Pair, error) {
	var models []pairModel

	err := s.mdb.NewFind(&models).
		Filter(bson.M{"hotel_id": hotelID.String()}).
		Sort(bson.D{{Key: "created_at", Value: 1}}).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("stay/mongo: list pairs: %w", err)
	}

	result := make([]*roomproduct.Pair, len(models))
	for i := range models {
		p, err := fromPairModel(&models[i])
		if err != nil {
			return nil, err
		}
		result[i] = p
	}
	return result, nil
}

func (s *Store) UpdatePair(ctx context.Context, p *roomproduct.Pair) error {
	m := toPairModel(p)
	m.UpdatedAt = now()

	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.ID}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: update pair: %w", err)
	}
	if res.MatchedCount() == 0 {
		return stay.ErrPairNotFound
	}
	return nil
}

func (s *Store) DeletePair(ctx context.Context, pairID id.PairID) error {
	res, err := s.mdb.NewDelete((*pairModel)(nil)).
		Filter(bson.M{"_id": pairID.String()}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: delete pair: %w", err)
	}
	if res.DeletedCount() == 0 {
		return stay.ErrPairNotFound
	}
	return nil
}

// ==================== Rate Plan Store ====================

func (s *Store) CreateRatePlan(ctx context.Context, p *rateplan.RatePlan) error {
	m := toRatePlanModel(p)
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: create rate plan: %w", err)
	}
	return nil
}

func (s *Store) GetRatePlan(ctx context.Context, ratePlanID id.RatePlanID) (*rateplan.RatePlan, error) {
	var m ratePlanModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": ratePlanID.String()}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, stay.ErrRatePlanNotFound
		}
		return nil, fmt.Errorf("stay/mongo: get rate plan: %w", err)
	}
	return fromRatePlanModel(&m)
}

func (s *Store) GetRatePlanBySlug(ctx context.Context, hotelID id.HotelID, slug string) (*rateplan.RatePlan, error) {
	var m ratePlanModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"hotel_id": hotelID.String(), "slug": slug}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, stay.ErrRatePlanNotFound
		}
		return nil, fmt.Errorf("stay/mongo: get rate plan by slug: %w", err)
	}
	return fromRatePlanModel(&m)
}

func (s *Store) ListRatePlans(ctx context.Context, hotelID id.HotelID, opts rateplan.ListOpts) ([]*rateplan.RatePlan, error) {
	var models []ratePlanModel

	filter := bson.M{"hotel_id": hotelID.String()}
	if opts.Status != "" {
		filter["status"] = string(opts.Status)
	}

	q := s.mdb.NewFind(&models).
		Filter(filter).
		Sort(bson.D{{Key: "created_at", Value: 1}})

	if opts.Limit > 0 {
		q = q.Limit(int64(opts.Limit))
	}
	if opts.Offset > 0 {
		q = q.Skip(int64(opts.Offset))
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("stay/mongo: list rate plans: %w", err)
	}

	result := make([]*rateplan.RatePlan, len(models))
	for i := range models {
		p, err := fromRatePlanModel(&models[i])
		if err != nil {
			return nil, err
		}
		result[i] = p
	}
	return result, nil
}

func (s *Store) UpdateRatePlan(ctx context.Context, p *rateplan.RatePlan) error {
	m := toRatePlanModel(p)
	m.UpdatedAt = now()

	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.ID}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: update rate plan: %w", err)
	}
	if res.MatchedCount() == 0 {
		return stay.ErrRatePlanNotFound
	}
	return nil
}

func (s *Store) DeleteRatePlan(ctx context.Context, ratePlanID id.RatePlanID) error {
	res, err := s.mdb.NewDelete((*ratePlanModel)(nil)).
		Filter(bson.M{"_id": ratePlanID.String()}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: delete rate plan: %w", err)
	}
	if res.DeletedCount() == 0 {
		return stay.ErrRatePlanNotFound
	}
	return nil
}

// ==================== Restriction Store ====================

func (s *Store) CreateRestriction(ctx context.Context, r *restriction.Restriction) error {
	m := toRestrictionModel(r)
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: create restriction: %w", err)
	}
	return nil
}

func (s *Store) GetRestriction(ctx context.Context, restrictionID id.RestrictionID) (*restriction.Restriction, error) {
	var m restrictionModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": restrictionID.String()}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, stay.ErrRestrictionNotFound
		}
		return nil, fmt.Errorf("stay/mongo: get restriction: %w", err)
	}
	return fromRestrictionModel(&m)
}

func (s *Store) ListRestrictions(ctx context.Context, hotelID id.HotelID, from, to types.Date) ([]*restriction.Restriction, error) {
	var models []restrictionModel

	// Window overlap: a restriction applies when its window touches
	// the requested range.
	err := s.mdb.NewFind(&models).
		Filter(bson.M{
			"hotel_id":  hotelID.String(),
			"to_date":   bson.M{"$gte": dateToString(from)},
			"from_date": bson.M{"$lte": dateToString(to)},
		}).
		Sort(bson.D{{Key: "from_date", Value: 1}}).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("stay/mongo: list restrictions: %w", err)
	}

	result := make([]*restriction.Restriction, len(models))
	for i := range models {
		r, err := fromRestrictionModel(&models[i])
		if err != nil {
			return nil, err
		}
		result[i] = r
	}
	return result, nil
}

func (s *Store) UpdateRestriction(ctx context.Context, r *restriction.Restriction) error {
	m := toRestrictionModel(r)
	m.UpdatedAt = now()

	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.ID}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: update restriction: %w", err)
	}
	if res.MatchedCount() == 0 {
		return stay.ErrRestrictionNotFound
	}
	return nil
}

func (s *Store) DeleteRestriction(ctx context.Context, restrictionID id.RestrictionID) error {
	res, err := s.mdb.NewDelete((*restrictionModel)(nil)).
		Filter(bson.M{"_id": restrictionID.String()}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: delete restriction: %w", err)
	}
	if res.DeletedCount() == 0 {
		return stay.ErrRestrictionNotFound
	}
	return nil
}

// ==================== Availability Store ====================

func (s *Store) ListAvailability(ctx context.Context, hotelID id.HotelID, from, to types.Date) ([]*availability.Availability, error) {
	var models []availabilityModel

	err := s.mdb.NewFind(&models).
		Filter(bson.M{
			"hotel_id": hotelID.String(),
			"date": bson.M{
				"$gte": dateToString(from),
				"$lte": dateToString(to),
			},
		}).
		Sort(bson.D{{Key: "date", Value: 1}}).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("stay/mongo: list availability: %w", err)
	}

	result := make([]*availability.Availability, len(models))
	for i := range models {
		a, err := fromAvailabilityModel(&models[i])
		if err != nil {
			return nil, err
		}
		result[i] = a
	}
	return result, nil
}

func (s *Store) UpsertAvailability(ctx context.Context, rows []*availability.Availability) error {
	for _, row := range rows {
		m := toAvailabilityModel(row)
		_, err := s.mdb.NewUpdate(m).
			Filter(bson.M{"_id": m.RowKey}).
			SetUpdate(bson.M{"$set": bson.M{
				"_id":             m.RowKey,
				"hotel_id":        m.HotelID,
				"room_product_id": m.RoomProductID,
				"date":            m.Date,
				"count":           m.Count,
				"updated_at":      m.UpdatedAt,
			}}).
			Upsert().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("stay/mongo: upsert availability: %w", err)
		}
	}
	return nil
}

func (s *Store) ListPrices(ctx context.Context, hotelID id.HotelID, from, to types.Date) ([]*availability.DailyPrice, error) {
	var models []dailyPriceModel

	err := s.mdb.NewFind(&models).
		Filter(bson.M{
			"hotel_id": hotelID.String(),
			"date": bson.M{
				"$gte": dateToString(from),
				"$lte": dateToString(to),
			},
		}).
		Sort(bson.D{{Key: "date", Value: 1}}).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("stay/mongo: list prices: %w", err)
	}

	result := make([]*availability.DailyPrice, len(models))
	for i := range models {
		p, err := fromDailyPriceModel(&models[i])
		if err != nil {
			return nil, err
		}
		result[i] = p
	}
	return result, nil
}

func (s *Store) UpsertPrices(ctx context.Context, rows []*availability.DailyPrice) error {
	for _, row := range rows {
		m := toDailyPriceModel(row)
		_, err := s.mdb.NewUpdate(m).
			Filter(bson.M{"_id": m.RowKey}).
			SetUpdate(bson.M{"$set": bson.M{
				"_id":             m.RowKey,
				"hotel_id":        m.HotelID,
				"room_product_id": m.RoomProductID,
				"rate_plan_id":    m.RatePlanID,
				"date":            m.Date,
				"net_cents":       m.NetCents,
				"net_currency":    m.NetCurrency,
				"gross_cents":     m.GrossCents,
				"gross_currency":  m.GrossCurrency,
				"adjustments":     m.Adjustments,
				"updated_at":      m.UpdatedAt,
			}}).
			Upsert().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("stay/mongo: upsert prices: %w", err)
		}
	}
	return nil
}

// ==================== Amenity Store ====================

func (s *Store) CreateAmenity(ctx context.Context, a *amenity.Amenity) error {
	m := toAmenityModel(a)
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: create amenity: %w", err)
	}
	return nil
}

func (s *Store) GetAmenity(ctx context.Context, amenityID id.AmenityID) (*amenity.Amenity, error) {
	var m amenityModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": amenityID.String()}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, stay.ErrAmenityNotFound
		}
		return nil, fmt.Errorf("stay/mongo: get amenity: %w", err)
	}
	return fromAmenityModel(&m)
}

func (s *Store) ListAmenities(ctx context.Context, hotelID id.HotelID) ([]*amenity.Amenity, error) {
	var models []amenityModel

	err := s.mdb.NewFind(&models).
		Filter(bson.M{"hotel_id": hotelID.String()}).
		Sort(bson.D{{Key: "created_at", Value: 1}}).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("stay/mongo: list amenities: %w", err)
	}

	result := make([]*amenity.Amenity, len(models))
	for i := range models {
		a, err := fromAmenityModel(&models[i])
		if err != nil {
			return nil, err
		}
		result[i] = a
	}
	return result, nil
}

func (s *Store) UpdateAmenity(ctx context.Context, a *amenity.Amenity) error {
	m := toAmenityModel(a)
	m.UpdatedAt = now()

	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.ID}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: update amenity: %w", err)
	}
	if res.MatchedCount() == 0 {
		return stay.ErrAmenityNotFound
	}
	return nil
}

func (s *Store) DeleteAmenity(ctx context.Context, amenityID id.AmenityID) error {
	res, err := s.mdb.NewDelete((*amenityModel)(nil)).
		Filter(bson.M{"_id": amenityID.String()}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: delete amenity: %w", err)
	}
	if res.DeletedCount() == 0 {
		return stay.ErrAmenityNotFound
	}
	return nil
}

func (s *Store) CreateInclusion(ctx context.Context, in *amenity.Inclusion) error {
	m := toInclusionModel(in)
	_, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.RowKey}).
		SetUpdate(bson.M{"$set": bson.M{
			"_id":             m.RowKey,
			"hotel_id":        m.HotelID,
			"amenity_id":      m.AmenityID,
			"rate_plan_id":    m.RatePlanID,
			"room_product_id": m.RoomProductID,
			"kind":            m.Kind,
			"from_date":       m.FromDate,
			"to_date":         m.ToDate,
			"created_at":      m.CreatedAt,
			"updated_at":      m.UpdatedAt,
		}}).
		Upsert().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: create inclusion: %w", err)
	}
	return nil
}

func (s *Store) ListInclusions(ctx context.Context, hotelID id.HotelID) ([]*amenity.Inclusion, error) {
	var models []inclusionModel

	err := s.mdb.NewFind(&models).
		Filter(bson.M{"hotel_id": hotelID.String()}).
		Sort(bson.D{{Key: "created_at", Value: 1}}).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("stay/mongo: list inclusions: %w", err)
	}

	result := make([]*amenity.Inclusion, len(models))
	for i := range models {
		in, err := fromInclusionModel(&models[i])
		if err != nil {
			return nil, err
		}
		result[i] = in
	}
	return result, nil
}

func (s *Store) DeleteInclusion(ctx context.Context, amenityID id.AmenityID, ratePlanID id.RatePlanID, roomProductID id.RoomProductID) error {
	_, err := s.mdb.NewDelete((*inclusionModel)(nil)).
		Filter(bson.M{"_id": inclusionRowKey(amenityID, ratePlanID, roomProductID)}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: delete inclusion: %w", err)
	}
	return nil
}

// ==================== Hotel Cache Store ====================

func (s *Store) GetCachedHotel(ctx context.Context, hotelID id.HotelID) (*hotel.Hotel, error) {
	var m hotelCacheModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{
			"_id":        hotelID.String(),
			"expires_at": bson.M{"$gt": time.Now().UTC()},
		}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, stay.ErrCacheMiss
		}
		return nil, fmt.Errorf("stay/mongo: get cached hotel: %w", err)
	}
	return fromHotelCacheModel(&m)
}

func (s *Store) SetCachedHotel(ctx context.Context, h *hotel.Hotel, ttl time.Duration) error {
	expiresAt := time.Now().UTC().Add(ttl)
	m := toHotelCacheModel(h, expiresAt)

	_, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.HotelID}).
		SetUpdate(bson.M{"$set": bson.M{
			"_id":        m.HotelID,
			"payload":    m.Payload,
			"expires_at": m.ExpiresAt,
			"created_at": m.CreatedAt,
		}}).
		Upsert().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: set cached hotel: %w", err)
	}
	return nil
}

func (s *Store) InvalidateHotel(ctx context.Context, hotelID id.HotelID) error {
	_, err := s.mdb.NewDelete((*hotelCacheModel)(nil)).
		Filter(bson.M{"_id": hotelID.String()}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("stay/mongo: invalidate hotel: %w", err)
	}
	return nil
}

// ==================== Helpers ====================

// now returns the current UTC time.
func now() time.Time {
	return time.Now().UTC()
}

// isNoDocuments checks if an error wraps mongo.ErrNoDocuments.
func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// migrationIndexes returns the index definitions for all stay collections.
func migrationIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		colHotels: {
			{
				Keys:    bson.D{{Key: "slug", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		colRoomProducts: {
			{
				Keys:    bson.D{{Key: "hotel_id", Value: 1}, {Key: "slug", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "hotel_id", Value: 1}, {Key: "created_at", Value: 1}}},
		},
		colRatePlans: {
			{
				Keys:    bson.D{{Key: "hotel_id", Value: 1}, {Key: "slug", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "hotel_id", Value: 1}, {Key: "status", Value: 1}}},
		},
		colPairs: {
			{
				Keys:    bson.D{{Key: "room_product_id", Value: 1}, {Key: "rate_plan_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "hotel_id", Value: 1}}},
		},
		colRestrictions: {
			{Keys: bson.D{{Key: "hotel_id", Value: 1}, {Key: "from_date", Value: 1}, {Key: "to_date", Value: 1}}},
		},
		colAvailability: {
			{Keys: bson.D{{Key: "hotel_id", Value: 1}, {Key: "date", Value: 1}}},
		},
		colPrices: {
			{Keys: bson.D{{Key: "hotel_id", Value: 1}, {Key: "date", Value: 1}}},
		},
		colAmenities: {
			{Keys: bson.D{{Key: "hotel_id", Value: 1}}},
		},
		colInclusions: {
			{Keys: bson.D{{Key: "hotel_id", Value: 1}}},
		},
		colHotelCache: {
			{Keys: bson.D{{Key: "expires_at", Value: 1}}},
		},
	}
}
