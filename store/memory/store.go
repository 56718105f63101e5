// Package memory implements the stay store on in-memory maps. It is
// the reference backend used by tests and examples.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/xraph/stay"
	"github.com/xraph/stay/amenity"
	"github.com/xraph/stay/availability"
	"github.com/xraph/stay/hotel"
	"github.com/xraph/stay/id"
	"github.com/xraph/stay/rateplan"
	"github.com/xraph/stay/restriction"
	"github.com/xraph/stay/roomproduct"
	"github.com/xraph/stay/types"
)

type availKey struct {
	room id.RoomProductID
	date types.Date
}

type priceKey struct {
	room id.RoomProductID
	plan id.RatePlanID
	date types.Date
}

type Store struct {
	mu sync.RWMutex

	hotels       map[string]*hotel.Hotel
	roomProducts map[string]*roomproduct.RoomProduct
	pairs        map[string]*roomproduct.Pair
	ratePlans    map[string]*rateplan.RatePlan
	restrictions map[string]*restriction.Restriction
	amenities    map[string]*amenity.Amenity
	inclusions   []*amenity.Inclusion

	availability map[availKey]*availability.Availability
	prices       map[priceKey]*availability.DailyPrice

	// Hotel cache
	cachedHotels map[string]*hotel.Hotel
	cacheExpiry  map[string]time.Time
}

func New() *Store {
	return &Store{
		hotels:       make(map[string]*hotel.Hotel),
		roomProducts: make(map[string]*roomproduct.RoomProduct),
		pairs:        make(map[string]*roomproduct.Pair),
		ratePlans:    make(map[string]*rateplan.RatePlan),
		restrictions: make(map[string]*restriction.Restriction),
		amenities:    make(map[string]*amenity.Amenity),
		availability: make(map[availKey]*availability.Availability),
		prices:       make(map[priceKey]*availability.DailyPrice),
		cachedHotels: make(map[string]*hotel.Hotel),
		cacheExpiry:  make(map[string]time.Time),
	}
}

// Hotel store implementation

func (s *Store) CreateHotel(_ context.Context, h *hotel.Hotel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.hotels[h.ID.String()]; exists {
		return stay.ErrAlreadyExists
	}
	s.hotels[h.ID.String()] = h
	return nil
}

func (s *Store) GetHotel(_ context.Context, hotelID id.HotelID) (*hotel.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if h, ok := s.hotels[hotelID.String()]; ok {
		return h, nil
	}
	return nil, stay.ErrHotelNotFound
}

func (s *Store) GetHotelBySlug(_ context.Context, slug string) (*hotel.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, h := range s.hotels {
		if h.Slug == slug {
			return h, nil
		}
	}
	return nil, stay.ErrHotelNotFound
}

func (s *Store) UpdateHotel(_ context.Context, h *hotel.Hotel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.hotels[h.ID.String()]; !exists {
		return stay.ErrHotelNotFound
	}
	s.hotels[h.ID.String()] = h
	return nil
}

func (s *Store) DeleteHotel(_ context.Context, hotelID id.HotelID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.hotels, hotelID.String())
	delete(s.cachedHotels, hotelID.String())
	delete(s.cacheExpiry, hotelID.String())
	return nil
}

// Room product store implementation

func (s *Store) CreateRoomProduct(_ context.Context, rp *roomproduct.RoomProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.roomProducts[rp.ID.String()]; exists {
		return stay.ErrAlreadyExists
	}
	s.roomProducts[rp.ID.String()] = rp
	return nil
}

func (s *Store) GetRoomProduct(_ context.Context, roomProductID id.RoomProductID) (*roomproduct.RoomProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if rp, ok := s.roomProducts[roomProductID.String()]; ok {
		return rp, nil
	}
	return nil, stay.ErrRoomProductNotFound
}

func (s *Store) GetRoomProductBySlug(_ context.Context, hotelID id.HotelID, slug string) (*roomproduct.RoomProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rp := range s.roomProducts {
		if rp.HotelID == hotelID && rp.Slug == slug {
			return rp, nil
		}
	}
	return nil, stay.ErrRoomProductNotFound
}

func (s *Store) ListRoomProducts(_ context.Context, hotelID id.HotelID) ([]*roomproduct.RoomProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*roomproduct.RoomProduct, 0)
	for _, rp := range s.roomProducts {
		if rp.HotelID == hotelID {
			result = append(result, rp)
		}
	}
	return result, nil
}

func (s *Store) UpdateRoomProduct(_ context.Context, rp *roomproduct.RoomProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.roomProducts[rp.ID.String()]; !exists {
		return stay.ErrRoomProductNotFound
	}
	s.roomProducts[rp.ID.String()] = rp
	return nil
}

func (s *Store) DeleteRoomProduct(_ context.Context, roomProductID id.RoomProductID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.roomProducts, roomProductID.String())
	return nil
}

// Pair store implementation

func (s *Store) CreatePair(_ context.Context, p *roomproduct.Pair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.pairs[p.ID.String()]; exists {
		return stay.ErrAlreadyExists
	}
	s.pairs[p.ID.String()] = p
	return nil
}

func (s *Store) GetPair(_ context.Context, pairID id.PairID) (*roomproduct.Pair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.pairs[pairID.String()]; ok {
		return p, nil
	}
	return nil, stay.ErrPairNotFound
}

func (s *Store) ListPairs(_ context.Context, hotelID id.HotelID) ([]*roomproduct.Pair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*roomproduct.Pair, 0)
	for _, p := range s.pairs {
		if p.HotelID == hotelID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (s *Store) UpdatePair(_ context.Context, p *roomproduct.Pair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.pairs[p.ID.String()]; !exists {
		return stay.ErrPairNotFound
	}
	s.pairs[p.ID.String()] = p
	return nil
}

func (s *Store) DeletePair(_ context.Context, pairID id.PairID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pairs, pairID.String())
	return nil
}

// Rate plan store implementation

func (s *Store) CreateRatePlan(_ context.Context, p *rateplan.RatePlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.ratePlans[p.ID.String()]; exists {
		return stay.ErrAlreadyExists
	}
	s.ratePlans[p.ID.String()] = p
	return nil
}

func (s *Store) GetRatePlan(_ context.Context, ratePlanID id.RatePlanID) (*rateplan.RatePlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.ratePlans[ratePlanID.String()]; ok {
		return p, nil
	}
	return nil, stay.ErrRatePlanNotFound
}

func (s *Store) GetRatePlanBySlug(_ context.Context, hotelID id.HotelID, slug string) (*rateplan.RatePlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.ratePlans {
		if p.HotelID == hotelID && p.Slug == slug {
			return p, nil
		}
	}
	return nil, stay.ErrRatePlanNotFound
}

func (s *Store) ListRatePlans(_ context.Context, hotelID id.HotelID, opts rateplan.ListOpts) ([]*rateplan.RatePlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*rateplan.RatePlan, 0)
	for _, p := range s.ratePlans {
		if p.HotelID != hotelID {
			continue
		}
		if opts.Status != "" && p.Status != opts.Status {
			continue
		}
		result = append(result, p)
	}

	start := opts.Offset
	if start > len(result) {
		start = len(result)
	}
	end := start + opts.Limit
	if opts.Limit == 0 || end > len(result) {
		end = len(result)
	}
	return result[start:end], nil
}

func (s *Store) UpdateRatePlan(_ context.Context, p *rateplan.RatePlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.ratePlans[p.ID.String()]; !exists {
		return stay.ErrRatePlanNotFound
	}
	s.ratePlans[p.ID.String()] = p
	return nil
}

func (s *Store) DeleteRatePlan(_ context.Context, ratePlanID id.RatePlanID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.ratePlans, ratePlanID.String())
	return nil
}

// Restriction store implementation

func (s *Store) CreateRestriction(_ context.Context, r *restriction.Restriction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.restrictions[r.ID.String()]; exists {
		return stay.ErrAlreadyExists
	}
	s.restrictions[r.ID.String()] = r
	return nil
}

func (s *Store) GetRestriction(_ context.Context, restrictionID id.RestrictionID) (*restriction.Restriction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.restrictions[restrictionID.String()]; ok {
		return r, nil
	}
	return nil, stay.ErrRestrictionNotFound
}

func (s *Store) ListRestrictions(_ context.Context, hotelID id.HotelID, from, to types.Date) ([]*restriction.Restriction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*restriction.Restriction, 0)
	for _, r := range s.restrictions {
		if r.HotelID != hotelID {
			continue
		}
		// Window overlap with [from, to].
		if r.ToDate.Before(from) || r.FromDate.After(to) {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (s *Store) UpdateRestriction(_ context.Context, r *restriction.Restriction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.restrictions[r.ID.String()]; !exists {
		return stay.ErrRestrictionNotFound
	}
	s.restrictions[r.ID.String()] = r
	return nil
}

func (s *Store) DeleteRestriction(_ context.Context, restrictionID id.RestrictionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.restrictions, restrictionID.String())
	return nil
}

// Availability and pricing store implementation

func (s *Store) ListAvailability(_ context.Context, hotelID id.HotelID, from, to types.Date) ([]*availability.Availability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*availability.Availability, 0)
	for _, row := range s.availability {
		if row.HotelID == hotelID && row.Date.Between(from, to) {
			result = append(result, row)
		}
	}
	return result, nil
}

func (s *Store) UpsertAvailability(_ context.Context, rows []*availability.Availability) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range rows {
		s.availability[availKey{room: row.RoomProductID, date: row.Date}] = row
	}
	return nil
}

func (s *Store) ListPrices(_ context.Context, hotelID id.HotelID, from, to types.Date) ([]*availability.DailyPrice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*availability.DailyPrice, 0)
	for _, row := range s.prices {
		if row.HotelID == hotelID && row.Date.Between(from, to) {
			result = append(result, row)
		}
	}
	return result, nil
}

func (s *Store) UpsertPrices(_ context.Context, rows []*availability.DailyPrice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range rows {
		s.prices[priceKey{room: row.RoomProductID, plan: row.RatePlanID, date: row.Date}] = row
	}
	return nil
}

// Amenity store implementation

func (s *Store) CreateAmenity(_ context.Context, a *amenity.Amenity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.amenities[a.ID.String()]; exists {
		return stay.ErrAlreadyExists
	}
	s.amenities[a.ID.String()] = a
	return nil
}

func (s *Store) GetAmenity(_ context.Context, amenityID id.AmenityID) (*amenity.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if a, ok := s.amenities[amenityID.String()]; ok {
		return a, nil
	}
	return nil, stay.ErrAmenityNotFound
}

func (s *Store) ListAmenities(_ context.Context, hotelID id.HotelID) ([]*amenity.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*amenity.Amenity, 0)
	for _, a := range s.amenities {
		if a.HotelID == hotelID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (s *Store) UpdateAmenity(_ context.Context, a *amenity.Amenity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.amenities[a.ID.String()]; !exists {
		return stay.ErrAmenityNotFound
	}
	s.amenities[a.ID.String()] = a
	return nil
}

func (s *Store) DeleteAmenity(_ context.Context, amenityID id.AmenityID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.amenities, amenityID.String())
	return nil
}

func (s *Store) CreateInclusion(_ context.Context, in *amenity.Inclusion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inclusions = append(s.inclusions, in)
	return nil
}

func (s *Store) ListInclusions(_ context.Context, hotelID id.HotelID) ([]*amenity.Inclusion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*amenity.Inclusion, 0)
	for _, in := range s.inclusions {
		if in.HotelID == hotelID {
			result = append(result, in)
		}
	}
	return result, nil
}

func (s *Store) DeleteInclusion(_ context.Context, amenityID id.AmenityID, ratePlanID id.RatePlanID, roomProductID id.RoomProductID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.inclusions[:0]
	for _, in := range s.inclusions {
		if in.AmenityID == amenityID && in.RatePlanID == ratePlanID && in.RoomProductID == roomProductID {
			continue
		}
		kept = append(kept, in)
	}
	s.inclusions = kept
	return nil
}

// Hotel cache implementation

func (s *Store) GetCachedHotel(_ context.Context, hotelID id.HotelID) (*hotel.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := hotelID.String()
	h, ok := s.cachedHotels[key]
	if !ok {
		return nil, stay.ErrCacheMiss
	}
	if expiry, ok := s.cacheExpiry[key]; ok && time.Now().After(expiry) {
		return nil, stay.ErrCacheMiss
	}
	return h, nil
}

func (s *Store) SetCachedHotel(_ context.Context, h *hotel.Hotel, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := h.ID.String()
	s.cachedHotels[key] = h
	s.cacheExpiry[key] = time.Now().Add(ttl)
	return nil
}

func (s *Store) InvalidateHotel(_ context.Context, hotelID id.HotelID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.cachedHotels, hotelID.String())
	delete(s.cacheExpiry, hotelID.String())
	return nil
}

// Core methods

func (s *Store) Migrate(_ context.Context) error { return nil }

func (s *Store) Ping(_ context.Context) error { return nil }

func (s *Store) Close() error { return nil }
