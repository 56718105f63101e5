// Package sqlite implements the stay store on SQLite via the
// Grove ORM.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/xraph/grove"
	"github.com/xraph/grove/drivers/sqlitedriver"
	"github.com/xraph/grove/migrate"

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

// compile-time interface check
var _ staystore.Store = (*Store)(nil)

// Store implements store.Store using SQLite via Grove ORM.
type Store struct {
	db *grove.DB
	sdb *sqlitedriver.SqliteDB
}

// New creates a new SQLite store backed by Grove ORM.
func New(db *grove.DB) *Store {
	return &Store{
		db: db,
		sdb: sqlitedriver.Unwrap(db),
	}
}

// DB returns the underlying grove database for direct access.
func (s *Store) DB() *grove.DB { return s.db }

// Migrate creates the required tables and indexes using the grove orchestrator.
func (s *Store) Migrate(ctx context.Context) error {
	executor, err := migrate.NewExecutorFor(s.sdb)
	if err != nil {
		return fmt.Errorf("stay/sqlite: create migration executor: %w", err)
	}
	orch := migrate.NewOrchestrator(executor, Migrations)
	if _, err := orch.Migrate(ctx); err != nil {
		return fmt.Errorf("stay/sqlite: migration failed: %w", err)
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
	_, err := s.sdb.NewInsert(m).Exec(ctx)
	return err
}

func (s *Store) GetHotel(ctx context.Context, hotelID id.HotelID) (*hotel.Hotel, error) {
	m := new(hotelModel)
	err := s.sdb.NewSelect(m).
		Where("id = ?", hotelID.String()).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, stay.ErrHotelNotFound
		}
		return nil, err
	}
	return fromHotelModel(m)
}

func (s *Store) GetHotelBySlug(ctx context.Context, slug string) (*hotel.Hotel, error) {
	m := new(hotelModel)
	err := s.sdb.NewSelect(m).
		Where("slug = ?", slug).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, stay.ErrHotelNotFound
		}
		return nil, err
	}
	return fromHotelModel(m)
}

func (s *Store) UpdateHotel(ctx context.Context, h *hotel.Hotel) error {
	m := toHotelModel(h)
	m.UpdatedAt = now()
	res, err := s.sdb.NewUpdate(m).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return stay.ErrHotelNotFound
	}
	return nil
}

func (s *Store) DeleteHotel(ctx context.Context, hotelID id.HotelID) error {
	res, err := s.sdb.NewDelete((*hotelModel)(nil)).
		Where("id = ?", hotelID.String()).
		Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return stay.ErrHotelNotFound
	}
	return nil
}

// ==================== Room Product Store ====================

func (s *Store) CreateRoomProduct(ctx context.Context, rp *roomproduct.RoomProduct) error {
	m := toRoomProductModel(rp)
	_, err := s.sdb.NewInsert(m).Exec(ctx)
	return err
}

func (s *Store) GetRoomProduct(ctx context.Context, roomProductID id.RoomProductID) (*roomproduct.RoomProduct, error) {
	m := new(roomProductModel)
	err := s.sdb.NewSelect(m).
		Where("id = ?", roomProductID.String()).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, stay.ErrRoomProductNotFound
		}
		return nil, err
	}
	return fromRoomProductModel(m)
}

func (s *Store) GetRoomProductBySlug(ctx context.Context, hotelID id.HotelID, slug string) (*roomproduct.RoomProduct, error) {
	m := new(roomProductModel)
	err := s.sdb.NewSelect(m).
		Where("hotel_id = ?", hotelID.String()).
		Where("slug = ?", slug).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, stay.ErrRoomProductNotFound
		}
		return nil, err
	}
	return fromRoomProductModel(m)
}

func (s *Store) ListRoomProducts(ctx context.Context, hotelID id.HotelID) ([]*roomproduct.RoomProduct, error) {
	var models []roomProductModel
	err := s.sdb.NewSelect(&models).
		Where("hotel_id = ?", hotelID.String()).
		OrderExpr("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
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
	res, err := s.sdb.NewUpdate(m).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return stay.ErrRoomProductNotFound
	}
	return nil
}

func (s *Store) DeleteRoomProduct(ctx context.Context, roomProductID id.RoomProductID) error {
	res, err := s.sdb.NewDelete((*roomProductModel)(nil)).
		Where("id = ?", roomProductID.String()).
		Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return stay.ErrRoomProductNotFound
	}
	return nil
}

// ==================== Pair Store ====================

func (s *Store) CreatePair(ctx context.Context, p *roomproduct.Pair) error {
	m := toPairModel(p)
	_, err := s.sdb.NewInsert(m).Exec(ctx)
	return err
}

func (s *Store) GetPair(ctx context.Context, pairID id.PairID) (*roomproduct.Pair, error) {
	m := new(pairModel)
	err := s.sdb.NewSelect(m).
		Where("id = ?", pairID.String()).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, stay.ErrPairNotFound
		}
		return nil, err
	}
	return fromPairModel(m)
}

func (s *Store) ListPairs(ctx context.Context, hotelID id.HotelID) ([]*roomproduct.Pair, error) {
	var models []pairModel
	err := s.sdb.NewSelect(&models).
		Where("hotel_id = ?", hotelID.String()).
		OrderExpr("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
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
	res, err := s.sdb.NewUpdate(m).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return stay.ErrPairNotFound
	}
	return nil
}

func (s *Store) DeletePair(ctx context.Context, pairID id.PairID) error {
	res, err := s.sdb.NewDelete((*pairModel)(nil)).
		Where("id = ?", pairID.String()).
		Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return stay.ErrPairNotFound
	}
	return nil
}

// ==================== Rate Plan Store ====================

func (s *Store) CreateRatePlan(ctx context.Context, p *rateplan.RatePlan) error {
	m := toRatePlanModel(p)
	_, err := s.sdb.NewInsert(m).Exec(ctx)
	return err
}

func (s *Store) GetRatePlan(ctx context.Context, ratePlanID id.RatePlanID) (*rateplan.RatePlan, error) {
	m := new(ratePlanModel)
	err := s.sdb.NewSelect(m).
		Where("id = ?", ratePlanID.String()).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, stay.ErrRatePlanNotFound
		}
		return nil, err
	}
	return fromRatePlanModel(m)
}

func (s *Store) GetRatePlanBySlug(ctx context.Context, hotelID id.HotelID, slug string) (*rateplan.RatePlan, error) {
	m := new(ratePlanModel)
	err := s.sdb.NewSelect(m).
		Where("hotel_id = ?", hotelID.String()).
		Where("slug = ?", slug).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, stay.ErrRatePlanNotFound
		}
		return nil, err
	}
	return fromRatePlanModel(m)
}

func (s *Store) ListRatePlans(ctx context.Context, hotelID id.HotelID, opts rateplan.ListOpts) ([]*rateplan.RatePlan, error) {
	var models []ratePlanModel
	q := s.sdb.NewSelect(&models).Where("hotel_id = ?", hotelID.String())

	if opts.Status != "" {
		q = q.Where("status = ?", string(opts.Status))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}
	q = q.OrderExpr("created_at ASC")

	if err := q.Scan(ctx); err != nil {
		return nil, err
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
	res, err := s.sdb.NewUpdate(m).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return stay.ErrRatePlanNotFound
	}
	return nil
}

func (s *Store) DeleteRatePlan(ctx context.Context, ratePlanID id.RatePlanID) error {
	res, err := s.sdb.NewDelete((*ratePlanModel)(nil)).
		Where("id = ?", ratePlanID.String()).
		Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return stay.ErrRatePlanNotFound
	}
	return nil
}

// ==================== Restriction Store ====================

func (s *Store) CreateRestriction(ctx context.Context, r *restriction.Restriction) error {
	m := toRestrictionModel(r)
	_, err := s.sdb.NewInsert(m).Exec(ctx)
	return err
}

func (s *Store) GetRestriction(ctx context.Context, restrictionID id.RestrictionID) (*restriction.Restriction, error) {
	m := new(restrictionModel)
	err := s.sdb.NewSelect(m).
		Where("id = ?", restrictionID.String()).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, stay.ErrRestrictionNotFound
		}
		return nil, err
	}
	return fromRestrictionModel(m)
}

func (s *Store) ListRestrictions(ctx context.Context, hotelID id.HotelID, from, to types.Date) ([]*restriction.Restriction, error) {
	var models []restrictionModel
	err := s.sdb.NewSelect(&models).
		Where("hotel_id = ?", hotelID.String()).
		Where("to_date >= ?", dateToString(from)).
		Where("from_date <= ?", dateToString(to)).
		OrderExpr("from_date ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
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
	res, err := s.sdb.NewUpdate(m).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return stay.ErrRestrictionNotFound
	}
	return nil
}

func (s *Store) DeleteRestriction(ctx context.Context, restrictionID id.RestrictionID) error {
	res, err := s.sdb.NewDelete((*restrictionModel)(nil)).
		Where("id = ?", restrictionID.String()).
		Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return stay.ErrRestrictionNotFound
	}
	return nil
}

// ==================== Availability Store ====================

func (s *Store) ListAvailability(ctx context.Context, hotelID id.HotelID, from, to types.Date) ([]*availability.Availability, error) {
	var models []availabilityModel
	err := s.sdb.NewSelect(&models).
		Where("hotel_id = ?", hotelID.String()).
		Where("date >= ?", dateToString(from)).
		Where("date <= ?", dateToString(to)).
		OrderExpr("date ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
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
	if len(rows) == 0 {
		return nil
	}
	models := make([]availabilityModel, len(rows))
	for i, r := range rows {
		models[i] = *toAvailabilityModel(r)
	}
	_, err := s.sdb.NewInsert(&models).
		OnConflict("(row_key) DO UPDATE").
		Set("count = EXCLUDED.count").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (s *Store) ListPrices(ctx context.Context, hotelID id.HotelID, from, to types.Date) ([]*availability.DailyPrice, error) {
	var models []dailyPriceModel
	err := s.sdb.NewSelect(&models).
		Where("hotel_id = ?", hotelID.String()).
		Where("date >= ?", dateToString(from)).
		Where("date <= ?", dateToString(to)).
		OrderExpr("date ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
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
	if len(rows) == 0 {
		return nil
	}
	models := make([]dailyPriceModel, len(rows))
	for i, r := range rows {
		models[i] = *toDailyPriceModel(r)
	}
	_, err := s.sdb.NewInsert(&models).
		OnConflict("(row_key) DO UPDATE").
		Set("net_cents = EXCLUDED.net_cents").
		Set("net_currency = EXCLUDED.net_currency").
		Set("gross_cents = EXCLUDED.gross_cents").
		Set("gross_currency = EXCLUDED.gross_currency").
		Set("adjustments = EXCLUDED.adjustments").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

// ==================== Amenity Store ====================

func (s *Store) CreateAmenity(ctx context.Context, a *amenity.Amenity) error {
	m := toAmenityModel(a)
	_, err := s.sdb.NewInsert(m).Exec(ctx)
	return err
}

func (s *Store) GetAmenity(ctx context.Context, amenityID id.AmenityID) (*amenity.Amenity, error) {
	m := new(amenityModel)
	err := s.sdb.NewSelect(m).
		Where("id = ?", amenityID.String()).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, stay.ErrAmenityNotFound
		}
		return nil, err
	}
	return fromAmenityModel(m)
}

func (s *Store) ListAmenities(ctx context.Context, hotelID id.HotelID) ([]*amenity.Amenity, error) {
	var models []amenityModel
	err := s.sdb.NewSelect(&models).
		Where("hotel_id = ?", hotelID.String()).
		OrderExpr("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
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
	res, err := s.sdb.NewUpdate(m).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return stay.ErrAmenityNotFound
	}
	return nil
}

func (s *Store) DeleteAmenity(ctx context.Context, amenityID id.AmenityID) error {
	res, err := s.sdb.NewDelete((*amenityModel)(nil)).
		Where("id = ?", amenityID.String()).
		Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return stay.ErrAmenityNotFound
	}
	return nil
}

func (s *Store) CreateInclusion(ctx context.Context, in *amenity.Inclusion) error {
	m := toInclusionModel(in)
	_, err := s.sdb.NewInsert(m).
		OnConflict("(row_key) DO UPDATE").
		Set("kind = EXCLUDED.kind").
		Set("from_date = EXCLUDED.from_date").
		Set("to_date = EXCLUDED.to_date").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (s *Store) ListInclusions(ctx context.Context, hotelID id.HotelID) ([]*amenity.Inclusion, error) {
	var models []inclusionModel
	err := s.sdb.NewSelect(&models).
		Where("hotel_id = ?", hotelID.String()).
		OrderExpr("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
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
	_, err := s.sdb.NewDelete((*inclusionModel)(nil)).
		Where("row_key = ?", inclusionRowKey(amenityID, ratePlanID, roomProductID)).
		Exec(ctx)
	return err
}

// ==================== Hotel Cache Store ====================

func (s *Store) GetCachedHotel(ctx context.Context, hotelID id.HotelID) (*hotel.Hotel, error) {
	m := new(hotelCacheModel)
	err := s.sdb.NewSelect(m).
		Where("hotel_id = ?", hotelID.String()).
		Where("expires_at > ?", time.Now().UTC()).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, stay.ErrCacheMiss
		}
		return nil, err
	}
	return fromHotelCacheModel(m)
}

func (s *Store) SetCachedHotel(ctx context.Context, h *hotel.Hotel, ttl time.Duration) error {
	m := toHotelCacheModel(h, time.Now().UTC().Add(ttl))
	_, err := s.sdb.NewInsert(m).
		OnConflict("(hotel_id) DO UPDATE").
		Set("payload = EXCLUDED.payload").
		Set("expires_at = EXCLUDED.expires_at").
		Set("created_at = EXCLUDED.created_at").
		Exec(ctx)
	return err
}

func (s *Store) InvalidateHotel(ctx context.Context, hotelID id.HotelID) error {
	_, err := s.sdb.NewDelete((*hotelCacheModel)(nil)).
		Where("hotel_id = ?", hotelID.String()).
		Exec(ctx)
	return err
}

// ==================== Helpers ====================

// now returns the current UTC time.
func now() time.Time {
	return time.Now().UTC()
}

// isNoRows checks for the standard sql.ErrNoRows sentinel.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
