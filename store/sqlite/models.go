package sqlite

import (
	"encoding/json"
	"time"

	"github.com/xraph/grove"

	"github.com/xraph/stay/amenity"
	"github.com/xraph/stay/availability"
	"github.com/xraph/stay/hotel"
	"github.com/xraph/stay/id"
	"github.com/xraph/stay/rateplan"
	"github.com/xraph/stay/restriction"
	"github.com/xraph/stay/roomproduct"
	"github.com/xraph/stay/types"
)

// Dates are stored as ISO "2006-01-02" TEXT. The format sorts
// lexicographically in calendar order, so range predicates work on the
// raw column across all SQL backends.

func dateToString(d types.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func dateFromString(s string) types.Date {
	if s == "" {
		return types.Date{}
	}
	d, err := types.ParseDate(s)
	if err != nil {
		return types.Date{}
	}
	return d
}

// ==================== Hotel models ====================

type hotelModel struct {
	grove.BaseModel `grove:"table:stay_hotels"`

	ID                string            `grove:"id,pk"`
	Name              string            `grove:"name"`
	Slug              string            `grove:"slug"`
	Currency          string            `grove:"currency"`
	Rounding          string            `grove:"rounding"`
	RoundingDecimals  int               `grove:"rounding_decimals"`
	DefaultStayNights int               `grove:"default_stay_nights"`
	DefaultAdults     int               `grove:"default_adults"`
	AgeCategories     json.RawMessage   `grove:"age_categories,type:json"`
	CityTaxes         json.RawMessage   `grove:"city_taxes,type:json"`
	Metadata          map[string]string `grove:"metadata,type:json"`
	CreatedAt         time.Time         `grove:"created_at"`
	UpdatedAt         time.Time         `grove:"updated_at"`
}

func toHotelModel(h *hotel.Hotel) *hotelModel {
	ageCategories, _ := json.Marshal(h.AgeCategories) //nolint:errcheck // best-effort
	cityTaxes, _ := json.Marshal(h.CityTaxes)         //nolint:errcheck // best-effort

	return &hotelModel{
		ID:                h.ID.String(),
		Name:              h.Name,
		Slug:              h.Slug,
		Currency:          h.Currency,
		Rounding:          string(h.Rounding),
		RoundingDecimals:  h.RoundingDecimals,
		DefaultStayNights: h.DefaultStayNights,
		DefaultAdults:     h.DefaultAdults,
		AgeCategories:     ageCategories,
		CityTaxes:         cityTaxes,
		Metadata:          h.Metadata,
		CreatedAt:         h.CreatedAt,
		UpdatedAt:         h.UpdatedAt,
	}
}

func fromHotelModel(m *hotelModel) (*hotel.Hotel, error) {
	hotelID, err := id.ParseHotelID(m.ID)
	if err != nil {
		return nil, err
	}

	var ageCategories []hotel.AgeCategory
	if len(m.AgeCategories) > 0 {
		_ = json.Unmarshal(m.AgeCategories, &ageCategories) //nolint:errcheck // best-effort
	}

	var cityTaxes []hotel.CityTaxRule
	if len(m.CityTaxes) > 0 && string(m.CityTaxes) != "null" {
		_ = json.Unmarshal(m.CityTaxes, &cityTaxes) //nolint:errcheck // best-effort
	}

	return &hotel.Hotel{
		Entity: types.Entity{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		ID:                hotelID,
		Name:              m.Name,
		Slug:              m.Slug,
		Currency:          m.Currency,
		Rounding:          types.RoundingMode(m.Rounding),
		RoundingDecimals:  m.RoundingDecimals,
		DefaultStayNights: m.DefaultStayNights,
		DefaultAdults:     m.DefaultAdults,
		AgeCategories:     ageCategories,
		CityTaxes:         cityTaxes,
		Metadata:          m.Metadata,
	}, nil
}

// ==================== Room product models ====================

type roomProductModel struct {
	grove.BaseModel `grove:"table:stay_room_products"`

	ID          string            `grove:"id,pk"`
	HotelID     string            `grove:"hotel_id"`
	Name        string            `grove:"name"`
	Slug        string            `grove:"slug"`
	Description string            `grove:"description"`
	Status      string            `grove:"status"`
	Capacity    json.RawMessage   `grove:"capacity,type:json"`
	TotalRooms  int               `grove:"total_rooms"`
	Metadata    map[string]string `grove:"metadata,type:json"`
	CreatedAt   time.Time         `grove:"created_at"`
	UpdatedAt   time.Time         `grove:"updated_at"`
}

func toRoomProductModel(rp *roomproduct.RoomProduct) *roomProductModel {
	capacity, _ := json.Marshal(rp.Capacity) //nolint:errcheck // best-effort

	return &roomProductModel{
		ID:          rp.ID.String(),
		HotelID:     rp.HotelID.String(),
		Name:        rp.Name,
		Slug:        rp.Slug,
		Description: rp.Description,
		Status:      string(rp.Status),
		Capacity:    capacity,
		TotalRooms:  rp.TotalRooms,
		Metadata:    rp.Metadata,
		CreatedAt:   rp.CreatedAt,
		UpdatedAt:   rp.UpdatedAt,
	}
}

func fromRoomProductModel(m *roomProductModel) (*roomproduct.RoomProduct, error) {
	roomProductID, err := id.ParseRoomProductID(m.ID)
	if err != nil {
		return nil, err
	}
	hotelID, err := id.ParseHotelID(m.HotelID)
	if err != nil {
		return nil, err
	}

	var capacity roomproduct.Capacity
	if len(m.Capacity) > 0 {
		_ = json.Unmarshal(m.Capacity, &capacity) //nolint:errcheck // best-effort
	}

	return &roomproduct.RoomProduct{
		Entity: types.Entity{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		ID:          roomProductID,
		HotelID:     hotelID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Status:      roomproduct.Status(m.Status),
		Capacity:    capacity,
		TotalRooms:  m.TotalRooms,
		Metadata:    m.Metadata,
	}, nil
}

// ==================== Pair models ====================

type pairModel struct {
	grove.BaseModel `grove:"table:stay_pairs"`

	ID            string          `grove:"id,pk"`
	HotelID       string          `grove:"hotel_id"`
	RoomProductID string          `grove:"room_product_id"`
	RatePlanID    string          `grove:"rate_plan_id"`
	Sellable      bool            `grove:"sellable"`
	Adjustments   json.RawMessage `grove:"adjustments,type:json"`
	CreatedAt     time.Time       `grove:"created_at"`
	UpdatedAt     time.Time       `grove:"updated_at"`
}

func toPairModel(p *roomproduct.Pair) *pairModel {
	adjustments, _ := json.Marshal(p.Adjustments) //nolint:errcheck // best-effort

	return &pairModel{
		ID:            p.ID.String(),
		HotelID:       p.HotelID.String(),
		RoomProductID: p.RoomProductID.String(),
		RatePlanID:    p.RatePlanID.String(),
		Sellable:      p.Sellable,
		Adjustments:   adjustments,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func fromPairModel(m *pairModel) (*roomproduct.Pair, error) {
	pairID, err := id.ParsePairID(m.ID)
	if err != nil {
		return nil, err
	}
	hotelID, err := id.ParseHotelID(m.HotelID)
	if err != nil {
		return nil, err
	}
	roomProductID, err := id.ParseRoomProductID(m.RoomProductID)
	if err != nil {
		return nil, err
	}
	ratePlanID, err := id.ParseRatePlanID(m.RatePlanID)
	if err != nil {
		return nil, err
	}

	var adjustments []roomproduct.PairAdjustment
	if len(m.Adjustments) > 0 {
		_ = json.Unmarshal(m.Adjustments, &adjustments) //nolint:errcheck // best-effort
	}

	return &roomproduct.Pair{
		Entity: types.Entity{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		ID:            pairID,
		HotelID:       hotelID,
		RoomProductID: roomProductID,
		RatePlanID:    ratePlanID,
		Sellable:      m.Sellable,
		Adjustments:   adjustments,
	}, nil
}

// ==================== Rate plan models ====================

type ratePlanModel struct {
	grove.BaseModel `grove:"table:stay_rate_plans"`

	ID          string            `grove:"id,pk"`
	HotelID     string            `grove:"hotel_id"`
	Name        string            `grove:"name"`
	Slug        string            `grove:"slug"`
	Description string            `grove:"description"`
	Status      string            `grove:"status"`
	Currency    string            `grove:"currency"`
	Defaults    json.RawMessage   `grove:"defaults,type:json"`
	Overrides   json.RawMessage   `grove:"overrides,type:json"`
	DerivedFrom json.RawMessage   `grove:"derived_from,type:json"`
	Metadata    map[string]string `grove:"metadata,type:json"`
	CreatedAt   time.Time         `grove:"created_at"`
	UpdatedAt   time.Time         `grove:"updated_at"`
}

func toRatePlanModel(p *rateplan.RatePlan) *ratePlanModel {
	defaults, _ := json.Marshal(p.Defaults)       //nolint:errcheck // best-effort
	overrides, _ := json.Marshal(p.Overrides)     //nolint:errcheck // best-effort
	derivedFrom, _ := json.Marshal(p.DerivedFrom) //nolint:errcheck // best-effort

	return &ratePlanModel{
		ID:          p.ID.String(),
		HotelID:     p.HotelID.String(),
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Status:      string(p.Status),
		Currency:    p.Currency,
		Defaults:    defaults,
		Overrides:   overrides,
		DerivedFrom: derivedFrom,
		Metadata:    p.Metadata,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func fromRatePlanModel(m *ratePlanModel) (*rateplan.RatePlan, error) {
	ratePlanID, err := id.ParseRatePlanID(m.ID)
	if err != nil {
		return nil, err
	}
	hotelID, err := id.ParseHotelID(m.HotelID)
	if err != nil {
		return nil, err
	}

	var defaults []rateplan.SellabilityDefault
	if len(m.Defaults) > 0 {
		_ = json.Unmarshal(m.Defaults, &defaults) //nolint:errcheck // best-effort
	}

	var overrides []rateplan.DailyOverride
	if len(m.Overrides) > 0 {
		_ = json.Unmarshal(m.Overrides, &overrides) //nolint:errcheck // best-effort
	}

	var derivedFrom *rateplan.Derivation
	if len(m.DerivedFrom) > 0 && string(m.DerivedFrom) != "null" {
		derivedFrom = new(rateplan.Derivation)
		_ = json.Unmarshal(m.DerivedFrom, derivedFrom) //nolint:errcheck // best-effort
	}

	return &rateplan.RatePlan{
		Entity: types.Entity{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		ID:          ratePlanID,
		HotelID:     hotelID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Status:      rateplan.Status(m.Status),
		Currency:    m.Currency,
		Defaults:    defaults,
		Overrides:   overrides,
		DerivedFrom: derivedFrom,
		Metadata:    m.Metadata,
	}, nil
}

// ==================== Restriction models ====================

type restrictionModel struct {
	grove.BaseModel `grove:"table:stay_restrictions"`

	ID                  string          `grove:"id,pk"`
	HotelID             string          `grove:"hotel_id"`
	Type                string          `grove:"type"`
	FromDate            string          `grove:"from_date"`
	ToDate              string          `grove:"to_date"`
	Weekdays            json.RawMessage `grove:"weekdays,type:json"`
	RoomProductIDs      json.RawMessage `grove:"room_product_ids,type:json"`
	RatePlanIDs         json.RawMessage `grove:"rate_plan_ids,type:json"`
	MinLength           *int            `grove:"min_length"`
	MaxLength           *int            `grove:"max_length"`
	MinAdvanceDays      *int            `grove:"min_advance_days"`
	MaxAdvanceDays      *int            `grove:"max_advance_days"`
	MinLOSThrough       *int            `grove:"min_los_through"`
	MaxReservationCount *int            `grove:"max_reservation_count"`
	CreatedAt           time.Time       `grove:"created_at"`
	UpdatedAt           time.Time       `grove:"updated_at"`
}

func toRestrictionModel(r *restriction.Restriction) *restrictionModel {
	weekdays, _ := json.Marshal(r.Weekdays)             //nolint:errcheck // best-effort
	roomProductIDs, _ := json.Marshal(r.RoomProductIDs) //nolint:errcheck // best-effort
	ratePlanIDs, _ := json.Marshal(r.RatePlanIDs)       //nolint:errcheck // best-effort

	return &restrictionModel{
		ID:                  r.ID.String(),
		HotelID:             r.HotelID.String(),
		Type:                string(r.Type),
		FromDate:            dateToString(r.FromDate),
		ToDate:              dateToString(r.ToDate),
		Weekdays:            weekdays,
		RoomProductIDs:      roomProductIDs,
		RatePlanIDs:         ratePlanIDs,
		MinLength:           r.MinLength,
		MaxLength:           r.MaxLength,
		MinAdvanceDays:      r.MinAdvanceDays,
		MaxAdvanceDays:      r.MaxAdvanceDays,
		MinLOSThrough:       r.MinLOSThrough,
		MaxReservationCount: r.MaxReservationCount,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func fromRestrictionModel(m *restrictionModel) (*restriction.Restriction, error) {
	restrictionID, err := id.ParseRestrictionID(m.ID)
	if err != nil {
		return nil, err
	}
	hotelID, err := id.ParseHotelID(m.HotelID)
	if err != nil {
		return nil, err
	}

	var weekdays []time.Weekday
	if len(m.Weekdays) > 0 {
		_ = json.Unmarshal(m.Weekdays, &weekdays) //nolint:errcheck // best-effort
	}

	var roomProductIDs []id.RoomProductID
	if len(m.RoomProductIDs) > 0 {
		_ = json.Unmarshal(m.RoomProductIDs, &roomProductIDs) //nolint:errcheck // best-effort
	}

	var ratePlanIDs []id.RatePlanID
	if len(m.RatePlanIDs) > 0 {
		_ = json.Unmarshal(m.RatePlanIDs, &ratePlanIDs) //nolint:errcheck // best-effort
	}

	return &restriction.Restriction{
		Entity: types.Entity{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		ID:                  restrictionID,
		HotelID:             hotelID,
		Type:                restriction.Type(m.Type),
		FromDate:            dateFromString(m.FromDate),
		ToDate:              dateFromString(m.ToDate),
		Weekdays:            weekdays,
		RoomProductIDs:      roomProductIDs,
		RatePlanIDs:         ratePlanIDs,
		MinLength:           m.MinLength,
		MaxLength:           m.MaxLength,
		MinAdvanceDays:      m.MinAdvanceDays,
		MaxAdvanceDays:      m.MaxAdvanceDays,
		MinLOSThrough:       m.MinLOSThrough,
		MaxReservationCount: m.MaxReservationCount,
	}, nil
}

// ==================== Availability models ====================

type availabilityModel struct {
	grove.BaseModel `grove:"table:stay_availability"`

	RowKey        string    `grove:"row_key,pk"`
	HotelID       string    `grove:"hotel_id"`
	RoomProductID string    `grove:"room_product_id"`
	Date          string    `grove:"date"`
	Count         int       `grove:"count"`
	UpdatedAt     time.Time `grove:"updated_at"`
}

func toAvailabilityModel(a *availability.Availability) *availabilityModel {
	date := dateToString(a.Date)
	return &availabilityModel{
		RowKey:        a.RoomProductID.String() + ":" + date,
		HotelID:       a.HotelID.String(),
		RoomProductID: a.RoomProductID.String(),
		Date:          date,
		Count:         a.Count,
		UpdatedAt:     time.Now().UTC(),
	}
}

func fromAvailabilityModel(m *availabilityModel) (*availability.Availability, error) {
	hotelID, err := id.ParseHotelID(m.HotelID)
	if err != nil {
		return nil, err
	}
	roomProductID, err := id.ParseRoomProductID(m.RoomProductID)
	if err != nil {
		return nil, err
	}

	return &availability.Availability{
		Entity:        types.Entity{UpdatedAt: m.UpdatedAt},
		HotelID:       hotelID,
		RoomProductID: roomProductID,
		Date:          dateFromString(m.Date),
		Count:         m.Count,
	}, nil
}

// ==================== Daily price models ====================

type dailyPriceModel struct {
	grove.BaseModel `grove:"table:stay_prices"`

	RowKey        string            `grove:"row_key,pk"`
	HotelID       string            `grove:"hotel_id"`
	RoomProductID string            `grove:"room_product_id"`
	RatePlanID    string            `grove:"rate_plan_id"`
	Date          string            `grove:"date"`
	NetCents      int64             `grove:"net_cents"`
	NetCurrency   string            `grove:"net_currency"`
	GrossCents    int64             `grove:"gross_cents"`
	GrossCurrency string            `grove:"gross_currency"`
	Adjustments   map[string]string `grove:"adjustments,type:json"`
	UpdatedAt     time.Time         `grove:"updated_at"`
}

func toDailyPriceModel(p *availability.DailyPrice) *dailyPriceModel {
	date := dateToString(p.Date)
	return &dailyPriceModel{
		RowKey:        p.RoomProductID.String() + ":" + p.RatePlanID.String() + ":" + date,
		HotelID:       p.HotelID.String(),
		RoomProductID: p.RoomProductID.String(),
		RatePlanID:    p.RatePlanID.String(),
		Date:          date,
		NetCents:      p.Net.Amount,
		NetCurrency:   p.Net.Currency,
		GrossCents:    p.Gross.Amount,
		GrossCurrency: p.Gross.Currency,
		Adjustments:   p.Adjustments,
		UpdatedAt:     time.Now().UTC(),
	}
}

func fromDailyPriceModel(m *dailyPriceModel) (*availability.DailyPrice, error) {
	hotelID, err := id.ParseHotelID(m.HotelID)
	if err != nil {
		return nil, err
	}
	roomProductID, err := id.ParseRoomProductID(m.RoomProductID)
	if err != nil {
		return nil, err
	}
	ratePlanID, err := id.ParseRatePlanID(m.RatePlanID)
	if err != nil {
		return nil, err
	}

	return &availability.DailyPrice{
		Entity:        types.Entity{UpdatedAt: m.UpdatedAt},
		HotelID:       hotelID,
		RoomProductID: roomProductID,
		RatePlanID:    ratePlanID,
		Date:          dateFromString(m.Date),
		Net:           types.Money{Amount: m.NetCents, Currency: m.NetCurrency},
		Gross:         types.Money{Amount: m.GrossCents, Currency: m.GrossCurrency},
		Adjustments:   m.Adjustments,
	}, nil
}

// ==================== Amenity models ====================

type amenityModel struct {
	grove.BaseModel `grove:"table:stay_amenities"`

	ID            string            `grove:"id,pk"`
	HotelID       string            `grove:"hotel_id"`
	Name          string            `grove:"name"`
	Slug          string            `grove:"slug"`
	Unit          string            `grove:"unit"`
	Tax           string            `grove:"tax"`
	TaxRateBP     int64             `grove:"tax_rate_bp"`
	PriceCents    int64             `grove:"price_cents"`
	PriceCurrency string            `grove:"price_currency"`
	Metadata      map[string]string `grove:"metadata,type:json"`
	CreatedAt     time.Time         `grove:"created_at"`
	UpdatedAt     time.Time         `grove:"updated_at"`
}

func toAmenityModel(a *amenity.Amenity) *amenityModel {
	return &amenityModel{
		ID:            a.ID.String(),
		HotelID:       a.HotelID.String(),
		Name:          a.Name,
		Slug:          a.Slug,
		Unit:          string(a.Unit),
		Tax:           string(a.Tax),
		TaxRateBP:     a.TaxRateBP,
		PriceCents:    a.Price.Amount,
		PriceCurrency: a.Price.Currency,
		Metadata:      a.Metadata,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func fromAmenityModel(m *amenityModel) (*amenity.Amenity, error) {
	amenityID, err := id.ParseAmenityID(m.ID)
	if err != nil {
		return nil, err
	}
	hotelID, err := id.ParseHotelID(m.HotelID)
	if err != nil {
		return nil, err
	}

	return &amenity.Amenity{
		Entity: types.Entity{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		ID:        amenityID,
		HotelID:   hotelID,
		Name:      m.Name,
		Slug:      m.Slug,
		Unit:      amenity.PricingUnit(m.Unit),
		Tax:       amenity.TaxSetting(m.Tax),
		TaxRateBP: m.TaxRateBP,
		Price:     types.Money{Amount: m.PriceCents, Currency: m.PriceCurrency},
		Metadata:  m.Metadata,
	}, nil
}

// ==================== Inclusion models ====================

type inclusionModel struct {
	grove.BaseModel `grove:"table:stay_inclusions"`

	RowKey        string    `grove:"row_key,pk"`
	HotelID       string    `grove:"hotel_id"`
	AmenityID     string    `grove:"amenity_id"`
	RatePlanID    string    `grove:"rate_plan_id"`
	RoomProductID string    `grove:"room_product_id"`
	Kind          string    `grove:"kind"`
	FromDate      string    `grove:"from_date"`
	ToDate        string    `grove:"to_date"`
	CreatedAt     time.Time `grove:"created_at"`
	UpdatedAt     time.Time `grove:"updated_at"`
}

func inclusionRowKey(amenityID id.AmenityID, ratePlanID id.RatePlanID, roomProductID id.RoomProductID) string {
	return amenityID.String() + ":" + ratePlanID.String() + ":" + roomProductID.String()
}

func toInclusionModel(in *amenity.Inclusion) *inclusionModel {
	return &inclusionModel{
		RowKey:        inclusionRowKey(in.AmenityID, in.RatePlanID, in.RoomProductID),
		HotelID:       in.HotelID.String(),
		AmenityID:     in.AmenityID.String(),
		RatePlanID:    in.RatePlanID.String(),
		RoomProductID: in.RoomProductID.String(),
		Kind:          string(in.Kind),
		FromDate:      dateToString(in.FromDate),
		ToDate:        dateToString(in.ToDate),
		CreatedAt:     in.CreatedAt,
		UpdatedAt:     in.UpdatedAt,
	}
}

func fromInclusionModel(m *inclusionModel) (*amenity.Inclusion, error) {
	amenityID, err := id.ParseAmenityID(m.AmenityID)
	if err != nil {
		return nil, err
	}
	hotelID, err := id.ParseHotelID(m.HotelID)
	if err != nil {
		return nil, err
	}

	// Scope ids are optional; an empty column means unscoped.
	var ratePlanID id.RatePlanID
	if m.RatePlanID != "" {
		ratePlanID, err = id.ParseRatePlanID(m.RatePlanID)
		if err != nil {
			return nil, err
		}
	}
	var roomProductID id.RoomProductID
	if m.RoomProductID != "" {
		roomProductID, err = id.ParseRoomProductID(m.RoomProductID)
		if err != nil {
			return nil, err
		}
	}

	return &amenity.Inclusion{
		Entity: types.Entity{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		AmenityID:     amenityID,
		HotelID:       hotelID,
		RatePlanID:    ratePlanID,
		RoomProductID: roomProductID,
		Kind:          amenity.InclusionKind(m.Kind),
		FromDate:      dateFromString(m.FromDate),
		ToDate:        dateFromString(m.ToDate),
	}, nil
}

// ==================== Hotel cache models ====================

type hotelCacheModel struct {
	grove.BaseModel `grove:"table:stay_hotel_cache"`

	HotelID   string          `grove:"hotel_id,pk"`
	Payload   json.RawMessage `grove:"payload,type:json"`
	ExpiresAt time.Time       `grove:"expires_at"`
	CreatedAt time.Time       `grove:"created_at"`
}

func toHotelCacheModel(h *hotel.Hotel, expiresAt time.Time) *hotelCacheModel {
	payload, _ := json.Marshal(h) //nolint:errcheck // best-effort

	return &hotelCacheModel{
		HotelID:   h.ID.String(),
		Payload:   payload,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
}

func fromHotelCacheModel(m *hotelCacheModel) (*hotel.Hotel, error) {
	h := new(hotel.Hotel)
	if err := json.Unmarshal(m.Payload, h); err != nil {
		return nil, err
	}
	return h, nil
}
