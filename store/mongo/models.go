package mongo

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

// Dates are stored as ISO "2006-01-02" strings so range filters and
// sorts work on the raw field.

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

	ID                string            `grove:"id,pk"               bson:"_id"`
	Name              string            `grove:"name"                bson:"name"`
	Slug              string            `grove:"slug"                bson:"slug"`
	Currency          string            `grove:"currency"            bson:"currency"`
	Rounding          string            `grove:"rounding"            bson:"rounding"`
	RoundingDecimals  int               `grove:"rounding_decimals"   bson:"rounding_decimals"`
	DefaultStayNights int               `grove:"default_stay_nights" bson:"default_stay_nights"`
	DefaultAdults     int               `grove:"default_adults"      bson:"default_adults"`
	AgeCategories     []ageCategoryModel  `grove:"age_categories"      bson:"age_categories,omitempty"`
	CityTaxes         []cityTaxModel      `grove:"city_taxes"          bson:"city_taxes,omitempty"`
	Metadata          map[string]string `grove:"metadata"            bson:"metadata,omitempty"`
	CreatedAt         time.Time         `grove:"created_at"          bson:"created_at"`
	UpdatedAt         time.Time         `grove:"updated_at"          bson:"updated_at"`
}

type ageCategoryModel struct {
	ID                string `bson:"id"`
	Kind              string `bson:"kind"`
	Name              string `bson:"name"`
	MinAge            int    `bson:"min_age"`
	MaxAge            int    `bson:"max_age"`
	IncludedInDefault int    `bson:"included_in_default"`
	SurchargeCents    int64  `bson:"surcharge_cents"`
	SurchargeCurrency string `bson:"surcharge_currency"`
	CityTaxExempt     bool   `bson:"city_tax_exempt"`
}

type cityTaxModel struct {
	ID                  string   `bson:"id"`
	Mode                string   `bson:"mode"`
	AmountCents         int64    `bson:"amount_cents"`
	AmountCurrency      string   `bson:"amount_currency"`
	PercentBP           int64    `bson:"percent_bp"`
	ExemptAgeCategories []string `bson:"exempt_age_categories,omitempty"`
	MaxNights           int      `bson:"max_nights"`
}

func toHotelModel(h *hotel.Hotel) *hotelModel {
	ageCategories := make([]ageCategoryModel, len(h.AgeCategories))
	for i, c := range h.AgeCategories {
		ageCategories[i] = ageCategoryModel{
			ID:                c.ID.String(),
			Kind:              string(c.Kind),
			Name:              c.Name,
			MinAge:            c.MinAge,
			MaxAge:            c.MaxAge,
			IncludedInDefault: c.IncludedInDefault,
			SurchargeCents:    c.SurchargePerNight.Amount,
			SurchargeCurrency: c.SurchargePerNight.Currency,
			CityTaxExempt:     c.CityTaxExempt,
		}
	}

	cityTaxes := make([]cityTaxModel, len(h.CityTaxes))
	for i, r := range h.CityTaxes {
		exempt := make([]string, len(r.ExemptAgeCategories))
		for j, e := range r.ExemptAgeCategories {
			exempt[j] = e.String()
		}
		cityTaxes[i] = cityTaxModel{
			ID:                  r.ID.String(),
			Mode:                string(r.Mode),
			AmountCents:         r.AmountPerNight.Amount,
			AmountCurrency:      r.AmountPerNight.Currency,
			PercentBP:           r.PercentBP,
			ExemptAgeCategories: exempt,
			MaxNights:           r.MaxNights,
		}
	}

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

	ageCategories := make([]hotel.AgeCategory, len(m.AgeCategories))
	for i, c := range m.AgeCategories {
		catID, err := id.ParseAgeCategoryID(c.ID)
		if err != nil {
			return nil, err
		}
		ageCategories[i] = hotel.AgeCategory{
			ID:                catID,
			Kind:              hotel.AgeCategoryKind(c.Kind),
			Name:              c.Name,
			MinAge:            c.MinAge,
			MaxAge:            c.MaxAge,
			IncludedInDefault: c.IncludedInDefault,
			SurchargePerNight: types.Money{Amount: c.SurchargeCents, Currency: c.SurchargeCurrency},
			CityTaxExempt:     c.CityTaxExempt,
		}
	}

	cityTaxes := make([]hotel.CityTaxRule, len(m.CityTaxes))
	for i, r := range m.CityTaxes {
		taxID, err := id.ParseCityTaxID(r.ID)
		if err != nil {
			return nil, err
		}
		exempt := make([]id.AgeCategoryID, len(r.ExemptAgeCategories))
		for j, e := range r.ExemptAgeCategories {
			exempt[j], err = id.ParseAgeCategoryID(e)
			if err != nil {
				return nil, err
			}
		}
		cityTaxes[i] = hotel.CityTaxRule{
			ID:                  taxID,
			Mode:                hotel.CityTaxMode(r.Mode),
			AmountPerNight:      types.Money{Amount: r.AmountCents, Currency: r.AmountCurrency},
			PercentBP:           r.PercentBP,
			ExemptAgeCategories: exempt,
			MaxNights:           r.MaxNights,
		}
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

	ID          string            `grove:"id,pk"       bson:"_id"`
	HotelID     string            `grove:"hotel_id"    bson:"hotel_id"`
	Name        string            `grove:"name"        bson:"name"`
	Slug        string            `grove:"slug"        bson:"slug"`
	Description string            `grove:"description" bson:"description"`
	Status      string            `grove:"status"      bson:"status"`
	Capacity    capacityModel       `grove:"capacity"    bson:"capacity"`
	TotalRooms  int               `grove:"total_rooms" bson:"total_rooms"`
	Metadata    map[string]string `grove:"metadata"    bson:"metadata,omitempty"`
	CreatedAt   time.Time         `grove:"created_at"  bson:"created_at"`
	UpdatedAt   time.Time         `grove:"updated_at"  bson:"updated_at"`
}

type capacityModel struct {
	MaxAdults        int `bson:"max_adults"`
	MaxChildren      int `bson:"max_children"`
	MaxPets          int `bson:"max_pets"`
	MaxOccupancy     int `bson:"max_occupancy"`
	ExtraBedAdults   int `bson:"extra_bed_adults"`
	ExtraBedChildren int `bson:"extra_bed_children"`
}

func toRoomProductModel(rp *roomproduct.RoomProduct) *roomProductModel {
	return &roomProductModel{
		ID:          rp.ID.String(),
		HotelID:     rp.HotelID.String(),
		Name:        rp.Name,
		Slug:        rp.Slug,
		Description: rp.Description,
		Status:      string(rp.Status),
		Capacity: capacityModel{
			MaxAdults:        rp.Capacity.MaxAdults,
			MaxChildren:      rp.Capacity.MaxChildren,
			MaxPets:          rp.Capacity.MaxPets,
			MaxOccupancy:     rp.Capacity.MaxOccupancy,
			ExtraBedAdults:   rp.Capacity.ExtraBedAdults,
			ExtraBedChildren: rp.Capacity.ExtraBedChildren,
		},
		TotalRooms: rp.TotalRooms,
		Metadata:   rp.Metadata,
		CreatedAt:  rp.CreatedAt,
		UpdatedAt:  rp.UpdatedAt,
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
		Capacity: roomproduct.Capacity{
			MaxAdults:        m.Capacity.MaxAdults,
			MaxChildren:      m.Capacity.MaxChildren,
			MaxPets:          m.Capacity.MaxPets,
			MaxOccupancy:     m.Capacity.MaxOccupancy,
			ExtraBedAdults:   m.Capacity.ExtraBedAdults,
			ExtraBedChildren: m.Capacity.ExtraBedChildren,
		},
		TotalRooms: m.TotalRooms,
		Metadata:   m.Metadata,
	}, nil
}

// ==================== Pair models ====================

type pairModel struct {
	grove.BaseModel `grove:"table:stay_pairs"`

	ID            string              `grove:"id,pk"           bson:"_id"`
	HotelID       string              `grove:"hotel_id"        bson:"hotel_id"`
	RoomProductID string              `grove:"room_product_id" bson:"room_product_id"`
	RatePlanID    string              `grove:"rate_plan_id"    bson:"rate_plan_id"`
	Sellable      bool                `grove:"sellable"        bson:"sellable"`
	Adjustments   []pairAdjustmentModel `grove:"adjustments"     bson:"adjustments,omitempty"`
	CreatedAt     time.Time           `grove:"created_at"      bson:"created_at"`
	UpdatedAt     time.Time           `grove:"updated_at"      bson:"updated_at"`
}

type pairAdjustmentModel struct {
	Date              string `bson:"date"`
	Sellable          bool   `bson:"sellable"`
	AvailabilityDelta int    `bson:"availability_delta"`
}

func toPairModel(p *roomproduct.Pair) *pairModel {
	adjustments := make([]pairAdjustmentModel, len(p.Adjustments))
	for i, a := range p.Adjustments {
		adjustments[i] = pairAdjustmentModel{
			Date:              dateToString(a.Date),
			Sellable:          a.Sellable,
			AvailabilityDelta: a.AvailabilityDelta,
		}
	}

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

	adjustments := make([]roomproduct.PairAdjustment, len(m.Adjustments))
	for i, a := range m.Adjustments {
		adjustments[i] = roomproduct.PairAdjustment{
			Date:              dateFromString(a.Date),
			Sellable:          a.Sellable,
			AvailabilityDelta: a.AvailabilityDelta,
		}
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

	ID          string                  `grove:"id,pk"        bson:"_id"`
	HotelID     string                  `grove:"hotel_id"     bson:"hotel_id"`
	Name        string                  `grove:"name"         bson:"name"`
	Slug        string                  `grove:"slug"         bson:"slug"`
	Description string                  `grove:"description"  bson:"description"`
	Status      string                  `grove:"status"       bson:"status"`
	Currency    string                  `grove:"currency"     bson:"currency"`
	Defaults    []sellabilityDefaultModel `grove:"defaults"     bson:"defaults,omitempty"`
	Overrides   []dailyOverrideModel      `grove:"overrides"    bson:"overrides,omitempty"`
	DerivedFrom *derivationModel          `grove:"derived_from" bson:"derived_from,omitempty"`
	Metadata    map[string]string       `grove:"metadata"     bson:"metadata,omitempty"`
	CreatedAt   time.Time               `grove:"created_at"   bson:"created_at"`
	UpdatedAt   time.Time               `grove:"updated_at"   bson:"updated_at"`
}

type sellabilityDefaultModel struct {
	Channel  string `bson:"channel"`
	Sellable bool   `bson:"sellable"`
}

type dailyOverrideModel struct {
	Date     string `bson:"date"`
	Channel  string `bson:"channel"`
	Sellable bool   `bson:"sellable"`
}

type derivationModel struct {
	MasterID               string `bson:"master_id"`
	FollowRoomAvailability bool   `bson:"follow_room_availability"`
	FollowIncludedAmenity  bool   `bson:"follow_included_amenity"`
}

func toRatePlanModel(p *rateplan.RatePlan) *ratePlanModel {
	defaults := make([]sellabilityDefaultModel, len(p.Defaults))
	for i, d := range p.Defaults {
		defaults[i] = sellabilityDefaultModel{Channel: string(d.Channel), Sellable: d.Sellable}
	}

	overrides := make([]dailyOverrideModel, len(p.Overrides))
	for i, o := range p.Overrides {
		overrides[i] = dailyOverrideModel{
			Date:     dateToString(o.Date),
			Channel:  string(o.Channel),
			Sellable: o.Sellable,
		}
	}

	var derivedFrom *derivationModel
	if p.DerivedFrom != nil {
		derivedFrom = &derivationModel{
			MasterID:               p.DerivedFrom.MasterID.String(),
			FollowRoomAvailability: p.DerivedFrom.FollowRoomAvailability,
			FollowIncludedAmenity:  p.DerivedFrom.FollowIncludedAmenity,
		}
	}

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

	defaults := make([]rateplan.SellabilityDefault, len(m.Defaults))
	for i, d := range m.Defaults {
		defaults[i] = rateplan.SellabilityDefault{
			Channel:  rateplan.Channel(d.Channel),
			Sellable: d.Sellable,
		}
	}

	overrides := make([]rateplan.DailyOverride, len(m.Overrides))
	for i, o := range m.Overrides {
		overrides[i] = rateplan.DailyOverride{
			Date:     dateFromString(o.Date),
			Channel:  rateplan.Channel(o.Channel),
			Sellable: o.Sellable,
		}
	}

	var derivedFrom *rateplan.Derivation
	if m.DerivedFrom != nil {
		masterID, err := id.ParseRatePlanID(m.DerivedFrom.MasterID)
		if err != nil {
			return nil, err
		}
		derivedFrom = &rateplan.Derivation{
			MasterID:               masterID,
			FollowRoomAvailability: m.DerivedFrom.FollowRoomAvailability,
			FollowIncludedAmenity:  m.DerivedFrom.FollowIncludedAmenity,
		}
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

	ID                  string    `grove:"id,pk"                 bson:"_id"`
	HotelID             string    `grove:"hotel_id"              bson:"hotel_id"`
	Type                string    `grove:"type"                  bson:"type"`
	FromDate            string    `grove:"from_date"             bson:"from_date"`
	ToDate              string    `grove:"to_date"               bson:"to_date"`
	Weekdays            []int     `grove:"weekdays"              bson:"weekdays,omitempty"`
	RoomProductIDs      []string  `grove:"room_product_ids"      bson:"room_product_ids,omitempty"`
	RatePlanIDs         []string  `grove:"rate_plan_ids"         bson:"rate_plan_ids,omitempty"`
	MinLength           *int      `grove:"min_length"            bson:"min_length,omitempty"`
	MaxLength           *int      `grove:"max_length"            bson:"max_length,omitempty"`
	MinAdvanceDays      *int      `grove:"min_advance_days"      bson:"min_advance_days,omitempty"`
	MaxAdvanceDays      *int      `grove:"max_advance_days"      bson:"max_advance_days,omitempty"`
	MinLOSThrough       *int      `grove:"min_los_through"       bson:"min_los_through,omitempty"`
	MaxReservationCount *int      `grove:"max_reservation_count" bson:"max_reservation_count,omitempty"`
	CreatedAt           time.Time `grove:"created_at"            bson:"created_at"`
	UpdatedAt           time.Time `grove:"updated_at"            bson:"updated_at"`
}

func toRestrictionModel(r *restriction.Restriction) *restrictionModel {
	weekdays := make([]int, len(r.Weekdays))
	for i, w := range r.Weekdays {
		weekdays[i] = int(w)
	}
	roomProductIDs := make([]string, len(r.RoomProductIDs))
	for i, rp := range r.RoomProductIDs {
		roomProductIDs[i] = rp.String()
	}
	ratePlanIDs := make([]string, len(r.RatePlanIDs))
	for i, p := range r.RatePlanIDs {
		ratePlanIDs[i] = p.String()
	}

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

	weekdays := make([]time.Weekday, len(m.Weekdays))
	for i, w := range m.Weekdays {
		weekdays[i] = time.Weekday(w)
	}

	roomProductIDs := make([]id.RoomProductID, len(m.RoomProductIDs))
	for i, rp := range m.RoomProductIDs {
		roomProductIDs[i], err = id.ParseRoomProductID(rp)
		if err != nil {
			return nil, err
		}
	}

	ratePlanIDs := make([]id.RatePlanID, len(m.RatePlanIDs))
	for i, p := range m.RatePlanIDs {
		ratePlanIDs[i], err = id.ParseRatePlanID(p)
		if err != nil {
			return nil, err
		}
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

	RowKey        string    `grove:"row_key,pk"      bson:"_id"`
	HotelID       string    `grove:"hotel_id"        bson:"hotel_id"`
	RoomProductID string    `grove:"room_product_id" bson:"room_product_id"`
	Date          string    `grove:"date"            bson:"date"`
	Count         int       `grove:"count"           bson:"count"`
	UpdatedAt     time.Time `grove:"updated_at"      bson:"updated_at"`
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

	RowKey        string            `grove:"row_key,pk"      bson:"_id"`
	HotelID       string            `grove:"hotel_id"        bson:"hotel_id"`
	RoomProductID string            `grove:"room_product_id" bson:"room_product_id"`
	RatePlanID    string            `grove:"rate_plan_id"    bson:"rate_plan_id"`
	Date          string            `grove:"date"            bson:"date"`
	NetCents      int64             `grove:"net_cents"       bson:"net_cents"`
	NetCurrency   string            `grove:"net_currency"    bson:"net_currency"`
	GrossCents    int64             `grove:"gross_cents"     bson:"gross_cents"`
	GrossCurrency string            `grove:"gross_currency"  bson:"gross_currency"`
	Adjustments   map[string]string `grove:"adjustments"     bson:"adjustments,omitempty"`
	UpdatedAt     time.Time         `grove:"updated_at"      bson:"updated_at"`
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

	ID            string            `grove:"id,pk"          bson:"_id"`
	HotelID       string            `grove:"hotel_id"       bson:"hotel_id"`
	Name          string            `grove:"name"           bson:"name"`
	Slug          string            `grove:"slug"           bson:"slug"`
	Unit          string            `grove:"unit"           bson:"unit"`
	Tax           string            `grove:"tax"            bson:"tax"`
	TaxRateBP     int64             `grove:"tax_rate_bp"    bson:"tax_rate_bp"`
	PriceCents    int64             `grove:"price_cents"    bson:"price_cents"`
	PriceCurrency string            `grove:"price_currency" bson:"price_currency"`
	Metadata      map[string]string `grove:"metadata"       bson:"metadata,omitempty"`
	CreatedAt     time.Time         `grove:"created_at"     bson:"created_at"`
	UpdatedAt     time.Time         `grove:"updated_at"     bson:"updated_at"`
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

	RowKey        string    `grove:"row_key,pk"      bson:"_id"`
	HotelID       string    `grove:"hotel_id"        bson:"hotel_id"`
	AmenityID     string    `grove:"amenity_id"      bson:"amenity_id"`
	RatePlanID    string    `grove:"rate_plan_id"    bson:"rate_plan_id"`
	RoomProductID string    `grove:"room_product_id" bson:"room_product_id"`
	Kind          string    `grove:"kind"            bson:"kind"`
	FromDate      string    `grove:"from_date"       bson:"from_date"`
	ToDate        string    `grove:"to_date"         bson:"to_date"`
	CreatedAt     time.Time `grove:"created_at"      bson:"created_at"`
	UpdatedAt     time.Time `grove:"updated_at"      bson:"updated_at"`
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

	HotelID   string    `grove:"hotel_id,pk" bson:"_id"`
	Payload   []byte    `grove:"payload"     bson:"payload"`
	ExpiresAt time.Time `grove:"expires_at"  bson:"expires_at"`
	CreatedAt time.Time `grove:"created_at"  bson:"created_at"`
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
