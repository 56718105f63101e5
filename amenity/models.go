// Package amenity models extra services: pricing unit, tax setting,
// and inclusion records binding an amenity to a rate plan or room
// product as included or mandatory, optionally date-scoped.
package amenity

import (
	"github.com/xraph/stay/id"
	"github.com/xraph/stay/types"
)

// PricingUnit determines how an amenity charge scales.
type PricingUnit string

const (
	UnitPerStay   PricingUnit = "per_stay"
	UnitPerNight  PricingUnit = "per_night"
	UnitPerPerson PricingUnit = "per_person"
)

// TaxSetting controls whether the amenity's price already contains tax.
type TaxSetting string

const (
	TaxIncluded TaxSetting = "included"
	TaxExcluded TaxSetting = "excluded"
)

// InclusionKind is how an amenity attaches to a sale: included in the
// price, or mandatory and charged on top.
type InclusionKind string

const (
	InclusionIncluded  InclusionKind = "included"
	InclusionMandatory InclusionKind = "mandatory"
)

type Amenity struct {
	types.Entity
	ID        id.AmenityID      `json:"id"`
	HotelID   id.HotelID        `json:"hotel_id"`
	Name      string            `json:"name"`
	Slug      string            `json:"slug"`
	Unit      PricingUnit       `json:"unit"`
	Tax       TaxSetting        `json:"tax"`
	TaxRateBP int64             `json:"tax_rate_bp"`
	Price     types.Money       `json:"price"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Inclusion scopes an amenity to a rate plan or a room product. At
// most one of RatePlanID / RoomProductID is set. A zero FromDate and
// ToDate means the inclusion applies year-round.
type Inclusion struct {
	types.Entity
	AmenityID     id.AmenityID     `json:"amenity_id"`
	HotelID       id.HotelID       `json:"hotel_id"`
	RatePlanID    id.RatePlanID    `json:"rate_plan_id,omitempty"`
	RoomProductID id.RoomProductID `json:"room_product_id,omitempty"`
	Kind          InclusionKind    `json:"kind"`
	FromDate      types.Date       `json:"from_date,omitempty"`
	ToDate        types.Date       `json:"to_date,omitempty"`
}

// AppliesOn reports whether the inclusion covers date. Undated
// inclusions cover every date.
func (in *Inclusion) AppliesOn(d types.Date) bool {
	if in.FromDate.IsZero() && in.ToDate.IsZero() {
		return true
	}
	return d.Between(in.FromDate, in.ToDate)
}

// Charge computes the amenity's total for a stay of the given length
// and party size, per its pricing unit.
func (a *Amenity) Charge(stayNights, persons int) types.Money {
	switch a.Unit {
	case UnitPerNight:
		return a.Price.Multiply(int64(stayNights))
	case UnitPerPerson:
		return a.Price.Multiply(int64(persons))
	default:
		return a.Price
	}
}
