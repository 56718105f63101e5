// Package pricing aggregates daily selling prices, amenity charges,
// occupancy surcharges, and city tax into stay quotes, and computes
// the per-day lowest rate used for calendar rendering.
package pricing

import (
	"fmt"

	"github.com/xraph/stay/amenity"
	"github.com/xraph/stay/availability"
	"github.com/xraph/stay/hotel"
	"github.com/xraph/stay/id"
	"github.com/xraph/stay/types"
)

// PriceKey addresses one daily price row.
type PriceKey struct {
	Date          types.Date
	RoomProductID id.RoomProductID
	RatePlanID    id.RatePlanID
}

// PriceMap indexes daily price rows for O(1) lookup during aggregation.
type PriceMap map[PriceKey]*availability.DailyPrice

// BuildPriceMap indexes fetched daily price rows.
func BuildPriceMap(rows []*availability.DailyPrice) PriceMap {
	m := make(PriceMap, len(rows))
	for _, r := range rows {
		m[PriceKey{Date: r.Date, RoomProductID: r.RoomProductID, RatePlanID: r.RatePlanID}] = r
	}
	return m
}

// ExtraCharge is one amenity line in a quote.
type ExtraCharge struct {
	AmenityID id.AmenityID          `json:"amenity_id"`
	Name      string                `json:"name"`
	Kind      amenity.InclusionKind `json:"kind"`
	Net       types.Money           `json:"net"`
	Gross     types.Money           `json:"gross"`
}

// Quote is the priced result for one (room product, rate plan) stay.
// Rounding is applied once to each total, never to line items.
type Quote struct {
	Net              types.Money   `json:"net"`
	Gross            types.Money   `json:"gross"`
	AverageDailyRate types.Money   `json:"average_daily_rate"`
	Extras           []ExtraCharge `json:"extras,omitempty"`
	CityTax          types.Money   `json:"city_tax"`
}

// StayInput carries everything the aggregator needs for one pair.
type StayInput struct {
	Hotel         *hotel.Hotel
	RoomProductID id.RoomProductID
	RatePlanID    id.RatePlanID

	// AmenityPlanID is the plan whose amenity inclusions apply; for
	// derived plans following a master's amenities it is the master id.
	AmenityPlanID id.RatePlanID

	CheckIn    types.Date
	StayNights int
	Guests     types.GuestMix

	Prices     PriceMap
	Amenities  map[id.AmenityID]*amenity.Amenity
	Inclusions []*amenity.Inclusion

	// IncludeCityTax adds city tax to the quote for tax-inclusive display.
	IncludeCityTax bool
}

// Aggregator prices stays against a hotel's configuration.
type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// QuoteStay sums the accommodation prices over the stay and adds
// amenity charges, occupancy surcharges, and, when requested, city
// tax. The hotel's rounding mode is applied once to each final total.
func (a *Aggregator) QuoteStay(in StayInput) (*Quote, error) {
	if in.Hotel == nil {
		return nil, fmt.Errorf("pricing: hotel is required")
	}
	if in.StayNights <= 0 {
		return nil, fmt.Errorf("pricing: stay must cover at least one night")
	}

	cur := in.Hotel.Currency
	net := types.Zero(cur)
	gross := types.Zero(cur)

	for n := 0; n < in.StayNights; n++ {
		date := in.CheckIn.AddDays(n)
		row, ok := in.Prices[PriceKey{Date: date, RoomProductID: in.RoomProductID, RatePlanID: in.RatePlanID}]
		if !ok {
			return nil, fmt.Errorf("pricing: no price for %s", date)
		}
		net = net.Add(row.Net)
		gross = gross.Add(row.Gross)
	}

	q := &Quote{CityTax: types.Zero(cur)}

	for _, charge := range a.amenityCharges(in) {
		q.Extras = append(q.Extras, charge)
		net = net.Add(charge.Net)
		gross = gross.Add(charge.Gross)
	}

	if surcharge := a.occupancySurcharge(in); !surcharge.IsZero() {
		net = net.Add(surcharge)
		gross = gross.Add(surcharge)
	}

	if in.IncludeCityTax {
		tax := a.cityTax(in, gross)
		q.CityTax = in.Hotel.RoundTotal(tax)
		gross = gross.Add(tax)
	}

	q.Net = in.Hotel.RoundTotal(net)
	q.Gross = in.Hotel.RoundTotal(gross)
	q.AverageDailyRate = in.Hotel.RoundTotal(gross.Divide(int64(in.StayNights)))
	return q, nil
}

// amenityCharges prices the included and mandatory amenities scoped to
// the effective rate plan or the room product. Date-scoped inclusions
// charge only the covered nights; per-stay and per-person amenities
// charge once when at least one night is covered.
func (a *Aggregator) amenityCharges(in StayInput) []ExtraCharge {
	var out []ExtraCharge
	persons := in.Guests.Total()

	for _, inc := range in.Inclusions {
		if !a.inclusionApplies(inc, in) {
			continue
		}
		am, ok := in.Amenities[inc.AmenityID]
		if !ok {
			continue
		}

		covered := 0
		for n := 0; n < in.StayNights; n++ {
			if inc.AppliesOn(in.CheckIn.AddDays(n)) {
				covered++
			}
		}
		if covered == 0 {
			continue
		}

		var base types.Money
		switch am.Unit {
		case amenity.UnitPerNight:
			base = am.Price.Multiply(int64(covered))
		case amenity.UnitPerPerson:
			base = am.Price.Multiply(int64(persons))
		default:
			base = am.Price
		}

		charge := ExtraCharge{AmenityID: am.ID, Name: am.Name, Kind: inc.Kind, Net: base, Gross: base}
		if am.Tax == amenity.TaxExcluded && am.TaxRateBP > 0 {
			charge.Gross = base.Add(base.PercentBP(am.TaxRateBP))
		}
		out = append(out, charge)
	}
	return out
}

func (a *Aggregator) inclusionApplies(inc *amenity.Inclusion, in StayInput) bool {
	if !inc.RatePlanID.IsNil() {
		return inc.RatePlanID == in.AmenityPlanID
	}
	if !inc.RoomProductID.IsNil() {
		return inc.RoomProductID == in.RoomProductID
	}
	return false
}

// occupancySurcharge charges guests beyond the default age-category
// allotment, per night. Adults beyond the adult category's allotment
// draw its surcharge; children beyond the combined child allotment
// draw the first child category's surcharge.
func (a *Aggregator) occupancySurcharge(in StayInput) types.Money {
	total := types.Zero(in.Hotel.Currency)
	nights := int64(in.StayNights)

	if adult := in.Hotel.AdultCategory(); adult != nil {
		if extra := in.Guests.Adults - adult.IncludedInDefault; extra > 0 && !adult.SurchargePerNight.IsZero() {
			total = total.Add(adult.SurchargePerNight.Multiply(int64(extra) * nights))
		}
	}

	children := in.Hotel.ChildCategories()
	if len(children) > 0 {
		allotment := 0
		for _, c := range children {
			allotment += c.IncludedInDefault
		}
		if extra := in.Guests.Children - allotment; extra > 0 && !children[0].SurchargePerNight.IsZero() {
			total = total.Add(children[0].SurchargePerNight.Multiply(int64(extra) * nights))
		}
	}

	return total
}

// cityTax evaluates the hotel's city tax rules against the stay. The
// accommodation gross feeds percent-of-gross rules; per-person rules
// count non-exempt guests over the taxed nights.
func (a *Aggregator) cityTax(in StayInput, gross types.Money) types.Money {
	total := types.Zero(in.Hotel.Currency)

	for i := range in.Hotel.CityTaxes {
		rule := &in.Hotel.CityTaxes[i]

		switch rule.Mode {
		case hotel.CityTaxPercentOfGross:
			total = total.Add(gross.PercentBP(rule.PercentBP))
		default:
			nights := in.StayNights
			if rule.MaxNights > 0 && nights > rule.MaxNights {
				nights = rule.MaxNights
			}
			persons := a.taxablePersons(in, rule)
			if persons > 0 && nights > 0 {
				total = total.Add(rule.AmountPerNight.Multiply(int64(persons) * int64(nights)))
			}
		}
	}
	return total
}

func (a *Aggregator) taxablePersons(in StayInput, rule *hotel.CityTaxRule) int {
	persons := 0
	if !rule.TaxExempt(in.Hotel.AdultCategory()) {
		persons += in.Guests.Adults
	}
	children := in.Hotel.ChildCategories()
	childExempt := len(children) > 0 && rule.TaxExempt(&children[0])
	if !childExempt {
		persons += in.Guests.Children
	}
	return persons
}
