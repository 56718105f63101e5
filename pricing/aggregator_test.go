package pricing

import (
	"testing"

	"github.com/xraph/stay/amenity"
	"github.com/xraph/stay/availability"
	"github.com/xraph/stay/hotel"
	"github.com/xraph/stay/id"
	"github.com/xraph/stay/types"
)

func dt(s string) types.Date { return types.MustParseDate(s) }

type quoteFixture struct {
	hotel *hotel.Hotel
	room  id.RoomProductID
	plan  id.RatePlanID
}

func newQuoteFixture() *quoteFixture {
	return &quoteFixture{
		hotel: &hotel.Hotel{
			ID:               id.NewHotelID(),
			Currency:         "eur",
			Rounding:         types.RoundHalfUp,
			RoundingDecimals: 2,
			AgeCategories: []hotel.AgeCategory{
				{
					ID:                id.NewAgeCategoryID(),
					Kind:              hotel.KindAdult,
					IncludedInDefault: 2,
					SurchargePerNight: types.EUR(1500),
				},
				{
					ID:                id.NewAgeCategoryID(),
					Kind:              hotel.KindChild,
					IncludedInDefault: 1,
					SurchargePerNight: types.EUR(800),
					CityTaxExempt:     true,
				},
			},
		},
		room: id.NewRoomProductID(),
		plan: id.NewRatePlanID(),
	}
}

func (f *quoteFixture) prices(from string, nights int, net, gross int64) PriceMap {
	var rows []*availability.DailyPrice
	start := dt(from)
	for n := 0; n < nights; n++ {
		rows = append(rows, &availability.DailyPrice{
			RoomProductID: f.room,
			RatePlanID:    f.plan,
			Date:          start.AddDays(n),
			Net:           types.EUR(net),
			Gross:         types.EUR(gross),
		})
	}
	return BuildPriceMap(rows)
}

func (f *quoteFixture) input(nights int, guests types.GuestMix) StayInput {
	return StayInput{
		Hotel:         f.hotel,
		RoomProductID: f.room,
		RatePlanID:    f.plan,
		AmenityPlanID: f.plan,
		CheckIn:       dt("2024-09-01"),
		StayNights:    nights,
		Guests:        guests,
		Prices:        f.prices("2024-09-01", nights, 10000, 12000),
	}
}

func TestQuoteStayAccommodationOnly(t *testing.T) {
	f := newQuoteFixture()
	agg := NewAggregator()

	q, err := agg.QuoteStay(f.input(3, types.GuestMix{Adults: 2}))
	if err != nil {
		t.Fatalf("QuoteStay: %v", err)
	}
	if q.Net.Amount != 30000 || q.Gross.Amount != 36000 {
		t.Errorf("net/gross = %d/%d, want 30000/36000", q.Net.Amount, q.Gross.Amount)
	}
	if q.AverageDailyRate.Amount != 12000 {
		t.Errorf("ADR = %d, want 12000", q.AverageDailyRate.Amount)
	}
	if !q.CityTax.IsZero() {
		t.Errorf("city tax should be zero without request, got %v", q.CityTax)
	}
}

func TestQuoteStayMissingPrice(t *testing.T) {
	f := newQuoteFixture()
	in := f.input(3, types.GuestMix{Adults: 2})
	in.Prices = f.prices("2024-09-01", 2, 10000, 12000) // third night unpriced

	if _, err := NewAggregator().QuoteStay(in); err == nil {
		t.Fatal("expected error for unpriced night")
	}
}

func TestQuoteStayAmenities(t *testing.T) {
	f := newQuoteFixture()
	breakfast := &amenity.Amenity{
		ID:        id.NewAmenityID(),
		Name:      "Breakfast",
		Unit:      amenity.UnitPerPerson,
		Tax:       amenity.TaxExcluded,
		TaxRateBP: 1000, // 10%
		Price:     types.EUR(2000),
	}
	cleaning := &amenity.Amenity{
		ID:    id.NewAmenityID(),
		Name:  "Cleaning",
		Unit:  amenity.UnitPerStay,
		Tax:   amenity.TaxIncluded,
		Price: types.EUR(5000),
	}
	otherPlanFee := &amenity.Amenity{
		ID:    id.NewAmenityID(),
		Name:  "Sauna",
		Unit:  amenity.UnitPerStay,
		Price: types.EUR(9900),
	}

	in := f.input(2, types.GuestMix{Adults: 2})
	in.Amenities = map[id.AmenityID]*amenity.Amenity{
		breakfast.ID:    breakfast,
		cleaning.ID:     cleaning,
		otherPlanFee.ID: otherPlanFee,
	}
	in.Inclusions = []*amenity.Inclusion{
		{AmenityID: breakfast.ID, RatePlanID: f.plan, Kind: amenity.InclusionIncluded},
		{AmenityID: cleaning.ID, RoomProductID: f.room, Kind: amenity.InclusionMandatory},
		// Scoped to a different plan: must not be charged.
		{AmenityID: otherPlanFee.ID, RatePlanID: id.NewRatePlanID(), Kind: amenity.InclusionMandatory},
	}

	q, err := NewAggregator().QuoteStay(in)
	if err != nil {
		t.Fatalf("QuoteStay: %v", err)
	}
	if len(q.Extras) != 2 {
		t.Fatalf("got %d extras, want 2: %+v", len(q.Extras), q.Extras)
	}

	// Accommodation 2 nights: net 20000, gross 24000.
	// Breakfast per person x2: net 4000, gross 4400 (10% tax on top).
	// Cleaning per stay: 5000 both sides.
	if q.Net.Amount != 29000 {
		t.Errorf("net = %d, want 29000", q.Net.Amount)
	}
	if q.Gross.Amount != 33400 {
		t.Errorf("gross = %d, want 33400", q.Gross.Amount)
	}
}

func TestQuoteStayDateScopedAmenity(t *testing.T) {
	f := newQuoteFixture()
	parking := &amenity.Amenity{
		ID:    id.NewAmenityID(),
		Name:  "Parking",
		Unit:  amenity.UnitPerNight,
		Price: types.EUR(1000),
	}

	in := f.input(4, types.GuestMix{Adults: 2})
	in.Amenities = map[id.AmenityID]*amenity.Amenity{parking.ID: parking}
	in.Inclusions = []*amenity.Inclusion{{
		AmenityID:  parking.ID,
		RatePlanID: f.plan,
		Kind:       amenity.InclusionMandatory,
		FromDate:   dt("2024-09-02"),
		ToDate:     dt("2024-09-03"),
	}}

	q, err := NewAggregator().QuoteStay(in)
	if err != nil {
		t.Fatalf("QuoteStay: %v", err)
	}
	// Only two of the four nights fall in the inclusion window.
	if len(q.Extras) != 1 || q.Extras[0].Gross.Amount != 2000 {
		t.Errorf("extras = %+v, want one 2000 parking charge", q.Extras)
	}
}

func TestQuoteStayOccupancySurcharge(t *testing.T) {
	f := newQuoteFixture()
	agg := NewAggregator()

	// 3 adults with 2 included: one extra adult, 1500/night over 2 nights.
	q, err := agg.QuoteStay(f.input(2, types.GuestMix{Adults: 3}))
	if err != nil {
		t.Fatalf("QuoteStay: %v", err)
	}
	if q.Gross.Amount != 24000+3000 {
		t.Errorf("gross = %d, want 27000", q.Gross.Amount)
	}

	// 2 children with 1 included: one extra child at 800/night.
	q, err = agg.QuoteStay(f.input(2, types.GuestMix{Adults: 2, Children: 2}))
	if err != nil {
		t.Fatalf("QuoteStay: %v", err)
	}
	if q.Gross.Amount != 24000+1600 {
		t.Errorf("gross = %d, want 25600", q.Gross.Amount)
	}
}

func TestQuoteStayCityTax(t *testing.T) {
	f := newQuoteFixture()
	f.hotel.CityTaxes = []hotel.CityTaxRule{{
		ID:             id.NewCityTaxID(),
		Mode:           hotel.CityTaxPerPersonPerNight,
		AmountPerNight: types.EUR(200),
		MaxNights:      7,
	}}

	in := f.input(2, types.GuestMix{Adults: 2, Children: 1})
	in.IncludeCityTax = true

	q, err := NewAggregator().QuoteStay(in)
	if err != nil {
		t.Fatalf("QuoteStay: %v", err)
	}
	// Children are city-tax exempt in the fixture; 2 adults x 2 nights x 200.
	if q.CityTax.Amount != 800 {
		t.Errorf("city tax = %d, want 800", q.CityTax.Amount)
	}
	if q.Gross.Amount != 24000+800 {
		t.Errorf("gross = %d, want 24800", q.Gross.Amount)
	}
}

func TestQuoteStayCityTaxPercent(t *testing.T) {
	f := newQuoteFixture()
	f.hotel.CityTaxes = []hotel.CityTaxRule{{
		ID:        id.NewCityTaxID(),
		Mode:      hotel.CityTaxPercentOfGross,
		PercentBP: 400, // 4%
	}}

	in := f.input(2, types.GuestMix{Adults: 2})
	in.IncludeCityTax = true

	q, err := NewAggregator().QuoteStay(in)
	if err != nil {
		t.Fatalf("QuoteStay: %v", err)
	}
	if q.CityTax.Amount != 960 { // 4% of 24000
		t.Errorf("city tax = %d, want 960", q.CityTax.Amount)
	}
}

func TestQuoteStayRoundingOnceOnTotal(t *testing.T) {
	f := newQuoteFixture()
	f.hotel.Rounding = types.RoundHalfUp
	f.hotel.RoundingDecimals = 0 // round to whole euros

	in := f.input(3, types.GuestMix{Adults: 2})
	in.Prices = f.prices("2024-09-01", 3, 3333, 3333)

	q, err := NewAggregator().QuoteStay(in)
	if err != nil {
		t.Fatalf("QuoteStay: %v", err)
	}
	// 3 x 33.33 = 99.99 rounds once to 100.00; per-night rounding
	// would have produced 99.00.
	if q.Gross.Amount != 10000 {
		t.Errorf("gross = %d, want 10000", q.Gross.Amount)
	}
}

func TestLowestPerDay(t *testing.T) {
	f := newQuoteFixture()
	cheapPlan := id.NewRatePlanID()

	rows := []*availability.DailyPrice{
		{RoomProductID: f.room, RatePlanID: f.plan, Date: dt("2024-09-01"), Net: types.EUR(9000), Gross: types.EUR(11000)},
		{RoomProductID: f.room, RatePlanID: cheapPlan, Date: dt("2024-09-01"), Net: types.EUR(8000), Gross: types.EUR(9500)},
		{RoomProductID: f.room, RatePlanID: cheapPlan, Date: dt("2024-09-02"), Net: types.EUR(8000), Gross: types.EUR(9500)},
	}

	// The cheap plan is not sellable on the second date.
	sellable := func(date types.Date, _ id.RoomProductID, planID id.RatePlanID) bool {
		return !(planID == cheapPlan && date.Equal(dt("2024-09-02")))
	}

	got := NewAggregator().LowestPerDay(BuildPriceMap(rows), dt("2024-09-01"), dt("2024-09-07"), sellable)

	day1, ok := got[dt("2024-09-01")]
	if !ok || day1.RatePlanID != cheapPlan || day1.Gross.Amount != 9500 {
		t.Errorf("day 1 lowest = %+v, want cheap plan at 9500", day1)
	}
	// Only the unsellable cheap plan was priced on day 2.
	if _, ok := got[dt("2024-09-02")]; ok {
		t.Error("day 2 should be absent with no sellable priced pair")
	}
}

// Gross-price ties resolve to the same pair on every run, by room
// product id then rate plan id.
func TestLowestPerDayStableTies(t *testing.T) {
	f := newQuoteFixture()
	otherRoom := id.NewRoomProductID()
	otherPlan := id.NewRatePlanID()

	rows := []*availability.DailyPrice{
		{RoomProductID: f.room, RatePlanID: f.plan, Date: dt("2024-09-01"), Net: types.EUR(9000), Gross: types.EUR(9500)},
		{RoomProductID: otherRoom, RatePlanID: f.plan, Date: dt("2024-09-01"), Net: types.EUR(8800), Gross: types.EUR(9500)},
		{RoomProductID: f.room, RatePlanID: f.plan, Date: dt("2024-09-02"), Net: types.EUR(9000), Gross: types.EUR(9500)},
		{RoomProductID: f.room, RatePlanID: otherPlan, Date: dt("2024-09-02"), Net: types.EUR(8800), Gross: types.EUR(9500)},
	}

	wantRoom := f.room
	if otherRoom.String() < f.room.String() {
		wantRoom = otherRoom
	}
	wantPlan := f.plan
	if otherPlan.String() < f.plan.String() {
		wantPlan = otherPlan
	}

	agg := NewAggregator()
	for i := 0; i < 32; i++ {
		got := agg.LowestPerDay(BuildPriceMap(rows), dt("2024-09-01"), dt("2024-09-02"), nil)

		day1, ok := got[dt("2024-09-01")]
		if !ok || day1.RoomProductID != wantRoom {
			t.Fatalf("iteration %d: day 1 room = %s, want %s", i, day1.RoomProductID, wantRoom)
		}
		day2, ok := got[dt("2024-09-02")]
		if !ok || day2.RatePlanID != wantPlan {
			t.Fatalf("iteration %d: day 2 plan = %s, want %s", i, day2.RatePlanID, wantPlan)
		}
	}
}
