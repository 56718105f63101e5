package stay_test

import (
	"context"
	"testing"

	"github.com/xraph/stay"
	"github.com/xraph/stay/availability"
	"github.com/xraph/stay/hotel"
	"github.com/xraph/stay/id"
	"github.com/xraph/stay/rateplan"
	"github.com/xraph/stay/restriction"
	"github.com/xraph/stay/roomproduct"
	"github.com/xraph/stay/store/memory"
	"github.com/xraph/stay/types"
)

func dt(s string) types.Date { return types.MustParseDate(s) }

// testHotel seeds a hotel with one room product, one rate plan, and
// availability and prices over September 2024.
type testHotel struct {
	engine *stay.Engine
	hotel  *hotel.Hotel
	room   *roomproduct.RoomProduct
	plan   *rateplan.RatePlan
}

func newTestHotel(t *testing.T) *testHotel {
	t.Helper()
	ctx := context.Background()

	engine := stay.New(memory.New(),
		stay.WithClock(func() types.Date { return dt("2024-08-01") }),
	)
	if err := engine.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() { _ = engine.Stop() })

	h := &hotel.Hotel{
		Name:             "Seaside",
		Slug:             "seaside",
		Currency:         "eur",
		Rounding:         types.RoundHalfUp,
		RoundingDecimals: 2,
		DefaultStayNights: 2,
		DefaultAdults:     2,
	}
	if err := engine.CreateHotel(ctx, h); err != nil {
		t.Fatalf("CreateHotel: %v", err)
	}

	room := &roomproduct.RoomProduct{
		HotelID: h.ID,
		Name:    "Double",
		Slug:    "double",
		Status:  roomproduct.StatusActive,
		Capacity: roomproduct.Capacity{
			MaxAdults:    2,
			MaxChildren:  1,
			MaxOccupancy: 3,
		},
		TotalRooms: 10,
	}
	if err := engine.CreateRoomProduct(ctx, room); err != nil {
		t.Fatalf("CreateRoomProduct: %v", err)
	}

	plan := &rateplan.RatePlan{
		HotelID:  h.ID,
		Name:     "Flexible",
		Slug:     "flexible",
		Status:   rateplan.StatusActive,
		Currency: "eur",
		Defaults: []rateplan.SellabilityDefault{
			{Channel: rateplan.ChannelWebsite, Sellable: true},
		},
	}
	if err := engine.CreateRatePlan(ctx, plan); err != nil {
		t.Fatalf("CreateRatePlan: %v", err)
	}

	if err := engine.CreatePair(ctx, &roomproduct.Pair{
		HotelID:       h.ID,
		RoomProductID: room.ID,
		RatePlanID:    plan.ID,
		Sellable:      true,
	}); err != nil {
		t.Fatalf("CreatePair: %v", err)
	}

	var avail []*availability.Availability
	var prices []*availability.DailyPrice
	for d := dt("2024-09-01"); !d.After(dt("2024-09-30")); d = d.AddDays(1) {
		avail = append(avail, &availability.Availability{
			HotelID:       h.ID,
			RoomProductID: room.ID,
			Date:          d,
			Count:         3,
		})
		prices = append(prices, &availability.DailyPrice{
			HotelID:       h.ID,
			RoomProductID: room.ID,
			RatePlanID:    plan.ID,
			Date:          d,
			Net:           types.EUR(10000),
			Gross:         types.EUR(12000),
		})
	}
	if err := engine.SetAvailability(ctx, avail); err != nil {
		t.Fatalf("SetAvailability: %v", err)
	}
	if err := engine.SetPrices(ctx, prices); err != nil {
		t.Fatalf("SetPrices: %v", err)
	}

	return &testHotel{engine: engine, hotel: h, room: room, plan: plan}
}

func (f *testHotel) restrict(t *testing.T, r *restriction.Restriction) {
	t.Helper()
	r.HotelID = f.hotel.ID
	if err := f.engine.CreateRestriction(context.Background(), r); err != nil {
		t.Fatalf("CreateRestriction: %v", err)
	}
}

func TestCheckStayBookable(t *testing.T) {
	f := newTestHotel(t)

	result, err := f.engine.CheckStay(context.Background(), stay.StayRequest{
		HotelID:    f.hotel.ID,
		CheckIn:    dt("2024-09-10"),
		StayNights: 3,
		Guests:     types.GuestMix{Adults: 2},
	})
	if err != nil {
		t.Fatalf("CheckStay: %v", err)
	}

	if !result.Bookable {
		t.Fatalf("expected bookable, got %+v", result)
	}
	if len(result.Options) != 1 {
		t.Fatalf("got %d options, want 1", len(result.Options))
	}
	opt := result.Options[0]
	if opt.Status != stay.StatusBookable {
		t.Errorf("status = %s, want %s", opt.Status, stay.StatusBookable)
	}
	if opt.Quote == nil || opt.Quote.Gross.Amount != 36000 {
		t.Errorf("quote = %+v, want gross 36000", opt.Quote)
	}
	if opt.Allocation.DefaultAdults != 2 {
		t.Errorf("allocation = %+v, want 2 default adults", opt.Allocation)
	}
}

func TestCheckStayValidation(t *testing.T) {
	f := newTestHotel(t)
	ctx := context.Background()

	_, err := f.engine.CheckStay(ctx, stay.StayRequest{
		HotelID: f.hotel.ID,
		CheckIn: dt("2024-09-10"),
		Guests:  types.GuestMix{Adults: 2},
	})
	if !stay.IsValidation(err) {
		t.Errorf("zero nights: got %v, want validation error", err)
	}

	_, err = f.engine.CheckStay(ctx, stay.StayRequest{
		HotelID:    f.hotel.ID,
		CheckIn:    dt("2024-09-10"),
		StayNights: 2,
	})
	if !stay.IsValidation(err) {
		t.Errorf("missing guests: got %v, want validation error", err)
	}
}

// A hard house-level closed-to-stay covering an intermediate night
// rejects the stay with a restriction status.
func TestCheckStayHouseClosure(t *testing.T) {
	f := newTestHotel(t)
	f.restrict(t, &restriction.Restriction{
		Type:     restriction.ClosedToStay,
		FromDate: dt("2024-09-11"),
		ToDate:   dt("2024-09-11"),
	})

	result, err := f.engine.CheckStay(context.Background(), stay.StayRequest{
		HotelID:    f.hotel.ID,
		CheckIn:    dt("2024-09-10"),
		StayNights: 3,
		Guests:     types.GuestMix{Adults: 2},
	})
	if err != nil {
		t.Fatalf("CheckStay: %v", err)
	}

	if result.Bookable {
		t.Fatal("expected not bookable under house closure")
	}
	if got := result.Options[0].Status; got != stay.StatusRestricted {
		t.Errorf("status = %s, want %s", got, stay.StatusRestricted)
	}

	// The same closure on the final night is exempt for a 2-night stay
	// ending there.
	result, err = f.engine.CheckStay(context.Background(), stay.StayRequest{
		HotelID:    f.hotel.ID,
		CheckIn:    dt("2024-09-10"),
		StayNights: 2,
		Guests:     types.GuestMix{Adults: 2},
	})
	if err != nil {
		t.Fatalf("CheckStay: %v", err)
	}
	if !result.Bookable {
		t.Error("checkout-night closure should not block the stay")
	}
}

// A minimum length of stay of 3 rejects 2 nights and accepts 3.
func TestCheckStayMinLOS(t *testing.T) {
	f := newTestHotel(t)
	minLen := 3
	f.restrict(t, &restriction.Restriction{
		Type:      restriction.ClosedToStay,
		FromDate:  dt("2024-09-01"),
		ToDate:    dt("2024-09-30"),
		MinLength: &minLen,
	})

	short, err := f.engine.CheckStay(context.Background(), stay.StayRequest{
		HotelID:    f.hotel.ID,
		CheckIn:    dt("2024-09-10"),
		StayNights: 2,
		Guests:     types.GuestMix{Adults: 2},
	})
	if err != nil {
		t.Fatalf("CheckStay: %v", err)
	}
	if short.Bookable {
		t.Fatal("2-night stay should violate the minimum length")
	}
	if got := short.Options[0].Status; got != stay.StatusMinLOSViolation {
		t.Errorf("status = %s, want %s", got, stay.StatusMinLOSViolation)
	}

	long, err := f.engine.CheckStay(context.Background(), stay.StayRequest{
		HotelID:    f.hotel.ID,
		CheckIn:    dt("2024-09-10"),
		StayNights: 3,
		Guests:     types.GuestMix{Adults: 2},
	})
	if err != nil {
		t.Fatalf("CheckStay: %v", err)
	}
	if !long.Bookable {
		t.Error("3-night stay should satisfy the minimum length")
	}
}

// Guests that exceed every room's capacity yield no options at all.
func TestCheckStayCapacityExcluded(t *testing.T) {
	f := newTestHotel(t)

	result, err := f.engine.CheckStay(context.Background(), stay.StayRequest{
		HotelID:    f.hotel.ID,
		CheckIn:    dt("2024-09-10"),
		StayNights: 2,
		Guests:     types.GuestMix{Adults: 5},
	})
	if err != nil {
		t.Fatalf("CheckStay: %v", err)
	}
	if len(result.Options) != 0 || result.Bookable {
		t.Errorf("expected no options for oversized party, got %+v", result)
	}
}

func TestCalendar(t *testing.T) {
	f := newTestHotel(t)
	ctx := context.Background()

	// Sell out one date.
	if err := f.engine.SetAvailability(ctx, []*availability.Availability{{
		HotelID:       f.hotel.ID,
		RoomProductID: f.room.ID,
		Date:          dt("2024-09-03"),
		Count:         0,
	}}); err != nil {
		t.Fatalf("SetAvailability: %v", err)
	}

	rows, err := f.engine.Calendar(ctx, stay.CalendarRequest{
		HotelID: f.hotel.ID,
		From:    dt("2024-09-01"),
		To:      dt("2024-09-05"),
	})
	if err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}

	if rows[0].Status != stay.StatusBookable || rows[0].Gross == nil || rows[0].Gross.Amount != 12000 {
		t.Errorf("day 1 = %+v, want bookable at 12000", rows[0])
	}

	soldOut := rows[2]
	if soldOut.Status != stay.StatusSoldOut {
		t.Errorf("day 3 status = %s, want %s", soldOut.Status, stay.StatusSoldOut)
	}
	if soldOut.NextBookableDate == nil || !soldOut.NextBookableDate.Equal(dt("2024-09-04")) {
		t.Errorf("day 3 next bookable = %v, want 2024-09-04", soldOut.NextBookableDate)
	}
}

// A house closure with stock and prices still renders its dates as
// restricted with no price.
func TestCalendarHouseClosure(t *testing.T) {
	f := newTestHotel(t)
	f.restrict(t, &restriction.Restriction{
		Type:     restriction.ClosedToStay,
		FromDate: dt("2024-09-01"),
		ToDate:   dt("2024-09-10"),
	})

	rows, err := f.engine.Calendar(context.Background(), stay.CalendarRequest{
		HotelID: f.hotel.ID,
		From:    dt("2024-09-02"),
		To:      dt("2024-09-04"),
	})
	if err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	for _, row := range rows {
		if row.Status != stay.StatusRestricted {
			t.Errorf("%s status = %s, want %s", row.Date, row.Status, stay.StatusRestricted)
		}
		if row.Net != nil || row.Gross != nil {
			t.Errorf("%s carries a price while closed: %+v", row.Date, row)
		}
		if len(row.Restrictions) == 0 {
			t.Errorf("%s reports no blocking restrictions", row.Date)
		}
	}
}

// Closing the only rate plan removes the pair from the day's rate, so
// the date reports restricted rather than bookable.
func TestCalendarPlanClosure(t *testing.T) {
	f := newTestHotel(t)
	f.restrict(t, &restriction.Restriction{
		Type:        restriction.ClosedToArrival,
		FromDate:    dt("2024-09-03"),
		ToDate:      dt("2024-09-03"),
		RatePlanIDs: []id.RatePlanID{f.plan.ID},
	})

	rows, err := f.engine.Calendar(context.Background(), stay.CalendarRequest{
		HotelID: f.hotel.ID,
		From:    dt("2024-09-02"),
		To:      dt("2024-09-04"),
	})
	if err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	if rows[0].Status != stay.StatusBookable || rows[2].Status != stay.StatusBookable {
		t.Errorf("open days = %s / %s, want %s", rows[0].Status, rows[2].Status, stay.StatusBookable)
	}

	closed := rows[1]
	if closed.Status != stay.StatusRestricted {
		t.Errorf("closed day status = %s, want %s", closed.Status, stay.StatusRestricted)
	}
	if closed.Gross != nil {
		t.Errorf("closed day carries a price: %+v", closed)
	}
	if len(closed.Restrictions) != 1 || closed.Restrictions[0].Code != restriction.CodeClosedToArrival {
		t.Errorf("closed day restrictions = %+v, want one closed-to-arrival", closed.Restrictions)
	}
	if closed.NextBookableDate == nil || !closed.NextBookableDate.Equal(dt("2024-09-04")) {
		t.Errorf("next bookable = %v, want 2024-09-04", closed.NextBookableDate)
	}
}

// A minimum advance window on the plan keeps near-term dates out of
// the calendar until the lead time is satisfied.
func TestCalendarMinAdvance(t *testing.T) {
	f := newTestHotel(t)
	minAdvance := 60
	f.restrict(t, &restriction.Restriction{
		Type:           restriction.ClosedToStay,
		FromDate:       dt("2024-09-01"),
		ToDate:         dt("2024-09-30"),
		RatePlanIDs:    []id.RatePlanID{f.plan.ID},
		MinAdvanceDays: &minAdvance,
	})

	// The clock reads 2024-08-01, so 2024-09-30 is exactly 60 days out.
	rows, err := f.engine.Calendar(context.Background(), stay.CalendarRequest{
		HotelID: f.hotel.ID,
		From:    dt("2024-09-28"),
		To:      dt("2024-09-30"),
	})
	if err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	for _, row := range rows[:2] {
		if row.Status != stay.StatusRestricted {
			t.Errorf("%s status = %s, want %s", row.Date, row.Status, stay.StatusRestricted)
		}
		if len(row.Restrictions) == 0 || row.Restrictions[0].Code != restriction.CodeMinAdvance {
			t.Errorf("%s restrictions = %+v, want min-advance", row.Date, row.Restrictions)
		}
	}
	if rows[2].Status != stay.StatusBookable {
		t.Errorf("60-days-out status = %s, want %s", rows[2].Status, stay.StatusBookable)
	}
}

// A minimum length no sellable stay can satisfy reports a length
// violation rather than a generic closure.
func TestCalendarMinLOSBeyondSellableLengths(t *testing.T) {
	f := newTestHotel(t)
	minLen := 40
	f.restrict(t, &restriction.Restriction{
		Type:        restriction.ClosedToStay,
		FromDate:    dt("2024-09-01"),
		ToDate:      dt("2024-09-30"),
		RatePlanIDs: []id.RatePlanID{f.plan.ID},
		MinLength:   &minLen,
	})

	rows, err := f.engine.Calendar(context.Background(), stay.CalendarRequest{
		HotelID: f.hotel.ID,
		From:    dt("2024-09-02"),
		To:      dt("2024-09-03"),
	})
	if err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	for _, row := range rows {
		if row.Status != stay.StatusMinLOSViolation {
			t.Errorf("%s status = %s, want %s", row.Date, row.Status, stay.StatusMinLOSViolation)
		}
		if row.Gross != nil {
			t.Errorf("%s carries a price: %+v", row.Date, row)
		}
	}
}

func TestCalendarInvertedRange(t *testing.T) {
	f := newTestHotel(t)

	_, err := f.engine.Calendar(context.Background(), stay.CalendarRequest{
		HotelID: f.hotel.ID,
		From:    dt("2024-09-10"),
		To:      dt("2024-09-01"),
	})
	if !stay.IsValidation(err) {
		t.Errorf("got %v, want validation error", err)
	}
}

func TestSellabilityCalendarRoundTrip(t *testing.T) {
	f := newTestHotel(t)
	ctx := context.Background()

	// Close the pair on two dates in the middle of the range.
	if err := f.engine.SetAvailability(ctx, []*availability.Availability{
		{HotelID: f.hotel.ID, RoomProductID: f.room.ID, Date: dt("2024-09-04"), Count: 0},
		{HotelID: f.hotel.ID, RoomProductID: f.room.ID, Date: dt("2024-09-05"), Count: 0},
	}); err != nil {
		t.Fatalf("SetAvailability: %v", err)
	}

	z, err := f.engine.SellabilityCalendar(ctx, stay.CalendarRequest{
		HotelID: f.hotel.ID,
		From:    dt("2024-09-01"),
		To:      dt("2024-09-06"),
	})
	if err != nil {
		t.Fatalf("SellabilityCalendar: %v", err)
	}

	if len(z.Series) != 1 {
		t.Fatalf("got %d series, want 1", len(z.Series))
	}
	// [1,1,1,0,0,1] compresses to three runs.
	if got := len(z.Series[0].Timeline); got != 3 {
		t.Errorf("got %d runs, want 3: %v", got, z.Series[0].Timeline)
	}

	cells, err := z.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(cells) != 6 {
		t.Fatalf("decoded %d cells, want 6", len(cells))
	}
	for i, want := range []bool{true, true, true, false, false, true} {
		if cells[i].Sellable != want {
			t.Errorf("cell %d sellable = %v, want %v", i, cells[i].Sellable, want)
		}
	}
}

// With the whole first window closed, the search skips to the first
// open date.
func TestNearestBookableDate(t *testing.T) {
	f := newTestHotel(t)
	f.restrict(t, &restriction.Restriction{
		Type:     restriction.ClosedToStay,
		FromDate: dt("2024-09-01"),
		ToDate:   dt("2024-09-14"),
	})

	got, err := f.engine.NearestBookableDate(context.Background(), stay.NearestRequest{
		HotelID:   f.hotel.ID,
		StartDate: dt("2024-09-01"),
	})
	if err != nil {
		t.Fatalf("NearestBookableDate: %v", err)
	}
	if got == nil {
		t.Fatal("expected a nearest stay")
	}
	// Default stay length is 2 nights. A 09-14 check-in still has a
	// closed first night, so 09-15 is the first open check-in.
	if !got.CheckIn.Equal(dt("2024-09-15")) {
		t.Errorf("check-in = %s, want 2024-09-15", got.CheckIn)
	}
	if got.StayNights != 2 || !got.CheckOut.Equal(dt("2024-09-17")) {
		t.Errorf("got %+v, want 2 nights to 2024-09-17", got)
	}
}

// Nothing bookable within the cap returns nil, nil.
func TestNearestBookableDateNoResult(t *testing.T) {
	f := newTestHotel(t)
	f.restrict(t, &restriction.Restriction{
		Type:     restriction.ClosedToStay,
		FromDate: dt("2024-01-01"),
		ToDate:   dt("2027-12-31"),
	})

	got, err := f.engine.NearestBookableDate(context.Background(), stay.NearestRequest{
		HotelID:   f.hotel.ID,
		StartDate: dt("2024-09-01"),
	})
	if err != nil {
		t.Fatalf("NearestBookableDate: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil result, got %+v", got)
	}
}
