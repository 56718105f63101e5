package stay

import (
	"context"

	"github.com/xraph/stay/id"
	"github.com/xraph/stay/rateplan"
	"github.com/xraph/stay/roomproduct"
	"github.com/xraph/stay/sellability"
	"github.com/xraph/stay/types"
)

// NearestRequest asks for the first bookable check-in at or after a
// starting date. Zero StayNights and Guests fall back to the hotel's
// configured defaults.
type NearestRequest struct {
	HotelID    id.HotelID       `json:"hotel_id"`
	StartDate  types.Date       `json:"start_date"`
	StayNights int              `json:"stay_nights,omitempty"`
	Guests     types.GuestMix   `json:"guests,omitempty"`
	Channel    rateplan.Channel `json:"channel,omitempty"`
}

// NearestStay is the first bookable stay found by the search.
type NearestStay struct {
	CheckIn    types.Date `json:"check_in"`
	CheckOut   types.Date `json:"check_out"`
	StayNights int        `json:"stay_nights"`
}

// NearestBookableDate probes forward day by day from StartDate for the
// first check-in where at least one capacity-compatible pair is
// bookable for the whole candidate stay. The initial probe covers the
// configured horizon; when that turns up nothing the search retries in
// fixed-size windows up to a hard cap. A nil, nil return means nothing
// bookable was found within the cap — it is a result, not an error.
func (e *Engine) NearestBookableDate(ctx context.Context, req NearestRequest) (*NearestStay, error) {
	if req.HotelID.IsNil() {
		return nil, ValidationError{Field: "hotel_id", Message: "required"}
	}

	h, err := e.GetHotel(ctx, req.HotelID)
	if err != nil {
		return nil, err
	}

	nights := req.StayNights
	if nights <= 0 {
		nights = h.DefaultStayNights
	}
	if nights <= 0 {
		nights = 1
	}
	guests := req.Guests
	if guests.IsZero() {
		guests = types.GuestMix{Adults: h.DefaultAdults}
	}
	if guests.IsZero() {
		guests = types.GuestMix{Adults: 2}
	}
	channel := req.Channel
	if channel == "" {
		channel = rateplan.ChannelWebsite
	}
	start := req.StartDate
	if start.IsZero() {
		start = e.clock()
	}

	today := e.clock()
	probed := 0

	windowFrom := start
	windowDays := e.searchHorizon
	for probed < e.searchCap {
		if remaining := e.searchCap - probed; windowDays > remaining {
			windowDays = remaining
		}
		windowTo := windowFrom.AddDays(windowDays - 1)

		// The snapshot covers every night of a stay starting on the
		// window's last day, plus its departure date.
		snap, serr := e.fetchSnapshot(ctx, h, channel, windowFrom, windowTo.AddDays(nights))
		if serr != nil {
			return nil, serr
		}

		// Rooms the guests cannot fit never become bookable; filter
		// them once per window.
		var rooms []*roomproduct.RoomProduct
		for _, room := range snap.rooms {
			if _, ok := roomproduct.Allocate(room.Capacity, guests); ok {
				rooms = append(rooms, room)
			}
		}

		for d := windowFrom; !d.After(windowTo); d = d.AddDays(1) {
			probed++
			for _, room := range rooms {
				for _, pair := range snap.sell.Pairs[room.ID] {
					sr := snap.eval.EvaluateStay(d, nights, today, room.ID, pair.RatePlanID)
					if sr.Status != sellability.StatusBookable {
						continue
					}
					e.plugins.EmitNearestSearched(ctx, h.ID.String(), probed, true)
					return &NearestStay{
						CheckIn:    d,
						CheckOut:   d.AddDays(nights),
						StayNights: nights,
					}, nil
				}
			}
		}

		windowFrom = windowTo.AddDays(1)
		windowDays = e.searchWindow
	}

	e.plugins.EmitNearestSearched(ctx, h.ID.String(), probed, false)
	e.logger.Info("nearest bookable date not found",
		"hotel", h.ID,
		"start", start,
		"probed", probed,
	)
	return nil, nil
}
