package stay

import (
	"context"
	"sort"

	"github.com/xraph/stay/id"
	"github.com/xraph/stay/pricing"
	"github.com/xraph/stay/rateplan"
	"github.com/xraph/stay/restriction"
	"github.com/xraph/stay/roomproduct"
	"github.com/xraph/stay/sellability"
	"github.com/xraph/stay/types"
)

// StayRequest asks whether, and at what price, a concrete stay can be
// sold.
type StayRequest struct {
	HotelID    id.HotelID       `json:"hotel_id"`
	CheckIn    types.Date       `json:"check_in"`
	StayNights int              `json:"stay_nights"`
	Guests     types.GuestMix   `json:"guests"`
	Channel    rateplan.Channel `json:"channel"`

	// IncludeCityTax adds city tax for tax-inclusive display.
	IncludeCityTax bool `json:"include_city_tax"`
}

// StayOption is one sellable or rejected (room product, rate plan)
// pair for a requested stay.
type StayOption struct {
	RoomProductID  id.RoomProductID        `json:"room_product_id"`
	RatePlanID     id.RatePlanID           `json:"rate_plan_id"`
	Status         sellability.Status      `json:"status"`
	Allocation     roomproduct.Allocation  `json:"allocation"`
	Quote          *pricing.Quote          `json:"quote,omitempty"`
	AvailableRooms int                     `json:"available_rooms"`
	Violations     []restriction.Violation `json:"violations,omitempty"`
}

// StayResult is the full evaluation of a stay request. Options are
// sorted bookable-first, then by gross price ascending.
type StayResult struct {
	CheckIn    types.Date   `json:"check_in"`
	CheckOut   types.Date   `json:"check_out"`
	StayNights int          `json:"stay_nights"`
	Options    []StayOption `json:"options"`
	Bookable   bool         `json:"bookable"`
}

func (r *StayRequest) validate() error {
	if r.HotelID.IsNil() {
		return ValidationError{Field: "hotel_id", Message: "required"}
	}
	if r.CheckIn.IsZero() {
		return ValidationError{Field: "check_in", Message: "required"}
	}
	if r.StayNights <= 0 {
		return ErrInvertedDateRange
	}
	if r.Guests.IsZero() {
		return ErrMissingGuests
	}
	return nil
}

func (r *StayRequest) channel() rateplan.Channel {
	if r.Channel == "" {
		return rateplan.ChannelWebsite
	}
	return r.Channel
}

// CheckStay evaluates every (room product, rate plan) pair of the
// hotel against the requested stay: capacity, availability,
// sellability, restrictions, and price. Rooms the guests cannot fit
// are excluded; pairs that fail evaluation are reported with their
// status so callers can explain the rejection.
func (e *Engine) CheckStay(ctx context.Context, req StayRequest) (*StayResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	h, err := e.GetHotel(ctx, req.HotelID)
	if err != nil {
		return nil, err
	}

	today := e.clock()
	checkOut := req.CheckIn.AddDays(req.StayNights)

	// The departure date carries closed-to-departure restrictions, so
	// the snapshot window extends one day past the last night.
	snap, err := e.fetchSnapshot(ctx, h, req.channel(), req.CheckIn, checkOut)
	if err != nil {
		return nil, err
	}

	result := &StayResult{
		CheckIn:    req.CheckIn,
		CheckOut:   checkOut,
		StayNights: req.StayNights,
	}

	for _, room := range snap.rooms {
		alloc, ok := roomproduct.Allocate(room.Capacity, req.Guests)
		if !ok {
			continue
		}

		for _, pair := range snap.sell.Pairs[room.ID] {
			opt := StayOption{
				RoomProductID:  room.ID,
				RatePlanID:     pair.RatePlanID,
				Allocation:     alloc,
				AvailableRooms: snap.eval.AvailableRooms(req.CheckIn, room.ID, pair.RatePlanID),
			}

			sr := snap.eval.EvaluateStay(req.CheckIn, req.StayNights, today, room.ID, pair.RatePlanID)
			opt.Status = sr.Status
			opt.Violations = sr.Violations

			if sr.Status == sellability.StatusBookable {
				quote, qerr := e.quotePair(snap, req, room.ID, pair.RatePlanID)
				if qerr != nil {
					// An unpriced night means the pair cannot actually
					// be sold, not that the request failed.
					opt.Status = sellability.StatusNotSellable
				} else {
					opt.Quote = quote
				}
			}

			if len(sr.Violations) > 0 {
				e.plugins.EmitDateBlocked(ctx, h.ID.String(), req.CheckIn.String(), sr.Violations)
			}

			result.Options = append(result.Options, opt)
		}
	}

	sortOptions(result.Options)
	for _, opt := range result.Options {
		if opt.Status == sellability.StatusBookable {
			result.Bookable = true
			break
		}
	}

	e.plugins.EmitStayChecked(ctx, req, result)
	return result, nil
}

func (e *Engine) quotePair(snap *snapshot, req StayRequest, roomID id.RoomProductID, planID id.RatePlanID) (*pricing.Quote, error) {
	amenityPlan := planID
	if eff, ok := snap.sell.Plans[planID]; ok {
		amenityPlan = eff.AmenityPlanID
	}

	return e.pricer.QuoteStay(pricing.StayInput{
		Hotel:          snap.hotel,
		RoomProductID:  roomID,
		RatePlanID:     planID,
		AmenityPlanID:  amenityPlan,
		CheckIn:        req.CheckIn,
		StayNights:     req.StayNights,
		Guests:         req.Guests,
		Prices:         snap.prices,
		Amenities:      snap.amenities,
		Inclusions:     snap.inclusions,
		IncludeCityTax: req.IncludeCityTax,
	})
}

// sortOptions orders bookable options first, cheapest gross first
// within them; non-bookable options keep a stable room/plan order.
func sortOptions(opts []StayOption) {
	sort.SliceStable(opts, func(i, j int) bool {
		bi, bj := opts[i].Status == sellability.StatusBookable, opts[j].Status == sellability.StatusBookable
		if bi != bj {
			return bi
		}
		if bi && opts[i].Quote != nil && opts[j].Quote != nil {
			return opts[i].Quote.Gross.LessThan(opts[j].Quote.Gross)
		}
		return false
	})
}

// RecommendRooms asks registered recommender plugins to rank the
// hotel's room products for a stay request. With no recommender, the
// bookable options of CheckStay are returned in price order.
func (e *Engine) RecommendRooms(ctx context.Context, req StayRequest) ([]id.RoomProductID, error) {
	result, err := e.CheckStay(ctx, req)
	if err != nil {
		return nil, err
	}

	var bookable []id.RoomProductID
	seen := make(map[id.RoomProductID]bool)
	for _, opt := range result.Options {
		if opt.Status != sellability.StatusBookable || seen[opt.RoomProductID] {
			continue
		}
		seen[opt.RoomProductID] = true
		bookable = append(bookable, opt.RoomProductID)
	}

	for _, rec := range e.plugins.GetRecommenders() {
		ranked, rerr := rec.Recommend(ctx, result)
		if rerr != nil {
			e.logger.Warn("recommender failed",
				"plugin", rec.Name(),
				"error", rerr,
			)
			continue
		}
		if ordered := applyRanking(bookable, ranked); len(ordered) > 0 {
			return ordered, nil
		}
	}

	return bookable, nil
}

// applyRanking reorders candidates per an external ranking of string
// ids, keeping unranked candidates at the tail. Unknown ids in the
// ranking are ignored.
func applyRanking(candidates []id.RoomProductID, ranked []string) []id.RoomProductID {
	byString := make(map[string]id.RoomProductID, len(candidates))
	for _, c := range candidates {
		byString[c.String()] = c
	}

	out := make([]id.RoomProductID, 0, len(candidates))
	taken := make(map[id.RoomProductID]bool)
	for _, s := range ranked {
		if c, ok := byString[s]; ok && !taken[c] {
			out = append(out, c)
			taken[c] = true
		}
	}
	for _, c := range candidates {
		if !taken[c] {
			out = append(out, c)
		}
	}
	return out
}
