package stay

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/xraph/stay/calendar"
	"github.com/xraph/stay/hotel"
	"github.com/xraph/stay/id"
	"github.com/xraph/stay/rateplan"
	"github.com/xraph/stay/restriction"
	"github.com/xraph/stay/sellability"
	"github.com/xraph/stay/types"
)

// maxCalendarDays bounds a single calendar query.
const maxCalendarDays = 400

// CalendarRequest asks for the per-day lowest rate over a date range.
type CalendarRequest struct {
	HotelID id.HotelID       `json:"hotel_id"`
	From    types.Date       `json:"from"`
	To      types.Date       `json:"to"`
	Channel rateplan.Channel `json:"channel"`
}

// DayRate is one calendar cell: the cheapest sellable pair on the
// date, or the reason there is none. Prices are nil on non-bookable
// days.
type DayRate struct {
	Date           types.Date         `json:"date"`
	RoomProductID  id.RoomProductID   `json:"room_product_id,omitempty"`
	RatePlanID     id.RatePlanID      `json:"rate_plan_id,omitempty"`
	Net            *types.Money       `json:"net_price,omitempty"`
	Gross          *types.Money       `json:"gross_price,omitempty"`
	Status         sellability.Status `json:"status"`
	AvailableRooms int                `json:"available_rooms"`

	// Restrictions are the violations that blocked the date, set when
	// Status reports a restriction block.
	Restrictions []restriction.Violation `json:"restrictions,omitempty"`

	// NextBookableDate is the next bookable day inside the queried
	// range, set on non-bookable days. Nil when the rest of the range
	// has nothing bookable.
	NextBookableDate *types.Date `json:"next_bookable_date,omitempty"`
}

func (r *CalendarRequest) validate() error {
	if r.HotelID.IsNil() {
		return ValidationError{Field: "hotel_id", Message: "required"}
	}
	if r.To.Before(r.From) {
		return ErrInvertedDateRange
	}
	if r.From.DaysUntil(r.To) >= maxCalendarDays {
		return ErrRangeTooLarge
	}
	return nil
}

func (r *CalendarRequest) channel() rateplan.Channel {
	if r.Channel == "" {
		return rateplan.ChannelWebsite
	}
	return r.Channel
}

// Calendar computes the per-day lowest sellable rate over [From, To].
// The range is split into bounded chunks; chunks are independent and
// evaluated in parallel, and their rows concatenated in date order.
func (e *Engine) Calendar(ctx context.Context, req CalendarRequest) ([]DayRate, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	h, err := e.GetHotel(ctx, req.HotelID)
	if err != nil {
		return nil, err
	}

	type chunk struct {
		from, to types.Date
	}
	var chunks []chunk
	for from := req.From; !from.After(req.To); from = from.AddDays(e.chunkSize) {
		to := from.AddDays(e.chunkSize - 1)
		if to.After(req.To) {
			to = req.To
		}
		chunks = append(chunks, chunk{from: from, to: to})
	}

	results := make([][]DayRate, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range chunks {
		g.Go(func() error {
			rows, cerr := e.calendarChunk(gctx, h, req.channel(), c.from, c.to)
			if cerr != nil {
				return cerr
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var rows []DayRate
	for _, r := range results {
		rows = append(rows, r...)
	}
	fillNextBookable(rows)
	return rows, nil
}

func (e *Engine) calendarChunk(ctx context.Context, h *hotel.Hotel, channel rateplan.Channel, from, to types.Date) ([]DayRate, error) {
	snap, err := e.fetchSnapshot(ctx, h, channel, from, to)
	if err != nil {
		return nil, err
	}

	today := e.clock()
	cells := make(map[types.Date]*dayCell, from.DaysUntil(to)+1)
	for d := from; !d.After(to); d = d.AddDays(1) {
		cells[d] = combineDay(snap, d, today)
	}

	// Restriction-closed pairs never compete for the day's rate.
	lowest := e.pricer.LowestPerDay(snap.prices, from, to, func(d types.Date, roomID id.RoomProductID, planID id.RatePlanID) bool {
		return cells[d].pairOpen(roomID, planID) && snap.eval.SellableOn(d, roomID, planID)
	})

	var rows []DayRate
	for d := from; !d.After(to); d = d.AddDays(1) {
		row := DayRate{Date: d}
		cell := cells[d]

		// Total unsold units across room products, before pair deltas.
		for _, count := range snap.sell.Availability[d] {
			row.AvailableRooms += count
		}

		best, priced := lowest[d]
		switch {
		case cell.closed:
			row.Status = sellability.StatusRestricted
			row.Restrictions = cell.violations
		case priced:
			net, gross := best.Net, best.Gross
			row.RoomProductID = best.RoomProductID
			row.RatePlanID = best.RatePlanID
			row.Net = &net
			row.Gross = &gross
			row.Status = sellability.StatusBookable
		case !cell.anyOpen() && len(cell.violations) > 0:
			row.Status = sellability.StatusRestricted
			row.Restrictions = cell.violations
		case row.AvailableRooms == 0:
			row.Status = sellability.StatusSoldOut
		case !cell.anyOpen() && cell.losBlocked:
			row.Status = sellability.StatusMinLOSViolation
		default:
			row.Status = sellability.StatusNotSellable
		}

		if len(row.Restrictions) > 0 {
			e.plugins.EmitDateBlocked(ctx, h.ID.String(), d.String(), row.Restrictions)
		}

		rows = append(rows, row)
	}
	return rows, nil
}

// dayCell is the effective restriction state of one calendar date,
// combined across the house, room-product and rate-plan levels before
// the day's rate is picked.
type dayCell struct {
	closed     bool
	losBlocked bool
	violations []restriction.Violation
	open       map[id.RoomProductID]map[id.RatePlanID]bool
}

func (c *dayCell) pairOpen(roomID id.RoomProductID, planID id.RatePlanID) bool {
	return !c.closed && c.open[roomID][planID]
}

func (c *dayCell) anyOpen() bool {
	for _, plans := range c.open {
		if len(plans) > 0 {
			return true
		}
	}
	return false
}

// combineDay folds every restriction level applying on the date. A
// house closure or failed house advance window closes the whole date.
// Otherwise each (room, plan) pair stays open only when its combined
// room and plan groups admit the booking lead time and at least one
// stay length.
func combineDay(snap *snapshot, d, today types.Date) *dayCell {
	cell := &dayCell{}
	advance := today.DaysUntil(d)

	house := restriction.CombineGroup(snap.index.HouseOn(d))
	if house.ClosedToArrival || house.ClosedToStay {
		cell.closed = true
		cell.violations = house.ClosureViolations()
		return cell
	}
	if !house.AllowsAdvance(advance) {
		cell.closed = true
		cell.violations = house.AdvanceViolations(advance)
		return cell
	}

	cell.open = make(map[id.RoomProductID]map[id.RatePlanID]bool, len(snap.rooms))
	for _, room := range snap.rooms {
		roomGroup := restriction.CombineGroup(snap.index.ForRoomProduct(d, room.ID))
		if roomGroup.ClosedToArrival || roomGroup.ClosedToStay {
			cell.violations = append(cell.violations, roomGroup.ClosureViolations()...)
			continue
		}

		planGroups := make(map[id.RatePlanID]restriction.Combined, len(snap.sell.Pairs[room.ID]))
		for _, pair := range snap.sell.Pairs[room.ID] {
			planGroup := restriction.CombineGroup(snap.index.ForRatePlan(d, pair.RatePlanID))
			if planGroup.ClosedToArrival || planGroup.ClosedToStay {
				cell.violations = append(cell.violations, planGroup.ClosureViolations()...)
				continue
			}
			planGroups[pair.RatePlanID] = planGroup
		}

		pc := restriction.CombinePairGroup(roomGroup, planGroups, advance)
		switch {
		case pc.Feasible:
			plans := make(map[id.RatePlanID]bool, len(pc.SellablePlans))
			for _, planID := range pc.SellablePlans {
				plans[planID] = true
			}
			cell.open[room.ID] = plans
		case len(planGroups) == 0:
			// Every plan closed above, or the room sells no plans at
			// all; violations already collected in the former case.
		case len(pc.SellablePlans) == 0:
			// Every surviving plan fails its advance window.
			if vs := roomGroup.AdvanceViolations(advance); len(vs) > 0 {
				cell.violations = append(cell.violations, vs...)
			}
			for _, g := range planGroups {
				cell.violations = append(cell.violations, g.AdvanceViolations(advance)...)
			}
		default:
			// Plans survived the advance filter but no stay length fits.
			cell.losBlocked = true
		}
	}
	return cell
}

// fillNextBookable annotates non-bookable rows with the next bookable
// date in the range, scanning backward so each row is visited once.
func fillNextBookable(rows []DayRate) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })

	var next *types.Date
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].Status == sellability.StatusBookable {
			d := rows[i].Date
			next = &d
			continue
		}
		rows[i].NextBookableDate = next
	}
}

// SellabilityCalendar encodes the full per-date, per-pair sellability
// matrix of the range into the compressed calendar shape.
func (e *Engine) SellabilityCalendar(ctx context.Context, req CalendarRequest) (*calendar.Zip, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	h, err := e.GetHotel(ctx, req.HotelID)
	if err != nil {
		return nil, err
	}

	snap, err := e.fetchSnapshot(ctx, h, req.channel(), req.From, req.To)
	if err != nil {
		return nil, err
	}

	var cells []calendar.Cell
	for _, room := range snap.rooms {
		for _, pair := range snap.sell.Pairs[room.ID] {
			for d := req.From; !d.After(req.To); d = d.AddDays(1) {
				cells = append(cells, calendar.Cell{
					Date:          d,
					RoomProductID: room.ID,
					RatePlanID:    pair.RatePlanID,
					Sellable:      snap.eval.SellableOn(d, room.ID, pair.RatePlanID),
				})
			}
		}
	}

	z := calendar.Encode(req.From, cells)
	e.plugins.EmitCalendarEncoded(ctx, h.ID.String(), req.From.DaysUntil(req.To)+1, len(z.Series))
	return z, nil
}
