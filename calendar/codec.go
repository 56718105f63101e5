// Package calendar implements the run-length-encoded sellability
// calendar shape exchanged with UIs: a day-offset matrix of sellable
// flags per (room product, rate plan) pair, compressed into runs.
package calendar

import (
	"fmt"

	"github.com/xraph/stay/id"
	"github.com/xraph/stay/types"
)

// Run is one RLE segment: [fromOffset, toOffset, 0|1]. Offsets are
// day indices relative to the zip's base date, inclusive on both ends.
type Run [3]int

// Series is the timeline of one (room product, rate plan) pair,
// addressed by indices into the zip's dictionary.
type Series struct {
	RoomProduct int   `json:"rp"`
	RatePlan    int   `json:"plan"`
	Timeline    []Run `json:"timeline"`
}

// Dict maps the series' integer indices back to entity ids. Indices
// are assigned in first-seen order and are stable for a given input.
type Dict struct {
	RoomProducts []id.RoomProductID `json:"roomProducts"`
	RatePlans    []id.RatePlanID    `json:"ratePlans"`
}

// Zip is the compressed sellability calendar.
type Zip struct {
	BaseDate types.Date `json:"baseDate"`
	Dict     Dict       `json:"dict"`
	Series   []Series   `json:"series"`
}

// Cell is one decoded or to-be-encoded matrix entry.
type Cell struct {
	Date          types.Date
	RoomProductID id.RoomProductID
	RatePlanID    id.RatePlanID
	Sellable      bool
}

type pairKey struct {
	rp   int
	plan int
}

// Encode compresses a day-ordered cell list into RLE series. Cells
// must be ordered by date within each (room product, rate plan) pair;
// contiguous equal values extend the previous run, anything else
// starts a new one.
func Encode(baseDate types.Date, cells []Cell) *Zip {
	z := &Zip{BaseDate: baseDate}

	rpIndex := make(map[id.RoomProductID]int)
	planIndex := make(map[id.RatePlanID]int)
	seriesIndex := make(map[pairKey]int)

	for _, c := range cells {
		rp, ok := rpIndex[c.RoomProductID]
		if !ok {
			rp = len(z.Dict.RoomProducts)
			rpIndex[c.RoomProductID] = rp
			z.Dict.RoomProducts = append(z.Dict.RoomProducts, c.RoomProductID)
		}
		plan, ok := planIndex[c.RatePlanID]
		if !ok {
			plan = len(z.Dict.RatePlans)
			planIndex[c.RatePlanID] = plan
			z.Dict.RatePlans = append(z.Dict.RatePlans, c.RatePlanID)
		}

		key := pairKey{rp: rp, plan: plan}
		si, ok := seriesIndex[key]
		if !ok {
			si = len(z.Series)
			seriesIndex[key] = si
			z.Series = append(z.Series, Series{RoomProduct: rp, RatePlan: plan})
		}

		offset := baseDate.DaysUntil(c.Date)
		value := 0
		if c.Sellable {
			value = 1
		}

		timeline := z.Series[si].Timeline
		if n := len(timeline); n > 0 {
			last := &z.Series[si].Timeline[n-1]
			if last[2] == value && last[1]+1 == offset {
				last[1] = offset
				continue
			}
		}
		z.Series[si].Timeline = append(timeline, Run{offset, offset, value})
	}

	return z
}

// Decode expands every run back into per-date cells, mapping offsets
// to BaseDate + offset. Runs must be contiguous and non-overlapping
// per series; a malformed run is an error.
func (z *Zip) Decode() ([]Cell, error) {
	var out []Cell

	for _, s := range z.Series {
		if s.RoomProduct < 0 || s.RoomProduct >= len(z.Dict.RoomProducts) {
			return nil, fmt.Errorf("calendar: series references unknown room product index %d", s.RoomProduct)
		}
		if s.RatePlan < 0 || s.RatePlan >= len(z.Dict.RatePlans) {
			return nil, fmt.Errorf("calendar: series references unknown rate plan index %d", s.RatePlan)
		}
		rpID := z.Dict.RoomProducts[s.RoomProduct]
		planID := z.Dict.RatePlans[s.RatePlan]

		prevEnd := -1
		for _, run := range s.Timeline {
			if run[0] > run[1] {
				return nil, fmt.Errorf("calendar: inverted run [%d,%d]", run[0], run[1])
			}
			if run[0] <= prevEnd {
				return nil, fmt.Errorf("calendar: overlapping run starting at offset %d", run[0])
			}
			if run[2] != 0 && run[2] != 1 {
				return nil, fmt.Errorf("calendar: run value %d out of range", run[2])
			}
			prevEnd = run[1]

			for offset := run[0]; offset <= run[1]; offset++ {
				out = append(out, Cell{
					Date:          z.BaseDate.AddDays(offset),
					RoomProductID: rpID,
					RatePlanID:    planID,
					Sellable:      run[2] == 1,
				})
			}
		}
	}
	return out, nil
}
