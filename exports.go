package stay

import (
	"github.com/xraph/stay/id"
	"github.com/xraph/stay/sellability"
	"github.com/xraph/stay/types"
)

// Re-export commonly used types so most callers only import the root
// package.

type (
	// Money is a currency amount in minor units.
	Money = types.Money
	// Date is a calendar date without a time zone.
	Date = types.Date
	// GuestMix is a requested party of adults, children and pets.
	GuestMix = types.GuestMix

	// HotelID identifies a hotel.
	HotelID = id.HotelID
	// RoomProductID identifies a room product.
	RoomProductID = id.RoomProductID
	// RatePlanID identifies a rate plan.
	RatePlanID = id.RatePlanID

	// Status is the bookability outcome for one pair.
	Status = sellability.Status
)

const (
	StatusBookable        = sellability.StatusBookable
	StatusSoldOut         = sellability.StatusSoldOut
	StatusNotSellable     = sellability.StatusNotSellable
	StatusMinLOSViolation = sellability.StatusMinLOSViolation
	StatusRestricted      = sellability.StatusRestricted
)
