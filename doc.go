// Package stay is a composable hotel stay bookability and pricing
// resolution engine.
//
// Given a hotel, a date range, and a guest composition, the engine
// decides per calendar date and per (room product, rate plan) pair
// whether a stay can be sold, under what restriction, at what price,
// and how to encode that decision compactly for a UI calendar.
//
// # Basic usage
//
//	st := memory.New()
//	engine := stay.New(st)
//	if err := engine.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer engine.Stop()
//
//	result, err := engine.CheckStay(ctx, stay.StayRequest{
//		HotelID:    hotelID,
//		CheckIn:    types.MustParseDate("2024-09-01"),
//		StayNights: 3,
//		Guests:     types.GuestMix{Adults: 2},
//	})
//
// # Components
//
//   - restriction: closures, exception bounds, the per-request date
//     index and the group combiners
//   - sellability: the per-date, per-pair evaluator
//   - roomproduct: room inventory, rate-plan pairings and the guest
//     capacity allocator
//   - rateplan: channel sellability defaults, daily overrides and
//     derived (master-following) plans
//   - pricing: stay quotes and the per-day lowest rate
//   - calendar: the run-length-encoded sellability calendar codec
//   - store: unified storage with memory, Postgres, SQLite and
//     MongoDB backends
//
// The engine performs no payment processing, reservation creation, or
// channel-manager synchronization; those belong to the surrounding
// application.
package stay
