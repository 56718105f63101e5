package stay

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/xraph/stay/amenity"
	"github.com/xraph/stay/availability"
	"github.com/xraph/stay/hotel"
	"github.com/xraph/stay/id"
	"github.com/xraph/stay/plugin"
	"github.com/xraph/stay/pricing"
	"github.com/xraph/stay/rateplan"
	"github.com/xraph/stay/restriction"
	"github.com/xraph/stay/roomproduct"
	"github.com/xraph/stay/sellability"
	"github.com/xraph/stay/store"
	"github.com/xraph/stay/types"
)

// Engine is the stay bookability and pricing resolution engine.
type Engine struct {
	store   store.Store
	plugins *plugin.Registry
	logger  *slog.Logger
	pricer  *pricing.Aggregator

	// Configuration
	chunkSize     int
	searchHorizon int
	searchWindow  int
	searchCap     int
	hotelCacheTTL time.Duration
	clock         func() types.Date
}

// New creates a new Engine instance.
func New(s store.Store, opts ...Option) *Engine {
	e := &Engine{
		store:         s,
		plugins:       plugin.NewRegistry(),
		logger:        slog.Default(),
		pricer:        pricing.NewAggregator(),
		chunkSize:     62,
		searchHorizon: 365,
		searchWindow:  180,
		searchCap:     730,
		hotelCacheTTL: 60 * time.Second,
		clock:         types.Today,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Option configures an Engine instance.
type Option func(*Engine)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
		e.plugins.WithLogger(logger)
	}
}

// WithPlugin registers a plugin.
func WithPlugin(p plugin.Plugin) Option {
	return func(e *Engine) {
		_ = e.plugins.Register(p) //nolint:errcheck // best-effort plugin registration during init
	}
}

// WithChunkSize bounds the number of calendar days evaluated per chunk.
func WithChunkSize(days int) Option {
	return func(e *Engine) {
		if days > 0 {
			e.chunkSize = days
		}
	}
}

// WithSearchHorizon configures the nearest-bookable-date search: the
// initial probe horizon, the retry window size, and the hard cap, all
// in days from the starting date.
func WithSearchHorizon(horizon, window, cap int) Option {
	return func(e *Engine) {
		if horizon > 0 {
			e.searchHorizon = horizon
		}
		if window > 0 {
			e.searchWindow = window
		}
		if cap > 0 {
			e.searchCap = cap
		}
	}
}

// WithHotelCacheTTL sets how long hotel records stay cached.
func WithHotelCacheTTL(ttl time.Duration) Option {
	return func(e *Engine) {
		e.hotelCacheTTL = ttl
	}
}

// WithClock overrides the engine's notion of today, for tests and
// replay tooling.
func WithClock(clock func() types.Date) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// Start migrates the store and initializes plugins.
func (e *Engine) Start(ctx context.Context) error {
	if err := e.store.Migrate(ctx); err != nil {
		return err
	}

	e.plugins.EmitInit(ctx, e)

	e.logger.Info("stay engine started",
		"chunk_size", e.chunkSize,
		"search_horizon", e.searchHorizon,
		"hotel_cache_ttl", e.hotelCacheTTL,
	)
	return nil
}

// Stop shuts down the Engine.
func (e *Engine) Stop() error {
	e.plugins.EmitShutdown(context.Background())
	return e.store.Close()
}

// Plugins exposes the registry for capability lookups.
func (e *Engine) Plugins() *plugin.Registry {
	return e.plugins
}

// ──────────────────────────────────────────────────
// Hotel management
// ──────────────────────────────────────────────────

// CreateHotel creates a hotel.
func (e *Engine) CreateHotel(ctx context.Context, h *hotel.Hotel) error {
	if h.ID == (id.HotelID{}) {
		h.ID = id.NewHotelID()
	}
	h.Entity = types.NewEntity()

	return e.store.CreateHotel(ctx, h)
}

// GetHotel retrieves a hotel by ID, read through the cache. A cache
// failure falls back to the store; it never surfaces to the caller.
func (e *Engine) GetHotel(ctx context.Context, hotelID id.HotelID) (*hotel.Hotel, error) {
	if h, err := e.store.GetCachedHotel(ctx, hotelID); err == nil {
		return h, nil
	}

	h, err := e.store.GetHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	_ = e.store.SetCachedHotel(ctx, h, e.hotelCacheTTL) //nolint:errcheck // best-effort cache fill
	return h, nil
}

// GetHotelBySlug retrieves a hotel by slug.
func (e *Engine) GetHotelBySlug(ctx context.Context, slug string) (*hotel.Hotel, error) {
	return e.store.GetHotelBySlug(ctx, slug)
}

// UpdateHotel updates a hotel and invalidates its cache entry.
func (e *Engine) UpdateHotel(ctx context.Context, h *hotel.Hotel) error {
	h.Touch()
	if err := e.store.UpdateHotel(ctx, h); err != nil {
		return err
	}

	_ = e.store.InvalidateHotel(ctx, h.ID) //nolint:errcheck // best-effort cache invalidation
	return nil
}

// ──────────────────────────────────────────────────
// Inventory management
// ──────────────────────────────────────────────────

// CreateRoomProduct creates a room product.
func (e *Engine) CreateRoomProduct(ctx context.Context, rp *roomproduct.RoomProduct) error {
	if rp.ID == (id.RoomProductID{}) {
		rp.ID = id.NewRoomProductID()
	}
	rp.Entity = types.NewEntity()
	return e.store.CreateRoomProduct(ctx, rp)
}

// GetRoomProduct retrieves a room product by ID.
func (e *Engine) GetRoomProduct(ctx context.Context, roomProductID id.RoomProductID) (*roomproduct.RoomProduct, error) {
	return e.store.GetRoomProduct(ctx, roomProductID)
}

// CreateRatePlan creates a rate plan.
func (e *Engine) CreateRatePlan(ctx context.Context, p *rateplan.RatePlan) error {
	if p.ID == (id.RatePlanID{}) {
		p.ID = id.NewRatePlanID()
	}
	p.Entity = types.NewEntity()
	return e.store.CreateRatePlan(ctx, p)
}

// GetRatePlan retrieves a rate plan by ID.
func (e *Engine) GetRatePlan(ctx context.Context, ratePlanID id.RatePlanID) (*rateplan.RatePlan, error) {
	return e.store.GetRatePlan(ctx, ratePlanID)
}

// CreatePair links a room product to a rate plan.
func (e *Engine) CreatePair(ctx context.Context, p *roomproduct.Pair) error {
	if p.ID == (id.PairID{}) {
		p.ID = id.NewPairID()
	}
	p.Entity = types.NewEntity()
	return e.store.CreatePair(ctx, p)
}

// CreateRestriction creates a booking restriction.
func (e *Engine) CreateRestriction(ctx context.Context, r *restriction.Restriction) error {
	if r.ID == (id.RestrictionID{}) {
		r.ID = id.NewRestrictionID()
	}
	r.Entity = types.NewEntity()
	return e.store.CreateRestriction(ctx, r)
}

// CreateAmenity creates an amenity.
func (e *Engine) CreateAmenity(ctx context.Context, a *amenity.Amenity) error {
	if a.ID == (id.AmenityID{}) {
		a.ID = id.NewAmenityID()
	}
	a.Entity = types.NewEntity()
	return e.store.CreateAmenity(ctx, a)
}

// IncludeAmenity scopes an amenity to a rate plan or room product.
func (e *Engine) IncludeAmenity(ctx context.Context, in *amenity.Inclusion) error {
	in.Entity = types.NewEntity()
	return e.store.CreateInclusion(ctx, in)
}

// SetAvailability upserts availability rows.
func (e *Engine) SetAvailability(ctx context.Context, rows []*availability.Availability) error {
	for _, row := range rows {
		row.Entity = types.NewEntity()
	}
	return e.store.UpsertAvailability(ctx, rows)
}

// SetPrices upserts daily price rows.
func (e *Engine) SetPrices(ctx context.Context, rows []*availability.DailyPrice) error {
	for _, row := range rows {
		row.Entity = types.NewEntity()
	}
	return e.store.UpsertPrices(ctx, rows)
}

// ──────────────────────────────────────────────────
// Snapshot fetch
// ──────────────────────────────────────────────────

// snapshot bundles everything one evaluation pass needs. The fetches
// are independent and issued concurrently; evaluation itself is a
// synchronous transform over the joined result.
type snapshot struct {
	hotel      *hotel.Hotel
	rooms      []*roomproduct.RoomProduct
	eval       *sellability.Evaluator
	sell       *sellability.Snapshot
	prices     pricing.PriceMap
	amenities  map[id.AmenityID]*amenity.Amenity
	inclusions []*amenity.Inclusion
	index      *restriction.Index
}

func (e *Engine) fetchSnapshot(ctx context.Context, h *hotel.Hotel, channel rateplan.Channel, from, to types.Date) (*snapshot, error) {
	var (
		restrictions []*restriction.Restriction
		availRows    []*availability.Availability
		priceRows    []*availability.DailyPrice
		plans        []*rateplan.RatePlan
		pairs        []*roomproduct.Pair
		rooms        []*roomproduct.RoomProduct
		amenities    []*amenity.Amenity
		inclusions   []*amenity.Inclusion
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		restrictions, err = e.store.ListRestrictions(gctx, h.ID, from, to)
		return err
	})
	g.Go(func() (err error) {
		availRows, err = e.store.ListAvailability(gctx, h.ID, from, to)
		return err
	})
	g.Go(func() (err error) {
		priceRows, err = e.store.ListPrices(gctx, h.ID, from, to)
		return err
	})
	g.Go(func() (err error) {
		plans, err = e.store.ListRatePlans(gctx, h.ID, rateplan.ListOpts{Status: rateplan.StatusActive})
		return err
	})
	g.Go(func() (err error) {
		pairs, err = e.store.ListPairs(gctx, h.ID)
		return err
	})
	g.Go(func() (err error) {
		rooms, err = e.store.ListRoomProducts(gctx, h.ID)
		return err
	})
	g.Go(func() (err error) {
		amenities, err = e.store.ListAmenities(gctx, h.ID)
		return err
	})
	g.Go(func() (err error) {
		inclusions, err = e.store.ListInclusions(gctx, h.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		e.logger.Error("snapshot fetch failed",
			"hotel", h.ID,
			"from", from,
			"to", to,
			"error", err,
		)
		return nil, err
	}

	availMap := make(map[types.Date]map[id.RoomProductID]int, len(availRows))
	for _, row := range availRows {
		byRoom := availMap[row.Date]
		if byRoom == nil {
			byRoom = make(map[id.RoomProductID]int)
			availMap[row.Date] = byRoom
		}
		byRoom[row.RoomProductID] = row.Count
	}

	pairsByRoom := make(map[id.RoomProductID][]*roomproduct.Pair, len(rooms))
	for _, p := range pairs {
		pairsByRoom[p.RoomProductID] = append(pairsByRoom[p.RoomProductID], p)
	}

	priceMap := pricing.BuildPriceMap(priceRows)

	amenityMap := make(map[id.AmenityID]*amenity.Amenity, len(amenities))
	for _, a := range amenities {
		amenityMap[a.ID] = a
	}

	index := restriction.BuildIndex(restrictions, from, to)

	sell := &sellability.Snapshot{
		Channel:      channel,
		Availability: availMap,
		Plans:        rateplan.ResolveEffective(plans),
		Pairs:        pairsByRoom,
		Restrictions: index,
	}

	return &snapshot{
		hotel:      h,
		rooms:      rooms,
		eval:       sellability.NewEvaluator(sell),
		sell:       sell,
		prices:     priceMap,
		amenities:  amenityMap,
		inclusions: inclusions,
		index:      index,
	}, nil
}
