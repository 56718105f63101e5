package sqlite

import (
	"context"

	"github.com/xraph/grove/migrate"
)

// Migrations is the grove migration group for the stay store (SQLite).
var Migrations = migrate.NewGroup("stay")

func init() {
	Migrations.MustRegister(
		&migrate.Migration{
			Name:    "create_stay_hotels",
			Version: "20240601000001",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS stay_hotels (
    id                  TEXT PRIMARY KEY,
    name                TEXT NOT NULL DEFAULT '',
    slug                TEXT NOT NULL DEFAULT '',
    currency            TEXT NOT NULL DEFAULT '',
    rounding            TEXT NOT NULL DEFAULT '',
    rounding_decimals   INTEGER NOT NULL DEFAULT 0,
    default_stay_nights INTEGER NOT NULL DEFAULT 0,
    default_adults      INTEGER NOT NULL DEFAULT 0,
    age_categories      TEXT NOT NULL DEFAULT '[]',
    city_taxes          TEXT,
    metadata            TEXT NOT NULL DEFAULT '{}',
    created_at          TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at          TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_stay_hotels_slug ON stay_hotels (slug);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `DROP TABLE IF EXISTS stay_hotels`)
				return err
			},
		},
		&migrate.Migration{
			Name:    "create_stay_room_products",
			Version: "20240601000002",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS stay_room_products (
    id          TEXT PRIMARY KEY,
    hotel_id    TEXT NOT NULL DEFAULT '',
    name        TEXT NOT NULL DEFAULT '',
    slug        TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    status      TEXT NOT NULL DEFAULT 'active',
    capacity    TEXT NOT NULL DEFAULT '{}',
    total_rooms INTEGER NOT NULL DEFAULT 0,
    metadata    TEXT NOT NULL DEFAULT '{}',
    created_at  TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at  TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_stay_rooms_hotel ON stay_room_products (hotel_id);
CREATE UNIQUE INDEX IF NOT EXISTS idx_stay_rooms_slug_hotel ON stay_room_products (hotel_id, slug);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `DROP TABLE IF EXISTS stay_room_products`)
				return err
			},
		},
		&migrate.Migration{
			Name:    "create_stay_rate_plans",
			Version: "20240601000003",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS stay_rate_plans (
    id           TEXT PRIMARY KEY,
    hotel_id     TEXT NOT NULL DEFAULT '',
    name         TEXT NOT NULL DEFAULT '',
    slug         TEXT NOT NULL DEFAULT '',
    description  TEXT NOT NULL DEFAULT '',
    status       TEXT NOT NULL DEFAULT 'draft',
    currency     TEXT NOT NULL DEFAULT '',
    defaults     TEXT NOT NULL DEFAULT '[]',
    overrides    TEXT NOT NULL DEFAULT '[]',
    derived_from TEXT,
    metadata     TEXT NOT NULL DEFAULT '{}',
    created_at   TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at   TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_stay_plans_hotel ON stay_rate_plans (hotel_id);
CREATE UNIQUE INDEX IF NOT EXISTS idx_stay_plans_slug_hotel ON stay_rate_plans (hotel_id, slug);
CREATE INDEX IF NOT EXISTS idx_stay_plans_status ON stay_rate_plans (hotel_id, status);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `DROP TABLE IF EXISTS stay_rate_plans`)
				return err
			},
		},
		&migrate.Migration{
			Name:    "create_stay_pairs",
			Version: "20240601000004",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS stay_pairs (
    id              TEXT PRIMARY KEY,
    hotel_id        TEXT NOT NULL DEFAULT '',
    room_product_id TEXT NOT NULL DEFAULT '',
    rate_plan_id    TEXT NOT NULL DEFAULT '',
    sellable        INTEGER NOT NULL DEFAULT 0,
    adjustments     TEXT NOT NULL DEFAULT '[]',
    created_at      TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at      TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_stay_pairs_hotel ON stay_pairs (hotel_id);
CREATE UNIQUE INDEX IF NOT EXISTS idx_stay_pairs_room_plan ON stay_pairs (room_product_id, rate_plan_id);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `DROP TABLE IF EXISTS stay_pairs`)
				return err
			},
		},
		&migrate.Migration{
			Name:    "create_stay_restrictions",
			Version: "20240601000005",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS stay_restrictions (
    id                    TEXT PRIMARY KEY,
    hotel_id              TEXT NOT NULL DEFAULT '',
    type                  TEXT NOT NULL DEFAULT '',
    from_date             TEXT NOT NULL DEFAULT '',
    to_date               TEXT NOT NULL DEFAULT '',
    weekdays              TEXT NOT NULL DEFAULT '[]',
    room_product_ids      TEXT NOT NULL DEFAULT '[]',
    rate_plan_ids         TEXT NOT NULL DEFAULT '[]',
    min_length            INT,
    max_length            INT,
    min_advance_days      INT,
    max_advance_days      INT,
    min_los_through       INT,
    max_reservation_count INT,
    created_at            TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at            TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_stay_restrictions_window ON stay_restrictions (hotel_id, from_date, to_date);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `DROP TABLE IF EXISTS stay_restrictions`)
				return err
			},
		},
		&migrate.Migration{
			Name:    "create_stay_inventory",
			Version: "20240601000006",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS stay_availability (
    row_key         TEXT PRIMARY KEY,
    hotel_id        TEXT NOT NULL DEFAULT '',
    room_product_id TEXT NOT NULL DEFAULT '',
    date            TEXT NOT NULL DEFAULT '',
    count           INTEGER NOT NULL DEFAULT 0,
    updated_at      TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_stay_avail_hotel_date ON stay_availability (hotel_id, date);

CREATE TABLE IF NOT EXISTS stay_prices (
    row_key         TEXT PRIMARY KEY,
    hotel_id        TEXT NOT NULL DEFAULT '',
    room_product_id TEXT NOT NULL DEFAULT '',
    rate_plan_id    TEXT NOT NULL DEFAULT '',
    date            TEXT NOT NULL DEFAULT '',
    net_cents       INTEGER NOT NULL DEFAULT 0,
    net_currency    TEXT NOT NULL DEFAULT '',
    gross_cents     INTEGER NOT NULL DEFAULT 0,
    gross_currency  TEXT NOT NULL DEFAULT '',
    adjustments     TEXT NOT NULL DEFAULT '{}',
    updated_at      TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_stay_prices_hotel_date ON stay_prices (hotel_id, date);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
DROP TABLE IF EXISTS stay_availability;
DROP TABLE IF EXISTS stay_prices;
`)
				return err
			},
		},
		&migrate.Migration{
			Name:    "create_stay_amenities",
			Version: "20240601000007",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS stay_amenities (
    id             TEXT PRIMARY KEY,
    hotel_id       TEXT NOT NULL DEFAULT '',
    name           TEXT NOT NULL DEFAULT '',
    slug           TEXT NOT NULL DEFAULT '',
    unit           TEXT NOT NULL DEFAULT '',
    tax            TEXT NOT NULL DEFAULT '',
    tax_rate_bp    INTEGER NOT NULL DEFAULT 0,
    price_cents    INTEGER NOT NULL DEFAULT 0,
    price_currency TEXT NOT NULL DEFAULT '',
    metadata       TEXT NOT NULL DEFAULT '{}',
    created_at     TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at     TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_stay_amenities_hotel ON stay_amenities (hotel_id);

CREATE TABLE IF NOT EXISTS stay_inclusions (
    row_key         TEXT PRIMARY KEY,
    hotel_id        TEXT NOT NULL DEFAULT '',
    amenity_id      TEXT NOT NULL DEFAULT '',
    rate_plan_id    TEXT NOT NULL DEFAULT '',
    room_product_id TEXT NOT NULL DEFAULT '',
    kind            TEXT NOT NULL DEFAULT '',
    from_date       TEXT NOT NULL DEFAULT '',
    to_date         TEXT NOT NULL DEFAULT '',
    created_at      TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at      TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_stay_inclusions_hotel ON stay_inclusions (hotel_id);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
DROP TABLE IF EXISTS stay_amenities;
DROP TABLE IF EXISTS stay_inclusions;
`)
				return err
			},
		},
		&migrate.Migration{
			Name:    "create_stay_hotel_cache",
			Version: "20240601000008",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS stay_hotel_cache (
    hotel_id   TEXT PRIMARY KEY,
    payload    TEXT NOT NULL DEFAULT '{}',
    expires_at TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_stay_hotel_cache_expires ON stay_hotel_cache (expires_at);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `DROP TABLE IF EXISTS stay_hotel_cache`)
				return err
			},
		},
	)
}
