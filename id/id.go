// Package id defines TypeID-based identity types for all stay-engine entities.
//
// Every entity uses a single ID struct with a prefix that identifies the
// entity type. IDs are K-sortable (UUIDv7-based), globally unique,
// and URL-safe in the format "prefix_suffix".
package id

import (
	"database/sql/driver"
	"fmt"

	"go.jetify.com/typeid/v2"
)

// Prefix identifies the entity type encoded in a TypeID.
type Prefix string

// Prefix constants for all stay-engine entity types.
const (
	PrefixHotel       Prefix = "hotel" // Hotel
	PrefixRoomProduct Prefix = "room"  // Room product (sellable room type)
	PrefixRatePlan    Prefix = "rate"  // Rate plan
	PrefixPair        Prefix = "pair"  // Room-product / rate-plan pair
	PrefixRestriction Prefix = "rstr"  // Booking restriction
	PrefixAmenity     Prefix = "amen"  // Amenity (extra service)
	PrefixCityTax     Prefix = "ctax"  // City tax rule
	PrefixAgeCategory Prefix = "age"   // Guest age category
)

// ID is the primary identifier type for all stay-engine entities.
// It wraps a TypeID providing a prefix-qualified, globally unique,
// sortable, URL-safe identifier in the format "prefix_suffix".
//
//nolint:recvcheck // Value receivers for read-only methods, pointer receivers for UnmarshalText/Scan.
type ID struct {
	inner typeid.TypeID
	valid bool
}

// Nil is the zero-value ID.
var Nil ID

// New generates a new globally unique ID with the given prefix.
// It panics if prefix is not a valid TypeID prefix (programming error).
func New(prefix Prefix) ID {
	tid, err := typeid.Generate(string(prefix))
	if err != nil {
		panic(fmt.Sprintf("id: invalid prefix %q: %v", prefix, err))
	}

	return ID{inner: tid, valid: true}
}

// Parse parses a TypeID string (e.g., "room_01h2xcejqtf2nbrexx3vqjhp41")
// into an ID. Returns an error if the string is not valid.
func Parse(s string) (ID, error) {
	if s == "" {
		return Nil, fmt.Errorf("id: parse %q: empty string", s)
	}

	tid, err := typeid.Parse(s)
	if err != nil {
		return Nil, fmt.Errorf("id: parse %q: %w", s, err)
	}

	return ID{inner: tid, valid: true}, nil
}

// ParseWithPrefix parses a TypeID string and validates that its prefix
// matches the expected value.
func ParseWithPrefix(s string, expected Prefix) (ID, error) {
	parsed, err := Parse(s)
	if err != nil {
		return Nil, err
	}

	if parsed.Prefix() != expected {
		return Nil, fmt.Errorf("id: expected prefix %q, got %q", expected, parsed.Prefix())
	}

	return parsed, nil
}

// MustParse is like Parse but panics on error. Use for hardcoded ID values.
func MustParse(s string) ID {
	parsed, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("id: must parse %q: %v", s, err))
	}

	return parsed
}

// MustParseWithPrefix is like ParseWithPrefix but panics on error.
func MustParseWithPrefix(s string, expected Prefix) ID {
	parsed, err := ParseWithPrefix(s, expected)
	if err != nil {
		panic(fmt.Sprintf("id: must parse with prefix %q: %v", expected, err))
	}

	return parsed
}

// ──────────────────────────────────────────────────
// Type aliases per entity
// ──────────────────────────────────────────────────

// HotelID is a type-safe identifier for hotels (prefix: "hotel").
type HotelID = ID

// RoomProductID is a type-safe identifier for room products (prefix: "room").
type RoomProductID = ID

// RatePlanID is a type-safe identifier for rate plans (prefix: "rate").
type RatePlanID = ID

// PairID is a type-safe identifier for room-product/rate-plan pairs (prefix: "pair").
type PairID = ID

// RestrictionID is a type-safe identifier for restrictions (prefix: "rstr").
type RestrictionID = ID

// AmenityID is a type-safe identifier for amenities (prefix: "amen").
type AmenityID = ID

// CityTaxID is a type-safe identifier for city tax rules (prefix: "ctax").
type CityTaxID = ID

// AgeCategoryID is a type-safe identifier for age categories (prefix: "age").
type AgeCategoryID = ID

// AnyID is a type alias that accepts any valid prefix.
type AnyID = ID

// ──────────────────────────────────────────────────
// Convenience constructors
// ──────────────────────────────────────────────────

// NewHotelID generates a new unique hotel ID.
func NewHotelID() ID { return New(PrefixHotel) }

// NewRoomProductID generates a new unique room product ID.
func NewRoomProductID() ID { return New(PrefixRoomProduct) }

// NewRatePlanID generates a new unique rate plan ID.
func NewRatePlanID() ID { return New(PrefixRatePlan) }

// NewPairID generates a new unique pair ID.
func NewPairID() ID { return New(PrefixPair) }

// NewRestrictionID generates a new unique restriction ID.
func NewRestrictionID() ID { return New(PrefixRestriction) }

// NewAmenityID generates a new unique amenity ID.
func NewAmenityID() ID { return New(PrefixAmenity) }

// NewCityTaxID generates a new unique city tax rule ID.
func NewCityTaxID() ID { return New(PrefixCityTax) }

// NewAgeCategoryID generates a new unique age category ID.
func NewAgeCategoryID() ID { return New(PrefixAgeCategory) }

// ──────────────────────────────────────────────────
// Convenience parsers
// ──────────────────────────────────────────────────

// ParseHotelID parses a string and validates the "hotel" prefix.
func ParseHotelID(s string) (ID, error) { return ParseWithPrefix(s, PrefixHotel) }

// ParseRoomProductID parses a string and validates the "room" prefix.
func ParseRoomProductID(s string) (ID, error) { return ParseWithPrefix(s, PrefixRoomProduct) }

// ParseRatePlanID parses a string and validates the "rate" prefix.
func ParseRatePlanID(s string) (ID, error) { return ParseWithPrefix(s, PrefixRatePlan) }

// ParsePairID parses a string and validates the "pair" prefix.
func ParsePairID(s string) (ID, error) { return ParseWithPrefix(s, PrefixPair) }

// ParseRestrictionID parses a string and validates the "rstr" prefix.
func ParseRestrictionID(s string) (ID, error) { return ParseWithPrefix(s, PrefixRestriction) }

// ParseAmenityID parses a string and validates the "amen" prefix.
func ParseAmenityID(s string) (ID, error) { return ParseWithPrefix(s, PrefixAmenity) }

// ParseCityTaxID parses a string and validates the "ctax" prefix.
func ParseCityTaxID(s string) (ID, error) { return ParseWithPrefix(s, PrefixCityTax) }

// ParseAgeCategoryID parses a string and validates the "age" prefix.
func ParseAgeCategoryID(s string) (ID, error) { return ParseWithPrefix(s, PrefixAgeCategory) }

// ParseAny parses a string into an ID without type checking the prefix.
func ParseAny(s string) (ID, error) { return Parse(s) }

// ──────────────────────────────────────────────────
// ID methods
// ──────────────────────────────────────────────────

// String returns the full TypeID string representation (prefix_suffix).
// Returns an empty string for the Nil ID.
func (i ID) String() string {
	if !i.valid {
		return ""
	}

	return i.inner.String()
}

// Prefix returns the prefix component of this ID.
func (i ID) Prefix() Prefix {
	if !i.valid {
		return ""
	}

	return Prefix(i.inner.Prefix())
}

// IsNil reports whether this ID is the zero value.
func (i ID) IsNil() bool {
	return !i.valid
}

// MarshalText implements encoding.TextMarshaler.
func (i ID) MarshalText() ([]byte, error) {
	if !i.valid {
		return []byte{}, nil
	}

	return []byte(i.inner.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *ID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*i = Nil

		return nil
	}

	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}

	*i = parsed

	return nil
}

// Value implements driver.Valuer for database storage.
// Returns nil for the Nil ID so that optional foreign key columns store NULL.
func (i ID) Value() (driver.Value, error) {
	if !i.valid {
		return nil, nil //nolint:nilnil // nil is the canonical NULL for driver.Valuer
	}

	return i.inner.String(), nil
}

// Scan implements sql.Scanner for database retrieval.
func (i *ID) Scan(src any) error {
	if src == nil {
		*i = Nil

		return nil
	}

	switch v := src.(type) {
	case string:
		if v == "" {
			*i = Nil

			return nil
		}

		return i.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == 0 {
			*i = Nil

			return nil
		}

		return i.UnmarshalText(v)
	default:
		return fmt.Errorf("id: cannot scan %T into ID", src)
	}
}
