package id_test

import (
	"strings"
	"testing"

	"github.com/xraph/stay/id"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		newFn  func() id.ID
		prefix string
	}{
		{"HotelID", id.NewHotelID, "hotel_"},
		{"RoomProductID", id.NewRoomProductID, "room_"},
		{"RatePlanID", id.NewRatePlanID, "rate_"},
		{"PairID", id.NewPairID, "pair_"},
		{"RestrictionID", id.NewRestrictionID, "rstr_"},
		{"AmenityID", id.NewAmenityID, "amen_"},
		{"CityTaxID", id.NewCityTaxID, "ctax_"},
		{"AgeCategoryID", id.NewAgeCategoryID, "age_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.newFn().String()
			if !strings.HasPrefix(got, tt.prefix) {
				t.Errorf("expected prefix %q, got %q", tt.prefix, got)
			}
		})
	}
}

func TestNew(t *testing.T) {
	i := id.New(id.PrefixRoomProduct)
	if i.IsNil() {
		t.Fatal("expected non-nil ID")
	}
	if i.Prefix() != id.PrefixRoomProduct {
		t.Errorf("expected prefix %q, got %q", id.PrefixRoomProduct, i.Prefix())
	}
}

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		newFn   func() id.ID
		parseFn func(string) (id.ID, error)
	}{
		{"HotelID", id.NewHotelID, id.ParseHotelID},
		{"RoomProductID", id.NewRoomProductID, id.ParseRoomProductID},
		{"RatePlanID", id.NewRatePlanID, id.ParseRatePlanID},
		{"PairID", id.NewPairID, id.ParsePairID},
		{"RestrictionID", id.NewRestrictionID, id.ParseRestrictionID},
		{"AmenityID", id.NewAmenityID, id.ParseAmenityID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := tt.newFn()
			parsed, err := tt.parseFn(original.String())
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if parsed.String() != original.String() {
				t.Errorf("round trip mismatch: %q != %q", parsed, original)
			}
		})
	}
}

func TestParseWrongPrefix(t *testing.T) {
	hotelID := id.NewHotelID()
	if _, err := id.ParseRatePlanID(hotelID.String()); err == nil {
		t.Error("expected error parsing hotel ID as rate plan ID")
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"", "not-a-typeid", "room_"} {
		if _, err := id.Parse(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}

func TestNilID(t *testing.T) {
	var nilID id.ID
	if !nilID.IsNil() {
		t.Error("zero value should be nil")
	}
	if nilID.String() != "" {
		t.Errorf("nil ID string should be empty, got %q", nilID.String())
	}
}

func TestTextMarshalRoundTrip(t *testing.T) {
	original := id.NewRestrictionID()

	data, err := original.MarshalText()
	if err != nil {
		t.Fatal(err)
	}

	var back id.ID
	if err := back.UnmarshalText(data); err != nil {
		t.Fatal(err)
	}
	if back.String() != original.String() {
		t.Errorf("round trip mismatch: %q != %q", back, original)
	}
}
