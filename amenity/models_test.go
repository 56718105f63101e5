package amenity

import (
	"testing"

	"github.com/xraph/stay/types"
)

func TestCharge(t *testing.T) {
	tests := []struct {
		name       string
		unit       PricingUnit
		price      types.Money
		nights     int
		persons    int
		wantAmount int64
	}{
		{"per stay flat", UnitPerStay, types.EUR(1500), 4, 3, 1500},
		{"per night scales with nights", UnitPerNight, types.EUR(1500), 4, 3, 6000},
		{"per person scales with party", UnitPerPerson, types.EUR(1500), 4, 3, 4500},
		{"per night single night", UnitPerNight, types.EUR(1500), 1, 2, 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Amenity{Unit: tt.unit, Price: tt.price}
			got := a.Charge(tt.nights, tt.persons)
			if got.Amount != tt.wantAmount {
				t.Errorf("Charge() = %d, want %d", got.Amount, tt.wantAmount)
			}
			if got.Currency != tt.price.Currency {
				t.Errorf("Charge() currency = %q, want %q", got.Currency, tt.price.Currency)
			}
		})
	}
}

func TestInclusionAppliesOn(t *testing.T) {
	d := types.MustParseDate

	tests := []struct {
		name string
		in   Inclusion
		date types.Date
		want bool
	}{
		{"undated covers everything", Inclusion{}, d("2024-07-15"), true},
		{
			"inside window",
			Inclusion{FromDate: d("2024-06-01"), ToDate: d("2024-08-31")},
			d("2024-07-15"),
			true,
		},
		{
			"window boundary inclusive",
			Inclusion{FromDate: d("2024-06-01"), ToDate: d("2024-08-31")},
			d("2024-08-31"),
			true,
		},
		{
			"outside window",
			Inclusion{FromDate: d("2024-06-01"), ToDate: d("2024-08-31")},
			d("2024-09-01"),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.AppliesOn(tt.date); got != tt.want {
				t.Errorf("AppliesOn(%s) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}
