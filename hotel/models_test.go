package hotel

import (
	"testing"

	"github.com/xraph/stay/id"
	"github.com/xraph/stay/types"
)

func TestRoundTotal(t *testing.T) {
	tests := []struct {
		name     string
		rounding types.RoundingMode
		decimals int
		in       int64
		want     int64
	}{
		{"native precision is identity", types.RoundHalfUp, 2, 12345, 12345},
		{"half up to whole units", types.RoundHalfUp, 0, 12350, 12400},
		{"half up below midpoint", types.RoundHalfUp, 0, 12349, 12300},
		{"always up", types.RoundUp, 0, 12301, 12400},
		{"truncate", types.RoundDown, 0, 12399, 12300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Hotel{Rounding: tt.rounding, RoundingDecimals: tt.decimals}
			got := h.RoundTotal(types.EUR(tt.in))
			if got.Amount != tt.want {
				t.Errorf("RoundTotal(%d) = %d, want %d", tt.in, got.Amount, tt.want)
			}
		})
	}
}

func TestAgeCategoryLookup(t *testing.T) {
	adultID := id.NewAgeCategoryID()
	childID := id.NewAgeCategoryID()
	infantID := id.NewAgeCategoryID()

	h := &Hotel{
		AgeCategories: []AgeCategory{
			{ID: adultID, Kind: KindAdult, Name: "Adult"},
			{ID: childID, Kind: KindChild, Name: "Child", MinAge: 3, MaxAge: 12},
			{ID: infantID, Kind: KindChild, Name: "Infant", MaxAge: 2, CityTaxExempt: true},
		},
	}

	if got := h.AdultCategory(); got == nil || got.ID != adultID {
		t.Fatalf("AdultCategory() = %v, want id %s", got, adultID)
	}

	if got := h.FindAgeCategory(infantID); got == nil || got.Name != "Infant" {
		t.Fatalf("FindAgeCategory(infant) = %v", got)
	}
	if got := h.FindAgeCategory(id.NewAgeCategoryID()); got != nil {
		t.Fatalf("FindAgeCategory(unknown) = %v, want nil", got)
	}

	children := h.ChildCategories()
	if len(children) != 2 {
		t.Fatalf("ChildCategories() returned %d categories, want 2", len(children))
	}
	if children[0].Name != "Child" || children[1].Name != "Infant" {
		t.Errorf("ChildCategories() order = %q, %q", children[0].Name, children[1].Name)
	}
}

func TestCityTaxExempt(t *testing.T) {
	exemptID := id.NewAgeCategoryID()
	flaggedID := id.NewAgeCategoryID()
	taxedID := id.NewAgeCategoryID()

	rule := &CityTaxRule{
		Mode:                CityTaxPerPersonPerNight,
		AmountPerNight:      types.EUR(250),
		ExemptAgeCategories: []id.AgeCategoryID{exemptID},
	}

	tests := []struct {
		name string
		cat  *AgeCategory
		want bool
	}{
		{"nil category", nil, false},
		{"listed on the rule", &AgeCategory{ID: exemptID}, true},
		{"flagged on the category", &AgeCategory{ID: flaggedID, CityTaxExempt: true}, true},
		{"neither", &AgeCategory{ID: taxedID}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rule.TaxExempt(tt.cat); got != tt.want {
				t.Errorf("TaxExempt() = %v, want %v", got, tt.want)
			}
		})
	}
}
