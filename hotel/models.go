// Package hotel defines the hotel record consumed by the stay engine:
// currency and rounding configuration, guest age categories, and city
// tax rules. The engine reads hotels through a narrow store interface
// and treats them as slowly-changing reference data (cacheable).
package hotel

import (
	"github.com/xraph/stay/id"
	"github.com/xraph/stay/types"
)

type Hotel struct {
	types.Entity
	ID       id.HotelID `json:"id"`
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	Currency string     `json:"currency"`

	// Rounding is applied once to each final monetary total.
	Rounding         types.RoundingMode `json:"rounding"`
	RoundingDecimals int                `json:"rounding_decimals"`

	// Defaults used by the nearest-bookable-date search when the caller
	// supplies no guest count or stay length.
	DefaultStayNights int `json:"default_stay_nights"`
	DefaultAdults     int `json:"default_adults"`

	AgeCategories []AgeCategory     `json:"age_categories"`
	CityTaxes     []CityTaxRule     `json:"city_taxes,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// AgeCategoryKind distinguishes adult and child categories. Pets are
// not an age category; they are tracked on the guest mix directly.
type AgeCategoryKind string

const (
	KindAdult AgeCategoryKind = "adult"
	KindChild AgeCategoryKind = "child"
)

// AgeCategory is a hotel-defined guest bracket. IncludedInDefault is
// how many guests of this category the accommodation price already
// covers per room; guests beyond that draw the per-night surcharge.
type AgeCategory struct {
	types.Entity
	ID                id.AgeCategoryID `json:"id"`
	Kind              AgeCategoryKind  `json:"kind"`
	Name              string           `json:"name"`
	MinAge            int              `json:"min_age"`
	MaxAge            int              `json:"max_age"`
	IncludedInDefault int              `json:"included_in_default"`
	SurchargePerNight types.Money      `json:"surcharge_per_night"`
	CityTaxExempt     bool             `json:"city_tax_exempt"`
}

// CityTaxMode selects how a city tax rule is computed.
type CityTaxMode string

const (
	// CityTaxPerPersonPerNight charges a flat amount for every
	// non-exempt guest for every taxed night.
	CityTaxPerPersonPerNight CityTaxMode = "per_person_per_night"
	// CityTaxPercentOfGross charges a percentage of the gross
	// accommodation total.
	CityTaxPercentOfGross CityTaxMode = "percent_of_gross"
)

type CityTaxRule struct {
	types.Entity
	ID   id.CityTaxID `json:"id"`
	Mode CityTaxMode  `json:"mode"`

	// AmountPerNight applies in per-person-per-night mode.
	AmountPerNight types.Money `json:"amount_per_night"`
	// PercentBP applies in percent-of-gross mode (basis points).
	PercentBP int64 `json:"percent_bp"`

	// ExemptAgeCategories lists categories the tax never applies to,
	// in addition to categories flagged CityTaxExempt.
	ExemptAgeCategories []id.AgeCategoryID `json:"exempt_age_categories,omitempty"`
	// MaxNights caps the number of taxed nights; zero means no cap.
	MaxNights int `json:"max_nights"`
}

// RoundTotal applies the hotel's rounding configuration to a final total.
func (h *Hotel) RoundTotal(m types.Money) types.Money {
	return m.Round(h.Rounding, h.RoundingDecimals)
}

// FindAgeCategory returns the category with the given id, or nil.
func (h *Hotel) FindAgeCategory(catID id.AgeCategoryID) *AgeCategory {
	for i := range h.AgeCategories {
		if h.AgeCategories[i].ID == catID {
			return &h.AgeCategories[i]
		}
	}
	return nil
}

// AdultCategory returns the first adult category, or nil. Hotels
// normally configure exactly one.
func (h *Hotel) AdultCategory() *AgeCategory {
	for i := range h.AgeCategories {
		if h.AgeCategories[i].Kind == KindAdult {
			return &h.AgeCategories[i]
		}
	}
	return nil
}

// ChildCategories returns all child categories in configured order.
func (h *Hotel) ChildCategories() []AgeCategory {
	var out []AgeCategory
	for _, c := range h.AgeCategories {
		if c.Kind == KindChild {
			out = append(out, c)
		}
	}
	return out
}

// TaxExempt reports whether the given age category is exempt under the rule.
func (r *CityTaxRule) TaxExempt(cat *AgeCategory) bool {
	if cat == nil {
		return false
	}
	if cat.CityTaxExempt {
		return true
	}
	for _, ex := range r.ExemptAgeCategories {
		if ex == cat.ID {
			return true
		}
	}
	return false
}
