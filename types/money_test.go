package types

import (
	"encoding/json"
	"testing"
)

func TestMoneyConstructors(t *testing.T) {
	tests := []struct {
		name     string
		money    Money
		amount   int64
		currency string
		display  string
	}{
		{"USD", USD(12900), 12900, "usd", "$129.00"},
		{"EUR", EUR(9950), 9950, "eur", "€99.50"},
		{"GBP", GBP(9900), 9900, "gbp", "£99.00"},
		{"JPY", JPY(14000), 14000, "jpy", "¥14000"},
		{"CHF", CHF(2500), 2500, "chf", "CHF 25.00"},
		{"Zero USD", Zero("USD"), 0, "usd", "$0.00"},
		{"Zero EUR", Zero("EUR"), 0, "eur", "€0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.money.Amount != tt.amount {
				t.Errorf("Amount: got %d, want %d", tt.money.Amount, tt.amount)
			}
			if tt.money.Currency != tt.currency {
				t.Errorf("Currency: got %s, want %s", tt.money.Currency, tt.currency)
			}
			if tt.money.String() != tt.display {
				t.Errorf("Display: got %s, want %s", tt.money.String(), tt.display)
			}
		})
	}
}

func TestMoneyArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		op       func() Money
		expected Money
	}{
		{"Add", func() Money { return EUR(100).Add(EUR(200)) }, EUR(300)},
		{"Subtract", func() Money { return EUR(500).Subtract(EUR(200)) }, EUR(300)},
		{"Multiply nights", func() Money { return EUR(9950).Multiply(3) }, EUR(29850)},
		{"Divide", func() Money { return EUR(900).Divide(3) }, EUR(300)},
		{"Negate", func() Money { return EUR(100).Negate() }, EUR(-100)},
		{"Abs negative", func() Money { return EUR(-100).Abs() }, EUR(100)},
		{"PercentBP 4%", func() Money { return EUR(10000).PercentBP(400) }, EUR(400)},
		{"PercentBP rounds half up", func() Money { return EUR(1250).PercentBP(100) }, EUR(13)},
		{"Complex", func() Money {
			return EUR(1000).Add(EUR(500)).Multiply(2).Subtract(EUR(1000))
		}, EUR(2000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.op()
			if !result.Equal(tt.expected) {
				t.Errorf("Got %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMoneyCurrencyMismatch(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for currency mismatch")
		}
	}()

	// This should panic
	_ = USD(100).Add(EUR(100))
}

func TestMoneyRound(t *testing.T) {
	tests := []struct {
		name     string
		in       Money
		mode     RoundingMode
		decimals int
		want     Money
	}{
		{"half up, below half", EUR(12342), RoundHalfUp, 1, EUR(12340)},
		{"half up, at half", EUR(12345), RoundHalfUp, 1, EUR(12350)},
		{"half up, whole units", EUR(12350), RoundHalfUp, 0, EUR(12400)},
		{"half even, at half to even", EUR(12345), RoundHalfEven, 1, EUR(12340)},
		{"half even, at half to odd", EUR(12355), RoundHalfEven, 1, EUR(12360)},
		{"up", EUR(12301), RoundUp, 0, EUR(12400)},
		{"down", EUR(12399), RoundDown, 0, EUR(12300)},
		{"negative half up", EUR(-12345), RoundHalfUp, 1, EUR(-12350)},
		{"native precision is identity", EUR(12349), RoundHalfUp, 2, EUR(12349)},
		{"zero-decimal currency is identity", JPY(12349), RoundHalfUp, 0, JPY(12349)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Round(tt.mode, tt.decimals)
			if !got.Equal(tt.want) {
				t.Errorf("Round(%s, %d) = %v, want %v", tt.mode, tt.decimals, got, tt.want)
			}
		})
	}
}

// Rounding a total already at the target precision returns the same value.
func TestMoneyRoundIdempotent(t *testing.T) {
	modes := []RoundingMode{RoundHalfUp, RoundHalfEven, RoundUp, RoundDown}
	amounts := []int64{0, 1, 49, 50, 99, 12349, -12351, 999999}

	for _, mode := range modes {
		for _, amount := range amounts {
			for decimals := 0; decimals <= 2; decimals++ {
				once := EUR(amount).Round(mode, decimals)
				twice := once.Round(mode, decimals)
				if !twice.Equal(once) {
					t.Errorf("Round(%s, %d) not idempotent for %d: %v then %v",
						mode, decimals, amount, once, twice)
				}
			}
		}
	}
}

func TestMoneyJSON(t *testing.T) {
	data, err := json.Marshal(EUR(9950))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"amount":9950,"currency":"eur","display":"€99.50"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestSum(t *testing.T) {
	got := Sum(EUR(100), EUR(200), EUR(300))
	if !got.Equal(EUR(600)) {
		t.Errorf("Sum = %v, want %v", got, EUR(600))
	}
}
