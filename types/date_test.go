package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2024, time.July, 1)

	if got := d.AddDays(9); got != NewDate(2024, time.July, 10) {
		t.Errorf("AddDays(9) = %v", got)
	}
	if got := d.AddDays(-1); got != NewDate(2024, time.June, 30) {
		t.Errorf("AddDays(-1) = %v", got)
	}
	if got := d.DaysUntil(NewDate(2024, time.July, 10)); got != 9 {
		t.Errorf("DaysUntil = %d, want 9", got)
	}
	if got := d.DaysUntil(NewDate(2024, time.June, 30)); got != -1 {
		t.Errorf("DaysUntil = %d, want -1", got)
	}
	if d.Weekday() != time.Monday {
		t.Errorf("2024-07-01 should be Monday, got %v", d.Weekday())
	}
}

func TestDateComparisons(t *testing.T) {
	a := MustParseDate("2024-08-01")
	b := MustParseDate("2024-08-05")

	if !a.Before(b) || b.Before(a) {
		t.Error("Before is wrong")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After is wrong")
	}
	if !b.Between(a, MustParseDate("2024-08-31")) {
		t.Error("Between is wrong")
	}
	if a.Between(b, MustParseDate("2024-08-31")) {
		t.Error("Between lower bound is wrong")
	}
}

func TestDatesBetween(t *testing.T) {
	from := MustParseDate("2024-08-30")
	to := MustParseDate("2024-09-02")

	got := DatesBetween(from, to)
	want := []string{"2024-08-30", "2024-08-31", "2024-09-01", "2024-09-02"}
	if len(got) != len(want) {
		t.Fatalf("got %d dates, want %d", len(got), len(want))
	}
	for i, d := range got {
		if d.String() != want[i] {
			t.Errorf("date %d: got %s, want %s", i, d, want[i])
		}
	}

	if DatesBetween(to, from) != nil {
		t.Error("inverted range should return nil")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := MustParseDate("2024-07-03")

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-07-03"` {
		t.Errorf("marshal: got %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip: got %v, want %v", back, d)
	}

	// Date as a map key uses the text form.
	m := map[Date]int{d: 1}
	if _, err := json.Marshal(m); err != nil {
		t.Fatalf("map key marshal: %v", err)
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, err := ParseDate("03/07/2024"); err == nil {
		t.Error("expected error for non-ISO input")
	}
}
