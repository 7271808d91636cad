package hijri

import "testing"

func TestMonthName(t *testing.T) {
	if MonthName(1) != "Muharram" {
		t.Errorf("unexpected name for month 1: %q", MonthName(1))
	}
	if MonthName(9) != "Ramadan" {
		t.Errorf("unexpected name for month 9: %q", MonthName(9))
	}
	if MonthName(0) != "" || MonthName(13) != "" {
		t.Error("expected empty name for invalid months")
	}
	if MonthNameArabic(9) == "" {
		t.Error("expected Arabic name for Ramadan")
	}
}

func TestParseMonth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"9", 9},
		{"12", 12},
		{"Ramadan", 9},
		{"ramadan", 9},
		{"ram", 9},
		{"Saf", 2},
		{"shaw", 10},
		{"muh", 1},
		{"rajab", 7},
	}
	for _, tc := range cases {
		got, err := ParseMonth(tc.in)
		if err != nil {
			t.Errorf("ParseMonth(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMonth(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseMonthFuzzy(t *testing.T) {
	// Not a prefix of any name, but close enough to match one.
	got, err := ParseMonth("rmdn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 9 {
		t.Errorf("expected fuzzy match on Ramadan, got %d (%s)", got, MonthName(got))
	}
}

func TestParseMonthInvalid(t *testing.T) {
	for _, in := range []string{"", "0", "13", "xyzqw"} {
		if _, err := ParseMonth(in); err == nil {
			t.Errorf("ParseMonth(%q): expected error", in)
		}
	}
}
