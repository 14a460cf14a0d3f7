package service

import "testing"

func TestNormalizeDayForms(t *testing.T) {
	// Three representations of 5 March 2024: the ISO timestamp is how the
	// upstream store serialized that local date (previous day, 23:00 UTC).
	inputs := []string{"05/03/2024", "2024-03-05", "2024-03-04T23:00:00Z"}
	for _, in := range inputs {
		got, err := NormalizeDay(in)
		if err != nil {
			t.Fatalf("NormalizeDay(%q): %v", in, err)
		}
		if got != "2024-03-05" {
			t.Fatalf("NormalizeDay(%q) = %q, want 2024-03-05", in, got)
		}
	}
}

func TestNormalizeDayMidnightISO(t *testing.T) {
	got, err := NormalizeDay("2024-03-05T00:00:00Z")
	if err != nil {
		t.Fatalf("NormalizeDay: %v", err)
	}
	if got != "2024-03-05" {
		t.Fatalf("got %q, want 2024-03-05", got)
	}
}

func TestNormalizeDayInvalid(t *testing.T) {
	for _, in := range []string{"", "05-03-2024 extra", "31/02/2024", "not a date"} {
		if _, err := NormalizeDay(in); err == nil {
			t.Fatalf("NormalizeDay(%q): expected error", in)
		}
	}
}

func TestParseDayIsMidnightUTC(t *testing.T) {
	day, err := ParseDay("14/07/2025")
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	if day.Hour() != 0 || day.Minute() != 0 {
		t.Fatalf("expected midnight, got %v", day)
	}
	if y, m, d := day.Date(); y != 2025 || m != 7 || d != 14 {
		t.Fatalf("got %v-%v-%v, want 2025-7-14", y, m, d)
	}
}
