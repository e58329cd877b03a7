package ingest

import (
	"testing"
	"time"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		in    string
		pence int64
		ok    bool
	}{
		{"12.50", 1250, true},
		{"£12.50", 1250, true},
		{"$1,234.56", 123456, true},
		{"€ 99", 9900, true},
		{"�4.20", 420, true}, // mojibake pound sign
		{" 7.005 ", 701, true},
		{"-3.25", -325, true},
		{"0", 0, true},
		{"", 0, false},
		{"n/a", 0, false},
	}

	for _, tc := range tests {
		d, ok := ParseCurrency(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseCurrency(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if got := Pence(d); got != tc.pence {
			t.Errorf("ParseCurrency(%q) = %d pence, want %d", tc.in, got, tc.pence)
		}
	}
}

func TestParseDate_Layouts(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

	tests := []struct {
		in   string
		want time.Time
	}{
		{"15/03/2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"15/03/2024 14:30", time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)},
		{"15/03/2024 14:30:45", time.Date(2024, 3, 15, 14, 30, 45, 0, time.UTC)},
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-03-15 14:30:45", time.Date(2024, 3, 15, 14, 30, 45, 0, time.UTC)},
		{"15-03-2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		// Day 25 cannot be a month, so the US fallback applies.
		{"03/25/2024", time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC)},
		// Ambiguous dates read day-first.
		{"03/04/2024", time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		got, ok := ParseDate(tc.in, now)
		if !ok {
			t.Errorf("ParseDate(%q) not ok", tc.in)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDate_SpreadsheetSerial(t *testing.T) {
	now := func() time.Time { return time.Now() }

	// 45383 days after 1899-12-30 is 2024-04-01.
	got, ok := ParseDate("45383", now)
	if !ok {
		t.Fatal("expected serial date to parse")
	}
	want := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Fractional part is the time of day: .5 is noon.
	got, ok = ParseDate("45383.5", now)
	if !ok {
		t.Fatal("expected serial date to parse")
	}
	want = time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDate_FallbackToNow(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	now := func() time.Time { return fixed }

	got, ok := ParseDate("not a date", now)
	if ok {
		t.Error("expected ok=false for garbage input")
	}
	if !got.Equal(fixed) {
		t.Errorf("expected fallback to now, got %v", got)
	}

	got, ok = ParseDate("", now)
	if ok {
		t.Error("expected ok=false for empty input")
	}
	if !got.Equal(fixed) {
		t.Errorf("expected fallback to now, got %v", got)
	}
}
