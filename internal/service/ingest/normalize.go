package ingest

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// currencyJunk strips symbols, thousands separators and the U+FFFD
// replacement char that shows up when a £ survives a bad encoding
// round-trip.
var currencyJunk = strings.NewReplacer(
	"£", "",
	"$", "",
	"€", "",
	",", "",
	"�", "",
)

// ParseCurrency normalizes a raw cell into a decimal amount. Unparseable
// values yield zero with ok=false; zero amounts are legitimate rows.
func ParseCurrency(s string) (decimal.Decimal, bool) {
	cleaned := currencyJunk.Replace(s)
	cleaned = strings.Join(strings.Fields(cleaned), "")
	if cleaned == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Pence converts a pound amount to integer pence, rounding half away
// from zero.
func Pence(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

// Spreadsheet serial dates count days from this epoch; the fractional
// part is the time of day.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts in priority order. Day-first layouts run before the
// US-style month-first fallback, so an ambiguous 03/04/2024 reads as
// 3 April.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02-01-2006 15:04:05",
	"02-01-2006 15:04",
	"02-01-2006",
	"01/02/2006",
}

// ParseDate resolves a raw cell to a timestamp. Numeric cells are read as
// spreadsheet serial dates. When nothing matches the row falls back to
// now() with ok=false so callers can count or reject undated rows.
func ParseDate(s string, now func() time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now(), false
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		days := int(f)
		frac := f - float64(days)
		t := serialEpoch.AddDate(0, 0, days).
			Add(time.Duration(frac * 24 * float64(time.Hour)))
		return t, true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return now(), false
}
