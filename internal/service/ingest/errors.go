package ingest

import (
	"fmt"

	"github.com/seu-repo/pos-insight/internal/domain"
)

// ParseError reports an upload none of whose rows could be mapped to a
// transaction. It carries the headers found in the file and a sample row
// so the caller can see which columns the export is missing.
type ParseError struct {
	Platform     domain.Platform
	FoundColumns []string
	SampleRow    map[string]string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"no transactions parsed from %s export: found columns %v, need an id column (Invoice No, Transaction ID, Booking ID, ...) and an amount column (Total, Amount, Net Total, ...)",
		e.Platform, e.FoundColumns,
	)
}

// DecodeError reports a file whose bytes could not be read as CSV or
// XLSX. It is a caller problem, not a processing failure.
type DecodeError struct {
	Name string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ValidationError marks a rejected upload request, as opposed to a
// failure while processing an accepted one.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
