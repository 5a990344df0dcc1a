package size

import "errors"

// Conversion failures wrap one of these sentinels, so callers can classify
// them with errors.Is.
var (
	// ErrOutOfRange reports a negative byte count given to Format.
	ErrOutOfRange = errors.New("byte count out of range")

	// ErrInvalidInput reports an empty or whitespace-only parse input.
	ErrInvalidInput = errors.New("empty input")

	// ErrUnknownUnit reports that no suffix in the table matches the input.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrMalformedNumber reports that the numeric part of the input could not
	// be parsed under the configured locale.
	ErrMalformedNumber = errors.New("malformed number")
)
