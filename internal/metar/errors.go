package metar

import "errors"

// Decode failures that abort the whole report. Field-level absence is
// never an error; it shows up as a nil optional field instead.
var (
	// ErrMalformedReport means the input is empty or too short to anchor
	// any positional assumptions.
	ErrMalformedReport = errors.New("malformed METAR report")

	// ErrInvalidStationID means the leading token is not a 4-character
	// alphanumeric station identifier.
	ErrInvalidStationID = errors.New("invalid station identifier")

	// ErrInvalidTimestamp means the second token is not a DDHHMMZ
	// observation timestamp.
	ErrInvalidTimestamp = errors.New("invalid observation timestamp")
)
