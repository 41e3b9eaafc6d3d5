package entropy

import "errors"

var (
	// ErrNoSecureSource is returned when none of the candidate facilities passed
	// its probe.
	ErrNoSecureSource = errors.New("no secure random source available")
	// ErrMalformedInput signals a caller bug: wrong buffer type, width or size.
	ErrMalformedInput = errors.New("malformed entropy request")
	// ErrUnsupported is returned by facilities that cannot work on this platform.
	ErrUnsupported = errors.New("facility not supported")
)
