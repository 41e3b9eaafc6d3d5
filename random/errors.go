package random

import (
	"errors"

	"github.com/pluto-org-co/randomint/entropy"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNoSecureSource is returned when no secure facility exists and the
	// insecure fallback was not enabled.
	ErrNoSecureSource = entropy.ErrNoSecureSource
)
