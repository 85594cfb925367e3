package mask

import (
	"errors"
	"fmt"
)

// ErrMalformedPattern is matched by every *MalformedPatternError.
var ErrMalformedPattern = errors.New("malformed mask pattern")

// MalformedPatternError reports a mask that cannot be compiled.
type MalformedPatternError struct {
	// Mask is the source mask.
	Mask string
	// Position is the rune index of the offending mask character.
	Position int
	// Reason is a short human-readable description.
	Reason string
}

func (e *MalformedPatternError) Error() string {
	return fmt.Sprintf("%s %q at position %d: %s", ErrMalformedPattern, e.Mask, e.Position, e.Reason)
}

func (e *MalformedPatternError) Unwrap() error {
	return ErrMalformedPattern
}
