package zaliznyak

import "errors"

// All failures in this package are ordinary returned values; nothing here
// panics on bad input. Errors are wrapped with context where they occur,
// so callers match them with errors.Is.
var (
	// ErrInvalidLetter reports a character outside the Russian alphabet.
	ErrInvalidLetter = errors.New("zaliznyak: invalid letter")

	// ErrInvalidFormat reports structurally unrecognized notation.
	ErrInvalidFormat = errors.New("zaliznyak: invalid format")

	// ErrInvalidPrime reports a prime applied to a stress schema that
	// does not admit it.
	ErrInvalidPrime = errors.New("zaliznyak: invalid prime")

	// ErrInvalidFlags reports malformed declension flags, such as a
	// repeated circled-digit marker.
	ErrInvalidFlags = errors.New("zaliznyak: invalid flags")

	// ErrIncompatible reports a valid general value that has no
	// equivalent in the narrower type it was converted to.
	ErrIncompatible = errors.New("zaliznyak: incompatible grammatical value")

	// ErrStemType reports a stem type outside the legal range for the
	// part of speech.
	ErrStemType = errors.New("zaliznyak: stem type out of range")

	// ErrUnsupportedAlternation marks stem-alternation branches the
	// dictionary defines but this engine does not implement yet, such as
	// the -мя neuters. Surfaced explicitly rather than guessed at.
	ErrUnsupportedAlternation = errors.New("zaliznyak: stem alternation not yet supported")
)
