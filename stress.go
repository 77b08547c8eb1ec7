package zaliznyak

import "fmt"

// AnyStress is a stress schema letter a–f, optionally primed. Only c and
// f admit a double prime; every base letter admits a single prime.
type AnyStress uint8

const (
	StressA AnyStress = iota
	StressB
	StressC
	StressD
	StressE
	StressF
	StressAp  // a′
	StressBp  // b′
	StressCp  // c′
	StressDp  // d′
	StressEp  // e′
	StressFp  // f′
	StressCpp // c″
	StressFpp // f″

	stressCount
)

// HasSinglePrime reports whether s carries exactly one prime.
func (s AnyStress) HasSinglePrime() bool { return s >= StressAp && s <= StressFp }

// HasDoublePrime reports whether s carries a double prime.
func (s AnyStress) HasDoublePrime() bool { return s == StressCpp || s == StressFpp }

// HasAnyPrimes reports whether s carries any prime at all.
func (s AnyStress) HasAnyPrimes() bool { return s >= StressAp }

// Unprime strips all primes, leaving the base schema letter.
func (s AnyStress) Unprime() AnyStress {
	switch {
	case s.HasSinglePrime():
		return s - StressAp
	case s == StressCpp:
		return StressC
	case s == StressFpp:
		return StressF
	}
	return s
}

// AddSinglePrime returns the single-primed form of s's base letter.
// Every base letter supports one prime, so this fails only for values
// outside the schema set.
func (s AnyStress) AddSinglePrime() (AnyStress, bool) {
	base := s.Unprime()
	if base > StressF {
		return 0, false
	}
	return base + StressAp, true
}

// AddDoublePrime returns the double-primed form of s's base letter.
// Only c and f admit a double prime.
func (s AnyStress) AddDoublePrime() (AnyStress, bool) {
	switch s.Unprime() {
	case StressC:
		return StressCpp, true
	case StressF:
		return StressFpp, true
	}
	return 0, false
}

func (s AnyStress) String() string {
	base := "abcdef"[s.Unprime()]
	switch {
	case s.HasDoublePrime():
		return string(base) + "″" // ″
	case s.HasSinglePrime():
		return string(base) + "′" // ′
	}
	return string(base)
}

// parseStressPrefix consumes a stress schema from the start of s and
// returns the value together with the byte count consumed. Both the
// typographic primes (′ ″) and their ASCII stand-ins (' " '') parse.
func parseStressPrefix(s string) (AnyStress, int, error) {
	if s == "" {
		return 0, 0, fmt.Errorf("empty stress: %w", ErrInvalidFormat)
	}
	if s[0] < 'a' || s[0] > 'f' {
		return 0, 0, fmt.Errorf("stress letter %q: %w", s[0], ErrInvalidFormat)
	}
	base := AnyStress(s[0] - 'a')
	rest := s[1:]

	primes, n := 0, 0
loop:
	for primes < 2 {
		switch {
		case len(rest) > 0 && rest[0] == '\'':
			primes++
			rest, n = rest[1:], n+1
		case len(rest) > 0 && rest[0] == '"':
			primes += 2
			rest, n = rest[1:], n+1
		case len(rest) >= 3 && rest[:3] == "′":
			primes++
			rest, n = rest[3:], n+3
		case len(rest) >= 3 && rest[:3] == "″":
			primes += 2
			rest, n = rest[3:], n+3
		default:
			break loop
		}
	}

	switch primes {
	case 0:
		return base, 1, nil
	case 1:
		p, ok := base.AddSinglePrime()
		if !ok {
			return 0, 0, fmt.Errorf("%s′: %w", base, ErrInvalidPrime)
		}
		return p, 1 + n, nil
	case 2:
		p, ok := base.AddDoublePrime()
		if !ok {
			return 0, 0, fmt.Errorf("%s″: %w", base, ErrInvalidPrime)
		}
		return p, 1 + n, nil
	}
	return 0, 0, fmt.Errorf("stress %q: %w", s, ErrInvalidPrime)
}

// ParseStress parses a full stress notation such as "b", "c′" or "f″".
func ParseStress(s string) (AnyStress, error) {
	v, n, err := parseStressPrefix(s)
	if err != nil {
		return 0, err
	}
	if n != len(s) {
		return 0, fmt.Errorf("trailing %q after stress: %w", s[n:], ErrInvalidFormat)
	}
	return v, nil
}

// The dictionary restricts which schemas each part of speech may carry.
// Each subset is its own type: narrowing is fallible, widening total.

// NounStress is the noun subset: a b c d e f b′ d′ f′ f″.
type NounStress AnyStress

// PronounStress is the pronoun subset: a b f.
type PronounStress AnyStress

// AdjectiveFullStress is the full-form adjective subset: the base
// letters a b c and their single-primed forms.
type AdjectiveFullStress AnyStress

// AdjectiveShortStress is the short-form adjective subset:
// a a′ b b′ c c′ c″.
type AdjectiveShortStress AnyStress

// VerbPresentStress is the present-tense subset: a b c c′.
// Conjugation itself is future work; the subset exists so verb stress
// notation converts and round-trips.
type VerbPresentStress AnyStress

// VerbPastStress is the past-tense subset: a b c c′ c″.
type VerbPastStress AnyStress

func stressIn(s AnyStress, set ...AnyStress) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Noun narrows s to the noun subset.
func (s AnyStress) Noun() (NounStress, error) {
	if !stressIn(s, StressA, StressB, StressC, StressD, StressE, StressF,
		StressBp, StressDp, StressFp, StressFpp) {
		return 0, fmt.Errorf("noun stress %s: %w", s, ErrIncompatible)
	}
	return NounStress(s), nil
}

// Pronoun narrows s to the pronoun subset.
func (s AnyStress) Pronoun() (PronounStress, error) {
	if !stressIn(s, StressA, StressB, StressF) {
		return 0, fmt.Errorf("pronoun stress %s: %w", s, ErrIncompatible)
	}
	return PronounStress(s), nil
}

// AdjectiveFull narrows s to the full-form adjective subset.
func (s AnyStress) AdjectiveFull() (AdjectiveFullStress, error) {
	if !stressIn(s, StressA, StressB, StressC, StressAp, StressBp, StressCp) {
		return 0, fmt.Errorf("full-form adjective stress %s: %w", s, ErrIncompatible)
	}
	return AdjectiveFullStress(s), nil
}

// AdjectiveShort narrows s to the short-form adjective subset.
func (s AnyStress) AdjectiveShort() (AdjectiveShortStress, error) {
	if !stressIn(s, StressA, StressAp, StressB, StressBp, StressC, StressCp, StressCpp) {
		return 0, fmt.Errorf("short-form adjective stress %s: %w", s, ErrIncompatible)
	}
	return AdjectiveShortStress(s), nil
}

// VerbPresent narrows s to the present-tense subset.
func (s AnyStress) VerbPresent() (VerbPresentStress, error) {
	if !stressIn(s, StressA, StressB, StressC, StressCp) {
		return 0, fmt.Errorf("present-tense stress %s: %w", s, ErrIncompatible)
	}
	return VerbPresentStress(s), nil
}

// VerbPast narrows s to the past-tense subset.
func (s AnyStress) VerbPast() (VerbPastStress, error) {
	if !stressIn(s, StressA, StressB, StressC, StressCp, StressCpp) {
		return 0, fmt.Errorf("past-tense stress %s: %w", s, ErrIncompatible)
	}
	return VerbPastStress(s), nil
}

// Any widens back to the unrestricted schema type.
func (s NounStress) Any() AnyStress           { return AnyStress(s) }
func (s PronounStress) Any() AnyStress        { return AnyStress(s) }
func (s AdjectiveFullStress) Any() AnyStress  { return AnyStress(s) }
func (s AdjectiveShortStress) Any() AnyStress { return AnyStress(s) }
func (s VerbPresentStress) Any() AnyStress    { return AnyStress(s) }
func (s VerbPastStress) Any() AnyStress       { return AnyStress(s) }

func (s NounStress) String() string           { return AnyStress(s).String() }
func (s PronounStress) String() string        { return AnyStress(s).String() }
func (s AdjectiveFullStress) String() string  { return AnyStress(s).String() }
func (s AdjectiveShortStress) String() string { return AnyStress(s).String() }
func (s VerbPresentStress) String() string    { return AnyStress(s).String() }
func (s VerbPastStress) String() string       { return AnyStress(s).String() }

// ParseNounStress parses noun stress notation.
func ParseNounStress(s string) (NounStress, error) {
	v, err := ParseStress(s)
	if err != nil {
		return 0, err
	}
	return v.Noun()
}

// ParsePronounStress parses pronoun stress notation.
func ParsePronounStress(s string) (PronounStress, error) {
	v, err := ParseStress(s)
	if err != nil {
		return 0, err
	}
	return v.Pronoun()
}
