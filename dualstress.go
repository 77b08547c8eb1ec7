package zaliznyak

import "fmt"

// AnyDualStress is a (main, alternative) stress pair as written in the
// dictionary. The alternative covers the secondary paradigm: short forms
// for adjectives, the past tense for verbs. In shorthand notation the
// alternative may be implicit; each part of speech has its own policy
// for expanding it.
type AnyDualStress struct {
	Main   AnyStress
	Alt    AnyStress
	HasAlt bool
}

// DualOf wraps a single stress with no alternative.
func DualOf(main AnyStress) AnyDualStress {
	return AnyDualStress{Main: main}
}

// Dual builds an explicit pair.
func Dual(main, alt AnyStress) AnyDualStress {
	return AnyDualStress{Main: main, Alt: alt, HasAlt: true}
}

func (d AnyDualStress) String() string {
	if d.HasAlt {
		return d.Main.String() + "/" + d.Alt.String()
	}
	return d.Main.String()
}

// parseDualStressPrefix consumes dual-stress notation from the start of
// s, returning the bytes consumed.
func parseDualStressPrefix(s string) (AnyDualStress, int, error) {
	main, n, err := parseStressPrefix(s)
	if err != nil {
		return AnyDualStress{}, 0, err
	}
	if n >= len(s) || s[n] != '/' {
		return DualOf(main), n, nil
	}
	alt, m, err := parseStressPrefix(s[n+1:])
	if err != nil {
		return AnyDualStress{}, 0, err
	}
	return Dual(main, alt), n + 1 + m, nil
}

// ParseDualStress parses notation such as "b", "c′", "a/b" or "c′/e".
func ParseDualStress(s string) (AnyDualStress, error) {
	d, n, err := parseDualStressPrefix(s)
	if err != nil {
		return AnyDualStress{}, err
	}
	if n != len(s) {
		return AnyDualStress{}, fmt.Errorf("trailing %q after stress: %w", s[n:], ErrInvalidFormat)
	}
	return d, nil
}

// AdjectiveStress is the normalized adjective pair: full-form stress
// plus short-form stress, both always explicit.
type AdjectiveStress struct {
	Full  AdjectiveFullStress
	Short AdjectiveShortStress
}

// NormalizeAdjective expands shorthand adjective notation. A lone "c′"
// stands for main=c, alt=c′: the alternative inherits the written value
// and the main is its unprimed base.
func NormalizeAdjective(d AnyDualStress) (AdjectiveStress, error) {
	main, alt := d.Main, d.Alt
	if !d.HasAlt {
		alt = main
		main = main.Unprime()
	}
	full, err := main.AdjectiveFull()
	if err != nil {
		return AdjectiveStress{}, err
	}
	short, err := alt.AdjectiveShort()
	if err != nil {
		return AdjectiveStress{}, err
	}
	return AdjectiveStress{Full: full, Short: short}, nil
}

// Shorten inverts NormalizeAdjective: when the main stress is implied by
// the alternative it is dropped from the notation.
func (s AdjectiveStress) Shorten() AnyDualStress {
	if s.Full.Any() == s.Short.Any().Unprime() {
		return DualOf(s.Short.Any())
	}
	return Dual(s.Full.Any(), s.Short.Any())
}

func (s AdjectiveStress) String() string { return s.Shorten().String() }

// ParseAdjectiveStress parses and normalizes adjective stress notation.
func ParseAdjectiveStress(str string) (AdjectiveStress, error) {
	d, err := ParseDualStress(str)
	if err != nil {
		return AdjectiveStress{}, err
	}
	return NormalizeAdjective(d)
}

// VerbStress is the normalized verb pair: present-tense stress plus
// past-tense stress.
type VerbStress struct {
	Present VerbPresentStress
	Past    VerbPastStress
}

// NormalizeVerb expands shorthand verb notation: an absent past-tense
// stress defaults to schema a.
func NormalizeVerb(d AnyDualStress) (VerbStress, error) {
	alt := d.Alt
	if !d.HasAlt {
		alt = StressA
	}
	present, err := d.Main.VerbPresent()
	if err != nil {
		return VerbStress{}, err
	}
	past, err := alt.VerbPast()
	if err != nil {
		return VerbStress{}, err
	}
	return VerbStress{Present: present, Past: past}, nil
}

// Shorten inverts NormalizeVerb, dropping the default past-tense a.
func (s VerbStress) Shorten() AnyDualStress {
	if s.Past.Any() == StressA {
		return DualOf(s.Present.Any())
	}
	return Dual(s.Present.Any(), s.Past.Any())
}

func (s VerbStress) String() string { return s.Shorten().String() }

// ParseVerbStress parses and normalizes verb stress notation.
func ParseVerbStress(str string) (VerbStress, error) {
	d, err := ParseDualStress(str)
	if err != nil {
		return VerbStress{}, err
	}
	return NormalizeVerb(d)
}
