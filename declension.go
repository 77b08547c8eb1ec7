package zaliznyak

import (
	"fmt"
	"strings"
)

// StemType is the Zaliznyak numeric classification of a stem: 1 hard
// paired consonant, 2 soft paired consonant, 3 velar, 4 hissing, 5 ц,
// 6 vowel stem (й), 7 stem in -и, 8 the traditional third declension.
type StemType uint8

// NounStemType validates n for nouns (1–8).
func NounStemType(n int) (StemType, error) {
	if n < 1 || n > 8 {
		return 0, fmt.Errorf("noun stem type %d: %w", n, ErrStemType)
	}
	return StemType(n), nil
}

// AdjectiveStemType validates n for adjectives (1–7).
func AdjectiveStemType(n int) (StemType, error) {
	if n < 1 || n > 7 {
		return 0, fmt.Errorf("adjective stem type %d: %w", n, ErrStemType)
	}
	return StemType(n), nil
}

// PronounStemType validates n for pronouns (1, 2, 4 or 6).
func PronounStemType(n int) (StemType, error) {
	switch n {
	case 1, 2, 4, 6:
		return StemType(n), nil
	}
	return 0, fmt.Errorf("pronoun stem type %d: %w", n, ErrStemType)
}

// DeclensionFlags is the bitset of dictionary modifier marks.
type DeclensionFlags uint8

const (
	// FlagStar (*) marks a fleeting vowel in the stem.
	FlagStar DeclensionFlags = 1 << iota
	// FlagCircle (°) marks a unique stem alternation (-ин, -онок, …).
	FlagCircle
	// FlagCircledOne (①) replaces the nominative-plural ending.
	FlagCircledOne
	// FlagCircledTwo (②) replaces the genitive-plural ending.
	FlagCircledTwo
	// FlagCircledThree (③) replaces the -и dative/prepositional
	// singular of stem type 7 with -е.
	FlagCircledThree
	// FlagAlternatingYo (, ё) marks the е/ё alternation in the stem.
	FlagAlternatingYo
)

// Has reports whether all bits of flag are set.
func (f DeclensionFlags) Has(flag DeclensionFlags) bool { return f&flag == flag }

// writeDeclensionBody renders the shared part of the notation:
// stem digit, leading flags (° before *), stress, trailing flags
// (① ② ③ in order, then ", ё").
func writeDeclensionBody(b *strings.Builder, stem StemType, flags DeclensionFlags, stress string) {
	b.WriteByte('0' + byte(stem))
	if flags.Has(FlagCircle) {
		b.WriteString("°")
	}
	if flags.Has(FlagStar) {
		b.WriteByte('*')
	}
	b.WriteString(stress)
	if flags.Has(FlagCircledOne) {
		b.WriteString("①")
	}
	if flags.Has(FlagCircledTwo) {
		b.WriteString("②")
	}
	if flags.Has(FlagCircledThree) {
		b.WriteString("③")
	}
	if flags.Has(FlagAlternatingYo) {
		b.WriteString(", ё")
	}
}

// circledDigits maps every accepted spelling of the trailing digit
// flags. The circled Unicode glyphs and the ASCII fallbacks parse alike.
var circledDigits = []struct {
	text string
	flag DeclensionFlags
}{
	{"①", FlagCircledOne},
	{"(1)", FlagCircledOne},
	{"②", FlagCircledTwo},
	{"(2)", FlagCircledTwo},
	{"③", FlagCircledThree},
	{"(3)", FlagCircledThree},
}

// parseDeclensionBody consumes the shared notation from the start of s.
// It is a greedy prefix parse: it consumes as many characters as match
// and reports the count, leaving full-consumption checks to the caller.
func parseDeclensionBody(s string) (stem StemType, flags DeclensionFlags, stress AnyDualStress, n int, err error) {
	if s == "" || s[0] < '1' || s[0] > '9' {
		return 0, 0, AnyDualStress{}, 0, fmt.Errorf("declension %q: stem digit: %w", s, ErrInvalidFormat)
	}
	stem = StemType(s[0] - '0')
	n = 1

	if strings.HasPrefix(s[n:], "°") {
		flags |= FlagCircle
		n += len("°")
	}
	if n < len(s) && s[n] == '*' {
		flags |= FlagStar
		n++
	}

	stress, m, err := parseDualStressPrefix(s[n:])
	if err != nil {
		return 0, 0, AnyDualStress{}, 0, err
	}
	n += m

digits:
	for {
		for _, cd := range circledDigits {
			if strings.HasPrefix(s[n:], cd.text) {
				if flags.Has(cd.flag) {
					return 0, 0, AnyDualStress{}, 0, fmt.Errorf("repeated %s: %w", cd.text, ErrInvalidFlags)
				}
				flags |= cd.flag
				n += len(cd.text)
				continue digits
			}
		}
		break
	}

	if strings.HasPrefix(s[n:], ", ё") {
		flags |= FlagAlternatingYo
		n += len(", ё")
	}
	return stem, flags, stress, n, nil
}

// NounDeclension is the per-entry noun descriptor: stem type 1–8, one
// stress schema, modifier flags, and an optional gender/animacy override
// for nouns that decline against their own gender (жо 7*b′①).
type NounDeclension struct {
	StemType StemType
	Stress   NounStress
	Flags    DeclensionFlags

	Override    GenderExAnimacy
	HasOverride bool
}

func (d NounDeclension) String() string {
	var b strings.Builder
	b.Grow(32)
	if d.HasOverride {
		b.WriteString(d.Override.AbbrZaliznyak())
		b.WriteByte(' ')
	}
	writeDeclensionBody(&b, d.StemType, d.Flags, d.Stress.String())
	return b.String()
}

// overrideAbbrs lists gender override spellings longest first so that
// the greedy prefix match never stops at "м" inside "мо-жо".
var overrideAbbrs = []string{"мо-жо", "м-ж", "мо", "со", "жо", "м", "с", "ж"}

// ParseNounDeclensionPrefix consumes a noun declension from the start
// of s and returns the byte count consumed.
func ParseNounDeclensionPrefix(s string) (NounDeclension, int, error) {
	var d NounDeclension
	n := 0
	for _, abbr := range overrideAbbrs {
		if strings.HasPrefix(s, abbr) && len(s) > len(abbr) && s[len(abbr)] == ' ' {
			ga, err := ParseGenderExAnimacy(abbr)
			if err != nil {
				return NounDeclension{}, 0, err
			}
			d.Override, d.HasOverride = ga, true
			n = len(abbr) + 1
			break
		}
	}

	stem, flags, stress, m, err := parseDeclensionBody(s[n:])
	if err != nil {
		return NounDeclension{}, 0, err
	}
	if _, err := NounStemType(int(stem)); err != nil {
		return NounDeclension{}, 0, err
	}
	if stress.HasAlt {
		return NounDeclension{}, 0, fmt.Errorf("dual stress %s on a noun: %w", stress, ErrIncompatible)
	}
	ns, err := stress.Main.Noun()
	if err != nil {
		return NounDeclension{}, 0, err
	}
	d.StemType, d.Flags, d.Stress = stem, flags, ns
	return d, n + m, nil
}

// ParseNounDeclension parses noun declension notation, requiring the
// whole string to be consumed.
func ParseNounDeclension(s string) (NounDeclension, error) {
	d, n, err := ParseNounDeclensionPrefix(s)
	if err != nil {
		return NounDeclension{}, err
	}
	if n != len(s) {
		return NounDeclension{}, fmt.Errorf("trailing %q after declension: %w", s[n:], ErrInvalidFormat)
	}
	return d, nil
}

// AdjectiveDeclension is the per-entry adjective descriptor. Reflexive
// marks -ся adjectives; it is a property of the headword and does not
// appear in the declension notation.
type AdjectiveDeclension struct {
	StemType  StemType
	Stress    AdjectiveStress
	Flags     DeclensionFlags
	Reflexive bool
}

func (d AdjectiveDeclension) String() string {
	var b strings.Builder
	b.Grow(32)
	writeDeclensionBody(&b, d.StemType, d.Flags, d.Stress.String())
	return b.String()
}

// ParseAdjectiveDeclensionPrefix consumes an adjective declension from
// the start of s and returns the byte count consumed.
func ParseAdjectiveDeclensionPrefix(s string) (AdjectiveDeclension, int, error) {
	stem, flags, stress, n, err := parseDeclensionBody(s)
	if err != nil {
		return AdjectiveDeclension{}, 0, err
	}
	if _, err := AdjectiveStemType(int(stem)); err != nil {
		return AdjectiveDeclension{}, 0, err
	}
	as, err := NormalizeAdjective(stress)
	if err != nil {
		return AdjectiveDeclension{}, 0, err
	}
	return AdjectiveDeclension{StemType: stem, Stress: as, Flags: flags}, n, nil
}

// ParseAdjectiveDeclension parses adjective declension notation,
// requiring the whole string to be consumed.
func ParseAdjectiveDeclension(s string) (AdjectiveDeclension, error) {
	d, n, err := ParseAdjectiveDeclensionPrefix(s)
	if err != nil {
		return AdjectiveDeclension{}, err
	}
	if n != len(s) {
		return AdjectiveDeclension{}, fmt.Errorf("trailing %q after declension: %w", s[n:], ErrInvalidFormat)
	}
	return d, nil
}

// PronounDeclension is the per-entry pronoun descriptor.
type PronounDeclension struct {
	StemType StemType
	Stress   PronounStress
	Flags    DeclensionFlags
}

func (d PronounDeclension) String() string {
	var b strings.Builder
	b.Grow(16)
	writeDeclensionBody(&b, d.StemType, d.Flags, d.Stress.String())
	return b.String()
}

// ParsePronounDeclensionPrefix consumes a pronoun declension from the
// start of s and returns the byte count consumed.
func ParsePronounDeclensionPrefix(s string) (PronounDeclension, int, error) {
	stem, flags, stress, n, err := parseDeclensionBody(s)
	if err != nil {
		return PronounDeclension{}, 0, err
	}
	if _, err := PronounStemType(int(stem)); err != nil {
		return PronounDeclension{}, 0, err
	}
	if stress.HasAlt {
		return PronounDeclension{}, 0, fmt.Errorf("dual stress %s on a pronoun: %w", stress, ErrIncompatible)
	}
	ps, err := stress.Main.Pronoun()
	if err != nil {
		return PronounDeclension{}, 0, err
	}
	return PronounDeclension{StemType: stem, Flags: flags, Stress: ps}, n, nil
}

// ParsePronounDeclension parses pronoun declension notation, requiring
// the whole string to be consumed.
func ParsePronounDeclension(s string) (PronounDeclension, error) {
	d, n, err := ParsePronounDeclensionPrefix(s)
	if err != nil {
		return PronounDeclension{}, err
	}
	if n != len(s) {
		return PronounDeclension{}, fmt.Errorf("trailing %q after declension: %w", s[n:], ErrInvalidFormat)
	}
	return d, nil
}
