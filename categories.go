package zaliznyak

import "fmt"

// Case is one of the six primary grammatical cases.
type Case uint8

const (
	Nominative Case = iota
	Genitive
	Dative
	Accusative
	Instrumental
	Prepositional
)

// AllCases lists the primary cases in dictionary order.
var AllCases = [...]Case{Nominative, Genitive, Dative, Accusative, Instrumental, Prepositional}

func (c Case) String() string {
	switch c {
	case Nominative:
		return "nominative"
	case Genitive:
		return "genitive"
	case Dative:
		return "dative"
	case Accusative:
		return "accusative"
	case Instrumental:
		return "instrumental"
	case Prepositional:
		return "prepositional"
	}
	return fmt.Sprintf("case(%d)", uint8(c))
}

// Abbr returns the conventional three-letter abbreviation.
func (c Case) Abbr() string {
	switch c {
	case Nominative:
		return "nom"
	case Genitive:
		return "gen"
	case Dative:
		return "dat"
	case Accusative:
		return "acc"
	case Instrumental:
		return "ins"
	case Prepositional:
		return "prp"
	}
	return "?"
}

// CaseEx extends Case with the secondary cases. The secondary values are
// contextual aliases: each normalizes to exactly one primary case, with
// the translative additionally forcing the plural.
type CaseEx uint8

const (
	// Partitive is the "second genitive" (чашка чаю).
	Partitive CaseEx = CaseEx(Prepositional) + 1 + iota
	// Translative is the "подался в солдаты" case; always plural.
	Translative
	// Locative is the "second prepositional" (в лесу).
	Locative
)

// Ex widens a primary case. Total and lossless.
func (c Case) Ex() CaseEx { return CaseEx(c) }

// IsSecondary reports whether c is one of the three secondary cases.
func (c CaseEx) IsSecondary() bool { return c > CaseEx(Prepositional) }

// Main narrows c to a primary case, failing for secondary values.
func (c CaseEx) Main() (Case, error) {
	if c.IsSecondary() {
		return 0, fmt.Errorf("secondary case %s: %w", c, ErrIncompatible)
	}
	return Case(c), nil
}

// Normalize maps c to its primary case, applying the fixed defaulting
// policy: partitive→genitive, translative→(nominative, plural),
// locative→prepositional. The returned number is n except where the
// secondary case forces one.
func (c CaseEx) Normalize(n Number) (Case, Number) {
	switch c {
	case Partitive:
		return Genitive, n
	case Translative:
		return Nominative, Plural
	case Locative:
		return Prepositional, n
	}
	return Case(c), n
}

func (c CaseEx) String() string {
	switch c {
	case Partitive:
		return "partitive"
	case Translative:
		return "translative"
	case Locative:
		return "locative"
	}
	return Case(c).String()
}

// Number distinguishes singular from plural.
type Number uint8

const (
	Singular Number = iota
	Plural
)

// AllNumbers lists both numbers.
var AllNumbers = [...]Number{Singular, Plural}

func (n Number) String() string {
	if n == Plural {
		return "plural"
	}
	return "singular"
}

// Animacy distinguishes animate from inanimate nouns; it decides which
// case the accusative borrows its form from.
type Animacy uint8

const (
	Inanimate Animacy = iota
	Animate
)

func (a Animacy) String() string {
	if a == Animate {
		return "animate"
	}
	return "inanimate"
}

// AccusativeCase returns the primary case whose forms the accusative
// borrows: nominative for inanimates, genitive for animates. This single
// rule threads through stress decisions and ending lookup alike.
func AccusativeCase(a Animacy) Case {
	if a == Animate {
		return Genitive
	}
	return Nominative
}

// AccIsNom is the three-way accusative-resolution predicate. It reports
// (true, true) when forms of c coincide with the nominative under a
// (nominative itself, or an inanimate accusative), (false, true) when
// they coincide with the genitive, and ok=false for every other case.
func (c Case) AccIsNom(a Animacy) (isNom, ok bool) {
	switch c {
	case Nominative:
		return true, true
	case Genitive:
		return false, true
	case Accusative:
		return a == Inanimate, true
	}
	return false, false
}

// Gender is one of the three primary genders.
type Gender uint8

const (
	Masculine Gender = iota
	Neuter
	Feminine
)

// AllGenders lists the primary genders.
var AllGenders = [...]Gender{Masculine, Neuter, Feminine}

func (g Gender) String() string {
	switch g {
	case Masculine:
		return "masculine"
	case Neuter:
		return "neuter"
	case Feminine:
		return "feminine"
	}
	return fmt.Sprintf("gender(%d)", uint8(g))
}

// GenderEx extends Gender with the common gender of epicene nouns
// (сирота, судья).
type GenderEx uint8

// Common is the epicene gender; it has no primary equivalent and
// normalizes to feminine.
const Common GenderEx = GenderEx(Feminine) + 1

// Ex widens a primary gender. Total and lossless.
func (g Gender) Ex() GenderEx { return GenderEx(g) }

// Main narrows g, failing for the common gender.
func (g GenderEx) Main() (Gender, error) {
	if g == Common {
		return 0, fmt.Errorf("common gender: %w", ErrIncompatible)
	}
	return Gender(g), nil
}

// Normalize maps g to a primary gender, defaulting common to feminine.
func (g GenderEx) Normalize() Gender {
	if g == Common {
		return Feminine
	}
	return Gender(g)
}

func (g GenderEx) String() string {
	if g == Common {
		return "common"
	}
	return Gender(g).String()
}

// GenderAnimacy bundles a primary gender with animacy.
type GenderAnimacy struct {
	Gender  Gender
	Animacy Animacy
}

// GenderExAnimacy bundles an extended gender with animacy. The pairing
// of Common with Animate is the мо-жо slot of the dictionary.
type GenderExAnimacy struct {
	Gender  GenderEx
	Animacy Animacy
}

// CommonAnimate is the мо-жо value for animate epicene nouns.
var CommonAnimate = GenderExAnimacy{Gender: Common, Animacy: Animate}

// Ex widens ga. Total and lossless.
func (ga GenderAnimacy) Ex() GenderExAnimacy {
	return GenderExAnimacy{Gender: ga.Gender.Ex(), Animacy: ga.Animacy}
}

// Main narrows ga, failing for the common gender.
func (ga GenderExAnimacy) Main() (GenderAnimacy, error) {
	g, err := ga.Gender.Main()
	if err != nil {
		return GenderAnimacy{}, err
	}
	return GenderAnimacy{Gender: g, Animacy: ga.Animacy}, nil
}

// Normalize maps ga onto the primary genders, common→feminine.
func (ga GenderExAnimacy) Normalize() GenderAnimacy {
	return GenderAnimacy{Gender: ga.Gender.Normalize(), Animacy: ga.Animacy}
}

// AbbrZaliznyak returns the dictionary abbreviation: м, мо, с, со, ж,
// жо, м-ж or мо-жо.
func (ga GenderExAnimacy) AbbrZaliznyak() string {
	var base string
	switch ga.Gender {
	case GenderEx(Masculine):
		base = "м"
	case GenderEx(Neuter):
		base = "с"
	case GenderEx(Feminine):
		base = "ж"
	case Common:
		if ga.Animacy == Animate {
			return "мо-жо"
		}
		return "м-ж"
	}
	if ga.Animacy == Animate {
		return base + "о"
	}
	return base
}

// ParseGenderExAnimacy parses a Zaliznyak gender/animacy abbreviation.
func ParseGenderExAnimacy(s string) (GenderExAnimacy, error) {
	switch s {
	case "м":
		return GenderExAnimacy{Gender: GenderEx(Masculine)}, nil
	case "мо":
		return GenderExAnimacy{Gender: GenderEx(Masculine), Animacy: Animate}, nil
	case "с":
		return GenderExAnimacy{Gender: GenderEx(Neuter)}, nil
	case "со":
		return GenderExAnimacy{Gender: GenderEx(Neuter), Animacy: Animate}, nil
	case "ж":
		return GenderExAnimacy{Gender: GenderEx(Feminine)}, nil
	case "жо":
		return GenderExAnimacy{Gender: GenderEx(Feminine), Animacy: Animate}, nil
	case "м-ж":
		return GenderExAnimacy{Gender: Common}, nil
	case "мо-жо":
		return CommonAnimate, nil
	}
	return GenderExAnimacy{}, fmt.Errorf("gender abbreviation %q: %w", s, ErrInvalidFormat)
}

// DeclInfo is the grammatical context of one inflection decision. It is
// built fresh for every request and never mutated.
type DeclInfo struct {
	Case    Case
	Number  Number
	Gender  Gender
	Animacy Animacy
}

// nomOrAccInan reports whether the context's forms coincide with the
// nominative: the nominative itself, or an inanimate accusative.
func (i DeclInfo) nomOrAccInan() bool {
	isNom, ok := i.Case.AccIsNom(i.Animacy)
	return ok && isNom
}

// ParseCaseEx recognizes an English case name or its three-letter
// abbreviation, including the secondary cases.
func ParseCaseEx(s string) (CaseEx, error) {
	switch s {
	case "nominative", "nom":
		return Nominative.Ex(), nil
	case "genitive", "gen":
		return Genitive.Ex(), nil
	case "dative", "dat":
		return Dative.Ex(), nil
	case "accusative", "acc":
		return Accusative.Ex(), nil
	case "instrumental", "ins":
		return Instrumental.Ex(), nil
	case "prepositional", "prp":
		return Prepositional.Ex(), nil
	case "partitive", "prt":
		return Partitive, nil
	case "translative", "trl":
		return Translative, nil
	case "locative", "loc":
		return Locative, nil
	}
	return 0, fmt.Errorf("case %q: %w", s, ErrInvalidFormat)
}
