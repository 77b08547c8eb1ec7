package zaliznyak

// Stem-vs-ending stress decisions. For every legal schema and context
// exactly one of IsStemStressed / IsEndingStressed holds.

// IsStemStressed reports whether stress falls on the stem for the given
// noun context.
func (s NounStress) IsStemStressed(info DeclInfo) bool {
	switch AnyStress(s) {
	case StressA:
		return true
	case StressB:
		return false
	case StressC:
		return info.Number == Singular
	case StressD:
		return info.Number == Plural
	case StressE:
		return info.Number == Singular || info.nomOrAccInan()
	case StressF:
		return info.Number == Plural && info.nomOrAccInan()
	case StressBp:
		return info.Number == Singular && info.Case == Instrumental
	case StressDp:
		return info.Number == Plural || info.Case == Accusative
	case StressFp:
		if info.Number == Singular {
			return info.Case == Accusative
		}
		return info.nomOrAccInan()
	case StressFpp:
		if info.Number == Singular {
			return info.Case == Instrumental
		}
		return info.nomOrAccInan()
	}
	return true
}

// IsEndingStressed is the complement of IsStemStressed.
func (s NounStress) IsEndingStressed(info DeclInfo) bool {
	return !s.IsStemStressed(info)
}

// IsStemStressed reports whether stress falls on the stem for the given
// pronoun context.
func (s PronounStress) IsStemStressed(info DeclInfo) bool {
	switch AnyStress(s) {
	case StressB:
		return false
	case StressF:
		return info.Number == Plural && info.nomOrAccInan()
	}
	return true
}

// IsEndingStressed is the complement of IsStemStressed.
func (s PronounStress) IsEndingStressed(info DeclInfo) bool {
	return !s.IsStemStressed(info)
}

// IsStemStressed for full-form adjectives needs no context: full forms
// never alternate by case or gender. Base schema b is ending-stressed,
// everything else keeps the stem.
func (s AdjectiveFullStress) IsStemStressed() bool {
	return AnyStress(s).Unprime() != StressB
}

// IsEndingStressed is the complement of IsStemStressed.
func (s AdjectiveFullStress) IsEndingStressed() bool {
	return !s.IsStemStressed()
}

// IsStemStressed reports whether stress falls on the stem of a short
// adjective form.
func (s AdjectiveShortStress) IsStemStressed(g Gender, n Number) bool {
	switch AnyStress(s) {
	case StressA, StressAp:
		return true
	case StressB:
		return false
	case StressBp:
		return n == Singular && g == Masculine
	case StressC:
		return (n == Singular && g != Feminine) || n == Plural
	case StressCp, StressCpp:
		return n == Singular && g != Feminine
	}
	return true
}

// IsEndingStressed is the complement of IsStemStressed.
func (s AdjectiveShortStress) IsEndingStressed(g Gender, n Number) bool {
	return !s.IsStemStressed(g, n)
}
