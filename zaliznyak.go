// Package zaliznyak inflects Russian nouns, adjectives and adjectival
// pronouns from their Zaliznyak dictionary classification: stem type,
// stress schema and modifier flags, as printed in the "Грамматический
// словарь русского языка". Forms are computed, never stored: the entry
// holds one stem and one descriptor, and Inflect derives any case and
// number from the shared ending tables plus the stem alternation rules.
package zaliznyak

import (
	"fmt"
	"strings"
)

// NounFromHeadword builds a noun entry from its dictionary headword,
// deriving the stem by stripping the nominative singular ending
// (сестра→сестр, чай→ча, ночь→ноч).
func NounFromHeadword(headword string, ga GenderExAnimacy, d NounDeclension) (*Noun, error) {
	info := DeclInfo{
		Case:    Nominative,
		Number:  Singular,
		Gender:  ga.Gender.Normalize(),
		Animacy: ga.Animacy,
	}
	if d.HasOverride {
		info.Gender = d.Override.Gender.Normalize()
		info.Animacy = d.Override.Animacy
	}
	ending, _ := nounEnding(info, d)
	stem, err := stripEnding(headword, ending)
	if err != nil {
		return nil, err
	}
	return NewNoun(stem, ga, d), nil
}

// AdjectiveFromHeadword builds an adjective entry from its dictionary
// headword, stripping the masculine nominative singular ending and, for
// reflexives, the -ся particle. The short-form star insertion never
// reaches the full nominative, so the stripped form is the bare stem.
func AdjectiveFromHeadword(headword string, d AdjectiveDeclension) (*Adjective, error) {
	if d.Reflexive {
		var ok bool
		headword, ok = strings.CutSuffix(headword, "ся")
		if !ok {
			return nil, fmt.Errorf("reflexive headword %q lacks -ся: %w", headword, ErrInvalidFormat)
		}
	}
	info := DeclInfo{Case: Nominative, Number: Singular, Gender: Masculine}
	ending, _ := adjectiveEnding(info, d)
	stem, err := stripEnding(headword, ending)
	if err != nil {
		return nil, err
	}
	return NewAdjective(stem, d), nil
}

// stripEnding removes a known ending from a headword, validating both
// the suffix match and the letters of the remaining stem.
func stripEnding(headword, ending string) (string, error) {
	stem, ok := strings.CutSuffix(headword, ending)
	if !ok {
		return "", fmt.Errorf("headword %q does not end in %q: %w", headword, ending, ErrInvalidFormat)
	}
	if _, err := Letters(stem); err != nil {
		return "", fmt.Errorf("headword %q: %w", headword, err)
	}
	return stem, nil
}
