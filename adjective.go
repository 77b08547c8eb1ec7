package zaliznyak

import "fmt"

// Adjective is a dictionary adjective entry: the stem plus its
// classification. Full forms agree in gender, number, case and animacy;
// short forms agree in gender and number only.
type Adjective struct {
	Stem       string
	Declension AdjectiveDeclension
}

// NewAdjective builds an adjective entry.
func NewAdjective(stem string, d AdjectiveDeclension) *Adjective {
	return &Adjective{Stem: stem, Declension: d}
}

// Inflect computes the full (attributive) form for the requested
// context. Animacy only matters in the accusative slots shared with the
// nominative or genitive.
func (a *Adjective) Inflect(c CaseEx, g Gender, num Number, an Animacy) (string, error) {
	mainCase, num := c.Normalize(num)
	d := a.Declension
	if _, err := AdjectiveStemType(int(d.StemType)); err != nil {
		return "", err
	}
	if _, err := Letters(a.Stem); err != nil {
		return "", fmt.Errorf("stem %q: %w", a.Stem, err)
	}

	info := DeclInfo{Case: mainCase, Number: num, Gender: g, Animacy: an}
	ending, stressed := adjectiveEnding(info, d)

	buf := NewInflectionBuffer(a.Stem)
	if d.Flags.Has(FlagAlternatingYo) {
		applyYoAlternation(buf, stressed)
	}
	buf.ReplaceEnding(ending)
	if d.Reflexive {
		buf.AppendToEnding("ся")
	}
	return buf.String(), nil
}

// InflectShort computes the short (predicative) form. The star flag
// fires here: the masculine singular has a zero ending and receives the
// fleeting vowel (спокоен, полон, горек).
func (a *Adjective) InflectShort(g Gender, num Number) (string, error) {
	d := a.Declension
	if d.Reflexive {
		return "", fmt.Errorf("short form of a reflexive adjective: %w", ErrIncompatible)
	}
	if _, err := AdjectiveStemType(int(d.StemType)); err != nil {
		return "", err
	}
	if _, err := Letters(a.Stem); err != nil {
		return "", fmt.Errorf("stem %q: %w", a.Stem, err)
	}

	ending, stressed := adjectiveShortEnding(g, num, d)

	buf := NewInflectionBuffer(a.Stem)
	if d.Flags.Has(FlagStar) && g == Masculine && num == Singular && ending == "" {
		insertFleetingVowel(buf, stressed, false, true)
	}
	if d.Flags.Has(FlagAlternatingYo) {
		applyYoAlternation(buf, stressed)
	}
	buf.ReplaceEnding(ending)
	return buf.String(), nil
}
