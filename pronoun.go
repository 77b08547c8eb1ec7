package zaliznyak

import "fmt"

// Pronoun is a dictionary entry for adjectival pronouns (наш, чей,
// этот). The personal pronouns are suppletive and out of scope here.
type Pronoun struct {
	Stem       string
	Declension PronounDeclension
}

// NewPronoun builds a pronoun entry.
func NewPronoun(stem string, d PronounDeclension) *Pronoun {
	return &Pronoun{Stem: stem, Declension: d}
}

// Inflect computes the pronoun form for the requested context. The star
// flag fires in the masculine nominative singular and its inanimate
// accusative, where the ending is zero-type (чей, but чьего).
func (p *Pronoun) Inflect(c CaseEx, g Gender, num Number, an Animacy) (string, error) {
	mainCase, num := c.Normalize(num)
	d := p.Declension
	if _, err := PronounStemType(int(d.StemType)); err != nil {
		return "", err
	}
	if _, err := Letters(p.Stem); err != nil {
		return "", fmt.Errorf("stem %q: %w", p.Stem, err)
	}

	info := DeclInfo{Case: mainCase, Number: num, Gender: g, Animacy: an}
	ending, stressed := pronounEnding(info, d)

	buf := NewInflectionBuffer(p.Stem)
	if d.Flags.Has(FlagStar) && g == Masculine && num == Singular && info.nomOrAccInan() {
		switch ending {
		case "", "ь", "й":
			insertFleetingVowel(buf, stressed, ending != "", false)
		}
	}
	if d.Flags.Has(FlagAlternatingYo) {
		applyYoAlternation(buf, stressed)
	}
	buf.ReplaceEnding(ending)
	return buf.String(), nil
}
