package zaliznyak

import "fmt"

// Noun is a dictionary noun entry: the invariant stem plus its
// classification. The surface form for any case and number is computed,
// never stored.
type Noun struct {
	Stem          string
	GenderAnimacy GenderExAnimacy
	Declension    NounDeclension
}

// NewNoun builds a noun entry.
func NewNoun(stem string, ga GenderExAnimacy, d NounDeclension) *Noun {
	return &Noun{Stem: stem, GenderAnimacy: ga, Declension: d}
}

// circleOverrides carries the ending replacements produced by a unique
// stem alternation.
type circleOverrides struct {
	nomPl    string
	genPl    string
	hasNomPl bool
	hasGenPl bool
}

// Inflect computes the surface form for the requested case and number.
func (n *Noun) Inflect(c CaseEx, num Number) (string, error) {
	mainCase, num := c.Normalize(num)

	ga := n.GenderAnimacy
	if n.Declension.HasOverride {
		ga = n.Declension.Override
	}
	info := DeclInfo{
		Case:    mainCase,
		Number:  num,
		Gender:  ga.Gender.Normalize(),
		Animacy: ga.Animacy,
	}

	d := n.Declension
	if _, err := NounStemType(int(d.StemType)); err != nil {
		return "", err
	}
	if _, err := Letters(n.Stem); err != nil {
		return "", fmt.Errorf("stem %q: %w", n.Stem, err)
	}

	buf := NewInflectionBuffer(n.Stem)

	var co circleOverrides
	if d.Flags.Has(FlagCircle) {
		var err error
		co, err = applyUniqueAlternation(buf, info)
		if err != nil {
			return "", err
		}
	}

	ending, stressed := nounEnding(info, d)

	// Irregular plural endings: explicit circled-digit marks first, then
	// whatever the unique alternation dictated.
	eff := effectiveCase(info)
	if num == Plural {
		switch eff {
		case Nominative:
			if d.Flags.Has(FlagCircledOne) {
				ending = circledOneEnding(info.Gender, d.StemType)
			} else if co.hasNomPl {
				ending = co.nomPl
			}
		case Genitive:
			if d.Flags.Has(FlagCircledTwo) {
				ending = circledTwoEnding(info.Gender, d.StemType, stressed)
			} else if co.hasGenPl {
				ending = co.genPl
			}
		}
	} else if d.Flags.Has(FlagCircledThree) && d.StemType == 7 && ending == "и" {
		switch eff {
		case Dative, Prepositional:
			ending = "е"
		}
	}

	if d.Flags.Has(FlagStar) {
		applyFleetingVowel(buf, info, d.StemType, ending, stressed)
	}
	if d.Flags.Has(FlagAlternatingYo) {
		applyYoAlternation(buf, stressed)
	}

	ending = fixHissingSpelling(buf, ending)
	buf.ReplaceEnding(ending)
	return buf.String(), nil
}

// effectiveCase resolves the accusative onto the case it borrows forms
// from: everywhere except the feminine and neuter singular, which have
// accusative slots of their own.
func effectiveCase(info DeclInfo) Case {
	if info.Case != Accusative {
		return info.Case
	}
	if info.Number == Singular && info.Gender != Masculine {
		return Accusative
	}
	return AccusativeCase(info.Animacy)
}

// circledOneEnding is the ① irregular nominative plural: -а/-я for
// masculines (дома́, учителя́), -ы/-и for neuters (пле́чи).
func circledOneEnding(g Gender, t StemType) string {
	if g == Masculine {
		switch t {
		case 1, 3, 4, 5:
			return "а"
		}
		return "я"
	}
	switch t {
	case 1, 5:
		return "ы"
	}
	return "и"
}

// circledTwoEnding is the ② irregular genitive plural: zero for
// masculines (сапог, глаз), the masculine column for neuters
// (облако́в, пла́тьев), -ей for feminines.
func circledTwoEnding(g Gender, t StemType, stressed bool) string {
	switch g {
	case Masculine:
		return ""
	case Feminine:
		return "ей"
	}
	pair := nounEndings[Genitive][Plural][Masculine][t-1]
	idx := pair[0]
	if stressed {
		idx = pair[1]
	}
	return idx.decode()
}

// applyUniqueAlternation performs the circle-flag stem rewrites. The
// dispatch is ordered suffix matching: each branch encodes one
// irregular pattern, not a general suffix table.
func applyUniqueAlternation(buf *InflectionBuffer, info DeclInfo) (circleOverrides, error) {
	n := buf.StemLetterCount()
	at := func(i int) rune {
		if i < 0 || i >= n {
			return 0
		}
		return buf.StemLetterAt(i).Rune()
	}
	plural := info.Number == Plural

	switch {
	case (at(n-6) == 'о' || at(n-6) == 'ё') && at(n-5) == 'н' && at(n-4) == 'о' &&
		at(n-3) == 'ч' && at(n-2) == 'е' && at(n-1) == 'к':
		// -оночек (мышоночек → мышатки)
		if plural {
			buf.SetStemLetter(n-6, yaForYo(at(n-6)))
			buf.SetStemLetter(n-5, mustLetter('т'))
			buf.SetStemLetter(n-4, mustLetter('к'))
			buf.ShrinkStemBy(3)
		} else if !info.nomOrAccInan() {
			buf.RemoveFromStem(n-2, n-1)
		}
		return circleOverrides{}, nil

	case (at(n-4) == 'о' || at(n-4) == 'ё') && at(n-3) == 'н' && at(n-2) == 'о' && at(n-1) == 'к':
		// -онок (телёнок → телята, телят)
		if plural {
			buf.SetStemLetter(n-4, yaForYo(at(n-4)))
			buf.SetStemLetter(n-3, mustLetter('т'))
			buf.ShrinkStemBy(2)
			return circleOverrides{nomPl: "а", hasNomPl: true, hasGenPl: true}, nil
		}
		if !info.nomOrAccInan() {
			buf.RemoveFromStem(n-2, n-1)
		}
		return circleOverrides{}, nil

	case n >= 3 && at(n-2) == 'о' && at(n-1) == 'к':
		// -ок (щенок → щенята, щенят)
		if plural {
			v := mustLetter('я')
			if buf.StemLetterAt(n - 3).IsSibilant() {
				v = mustLetter('а')
			}
			buf.SetStemLetter(n-2, v)
			buf.SetStemLetter(n-1, mustLetter('т'))
			return circleOverrides{nomPl: "а", hasNomPl: true, hasGenPl: true}, nil
		}
		if !info.nomOrAccInan() {
			buf.RemoveFromStem(n-2, n-1)
		}
		return circleOverrides{}, nil

	case at(n-2) == 'и' && at(n-1) == 'н':
		// -ин (гражданин → граждане, граждан)
		if plural {
			buf.ShrinkStemBy(2)
			return circleOverrides{nomPl: "е", hasNomPl: true, hasGenPl: true}, nil
		}
		return circleOverrides{}, nil

	case info.Gender == Neuter && at(n-1) == 'м':
		// -мя neuters (имя, время): recognized but not yet implemented.
		return circleOverrides{}, fmt.Errorf("-мя alternation: %w", ErrUnsupportedAlternation)
	}
	return circleOverrides{}, fmt.Errorf("no matching alternation for %q: %w", buf.Stem(), ErrUnsupportedAlternation)
}

// yaForYo maps the alternating vowel of the young-animal suffixes:
// о→а, ё→я.
func yaForYo(r rune) Letter {
	if r == 'ё' {
		return mustLetter('я')
	}
	return mustLetter('а')
}

// applyFleetingVowel performs the star-flag vowel alternation. The
// deletion branch serves masculines and feminine stem type 8 (сон→сна,
// любовь→любви); the insertion branch serves the zero-ending forms of
// the remaining feminines and neuters (земля→земель, окно→окон).
func applyFleetingVowel(buf *InflectionBuffer, info DeclInfo, t StemType, ending string, stressed bool) {
	if info.Gender == Masculine || (info.Gender == Feminine && t == 8) {
		// The feminine instrumental -ью keeps its vowel (любовью).
		if ending != "ью" && endingStartsWithVowel(ending) {
			deleteFleetingVowel(buf)
		}
		return
	}
	switch ending {
	case "", "ь", "й":
		insertFleetingVowel(buf, stressed, ending != "", false)
	}
}

func endingStartsWithVowel(ending string) bool {
	if ending == "" {
		return false
	}
	l := Letter{ending[0], ending[1]}
	return l.IsVowel()
}

// deleteFleetingVowel removes the last stem vowel, leaving й after a
// vowel (боец→бойца) and ь after л or before к (лёд→льда,
// конёк→конька); plain о and most е vanish outright (сон→сна,
// день→дня).
func deleteFleetingVowel(buf *InflectionBuffer) {
	n := buf.StemLetterCount()
	vi := -1
	for i := n - 1; i >= 0; i-- {
		if buf.StemLetterAt(i).IsVowel() {
			vi = i
			break
		}
	}
	if vi <= 0 {
		return
	}
	v := buf.StemLetterAt(vi).Rune()
	prev := buf.StemLetterAt(vi - 1).Rune()
	nextIsK := vi+1 < n && buf.StemLetterAt(vi+1).Rune() == 'к'

	switch {
	case buf.StemLetterAt(vi - 1).IsVowel():
		buf.SetStemLetter(vi, mustLetter('й'))
	case v == 'о':
		buf.RemoveFromStem(vi, vi+1)
	case prev == 'л' || nextIsK:
		buf.SetStemLetter(vi, mustLetter('ь'))
	default:
		buf.RemoveFromStem(vi, vi+1)
	}
}

// insertFleetingVowel inserts the fleeting vowel before the final stem
// consonant of a zero-ending form. The letter depends on the
// environment: a soft sign or й softens to е/и (статей, копий), velars
// take о (кукол, окон, сказок), and a stressed slot takes ё except
// after hissing consonants, before ц, and before a soft ending
// (сестёр, кишок, овец, but земель).
//
// softEnding marks a zero-type ending spelled ь or й. adjective selects
// the short-form convention: after ь/й the vowel is е regardless of
// stress (горек, спокоен).
func insertFleetingVowel(buf *InflectionBuffer, stressed, softEnding, adjective bool) {
	n := buf.StemLetterCount()
	if n < 2 {
		return
	}
	soft := 'и'
	if stressed || adjective {
		soft = 'е'
	}

	last := buf.StemLetterAt(n - 1).Rune()
	if last == 'ь' || last == 'й' {
		buf.SetStemLetter(n-1, mustLetter(soft))
		return
	}

	prev := buf.StemLetterAt(n - 2)
	lastL := buf.StemLetterAt(n - 1)
	switch {
	case prev.Rune() == 'ь' || prev.Rune() == 'й':
		buf.SetStemLetter(n-2, mustLetter(soft))
	case prev.Rune() == 'к' || prev.Rune() == 'г' || prev.Rune() == 'х':
		buf.InsertBetweenLastTwoStemLetters(mustLetter('о'))
	case lastL.Rune() == 'к' || lastL.Rune() == 'г' || lastL.Rune() == 'х':
		v := 'о'
		if prev.IsHissing() && !stressed {
			v = 'е'
		}
		buf.InsertBetweenLastTwoStemLetters(mustLetter(v))
	case prev.Rune() == 'л':
		buf.InsertBetweenLastTwoStemLetters(mustLetter('о'))
	case stressed:
		switch {
		case softEnding || lastL.Rune() == 'ц':
			buf.InsertBetweenLastTwoStemLetters(mustLetter('е'))
		case prev.IsHissing():
			buf.InsertBetweenLastTwoStemLetters(mustLetter('о'))
		default:
			buf.InsertBetweenLastTwoStemLetters(mustLetter('ё'))
		}
	default:
		buf.InsertBetweenLastTwoStemLetters(mustLetter('е'))
	}
}

// applyYoAlternation handles the ", ё" mark: a stressed ending demotes
// the stem's ё to е (шёлк→шелка́); a stem-stressed form promotes the
// last е to ё (ведро→вёдра).
func applyYoAlternation(buf *InflectionBuffer, endingStressed bool) {
	n := buf.StemLetterCount()
	if endingStressed {
		for i := n - 1; i >= 0; i-- {
			if buf.StemLetterAt(i).Rune() == 'ё' {
				buf.SetStemLetter(i, mustLetter('е'))
				return
			}
		}
		return
	}
	for i := n - 1; i >= 0; i-- {
		if buf.StemLetterAt(i).Rune() == 'ё' {
			return
		}
	}
	for i := n - 1; i >= 0; i-- {
		if buf.StemLetterAt(i).Rune() == 'е' {
			buf.SetStemLetter(i, mustLetter('ё'))
			return
		}
	}
}

// fixHissingSpelling applies the ча/ща, чу/щу orthography at the
// stem/ending seam, needed by stem type 8 where hard and hissing stems
// share one column (ночь→ночам, путь→путям).
func fixHissingSpelling(buf *InflectionBuffer, ending string) string {
	if ending == "" || buf.StemLetterCount() == 0 {
		return ending
	}
	last := buf.StemLetterAt(buf.StemLetterCount() - 1)
	if !last.IsSibilant() {
		return ending
	}
	switch first := (Letter{ending[0], ending[1]}).Rune(); first {
	case 'я':
		return "а" + ending[2:]
	case 'ю':
		return "у" + ending[2:]
	}
	return ending
}
