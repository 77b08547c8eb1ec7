package zaliznyak

import (
	"fmt"
	"unicode/utf8"
)

// Letter is a single lowercase Cyrillic letter in its 2-byte UTF-8
// encoding. The whole Russian alphabet (а–я plus ё) lives in the U+0400
// block, so every letter occupies exactly two bytes; this makes letter
// arithmetic on byte buffers a matter of even offsets.
type Letter [2]byte

// letterBytes is the UTF-8 size of one Letter.
const letterBytes = 2

// LetterOf encodes r as a Letter. It reports false for anything outside
// the lowercase Russian alphabet.
func LetterOf(r rune) (Letter, bool) {
	if (r < 'а' || r > 'я') && r != 'ё' {
		return Letter{}, false
	}
	var l Letter
	utf8.EncodeRune(l[:], r)
	return l, true
}

// Rune decodes the letter back to its code point.
func (l Letter) Rune() rune {
	r, _ := utf8.DecodeRune(l[:])
	return r
}

func (l Letter) String() string { return string(l[:]) }

// IsVowel reports whether l is one of the ten vowel letters.
func (l Letter) IsVowel() bool {
	switch l.Rune() {
	case 'а', 'е', 'ё', 'и', 'о', 'у', 'ы', 'э', 'ю', 'я':
		return true
	}
	return false
}

// IsConsonant reports whether l is a consonant letter. The signs ь and ъ
// are neither vowels nor consonants.
func (l Letter) IsConsonant() bool {
	switch l.Rune() {
	case 'ь', 'ъ':
		return false
	}
	return !l.IsVowel()
}

// IsHissing reports whether l is one of the hissing consonants ж ч ш щ.
func (l Letter) IsHissing() bool {
	switch l.Rune() {
	case 'ж', 'ч', 'ш', 'щ':
		return true
	}
	return false
}

// IsSibilant reports whether l is a sibilant: the hissing consonants
// plus ц.
func (l Letter) IsSibilant() bool {
	return l.IsHissing() || l.Rune() == 'ц'
}

// mustLetter is for compile-time-constant letters only.
func mustLetter(r rune) Letter {
	l, ok := LetterOf(r)
	if !ok {
		panic("zaliznyak: not a Russian letter: " + string(r))
	}
	return l
}

// Letters converts s to its letter sequence. Every rune must belong to
// the lowercase Russian alphabet.
func Letters(s string) ([]Letter, error) {
	out := make([]Letter, 0, len(s)/letterBytes)
	for _, r := range s {
		l, ok := LetterOf(r)
		if !ok {
			return nil, fmt.Errorf("%q: %w", r, ErrInvalidLetter)
		}
		out = append(out, l)
	}
	return out, nil
}

// LettersString joins a letter sequence back into a string.
func LettersString(ls []Letter) string {
	b := make([]byte, 0, len(ls)*letterBytes)
	for _, l := range ls {
		b = append(b, l[0], l[1])
	}
	return string(b)
}
