package zaliznyak

import "strings"

// endingIndex packs a reference into the shared ending blob: the low six
// bits are the start offset in 2-letter units, the high two bits the
// length in letters. The raw zero value doubles as the "no ending"
// marker and, in accusative slots, as the resolve-through-animacy
// sentinel; the raw value 1 is the existing-but-empty ending. Both
// render as zero appended bytes but are interned separately so table
// construction can audit them.
type endingIndex uint8

const (
	endingNone  endingIndex = 0
	endingEmpty endingIndex = 1
)

// endingPair holds the unstressed and stressed spelling of one table
// slot. Equal halves mean the slot never alternates.
type endingPair [2]endingIndex

// endingBlob is the shared letter blob every table indexes into. Built
// once at init; read-only afterwards, safe for concurrent readers.
var endingBlob []Letter

func (e endingIndex) decode() string {
	length := int(e >> 6)
	if length == 0 {
		return ""
	}
	off := int(e&0x3f) * 2
	return LettersString(endingBlob[off : off+length])
}

// endingTableBuilder interns ending spellings into the blob while the
// static tables are assembled.
type endingTableBuilder struct {
	offsets    map[string]endingIndex
	noneSlots  int
	emptySlots int
}

func newEndingTableBuilder() *endingTableBuilder {
	return &endingTableBuilder{offsets: make(map[string]endingIndex)}
}

// intern returns the packed index for one spelling. "-" is the
// no-ending slot, "0" the existing-but-empty ending. Endings start on
// 2-letter boundaries; odd lengths leave one padding letter.
func (tb *endingTableBuilder) intern(s string) endingIndex {
	switch s {
	case "-":
		tb.noneSlots++
		return endingNone
	case "0":
		tb.emptySlots++
		return endingEmpty
	}
	if idx, ok := tb.offsets[s]; ok {
		return idx
	}
	ls, err := Letters(s)
	if err != nil || len(ls) == 0 || len(ls) > 3 {
		panic("zaliznyak: bad ending literal " + s)
	}
	if len(endingBlob)%2 == 1 {
		pad, _ := LetterOf('ъ')
		endingBlob = append(endingBlob, pad)
	}
	off := len(endingBlob) / 2
	if off > 0x3f {
		panic("zaliznyak: ending blob overflow")
	}
	endingBlob = append(endingBlob, ls...)
	idx := endingIndex(len(ls)<<6 | off)
	tb.offsets[s] = idx
	return idx
}

// cell parses one table literal: either a single spelling used for both
// stress variants, or "unstressed stressed".
func (tb *endingTableBuilder) cell(s string) endingPair {
	u, st, found := strings.Cut(s, " ")
	if !found {
		i := tb.intern(s)
		return endingPair{i, i}
	}
	return endingPair{tb.intern(u), tb.intern(st)}
}

// nounEnding selects the ending for one noun context: table lookup,
// animacy resolution of the accusative sentinel, then the stress-variant
// choice. The second result reports whether the ending is stressed.
func nounEnding(info DeclInfo, d NounDeclension) (string, bool) {
	c := info.Case
	pair := nounEndings[c][info.Number][info.Gender][d.StemType-1]
	if c == Accusative && pair == (endingPair{}) {
		c = AccusativeCase(info.Animacy)
		pair = nounEndings[c][info.Number][info.Gender][d.StemType-1]
	}
	stressed := d.Stress.IsEndingStressed(info)
	idx := pair[0]
	if stressed {
		idx = pair[1]
	}
	return idx.decode(), stressed
}

// adjectiveBucket maps the context onto the table's second axis:
// the three singular genders, or the merged plural.
func adjectiveBucket(g Gender, n Number) int {
	if n == Plural {
		return 3
	}
	return int(g)
}

// adjectiveEnding selects the full-form ending for one context.
func adjectiveEnding(info DeclInfo, d AdjectiveDeclension) (string, bool) {
	c := info.Case
	b := adjectiveBucket(info.Gender, info.Number)
	pair := adjectiveFullEndings[c][b][d.StemType-1]
	if c == Accusative && pair == (endingPair{}) {
		c = AccusativeCase(info.Animacy)
		pair = adjectiveFullEndings[c][b][d.StemType-1]
	}
	stressed := d.Stress.Full.IsEndingStressed()
	idx := pair[0]
	if stressed {
		idx = pair[1]
	}
	return idx.decode(), stressed
}

// adjectiveShortEnding selects the short-form ending.
func adjectiveShortEnding(g Gender, n Number, d AdjectiveDeclension) (string, bool) {
	pair := adjectiveShortEndings[adjectiveBucket(g, n)][d.StemType-1]
	stressed := d.Stress.Short.IsEndingStressed(g, n)
	idx := pair[0]
	if stressed {
		idx = pair[1]
	}
	return idx.decode(), stressed
}

// pronounColumn maps the restricted pronoun stem types onto table
// columns.
func pronounColumn(t StemType) int {
	switch t {
	case 1:
		return 0
	case 2:
		return 1
	case 4:
		return 2
	}
	return 3 // stem type 6
}

// pronounEnding selects the ending for one pronoun context.
func pronounEnding(info DeclInfo, d PronounDeclension) (string, bool) {
	c := info.Case
	b := adjectiveBucket(info.Gender, info.Number)
	col := pronounColumn(d.StemType)
	pair := pronounEndings[c][b][col]
	if c == Accusative && pair == (endingPair{}) {
		c = AccusativeCase(info.Animacy)
		pair = pronounEndings[c][b][col]
	}
	stressed := d.Stress.IsEndingStressed(info)
	idx := pair[0]
	if stressed {
		idx = pair[1]
	}
	return idx.decode(), stressed
}
