package zaliznyak

// InflectionBuffer is the mutable working area of one inflection call:
// a byte buffer split by a cursor into stem prefix and ending suffix.
// The stem-alternation rules edit the stem in place, ending selection
// splices the tail, and String consumes the result. A buffer is owned by
// the call that created it and never shared.
type InflectionBuffer struct {
	buf     []byte
	stemLen int // bytes
}

// NewInflectionBuffer seeds the buffer with the stem; the ending is
// empty until ReplaceEnding or AppendToEnding runs.
func NewInflectionBuffer(stem string) *InflectionBuffer {
	b := make([]byte, len(stem), len(stem)+8)
	copy(b, stem)
	return &InflectionBuffer{buf: b, stemLen: len(stem)}
}

// Stem returns the current stem prefix.
func (b *InflectionBuffer) Stem() string { return string(b.buf[:b.stemLen]) }

// Ending returns the current ending suffix.
func (b *InflectionBuffer) Ending() string { return string(b.buf[b.stemLen:]) }

// String returns the whole surface form.
func (b *InflectionBuffer) String() string { return string(b.buf) }

// StemLetterCount returns the stem length in letters.
func (b *InflectionBuffer) StemLetterCount() int { return b.stemLen / letterBytes }

// StemLetterAt returns the i-th stem letter (0-based).
func (b *InflectionBuffer) StemLetterAt(i int) Letter {
	return Letter{b.buf[i*letterBytes], b.buf[i*letterBytes+1]}
}

// SetStemLetter overwrites the i-th stem letter.
func (b *InflectionBuffer) SetStemLetter(i int, l Letter) {
	b.buf[i*letterBytes] = l[0]
	b.buf[i*letterBytes+1] = l[1]
}

// AppendToStem grows the stem, shifting any ending right.
func (b *InflectionBuffer) AppendToStem(s string) {
	b.buf = append(b.buf[:b.stemLen], append([]byte(s), b.buf[b.stemLen:]...)...)
	b.stemLen += len(s)
}

// ShrinkStemBy drops the last n stem letters.
func (b *InflectionBuffer) ShrinkStemBy(n int) {
	cut := n * letterBytes
	b.buf = append(b.buf[:b.stemLen-cut], b.buf[b.stemLen:]...)
	b.stemLen -= cut
}

// RemoveFromStem deletes the stem letters in [from, to).
func (b *InflectionBuffer) RemoveFromStem(from, to int) {
	lo, hi := from*letterBytes, to*letterBytes
	b.buf = append(b.buf[:lo], b.buf[hi:]...)
	b.stemLen -= hi - lo
}

// InsertIntoStem inserts l before the i-th stem letter.
func (b *InflectionBuffer) InsertIntoStem(i int, l Letter) {
	at := i * letterBytes
	b.buf = append(b.buf[:at], append([]byte{l[0], l[1]}, b.buf[at:]...)...)
	b.stemLen += letterBytes
}

// InsertBetweenLastTwoStemLetters inserts l before the final stem
// letter.
func (b *InflectionBuffer) InsertBetweenLastTwoStemLetters(l Letter) {
	b.InsertIntoStem(b.StemLetterCount()-1, l)
}

// AppendToEnding grows the ending.
func (b *InflectionBuffer) AppendToEnding(s string) {
	b.buf = append(b.buf, s...)
}

// ReplaceEnding splices everything after the stem cursor.
func (b *InflectionBuffer) ReplaceEnding(s string) {
	b.buf = append(b.buf[:b.stemLen], s...)
}
