package zaliznyak

import "testing"

func TestInflectionBufferBasics(t *testing.T) {
	b := NewInflectionBuffer("сон")
	if b.Stem() != "сон" || b.Ending() != "" || b.String() != "сон" {
		t.Fatalf("fresh buffer: stem %q ending %q", b.Stem(), b.Ending())
	}
	if b.StemLetterCount() != 3 {
		t.Fatalf("StemLetterCount = %d", b.StemLetterCount())
	}
	if b.StemLetterAt(1).Rune() != 'о' {
		t.Errorf("StemLetterAt(1) = %q", b.StemLetterAt(1).Rune())
	}

	b.ReplaceEnding("а")
	if b.String() != "сона" || b.Stem() != "сон" {
		t.Errorf("after ReplaceEnding: %q / %q", b.Stem(), b.String())
	}
	b.ReplaceEnding("ом")
	if b.String() != "соном" {
		t.Errorf("after second ReplaceEnding: %q", b.String())
	}
}

func TestInflectionBufferStemEdits(t *testing.T) {
	b := NewInflectionBuffer("сон")
	b.ReplaceEnding("а")
	b.RemoveFromStem(1, 2)
	if b.Stem() != "сн" || b.String() != "сна" {
		t.Errorf("RemoveFromStem: %q / %q", b.Stem(), b.String())
	}

	b = NewInflectionBuffer("окн")
	b.InsertBetweenLastTwoStemLetters(mustLetter('о'))
	if b.Stem() != "окон" {
		t.Errorf("InsertBetweenLastTwoStemLetters: %q", b.Stem())
	}

	b = NewInflectionBuffer("гражданин")
	b.ShrinkStemBy(2)
	if b.Stem() != "граждан" {
		t.Errorf("ShrinkStemBy: %q", b.Stem())
	}

	b = NewInflectionBuffer("кот")
	b.SetStemLetter(2, mustLetter('м'))
	if b.Stem() != "ком" {
		t.Errorf("SetStemLetter: %q", b.Stem())
	}

	b = NewInflectionBuffer("ст")
	b.InsertIntoStem(1, mustLetter('е'))
	if b.Stem() != "сет" {
		t.Errorf("InsertIntoStem: %q", b.Stem())
	}
}

func TestInflectionBufferEndingEditsKeepStem(t *testing.T) {
	b := NewInflectionBuffer("тел")
	b.ReplaceEnding("ята")
	b.AppendToStem("ят")
	b.ReplaceEnding("а")
	if b.Stem() != "телят" || b.String() != "телята" {
		t.Errorf("mixed edits: %q / %q", b.Stem(), b.String())
	}
	b.AppendToEnding("ми")
	if b.String() != "телятами" {
		t.Errorf("AppendToEnding: %q", b.String())
	}
}
