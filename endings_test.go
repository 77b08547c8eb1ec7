package zaliznyak

import "testing"

func nounD(t *testing.T, notation string) NounDeclension {
	t.Helper()
	d, err := ParseNounDeclension(notation)
	if err != nil {
		t.Fatalf("ParseNounDeclension(%q): %v", notation, err)
	}
	return d
}

func TestNounEndingBasic(t *testing.T) {
	tests := []struct {
		name     string
		d        string
		info     DeclInfo
		want     string
		stressed bool
	}{
		{"masc 1 nom sg", "1a", ctx(Nominative, Singular, Masculine, Inanimate), "", false},
		{"masc 1 gen sg", "1a", ctx(Genitive, Singular, Masculine, Inanimate), "а", false},
		{"masc 1 nom pl", "1a", ctx(Nominative, Plural, Masculine, Inanimate), "ы", false},
		{"masc 2 ins sg unstressed", "2a", ctx(Instrumental, Singular, Masculine, Inanimate), "ем", false},
		{"masc 2 ins sg stressed", "2b", ctx(Instrumental, Singular, Masculine, Inanimate), "ём", true},
		{"fem 1 acc sg", "1a", ctx(Accusative, Singular, Feminine, Inanimate), "у", false},
		{"fem 8 ins sg", "8e", ctx(Instrumental, Singular, Feminine, Inanimate), "ью", false},
		{"fem 8 dat pl", "8e", ctx(Dative, Plural, Feminine, Inanimate), "ям", true},
		{"neut 1 nom pl", "1d", ctx(Nominative, Plural, Neuter, Inanimate), "а", false},
		{"neut 1 gen pl", "1d", ctx(Genitive, Plural, Neuter, Inanimate), "", false},
	}
	for _, tt := range tests {
		got, stressed := nounEnding(tt.info, nounD(t, tt.d))
		if got != tt.want || stressed != tt.stressed {
			t.Errorf("%s: = (%q, %v), want (%q, %v)", tt.name, got, stressed, tt.want, tt.stressed)
		}
	}
}

func TestNounEndingAccusativeResolution(t *testing.T) {
	d := nounD(t, "1b")

	// Animate masculine borrows the genitive.
	got, _ := nounEnding(ctx(Accusative, Singular, Masculine, Animate), d)
	if got != "а" {
		t.Errorf("animate acc sg = %q, want а", got)
	}

	// Inanimate masculine borrows the nominative.
	got, _ = nounEnding(ctx(Accusative, Singular, Masculine, Inanimate), d)
	if got != "" {
		t.Errorf("inanimate acc sg = %q, want empty", got)
	}

	// Plurals resolve for every gender.
	got, _ = nounEnding(ctx(Accusative, Plural, Feminine, Animate), d)
	if got != "" {
		t.Errorf("animate acc pl = %q, want empty (genitive zero)", got)
	}
	got, _ = nounEnding(ctx(Accusative, Plural, Feminine, Inanimate), d)
	if got != "ы" {
		t.Errorf("inanimate acc pl = %q, want ы", got)
	}
}

func TestNounEndingStressFollowsAccusative(t *testing.T) {
	// Under f′ the accusative singular is stem-stressed even though the
	// resolved nominative slot would be ending-stressed.
	d := nounD(t, "1f′")
	_, stressed := nounEnding(ctx(Accusative, Singular, Feminine, Inanimate), d)
	if stressed {
		t.Error("f′ acc sg should be stem-stressed")
	}
	_, stressed = nounEnding(ctx(Nominative, Singular, Feminine, Inanimate), d)
	if !stressed {
		t.Error("f′ nom sg should be ending-stressed")
	}
}

func TestAdjectiveEnding(t *testing.T) {
	d, err := ParseAdjectiveDeclension("1b")
	if err != nil {
		t.Fatal(err)
	}
	got, stressed := adjectiveEnding(ctx(Nominative, Singular, Masculine, Inanimate), d)
	if got != "ой" || !stressed {
		t.Errorf("1b nom masc = (%q, %v), want (ой, true)", got, stressed)
	}

	d, err = ParseAdjectiveDeclension("4a")
	if err != nil {
		t.Fatal(err)
	}
	got, _ = adjectiveEnding(ctx(Nominative, Singular, Masculine, Inanimate), d)
	if got != "ий" {
		t.Errorf("4a nom masc = %q, want ий", got)
	}
	got, _ = adjectiveEnding(ctx(Nominative, Singular, Neuter, Inanimate), d)
	if got != "ее" {
		t.Errorf("4a nom neut = %q, want ее", got)
	}
	got, _ = adjectiveEnding(ctx(Accusative, Singular, Masculine, Animate), d)
	if got != "его" {
		t.Errorf("4a acc masc anim = %q, want его", got)
	}
}

func TestAdjectiveShortEnding(t *testing.T) {
	d, err := ParseAdjectiveDeclension("4a/b")
	if err != nil {
		t.Fatal(err)
	}
	got, _ := adjectiveShortEnding(Masculine, Singular, d)
	if got != "" {
		t.Errorf("short masc = %q, want empty", got)
	}
	got, stressed := adjectiveShortEnding(Neuter, Singular, d)
	if got != "о" || !stressed {
		t.Errorf("short neut = (%q, %v), want (о, true)", got, stressed)
	}
	got, _ = adjectiveShortEnding(Feminine, Singular, d)
	if got != "а" {
		t.Errorf("short fem = %q, want а", got)
	}
}

func TestPronounEnding(t *testing.T) {
	d, err := ParsePronounDeclension("6b")
	if err != nil {
		t.Fatal(err)
	}
	got, _ := pronounEnding(ctx(Nominative, Singular, Masculine, Inanimate), d)
	if got != "й" {
		t.Errorf("6b nom masc = %q, want й", got)
	}
	got, stressed := pronounEnding(ctx(Genitive, Singular, Masculine, Inanimate), d)
	if got != "его" || !stressed {
		t.Errorf("6b gen masc = (%q, %v), want (его, true)", got, stressed)
	}

	d, err = ParsePronounDeclension("1a")
	if err != nil {
		t.Fatal(err)
	}
	got, _ = pronounEnding(ctx(Instrumental, Plural, Masculine, Inanimate), d)
	if got != "ыми" {
		t.Errorf("1a ins pl = %q, want ыми", got)
	}
}

func TestEndingBlobSharing(t *testing.T) {
	// Identical spellings intern to one blob slot.
	a := nounEndings[Dative][Plural][Masculine][0]
	b := nounEndings[Instrumental][Plural][Masculine][0] // ами vs ам share a prefix but not a slot
	if a == b {
		t.Error("ам and ами must be distinct slots")
	}
	c := nounEndings[Dative][Plural][Feminine][0]
	if a != c {
		t.Error("identical ам cells should share one slot")
	}
	if len(endingBlob) == 0 {
		t.Fatal("ending blob is empty")
	}
	if len(endingBlob) > 0x3f*2+3 {
		t.Errorf("ending blob too large: %d letters", len(endingBlob))
	}
}
