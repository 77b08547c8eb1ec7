package zaliznyak

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNoun(t *testing.T, stem, gender, declension string) *Noun {
	t.Helper()
	ga, err := ParseGenderExAnimacy(gender)
	require.NoError(t, err)
	d, err := ParseNounDeclension(declension)
	require.NoError(t, err)
	return NewNoun(stem, ga, d)
}

func TestNounRegular(t *testing.T) {
	завод := mustNoun(t, "завод", "м", "1a")
	tests := []struct {
		c    CaseEx
		n    Number
		want string
	}{
		{Nominative.Ex(), Singular, "завод"},
		{Genitive.Ex(), Singular, "завода"},
		{Dative.Ex(), Singular, "заводу"},
		{Accusative.Ex(), Singular, "завод"},
		{Instrumental.Ex(), Singular, "заводом"},
		{Prepositional.Ex(), Singular, "заводе"},
		{Nominative.Ex(), Plural, "заводы"},
		{Genitive.Ex(), Plural, "заводов"},
		{Instrumental.Ex(), Plural, "заводами"},
	}
	for _, tt := range tests {
		got, err := завод.Inflect(tt.c, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s %s", tt.c, tt.n)
	}
}

func TestNounAnimacy(t *testing.T) {
	кот := mustNoun(t, "кот", "мо", "1b")
	got, err := кот.Inflect(Accusative.Ex(), Singular)
	require.NoError(t, err)
	assert.Equal(t, "кота", got)

	got, err = кот.Inflect(Accusative.Ex(), Plural)
	require.NoError(t, err)
	assert.Equal(t, "котов", got)

	стол := mustNoun(t, "стол", "м", "1b")
	got, err = стол.Inflect(Accusative.Ex(), Singular)
	require.NoError(t, err)
	assert.Equal(t, "стол", got)
}

func TestNounFleetingVowelDeletion(t *testing.T) {
	tests := []struct {
		stem, gender, d string
		c               Case
		n               Number
		want            string
	}{
		{"сон", "м", "1*b", Genitive, Singular, "сна"},
		{"сон", "м", "1*b", Instrumental, Singular, "сном"},
		{"сон", "м", "1*b", Nominative, Singular, "сон"},
		{"сон", "м", "1*b", Nominative, Plural, "сны"},
		{"ден", "м", "2*b", Genitive, Singular, "дня"},
		{"лёд", "м", "1*b", Genitive, Singular, "льда"},
		{"конёк", "м", "3*b", Genitive, Singular, "конька"},
		{"конёк", "м", "3*b", Nominative, Plural, "коньки"},
		{"отец", "мо", "5*b", Genitive, Singular, "отца"},
		{"отец", "мо", "5*b", Instrumental, Singular, "отцом"},
		{"боец", "мо", "5*b", Genitive, Singular, "бойца"},
	}
	for _, tt := range tests {
		n := mustNoun(t, tt.stem, tt.gender, tt.d)
		got, err := n.Inflect(tt.c.Ex(), tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s %s %s", tt.stem, tt.c, tt.n)
	}
}

func TestNounFleetingVowelInsertion(t *testing.T) {
	tests := []struct {
		stem, gender, d string
		want            string // genitive plural
	}{
		{"кошк", "жо", "3*a", "кошек"},
		{"сказк", "ж", "3*a", "сказок"},
		{"окн", "с", "1*d", "окон"},
		{"земл", "ж", "2*d", "земель"},
		{"стать", "ж", "6*b", "статей"},
		{"копь", "с", "6*d", "копий"},
		{"овц", "ж", "5*d", "овец"},
		{"кукл", "ж", "1*a", "кукол"},
	}
	for _, tt := range tests {
		n := mustNoun(t, tt.stem, tt.gender, tt.d)
		got, err := n.Inflect(Genitive.Ex(), Plural)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "gen pl of %s", tt.stem)
	}
}

func TestNounUniqueAlternations(t *testing.T) {
	телёнок := mustNoun(t, "телёнок", "мо", "3°a")
	for _, tt := range []struct {
		c    Case
		n    Number
		want string
	}{
		{Nominative, Singular, "телёнок"},
		{Genitive, Singular, "телёнка"},
		{Nominative, Plural, "телята"},
		{Genitive, Plural, "телят"},
		{Accusative, Plural, "телят"},
		{Dative, Plural, "телятам"},
	} {
		got, err := телёнок.Inflect(tt.c.Ex(), tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "телёнок %s %s", tt.c, tt.n)
	}

	щенок := mustNoun(t, "щенок", "мо", "3°b")
	got, err := щенок.Inflect(Genitive.Ex(), Singular)
	require.NoError(t, err)
	assert.Equal(t, "щенка", got)
	got, err = щенок.Inflect(Nominative.Ex(), Plural)
	require.NoError(t, err)
	assert.Equal(t, "щенята", got)
	got, err = щенок.Inflect(Genitive.Ex(), Plural)
	require.NoError(t, err)
	assert.Equal(t, "щенят", got)

	гражданин := mustNoun(t, "гражданин", "мо", "1°a")
	got, err = гражданин.Inflect(Dative.Ex(), Singular)
	require.NoError(t, err)
	assert.Equal(t, "гражданину", got)
	got, err = гражданин.Inflect(Nominative.Ex(), Plural)
	require.NoError(t, err)
	assert.Equal(t, "граждане", got)
	got, err = гражданин.Inflect(Genitive.Ex(), Plural)
	require.NoError(t, err)
	assert.Equal(t, "граждан", got)
}

func TestNounUnsupportedAlternation(t *testing.T) {
	имя := mustNoun(t, "им", "с", "8°c")
	_, err := имя.Inflect(Genitive.Ex(), Singular)
	assert.ErrorIs(t, err, ErrUnsupportedAlternation)

	// A circle stem too short to carry any known suffix is rejected, not
	// indexed out of range.
	ок := mustNoun(t, "ок", "мо", "3°a")
	_, err = ок.Inflect(Nominative.Ex(), Plural)
	assert.ErrorIs(t, err, ErrUnsupportedAlternation)
	_, err = ок.Inflect(Genitive.Ex(), Singular)
	assert.ErrorIs(t, err, ErrUnsupportedAlternation)
}

func TestNounHissingStem(t *testing.T) {
	ночь := mustNoun(t, "ноч", "ж", "8e")
	for _, tt := range []struct {
		c    Case
		n    Number
		want string
	}{
		{Nominative, Singular, "ночь"},
		{Genitive, Singular, "ночи"},
		{Instrumental, Singular, "ночью"},
		{Nominative, Plural, "ночи"},
		{Dative, Plural, "ночам"},
		{Prepositional, Plural, "ночах"},
	} {
		got, err := ночь.Inflect(tt.c.Ex(), tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "ночь %s %s", tt.c, tt.n)
	}
}

func TestNounYoAlternation(t *testing.T) {
	звезда := mustNoun(t, "звезд", "ж", "1d, ё")
	got, err := звезда.Inflect(Nominative.Ex(), Plural)
	require.NoError(t, err)
	assert.Equal(t, "звёзды", got)
	got, err = звезда.Inflect(Genitive.Ex(), Plural)
	require.NoError(t, err)
	assert.Equal(t, "звёзд", got)
	got, err = звезда.Inflect(Genitive.Ex(), Singular)
	require.NoError(t, err)
	assert.Equal(t, "звезды", got)

	// Insertion first, then promotion: the fleeting vowel itself takes ё.
	сестра := mustNoun(t, "сестр", "жо", "1*d, ё")
	got, err = сестра.Inflect(Nominative.Ex(), Plural)
	require.NoError(t, err)
	assert.Equal(t, "сёстры", got)
	got, err = сестра.Inflect(Genitive.Ex(), Plural)
	require.NoError(t, err)
	assert.Equal(t, "сестёр", got)
}

func TestNounCircledDigits(t *testing.T) {
	глаз := mustNoun(t, "глаз", "м", "1c①②")
	got, err := глаз.Inflect(Nominative.Ex(), Plural)
	require.NoError(t, err)
	assert.Equal(t, "глаза", got)
	got, err = глаз.Inflect(Genitive.Ex(), Plural)
	require.NoError(t, err)
	assert.Equal(t, "глаз", got)
	got, err = глаз.Inflect(Genitive.Ex(), Singular)
	require.NoError(t, err)
	assert.Equal(t, "глаза", got)

	яблоко := mustNoun(t, "яблок", "с", "3a①")
	got, err = яблоко.Inflect(Nominative.Ex(), Plural)
	require.NoError(t, err)
	assert.Equal(t, "яблоки", got)
	got, err = яблоко.Inflect(Genitive.Ex(), Plural)
	require.NoError(t, err)
	assert.Equal(t, "яблок", got)

	облако := mustNoun(t, "облак", "с", "3c②")
	got, err = облако.Inflect(Genitive.Ex(), Plural)
	require.NoError(t, err)
	assert.Equal(t, "облаков", got)
	got, err = облако.Inflect(Nominative.Ex(), Plural)
	require.NoError(t, err)
	assert.Equal(t, "облака", got)

	// ③ turns the stem-type-7 dative/prepositional singular -и into -е.
	мария := mustNoun(t, "мари", "жо", "7a③")
	got, err = мария.Inflect(Dative.Ex(), Singular)
	require.NoError(t, err)
	assert.Equal(t, "марие", got)
	got, err = мария.Inflect(Genitive.Ex(), Singular)
	require.NoError(t, err)
	assert.Equal(t, "марии", got)
}

func TestNounSecondaryCases(t *testing.T) {
	чай := mustNoun(t, "ча", "м", "6a")
	got, err := чай.Inflect(Partitive, Singular)
	require.NoError(t, err)
	assert.Equal(t, "чая", got)

	солдат := mustNoun(t, "солдат", "мо", "1a")
	got, err = солдат.Inflect(Translative, Singular)
	require.NoError(t, err)
	assert.Equal(t, "солдаты", got, "translative forces the nominative plural")

	лес := mustNoun(t, "лес", "м", "1c")
	got, err = лес.Inflect(Locative, Singular)
	require.NoError(t, err)
	assert.Equal(t, "лесе", got, "locative falls back to the regular prepositional")
}

func TestNounGenderOverride(t *testing.T) {
	// мужчина is masculine but declines on the feminine paradigm.
	мужчина := mustNoun(t, "мужчин", "мо", "жо 1a")
	got, err := мужчина.Inflect(Genitive.Ex(), Singular)
	require.NoError(t, err)
	assert.Equal(t, "мужчины", got)
	got, err = мужчина.Inflect(Accusative.Ex(), Singular)
	require.NoError(t, err)
	assert.Equal(t, "мужчину", got)
}

func TestNounCommonGender(t *testing.T) {
	сирота := mustNoun(t, "сирот", "мо-жо", "1d")
	got, err := сирота.Inflect(Accusative.Ex(), Singular)
	require.NoError(t, err)
	assert.Equal(t, "сироту", got)
	got, err = сирота.Inflect(Accusative.Ex(), Plural)
	require.NoError(t, err)
	assert.Equal(t, "сирот", got)
}

func TestNounFromHeadword(t *testing.T) {
	d, err := ParseNounDeclension("1*d, ё")
	require.NoError(t, err)
	n, err := NounFromHeadword("сестра", GenderExAnimacy{Gender: GenderEx(Feminine), Animacy: Animate}, d)
	require.NoError(t, err)
	assert.Equal(t, "сестр", n.Stem)

	d, err = ParseNounDeclension("6a")
	require.NoError(t, err)
	n, err = NounFromHeadword("чай", GenderExAnimacy{Gender: GenderEx(Masculine)}, d)
	require.NoError(t, err)
	assert.Equal(t, "ча", n.Stem)

	d, err = ParseNounDeclension("1a")
	require.NoError(t, err)
	_, err = NounFromHeadword("стол", GenderExAnimacy{Gender: GenderEx(Feminine)}, d)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
