package zaliznyak

// The ending tables. Each literal cell is either one spelling used for
// both stress variants, or "unstressed stressed". "-" is the no-ending
// slot (and, in accusative rows, the resolve-through-animacy sentinel);
// "0" is the existing-but-empty ending.
//
// Axes: case (nom gen dat acc ins prp) × number × gender × stem type
// 1–8 for nouns; case × (masc neut fem plural) × stem type for
// adjectives and pronouns.

var nounEndingLiterals = [6][2][3][8]string{
	{ // nominative
		{ // singular
			{"-", "ь", "-", "-", "-", "й", "й", "ь"},
			{"о", "е ё", "о", "е о", "е о", "е ё", "е ё", "я"},
			{"а", "я", "а", "а", "а", "я", "я", "ь"},
		},
		{ // plural
			{"ы", "и", "и", "и", "ы", "и", "и", "и"},
			{"а", "я", "а", "а", "а", "я", "я", "а"},
			{"ы", "и", "и", "и", "ы", "и", "и", "и"},
		},
	},
	{ // genitive
		{
			{"а", "я", "а", "а", "а", "я", "я", "и"},
			{"а", "я", "а", "а", "а", "я", "я", "и"},
			{"ы", "и", "и", "и", "ы", "и", "и", "и"},
		},
		{
			{"ов", "ей", "ов", "ей", "ев ов", "ев ёв", "ев ёв", "ей"},
			{"0", "ей", "0", "0", "0", "й", "й", "0"},
			{"0", "ь", "0", "0 ей", "0", "й", "й", "ей"},
		},
	},
	{ // dative
		{
			{"у", "ю", "у", "у", "у", "ю", "ю", "и"},
			{"у", "ю", "у", "у", "у", "ю", "ю", "и"},
			{"е", "е", "е", "е", "е", "е", "и", "и"},
		},
		{
			{"ам", "ям", "ам", "ам", "ам", "ям", "ям", "ям"},
			{"ам", "ям", "ам", "ам", "ам", "ям", "ям", "ям"},
			{"ам", "ям", "ам", "ам", "ам", "ям", "ям", "ям"},
		},
	},
	{ // accusative: masculine and plural slots resolve through animacy;
		// the neuter always borrows the nominative, the feminine singular
		// has forms of its own.
		{
			{"-", "-", "-", "-", "-", "-", "-", "-"},
			{"о", "е ё", "о", "е о", "е о", "е ё", "е ё", "я"},
			{"у", "ю", "у", "у", "у", "ю", "ю", "ь"},
		},
		{
			{"-", "-", "-", "-", "-", "-", "-", "-"},
			{"-", "-", "-", "-", "-", "-", "-", "-"},
			{"-", "-", "-", "-", "-", "-", "-", "-"},
		},
	},
	{ // instrumental
		{
			{"ом", "ем ём", "ом", "ем ом", "ем ом", "ем ём", "ем ём", "ем ём"},
			{"ом", "ем ём", "ом", "ем ом", "ем ом", "ем ём", "ем ём", "ем ём"},
			{"ой", "ей ёй", "ой", "ей ой", "ей ой", "ей ёй", "ей ёй", "ью"},
		},
		{
			{"ами", "ями", "ами", "ами", "ами", "ями", "ями", "ями"},
			{"ами", "ями", "ами", "ами", "ами", "ями", "ями", "ями"},
			{"ами", "ями", "ами", "ами", "ами", "ями", "ями", "ями"},
		},
	},
	{ // prepositional
		{
			{"е", "е", "е", "е", "е", "е", "и", "и"},
			{"е", "е", "е", "е", "е", "е", "и", "и"},
			{"е", "е", "е", "е", "е", "е", "и", "и"},
		},
		{
			{"ах", "ях", "ах", "ах", "ах", "ях", "ях", "ях"},
			{"ах", "ях", "ах", "ах", "ах", "ях", "ях", "ях"},
			{"ах", "ях", "ах", "ах", "ах", "ях", "ях", "ях"},
		},
	},
}

var adjectiveFullEndingLiterals = [6][4][7]string{
	{ // nominative
		{"ый ой", "ий", "ий ой", "ий ой", "ый ой", "ий", "ий"},
		{"ое", "ее", "ое", "ее ое", "ее ое", "ее", "ее"},
		{"ая", "яя", "ая", "ая", "ая", "яя", "яя"},
		{"ые", "ие", "ие", "ие", "ые", "ие", "ие"},
	},
	{ // genitive
		{"ого", "его", "ого", "его ого", "его ого", "его", "его"},
		{"ого", "его", "ого", "его ого", "его ого", "его", "его"},
		{"ой", "ей", "ой", "ей ой", "ей ой", "ей", "ей"},
		{"ых", "их", "их", "их", "ых", "их", "их"},
	},
	{ // dative
		{"ому", "ему", "ому", "ему ому", "ему ому", "ему", "ему"},
		{"ому", "ему", "ому", "ему ому", "ему ому", "ему", "ему"},
		{"ой", "ей", "ой", "ей ой", "ей ой", "ей", "ей"},
		{"ым", "им", "им", "им", "ым", "им", "им"},
	},
	{ // accusative
		{"-", "-", "-", "-", "-", "-", "-"},
		{"ое", "ее", "ое", "ее ое", "ее ое", "ее", "ее"},
		{"ую", "юю", "ую", "ую", "ую", "юю", "юю"},
		{"-", "-", "-", "-", "-", "-", "-"},
	},
	{ // instrumental
		{"ым", "им", "им", "им", "ым", "им", "им"},
		{"ым", "им", "им", "им", "ым", "им", "им"},
		{"ой", "ей", "ой", "ей ой", "ей ой", "ей", "ей"},
		{"ыми", "ими", "ими", "ими", "ыми", "ими", "ими"},
	},
	{ // prepositional
		{"ом", "ем", "ом", "ем ом", "ем ом", "ем", "ем"},
		{"ом", "ем", "ом", "ем ом", "ем ом", "ем", "ем"},
		{"ой", "ей", "ой", "ей ой", "ей ой", "ей", "ей"},
		{"ых", "их", "их", "их", "ых", "их", "их"},
	},
}

var adjectiveShortEndingLiterals = [4][7]string{
	{"-", "-", "-", "-", "-", "-", "-"},
	{"о", "е", "о", "е о", "е о", "е", "е"},
	{"а", "я", "а", "а", "а", "я", "я"},
	{"ы", "и", "и", "и", "ы", "и", "и"},
}

// Pronoun columns are the restricted stem types 1, 2, 4 and 6.
var pronounEndingLiterals = [6][4][4]string{
	{ // nominative
		{"-", "ь", "-", "й"},
		{"о", "е ё", "е о", "е ё"},
		{"а", "я", "а", "я"},
		{"ы", "и", "и", "и"},
	},
	{ // genitive
		{"ого", "его", "его ого", "его"},
		{"ого", "его", "его ого", "его"},
		{"ой", "ей", "ей ой", "ей"},
		{"ых", "их", "их", "их"},
	},
	{ // dative
		{"ому", "ему", "ему ому", "ему"},
		{"ому", "ему", "ему ому", "ему"},
		{"ой", "ей", "ей ой", "ей"},
		{"ым", "им", "им", "им"},
	},
	{ // accusative
		{"-", "-", "-", "-"},
		{"о", "е ё", "е о", "е ё"},
		{"у", "ю", "у", "ю"},
		{"-", "-", "-", "-"},
	},
	{ // instrumental
		{"ым", "им", "им", "им"},
		{"ым", "им", "им", "им"},
		{"ой", "ей", "ей ой", "ей"},
		{"ыми", "ими", "ими", "ими"},
	},
	{ // prepositional
		{"ом", "ем ём", "ем ом", "ем ём"},
		{"ом", "ем ём", "ем ом", "ем ём"},
		{"ой", "ей", "ей ой", "ей"},
		{"ых", "их", "их", "их"},
	},
}

var (
	nounEndings           [6][2][3][8]endingPair
	adjectiveFullEndings  [6][4][7]endingPair
	adjectiveShortEndings [4][7]endingPair
	pronounEndings        [6][4][4]endingPair
)

func init() {
	tb := newEndingTableBuilder()
	for c, byNumber := range nounEndingLiterals {
		for n, byGender := range byNumber {
			for g, byType := range byGender {
				for t, s := range byType {
					nounEndings[c][n][g][t] = tb.cell(s)
				}
			}
		}
	}
	for c, byBucket := range adjectiveFullEndingLiterals {
		for b, byType := range byBucket {
			for t, s := range byType {
				adjectiveFullEndings[c][b][t] = tb.cell(s)
			}
		}
	}
	for b, byType := range adjectiveShortEndingLiterals {
		for t, s := range byType {
			adjectiveShortEndings[b][t] = tb.cell(s)
		}
	}
	for c, byBucket := range pronounEndingLiterals {
		for b, byType := range byBucket {
			for t, s := range byType {
				pronounEndings[c][b][t] = tb.cell(s)
			}
		}
	}
}
