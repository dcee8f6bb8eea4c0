package engine

// phonotactics.go is component C2: static Vietnamese syllable-shape
// tables consumed by the validator (C6) and the tone/modifier position
// finders (C4). No logic lives here, only data.

// ValidInitials are the legal initial consonant clusters (phụ âm đầu),
// including the empty initial.
var ValidInitials = map[string]bool{
	"": true,
	"b": true, "c": true, "d": true, "đ": true, "g": true, "h": true,
	"k": true, "l": true, "m": true, "n": true, "p": true, "q": true,
	"r": true, "s": true, "t": true, "v": true, "x": true,
	"ch": true, "gh": true, "gi": true, "kh": true, "ng": true,
	"nh": true, "ph": true, "qu": true, "th": true, "tr": true,
	"ngh": true,
}

// ValidFinals are the legal final consonant clusters (phụ âm cuối),
// including the empty final. "k" is accepted for ethnic-minority loans
// such as "Đắk", "Lắk".
var ValidFinals = map[string]bool{
	"":   true,
	"c":  true,
	"ch": true,
	"m":  true,
	"n":  true,
	"ng": true,
	"nh": true,
	"p":  true,
	"t":  true,
	"k":  true,
}

// ValidVowelNuclei are the legal vowel nuclei: monophthongs, explicit
// diphthongs/triphthongs, and the qu- sub-patterns.
var ValidVowelNuclei = buildValidNuclei()

func buildValidNuclei() map[string]bool {
	nuclei := map[string]bool{
		// Monophthongs
		"a": true, "ă": true, "â": true, "e": true, "ê": true, "i": true,
		"o": true, "ô": true, "ơ": true, "u": true, "ư": true, "y": true,
		// Diphthongs
		"ai": true, "ao": true, "au": true, "ay": true, "âu": true, "ây": true,
		"eo": true, "êu": true, "ia": true, "iê": true, "iu": true,
		"oa": true, "oă": true, "oe": true, "oi": true, "oo": true, "ôi": true,
		"ơi": true, "ua": true, "uâ": true, "uê": true, "ui": true, "uo": true,
		"uô": true, "uơ": true, "ưa": true, "ưi": true, "ươ": true, "ưu": true,
		// Triphthongs
		"iêu": true, "oai": true, "oay": true, "oeo": true, "uây": true,
		"uôi": true, "ươi": true, "ươu": true, "yêu": true, "uêu": true, "oao": true,
		// Extended final-bearing nucleus patterns
		"uyên": true, "uyêt": true, "uynh": true, "oong": true,
		"iên": true, "iêp": true, "iêc": true, "iêt": true, "iêm": true, "iêng": true,
		// qu- sub-patterns (uy- is parsed as nucleus after the qu- initial)
		"uya": true, "uyê": true, "uyu": true,
	}
	return nuclei
}

// checkSpelling validates onset+nucleus against the c/k, g/gh, ng/ngh,
// k, gh, ngh rules of spec §4.2.
func checkSpelling(onset, nucleusFirst string) bool {
	switch onset {
	case "c":
		return !(nucleusFirst == "e" || nucleusFirst == "ê" || nucleusFirst == "i" || nucleusFirst == "y")
	case "k":
		return nucleusFirst == "e" || nucleusFirst == "ê" || nucleusFirst == "i" || nucleusFirst == "y"
	case "g":
		return !(nucleusFirst == "e" || nucleusFirst == "ê" || nucleusFirst == "i")
	case "gh":
		return nucleusFirst == "e" || nucleusFirst == "ê" || nucleusFirst == "i"
	case "ng":
		return !(nucleusFirst == "e" || nucleusFirst == "ê" || nucleusFirst == "i")
	case "ngh":
		return nucleusFirst == "e" || nucleusFirst == "ê" || nucleusFirst == "i"
	}
	return true
}

// ForeignClusters are consonant/vowel bigrams and trigrams that rarely
// or never occur in native Vietnamese spelling.
var ForeignClusters = map[string]bool{
	"bl": true, "br": true, "cl": true, "cr": true, "dr": true, "fl": true,
	"fr": true, "gl": true, "gr": true, "pl": true, "pr": true, "sc": true,
	"sk": true, "sl": true, "sm": true, "sn": true, "sp": true, "st": true,
	"sw": true, "tw": true, "scr": true, "str": true, "spr": true,
}

// EnglishKeywords are whole tokens that signal non-Vietnamese input
// outright.
var EnglishKeywords = map[string]bool{
	"the": true, "and": true, "for": true, "you": true, "are": true,
	"with": true, "this": true, "that": true, "have": true, "from": true,
	"hello": true, "world": true, "test": true, "code": true, "function": true,
	"return": true, "import": true, "package": true, "class": true, "struct": true,
	"print": true, "error": true, "value": true, "string": true, "int": true,
	"true": true, "false": true, "null": true, "var": true, "const": true,
}
