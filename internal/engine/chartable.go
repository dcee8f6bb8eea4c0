package engine

import "unicode"

// chartable.go is component C1: a bidirectional mapping between a
// composed Vietnamese character and its decomposition (base, vowel
// modifier, tone), plus the stroked pair d/đ. The table is fully
// static (~150 rows, one per realized combination) and every result is
// the precomposed NFC code point — diacritics are never assembled from
// combining marks at runtime.

// vowelTones maps [modified-letter][tone] -> final rune, for every
// modified letter that can carry a tone (both cases).
var vowelTones = map[rune]map[Tone]rune{
	'a': {ToneNone: 'a', ToneAcute: 'á', ToneGrave: 'à', ToneHook: 'ả', ToneTilde: 'ã', ToneDot: 'ạ'},
	'A': {ToneNone: 'A', ToneAcute: 'Á', ToneGrave: 'À', ToneHook: 'Ả', ToneTilde: 'Ã', ToneDot: 'Ạ'},
	'ă': {ToneNone: 'ă', ToneAcute: 'ắ', ToneGrave: 'ằ', ToneHook: 'ẳ', ToneTilde: 'ẵ', ToneDot: 'ặ'},
	'Ă': {ToneNone: 'Ă', ToneAcute: 'Ắ', ToneGrave: 'Ằ', ToneHook: 'Ẳ', ToneTilde: 'Ẵ', ToneDot: 'Ặ'},
	'â': {ToneNone: 'â', ToneAcute: 'ấ', ToneGrave: 'ầ', ToneHook: 'ẩ', ToneTilde: 'ẫ', ToneDot: 'ậ'},
	'Â': {ToneNone: 'Â', ToneAcute: 'Ấ', ToneGrave: 'Ầ', ToneHook: 'Ẩ', ToneTilde: 'Ẫ', ToneDot: 'Ậ'},
	'e': {ToneNone: 'e', ToneAcute: 'é', ToneGrave: 'è', ToneHook: 'ẻ', ToneTilde: 'ẽ', ToneDot: 'ẹ'},
	'E': {ToneNone: 'E', ToneAcute: 'É', ToneGrave: 'È', ToneHook: 'Ẻ', ToneTilde: 'Ẽ', ToneDot: 'Ẹ'},
	'ê': {ToneNone: 'ê', ToneAcute: 'ế', ToneGrave: 'ề', ToneHook: 'ể', ToneTilde: 'ễ', ToneDot: 'ệ'},
	'Ê': {ToneNone: 'Ê', ToneAcute: 'Ế', ToneGrave: 'Ề', ToneHook: 'Ể', ToneTilde: 'Ễ', ToneDot: 'Ệ'},
	'i': {ToneNone: 'i', ToneAcute: 'í', ToneGrave: 'ì', ToneHook: 'ỉ', ToneTilde: 'ĩ', ToneDot: 'ị'},
	'I': {ToneNone: 'I', ToneAcute: 'Í', ToneGrave: 'Ì', ToneHook: 'Ỉ', ToneTilde: 'Ĩ', ToneDot: 'Ị'},
	'o': {ToneNone: 'o', ToneAcute: 'ó', ToneGrave: 'ò', ToneHook: 'ỏ', ToneTilde: 'õ', ToneDot: 'ọ'},
	'O': {ToneNone: 'O', ToneAcute: 'Ó', ToneGrave: 'Ò', ToneHook: 'Ỏ', ToneTilde: 'Õ', ToneDot: 'Ọ'},
	'ô': {ToneNone: 'ô', ToneAcute: 'ố', ToneGrave: 'ồ', ToneHook: 'ổ', ToneTilde: 'ỗ', ToneDot: 'ộ'},
	'Ô': {ToneNone: 'Ô', ToneAcute: 'Ố', ToneGrave: 'Ồ', ToneHook: 'Ổ', ToneTilde: 'Ỗ', ToneDot: 'Ộ'},
	'ơ': {ToneNone: 'ơ', ToneAcute: 'ớ', ToneGrave: 'ờ', ToneHook: 'ở', ToneTilde: 'ỡ', ToneDot: 'ợ'},
	'Ơ': {ToneNone: 'Ơ', ToneAcute: 'Ớ', ToneGrave: 'Ờ', ToneHook: 'Ở', ToneTilde: 'Ỡ', ToneDot: 'Ợ'},
	'u': {ToneNone: 'u', ToneAcute: 'ú', ToneGrave: 'ù', ToneHook: 'ủ', ToneTilde: 'ũ', ToneDot: 'ụ'},
	'U': {ToneNone: 'U', ToneAcute: 'Ú', ToneGrave: 'Ù', ToneHook: 'Ủ', ToneTilde: 'Ũ', ToneDot: 'Ụ'},
	'ư': {ToneNone: 'ư', ToneAcute: 'ứ', ToneGrave: 'ừ', ToneHook: 'ử', ToneTilde: 'ữ', ToneDot: 'ự'},
	'Ư': {ToneNone: 'Ư', ToneAcute: 'Ứ', ToneGrave: 'Ừ', ToneHook: 'Ử', ToneTilde: 'Ữ', ToneDot: 'Ự'},
	'y': {ToneNone: 'y', ToneAcute: 'ý', ToneGrave: 'ỳ', ToneHook: 'ỷ', ToneTilde: 'ỹ', ToneDot: 'ỵ'},
	'Y': {ToneNone: 'Y', ToneAcute: 'Ý', ToneGrave: 'Ỳ', ToneHook: 'Ỷ', ToneTilde: 'Ỹ', ToneDot: 'Ỵ'},
}

// modifierLetter maps [plain-base][modifier] -> modified letter (no
// tone applied yet), for every realized combination: Breve only on a,
// Circumflex only on a/e/o, Horn only on o/u.
var modifierLetter = map[rune]map[Modifier]rune{
	'a': {ModNone: 'a', ModCircumflex: 'â', ModBreve: 'ă'},
	'A': {ModNone: 'A', ModCircumflex: 'Â', ModBreve: 'Ă'},
	'e': {ModNone: 'e', ModCircumflex: 'ê'},
	'E': {ModNone: 'E', ModCircumflex: 'Ê'},
	'o': {ModNone: 'o', ModCircumflex: 'ô', ModHorn: 'ơ'},
	'O': {ModNone: 'O', ModCircumflex: 'Ô', ModHorn: 'Ơ'},
	'u': {ModNone: 'u', ModHorn: 'ư'},
	'U': {ModNone: 'U', ModHorn: 'Ư'},
	'i': {ModNone: 'i'},
	'I': {ModNone: 'I'},
	'y': {ModNone: 'y'},
	'Y': {ModNone: 'Y'},
}

// reverseModifier maps a modified letter (with any tone stripped) back
// to its (base, modifier).
var reverseModifier = func() map[rune][2]rune {
	m := make(map[rune][2]rune)
	for base, mods := range modifierLetter {
		for mod, letter := range mods {
			m[letter] = [2]rune{base, rune(mod)}
		}
	}
	return m
}()

// reverseTone maps a fully composed letter back to (modified-letter, tone).
var reverseTone = func() map[rune][2]rune {
	m := make(map[rune][2]rune)
	for modLetter, tones := range vowelTones {
		for tone, composed := range tones {
			m[composed] = [2]rune{modLetter, rune(tone)}
		}
	}
	return m
}()

// Compose builds the precomposed Vietnamese character for (base,
// uppercase, modifier, tone). It returns (0, false) when the triple is
// not realized (e.g. Breve on 'e').
func Compose(base rune, uppercase bool, modifier Modifier, tone Tone) (rune, bool) {
	baseLower := unicode.ToLower(base)
	key := baseLower
	if uppercase {
		key = unicode.ToUpper(baseLower)
	}
	mods, ok := modifierLetter[key]
	if !ok {
		return 0, false
	}
	modLetter, ok := mods[modifier]
	if !ok {
		return 0, false
	}
	tones := vowelTones[modLetter]
	composed, ok := tones[tone]
	if !ok {
		return 0, false
	}
	return composed, true
}

// Decompose inverts Compose, also recognizing the stroked pair d/đ,D/Đ
// (reported with modifier=ModNone, tone=ToneNone, stroked=true).
func Decompose(c rune) (base rune, uppercase bool, modifier Modifier, tone Tone, stroked bool, ok bool) {
	switch c {
	case 'đ':
		return 'd', false, ModNone, ToneNone, true, true
	case 'Đ':
		return 'd', true, ModNone, ToneNone, true, true
	case 'd':
		return 'd', false, ModNone, ToneNone, false, true
	case 'D':
		return 'd', true, ModNone, ToneNone, false, true
	}

	modLetter := c
	tone = ToneNone
	if pair, found := reverseTone[c]; found {
		modLetter, tone = pair[0], Tone(pair[1])
	}

	pair, found := reverseModifier[modLetter]
	if !found {
		return 0, false, ModNone, ToneNone, false, false
	}
	base, mod := pair[0], Modifier(pair[1])
	uppercase = unicode.IsUpper(base)
	return unicode.ToLower(base), uppercase, mod, tone, false, true
}

// WithTone swaps the tone on c, preserving base, case, and modifier. It
// returns (0, false) if c is not a tone-bearing vowel or the requested
// tone is not realized on it.
func WithTone(c rune, tone Tone) (rune, bool) {
	base, upper, mod, _, stroked, ok := Decompose(c)
	if !ok || stroked {
		return 0, false
	}
	return Compose(base, upper, mod, tone)
}

// WithModifier swaps the modifier on c, preserving base, case, and tone.
func WithModifier(c rune, mod Modifier) (rune, bool) {
	base, upper, _, tone, stroked, ok := Decompose(c)
	if !ok || stroked {
		return 0, false
	}
	return Compose(base, upper, mod, tone)
}

// Toneless returns c with its tone mark removed, preserving base, case,
// and vowel modifier (so ế -> ê, ằ -> ă).
func Toneless(c rune) rune {
	base, upper, mod, _, stroked, ok := Decompose(c)
	if !ok || stroked {
		return c
	}
	r, ok := Compose(base, upper, mod, ToneNone)
	if !ok {
		return c
	}
	return r
}

// StripDiacritics returns the base letter of c, preserving case;
// đ/Đ fold to d/D.
func StripDiacritics(c rune) rune {
	if c == 'đ' {
		return 'd'
	}
	if c == 'Đ' {
		return 'D'
	}
	base, upper, _, _, _, ok := Decompose(c)
	if !ok {
		return c
	}
	if upper {
		return unicode.ToUpper(base)
	}
	return base
}

// IsVowel reports whether c is a plain or diacriticized Vietnamese vowel.
func IsVowel(c rune) bool {
	if base, _, _, _, stroked, ok := Decompose(c); ok && !stroked && base != 'd' {
		return true
	}
	switch unicode.ToLower(c) {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// IsConsonant reports whether c is a plain or stroked Vietnamese consonant.
func IsConsonant(c rune) bool {
	if IsVowel(c) {
		return false
	}
	switch unicode.ToLower(c) {
	case 'b', 'c', 'd', 'đ', 'g', 'h', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'x':
		return true
	}
	return false
}
