package engine

import (
	"sort"
	"strings"
	"unicode"
)

// validator.go is component C6: classifies the current buffer text as
// phonologically valid Vietnamese or one of several invalid classes.
// The full Validate and the weaker IsValidForTransform share the same
// initial/nucleus/final parser; they differ only in which rule classes
// are active (spec §4.6, design note "Validator composability").

// ValidationResult classifies a syllable.
type ValidationResult int

const (
	Valid ValidationResult = iota
	NoVowel
	InvalidInitial
	InvalidFinal
	InvalidSpelling
	InvalidVowelPattern
	ForeignWord
)

func (v ValidationResult) String() string {
	switch v {
	case Valid:
		return "valid"
	case NoVowel:
		return "no_vowel"
	case InvalidInitial:
		return "invalid_initial"
	case InvalidFinal:
		return "invalid_final"
	case InvalidSpelling:
		return "invalid_spelling"
	case InvalidVowelPattern:
		return "invalid_vowel_pattern"
	case ForeignWord:
		return "foreign_word"
	}
	return "unknown"
}

var sortedInitials = sortedByLenDesc(ValidInitials)
var sortedFinals = sortedByLenDesc(ValidFinals)

func sortedByLenDesc(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

// splitSyllable parses lower into (initial, nucleus, final) by trying
// valid initial prefixes longest-first, then the longest valid final
// suffix of the residue. ok is false when no combination leaves a
// non-empty nucleus.
func splitSyllable(lower string) (initial, nucleus, final string, ok bool) {
	for _, in := range sortedInitials {
		if !strings.HasPrefix(lower, in) {
			continue
		}
		residue := lower[len(in):]
		for _, fin := range sortedFinals {
			if !strings.HasSuffix(residue, fin) {
				continue
			}
			nuc := residue[:len(residue)-len(fin)]
			if nuc == "" {
				continue
			}
			return in, nuc, fin, true
		}
	}
	return "", "", "", false
}

// Validate runs the full 8-step classification of spec §4.6.
func Validate(original string) ValidationResult {
	return validate(original, true)
}

// IsValidForTransform is the weaker gate used while still composing: it
// skips the foreign-word gate and the nucleus-whitelist check (spec
// §4.6, "is_valid_for_transform").
func IsValidForTransform(original string) bool {
	return validate(original, false) != InvalidInitial &&
		validate(original, false) != InvalidFinal &&
		validate(original, false) != InvalidSpelling &&
		validate(original, false) != NoVowel
}

func validate(original string, fullGate bool) ValidationResult {
	lower := strings.ToLower(original)
	if lower == "" || !containsVowel(lower) {
		return NoVowel
	}

	if fullGate && !hasVietnameseDiacritic(original) {
		if EnglishKeywords[lower] {
			return ForeignWord
		}
		if isProgrammingIdentifier(original) {
			return ForeignWord
		}
		if isForeignWordPattern(lower, nil) {
			return ForeignWord
		}
	}

	initial, nucleus, final, ok := splitSyllable(lower)
	if !ok {
		return InvalidSpelling
	}

	if !ValidInitials[initial] {
		return InvalidInitial
	}
	if !ValidFinals[final] {
		return InvalidFinal
	}

	nucleusFirst := string([]rune(nucleus)[0])
	if !checkSpelling(initial, nucleusFirst) {
		return InvalidSpelling
	}

	if fullGate {
		normalized := toneless(nucleus)
		if !ValidVowelNuclei[normalized] {
			return InvalidVowelPattern
		}
	}

	if invalidBrevePattern(nucleus) {
		return InvalidVowelPattern
	}

	return Valid
}

// toneless strips tone marks from every rune of a nucleus, retaining
// vowel modifiers (so "ều" normalizes to "êu").
func toneless(s string) string {
	var sb strings.Builder
	for _, r := range s {
		sb.WriteRune(unicode.ToLower(Toneless(r)))
	}
	return sb.String()
}

// invalidBrevePattern flags a breve vowel (ă) immediately followed by
// another vowel in the nucleus, unless it is itself preceded by 'o'
// (spec §4.6 step 7, e.g. allowed "oăn").
func invalidBrevePattern(nucleus string) bool {
	runes := []rune(nucleus)
	for i, r := range runes {
		base, _, mod, _, _, ok := Decompose(r)
		if !ok || base != 'a' || mod != ModBreve {
			continue
		}
		if i+1 >= len(runes) || !IsVowel(runes[i+1]) {
			continue
		}
		if i > 0 && unicode.ToLower(runes[i-1]) == 'o' {
			continue
		}
		return true
	}
	return false
}

func containsVowel(s string) bool {
	for _, r := range s {
		if IsVowel(r) {
			return true
		}
	}
	return false
}

func hasVietnameseDiacritic(s string) bool {
	for _, r := range s {
		if r == 'đ' || r == 'Đ' {
			return true
		}
		if _, _, mod, tone, stroked, ok := Decompose(r); ok && !stroked {
			if mod != ModNone || tone != ToneNone {
				return true
			}
		}
	}
	return false
}

func isProgrammingIdentifier(s string) bool {
	if strings.ContainsRune(s, '_') {
		return true
	}
	runes := []rune(s)
	for i := 1; i < len(runes)-1; i++ {
		if unicode.IsDigit(runes[i]) {
			return true
		}
	}
	for i := 1; i < len(runes); i++ {
		if unicode.IsLower(runes[i-1]) && unicode.IsUpper(runes[i]) {
			return true
		}
	}
	return false
}

func isConsonantByte(b byte) bool {
	switch b {
	case 'b', 'c', 'd', 'g', 'h', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'x', 'w', 'f', 'j', 'z':
		return true
	}
	return false
}

// isForeignWordPattern implements the ordered English/foreign pattern
// gate of spec §4.6 step 2. The previousKey parameter lets the engine
// call this mid-composition (with the just-typed key) in addition to
// the word-boundary Validate call; nil here means "check s as-is".
func isForeignWordPattern(lower string, previousKey *rune) bool {
	s := lower
	if previousKey != nil {
		s = lower + string(unicode.ToLower(*previousKey))
	}
	if s == "" {
		return false
	}

	// The eight English patterns.
	if len(s) >= 2 && s[0] == 'w' && isConsonantByte(s[1]) {
		return true
	}
	if strings.Contains(s, "ei") {
		return true
	}
	if strings.HasPrefix(s, "p") && !strings.HasPrefix(s, "ph") && strings.Contains(s, "ai") {
		return true
	}
	if strings.HasSuffix(s, "w") {
		return true
	}
	if strings.HasPrefix(s, "f") {
		return true
	}
	if strings.HasSuffix(s, "k") && !strings.ContainsAny(s, "ăắằẳẵặ") {
		return true
	}
	if strings.Contains(s, "oo") && !strings.Contains(s, "oong") {
		idx := strings.Index(s, "oo")
		if idx+2 < len(s) && isConsonantByte(s[idx+2]) {
			return true
		}
	}
	if strings.HasPrefix(s, "ex") {
		return true
	}

	// Additional triggers.
	for cluster := range ForeignClusters {
		if strings.Contains(s, cluster) {
			return true
		}
	}
	if strings.HasPrefix(s, "pr") && len(s) > 3 {
		return true
	}
	if strings.HasSuffix(s, "tion") || strings.HasSuffix(s, "sion") {
		return true
	}
	if strings.Contains(s, "yo") {
		return true
	}
	if strings.Contains(s, "ou") {
		return true
	}
	if strings.HasPrefix(s, "j") {
		return true
	}
	if strings.Contains(s, "z") {
		return true
	}
	if strings.HasSuffix(s, "th") || strings.HasSuffix(s, "ght") || strings.HasSuffix(s, "sh") ||
		strings.HasSuffix(s, "tch") || strings.HasSuffix(s, "ing") || strings.HasSuffix(s, "ly") {
		return true
	}
	if strings.HasSuffix(s, "ed") && len(s) >= 3 && isConsonantByte(s[len(s)-3]) {
		return true
	}
	if hasUnsupportedDoubleConsonant(s) {
		return true
	}

	return false
}

func hasUnsupportedDoubleConsonant(s string) bool {
	runes := []rune(s)
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] && isConsonantByte(byte(runes[i])) {
			return true
		}
	}
	return false
}
