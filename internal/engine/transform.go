package engine

import (
	"strings"
	"unicode"
)

// transform.go is component C4: pure functions over a buffer's rune
// positions. None of them mutate state; the engine (C8) applies their
// results to the buffer.

// pairsPlaceV1 are two-vowel nuclei (base letters, modifier retained,
// tone stripped) that take the tone on the first vowel.
var pairsPlaceV1 = map[string]bool{
	"ai": true, "ao": true, "au": true, "ay": true, "eo": true,
	"ia": true, "iu": true, "oi": true, "ui": true, "ua": true, "ưu": true,
}

// pairsStyleDependent take the tone on v2 under the modern style and on
// v1 under the traditional style.
var pairsStyleDependent = map[string]bool{
	"oa": true, "oe": true, "uy": true,
}

// Style selects between the modern and traditional tone-placement
// conventions for the {oa, oe, uy} pair class (spec §4.4).
type Style int

const (
	StyleModern Style = iota
	StyleTraditional
)

// FindTonePosition locates the buffer index that should carry the tone
// mark, given the current vowel indices, the rune slice, whether the
// syllable has a final consonant, the lowercase initial cluster
// already typed, and the active style. It returns (-1, false) when no
// vowel is eligible (the key should fall back to a literal insert).
func FindTonePosition(vowels []int, chars []rune, hasFinal bool, initial string, style Style) (int, bool) {
	v := append([]int(nil), vowels...)

	// gi-/qu- initial exceptions: the first "vowel" is actually part of
	// the initial cluster and never carries the tone.
	if len(v) > 0 {
		first := unicode.ToLower(Toneless(chars[v[0]]))
		if initial == "gi" && first == 'i' {
			v = v[1:]
		} else if initial == "qu" && first == 'u' {
			v = v[1:]
		}
	}

	switch len(v) {
	case 0:
		return -1, false
	case 1:
		return v[0], true
	case 2:
		v1, v2 := v[0], v[1]
		if hasFinal {
			return v2, true
		}
		if hasModifier(chars[v2]) {
			return v2, true
		}
		if hasModifier(chars[v1]) {
			return v1, true
		}
		key := strings.ToLower(string(Toneless(chars[v1])) + string(Toneless(chars[v2])))
		if pairsPlaceV1[key] {
			return v1, true
		}
		if pairsStyleDependent[key] {
			if style == StyleTraditional {
				return v1, true
			}
			return v2, true
		}
		return v2, true
	default:
		v1, v2, v3 := v[0], v[1], v[2]
		key := strings.ToLower(string(Toneless(chars[v1])) + string(Toneless(chars[v2])) + string(Toneless(chars[v3])))
		if key == "uyê" {
			return v3, true
		}
		for _, idx := range v {
			if hasModifier(chars[idx]) {
				return idx, true
			}
		}
		return v2, true
	}
}

func hasModifier(c rune) bool {
	_, _, mod, _, stroked, ok := Decompose(c)
	return ok && !stroked && mod != ModNone
}

// uoCompoundIndices reports whether chars[i] and chars[i+1] form the
// "uo" half of a ươ compound (both still plain, no modifier yet), for
// the simultaneous-horn special case in apply_modifier (spec §4.4,
// §8 "dươc -> được").
func uoCompoundIndices(chars []rune) (int, int, bool) {
	for i := 0; i+1 < len(chars); i++ {
		a, b := strings.ToLower(string(chars[i])), strings.ToLower(string(chars[i+1]))
		if a == "u" && b == "o" {
			return i, i + 1, true
		}
	}
	return 0, 0, false
}

// FindModifierPosition scans right-to-left for the rightmost vowel that
// can accept the given modifier, per the admissible base letters in
// modifierLetter. It special-cases the ươ compound: when the modifier
// is Horn and the buffer holds a bare adjacent "uo" pair (the leftmost
// one, wherever it sits, e.g. the "uo" of "uoi"), both positions are
// returned together.
func FindModifierPosition(chars []rune, mod Modifier) (positions []int, ok bool) {
	if mod == ModHorn {
		if i, j, found := uoCompoundIndices(chars); found {
			return []int{i, j}, true
		}
	}
	for i := len(chars) - 1; i >= 0; i-- {
		base, _, _, _, stroked, decOk := Decompose(chars[i])
		if !decOk || stroked {
			continue
		}
		mods, has := modifierLetter[unicode.ToLower(base)]
		if !has {
			continue
		}
		if _, admissible := mods[mod]; admissible {
			return []int{i}, true
		}
	}
	return nil, false
}

// ShouldUndoTone reports whether re-pressing the same tone key on a
// position that already carries that tone should clear it back to
// ToneNone (the "double-press undo" gesture).
func ShouldUndoTone(current rune, requested Tone) bool {
	_, _, _, tone, stroked, ok := Decompose(current)
	return ok && !stroked && tone == requested
}

// ShouldUndoModifier is the modifier analogue of ShouldUndoTone.
func ShouldUndoModifier(current rune, requested Modifier) bool {
	_, _, mod, _, stroked, ok := Decompose(current)
	return ok && !stroked && mod == requested
}

// RemoveAllDiacritics strips both tone and modifier from every rune,
// for the Telex 'z' / VNI '0' gesture.
func RemoveAllDiacritics(chars []rune) []rune {
	out := make([]rune, len(chars))
	for i, c := range chars {
		out[i] = StripDiacritics(c)
	}
	return out
}

// AllowsDelayedStroke reports whether a 'd' typed earlier in the buffer
// may still be promoted to 'đ' by a later doubled 'd' (spec §4.4: only
// within the first three buffer positions, or when the syllable so far
// is still potentially valid).
func AllowsDelayedStroke(bufferLen int, stillValid bool) bool {
	return bufferLen <= 3 || stillValid
}
