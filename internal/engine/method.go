package engine

// method.go defines the closed alphabet of key actions an input method
// can classify a keystroke into (spec §4.5), and the InputMethod
// interface the Telex and VNI conventions implement (component C5).

// KeyActionKind is the tag of a KeyAction.
type KeyActionKind int

const (
	// KeyNone means the key carries no Vietnamese-composition meaning;
	// the engine passes it through as a literal character.
	KeyNone KeyActionKind = iota
	// KeyTone requests the tone in Tone be applied at the position the
	// tone-placement algorithm (§4.4) selects.
	KeyTone
	// KeyModifier requests the vowel modifier in Mod.
	KeyModifier
	// KeyStroke requests the d/đ toggle.
	KeyStroke
	// KeyRemoveDiacritics strips every tone and modifier in the buffer.
	KeyRemoveDiacritics
	// KeyQuickTelex is a doubled-consonant shorthand (Telex's cc/gg/nn/
	// pp/tt/qq/kk) that replaces the last unit with a two-letter cluster.
	KeyQuickTelex
	// KeyInsertChar inserts Char literally (Telex's '[' -> ư, ']' -> ơ).
	KeyInsertChar
)

// KeyAction is the result of an InputMethod classifying one keystroke.
// Exactly the fields relevant to Kind are meaningful.
type KeyAction struct {
	Kind    KeyActionKind
	Tone    Tone
	Mod     Modifier
	Cluster string
	Char    rune
}

func noneAction() KeyAction { return KeyAction{Kind: KeyNone} }

// InputMethod classifies a single keystroke into a KeyAction. prevRaw
// is the raw rune of the unit immediately before this one in the
// buffer (used for the doubling gestures); hasPrev is false at the
// start of a syllable.
type InputMethod interface {
	Classify(key rune, prevRaw rune, hasPrev bool) KeyAction
	Name() Method
}

// wordBoundaryRunes are the characters that terminate a syllable and
// trigger the word-boundary pipeline (spec §4.8): whitespace plus the
// full punctuation/symbol set of spec §6.
var wordBoundaryRunes = map[rune]bool{
	' ': true, '\t': true, '\n': true, '\r': true,
	'.': true, ',': true, ';': true, ':': true, '!': true, '?': true,
	'"': true, '\'': true, '(': true, ')': true, '[': true, ']': true,
	'{': true, '}': true, '<': true, '>': true, '/': true, '\\': true,
	'=': true, '+': true, '-': true, '*': true, '@': true, '#': true,
	'$': true, '%': true, '^': true, '&': true, '|': true, '~': true,
}

// IsWordBoundary reports whether r ends the current syllable.
func IsWordBoundary(r rune) bool {
	return wordBoundaryRunes[r]
}

// shortcutSigils prefix-mark a shortcut trigger so it can be recognized
// as an Immediate-condition lookup inline (spec §6).
var shortcutSigils = map[rune]bool{
	'#': true, '@': true, '!': true, '$': true, '%': true, '^': true, '&': true, '*': true, '/': true, ':': true,
}

// IsShortcutSigil reports whether r can prefix an inline shortcut
// trigger. Note per spec §9: Telex's own '[' / ']' bracket shortcuts
// collide with the word-boundary set above and are in practice never
// reached by the engine; this is a documented limitation, not a bug to
// silently work around by re-ordering precedence.
func IsShortcutSigil(r rune) bool {
	return shortcutSigils[r]
}
