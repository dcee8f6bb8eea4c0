package engine

// telex.go is the Telex half of component C5, grounded on the
// teacher's internal/engine/telex.go but rebuilt to emit the closed
// KeyAction alphabet of method.go instead of mutating state directly.

// TelexMethod implements InputMethod for the Telex convention.
type TelexMethod struct{}

var _ InputMethod = TelexMethod{}

// Name implements InputMethod.
func (TelexMethod) Name() Method { return MethodTelex }

var telexQuickClusters = map[rune]string{
	'c': "ch", 'g': "gh", 'n': "nh", 'p': "ph", 't': "th", 'q': "qu", 'k': "kh",
}

// Classify implements InputMethod per spec §4.5 "Telex mapping".
func (TelexMethod) Classify(key rune, prevRaw rune, hasPrev bool) KeyAction {
	switch key {
	case 's':
		return KeyAction{Kind: KeyTone, Tone: ToneAcute}
	case 'f':
		return KeyAction{Kind: KeyTone, Tone: ToneGrave}
	case 'r':
		return KeyAction{Kind: KeyTone, Tone: ToneHook}
	case 'x':
		return KeyAction{Kind: KeyTone, Tone: ToneTilde}
	case 'j':
		return KeyAction{Kind: KeyTone, Tone: ToneDot}
	case 'z':
		return KeyAction{Kind: KeyRemoveDiacritics}
	case '[':
		return KeyAction{Kind: KeyInsertChar, Char: 'ư'}
	case ']':
		return KeyAction{Kind: KeyInsertChar, Char: 'ơ'}
	}

	if !hasPrev {
		return noneAction()
	}
	prev := prevRaw

	switch key {
	case 'a', 'e', 'o':
		if prev == key {
			return KeyAction{Kind: KeyModifier, Mod: ModCircumflex}
		}
	case 'w':
		switch prev {
		case 'o', 'u':
			return KeyAction{Kind: KeyModifier, Mod: ModHorn}
		case 'a':
			return KeyAction{Kind: KeyModifier, Mod: ModBreve}
		}
	case 'd':
		if prev == 'd' {
			return KeyAction{Kind: KeyStroke}
		}
	case 'c', 'g', 'n', 'p', 't', 'q', 'k':
		if prev == key {
			return KeyAction{Kind: KeyQuickTelex, Cluster: telexQuickClusters[key]}
		}
	}

	return noneAction()
}
