package engine

// vni.go is the VNI half of component C5, grounded on the teacher's
// internal/engine/vni.go but rebuilt to emit the closed KeyAction
// alphabet of method.go instead of mutating state directly.

// VNIMethod implements InputMethod for the VNI convention.
type VNIMethod struct{}

var _ InputMethod = VNIMethod{}

// Name implements InputMethod.
func (VNIMethod) Name() Method { return MethodVNI }

// Classify implements InputMethod per spec §4.5 "VNI mapping".
func (VNIMethod) Classify(key rune, prevRaw rune, hasPrev bool) KeyAction {
	switch key {
	case '1':
		return KeyAction{Kind: KeyTone, Tone: ToneAcute}
	case '2':
		return KeyAction{Kind: KeyTone, Tone: ToneGrave}
	case '3':
		return KeyAction{Kind: KeyTone, Tone: ToneHook}
	case '4':
		return KeyAction{Kind: KeyTone, Tone: ToneTilde}
	case '5':
		return KeyAction{Kind: KeyTone, Tone: ToneDot}
	case '6':
		return KeyAction{Kind: KeyModifier, Mod: ModCircumflex}
	case '7':
		return KeyAction{Kind: KeyModifier, Mod: ModHorn}
	case '8':
		return KeyAction{Kind: KeyModifier, Mod: ModBreve}
	case '9':
		if hasPrev && (prevRaw == 'd' || prevRaw == 'D') {
			return KeyAction{Kind: KeyStroke}
		}
		return noneAction()
	case '0':
		return KeyAction{Kind: KeyRemoveDiacritics}
	}
	return noneAction()
}
