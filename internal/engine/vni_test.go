package engine

import "testing"

func TestVNIToneKeys(t *testing.T) {
	m := VNIMethod{}
	tests := []struct {
		key  rune
		tone Tone
	}{
		{'1', ToneAcute},
		{'2', ToneGrave},
		{'3', ToneHook},
		{'4', ToneTilde},
		{'5', ToneDot},
	}
	for _, tt := range tests {
		got := m.Classify(tt.key, 0, false)
		if got.Kind != KeyTone || got.Tone != tt.tone {
			t.Errorf("Classify(%q) = %+v, want tone %v", tt.key, got, tt.tone)
		}
	}
}

func TestVNIModifierKeys(t *testing.T) {
	m := VNIMethod{}
	if got := m.Classify('6', 0, false); got.Kind != KeyModifier || got.Mod != ModCircumflex {
		t.Errorf("Classify(6) = %+v, want ModCircumflex", got)
	}
	if got := m.Classify('7', 0, false); got.Kind != KeyModifier || got.Mod != ModHorn {
		t.Errorf("Classify(7) = %+v, want ModHorn", got)
	}
	if got := m.Classify('8', 0, false); got.Kind != KeyModifier || got.Mod != ModBreve {
		t.Errorf("Classify(8) = %+v, want ModBreve", got)
	}
}

func TestVNIStrokeRequiresPrecedingD(t *testing.T) {
	m := VNIMethod{}
	if got := m.Classify('9', 'd', true); got.Kind != KeyStroke {
		t.Errorf("Classify(9, prev d) = %+v, want KeyStroke", got)
	}
	if got := m.Classify('9', 'D', true); got.Kind != KeyStroke {
		t.Errorf("Classify(9, prev D) = %+v, want KeyStroke", got)
	}
	if got := m.Classify('9', 'a', true); got.Kind != KeyNone {
		t.Errorf("Classify(9, prev a) = %+v, want KeyNone", got)
	}
	if got := m.Classify('9', 0, false); got.Kind != KeyNone {
		t.Errorf("Classify(9, no prev) = %+v, want KeyNone", got)
	}
}

func TestVNIRemoveDiacritics(t *testing.T) {
	m := VNIMethod{}
	if got := m.Classify('0', 0, false); got.Kind != KeyRemoveDiacritics {
		t.Errorf("Classify(0) = %+v, want KeyRemoveDiacritics", got)
	}
}

func TestVNIUnmappedKey(t *testing.T) {
	m := VNIMethod{}
	if got := m.Classify('a', 0, false); got.Kind != KeyNone {
		t.Errorf("Classify(a) = %+v, want KeyNone", got)
	}
}

func TestVNIName(t *testing.T) {
	if (VNIMethod{}).Name() != MethodVNI {
		t.Error("VNIMethod.Name() should be MethodVNI")
	}
}
