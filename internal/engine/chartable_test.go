package engine

import "testing"

func TestCompose(t *testing.T) {
	tests := []struct {
		name     string
		base     rune
		upper    bool
		modifier Modifier
		tone     Tone
		want     rune
		wantOk   bool
	}{
		{"a plain", 'a', false, ModNone, ToneNone, 'a', true},
		{"a with sac", 'a', false, ModNone, ToneAcute, 'á', true},
		{"a circumflex huyen", 'a', false, ModCircumflex, ToneGrave, 'ầ', true},
		{"a breve nang", 'a', false, ModBreve, ToneDot, 'ặ', true},
		{"uppercase o horn sac", 'o', true, ModHorn, ToneAcute, 'Ớ', true},
		{"e cannot take breve", 'e', false, ModBreve, ToneNone, 0, false},
		{"i cannot take horn", 'i', false, ModHorn, ToneNone, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Compose(tt.base, tt.upper, tt.modifier, tt.tone)
			if ok != tt.wantOk || (ok && got != tt.want) {
				t.Errorf("Compose(%q,%v,%v,%v) = %q,%v, want %q,%v", tt.base, tt.upper, tt.modifier, tt.tone, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestDecomposeRoundTrip(t *testing.T) {
	chars := []rune{'á', 'ầ', 'ặ', 'ớ', 'ữ', 'Ỹ', 'đ', 'Đ'}
	for _, c := range chars {
		base, upper, mod, tone, stroked, ok := Decompose(c)
		if !ok {
			t.Fatalf("Decompose(%q) not ok", c)
		}
		if stroked {
			continue
		}
		got, ok := Compose(base, upper, mod, tone)
		if !ok || got != c {
			t.Errorf("round-trip %q: got %q,%v", c, got, ok)
		}
	}
}

func TestDecomposeStroke(t *testing.T) {
	base, upper, _, _, stroked, ok := Decompose('đ')
	if !ok || !stroked || base != 'd' || upper {
		t.Errorf("Decompose('đ') = base=%q upper=%v stroked=%v ok=%v", base, upper, stroked, ok)
	}
	base, upper, _, _, stroked, ok = Decompose('Đ')
	if !ok || !stroked || base != 'd' || !upper {
		t.Errorf("Decompose('Đ') = base=%q upper=%v stroked=%v ok=%v", base, upper, stroked, ok)
	}
}

func TestWithTone(t *testing.T) {
	tests := []struct {
		c    rune
		tone Tone
		want rune
	}{
		{'a', ToneAcute, 'á'},
		{'â', ToneGrave, 'ầ'},
		{'ă', ToneDot, 'ặ'},
		{'ơ', ToneHook, 'ở'},
		{'á', ToneNone, 'a'},
	}
	for _, tt := range tests {
		got, ok := WithTone(tt.c, tt.tone)
		if !ok || got != tt.want {
			t.Errorf("WithTone(%q, %v) = %q,%v, want %q", tt.c, tt.tone, got, ok, tt.want)
		}
	}
}

func TestWithToneRejectsStroke(t *testing.T) {
	if _, ok := WithTone('đ', ToneAcute); ok {
		t.Error("WithTone('đ', ...) should fail, đ carries no tone")
	}
}

func TestWithModifier(t *testing.T) {
	tests := []struct {
		c    rune
		mod  Modifier
		want rune
	}{
		{'a', ModCircumflex, 'â'},
		{'o', ModHorn, 'ơ'},
		{'u', ModHorn, 'ư'},
		{'á', ModCircumflex, 'ấ'}, // tone preserved
	}
	for _, tt := range tests {
		got, ok := WithModifier(tt.c, tt.mod)
		if !ok || got != tt.want {
			t.Errorf("WithModifier(%q, %v) = %q,%v, want %q", tt.c, tt.mod, got, ok, tt.want)
		}
	}
}

func TestToneless(t *testing.T) {
	tests := []struct {
		c, want rune
	}{
		{'á', 'a'},
		{'ế', 'ê'},
		{'ằ', 'ă'},
		{'ờ', 'ơ'},
		{'đ', 'đ'}, // unaffected
		{'b', 'b'}, // non-vowel unaffected
	}
	for _, tt := range tests {
		if got := Toneless(tt.c); got != tt.want {
			t.Errorf("Toneless(%q) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestStripDiacritics(t *testing.T) {
	tests := []struct {
		c, want rune
	}{
		{'á', 'a'},
		{'ặ', 'a'},
		{'ữ', 'u'},
		{'đ', 'd'},
		{'Đ', 'D'},
		{'Ầ', 'A'},
	}
	for _, tt := range tests {
		if got := StripDiacritics(tt.c); got != tt.want {
			t.Errorf("StripDiacritics(%q) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestIsVowelIsConsonant(t *testing.T) {
	vowels := []rune{'a', 'ă', 'â', 'e', 'ê', 'i', 'o', 'ô', 'ơ', 'u', 'ư', 'y', 'á', 'ầ'}
	for _, v := range vowels {
		if !IsVowel(v) {
			t.Errorf("IsVowel(%q) = false, want true", v)
		}
		if IsConsonant(v) {
			t.Errorf("IsConsonant(%q) = true, want false", v)
		}
	}
	consonants := []rune{'b', 'c', 'd', 'đ', 'g', 'h', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'x'}
	for _, c := range consonants {
		if !IsConsonant(c) {
			t.Errorf("IsConsonant(%q) = false, want true", c)
		}
		if IsVowel(c) {
			t.Errorf("IsVowel(%q) = true, want false", c)
		}
	}
}
