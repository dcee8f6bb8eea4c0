package engine

import "testing"

func TestEngineTelexAcuteTone(t *testing.T) {
	e := NewEngine(MethodTelex)
	r1 := e.ProcessKey('a')
	if r1.Action != ActionUpdate || r1.Output != "a" || r1.Backspace != 0 {
		t.Fatalf("ProcessKey(a) = %+v, want update a/0", r1)
	}
	r2 := e.ProcessKey('s')
	if r2.Action != ActionUpdate || r2.Output != "á" || r2.Backspace != 1 {
		t.Fatalf("ProcessKey(s) = %+v, want update á/1", r2)
	}
	if e.BufferText() != "á" {
		t.Fatalf("BufferText() = %q, want á", e.BufferText())
	}
}

func TestEngineTelexDoublePressUndoesTone(t *testing.T) {
	e := NewEngine(MethodTelex)
	e.ProcessKey('a')
	e.ProcessKey('s')
	r := e.ProcessKey('s')
	if r.Action != ActionUpdate || r.Output != "a" || r.Backspace != 1 {
		t.Fatalf("second s = %+v, want update a/1 (tone undo)", r)
	}
	if e.BufferText() != "a" {
		t.Fatalf("BufferText() after undo = %q, want a", e.BufferText())
	}
}

func TestEngineUndoLastTransform(t *testing.T) {
	e := NewEngine(MethodTelex)
	e.ProcessKey('a')
	e.ProcessKey('s')
	r, ok := e.UndoLastTransform()
	if !ok {
		t.Fatal("UndoLastTransform() should report ok")
	}
	if r.Output != "a" || r.Backspace != 1 {
		t.Fatalf("UndoLastTransform() = %+v, want a/1", r)
	}
	if _, ok := e.UndoLastTransform(); ok {
		t.Error("a second UndoLastTransform() with nothing pending should fail")
	}
}

func TestEngineVNILiteralDigitAfterFinalConsonant(t *testing.T) {
	e := NewEngine(MethodVNI)
	e.ProcessKey('v')
	e.ProcessKey('a')
	r := e.ProcessKey('r')
	if r.Output != "r" {
		t.Fatalf("ProcessKey(r) = %+v, want plain r", r)
	}
	r = e.ProcessKey('1')
	if r.Output != "1" || r.Backspace != 0 {
		t.Fatalf("ProcessKey(1) after consonant = %+v, want literal 1/0", r)
	}
	if e.BufferText() != "var1" {
		t.Fatalf("BufferText() = %q, want var1", e.BufferText())
	}
}

func TestEngineVNIToneAfterVowel(t *testing.T) {
	e := NewEngine(MethodVNI)
	e.ProcessKey('b')
	e.ProcessKey('a')
	r := e.ProcessKey('1')
	if r.Output != "á" || r.Backspace != 1 {
		t.Fatalf("ProcessKey(1) = %+v, want á/1", r)
	}
	if e.BufferText() != "bá" {
		t.Fatalf("BufferText() = %q, want bá", e.BufferText())
	}
}

func TestEngineImmediateShortcutFiresMidWord(t *testing.T) {
	e := NewEngine(MethodTelex)
	e.ProcessKey('k')
	r := e.ProcessKey('o')
	if r.Action != ActionCommit || r.Output != "không" || r.Backspace != 2 {
		t.Fatalf("ProcessKey(o) after k = %+v, want commit không/2", r)
	}
	if e.BufferText() != "" {
		t.Fatalf("buffer should be cleared after shortcut commit, got %q", e.BufferText())
	}
	r2 := e.ProcessKey(' ')
	if r2.Action != ActionCommit || r2.Output != " " || r2.Backspace != 0 {
		t.Fatalf("ProcessKey(space) on empty buffer = %+v, want commit ' '/0", r2)
	}
}

func TestEngineForeignWordCommitsAsTypedWithoutRestore(t *testing.T) {
	e := NewEngine(MethodTelex)
	for _, k := range "hell" {
		e.ProcessKey(k)
	}
	r := e.ProcessKey('o')
	if r.Output != "o" {
		t.Fatalf("ProcessKey(o) = %+v, want plain o", r)
	}
	r = e.ProcessKey(' ')
	// current == raw the whole way (no tone/modifier key was ever typed),
	// so there is nothing to restore even though "hello" trips the
	// foreign-word heuristic.
	if r.Action != ActionCommit || r.Restored || r.Output != "hello " || r.Backspace != 5 {
		t.Fatalf("ProcessKey(space) = %+v, want commit 'hello '/5, not restored", r)
	}
}

func TestEngineBackspace(t *testing.T) {
	e := NewEngine(MethodTelex)
	e.ProcessKey('a')
	e.ProcessKey('s')
	r := e.Backspace()
	if r.Action != ActionUpdate {
		t.Fatalf("Backspace() = %+v, want update", r)
	}
	if e.BufferText() != "" {
		t.Fatalf("BufferText() after backspace = %q, want empty", e.BufferText())
	}
	r = e.Backspace()
	if r.Action != ActionPassthrough {
		t.Fatalf("Backspace() on empty buffer = %+v, want passthrough", r)
	}
}

func TestEngineDelayedStrokeWithinThreeAlwaysAllowed(t *testing.T) {
	e := NewEngine(MethodTelex)
	e.ProcessKey('o')
	e.ProcessKey('d')
	r := e.ProcessKey('d')
	if r.Output != "đ" || r.Backspace != 1 {
		t.Fatalf("ProcessKey(d) doubled at position 2 = %+v, want toggle to đ", r)
	}
	if e.BufferText() != "ođ" {
		t.Fatalf("BufferText() = %q, want ođ", e.BufferText())
	}
}

func TestEngineDelayedStrokeDeniedPastThreeWhenInvalid(t *testing.T) {
	e := NewEngine(MethodTelex)
	for _, k := range "toan" {
		e.ProcessKey(k)
	}
	e.ProcessKey('d')
	r := e.ProcessKey('d')
	// "toand" does not validate (no such nucleus as "oand"), and the
	// buffer is already past position 3, so the second 'd' is taken as
	// a literal letter rather than a stroke toggle.
	if r.Output != "d" {
		t.Fatalf("ProcessKey(d) past gate = %+v, want literal d", r)
	}
	if e.BufferText() != "toandd" {
		t.Fatalf("BufferText() = %q, want toandd", e.BufferText())
	}
}

func TestEngineDoubleDStrokeUndo(t *testing.T) {
	e := NewEngine(MethodTelex)
	e.ProcessKey('d')
	e.ProcessKey('d')
	if e.BufferText() != "đ" {
		t.Fatalf("BufferText() = %q, want đ", e.BufferText())
	}
	r := e.ProcessKey('d')
	if r.Output != "d" {
		t.Fatalf("ProcessKey(d) third press = %+v, want undo back to d", r)
	}
	if e.BufferText() != "d" {
		t.Fatalf("BufferText() = %q, want d", e.BufferText())
	}
}

func TestEngineAutoCapitalizeAtSentenceStart(t *testing.T) {
	e := NewEngine(MethodTelex)
	opts := e.GetOptions()
	opts.AutoCapitalize = true
	e.SetOptions(opts)
	r := e.ProcessKey('a')
	if r.Output != "A" {
		t.Fatalf("ProcessKey(a) = %+v, want capitalized A", r)
	}
}

func TestEngineSmartQuoteOpeningAtWordStart(t *testing.T) {
	e := NewEngine(MethodTelex)
	opts := e.GetOptions()
	opts.SmartQuotes = true
	e.SetOptions(opts)
	r := e.ProcessKey('"')
	if r.Action != ActionCommit || r.Output != "“" {
		t.Fatalf("ProcessKey(\") = %+v, want commit opening curly quote", r)
	}
}

func TestEngineShortcutPrefixSigilPassesThroughThenMatches(t *testing.T) {
	e := NewEngine(MethodTelex)
	r := e.ProcessKey('#')
	if r.Action != ActionPassthrough {
		t.Fatalf("ProcessKey(#) on empty buffer = %+v, want passthrough", r)
	}
	e.ProcessKey('v')
	r = e.ProcessKey('n')
	if r.Action != ActionCommit || r.Output != "Việt Nam" || r.Backspace != 3 {
		t.Fatalf("ProcessKey(n) after #v = %+v, want commit Việt Nam/3 (2 for \"vn\" + 1 for the passed-through #)", r)
	}
	r = e.ProcessKey(' ')
	if r.Action != ActionCommit || r.Output != " " || r.Backspace != 0 {
		t.Fatalf("ProcessKey(space) after shortcut commit = %+v, want commit ' '/0", r)
	}
}

func TestEngineShortcutPrefixDroppedWhenNoLettersFollow(t *testing.T) {
	e := NewEngine(MethodTelex)
	e.ProcessKey('#')
	r := e.ProcessKey(' ')
	if r.Action != ActionPassthrough {
		t.Fatalf("ProcessKey(space) right after a bare # = %+v, want passthrough (prefix dropped)", r)
	}
	// the dropped prefix must not leak into the next word's matching.
	e.ProcessKey('v')
	r = e.ProcessKey('n')
	if r.Action != ActionCommit || r.Output != "Việt Nam" || r.Backspace != 2 {
		t.Fatalf("ProcessKey(n) after vn = %+v, want commit Việt Nam/2, no stale prefix backspace", r)
	}
}

func TestEngineSmartQuoteClosingAfterSentencePunctuation(t *testing.T) {
	e := NewEngine(MethodTelex)
	opts := e.GetOptions()
	opts.SmartQuotes = true
	e.SetOptions(opts)
	e.ProcessKey('a')
	r := e.ProcessKey('.')
	if r.Action != ActionCommit || r.Output != "a." || r.Backspace != 1 {
		t.Fatalf("ProcessKey(.) = %+v, want commit a./1", r)
	}
	// buffer is empty again, but the last committed char is '.', not
	// whitespace, so the next quote should close rather than open.
	r = e.ProcessKey('"')
	if r.Action != ActionCommit || r.Output != "”" {
		t.Fatalf("ProcessKey(\") right after committing '.' = %+v, want closing curly quote", r)
	}
}

func TestEngineClearResetsTransientState(t *testing.T) {
	e := NewEngine(MethodTelex)
	e.ProcessKey('a')
	e.ProcessKey('s')
	e.Clear()
	if e.BufferText() != "" {
		t.Fatalf("BufferText() after Clear() = %q, want empty", e.BufferText())
	}
	if _, ok := e.UndoLastTransform(); ok {
		t.Error("UndoLastTransform() after Clear() should fail, last transform forgotten")
	}
}

func TestEngineDisabledPassesThrough(t *testing.T) {
	e := NewEngine(MethodTelex)
	e.SetEnabled(false)
	r := e.ProcessKey('a')
	if r.Action != ActionPassthrough {
		t.Fatalf("ProcessKey(a) while disabled = %+v, want passthrough", r)
	}
}

func TestEngineSetMethodSwitchesConvention(t *testing.T) {
	e := NewEngine(MethodTelex)
	if e.Method() != MethodTelex {
		t.Fatal("new engine should default to Telex")
	}
	e.SetMethod(MethodVNI)
	if e.Method() != MethodVNI {
		t.Fatal("SetMethod(VNI) should switch the reported method")
	}
}
