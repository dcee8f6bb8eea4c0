package engine

import (
	"strings"
	"unicode"
)

// engine.go is component C8: the per-key pipeline that ties the
// character table (C1), phonotactics (C2), buffer (C3), transform
// primitives (C4), input methods (C5), validator (C6), shortcut table
// (C7), and edit differ (C9) together into a single process_key call.
// Grounded on the teacher's composition.go and, for the ordering of
// checks, on original_source/core/src/engine.rs.

type transformKind int

const (
	transformNone transformKind = iota
	transformTone
	transformModifier
	transformStroke
)

// lastTransform records the most recent tone/modifier/stroke mutation,
// so the very next matching key can be recognized as a double-press
// undo instead of a no-op repeat.
type lastTransform struct {
	position int
	kind     transformKind
	original rune
}

// Engine is the single-syllable Vietnamese composition state machine.
// One Engine exists per process (spec §3, "Single-word scope").
type Engine struct {
	buffer          *Buffer
	method          InputMethod
	enabled         bool
	shortcuts       *ShortcutTable
	last            *lastTransform
	possibleForeign bool
	options         Options

	lastRendered      string
	lastCommittedChar rune

	// shortcutPrefix holds a sigil (spec §3, §6) that was passed through
	// to the host while the buffer was empty, pending a shortcut match
	// once the triggering letters are typed. Zero means none pending.
	shortcutPrefix rune
}

// NewEngine constructs an Engine for the given input method, with the
// default shortcut table and options.
func NewEngine(method Method) *Engine {
	e := &Engine{
		buffer:    NewBuffer(),
		enabled:   true,
		shortcuts: DefaultShortcutTable(),
		options:   DefaultOptions(),
	}
	e.SetMethod(method)
	return e
}

// SetMethod switches the active input convention. Unknown names are
// the caller's responsibility to resolve via ParseMethod before
// reaching here; SetMethod itself only dispatches on the closed Method
// enum.
func (e *Engine) SetMethod(m Method) {
	if m == MethodVNI {
		e.method = VNIMethod{}
	} else {
		e.method = TelexMethod{}
	}
}

// Method reports the active input convention.
func (e *Engine) Method() Method { return e.method.Name() }

// Toggle flips Enabled.
func (e *Engine) Toggle() { e.enabled = !e.enabled }

// SetEnabled sets whether ProcessKey does anything at all.
func (e *Engine) SetEnabled(v bool) { e.enabled = v }

// Enabled reports whether the engine is active.
func (e *Engine) Enabled() bool { return e.enabled }

// SetOptions replaces the behavior flags wholesale.
func (e *Engine) SetOptions(o Options) { e.options = o }

// GetOptions returns the current behavior flags.
func (e *Engine) GetOptions() Options { return e.options }

// Shortcuts exposes the shortcut table for CRUD by a host or admin API.
func (e *Engine) Shortcuts() *ShortcutTable { return e.shortcuts }

// SetShortcuts replaces the whole shortcut table, for restoring a
// persisted configuration at startup.
func (e *Engine) SetShortcuts(t *ShortcutTable) { e.shortcuts = t }

// BufferText is a diagnostic accessor returning the rendered (current)
// channel of the in-progress syllable.
func (e *Engine) BufferText() string { return e.buffer.CurrentText() }

// RawText is a diagnostic accessor returning the as-typed channel.
func (e *Engine) RawText() string { return e.buffer.RawText() }

// Clear resets the buffer and every transient flag. Word-boundary
// events call this internally once a syllable has been committed or
// restored (spec §3, "clear() resets buffer and transient flags").
func (e *Engine) Clear() {
	e.buffer.Clear()
	e.last = nil
	e.possibleForeign = false
	e.lastRendered = ""
	e.shortcutPrefix = 0
}

// Backspace removes the last buffer unit and reports the edit needed
// to erase it on the host side.
func (e *Engine) Backspace() ProcessResult {
	if e.buffer.Len() == 0 {
		return passthroughResult()
	}
	e.buffer.Pop()
	e.last = nil
	return e.renderUpdate()
}

// ProcessKey is the single entry point: one printable keystroke in,
// one edit instruction out.
func (e *Engine) ProcessKey(key rune) ProcessResult {
	if !e.enabled {
		return passthroughResult()
	}

	if e.options.SmartQuotes {
		atWordStart := e.buffer.Len() == 0 && (e.lastCommittedChar == 0 || unicode.IsSpace(e.lastCommittedChar))
		if curly, ok := smartQuoteFor(key, atWordStart); ok {
			return e.commitLiteral(curly)
		}
	}

	if IsWordBoundary(key) {
		return e.handleWordBoundary(key)
	}

	return e.handleRegularChar(key)
}

func (e *Engine) commitLiteral(r rune) ProcessResult {
	e.lastCommittedChar = r
	return ProcessResult{Action: ActionCommit, Output: string(r)}
}

// handleRegularChar classifies key, updates the possible_foreign
// sticky flag, and dispatches to the matching transform.
func (e *Engine) handleRegularChar(key rune) ProcessResult {
	prevRaw, hasPrev := rune(0), false
	if last, ok := e.buffer.Last(); ok {
		prevRaw, hasPrev = last.Raw, true
	}

	if !e.possibleForeign && e.options.SpellCheck {
		lowerKey := unicode.ToLower(key)
		if isForeignWordPattern(strings.ToLower(e.buffer.RawText()), &lowerKey) {
			e.possibleForeign = true
		}
	}

	action := e.method.Classify(key, prevRaw, hasPrev)

	switch action.Kind {
	case KeyTone:
		return e.applyTone(action.Tone, key)
	case KeyModifier:
		return e.applyModifier(action.Mod, key)
	case KeyStroke:
		return e.applyStroke(key)
	case KeyRemoveDiacritics:
		return e.removeAllDiacritics(key)
	case KeyQuickTelex:
		return e.applyQuickTelex(action.Cluster, key)
	case KeyInsertChar:
		e.pushLiteral(action.Char, key)
		return e.renderUpdate()
	default:
		return e.insertRegular(key)
	}
}

func (e *Engine) insertRegular(key rune) ProcessResult {
	out := key
	if e.options.AutoCapitalize && e.shouldCapitalize() {
		out = unicode.ToUpper(key)
	}
	e.pushLiteral(out, key)
	if m, ok := e.shortcuts.TryMatch(e.matchText(), key, false); ok {
		return e.applyShortcutMatch(m, key, false)
	}
	return e.renderUpdate()
}

// matchText composes the text a shortcut lookup runs against: the
// pending sigil (if any), followed by the buffer's rendered text (spec
// §4.8 steps 4 and 7, "full = prefix? + buffer.current_text()").
func (e *Engine) matchText() string {
	if e.shortcutPrefix != 0 {
		return string(e.shortcutPrefix) + e.buffer.CurrentText()
	}
	return e.buffer.CurrentText()
}

func (e *Engine) shouldCapitalize() bool {
	if e.buffer.Len() != 0 {
		return false
	}
	switch e.lastCommittedChar {
	case 0, '.', '!', '?':
		return true
	}
	return false
}

func (e *Engine) pushLiteral(current, raw rune) {
	e.buffer.Push(current, raw)
}

// applyTone implements spec §4.8's Tone(t) handling.
func (e *Engine) applyTone(t Tone, key rune) ProcessResult {
	if e.possibleForeign {
		e.pushLiteral(key, key)
		return e.renderUpdate()
	}

	if e.method.Name() == MethodVNI {
		if !e.buffer.hasVowelUnit() {
			e.pushLiteral(key, key)
			return e.renderUpdate()
		}
		if last, ok := e.buffer.Last(); ok && IsConsonant(last.Current) {
			e.pushLiteral(key, key)
			return e.renderUpdate()
		}
	}

	vowels := e.buffer.FindVowels()
	chars := e.buffer.Chars()
	if len(vowels) == 0 {
		e.pushLiteral(key, key)
		return e.renderUpdate()
	}

	if e.last != nil && e.last.kind == transformTone {
		if u, ok := e.buffer.Get(e.last.position); ok && ShouldUndoTone(u.Current, t) {
			if r, ok := WithTone(u.Current, ToneNone); ok {
				e.buffer.Replace(e.last.position, r)
				e.buffer.units[e.last.position].Raw = key
				e.last = nil
				return e.renderUpdate()
			}
		}
	}

	initial, _, _, ok := splitSyllable(strings.ToLower(e.buffer.CurrentText()))
	if !ok {
		initial = ""
	}
	hasFinal := e.currentHasFinal()

	pos, found := FindTonePosition(vowels, chars, hasFinal, initial, e.options.style())
	if !found {
		e.pushLiteral(key, key)
		return e.renderUpdate()
	}
	r, ok := WithTone(chars[pos], t)
	if !ok {
		e.pushLiteral(key, key)
		return e.renderUpdate()
	}
	e.buffer.Replace(pos, r)
	e.last = &lastTransform{position: pos, kind: transformTone, original: chars[pos]}
	return e.renderUpdate()
}

func (e *Engine) currentHasFinal() bool {
	_, _, final, ok := splitSyllable(strings.ToLower(e.buffer.CurrentText()))
	return ok && final != ""
}

// applyModifier implements spec §4.8's Modifier(m) handling.
func (e *Engine) applyModifier(m Modifier, key rune) ProcessResult {
	if e.possibleForeign {
		e.pushLiteral(key, key)
		return e.renderUpdate()
	}
	if e.method.Name() == MethodVNI && !e.buffer.hasVowelUnit() {
		e.pushLiteral(key, key)
		return e.renderUpdate()
	}

	chars := e.buffer.Chars()

	if e.last != nil && e.last.kind == transformModifier {
		if u, ok := e.buffer.Get(e.last.position); ok && ShouldUndoModifier(u.Current, m) {
			if r, ok := WithModifier(u.Current, ModNone); ok {
				e.buffer.Replace(e.last.position, r)
				e.buffer.units[e.last.position].Raw = key
				e.last = nil
				return e.renderUpdate()
			}
		}
	}

	positions, found := FindModifierPosition(chars, m)
	if !found {
		e.pushLiteral(key, key)
		return e.renderUpdate()
	}

	for _, pos := range positions {
		r, ok := WithModifier(chars[pos], m)
		if !ok {
			continue
		}
		e.buffer.Replace(pos, r)
	}
	e.last = &lastTransform{position: positions[len(positions)-1], kind: transformModifier, original: chars[positions[len(positions)-1]]}
	return e.renderUpdate()
}

// applyStroke implements spec §4.8's Stroke handling: right-to-left
// scan for a d/D to toggle to đ/Đ.
func (e *Engine) applyStroke(key rune) ProcessResult {
	chars := e.buffer.Chars()
	for i := len(chars) - 1; i >= 0; i-- {
		base, upper, _, _, stroked, ok := Decompose(chars[i])
		if !ok || base != 'd' {
			continue
		}
		if stroked {
			// Double-press undo: đ -> d.
			r := rune('d')
			if upper {
				r = 'D'
			}
			e.buffer.Replace(i, r)
			e.buffer.units[i].Raw = key
			e.last = nil
			return e.renderUpdate()
		}
		if e.buffer.hasVowelUnit() && !e.hasAnyDiacritic() {
			stillValid := Validate(strings.ToLower(e.buffer.CurrentText())) == Valid
			if !AllowsDelayedStroke(e.buffer.Len(), stillValid) {
				e.pushLiteral(key, key)
				return e.renderUpdate()
			}
		}

		r := rune('đ')
		if upper {
			r = 'Đ'
		}
		e.buffer.Replace(i, r)
		e.last = &lastTransform{position: i, kind: transformStroke, original: chars[i]}
		return e.renderUpdate()
	}
	e.pushLiteral(key, key)
	return e.renderUpdate()
}

// hasAnyDiacritic reports whether any buffer unit currently carries a
// tone or vowel modifier, the "no prior diacritic is present" gate
// condition for delayed stroke (spec §4.4).
func (e *Engine) hasAnyDiacritic() bool {
	for _, c := range e.buffer.Chars() {
		_, _, mod, tone, stroked, ok := Decompose(c)
		if ok && !stroked && (mod != ModNone || tone != ToneNone) {
			return true
		}
	}
	return false
}

// removeAllDiacritics implements the Telex 'z' / VNI '0' gesture.
func (e *Engine) removeAllDiacritics(key rune) ProcessResult {
	chars := e.buffer.Chars()
	stripped := RemoveAllDiacritics(chars)
	for i, r := range stripped {
		e.buffer.Replace(i, r)
	}
	e.last = nil
	return e.renderUpdate()
}

// applyQuickTelex implements the Telex cc/gg/nn/pp/tt/qq/kk expansion:
// the doubled unit is replaced by the two-letter cluster, preserving
// the popped unit's case on the first character.
func (e *Engine) applyQuickTelex(cluster string, key rune) ProcessResult {
	last, ok := e.buffer.Pop()
	if !ok {
		e.pushLiteral(key, key)
		return e.renderUpdate()
	}
	runes := []rune(cluster)
	upper := unicode.IsUpper(last.Raw)
	for i, r := range runes {
		out := r
		if i == 0 && upper {
			out = unicode.ToUpper(r)
		}
		e.pushLiteral(out, out)
	}
	e.last = nil
	return e.renderUpdate()
}

// handleWordBoundary implements spec §4.8's word-boundary pipeline:
// check for a shortcut match first, else validate and either restore
// the raw text (foreign/invalid-and-transformed) or commit as-is.
func (e *Engine) handleWordBoundary(key rune) ProcessResult {
	if e.buffer.Len() == 0 {
		if IsShortcutSigil(key) {
			e.shortcutPrefix = key
			return passthroughResult()
		}
		if e.shortcutPrefix != 0 {
			// Prefix was pending but no letters followed before the
			// next boundary; drop it and let the key through as-is.
			e.shortcutPrefix = 0
			return passthroughResult()
		}
		return e.commitLiteral(key)
	}

	if m, ok := e.shortcuts.TryMatch(e.matchText(), key, true); ok {
		return e.applyShortcutMatch(m, key, true)
	}

	current := e.buffer.CurrentText()
	raw := e.buffer.RawText()
	transformed := current != raw

	result := Valid
	if e.options.SpellCheck {
		result = Validate(current)
	}

	restore := transformed && (result == ForeignWord || result == InvalidVowelPattern || result == InvalidSpelling)

	var output string
	if restore {
		output = raw + string(key)
	} else {
		output = current + string(key)
	}

	e.lastCommittedChar = key
	backspace := e.buffer.Len()
	e.Clear()

	action := ActionCommit
	if restore {
		action = ActionRestore
	}
	return ProcessResult{Action: action, Output: output, Backspace: backspace, Restored: restore}
}

func (e *Engine) applyShortcutMatch(m ShortcutMatch, key rune, isBoundary bool) ProcessResult {
	output := m.Replacement
	if isBoundary {
		output += string(key)
	}
	backspace := m.BackspaceCount
	if e.shortcutPrefix != 0 {
		// The sigil was already passed through to the host as its own
		// character; erase it too when the shortcut replaces the buffer.
		backspace++
	}
	e.lastCommittedChar = key
	e.Clear()
	return ProcessResult{Action: ActionCommit, Output: output, Backspace: backspace}
}

// UndoLastTransform reverts the most recent tone/modifier/stroke
// mutation back to the character that was there before it, regardless
// of what key would normally be needed to trigger that undo. Grounded
// on original_source/core/src/engine.rs's undo_last_transform.
func (e *Engine) UndoLastTransform() (ProcessResult, bool) {
	if e.last == nil {
		return ProcessResult{}, false
	}
	u, ok := e.buffer.Get(e.last.position)
	if !ok {
		e.last = nil
		return ProcessResult{}, false
	}
	e.buffer.Replace(e.last.position, e.last.original)
	e.buffer.units[e.last.position].Raw = u.Raw
	e.last = nil
	return e.renderUpdate(), true
}

// renderUpdate diffs the buffer's current text against what was last
// reported to the host and returns the minimal edit (component C9).
func (e *Engine) renderUpdate() ProcessResult {
	next := e.buffer.CurrentText()
	bs, ins := Diff(e.lastRendered, next)
	e.lastRendered = next
	return ProcessResult{Action: ActionUpdate, Output: ins, Backspace: bs}
}

// hasVowelUnit reports whether any unit currently in the buffer is a
// vowel, used by the VNI digit-vs-literal guard (spec §4.8).
func (b *Buffer) hasVowelUnit() bool {
	for _, u := range b.units {
		if IsVowel(u.Current) {
			return true
		}
	}
	return false
}

// smartQuoteFor maps a straight quote to its Vietnamese-typography
// curly equivalent. atWordStart is true only when the buffer is empty
// AND the last committed character was whitespace or none (spec
// §4.8 step 2); it picks the opening form there and the closing form
// otherwise, so e.g. a quote right after "a." closes rather than opens.
func smartQuoteFor(key rune, atWordStart bool) (rune, bool) {
	switch key {
	case '"':
		if atWordStart {
			return '“', true
		}
		return '”', true
	case '\'':
		if atWordStart {
			return '‘', true
		}
		return '’', true
	}
	return 0, false
}
