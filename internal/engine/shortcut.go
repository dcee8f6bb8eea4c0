package engine

import (
	"sort"
	"strings"
)

// shortcut.go is component C7, grounded on
// _examples/original_source/core/src/shortcut.rs: a table of whole-word
// abbreviation expansions, matched either immediately as they are typed
// (TriggerImmediate) or only once the syllable reaches a word boundary
// (TriggerOnWordBoundary, the default).

// TriggerCondition controls when a Shortcut is eligible to fire.
type TriggerCondition int

const (
	// TriggerOnWordBoundary is the default: the trigger only matches
	// once a word-boundary character has been typed.
	TriggerOnWordBoundary TriggerCondition = iota
	// TriggerImmediate matches as soon as the trigger text itself has
	// been fully typed, with no boundary character required.
	TriggerImmediate
)

// Shortcut is a single abbreviation-expansion rule.
type Shortcut struct {
	Trigger     string           `json:"trigger"`
	Replacement string           `json:"replacement"`
	Condition   TriggerCondition `json:"condition"`
	Enabled     bool             `json:"enabled"`
}

func newShortcut(trigger, replacement string, cond TriggerCondition) Shortcut {
	if r := []rune(replacement); len(r) > MaxReplacement {
		replacement = string(r[:MaxReplacement])
	}
	return Shortcut{Trigger: trigger, Replacement: replacement, Condition: cond, Enabled: true}
}

// ShortcutMatch describes how to rewrite the tail of the buffer once a
// trigger has matched.
type ShortcutMatch struct {
	BackspaceCount    int
	Replacement       string
	IncludeTriggerKey bool
}

// ShortcutTable holds the full set of shortcuts, a global enable flag,
// and triggers pre-sorted longest-first for greedy matching.
type ShortcutTable struct {
	Enabled        bool
	shortcuts      map[string]Shortcut
	sortedTriggers []string
}

// NewShortcutTable returns an empty, enabled table.
func NewShortcutTable() *ShortcutTable {
	return &ShortcutTable{Enabled: true, shortcuts: make(map[string]Shortcut)}
}

// DefaultShortcutTable seeds the five shortcuts carried over from the
// original implementation's with_defaults().
func DefaultShortcutTable() *ShortcutTable {
	t := NewShortcutTable()
	t.Add(newShortcut("vn", "Việt Nam", TriggerImmediate))
	t.Add(newShortcut("hcm", "Hồ Chí Minh", TriggerImmediate))
	t.Add(newShortcut("hn", "Hà Nội", TriggerImmediate))
	t.Add(newShortcut("dc", "được", TriggerImmediate))
	t.Add(newShortcut("ko", "không", TriggerImmediate))
	return t
}

func (t *ShortcutTable) rebuildSortedTriggers() {
	triggers := make([]string, 0, len(t.shortcuts))
	for k := range t.shortcuts {
		triggers = append(triggers, k)
	}
	sort.Slice(triggers, func(i, j int) bool {
		if len(triggers[i]) != len(triggers[j]) {
			return len(triggers[i]) > len(triggers[j])
		}
		return triggers[i] < triggers[j]
	})
	t.sortedTriggers = triggers
}

// Add inserts or replaces a shortcut by trigger.
func (t *ShortcutTable) Add(s Shortcut) {
	if r := []rune(s.Replacement); len(r) > MaxReplacement {
		s.Replacement = string(r[:MaxReplacement])
	}
	t.shortcuts[s.Trigger] = s
	t.rebuildSortedTriggers()
}

// Remove deletes a shortcut by trigger, reporting whether it existed.
func (t *ShortcutTable) Remove(trigger string) bool {
	if _, ok := t.shortcuts[trigger]; !ok {
		return false
	}
	delete(t.shortcuts, trigger)
	t.rebuildSortedTriggers()
	return true
}

// SetEnabled toggles a single shortcut by trigger.
func (t *ShortcutTable) SetEnabled(trigger string, enabled bool) bool {
	s, ok := t.shortcuts[trigger]
	if !ok {
		return false
	}
	s.Enabled = enabled
	t.shortcuts[trigger] = s
	return true
}

// All returns every shortcut, for persistence and admin listing.
func (t *ShortcutTable) All() []Shortcut {
	out := make([]Shortcut, 0, len(t.shortcuts))
	for _, s := range t.shortcuts {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Trigger < out[j].Trigger })
	return out
}

// TryMatch looks for the longest trigger that is a suffix of buffer
// (case-insensitive), eligible under isWordBoundary. triggerChar is the
// character that just closed the match (a word-boundary rune, or the
// sigil/last rune when condition is Immediate).
func (t *ShortcutTable) TryMatch(buffer string, triggerChar rune, isWordBoundary bool) (ShortcutMatch, bool) {
	if !t.Enabled {
		return ShortcutMatch{}, false
	}
	lower := strings.ToLower(buffer)
	for _, trigger := range t.sortedTriggers {
		s, ok := t.shortcuts[trigger]
		if !ok || !s.Enabled {
			continue
		}
		if s.Condition == TriggerOnWordBoundary && !isWordBoundary {
			continue
		}
		if !strings.HasSuffix(lower, trigger) {
			continue
		}
		return ShortcutMatch{
			BackspaceCount:    len([]rune(trigger)),
			Replacement:       s.Replacement,
			IncludeTriggerKey: isWordBoundary,
		}, true
	}
	return ShortcutMatch{}, false
}
