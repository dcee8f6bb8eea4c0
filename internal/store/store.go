// Package store persists the engine's shortcut table and behavior
// options across process restarts. There is no ecosystem database or
// config library in the retrieved example pack that fits a single
// small settings blob for a local desktop daemon, so this is built
// directly on encoding/json + os, the same pairing the sibling
// vietnamese-converter example uses for its own config loading.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/username/vietflux-ime/internal/engine"
)

// ShortcutRecord is the on-disk form of an engine.Shortcut.
type ShortcutRecord struct {
	Trigger     string `json:"trigger"`
	Replacement string `json:"replacement"`
	Immediate   bool   `json:"immediate"`
	Enabled     bool   `json:"enabled"`
}

// State is the full persisted blob.
type State struct {
	Method         string           `json:"method"`
	ModernStyle    bool             `json:"modern_style"`
	AutoCapitalize bool             `json:"auto_capitalize"`
	SmartQuotes    bool             `json:"smart_quotes"`
	SpellCheck     bool             `json:"spell_check"`
	ShortcutsOn    bool             `json:"shortcuts_enabled"`
	Shortcuts      []ShortcutRecord `json:"shortcuts"`
}

// Store reads and writes State to a single JSON file.
type Store struct {
	path string
}

// New returns a Store backed by path. The containing directory is
// created on first Save if it does not exist.
func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns "$HOME/.config/vietflux-ime/state.json", falling
// back to a relative path if $HOME is unset.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "vietflux-ime-state.json"
	}
	return filepath.Join(home, ".config", "vietflux-ime", "state.json")
}

// Load reads the persisted state. If the file does not exist or does
// not parse as JSON, it returns the default state (the engine's
// defaults plus the original implementation's seed shortcuts) with
// ok=false; the two cases are not told apart.
func (s *Store) Load() (State, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return DefaultState(), false
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return DefaultState(), false
	}
	return st, true
}

// Save writes state to disk, creating the parent directory as needed.
func (s *Store) Save(st State) error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// DefaultState mirrors engine.DefaultOptions plus the default shortcut
// table, for a first run with no state file yet.
func DefaultState() State {
	opts := engine.DefaultOptions()
	table := engine.DefaultShortcutTable()
	var records []ShortcutRecord
	for _, sc := range table.All() {
		records = append(records, ShortcutRecord{
			Trigger:     sc.Trigger,
			Replacement: sc.Replacement,
			Immediate:   sc.Condition == engine.TriggerImmediate,
			Enabled:     sc.Enabled,
		})
	}
	return State{
		Method:         engine.MethodTelex.String(),
		ModernStyle:    opts.ModernStyle,
		AutoCapitalize: opts.AutoCapitalize,
		SmartQuotes:    opts.SmartQuotes,
		SpellCheck:     opts.SpellCheck,
		ShortcutsOn:    true,
		Shortcuts:      records,
	}
}

// ApplyTo configures e to match the persisted state.
func ApplyTo(e *engine.Engine, st State) {
	e.SetMethod(engine.ParseMethod(st.Method))
	e.SetOptions(engine.Options{
		ModernStyle:    st.ModernStyle,
		AutoCapitalize: st.AutoCapitalize,
		SmartQuotes:    st.SmartQuotes,
		SpellCheck:     st.SpellCheck,
	})
	table := engine.NewShortcutTable()
	table.Enabled = st.ShortcutsOn
	for _, rec := range st.Shortcuts {
		cond := engine.TriggerOnWordBoundary
		if rec.Immediate {
			cond = engine.TriggerImmediate
		}
		sc := engine.Shortcut{Trigger: rec.Trigger, Replacement: rec.Replacement, Condition: cond, Enabled: rec.Enabled}
		table.Add(sc)
	}
	e.SetShortcuts(table)
}

// Snapshot captures e's current configuration as a State ready to Save.
func Snapshot(e *engine.Engine) State {
	opts := e.GetOptions()
	table := e.Shortcuts()
	var records []ShortcutRecord
	for _, sc := range table.All() {
		records = append(records, ShortcutRecord{
			Trigger:     sc.Trigger,
			Replacement: sc.Replacement,
			Immediate:   sc.Condition == engine.TriggerImmediate,
			Enabled:     sc.Enabled,
		})
	}
	return State{
		Method:         e.Method().String(),
		ModernStyle:    opts.ModernStyle,
		AutoCapitalize: opts.AutoCapitalize,
		SmartQuotes:    opts.SmartQuotes,
		SpellCheck:     opts.SpellCheck,
		ShortcutsOn:    table.Enabled,
		Shortcuts:      records,
	}
}
