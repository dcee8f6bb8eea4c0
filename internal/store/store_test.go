package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/username/vietflux-ime/internal/engine"
)

func TestLoadMissingFileReturnsDefaultState(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nonexistent.json"))
	st, ok := s.Load()
	if ok {
		t.Fatal("Load() on a missing file should report ok=false")
	}
	want := DefaultState()
	if st.Method != want.Method || st.ModernStyle != want.ModernStyle || len(st.Shortcuts) != len(want.Shortcuts) {
		t.Fatalf("Load() = %+v, want default state %+v", st, want)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	s := New(path)
	in := State{
		Method:         "vni",
		ModernStyle:    false,
		AutoCapitalize: true,
		SmartQuotes:    true,
		SpellCheck:     false,
		ShortcutsOn:    true,
		Shortcuts: []ShortcutRecord{
			{Trigger: "vd", Replacement: "ví dụ", Immediate: true, Enabled: true},
		},
	}
	if err := s.Save(in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	out, ok := s.Load()
	if !ok {
		t.Fatal("Load() after Save() should report ok=true")
	}
	if out.Method != in.Method || out.ModernStyle != in.ModernStyle ||
		out.AutoCapitalize != in.AutoCapitalize || out.SmartQuotes != in.SmartQuotes ||
		out.SpellCheck != in.SpellCheck || out.ShortcutsOn != in.ShortcutsOn {
		t.Fatalf("Load() = %+v, want %+v", out, in)
	}
	if len(out.Shortcuts) != 1 || out.Shortcuts[0] != in.Shortcuts[0] {
		t.Fatalf("Load() Shortcuts = %+v, want %+v", out.Shortcuts, in.Shortcuts)
	}
}

func TestLoadCorruptFileReturnsDefaultState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := New(path)
	if err := s.Save(DefaultState()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	// overwrite with invalid JSON
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}
	_, ok := s.Load()
	if ok {
		t.Fatal("Load() on corrupt JSON should report ok=false")
	}
}

func TestApplyToAndSnapshotRoundTrip(t *testing.T) {
	e := engine.NewEngine(engine.MethodTelex)
	st := State{
		Method:         "vni",
		ModernStyle:    false,
		AutoCapitalize: true,
		SmartQuotes:    false,
		SpellCheck:     true,
		ShortcutsOn:    true,
		Shortcuts: []ShortcutRecord{
			{Trigger: "vd", Replacement: "ví dụ", Immediate: false, Enabled: true},
		},
	}
	ApplyTo(e, st)
	if e.Method() != engine.MethodVNI {
		t.Fatalf("ApplyTo() method = %v, want VNI", e.Method())
	}
	if !e.GetOptions().AutoCapitalize {
		t.Fatal("ApplyTo() should carry AutoCapitalize through")
	}
	if _, ok := e.Shortcuts().TryMatch("vd", ' ', true); !ok {
		t.Fatal("ApplyTo() should install the vd shortcut")
	}

	snap := Snapshot(e)
	if snap.Method != "vni" || !snap.AutoCapitalize {
		t.Fatalf("Snapshot() = %+v, want method vni, auto_capitalize true", snap)
	}
	found := false
	for _, rec := range snap.Shortcuts {
		if rec.Trigger == "vd" && rec.Replacement == "ví dụ" {
			found = true
		}
	}
	if !found {
		t.Fatal("Snapshot() should include the vd shortcut")
	}
}
