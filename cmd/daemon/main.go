package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"

	"github.com/username/vietflux-ime/internal/adminapi"
	"github.com/username/vietflux-ime/internal/config"
	"github.com/username/vietflux-ime/internal/engine"
	"github.com/username/vietflux-ime/internal/store"
)

const (
	serviceName = "com.github.goviet.ime"
	objectPath  = "/Engine"
)

// InputEngine is the D-Bus object that receives key events from Fcitx5.
type InputEngine struct {
	engine *engine.Engine
	store  *store.Store
	log    zerolog.Logger
}

// NewInputEngine creates a new InputEngine, restoring persisted state
// from st if any was saved by a previous run.
func NewInputEngine(st *store.Store, log zerolog.Logger) *InputEngine {
	e := engine.NewEngine(engine.MethodTelex)
	if saved, ok := st.Load(); ok {
		store.ApplyTo(e, saved)
		log.Info().Str("method", e.Method().String()).Msg("restored persisted state")
	}
	return &InputEngine{engine: e, store: st, log: log}
}

// ProcessKey handles key events from Fcitx5 frontend.
// Input: keysym (X11 keycode), modifiers (Shift/Ctrl/Alt state)
// Output: handled (was key consumed), commitText (text to commit), preeditText (composition)
func (e *InputEngine) ProcessKey(keysym uint32, modifiers uint32) (bool, string, string, *dbus.Error) {
	char := engine.KeysymToRune(keysym)

	var result engine.ProcessResult
	switch {
	case char != 0:
		result = e.engine.ProcessKey(char)
	case keysym == 0xff08: // Backspace
		result = e.engine.Backspace()
	default:
		e.log.Debug().Uint32("keysym", keysym).Msg("unhandled keysym, passing through")
		return false, "", e.engine.BufferText(), nil
	}

	e.log.Debug().
		Str("key", keyLabel(keysym, char)).
		Uint32("modifiers", modifiers).
		Str("action", result.Action.String()).
		Int("backspace", result.Backspace).
		Str("output", result.Output).
		Msg("process key")

	switch result.Action {
	case engine.ActionPassthrough:
		return false, "", e.engine.BufferText(), nil
	case engine.ActionCommit, engine.ActionRestore:
		return true, result.Output, "", nil
	default: // ActionUpdate
		return true, "", e.engine.BufferText(), nil
	}
}

func keyLabel(keysym uint32, char rune) string {
	if char != 0 {
		return fmt.Sprintf("%q", char)
	}
	switch keysym {
	case 0xff08:
		return "Backspace"
	case 0x0020:
		return "Space"
	case 0xff0d:
		return "Enter"
	case 0xff09:
		return "Tab"
	case 0xff1b:
		return "Esc"
	case 0xffff:
		return "Delete"
	default:
		return fmt.Sprintf("0x%x", keysym)
	}
}

// Reset clears the current composition state.
func (e *InputEngine) Reset() *dbus.Error {
	e.engine.Clear()
	e.log.Info().Msg("engine reset")
	return nil
}

// SetEnabled enables or disables the engine.
func (e *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	e.engine.SetEnabled(enabled)
	e.log.Info().Bool("enabled", enabled).Msg("engine enabled state changed")
	e.persist()
	return nil
}

// ToggleEnabled flips the engine's enabled state, for a global hotkey
// binding that has no way to know the current state ahead of time.
func (e *InputEngine) ToggleEnabled() (bool, *dbus.Error) {
	e.engine.Toggle()
	e.log.Info().Bool("enabled", e.engine.Enabled()).Msg("engine enabled state toggled")
	e.persist()
	return e.engine.Enabled(), nil
}

// SetMethod switches between Telex and VNI.
func (e *InputEngine) SetMethod(method string) *dbus.Error {
	e.engine.SetMethod(engine.ParseMethod(method))
	e.log.Info().Str("method", e.engine.Method().String()).Msg("input method changed")
	e.persist()
	return nil
}

// GetPreedit returns the current preedit string.
func (e *InputEngine) GetPreedit() (string, *dbus.Error) {
	return e.engine.BufferText(), nil
}

// Undo reverts the most recent tone/modifier/stroke transform, for a
// frontend keybinding distinct from the implicit double-press undo
// ProcessKey already handles inline.
func (e *InputEngine) Undo() (bool, string, *dbus.Error) {
	result, ok := e.engine.UndoLastTransform()
	if !ok {
		return false, e.engine.BufferText(), nil
	}
	e.log.Debug().Str("action", result.Action.String()).Int("backspace", result.Backspace).
		Str("output", result.Output).Msg("undo last transform")
	return true, e.engine.BufferText(), nil
}

func (e *InputEngine) persist() {
	if err := e.store.Save(store.Snapshot(e.engine)); err != nil {
		e.log.Warn().Err(err).Msg("failed to persist state")
	}
}

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	logWriter := os.Stdout
	var log zerolog.Logger
	if cfg.LogToFile {
		logFile, ferr := os.OpenFile(cfg.LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if ferr != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", cfg.LogFilePath, ferr)
			log = zerolog.New(zerolog.ConsoleWriter{Out: logWriter, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
		} else {
			defer logFile.Close()
			log = zerolog.New(logFile).With().Timestamp().Logger()
		}
	} else {
		log = zerolog.New(zerolog.ConsoleWriter{Out: logWriter, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}

	conn, err := dbus.SessionBus()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to session bus")
	}
	defer conn.Close()

	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to request bus name")
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		log.Fatal().Msg("bus name already taken - another instance may be running")
	}

	st := store.New(cfg.StatePath)
	inputEngine := NewInputEngine(st, log.With().Str("component", "engine").Logger())

	if err := conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName); err != nil {
		log.Fatal().Err(err).Msg("failed to export D-Bus object")
	}

	admin := adminapi.New(cfg.AdminAddr, inputEngine.engine, st, log.With().Str("component", "admin").Logger())
	go func() {
		if err := admin.ListenAndServe(); err != nil && err.Error() != "http: Server closed" {
			log.Error().Err(err).Msg("admin API server stopped")
		}
	}()

	log.Info().
		Str("service", serviceName).
		Str("object_path", objectPath).
		Str("admin_addr", cfg.AdminAddr).
		Str("method", inputEngine.engine.Method().String()).
		Msg("vietflux-ime daemon running")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down")
	inputEngine.persist()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := admin.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("admin server shutdown error")
	}
}
