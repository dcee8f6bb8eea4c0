package adminapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/username/vietflux-ime/internal/engine"
	"github.com/username/vietflux-ime/internal/store"
)

// Server exposes the engine's live state and configuration over HTTP,
// for a tray icon, settings panel, or status bar host component to
// poll or update without sharing process memory with the daemon.
type Server struct {
	http   *http.Server
	engine *engine.Engine
	store  *store.Store
	log    zerolog.Logger
}

// New builds a Server bound to addr (e.g. "127.0.0.1:8765").
func New(addr string, eng *engine.Engine, st *store.Store, log zerolog.Logger) *Server {
	s := &Server{engine: eng, store: st, log: log}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(log))
	r.Use(Recoverer(log))
	limit := RateLimiter(50)

	r.Get("/status", s.handleStatus)
	r.Get("/options", s.handleGetOptions)
	r.With(limit).Put("/options", s.handlePutOptions)
	r.Get("/method", s.handleGetMethod)
	r.With(limit).Put("/method", s.handlePutMethod)
	r.Get("/shortcuts", s.handleListShortcuts)
	r.With(limit).Put("/shortcuts", s.handlePutShortcut)
	r.With(limit).Delete("/shortcuts/{trigger}", s.handleDeleteShortcut)

	s.http = &http.Server{Addr: addr, Handler: r}
	return s
}

// ListenAndServe blocks serving the admin API until the listener fails
// or Shutdown is called from another goroutine.
func (s *Server) ListenAndServe() error {
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the admin listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"enabled": s.engine.Enabled(),
		"method":  s.engine.Method().String(),
		"buffer":  s.engine.BufferText(),
		"raw":     s.engine.RawText(),
	})
}

func (s *Server) handleGetOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.GetOptions())
}

func (s *Server) handlePutOptions(w http.ResponseWriter, r *http.Request) {
	var opts engine.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s.engine.SetOptions(opts)
	s.persist()
	writeJSON(w, http.StatusOK, opts)
}

func (s *Server) handleGetMethod(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"method": s.engine.Method().String()})
}

func (s *Server) handlePutMethod(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Method string `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s.engine.SetMethod(engine.ParseMethod(body.Method))
	s.persist()
	writeJSON(w, http.StatusOK, map[string]string{"method": s.engine.Method().String()})
}

func (s *Server) handleListShortcuts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Shortcuts().All())
}

func (s *Server) handlePutShortcut(w http.ResponseWriter, r *http.Request) {
	var sc engine.Shortcut
	if err := json.NewDecoder(r.Body).Decode(&sc); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if sc.Trigger == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "trigger required"})
		return
	}
	sc.Enabled = true
	s.engine.Shortcuts().Add(sc)
	s.persist()
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleDeleteShortcut(w http.ResponseWriter, r *http.Request) {
	trigger := chi.URLParam(r, "trigger")
	if !s.engine.Shortcuts().Remove(trigger) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("no shortcut %q", trigger)})
		return
	}
	s.persist()
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) persist() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(store.Snapshot(s.engine)); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist admin state change")
	}
}
