// path: internal/httpx/server.go
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/freewilly441/Infinite-Dimensional-Chess/internal/game"
	"github.com/freewilly441/Infinite-Dimensional-Chess/internal/shared"
)

// Server wires the HTTP layer to the engine and templates. The engine is
// single-threaded by design; engineMu serializes every access so each user
// event is one atomic transition.
type Server struct {
	engineMu sync.Mutex
	engine   *game.Game
	window   game.Window
	tmpl     *template.Template
	log      zerolog.Logger

	clientsMu sync.Mutex
	clients   map[*websocket.Conn]struct{}
	upgrader  websocket.Upgrader

	srvMu sync.Mutex
	srv   *http.Server
}

const (
	maxJSONBodyBytes int64 = 1 << 20
	htmlCSP                = "default-src 'self'; script-src 'self'; style-src 'self'; img-src 'self' data:; connect-src 'self'; frame-ancestors 'none'; base-uri 'none'; form-action 'self'"
	apiCSP                 = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'"
)

// NewServer builds a Server and parses the index template.
func NewServer(g *game.Game, window game.Window, log zerolog.Logger) (*Server, error) {
	t, err := template.ParseFiles("web/templates/index.html")
	if err != nil {
		return nil, err
	}
	return &Server{
		engine:  g,
		window:  window,
		tmpl:    t,
		log:     log,
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1 << 10,
			WriteBufferSize: 1 << 14,
		},
	}, nil
}

// Listen starts the HTTP server.
func (s *Server) Listen(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	s.srvMu.Lock()
	s.srv = srv
	s.srvMu.Unlock()
	defer func() {
		s.srvMu.Lock()
		s.srv = nil
		s.srvMu.Unlock()
	}()

	s.log.Info().Str("addr", addr).Msg("http listening")
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close attempts a graceful shutdown of the HTTP server.
func (s *Server) Close(ctx context.Context) error {
	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)

	mux.HandleFunc("/api/state", s.withJSON(s.handleState))
	mux.HandleFunc("/api/click", s.withJSON(s.handleClick))
	mux.HandleFunc("/api/tiles", s.withJSON(s.handleTiles))
	mux.HandleFunc("/api/reset", s.withJSON(s.handleReset))
	mux.HandleFunc("/api/fatigue", s.withJSON(s.handleFatigue))
	mux.HandleFunc("/api/dimension/add", s.withJSON(s.handleDimensionAdd))
	mux.HandleFunc("/api/dimension/remove", s.withJSON(s.handleDimensionRemove))
	mux.HandleFunc("/api/view/mode", s.withJSON(s.handleViewMode))
	mux.HandleFunc("/api/view/axis", s.withJSON(s.handleViewAxis))
	mux.HandleFunc("/api/slice", s.withJSON(s.handleSlice))

	mux.HandleFunc("/ws", s.handleWS)

	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// ---- UI ----

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	applyHTMLSecurityHeaders(w.Header())
	s.engineMu.Lock()
	state := s.engine.State()
	tiles := s.engine.VisibleTiles(s.window)
	s.engineMu.Unlock()
	init := struct {
		State game.BoardState  `json:"state"`
		Tiles []game.TileState `json:"tiles"`
	}{State: state, Tiles: tiles}
	data := map[string]any{
		"Init": mustJSON(init),
	}
	if err := s.tmpl.ExecuteTemplate(w, "index", data); err != nil {
		s.log.Error().Err(err).Msg("template exec")
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// ---- JSON helpers ----

func (s *Server) withJSON(h func(http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applyAPISecurityHeaders(w.Header())
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
		}
		h(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	writeJSON(w, map[string]string{"error": msg})
}

func applyHTMLSecurityHeaders(h http.Header) {
	h.Set("Content-Security-Policy", htmlCSP)
	h.Set("Cross-Origin-Opener-Policy", "same-origin")
	h.Set("Cross-Origin-Embedder-Policy", "require-corp")
}

func applyAPISecurityHeaders(h http.Header) {
	h.Set("Content-Security-Policy", apiCSP)
	h.Set("Cross-Origin-Opener-Policy", "same-origin")
	h.Set("Cross-Origin-Embedder-Policy", "require-corp")
}

func mustJSON(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return template.JS(b)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

// parseCoord validates arity against the engine's current dimension count.
// Caller must hold engineMu.
func (s *Server) parseCoord(raw []int) (shared.Coord, bool) {
	if len(raw) != s.engine.Dimensions() {
		return nil, false
	}
	coord := make(shared.Coord, len(raw))
	copy(coord, raw)
	return coord, true
}

// ---- API: state ----

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.engineMu.Lock()
	state := s.engine.State()
	s.engineMu.Unlock()
	writeJSON(w, map[string]any{"state": state})
}

// ---- API: click ----

type clickBody struct {
	Coord []int `json:"coord"`
}

func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var body clickBody
	if !decodeBody(w, r, &body) {
		return
	}

	s.engineMu.Lock()
	coord, ok := s.parseCoord(body.Coord)
	if !ok {
		s.engineMu.Unlock()
		writeError(w, http.StatusBadRequest, "coordinate arity mismatch")
		return
	}
	outcome, move := s.engine.Click(coord)
	state := s.engine.State()
	s.engineMu.Unlock()

	resp := map[string]any{
		"outcome": outcome.String(),
		"state":   state,
	}
	if outcome == game.ClickMoved {
		resp["move"] = move
		s.broadcast(state)
	}
	writeJSON(w, resp)
}

// ---- API: tiles ----

type tilesBody struct {
	Window *game.Window `json:"window"`
}

func (s *Server) handleTiles(w http.ResponseWriter, r *http.Request) {
	window := s.window
	if r.Method == http.MethodPost {
		var body tilesBody
		if !decodeBody(w, r, &body) {
			return
		}
		if body.Window != nil {
			window = *body.Window
		}
	} else if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	s.engineMu.Lock()
	tiles := s.engine.VisibleTiles(window)
	s.engineMu.Unlock()
	writeJSON(w, map[string]any{"tiles": tiles})
}

// ---- API: reset ----

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if r.Body != nil {
		r.Body.Close()
	}
	s.engineMu.Lock()
	s.engine.Reset()
	state := s.engine.State()
	s.engineMu.Unlock()
	s.broadcast(state)
	writeJSON(w, map[string]any{"state": state})
}

// ---- API: fatigue ----

type fatigueBody struct {
	Enabled bool `json:"enabled"`
}

func (s *Server) handleFatigue(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var body fatigueBody
	if !decodeBody(w, r, &body) {
		return
	}
	s.engineMu.Lock()
	s.engine.SetFatigue(body.Enabled)
	state := s.engine.State()
	s.engineMu.Unlock()
	s.broadcast(state)
	writeJSON(w, map[string]any{"state": state})
}

// ---- API: dimensions ----

func (s *Server) handleDimensionAdd(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if r.Body != nil {
		r.Body.Close()
	}
	s.engineMu.Lock()
	err := s.engine.AddDimension()
	state := s.engine.State()
	s.engineMu.Unlock()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.broadcast(state)
	writeJSON(w, map[string]any{"state": state})
}

type dimensionBody struct {
	Dimension int `json:"dimension"`
}

func (s *Server) handleDimensionRemove(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var body dimensionBody
	if !decodeBody(w, r, &body) {
		return
	}
	s.engineMu.Lock()
	lost, err := s.engine.RemoveDimension(body.Dimension)
	state := s.engine.State()
	s.engineMu.Unlock()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.broadcast(state)
	writeJSON(w, map[string]any{"state": state, "lost": lost})
}

// ---- API: view ----

type viewModeBody struct {
	Mode string `json:"mode"`
}

func (s *Server) handleViewMode(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var body viewModeBody
	if !decodeBody(w, r, &body) {
		return
	}
	mode, ok := shared.ParseViewMode(body.Mode)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid view mode")
		return
	}
	s.engineMu.Lock()
	s.engine.SetViewMode(mode)
	state := s.engine.State()
	s.engineMu.Unlock()
	s.broadcast(state)
	writeJSON(w, map[string]any{"state": state})
}

type viewAxisBody struct {
	Slot      int `json:"slot"`
	Dimension int `json:"dimension"`
}

func (s *Server) handleViewAxis(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var body viewAxisBody
	if !decodeBody(w, r, &body) {
		return
	}
	s.engineMu.Lock()
	err := s.engine.SetViewAxis(body.Slot, body.Dimension)
	state := s.engine.State()
	s.engineMu.Unlock()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.broadcast(state)
	writeJSON(w, map[string]any{"state": state})
}

type sliceBody struct {
	Dimension int `json:"dimension"`
	Value     int `json:"value"`
}

func (s *Server) handleSlice(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var body sliceBody
	if !decodeBody(w, r, &body) {
		return
	}
	s.engineMu.Lock()
	err := s.engine.SetSlice(body.Dimension, body.Value)
	state := s.engine.State()
	s.engineMu.Unlock()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, map[string]any{"state": state})
}

// ---- WebSocket state push ----

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade")
		return
	}

	s.clientsMu.Lock()
	s.clients[conn] = struct{}{}
	s.clientsMu.Unlock()

	s.engineMu.Lock()
	state := s.engine.State()
	s.engineMu.Unlock()
	if err := conn.WriteJSON(map[string]any{"state": state}); err != nil {
		s.dropClient(conn)
		return
	}

	// Clients only receive; drain until the peer goes away.
	go func() {
		defer s.dropClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) dropClient(conn *websocket.Conn) {
	s.clientsMu.Lock()
	if _, ok := s.clients[conn]; ok {
		delete(s.clients, conn)
		conn.Close()
	}
	s.clientsMu.Unlock()
}

// broadcast pushes a state snapshot to every connected client after a
// committed mutation.
func (s *Server) broadcast(state game.BoardState) {
	payload := map[string]any{"state": state}
	s.clientsMu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for conn := range s.clients {
		conns = append(conns, conn)
	}
	s.clientsMu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(payload); err != nil {
			s.dropClient(conn)
		}
	}
}
