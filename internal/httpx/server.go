// Package httpx serves games over a JSON HTTP API. Each game lives behind
// its own game.Session; the registry has a separate lock.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const apiCSP = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'"

// Server wires the HTTP layer to a registry of games.
type Server struct {
	cfg *config.Config

	mu     sync.Mutex
	games  map[string]*game.Session
	nextID int

	srvMu sync.Mutex
	srv   *http.Server
}

// NewServer builds a Server with an empty registry.
func NewServer(cfg *config.Config) *Server {
	return &Server{
		cfg:   cfg,
		games: make(map[string]*game.Session),
	}
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler {
	return s.routes()
}

// Listen starts the HTTP server and blocks until it is closed.
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

	s.cfg.Logf(1, "HTTP listening on %s", addr)
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
	mux.HandleFunc("/api/games", s.withJSON(s.handleGames))
	mux.HandleFunc("/api/games/", s.withJSON(s.handleGame))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// ---- JSON helpers ----

func (s *Server) withJSON(h func(http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", apiCSP)
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)
		}
		h(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// decodeBody decodes an optional JSON body into v. It writes the error
// response and returns false on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return true
	}
	defer r.Body.Close()
	err := json.NewDecoder(r.Body).Decode(v)
	switch {
	case err == nil:
		return true
	case errors.Is(err, io.EOF):
		return true
	case isBodyTooLarge(err):
		writeError(w, http.StatusRequestEntityTooLarge, "request too large")
	default:
		writeError(w, http.StatusBadRequest, "invalid json")
	}
	return false
}

// ---- registry ----

type gameResponse struct {
	ID    string     `json:"id"`
	State game.State `json:"state"`
}

func (s *Server) lookup(id string) (*game.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.games[id]
	if !ok {
		return nil, chesserrors.Wrapf(chesserrors.ErrUnknownGame, "%q", id)
	}
	return sess, nil
}

func (s *Server) register(g *game.Game) (string, *game.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit := s.cfg.Server.MaxGames; limit > 0 && len(s.games) >= limit {
		return "", nil, false
	}
	s.nextID++
	id := "g" + strconv.Itoa(s.nextID)
	sess := game.NewSession(g)
	s.games[id] = sess
	return id, sess, true
}

func (s *Server) ids() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.games))
	for id := range s.games {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// ---- API: /api/games ----

type createBody struct {
	FEN string `json:"fen"`
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string][]string{"games": s.ids()})
	case http.MethodPost:
		s.handleCreate(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var body createBody
	if !decodeBody(w, r, &body) {
		return
	}
	fen := strings.TrimSpace(body.FEN)
	if fen == "" {
		fen = s.cfg.StartFEN
	}

	g := game.New()
	if fen != "" {
		var err error
		if g, err = game.NewFromFEN(fen); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	id, sess, ok := s.register(g)
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "too many games")
		return
	}
	s.cfg.Logf(2, "game %s created", id)
	writeJSON(w, http.StatusCreated, gameResponse{ID: id, State: sess.Snapshot()})
}

// ---- API: /api/games/{id}[/moves|/board] ----

func (s *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/games/"), "/")
	id, sub, _ := strings.Cut(rest, "/")

	if sub == "" && r.Method == http.MethodDelete {
		s.handleDelete(w, id)
		return
	}

	sess, err := s.lookup(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	switch sub {
	case "":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		writeJSON(w, http.StatusOK, gameResponse{ID: id, State: sess.Snapshot()})
	case "moves":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		s.handleMove(w, r, id, sess)
	case "board":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		s.handleBoard(w, sess)
	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

func (s *Server) handleDelete(w http.ResponseWriter, id string) {
	s.mu.Lock()
	_, ok := s.games[id]
	delete(s.games, id)
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, chesserrors.Wrapf(chesserrors.ErrUnknownGame, "%q", id).Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type moveBody struct {
	Move string `json:"move"` // "E2-E4"; takes precedence over From/To
	From string `json:"from"`
	To   string `json:"to"`
}

func (b moveBody) squares() (from, to chess.Position, err error) {
	if b.Move != "" {
		return notation.ParseMove(b.Move)
	}
	if from, err = notation.ParseSquare(strings.TrimSpace(b.From)); err != nil {
		return from, to, fmt.Errorf("from: %w", err)
	}
	if to, err = notation.ParseSquare(strings.TrimSpace(b.To)); err != nil {
		return from, to, fmt.Errorf("to: %w", err)
	}
	return from, to, nil
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request, id string, sess *game.Session) {
	var body moveBody
	if !decodeBody(w, r, &body) {
		return
	}
	from, to, err := body.squares()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, err := sess.Play(from, to)
	switch {
	case errors.Is(err, chesserrors.ErrGameFinished):
		writeJSON(w, http.StatusConflict, map[string]any{"error": err.Error(), "state": state})
		return
	case errors.Is(err, chesserrors.ErrIllegalMove):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": err.Error(), "state": state})
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.cfg.Logf(2, "game %s: %s", id, notation.FormatMove(from, to))
	if state.Finished {
		s.cfg.Logf(1, "game %s: checkmate, %s wins", id, state.Winner)
	}
	writeJSON(w, http.StatusOK, gameResponse{ID: id, State: state})
}

func (s *Server) handleBoard(w http.ResponseWriter, sess *game.Session) {
	var text string
	sess.Do(func(g *game.Game) {
		text = output.BoardString(g.Board(), &s.cfg.Output)
	})
	writeJSON(w, http.StatusOK, map[string]string{"board": text})
}
