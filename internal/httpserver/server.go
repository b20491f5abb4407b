// internal/httpserver/server.go
//
// HTTP server wiring for the word game.
// Responsibilities:
//   - Router + middleware (JSON, gzip, CORS, timeouts, panic recovery, request IDs, rate limits).
//   - Public endpoints: "/", "/health", "/config".
//   - Session creation: POST /game/new returns a game id and a session token.
//   - Session endpoints (token required): mounted under /game/{id}.
//   - Serve until the context ends, then drain in-flight requests.
//
// Notes:
//   - One game.State per session, held in the store and mutated under the
//     session's own lock.
//   - The target word is never sent while a game is in progress.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgame/internal/config"
	"github.com/robalobadob/wordgame/internal/daily"
	"github.com/robalobadob/wordgame/internal/game"
	"github.com/robalobadob/wordgame/internal/store"
	"github.com/robalobadob/wordgame/internal/words"
)

// Server bundles router, session store and word source.
type Server struct {
	r      *chi.Mux
	cfg    config.Config
	store  store.Store
	source words.Source
	limits *limiterSet
	now    func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, st store.Store, src words.Source) *Server {
	s := &Server{
		r:      chi.NewRouter(),
		cfg:    cfg,
		store:  st,
		source: src,
		limits: newLimiterSet(cfg.RateLimitRPS, cfg.RateLimitBurst),
		now:    time.Now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(compress)                        // gzip large responses
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(cfg.ClientOrigin))          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordgame",
			"endpoints": []string{"/health", "/config", "POST /game/new", "/game/{id}"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "sessions": s.store.Len()})
	})
	s.r.Get("/config", s.handleConfig)

	s.r.With(s.rateLimit).Post("/game/new", s.handleNewGame)
	s.mountGame()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// shutdownTimeout bounds how long in-flight requests get to finish.
const shutdownTimeout = 10 * time.Second

// Run serves HTTP on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves HTTP on ln until ctx is done. It returns only after in-flight
// requests have finished or shutdownTimeout has passed.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	hs := &http.Server{Handler: s.r, ReadHeaderTimeout: 5 * time.Second}

	sweepCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.limits.runSweeper(sweepCtx, limiterIdle/2, limiterIdle)

	errc := make(chan error, 1)
	go func() { errc <- hs.Serve(ln) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutCtx, cancelShut := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShut()
	if err := hs.Shutdown(shutCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// compress gzips responses for clients that accept it.
func compress(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------ CONFIG -------------------------------------

type lengthInfo struct {
	WordLength  int `json:"wordLength"`
	MaxAttempts int `json:"maxAttempts"`
}

// handleConfig lists the supported word lengths and their attempt budgets.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	out := struct {
		DefaultLength int          `json:"defaultLength"`
		Lengths       []lengthInfo `json:"lengths"`
	}{DefaultLength: s.cfg.DefaultLength}
	for _, n := range game.SupportedLengths() {
		attempts, _ := game.MaxAttempts(n)
		out.Lengths = append(out.Lengths, lengthInfo{WordLength: n, MaxAttempts: attempts})
	}
	writeJSON(w, http.StatusOK, out)
}

// ------------------------------ NEW GAME -----------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Length int  `json:"length"` // 0 → configured default
	Daily  bool `json:"daily"`  // word of the day instead of a random word
}
type newGameRes struct {
	GameID      string `json:"gameId"`
	Token       string `json:"token"`
	WordLength  int    `json:"wordLength"`
	MaxAttempts int    `json:"maxAttempts"`
	Daily       bool   `json:"daily"`
}

// handleNewGame starts a game, stores it under a fresh session, and hands the
// client a token bound to that session.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeErr(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Length == 0 {
		req.Length = s.cfg.DefaultLength
	}

	g := game.New(s.pickerFor(req.Daily))
	if err := g.Start(req.Length); err != nil {
		s.writeStartErr(w, err)
		return
	}

	sess := store.NewSession(g, req.Daily)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeErr(w, http.StatusInternalServerError, "save_failed")
		return
	}

	tok, exp, err := s.signSessionToken(sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign session token")
		writeErr(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	setSessionCookie(w, tok, exp)

	cfg := g.Config()
	log.Info().Str("gameId", sess.ID).Int("length", cfg.WordLength).Bool("daily", req.Daily).Msg("game started")
	writeJSON(w, http.StatusOK, newGameRes{
		GameID:      sess.ID,
		Token:       tok,
		WordLength:  cfg.WordLength,
		MaxAttempts: cfg.MaxAttempts,
		Daily:       req.Daily,
	})
}

// pickerFor returns the word source for a new game.
func (s *Server) pickerFor(isDaily bool) game.WordPicker {
	if isDaily {
		return &daily.Picker{Source: s.source, Salt: s.cfg.DailySalt, Now: s.now}
	}
	return words.NewPicker(s.source, nil)
}

// writeStartErr maps configuration errors from game.Start to JSON codes.
func (s *Server) writeStartErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrUnsupportedLength):
		writeErr(w, http.StatusBadRequest, "unsupported_length")
	case errors.Is(err, game.ErrNoCandidates):
		log.Warn().Err(err).Msg("no target candidates")
		writeErr(w, http.StatusInternalServerError, "no_words")
	default:
		log.Error().Err(err).Msg("start game")
		writeErr(w, http.StatusInternalServerError, "start_failed")
	}
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
