// internal/httpserver/routes_game.go
//
// Per-session game routes, all under /game/{id} and all token-gated:
//   - GET  /game/{id}           → snapshot
//   - POST /game/{id}/letter    → append a letter   {letter}
//   - POST /game/{id}/backspace → remove a letter
//   - POST /game/{id}/submit    → score the guess
//   - POST /game/{id}/reset     → back to not-started
//   - POST /game/{id}/start     → new target in the same session {length}
//
// Edits and submits never fail with an error status: the core reports
// ignored or rejected intents in the response body.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgame/internal/game"
	"github.com/robalobadob/wordgame/internal/store"
)

// mountGame registers the /game/{id} routes.
func (s *Server) mountGame() {
	s.r.Route("/game/{id}", func(r chi.Router) {
		r.Use(s.requireSession)
		r.Get("/", s.handleSnapshot)

		r.Group(func(r chi.Router) {
			r.Use(s.rateLimit)
			r.Post("/letter", s.handleLetter)
			r.Post("/backspace", s.handleBackspace)
			r.Post("/submit", s.handleSubmit)
			r.Post("/reset", s.handleReset)
			r.Post("/start", s.handleStart)
		})
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	var snap game.Snapshot
	sessionFrom(r).With(func(g *game.State) { snap = g.Snapshot() })
	writeJSON(w, http.StatusOK, snap)
}

type letterReq struct {
	Letter string `json:"letter"`
}

func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request) {
	var req letterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_json")
		return
	}
	runes := []rune(req.Letter)
	if len(runes) != 1 {
		writeErr(w, http.StatusBadRequest, "invalid_letter")
		return
	}

	var edit game.Edit
	sessionFrom(r).With(func(g *game.State) { edit = g.AppendLetter(runes[0]) })
	writeJSON(w, http.StatusOK, edit)
}

func (s *Server) handleBackspace(w http.ResponseWriter, r *http.Request) {
	var edit game.Edit
	sessionFrom(r).With(func(g *game.State) { edit = g.RemoveLetter() })
	writeJSON(w, http.StatusOK, edit)
}

// submitRes is a game.Result plus the line a client should display.
type submitRes struct {
	game.Result
	Text string `json:"message,omitempty"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	var res game.Result
	sess.With(func(g *game.State) { res = g.Submit() })

	if res.Outcome == game.Submitted {
		ev := log.Info().Str("gameId", sess.ID).Int("attempt", res.Attempt).Str("status", res.Status.String())
		ev.Msg("guess submitted")
	}
	writeJSON(w, http.StatusOK, submitRes{Result: res, Text: res.Message()})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var snap game.Snapshot
	sessionFrom(r).With(func(g *game.State) {
		g.Reset()
		snap = g.Snapshot()
	})
	writeJSON(w, http.StatusOK, snap)
}

type startReq struct {
	Length int `json:"length"`
}

// handleStart picks a new target for the session. A failed start leaves the
// previous game untouched.
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req startReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeErr(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Length == 0 {
		req.Length = s.cfg.DefaultLength
	}

	var (
		snap game.Snapshot
		err  error
	)
	sess := sessionFrom(r)
	sess.With(func(g *game.State) {
		if err = g.Start(req.Length); err == nil {
			snap = g.Snapshot()
		}
	})
	if err != nil {
		s.writeStartErr(w, err)
		return
	}
	log.Info().Str("gameId", sess.ID).Int("length", req.Length).Msg("game restarted")
	writeJSON(w, http.StatusOK, snap)
}

// sessionFrom returns the session placed in the context by requireSession.
func sessionFrom(r *http.Request) *store.Session {
	sess, _ := r.Context().Value(ctxSessionKey{}).(*store.Session)
	return sess
}
