// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/yazboz-plus/game"
	"github.com/danielhkuo/yazboz-plus/middleware"
	"github.com/danielhkuo/yazboz-plus/models"
	"github.com/danielhkuo/yazboz-plus/scoring"
	"github.com/danielhkuo/yazboz-plus/store"
)

type MatchHandler struct {
	games    *game.Service
	sessions *store.Sessions
}

func NewMatchHandler(games *game.Service, sessions *store.Sessions) *MatchHandler {
	return &MatchHandler{games: games, sessions: sessions}
}

// Start handles POST /matches
func (h *MatchHandler) Start(w http.ResponseWriter, r *http.Request) {
	token, accountID, ok := requireSession(h.sessions, w, r)
	if !ok {
		return
	}

	var req models.StartMatchRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	v, err := h.games.Start(token, accountID, req.Teams)
	if err != nil {
		switch {
		case errors.Is(err, game.ErrTeamCount):
			middleware.ErrorResponse(w, http.StatusBadRequest, "exactly two teams are required")
		case errors.Is(err, game.ErrEmptyTeamName):
			middleware.ErrorResponse(w, http.StatusBadRequest, "team names must not be empty")
		default:
			slog.Error("failed to start match", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start match")
		}
		return
	}

	slog.Info("match started", "match_id", v.MatchID, "account_id", accountID)

	middleware.JSONResponse(w, http.StatusCreated, scoreboard(v))
}

// Current handles GET /matches/current
func (h *MatchHandler) Current(w http.ResponseWriter, r *http.Request) {
	token, _, ok := requireSession(h.sessions, w, r)
	if !ok {
		return
	}

	v, err := h.games.Scoreboard(token)
	if err != nil {
		respondNoActiveMatch(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, scoreboard(v))
}

// AddEntry handles POST /matches/current/entries
// The value is free text; empty or non-numeric input is dropped silently and
// the response reports accepted=false with the unchanged scoreboard.
func (h *MatchHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	token, _, ok := requireSession(h.sessions, w, r)
	if !ok {
		return
	}

	var req models.AddEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	accepted, v, err := h.games.AddEntry(token, req.TeamID, req.Track, req.Value)
	if err != nil {
		switch {
		case errors.Is(err, game.ErrNoActiveMatch):
			respondNoActiveMatch(w, err)
		case errors.Is(err, scoring.ErrUnknownTeam):
			middleware.ErrorResponse(w, http.StatusBadRequest, "unknown team")
		case errors.Is(err, scoring.ErrUnknownTrack):
			middleware.ErrorResponse(w, http.StatusBadRequest, "track must be remaining_points or penalties")
		default:
			slog.Error("failed to add entry", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add entry")
		}
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AddEntryResponse{
		Accepted:   accepted,
		Scoreboard: scoreboard(v),
	})
}

// Finish handles POST /matches/current/finish
func (h *MatchHandler) Finish(w http.ResponseWriter, r *http.Request) {
	token, accountID, ok := requireSession(h.sessions, w, r)
	if !ok {
		return
	}

	match, err := h.games.Finish(token)
	if err != nil {
		if errors.Is(err, game.ErrNoActiveMatch) {
			respondNoActiveMatch(w, err)
			return
		}
		slog.Error("failed to finish match", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to finish match")
		return
	}

	slog.Info("match finished",
		"match_id", match.ID,
		"account_id", accountID,
		"is_draw", match.IsDraw,
	)

	middleware.JSONResponse(w, http.StatusOK, match)
}

// Save handles POST /matches/current/save
func (h *MatchHandler) Save(w http.ResponseWriter, r *http.Request) {
	token, accountID, ok := requireSession(h.sessions, w, r)
	if !ok {
		return
	}

	match, err := h.games.SaveDraft(token)
	if err != nil {
		if errors.Is(err, game.ErrNoActiveMatch) {
			respondNoActiveMatch(w, err)
			return
		}
		slog.Error("failed to save draft", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save draft")
		return
	}

	slog.Info("draft saved", "match_id", match.ID, "account_id", accountID)

	middleware.JSONResponse(w, http.StatusOK, match)
}

// Cancel handles DELETE /matches/current
func (h *MatchHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	token, accountID, ok := requireSession(h.sessions, w, r)
	if !ok {
		return
	}

	if err := h.games.Cancel(token); err != nil {
		respondNoActiveMatch(w, err)
		return
	}

	slog.Info("match cancelled", "account_id", accountID)
	w.WriteHeader(http.StatusNoContent)
}

// respondNoActiveMatch maps the invalid-state condition to a 404 so the
// client knows to send the user back to match setup.
func respondNoActiveMatch(w http.ResponseWriter, err error) {
	if errors.Is(err, game.ErrNoActiveMatch) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No active match")
		return
	}
	slog.Error("failed to read active match", "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read active match")
}

func scoreboard(v game.View) models.ScoreboardResponse {
	return models.ScoreboardResponse{
		MatchID: v.MatchID,
		Teams:   v.Teams,
		Scores:  v.Scores,
	}
}
