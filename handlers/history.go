// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/yazboz-plus/game"
	"github.com/danielhkuo/yazboz-plus/middleware"
	"github.com/danielhkuo/yazboz-plus/models"
	"github.com/danielhkuo/yazboz-plus/store"
)

type HistoryHandler struct {
	games    *game.Service
	sessions *store.Sessions
}

func NewHistoryHandler(games *game.Service, sessions *store.Sessions) *HistoryHandler {
	return &HistoryHandler{games: games, sessions: sessions}
}

// List handles GET /matches
// Returns the caller's archive, newest first. Drafts are included and
// distinguishable by status.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	_, accountID, ok := requireSession(h.sessions, w, r)
	if !ok {
		return
	}

	matches, err := h.games.History(accountID)
	if err != nil {
		slog.Error("failed to load history", "error", err, "account_id", accountID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load history")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HistoryResponse{Matches: matches})
}

// Get handles GET /matches/{id}
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	_, accountID, ok := requireSession(h.sessions, w, r)
	if !ok {
		return
	}

	matchID := r.PathValue("id")
	if matchID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "match id is required")
		return
	}

	match, found, err := h.games.Lookup(accountID, matchID)
	if err != nil {
		slog.Error("failed to look up match", "error", err, "match_id", matchID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load match")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Match not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, match)
}
