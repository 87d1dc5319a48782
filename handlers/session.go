// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/yazboz-plus/middleware"
	"github.com/danielhkuo/yazboz-plus/store"
)

// requireSession resolves the X-Session-Token header to an account ID.
// On failure it writes the 401 response and reports ok=false; callers just
// return.
func requireSession(sessions *store.Sessions, w http.ResponseWriter, r *http.Request) (token, accountID string, ok bool) {
	token = r.Header.Get("X-Session-Token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Session-Token header required")
		return "", "", false
	}

	accountID, err := sessions.Get(token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid session")
			return "", "", false
		}
		slog.Error("failed to resolve session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return "", "", false
	}

	return token, accountID, true
}
