// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/yazboz-plus/game"
	"github.com/danielhkuo/yazboz-plus/middleware"
	"github.com/danielhkuo/yazboz-plus/models"
	"github.com/danielhkuo/yazboz-plus/store"
)

type AuthHandler struct {
	accounts *store.Accounts
	sessions *store.Sessions
	games    *game.Service
}

func NewAuthHandler(accounts *store.Accounts, sessions *store.Sessions, games *game.Service) *AuthHandler {
	return &AuthHandler{accounts: accounts, sessions: sessions, games: games}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	username := strings.TrimSpace(req.Username)
	if username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}
	if len(req.Password) < models.MinPasswordLength {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password must be at least 4 characters")
		return
	}
	if req.Password != req.ConfirmPassword {
		middleware.ErrorResponse(w, http.StatusBadRequest, "passwords do not match")
		return
	}

	acct, err := h.accounts.Create(username, req.Password, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			middleware.ErrorResponse(w, http.StatusConflict, "Username already taken")
			return
		}
		slog.Error("failed to create account", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	slog.Info("account registered", "account_id", acct.ID, "username", acct.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{
		AccountID: acct.ID,
		Username:  acct.Username,
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username and password are required")
		return
	}

	acct, err := h.accounts.Authenticate(strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		slog.Error("failed to authenticate", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	token, err := h.sessions.Create(acct.ID)
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("session opened", "account_id", acct.ID)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		SessionToken: token,
		Account: models.Account{
			ID:       acct.ID,
			Username: acct.Username,
			Email:    acct.Email,
		},
	})
}

// Logout handles POST /auth/logout
// Ends the session and discards any live match it still owns.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, accountID, ok := requireSession(h.sessions, w, r)
	if !ok {
		return
	}

	h.games.Drop(token)

	if err := h.sessions.Delete(token); err != nil {
		slog.Error("failed to delete session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log out")
		return
	}

	slog.Info("session closed", "account_id", accountID)
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	_, accountID, ok := requireSession(h.sessions, w, r)
	if !ok {
		return
	}

	acct, err := h.accounts.Get(accountID)
	if err != nil {
		slog.Error("failed to load account", "error", err, "account_id", accountID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.Account{
		ID:       acct.ID,
		Username: acct.Username,
		Email:    acct.Email,
	})
}
