// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/yazboz-plus/game"
	"github.com/danielhkuo/yazboz-plus/handlers"
	"github.com/danielhkuo/yazboz-plus/middleware"
	"github.com/danielhkuo/yazboz-plus/store"
)

func NewRouter(db *sql.DB) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize stores and the game engine
	accounts := store.NewAccounts(db)
	sessions := store.NewSessions(db)
	games := game.NewService(store.NewMatches(db))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(accounts, sessions, games)
	matchHandler := handlers.NewMatchHandler(games, sessions)
	historyHandler := handlers.NewHistoryHandler(games, sessions)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Account operations
	mux.HandleFunc("POST /auth/register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /auth/logout", middleware.WithLogging(authHandler.Logout))
	mux.HandleFunc("GET /auth/me", middleware.WithLogging(authHandler.Me))

	// Live match operations
	mux.HandleFunc("POST /matches", middleware.WithLogging(matchHandler.Start))
	mux.HandleFunc("GET /matches/current", middleware.WithLogging(matchHandler.Current))
	mux.HandleFunc("POST /matches/current/entries", middleware.WithLogging(matchHandler.AddEntry))
	mux.HandleFunc("POST /matches/current/finish", middleware.WithLogging(matchHandler.Finish))
	mux.HandleFunc("POST /matches/current/save", middleware.WithLogging(matchHandler.Save))
	mux.HandleFunc("DELETE /matches/current", middleware.WithLogging(matchHandler.Cancel))

	// Match history
	mux.HandleFunc("GET /matches", middleware.WithLogging(historyHandler.List))
	mux.HandleFunc("GET /matches/{id}", middleware.WithLogging(historyHandler.Get))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("yazboz-plus API v1"))
	})

	return mux
}
