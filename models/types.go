// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Match status constants
const (
	StatusDraft    = "draft"
	StatusFinished = "finished"
)

// Score track constants
const (
	TrackRemaining = "remaining_points"
	TrackPenalties = "penalties"
)

// MinPasswordLength is enforced by the registration handler, not the store.
const MinPasswordLength = 4

// Request types

type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Email           string `json:"email,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type StartMatchRequest struct {
	Teams []TeamSetup `json:"teams"`
}

// TeamSetup is the caller-supplied half of a Team; IDs are assigned server-side.
type TeamSetup struct {
	Name    string   `json:"name"`
	Players []string `json:"players"`
}

// AddEntryRequest carries the raw input string. Non-numeric or empty values
// are discarded without error, so the value is not parsed at the JSON layer.
type AddEntryRequest struct {
	TeamID string `json:"team_id"`
	Track  string `json:"track"`
	Value  string `json:"value"`
}

// Response types

type RegisterResponse struct {
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
}

type LoginResponse struct {
	SessionToken string  `json:"session_token"`
	Account      Account `json:"account"`
}

type ScoreboardResponse struct {
	MatchID string      `json:"match_id"`
	Teams   []Team      `json:"teams"`
	Scores  []TeamScore `json:"scores"`
}

type AddEntryResponse struct {
	Accepted   bool               `json:"accepted"`
	Scoreboard ScoreboardResponse `json:"scoreboard"`
}

type HistoryResponse struct {
	Matches []Match `json:"matches"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

type Account struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Players []string `json:"players"`
}

// TeamScore holds the running totals for one team. TotalScore is always
// RemainingPoints + Penalties; it is derived, never set independently.
type TeamScore struct {
	TeamID          string `json:"team_id"`
	RemainingPoints int    `json:"remaining_points"`
	Penalties       int    `json:"penalties"`
	TotalScore      int    `json:"total_score"`
}

// Match is an archived contest. Status distinguishes a saved draft from a
// finished match; Winner and IsDraw are only meaningful when Status is
// "finished". Winner is nil exactly when the match is a draw.
type Match struct {
	ID       string      `json:"id"`
	UserID   string      `json:"user_id"`
	PlayedAt time.Time   `json:"played_at"`
	Status   string      `json:"status"`
	Teams    []Team      `json:"teams"`
	Scores   []TeamScore `json:"scores"`
	Winner   *string     `json:"winner"`
	IsDraw   bool        `json:"is_draw"`
}
