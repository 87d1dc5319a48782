// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: username, password, confirm_password, email
  - LoginRequest: username, password
  - StartMatchRequest: teams ([]TeamSetup)
  - AddEntryRequest: team_id, track, value (raw string)

# Response Types

Types for JSON responses:

  - RegisterResponse: account_id, username
  - LoginResponse: session_token, account
  - ScoreboardResponse: match_id, teams, scores
  - AddEntryResponse: accepted, scoreboard
  - HistoryResponse: matches
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Account: registered user (password hash never included)
  - Team: match participant with name and player list
  - TeamScore: running remaining/penalty/total per team
  - Match: archived contest with explicit status and outcome

# Constants

Match status values:

	StatusDraft    = "draft"
	StatusFinished = "finished"

Score tracks:

	TrackRemaining = "remaining_points"
	TrackPenalties = "penalties"

A Match with StatusDraft never carries an outcome. A finished Match has
Winner == nil exactly when IsDraw is true; otherwise Winner is the ID of the
team with the strictly lowest total score (lower is better in Yaz Boz).
*/
package models
