// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/yazboz-plus/models"
)

// Matches is the per-user match archive. It exposes the two operations the
// game engine needs: load a user's complete record set, and replace it.
// The merge (update-vs-append) logic lives in the game package, not here.
type Matches struct {
	db *sql.DB
}

func NewMatches(db *sql.DB) *Matches {
	return &Matches{db: db}
}

// Load returns every stored match for a user, in storage order. A user with
// no rows gets an empty list. A row whose JSON payload no longer decodes is
// skipped with a warning rather than failing the whole history.
func (s *Matches) Load(userID string) ([]models.Match, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, played_at, status, winner, is_draw, teams, scores
		FROM game
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := []models.Match{}
	for rows.Next() {
		var m models.Match
		var winner sql.NullString
		var teamsJSON, scoresJSON string

		if err := rows.Scan(&m.ID, &m.UserID, &m.PlayedAt, &m.Status,
			&winner, &m.IsDraw, &teamsJSON, &scoresJSON); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		if winner.Valid {
			w := winner.String
			m.Winner = &w
		}

		if err := json.Unmarshal([]byte(teamsJSON), &m.Teams); err != nil {
			slog.Warn("skipping match with corrupt teams payload", "match_id", m.ID, "error", err)
			continue
		}
		if err := json.Unmarshal([]byte(scoresJSON), &m.Scores); err != nil {
			slog.Warn("skipping match with corrupt scores payload", "match_id", m.ID, "error", err)
			continue
		}

		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}

	return matches, nil
}

// Save replaces a user's complete record set with the given list. The delete
// and inserts run in one transaction so a failed write never leaves a
// half-replaced archive. There is no cross-session coordination: two
// concurrent Saves for the same user are last-write-wins.
func (s *Matches) Save(userID string, matches []models.Match) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM game WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear matches: %w", err)
	}

	for _, m := range matches {
		teamsJSON, err := json.Marshal(m.Teams)
		if err != nil {
			return fmt.Errorf("failed to marshal teams for match %s: %w", m.ID, err)
		}
		scoresJSON, err := json.Marshal(m.Scores)
		if err != nil {
			return fmt.Errorf("failed to marshal scores for match %s: %w", m.ID, err)
		}

		var winner interface{}
		if m.Winner != nil {
			winner = *m.Winner
		}

		_, err = tx.Exec(`
			INSERT INTO game (id, user_id, played_at, status, winner, is_draw, teams, scores)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, m.ID, m.UserID, m.PlayedAt, m.Status, winner, m.IsDraw,
			string(teamsJSON), string(scoresJSON))
		if err != nil {
			return fmt.Errorf("failed to insert match %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit matches: %w", err)
	}
	return nil
}
