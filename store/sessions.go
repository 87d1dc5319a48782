// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/yazboz-plus/auth"
)

// Sessions maps login tokens to accounts. A session is created at login and
// deleted at logout; there is no expiry sweep.
type Sessions struct {
	db *sql.DB
}

func NewSessions(db *sql.DB) *Sessions {
	return &Sessions{db: db}
}

// Create opens a session for an account and returns the fresh token.
func (s *Sessions) Create(accountID string) (string, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		return "", err
	}

	_, err = s.db.Exec(`
		INSERT INTO session (token, account_id, created_at)
		VALUES ($1, $2, $3)
	`, token, accountID, time.Now())
	if err != nil {
		return "", fmt.Errorf("failed to insert session: %w", err)
	}

	return token, nil
}

// Get resolves a token to its account ID.
func (s *Sessions) Get(token string) (string, error) {
	var accountID string
	err := s.db.QueryRow(`
		SELECT account_id FROM session WHERE token = $1
	`, token).Scan(&accountID)
	if err == sql.ErrNoRows {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query session: %w", err)
	}
	return accountID, nil
}

// Delete ends a session. Deleting an unknown token is a no-op.
func (s *Sessions) Delete(token string) error {
	_, err := s.db.Exec(`DELETE FROM session WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
