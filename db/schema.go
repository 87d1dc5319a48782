// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// The DDL is kept to the dialect both sqlite and postgres accept: no
// server-side defaults for timestamps (the application stamps them) and
// plain TEXT columns for the JSON payloads.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Accounts
CREATE TABLE IF NOT EXISTS account (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL,
    username_lower TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    email TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_account_username_lower ON account(username_lower);

-- Sessions (one row per login, deleted on logout)
CREATE TABLE IF NOT EXISTS session (
    token TEXT PRIMARY KEY,
    account_id TEXT NOT NULL REFERENCES account(id) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_session_account_id ON session(account_id);

-- Archived matches; teams and scores are JSON payloads
CREATE TABLE IF NOT EXISTS game (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES account(id) ON DELETE CASCADE,
    played_at TIMESTAMP NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('draft', 'finished')),
    winner TEXT,
    is_draw BOOLEAN NOT NULL,
    teams TEXT NOT NULL,
    scores TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_game_user_id ON game(user_id);
`
