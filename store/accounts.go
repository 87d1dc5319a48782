// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/yazboz-plus/auth"
)

// Account is the stored form of a registered user. The password hash stays
// inside this package; handlers work with models.Account.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Accounts is the credential store backed by the account table.
type Accounts struct {
	db *sql.DB
}

func NewAccounts(db *sql.DB) *Accounts {
	return &Accounts{db: db}
}

// Create registers a new account. The username must be unique ignoring case.
// Password policy (minimum length, confirmation) is the caller's job; Create
// only refuses duplicates.
func (s *Accounts) Create(username, password, email string) (Account, error) {
	lower := strings.ToLower(username)

	var exists int
	err := s.db.QueryRow(`
		SELECT 1 FROM account WHERE username_lower = $1
	`, lower).Scan(&exists)
	if err == nil {
		return Account{}, ErrUsernameTaken
	}
	if err != sql.ErrNoRows {
		return Account{}, fmt.Errorf("failed to check username: %w", err)
	}

	id, err := auth.GenerateID(16)
	if err != nil {
		return Account{}, err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return Account{}, err
	}

	acct := Account{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	_, err = s.db.Exec(`
		INSERT INTO account (id, username, username_lower, password_hash, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, acct.ID, acct.Username, lower, acct.PasswordHash, nullable(acct.Email), acct.CreatedAt)
	if err != nil {
		return Account{}, fmt.Errorf("failed to insert account: %w", err)
	}

	return acct, nil
}

// Authenticate verifies a username/password pair. Username matching ignores
// case. Any failure is ErrInvalidCredentials.
func (s *Accounts) Authenticate(username, password string) (Account, error) {
	acct, err := s.getBy("username_lower", strings.ToLower(username))
	if err == sql.ErrNoRows {
		return Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return Account{}, fmt.Errorf("failed to query account: %w", err)
	}

	if err := auth.CheckPassword(acct.PasswordHash, password); err != nil {
		return Account{}, ErrInvalidCredentials
	}
	return acct, nil
}

// Get looks up an account by ID.
func (s *Accounts) Get(id string) (Account, error) {
	acct, err := s.getBy("id", id)
	if err == sql.ErrNoRows {
		return Account{}, fmt.Errorf("account %s not found", id)
	}
	if err != nil {
		return Account{}, fmt.Errorf("failed to query account: %w", err)
	}
	return acct, nil
}

func (s *Accounts) getBy(column, value string) (Account, error) {
	var acct Account
	var email sql.NullString
	err := s.db.QueryRow(`
		SELECT id, username, password_hash, email, created_at
		FROM account
		WHERE `+column+` = $1
	`, value).Scan(&acct.ID, &acct.Username, &acct.PasswordHash, &email, &acct.CreatedAt)
	if err != nil {
		return Account{}, err
	}
	acct.Email = email.String
	return acct, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
