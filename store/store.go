// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "errors"

var (
	// ErrUsernameTaken is returned by Accounts.Create for a duplicate
	// username (case-insensitive).
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned by Accounts.Authenticate for an
	// unknown username or a wrong password; callers cannot tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound is returned by Sessions.Get for an unknown token.
	ErrSessionNotFound = errors.New("session not found")
)
