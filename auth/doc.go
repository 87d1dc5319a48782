// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential hashing and token generation utilities.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, password)

CheckPassword returns ErrPasswordMismatch on any failure, so login code can
treat every mismatch the same way. Minimum password length is a handler-level
rule (models.MinPasswordLength), not enforced here.

# Session Tokens

Session tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateSessionToken()

Tokens are URL-safe base64 encoded and sent by clients in the
X-Session-Token header. Each login creates a fresh token; logout deletes it.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
