// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Yaz Boz Plus API server.

Yaz Boz Plus is a score tracker for the two-team Turkish tile game Yaz Boz:
users register, start a match between two named teams, feed in round values
and penalties, and the server resolves the winner (lowest cumulative score
wins) and archives the result per user.

# Starting the Server

With no configuration the server listens on port 3419 over a local sqlite
file database:

	go run .

Or against postgres:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

A .env file next to the binary is loaded if present.

# Configuration

  - PORT (-p): server port (default: 3419)
  - DATABASE_URL (-d): connection string (default: file:yazboz.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (accounts, matches, history)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response and domain types
  - scoring: score accumulation and match resolution (pure)
  - game: live-match sessions and the archive merge
  - store: account, session, and match repositories
  - auth: password hashing and token generation
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
