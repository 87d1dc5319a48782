// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Yaz Boz Plus API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - AuthHandler: registration, login, logout, current account
  - MatchHandler: live match lifecycle (start, entries, finish, save, cancel)
  - HistoryHandler: archived match retrieval

	authHandler := handlers.NewAuthHandler(accounts, sessions, games)

# Authentication

All endpoints except register and login require the X-Session-Token header,
issued by POST /auth/login and revoked by POST /auth/logout.

# Match Lifecycle

One live match per session:

	POST   /matches                 → Start (exactly two named teams)
	GET    /matches/current         → Current scoreboard
	POST   /matches/current/entries → AddEntry (raw value; bad input is a no-op)
	POST   /matches/current/finish  → Finish (resolve + archive)
	POST   /matches/current/save    → Save (archive draft, keep playing)
	DELETE /matches/current         → Cancel (discard)

Operating on a missing live match returns 404 with "No active match"; the
client redirects to match setup.

# History

	GET /matches      → List (caller's archive, newest first)
	GET /matches/{id} → Get (one archived match, drafts included)
*/
package handlers
