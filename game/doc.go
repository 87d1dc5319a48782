// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package game manages live matches and archives their results.

A Service holds at most one ActiveMatch per session token. The lifecycle:

	Start ──(AddEntry*)──▶ Finish   archived with an outcome, live state cleared
	   │                 ▶ SaveDraft archived without an outcome, still live
	   └─────────────────▶ Cancel   discarded, nothing written

Finishing resolves the outcome via the scoring package (lowest total wins,
shared minimum is a draw) and merges the record into the owner's archive:
an existing match with the same ID is replaced in place — that is how a
saved draft becomes a finished match without duplicating — and anything
else is appended. Before merging, rows not owned by the user are filtered
out so one user's archive can never carry another's matches.

The merge sequence (load, filter, merge, store) is the whole consistency
story. Two sessions finishing matches for the same user at the same time
race, and the last full-list write wins; the service makes no attempt to
coordinate across sessions.
*/
package game
