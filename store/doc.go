// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides the persistence repositories over database/sql.

Three narrow stores, one per table:

  - Accounts: create (unique username, bcrypt hash) and authenticate
  - Sessions: login tokens mapped to account IDs
  - Matches: per-user match archive with load / full-replace semantics

The stores work against either sqlite or postgres; all SQL sticks to the
shared dialect and $N placeholders.

The Matches store deliberately has no per-match update: the game engine
loads a user's list, merges, and stores the whole list back. That keeps the
engine's merge semantics (replace-by-ID or append, defensive user filter) in
one place and the store swappable for any backend that can hold a list.
*/
package store
