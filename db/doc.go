// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the database schema.

	if err := db.CreateSchema(dbConn); err != nil { ... }

Three tables: account (credentials), session (login tokens), and game
(archived matches). The game table stores the team list and score list as
JSON text columns; a match record is written and read as a unit, never
queried by its inner structure.
*/
package db
