// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment variables.

CLI flags take precedence over environment variables:

	-p / PORT            server port (default 3419)
	-d / DATABASE_URL    database connection string
	-t / DATABASE_TYPE   sqlite or postgres (default sqlite)

With the default sqlite type and no URL, the server uses a local
file:yazboz.db database. Postgres requires an explicit URL.
*/
package cliparse
