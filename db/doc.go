// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes the registry table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

The schema is a single table:

  - registry: one row per game, holding the whole town square as a JSON
    payload keyed by game_id

The engine reads and writes town squares as whole documents, so there is
no relational breakdown of nominations or votes. The same statements work
on both sqlite and PostgreSQL.
*/
package db
