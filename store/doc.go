// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists town squares.

Each game is stored as one JSON document in the registry table, written
with an upsert so saves are idempotent:

	st := store.NewSQL(db)
	err := st.Save("g1", ts)
	ts, ok, err := st.Load("g1")

The Store interface keeps the engine independent of the backing
database; the SQL implementation works unchanged on sqlite and
PostgreSQL.
*/
package store
