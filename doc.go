// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the towncrier API server.

Towncrier runs nominations and public execution votes for seated
social-deduction games. A storyteller seats the players, players nominate
each other, everyone pre-records a vote in free text, and the storyteller
then counts the votes one seat at a time around the circle, locking each
one to a final yes or no.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:towncrier.db STORYTELLER_KEY_SALT=... go run main.go

Or with flags:

	go run main.go -p 3327 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file or PostgreSQL connection string
  - STORYTELLER_KEY_SALT (-st-salt): Secret for storyteller key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3327)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (games, nominations, voting)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and town square types
  - square: The game engine (nominations, votes, sequential counts)
  - count: Pure seat-order and tally math
  - resolve: Free-text player name resolution
  - render: Public vote-tally rendering
  - store: Town square persistence
  - auth: Key generation and validation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
