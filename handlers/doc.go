// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the towncrier API.

# Handler Types

Each handler is a struct with engine and config dependencies:

  - GameHandler: Game lifecycle, roster, and settings
  - NominationHandler: Nomination lifecycle (open, accuse, defend, close)
  - VotingHandler: Vote casting and the sequential count

Handlers are created via constructor functions that accept the engine
and Config:

	gameHandler := handlers.NewGameHandler(svc, cfg)

# Authentication

Two headers identify the caller:

	X-Storyteller-Key - HMAC key returned by POST /games; grants
	                    storyteller (moderator) access for that game
	X-Player-ID       - the caller's seat identity, unverified

A request may carry both; an invalid key simply leaves the caller
without storyteller access rather than failing the request, except on
setup where the key is the only gate.

# Game Lifecycle

	POST /games               → CreateGame (returns storyteller_key)
	POST /games/{id}/setup    → SetupGame (destructive re-seat)
	POST /games/{id}/update   → UpdateGame (merge roster)
	GET  /games/{id}          → GetGame
	POST /games/{id}/settings → Settings

# Nomination and Voting Flow

	POST /games/{id}/nominations                  → Nominate
	POST /games/{id}/nominations/{nid}/votes      → CastVote
	POST /games/{id}/nominations/{nid}/count      → CountAction

Nominee and nominator names arrive as free text and go through the
resolver cascade in the resolve package.

# Error Mapping

Engine errors map onto HTTP statuses in engineError: unknown games and
nominations are 404, authorization failures 403, state conflicts
(duplicate nomination, locked vote, finished count) 409, and validation
failures 400.
*/
package handlers
