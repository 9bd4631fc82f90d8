// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the towncrier API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, cfg)

# Endpoints

Health:

	GET /health

Game management (storyteller, requires X-Storyteller-Key):

	POST /games                            - Create game
	POST /games/{id}/setup                 - Seat the town square
	POST /games/{id}/update                - Merge a new roster
	POST /games/{id}/settings              - Toggle game settings
	POST /games/{id}/players/{pid}/dead    - Mark dead/alive
	POST /games/{id}/players/{pid}/canvote - Grant/revoke the vote

Player operations (uses X-Player-ID):

	GET  /games/{id}                       - Town square snapshot
	POST /games/{id}/players/{pid}/alias   - Set own alias

Nomination lifecycle:

	POST /games/{id}/nominations                  - Open a nomination
	POST /games/{id}/nominations/{nid}/accusation - Nominator's statement
	POST /games/{id}/nominations/{nid}/defense    - Nominee's statement
	POST /games/{id}/nominations/{nid}/deadline   - Move the deadline
	POST /games/{id}/nominations/{nid}/close      - Finish early

Voting and the sequential count:

	POST   /games/{id}/nominations/{nid}/votes         - Cast/replace a vote
	POST   /games/{id}/nominations/{nid}/private-votes - Secret overlay
	DELETE /games/{id}/nominations/{nid}/private-votes - Clear overlay
	POST   /games/{id}/nominations/{nid}/count         - Count action

# Handler Initialization

The router creates handler instances with dependency injection:

	gameHandler := handlers.NewGameHandler(svc, cfg)
	nominationHandler := handlers.NewNominationHandler(svc, cfg)
	votingHandler := handlers.NewVotingHandler(svc, cfg)

All handlers receive the engine and configuration.
*/
package router
