// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"towncrier/cliparse"
	"towncrier/handlers"
	"towncrier/middleware"
	"towncrier/square"
)

func NewRouter(svc *square.Service, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	gameHandler := handlers.NewGameHandler(svc, cfg)
	nominationHandler := handlers.NewNominationHandler(svc, cfg)
	votingHandler := handlers.NewVotingHandler(svc, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Game management (storyteller operations)
	mux.HandleFunc("POST /games", middleware.WithLogging(gameHandler.CreateGame))
	mux.HandleFunc("POST /games/{id}/setup", middleware.WithLogging(gameHandler.SetupGame))
	mux.HandleFunc("POST /games/{id}/update", middleware.WithLogging(gameHandler.UpdateGame))
	mux.HandleFunc("GET /games/{id}", middleware.WithLogging(gameHandler.GetGame))
	mux.HandleFunc("POST /games/{id}/settings", middleware.WithLogging(gameHandler.Settings))
	mux.HandleFunc("POST /games/{id}/players/{pid}/alias", middleware.WithLogging(gameHandler.SetAlias))
	mux.HandleFunc("POST /games/{id}/players/{pid}/dead", middleware.WithLogging(gameHandler.SetDead))
	mux.HandleFunc("POST /games/{id}/players/{pid}/canvote", middleware.WithLogging(gameHandler.SetCanVote))

	// Nomination lifecycle
	mux.HandleFunc("POST /games/{id}/nominations", middleware.WithLogging(nominationHandler.Nominate))
	mux.HandleFunc("POST /games/{id}/nominations/{nid}/accusation", middleware.WithLogging(nominationHandler.SetAccusation))
	mux.HandleFunc("POST /games/{id}/nominations/{nid}/defense", middleware.WithLogging(nominationHandler.SetDefense))
	mux.HandleFunc("POST /games/{id}/nominations/{nid}/deadline", middleware.WithLogging(nominationHandler.SetDeadline))
	mux.HandleFunc("POST /games/{id}/nominations/{nid}/close", middleware.WithLogging(nominationHandler.Close))

	// Voting and sequential counting
	mux.HandleFunc("POST /games/{id}/nominations/{nid}/votes", middleware.WithLogging(votingHandler.CastVote))
	mux.HandleFunc("POST /games/{id}/nominations/{nid}/private-votes", middleware.WithLogging(votingHandler.CastPrivateVote))
	mux.HandleFunc("DELETE /games/{id}/nominations/{nid}/private-votes", middleware.WithLogging(votingHandler.RemovePrivateVote))
	mux.HandleFunc("POST /games/{id}/nominations/{nid}/count", middleware.WithLogging(votingHandler.CountAction))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("towncrier API v1"))
	})

	return mux
}
